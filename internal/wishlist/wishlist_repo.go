package wishlist

import (
	"context"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=wishlist_repo.go -destination=../mock/wishlist/wishlist_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, custID string) (items []Item, ok bool, err error)
	Add(ctx context.Context, custID, itemNo, lotNo string) error
	Delete(ctx context.Context, wishlistID string) error
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, custID string) ([]Item, bool, error) {
	var env apiclient.Envelope[[]rawItem]
	if err := r.api.Get(ctx, "/wishlist/"+url.PathEscape(custID), &env); err != nil {
		return nil, false, err
	}
	if !env.OK() {
		return nil, false, nil
	}
	out := make([]Item, 0, len(env.Data))
	for _, raw := range env.Data {
		out = append(out, raw.normalize())
	}
	return out, true, nil
}

func (r *repository) Add(ctx context.Context, custID, itemNo, lotNo string) error {
	var env apiclient.Envelope[any]
	body := map[string]any{
		"custId": custID,
		"itemNo": itemNo,
		"lotNo":  lotNo,
	}
	if err := r.api.Post(ctx, "/wishlist/add", body, &env); err != nil {
		return err
	}
	return env.Err()
}

func (r *repository) Delete(ctx context.Context, wishlistID string) error {
	var env apiclient.Envelope[any]
	if err := r.api.Delete(ctx, "/wishlist/"+url.PathEscape(wishlistID), &env); err != nil {
		return err
	}
	return env.Err()
}
