package cart

import (
	"context"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=cart_repo.go -destination=../mock/cart/cart_repo_mock.go -package=mock
type Repository interface {
	// List returns the server's cart. Ok is false when the backend answered
	// success=false, which callers treat like an empty cart.
	List(ctx context.Context, custID string) (items []Item, ok bool, err error)
	Add(ctx context.Context, custID, itemNo string, qty int) error
	UpdateQuantity(ctx context.Context, cartID string, qty int) (*Item, error)
	Delete(ctx context.Context, cartID string) error
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, custID string) ([]Item, bool, error) {
	var env apiclient.Envelope[[]rawItem]
	if err := r.api.Get(ctx, "/cart/"+url.PathEscape(custID), &env); err != nil {
		return nil, false, err
	}
	if !env.OK() {
		return nil, false, nil
	}
	return normalizeAll(env.Data), true, nil
}

func (r *repository) Add(ctx context.Context, custID, itemNo string, qty int) error {
	var env apiclient.Envelope[any]
	body := map[string]any{
		"custId":   custID,
		"itemNo":   itemNo,
		"quantity": qty,
	}
	if err := r.api.Post(ctx, "/cart/add", body, &env); err != nil {
		return err
	}
	return env.Err()
}

func (r *repository) UpdateQuantity(ctx context.Context, cartID string, qty int) (*Item, error) {
	var env apiclient.Envelope[*rawItem]
	body := map[string]any{
		"cartId":   cartID,
		"quantity": qty,
	}
	if err := r.api.Put(ctx, "/cart/update", body, &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	if env.Data == nil {
		return nil, nil
	}
	row := env.Data.normalize()
	if row.CartID == "" && row.ItemNo == "" {
		return nil, nil
	}
	return &row, nil
}

func (r *repository) Delete(ctx context.Context, cartID string) error {
	var env apiclient.Envelope[any]
	if err := r.api.Delete(ctx, "/cart/"+url.PathEscape(cartID), &env); err != nil {
		return err
	}
	return env.Err()
}
