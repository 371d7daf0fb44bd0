package address

import (
	"context"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=address_repo.go -destination=../mock/address/address_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, custID string) ([]Address, error)
	Create(ctx context.Context, custID string, req Request) (*Address, error)
	Update(ctx context.Context, custID, id string, req Request) (*Address, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, custID string) ([]Address, error) {
	var env apiclient.Envelope[[]rawAddress]
	if err := r.api.Get(ctx, "/addresses?custId="+url.QueryEscape(custID), &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	out := make([]Address, 0, len(env.Data))
	for _, raw := range env.Data {
		out = append(out, raw.normalize())
	}
	return out, nil
}

func rowOf(env apiclient.Envelope[*rawAddress]) *Address {
	if env.Data == nil {
		return nil
	}
	a := env.Data.normalize()
	if a.ID == "" {
		return nil
	}
	return &a
}

func (r *repository) Create(ctx context.Context, custID string, req Request) (*Address, error) {
	var env apiclient.Envelope[*rawAddress]
	if err := r.api.Post(ctx, "/addresses", req.body(custID), &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return rowOf(env), nil
}

func (r *repository) Update(ctx context.Context, custID, id string, req Request) (*Address, error) {
	var env apiclient.Envelope[*rawAddress]
	if err := r.api.Put(ctx, "/addresses/"+url.PathEscape(id), req.body(custID), &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return rowOf(env), nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	var env apiclient.Envelope[any]
	if err := r.api.Delete(ctx, "/addresses/"+url.PathEscape(id), &env); err != nil {
		return err
	}
	return env.Err()
}
