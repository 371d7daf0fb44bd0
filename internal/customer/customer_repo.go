package customer

import (
	"context"
	"net/http"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=customer_repo.go -destination=../mock/customer/customer_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]Customer, error)
	Create(ctx context.Context, req Request) (Customer, error)
	Update(ctx context.Context, id string, req Request) (Customer, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

// mapStatus turns the backend's 404/409 into this package's errors.
func mapStatus(err error) error {
	switch apiclient.StatusOf(err) {
	case http.StatusNotFound:
		return ErrCustomerNotFound
	case http.StatusConflict:
		return ErrEmailAlreadyUsed
	}
	return err
}

func (r *repository) List(ctx context.Context) ([]Customer, error) {
	var env apiclient.Envelope[[]rawCustomer]
	if err := r.api.Get(ctx, "/admin/customers", &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	out := make([]Customer, 0, len(env.Data))
	for _, raw := range env.Data {
		out = append(out, raw.normalize())
	}
	return out, nil
}

func (r *repository) Create(ctx context.Context, req Request) (Customer, error) {
	var env apiclient.Envelope[rawCustomer]
	if err := r.api.Post(ctx, "/admin/customers", req.body(), &env); err != nil {
		return Customer{}, mapStatus(err)
	}
	if err := env.Err(); err != nil {
		return Customer{}, err
	}
	return env.Data.normalize(), nil
}

func (r *repository) Update(ctx context.Context, id string, req Request) (Customer, error) {
	var env apiclient.Envelope[rawCustomer]
	if err := r.api.Put(ctx, "/admin/customers/"+url.PathEscape(id), req.body(), &env); err != nil {
		return Customer{}, mapStatus(err)
	}
	if err := env.Err(); err != nil {
		return Customer{}, err
	}
	c := env.Data.normalize()
	if c.ID == "" {
		c.ID = id
	}
	return c, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	var env apiclient.Envelope[any]
	if err := r.api.Delete(ctx, "/admin/customers/"+url.PathEscape(id), &env); err != nil {
		return mapStatus(err)
	}
	return env.Err()
}
