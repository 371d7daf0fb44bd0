package catalog

import (
	"context"
	"net/http"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=catalog_repo.go -destination=../mock/catalog/catalog_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context, q ListQuery) ([]Product, error)
	ByItemNo(ctx context.Context, itemNo string) (Product, error)
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func (r *repository) List(ctx context.Context, q ListQuery) ([]Product, error) {
	path := "/products"
	if v := q.values(); len(v) > 0 {
		path += "?" + v.Encode()
	}

	var env apiclient.Envelope[[]rawProduct]
	if err := r.api.Get(ctx, path, &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	out := make([]Product, 0, len(env.Data))
	for _, raw := range env.Data {
		out = append(out, raw.normalize())
	}
	return out, nil
}

func (r *repository) ByItemNo(ctx context.Context, itemNo string) (Product, error) {
	var env apiclient.Envelope[*rawProduct]
	err := r.api.Get(ctx, "/products/"+url.PathEscape(itemNo), &env)
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return Product{}, ErrProductNotFound
	}
	if err != nil {
		return Product{}, err
	}
	if err := env.Err(); err != nil {
		return Product{}, err
	}
	if env.Data == nil {
		return Product{}, ErrProductNotFound
	}
	p := env.Data.normalize()
	if p.ItemNo == "" {
		return Product{}, ErrProductNotFound
	}
	return p, nil
}
