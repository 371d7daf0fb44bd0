package inventory

import (
	"context"
	"io"
	"net/http"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/pricing"
)

// Backend is the client surface inventory needs: JSON, uploads and raw fetches.
type Backend interface {
	apiclient.API
	apiclient.Uploader
	apiclient.Fetcher
}

//go:generate mockgen -source=inventory_repo.go -destination=../mock/inventory/inventory_repo_mock.go -package=mock
type Repository interface {
	FetchByItemNo(ctx context.Context, itemNo string) (Record, error)
	Add(ctx context.Context, req AddRequest, priced pricing.Breakdown) error
	Delete(ctx context.Context, itemNo string) error

	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
	Image(ctx context.Context, id string) (Image, error)
	DeleteImage(ctx context.Context, id string) error
}

type repository struct {
	api Backend
}

func NewRepository(api Backend) Repository {
	return &repository{api: api}
}

func (r *repository) FetchByItemNo(ctx context.Context, itemNo string) (Record, error) {
	var env apiclient.Envelope[*rawRecord]
	err := r.api.Get(ctx, "/products/fetch-by-itemno/"+url.PathEscape(itemNo), &env)
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return Record{}, ErrItemNotFound
	}
	if err != nil {
		return Record{}, err
	}
	if !env.OK() || env.Data == nil {
		return Record{}, ErrItemNotFound
	}
	rec := env.Data.normalize()
	if rec.ItemNo == "" {
		rec.ItemNo = itemNo
	}
	return rec, nil
}

func (r *repository) Add(ctx context.Context, req AddRequest, priced pricing.Breakdown) error {
	var env apiclient.Envelope[any]
	err := r.api.Post(ctx, "/products/add-to-inventory", req.body(priced), &env)
	if apiclient.StatusOf(err) == http.StatusConflict {
		return ErrAlreadyListed
	}
	if err != nil {
		return err
	}
	return env.Err()
}

func (r *repository) Delete(ctx context.Context, itemNo string) error {
	var env apiclient.Envelope[any]
	err := r.api.Delete(ctx, "/products/"+url.PathEscape(itemNo), &env)
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return ErrItemNotFound
	}
	if err != nil {
		return err
	}
	return env.Err()
}

func (r *repository) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var env apiclient.Envelope[struct {
		URL string `json:"url"`
	}]
	if err := r.api.Upload(ctx, "/images/upload", "image", filename, file, &env); err != nil {
		return "", err
	}
	if err := env.Err(); err != nil {
		return "", err
	}
	return env.Data.URL, nil
}

func (r *repository) Image(ctx context.Context, id string) (Image, error) {
	raw, ct, err := r.api.Fetch(ctx, "/images/"+url.PathEscape(id))
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return Image{}, ErrImageNotFound
	}
	if err != nil {
		return Image{}, err
	}
	if ct == "" {
		ct = http.DetectContentType(raw)
	}
	return Image{Data: raw, ContentType: ct}, nil
}

func (r *repository) DeleteImage(ctx context.Context, id string) error {
	var env apiclient.Envelope[any]
	err := r.api.Delete(ctx, "/images/"+url.PathEscape(id), &env)
	if apiclient.StatusOf(err) == http.StatusNotFound {
		return ErrImageNotFound
	}
	if err != nil {
		return err
	}
	return env.Err()
}
