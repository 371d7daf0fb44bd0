package content

import (
	"context"
	"io"

	"go-jewel-storefront/internal/apiclient"
	"go-jewel-storefront/internal/cloudinary"
)

//go:generate mockgen -source=content_repo.go -destination=../mock/content/content_repo_mock.go -package=mock
type Repository interface {
	Get(ctx context.Context) (map[string]any, error)
	Put(ctx context.Context, doc map[string]any) error
	Upload(ctx context.Context, filename string, file io.Reader) (string, error)
}

type repository struct {
	api      apiclient.API
	uploader apiclient.Uploader
}

func NewRepository(api apiclient.API, uploader apiclient.Uploader) Repository {
	return &repository{api: api, uploader: uploader}
}

func (r *repository) Get(ctx context.Context) (map[string]any, error) {
	var env apiclient.Envelope[map[string]any]
	if err := r.api.Get(ctx, "/content", &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	return env.Data, nil
}

func (r *repository) Put(ctx context.Context, doc map[string]any) error {
	var env apiclient.Envelope[any]
	if err := r.api.Put(ctx, "/content", doc, &env); err != nil {
		return err
	}
	return env.Err()
}

func (r *repository) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	var env struct {
		apiclient.Envelope[struct {
			URL  string `json:"url"`
			Path string `json:"path"`
		}]
		URL string `json:"url"`
	}
	if err := r.uploader.Upload(ctx, "/content/upload", "file", filename, file, &env); err != nil {
		return "", err
	}
	if err := env.Err(); err != nil {
		return "", err
	}
	for _, u := range []string{env.Data.URL, env.Data.Path, env.URL} {
		if u != "" {
			return u, nil
		}
	}
	return "", ErrUploadFailed
}

// cloudinaryRepository stores uploads on Cloudinary and everything else on the backend.
type cloudinaryRepository struct {
	Repository
	cld cloudinary.Service
}

func WithCloudinary(r Repository, cld cloudinary.Service) Repository {
	return &cloudinaryRepository{Repository: r, cld: cld}
}

func (r *cloudinaryRepository) Upload(ctx context.Context, filename string, file io.Reader) (string, error) {
	return r.cld.UploadImage(ctx, file, filename)
}
