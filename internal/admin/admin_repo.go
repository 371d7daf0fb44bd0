package admin

import (
	"context"
	"net/http"
	"net/url"

	"go-jewel-storefront/internal/apiclient"
)

//go:generate mockgen -source=admin_repo.go -destination=../mock/admin/admin_repo_mock.go -package=mock
type Repository interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

func mapStatus(err error) error {
	switch apiclient.StatusOf(err) {
	case http.StatusNotFound:
		return ErrUserNotFound
	case http.StatusConflict:
		return ErrEmailTaken
	}
	return err
}

func (r *repository) List(ctx context.Context) ([]User, error) {
	var env apiclient.Envelope[[]rawUser]
	if err := r.api.Get(ctx, "/admin/users", &env); err != nil {
		return nil, err
	}
	if err := env.Err(); err != nil {
		return nil, err
	}
	out := make([]User, 0, len(env.Data))
	for _, raw := range env.Data {
		out = append(out, raw.normalize())
	}
	return out, nil
}

func (r *repository) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	var env apiclient.Envelope[rawUser]
	if err := r.api.Post(ctx, "/admin/users", req.body(), &env); err != nil {
		return User{}, mapStatus(err)
	}
	if err := env.Err(); err != nil {
		return User{}, err
	}
	return env.Data.normalize(), nil
}

func (r *repository) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	var env apiclient.Envelope[rawUser]
	if err := r.api.Put(ctx, "/admin/users/"+url.PathEscape(id), req.body(), &env); err != nil {
		return User{}, mapStatus(err)
	}
	if err := env.Err(); err != nil {
		return User{}, err
	}
	u := env.Data.normalize()
	if u.ID == "" {
		u.ID = id
	}
	return u, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	var env apiclient.Envelope[any]
	if err := r.api.Delete(ctx, "/admin/users/"+url.PathEscape(id), &env); err != nil {
		return mapStatus(err)
	}
	return env.Err()
}
