package auth

import (
	"context"

	"go-jewel-storefront/internal/apiclient"
	autherrors "go-jewel-storefront/internal/auth/errors"
	"go-jewel-storefront/internal/session"
)

//go:generate mockgen -source=auth_repo.go -destination=../mock/auth/auth_repo_mock.go -package=mock
type Repository interface {
	Me(ctx context.Context) (session.User, error)
	Login(ctx context.Context, kind Kind, req LoginRequest) (token string, user session.User, err error)
	Register(ctx context.Context, req RegisterRequest) (string, error)
	VerifyOTP(ctx context.Context, req VerifyOTPRequest) (token string, user session.User, err error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error)
}

type repository struct {
	api apiclient.API
}

func NewRepository(api apiclient.API) Repository {
	return &repository{api: api}
}

var loginPaths = map[Kind]string{
	KindCustomer: "/auth/customer/login",
	KindStaff:    "/auth/login",
}

func (r *repository) Me(ctx context.Context) (session.User, error) {
	var env struct {
		apiclient.Envelope[rawUser]
		User rawUser `json:"user"`
	}
	if err := r.api.Get(ctx, "/auth/me", &env); err != nil {
		return session.User{}, err
	}
	if err := env.Err(); err != nil {
		return session.User{}, err
	}
	u := env.Data.normalize()
	if u.ID == "" && u.CustID == "" {
		u = env.User.normalize()
	}
	return u, nil
}

func (r *repository) Login(ctx context.Context, kind Kind, req LoginRequest) (string, session.User, error) {
	path, ok := loginPaths[kind]
	if !ok {
		return "", session.User{}, autherrors.ErrUnknownLoginKind
	}

	var res loginResponse
	if err := r.api.Post(ctx, path, req, &res); err != nil {
		return "", session.User{}, err
	}
	if !res.ok() {
		if res.Message != "" {
			return "", session.User{}, autherrors.ErrInvalidCredentials.WithMessage(res.Message)
		}
		return "", session.User{}, autherrors.ErrInvalidCredentials
	}
	token, user := res.session()
	return token, user, nil
}

func (r *repository) Register(ctx context.Context, req RegisterRequest) (string, error) {
	var env apiclient.Envelope[any]
	if err := r.api.Post(ctx, "/auth/customer/register", req, &env); err != nil {
		return "", err
	}
	return env.Message, env.Err()
}

func (r *repository) VerifyOTP(ctx context.Context, req VerifyOTPRequest) (string, session.User, error) {
	var res loginResponse
	if err := r.api.Post(ctx, "/auth/customer/verify-otp", req, &res); err != nil {
		return "", session.User{}, err
	}
	if !res.ok() {
		if res.Message != "" {
			return "", session.User{}, autherrors.ErrOTPInvalid.WithMessage(res.Message)
		}
		return "", session.User{}, autherrors.ErrOTPInvalid
	}
	token, user := res.session()
	return token, user, nil
}

func (r *repository) ForgotPassword(ctx context.Context, email string) (string, error) {
	var env apiclient.Envelope[any]
	if err := r.api.Post(ctx, "/auth/forgot-password", map[string]string{"email": email}, &env); err != nil {
		return "", err
	}
	return env.Message, env.Err()
}

func (r *repository) ResetPassword(ctx context.Context, req ResetPasswordRequest) (string, error) {
	var env apiclient.Envelope[any]
	if err := r.api.Post(ctx, "/auth/reset-password", req, &env); err != nil {
		return "", err
	}
	if !env.OK() {
		if env.Message != "" {
			return "", autherrors.ErrResetTokenInvalid.WithMessage(env.Message)
		}
		return "", autherrors.ErrResetTokenInvalid
	}
	return env.Message, nil
}
