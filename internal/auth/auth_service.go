package auth

import (
	"context"
	"errors"
	"net/http"
	"time"

	autherrors "go-jewel-storefront/internal/auth/errors"
	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/session"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

//go:generate mockgen -source=auth_service.go -destination=../mock/auth/auth_service_mock.go -package=mock
type Service interface {
	// Restore reads the persisted user and refreshes it from the backend.
	Restore(ctx context.Context, local *session.Local) (State, error)
	Login(ctx context.Context, local *session.Local, kind Kind, req LoginRequest) (State, error)
	Logout(ctx context.Context, local *session.Local) (State, error)

	Register(ctx context.Context, req RegisterRequest) (ActionStatusResponse, error)
	VerifyOTP(ctx context.Context, local *session.Local, req VerifyOTPRequest) (State, error)
	ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (ActionStatusResponse, error)
	ResetPassword(ctx context.Context, req ResetPasswordRequest) (ActionStatusResponse, error)
}

type service struct {
	repo   Repository
	logger *zap.Logger
	now    func() time.Time
}

type Option func(*service)

func WithClock(now func() time.Time) Option {
	return func(s *service) { s.now = now }
}

func NewService(repo Repository, logger *zap.Logger, opts ...Option) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &service{repo: repo, logger: logger, now: time.Now}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// tokenExpired peeks at the exp claim without verifying the signature; the
// backend owns the key. Tokens that are not JWTs never expire here.
func tokenExpired(token string, now time.Time) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return !now.Before(exp.Time)
}

func (s *service) Restore(ctx context.Context, local *session.Local) (State, error) {
	if local == nil {
		return stateOf(nil), nil
	}

	token := local.Token(ctx)
	if token == "" {
		return stateOf(nil), nil
	}

	if tokenExpired(token, s.now()) {
		if err := local.ClearSession(ctx); err != nil {
			s.logger.Warn("clear expired session", zap.Error(err))
		}
		st := stateOf(nil)
		st.Notices.Error(notify.CategoryAuth, autherrors.ErrTokenExpired.Message)
		return st, autherrors.ErrTokenExpired
	}

	persisted, hasUser, err := session.Load(ctx, local, session.UserKey)
	if err != nil {
		s.logger.Warn("read persisted user", zap.Error(err))
	}

	me, err := s.repo.Me(ctx)
	if errors.Is(err, apperror.ErrSessionExpired) {
		return stateOf(nil), err
	}
	if err != nil {
		s.logger.Warn("refresh user, keeping persisted", zap.Error(err))
		if !hasUser {
			return stateOf(nil), nil
		}
		st := stateOf(&persisted)
		st.Stale = true
		return st, nil
	}

	me = mergeUser(me, persisted)
	if err := local.SaveSession(ctx, token, me); err != nil {
		s.logger.Warn("persist refreshed user", zap.Error(err))
	}
	return stateOf(&me), nil
}

// mergeUser fills fields /auth/me left out from what was persisted at login.
func mergeUser(fresh, persisted session.User) session.User {
	if fresh.ID == "" {
		fresh.ID = persisted.ID
	}
	if fresh.CustID == "" {
		fresh.CustID = persisted.CustID
	}
	if fresh.Name == "" {
		fresh.Name = persisted.Name
	}
	if fresh.Email == "" {
		fresh.Email = persisted.Email
	}
	if fresh.Phone == "" {
		fresh.Phone = persisted.Phone
	}
	if fresh.Role == "" {
		fresh.Role = persisted.Role
	}
	return fresh
}

func defaultRole(kind Kind) string {
	if kind == KindStaff {
		return "staff"
	}
	return "customer"
}

func (s *service) establish(ctx context.Context, local *session.Local, kind Kind, token string, user session.User) (State, error) {
	if token == "" {
		return stateOf(nil), autherrors.ErrLoginFailed
	}
	if user.Role == "" {
		user.Role = defaultRole(kind)
	}
	if kind == KindCustomer && user.CustID == "" {
		user.CustID = user.ID
	}
	if err := local.SaveSession(ctx, token, user); err != nil {
		return stateOf(nil), apperror.Wrap(err, apperror.CodeInternalError, "Could not save your session", http.StatusInternalServerError)
	}
	return stateOf(&user), nil
}

func (s *service) Login(ctx context.Context, local *session.Local, kind Kind, req LoginRequest) (State, error) {
	logger := s.logger.With(zap.String("kind", string(kind)))

	token, user, err := s.repo.Login(ctx, kind, req)
	if errors.Is(err, apperror.ErrSessionExpired) {
		// the login endpoint answers 401 for bad credentials
		err = autherrors.ErrInvalidCredentials
	}
	if err != nil {
		logger.Info("login rejected", zap.Error(err))
		st := stateOf(nil)
		st.Notices.Error(notify.CategoryAuth, apperror.ToHTTP(err).Message)
		return st, err
	}

	st, err := s.establish(ctx, local, kind, token, user)
	if err != nil {
		logger.Error("establish session", zap.Error(err))
		st.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return st, err
	}

	name := user.Name
	if name == "" {
		name = user.Email
	}
	st.Notices.Success(notify.CategoryAuth, "Welcome back, "+name)
	logger.Info("login", zap.String("cust_id", st.User.CustID), zap.String("role", st.User.Role))
	return st, nil
}

func (s *service) Logout(ctx context.Context, local *session.Local) (State, error) {
	st := stateOf(nil)
	if local == nil {
		return st, nil
	}
	if err := local.ClearSession(ctx); err != nil {
		s.logger.Warn("clear session", zap.Error(err))
		return st, err
	}
	st.Notices.Info(notify.CategoryAuth, "You have been logged out")
	return st, nil
}

func (s *service) Register(ctx context.Context, req RegisterRequest) (ActionStatusResponse, error) {
	msg, err := s.repo.Register(ctx, req)
	if err != nil {
		s.logger.Info("register rejected", zap.String("email", req.Email), zap.Error(err))
		res := ActionStatusResponse{}
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}
	if msg == "" {
		msg = "We sent a verification code to " + req.Email
	}
	res := ActionStatusResponse{Success: true, Message: msg}
	res.Notices.Success(notify.CategoryAuth, msg)
	return res, nil
}

func (s *service) VerifyOTP(ctx context.Context, local *session.Local, req VerifyOTPRequest) (State, error) {
	token, user, err := s.repo.VerifyOTP(ctx, req)
	if err != nil {
		st := stateOf(nil)
		st.Notices.Error(notify.CategoryValidation, apperror.ToHTTP(err).Message)
		return st, err
	}
	if token == "" {
		// verified, but the backend wants a fresh login
		st := stateOf(nil)
		st.Notices.Success(notify.CategoryAuth, "Account verified. Please login")
		return st, nil
	}

	st, err := s.establish(ctx, local, KindCustomer, token, user)
	if err != nil {
		st.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return st, err
	}
	st.Notices.Success(notify.CategoryAuth, "Account verified")
	return st, nil
}

func (s *service) ForgotPassword(ctx context.Context, req ForgotPasswordRequest) (ActionStatusResponse, error) {
	msg, err := s.repo.ForgotPassword(ctx, req.Email)
	if err != nil {
		res := ActionStatusResponse{}
		res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
		return res, err
	}
	if msg == "" {
		msg = "If that email is registered, a reset link is on its way"
	}
	res := ActionStatusResponse{Success: true, Message: msg}
	res.Notices.Info(notify.CategoryAuth, msg)
	return res, nil
}

func (s *service) ResetPassword(ctx context.Context, req ResetPasswordRequest) (ActionStatusResponse, error) {
	msg, err := s.repo.ResetPassword(ctx, req)
	if err != nil {
		res := ActionStatusResponse{}
		res.Notices.Error(notify.CategoryAuth, apperror.ToHTTP(err).Message)
		return res, err
	}
	if msg == "" {
		msg = "Password has been reset successfully."
	}
	res := ActionStatusResponse{Success: true, Message: msg}
	res.Notices.Success(notify.CategoryAuth, msg)
	return res, nil
}
