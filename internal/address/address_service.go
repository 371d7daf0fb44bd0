package address

import (
	"context"

	"go-jewel-storefront/internal/pkg/apperror"
	"go-jewel-storefront/internal/pkg/notify"
	"go-jewel-storefront/internal/pkg/validation"
	"go-jewel-storefront/internal/session"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

type Result struct {
	Addresses []Address `json:"addresses"`
	Default   *Address  `json:"default,omitempty"`

	Notices notify.List `json:"-"`
}

func newResult(list []Address) Result {
	if list == nil {
		list = []Address{}
	}
	res := Result{Addresses: list}
	for i := range list {
		if list[i].IsDefault {
			res.Default = &list[i]
			break
		}
	}
	return res
}

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, local *session.Local) (Result, error)
	Create(ctx context.Context, local *session.Local, req Request) (Result, error)
	Update(ctx context.Context, local *session.Local, id string, req Request) (Result, error)
	Delete(ctx context.Context, local *session.Local, id string) (Result, error)
	// SetDefault marks id as the default; the backend unsets the others.
	SetDefault(ctx context.Context, local *session.Local, id string) (Result, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
	logger   *zap.Logger
}

func NewService(repo Repository, logger *zap.Logger) Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{repo: repo, validate: validation.New(), logger: logger}
}

func custID(ctx context.Context, local *session.Local) (string, error) {
	if local == nil {
		return "", apperror.ErrSessionRequired
	}
	creds, ok := local.Credentials(ctx)
	if !ok {
		return "", apperror.ErrSessionRequired
	}
	return creds.CustID, nil
}

func failWith(res Result, err error) (Result, error) {
	res.Notices.Error(notify.CategoryFailure, apperror.ToHTTP(err).Message)
	return res, err
}

func (s *service) refreshed(ctx context.Context, id string, category notify.Category, message string) (Result, error) {
	list, err := s.repo.List(ctx, id)
	if err != nil {
		s.logger.Warn("refetch addresses", zap.String("cust_id", id), zap.Error(err))
		return failWith(newResult(nil), err)
	}
	res := newResult(list)
	res.Notices.Success(category, message)
	return res, nil
}

func (s *service) List(ctx context.Context, local *session.Local) (Result, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	list, err := s.repo.List(ctx, id)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	return newResult(list), nil
}

func (s *service) check(req Request) (Request, error) {
	req = req.trimmed()
	if err := s.validate.Struct(req); err != nil {
		return req, MapValidationError(err)
	}
	return req, nil
}

func (s *service) Create(ctx context.Context, local *session.Local, req Request) (Result, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	req, err = s.check(req)
	if err != nil {
		res := newResult(nil)
		res.Notices.Error(notify.CategoryValidation, apperror.ToHTTP(err).Message)
		return res, err
	}

	if _, err := s.repo.Create(ctx, id, req); err != nil {
		s.logger.Warn("create address", zap.String("cust_id", id), zap.Error(err))
		return failWith(newResult(nil), err)
	}
	return s.refreshed(ctx, id, notify.CategoryAdded, "Address saved")
}

func (s *service) Update(ctx context.Context, local *session.Local, addrID string, req Request) (Result, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	req, err = s.check(req)
	if err != nil {
		res := newResult(nil)
		res.Notices.Error(notify.CategoryValidation, apperror.ToHTTP(err).Message)
		return res, err
	}

	if _, err := s.repo.Update(ctx, id, addrID, req); err != nil {
		s.logger.Warn("update address", zap.String("address_id", addrID), zap.Error(err))
		return failWith(newResult(nil), err)
	}
	return s.refreshed(ctx, id, notify.CategoryUpdated, "Address updated")
}

func (s *service) Delete(ctx context.Context, local *session.Local, addrID string) (Result, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	if err := s.repo.Delete(ctx, addrID); err != nil {
		s.logger.Warn("delete address", zap.String("address_id", addrID), zap.Error(err))
		return failWith(newResult(nil), err)
	}

	list, err := s.repo.List(ctx, id)
	if err != nil {
		return failWith(newResult(nil), err)
	}
	res := newResult(list)
	res.Notices.Info(notify.CategoryRemoved, "Address removed")
	return res, nil
}

func (s *service) SetDefault(ctx context.Context, local *session.Local, addrID string) (Result, error) {
	id, err := custID(ctx, local)
	if err != nil {
		return failWith(newResult(nil), err)
	}

	list, err := s.repo.List(ctx, id)
	if err != nil {
		return failWith(newResult(nil), err)
	}

	var target *Address
	for i := range list {
		if list[i].ID == addrID {
			target = &list[i]
			break
		}
	}
	if target == nil {
		return failWith(newResult(list), ErrAddressNotFound)
	}
	if target.IsDefault {
		return newResult(list), nil
	}

	req := target.request()
	req.IsDefault = true
	if _, err := s.repo.Update(ctx, id, addrID, req); err != nil {
		s.logger.Warn("set default address", zap.String("address_id", addrID), zap.Error(err))
		return failWith(newResult(list), err)
	}
	return s.refreshed(ctx, id, notify.CategoryUpdated, "Default address updated")
}
