package customer

import (
	"context"

	"go-jewel-storefront/internal/pkg/response"
	"go-jewel-storefront/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=customer_service.go -destination=../mock/customer/customer_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, q ListQuery) ([]Customer, response.Pagination, error)
	Create(ctx context.Context, req Request) (Customer, error)
	Update(ctx context.Context, id string, req Request) (Customer, error)
	Delete(ctx context.Context, id string) error
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
	return &service{
		repo:     repo,
		validate: validation.New(),
		logger:   logger,
	}
}

func (s *service) List(ctx context.Context, q ListQuery) ([]Customer, response.Pagination, error) {
	q = q.normalized()

	all, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("list customers", zap.Error(err))
		return nil, response.Pagination{}, err
	}

	matched := make([]Customer, 0, len(all))
	for _, c := range all {
		if c.matches(q.Search) {
			matched = append(matched, c)
		}
	}

	meta := response.NewPaginationMeta(int64(len(matched)), q.Page, q.Limit)
	start := (q.Page - 1) * q.Limit
	if start >= len(matched) {
		return []Customer{}, meta, nil
	}
	end := start + q.Limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], meta, nil
}

func (s *service) check(req Request) (Request, error) {
	req = req.trimmed()
	if err := s.validate.Struct(req); err != nil {
		return req, MapValidationError(err)
	}
	return req, nil
}

func (s *service) Create(ctx context.Context, req Request) (Customer, error) {
	req, err := s.check(req)
	if err != nil {
		return Customer{}, err
	}
	c, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Warn("create customer", zap.String("email", req.Email), zap.Error(err))
		return Customer{}, err
	}
	s.logger.Info("customer created", zap.String("id", c.ID))
	return c, nil
}

func (s *service) Update(ctx context.Context, id string, req Request) (Customer, error) {
	if id == "" {
		return Customer{}, ErrCustomerNotFound
	}
	req, err := s.check(req)
	if err != nil {
		return Customer{}, err
	}
	c, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Warn("update customer", zap.String("id", id), zap.Error(err))
		return Customer{}, err
	}
	return c, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if id == "" {
		return ErrCustomerNotFound
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete customer", zap.String("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("customer deleted", zap.String("id", id))
	return nil
}
