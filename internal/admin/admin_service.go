package admin

import (
	"context"

	"go-jewel-storefront/internal/pkg/validation"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=admin_service.go -destination=../mock/admin/admin_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context) ([]User, error)
	Create(ctx context.Context, req CreateUserRequest) (User, error)
	// Update refuses to leave the back office without an active admin.
	Update(ctx context.Context, id string, req UpdateUserRequest) (User, error)
	// Delete refuses to remove actorID itself or the last admin.
	Delete(ctx context.Context, actorID, id string) error
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

func (s *service) List(ctx context.Context) ([]User, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("list users", zap.Error(err))
		return nil, err
	}
	return users, nil
}

func (s *service) Create(ctx context.Context, req CreateUserRequest) (User, error) {
	req = req.trimmed()
	if err := s.validate.Struct(req); err != nil {
		return User{}, MapValidationError(err)
	}
	u, err := s.repo.Create(ctx, req)
	if err != nil {
		s.logger.Warn("create user", zap.String("email", req.Email), zap.Error(err))
		return User{}, err
	}
	s.logger.Info("user created", zap.String("id", u.ID), zap.String("role", u.Role))
	return u, nil
}

// find returns the user with id and how many active admins there are.
func (s *service) find(ctx context.Context, id string) (User, int, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return User{}, 0, err
	}
	var (
		target User
		found  bool
		admins int
	)
	for _, u := range users {
		if u.Role == RoleAdmin && u.Active {
			admins++
		}
		if u.ID == id {
			target, found = u, true
		}
	}
	if !found {
		return User{}, admins, ErrUserNotFound
	}
	return target, admins, nil
}

func (s *service) Update(ctx context.Context, id string, req UpdateUserRequest) (User, error) {
	req = req.trimmed()
	if err := s.validate.Struct(req); err != nil {
		return User{}, MapValidationError(err)
	}

	current, admins, err := s.find(ctx, id)
	if err != nil {
		return User{}, err
	}
	losesAdmin := req.Role != RoleAdmin || (req.Active != nil && !*req.Active)
	if current.Role == RoleAdmin && current.Active && losesAdmin && admins <= 1 {
		return User{}, ErrLastAdmin
	}

	u, err := s.repo.Update(ctx, id, req)
	if err != nil {
		s.logger.Warn("update user", zap.String("id", id), zap.Error(err))
		return User{}, err
	}
	return u, nil
}

func (s *service) Delete(ctx context.Context, actorID, id string) error {
	if id != "" && id == actorID {
		return ErrSelfDelete
	}

	current, admins, err := s.find(ctx, id)
	if err != nil {
		return err
	}
	if current.Role == RoleAdmin && current.Active && admins <= 1 {
		return ErrLastAdmin
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		s.logger.Warn("delete user", zap.String("id", id), zap.Error(err))
		return err
	}
	s.logger.Info("user deleted", zap.String("id", id), zap.String("by", actorID))
	return nil
}
