// Package user manages the people who report, own and fix defects.
package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

type userRepo interface {
	Create(ctx context.Context, u domain.User) (domain.User, error)
	Update(ctx context.Context, id int64, p domain.UserUpdateParams) (domain.User, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.User, error)
	List(ctx context.Context, f domain.UserFilter) ([]domain.User, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Service provides user management operations.
type Service struct {
	users userRepo
	tx    txManager
	refs  *domain.ReferenceData
	log   *slog.Logger
}

// NewService creates a new User service.
func NewService(log *slog.Logger, users userRepo, tx txManager, refs *domain.ReferenceData) *Service {
	return &Service{
		users: users,
		tx:    tx,
		refs:  refs,
		log:   log.With("service", "user"),
	}
}

// roleID resolves a role name against the loaded reference data.
func (s *Service) roleID(name domain.RoleName) (int64, error) {
	id, ok := s.refs.RoleID(name)
	if !ok {
		return 0, domain.NewValidationError("role", "unknown role "+string(name))
	}
	return id, nil
}
