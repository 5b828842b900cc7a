package user

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// CreateUser registers an active user.
func (s *Service) CreateUser(ctx context.Context, input CreateUserInput) (domain.User, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}
	roleID, err := s.roleID(input.Role)
	if err != nil {
		return domain.User{}, err
	}

	var u domain.User
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		u, createErr = s.users.Create(txCtx, domain.User{
			Email:    strings.TrimSpace(input.Email),
			FullName: strings.TrimSpace(input.FullName),
			RoleID:   roleID,
			IsActive: true,
		})
		return createErr
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("create user: %w", err)
	}

	s.log.InfoContext(ctx, "user created",
		slog.Int64("user_id", u.ID),
		slog.String("role", string(input.Role)),
	)
	return u, nil
}

// GetUser returns one user.
func (s *Service) GetUser(ctx context.Context, id int64) (domain.User, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.User{}, domain.NewValidationError("user_id", "required")
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return domain.User{}, fmt.Errorf("get user: %w", err)
	}
	return u, nil
}

// ListUsers returns users ordered by id.
func (s *Service) ListUsers(ctx context.Context, input ListUsersInput) ([]domain.User, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.UserFilter{ActiveOnly: input.ActiveOnly, Limit: input.Limit, Offset: input.Offset}
	if f.Limit == 0 {
		f.Limit = defaultListLimit
	}
	if input.Role != nil {
		roleID, err := s.roleID(*input.Role)
		if err != nil {
			return nil, err
		}
		f.RoleID = &roleID
	}

	users, err := s.users.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}

// UpdateUser changes email, name or role.
func (s *Service) UpdateUser(ctx context.Context, input UpdateUserInput) (domain.User, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.User{}, err
	}

	params := domain.UserUpdateParams{}
	if input.Email != nil {
		email := strings.TrimSpace(*input.Email)
		params.Email = &email
	}
	if input.FullName != nil {
		name := strings.TrimSpace(*input.FullName)
		params.FullName = &name
	}
	if input.Role != nil {
		roleID, err := s.roleID(*input.Role)
		if err != nil {
			return domain.User{}, err
		}
		params.RoleID = &roleID
	}

	var u domain.User
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var updateErr error
		u, updateErr = s.users.Update(txCtx, input.UserID, params)
		return updateErr
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}

	s.log.InfoContext(ctx, "user updated", slog.Int64("user_id", u.ID))
	return u, nil
}

// DeactivateUser marks a user inactive. Deactivated users keep their history
// and ownership but cannot be assigned new defects. Deactivating an inactive
// user is a no-op.
func (s *Service) DeactivateUser(ctx context.Context, id int64) (domain.User, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.User{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.User{}, domain.NewValidationError("user_id", "required")
	}

	var (
		u       domain.User
		changed bool
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.users.GetByID(txCtx, id)
		if err != nil {
			return err
		}
		if !current.IsActive {
			u = current
			return nil
		}
		inactive := false
		u, err = s.users.Update(txCtx, id, domain.UserUpdateParams{IsActive: &inactive})
		changed = err == nil
		return err
	})
	if err != nil {
		return domain.User{}, fmt.Errorf("deactivate user: %w", err)
	}

	if changed {
		s.log.InfoContext(ctx, "user deactivated", slog.Int64("user_id", id))
	}
	return u, nil
}

// DeleteUser removes a user nothing references. Referenced users fail with
// domain.ErrReferenceInUse and should be deactivated instead.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("user_id", "required")
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.users.Delete(txCtx, id)
	}); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}

	s.log.InfoContext(ctx, "user deleted", slog.Int64("user_id", id))
	return nil
}
