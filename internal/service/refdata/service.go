// Package refdata manages roles and defect statuses, the reference data the
// rest of the core resolves names against.
package refdata

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

type refRepo interface {
	CreateRole(ctx context.Context, name, description string) (domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
	DeleteRole(ctx context.Context, id int64) error
	CreateStatus(ctx context.Context, name, description string) (domain.DefectStatus, error)
	ListStatuses(ctx context.Context) ([]domain.DefectStatus, error)
	DeleteStatus(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Service provides reference data operations.
type Service struct {
	repo refRepo
	tx   txManager
	log  *slog.Logger
}

// NewService creates a new reference data service.
func NewService(log *slog.Logger, repo refRepo, tx txManager) *Service {
	return &Service{
		repo: repo,
		tx:   tx,
		log:  log.With("service", "refdata"),
	}
}

// Load reads roles and statuses and builds the name lookup shared by the
// other services. It fails when a predefined row is missing.
func (s *Service) Load(ctx context.Context) (*domain.ReferenceData, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return domain.NewReferenceData(roles, statuses)
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// CreateRole adds a role.
func (s *Service) CreateRole(ctx context.Context, input CreateInput) (domain.Role, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Role{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Role{}, err
	}

	var role domain.Role
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		role, err = s.repo.CreateRole(txCtx, strings.TrimSpace(input.Name), strings.TrimSpace(input.Description))
		return err
	})
	if err != nil {
		return domain.Role{}, fmt.Errorf("create role: %w", err)
	}

	s.log.InfoContext(ctx, "role created", slog.Int64("role_id", role.ID), slog.String("name", string(role.Name)))
	return role, nil
}

// ListRoles returns every role ordered by id.
func (s *Service) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roles: %w", err)
	}
	return roles, nil
}

// DeleteRole removes a role nobody holds. Predefined roles stay.
func (s *Service) DeleteRole(ctx context.Context, id int64) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	roles, err := s.repo.ListRoles(ctx)
	if err != nil {
		return fmt.Errorf("list roles: %w", err)
	}
	for _, r := range roles {
		if r.ID == id && r.Name.IsPredefined() {
			return domain.NewEntityError(domain.EntityTypeRole, id, "name", domain.ErrReferenceInUse)
		}
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteRole(txCtx, id)
	}); err != nil {
		return fmt.Errorf("delete role: %w", err)
	}

	s.log.InfoContext(ctx, "role deleted", slog.Int64("role_id", id))
	return nil
}

// ---------------------------------------------------------------------------
// Statuses
// ---------------------------------------------------------------------------

// CreateStatus adds a defect status. Custom statuses are not part of the
// lifecycle; defects only reach them through a privileged data fix.
func (s *Service) CreateStatus(ctx context.Context, input CreateInput) (domain.DefectStatus, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.DefectStatus{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.DefectStatus{}, err
	}

	var status domain.DefectStatus
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		status, err = s.repo.CreateStatus(txCtx, strings.TrimSpace(input.Name), strings.TrimSpace(input.Description))
		return err
	})
	if err != nil {
		return domain.DefectStatus{}, fmt.Errorf("create status: %w", err)
	}

	s.log.InfoContext(ctx, "status created", slog.Int64("status_id", status.ID), slog.String("name", string(status.Name)))
	return status, nil
}

// ListStatuses returns every status ordered by id.
func (s *Service) ListStatuses(ctx context.Context) ([]domain.DefectStatus, error) {
	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return nil, fmt.Errorf("list statuses: %w", err)
	}
	return statuses, nil
}

// DeleteStatus removes a status no defect uses. Predefined statuses drive the
// lifecycle and stay.
func (s *Service) DeleteStatus(ctx context.Context, id int64) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("id", "required")
	}

	statuses, err := s.repo.ListStatuses(ctx)
	if err != nil {
		return fmt.Errorf("list statuses: %w", err)
	}
	for _, st := range statuses {
		if st.ID == id && st.Name.IsPredefined() {
			return domain.NewEntityError(domain.EntityTypeDefectStatus, id, "name", domain.ErrReferenceInUse)
		}
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.repo.DeleteStatus(txCtx, id)
	}); err != nil {
		return fmt.Errorf("delete status: %w", err)
	}

	s.log.InfoContext(ctx, "status deleted", slog.Int64("status_id", id))
	return nil
}
