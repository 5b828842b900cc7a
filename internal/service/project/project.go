package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// CreateProject creates a project under an existing manager.
func (s *Service) CreateProject(ctx context.Context, input CreateProjectInput) (domain.Project, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Project{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Project{}, err
	}

	var p domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		p, createErr = s.projects.Create(txCtx, domain.Project{
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			ManagerID:   input.ManagerID,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		})
		return createErr
	})
	if err != nil {
		return domain.Project{}, fmt.Errorf("create project: %w", err)
	}

	s.log.InfoContext(ctx, "project created",
		slog.Int64("project_id", p.ID),
		slog.Int64("manager_id", p.ManagerID),
	)
	return p, nil
}

// GetProject returns one project.
func (s *Service) GetProject(ctx context.Context, id int64) (domain.Project, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Project{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.Project{}, domain.NewValidationError("project_id", "required")
	}

	p, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return domain.Project{}, fmt.Errorf("get project: %w", err)
	}
	return p, nil
}

// ListProjects returns projects ordered by id.
func (s *Service) ListProjects(ctx context.Context, input ListProjectsInput) ([]domain.Project, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	limit := input.Limit
	if limit == 0 {
		limit = defaultListLimit
	}

	projects, err := s.projects.List(ctx, input.ManagerID, limit, input.Offset)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}
	return projects, nil
}

// UpdateProject applies a partial update. Date bounds are checked against the
// stored values of the fields left untouched.
func (s *Service) UpdateProject(ctx context.Context, input UpdateProjectInput) (domain.Project, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Project{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Project{}, err
	}

	var name *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}
	params := domain.ProjectUpdateParams{
		Name:        name,
		Description: trimPtr(input.Description),
		ManagerID:   input.ManagerID,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	var p domain.Project
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if params.StartDate != nil || params.EndDate != nil {
			current, err := s.projects.GetByID(txCtx, input.ProjectID)
			if err != nil {
				return err
			}
			if err := checkDates(pick(params.StartDate, current.StartDate), pick(params.EndDate, current.EndDate)); err != nil {
				return err
			}
		}

		var updateErr error
		p, updateErr = s.projects.Update(txCtx, input.ProjectID, params)
		return updateErr
	})
	if err != nil {
		return domain.Project{}, fmt.Errorf("update project: %w", err)
	}

	s.log.InfoContext(ctx, "project updated", slog.Int64("project_id", p.ID))
	return p, nil
}

// DeleteProject removes a project together with its stages. Projects that
// still own defects fail with domain.ErrReferenceInUse.
func (s *Service) DeleteProject(ctx context.Context, id int64) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("project_id", "required")
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.projects.Delete(txCtx, id)
	}); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}

	s.log.InfoContext(ctx, "project deleted", slog.Int64("project_id", id))
	return nil
}
