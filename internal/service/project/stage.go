package project

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// CreateStage adds a stage to a project.
func (s *Service) CreateStage(ctx context.Context, input CreateStageInput) (domain.ProjectStage, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ProjectStage{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ProjectStage{}, err
	}

	var st domain.ProjectStage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var createErr error
		st, createErr = s.projects.CreateStage(txCtx, domain.ProjectStage{
			ProjectID:   input.ProjectID,
			Name:        strings.TrimSpace(input.Name),
			Description: trimOrNil(input.Description),
			Position:    input.Position,
			StartDate:   input.StartDate,
			EndDate:     input.EndDate,
		})
		return createErr
	})
	if err != nil {
		return domain.ProjectStage{}, fmt.Errorf("create stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage created",
		slog.Int64("project_id", st.ProjectID),
		slog.Int64("stage_id", st.ID),
	)
	return st, nil
}

// ListStages returns the stages of a project ordered by position. An unknown
// project yields domain.ErrNotFound rather than an empty list.
func (s *Service) ListStages(ctx context.Context, projectID int64) ([]domain.ProjectStage, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if projectID <= 0 {
		return nil, domain.NewValidationError("project_id", "required")
	}

	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, fmt.Errorf("get project: %w", err)
	}
	stages, err := s.projects.ListStages(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list stages: %w", err)
	}
	return stages, nil
}

// UpdateStage applies a partial update to a stage.
func (s *Service) UpdateStage(ctx context.Context, input UpdateStageInput) (domain.ProjectStage, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ProjectStage{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.ProjectStage{}, err
	}

	var name *string
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		name = &trimmed
	}
	params := domain.StageUpdateParams{
		Name:        name,
		Description: trimPtr(input.Description),
		Position:    input.Position,
		StartDate:   input.StartDate,
		EndDate:     input.EndDate,
	}

	var st domain.ProjectStage
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if params.StartDate != nil || params.EndDate != nil {
			current, err := s.projects.GetStage(txCtx, input.StageID)
			if err != nil {
				return err
			}
			if err := checkDates(pick(params.StartDate, current.StartDate), pick(params.EndDate, current.EndDate)); err != nil {
				return err
			}
		}

		var updateErr error
		st, updateErr = s.projects.UpdateStage(txCtx, input.StageID, params)
		return updateErr
	})
	if err != nil {
		return domain.ProjectStage{}, fmt.Errorf("update stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage updated", slog.Int64("stage_id", st.ID))
	return st, nil
}

// DeleteStage removes a stage no defect points at.
func (s *Service) DeleteStage(ctx context.Context, id int64) error {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("stage_id", "required")
	}

	if err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		return s.projects.DeleteStage(txCtx, id)
	}); err != nil {
		return fmt.Errorf("delete stage: %w", err)
	}

	s.log.InfoContext(ctx, "stage deleted", slog.Int64("stage_id", id))
	return nil
}
