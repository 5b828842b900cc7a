// Package project manages projects and their ordered stages.
package project

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

type projectRepo interface {
	Create(ctx context.Context, p domain.Project) (domain.Project, error)
	GetByID(ctx context.Context, id int64) (domain.Project, error)
	List(ctx context.Context, managerID *int64, limit, offset int) ([]domain.Project, error)
	Update(ctx context.Context, id int64, p domain.ProjectUpdateParams) (domain.Project, error)
	Delete(ctx context.Context, id int64) error

	CreateStage(ctx context.Context, s domain.ProjectStage) (domain.ProjectStage, error)
	GetStage(ctx context.Context, id int64) (domain.ProjectStage, error)
	ListStages(ctx context.Context, projectID int64) ([]domain.ProjectStage, error)
	UpdateStage(ctx context.Context, id int64, p domain.StageUpdateParams) (domain.ProjectStage, error)
	DeleteStage(ctx context.Context, id int64) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Service provides project and stage operations.
type Service struct {
	projects projectRepo
	tx       txManager
	log      *slog.Logger
}

// NewService creates a new Project service.
func NewService(log *slog.Logger, projects projectRepo, tx txManager) *Service {
	return &Service{
		projects: projects,
		tx:       tx,
		log:      log.With("service", "project"),
	}
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// trimPtr trims whitespace but keeps an empty result, which clears the column.
func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	return &trimmed
}

// checkDates rejects an end date before the start date once partial updates
// are merged with the stored values.
func checkDates(start, end *time.Time) error {
	if start != nil && end != nil && end.Before(*start) {
		return domain.NewValidationError("end_date", "must not be before start_date")
	}
	return nil
}

func pick(update, current *time.Time) *time.Time {
	if update != nil {
		return update
	}
	return current
}
