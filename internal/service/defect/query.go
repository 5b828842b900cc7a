package defect

import (
	"context"
	"fmt"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// GetDefect returns one defect with its resolved status name.
func (s *Service) GetDefect(ctx context.Context, id int64) (domain.Defect, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Defect{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.Defect{}, domain.NewValidationError("defect_id", "required")
	}

	d, err := s.defects.GetByID(ctx, id)
	if err != nil {
		return domain.Defect{}, fmt.Errorf("get defect: %w", err)
	}
	return d, nil
}

// ListDefects returns defects ordered by id.
func (s *Service) ListDefects(ctx context.Context, input ListDefectsInput) ([]domain.Defect, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return nil, err
	}

	f := domain.DefectFilter{
		ProjectID:  input.ProjectID,
		StageID:    input.StageID,
		Status:     input.Status,
		AssigneeID: input.AssigneeID,
		Limit:      input.Limit,
		Offset:     input.Offset,
	}
	if f.Limit == 0 {
		f.Limit = defaultListLimit
	}

	defects, err := s.defects.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list defects: %w", err)
	}
	return defects, nil
}
