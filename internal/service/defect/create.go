package defect

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// CreateDefect reports a new defect in status New. The caller becomes the
// reporter. The CREATED entry commits together with the row.
func (s *Service) CreateDefect(ctx context.Context, input CreateDefectInput) (domain.Defect, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Defect{}, domain.ErrUnauthorized
	}
	if err := input.Validate(); err != nil {
		return domain.Defect{}, err
	}

	priority := input.Priority
	if priority == "" {
		priority = domain.PriorityMedium
	}
	statusID, err := s.statusID(domain.InitialStatus)
	if err != nil {
		return domain.Defect{}, err
	}

	var (
		d       domain.Defect
		created domain.DefectCreated
	)
	err = s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.checkAssignee(txCtx, 0, input.AssigneeID); err != nil {
			return err
		}

		var err error
		d, err = s.defects.Create(txCtx, domain.Defect{
			ProjectID:   input.ProjectID,
			StageID:     input.StageID,
			Title:       strings.TrimSpace(input.Title),
			Description: trimOrNil(input.Description),
			Priority:    priority,
			StatusID:    statusID,
			ReporterID:  actor.UserID,
			AssigneeID:  input.AssigneeID,
			DueDate:     calendarDate(input.DueDate),
		})
		if err != nil {
			return err
		}

		created = domain.DefectCreated{
			Title:      d.Title,
			Status:     d.Status,
			Priority:   d.Priority,
			ProjectID:  d.ProjectID,
			StageID:    d.StageID,
			AssigneeID: d.AssigneeID,
		}
		_, err = s.history.Record(txCtx, d.ID, actor.UserID, created)
		return err
	})
	s.observe(opCreate, created, err)
	if err != nil {
		return domain.Defect{}, fmt.Errorf("%s: %w", opCreate, err)
	}

	s.log.InfoContext(ctx, "defect created",
		slog.Int64("defect_id", d.ID),
		slog.Int64("project_id", d.ProjectID),
		slog.Int64("actor_id", actor.UserID),
	)
	return d, nil
}
