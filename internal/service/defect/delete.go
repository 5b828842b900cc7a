package defect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

// DeleteDefect removes a defect. Live attachments are soft-deleted, comments
// go with the row and the history stays, closed by a DELETED entry.
func (s *Service) DeleteDefect(ctx context.Context, defectID int64) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if defectID <= 0 {
		return domain.NewValidationError("defect_id", "required")
	}

	var (
		detached int64
		change   domain.DefectDeleted
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		d, err := s.defects.GetForUpdate(txCtx, defectID)
		if err != nil {
			return err
		}
		if detached, err = s.attachments.SoftDeleteByDefect(txCtx, d.ID); err != nil {
			return err
		}

		// The entry is written while the row still exists.
		change = domain.DefectDeleted{Title: d.Title, Status: d.Status, Priority: d.Priority, ProjectID: d.ProjectID}
		if _, err := s.history.Record(txCtx, d.ID, actor.UserID, change); err != nil {
			return err
		}
		return s.defects.Delete(txCtx, d.ID)
	})
	s.observe(opDelete, change, err)
	if err != nil {
		return fmt.Errorf("%s: %w", opDelete, err)
	}

	s.log.InfoContext(ctx, "defect deleted",
		slog.Int64("defect_id", defectID),
		slog.Int64("actor_id", actor.UserID),
		slog.Int64("attachments_detached", detached),
	)
	return nil
}
