// Package audit records and reads the append-only defect history.
package audit

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

type historyRepo interface {
	Append(ctx context.Context, h domain.HistoryLog) (domain.HistoryLog, error)
	Stream(ctx context.Context, defectID int64, rng domain.HistoryRange) iter.Seq2[domain.HistoryLog, error]
}

type txChecker interface {
	InTx(ctx context.Context) bool
}

var errOutsideTx = errors.New("history must be written inside the mutating transaction")

// Recorder appends one history entry per defect mutation. It only writes
// inside the caller's transaction so the entry commits or rolls back together
// with the mutation it describes.
type Recorder struct {
	log  *slog.Logger
	repo historyRepo
	tx   txChecker
}

// NewRecorder creates a new history Recorder.
func NewRecorder(log *slog.Logger, repo historyRepo, tx txChecker) *Recorder {
	return &Recorder{
		log:  log.With("service", "audit"),
		repo: repo,
		tx:   tx,
	}
}

// Record derives action, subject and snapshots from c and appends the entry.
// Every failure is reported as domain.ErrAuditWriteFailed joined with its cause.
func (r *Recorder) Record(ctx context.Context, defectID, actorID int64, c domain.Change) (domain.HistoryLog, error) {
	if !r.tx.InTx(ctx) {
		return domain.HistoryLog{}, fmt.Errorf("%w: %w", domain.ErrAuditWriteFailed, errOutsideTx)
	}

	before, after, err := domain.EncodeChange(c)
	if err != nil {
		return domain.HistoryLog{}, fmt.Errorf("%w: %w", domain.ErrAuditWriteFailed, err)
	}

	entity, entityID := c.Subject()
	if entityID == 0 {
		entityID = defectID
	}

	h, err := r.repo.Append(ctx, domain.HistoryLog{
		DefectID:   defectID,
		EntityType: entity,
		EntityID:   entityID,
		ActorID:    actorID,
		Action:     c.Action(),
		Before:     before,
		After:      after,
	})
	if err != nil {
		return domain.HistoryLog{}, fmt.Errorf("%w: %w", domain.ErrAuditWriteFailed, err)
	}

	r.log.DebugContext(ctx, "history recorded",
		slog.Int64("defect_id", defectID),
		slog.Int64("history_id", h.ID),
		slog.String("action", string(h.Action)),
	)
	return h, nil
}

// History is the read side of the trail.
type History struct {
	repo historyRepo
}

// NewHistory creates a new history reader.
func NewHistory(repo historyRepo) *History {
	return &History{repo: repo}
}

// All returns the entries of a defect in (created_at, id) order, bounded by
// rng (from inclusive, to exclusive). The sequence is lazy and re-iterable:
// each range over it reads committed state afresh. History of deleted defects
// stays readable.
func (h *History) All(ctx context.Context, defectID int64, rng domain.HistoryRange) (iter.Seq2[domain.HistoryLog, error], error) {
	if defectID <= 0 {
		return nil, domain.NewValidationError("defect_id", "required")
	}
	if err := rng.Validate(); err != nil {
		return nil, err
	}
	return h.repo.Stream(ctx, defectID, rng), nil
}

// Collect drains seq into a slice, stopping at the first error.
func Collect(seq iter.Seq2[domain.HistoryLog, error]) ([]domain.HistoryLog, error) {
	var out []domain.HistoryLog
	for h, err := range seq {
		if err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, nil
}
