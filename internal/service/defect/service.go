// Package defect is the lifecycle engine: every defect mutation locks the
// defect row, validates against the locked state, writes and records exactly
// one history entry in the same transaction.
package defect

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/config"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/internal/metrics"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

type defectRepo interface {
	Create(ctx context.Context, d domain.Defect) (domain.Defect, error)
	Update(ctx context.Context, id int64, p domain.DefectUpdateParams) (time.Time, error)
	Delete(ctx context.Context, id int64) error
	GetByID(ctx context.Context, id int64) (domain.Defect, error)
	GetForUpdate(ctx context.Context, id int64) (domain.Defect, error)
	List(ctx context.Context, f domain.DefectFilter) ([]domain.Defect, error)
}

type commentRepo interface {
	Create(ctx context.Context, c domain.Comment) (domain.Comment, error)
	ListByDefect(ctx context.Context, defectID int64, limit, offset int) ([]domain.Comment, error)
}

type attachmentRepo interface {
	Create(ctx context.Context, a domain.Attachment) (domain.Attachment, error)
	SoftDelete(ctx context.Context, id int64) (domain.Attachment, error)
	SoftDeleteByDefect(ctx context.Context, defectID int64) (int64, error)
	GetByID(ctx context.Context, id int64, includeDeleted bool) (domain.Attachment, error)
	ListByDefect(ctx context.Context, defectID int64, includeDeleted bool) ([]domain.Attachment, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id int64) (domain.User, error)
}

type recorder interface {
	Record(ctx context.Context, defectID, actorID int64, c domain.Change) (domain.HistoryLog, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit = 50
	maxListLimit     = 500
)

// Operation names used for metrics and logs.
const (
	opCreate   = "create"
	opStatus   = "change_status"
	opPriority = "change_priority"
	opAssign   = "assign"
	opEdit     = "edit"
	opComment  = "add_comment"
	opAttach   = "add_attachment"
	opDetach   = "remove_attachment"
	opDelete   = "delete"
)

// Service implements the defect lifecycle.
type Service struct {
	defects     defectRepo
	comments    commentRepo
	attachments attachmentRepo
	users       userRepo
	history     recorder
	tx          txManager
	refs        *domain.ReferenceData
	cfg         config.AttachmentsConfig
	log         *slog.Logger
}

// NewService creates a new defect Service.
func NewService(
	log *slog.Logger,
	defects defectRepo,
	comments commentRepo,
	attachments attachmentRepo,
	users userRepo,
	history recorder,
	tx txManager,
	refs *domain.ReferenceData,
	cfg config.AttachmentsConfig,
) *Service {
	return &Service{
		defects:     defects,
		comments:    comments,
		attachments: attachments,
		users:       users,
		history:     history,
		tx:          tx,
		refs:        refs,
		cfg:         cfg,
		log:         log.With("service", "defect"),
	}
}

// mutateFunc applies one change to the locked defect d, updating d in place,
// and returns the change to record. A nil change means nothing was modified.
type mutateFunc func(ctx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error)

// mutate runs fn against the row-locked defect inside one transaction and
// records the returned change before commit. Mutations of one defect are
// serialized by the row lock; other defects are never blocked.
func (s *Service) mutate(ctx context.Context, op string, defectID int64, fn mutateFunc) (domain.Defect, domain.Change, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.Defect{}, nil, domain.ErrUnauthorized
	}

	var (
		d      domain.Defect
		change domain.Change
	)
	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		var err error
		d, err = s.defects.GetForUpdate(txCtx, defectID)
		if err != nil {
			return err
		}
		change, err = fn(txCtx, &d, actor)
		if err != nil || change == nil {
			return err
		}
		_, err = s.history.Record(txCtx, d.ID, actor.UserID, change)
		return err
	})
	s.observe(op, change, err)
	if err != nil {
		return domain.Defect{}, nil, fmt.Errorf("%s: %w", op, err)
	}

	if change != nil {
		s.log.InfoContext(ctx, "defect changed",
			slog.String("op", op),
			slog.Int64("defect_id", d.ID),
			slog.Int64("actor_id", actor.UserID),
			slog.String("action", string(change.Action())),
		)
	}
	return d, change, nil
}

// observe counts one finished mutation. History is only counted once the
// transaction that carried it has committed.
func (s *Service) observe(op string, change domain.Change, err error) {
	metrics.DefectMutations.WithLabelValues(op, metrics.Outcome(err)).Inc()
	if err != nil || change == nil {
		return
	}
	metrics.HistoryRecords.WithLabelValues(string(change.Action())).Inc()
	if sc, ok := change.(domain.StatusChanged); ok {
		metrics.Transitions.WithLabelValues(string(sc.From), string(sc.To)).Inc()
	}
}

// checkAssignee requires an existing active user.
func (s *Service) checkAssignee(ctx context.Context, defectID int64, assigneeID *int64) error {
	if assigneeID == nil {
		return nil
	}
	u, err := s.users.GetByID(ctx, *assigneeID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewEntityError(domain.EntityTypeDefect, defectID, "assignee_id", domain.ErrReference)
	}
	if err != nil {
		return fmt.Errorf("get assignee: %w", err)
	}
	if !u.IsActive {
		return domain.NewValidationError("assignee_id", "user is inactive")
	}
	return nil
}

func (s *Service) statusID(name domain.StatusName) (int64, error) {
	id, ok := s.refs.StatusID(name)
	if !ok {
		return 0, fmt.Errorf("status %q not loaded", name)
	}
	return id, nil
}

func sameID(a, b *int64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == b
	}
	return calendarDate(a).Equal(*calendarDate(b))
}

// calendarDate keeps the Y/M/D of t as UTC midnight, matching what a DATE
// column stores. The time of day and zone are dropped.
func calendarDate(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	y, m, d := t.Date()
	day := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &day
}
