// Package report generates point-in-time defect reports. Generation reads
// one snapshot transaction and aggregates it with the pure Aggregate.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/config"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
	"github.com/heartmarshall/sitedefects-backend/internal/metrics"
	"github.com/heartmarshall/sitedefects-backend/pkg/ctxutil"
)

type reportRepo interface {
	Create(ctx context.Context, rep domain.Report) (domain.Report, error)
	GetByID(ctx context.Context, id int64) (domain.Report, error)
	ListByRequester(ctx context.Context, requesterID int64, limit, offset int) ([]domain.Report, error)
	Delete(ctx context.Context, id int64) error
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
	LoadSnapshot(ctx context.Context, f domain.ReportFilter, withEvents bool) (domain.ReportSnapshot, error)
}

type txManager interface {
	RunInSnapshot(ctx context.Context, fn func(ctx context.Context) error) error
}

const (
	defaultListLimit = 50
	maxListLimit     = 200
)

// Service generates, stores and expires reports.
type Service struct {
	log     *slog.Logger
	reports reportRepo
	tx      txManager
	cfg     config.ReportsConfig
	now     func() time.Time
}

// NewService creates a new report Service.
func NewService(log *slog.Logger, reports reportRepo, tx txManager, cfg config.ReportsConfig) *Service {
	return &Service{
		log:     log.With("service", "report"),
		reports: reports,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
	}
}

// GenerateResult is a persisted report together with its decoded result.
type GenerateResult struct {
	Report domain.Report
	Result domain.ReportResult
}

// Generate aggregates a consistent snapshot and persists the result as an
// immutable report owned by the caller. Zero matching defects is not an error.
func (s *Service) Generate(ctx context.Context, spec domain.ReportSpec) (GenerateResult, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return GenerateResult{}, domain.ErrUnauthorized
	}

	start := time.Now()
	res, err := s.Compute(ctx, spec)
	if err == nil {
		var rep domain.Report
		rep, err = s.persist(ctx, actor.UserID, spec, res)
		if err == nil {
			metrics.ReportsGenerated.WithLabelValues(string(spec.GroupBy), metrics.OutcomeOK).Inc()
			metrics.ReportDuration.Observe(time.Since(start).Seconds())

			s.log.InfoContext(ctx, "report generated",
				slog.Int64("report_id", rep.ID),
				slog.Int64("requester_id", actor.UserID),
				slog.String("group_by", string(spec.GroupBy)),
				slog.Int("total", res.Total),
				slog.Duration("took", time.Since(start)),
			)
			return GenerateResult{Report: rep, Result: res}, nil
		}
	}

	metrics.ReportsGenerated.WithLabelValues(string(spec.GroupBy), metrics.Outcome(err)).Inc()
	return GenerateResult{}, err
}

// Compute aggregates a snapshot without persisting anything. The snapshot
// transaction is read-only and takes no row locks.
func (s *Service) Compute(ctx context.Context, spec domain.ReportSpec) (domain.ReportResult, error) {
	if err := spec.Validate(); err != nil {
		return domain.ReportResult{}, err
	}

	var snap domain.ReportSnapshot
	err := s.tx.RunInSnapshot(ctx, func(txCtx context.Context) error {
		var err error
		snap, err = s.reports.LoadSnapshot(txCtx, spec.Filter, spec.WithDurations)
		return err
	})
	if err != nil {
		return domain.ReportResult{}, fmt.Errorf("load snapshot: %w", err)
	}

	return Aggregate(snap, spec, s.cfg.MaxGroups)
}

func (s *Service) persist(ctx context.Context, requesterID int64, spec domain.ReportSpec, res domain.ReportResult) (domain.Report, error) {
	filters, err := json.Marshal(spec.Filter)
	if err != nil {
		return domain.Report{}, fmt.Errorf("encode filters: %w", err)
	}
	result, err := json.Marshal(res)
	if err != nil {
		return domain.Report{}, fmt.Errorf("encode result: %w", err)
	}

	rep, err := s.reports.Create(ctx, domain.Report{
		RequesterID: requesterID,
		Filters:     filters,
		GroupBy:     spec.GroupBy,
		GeneratedAt: res.SnapshotAt,
		Result:      result,
	})
	if err != nil {
		return domain.Report{}, fmt.Errorf("create report: %w", err)
	}
	return rep, nil
}

// Get returns a stored report.
func (s *Service) Get(ctx context.Context, id int64) (domain.Report, error) {
	if _, ok := ctxutil.ActorFromCtx(ctx); !ok {
		return domain.Report{}, domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.Report{}, domain.NewValidationError("report_id", "required")
	}

	rep, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return domain.Report{}, fmt.Errorf("get report: %w", err)
	}
	return rep, nil
}

// List returns the caller's reports, newest first.
func (s *Service) List(ctx context.Context, limit, offset int) ([]domain.Report, error) {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit < 0 || limit > maxListLimit {
		return nil, domain.NewValidationError("limit", "must be between 0 and 200")
	}
	if offset < 0 {
		return nil, domain.NewValidationError("offset", "must be non-negative")
	}
	if limit == 0 {
		limit = defaultListLimit
	}

	list, err := s.reports.ListByRequester(ctx, actor.UserID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list reports: %w", err)
	}
	return list, nil
}

// Delete removes a stored report.
func (s *Service) Delete(ctx context.Context, id int64) error {
	actor, ok := ctxutil.ActorFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if id <= 0 {
		return domain.NewValidationError("report_id", "required")
	}

	if err := s.reports.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete report: %w", err)
	}

	s.log.InfoContext(ctx, "report deleted", slog.Int64("report_id", id), slog.Int64("actor_id", actor.UserID))
	return nil
}

// Cleanup deletes reports generated before the retention cutoff. A
// non-positive retention keeps everything.
func (s *Service) Cleanup(ctx context.Context) (int64, error) {
	if s.cfg.RetentionDays <= 0 {
		return 0, nil
	}

	cutoff := s.cfg.RetentionCutoff(s.now())
	n, err := s.reports.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("cleanup reports: %w", err)
	}

	s.log.InfoContext(ctx, "reports expired", slog.Int64("deleted", n), slog.Time("cutoff", cutoff))
	return n, nil
}

// DecodeResult unpacks the stored result of a report.
func DecodeResult(rep domain.Report) (domain.ReportResult, error) {
	var res domain.ReportResult
	if err := json.Unmarshal(rep.Result, &res); err != nil {
		return domain.ReportResult{}, fmt.Errorf("decode report %d: %w", rep.ID, err)
	}
	return res, nil
}
