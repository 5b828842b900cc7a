// Package report implements the Report repository and the snapshot reads the
// report aggregator runs on, using PostgreSQL.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides report persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new report repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, requester_id, filters, group_by, generated_at, result, created_at"

type row struct {
	ID          int64           `db:"id"`
	RequesterID int64           `db:"requester_id"`
	Filters     json.RawMessage `db:"filters"`
	GroupBy     string          `db:"group_by"`
	GeneratedAt time.Time       `db:"generated_at"`
	Result      json.RawMessage `db:"result"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r row) toDomain() domain.Report {
	return domain.Report{
		ID:          r.ID,
		RequesterID: r.RequesterID,
		Filters:     r.Filters,
		GroupBy:     domain.GroupBy(r.GroupBy),
		GeneratedAt: r.GeneratedAt,
		Result:      r.Result,
		CreatedAt:   r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// Create persists a generated report.
func (r *Repo) Create(ctx context.Context, rep domain.Report) (domain.Report, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO reports (requester_id, filters, group_by, generated_at, result)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+columns,
		rep.RequesterID, []byte(rep.Filters), string(rep.GroupBy), rep.GeneratedAt, []byte(rep.Result),
	)
	if err != nil {
		return domain.Report{}, postgres.MapError(err, domain.EntityTypeReport, 0)
	}
	return out.toDomain(), nil
}

// GetByID returns a report by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Report, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`SELECT `+columns+` FROM reports WHERE id = $1`, id)
	if err != nil {
		return domain.Report{}, postgres.MapError(err, domain.EntityTypeReport, id)
	}
	return out.toDomain(), nil
}

// ListByRequester returns a user's reports, newest first.
func (r *Repo) ListByRequester(ctx context.Context, requesterID int64, limit, offset int) ([]domain.Report, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT `+columns+` FROM reports WHERE requester_id = $1
		 ORDER BY created_at DESC, id DESC
		 LIMIT NULLIF($2, 0) OFFSET $3`,
		requesterID, limit, offset,
	)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeReport, 0)
	}

	out := make([]domain.Report, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// Delete removes a report.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM reports WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeReport, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.EntityTypeReport, id, "", domain.ErrNotFound)
	}
	return nil
}

// DeleteOlderThan removes reports created before cutoff and returns the count.
func (r *Repo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM reports WHERE created_at < $1`, cutoff)
	if err != nil {
		return 0, postgres.MapDeleteError(err, domain.EntityTypeReport, 0)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Snapshot reads
// ---------------------------------------------------------------------------

type defectRow struct {
	ID         int64     `db:"id"`
	ProjectID  int64     `db:"project_id"`
	StageID    *int64    `db:"stage_id"`
	Status     string    `db:"status"`
	Priority   string    `db:"priority"`
	AssigneeID *int64    `db:"assignee_id"`
	CreatedAt  time.Time `db:"created_at"`
}

type eventRow struct {
	DefectID  int64     `db:"defect_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
}

// LoadSnapshot reads the defects matching f and, when withEvents is set,
// their status history. It must run inside TxManager.RunInSnapshot so that
// every statement sees the same committed state.
//
// The snapshot instant is read by the first statement, which is also the one
// that fixes the snapshot, so every visible history row is not newer than it.
func (r *Repo) LoadSnapshot(ctx context.Context, f domain.ReportFilter, withEvents bool) (domain.ReportSnapshot, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var snap domain.ReportSnapshot
	if err := q.QueryRow(ctx, `SELECT clock_timestamp()`).Scan(&snap.At); err != nil {
		return domain.ReportSnapshot{}, postgres.MapError(err, domain.EntityTypeReport, 0)
	}

	if err := r.checkIDs(ctx, "projects", "project_ids", f.ProjectIDs); err != nil {
		return domain.ReportSnapshot{}, err
	}
	if err := r.checkIDs(ctx, "project_stages", "stage_ids", f.StageIDs); err != nil {
		return domain.ReportSnapshot{}, err
	}

	defects, err := r.loadDefects(ctx, f)
	if err != nil {
		return domain.ReportSnapshot{}, err
	}
	snap.Defects = defects

	if withEvents && len(defects) > 0 {
		ids := make([]int64, len(defects))
		for i, d := range defects {
			ids[i] = d.ID
		}
		events, err := r.loadEvents(ctx, ids)
		if err != nil {
			return domain.ReportSnapshot{}, err
		}
		snap.Events = events
	}

	return snap, nil
}

// checkIDs fails with domain.ErrInvalidFilter naming the first unknown id.
func (r *Repo) checkIDs(ctx context.Context, table, field string, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}

	var missing []int64
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &missing,
		`SELECT want.id FROM unnest($1::bigint[]) AS want(id)
		 WHERE NOT EXISTS (SELECT 1 FROM `+table+` t WHERE t.id = want.id)
		 ORDER BY want.id`, ids)
	if err != nil {
		return postgres.MapError(err, domain.EntityTypeReport, 0)
	}
	if len(missing) > 0 {
		return domain.NewFilterError(field, fmt.Sprintf("unknown id %d", missing[0]))
	}
	return nil
}

func (r *Repo) loadDefects(ctx context.Context, f domain.ReportFilter) ([]domain.ReportDefect, error) {
	q := postgres.Builder.
		Select("d.id", "d.project_id", "d.stage_id", "s.name AS status", "d.priority", "d.assignee_id", "d.created_at").
		From("defects d").
		Join("defect_statuses s ON s.id = d.status_id").
		OrderBy("d.id")

	if len(f.ProjectIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.project_id": f.ProjectIDs})
	}
	if len(f.StageIDs) > 0 {
		q = q.Where(squirrel.Eq{"d.stage_id": f.StageIDs})
	}
	if len(f.Statuses) > 0 {
		names := make([]string, len(f.Statuses))
		for i, s := range f.Statuses {
			names[i] = string(s)
		}
		q = q.Where(squirrel.Eq{"s.name": names})
	}
	if len(f.Priorities) > 0 {
		prios := make([]string, len(f.Priorities))
		for i, p := range f.Priorities {
			prios[i] = string(p)
		}
		q = q.Where(squirrel.Eq{"d.priority": prios})
	}
	if f.CreatedFrom != nil {
		q = q.Where(squirrel.GtOrEq{"d.created_at": *f.CreatedFrom})
	}
	if f.CreatedTo != nil {
		q = q.Where(squirrel.Lt{"d.created_at": *f.CreatedTo})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []defectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeDefect, 0)
	}

	out := make([]domain.ReportDefect, len(rows))
	for i, rw := range rows {
		out[i] = domain.ReportDefect{
			ID:         rw.ID,
			ProjectID:  rw.ProjectID,
			StageID:    rw.StageID,
			Status:     domain.StatusName(rw.Status),
			Priority:   domain.Priority(rw.Priority),
			AssigneeID: rw.AssigneeID,
			CreatedAt:  rw.CreatedAt,
		}
	}
	return out, nil
}

// loadEvents returns the status-carrying history entries of the given defects,
// ordered by defect and then by history order.
func (r *Repo) loadEvents(ctx context.Context, defectIDs []int64) ([]domain.StatusEvent, error) {
	var rows []eventRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT defect_id, after_value->>'status' AS status, created_at
		 FROM history_logs
		 WHERE defect_id = ANY($1)
		   AND action IN ('CREATED', 'STATUS_CHANGED', 'CLOSED', 'REOPENED')
		   AND after_value->>'status' IS NOT NULL
		 ORDER BY defect_id, created_at, id`, defectIDs)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeHistoryLog, 0)
	}

	out := make([]domain.StatusEvent, len(rows))
	for i, rw := range rows {
		out[i] = domain.StatusEvent{DefectID: rw.DefectID, Status: domain.StatusName(rw.Status), At: rw.CreatedAt}
	}
	return out, nil
}
