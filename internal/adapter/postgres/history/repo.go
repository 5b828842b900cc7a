// Package history implements the append-only HistoryLog repository using
// PostgreSQL. Rows are never updated or deleted; a trigger enforces it.
package history

import (
	"context"
	"encoding/json"
	"errors"
	"iter"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides history persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new history repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, defect_id, entity_type, entity_id, actor_id, action, before_value, after_value, created_at"

// history_logs.defect_id has no FK so entries survive defect deletion. The
// defect must still exist at append time.
const appendSQL = `
INSERT INTO history_logs (defect_id, entity_type, entity_id, actor_id, action, before_value, after_value)
SELECT d.id, $2::text, $3::bigint, $4::bigint, $5::text, $6::jsonb, $7::jsonb
FROM defects d
WHERE d.id = $1
RETURNING id, created_at`

type row struct {
	ID          int64           `db:"id"`
	DefectID    int64           `db:"defect_id"`
	EntityType  string          `db:"entity_type"`
	EntityID    int64           `db:"entity_id"`
	ActorID     int64           `db:"actor_id"`
	Action      string          `db:"action"`
	BeforeValue json.RawMessage `db:"before_value"`
	AfterValue  json.RawMessage `db:"after_value"`
	CreatedAt   time.Time       `db:"created_at"`
}

func (r row) toDomain() domain.HistoryLog {
	return domain.HistoryLog{
		ID:         r.ID,
		DefectID:   r.DefectID,
		EntityType: domain.EntityType(r.EntityType),
		EntityID:   r.EntityID,
		ActorID:    r.ActorID,
		Action:     domain.HistoryAction(r.Action),
		Before:     r.BeforeValue,
		After:      r.AfterValue,
		CreatedAt:  r.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Append inserts one entry and fills in its id and created_at. A missing
// defect yields domain.ErrReference on defect_id.
func (r *Repo) Append(ctx context.Context, h domain.HistoryLog) (domain.HistoryLog, error) {
	var before, after []byte
	if len(h.Before) > 0 {
		before = h.Before
	}
	if len(h.After) > 0 {
		after = h.After
	}

	err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, appendSQL,
		h.DefectID, string(h.EntityType), h.EntityID, h.ActorID, string(h.Action), before, after,
	).Scan(&h.ID, &h.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.HistoryLog{}, domain.NewEntityError(domain.EntityTypeHistoryLog, 0, "defect_id", domain.ErrReference)
	}
	if err != nil {
		return domain.HistoryLog{}, postgres.MapError(err, domain.EntityTypeHistoryLog, 0)
	}
	return h, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

func rangeQuery(defectID int64, rng domain.HistoryRange) squirrel.SelectBuilder {
	q := postgres.Builder.Select(columns).
		From("history_logs").
		Where(squirrel.Eq{"defect_id": defectID}).
		OrderBy("created_at", "id")
	if rng.From != nil {
		q = q.Where(squirrel.GtOrEq{"created_at": *rng.From})
	}
	if rng.To != nil {
		q = q.Where(squirrel.Lt{"created_at": *rng.To})
	}
	return q
}

// Stream returns the entries of a defect in (created_at, id) order. Each
// iteration runs a fresh query; breaking out of the loop releases the rows.
func (r *Repo) Stream(ctx context.Context, defectID int64, rng domain.HistoryRange) iter.Seq2[domain.HistoryLog, error] {
	return func(yield func(domain.HistoryLog, error) bool) {
		sql, args, err := rangeQuery(defectID, rng).ToSql()
		if err != nil {
			yield(domain.HistoryLog{}, err)
			return
		}

		rows, err := postgres.QuerierFromCtx(ctx, r.pool).Query(ctx, sql, args...)
		if err != nil {
			yield(domain.HistoryLog{}, postgres.MapError(err, domain.EntityTypeHistoryLog, 0))
			return
		}
		defer rows.Close()

		for rows.Next() {
			var rw row
			if err := pgxscan.ScanRow(&rw, rows); err != nil {
				yield(domain.HistoryLog{}, postgres.MapError(err, domain.EntityTypeHistoryLog, 0))
				return
			}
			if !yield(rw.toDomain(), nil) {
				return
			}
		}
		if err := rows.Err(); err != nil {
			yield(domain.HistoryLog{}, postgres.MapError(err, domain.EntityTypeHistoryLog, 0))
		}
	}
}

// List returns all entries of a defect within the range as a slice.
func (r *Repo) List(ctx context.Context, defectID int64, rng domain.HistoryRange) ([]domain.HistoryLog, error) {
	sql, args, err := rangeQuery(defectID, rng).ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeHistoryLog, 0)
	}

	out := make([]domain.HistoryLog, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}

// CountByAction returns how many entries of the given action a defect has.
func (r *Repo) CountByAction(ctx context.Context, defectID int64, action domain.HistoryAction) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM history_logs WHERE defect_id = $1 AND action = $2`, defectID, string(action)).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, domain.EntityTypeHistoryLog, 0)
	}
	return n, nil
}
