// Package defect implements the Defect repository using PostgreSQL.
// Every mutation path first locks the defect row with GetForUpdate so that
// mutations of one defect are serialised while other defects stay unblocked.
package defect

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides defect persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new defect repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// Raw SQL
// ---------------------------------------------------------------------------

const selectColumns = `
    d.id, d.project_id, d.stage_id, d.title, d.description, d.priority,
    d.status_id, s.name AS status, d.reporter_id, d.assignee_id, d.due_date,
    d.created_at, d.updated_at`

const getByIDSQL = `
SELECT` + selectColumns + `
FROM defects d
JOIN defect_statuses s ON s.id = d.status_id
WHERE d.id = $1`

// The lock is taken on the defect row only, never on defect_statuses.
const getForUpdateSQL = getByIDSQL + `
FOR UPDATE OF d`

const insertSQL = `
WITH inserted AS (
    INSERT INTO defects (project_id, stage_id, title, description, priority, status_id, reporter_id, assignee_id, due_date)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
    RETURNING *
)
SELECT` + selectColumns + `
FROM inserted d
JOIN defect_statuses s ON s.id = d.status_id`

type row struct {
	ID          int64      `db:"id"`
	ProjectID   int64      `db:"project_id"`
	StageID     *int64     `db:"stage_id"`
	Title       string     `db:"title"`
	Description *string    `db:"description"`
	Priority    string     `db:"priority"`
	StatusID    int64      `db:"status_id"`
	Status      string     `db:"status"`
	ReporterID  int64      `db:"reporter_id"`
	AssigneeID  *int64     `db:"assignee_id"`
	DueDate     *time.Time `db:"due_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r row) toDomain() domain.Defect {
	return domain.Defect{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		StageID:     r.StageID,
		Title:       r.Title,
		Description: r.Description,
		Priority:    domain.Priority(r.Priority),
		StatusID:    r.StatusID,
		Status:      domain.StatusName(r.Status),
		ReporterID:  r.ReporterID,
		AssigneeID:  r.AssigneeID,
		DueDate:     r.DueDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a defect. Dangling project, stage, user or status references
// yield domain.ErrReference naming the offending field.
func (r *Repo) Create(ctx context.Context, d domain.Defect) (domain.Defect, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, insertSQL,
		d.ProjectID, d.StageID, d.Title, d.Description, string(d.Priority),
		d.StatusID, d.ReporterID, d.AssigneeID, d.DueDate,
	)
	if err != nil {
		return domain.Defect{}, postgres.MapError(err, domain.EntityTypeDefect, 0)
	}
	return out.toDomain(), nil
}

// Update applies changes, refreshes updated_at and returns the new updated_at.
// The caller holds the row lock.
func (r *Repo) Update(ctx context.Context, id int64, c domain.DefectUpdateParams) (time.Time, error) {
	q := postgres.Builder.Update("defects").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING updated_at")

	if c.Title != nil {
		q = q.Set("title", *c.Title)
	}
	if c.Description != nil {
		q = q.Set("description", squirrel.Expr("NULLIF(?, '')", *c.Description))
	}
	switch {
	case c.ClearStage:
		q = q.Set("stage_id", nil)
	case c.StageID != nil:
		q = q.Set("stage_id", *c.StageID)
	}
	if c.Priority != nil {
		q = q.Set("priority", string(*c.Priority))
	}
	if c.StatusID != nil {
		q = q.Set("status_id", *c.StatusID)
	}
	switch {
	case c.ClearAssignee:
		q = q.Set("assignee_id", nil)
	case c.AssigneeID != nil:
		q = q.Set("assignee_id", *c.AssigneeID)
	}
	switch {
	case c.ClearDueDate:
		q = q.Set("due_date", nil)
	case c.DueDate != nil:
		q = q.Set("due_date", *c.DueDate)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return time.Time{}, err
	}

	var updatedAt time.Time
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...).Scan(&updatedAt); err != nil {
		return time.Time{}, postgres.MapError(err, domain.EntityTypeDefect, id)
	}
	return updatedAt, nil
}

// Delete removes the defect; comments go with it by cascade.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM defects WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeDefect, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.EntityTypeDefect, id, "", domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a defect with its resolved status name.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Defect, error) {
	return r.get(ctx, getByIDSQL, id)
}

// GetForUpdate returns a defect and holds its row lock until the surrounding
// transaction ends. It must run inside TxManager.RunInTx.
func (r *Repo) GetForUpdate(ctx context.Context, id int64) (domain.Defect, error) {
	return r.get(ctx, getForUpdateSQL, id)
}

func (r *Repo) get(ctx context.Context, sql string, id int64) (domain.Defect, error) {
	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, id); err != nil {
		return domain.Defect{}, postgres.MapError(err, domain.EntityTypeDefect, id)
	}
	return out.toDomain(), nil
}

// List returns defects matching the filter ordered by id.
func (r *Repo) List(ctx context.Context, f domain.DefectFilter) ([]domain.Defect, error) {
	q := postgres.Builder.Select(selectColumns).
		From("defects d").
		Join("defect_statuses s ON s.id = d.status_id").
		OrderBy("d.id")

	if f.ProjectID != nil {
		q = q.Where(squirrel.Eq{"d.project_id": *f.ProjectID})
	}
	if f.StageID != nil {
		q = q.Where(squirrel.Eq{"d.stage_id": *f.StageID})
	}
	if f.Status != nil {
		q = q.Where(squirrel.Eq{"s.name": string(*f.Status)})
	}
	if f.AssigneeID != nil {
		q = q.Where(squirrel.Eq{"d.assignee_id": *f.AssigneeID})
	}
	if f.Limit > 0 {
		q = q.Limit(uint64(f.Limit))
	}
	if f.Offset > 0 {
		q = q.Offset(uint64(f.Offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeDefect, 0)
	}

	defects := make([]domain.Defect, len(rows))
	for i, rw := range rows {
		defects[i] = rw.toDomain()
	}
	return defects, nil
}
