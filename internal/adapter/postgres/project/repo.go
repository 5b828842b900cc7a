// Package project implements the Project and ProjectStage repository using
// PostgreSQL. Deleting a project cascades to its stages; both project and
// stage deletes are refused while defects reference them.
package project

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides project and stage persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new project repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const (
	projectColumns = "id, name, description, manager_id, start_date, end_date, created_at, updated_at"
	stageColumns   = "id, project_id, name, description, position, start_date, end_date, created_at, updated_at"
)

type projectRow struct {
	ID          int64      `db:"id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	ManagerID   int64      `db:"manager_id"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r projectRow) toDomain() domain.Project {
	return domain.Project{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		ManagerID:   r.ManagerID,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

type stageRow struct {
	ID          int64      `db:"id"`
	ProjectID   int64      `db:"project_id"`
	Name        string     `db:"name"`
	Description *string    `db:"description"`
	Position    int        `db:"position"`
	StartDate   *time.Time `db:"start_date"`
	EndDate     *time.Time `db:"end_date"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
}

func (r stageRow) toDomain() domain.ProjectStage {
	return domain.ProjectStage{
		ID:          r.ID,
		ProjectID:   r.ProjectID,
		Name:        r.Name,
		Description: r.Description,
		Position:    r.Position,
		StartDate:   r.StartDate,
		EndDate:     r.EndDate,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func setCommon(q squirrel.UpdateBuilder, name, description *string, start, end *time.Time) squirrel.UpdateBuilder {
	if name != nil {
		q = q.Set("name", *name)
	}
	if description != nil {
		q = q.Set("description", squirrel.Expr("NULLIF(?, '')", *description))
	}
	if start != nil {
		q = q.Set("start_date", *start)
	}
	if end != nil {
		q = q.Set("end_date", *end)
	}
	return q
}

// ---------------------------------------------------------------------------
// Projects
// ---------------------------------------------------------------------------

// Create inserts a project.
func (r *Repo) Create(ctx context.Context, p domain.Project) (domain.Project, error) {
	var out projectRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO projects (name, description, manager_id, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+projectColumns,
		p.Name, p.Description, p.ManagerID, p.StartDate, p.EndDate,
	)
	if err != nil {
		return domain.Project{}, postgres.MapError(err, domain.EntityTypeProject, 0)
	}
	return out.toDomain(), nil
}

// GetByID returns a project by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.Project, error) {
	var out projectRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`SELECT `+projectColumns+` FROM projects WHERE id = $1`, id)
	if err != nil {
		return domain.Project{}, postgres.MapError(err, domain.EntityTypeProject, id)
	}
	return out.toDomain(), nil
}

// List returns projects ordered by id, optionally only those of one manager.
func (r *Repo) List(ctx context.Context, managerID *int64, limit, offset int) ([]domain.Project, error) {
	q := postgres.Builder.Select(projectColumns).From("projects").OrderBy("id")
	if managerID != nil {
		q = q.Where(squirrel.Eq{"manager_id": *managerID})
	}
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}
	if offset > 0 {
		q = q.Offset(uint64(offset))
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []projectRow
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeProject, 0)
	}

	projects := make([]domain.Project, len(rows))
	for i, rw := range rows {
		projects[i] = rw.toDomain()
	}
	return projects, nil
}

// Update applies changes and refreshes updated_at.
func (r *Repo) Update(ctx context.Context, id int64, p domain.ProjectUpdateParams) (domain.Project, error) {
	q := setCommon(postgres.Builder.Update("projects"), p.Name, p.Description, p.StartDate, p.EndDate)
	if p.ManagerID != nil {
		q = q.Set("manager_id", *p.ManagerID)
	}
	q = q.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + projectColumns)

	sql, args, err := q.ToSql()
	if err != nil {
		return domain.Project{}, err
	}

	var out projectRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return domain.Project{}, postgres.MapError(err, domain.EntityTypeProject, id)
	}
	return out.toDomain(), nil
}

// Delete removes a project and, by cascade, its stages. Fails with
// domain.ErrReferenceInUse while any defect belongs to the project.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeProject, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.EntityTypeProject, id, "", domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Stages
// ---------------------------------------------------------------------------

// CreateStage inserts a stage. A missing project yields domain.ErrReference.
func (r *Repo) CreateStage(ctx context.Context, s domain.ProjectStage) (domain.ProjectStage, error) {
	var out stageRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO project_stages (project_id, name, description, position, start_date, end_date)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+stageColumns,
		s.ProjectID, s.Name, s.Description, s.Position, s.StartDate, s.EndDate,
	)
	if err != nil {
		return domain.ProjectStage{}, postgres.MapError(err, domain.EntityTypeProjectStage, 0)
	}
	return out.toDomain(), nil
}

// GetStage returns a stage by primary key.
func (r *Repo) GetStage(ctx context.Context, id int64) (domain.ProjectStage, error) {
	var out stageRow
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`SELECT `+stageColumns+` FROM project_stages WHERE id = $1`, id)
	if err != nil {
		return domain.ProjectStage{}, postgres.MapError(err, domain.EntityTypeProjectStage, id)
	}
	return out.toDomain(), nil
}

// ListStages returns the stages of a project by position.
// Returns an empty slice (not nil) when the project has no stages.
func (r *Repo) ListStages(ctx context.Context, projectID int64) ([]domain.ProjectStage, error) {
	var rows []stageRow
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT `+stageColumns+` FROM project_stages WHERE project_id = $1 ORDER BY position, id`, projectID)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeProjectStage, 0)
	}

	stages := make([]domain.ProjectStage, len(rows))
	for i, rw := range rows {
		stages[i] = rw.toDomain()
	}
	return stages, nil
}

// UpdateStage applies changes and refreshes updated_at.
func (r *Repo) UpdateStage(ctx context.Context, id int64, p domain.StageUpdateParams) (domain.ProjectStage, error) {
	q := setCommon(postgres.Builder.Update("project_stages"), p.Name, p.Description, p.StartDate, p.EndDate)
	if p.Position != nil {
		q = q.Set("position", *p.Position)
	}
	q = q.
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + stageColumns)

	sql, args, err := q.ToSql()
	if err != nil {
		return domain.ProjectStage{}, err
	}

	var out stageRow
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return domain.ProjectStage{}, postgres.MapError(err, domain.EntityTypeProjectStage, id)
	}
	return out.toDomain(), nil
}

// DeleteStage removes a stage no defect references.
func (r *Repo) DeleteStage(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM project_stages WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeProjectStage, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.EntityTypeProjectStage, id, "", domain.ErrNotFound)
	}
	return nil
}

// CountStages returns how many stages the project owns.
func (r *Repo) CountStages(ctx context.Context, projectID int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM project_stages WHERE project_id = $1`, projectID).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, domain.EntityTypeProjectStage, 0)
	}
	return n, nil
}
