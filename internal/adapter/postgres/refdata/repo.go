// Package refdata implements persistence for the Role and DefectStatus
// reference tables. Both are guarded: rows referenced by users or defects
// cannot be deleted.
package refdata

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides reference data persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new reference data repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

type row struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	Description string `db:"description"`
}

// ---------------------------------------------------------------------------
// Roles
// ---------------------------------------------------------------------------

// CreateRole inserts a role. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) CreateRole(ctx context.Context, name, description string) (domain.Role, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO roles (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		name, description,
	)
	if err != nil {
		return domain.Role{}, postgres.MapError(err, domain.EntityTypeRole, 0)
	}
	return domain.Role{ID: out.ID, Name: domain.RoleName(out.Name), Description: out.Description}, nil
}

// ListRoles returns all roles ordered by id.
func (r *Repo) ListRoles(ctx context.Context) ([]domain.Role, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, name, description FROM roles ORDER BY id`); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeRole, 0)
	}

	roles := make([]domain.Role, len(rows))
	for i, rw := range rows {
		roles[i] = domain.Role{ID: rw.ID, Name: domain.RoleName(rw.Name), Description: rw.Description}
	}
	return roles, nil
}

// DeleteRole removes an unreferenced role.
func (r *Repo) DeleteRole(ctx context.Context, id int64) error {
	return r.delete(ctx, "roles", domain.EntityTypeRole, id)
}

// ---------------------------------------------------------------------------
// Defect statuses
// ---------------------------------------------------------------------------

// CreateStatus inserts a defect status. A duplicate name yields domain.ErrAlreadyExists.
func (r *Repo) CreateStatus(ctx context.Context, name, description string) (domain.DefectStatus, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO defect_statuses (name, description) VALUES ($1, $2) RETURNING id, name, description`,
		name, description,
	)
	if err != nil {
		return domain.DefectStatus{}, postgres.MapError(err, domain.EntityTypeDefectStatus, 0)
	}
	return domain.DefectStatus{ID: out.ID, Name: domain.StatusName(out.Name), Description: out.Description}, nil
}

// ListStatuses returns all defect statuses ordered by id.
func (r *Repo) ListStatuses(ctx context.Context) ([]domain.DefectStatus, error) {
	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT id, name, description FROM defect_statuses ORDER BY id`); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeDefectStatus, 0)
	}

	statuses := make([]domain.DefectStatus, len(rows))
	for i, rw := range rows {
		statuses[i] = domain.DefectStatus{ID: rw.ID, Name: domain.StatusName(rw.Name), Description: rw.Description}
	}
	return statuses, nil
}

// DeleteStatus removes an unreferenced defect status.
func (r *Repo) DeleteStatus(ctx context.Context, id int64) error {
	return r.delete(ctx, "defect_statuses", domain.EntityTypeDefectStatus, id)
}

func (r *Repo) delete(ctx context.Context, table string, entity domain.EntityType, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = $1`, table), id)
	if err != nil {
		return postgres.MapDeleteError(err, entity, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(entity, id, "", domain.ErrNotFound)
	}
	return nil
}
