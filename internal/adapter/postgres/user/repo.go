// Package user implements the User repository using PostgreSQL.
// Users are deactivated rather than removed; a hard delete is only possible
// while nothing references the row.
package user

import (
	"context"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new user repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, email, full_name, role_id, is_active, created_at, updated_at"

type row struct {
	ID        int64     `db:"id"`
	Email     string    `db:"email"`
	FullName  string    `db:"full_name"`
	RoleID    int64     `db:"role_id"`
	IsActive  bool      `db:"is_active"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r row) toDomain() domain.User {
	return domain.User{
		ID:        r.ID,
		Email:     r.Email,
		FullName:  r.FullName,
		RoleID:    r.RoleID,
		IsActive:  r.IsActive,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts a user with a lower-cased email.
func (r *Repo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO users (email, full_name, role_id, is_active) VALUES ($1, $2, $3, $4)
		 RETURNING `+columns,
		strings.ToLower(u.Email), u.FullName, u.RoleID, u.IsActive,
	)
	if err != nil {
		return domain.User{}, postgres.MapError(err, domain.EntityTypeUser, 0)
	}
	return out.toDomain(), nil
}

// Update applies changes and refreshes updated_at. Empty changes are rejected
// by the caller; here they would only bump updated_at.
func (r *Repo) Update(ctx context.Context, id int64, c domain.UserUpdateParams) (domain.User, error) {
	q := postgres.Builder.Update("users").
		Set("updated_at", squirrel.Expr("now()")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + columns)

	if c.Email != nil {
		q = q.Set("email", strings.ToLower(*c.Email))
	}
	if c.FullName != nil {
		q = q.Set("full_name", *c.FullName)
	}
	if c.RoleID != nil {
		q = q.Set("role_id", *c.RoleID)
	}
	if c.IsActive != nil {
		q = q.Set("is_active", *c.IsActive)
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return domain.User{}, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return domain.User{}, postgres.MapError(err, domain.EntityTypeUser, id)
	}
	return out.toDomain(), nil
}

// Delete hard-deletes a user that nothing references.
func (r *Repo) Delete(ctx context.Context, id int64) error {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, `DELETE FROM users WHERE id = $1`, id)
	if err != nil {
		return postgres.MapDeleteError(err, domain.EntityTypeUser, id)
	}
	if tag.RowsAffected() == 0 {
		return domain.NewEntityError(domain.EntityTypeUser, id, "", domain.ErrNotFound)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`SELECT `+columns+` FROM users WHERE id = $1`, id)
	if err != nil {
		return domain.User{}, postgres.MapError(err, domain.EntityTypeUser, id)
	}
	return out.toDomain(), nil
}

// GetByEmail returns a user by email (case-insensitive).
func (r *Repo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`SELECT `+columns+` FROM users WHERE email = $1`, strings.ToLower(email))
	if err != nil {
		return domain.User{}, postgres.MapError(err, domain.EntityTypeUser, 0)
	}
	return out.toDomain(), nil
}

// List returns users ordered by id.
func (r *Repo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := postgres.Builder.Select(columns).From("users").OrderBy("id")
	if f.RoleID != nil {
		q = q.Where(squirrel.Eq{"role_id": *f.RoleID})
	}
	if f.ActiveOnly {
		q = q.Where(squirrel.Eq{"is_active": true})
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
		return nil, postgres.MapError(err, domain.EntityTypeUser, 0)
	}

	users := make([]domain.User, len(rows))
	for i, rw := range rows {
		users[i] = rw.toDomain()
	}
	return users, nil
}
