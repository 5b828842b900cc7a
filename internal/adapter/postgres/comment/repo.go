// Package comment implements the Comment repository using PostgreSQL.
// Comments have no delete of their own: they go with their defect.
package comment

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides comment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new comment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, defect_id, author_id, body, created_at"

type row struct {
	ID        int64     `db:"id"`
	DefectID  int64     `db:"defect_id"`
	AuthorID  int64     `db:"author_id"`
	Body      string    `db:"body"`
	CreatedAt time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Comment {
	return domain.Comment{ID: r.ID, DefectID: r.DefectID, AuthorID: r.AuthorID, Body: r.Body, CreatedAt: r.CreatedAt}
}

// Create inserts a comment.
func (r *Repo) Create(ctx context.Context, c domain.Comment) (domain.Comment, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`INSERT INTO comments (defect_id, author_id, body) VALUES ($1, $2, $3) RETURNING `+columns,
		c.DefectID, c.AuthorID, c.Body,
	)
	if err != nil {
		return domain.Comment{}, postgres.MapError(err, domain.EntityTypeComment, 0)
	}
	return out.toDomain(), nil
}

// ListByDefect returns the comments of a defect, oldest first.
func (r *Repo) ListByDefect(ctx context.Context, defectID int64, limit, offset int) ([]domain.Comment, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows,
		`SELECT `+columns+` FROM comments WHERE defect_id = $1
		 ORDER BY created_at, id
		 LIMIT NULLIF($2, 0) OFFSET $3`,
		defectID, limit, offset,
	)
	if err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeComment, 0)
	}

	comments := make([]domain.Comment, len(rows))
	for i, rw := range rows {
		comments[i] = rw.toDomain()
	}
	return comments, nil
}

// CountByDefect returns how many comments a defect has.
func (r *Repo) CountByDefect(ctx context.Context, defectID int64) (int, error) {
	var n int
	err := postgres.QuerierFromCtx(ctx, r.pool).
		QueryRow(ctx, `SELECT count(*) FROM comments WHERE defect_id = $1`, defectID).
		Scan(&n)
	if err != nil {
		return 0, postgres.MapError(err, domain.EntityTypeComment, 0)
	}
	return n, nil
}
