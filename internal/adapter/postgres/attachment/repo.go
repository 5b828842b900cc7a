// Package attachment implements the Attachment repository using PostgreSQL.
// Attachments are soft-deleted only; a trigger rejects physical DELETE.
package attachment

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/heartmarshall/sitedefects-backend/internal/adapter/postgres"
	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// Repo provides attachment persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attachment repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const columns = "id, defect_id, uploader_id, file_name, size_bytes, content_type, storage_key, created_at, deleted_at"

// attachments.defect_id has no FK (rows outlive their defect), so the
// reference is checked here. No row returned means the defect is missing.
const insertSQL = `
INSERT INTO attachments (defect_id, uploader_id, file_name, size_bytes, content_type, storage_key)
SELECT d.id, $2::bigint, $3::text, $4::bigint, $5::text, $6::text
FROM defects d
WHERE d.id = $1
RETURNING ` + columns

type row struct {
	ID          int64      `db:"id"`
	DefectID    int64      `db:"defect_id"`
	UploaderID  int64      `db:"uploader_id"`
	FileName    string     `db:"file_name"`
	SizeBytes   int64      `db:"size_bytes"`
	ContentType string     `db:"content_type"`
	StorageKey  string     `db:"storage_key"`
	CreatedAt   time.Time  `db:"created_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

func (r row) toDomain() domain.Attachment {
	return domain.Attachment{
		ID:          r.ID,
		DefectID:    r.DefectID,
		UploaderID:  r.UploaderID,
		FileName:    r.FileName,
		SizeBytes:   r.SizeBytes,
		ContentType: r.ContentType,
		StorageKey:  r.StorageKey,
		CreatedAt:   r.CreatedAt,
		DeletedAt:   r.DeletedAt,
	}
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Create inserts attachment metadata for an existing defect.
func (r *Repo) Create(ctx context.Context, a domain.Attachment) (domain.Attachment, error) {
	var rows []row
	err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, insertSQL,
		a.DefectID, a.UploaderID, a.FileName, a.SizeBytes, a.ContentType, a.StorageKey,
	)
	if err != nil {
		return domain.Attachment{}, postgres.MapError(err, domain.EntityTypeAttachment, 0)
	}
	if len(rows) == 0 {
		return domain.Attachment{}, domain.NewEntityError(domain.EntityTypeAttachment, 0, "defect_id", domain.ErrReference)
	}
	return rows[0].toDomain(), nil
}

// SoftDelete marks a live attachment deleted. Already deleted or missing
// attachments yield domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, id int64) (domain.Attachment, error) {
	var out row
	err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out,
		`UPDATE attachments SET deleted_at = now()
		 WHERE id = $1 AND deleted_at IS NULL
		 RETURNING `+columns, id)
	if err != nil {
		return domain.Attachment{}, postgres.MapError(err, domain.EntityTypeAttachment, id)
	}
	return out.toDomain(), nil
}

// SoftDeleteByDefect marks every live attachment of a defect deleted and
// returns how many rows changed.
func (r *Repo) SoftDeleteByDefect(ctx context.Context, defectID int64) (int64, error) {
	tag, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx,
		`UPDATE attachments SET deleted_at = now() WHERE defect_id = $1 AND deleted_at IS NULL`, defectID)
	if err != nil {
		return 0, postgres.MapError(err, domain.EntityTypeAttachment, 0)
	}
	return tag.RowsAffected(), nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// GetByID returns an attachment. Deleted rows are only returned when
// includeDeleted is set.
func (r *Repo) GetByID(ctx context.Context, id int64, includeDeleted bool) (domain.Attachment, error) {
	q := postgres.Builder.Select(columns).From("attachments").Where(squirrel.Eq{"id": id})
	if !includeDeleted {
		q = q.Where(squirrel.Eq{"deleted_at": nil})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return domain.Attachment{}, err
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.pool), &out, sql, args...); err != nil {
		return domain.Attachment{}, postgres.MapError(err, domain.EntityTypeAttachment, id)
	}
	return out.toDomain(), nil
}

// ListByDefect returns a defect's attachments, oldest first.
func (r *Repo) ListByDefect(ctx context.Context, defectID int64, includeDeleted bool) ([]domain.Attachment, error) {
	q := postgres.Builder.Select(columns).From("attachments").
		Where(squirrel.Eq{"defect_id": defectID}).
		OrderBy("created_at", "id")
	if !includeDeleted {
		q = q.Where(squirrel.Eq{"deleted_at": nil})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.pool), &rows, sql, args...); err != nil {
		return nil, postgres.MapError(err, domain.EntityTypeAttachment, 0)
	}

	out := make([]domain.Attachment, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
