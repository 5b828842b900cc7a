package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// MapError converts pgx/pgconn errors to *domain.EntityError for inserts,
// updates and reads. A foreign key violation here means a dangling reference.
func MapError(err error, entity domain.EntityType, id int64) error {
	return mapError(err, entity, id, domain.ErrReference)
}

// MapDeleteError is MapError for deletes: a foreign key violation means the
// row is still referenced by dependents.
func MapDeleteError(err error, entity domain.EntityType, id int64) error {
	return mapError(err, entity, id, domain.ErrReferenceInUse)
}

func mapError(err error, entity domain.EntityType, id int64, fkErr error) error {
	if err == nil {
		return nil
	}

	// Already mapped further down the stack.
	var ee *domain.EntityError
	if errors.As(err, &ee) {
		return err
	}

	if errors.Is(err, context.Canceled) {
		return &domain.EntityError{Entity: entity, ID: id, Err: context.Canceled, Cause: err}
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return &domain.EntityError{Entity: entity, ID: id, Err: domain.ErrNotFound}
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, field := classifyPgError(pgErr, fkErr); sentinel != nil {
			return &domain.EntityError{Entity: entity, ID: id, Field: field, Err: sentinel, Cause: err}
		}
		return fmt.Errorf("%s %d: %w", strings.ToLower(string(entity)), id, err)
	}

	if sentinel := classifyTransient(err); sentinel != nil {
		return &domain.EntityError{Entity: entity, ID: id, Err: sentinel, Cause: err}
	}

	return fmt.Errorf("%s %d: %w", strings.ToLower(string(entity)), id, err)
}

// classifyPgError maps a server error to a domain sentinel and the offending field.
func classifyPgError(pgErr *pgconn.PgError, fkErr error) (error, string) {
	switch pgErr.Code {
	case "23505": // unique_violation
		return domain.ErrAlreadyExists, constraintField(pgErr)
	case "23503": // foreign_key_violation
		if errors.Is(fkErr, domain.ErrReferenceInUse) {
			return fkErr, pgErr.TableName
		}
		return fkErr, constraintField(pgErr)
	case "23514", "23502", "22001", "22007", "22008", "22P02": // check, not null, too long, bad datetime, bad text
		return domain.ErrValidation, constraintField(pgErr)
	case "55P03", "57014", "40001", "40P01": // lock_not_available, query_canceled, serialization, deadlock
		return domain.ErrTimeout, ""
	}

	switch {
	case strings.HasPrefix(pgErr.Code, "08"), strings.HasPrefix(pgErr.Code, "53"),
		pgErr.Code == "57P01", pgErr.Code == "57P02", pgErr.Code == "57P03":
		return domain.ErrStorageUnavailable, ""
	}
	return nil, ""
}

// classifyTransient recognises client-side timeouts and connection failures.
func classifyTransient(err error) error {
	if errors.Is(err, context.DeadlineExceeded) || pgconn.Timeout(err) {
		return domain.ErrTimeout
	}
	var connErr *pgconn.ConnectError
	if errors.As(err, &connErr) || pgconn.SafeToRetry(err) {
		return domain.ErrStorageUnavailable
	}
	return nil
}

// constraintField derives a field name from the constraint naming scheme
// (uq_<table>_<field>, ck_<table>_<field>, fk_<table>_<ref>).
func constraintField(pgErr *pgconn.PgError) string {
	if pgErr.ColumnName != "" {
		return pgErr.ColumnName
	}
	name := pgErr.ConstraintName
	for _, prefix := range []string{"uq_", "ck_", "fk_"} {
		rest, ok := strings.CutPrefix(name, prefix)
		if !ok {
			continue
		}
		rest = strings.TrimPrefix(rest, pgErr.TableName+"_")
		if prefix == "fk_" {
			rest += "_id"
		}
		return rest
	}
	return name
}

// mapTxError wraps errors raised by transaction control statements.
func mapTxError(op string, err error) error {
	if sentinel := classifyTransient(err); sentinel != nil {
		return fmt.Errorf("%s: %w", op, errors.Join(sentinel, err))
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if sentinel, _ := classifyPgError(pgErr, domain.ErrReference); sentinel != nil {
			return fmt.Errorf("%s: %w", op, errors.Join(sentinel, err))
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}
