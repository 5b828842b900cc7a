package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound           = errors.New("not found")
	ErrAlreadyExists      = errors.New("already exists")
	ErrReference          = errors.New("dangling reference")
	ErrReferenceInUse     = errors.New("reference in use")
	ErrValidation         = errors.New("validation error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidTransition  = errors.New("invalid transition")
	ErrDefectLocked       = errors.New("defect locked")
	ErrAuditWriteFailed   = errors.New("audit write failed")
	ErrInvalidFilter      = errors.New("invalid filter")
	ErrTimeout            = errors.New("timeout")
	ErrStorageUnavailable = errors.New("storage unavailable")
)

// IsRetryable reports whether the failed operation may be retried unchanged.
// Only transient store failures qualify: a failed transaction leaves no state behind.
func IsRetryable(err error) bool {
	return errors.Is(err, ErrTimeout) || errors.Is(err, ErrStorageUnavailable)
}

// EntityError attaches entity context to a store failure.
// Err is the domain sentinel, Cause the underlying driver error (may be nil).
type EntityError struct {
	Entity EntityType
	ID     int64
	Field  string
	Err    error
	Cause  error
}

func (e *EntityError) Error() string {
	var b strings.Builder
	b.WriteString(strings.ToLower(string(e.Entity)))
	if e.ID != 0 {
		fmt.Fprintf(&b, " %d", e.ID)
	}
	if e.Field != "" {
		b.WriteString(": ")
		b.WriteString(e.Field)
	}
	b.WriteString(": ")
	b.WriteString(e.Err.Error())
	if e.Cause != nil {
		b.WriteString(" (")
		b.WriteString(e.Cause.Error())
		b.WriteString(")")
	}
	return b.String()
}

func (e *EntityError) Unwrap() []error {
	if e.Cause == nil {
		return []error{e.Err}
	}
	return []error{e.Err, e.Cause}
}

// NewEntityError is a shorthand for an EntityError without a driver cause.
func NewEntityError(entity EntityType, id int64, field string, err error) *EntityError {
	return &EntityError{Entity: entity, ID: id, Field: field, Err: err}
}

// TransitionError is returned when a requested status change is not in the
// transition table or is not permitted for the caller.
type TransitionError struct {
	DefectID int64
	From     StatusName
	To       StatusName
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("defect %d: %s -> %s: %s", e.DefectID, e.From, e.To, ErrInvalidTransition)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// LockedError is returned when a non-privileged caller tries to change a
// defect that sits in a terminal status.
type LockedError struct {
	DefectID int64
	Status   StatusName
	Field    string
}

func (e *LockedError) Error() string {
	return fmt.Sprintf("defect %d: %s is %s: %s", e.DefectID, e.Field, e.Status, ErrDefectLocked)
}

func (e *LockedError) Unwrap() error { return ErrDefectLocked }

// FilterError describes a malformed report filter.
type FilterError struct {
	Field   string
	Message string
}

func (e *FilterError) Error() string {
	return fmt.Sprintf("%s: %s: %s", ErrInvalidFilter, e.Field, e.Message)
}

func (e *FilterError) Unwrap() error { return ErrInvalidFilter }

// NewFilterError creates a FilterError.
func NewFilterError(field, message string) *FilterError {
	return &FilterError{Field: field, Message: message}
}

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}
