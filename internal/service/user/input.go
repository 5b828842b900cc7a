package user

import (
	"net/mail"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// CreateUserInput holds the parameters for creating a user.
type CreateUserInput struct {
	Email    string
	FullName string
	Role     domain.RoleName
}

// Validate checks all fields and collects all errors.
func (i CreateUserInput) Validate() error {
	var errs []domain.FieldError

	errs = validateEmail(errs, i.Email)
	errs = validateFullName(errs, i.FullName)
	if i.Role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateUserInput holds the parameters for updating a user.
// Nil fields are left untouched.
type UpdateUserInput struct {
	UserID   int64
	Email    *string
	FullName *string
	Role     *domain.RoleName
}

// Validate checks all fields and collects all errors.
func (i UpdateUserInput) Validate() error {
	var errs []domain.FieldError

	if i.UserID <= 0 {
		errs = append(errs, domain.FieldError{Field: "user_id", Message: "required"})
	}
	if i.Email == nil && i.FullName == nil && i.Role == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Email != nil {
		errs = validateEmail(errs, *i.Email)
	}
	if i.FullName != nil {
		errs = validateFullName(errs, *i.FullName)
	}
	if i.Role != nil && *i.Role == "" {
		errs = append(errs, domain.FieldError{Field: "role", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListUsersInput holds the parameters for listing users.
type ListUsersInput struct {
	Role       *domain.RoleName
	ActiveOnly bool
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListUsersInput) Validate() error {
	var errs []domain.FieldError

	if i.Limit < 0 || i.Limit > maxListLimit {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must be between 0 and 500"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateEmail(errs []domain.FieldError, email string) []domain.FieldError {
	email = strings.TrimSpace(email)
	switch {
	case email == "":
		return append(errs, domain.FieldError{Field: "email", Message: "required"})
	case len(email) > 255:
		return append(errs, domain.FieldError{Field: "email", Message: "max 255 characters"})
	}
	if addr, err := mail.ParseAddress(email); err != nil || addr.Address != email {
		return append(errs, domain.FieldError{Field: "email", Message: "invalid format"})
	}
	return errs
}

func validateFullName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	switch {
	case name == "":
		return append(errs, domain.FieldError{Field: "full_name", Message: "required"})
	case len(name) > 255:
		return append(errs, domain.FieldError{Field: "full_name", Message: "max 255 characters"})
	}
	return errs
}
