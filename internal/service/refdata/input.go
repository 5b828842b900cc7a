package refdata

import (
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// CreateInput holds the parameters for creating a role or a status.
type CreateInput struct {
	Name        string
	Description string
}

// Validate checks all fields and collects all errors.
func (i CreateInput) Validate() error {
	var errs []domain.FieldError

	name := strings.TrimSpace(i.Name)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 50 {
		errs = append(errs, domain.FieldError{Field: "name", Message: "max 50 characters"})
	}
	if len(i.Description) > 255 {
		errs = append(errs, domain.FieldError{Field: "description", Message: "max 255 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
