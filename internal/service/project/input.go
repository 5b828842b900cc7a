package project

import (
	"strings"
	"time"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// CreateProjectInput holds the parameters for creating a project.
type CreateProjectInput struct {
	Name        string
	Description *string
	ManagerID   int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateProjectInput) Validate() error {
	var errs []domain.FieldError

	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	if i.ManagerID <= 0 {
		errs = append(errs, domain.FieldError{Field: "manager_id", Message: "required"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateProjectInput holds the parameters for updating a project.
type UpdateProjectInput struct {
	ProjectID   int64
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	ManagerID   *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateProjectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.ManagerID == nil && i.StartDate == nil && i.EndDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateDescription(errs, i.Description)
	if i.ManagerID != nil && *i.ManagerID <= 0 {
		errs = append(errs, domain.FieldError{Field: "manager_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListProjectsInput holds the parameters for listing projects.
type ListProjectsInput struct {
	ManagerID *int64
	Limit     int
	Offset    int
}

// Validate checks all fields and collects all errors.
func (i ListProjectsInput) Validate() error {
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

// CreateStageInput holds the parameters for creating a stage.
type CreateStageInput struct {
	ProjectID   int64
	Name        string
	Description *string
	Position    int
	StartDate   *time.Time
	EndDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateStageInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	errs = validateName(errs, i.Name)
	errs = validateDescription(errs, i.Description)
	if i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be non-negative"})
	}
	if i.StartDate != nil && i.EndDate != nil && i.EndDate.Before(*i.StartDate) {
		errs = append(errs, domain.FieldError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateStageInput holds the parameters for updating a stage.
type UpdateStageInput struct {
	StageID     int64
	Name        *string
	Description *string // nil = don't change; ptr("") = clear
	Position    *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i UpdateStageInput) Validate() error {
	var errs []domain.FieldError

	if i.StageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stage_id", Message: "required"})
	}
	if i.Name == nil && i.Description == nil && i.Position == nil && i.StartDate == nil && i.EndDate == nil {
		errs = append(errs, domain.FieldError{Field: "input", Message: "at least one field must be provided"})
	}
	if i.Name != nil {
		errs = validateName(errs, *i.Name)
	}
	errs = validateDescription(errs, i.Description)
	if i.Position != nil && *i.Position < 0 {
		errs = append(errs, domain.FieldError{Field: "position", Message: "must be non-negative"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

func validateName(errs []domain.FieldError, name string) []domain.FieldError {
	name = strings.TrimSpace(name)
	if name == "" {
		return append(errs, domain.FieldError{Field: "name", Message: "required"})
	}
	if len(name) > 255 {
		return append(errs, domain.FieldError{Field: "name", Message: "max 255 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description *string) []domain.FieldError {
	if description != nil && len(strings.TrimSpace(*description)) > 2000 {
		return append(errs, domain.FieldError{Field: "description", Message: "max 2000 characters"})
	}
	return errs
}
