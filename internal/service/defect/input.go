package defect

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

const (
	maxTitleLen       = 255
	maxDescriptionLen = 5000
	maxCommentLen     = 10000
	maxFileNameLen    = 255
)

// CreateDefectInput holds the parameters for reporting a defect.
type CreateDefectInput struct {
	ProjectID   int64
	StageID     *int64
	Title       string
	Description *string
	Priority    domain.Priority // empty = MEDIUM
	AssigneeID  *int64
	DueDate     *time.Time
}

// Validate checks all fields and collects all errors.
func (i CreateDefectInput) Validate() error {
	var errs []domain.FieldError

	if i.ProjectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "project_id", Message: "required"})
	}
	if i.StageID != nil && *i.StageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stage_id", Message: "must be positive"})
	}
	errs = validateTitle(errs, i.Title)
	errs = validateDescription(errs, i.Description)
	if i.Priority != "" && !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}
	if i.AssigneeID != nil && *i.AssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangeStatusInput holds the parameters for a status transition.
type ChangeStatusInput struct {
	DefectID int64
	Status   domain.StatusName
}

// Validate checks all fields and collects all errors.
func (i ChangeStatusInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	if !i.Status.IsPredefined() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ChangePriorityInput holds the parameters for a priority change.
type ChangePriorityInput struct {
	DefectID int64
	Priority domain.Priority
}

// Validate checks all fields and collects all errors.
func (i ChangePriorityInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	if !i.Priority.IsValid() {
		errs = append(errs, domain.FieldError{Field: "priority", Message: "invalid priority"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AssignInput holds the parameters for (un)assigning a defect.
type AssignInput struct {
	DefectID   int64
	AssigneeID *int64 // nil = unassign
}

// Validate checks all fields and collects all errors.
func (i AssignInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	if i.AssigneeID != nil && *i.AssigneeID <= 0 {
		errs = append(errs, domain.FieldError{Field: "assignee_id", Message: "must be positive"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// EditInput holds descriptive field changes. Nil fields are left untouched.
type EditInput struct {
	DefectID     int64
	Title        *string
	Description  *string // ptr("") = clear
	StageID      *int64
	ClearStage   bool
	DueDate      *time.Time
	ClearDueDate bool
}

// Validate checks all fields and collects all errors.
func (i EditInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	if i.Title != nil {
		errs = validateTitle(errs, *i.Title)
	}
	errs = validateDescription(errs, i.Description)
	if i.StageID != nil && i.ClearStage {
		errs = append(errs, domain.FieldError{Field: "stage_id", Message: "cannot set and clear at once"})
	}
	if i.StageID != nil && *i.StageID <= 0 {
		errs = append(errs, domain.FieldError{Field: "stage_id", Message: "must be positive"})
	}
	if i.DueDate != nil && i.ClearDueDate {
		errs = append(errs, domain.FieldError{Field: "due_date", Message: "cannot set and clear at once"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddCommentInput holds the parameters for commenting on a defect.
type AddCommentInput struct {
	DefectID int64
	Body     string
}

// Validate checks all fields and collects all errors.
func (i AddCommentInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	body := strings.TrimSpace(i.Body)
	if body == "" {
		errs = append(errs, domain.FieldError{Field: "body", Message: "required"})
	}
	if utf8.RuneCountInString(body) > maxCommentLen {
		errs = append(errs, domain.FieldError{Field: "body", Message: "max 10000 characters"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// AddAttachmentInput holds the metadata of an uploaded blob.
// StorageKey may be left empty to have one minted.
type AddAttachmentInput struct {
	DefectID    int64
	FileName    string
	SizeBytes   int64
	ContentType string
	StorageKey  string
}

// Validate checks all fields and collects all errors. The size limit is
// checked by the service against configuration.
func (i AddAttachmentInput) Validate() error {
	var errs []domain.FieldError

	if i.DefectID <= 0 {
		errs = append(errs, domain.FieldError{Field: "defect_id", Message: "required"})
	}
	name := strings.TrimSpace(i.FileName)
	if name == "" {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "required"})
	}
	if utf8.RuneCountInString(name) > maxFileNameLen {
		errs = append(errs, domain.FieldError{Field: "file_name", Message: "max 255 characters"})
	}
	if i.SizeBytes < 0 {
		errs = append(errs, domain.FieldError{Field: "size_bytes", Message: "must be non-negative"})
	}
	if strings.TrimSpace(i.ContentType) == "" {
		errs = append(errs, domain.FieldError{Field: "content_type", Message: "required"})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// ListDefectsInput holds the parameters for listing defects.
type ListDefectsInput struct {
	ProjectID  *int64
	StageID    *int64
	Status     *domain.StatusName
	AssigneeID *int64
	Limit      int
	Offset     int
}

// Validate checks all fields and collects all errors.
func (i ListDefectsInput) Validate() error {
	var errs []domain.FieldError

	if i.Status != nil && !i.Status.IsPredefined() {
		errs = append(errs, domain.FieldError{Field: "status", Message: "unknown status"})
	}
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

func validateTitle(errs []domain.FieldError, title string) []domain.FieldError {
	title = strings.TrimSpace(title)
	if title == "" {
		return append(errs, domain.FieldError{Field: "title", Message: "required"})
	}
	if utf8.RuneCountInString(title) > maxTitleLen {
		return append(errs, domain.FieldError{Field: "title", Message: "max 255 characters"})
	}
	return errs
}

func validateDescription(errs []domain.FieldError, description *string) []domain.FieldError {
	if description != nil && utf8.RuneCountInString(strings.TrimSpace(*description)) > maxDescriptionLen {
		return append(errs, domain.FieldError{Field: "description", Message: "max 5000 characters"})
	}
	return errs
}

// trimOrNil trims whitespace. Returns nil if result is empty.
func trimOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
