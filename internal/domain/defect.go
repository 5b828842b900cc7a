package domain

import "time"

// DefectStatus is reference data backing the lifecycle states.
type DefectStatus struct {
	ID          int64
	Name        StatusName
	Description string
}

// Defect is the central mutable entity. Status holds the resolved name of StatusID.
type Defect struct {
	ID          int64
	ProjectID   int64
	StageID     *int64
	Title       string
	Description *string
	Priority    Priority
	StatusID    int64
	Status      StatusName
	ReporterID  int64
	AssigneeID  *int64
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsLocked reports whether the defect sits in a terminal status.
func (d *Defect) IsLocked() bool {
	return d.Status.IsTerminal()
}

// DefectFilter narrows defect listings. Zero values mean "any".
type DefectFilter struct {
	ProjectID  *int64
	StageID    *int64
	Status     *StatusName
	AssigneeID *int64
	Limit      int
	Offset     int
}

// Comment is a note left on a defect.
type Comment struct {
	ID        int64
	DefectID  int64
	AuthorID  int64
	Body      string
	CreatedAt time.Time
}

// Attachment is file metadata for a blob held by external storage.
type Attachment struct {
	ID          int64
	DefectID    int64
	UploaderID  int64
	FileName    string
	SizeBytes   int64
	ContentType string
	StorageKey  string
	CreatedAt   time.Time
	DeletedAt   *time.Time
}

// IsDeleted returns true if the attachment has been soft-deleted.
func (a *Attachment) IsDeleted() bool {
	return a.DeletedAt != nil
}
