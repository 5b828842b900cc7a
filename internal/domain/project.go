package domain

import "time"

// Project groups defects of one construction site under a single manager.
type Project struct {
	ID          int64
	Name        string
	Description *string
	ManagerID   int64
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProjectStage is an ordered phase of a project. Stages are removed together
// with their project.
type ProjectStage struct {
	ID          int64
	ProjectID   int64
	Name        string
	Description *string
	Position    int
	StartDate   *time.Time
	EndDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
