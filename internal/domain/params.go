package domain

import "time"

// UserUpdateParams lists user fields to change. Nil fields are left untouched.
type UserUpdateParams struct {
	Email    *string
	FullName *string
	RoleID   *int64
	IsActive *bool
}

// IsEmpty reports whether no field is set.
func (p UserUpdateParams) IsEmpty() bool {
	return p.Email == nil && p.FullName == nil && p.RoleID == nil && p.IsActive == nil
}

// UserFilter narrows user listings. Zero values mean "any".
type UserFilter struct {
	RoleID     *int64
	ActiveOnly bool
	Limit      int
	Offset     int
}

// ProjectUpdateParams lists project fields to change. Nil fields are left
// untouched; an empty Description clears it.
type ProjectUpdateParams struct {
	Name        *string
	Description *string
	ManagerID   *int64
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether no field is set.
func (p ProjectUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.ManagerID == nil && p.StartDate == nil && p.EndDate == nil
}

// StageUpdateParams lists stage fields to change. Nil fields are left
// untouched; an empty Description clears it.
type StageUpdateParams struct {
	Name        *string
	Description *string
	Position    *int
	StartDate   *time.Time
	EndDate     *time.Time
}

// IsEmpty reports whether no field is set.
func (p StageUpdateParams) IsEmpty() bool {
	return p.Name == nil && p.Description == nil && p.Position == nil && p.StartDate == nil && p.EndDate == nil
}

// DefectUpdateParams lists defect columns to write. Nil fields are left
// untouched. The Clear flags set the column to NULL; an empty Description
// clears it.
type DefectUpdateParams struct {
	Title         *string
	Description   *string
	StageID       *int64
	ClearStage    bool
	Priority      *Priority
	StatusID      *int64
	AssigneeID    *int64
	ClearAssignee bool
	DueDate       *time.Time
	ClearDueDate  bool
}
