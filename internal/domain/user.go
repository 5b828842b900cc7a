package domain

import "time"

// Role is predefined reference data describing what a user may do.
type Role struct {
	ID          int64
	Name        RoleName
	Description string
}

// User is a person acting on defects. Users are deactivated, not removed.
type User struct {
	ID        int64
	Email     string
	FullName  string
	RoleID    int64
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor is the resolved caller identity attached to every core operation.
type Actor struct {
	UserID int64
	Role   RoleName
}

// IsPrivileged reports whether the actor may force-edit locked defects.
func (a Actor) IsPrivileged() bool {
	return a.Role.IsPrivileged()
}
