package domain

// Priority is the urgency of a defect. It is independent of status.
type Priority string

const (
	PriorityLow      Priority = "LOW"
	PriorityMedium   Priority = "MEDIUM"
	PriorityHigh     Priority = "HIGH"
	PriorityCritical Priority = "CRITICAL"
)

// Priorities lists all priorities from lowest to highest.
var Priorities = []Priority{PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical}

func (p Priority) String() string { return string(p) }

func (p Priority) IsValid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh, PriorityCritical:
		return true
	}
	return false
}

// StatusName is the name of a DefectStatus row. The predefined names drive
// the lifecycle state machine.
type StatusName string

const (
	StatusNew        StatusName = "New"
	StatusInProgress StatusName = "In Progress"
	StatusReview     StatusName = "Review"
	StatusClosed     StatusName = "Closed"
	StatusCanceled   StatusName = "Canceled"
)

// Statuses lists the predefined statuses in lifecycle order.
var Statuses = []StatusName{StatusNew, StatusInProgress, StatusReview, StatusClosed, StatusCanceled}

func (s StatusName) String() string { return string(s) }

func (s StatusName) IsPredefined() bool {
	switch s {
	case StatusNew, StatusInProgress, StatusReview, StatusClosed, StatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether the status locks the defect against ordinary edits.
func (s StatusName) IsTerminal() bool {
	return s == StatusClosed || s == StatusCanceled
}

// RoleName is the name of a Role row.
type RoleName string

const (
	RoleEngineer RoleName = "Engineer"
	RoleManager  RoleName = "Manager"
	RoleObserver RoleName = "Observer"
	RoleAdmin    RoleName = "Admin"
)

// Roles lists the predefined roles.
var Roles = []RoleName{RoleEngineer, RoleManager, RoleObserver, RoleAdmin}

func (r RoleName) String() string { return string(r) }

func (r RoleName) IsPredefined() bool {
	switch r {
	case RoleEngineer, RoleManager, RoleObserver, RoleAdmin:
		return true
	}
	return false
}

// IsPrivileged reports whether the role may override locked defects.
func (r RoleName) IsPrivileged() bool {
	return r == RoleAdmin || r == RoleManager
}

// HistoryAction is the closed set of history log action kinds.
type HistoryAction string

const (
	ActionCreated           HistoryAction = "CREATED"
	ActionStatusChanged     HistoryAction = "STATUS_CHANGED"
	ActionPriorityChanged   HistoryAction = "PRIORITY_CHANGED"
	ActionAssigned          HistoryAction = "ASSIGNED"
	ActionCommented         HistoryAction = "COMMENTED"
	ActionAttachmentAdded   HistoryAction = "ATTACHMENT_ADDED"
	ActionAttachmentRemoved HistoryAction = "ATTACHMENT_REMOVED"
	ActionEdited            HistoryAction = "EDITED"
	// ActionClosed and ActionReopened are accepted on read only; closing and
	// reopening are recorded as ActionStatusChanged.
	ActionClosed            HistoryAction = "CLOSED"
	ActionReopened          HistoryAction = "REOPENED"
	ActionDeleted           HistoryAction = "DELETED"
)

func (a HistoryAction) String() string { return string(a) }

func (a HistoryAction) IsValid() bool {
	switch a {
	case ActionCreated, ActionStatusChanged, ActionPriorityChanged, ActionAssigned,
		ActionCommented, ActionAttachmentAdded, ActionAttachmentRemoved, ActionEdited,
		ActionClosed, ActionReopened, ActionDeleted:
		return true
	}
	return false
}

// IsStatusEvent reports whether entries of this action carry a status snapshot
// usable for time-in-status calculations.
func (a HistoryAction) IsStatusEvent() bool {
	switch a {
	case ActionCreated, ActionStatusChanged, ActionClosed, ActionReopened:
		return true
	}
	return false
}

// EntityType identifies the kind of persisted entity (used in errors and history).
type EntityType string

const (
	EntityTypeRole         EntityType = "ROLE"
	EntityTypeUser         EntityType = "USER"
	EntityTypeProject      EntityType = "PROJECT"
	EntityTypeProjectStage EntityType = "PROJECT_STAGE"
	EntityTypeDefectStatus EntityType = "DEFECT_STATUS"
	EntityTypeDefect       EntityType = "DEFECT"
	EntityTypeComment      EntityType = "COMMENT"
	EntityTypeAttachment   EntityType = "ATTACHMENT"
	EntityTypeHistoryLog   EntityType = "HISTORY_LOG"
	EntityTypeReport       EntityType = "REPORT"
)

func (e EntityType) String() string { return string(e) }

func (e EntityType) IsValid() bool {
	switch e {
	case EntityTypeRole, EntityTypeUser, EntityTypeProject, EntityTypeProjectStage,
		EntityTypeDefectStatus, EntityTypeDefect, EntityTypeComment, EntityTypeAttachment,
		EntityTypeHistoryLog, EntityTypeReport:
		return true
	}
	return false
}

// DeletePolicy describes what deleting a row of an entity type does.
type DeletePolicy string

const (
	DeleteCascade   DeletePolicy = "CASCADE"
	DeleteSoft      DeletePolicy = "SOFT"
	DeleteGuarded   DeletePolicy = "GUARDED"
	DeleteForbidden DeletePolicy = "FORBIDDEN"
)

// DeletePolicy returns the delete policy enforced for the entity type.
// Projects cascade to stages but are still guarded by defects; defects cascade
// to comments. Comments are only removed through their defect.
func (e EntityType) DeletePolicy() DeletePolicy {
	switch e {
	case EntityTypeProject, EntityTypeDefect:
		return DeleteCascade
	case EntityTypeAttachment:
		return DeleteSoft
	case EntityTypeHistoryLog, EntityTypeComment:
		return DeleteForbidden
	default:
		return DeleteGuarded
	}
}

// GroupBy is the report grouping dimension.
type GroupBy string

const (
	GroupByStatus   GroupBy = "STATUS"
	GroupByPriority GroupBy = "PRIORITY"
	GroupByAssignee GroupBy = "ASSIGNEE"
	GroupByProject  GroupBy = "PROJECT"
	GroupByStage    GroupBy = "STAGE"
	GroupByTime     GroupBy = "TIME"
)

func (g GroupBy) String() string { return string(g) }

func (g GroupBy) IsValid() bool {
	switch g {
	case GroupByStatus, GroupByPriority, GroupByAssignee, GroupByProject, GroupByStage, GroupByTime:
		return true
	}
	return false
}

// TimeBucket is the granularity used by GroupByTime.
type TimeBucket string

const (
	BucketDay   TimeBucket = "DAY"
	BucketWeek  TimeBucket = "WEEK"
	BucketMonth TimeBucket = "MONTH"
)

func (b TimeBucket) String() string { return string(b) }

func (b TimeBucket) IsValid() bool {
	switch b {
	case BucketDay, BucketWeek, BucketMonth:
		return true
	}
	return false
}
