package domain

import (
	"encoding/json"
	"time"
)

// ReportFilter is the scope of a report. Empty slices and nil bounds mean "any".
type ReportFilter struct {
	ProjectIDs  []int64      `json:"project_ids,omitempty"`
	StageIDs    []int64      `json:"stage_ids,omitempty"`
	Statuses    []StatusName `json:"statuses,omitempty"`
	Priorities  []Priority   `json:"priorities,omitempty"`
	CreatedFrom *time.Time   `json:"created_from,omitempty"`
	CreatedTo   *time.Time   `json:"created_to,omitempty"`
}

// Validate checks everything that can be checked without the store.
// Unknown project and stage ids are detected while loading the snapshot.
func (f ReportFilter) Validate() error {
	if f.CreatedFrom != nil && f.CreatedTo != nil && !f.CreatedFrom.Before(*f.CreatedTo) {
		return NewFilterError("created_to", "must be after created_from")
	}
	for _, s := range f.Statuses {
		if !s.IsPredefined() {
			return NewFilterError("statuses", "unknown status "+string(s))
		}
	}
	for _, p := range f.Priorities {
		if !p.IsValid() {
			return NewFilterError("priorities", "invalid priority "+string(p))
		}
	}
	for _, id := range f.ProjectIDs {
		if id <= 0 {
			return NewFilterError("project_ids", "ids must be positive")
		}
	}
	for _, id := range f.StageIDs {
		if id <= 0 {
			return NewFilterError("stage_ids", "ids must be positive")
		}
	}
	return nil
}

// ReportSpec is a full report request.
type ReportSpec struct {
	Filter        ReportFilter
	GroupBy       GroupBy
	Bucket        TimeBucket
	WithDurations bool
}

// Validate checks the filter and the grouping.
func (s ReportSpec) Validate() error {
	if err := s.Filter.Validate(); err != nil {
		return err
	}
	if !s.GroupBy.IsValid() {
		return NewFilterError("group_by", "unknown grouping "+string(s.GroupBy))
	}
	if s.GroupBy == GroupByTime && !s.Bucket.IsValid() {
		return NewFilterError("bucket", "unknown time bucket "+string(s.Bucket))
	}
	return nil
}

// ReportGroup is the aggregate of one group key. Durations are in seconds of
// time spent in the current status and are nil when not requested or when the
// group is empty.
type ReportGroup struct {
	Key           string   `json:"key"`
	Count         int      `json:"count"`
	MeanSeconds   *float64 `json:"mean_seconds,omitempty"`
	MedianSeconds *float64 `json:"median_seconds,omitempty"`
}

// StatusDwell summarises every segment a defect spent in a status.
type StatusDwell struct {
	Status        StatusName `json:"status"`
	Segments      int        `json:"segments"`
	MeanSeconds   float64    `json:"mean_seconds"`
	MedianSeconds float64    `json:"median_seconds"`
}

// ReportResult is the deterministic output of one aggregation.
type ReportResult struct {
	SnapshotAt time.Time     `json:"snapshot_at"`
	GroupBy    GroupBy       `json:"group_by"`
	Bucket     TimeBucket    `json:"bucket,omitempty"`
	Total      int           `json:"total"`
	Empty      bool          `json:"empty"`
	Groups     []ReportGroup `json:"groups"`
	Dwell      []StatusDwell `json:"dwell,omitempty"`
}

// Count returns the count of the group with key, or 0.
func (r *ReportResult) Count(key string) int {
	for _, g := range r.Groups {
		if g.Key == key {
			return g.Count
		}
	}
	return 0
}

// Report is a persisted, immutable report.
type Report struct {
	ID          int64
	RequesterID int64
	Filters     json.RawMessage
	GroupBy     GroupBy
	GeneratedAt time.Time
	Result      json.RawMessage
	CreatedAt   time.Time
}

// ReportDefect is the slice of defect state a report reads.
type ReportDefect struct {
	ID         int64
	ProjectID  int64
	StageID    *int64
	Status     StatusName
	Priority   Priority
	AssigneeID *int64
	CreatedAt  time.Time
}

// StatusEvent is a point in time at which a defect entered a status.
type StatusEvent struct {
	DefectID int64
	Status   StatusName
	At       time.Time
}

// ReportSnapshot is everything read inside one snapshot transaction.
// Events are ordered by defect, then by history order.
type ReportSnapshot struct {
	At      time.Time
	Defects []ReportDefect
	Events  []StatusEvent
}
