package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// HistoryLog is one immutable audit record of a defect mutation.
// Before and After hold compact JSON snapshots of the changed fields only.
type HistoryLog struct {
	ID         int64
	DefectID   int64
	EntityType EntityType
	EntityID   int64
	ActorID    int64
	Action     HistoryAction
	Before     json.RawMessage
	After      json.RawMessage
	CreatedAt  time.Time
}

// Change decodes the entry payload into its typed variant.
func (h HistoryLog) Change() (Change, error) {
	return DecodeChange(h.Action, h.Before, h.After)
}

// HistoryRange bounds a history read by created_at: From inclusive, To exclusive.
type HistoryRange struct {
	From *time.Time
	To   *time.Time
}

// Validate rejects empty or inverted ranges.
func (r HistoryRange) Validate() error {
	if r.From != nil && r.To != nil && !r.From.Before(*r.To) {
		return NewValidationError("to", "must be after from")
	}
	return nil
}

// Change is a closed set of defect mutations. Each variant fixes the action
// kind and the before/after payload shape stored in HistoryLog.
type Change interface {
	Action() HistoryAction
	// Subject returns the entity the change is about. A zero id means the defect itself.
	Subject() (EntityType, int64)
	snapshots() (before, after any)
}

// DefectCreated is recorded once when a defect is inserted.
type DefectCreated struct {
	Title      string     `json:"title"`
	Status     StatusName `json:"status"`
	Priority   Priority   `json:"priority"`
	ProjectID  int64      `json:"project_id"`
	StageID    *int64     `json:"stage_id"`
	AssigneeID *int64     `json:"assignee_id"`
}

// StatusChanged is recorded for every accepted status transition.
type StatusChanged struct {
	From StatusName
	To   StatusName
}

// PriorityChanged records a priority edit. Override is set when a privileged
// actor changed a locked defect.
type PriorityChanged struct {
	From     Priority
	To       Priority
	Override bool
}

// Assigned records setting or clearing the assignee.
type Assigned struct {
	From *int64
	To   *int64
}

// Commented records a new comment on the defect.
type Commented struct {
	CommentID int64
}

// AttachmentAdded records new attachment metadata.
type AttachmentAdded struct {
	AttachmentID int64
	FileName     string
}

// AttachmentRemoved records an attachment soft delete.
type AttachmentRemoved struct {
	AttachmentID int64
	FileName     string
}

// Edited records changes to descriptive fields. Only changed fields are present.
type Edited struct {
	Before   map[string]any
	After    map[string]any
	Override bool
}

// DefectDeleted is the final entry of a deleted defect.
type DefectDeleted struct {
	Title     string     `json:"title"`
	Status    StatusName `json:"status"`
	Priority  Priority   `json:"priority"`
	ProjectID int64      `json:"project_id"`
}

func (DefectCreated) Action() HistoryAction     { return ActionCreated }
func (StatusChanged) Action() HistoryAction     { return ActionStatusChanged }
func (PriorityChanged) Action() HistoryAction   { return ActionPriorityChanged }
func (Assigned) Action() HistoryAction          { return ActionAssigned }
func (Commented) Action() HistoryAction         { return ActionCommented }
func (AttachmentAdded) Action() HistoryAction   { return ActionAttachmentAdded }
func (AttachmentRemoved) Action() HistoryAction { return ActionAttachmentRemoved }
func (Edited) Action() HistoryAction            { return ActionEdited }
func (DefectDeleted) Action() HistoryAction     { return ActionDeleted }

func (DefectCreated) Subject() (EntityType, int64)   { return EntityTypeDefect, 0 }
func (StatusChanged) Subject() (EntityType, int64)   { return EntityTypeDefect, 0 }
func (PriorityChanged) Subject() (EntityType, int64) { return EntityTypeDefect, 0 }
func (Assigned) Subject() (EntityType, int64)        { return EntityTypeDefect, 0 }
func (Edited) Subject() (EntityType, int64)          { return EntityTypeDefect, 0 }
func (DefectDeleted) Subject() (EntityType, int64)   { return EntityTypeDefect, 0 }
func (c Commented) Subject() (EntityType, int64)     { return EntityTypeComment, c.CommentID }
func (c AttachmentAdded) Subject() (EntityType, int64) {
	return EntityTypeAttachment, c.AttachmentID
}
func (c AttachmentRemoved) Subject() (EntityType, int64) {
	return EntityTypeAttachment, c.AttachmentID
}

type statusPayload struct {
	Status StatusName `json:"status"`
}

type priorityPayload struct {
	Priority Priority `json:"priority"`
	Override bool     `json:"override,omitempty"`
}

type assigneePayload struct {
	AssigneeID *int64 `json:"assignee_id"`
}

type commentPayload struct {
	CommentID int64 `json:"comment_id"`
}

type attachmentPayload struct {
	AttachmentID int64  `json:"attachment_id"`
	FileName     string `json:"file_name"`
}

type editPayload struct {
	Fields   map[string]any `json:"fields"`
	Override bool           `json:"override,omitempty"`
}

func (c DefectCreated) snapshots() (any, any) { return nil, c }

func (c StatusChanged) snapshots() (any, any) {
	return statusPayload{c.From}, statusPayload{c.To}
}

func (c PriorityChanged) snapshots() (any, any) {
	return priorityPayload{Priority: c.From}, priorityPayload{Priority: c.To, Override: c.Override}
}

func (c Assigned) snapshots() (any, any) {
	return assigneePayload{c.From}, assigneePayload{c.To}
}

func (c Commented) snapshots() (any, any) { return nil, commentPayload{c.CommentID} }

func (c AttachmentAdded) snapshots() (any, any) {
	return nil, attachmentPayload{c.AttachmentID, c.FileName}
}

func (c AttachmentRemoved) snapshots() (any, any) {
	return attachmentPayload{c.AttachmentID, c.FileName}, nil
}

func (c Edited) snapshots() (any, any) {
	return editPayload{Fields: c.Before}, editPayload{Fields: c.After, Override: c.Override}
}

func (c DefectDeleted) snapshots() (any, any) { return c, nil }

// EncodeChange serializes the before/after snapshots of c. A nil side encodes
// as a nil slice (SQL NULL).
func EncodeChange(c Change) (before, after []byte, err error) {
	b, a := c.snapshots()
	if b != nil {
		if before, err = json.Marshal(b); err != nil {
			return nil, nil, fmt.Errorf("encode %s before: %w", c.Action(), err)
		}
	}
	if a != nil {
		if after, err = json.Marshal(a); err != nil {
			return nil, nil, fmt.Errorf("encode %s after: %w", c.Action(), err)
		}
	}
	return before, after, nil
}

// DecodeChange rebuilds the variant stored under action. CLOSED and REOPENED
// entries share the status payload and decode as StatusChanged.
func DecodeChange(action HistoryAction, before, after []byte) (Change, error) {
	switch action {
	case ActionCreated:
		var c DefectCreated
		err := unmarshalSide(after, &c)
		return c, wrapDecode(action, err)
	case ActionStatusChanged, ActionClosed, ActionReopened:
		var b, a statusPayload
		err := firstErr(unmarshalSide(before, &b), unmarshalSide(after, &a))
		return StatusChanged{From: b.Status, To: a.Status}, wrapDecode(action, err)
	case ActionPriorityChanged:
		var b, a priorityPayload
		err := firstErr(unmarshalSide(before, &b), unmarshalSide(after, &a))
		return PriorityChanged{From: b.Priority, To: a.Priority, Override: a.Override}, wrapDecode(action, err)
	case ActionAssigned:
		var b, a assigneePayload
		err := firstErr(unmarshalSide(before, &b), unmarshalSide(after, &a))
		return Assigned{From: b.AssigneeID, To: a.AssigneeID}, wrapDecode(action, err)
	case ActionCommented:
		var a commentPayload
		err := unmarshalSide(after, &a)
		return Commented{CommentID: a.CommentID}, wrapDecode(action, err)
	case ActionAttachmentAdded:
		var a attachmentPayload
		err := unmarshalSide(after, &a)
		return AttachmentAdded{AttachmentID: a.AttachmentID, FileName: a.FileName}, wrapDecode(action, err)
	case ActionAttachmentRemoved:
		var b attachmentPayload
		err := unmarshalSide(before, &b)
		return AttachmentRemoved{AttachmentID: b.AttachmentID, FileName: b.FileName}, wrapDecode(action, err)
	case ActionEdited:
		var b, a editPayload
		err := firstErr(unmarshalSide(before, &b), unmarshalSide(after, &a))
		return Edited{Before: b.Fields, After: a.Fields, Override: a.Override}, wrapDecode(action, err)
	case ActionDeleted:
		var c DefectDeleted
		err := unmarshalSide(before, &c)
		return c, wrapDecode(action, err)
	default:
		return nil, fmt.Errorf("decode change: unknown action %q", action)
	}
}

func unmarshalSide(data []byte, v any) error {
	if len(data) == 0 || string(data) == "null" {
		return nil
	}
	return json.Unmarshal(data, v)
}

func firstErr(errs ...error) error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func wrapDecode(action HistoryAction, err error) error {
	if err != nil {
		return fmt.Errorf("decode %s: %w", action, err)
	}
	return nil
}

// StatusAfter extracts the status an entry moved the defect into, for actions
// that carry one.
func (h HistoryLog) StatusAfter() (StatusName, bool) {
	if !h.Action.IsStatusEvent() {
		return "", false
	}
	var p statusPayload
	if err := unmarshalSide(h.After, &p); err != nil || p.Status == "" {
		return "", false
	}
	return p.Status, true
}
