package defect

import (
	"context"
	"strings"

	"github.com/heartmarshall/sitedefects-backend/internal/domain"
)

// ChangeStatus moves the defect along the transition table. Leaving a
// terminal status requires a privileged actor.
func (s *Service) ChangeStatus(ctx context.Context, input ChangeStatusInput) (domain.Defect, error) {
	if err := input.Validate(); err != nil {
		return domain.Defect{}, err
	}
	statusID, err := s.statusID(input.Status)
	if err != nil {
		return domain.Defect{}, err
	}

	d, _, err := s.mutate(ctx, opStatus, input.DefectID, func(txCtx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error) {
		if err := domain.CheckTransition(d, input.Status, actor); err != nil {
			return nil, err
		}
		updatedAt, err := s.defects.Update(txCtx, d.ID, domain.DefectUpdateParams{StatusID: &statusID})
		if err != nil {
			return nil, err
		}

		change := domain.StatusChanged{From: d.Status, To: input.Status}
		d.StatusID, d.Status, d.UpdatedAt = statusID, input.Status, updatedAt
		return change, nil
	})
	return d, err
}

// ChangePriority sets the priority. On a locked defect only a privileged
// actor may do so, and the entry is marked as an override. Setting the
// current priority again is a no-op.
func (s *Service) ChangePriority(ctx context.Context, input ChangePriorityInput) (domain.Defect, error) {
	if err := input.Validate(); err != nil {
		return domain.Defect{}, err
	}

	d, _, err := s.mutate(ctx, opPriority, input.DefectID, func(txCtx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error) {
		override, err := domain.CheckEdit(d, "priority", actor)
		if err != nil {
			return nil, err
		}
		if d.Priority == input.Priority {
			return nil, nil
		}
		updatedAt, err := s.defects.Update(txCtx, d.ID, domain.DefectUpdateParams{Priority: &input.Priority})
		if err != nil {
			return nil, err
		}

		change := domain.PriorityChanged{From: d.Priority, To: input.Priority, Override: override}
		d.Priority, d.UpdatedAt = input.Priority, updatedAt
		return change, nil
	})
	return d, err
}

// Assign sets or clears the assignee. Allowed in every status. The assignee
// must be an active user; re-assigning the current assignee is a no-op.
func (s *Service) Assign(ctx context.Context, input AssignInput) (domain.Defect, error) {
	if err := input.Validate(); err != nil {
		return domain.Defect{}, err
	}

	d, _, err := s.mutate(ctx, opAssign, input.DefectID, func(txCtx context.Context, d *domain.Defect, _ domain.Actor) (domain.Change, error) {
		if sameID(d.AssigneeID, input.AssigneeID) {
			return nil, nil
		}
		if err := s.checkAssignee(txCtx, d.ID, input.AssigneeID); err != nil {
			return nil, err
		}

		params := domain.DefectUpdateParams{AssigneeID: input.AssigneeID, ClearAssignee: input.AssigneeID == nil}
		updatedAt, err := s.defects.Update(txCtx, d.ID, params)
		if err != nil {
			return nil, err
		}

		change := domain.Assigned{From: d.AssigneeID, To: input.AssigneeID}
		d.AssigneeID, d.UpdatedAt = input.AssigneeID, updatedAt
		return change, nil
	})
	return d, err
}

// Edit changes descriptive fields. Only fields that differ from the stored
// values are written and recorded; an edit that changes nothing is a no-op.
// Locked defects follow the same override rule as priority changes.
func (s *Service) Edit(ctx context.Context, input EditInput) (domain.Defect, error) {
	if err := input.Validate(); err != nil {
		return domain.Defect{}, err
	}

	d, _, err := s.mutate(ctx, opEdit, input.DefectID, func(txCtx context.Context, d *domain.Defect, actor domain.Actor) (domain.Change, error) {
		params, before, after := diffEdit(d, input)
		if len(after) == 0 {
			return nil, nil
		}
		override, err := domain.CheckEdit(d, firstKey(after), actor)
		if err != nil {
			return nil, err
		}

		updatedAt, err := s.defects.Update(txCtx, d.ID, params)
		if err != nil {
			return nil, err
		}

		applyEdit(d, params)
		d.UpdatedAt = updatedAt
		return domain.Edited{Before: before, After: after, Override: override}, nil
	})
	return d, err
}

// diffEdit compares input with d and returns the update for changed fields
// together with their old and new values.
func diffEdit(d *domain.Defect, input EditInput) (domain.DefectUpdateParams, map[string]any, map[string]any) {
	var params domain.DefectUpdateParams
	before := map[string]any{}
	after := map[string]any{}

	if input.Title != nil {
		title := strings.TrimSpace(*input.Title)
		if title != d.Title {
			params.Title = &title
			before["title"], after["title"] = d.Title, title
		}
	}
	if input.Description != nil {
		next := trimOrNil(input.Description)
		if !sameString(d.Description, next) {
			cleared := ""
			if next == nil {
				next = &cleared
			}
			params.Description = next
			before["description"], after["description"] = d.Description, trimOrNil(next)
		}
	}
	switch {
	case input.ClearStage && d.StageID != nil:
		params.ClearStage = true
		before["stage_id"], after["stage_id"] = d.StageID, nil
	case input.StageID != nil && !sameID(d.StageID, input.StageID):
		params.StageID = input.StageID
		before["stage_id"], after["stage_id"] = d.StageID, *input.StageID
	}
	switch {
	case input.ClearDueDate && d.DueDate != nil:
		params.ClearDueDate = true
		before["due_date"], after["due_date"] = d.DueDate, nil
	case input.DueDate != nil && !sameDate(d.DueDate, input.DueDate):
		due := calendarDate(input.DueDate)
		params.DueDate = due
		before["due_date"], after["due_date"] = d.DueDate, *due
	}
	return params, before, after
}

// applyEdit mirrors a written update onto the in-memory defect.
func applyEdit(d *domain.Defect, p domain.DefectUpdateParams) {
	if p.Title != nil {
		d.Title = *p.Title
	}
	if p.Description != nil {
		d.Description = trimOrNil(p.Description)
	}
	if p.ClearStage {
		d.StageID = nil
	} else if p.StageID != nil {
		d.StageID = p.StageID
	}
	if p.ClearDueDate {
		d.DueDate = nil
	} else if p.DueDate != nil {
		d.DueDate = p.DueDate
	}
}

// firstKey returns the alphabetically first changed field, for error messages.
func firstKey(m map[string]any) string {
	first := ""
	for k := range m {
		if first == "" || k < first {
			first = k
		}
	}
	return first
}

func sameString(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
