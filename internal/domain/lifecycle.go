package domain

// transitions is the defect status state machine.
var transitions = map[StatusName][]StatusName{
	StatusNew:        {StatusInProgress, StatusCanceled},
	StatusInProgress: {StatusReview, StatusCanceled},
	StatusReview:     {StatusInProgress, StatusClosed},
	StatusClosed:     {StatusInProgress},
	StatusCanceled:   {},
}

// InitialStatus is the status every new defect starts in.
const InitialStatus = StatusNew

// CanTransition reports whether from -> to is in the transition table.
func CanTransition(from, to StatusName) bool {
	for _, s := range transitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one.
func AllowedTransitions(from StatusName) []StatusName {
	next := transitions[from]
	out := make([]StatusName, len(next))
	copy(out, next)
	return out
}

// CheckTransition validates a status change for the actor.
// Leaving a terminal status (reopen) requires a privileged role.
func CheckTransition(d *Defect, to StatusName, actor Actor) error {
	if !CanTransition(d.Status, to) {
		return &TransitionError{DefectID: d.ID, From: d.Status, To: to}
	}
	if d.IsLocked() && !actor.IsPrivileged() {
		return &LockedError{DefectID: d.ID, Status: d.Status, Field: "status"}
	}
	return nil
}

// CheckEdit validates a non-status change of field on d.
// It returns override=true when a privileged actor edits a locked defect.
func CheckEdit(d *Defect, field string, actor Actor) (override bool, err error) {
	if !d.IsLocked() {
		return false, nil
	}
	if !actor.IsPrivileged() {
		return false, &LockedError{DefectID: d.ID, Status: d.Status, Field: field}
	}
	return true, nil
}
