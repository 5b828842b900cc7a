package domain

import "fmt"

// ReferenceData maps predefined role and status names to their row ids.
// It is loaded once at startup and shared read-only.
type ReferenceData struct {
	roles      map[RoleName]int64
	statuses   map[StatusName]int64
	statusByID map[int64]StatusName
}

// NewReferenceData builds the lookup tables. Every predefined role and status
// must be present.
func NewReferenceData(roles []Role, statuses []DefectStatus) (*ReferenceData, error) {
	rd := &ReferenceData{
		roles:      make(map[RoleName]int64, len(roles)),
		statuses:   make(map[StatusName]int64, len(statuses)),
		statusByID: make(map[int64]StatusName, len(statuses)),
	}
	for _, r := range roles {
		rd.roles[r.Name] = r.ID
	}
	for _, s := range statuses {
		rd.statuses[s.Name] = s.ID
		rd.statusByID[s.ID] = s.Name
	}

	for _, name := range Roles {
		if _, ok := rd.roles[name]; !ok {
			return nil, fmt.Errorf("reference data: role %q missing", name)
		}
	}
	for _, name := range Statuses {
		if _, ok := rd.statuses[name]; !ok {
			return nil, fmt.Errorf("reference data: status %q missing", name)
		}
	}
	return rd, nil
}

// RoleID returns the id of the named role.
func (rd *ReferenceData) RoleID(name RoleName) (int64, bool) {
	id, ok := rd.roles[name]
	return id, ok
}

// StatusID returns the id of the named status.
func (rd *ReferenceData) StatusID(name StatusName) (int64, bool) {
	id, ok := rd.statuses[name]
	return id, ok
}

// StatusName returns the name of the status id.
func (rd *ReferenceData) StatusName(id int64) (StatusName, bool) {
	name, ok := rd.statusByID[id]
	return name, ok
}
