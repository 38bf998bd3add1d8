// Package workflow holds the resource-request lifecycle rules: which status
// transitions are legal, what each role may see and do for a given request,
// and the field-level rules (skills caps, interview-slot selection) the forms
// enforce. Everything here is pure; controllers consult it before touching
// the database.
package workflow

// Role is an employee's workflow role.
type Role string

const (
	RoleAdmin     Role = "Admin"
	RoleRecruiter Role = "Recruiter"
	RoleManager   Role = "Manager"
	RoleTeamLead  Role = "TeamLead"
)

// Status is a resource request's lifecycle state.
type Status string

const (
	StatusInProgress Status = "InProgress"
	StatusAccepted   Status = "Accepted"
	StatusRejected   Status = "Rejected"
)

// ValidStatus reports whether s names a known lifecycle state.
func ValidStatus(s Status) bool {
	switch s {
	case StatusInProgress, StatusAccepted, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions. Accepted and
// Rejected are final: once reached, status, feedback and job fields are all
// frozen.
func (s Status) Terminal() bool {
	return s == StatusAccepted || s == StatusRejected
}

// CanTransition reports whether a recruiter may move a request from one
// status to another. The only legal moves are InProgress -> Accepted and
// InProgress -> Rejected; there is no way back to InProgress.
func CanTransition(from, to Status) bool {
	if from != StatusInProgress {
		return false
	}
	return to == StatusAccepted || to == StatusRejected
}
