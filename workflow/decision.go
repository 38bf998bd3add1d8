package workflow

import (
	"errors"
	"strings"
)

// Decision validation errors. The HTTP layer maps ErrIllegalTransition to a
// conflict and the rest to bad requests.
var (
	ErrUnknownStatus     = errors.New("unknown status")
	ErrIllegalTransition = errors.New("request already has a final decision")
	ErrFeedbackRequired  = errors.New("feedback is required when rejecting a request")
)

// Decision is a recruiter's validated ruling on a request, ready to persist.
type Decision struct {
	Status        Status
	Feedback      string
	StampAccepted bool
}

// ReviewDecision validates a recruiter's ruling against the request's
// current status. A rejection must carry non-empty feedback; an acceptance
// gets the accepted timestamp stamped by the caller when StampAccepted is
// set. Feedback is trimmed, never invented.
func ReviewDecision(current, to Status, feedback string) (Decision, error) {
	if !ValidStatus(to) {
		return Decision{}, ErrUnknownStatus
	}
	if !CanTransition(current, to) {
		return Decision{}, ErrIllegalTransition
	}

	feedback = strings.TrimSpace(feedback)
	if to == StatusRejected && feedback == "" {
		return Decision{}, ErrFeedbackRequired
	}

	return Decision{
		Status:        to,
		Feedback:      feedback,
		StampAccepted: to == StatusAccepted,
	}, nil
}
