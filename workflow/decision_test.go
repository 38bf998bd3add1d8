package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewDecisionAccept(t *testing.T) {
	d, err := ReviewDecision(StatusInProgress, StatusAccepted, "")
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, d.Status)
	assert.True(t, d.StampAccepted)
	assert.Empty(t, d.Feedback)

	// Optional feedback rides along on acceptance.
	d, err = ReviewDecision(StatusInProgress, StatusAccepted, "  Strong pipeline fit  ")
	require.NoError(t, err)
	assert.Equal(t, "Strong pipeline fit", d.Feedback)
}

func TestReviewDecisionRejectRequiresFeedback(t *testing.T) {
	_, err := ReviewDecision(StatusInProgress, StatusRejected, "")
	assert.ErrorIs(t, err, ErrFeedbackRequired)

	_, err = ReviewDecision(StatusInProgress, StatusRejected, "   ")
	assert.ErrorIs(t, err, ErrFeedbackRequired)

	d, err := ReviewDecision(StatusInProgress, StatusRejected, "Budget frozen for Q3")
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, d.Status)
	assert.False(t, d.StampAccepted)
	assert.Equal(t, "Budget frozen for Q3", d.Feedback)
}

func TestReviewDecisionTerminalIsFrozen(t *testing.T) {
	for _, current := range []Status{StatusAccepted, StatusRejected} {
		for _, to := range []Status{StatusInProgress, StatusAccepted, StatusRejected} {
			_, err := ReviewDecision(current, to, "feedback")
			assert.ErrorIs(t, err, ErrIllegalTransition, "%s -> %s", current, to)
		}
	}

	// No way back to InProgress either.
	_, err := ReviewDecision(StatusInProgress, StatusInProgress, "")
	assert.ErrorIs(t, err, ErrIllegalTransition)
}

func TestReviewDecisionUnknownStatus(t *testing.T) {
	_, err := ReviewDecision(StatusInProgress, Status("Approved"), "")
	assert.ErrorIs(t, err, ErrUnknownStatus)

	_, err = ReviewDecision(StatusInProgress, Status(""), "")
	assert.ErrorIs(t, err, ErrUnknownStatus)
}
