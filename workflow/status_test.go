package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	assert.True(t, CanTransition(StatusInProgress, StatusAccepted))
	assert.True(t, CanTransition(StatusInProgress, StatusRejected))

	// No transition out of a terminal state, and no way back to InProgress.
	assert.False(t, CanTransition(StatusAccepted, StatusRejected))
	assert.False(t, CanTransition(StatusAccepted, StatusInProgress))
	assert.False(t, CanTransition(StatusRejected, StatusAccepted))
	assert.False(t, CanTransition(StatusRejected, StatusInProgress))
	assert.False(t, CanTransition(StatusInProgress, StatusInProgress))
}

func TestTerminal(t *testing.T) {
	assert.False(t, StatusInProgress.Terminal())
	assert.True(t, StatusAccepted.Terminal())
	assert.True(t, StatusRejected.Terminal())
}

func TestValidStatus(t *testing.T) {
	assert.True(t, ValidStatus(StatusInProgress))
	assert.True(t, ValidStatus(StatusAccepted))
	assert.True(t, ValidStatus(StatusRejected))
	assert.False(t, ValidStatus("Pending"))
	assert.False(t, ValidStatus(""))
}
