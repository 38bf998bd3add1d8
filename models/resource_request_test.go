package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestUpdateRequestTouchesJobFields(t *testing.T) {
	assert.False(t, UpdateResourceRequestRequest{}.TouchesJobFields())
	assert.True(t, UpdateResourceRequestRequest{Role: strPtr("Backend Engineer")}.TouchesJobFields())
	assert.True(t, UpdateResourceRequestRequest{Experience: intPtr(4)}.TouchesJobFields())
	assert.False(t, UpdateResourceRequestRequest{Budget: intPtr(2)}.TouchesJobFields())
}

func TestUpdateRequestTouchesTrackerFields(t *testing.T) {
	assert.False(t, UpdateResourceRequestRequest{}.TouchesTrackerFields())
	assert.True(t, UpdateResourceRequestRequest{Level1Slots: strPtr("9, 12, 14")}.TouchesTrackerFields())
	assert.True(t, UpdateResourceRequestRequest{Priority: intPtr(1)}.TouchesTrackerFields())
	assert.False(t, UpdateResourceRequestRequest{Status: strPtr("Accepted")}.TouchesTrackerFields())
}

func TestUpdateRequestTouchesDecisionFields(t *testing.T) {
	assert.False(t, UpdateResourceRequestRequest{}.TouchesDecisionFields())
	assert.True(t, UpdateResourceRequestRequest{Status: strPtr("Rejected")}.TouchesDecisionFields())
	assert.True(t, UpdateResourceRequestRequest{Feedback: strPtr("Budget frozen")}.TouchesDecisionFields())
}

// The tracker's slot lists keep their legacy wire names while the canonical
// value is a plain list of IDs.
func TestUpdateTrackerSlotWireNames(t *testing.T) {
	raw, err := json.Marshal(UpdateTracker{
		Level1Slots: []int{9, 12, 14},
		Level2Slots: []int{10, 11, 15},
	})
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"Level1PanelInterviewSlots":[9,12,14]`)
	assert.Contains(t, string(raw), `"Level2PanelInterviewSlots":[10,11,15]`)
}

func TestEmployeeFullName(t *testing.T) {
	e := Employee{FirstName: "Priya", LastName: "Nair"}
	assert.Equal(t, "Priya Nair", e.FullName())
}
