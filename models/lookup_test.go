package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupItemMarshalJSON(t *testing.T) {
	tests := []struct {
		category string
		wantID   string
		wantName string
	}{
		{CategoryJobTypes, "JobTypeID", "JobTypeName"},
		{CategoryNoticePeriods, "NoticePeriodID", "NoticePeriodName"},
		{CategoryInterviewSlots, "InterviewSlotID", "InterviewSlotName"},
		{CategoryEducation, "EducationID", "EducationName"},
		{CategoryModesOfWork, "ModeOfWorkID", "ModeOfWorkName"},
		{CategoryPriorities, "PriorityID", "PriorityName"},
		{CategoryBudgetRanges, "BudgetID", "BudgetName"},
	}

	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			item := LookupItem{Category: tt.category, LookupID: 3, Name: "Sample"}
			raw, err := json.Marshal(item)
			require.NoError(t, err)

			var fields map[string]interface{}
			require.NoError(t, json.Unmarshal(raw, &fields))
			assert.Len(t, fields, 2)
			assert.EqualValues(t, 3, fields[tt.wantID])
			assert.Equal(t, "Sample", fields[tt.wantName])
		})
	}
}

func TestLookupItemMarshalJSONUnknownCategory(t *testing.T) {
	_, err := json.Marshal(LookupItem{Category: "colors", LookupID: 1, Name: "Red"})
	assert.Error(t, err)
}

func TestValidCategory(t *testing.T) {
	for _, slug := range LookupCategories {
		assert.True(t, ValidCategory(slug), slug)
	}
	assert.False(t, ValidCategory("colors"))
	assert.False(t, ValidCategory(""))
}

func TestAddLookupRequestUnmarshalJSON(t *testing.T) {
	var req AddLookupRequest
	require.NoError(t, json.Unmarshal([]byte(`"Full Time"`), &req))
	assert.Equal(t, "Full Time", req.Name)

	req = AddLookupRequest{}
	require.NoError(t, json.Unmarshal([]byte(`{"name":"Contract"}`), &req))
	assert.Equal(t, "Contract", req.Name)

	assert.Error(t, json.Unmarshal([]byte(`42`), &req))
}
