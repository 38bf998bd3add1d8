package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSlotSelection(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []int
	}{
		{"delimited ids", "9, 12, 14", []int{9, 12, 14}},
		{"delimited without spaces", "9,12,14", []int{9, 12, 14}},
		{"json object array", `[{"id":9,"name":"Mon 10:00"},{"id":12,"name":"Tue 14:00"},{"id":14,"name":"Fri 11:00"}]`, []int{9, 12, 14}},
		{"bare json id array", "[9,12,14]", []int{9, 12, 14}},
		{"duplicates collapse keeping order", "9, 12, 9, 14", []int{9, 12, 14}},
		{"empty", "", nil},
		{"whitespace only", "   ", nil},
		{"trailing comma", "9, 12, 14,", []int{9, 12, 14}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseSlotSelection(tt.raw)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseSlotSelectionRejectsGarbage(t *testing.T) {
	_, err := ParseSlotSelection("monday, tuesday")
	assert.Error(t, err)

	_, err = ParseSlotSelection(`[{"id":"nine"}]`)
	assert.Error(t, err)
}

func TestValidateSlotSelection(t *testing.T) {
	assert.NoError(t, ValidateSlotSelection([]int{1, 2, 3}))

	err := ValidateSlotSelection([]int{1, 2})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "minimum 3")

	err = ValidateSlotSelection([]int{1, 2, 3, 4})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "maximum 3")
}

func TestResolveSlotNames(t *testing.T) {
	names := map[int]string{9: "Mon 10:00", 12: "Tue 14:00"}

	got := ResolveSlotNames([]int{9, 12, 99}, names)
	assert.Equal(t, []string{"Mon 10:00", "Tue 14:00", "Slot 99"}, got)

	assert.Nil(t, ResolveSlotNames(nil, names))
}
