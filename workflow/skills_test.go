package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMaxRequiredSkills(t *testing.T) {
	tests := []struct {
		experience int
		want       int
	}{
		{0, 4},
		{1, 4},
		{2, 6},
		{3, 6},
		{4, 8},
		{5, 8},
		{6, 10},
		{15, 10},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MaxRequiredSkills(tt.experience), "experience=%d", tt.experience)
	}
}

func TestSplitSkills(t *testing.T) {
	assert.Equal(t, []string{"Go", "Postgres", "Docker"}, SplitSkills("Go, Postgres, Docker"))
	assert.Equal(t, []string{"Go"}, SplitSkills("Go, go , GO"))
	assert.Nil(t, SplitSkills(""))
	assert.Equal(t, []string{"Go"}, SplitSkills(" Go ,, "))
}

func TestJoinSkillsRoundTrip(t *testing.T) {
	skills := []string{"Go", "Postgres", "Docker"}
	assert.Equal(t, skills, SplitSkills(JoinSkills(skills)))
}

func TestValidateSkillSets(t *testing.T) {
	t.Run("cap follows experience", func(t *testing.T) {
		five := []string{"a", "b", "c", "d", "e"}

		// experience 4 allows up to 8 required skills
		assert.NoError(t, ValidateSkillSets(five, nil, 4))

		// experience 1 allows only 4
		err := ValidateSkillSets(five, nil, 1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "maximum 4 required skills")
	})

	t.Run("required and preferred are disjoint", func(t *testing.T) {
		err := ValidateSkillSets([]string{"Go", "Docker"}, []string{"docker"}, 5)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "both required and preferred")
	})

	t.Run("preferred has a flat cap", func(t *testing.T) {
		var preferred []string
		for _, s := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k"} {
			preferred = append(preferred, s)
		}
		err := ValidateSkillSets([]string{"Go"}, preferred, 10)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "preferred")
	})

	t.Run("valid pair passes", func(t *testing.T) {
		assert.NoError(t, ValidateSkillSets([]string{"Go", "Postgres"}, []string{"Kafka"}, 4))
	})
}
