package workflow

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func samplePosting() JobPosting {
	return JobPosting{
		RequestTitle:     "Backend Engineer",
		Role:             "Backend Engineer",
		OpenPositions:    2,
		JobType:          "Full Time",
		ModeOfWork:       "Hybrid",
		Location:         "Bengaluru",
		NoticePeriod:     "30 Days",
		Education:        "Bachelor's Degree",
		Experience:       4,
		RequiredSkills:   []string{"Go", "PostgreSQL"},
		PreferredSkills:  []string{"Kubernetes"},
		Responsibilities: "Design and operate backend services.",
		Certifications:   "AWS Solutions Architect",
		Budget:           "12-16 LPA",
		Level1Panel:      "Priya Nair",
		Level1Slots:      []string{"Mon 10:00", "Tue 14:00", "Fri 11:00"},
		Level2Panel:      "Arjun Menon",
		Level2Slots:      []string{"Wed 09:30", "Thu 15:00", "Fri 16:00"},
	}
}

func TestGenerateJobDescriptionTextIsDeterministic(t *testing.T) {
	p := samplePosting()
	first := GenerateJobDescriptionText(p)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, GenerateJobDescriptionText(p))
	}
}

func TestGenerateJobDescriptionTextContent(t *testing.T) {
	text := GenerateJobDescriptionText(samplePosting())

	// The block interpolates the role, both panel member names, and resolved
	// slot names rather than raw ids.
	assert.Contains(t, text, "Role: Backend Engineer")
	assert.Contains(t, text, "Priya Nair")
	assert.Contains(t, text, "Arjun Menon")
	assert.Contains(t, text, "Mon 10:00")
	assert.Contains(t, text, "Thu 15:00")
	assert.Contains(t, text, "Budget: 12-16 LPA")
	assert.Contains(t, text, "Open Positions: 2")
	assert.Contains(t, text, "Notice Period: 30 Days")
	assert.Contains(t, text, "- Go")
	assert.Contains(t, text, "- Kubernetes")
	assert.NotContains(t, text, "Slot 9")
}

func TestGenerateJobDescriptionTextOptionalSections(t *testing.T) {
	p := samplePosting()
	p.Location = ""
	p.Certifications = ""
	p.PreferredSkills = nil

	text := GenerateJobDescriptionText(p)
	assert.NotContains(t, text, "Location:")
	assert.NotContains(t, text, "Certifications:")
	assert.NotContains(t, text, "Preferred Skills:")
	assert.Contains(t, text, "Required Skills:")

	// Dropping optional sections keeps the block well-formed.
	assert.False(t, strings.Contains(text, "\n\n\n"))
}
