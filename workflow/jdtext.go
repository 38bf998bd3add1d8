package workflow

import (
	"fmt"
	"strings"
)

// JobPosting is the fully-resolved input for job-description text
// generation: every ID already replaced by its display name. Building it is
// the controller's job; generating from it is pure.
type JobPosting struct {
	RequestTitle     string
	Role             string
	OpenPositions    int
	JobType          string
	ModeOfWork       string
	Location         string
	NoticePeriod     string
	Education        string
	Experience       int
	RequiredSkills   []string
	PreferredSkills  []string
	Responsibilities string
	Certifications   string
	Budget           string
	Level1Panel      string
	Level1Slots      []string
	Level2Panel      string
	Level2Slots      []string
}

// GenerateJobDescriptionText renders the posting as a formatted text block.
// The output is deterministic: identical input produces a byte-identical
// block, so the client may regenerate freely without diff noise.
func GenerateJobDescriptionText(p JobPosting) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Job Description: %s\n", p.RequestTitle)
	fmt.Fprintf(&b, "Role: %s\n", p.Role)
	fmt.Fprintf(&b, "Open Positions: %d\n", p.OpenPositions)
	fmt.Fprintf(&b, "Job Type: %s\n", p.JobType)
	fmt.Fprintf(&b, "Mode of Work: %s\n", p.ModeOfWork)
	if p.Location != "" {
		fmt.Fprintf(&b, "Location: %s\n", p.Location)
	}
	fmt.Fprintf(&b, "Notice Period: %s\n", p.NoticePeriod)
	fmt.Fprintf(&b, "Education: %s\n", p.Education)
	fmt.Fprintf(&b, "Experience: %d years\n", p.Experience)
	fmt.Fprintf(&b, "Budget: %s\n", p.Budget)

	b.WriteString("\nRequired Skills:\n")
	for _, s := range p.RequiredSkills {
		fmt.Fprintf(&b, "  - %s\n", s)
	}
	if len(p.PreferredSkills) > 0 {
		b.WriteString("\nPreferred Skills:\n")
		for _, s := range p.PreferredSkills {
			fmt.Fprintf(&b, "  - %s\n", s)
		}
	}

	b.WriteString("\nResponsibilities:\n")
	fmt.Fprintf(&b, "%s\n", p.Responsibilities)

	if p.Certifications != "" {
		b.WriteString("\nCertifications:\n")
		fmt.Fprintf(&b, "%s\n", p.Certifications)
	}

	b.WriteString("\nInterview Panel:\n")
	fmt.Fprintf(&b, "  Level 1: %s (%s)\n", p.Level1Panel, strings.Join(p.Level1Slots, ", "))
	fmt.Fprintf(&b, "  Level 2: %s (%s)\n", p.Level2Panel, strings.Join(p.Level2Slots, ", "))

	return b.String()
}
