package workflow

import (
	"fmt"
	"strings"
)

// MaxPreferredSkills caps the preferred list regardless of experience.
const MaxPreferredSkills = 10

// MaxRequiredSkills returns the required-skills cap for a given years-of-
// experience value. Junior roles get a short list; the cap widens with
// seniority.
func MaxRequiredSkills(experienceYears int) int {
	switch {
	case experienceYears <= 1:
		return 4
	case experienceYears <= 3:
		return 6
	case experienceYears <= 5:
		return 8
	default:
		return 10
	}
}

// SplitSkills parses comma-delimited skill text into a trimmed list with
// duplicates (case-insensitive) collapsed, keeping first spelling.
func SplitSkills(s string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		key := strings.ToLower(part)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, part)
	}
	return out
}

// JoinSkills renders a skill list back to the stored comma-delimited form.
func JoinSkills(skills []string) string {
	return strings.Join(skills, ", ")
}

// ValidateSkillSets enforces the form rules on a required/preferred pair:
// the experience-derived cap on required skills, the flat cap on preferred,
// and no skill appearing in both lists.
func ValidateSkillSets(required, preferred []string, experienceYears int) error {
	if max := MaxRequiredSkills(experienceYears); len(required) > max {
		return fmt.Errorf("maximum %d required skills allowed for %d years of experience, got %d",
			max, experienceYears, len(required))
	}
	if len(preferred) > MaxPreferredSkills {
		return fmt.Errorf("maximum %d preferred skills allowed, got %d", MaxPreferredSkills, len(preferred))
	}

	req := make(map[string]bool, len(required))
	for _, s := range required {
		req[strings.ToLower(s)] = true
	}
	for _, s := range preferred {
		if req[strings.ToLower(s)] {
			return fmt.Errorf("skill %q cannot be both required and preferred", s)
		}
	}
	return nil
}
