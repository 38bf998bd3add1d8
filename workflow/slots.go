package workflow

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Each interview level selects between MinSlots and MaxSlots distinct slots
// from the interview-slot lookup set.
const (
	MinSlots = 3
	MaxSlots = 3
)

// slotRef matches the legacy JSON encoding of a slot selection:
// [{"id":9,"name":"Mon 10:00"}].
type slotRef struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// ParseSlotSelection canonicalizes a stored or submitted slot selection into
// an ordered list of distinct slot IDs. Historical records carry two
// encodings, a delimited ID string ("9, 12, 14") and a JSON array of
// {id, name} objects; both are accepted here so the rest of the system only
// ever sees IDs. Duplicates collapse, keeping first position.
func ParseSlotSelection(raw string) ([]int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}

	var ids []int
	if strings.HasPrefix(raw, "[") {
		var refs []slotRef
		if err := json.Unmarshal([]byte(raw), &refs); err == nil {
			for _, r := range refs {
				ids = append(ids, r.ID)
			}
			return dedupeSlots(ids), nil
		}
		// Bare ID arrays ([9,12,14]) also appear in the wild.
		if err := json.Unmarshal([]byte(raw), &ids); err != nil {
			return nil, fmt.Errorf("invalid slot selection %q: %w", raw, err)
		}
		return dedupeSlots(ids), nil
	}

	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.Atoi(part)
		if err != nil {
			return nil, fmt.Errorf("invalid slot id %q", part)
		}
		ids = append(ids, id)
	}
	return dedupeSlots(ids), nil
}

func dedupeSlots(ids []int) []int {
	seen := make(map[int]bool, len(ids))
	out := ids[:0]
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// ValidateSlotSelection enforces the per-level slot count bounds.
func ValidateSlotSelection(ids []int) error {
	if len(ids) < MinSlots {
		return fmt.Errorf("minimum %d interview slots required, got %d", MinSlots, len(ids))
	}
	if len(ids) > MaxSlots {
		return fmt.Errorf("maximum %d interview slots allowed, got %d", MaxSlots, len(ids))
	}
	return nil
}

// ResolveSlotNames maps slot IDs to their lookup names, preserving selection
// order. An ID with no surviving lookup row falls back to "Slot <id>" so a
// deleted option never blanks out an accepted request.
func ResolveSlotNames(ids []int, names map[int]string) []string {
	if len(ids) == 0 {
		return nil
	}
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			out = append(out, name)
		} else {
			out = append(out, "Slot "+strconv.Itoa(id))
		}
	}
	return out
}
