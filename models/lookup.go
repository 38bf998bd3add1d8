// models/lookup.go
package models

import (
	"encoding/json"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// The seven reference-data categories, addressed by URL slug.
const (
	CategoryJobTypes       = "job-types"
	CategoryNoticePeriods  = "notice-periods"
	CategoryInterviewSlots = "interview-slots"
	CategoryEducation      = "education"
	CategoryModesOfWork    = "modes-of-work"
	CategoryPriorities     = "priorities"
	CategoryBudgetRanges   = "budget-ranges"
)

// LookupCategories lists every category slug, in the order the admin console
// renders them.
var LookupCategories = []string{
	CategoryJobTypes,
	CategoryNoticePeriods,
	CategoryInterviewSlots,
	CategoryEducation,
	CategoryModesOfWork,
	CategoryPriorities,
	CategoryBudgetRanges,
}

// categoryPrefixes maps a category slug to the field-name prefix its rows use
// on the wire, e.g. job-types rows serialize as {"JobTypeID":1,"JobTypeName":"Full Time"}.
var categoryPrefixes = map[string]string{
	CategoryJobTypes:       "JobType",
	CategoryNoticePeriods:  "NoticePeriod",
	CategoryInterviewSlots: "InterviewSlot",
	CategoryEducation:      "Education",
	CategoryModesOfWork:    "ModeOfWork",
	CategoryPriorities:     "Priority",
	CategoryBudgetRanges:   "Budget",
}

// ErrUnknownCategory is returned for a category slug outside the seven known sets.
var ErrUnknownCategory = errors.New("unknown lookup category")

// ValidCategory reports whether slug names one of the seven categories.
func ValidCategory(slug string) bool {
	_, ok := categoryPrefixes[slug]
	return ok
}

// CategoryPrefix returns the wire field-name prefix for a category slug.
func CategoryPrefix(slug string) (string, error) {
	p, ok := categoryPrefixes[slug]
	if !ok {
		return "", ErrUnknownCategory
	}
	return p, nil
}

// LookupItem is one polymorphic reference-data row. All categories share one
// collection; Category discriminates.
type LookupItem struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	Category  string             `bson:"category"`
	LookupID  int                `bson:"lookupId"`
	Name      string             `bson:"name"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// MarshalJSON renders the row with category-specific field names, matching
// the client contract (JobTypeID/JobTypeName, BudgetID/BudgetName, ...).
func (l LookupItem) MarshalJSON() ([]byte, error) {
	prefix, err := CategoryPrefix(l.Category)
	if err != nil {
		return nil, err
	}
	return json.Marshal(map[string]interface{}{
		prefix + "ID":   l.LookupID,
		prefix + "Name": l.Name,
	})
}

// AddLookupRequest is the admin "add option" payload. The console historically
// posted either a bare JSON string or {"name": "..."}; both are accepted.
type AddLookupRequest struct {
	Name string `json:"name"`
}

// UnmarshalJSON accepts `"Full Time"` as well as `{"name":"Full Time"}`.
func (r *AddLookupRequest) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		r.Name = s
		return nil
	}
	type plain AddLookupRequest
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*r = AddLookupRequest(p)
	return nil
}
