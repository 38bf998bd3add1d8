// models/resource_request.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ResourceRequest is the central entity: a hiring request raised by an
// employee, reviewed by a recruiter. Status is the single authoritative
// lifecycle field; the embedded update tracker carries the review/assignment
// record but no status of its own.
type ResourceRequest struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	ResourceRequestID int                `json:"ResourceRequestID" bson:"resourceRequestId"`
	EmployeeID        int                `json:"EmployeeID" bson:"employeeId"`
	Status            string             `json:"Status" bson:"status"` // "InProgress", "Accepted", "Rejected"
	Feedback          string             `json:"Feedback,omitempty" bson:"feedback,omitempty"`
	RequestTitle      string             `json:"RequestTitle" bson:"requestTitle"`
	JobDescription    JobDescription     `json:"JobDescription" bson:"jobDescription"`
	UpdateTracker     UpdateTracker      `json:"UpdateTracker" bson:"updateTracker"`
	CreatedAt         time.Time          `json:"CreatedAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"UpdatedAt" bson:"updatedAt"`
	AcceptedAt        *time.Time         `json:"AcceptedAt,omitempty" bson:"acceptedAt,omitempty"`
}

// JobDescription is the role specification attached to a resource request.
// Skills are stored as comma-delimited text, matching the legacy records.
type JobDescription struct {
	Role              string `json:"Role" bson:"role"`
	OpenPositions     int    `json:"OpenPositions" bson:"openPositions"`
	JobTypeID         int    `json:"JobTypeID" bson:"jobTypeId"`
	ModeOfWorkID      int    `json:"ModeOfWorkID" bson:"modeOfWorkId"`
	Location          string `json:"Location,omitempty" bson:"location,omitempty"`
	NoticePeriodID    int    `json:"NoticePeriodID" bson:"noticePeriodId"`
	EducationID       int    `json:"EducationID" bson:"educationId"`
	Experience        int    `json:"Experience" bson:"experience"`
	RequiredSkills    string `json:"RequiredSkills" bson:"requiredSkills"`
	PreferredSkills   string `json:"PreferredSkills,omitempty" bson:"preferredSkills,omitempty"`
	Responsibilities  string `json:"Responsibilities" bson:"responsibilities"`
	Certifications    string `json:"Certifications,omitempty" bson:"certifications,omitempty"`
	AdditionalReasons string `json:"AdditionalReasons,omitempty" bson:"additionalReasons,omitempty"`
}

// UpdateTracker is the review/assignment record: panel interviewers, their
// slot selections, budget, priority and timeline. Slot selections are stored
// canonically as ordered lists of distinct slot IDs.
type UpdateTracker struct {
	ExpectedTimeline string `json:"ExpectedTimeline,omitempty" bson:"expectedTimeline,omitempty"`
	BudgetID         int    `json:"BudgetID,omitempty" bson:"budgetId,omitempty"`
	PriorityID       int    `json:"PriorityID,omitempty" bson:"priorityId,omitempty"`
	Level1PanelID    int    `json:"Level1PanelID,omitempty" bson:"level1PanelId,omitempty"`
	Level2PanelID    int    `json:"Level2PanelID,omitempty" bson:"level2PanelId,omitempty"`
	Level1Slots      []int  `json:"Level1PanelInterviewSlots" bson:"level1Slots"`
	Level2Slots      []int  `json:"Level2PanelInterviewSlots" bson:"level2Slots"`
}

// ResourceRequestSummary is the list-page row.
type ResourceRequestSummary struct {
	ResourceRequestID int        `json:"ResourceRequestID"`
	EmployeeID        int        `json:"EmployeeID"`
	RequestTitle      string     `json:"RequestTitle"`
	Status            string     `json:"Status"`
	Feedback          string     `json:"Feedback,omitempty"`
	CreatedAt         time.Time  `json:"CreatedAt"`
	UpdatedAt         time.Time  `json:"UpdatedAt"`
	AcceptedAt        *time.Time `json:"AcceptedAt,omitempty"`
}

// PanelRef is a resolved interview-panel member.
type PanelRef struct {
	EmployeeID int    `json:"EmployeeID"`
	FirstName  string `json:"FirstName"`
	LastName   string `json:"LastName"`
}

// RequestCapabilities is the viewer-specific capability set attached to a
// detail response so the client renders only the actions the backend will
// accept.
type RequestCapabilities struct {
	CanEdit         bool   `json:"canEdit"`
	CanDelete       bool   `json:"canDelete"`
	CanChangeStatus bool   `json:"canChangeStatus"`
	CanGenerateJD   bool   `json:"canGenerateJobDescription"`
	EditSurface     string `json:"editSurface"` // "", "owner-form", "review-form"
}

// ResourceRequestDetail is the detail-page payload: the entity plus every
// name the client would otherwise have to resolve from lookups and the
// directory.
type ResourceRequestDetail struct {
	ResourceRequest
	RequestedByName  string              `json:"RequestedByName"`
	Department       string              `json:"Department"`
	JobTypeName      string              `json:"JobTypeName"`
	ModeOfWorkName   string              `json:"ModeOfWorkName"`
	EducationName    string              `json:"EducationName"`
	NoticePeriodName string              `json:"NoticePeriodName"`
	BudgetName       string              `json:"BudgetName,omitempty"`
	PriorityName     string              `json:"PriorityName,omitempty"`
	Level1Panel      *PanelRef           `json:"Level1Panel,omitempty"`
	Level2Panel      *PanelRef           `json:"Level2Panel,omitempty"`
	Level1SlotNames  []string            `json:"Level1SlotNames,omitempty"`
	Level2SlotNames  []string            `json:"Level2SlotNames,omitempty"`
	Capabilities     RequestCapabilities `json:"capabilities"`
}

// CreateResourceRequestRequest is the creation-form payload. Field casing
// follows the form, not the entity. Skills arrive comma-delimited; slot
// selections arrive in either legacy encoding and are canonicalized at this
// boundary.
type CreateResourceRequestRequest struct {
	RequestTitle      string `json:"requestTitle" validate:"required"`
	Role              string `json:"role" validate:"required"`
	OpenPositions     int    `json:"openPositions" validate:"required,gte=1"`
	JobType           int    `json:"jobType" validate:"required"`
	ModeOfWork        int    `json:"modeOfWork" validate:"required"`
	Location          string `json:"location"`
	NoticePeriod      int    `json:"noticePeriod" validate:"required"`
	Education         int    `json:"education" validate:"required"`
	Experience        int    `json:"experience" validate:"gte=0"`
	RequiredSkills    string `json:"requiredSkills" validate:"required"`
	PreferredSkills   string `json:"preferredSkills"`
	Responsibilities  string `json:"responsibilities" validate:"required"`
	Certifications    string `json:"certifications"`
	AdditionalReasons string `json:"additionalReasons"`
	ExpectedTimeline  string `json:"expectedTimeline" validate:"required"`
	Budget            int    `json:"budget" validate:"required"`
	Priority          int    `json:"priority" validate:"required"`
	Level1Panel       int    `json:"level1PanelInterview" validate:"required"`
	Level1Slots       string `json:"level1PanelInterviewSlots" validate:"required"`
	Level2Panel       int    `json:"level2PanelInterview" validate:"required"`
	Level2Slots       string `json:"level2PanelInterviewSlots" validate:"required"`
}

// UpdateResourceRequestRequest is the partial-update payload shared by all
// three edit surfaces. Nil means "leave unchanged". Which groups of fields a
// given viewer may touch is decided by the workflow package, not here.
type UpdateResourceRequestRequest struct {
	// Job-description fields (owner surface).
	RequestTitle      *string `json:"requestTitle"`
	Role              *string `json:"role"`
	OpenPositions     *int    `json:"openPositions"`
	JobType           *int    `json:"jobType"`
	ModeOfWork        *int    `json:"modeOfWork"`
	Location          *string `json:"location"`
	NoticePeriod      *int    `json:"noticePeriod"`
	Education         *int    `json:"education"`
	Experience        *int    `json:"experience"`
	RequiredSkills    *string `json:"requiredSkills"`
	PreferredSkills   *string `json:"preferredSkills"`
	Responsibilities  *string `json:"responsibilities"`
	Certifications    *string `json:"certifications"`
	AdditionalReasons *string `json:"additionalReasons"`

	// Update-tracker fields (owner and review surfaces).
	ExpectedTimeline *string `json:"expectedTimeline"`
	Budget           *int    `json:"budget"`
	Priority         *int    `json:"priority"`
	Level1Panel      *int    `json:"level1PanelInterview"`
	Level1Slots      *string `json:"level1PanelInterviewSlots"`
	Level2Panel      *int    `json:"level2PanelInterview"`
	Level2Slots      *string `json:"level2PanelInterviewSlots"`

	// Recruiter decision fields.
	Status   *string `json:"status"`
	Feedback *string `json:"feedback"`
}

// TouchesJobFields reports whether the payload edits the job description.
func (r UpdateResourceRequestRequest) TouchesJobFields() bool {
	return r.RequestTitle != nil || r.Role != nil || r.OpenPositions != nil ||
		r.JobType != nil || r.ModeOfWork != nil || r.Location != nil ||
		r.NoticePeriod != nil || r.Education != nil || r.Experience != nil ||
		r.RequiredSkills != nil || r.PreferredSkills != nil ||
		r.Responsibilities != nil || r.Certifications != nil || r.AdditionalReasons != nil
}

// TouchesTrackerFields reports whether the payload edits the review record.
func (r UpdateResourceRequestRequest) TouchesTrackerFields() bool {
	return r.ExpectedTimeline != nil || r.Budget != nil || r.Priority != nil ||
		r.Level1Panel != nil || r.Level1Slots != nil ||
		r.Level2Panel != nil || r.Level2Slots != nil
}

// TouchesDecisionFields reports whether the payload changes status or feedback.
func (r UpdateResourceRequestRequest) TouchesDecisionFields() bool {
	return r.Status != nil || r.Feedback != nil
}
