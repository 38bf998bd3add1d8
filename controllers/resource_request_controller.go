package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/utils"
	"github.com/ashwinpillai/hirehub_backend/websocket"
	"github.com/ashwinpillai/hirehub_backend/workflow"
)

// ResourceRequestController owns the hiring-request lifecycle: creation by
// managers and team leads, review and decision by recruiters, and the
// capability rules that gate every mutation.
type ResourceRequestController struct {
	DB     *mongo.Client
	Hub    *websocket.Hub
	logger *log.Logger
}

// NewResourceRequestController creates a new resource request controller
func NewResourceRequestController(db *mongo.Client, hub *websocket.Hub) *ResourceRequestController {
	return &ResourceRequestController{
		DB:     db,
		Hub:    hub,
		logger: log.New(os.Stdout, "[REQUEST] ", log.LstdFlags),
	}
}

// lookupName resolves one reference-data ID to its display name, or "" for
// a dangling reference.
func lookupName(ctx context.Context, db *mongo.Client, category string, id int) string {
	if id == 0 {
		return ""
	}
	var item models.LookupItem
	err := config.GetCollection(db, "lookups").
		FindOne(ctx, bson.M{"category": category, "lookupId": id}).
		Decode(&item)
	if err != nil {
		return ""
	}
	return item.Name
}

// lookupExists reports whether a reference-data ID is present in a category.
func lookupExists(ctx context.Context, db *mongo.Client, category string, id int) bool {
	return lookupName(ctx, db, category, id) != ""
}

// slotNameMap loads the interview-slot category as an ID-to-name map.
func slotNameMap(ctx context.Context, db *mongo.Client) map[int]string {
	cursor, err := config.GetCollection(db, "lookups").
		Find(ctx, bson.M{"category": models.CategoryInterviewSlots})
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	var items []models.LookupItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil
	}

	names := make(map[int]string, len(items))
	for _, it := range items {
		names[it.LookupID] = it.Name
	}
	return names
}

// resolvePanelRef resolves a panel member's employee ID to the nested shape.
func resolvePanelRef(ctx context.Context, db *mongo.Client, employeeID int) *models.PanelRef {
	if employeeID == 0 {
		return nil
	}
	var e models.Employee
	err := config.GetCollection(db, "employees").
		FindOne(ctx, bson.M{"employeeId": employeeID}).
		Decode(&e)
	if err != nil {
		return nil
	}
	return &models.PanelRef{
		EmployeeID: e.EmployeeID,
		FirstName:  e.FirstName,
		LastName:   e.LastName,
	}
}

// validateLookupRefs checks every reference-data ID a create or update
// payload carries, returning a user-facing message for the first bad one.
func validateLookupRefs(ctx context.Context, db *mongo.Client, jd models.JobDescription, tracker models.UpdateTracker) string {
	checks := []struct {
		category string
		id       int
		label    string
	}{
		{models.CategoryJobTypes, jd.JobTypeID, "job type"},
		{models.CategoryModesOfWork, jd.ModeOfWorkID, "mode of work"},
		{models.CategoryNoticePeriods, jd.NoticePeriodID, "notice period"},
		{models.CategoryEducation, jd.EducationID, "education"},
		{models.CategoryBudgetRanges, tracker.BudgetID, "budget"},
		{models.CategoryPriorities, tracker.PriorityID, "priority"},
	}
	for _, ch := range checks {
		if ch.id != 0 && !lookupExists(ctx, db, ch.category, ch.id) {
			return "Unknown " + ch.label
		}
	}

	slotNames := slotNameMap(ctx, db)
	for _, id := range append(append([]int{}, tracker.Level1Slots...), tracker.Level2Slots...) {
		if _, ok := slotNames[id]; !ok {
			return "Unknown interview slot " + strconv.Itoa(id)
		}
	}
	return ""
}

// validatePanels checks both panel members exist and can chair a panel.
func validatePanels(ctx context.Context, db *mongo.Client, level1, level2 int) string {
	for _, id := range []int{level1, level2} {
		if id == 0 {
			continue
		}
		ref := resolvePanelRef(ctx, db, id)
		if ref == nil {
			return "Unknown panel member " + strconv.Itoa(id)
		}
	}
	return ""
}

// Create handles POST /api/job-description. Recruiters review requests,
// they do not raise them; the route keeps them out.
func (rc *ResourceRequestController) Create(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	var req models.CreateResourceRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed: " + err.Error(),
		})
	}

	required := workflow.SplitSkills(req.RequiredSkills)
	preferred := workflow.SplitSkills(req.PreferredSkills)
	if len(required) == 0 {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "At least one required skill is needed",
		})
	}
	if err := workflow.ValidateSkillSets(required, preferred, req.Experience); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	level1Slots, err := workflow.ParseSlotSelection(req.Level1Slots)
	if err == nil {
		err = workflow.ValidateSlotSelection(level1Slots)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Level 1 interview slots: " + err.Error(),
		})
	}
	level2Slots, err := workflow.ParseSlotSelection(req.Level2Slots)
	if err == nil {
		err = workflow.ValidateSlotSelection(level2Slots)
	}
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Level 2 interview slots: " + err.Error(),
		})
	}

	jd := models.JobDescription{
		Role:              utils.SanitizeInput(req.Role),
		OpenPositions:     req.OpenPositions,
		JobTypeID:         req.JobType,
		ModeOfWorkID:      req.ModeOfWork,
		Location:          utils.SanitizeInput(req.Location),
		NoticePeriodID:    req.NoticePeriod,
		EducationID:       req.Education,
		Experience:        req.Experience,
		RequiredSkills:    workflow.JoinSkills(required),
		PreferredSkills:   workflow.JoinSkills(preferred),
		Responsibilities:  utils.SanitizeInput(req.Responsibilities),
		Certifications:    utils.SanitizeInput(req.Certifications),
		AdditionalReasons: utils.SanitizeInput(req.AdditionalReasons),
	}
	tracker := models.UpdateTracker{
		ExpectedTimeline: utils.SanitizeInput(req.ExpectedTimeline),
		BudgetID:         req.Budget,
		PriorityID:       req.Priority,
		Level1PanelID:    req.Level1Panel,
		Level2PanelID:    req.Level2Panel,
		Level1Slots:      level1Slots,
		Level2Slots:      level2Slots,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if msg := validateLookupRefs(ctx, rc.DB, jd, tracker); msg != "" {
		return c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: msg})
	}
	if msg := validatePanels(ctx, rc.DB, req.Level1Panel, req.Level2Panel); msg != "" {
		return c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: msg})
	}

	requestID, err := config.NextSequence(ctx, rc.DB, "resourceRequests")
	if err != nil {
		rc.logger.Printf("Failed to allocate request ID: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to create resource request",
		})
	}

	now := time.Now()
	request := models.ResourceRequest{
		ResourceRequestID: requestID,
		EmployeeID:        claims.EmployeeID,
		Status:            string(workflow.StatusInProgress),
		RequestTitle:      utils.SanitizeInput(req.RequestTitle),
		JobDescription:    jd,
		UpdateTracker:     tracker,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := config.GetCollection(rc.DB, "resourceRequests").InsertOne(ctx, request); err != nil {
		rc.logger.Printf("Failed to insert resource request: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to create resource request",
		})
	}

	var requester models.Employee
	requesterName := "An employee"
	if err := config.GetCollection(rc.DB, "employees").
		FindOne(ctx, bson.M{"employeeId": claims.EmployeeID}).
		Decode(&requester); err == nil {
		requesterName = requester.FullName()
	}
	go utils.NotifyRecruitersOfNewRequest(rc.DB, rc.Hub, request, requesterName)

	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "Resource request created successfully",
		Data:    request,
	})
}

// List handles GET /api/resource-requests/:employeeId. The path names the
// list's owner; recruiters and admins asking for their own ID get the whole
// review queue instead, optionally filtered by ?status=.
func (rc *ResourceRequestController) List(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	employeeID, err := strconv.Atoi(c.Param("employeeId"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid employee ID",
		})
	}

	role := workflow.Role(claims.Role)
	reviewer := role == workflow.RoleRecruiter || role == workflow.RoleAdmin
	if employeeID != claims.EmployeeID && !reviewer {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: "You can only view your own requests",
		})
	}

	filter := bson.M{}
	if !(reviewer && employeeID == claims.EmployeeID) {
		filter["employeeId"] = employeeID
	}
	if status := c.QueryParam("status"); status != "" {
		if !workflow.ValidStatus(workflow.Status(status)) {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Unknown status filter",
			})
		}
		filter["status"] = status
	}

	page, limit := parsePagination(c)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(rc.DB, "resourceRequests")

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		rc.logger.Printf("Failed to count requests: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve resource requests",
		})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		rc.logger.Printf("Failed to list requests: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve resource requests",
		})
	}
	defer cursor.Close(ctx)

	var requests []models.ResourceRequest
	if err := cursor.All(ctx, &requests); err != nil {
		rc.logger.Printf("Failed to decode requests: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve resource requests",
		})
	}

	summaries := make([]models.ResourceRequestSummary, 0, len(requests))
	for _, r := range requests {
		summaries = append(summaries, models.ResourceRequestSummary{
			ResourceRequestID: r.ResourceRequestID,
			EmployeeID:        r.EmployeeID,
			RequestTitle:      r.RequestTitle,
			Status:            r.Status,
			Feedback:          r.Feedback,
			CreatedAt:         r.CreatedAt,
			UpdatedAt:         r.UpdatedAt,
			AcceptedAt:        r.AcceptedAt,
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Resource requests retrieved successfully",
		Data:    summaries,
		Pagination: &models.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// findRequest loads one request by business key.
func (rc *ResourceRequestController) findRequest(ctx context.Context, id int) (*models.ResourceRequest, error) {
	var request models.ResourceRequest
	err := config.GetCollection(rc.DB, "resourceRequests").
		FindOne(ctx, bson.M{"resourceRequestId": id}).
		Decode(&request)
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// buildDetail resolves every name the detail page shows and attaches the
// viewer's capability set.
func (rc *ResourceRequestController) buildDetail(ctx context.Context, request models.ResourceRequest, viewer *models.Employee) models.ResourceRequestDetail {
	caps := workflow.Evaluate(
		workflow.Role(viewer.Role),
		viewer.EmployeeID == request.EmployeeID,
		workflow.Status(request.Status),
	)

	requestedBy := ""
	department := ""
	var owner models.Employee
	if err := config.GetCollection(rc.DB, "employees").
		FindOne(ctx, bson.M{"employeeId": request.EmployeeID}).
		Decode(&owner); err == nil {
		requestedBy = owner.FullName()
		department = resolveDepartmentName(ctx, rc.DB, owner.DepartmentID)
	}

	slotNames := slotNameMap(ctx, rc.DB)

	return models.ResourceRequestDetail{
		ResourceRequest:  request,
		RequestedByName:  requestedBy,
		Department:       department,
		JobTypeName:      lookupName(ctx, rc.DB, models.CategoryJobTypes, request.JobDescription.JobTypeID),
		ModeOfWorkName:   lookupName(ctx, rc.DB, models.CategoryModesOfWork, request.JobDescription.ModeOfWorkID),
		EducationName:    lookupName(ctx, rc.DB, models.CategoryEducation, request.JobDescription.EducationID),
		NoticePeriodName: lookupName(ctx, rc.DB, models.CategoryNoticePeriods, request.JobDescription.NoticePeriodID),
		BudgetName:       lookupName(ctx, rc.DB, models.CategoryBudgetRanges, request.UpdateTracker.BudgetID),
		PriorityName:     lookupName(ctx, rc.DB, models.CategoryPriorities, request.UpdateTracker.PriorityID),
		Level1Panel:      resolvePanelRef(ctx, rc.DB, request.UpdateTracker.Level1PanelID),
		Level2Panel:      resolvePanelRef(ctx, rc.DB, request.UpdateTracker.Level2PanelID),
		Level1SlotNames:  workflow.ResolveSlotNames(request.UpdateTracker.Level1Slots, slotNames),
		Level2SlotNames:  workflow.ResolveSlotNames(request.UpdateTracker.Level2Slots, slotNames),
		Capabilities: models.RequestCapabilities{
			CanEdit:         caps.CanEdit,
			CanDelete:       caps.CanDelete,
			CanChangeStatus: caps.CanChangeStatus,
			CanGenerateJD:   caps.CanGenerateJD,
			EditSurface:     string(caps.EditSurface),
		},
	}
}

// Get handles GET /api/resource-request/:id.
func (rc *ResourceRequestController) Get(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	request, err := rc.findRequest(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Resource request not found",
		})
	}

	var viewer models.Employee
	if err := config.GetCollection(rc.DB, "employees").
		FindOne(ctx, bson.M{"employeeId": claims.EmployeeID}).
		Decode(&viewer); err != nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unknown viewer",
		})
	}

	role := workflow.Role(viewer.Role)
	if !workflow.CanView(role, viewer.EmployeeID == request.EmployeeID) {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: "You do not have access to this request",
		})
	}

	detail := rc.buildDetail(ctx, *request, &viewer)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Resource request retrieved successfully",
		Data:    detail,
	})
}

// Update handles PUT /api/resource-request/:id. One endpoint serves all
// three edit surfaces; which field groups the payload may touch is decided
// by the viewer's capabilities. Terminal requests are frozen outright.
func (rc *ResourceRequestController) Update(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request ID",
		})
	}

	var req models.UpdateResourceRequestRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if !req.TouchesJobFields() && !req.TouchesTrackerFields() && !req.TouchesDecisionFields() {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Nothing to update",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	request, err := rc.findRequest(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Resource request not found",
		})
	}

	role := workflow.Role(claims.Role)
	isOwner := claims.EmployeeID == request.EmployeeID
	status := workflow.Status(request.Status)
	caps := workflow.Evaluate(role, isOwner, status)

	if req.TouchesDecisionFields() && !caps.CanChangeStatus {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: workflow.DenialMessage(workflow.ActionChangeStatus, role, status),
		})
	}
	if (req.TouchesJobFields() || req.TouchesTrackerFields()) && !caps.CanEdit {
		// A recruiter's decision payload may carry tracker fields; plain
		// edits from a non-editor are refused.
		if !(caps.CanChangeStatus && req.TouchesDecisionFields() && !req.TouchesJobFields()) {
			return c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: workflow.DenialMessage(workflow.ActionEdit, role, status),
			})
		}
	}

	set := bson.M{"updatedAt": time.Now()}
	var decided bool

	if req.TouchesDecisionFields() {
		if req.Status == nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Status is required when recording a decision",
			})
		}
		feedback := ""
		if req.Feedback != nil {
			feedback = utils.SanitizeInput(*req.Feedback)
		}
		decision, err := workflow.ReviewDecision(status, workflow.Status(*req.Status), feedback)
		if err != nil {
			if errors.Is(err, workflow.ErrIllegalTransition) {
				return c.JSON(http.StatusConflict, models.Response{
					Success: false,
					Message: workflow.DenialMessage(workflow.ActionChangeStatus, role, status),
				})
			}
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: err.Error(),
			})
		}
		set["status"] = string(decision.Status)
		if req.Feedback != nil {
			set["feedback"] = decision.Feedback
		}
		if decision.StampAccepted {
			set["acceptedAt"] = time.Now()
		}
		decided = true
	}

	if req.TouchesJobFields() {
		jd := request.JobDescription
		if req.RequestTitle != nil {
			set["requestTitle"] = utils.SanitizeInput(*req.RequestTitle)
		}
		if req.Role != nil {
			jd.Role = utils.SanitizeInput(*req.Role)
		}
		if req.OpenPositions != nil {
			if *req.OpenPositions < 1 {
				return c.JSON(http.StatusBadRequest, models.Response{
					Success: false,
					Message: "Open positions must be at least 1",
				})
			}
			jd.OpenPositions = *req.OpenPositions
		}
		if req.JobType != nil {
			jd.JobTypeID = *req.JobType
		}
		if req.ModeOfWork != nil {
			jd.ModeOfWorkID = *req.ModeOfWork
		}
		if req.Location != nil {
			jd.Location = utils.SanitizeInput(*req.Location)
		}
		if req.NoticePeriod != nil {
			jd.NoticePeriodID = *req.NoticePeriod
		}
		if req.Education != nil {
			jd.EducationID = *req.Education
		}
		if req.Experience != nil {
			if *req.Experience < 0 {
				return c.JSON(http.StatusBadRequest, models.Response{
					Success: false,
					Message: "Experience cannot be negative",
				})
			}
			jd.Experience = *req.Experience
		}
		if req.RequiredSkills != nil {
			jd.RequiredSkills = workflow.JoinSkills(workflow.SplitSkills(*req.RequiredSkills))
		}
		if req.PreferredSkills != nil {
			jd.PreferredSkills = workflow.JoinSkills(workflow.SplitSkills(*req.PreferredSkills))
		}
		if req.Responsibilities != nil {
			jd.Responsibilities = utils.SanitizeInput(*req.Responsibilities)
		}
		if req.Certifications != nil {
			jd.Certifications = utils.SanitizeInput(*req.Certifications)
		}
		if req.AdditionalReasons != nil {
			jd.AdditionalReasons = utils.SanitizeInput(*req.AdditionalReasons)
		}

		// Re-validate the pair even when only one side changed; the cap
		// depends on experience, which may also have changed.
		if err := workflow.ValidateSkillSets(
			workflow.SplitSkills(jd.RequiredSkills),
			workflow.SplitSkills(jd.PreferredSkills),
			jd.Experience,
		); err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: err.Error(),
			})
		}
		request.JobDescription = jd
		set["jobDescription"] = jd
	}

	if req.TouchesTrackerFields() {
		tracker := request.UpdateTracker
		if req.ExpectedTimeline != nil {
			tracker.ExpectedTimeline = utils.SanitizeInput(*req.ExpectedTimeline)
		}
		if req.Budget != nil {
			tracker.BudgetID = *req.Budget
		}
		if req.Priority != nil {
			tracker.PriorityID = *req.Priority
		}
		if req.Level1Panel != nil {
			tracker.Level1PanelID = *req.Level1Panel
		}
		if req.Level2Panel != nil {
			tracker.Level2PanelID = *req.Level2Panel
		}
		if req.Level1Slots != nil {
			slots, err := workflow.ParseSlotSelection(*req.Level1Slots)
			if err == nil {
				err = workflow.ValidateSlotSelection(slots)
			}
			if err != nil {
				return c.JSON(http.StatusBadRequest, models.Response{
					Success: false,
					Message: "Level 1 interview slots: " + err.Error(),
				})
			}
			tracker.Level1Slots = slots
		}
		if req.Level2Slots != nil {
			slots, err := workflow.ParseSlotSelection(*req.Level2Slots)
			if err == nil {
				err = workflow.ValidateSlotSelection(slots)
			}
			if err != nil {
				return c.JSON(http.StatusBadRequest, models.Response{
					Success: false,
					Message: "Level 2 interview slots: " + err.Error(),
				})
			}
			tracker.Level2Slots = slots
		}
		if msg := validatePanels(ctx, rc.DB, tracker.Level1PanelID, tracker.Level2PanelID); msg != "" {
			return c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: msg})
		}
		request.UpdateTracker = tracker
		set["updateTracker"] = tracker
	}

	if msg := validateLookupRefs(ctx, rc.DB, request.JobDescription, request.UpdateTracker); msg != "" {
		return c.JSON(http.StatusBadRequest, models.Response{Success: false, Message: msg})
	}

	result, err := config.GetCollection(rc.DB, "resourceRequests").UpdateOne(ctx,
		bson.M{"resourceRequestId": id, "status": string(workflow.StatusInProgress)},
		bson.M{"$set": set},
	)
	if err != nil {
		rc.logger.Printf("Failed to update request %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to update resource request",
		})
	}
	if result.MatchedCount == 0 {
		// Lost a race with another decision; reload so the denial names the
		// status the winner actually set.
		terminal := workflow.StatusAccepted
		if current, err := rc.findRequest(ctx, id); err == nil {
			terminal = workflow.Status(current.Status)
		}
		return c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Message: workflow.DenialMessage(workflow.ActionEdit, role, terminal),
		})
	}

	updated, err := rc.findRequest(ctx, id)
	if err != nil {
		rc.logger.Printf("Failed to reload request %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to update resource request",
		})
	}

	if decided {
		recruiterName := claims.Email
		var recruiter models.Employee
		if err := config.GetCollection(rc.DB, "employees").
			FindOne(ctx, bson.M{"employeeId": claims.EmployeeID}).
			Decode(&recruiter); err == nil {
			recruiterName = recruiter.FullName()
		}
		go utils.NotifyStatusDecision(rc.DB, rc.Hub, *updated, recruiterName)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Resource request updated successfully",
		Data:    updated,
	})
}

// Delete handles DELETE /api/resource-requests/:id.
func (rc *ResourceRequestController) Delete(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	request, err := rc.findRequest(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Resource request not found",
		})
	}

	role := workflow.Role(claims.Role)
	status := workflow.Status(request.Status)
	caps := workflow.Evaluate(role, claims.EmployeeID == request.EmployeeID, status)
	if !caps.CanDelete {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: workflow.DenialMessage(workflow.ActionDelete, role, status),
		})
	}

	if _, err := config.GetCollection(rc.DB, "resourceRequests").
		DeleteOne(ctx, bson.M{"resourceRequestId": id}); err != nil {
		rc.logger.Printf("Failed to delete request %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to delete resource request",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Resource request deleted successfully",
	})
}

// GenerateJobDescription handles GET /api/resource-request/:id/job-description:
// renders the formatted posting text for an accepted request. The text is
// generated fresh on every call and is deterministic for unchanged input.
func (rc *ResourceRequestController) GenerateJobDescription(c echo.Context) error {
	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	request, err := rc.findRequest(ctx, id)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Resource request not found",
		})
	}

	role := workflow.Role(claims.Role)
	status := workflow.Status(request.Status)
	caps := workflow.Evaluate(role, claims.EmployeeID == request.EmployeeID, status)
	if !caps.CanGenerateJD {
		return c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Message: workflow.DenialMessage(workflow.ActionGenerateJD, role, status),
		})
	}

	slotNames := slotNameMap(ctx, rc.DB)
	panelName := func(ref *models.PanelRef) string {
		if ref == nil {
			return ""
		}
		return ref.FirstName + " " + ref.LastName
	}

	posting := workflow.JobPosting{
		RequestTitle:     request.RequestTitle,
		Role:             request.JobDescription.Role,
		OpenPositions:    request.JobDescription.OpenPositions,
		JobType:          lookupName(ctx, rc.DB, models.CategoryJobTypes, request.JobDescription.JobTypeID),
		ModeOfWork:       lookupName(ctx, rc.DB, models.CategoryModesOfWork, request.JobDescription.ModeOfWorkID),
		Location:         request.JobDescription.Location,
		NoticePeriod:     lookupName(ctx, rc.DB, models.CategoryNoticePeriods, request.JobDescription.NoticePeriodID),
		Education:        lookupName(ctx, rc.DB, models.CategoryEducation, request.JobDescription.EducationID),
		Experience:       request.JobDescription.Experience,
		RequiredSkills:   workflow.SplitSkills(request.JobDescription.RequiredSkills),
		PreferredSkills:  workflow.SplitSkills(request.JobDescription.PreferredSkills),
		Responsibilities: request.JobDescription.Responsibilities,
		Certifications:   request.JobDescription.Certifications,
		Budget:           lookupName(ctx, rc.DB, models.CategoryBudgetRanges, request.UpdateTracker.BudgetID),
		Level1Panel:      panelName(resolvePanelRef(ctx, rc.DB, request.UpdateTracker.Level1PanelID)),
		Level1Slots:      workflow.ResolveSlotNames(request.UpdateTracker.Level1Slots, slotNames),
		Level2Panel:      panelName(resolvePanelRef(ctx, rc.DB, request.UpdateTracker.Level2PanelID)),
		Level2Slots:      workflow.ResolveSlotNames(request.UpdateTracker.Level2Slots, slotNames),
	}

	text := workflow.GenerateJobDescriptionText(posting)

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Job description generated successfully",
		Data: map[string]interface{}{
			"resourceRequestId": request.ResourceRequestID,
			"jobDescription":    text,
		},
	})
}
