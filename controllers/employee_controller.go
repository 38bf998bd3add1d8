package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/repositories"
	"github.com/ashwinpillai/hirehub_backend/utils"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

// EmployeeController serves the employee directory, profiles and admin
// user provisioning.
type EmployeeController struct {
	DB     *mongo.Client
	Repo   *repositories.EmployeeRepository
	logger *log.Logger
}

// NewEmployeeController creates a new employee controller
func NewEmployeeController(db *mongo.Client, repo *repositories.EmployeeRepository) *EmployeeController {
	return &EmployeeController{
		DB:     db,
		Repo:   repo,
		logger: log.New(os.Stdout, "[EMPLOYEE] ", log.LstdFlags),
	}
}

// resolveDepartmentName returns the display name for a department ID, or ""
// when the reference is dangling.
func resolveDepartmentName(ctx context.Context, db *mongo.Client, departmentID int) string {
	var dept models.Department
	err := config.GetCollection(db, "departments").
		FindOne(ctx, bson.M{"departmentId": departmentID}).
		Decode(&dept)
	if err != nil {
		return ""
	}
	return dept.DepartmentName
}

// resolveManagerRef returns the nested manager shape, or nil when the
// employee has no manager or the reference is dangling.
func resolveManagerRef(ctx context.Context, db *mongo.Client, managerEmployeeID *int) *models.ManagerRef {
	if managerEmployeeID == nil {
		return nil
	}
	var mgr models.Employee
	err := config.GetCollection(db, "employees").
		FindOne(ctx, bson.M{"employeeId": *managerEmployeeID}).
		Decode(&mgr)
	if err != nil {
		return nil
	}
	return &models.ManagerRef{
		EmployeeID:  mgr.EmployeeID,
		FirstName:   mgr.FirstName,
		LastName:    mgr.LastName,
		Designation: mgr.Designation,
	}
}

// buildEmployeeSummary assembles the directory row with its nested
// department and manager references resolved.
func buildEmployeeSummary(ctx context.Context, db *mongo.Client, e models.Employee) (models.EmployeeSummary, error) {
	return models.EmployeeSummary{
		EmployeeID:  e.EmployeeID,
		FirstName:   e.FirstName,
		LastName:    e.LastName,
		Designation: e.Designation,
		Email:       e.Email,
		Role:        e.Role,
		Department: models.DepartmentRef{
			DepartmentID:   e.DepartmentID,
			DepartmentName: resolveDepartmentName(ctx, db, e.DepartmentID),
		},
		Manager: resolveManagerRef(ctx, db, e.ManagerEmployeeID),
	}, nil
}

// parsePagination reads ?page= and ?limit= with the directory defaults.
func parsePagination(c echo.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}

// Search handles GET /api/employees. Three query shapes are supported:
// ?search= matches name, email and designation; ?employeeId= looks up one
// record by business key; ?searchBy=Manager restricts results to employees
// who can chair an interview panel (Managers and TeamLeads).
func (ec *EmployeeController) Search(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ec.DB, "employees")

	if idStr := c.QueryParam("employeeId"); idStr != "" {
		id, err := strconv.Atoi(idStr)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "employeeId must be a number",
			})
		}
		var employee models.Employee
		if err := collection.FindOne(ctx, bson.M{"employeeId": id}).Decode(&employee); err != nil {
			return c.JSON(http.StatusNotFound, models.Response{
				Success: false,
				Message: "Employee not found",
			})
		}
		summary, _ := buildEmployeeSummary(ctx, ec.DB, employee)
		return c.JSON(http.StatusOK, models.Response{
			Success: true,
			Message: "Employee found",
			Data:    []models.EmployeeSummary{summary},
		})
	}

	filter := bson.M{}
	if c.QueryParam("searchBy") == "Manager" {
		filter["role"] = bson.M{"$in": []string{"Manager", "TeamLead"}}
	}
	if search := utils.SanitizeInput(c.QueryParam("search")); search != "" {
		pattern := primitiveRegex(search)
		filter["$or"] = []bson.M{
			{"firstName": pattern},
			{"lastName": pattern},
			{"email": pattern},
			{"designation": pattern},
		}
	}

	page, limit := parsePagination(c)

	total, err := collection.CountDocuments(ctx, filter)
	if err != nil {
		ec.logger.Printf("Failed to count employees: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to search employees",
		})
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "firstName", Value: 1}, {Key: "lastName", Value: 1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := collection.Find(ctx, filter, opts)
	if err != nil {
		ec.logger.Printf("Failed to search employees: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to search employees",
		})
	}
	defer cursor.Close(ctx)

	var employees []models.Employee
	if err := cursor.All(ctx, &employees); err != nil {
		ec.logger.Printf("Failed to decode employees: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to search employees",
		})
	}

	summaries := make([]models.EmployeeSummary, 0, len(employees))
	for _, e := range employees {
		s, _ := buildEmployeeSummary(ctx, ec.DB, e)
		summaries = append(summaries, s)
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employees retrieved successfully",
		Data:    summaries,
		Pagination: &models.Pagination{
			Total: total,
			Page:  page,
			Limit: limit,
		},
	})
}

// GetEmployee handles GET /api/employees/:id.
func (ec *EmployeeController) GetEmployee(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid employee ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var employee models.Employee
	err = config.GetCollection(ec.DB, "employees").
		FindOne(ctx, bson.M{"employeeId": id}).
		Decode(&employee)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Employee not found",
		})
	}

	summary, _ := buildEmployeeSummary(ctx, ec.DB, employee)
	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Employee retrieved successfully",
		Data:    summary,
	})
}

// GetProfile handles GET /api/employees/profile/:id.
func (ec *EmployeeController) GetProfile(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid employee ID",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var employee models.Employee
	err = config.GetCollection(ec.DB, "employees").
		FindOne(ctx, bson.M{"employeeId": id}).
		Decode(&employee)
	if err != nil {
		return c.JSON(http.StatusNotFound, models.Response{
			Success: false,
			Message: "Employee not found",
		})
	}

	profile := models.Profile{
		EmployeeID:        employee.EmployeeID,
		FirstName:         employee.FirstName,
		LastName:          employee.LastName,
		Email:             employee.Email,
		Role:              employee.Role,
		Designation:       employee.Designation,
		Department:        resolveDepartmentName(ctx, ec.DB, employee.DepartmentID),
		Manager:           resolveManagerRef(ctx, ec.DB, employee.ManagerEmployeeID),
		ProfilePicture:    employee.ProfilePicture,
		MobileNumber:      employee.MobileNumber,
		Address:           employee.Address,
		YearsOfExperience: employee.YearsOfExperience,
		JoiningDate:       employee.JoiningDate,
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile retrieved successfully",
		Data:    profile,
	})
}

// AddUser handles POST /api/employees/add-a-user. Admin only; the route
// enforces the role, this handler enforces the data.
func (ec *EmployeeController) AddUser(c echo.Context) error {
	var req models.AddUserRequest
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

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid email format",
		})
	}
	req.Email = email

	if req.MobileNumber != "" {
		phone, err := utils.SanitizePhone(req.MobileNumber)
		if err != nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Invalid mobile number format",
			})
		}
		req.MobileNumber = phone
	}

	req.FirstName = utils.SanitizeInput(req.FirstName)
	req.LastName = utils.SanitizeInput(req.LastName)
	req.Designation = utils.SanitizeInput(req.Designation)
	req.Address = utils.SanitizeInput(req.Address)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := config.GetCollection(ec.DB, "employees")

	count, err := collection.CountDocuments(ctx, bson.M{"$or": []bson.M{
		{"email": req.Email},
		{"employeeId": req.EmployeeID},
	}})
	if err != nil {
		ec.logger.Printf("Failed to check for existing employee: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to create user",
		})
	}
	if count > 0 {
		return c.JSON(http.StatusConflict, models.Response{
			Success: false,
			Message: "An employee with this email or ID already exists",
		})
	}

	if req.DepartmentID != 0 {
		if name := resolveDepartmentName(ctx, ec.DB, req.DepartmentID); name == "" {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Unknown department",
			})
		}
	}
	if req.ManagerEmployeeID != nil {
		if ref := resolveManagerRef(ctx, ec.DB, req.ManagerEmployeeID); ref == nil {
			return c.JSON(http.StatusBadRequest, models.Response{
				Success: false,
				Message: "Unknown manager",
			})
		}
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		ec.logger.Printf("Failed to hash password: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to create user",
		})
	}

	now := time.Now()
	employee := models.Employee{
		EmployeeID:        req.EmployeeID,
		FirstName:         req.FirstName,
		LastName:          req.LastName,
		Designation:       req.Designation,
		Email:             req.Email,
		Password:          string(hashed),
		Role:              req.Role,
		DepartmentID:      req.DepartmentID,
		ManagerEmployeeID: req.ManagerEmployeeID,
		MobileNumber:      req.MobileNumber,
		Address:           req.Address,
		Gender:            req.Gender,
		YearsOfExperience: req.YearsOfExperience,
		JoiningDate:       req.JoiningDate,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if _, err := collection.InsertOne(ctx, employee); err != nil {
		ec.logger.Printf("Failed to insert employee: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to create user",
		})
	}

	summary, _ := buildEmployeeSummary(ctx, ec.DB, employee)
	return c.JSON(http.StatusCreated, models.Response{
		Success: true,
		Message: "User created successfully",
		Data:    summary,
	})
}

// GetDepartments handles GET /api/departments.
func (ec *EmployeeController) GetDepartments(c echo.Context) error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := config.GetCollection(ec.DB, "departments").
		Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "departmentId", Value: 1}}))
	if err != nil {
		ec.logger.Printf("Failed to list departments: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve departments",
		})
	}
	defer cursor.Close(ctx)

	departments := []models.Department{}
	if err := cursor.All(ctx, &departments); err != nil {
		ec.logger.Printf("Failed to decode departments: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to retrieve departments",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Departments retrieved successfully",
		Data:    departments,
	})
}

// UploadProfilePhoto handles POST /api/employees/profile/:id/photo. An
// employee may change their own picture; admins may change anyone's.
func (ec *EmployeeController) UploadProfilePhoto(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid employee ID",
		})
	}

	claims := getClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Unauthorized",
		})
	}
	if claims.EmployeeID != id && claims.Role != "Admin" {
		return c.JSON(http.StatusForbidden, models.Response{
			Success: false,
			Message: "You can only change your own profile picture",
		})
	}

	file, err := c.FormFile("photo")
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No photo uploaded",
		})
	}

	path, err := utils.SaveProfileImage(file)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: err.Error(),
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := ec.Repo.UpdateProfilePicture(ctx, id, path); err != nil {
		ec.logger.Printf("Failed to update profile picture for %d: %v", id, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to update profile picture",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Profile picture updated successfully",
		Data:    map[string]string{"profilePicture": path},
	})
}
