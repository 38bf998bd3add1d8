// models/employee.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Employee model. EmployeeID is the business key assigned by the admin at
// provisioning time; the Mongo _id stays internal.
type Employee struct {
	ID                primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	EmployeeID        int                `json:"EmployeeID" bson:"employeeId"`
	FirstName         string             `json:"FirstName" bson:"firstName"`
	LastName          string             `json:"LastName" bson:"lastName"`
	Designation       string             `json:"Designation" bson:"designation"`
	Email             string             `json:"Email" bson:"email"`
	Password          string             `json:"-" bson:"password"`
	Role              string             `json:"Role" bson:"role"` // "Admin", "Recruiter", "Manager", "TeamLead"
	DepartmentID      int                `json:"DepartmentID" bson:"departmentId"`
	ManagerEmployeeID *int               `json:"ManagerEmployeeID,omitempty" bson:"managerEmployeeId,omitempty"`
	MobileNumber      string             `json:"MobileNumber,omitempty" bson:"mobileNumber,omitempty"`
	Address           string             `json:"Address,omitempty" bson:"address,omitempty"`
	Gender            string             `json:"Gender,omitempty" bson:"gender,omitempty"`
	YearsOfExperience int                `json:"YearsOfExperience" bson:"yearsOfExperience"`
	JoiningDate       string             `json:"JoiningDate,omitempty" bson:"joiningDate,omitempty"`
	ProfilePicture    string             `json:"ProfilePicture,omitempty" bson:"profilePicture,omitempty"`
	CreatedAt         time.Time          `json:"CreatedAt" bson:"createdAt"`
	UpdatedAt         time.Time          `json:"UpdatedAt" bson:"updatedAt"`
}

// FullName returns the display name used in panel pickers and JD text.
func (e Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// Department model
type Department struct {
	ID             primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	DepartmentID   int                `json:"DepartmentID" bson:"departmentId"`
	DepartmentName string             `json:"DepartmentName" bson:"departmentName"`
}

// DepartmentRef is the nested shape embedded in employee responses.
type DepartmentRef struct {
	DepartmentID   int    `json:"DepartmentID,omitempty"`
	DepartmentName string `json:"DepartmentName"`
}

// ManagerRef is the nested manager shape embedded in employee responses.
type ManagerRef struct {
	EmployeeID  int    `json:"EmployeeID"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	Designation string `json:"Designation"`
}

// EmployeeSummary is the directory-search row consumed by panel-member
// selection and the org chart.
type EmployeeSummary struct {
	EmployeeID  int           `json:"EmployeeID"`
	FirstName   string        `json:"FirstName"`
	LastName    string        `json:"LastName"`
	Designation string        `json:"Designation"`
	Email       string        `json:"Email"`
	Role        string        `json:"Role"`
	Department  DepartmentRef `json:"Department"`
	Manager     *ManagerRef   `json:"Manager"`
}

// Profile is the full profile-page payload.
type Profile struct {
	EmployeeID        int         `json:"EmployeeID"`
	FirstName         string      `json:"FirstName"`
	LastName          string      `json:"LastName"`
	Email             string      `json:"Email"`
	Role              string      `json:"Role"`
	Designation       string      `json:"Designation"`
	Department        string      `json:"Department"`
	Manager           *ManagerRef `json:"Manager"`
	ProfilePicture    string      `json:"ProfilePicture,omitempty"`
	MobileNumber      string      `json:"MobileNumber,omitempty"`
	Address           string      `json:"Address,omitempty"`
	YearsOfExperience int         `json:"YearsOfExperience"`
	JoiningDate       string      `json:"JoiningDate,omitempty"`
}

// AddUserRequest is the admin user-provisioning payload.
type AddUserRequest struct {
	EmployeeID        int    `json:"EmployeeID" validate:"required,gt=0"`
	FirstName         string `json:"FirstName" validate:"required"`
	LastName          string `json:"LastName" validate:"required"`
	Designation       string `json:"Designation" validate:"required"`
	DepartmentID      int    `json:"DepartmentID" validate:"required"`
	ManagerEmployeeID *int   `json:"ManagerEmployeeID"`
	Email             string `json:"Email" validate:"required,email"`
	Password          string `json:"Password" validate:"required,min=8"`
	Role              string `json:"Role" validate:"required,oneof=Admin Recruiter Manager TeamLead"`
	MobileNumber      string `json:"MobileNumber"`
	Address           string `json:"Address"`
	Gender            string `json:"Gender"`
	YearsOfExperience int    `json:"YearsOfExperience" validate:"gte=0"`
	JoiningDate       string `json:"JoiningDate"`
}

// LoginRequest is the credentials payload for /api/login.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LoginData is returned on a successful login. The client persists both
// fields across reloads.
type LoginData struct {
	Token    string          `json:"token"`
	Employee EmployeeSummary `json:"employee"`
}

// Skill is a row of the skill-suggestion source.
type Skill struct {
	ID        primitive.ObjectID `json:"-" bson:"_id,omitempty"`
	SkillID   int                `json:"SkillID" bson:"skillId"`
	SkillName string             `json:"SkillName" bson:"skillName"`
}
