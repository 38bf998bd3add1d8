package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/controllers"
	"github.com/ashwinpillai/hirehub_backend/middleware"
)

// RegisterEmployeeRoutes sets up the employee directory, profile, skill and
// department routes. Everything requires a valid token; user provisioning
// is admin only.
func RegisterEmployeeRoutes(e *echo.Echo, employeeController *controllers.EmployeeController, skillController *controllers.SkillController) {
	jwt := middleware.JWTMiddleware()

	e.GET("/api/employees", employeeController.Search, jwt)
	e.GET("/api/employees/:id", employeeController.GetEmployee, jwt)
	e.GET("/api/employees/profile/:id", employeeController.GetProfile, jwt)
	e.POST("/api/employees/profile/:id/photo", employeeController.UploadProfilePhoto, jwt)
	e.POST("/api/employees/add-a-user", employeeController.AddUser, jwt, middleware.RequireRole("Admin"))

	e.GET("/api/departments", employeeController.GetDepartments, jwt)
	e.GET("/api/skills", skillController.Search, jwt)
}
