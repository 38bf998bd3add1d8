package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/controllers"
	"github.com/ashwinpillai/hirehub_backend/middleware"
)

// RegisterResourceRequestRoutes sets up the resource-request lifecycle
// routes. Recruiters review requests rather than raise them, so creation is
// restricted to the other three roles; finer-grained rules (ownership,
// status, capabilities) live in the handlers.
func RegisterResourceRequestRoutes(e *echo.Echo, requestController *controllers.ResourceRequestController) {
	jwt := middleware.JWTMiddleware()

	// The create path is /api/job-description for historical reasons: the
	// client has always posted the request form there.
	e.POST("/api/job-description", requestController.Create, jwt,
		middleware.RequireRole("Admin", "Manager", "TeamLead"))
	e.GET("/api/resource-requests/:employeeId", requestController.List, jwt)
	e.DELETE("/api/resource-requests/:id", requestController.Delete, jwt)

	e.GET("/api/resource-request/:id", requestController.Get, jwt)
	e.PUT("/api/resource-request/:id", requestController.Update, jwt)
	e.GET("/api/resource-request/:id/job-description", requestController.GenerateJobDescription, jwt)
}
