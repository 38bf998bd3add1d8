package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/controllers"
	"github.com/ashwinpillai/hirehub_backend/middleware"
)

// RegisterLookupRoutes sets up the reference-data routes. Reads are open to
// any authenticated employee; edits are admin only.
func RegisterLookupRoutes(e *echo.Echo, lookupController *controllers.LookupController) {
	jwt := middleware.JWTMiddleware()

	e.GET("/api/lookups", lookupController.GetAll, jwt)
	e.GET("/api/lookups/:category", lookupController.GetCategory, jwt)
	e.POST("/api/lookups/:category", lookupController.AddOption, jwt, middleware.RequireRole("Admin"))
	e.DELETE("/api/lookups/:category/:id", lookupController.RemoveOption, jwt, middleware.RequireRole("Admin"))
}
