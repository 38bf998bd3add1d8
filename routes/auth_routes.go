package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/controllers"
	"github.com/ashwinpillai/hirehub_backend/middleware"
)

// RegisterAuthRoutes sets up authentication routes. Login is the only
// public endpoint in the API.
func RegisterAuthRoutes(e *echo.Echo, authController *controllers.AuthController) {
	e.POST("/api/login", authController.Login)
	e.POST("/api/logout", authController.Logout, middleware.JWTMiddleware())
	e.GET("/api/validate-token", authController.ValidateToken, middleware.JWTMiddleware())
}
