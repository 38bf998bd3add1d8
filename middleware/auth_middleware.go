// middleware/auth_middleware.go
package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/models"
)

// RequireRole checks if the authenticated employee has one of the allowed roles
func RequireRole(allowedRoles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role := ExtractRole(c)

			if role == "" {
				c.Logger().Error("Authentication failed: role not found")
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Authentication failed: role not found",
				})
			}

			for _, allowed := range allowedRoles {
				if role == allowed {
					return next(c)
				}
			}

			c.Logger().Errorf("Access denied for role: %s, allowed roles: %v", role, allowedRoles)
			return c.JSON(http.StatusForbidden, models.Response{
				Success: false,
				Message: "Access denied for your role",
			})
		}
	}
}
