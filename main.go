package main

import (
	"log"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/controllers"
	"github.com/ashwinpillai/hirehub_backend/middleware"
	"github.com/ashwinpillai/hirehub_backend/repositories"
	"github.com/ashwinpillai/hirehub_backend/routes"
	"github.com/ashwinpillai/hirehub_backend/websocket"
)

// CustomValidator is a custom validator for Echo
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates the request body
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func main() {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found")
	}

	// Connect to Redis
	config.ConnectRedis()

	// Connect to database
	client := config.ConnectDB()

	// Create WebSocket hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Create a new Echo instance
	e := echo.New()

	// Initialize custom validator
	e.Validator = &CustomValidator{validator: validator.New()}

	// Initialize rate limiter
	rateLimiter := middleware.NewRateLimiter()

	// Middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.Secure())
	e.Use(rateLimiter.RateLimit())
	e.Use(middleware.SecurityHeadersWithConfig(middleware.SecurityConfig{
		AllowedDomains: []string{"*"},
		AllowInlineJS:  false,
		AllowEval:      false,
	}))

	e.Match([]string{"GET", "HEAD"}, "/", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":  "OK",
			"message": "HireHub Backend is running",
			"version": "1.0",
		})
	})

	e.Match([]string{"GET", "HEAD"}, "/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{
			"status":   "healthy",
			"database": "connected",
		})
	})

	e.Use(httpsRedirect())

	// Initialize repositories
	employeeRepo := repositories.NewEmployeeRepository(client)

	// Initialize controllers
	authController := controllers.NewAuthController(client)
	employeeController := controllers.NewEmployeeController(client, employeeRepo)
	skillController := controllers.NewSkillController(client)
	lookupController := controllers.NewLookupController(client, config.GetRedisClient())
	requestController := controllers.NewResourceRequestController(client, wsHub)

	// Register routes
	routes.RegisterAuthRoutes(e, authController)
	routes.RegisterEmployeeRoutes(e, employeeController, skillController)
	routes.RegisterLookupRoutes(e, lookupController)
	routes.RegisterResourceRequestRoutes(e, requestController)

	// WebSocket endpoint; the token travels as a query parameter because
	// browsers cannot set headers on the upgrade request.
	e.GET("/api/ws", websocket.Handler(wsHub))

	// Ensure uploads directory exists
	os.MkdirAll("uploads", 0755)
	os.MkdirAll("uploads/profiles", 0755)

	e.Static("/uploads", "uploads")

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	e.Logger.Fatal(e.Start(":" + port))
}

func httpsRedirect() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if c.Request().Header.Get("X-Forwarded-Proto") == "http" {
				return c.Redirect(301, "https://"+c.Request().Host+c.Request().RequestURI)
			}
			return next(c)
		}
	}
}
