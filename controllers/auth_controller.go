package controllers

import (
	"context"
	"log"
	"net/http"
	"os"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/middleware"
	"github.com/ashwinpillai/hirehub_backend/models"
	"github.com/ashwinpillai/hirehub_backend/utils"
)

const (
	maxLoginAttempts   = 5
	loginLockoutWindow = 15 * time.Minute
)

// AuthController contains authentication logic
type AuthController struct {
	DB            *mongo.Client
	logger        *log.Logger
	loginAttempts map[string]struct {
		count       int
		lastAttempt time.Time
	}
	loginAttemptsMu sync.RWMutex
}

// NewAuthController creates a new auth controller
func NewAuthController(db *mongo.Client) *AuthController {
	ac := &AuthController{
		DB:     db,
		logger: log.New(os.Stdout, "[AUTH] ", log.LstdFlags),
		loginAttempts: make(map[string]struct {
			count       int
			lastAttempt time.Time
		}),
	}

	go ac.startLoginAttemptCleanupRoutine()

	return ac
}

func (ac *AuthController) startLoginAttemptCleanupRoutine() {
	ticker := time.NewTicker(10 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		ac.loginAttemptsMu.Lock()
		for email, attempt := range ac.loginAttempts {
			if time.Since(attempt.lastAttempt) > loginLockoutWindow {
				delete(ac.loginAttempts, email)
			}
		}
		ac.loginAttemptsMu.Unlock()
	}
}

func (ac *AuthController) isLockedOut(email string) bool {
	ac.loginAttemptsMu.RLock()
	defer ac.loginAttemptsMu.RUnlock()
	attempt, ok := ac.loginAttempts[email]
	return ok && attempt.count >= maxLoginAttempts && time.Since(attempt.lastAttempt) < loginLockoutWindow
}

func (ac *AuthController) recordFailedAttempt(email string) {
	ac.loginAttemptsMu.Lock()
	defer ac.loginAttemptsMu.Unlock()
	attempt := ac.loginAttempts[email]
	attempt.count++
	attempt.lastAttempt = time.Now()
	ac.loginAttempts[email] = attempt
}

func (ac *AuthController) clearAttempts(email string) {
	ac.loginAttemptsMu.Lock()
	defer ac.loginAttemptsMu.Unlock()
	delete(ac.loginAttempts, email)
}

// Login authenticates an employee by email and password and issues a JWT.
func (ac *AuthController) Login(c echo.Context) error {
	var req models.LoginRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid request body",
		})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Email and password are required",
		})
	}

	email, err := utils.SanitizeEmail(req.Email)
	if err != nil {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Invalid email format",
		})
	}

	if ac.isLockedOut(email) {
		ac.logger.Printf("Login locked out for %s", email)
		return c.JSON(http.StatusTooManyRequests, models.Response{
			Success: false,
			Message: "Too many failed attempts. Try again later.",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var employee models.Employee
	err = config.GetCollection(ac.DB, "employees").
		FindOne(ctx, bson.M{"email": email}).
		Decode(&employee)
	if err != nil {
		ac.recordFailedAttempt(email)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	if err := bcrypt.CompareHashAndPassword([]byte(employee.Password), []byte(req.Password)); err != nil {
		ac.recordFailedAttempt(email)
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid email or password",
		})
	}

	ac.clearAttempts(email)

	token, err := middleware.GenerateJWT(employee.EmployeeID, employee.Email, employee.Role)
	if err != nil {
		ac.logger.Printf("Failed to generate token for %s: %v", email, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to generate token",
		})
	}

	summary, err := buildEmployeeSummary(ctx, ac.DB, employee)
	if err != nil {
		ac.logger.Printf("Failed to resolve employee %d references: %v", employee.EmployeeID, err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to load employee record",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Login successful",
		Data: models.LoginData{
			Token:    token,
			Employee: summary,
		},
	})
}

// Logout blacklists the presented token so it cannot be replayed.
func (ac *AuthController) Logout(c echo.Context) error {
	token := middleware.ExtractBearerToken(c)
	if token == "" {
		return c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "No token provided",
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := middleware.BlacklistToken(ctx, token); err != nil {
		ac.logger.Printf("Failed to blacklist token: %v", err)
		return c.JSON(http.StatusInternalServerError, models.Response{
			Success: false,
			Message: "Failed to log out",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Logged out successfully",
	})
}

// ValidateToken lets the client confirm a persisted token is still usable
// before restoring a session from local storage.
func (ac *AuthController) ValidateToken(c echo.Context) error {
	claims := middleware.GetClaims(c)
	if claims == nil {
		return c.JSON(http.StatusUnauthorized, models.Response{
			Success: false,
			Message: "Invalid token",
		})
	}

	return c.JSON(http.StatusOK, models.Response{
		Success: true,
		Message: "Token is valid",
		Data: map[string]interface{}{
			"employeeId": claims.EmployeeID,
			"email":      claims.Email,
			"role":       claims.Role,
		},
	})
}
