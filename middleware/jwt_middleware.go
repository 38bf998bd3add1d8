// middleware/jwt_middleware.go
package middleware

import (
	"context"
	"errors"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/labstack/echo/v4"

	"github.com/ashwinpillai/hirehub_backend/config"
	"github.com/ashwinpillai/hirehub_backend/models"
)

// JwtCustomClaims for JWT token
type JwtCustomClaims struct {
	EmployeeID int    `json:"employeeId"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	jwt.StandardClaims
}

// Valid implements the Claims interface. Tokens carry no expiry (ExpiresAt 0
// means never expires); revocation happens through the logout blacklist.
func (c JwtCustomClaims) Valid() error {
	if c.ExpiresAt > 0 && time.Now().Unix() > c.ExpiresAt {
		return errors.New("token is expired")
	}
	if c.NotBefore > 0 && time.Now().Unix() < c.NotBefore {
		return errors.New("token used before valid")
	}
	return nil
}

// GetJWTSecret returns the JWT secret from environment variables
func GetJWTSecret() string {
	return os.Getenv("JWT_SECRET")
}

// GenerateJWT creates a signed token for an authenticated employee.
func GenerateJWT(employeeID int, email, role string) (string, error) {
	secret := GetJWTSecret()
	if secret == "" {
		return "", errors.New("JWT_SECRET environment variable is required")
	}

	claims := &JwtCustomClaims{
		EmployeeID: employeeID,
		Email:      email,
		Role:       role,
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: 0,
			IssuedAt:  time.Now().Unix(),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates a raw token string and returns its claims.
func ParseToken(tokenString string) (*JwtCustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &JwtCustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(GetJWTSecret()), nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*JwtCustomClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}
	return claims, nil
}

const blacklistKeyPrefix = "blacklist:"

// BlacklistToken revokes a token. Tokens never expire on their own, so the
// blacklist entry is kept without TTL.
func BlacklistToken(ctx context.Context, token string) error {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return errors.New("redis unavailable, cannot blacklist token")
	}
	return rdb.Set(ctx, blacklistKeyPrefix+token, "1", 0).Err()
}

// IsTokenBlacklisted checks whether a token was revoked by logout.
func IsTokenBlacklisted(ctx context.Context, token string) bool {
	rdb := config.GetRedisClient()
	if rdb == nil {
		return false
	}
	n, err := rdb.Exists(ctx, blacklistKeyPrefix+token).Result()
	return err == nil && n > 0
}

// JWTMiddleware authenticates the /api group: extracts the bearer token,
// rejects blacklisted or malformed tokens, and stashes the claims on the
// context for downstream handlers.
func JWTMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			tokenString := ExtractBearerToken(c)
			if tokenString == "" {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Missing or malformed authorization header",
				})
			}

			if IsTokenBlacklisted(c.Request().Context(), tokenString) {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Token has been revoked",
				})
			}

			claims, err := ParseToken(tokenString)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, models.Response{
					Success: false,
					Message: "Invalid or expired token",
				})
			}

			c.Set("claims", claims)
			c.Set("employeeId", claims.EmployeeID)
			c.Set("role", claims.Role)
			c.Set("token", tokenString)
			return next(c)
		}
	}
}

// ExtractBearerToken pulls the raw token out of the Authorization header.
func ExtractBearerToken(c echo.Context) string {
	auth := c.Request().Header.Get(echo.HeaderAuthorization)
	if auth == "" {
		return ""
	}
	parts := strings.SplitN(auth, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}

// GetClaims returns the authenticated claims set by JWTMiddleware, or nil on
// an unauthenticated context.
func GetClaims(c echo.Context) *JwtCustomClaims {
	claims, _ := c.Get("claims").(*JwtCustomClaims)
	return claims
}

// ExtractEmployeeID returns the authenticated employee's business ID.
func ExtractEmployeeID(c echo.Context) (int, error) {
	if id, ok := c.Get("employeeId").(int); ok && id != 0 {
		return id, nil
	}
	if claims := GetClaims(c); claims != nil {
		return claims.EmployeeID, nil
	}
	return 0, errors.New("invalid token")
}

// ExtractRole safely extracts the employee role from the context.
func ExtractRole(c echo.Context) string {
	if role, ok := c.Get("role").(string); ok && role != "" {
		return role
	}
	if claims := GetClaims(c); claims != nil {
		return claims.Role
	}
	return ""
}
