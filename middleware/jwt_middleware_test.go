package middleware

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndParseToken(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateJWT(1042, "priya.nair@example.com", "Recruiter")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ParseToken(token)
	require.NoError(t, err)
	assert.Equal(t, 1042, claims.EmployeeID)
	assert.Equal(t, "priya.nair@example.com", claims.Email)
	assert.Equal(t, "Recruiter", claims.Role)
}

func TestGenerateJWTRequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := GenerateJWT(1, "a@b.c", "Admin")
	assert.Error(t, err)
}

func TestParseTokenRejectsTampering(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateJWT(7, "x@y.z", "Manager")
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ParseToken(token)
	assert.Error(t, err)
}

func TestJWTMiddleware(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	e := echo.New()

	handler := JWTMiddleware()(func(c echo.Context) error {
		id, err := ExtractEmployeeID(c)
		require.NoError(t, err)
		return c.String(http.StatusOK, ExtractRole(c)+"/"+strconv.Itoa(id))
	})

	t.Run("valid bearer token passes through with claims set", func(t *testing.T) {
		token, err := GenerateJWT(55, "lead@example.com", "TeamLead")
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/api/resource-requests/55", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "TeamLead/55", rec.Body.String())
	})

	t.Run("missing header is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/resource-requests/55", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("garbage token is rejected", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/resource-requests/55", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-token")
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}

func TestExtractBearerToken(t *testing.T) {
	e := echo.New()

	newCtx := func(header string) echo.Context {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if header != "" {
			req.Header.Set(echo.HeaderAuthorization, header)
		}
		return e.NewContext(req, httptest.NewRecorder())
	}

	assert.Equal(t, "abc", ExtractBearerToken(newCtx("Bearer abc")))
	assert.Equal(t, "abc", ExtractBearerToken(newCtx("bearer abc")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("Basic abc")))
	assert.Equal(t, "", ExtractBearerToken(newCtx("Bearer")))
}
