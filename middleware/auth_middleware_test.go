package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireRole(t *testing.T) {
	e := echo.New()

	newCtx := func(role string) (echo.Context, *httptest.ResponseRecorder) {
		req := httptest.NewRequest(http.MethodPost, "/api/lookups/job-types", nil)
		rec := httptest.NewRecorder()
		c := e.NewContext(req, rec)
		if role != "" {
			c.Set("role", role)
		}
		return c, rec
	}

	handler := RequireRole("Admin")(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	t.Run("allowed role passes", func(t *testing.T) {
		c, rec := newCtx("Admin")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("other role is forbidden", func(t *testing.T) {
		c, rec := newCtx("TeamLead")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("missing role is unauthorized", func(t *testing.T) {
		c, rec := newCtx("")
		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("multiple allowed roles", func(t *testing.T) {
		multi := RequireRole("Admin", "Recruiter")(func(c echo.Context) error {
			return c.NoContent(http.StatusOK)
		})
		c, rec := newCtx("Recruiter")
		require.NoError(t, multi(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})
}
