package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runWithSecurityHeaders(t *testing.T, cfg SecurityConfig) http.Header {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := SecurityHeadersWithConfig(cfg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	require.NoError(t, handler(c))
	return rec.Header()
}

func TestSecurityHeadersSet(t *testing.T) {
	h := runWithSecurityHeaders(t, SecurityConfig{AllowedDomains: []string{"*"}})

	assert.Equal(t, "DENY", h.Get("X-Frame-Options"))
	assert.Equal(t, "nosniff", h.Get("X-Content-Type-Options"))
	assert.NotEmpty(t, h.Get("Strict-Transport-Security"))
	assert.Contains(t, h.Get("Content-Security-Policy"), "default-src 'self'")
	assert.Contains(t, h.Get("Content-Security-Policy"), "connect-src 'self' *")
}

func TestBuildCSPScriptSrc(t *testing.T) {
	tests := []struct {
		name    string
		cfg     SecurityConfig
		want    string
		notWant []string
	}{
		{
			name:    "locked down",
			cfg:     SecurityConfig{},
			want:    "script-src 'self'",
			notWant: []string{"'unsafe-inline'", "'unsafe-eval'"},
		},
		{
			name:    "inline only",
			cfg:     SecurityConfig{AllowInlineJS: true},
			want:    "script-src 'self' 'unsafe-inline'",
			notWant: []string{"'unsafe-eval'"},
		},
		{
			name: "inline and eval",
			cfg:  SecurityConfig{AllowInlineJS: true, AllowEval: true},
			want: "script-src 'self' 'unsafe-inline' 'unsafe-eval'",
		},
		{
			name:    "eval only",
			cfg:     SecurityConfig{AllowEval: true},
			want:    "script-src 'self' 'unsafe-eval'",
			notWant: []string{"'unsafe-inline'"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			csp := buildCSP(tt.cfg)
			assert.Contains(t, csp, tt.want)
			for _, s := range tt.notWant {
				assert.NotContains(t, csp, s)
			}
		})
	}
}
