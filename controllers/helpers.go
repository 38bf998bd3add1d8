package controllers

import (
	"regexp"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ashwinpillai/hirehub_backend/middleware"
)

// primitiveRegex builds a case-insensitive Mongo regex with the user input
// escaped, so directory search terms are never interpreted as patterns.
func primitiveRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// exactMatchRegex matches the whole field case-insensitively.
func exactMatchRegex(s string) primitive.Regex {
	return primitive.Regex{Pattern: "^" + regexp.QuoteMeta(s) + "$", Options: "i"}
}

// joinSorted joins names in a stable order for user-facing messages.
func joinSorted(names []string) string {
	sorted := append([]string(nil), names...)
	sort.Strings(sorted)
	return strings.Join(sorted, ", ")
}

// getClaims pulls the verified JWT claims the auth middleware stored on the
// request context.
func getClaims(c echo.Context) *middleware.JwtCustomClaims {
	return middleware.GetClaims(c)
}
