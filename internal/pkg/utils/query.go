package utils

import (
	"strings"
	"time"

	"github.com/gin-gonic/gin"
)

// isoMillis is the JavaScript Date#toISOString layout the web client parses.
const isoMillis = "2006-01-02T15:04:05.000Z"

// UserIDFromQuery reads ?uid=, falling back to ?userId= when uid is empty.
func UserIDFromQuery(c *gin.Context) string {
	if uid := strings.TrimSpace(c.Query("uid")); uid != "" {
		return uid
	}
	return strings.TrimSpace(c.Query("userId"))
}

// ISOTime formats t in UTC with millisecond precision, or "" for nil.
func ISOTime(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoMillis)
}
