package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Items writes the list envelope used by the read endpoints.
func Items(c *gin.Context, items any) {
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// Error writes {"error": code}.
func Error(c *gin.Context, statusCode int, code string) {
	c.JSON(statusCode, gin.H{"error": code})
}

func ErrorWithDetail(c *gin.Context, statusCode int, code string, detail any) {
	c.JSON(statusCode, gin.H{
		"error":  code,
		"detail": detail,
	})
}

// Text writes a plain-text body, for endpoints whose success payload is not JSON.
func Text(c *gin.Context, statusCode int, body string) {
	c.Data(statusCode, "text/plain; charset=utf-8", []byte(body))
}

func MethodNotAllowed(c *gin.Context) {
	Text(c, http.StatusMethodNotAllowed, "Method Not Allowed")
}
