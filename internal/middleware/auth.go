package middleware

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/pkg/logger"
)

const (
	// ContextUID is the gin context key holding the verified user id.
	ContextUID = "uid"

	// SessionCookie is the only cookie Firebase Hosting forwards to backends.
	SessionCookie = "__session"
)

type TokenVerifier interface {
	VerifyToken(ctx context.Context, token string) (string, error)
}

// Authenticate resolves the caller from a bearer token or the session cookie.
// It never rejects a request: routes that need a user decide what to do when
// ContextUID is absent.
func Authenticate(verifier TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			if cookie, err := c.Cookie(SessionCookie); err == nil {
				token = strings.TrimSpace(cookie)
			}
		}

		if token != "" {
			uid, err := verifier.VerifyToken(c.Request.Context(), token)
			if err != nil {
				logger.FromContext(c.Request.Context()).Debug("token rejected", logger.Err(err))
			} else if uid != "" {
				c.Set(ContextUID, uid)
				ctx := c.Request.Context()
				c.Request = c.Request.WithContext(logger.NewContext(ctx, logger.FromContext(ctx).With("uid", uid)))
			}
		}

		c.Next()
	}
}

// UserID returns the verified user id or "".
func UserID(c *gin.Context) string {
	return c.GetString(ContextUID)
}

func bearerToken(header string) string {
	parts := strings.SplitN(strings.TrimSpace(header), " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
