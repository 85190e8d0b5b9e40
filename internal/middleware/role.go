package middleware

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
)

// PageResolver decides whether a user may open a front-end page and where to
// send them otherwise.
type PageResolver interface {
	Allow(ctx context.Context, path, uid string) (redirectPath string, allowed bool)
}

// PageGuard redirects with 302 when the resolver denies the requested page.
// It relies on Authenticate having run first.
func PageGuard(resolver PageResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		redirect, ok := resolver.Allow(c.Request.Context(), c.Request.URL.Path, UserID(c))
		if !ok {
			c.Redirect(http.StatusFound, redirect)
			c.Abort()
			return
		}
		c.Next()
	}
}
