package middleware

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/response"
)

const headerRequestID = "X-Request-ID"

// RequestLogger attaches a request-scoped logger to the context, logs one line
// per request and turns panics into a 500.
func RequestLogger(base *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		reqID := requestID(c)
		c.Writer.Header().Set(headerRequestID, reqID)

		log := base.With(slog.String("request_id", reqID))
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

		defer func() {
			if recovered := recover(); recovered != nil {
				log.Error("panic recovered",
					logger.Err(fmt.Errorf("%v", recovered)),
					slog.String("method", c.Request.Method),
					slog.String("path", c.Request.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)
				response.Error(c, http.StatusInternalServerError, "internal")
				c.Abort()
				return
			}

			attrs := []any{
				slog.Int("status", c.Writer.Status()),
				slog.String("method", c.Request.Method),
				slog.String("path", c.Request.URL.Path),
				slog.String("client_ip", c.ClientIP()),
				slog.Duration("latency", time.Since(start)),
			}
			if uid := UserID(c); uid != "" {
				attrs = append(attrs, slog.String("uid", uid))
			}
			for _, e := range c.Errors {
				attrs = append(attrs, logger.Err(e.Err))
			}

			if c.Writer.Status() >= http.StatusInternalServerError {
				log.Error("request failed", attrs...)
				return
			}
			log.Info("request", attrs...)
		}()

		c.Next()
	}
}

func requestID(c *gin.Context) string {
	if id := c.GetHeader(headerRequestID); id != "" {
		return id
	}
	return uuid.NewString()
}
