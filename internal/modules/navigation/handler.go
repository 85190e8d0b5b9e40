package navigation

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/middleware"
)

type Handler struct {
	resolver *Resolver
}

func NewHandler(resolver *Resolver) *Handler {
	return &Handler{resolver: resolver}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/resolveRoute", h.ResolveRoute)
}

// ResolveRoute answers GET /resolveRoute?path=/admin for the calling user.
func (h *Handler) ResolveRoute(c *gin.Context) {
	path := c.DefaultQuery("path", "/")
	c.JSON(http.StatusOK, h.resolver.Resolve(c.Request.Context(), path, middleware.UserID(c)))
}
