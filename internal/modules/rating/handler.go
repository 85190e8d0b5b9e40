package rating

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/response"
	"eventbooking/internal/pkg/utils"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/listMyRatings", h.ListMyRatings)
}

func (h *Handler) ListMyRatings(c *gin.Context) {
	uid := utils.UserIDFromQuery(c)
	if uid == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingUserID.Error())
		return
	}

	items, err := h.svc.ListMyRatings(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, ErrMissingUserID) {
			response.Error(c, http.StatusBadRequest, ErrMissingUserID.Error())
			return
		}
		logger.FromContext(c.Request.Context()).Error("listMyRatings failed", logger.Err(err))
		response.Error(c, http.StatusInternalServerError, "internal")
		return
	}

	response.Items(c, items)
}
