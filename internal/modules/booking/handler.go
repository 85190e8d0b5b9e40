package booking

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/response"
	"eventbooking/internal/pkg/utils"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/listMyBookings", h.ListMyBookings)
	rg.GET("/exportMyBookingsCsv", h.ExportMyBookingsCSV)
}

// ListMyBookings answers GET /listMyBookings?uid=...
func (h *Handler) ListMyBookings(c *gin.Context) {
	uid := utils.UserIDFromQuery(c)
	if uid == "" {
		response.Error(c, http.StatusBadRequest, ErrMissingUserID.Error())
		return
	}

	items, err := h.service.ListMyBookings(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, ErrMissingUserID) {
			response.Error(c, http.StatusBadRequest, ErrMissingUserID.Error())
			return
		}
		logger.FromContext(c.Request.Context()).Error("listMyBookings failed", logger.Err(err))
		response.Error(c, http.StatusInternalServerError, "internal")
		return
	}

	response.Items(c, items)
}

// ExportMyBookingsCSV answers GET /exportMyBookingsCsv?uid=... with a CSV
// download. Errors are plain text.
func (h *Handler) ExportMyBookingsCSV(c *gin.Context) {
	uid := utils.UserIDFromQuery(c)
	if uid == "" {
		response.Text(c, http.StatusBadRequest, ErrMissingUserID.Error())
		return
	}

	body, err := h.service.ExportMyBookingsCSV(c.Request.Context(), uid)
	if err != nil {
		if errors.Is(err, ErrMissingUserID) {
			response.Text(c, http.StatusBadRequest, ErrMissingUserID.Error())
			return
		}
		logger.FromContext(c.Request.Context()).Error("exportMyBookingsCsv failed", logger.Err(err))
		response.Text(c, http.StatusInternalServerError, "internal")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", ExportFilename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", []byte(body))
}
