package notification

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/mailer"
	"eventbooking/internal/pkg/response"
	"eventbooking/internal/pkg/validator"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.GET("/sendBookingEmail", h.Usage)
	rg.POST("/sendBookingEmail", h.SendBookingEmail)
}

func (h *Handler) Usage(c *gin.Context) {
	c.JSON(http.StatusOK, usage())
}

func (h *Handler) SendBookingEmail(c *gin.Context) {
	var req SendBookingEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mailSendTotal.WithLabelValues(outcomeBadRequest).Inc()
		response.Error(c, http.StatusBadRequest, ErrBadRequest.Error())
		return
	}
	if errs := validator.Validate(req); errs != nil {
		mailSendTotal.WithLabelValues(outcomeBadRequest).Inc()
		response.Error(c, http.StatusBadRequest, ErrBadRequest.Error())
		return
	}

	log := logger.FromContext(c.Request.Context())

	status, err := h.service.SendBookingEmail(c.Request.Context(), req)
	switch {
	case err == nil:
		mailSendTotal.WithLabelValues(outcomeSent).Inc()
		c.JSON(http.StatusOK, SendBookingEmailResponse{OK: true, SGStatus: status})
	case errors.Is(err, ErrBadRequest):
		mailSendTotal.WithLabelValues(outcomeBadRequest).Inc()
		response.Error(c, http.StatusBadRequest, ErrBadRequest.Error())
	case errors.Is(err, ErrKeyNotSet), errors.Is(err, ErrFromNotSet):
		mailSendTotal.WithLabelValues(outcomeConfigMissing).Inc()
		log.Warn("sendBookingEmail not configured", logger.Err(err))
		response.Error(c, http.StatusInternalServerError, err.Error())
	default:
		mailSendTotal.WithLabelValues(outcomeProviderError).Inc()
		detail := errorDetail(err)
		log.Error("sendBookingEmail error", logger.Err(err), "detail", detail)
		response.ErrorWithDetail(c, http.StatusInternalServerError, ErrSendFailure.Error(), detail)
	}
}

func errorDetail(err error) any {
	var perr *mailer.ProviderError
	if errors.As(err, &perr) && perr.Body != nil {
		return perr.Body
	}
	return gin.H{"message": err.Error()}
}
