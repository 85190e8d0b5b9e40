// Package server assembles the gin engine from the feature modules.
package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"eventbooking/internal/config"
	"eventbooking/internal/middleware"
	"eventbooking/internal/modules/booking"
	"eventbooking/internal/modules/navigation"
	"eventbooking/internal/modules/notification"
	"eventbooking/internal/modules/rating"
	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/response"
)

type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps are the store, auth and mail adapters selected at startup.
type Deps struct {
	Bookings booking.BookingRepository
	Ratings  rating.RatingRepository
	Users    navigation.UserRepository
	Health   Pinger
	Verifier middleware.TokenVerifier
	Mailer   notification.Mailer
	Secrets  notification.SecretsLoader
}

func NewRouter(cfg *config.Config, log *slog.Logger, deps Deps) *gin.Engine {
	if cfg.IsProd() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.RedirectTrailingSlash = false

	r.Use(
		middleware.RequestLogger(log),
		middleware.Metrics(),
		middleware.CORS(cfg.CORSOrigins),
		middleware.Timeout(cfg.RequestTimeout),
		middleware.Authenticate(deps.Verifier),
	)

	r.GET("/healthz", healthz(deps.Health))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	booking.NewHandler(booking.NewService(deps.Bookings)).RegisterRoutes(r)
	rating.NewHandler(rating.NewService(deps.Ratings)).RegisterRoutes(r)
	notification.NewHandler(notification.NewService(deps.Mailer, deps.Secrets)).RegisterRoutes(r)

	resolver := navigation.NewResolver(navigation.NewTable(navigation.DefaultRoutes), deps.Users)
	navigation.NewHandler(resolver).RegisterRoutes(r)

	r.NoMethod(response.MethodNotAllowed)
	if cfg.StaticDir != "" {
		spa := navigation.NewSPA(cfg.StaticDir)
		r.NoRoute(spa.Assets, middleware.PageGuard(resolver), spa.Index)
	} else {
		r.NoRoute(func(c *gin.Context) {
			response.Error(c, http.StatusNotFound, "not_found")
		})
	}

	return r
}

func healthz(p Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := p.Ping(c.Request.Context()); err != nil {
			logger.FromContext(c.Request.Context()).Error("health check failed", logger.Err(err))
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}
