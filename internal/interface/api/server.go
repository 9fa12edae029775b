package api

import (
	"net/http"
	"time"

	"worldtime-service/internal/domain/repository"
	"worldtime-service/internal/usecase"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler serves the world time HTTP API
type Handler struct {
	timezones repository.TimezoneRepository
	planner   *usecase.MeetingPlanner
	sessions  *usecase.SessionManager
	clock     *usecase.WorldClock
	exports   *usecase.ExportService
	relay     *usecase.BackgroundRemovalService
	logger    logger.Logger
	metrics   *metrics.Metrics
}

// NewHandler creates a new API handler
func NewHandler(
	timezones repository.TimezoneRepository,
	planner *usecase.MeetingPlanner,
	sessions *usecase.SessionManager,
	worldClock *usecase.WorldClock,
	exports *usecase.ExportService,
	relay *usecase.BackgroundRemovalService,
	logger logger.Logger,
	m *metrics.Metrics,
) *Handler {
	return &Handler{
		timezones: timezones,
		planner:   planner,
		sessions:  sessions,
		clock:     worldClock,
		exports:   exports,
		relay:     relay,
		logger:    logger,
		metrics:   m,
	}
}

// NewEngine builds a gin engine with recovery, request logging and error rendering.
func NewEngine(log logger.Logger) *gin.Engine {
	r := gin.New()
	// Zone ids contain a slash and arrive escaped, e.g. Asia%2FJakarta.
	r.UseRawPath = true
	r.UnescapePathValues = true
	r.Use(gin.Recovery())
	r.Use(RequestLogger(log))
	r.Use(ErrorHandlingMiddleware())
	return r
}

// RequestLogger logs one line per request.
func RequestLogger(log logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		log.Info("HTTP request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"latency", time.Since(start).String(),
			"clientIP", c.ClientIP())
	}
}

// RegisterRoutes mounts the API under /api/v1 plus /health and /metrics.
func (h *Handler) RegisterRoutes(r *gin.Engine, gatherer prometheus.Gatherer) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "Healthy")
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	v1 := r.Group("/api/v1")

	v1.GET("/timezones", h.SearchTimezones)
	v1.GET("/timezones/:id", h.GetTimezone)

	v1.POST("/meetings/convert", h.ConvertMeeting)
	v1.POST("/background-removal", h.RemoveBackground)

	sessions := v1.Group("/sessions")
	sessions.POST("", h.CreateSession)
	sessions.DELETE("/:id", h.DeleteSession)
	sessions.GET("/:id/locations", h.ListLocations)
	sessions.POST("/:id/locations", h.AddLocation)
	sessions.DELETE("/:id/locations/:locationId", h.RemoveLocation)
	sessions.POST("/:id/meeting", h.ConvertSessionMeeting)
	sessions.GET("/:id/slots", h.SuggestSlots)
	sessions.GET("/:id/clock", h.ClockSnapshot)
	sessions.GET("/:id/clock/stream", h.StreamClock)
	sessions.POST("/:id/export/:format", h.ExportMeeting)
}
