package api

import (
	"net/http"
	"time"

	"worldtime-service/internal/domain/entity"

	"github.com/gin-gonic/gin"
)

// ClockSnapshot returns the current local time at each of the session's locations.
func (h *Handler) ClockSnapshot(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": h.clock.Snapshot(s.Locations())})
}

// StreamClock pushes a "clock" server-sent event every tick until the client goes away.
// Locations added or removed while streaming show up on the next tick. Each tick
// keeps the session alive; the stream ends once the session is deleted.
func (h *Handler) StreamClock(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	headers := c.Writer.Header()
	headers.Set("Content-Type", "text/event-stream")
	headers.Set("Cache-Control", "no-cache")
	headers.Set("Connection", "keep-alive")
	headers.Set("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)
	// The stream outlives the server write timeout.
	_ = http.NewResponseController(c.Writer).SetWriteDeadline(time.Time{})

	if h.metrics != nil {
		h.metrics.ClockStreams.Inc()
		defer h.metrics.ClockStreams.Dec()
	}

	ctx := c.Request.Context()
	err = h.clock.Run(ctx, s.Locations, func(readings []entity.ClockReading) error {
		if err := h.sessions.Touch(s.ID); err != nil {
			return err
		}
		c.SSEvent("clock", readings)
		c.Writer.Flush()
		return ctx.Err()
	})
	if err != nil {
		h.logger.Debug("Clock stream closed", "sessionID", s.ID, "error", err)
	}
}
