package api

import (
	"fmt"
	"net/http"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type sessionResponse struct {
	ID        string            `json:"id"`
	Locations []entity.Location `json:"locations"`
}

func newSessionResponse(s *usecase.ComparisonSession) sessionResponse {
	return sessionResponse{ID: s.ID, Locations: s.Locations()}
}

// CreateSession starts an empty comparison session.
func (h *Handler) CreateSession(c *gin.Context) {
	s := h.sessions.Create()
	c.JSON(http.StatusCreated, gin.H{"data": newSessionResponse(s)})
}

// DeleteSession discards a session and its locations.
func (h *Handler) DeleteSession(c *gin.Context) {
	if err := h.sessions.Delete(c.Param("id")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// ListLocations returns the session's locations in the order they were added.
func (h *Handler) ListLocations(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": s.Locations()})
}

// AddLocation adds a timezone with optional working hours to the session.
func (h *Handler) AddLocation(c *gin.Context) {
	var req entity.LocationInput
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, fmt.Errorf("%w: timezoneId is required", ErrInvalidRequest))
		return
	}

	loc, err := h.sessions.AddLocation(c.Request.Context(), c.Param("id"), req.TimezoneID, req.WorkingHours.Start, req.WorkingHours.End)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"data": loc})
}

// RemoveLocation drops one location from the session.
func (h *Handler) RemoveLocation(c *gin.Context) {
	if err := h.sessions.RemoveLocation(c.Param("id"), c.Param("locationId")); err != nil {
		AbortWithError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
