package api

import (
	"fmt"
	"net/http"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/usecase"

	"github.com/gin-gonic/gin"
)

type convertRequest struct {
	Meeting   entity.MeetingQuery    `json:"meeting"`
	Locations []entity.LocationInput `json:"locations" binding:"dive"`
}

// ConvertSessionMeeting converts a meeting across the session's locations.
func (h *Handler) ConvertSessionMeeting(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var query entity.MeetingQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		AbortWithError(c, fmt.Errorf("%w: date, time and timezoneId are required", entity.ErrInvalidMeeting))
		return
	}

	plan, err := h.planner.ConvertMeetingAcrossLocations(c.Request.Context(), query, s.Locations())
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plan})
}

// ConvertMeeting converts a meeting across inline locations without a session.
func (h *Handler) ConvertMeeting(c *gin.Context) {
	var req convertRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		AbortWithError(c, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}

	locations, err := h.planner.ResolveLocations(c.Request.Context(), req.Locations)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	plan, err := h.planner.ConvertMeetingAcrossLocations(c.Request.Context(), req.Meeting, locations)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": plan})
}

// SuggestSlots reports shared working time for the session's locations.
func (h *Handler) SuggestSlots(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var opts usecase.SlotOptions
	if err := c.ShouldBindQuery(&opts); err != nil {
		AbortWithError(c, fmt.Errorf("%w: step and duration must be whole minutes", entity.ErrInvalidSlotOptions))
		return
	}

	report, err := h.planner.SuggestMeetingSlots(c.Request.Context(), s.Locations(), opts)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": report})
}

// ExportMeeting renders the session's meeting as a file download.
func (h *Handler) ExportMeeting(c *gin.Context) {
	s, err := h.sessions.Get(c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}

	var query entity.MeetingQuery
	if err := c.ShouldBindJSON(&query); err != nil {
		AbortWithError(c, fmt.Errorf("%w: date, time and timezoneId are required", entity.ErrInvalidMeeting))
		return
	}

	file, err := h.exports.Export(c.Request.Context(), s, c.Param("format"), query)
	if err != nil {
		AbortWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, file.Filename))
	c.Data(http.StatusOK, file.ContentType, file.Data)
}
