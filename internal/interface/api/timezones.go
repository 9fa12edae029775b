package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

const maxSearchLimit = 100

// SearchTimezones lists catalog entries matching q, or the whole catalog when q is empty.
func (h *Handler) SearchTimezones(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	limit := 20
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 || n > maxSearchLimit {
			AbortWithError(c, ErrInvalidRequest)
			return
		}
		limit = n
	}

	if query == "" {
		zones, err := h.timezones.List(c.Request.Context())
		if err != nil {
			AbortWithError(c, err)
			return
		}
		if len(zones) > limit {
			zones = zones[:limit]
		}
		c.JSON(http.StatusOK, gin.H{"data": zones})
		return
	}

	zones, err := h.timezones.Search(c.Request.Context(), query, limit)
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": zones})
}

// GetTimezone returns one catalog entry by IANA id.
func (h *Handler) GetTimezone(c *gin.Context) {
	tz, err := h.timezones.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		AbortWithError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": tz})
}
