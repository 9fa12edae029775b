package api

import (
	"errors"
	"net/http"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/pkg/tzcalc"

	"github.com/gin-gonic/gin"
)

type errorPayload struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

type errorResponse struct {
	Error errorPayload `json:"error"`
}

// ErrInvalidRequest is returned for bodies and parameters that do not bind.
var ErrInvalidRequest = errors.New("invalid request")

// ErrorHandlingMiddleware renders the last error attached to the context.
func ErrorHandlingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		lastErr := c.Errors.Last()
		if lastErr == nil {
			return
		}

		status, payload := mapError(lastErr.Err)
		c.Header("Content-Type", "application/json")
		c.AbortWithStatusJSON(status, errorResponse{Error: payload})
	}
}

// AbortWithError records err for ErrorHandlingMiddleware and stops the chain.
func AbortWithError(c *gin.Context, err error) {
	if err == nil {
		return
	}
	_ = c.Error(err)
	c.Abort()
}

func mapError(err error) (int, errorPayload) {
	var relayErr *entity.RelayError
	if errors.As(err, &relayErr) {
		return relayErr.Status, errorPayload{
			Type:    relayErr.Code,
			Message: relayErr.Message,
		}
	}

	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, errorPayload{
			Type:    entity.RelayFileTooLarge,
			Message: "request body is too large",
		}
	}

	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, entity.ErrInvalidMeeting),
		errors.Is(err, entity.ErrInvalidWorkingHours),
		errors.Is(err, entity.ErrInvalidSlotOptions),
		errors.Is(err, entity.ErrUnsupportedExport),
		errors.Is(err, tzcalc.ErrInvalidClock):
		return http.StatusBadRequest, errorPayload{
			Type:    "validation_error",
			Message: err.Error(),
		}
	case errors.Is(err, entity.ErrUnknownTimezone),
		errors.Is(err, entity.ErrSessionNotFound),
		errors.Is(err, entity.ErrLocationNotFound):
		return http.StatusNotFound, errorPayload{
			Type:    "not_found",
			Message: err.Error(),
		}
	case errors.Is(err, entity.ErrDuplicateLocation):
		return http.StatusConflict, errorPayload{
			Type:    "conflict",
			Message: err.Error(),
		}
	case errors.Is(err, entity.ErrBusy):
		return http.StatusConflict, errorPayload{
			Type:    "busy",
			Message: "another operation is in progress, try again shortly",
		}
	default:
		return http.StatusInternalServerError, errorPayload{
			Type:    "internal_error",
			Message: "internal server error",
		}
	}
}
