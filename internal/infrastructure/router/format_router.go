package router

import (
	"fmt"

	"worldtime-service/internal/usecase"
	"worldtime-service/pkg/logger"
)

// FormatRouter routes export requests to the renderer that handles the format
type FormatRouter struct {
	renderers []usecase.MeetingRenderer
	logger    logger.Logger
}

// NewFormatRouter creates a new format router
func NewFormatRouter(logger logger.Logger) *FormatRouter {
	return &FormatRouter{
		renderers: make([]usecase.MeetingRenderer, 0),
		logger:    logger,
	}
}

// Register registers a renderer
func (r *FormatRouter) Register(renderer usecase.MeetingRenderer) {
	r.renderers = append(r.renderers, renderer)
	r.logger.Info("Registered renderer", "renderer", fmt.Sprintf("%T", renderer))
}

// GetRenderer returns the first renderer that handles format
func (r *FormatRouter) GetRenderer(format string) usecase.MeetingRenderer {
	for _, renderer := range r.renderers {
		if renderer.CanHandle(format) {
			return renderer
		}
	}
	return nil
}
