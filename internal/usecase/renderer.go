package usecase

import (
	"context"

	"worldtime-service/internal/domain/entity"
)

// MeetingRenderer defines the interface for meeting export formats
type MeetingRenderer interface {
	// CanHandle determines if this renderer produces the given format
	CanHandle(format string) bool

	// Render turns a converted meeting into a downloadable file
	Render(ctx context.Context, plan *entity.MeetingPlan) (*entity.ExportFile, error)
}

// RendererRouter routes export requests to the appropriate renderer based on format
type RendererRouter interface {
	// Register registers a renderer
	Register(renderer MeetingRenderer)

	// GetRenderer returns the renderer for a given format
	GetRenderer(format string) MeetingRenderer
}
