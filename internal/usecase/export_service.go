package usecase

import (
	"context"
	"fmt"
	"strings"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"
)

// ExportService renders a session's converted meeting into a downloadable file
type ExportService struct {
	planner *MeetingPlanner
	router  RendererRouter
	logger  logger.Logger
	metrics *metrics.Metrics
}

// NewExportService creates a new export service
func NewExportService(planner *MeetingPlanner, router RendererRouter, logger logger.Logger, m *metrics.Metrics) *ExportService {
	return &ExportService{
		planner: planner,
		router:  router,
		logger:  logger,
		metrics: m,
	}
}

// Export converts the meeting across the session's locations and renders it.
// Only one export per session runs at a time; a concurrent call gets entity.ErrBusy.
func (s *ExportService) Export(ctx context.Context, session *ComparisonSession, format string, query entity.MeetingQuery) (*entity.ExportFile, error) {
	format = strings.ToLower(strings.TrimSpace(format))
	renderer := s.router.GetRenderer(format)
	if renderer == nil {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedExport, format)
	}

	var file *entity.ExportFile
	err := session.Busy().Do(func() error {
		plan, err := s.planner.ConvertMeetingAcrossLocations(ctx, query, session.Locations())
		if err != nil {
			return err
		}

		file, err = renderer.Render(ctx, plan)
		if err != nil {
			s.logger.Error("Failed to render export", "sessionID", session.ID, "format", format, "error", err)
			return fmt.Errorf("failed to render %s export: %w", format, err)
		}
		return nil
	})
	if err != nil {
		if s.metrics != nil {
			s.metrics.ErrorsCount.WithLabelValues("export").Inc()
		}
		return nil, err
	}

	if s.metrics != nil {
		s.metrics.Exports.WithLabelValues(format).Inc()
	}
	s.logger.Info("Meeting exported",
		"sessionID", session.ID,
		"format", format,
		"bytes", len(file.Data))
	return file, nil
}
