package usecase

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"
)

// BackgroundRemovalService validates uploads and relays them to the remover
type BackgroundRemovalService struct {
	remover  repository.BackgroundRemover
	maxBytes int64
	logger   logger.Logger
	metrics  *metrics.Metrics
}

// NewBackgroundRemovalService creates a new background removal service
func NewBackgroundRemovalService(remover repository.BackgroundRemover, maxBytes int64, logger logger.Logger, m *metrics.Metrics) *BackgroundRemovalService {
	return &BackgroundRemovalService{
		remover:  remover,
		maxBytes: maxBytes,
		logger:   logger,
		metrics:  m,
	}
}

// MaxBytes is the largest accepted upload.
func (s *BackgroundRemovalService) MaxBytes() int64 {
	return s.maxBytes
}

// ValidateUpload rejects anything that is not an image or is larger than the limit
func (s *BackgroundRemovalService) ValidateUpload(image *entity.ImageUpload, size int64) error {
	if image == nil || (size == 0 && len(image.Data) == 0) {
		return &entity.RelayError{Status: http.StatusBadRequest, Code: entity.RelayMissingFile, Message: "No image file provided"}
	}
	if !strings.HasPrefix(strings.ToLower(image.ContentType), "image/") {
		return &entity.RelayError{Status: http.StatusUnsupportedMediaType, Code: entity.RelayUnsupportedFormat, Message: "File must be an image"}
	}
	if size > s.maxBytes {
		return &entity.RelayError{Status: http.StatusRequestEntityTooLarge, Code: entity.RelayFileTooLarge, Message: "Image file is too large"}
	}
	return nil
}

// RemoveBackground validates the image and forwards it upstream once; failures are not retried
func (s *BackgroundRemovalService) RemoveBackground(ctx context.Context, image *entity.ImageUpload) ([]byte, error) {
	var size int64
	if image != nil {
		size = int64(len(image.Data))
	}
	if err := s.ValidateUpload(image, size); err != nil {
		s.count(err)
		return nil, err
	}

	started := time.Now()
	png, err := s.remover.RemoveBackground(ctx, image)
	if s.metrics != nil {
		s.metrics.RelayDuration.Observe(time.Since(started).Seconds())
	}
	if err != nil {
		s.logger.Error("Background removal failed", "filename", image.Filename, "error", err)
		s.count(err)
		return nil, err
	}

	s.count(nil)
	s.logger.Info("Background removed", "filename", image.Filename, "inBytes", len(image.Data), "outBytes", len(png))
	return png, nil
}

func (s *BackgroundRemovalService) count(err error) {
	if s.metrics == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = entity.RelayProcessingFailed
		var relayErr *entity.RelayError
		if errors.As(err, &relayErr) {
			outcome = relayErr.Code
		}
	}
	s.metrics.RelayRequests.WithLabelValues(outcome).Inc()
}
