package repository

import (
	"context"

	"worldtime-service/internal/domain/entity"
)

// BackgroundRemover strips the background from an uploaded image and returns PNG bytes
type BackgroundRemover interface {
	RemoveBackground(ctx context.Context, image *entity.ImageUpload) ([]byte, error)
}
