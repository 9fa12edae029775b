package repository

import (
	"context"

	"worldtime-service/internal/domain/entity"
)

// TimezoneRepository defines the interface for timezone catalog lookups
type TimezoneRepository interface {
	GetByID(ctx context.Context, id string) (*entity.TimeZone, error)
	Search(ctx context.Context, query string, limit int) ([]entity.TimeZone, error)
	List(ctx context.Context) ([]entity.TimeZone, error)
}
