package usecase

import (
	"context"
	"fmt"
	"strings"

	"worldtime-service/internal/domain/entity"
)

// memoryTimezoneRepo is a TimezoneRepository over a fixed slice.
type memoryTimezoneRepo struct {
	zones []entity.TimeZone
}

func newMemoryTimezoneRepo() *memoryTimezoneRepo {
	return &memoryTimezoneRepo{zones: []entity.TimeZone{
		{ID: "Asia/Jakarta", Name: "Western Indonesia Time", City: "Jakarta", OffsetMinutes: 420, CountryCode: "ID"},
		{ID: "Europe/London", Name: "Greenwich Mean Time", City: "London", OffsetMinutes: 0, CountryCode: "GB"},
		{ID: "America/New_York", Name: "Eastern Standard Time", City: "New York", OffsetMinutes: -300, CountryCode: "US"},
		{ID: "Asia/Tokyo", Name: "Japan Standard Time", City: "Tokyo", OffsetMinutes: 540, CountryCode: "JP"},
		{ID: "Asia/Kolkata", Name: "India Standard Time", City: "Mumbai", OffsetMinutes: 330, CountryCode: "IN"},
	}}
}

func (r *memoryTimezoneRepo) GetByID(ctx context.Context, id string) (*entity.TimeZone, error) {
	for _, tz := range r.zones {
		if tz.ID == id {
			out := tz
			return &out, nil
		}
	}
	return nil, fmt.Errorf("%w: %s", entity.ErrUnknownTimezone, id)
}

func (r *memoryTimezoneRepo) Search(ctx context.Context, query string, limit int) ([]entity.TimeZone, error) {
	var out []entity.TimeZone
	for _, tz := range r.zones {
		if strings.Contains(strings.ToLower(tz.City), strings.ToLower(query)) {
			out = append(out, tz)
		}
	}
	return out, nil
}

func (r *memoryTimezoneRepo) List(ctx context.Context) ([]entity.TimeZone, error) {
	return r.zones, nil
}

func (r *memoryTimezoneRepo) mustGet(id string) entity.TimeZone {
	tz, err := r.GetByID(context.Background(), id)
	if err != nil {
		panic(err)
	}
	return *tz
}

func (r *memoryTimezoneRepo) location(id, start, end string) entity.Location {
	hours, err := entity.NewWorkingHours(start, end)
	if err != nil {
		panic(err)
	}
	return entity.Location{ID: "loc-" + id, TimeZone: r.mustGet(id), WorkingHours: hours}
}
