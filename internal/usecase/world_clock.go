package usecase

import (
	"context"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/tzcalc"
)

// DefaultClockInterval is the world clock refresh period.
const DefaultClockInterval = time.Second

// WorldClock reports the current local time at each location
type WorldClock struct {
	clock    clock.Clock
	interval time.Duration
	tzModel  string
	logger   logger.Logger
}

// NewWorldClock creates a world clock; interval <= 0 means once per second
func NewWorldClock(clk clock.Clock, interval time.Duration, tzModel string, logger logger.Logger) *WorldClock {
	if interval <= 0 {
		interval = DefaultClockInterval
	}
	return &WorldClock{
		clock:    clk,
		interval: interval,
		tzModel:  tzModel,
		logger:   logger,
	}
}

// Snapshot reads every location's clock at the current instant
func (w *WorldClock) Snapshot(locations []entity.Location) []entity.ClockReading {
	return Readings(w.clock.Now(), locations, w.tzModel)
}

// Readings computes clock readings for an explicit instant.
func Readings(now time.Time, locations []entity.Location, tzModel string) []entity.ClockReading {
	readings := make([]entity.ClockReading, 0, len(locations))
	for _, loc := range locations {
		zone := loc.TimeZone.Location(tzModel)
		local := now.In(zone)

		status := entity.StatusOutside
		if loc.WorkingHours.Window().Contains(tzcalc.ClockOf(local)) {
			status = entity.StatusWorking
		}

		readings = append(readings, entity.ClockReading{
			Location:  loc,
			LocalDate: local.Format(tzcalc.DateLayout),
			LocalTime: local.Format("15:04:05"),
			UTCOffset: tzcalc.FormatOffset(tzcalc.OffsetMinutesAt(now, zone)),
			Status:    status,
			At:        now,
		})
	}
	return readings
}

// Run emits a snapshot immediately and then on every tick until ctx is done
// or emit fails. The ticker is stopped on every return path.
func (w *WorldClock) Run(ctx context.Context, locations func() []entity.Location, emit func([]entity.ClockReading) error) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	if err := emit(w.Snapshot(locations())); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			w.logger.Debug("World clock stopped")
			return nil
		case <-ticker.C:
			if err := emit(w.Snapshot(locations())); err != nil {
				return err
			}
		}
	}
}
