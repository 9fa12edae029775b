package entity

import (
	"fmt"
	"time"

	"worldtime-service/pkg/tzcalc"
)

// Default working hours applied when a location is added without any.
const (
	DefaultWorkStart = "09:00"
	DefaultWorkEnd   = "17:00"
)

// WorkingHours is a local wall-clock window. End before Start means the
// shift runs past midnight.
type WorkingHours struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// NewWorkingHours validates start and end; empty values take the defaults.
func NewWorkingHours(start, end string) (WorkingHours, error) {
	if start == "" {
		start = DefaultWorkStart
	}
	if end == "" {
		end = DefaultWorkEnd
	}
	s, err := tzcalc.ParseClock(start)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("%w: start: %v", ErrInvalidWorkingHours, err)
	}
	e, err := tzcalc.ParseClock(end)
	if err != nil {
		return WorkingHours{}, fmt.Errorf("%w: end: %v", ErrInvalidWorkingHours, err)
	}
	if _, err := tzcalc.NewWindow(s, e); err != nil {
		return WorkingHours{}, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
	}
	return WorkingHours{Start: s.String(), End: e.String()}, nil
}

// Window converts the hours into an engine window. WorkingHours built by
// NewWorkingHours always parse.
func (w WorkingHours) Window() tzcalc.Window {
	return tzcalc.Window{
		Start: tzcalc.MustParseClock(w.Start),
		End:   tzcalc.MustParseClock(w.End),
	}
}

// Location is a timezone the user added to a comparison, with its working hours.
type Location struct {
	ID           string       `json:"id"`
	TimeZone     TimeZone     `json:"timezone"`
	WorkingHours WorkingHours `json:"workingHours"`
	AddedAt      time.Time    `json:"addedAt"`
}

// LocationInput is a location as submitted by a client, before lookup.
type LocationInput struct {
	TimezoneID   string       `json:"timezoneId" binding:"required"`
	WorkingHours WorkingHours `json:"workingHours"`
}
