package entity

import (
	"fmt"
	"time"

	"worldtime-service/pkg/tzcalc"
)

const (
	DefaultMeetingMinutes = 60
	MaxMeetingMinutes     = 24 * 60
)

// WorkingStatus classifies a local time against a location's working hours.
type WorkingStatus string

const (
	StatusWorking WorkingStatus = "working"
	StatusOutside WorkingStatus = "outside"
)

// MeetingQuery is a meeting proposed at Date/Time local to TimezoneID.
type MeetingQuery struct {
	Date            string `json:"date" binding:"required"`
	Time            string `json:"time" binding:"required"`
	TimezoneID      string `json:"timezoneId" binding:"required"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Validate checks the query and fills in the default duration.
func (q *MeetingQuery) Validate() error {
	if q.Date == "" || q.Time == "" || q.TimezoneID == "" {
		return fmt.Errorf("%w: date, time and timezoneId are required", ErrInvalidMeeting)
	}
	if _, err := time.Parse(tzcalc.DateLayout, q.Date); err != nil {
		return fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidMeeting)
	}
	if _, err := tzcalc.ParseClock(q.Time); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidMeeting, err)
	}
	if q.DurationMinutes == 0 {
		q.DurationMinutes = DefaultMeetingMinutes
	}
	if q.DurationMinutes < 0 || q.DurationMinutes > MaxMeetingMinutes {
		return fmt.Errorf("%w: duration must be between 1 and %d minutes", ErrInvalidMeeting, MaxMeetingMinutes)
	}
	return nil
}

// Duration returns the meeting length.
func (q MeetingQuery) Duration() time.Duration {
	return time.Duration(q.DurationMinutes) * time.Minute
}

// MeetingConversion is the meeting as seen from one location.
type MeetingConversion struct {
	Location     Location      `json:"location"`
	LocalDate    string        `json:"localDate"`
	LocalTime    string        `json:"localTime"`
	LocalEndTime string        `json:"localEndTime"`
	DayOffset    int           `json:"dayOffset"`
	UTCOffset    string        `json:"utcOffset"`
	Status       WorkingStatus `json:"status"`
	FullyWithin  bool          `json:"fullyWithin"`
}

// MeetingPlan is a converted meeting with its absolute bounds.
type MeetingPlan struct {
	Query       MeetingQuery        `json:"query"`
	Source      TimeZone            `json:"source"`
	StartUTC    time.Time           `json:"startUtc"`
	EndUTC      time.Time           `json:"endUtc"`
	Conversions []MeetingConversion `json:"conversions"`
}

// ExportFile is an in-memory artifact offered for download.
type ExportFile struct {
	Filename    string
	ContentType string
	Data        []byte
}
