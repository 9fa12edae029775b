package entity

import "time"

// ClockReading is the current wall clock at one location.
type ClockReading struct {
	Location  Location      `json:"location"`
	LocalDate string        `json:"localDate"`
	LocalTime string        `json:"localTime"`
	UTCOffset string        `json:"utcOffset"`
	Status    WorkingStatus `json:"status"`
	At        time.Time     `json:"at"`
}
