package tzcalc

import (
	"fmt"
	"time"
)

// FixedZone returns a location with a constant offset, named like "UTC+05:30".
func FixedZone(offsetMinutes int) *time.Location {
	return time.FixedZone(FormatOffset(offsetMinutes), offsetMinutes*60)
}

// FormatOffset renders an offset in minutes as "UTC+HH:MM".
func FormatOffset(offsetMinutes int) string {
	sign := '+'
	if offsetMinutes < 0 {
		sign = '-'
		offsetMinutes = -offsetMinutes
	}
	return fmt.Sprintf("UTC%c%02d:%02d", sign, offsetMinutes/60, offsetMinutes%60)
}

// LocalTimeAt projects instant into a fixed UTC offset. The result carries the
// offset as its location so Format and ClockOf yield the local wall clock.
// No DST or leap second handling.
func LocalTimeAt(instant time.Time, offsetMinutes int) time.Time {
	return instant.In(FixedZone(offsetMinutes))
}

// LocalTimeIn projects instant into loc.
func LocalTimeIn(instant time.Time, loc *time.Location) time.Time {
	return instant.In(loc)
}

// OffsetMinutesAt reports loc's UTC offset in effect at instant.
func OffsetMinutesAt(instant time.Time, loc *time.Location) int {
	_, secs := instant.In(loc).Zone()
	return secs / 60
}

// WallClockToInstant interprets date (YYYY-MM-DD) and clock as local to loc
// and returns the corresponding UTC instant.
func WallClockToInstant(date string, clock Clock, loc *time.Location) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", date, err)
	}
	local := time.Date(d.Year(), d.Month(), d.Day(), clock.Hour(), clock.Minute(), 0, 0, loc)
	return local.UTC(), nil
}

// Convert re-expresses a wall-clock time on date in from as the wall-clock time in to.
func Convert(date string, clock Clock, from, to *time.Location) (time.Time, error) {
	instant, err := WallClockToInstant(date, clock, from)
	if err != nil {
		return time.Time{}, err
	}
	return instant.In(to), nil
}

// DayOffset reports how many calendar days local lies from ref (-1, 0, +1, ...),
// comparing civil dates only.
func DayOffset(ref, local time.Time) int {
	a := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, time.UTC)
	return int(b.Sub(a).Hours() / 24)
}

func unix(sec int64, like Interval) time.Time {
	return time.Unix(sec, 0).In(like.Start.Location())
}
