package tzcalc

import (
	"errors"
	"sort"
	"time"
)

// ErrEmptyWindow is returned for a working-hours window whose start equals its end.
var ErrEmptyWindow = errors.New("working hours start and end must differ")

// Window is a same-day working-hours window. When End < Start the window
// wraps past midnight (e.g. 22:00-06:00).
type Window struct {
	Start Clock
	End   Clock
}

// NewWindow validates and builds a window.
func NewWindow(start, end Clock) (Window, error) {
	if start == end {
		return Window{}, ErrEmptyWindow
	}
	return Window{Start: start, End: end}, nil
}

// Overnight reports whether the window crosses midnight.
func (w Window) Overnight() bool { return w.End < w.Start }

// Contains reports whether t lies inside w, inclusive at both ends.
func (w Window) Contains(t Clock) bool {
	return IsWithinWorkingHours(t, w.Start, w.End)
}

// Length returns the window length in minutes.
func (w Window) Length() int {
	if w.Overnight() {
		return MinutesPerDay - int(w.Start) + int(w.End)
	}
	return int(w.End - w.Start)
}

// IsWithinWorkingHours reports start <= t <= end, inclusive. A window with
// end < start wraps midnight, so t is inside when t >= start or t <= end.
func IsWithinWorkingHours(t, start, end Clock) bool {
	if end < start {
		return t >= start || t <= end
	}
	return start <= t && t <= end
}

// Interval is a half-open absolute time range [Start, End).
type Interval struct {
	Start time.Time
	End   time.Time
}

// Duration of the interval.
func (iv Interval) Duration() time.Duration { return iv.End.Sub(iv.Start) }

// Empty reports whether the interval has no length.
func (iv Interval) Empty() bool { return !iv.End.After(iv.Start) }

// Covers reports whether other lies entirely within iv.
func (iv Interval) Covers(other Interval) bool {
	return !other.Start.Before(iv.Start) && !other.End.After(iv.End)
}

// Intersect returns the overlap of a and b; the result may be Empty.
func Intersect(a, b Interval) Interval {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}
	if end.Before(start) {
		end = start
	}
	return Interval{Start: start, End: end}
}

// WindowIntervals returns the absolute intervals w occupies on the local days
// from-1 through from+1 of date in loc. Spanning the neighbouring days lets a
// window be intersected with zones whose calendar date differs.
func WindowIntervals(w Window, date time.Time, loc *time.Location) []Interval {
	out := make([]Interval, 0, 3)
	for _, delta := range []int{-1, 0, 1} {
		day := time.Date(date.Year(), date.Month(), date.Day()+delta, 0, 0, 0, 0, loc)
		start := time.Date(day.Year(), day.Month(), day.Day(), w.Start.Hour(), w.Start.Minute(), 0, 0, loc)
		endDay := day
		if w.Overnight() {
			endDay = day.AddDate(0, 0, 1)
		}
		end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), w.End.Hour(), w.End.Minute(), 0, 0, loc)
		out = append(out, Interval{Start: start.UTC(), End: end.UTC()})
	}
	return Normalize(out)
}

// Normalize sorts intervals and merges overlapping or touching ones.
func Normalize(ivs []Interval) []Interval {
	cleaned := make([]Interval, 0, len(ivs))
	for _, iv := range ivs {
		if !iv.Empty() {
			cleaned = append(cleaned, iv)
		}
	}
	sort.Slice(cleaned, func(i, j int) bool { return cleaned[i].Start.Before(cleaned[j].Start) })

	merged := make([]Interval, 0, len(cleaned))
	for _, iv := range cleaned {
		if n := len(merged); n > 0 && !iv.Start.After(merged[n-1].End) {
			if iv.End.After(merged[n-1].End) {
				merged[n-1].End = iv.End
			}
			continue
		}
		merged = append(merged, iv)
	}
	return merged
}

// IntersectSets intersects two normalized interval sets.
func IntersectSets(a, b []Interval) []Interval {
	var out []Interval
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		if iv := Intersect(a[i], b[j]); !iv.Empty() {
			out = append(out, iv)
		}
		if a[i].End.Before(b[j].End) {
			i++
		} else {
			j++
		}
	}
	return out
}

// ClipSet restricts every interval in set to bounds.
func ClipSet(set []Interval, bounds Interval) []Interval {
	return IntersectSets(set, []Interval{bounds})
}

// SetCovers reports whether some interval in set covers iv.
func SetCovers(set []Interval, iv Interval) bool {
	for _, s := range set {
		if s.Covers(iv) {
			return true
		}
	}
	return false
}
