package tzcalc

import (
	"testing"
	"time"
	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustInstant(t *testing.T, date, clock string, offset int) time.Time {
	t.Helper()
	instant, err := WallClockToInstant(date, MustParseClock(clock), FixedZone(offset))
	require.NoError(t, err)
	return instant
}

func TestParseClock(t *testing.T) {
	valid := map[string]Clock{
		"00:00": 0,
		"09:00": 540,
		"9:05":  545,
		"17:01": 1021,
		"23:59": 1439,
		" 12:30 ": 750,
	}
	for in, want := range valid {
		got, err := ParseClock(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	for _, in := range []string{"", "24:00", "12:60", "1230", "12:3", "ab:cd", "-1:00", "+9:00", "123:00"} {
		_, err := ParseClock(in)
		assert.ErrorIs(t, err, ErrInvalidClock, in)
	}
}

func TestClockString(t *testing.T) {
	assert.Equal(t, "07:05", Clock(425).String())
	assert.Equal(t, "00:00", Clock(0).String())
}

func TestLocalTimeAtOffsetZeroIsIdentity(t *testing.T) {
	instant := time.Date(2024, 3, 1, 7, 42, 0, 0, time.UTC)
	local := LocalTimeAt(instant, 0)
	assert.Equal(t, "07:42", FormatClock(local))
	assert.True(t, local.Equal(instant))
}

func TestLocalTimeAtPlusSevenHours(t *testing.T) {
	instant := time.Date(2024, 3, 1, 7, 0, 0, 0, time.UTC)
	local := LocalTimeAt(instant, 420)
	assert.Equal(t, "14:00", FormatClock(local))
	assert.Equal(t, 7*time.Hour, time.Duration(OffsetMinutesAt(instant, local.Location()))*time.Minute)
}

func TestLocalTimeAtHalfHourOffsets(t *testing.T) {
	instant := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "05:30", FormatClock(LocalTimeAt(instant, 330)))
	assert.Equal(t, "05:45", FormatClock(LocalTimeAt(instant, 345)))
	assert.Equal(t, "20:30", FormatClock(LocalTimeAt(instant, -210)))
}

func TestFormatOffset(t *testing.T) {
	assert.Equal(t, "UTC+07:00", FormatOffset(420))
	assert.Equal(t, "UTC-03:30", FormatOffset(-210))
	assert.Equal(t, "UTC+00:00", FormatOffset(0))
}

func TestJakartaMeetingProjectsToLondonAndNewYork(t *testing.T) {
	instant := mustInstant(t, "2024-03-01", "14:00", 420)

	london := LocalTimeAt(instant, 0)
	newYork := LocalTimeAt(instant, -300)

	assert.Equal(t, "07:00", FormatClock(london))
	assert.Equal(t, "2024-03-01", london.Format(DateLayout))
	assert.Equal(t, "02:00", FormatClock(newYork))
	assert.Equal(t, "2024-03-01", newYork.Format(DateLayout))
}

func TestJakartaMeetingWithIANAZones(t *testing.T) {
	jakarta, err := time.LoadLocation("Asia/Jakarta")
	require.NoError(t, err)
	newYork, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	got, err := Convert("2024-03-01", MustParseClock("14:00"), jakarta, newYork)
	require.NoError(t, err)
	assert.Equal(t, "02:00", FormatClock(got))

	// After the US switches to daylight time the gap shrinks by an hour.
	got, err = Convert("2024-07-01", MustParseClock("14:00"), jakarta, newYork)
	require.NoError(t, err)
	assert.Equal(t, "03:00", FormatClock(got))
}

func TestRoundTripConversion(t *testing.T) {
	offsets := []int{-600, -300, -210, 0, 60, 330, 345, 420, 540, 780}
	for _, a := range offsets {
		for _, b := range offsets {
			from, to := FixedZone(a), FixedZone(b)
			there, err := Convert("2024-03-01", MustParseClock("14:37"), from, to)
			require.NoError(t, err)
			back, err := Convert(there.Format(DateLayout), ClockOf(there), to, from)
			require.NoError(t, err)
			assert.Equal(t, "14:37", FormatClock(back), "a=%d b=%d", a, b)
			assert.Equal(t, "2024-03-01", back.Format(DateLayout), "a=%d b=%d", a, b)
		}
	}
}

func TestConvertIsDeterministic(t *testing.T) {
	first, err := Convert("2024-03-01", MustParseClock("09:15"), FixedZone(420), FixedZone(-300))
	require.NoError(t, err)
	second, err := Convert("2024-03-01", MustParseClock("09:15"), FixedZone(420), FixedZone(-300))
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
	assert.Equal(t, first.Format(time.RFC3339), second.Format(time.RFC3339))
}

func TestWallClockToInstantRejectsBadDate(t *testing.T) {
	_, err := WallClockToInstant("2024-13-01", MustParseClock("10:00"), time.UTC)
	assert.Error(t, err)
}

func TestDayOffset(t *testing.T) {
	instant := mustInstant(t, "2024-03-01", "02:00", 420)
	ref := LocalTimeAt(instant, 420)
	assert.Equal(t, 0, DayOffset(ref, ref))
	assert.Equal(t, -1, DayOffset(ref, LocalTimeAt(instant, -300)))
	assert.Equal(t, 1, DayOffset(LocalTimeAt(instant, -300), ref))
}

func TestWorkingHoursBoundariesAreInclusive(t *testing.T) {
	start, end := MustParseClock("09:00"), MustParseClock("17:00")

	assert.True(t, IsWithinWorkingHours(MustParseClock("09:00"), start, end))
	assert.False(t, IsWithinWorkingHours(MustParseClock("08:59"), start, end))
	assert.True(t, IsWithinWorkingHours(MustParseClock("17:00"), start, end))
	assert.False(t, IsWithinWorkingHours(MustParseClock("17:01"), start, end))
	assert.True(t, IsWithinWorkingHours(MustParseClock("12:00"), start, end))
}

func TestOvernightWindowWraps(t *testing.T) {
	w, err := NewWindow(MustParseClock("22:00"), MustParseClock("06:00"))
	require.NoError(t, err)

	assert.True(t, w.Overnight())
	assert.Equal(t, 8*60, w.Length())
	assert.True(t, w.Contains(MustParseClock("22:00")))
	assert.True(t, w.Contains(MustParseClock("23:59")))
	assert.True(t, w.Contains(MustParseClock("00:00")))
	assert.True(t, w.Contains(MustParseClock("06:00")))
	assert.False(t, w.Contains(MustParseClock("06:01")))
	assert.False(t, w.Contains(MustParseClock("21:59")))
}

func TestNewWindowRejectsEmpty(t *testing.T) {
	_, err := NewWindow(MustParseClock("09:00"), MustParseClock("09:00"))
	assert.ErrorIs(t, err, ErrEmptyWindow)
}

func TestWindowIntervalsSpanNeighbouringDays(t *testing.T) {
	w, _ := NewWindow(MustParseClock("09:00"), MustParseClock("17:00"))
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ivs := WindowIntervals(w, date, FixedZone(420))
	require.Len(t, ivs, 3)
	assert.Equal(t, time.Date(2024, 3, 1, 2, 0, 0, 0, time.UTC), ivs[1].Start)
	assert.Equal(t, time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC), ivs[1].End)
}

func TestWindowIntervalsOvernight(t *testing.T) {
	w, _ := NewWindow(MustParseClock("22:00"), MustParseClock("06:00"))
	date := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	ivs := WindowIntervals(w, date, time.UTC)
	require.Len(t, ivs, 3)
	assert.Equal(t, time.Date(2024, 3, 1, 22, 0, 0, 0, time.UTC), ivs[1].Start)
	assert.Equal(t, time.Date(2024, 3, 2, 6, 0, 0, 0, time.UTC), ivs[1].End)
}

func TestNormalizeMergesTouching(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	got := Normalize([]Interval{
		{Start: h(5), End: h(7)},
		{Start: h(1), End: h(3)},
		{Start: h(3), End: h(4)},
		{Start: h(6), End: h(6)},
	})
	assert.Equal(t, []Interval{{Start: h(1), End: h(4)}, {Start: h(5), End: h(7)}}, got)
}

func TestIntersectSets(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	a := []Interval{{Start: h(0), End: h(4)}, {Start: h(10), End: h(20)}}
	b := []Interval{{Start: h(2), End: h(12)}, {Start: h(18), End: h(22)}}

	got := IntersectSets(a, b)
	assert.Equal(t, []Interval{
		{Start: h(2), End: h(4)},
		{Start: h(10), End: h(12)},
		{Start: h(18), End: h(20)},
	}, got)

	assert.Empty(t, IntersectSets(a, nil))
}

func TestBestCoveragePrefersMostMembersThenLongest(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	h := func(n int) time.Time { return base.Add(time.Duration(n) * time.Hour) }

	sets := [][]Interval{
		{{Start: h(9), End: h(17)}},
		{{Start: h(13), End: h(21)}},
		{{Start: h(20), End: h(23)}},
	}
	best, ok := BestCoverage(sets, Interval{Start: h(0), End: h(24)})
	require.True(t, ok)
	assert.Equal(t, []int{0, 1}, best.Members)
	assert.True(t, h(13).Equal(best.Start), best.Start)
	assert.True(t, h(17).Equal(best.End), best.End)
}

func TestBestCoverageNobodyAvailable(t *testing.T) {
	base := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	_, ok := BestCoverage([][]Interval{nil, nil}, Interval{Start: base, End: base.Add(24 * time.Hour)})
	assert.False(t, ok)
}
