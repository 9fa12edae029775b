package usecase

import (
	"context"
	"testing"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newTestSessions(ttl time.Duration) (*SessionManager, *clock.FakeClock, *metrics.Metrics) {
	clk := clock.NewFakeClock(time.Date(2024, 3, 1, 3, 0, 0, 0, time.UTC))
	m := metrics.NewMetrics("test", prometheus.NewRegistry())
	return NewSessionManager(newMemoryTimezoneRepo(), clk, ttl, logger.NewNopLogger(), m), clk, m
}

func TestSessionAddAndRemoveLocations(t *testing.T) {
	sessions, _, m := newTestSessions(time.Hour)
	ctx := context.Background()

	s := sessions.Create()
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ActiveSessions))
	assert.Empty(t, s.Locations())

	london, err := sessions.AddLocation(ctx, s.ID, "Europe/London", "", "")
	require.NoError(t, err)
	assert.Equal(t, "09:00", london.WorkingHours.Start)
	assert.Equal(t, "17:00", london.WorkingHours.End)
	assert.NotEmpty(t, london.ID)

	tokyo, err := sessions.AddLocation(ctx, s.ID, "Asia/Tokyo", "08:30", "18:00")
	require.NoError(t, err)
	jakarta, err := sessions.AddLocation(ctx, s.ID, "Asia/Jakarta", "22:00", "06:00")
	require.NoError(t, err)

	locs := s.Locations()
	require.Len(t, locs, 3)
	assert.Equal(t, []string{london.ID, tokyo.ID, jakarta.ID}, []string{locs[0].ID, locs[1].ID, locs[2].ID})

	require.NoError(t, sessions.RemoveLocation(s.ID, tokyo.ID))
	locs = s.Locations()
	require.Len(t, locs, 2)
	assert.Equal(t, london.ID, locs[0].ID)
	assert.Equal(t, jakarta.ID, locs[1].ID)

	err = sessions.RemoveLocation(s.ID, tokyo.ID)
	assert.ErrorIs(t, err, entity.ErrLocationNotFound)
}

func TestSessionLocationsIsSnapshot(t *testing.T) {
	sessions, _, _ := newTestSessions(time.Hour)
	s := sessions.Create()
	_, err := sessions.AddLocation(context.Background(), s.ID, "Europe/London", "", "")
	require.NoError(t, err)

	snapshot := s.Locations()
	snapshot[0].TimeZone.City = "Elsewhere"
	assert.Equal(t, "London", s.Locations()[0].TimeZone.City)
}

func TestSessionAddLocationErrors(t *testing.T) {
	sessions, _, _ := newTestSessions(time.Hour)
	ctx := context.Background()
	s := sessions.Create()

	_, err := sessions.AddLocation(ctx, "missing", "Europe/London", "", "")
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)

	_, err = sessions.AddLocation(ctx, s.ID, "Mars/Base", "", "")
	assert.ErrorIs(t, err, entity.ErrUnknownTimezone)

	_, err = sessions.AddLocation(ctx, s.ID, "Europe/London", "9am", "17:00")
	assert.ErrorIs(t, err, entity.ErrInvalidWorkingHours)

	_, err = sessions.AddLocation(ctx, s.ID, "Europe/London", "10:00", "10:00")
	assert.ErrorIs(t, err, entity.ErrInvalidWorkingHours)

	_, err = sessions.AddLocation(ctx, s.ID, "Europe/London", "", "")
	require.NoError(t, err)
	_, err = sessions.AddLocation(ctx, s.ID, "Europe/London", "08:00", "16:00")
	assert.ErrorIs(t, err, entity.ErrDuplicateLocation)

	assert.Len(t, s.Locations(), 1)
}

func TestSessionDelete(t *testing.T) {
	sessions, _, m := newTestSessions(time.Hour)
	s := sessions.Create()

	require.NoError(t, sessions.Delete(s.ID))
	assert.Equal(t, 0, sessions.Count())
	assert.Equal(t, float64(0), testutil.ToFloat64(m.ActiveSessions))

	_, err := sessions.Get(s.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	assert.ErrorIs(t, sessions.Delete(s.ID), entity.ErrSessionNotFound)
}

func TestSessionSweepExpiresIdleSessions(t *testing.T) {
	sessions, clk, m := newTestSessions(30 * time.Minute)

	idle := sessions.Create()
	active := sessions.Create()

	clk.Advance(20 * time.Minute)
	_, err := sessions.Get(active.ID)
	require.NoError(t, err)

	clk.Advance(15 * time.Minute)
	assert.Equal(t, 1, sessions.Sweep())

	_, err = sessions.Get(idle.ID)
	assert.ErrorIs(t, err, entity.ErrSessionNotFound)
	_, err = sessions.Get(active.ID)
	assert.NoError(t, err)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ActiveSessions))
}

func TestSessionTouchDefersExpiry(t *testing.T) {
	sessions, clk, _ := newTestSessions(time.Hour)
	s := sessions.Create()

	for i := 0; i < 3; i++ {
		clk.Advance(40 * time.Minute)
		require.NoError(t, sessions.Touch(s.ID))
		assert.True(t, s.LastSeen().Equal(clk.Now()))
		assert.Equal(t, 0, sessions.Sweep())
	}
	assert.Equal(t, 1, sessions.Count())

	require.NoError(t, sessions.Delete(s.ID))
	assert.ErrorIs(t, sessions.Touch(s.ID), entity.ErrSessionNotFound)
}

func TestSessionSweepWithoutTTL(t *testing.T) {
	sessions, clk, _ := newTestSessions(0)
	sessions.Create()

	clk.Advance(24 * time.Hour)
	assert.Equal(t, 0, sessions.Sweep())
	assert.Equal(t, 1, sessions.Count())
}

func TestSessionJanitorStopsOnCancel(t *testing.T) {
	defer goleak.VerifyNone(t)

	sessions, clk, _ := newTestSessions(time.Minute)
	sessions.Create()
	clk.Advance(time.Hour)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		sessions.RunJanitor(ctx, 5*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool { return sessions.Count() == 0 }, time.Second, 5*time.Millisecond)
	cancel()
	<-done
}

func TestBusyGuard(t *testing.T) {
	var g BusyGuard

	assert.False(t, g.Busy())
	require.True(t, g.TryAcquire())
	assert.True(t, g.Busy())
	assert.False(t, g.TryAcquire())

	err := g.Do(func() error {
		t.Fatal("must not run while busy")
		return nil
	})
	assert.ErrorIs(t, err, entity.ErrBusy)

	g.Release()
	assert.False(t, g.Busy())

	ran := false
	err = g.Do(func() error {
		ran = true
		assert.True(t, g.Busy())
		return g.Do(func() error { return nil })
	})
	assert.True(t, ran)
	assert.ErrorIs(t, err, entity.ErrBusy)
	assert.False(t, g.Busy())
}
