package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"worldtime-service/internal/clock"
	"worldtime-service/internal/domain/entity"
	"worldtime-service/internal/domain/repository"
	"worldtime-service/pkg/logger"
	"worldtime-service/pkg/metrics"

	"github.com/google/uuid"
)

// ComparisonSession holds the locations one user is comparing. It lives only
// in memory.
type ComparisonSession struct {
	ID        string
	CreatedAt time.Time

	mu        sync.RWMutex
	locations []entity.Location
	lastSeen  time.Time

	busy BusyGuard
}

func newComparisonSession(now time.Time) *ComparisonSession {
	return &ComparisonSession{
		ID:        uuid.NewString(),
		CreatedAt: now,
		lastSeen:  now,
		locations: []entity.Location{},
	}
}

// AddLocation appends a location for tz. A zone can be added only once.
func (s *ComparisonSession) AddLocation(tz entity.TimeZone, hours entity.WorkingHours, now time.Time) (entity.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, loc := range s.locations {
		if loc.TimeZone.ID == tz.ID {
			return entity.Location{}, fmt.Errorf("%w: %s", entity.ErrDuplicateLocation, tz.ID)
		}
	}

	loc := entity.Location{
		ID:           uuid.NewString(),
		TimeZone:     tz,
		WorkingHours: hours,
		AddedAt:      now,
	}
	s.locations = append(s.locations, loc)
	return loc, nil
}

// RemoveLocation drops a location by id, keeping the order of the rest.
func (s *ComparisonSession) RemoveLocation(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, loc := range s.locations {
		if loc.ID == id {
			s.locations = append(s.locations[:i:i], s.locations[i+1:]...)
			return nil
		}
	}
	return fmt.Errorf("%w: %s", entity.ErrLocationNotFound, id)
}

// Locations returns an ordered snapshot.
func (s *ComparisonSession) Locations() []entity.Location {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Location, len(s.locations))
	copy(out, s.locations)
	return out
}

// Busy is the guard for the session's long-running operations.
func (s *ComparisonSession) Busy() *BusyGuard {
	return &s.busy
}

func (s *ComparisonSession) touch(now time.Time) {
	s.mu.Lock()
	s.lastSeen = now
	s.mu.Unlock()
}

// LastSeen reports the last time the session was used.
func (s *ComparisonSession) LastSeen() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastSeen
}

// SessionManager owns the in-memory comparison sessions
type SessionManager struct {
	timezoneRepo repository.TimezoneRepository
	clock        clock.Clock
	ttl          time.Duration
	logger       logger.Logger
	metrics      *metrics.Metrics

	mu       sync.RWMutex
	sessions map[string]*ComparisonSession
}

// NewSessionManager creates a new session manager. A zero ttl disables expiry.
func NewSessionManager(
	timezoneRepo repository.TimezoneRepository,
	clk clock.Clock,
	ttl time.Duration,
	logger logger.Logger,
	m *metrics.Metrics,
) *SessionManager {
	return &SessionManager{
		timezoneRepo: timezoneRepo,
		clock:        clk,
		ttl:          ttl,
		logger:       logger,
		metrics:      m,
		sessions:     make(map[string]*ComparisonSession),
	}
}

// Create starts an empty session
func (m *SessionManager) Create() *ComparisonSession {
	s := newComparisonSession(m.clock.Now())

	m.mu.Lock()
	m.sessions[s.ID] = s
	count := len(m.sessions)
	m.mu.Unlock()

	m.setGauge(count)
	m.logger.Info("Session created", "sessionID", s.ID)
	return s
}

// Get returns a session and marks it as used
func (m *SessionManager) Get(id string) (*ComparisonSession, error) {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	s.touch(m.clock.Now())
	return s, nil
}

// Touch marks a session as used without handing it out. Long-lived readers
// such as the clock stream call it to keep the session from expiring.
func (m *SessionManager) Touch(id string) error {
	m.mu.RLock()
	s, ok := m.sessions[id]
	m.mu.RUnlock()

	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	s.touch(m.clock.Now())
	return nil
}

// Delete discards a session
func (m *SessionManager) Delete(id string) error {
	m.mu.Lock()
	_, ok := m.sessions[id]
	delete(m.sessions, id)
	count := len(m.sessions)
	m.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %s", entity.ErrSessionNotFound, id)
	}
	m.setGauge(count)
	m.logger.Info("Session deleted", "sessionID", id)
	return nil
}

// AddLocation looks up the timezone and adds it to the session
func (m *SessionManager) AddLocation(ctx context.Context, sessionID, timezoneID, start, end string) (entity.Location, error) {
	s, err := m.Get(sessionID)
	if err != nil {
		return entity.Location{}, err
	}

	hours, err := entity.NewWorkingHours(start, end)
	if err != nil {
		return entity.Location{}, err
	}

	tz, err := m.timezoneRepo.GetByID(ctx, timezoneID)
	if err != nil {
		return entity.Location{}, err
	}

	loc, err := s.AddLocation(*tz, hours, m.clock.Now())
	if err != nil {
		return entity.Location{}, err
	}

	m.logger.Info("Location added",
		"sessionID", sessionID,
		"locationID", loc.ID,
		"timezone", tz.ID,
		"start", hours.Start,
		"end", hours.End)
	return loc, nil
}

// RemoveLocation removes a location from the session
func (m *SessionManager) RemoveLocation(sessionID, locationID string) error {
	s, err := m.Get(sessionID)
	if err != nil {
		return err
	}
	if err := s.RemoveLocation(locationID); err != nil {
		return err
	}
	m.logger.Info("Location removed", "sessionID", sessionID, "locationID", locationID)
	return nil
}

// Count returns the number of live sessions
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Sweep drops sessions idle for longer than the ttl and returns how many it removed
func (m *SessionManager) Sweep() int {
	if m.ttl <= 0 {
		return 0
	}
	cutoff := m.clock.Now().Add(-m.ttl)

	m.mu.Lock()
	removed := 0
	for id, s := range m.sessions {
		if s.LastSeen().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	count := len(m.sessions)
	m.mu.Unlock()

	if removed > 0 {
		m.setGauge(count)
		m.logger.Info("Expired sessions swept", "removed", removed, "remaining", count)
	}
	return removed
}

// RunJanitor sweeps expired sessions every interval until ctx is done.
// A non-positive interval or ttl disables it.
func (m *SessionManager) RunJanitor(ctx context.Context, interval time.Duration) {
	if interval <= 0 || m.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("Session janitor stopped")
			return
		case <-ticker.C:
			m.Sweep()
		}
	}
}

func (m *SessionManager) setGauge(count int) {
	if m.metrics != nil {
		m.metrics.ActiveSessions.Set(float64(count))
	}
}
