package usecase

import (
	"sync/atomic"

	"worldtime-service/internal/domain/entity"
)

// BusyGuard admits at most one in-flight long-running operation.
type BusyGuard struct {
	busy atomic.Bool
}

// TryAcquire marks the guard busy; false means another operation holds it.
func (g *BusyGuard) TryAcquire() bool {
	return g.busy.CompareAndSwap(false, true)
}

// Release clears the busy flag.
func (g *BusyGuard) Release() {
	g.busy.Store(false)
}

// Busy reports whether an operation is running.
func (g *BusyGuard) Busy() bool {
	return g.busy.Load()
}

// Do runs fn while holding the guard, or returns entity.ErrBusy.
func (g *BusyGuard) Do(fn func() error) error {
	if !g.TryAcquire() {
		return entity.ErrBusy
	}
	defer g.Release()
	return fn()
}
