// Package clock provides time sources and tick scheduling for timed components.
package clock

import (
	"sync"
	"sync/atomic"
	"time"
)

// Clock returns the current time.
type Clock interface {
	Now() time.Time
}

// Real is the wall clock.
type Real struct{}

// Now implements Clock.
func (Real) Now() time.Time {
	return time.Now()
}

// Mock is a controllable clock for tests.
type Mock struct {
	mu  sync.RWMutex
	now time.Time
}

// NewMock returns a Mock set to start.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now implements Clock.
func (m *Mock) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t.
func (m *Mock) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = m.now.Add(d)
}

// TickKind distinguishes the loops of one owner.
type TickKind uint8

// Tick kinds.
const (
	KindCountdown TickKind = iota
	KindMetrics
)

// Tick is a scheduled wake-up. ID names the owning component and Token the
// generation of its loops; owners drop ticks whose token is stale.
type Tick struct {
	ID    int
	Token uint64
	Kind  TickKind
}

// Scheduler delivers t back to its owner after the given delay.
type Scheduler interface {
	Schedule(t Tick, after time.Duration)
}

// Discard drops every tick. Components built without a scheduler use it.
type Discard struct{}

// Schedule implements Scheduler.
func (Discard) Schedule(Tick, time.Duration) {}

var lastID int64

// NextID returns a process-unique owner ID.
func NextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}
