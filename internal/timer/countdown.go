// Package timer implements a pausable second-resolution countdown.
package timer

import (
	"time"

	"github.com/verte-zerg/typesprint/internal/clock"
	"github.com/verte-zerg/typesprint/internal/stats"
)

const tickInterval = time.Second

// Countdown counts whole seconds down to zero. It is driven by ticks
// delivered through a clock.Scheduler and is not safe for concurrent use.
type Countdown struct {
	id    int
	token uint64
	clk   clock.Clock
	sched clock.Scheduler

	initial   int
	total     int
	remaining int
	active    bool
	paused    bool

	// runningSince is the start of the current active interval; elapsed
	// holds the sum of the closed ones.
	runningSince time.Time
	elapsed      time.Duration

	onFinish func()
}

// Option configures a Countdown.
type Option func(*Countdown)

// WithClock sets the time source used for elapsed accounting.
func WithClock(c clock.Clock) Option {
	return func(cd *Countdown) { cd.clk = c }
}

// WithScheduler sets where tick requests go.
func WithScheduler(s clock.Scheduler) Option {
	return func(cd *Countdown) { cd.sched = s }
}

// OnFinish registers fn to run when the countdown reaches zero.
func OnFinish(fn func()) Option {
	return func(cd *Countdown) { cd.onFinish = fn }
}

// New returns a stopped countdown of d, truncated to whole seconds.
func New(d time.Duration, opts ...Option) *Countdown {
	secs := max(int(d/time.Second), 0)
	cd := &Countdown{
		id:        clock.NextID(),
		clk:       clock.Real{},
		sched:     clock.Discard{},
		initial:   secs,
		total:     secs,
		remaining: secs,
	}
	for _, opt := range opts {
		opt(cd)
	}
	return cd
}

// ID identifies ticks addressed to this countdown.
func (c *Countdown) ID() int {
	return c.id
}

// Start begins counting. A paused countdown continues as with Resume.
// Starting a finished countdown does nothing until Reset.
func (c *Countdown) Start() {
	if c.active && !c.paused {
		return
	}
	if c.remaining == 0 {
		return
	}
	c.active = true
	c.paused = false
	c.runningSince = c.clk.Now()
	c.schedule()
}

// Pause freezes the countdown and closes the current active interval.
func (c *Countdown) Pause() {
	if !c.active || c.paused {
		return
	}
	c.closeInterval()
	c.paused = true
	c.teardown()
}

// Resume continues a paused countdown.
func (c *Countdown) Resume() {
	if !c.active || !c.paused {
		return
	}
	c.paused = false
	c.runningSince = c.clk.Now()
	c.schedule()
}

// Stop halts the countdown, keeping remaining and elapsed time.
func (c *Countdown) Stop() {
	if c.active && !c.paused {
		c.closeInterval()
	}
	c.active = false
	c.paused = false
	c.teardown()
}

// Reset stops the countdown and restores it to full. An optional duration
// replaces the one given to New.
func (c *Countdown) Reset(newDuration ...time.Duration) {
	c.teardown()
	secs := c.initial
	if len(newDuration) > 0 {
		secs = max(int(newDuration[0]/time.Second), 0)
	}
	c.total = secs
	c.remaining = secs
	c.active = false
	c.paused = false
	c.elapsed = 0
	c.runningSince = time.Time{}
}

// HandleTick applies a tick addressed to this countdown. It returns false
// for ticks that belong to another owner or a cancelled generation.
func (c *Countdown) HandleTick(t clock.Tick) bool {
	if t.ID != c.id || t.Token != c.token || t.Kind != clock.KindCountdown {
		return false
	}
	if !c.active || c.paused {
		return false
	}
	if c.remaining <= 1 {
		c.remaining = 0
		c.Stop()
		if c.onFinish != nil {
			c.onFinish()
		}
		return true
	}
	c.remaining--
	c.schedule()
	return true
}

// Remaining returns whole seconds left.
func (c *Countdown) Remaining() int { return c.remaining }

// Total returns the full duration in seconds.
func (c *Countdown) Total() int { return c.total }

// Elapsed returns the time spent running, excluding pauses.
func (c *Countdown) Elapsed() time.Duration {
	if c.IsRunning() {
		return c.elapsed + c.clk.Now().Sub(c.runningSince)
	}
	return c.elapsed
}

// IsActive reports whether the countdown has been started and not stopped.
func (c *Countdown) IsActive() bool { return c.active }

// IsPaused reports whether an active countdown is paused.
func (c *Countdown) IsPaused() bool { return c.paused }

// IsRunning reports whether the countdown is active and not paused.
func (c *Countdown) IsRunning() bool { return c.active && !c.paused }

// IsFinished reports whether the countdown ran out and is no longer active.
func (c *Countdown) IsFinished() bool { return c.remaining == 0 && !c.active }

// Progress returns the consumed share of the total as a percentage.
func (c *Countdown) Progress() float64 {
	if c.total == 0 {
		return 0
	}
	return float64(c.total-c.remaining) / float64(c.total) * 100
}

// Urgency classifies the remaining time.
func (c *Countdown) Urgency() Urgency {
	return Classify(c.remaining, c.total)
}

// Formatted renders the remaining time as MM:SS.
func (c *Countdown) Formatted() string {
	return stats.FormatTime(c.remaining)
}

// FormattedElapsed renders the elapsed time as MM:SS.
func (c *Countdown) FormattedElapsed() string {
	return stats.FormatTime(int(c.Elapsed() / time.Second))
}

func (c *Countdown) closeInterval() {
	c.elapsed += c.clk.Now().Sub(c.runningSince)
	c.runningSince = time.Time{}
}

func (c *Countdown) schedule() {
	c.sched.Schedule(clock.Tick{ID: c.id, Token: c.token, Kind: clock.KindCountdown}, tickInterval)
}

// teardown invalidates every tick already in flight.
func (c *Countdown) teardown() {
	c.token++
}
