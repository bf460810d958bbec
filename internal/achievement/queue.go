package achievement

import (
	"time"

	"github.com/verte-zerg/typesprint/internal/clock"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/timer"
)

// Display durations.
const (
	BadgeDuration    = 4 * time.Second
	ConfettiDuration = 3 * time.Second
)

// Queue shows earned achievements one at a time and runs the confetti
// burst. Both run on their own countdown and pause together.
type Queue struct {
	pending  []ID
	current  ID
	showing  bool
	burst    Intensity
	palette  []string
	count    int
	bursting bool

	badge    *timer.Countdown
	confetti *timer.Countdown
}

// NewQueue returns an idle queue. Options apply to both countdowns.
func NewQueue(opts ...timer.Option) *Queue {
	q := &Queue{}
	q.badge = timer.New(BadgeDuration, withFinish(opts, q.advance)...)
	q.confetti = timer.New(ConfettiDuration, withFinish(opts, q.endBurst)...)
	return q
}

func withFinish(opts []timer.Option, fn func()) []timer.Option {
	out := make([]timer.Option, 0, len(opts)+1)
	out = append(out, opts...)
	return append(out, timer.OnFinish(fn))
}

// Celebrate replaces whatever is showing with the celebrations for r.
func (q *Queue) Celebrate(r model.TestResult, previousBest int) []ID {
	q.Clear()
	wpm, acc := r.Performance.WPM, r.Performance.Accuracy
	ids := ForResult(r, previousBest)
	q.pending = append(q.pending, ids...)
	if ShouldCelebrate(wpm, acc) {
		q.burst = ConfettiIntensity(wpm, acc)
		q.palette = Palette(wpm, acc)
		q.count = ParticleCount(wpm)
		q.bursting = true
		q.confetti.Start()
	}
	q.advance()
	return ids
}

// HandleTick routes a tick to the badge or confetti countdown.
func (q *Queue) HandleTick(t clock.Tick) bool {
	switch t.ID {
	case q.badge.ID():
		return q.badge.HandleTick(t)
	case q.confetti.ID():
		return q.confetti.HandleTick(t)
	}
	return false
}

// Owns reports whether t is addressed to this queue.
func (q *Queue) Owns(t clock.Tick) bool {
	return t.ID == q.badge.ID() || t.ID == q.confetti.ID()
}

// Current returns the achievement on display.
func (q *Queue) Current() (ID, bool) {
	return q.current, q.showing
}

// Pending returns how many achievements wait behind the current one.
func (q *Queue) Pending() int {
	return len(q.pending)
}

// Confetti describes the running burst.
func (q *Queue) Confetti() (Intensity, []string, int, bool) {
	return q.burst, q.palette, q.count, q.bursting
}

// Badge exposes the countdown of the current badge.
func (q *Queue) Badge() *timer.Countdown {
	return q.badge
}

// Pause freezes both countdowns.
func (q *Queue) Pause() {
	q.badge.Pause()
	q.confetti.Pause()
}

// Resume continues both countdowns.
func (q *Queue) Resume() {
	q.badge.Resume()
	q.confetti.Resume()
}

// Skip dismisses the current badge and shows the next one.
func (q *Queue) Skip() {
	if !q.showing {
		return
	}
	q.advance()
}

// Clear stops everything.
func (q *Queue) Clear() {
	q.pending = nil
	q.showing = false
	q.current = ""
	q.bursting = false
	q.badge.Reset()
	q.confetti.Reset()
}

// Active reports whether anything is on screen.
func (q *Queue) Active() bool {
	return q.showing || q.bursting
}

func (q *Queue) advance() {
	q.badge.Reset()
	if len(q.pending) == 0 {
		q.showing = false
		q.current = ""
		return
	}
	q.current = q.pending[0]
	q.pending = q.pending[1:]
	q.showing = true
	q.badge.Start()
}

func (q *Queue) endBurst() {
	q.bursting = false
}
