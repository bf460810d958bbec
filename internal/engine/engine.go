// Package engine runs one typing test attempt: it classifies input against a
// passage, keeps the error log and live metrics, and drives the countdown.
//
// The engine is passive. Timing loops are requested through a
// clock.Scheduler and come back as ticks passed to HandleTick, so every
// mutation happens on the caller's goroutine. It is not safe for concurrent
// use.
package engine

import (
	"log/slog"
	"time"

	"github.com/verte-zerg/typesprint/internal/clock"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/textproc"
)

// DefaultDuration is the length of one test.
const DefaultDuration = 60 * time.Second

const (
	countdownInterval = time.Second
	metricsInterval   = 100 * time.Millisecond
	sampleInterval    = time.Second
)

// Engine holds the state of one attempt on one passage.
type Engine struct {
	id    int
	token uint64

	clk       clock.Clock
	sched     clock.Scheduler
	logger    *slog.Logger
	duration  int
	listeners []func(Event)

	passage  *model.Passage
	expected []rune

	state     model.TestState
	input     string
	typed     []rune
	position  int
	startTime time.Time
	endTime   time.Time
	remaining int

	wpm        int
	accuracy   int
	errors     []model.ErrorRecord
	errorAt    map[int]struct{}
	states     []model.CharState
	history    []model.MetricsSnapshot
	lastSample time.Time

	result *model.TestResult
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock sets the time source.
func WithClock(c clock.Clock) Option {
	return func(e *Engine) { e.clk = c }
}

// WithScheduler sets where countdown and metrics ticks are requested.
func WithScheduler(s clock.Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithDuration sets the countdown length. Values under one second are ignored.
func WithDuration(d time.Duration) Option {
	return func(e *Engine) {
		if d >= time.Second {
			e.duration = int(d / time.Second)
		}
	}
}

// WithListener subscribes fn to engine events.
func WithListener(fn func(Event)) Option {
	return func(e *Engine) { e.listeners = append(e.listeners, fn) }
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// New returns an engine with no passage.
func New(opts ...Option) *Engine {
	e := &Engine{
		id:       clock.NextID(),
		clk:      clock.Real{},
		sched:    clock.Discard{},
		logger:   slog.Default(),
		duration: int(DefaultDuration / time.Second),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.reinit()
	return e
}

// ID identifies ticks addressed to this engine.
func (e *Engine) ID() int { return e.id }

// SetPassage replaces the passage and returns to ready. Nil clears it.
func (e *Engine) SetPassage(p *model.Passage) {
	e.teardown()
	e.passage = p
	e.expected = nil
	if p != nil {
		e.expected = []rune(p.Text)
		e.logger.Debug("passage set", "passage", p.ID, "length", len(e.expected))
	}
	e.reinit()
	e.emit(EventReset)
}

// Start moves a ready engine to active and starts both loops.
func (e *Engine) Start() {
	if e.passage == nil || e.state != model.Ready {
		return
	}
	now := e.clk.Now()
	e.state = model.Active
	e.startTime = now
	e.lastSample = now
	e.remaining = e.duration
	e.sched.Schedule(e.tick(clock.KindCountdown), countdownInterval)
	e.sched.Schedule(e.tick(clock.KindMetrics), metricsInterval)
	e.logger.Debug("test started", "passage", e.passage.ID, "duration", e.duration)
	e.emit(EventStarted)
}

// Reset stops both loops and clears all attempt data.
func (e *Engine) Reset() {
	e.teardown()
	if e.passage == nil {
		return
	}
	e.reinit()
	e.logger.Debug("test reset", "passage", e.passage.ID)
	e.emit(EventReset)
}

// Close stops both loops and drops listeners. The engine stays readable.
func (e *Engine) Close() {
	e.teardown()
	e.listeners = nil
}

// SubmitInput replaces the typed text. Non-empty input promotes a ready
// engine to active; otherwise input is ignored unless active.
func (e *Engine) SubmitInput(text string) {
	if e.passage == nil {
		return
	}
	if e.state == model.Ready && text != "" {
		e.Start()
	}
	if e.state != model.Active {
		return
	}

	e.input = text
	e.typed = []rune(text)
	correct := e.classify()
	e.position = len(e.typed)

	if len(e.typed) >= len(e.expected) && correct == len(e.expected) {
		e.emit(EventInput)
		e.complete()
		return
	}
	e.refreshMetrics()
	e.emit(EventInput)
}

// classify recomputes every character state from scratch and logs the first
// mistype at each position. It returns the number of correct characters.
func (e *Engine) classify() int {
	now := e.clk.Now()
	correct := 0
	for i := range e.states {
		if i >= len(e.typed) {
			e.states[i] = model.Untyped
			continue
		}
		if textproc.ValidateCharacter(e.typed[i], e.expected[i]).IsCorrect {
			e.states[i] = model.Correct
			correct++
			continue
		}
		e.states[i] = model.Incorrect
		e.logError(i, e.expected[i], e.typed[i], now)
	}
	for i := len(e.expected); i < len(e.typed); i++ {
		e.logError(i, 0, e.typed[i], now)
	}
	return correct
}

func (e *Engine) logError(pos int, expected, typed rune, at time.Time) {
	if _, seen := e.errorAt[pos]; seen {
		return
	}
	e.errorAt[pos] = struct{}{}
	e.errors = append(e.errors, model.ErrorRecord{
		Position:  pos,
		Expected:  expected,
		Typed:     typed,
		Timestamp: at,
	})
}

// HandleTick applies a countdown or metrics tick. It returns false when
// the tick belongs to another owner or to loops that were torn down.
func (e *Engine) HandleTick(t clock.Tick) bool {
	if t.ID != e.id || t.Token != e.token || e.state != model.Active {
		return false
	}
	switch t.Kind {
	case clock.KindCountdown:
		if e.remaining <= 1 {
			e.remaining = 0
			e.emit(EventTick)
			e.complete()
			return true
		}
		e.remaining--
		e.sched.Schedule(e.tick(clock.KindCountdown), countdownInterval)
		e.emit(EventTick)
	case clock.KindMetrics:
		e.refreshMetrics()
		e.sched.Schedule(e.tick(clock.KindMetrics), metricsInterval)
		e.emit(EventMetrics)
	default:
		return false
	}
	return true
}

func (e *Engine) refreshMetrics() {
	if e.state != model.Active || e.startTime.IsZero() {
		return
	}
	now := e.clk.Now()
	correct := e.countState(model.Correct)
	e.wpm = stats.WPM(correct, now.Sub(e.startTime).Seconds())
	e.accuracy = stats.Accuracy(correct, len(e.typed))
	if now.Sub(e.lastSample) >= sampleInterval {
		e.history = append(e.history, model.MetricsSnapshot{
			Timestamp: now,
			WPM:       e.wpm,
			Accuracy:  e.accuracy,
			Position:  len(e.typed),
		})
		e.lastSample = now
	}
}

// complete performs a final metrics refresh, ends the attempt and caches
// its result.
func (e *Engine) complete() {
	if e.state != model.Active {
		return
	}
	e.refreshMetrics()
	e.state = model.Completed
	e.endTime = e.clk.Now()
	e.teardown()
	r := e.buildResult()
	e.result = &r
	e.logger.Debug("test completed",
		"passage", e.passage.ID,
		"wpm", r.Performance.WPM,
		"accuracy", r.Performance.Accuracy,
		"errors", len(r.Errors))
	e.emit(EventCompleted)
}

// teardown cancels both loops by invalidating every tick in flight.
func (e *Engine) teardown() {
	e.token++
}

func (e *Engine) reinit() {
	e.state = model.Ready
	e.input = ""
	e.typed = nil
	e.position = 0
	e.startTime = time.Time{}
	e.endTime = time.Time{}
	e.lastSample = time.Time{}
	e.remaining = e.duration
	e.wpm = 0
	e.accuracy = 100
	e.errors = nil
	e.errorAt = map[int]struct{}{}
	e.history = nil
	e.states = make([]model.CharState, len(e.expected))
	e.result = nil
}

func (e *Engine) tick(kind clock.TickKind) clock.Tick {
	return clock.Tick{ID: e.id, Token: e.token, Kind: kind}
}

func (e *Engine) countState(s model.CharState) int {
	n := 0
	for _, st := range e.states {
		if st == s {
			n++
		}
	}
	return n
}
