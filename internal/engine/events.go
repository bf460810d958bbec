package engine

import "github.com/verte-zerg/typesprint/internal/model"

// EventKind names what changed.
type EventKind uint8

// Event kinds.
const (
	EventStarted EventKind = iota
	EventInput
	EventMetrics
	EventTick
	EventCompleted
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventInput:
		return "input"
	case EventMetrics:
		return "metrics"
	case EventTick:
		return "tick"
	case EventCompleted:
		return "completed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is delivered to listeners after the engine state has been updated.
type Event struct {
	Kind      EventKind
	State     model.TestState
	Remaining int
	WPM       int
	Accuracy  int
}

func (e *Engine) emit(kind EventKind) {
	if len(e.listeners) == 0 {
		return
	}
	ev := Event{
		Kind:      kind,
		State:     e.state,
		Remaining: e.remaining,
		WPM:       e.wpm,
		Accuracy:  e.accuracy,
	}
	for _, fn := range e.listeners {
		fn(ev)
	}
}
