package engine

import "github.com/verte-zerg/typesprint/internal/model"

// Key names the engine reacts to.
const (
	KeyTab    = "tab"
	KeyEscape = "esc"
)

// Key is a key press as seen by the engine.
type Key struct {
	Name string
	Ctrl bool
	Meta bool
}

// OnKey reacts to a key press. Any key but Tab or Escape starts a ready
// test. Escape completes an active test and resets a completed one. It
// returns true when the caller should swallow the key, which is the case
// for Ctrl and Meta combinations while a test is active.
func (e *Engine) OnKey(k Key) bool {
	if e.passage == nil {
		return false
	}
	prev := e.state
	if prev == model.Ready && k.Name != KeyTab && k.Name != KeyEscape {
		e.Start()
	}
	if k.Name == KeyEscape {
		switch prev {
		case model.Active:
			e.complete()
		case model.Completed:
			e.Reset()
		}
	}
	return prev == model.Active && (k.Ctrl || k.Meta)
}
