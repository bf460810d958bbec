package engine

import (
	"math"
	"slices"

	"github.com/google/uuid"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// State returns the lifecycle phase.
func (e *Engine) State() model.TestState { return e.state }

// Passage returns the current passage, or nil.
func (e *Engine) Passage() *model.Passage { return e.passage }

// UserInput returns the text submitted so far.
func (e *Engine) UserInput() string { return e.input }

// CurrentPosition is the length of the input in characters.
func (e *Engine) CurrentPosition() int { return e.position }

// TimeRemaining returns whole seconds left on the countdown.
func (e *Engine) TimeRemaining() int { return e.remaining }

// Duration returns the countdown length in seconds.
func (e *Engine) Duration() int { return e.duration }

// WPM returns the last computed words per minute.
func (e *Engine) WPM() int { return e.wpm }

// Accuracy returns the last computed accuracy percentage.
func (e *Engine) Accuracy() int { return e.accuracy }

// Errors returns a copy of the error log.
func (e *Engine) Errors() []model.ErrorRecord { return slices.Clone(e.errors) }

// CharacterStates returns a copy of the classification array.
func (e *Engine) CharacterStates() []model.CharState { return slices.Clone(e.states) }

// History returns a copy of the metrics samples.
func (e *Engine) History() []model.MetricsSnapshot { return slices.Clone(e.history) }

// Progress returns the typed share of the passage as a percentage.
func (e *Engine) Progress() float64 {
	return stats.Progress(e.position, len(e.expected))
}

// TimeProgress returns the consumed share of the countdown as a percentage.
func (e *Engine) TimeProgress() float64 {
	if e.duration == 0 {
		return 0
	}
	return float64(e.duration-e.remaining) / float64(e.duration) * 100
}

// TimeElapsedSeconds returns rounded seconds since start, frozen at the
// completion instant once completed.
func (e *Engine) TimeElapsedSeconds() int {
	if e.startTime.IsZero() {
		return 0
	}
	end := e.clk.Now()
	if e.state == model.Completed {
		end = e.endTime
	}
	return int(math.Floor(end.Sub(e.startTime).Seconds() + 0.5))
}

// Result returns the finished result once completed, or an interim
// snapshot while active. It reports false before a test has started.
func (e *Engine) Result() (model.TestResult, bool) {
	if e.passage == nil || e.startTime.IsZero() {
		return model.TestResult{}, false
	}
	if e.state == model.Completed && e.result != nil {
		return *e.result, true
	}
	return e.buildResult(), true
}

func (e *Engine) buildResult() model.TestResult {
	now := e.clk.Now()
	var elapsed float64
	if e.state == model.Completed {
		elapsed = float64(e.duration - e.remaining)
	} else {
		elapsed = now.Sub(e.startTime).Seconds()
	}
	correct := e.countState(model.Correct)
	total := len(e.typed)
	return model.TestResult{
		ID:         uuid.NewString(),
		Timestamp:  now,
		Difficulty: e.passage.Difficulty,
		Passage:    *e.passage,
		Input:      e.input,
		Performance: model.Performance{
			WPM:                 e.wpm,
			Accuracy:            e.accuracy,
			TimeElapsed:         int(math.Floor(elapsed + 0.5)),
			TotalCharacters:     total,
			CorrectCharacters:   correct,
			IncorrectCharacters: total - correct,
			TotalWords:          (correct + stats.CharsPerWord - 1) / stats.CharsPerWord,
		},
		Errors:  slices.Clone(e.errors),
		History: slices.Clone(e.history),
	}
}
