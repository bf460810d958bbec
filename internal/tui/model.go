// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"context"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesprint/internal/achievement"
	"github.com/verte-zerg/typesprint/internal/clock"
	"github.com/verte-zerg/typesprint/internal/engine"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/passage"
	"github.com/verte-zerg/typesprint/internal/resultsui"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/timer"
)

type screen uint8

const (
	screenSelect screen = iota
	screenTyping
	screenResults
)

const weakTop = 8

// Model implements the Bubble Tea typing UI.
type Model struct {
	ctx      context.Context
	settings model.Settings
	catalog  *passage.Catalog
	builder  *passage.Builder
	rnd      *rand.Rand
	clk      clock.Clock

	sched   scheduler
	engine  *engine.Engine
	queue   *achievement.Queue
	results *resultsui.Model

	screen     screen
	cursor     int
	difficulty model.Difficulty
	current    model.Passage
	notice     string
	completed  bool

	session []model.TestResult
	best    int

	width  int
	height int
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the clock shared by the engine and the celebration timers.
func WithClock(c clock.Clock) Option {
	return func(m *Model) { m.clk = c }
}

func withScheduler(s scheduler) Option {
	return func(m *Model) { m.sched = s }
}

// WithRand sets the source used to pick passages.
func WithRand(r *rand.Rand) Option {
	return func(m *Model) { m.rnd = r }
}

// NewModel constructs a typing TUI model. A difficulty or passage id in
// settings skips the selection screen.
func NewModel(ctx context.Context, settings model.Settings, catalog *passage.Catalog, builder *passage.Builder, opts ...Option) *Model {
	m := &Model{
		ctx:      ctx,
		settings: settings,
		catalog:  catalog,
		builder:  builder,
		sched:    &teaScheduler{},
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.clk == nil {
		m.clk = clock.Real{}
	}
	if m.rnd == nil {
		m.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	duration := time.Duration(settings.Duration) * time.Second
	if duration < time.Second {
		duration = engine.DefaultDuration
	}
	m.engine = engine.New(
		engine.WithClock(m.clk),
		engine.WithScheduler(m.sched),
		engine.WithDuration(duration),
		engine.WithListener(m.onEngineEvent),
	)
	m.queue = achievement.NewQueue(timer.WithClock(m.clk), timer.WithScheduler(m.sched))

	switch {
	case settings.PassageID != "":
		p := builder.Resolve(catalog, settings.PassageID)
		if p.ID != settings.PassageID {
			m.notice = "ResultsFallback"
		}
		m.difficulty = settings.Difficulty
		m.begin(p)
	case settings.Difficulty != "":
		m.difficulty = settings.Difficulty
		m.begin(m.pick(settings.Difficulty))
	default:
		m.screen = screenSelect
	}
	return m
}

// Results returns the attempts completed so far, oldest first.
func (m *Model) Results() []model.TestResult {
	return append([]model.TestResult(nil), m.session...)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	cmd := m.update(msg)
	if m.completed {
		m.completed = false
		m.finish()
	}
	return m, tea.Batch(cmd, m.sched.drain())
}

func (m *Model) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.results != nil {
			m.results.SetSize(m.width, m.resultsHeight())
		}
		return nil
	case tea.FocusMsg:
		m.queue.Resume()
		return nil
	case tea.BlurMsg:
		m.queue.Pause()
		return nil
	case tickMsg:
		t := clock.Tick(msg)
		if m.queue.Owns(t) {
			m.queue.HandleTick(t)
			return nil
		}
		m.engine.HandleTick(t)
		return nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.screen {
		case screenSelect:
			return m.updateSelect(msg)
		case screenTyping:
			return m.updateTyping(msg)
		case screenResults:
			return m.updateResults(msg)
		}
	}
	return nil
}

func (m *Model) updateSelect(msg tea.KeyMsg) tea.Cmd {
	levels := m.catalog.Difficulties()
	switch msg.String() {
	case "q", "esc":
		return m.quit()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(levels)-1 {
			m.cursor++
		}
	case "enter", " ":
		if len(levels) == 0 {
			return nil
		}
		m.difficulty = levels[m.cursor]
		m.notice = ""
		m.begin(m.pick(m.difficulty))
	}
	return nil
}

func (m *Model) updateTyping(msg tea.KeyMsg) tea.Cmd {
	k := keyFor(msg)
	if m.engine.State() == model.Ready {
		switch k.Name {
		case engine.KeyTab:
			m.begin(m.next())
			return nil
		case engine.KeyEscape:
			m.backToSelect()
			return nil
		}
	}
	if m.engine.OnKey(k) {
		return nil
	}
	if m.engine.State() != model.Active {
		return nil
	}
	input := m.engine.UserInput()
	switch msg.Type {
	case tea.KeyBackspace:
		if r := []rune(input); len(r) > 0 {
			m.engine.SubmitInput(string(r[:len(r)-1]))
		}
	case tea.KeySpace:
		m.engine.SubmitInput(input + " ")
	case tea.KeyRunes:
		if msg.Alt {
			return nil
		}
		m.engine.SubmitInput(input + string(msg.Runes))
	}
	return nil
}

func (m *Model) updateResults(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "q":
		return m.quit()
	case "r":
		m.queue.Clear()
		m.engine.Reset()
		m.screen = screenTyping
	case "n":
		m.queue.Clear()
		m.notice = ""
		m.begin(m.next())
	case "f":
		m.queue.Clear()
		m.notice = ""
		m.begin(m.builder.Drill(m.weakChars()))
	case "esc":
		m.backToSelect()
	case "enter", " ":
		m.queue.Skip()
	default:
		if m.results != nil {
			return m.results.Update(msg)
		}
	}
	return nil
}

func (m *Model) onEngineEvent(ev engine.Event) {
	if ev.Kind == engine.EventCompleted {
		m.completed = true
	}
}

// finish records the attempt that just completed and shows its results.
func (m *Model) finish() {
	r, ok := m.engine.Result()
	if !ok {
		return
	}
	previousBest := m.best
	m.session = append(m.session, r)
	m.best = max(m.best, r.Performance.WPM)
	earned := m.queue.Celebrate(r, previousBest)
	slog.Info("test completed",
		"passage", r.Passage.ID,
		"wpm", r.Performance.WPM,
		"accuracy", r.Performance.Accuracy,
		"errors", len(r.Errors),
		"achievements", len(earned),
	)
	m.results = resultsui.New(m.ctx, stats.BuildReport(r, weakTop), m.Results())
	m.results.SetSize(m.width, m.resultsHeight())
	m.screen = screenResults
}

// begin loads p into the engine and shows the typing screen.
func (m *Model) begin(p model.Passage) {
	m.current = p
	loaded := p
	m.engine.SetPassage(&loaded)
	m.results = nil
	m.screen = screenTyping
	slog.Debug("passage loaded", "passage", p.ID, "difficulty", p.Difficulty)
}

func (m *Model) backToSelect() {
	m.queue.Clear()
	m.engine.SetPassage(nil)
	m.results = nil
	m.notice = ""
	m.screen = screenSelect
}

func (m *Model) quit() tea.Cmd {
	m.queue.Clear()
	m.engine.Close()
	return tea.Quit
}

// pick draws a catalog passage of difficulty d, avoiding the current one
// when there is a choice.
func (m *Model) pick(d model.Difficulty) model.Passage {
	var others []model.Passage
	for _, p := range m.catalog.ByDifficulty(d) {
		if p.ID != m.current.ID {
			others = append(others, p)
		}
	}
	if len(others) > 0 {
		return others[m.rnd.Intn(len(others))]
	}
	if p, ok := m.catalog.Random(d, m.rnd); ok {
		return p
	}
	return m.builder.Fallback()
}

// next picks the passage that follows the current one.
func (m *Model) next() model.Passage {
	d := m.difficulty
	if d == "" {
		d = m.current.Difficulty
	}
	return m.pick(d)
}

// weakChars collects the most mistyped characters across the session.
func (m *Model) weakChars() map[rune]struct{} {
	var errs []model.ErrorRecord
	for _, r := range m.session {
		errs = append(errs, r.Errors...)
	}
	return stats.SelectWeakChars(errs, weakTop)
}

func keyFor(msg tea.KeyMsg) engine.Key {
	name := msg.String()
	return engine.Key{
		Name: strings.TrimPrefix(name, "alt+"),
		Ctrl: strings.HasPrefix(name, "ctrl+"),
		Meta: msg.Alt,
	}
}
