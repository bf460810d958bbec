package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/verte-zerg/typesprint/internal/clock"
)

// scheduler is a clock.Scheduler whose pending work Update hands back to
// the runtime after each message.
type scheduler interface {
	clock.Scheduler
	drain() tea.Cmd
}

// tickMsg carries a scheduled tick back into Update.
type tickMsg clock.Tick

// teaScheduler turns scheduled ticks into tea.Tick commands. Commands are
// buffered during Update and handed to the runtime when it returns.
type teaScheduler struct {
	pending []tea.Cmd
}

// Schedule implements clock.Scheduler.
func (s *teaScheduler) Schedule(t clock.Tick, after time.Duration) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return tickMsg(t)
	}))
}

func (s *teaScheduler) drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}
