// Package resultsui renders the results of a finished attempt as a tabbed
// Bubble Tea view.
package resultsui

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/verte-zerg/typesprint/internal/achievement"
	"github.com/verte-zerg/typesprint/internal/i18n"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

const (
	tabOverview = iota
	tabCurve
	tabErrors
	tabSession
)

const (
	plotHeight    = 10
	sessionWindow = 3
	defaultWidth  = 80
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	cardStyle   = lipgloss.NewStyle().
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#4A4A4A"))
	cardTitleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	cardValueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	levelStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	tableMutedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B8B8B8"))
)

// Model shows one report and the session it belongs to.
type Model struct {
	ctx     context.Context
	report  stats.Report
	session []model.TestResult

	tabs       []string
	activeTab  int
	viewports  []viewport.Model
	errorTable table.Model

	width  int
	height int
}

// New builds the view for report. session holds every attempt so far,
// including the reported one as its last element.
func New(ctx context.Context, report stats.Report, session []model.TestResult) *Model {
	m := &Model{
		ctx:     ctx,
		report:  report,
		session: session,
		tabs: []string{
			i18n.T(ctx, "ResultsTabOverview"),
			i18n.T(ctx, "ResultsTabCurve"),
			i18n.T(ctx, "ResultsTabErrors"),
			i18n.T(ctx, "ResultsTabSession"),
		},
	}
	m.viewports = make([]viewport.Model, len(m.tabs))
	for i := range m.viewports {
		m.viewports[i] = viewport.New(0, 0)
	}
	m.errorTable = buildErrorTable(report.Result.Errors, defaultWidth, 1)
	m.renderTabContents()
	return m
}

// ActiveTab returns the index of the visible tab.
func (m *Model) ActiveTab() int {
	return m.activeTab
}

// SetSize lays the view out for a width x height area.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	bodyHeight := m.bodyHeight()
	for i := range m.viewports {
		m.viewports[i].Width = width
		m.viewports[i].Height = bodyHeight
	}
	m.errorTable.SetWidth(max(width, 1))
	m.errorTable.SetHeight(max(bodyHeight-1, 1))
	m.renderTabContents()
}

// Update handles navigation keys.
func (m *Model) Update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "right", "l":
		m.moveTab(1)
		return nil
	case "shift+tab", "left", "h":
		m.moveTab(-1)
		return nil
	case "g", "home":
		if m.activeTab == tabErrors {
			m.errorTable.GotoTop()
		} else {
			m.viewports[m.activeTab].GotoTop()
		}
		return nil
	case "G", "end":
		if m.activeTab == tabErrors {
			m.errorTable.GotoBottom()
		} else {
			m.viewports[m.activeTab].GotoBottom()
		}
		return nil
	}
	var cmd tea.Cmd
	if m.activeTab == tabErrors {
		m.errorTable, cmd = m.errorTable.Update(msg)
		return cmd
	}
	m.viewports[m.activeTab], cmd = m.viewports[m.activeTab].Update(msg)
	return cmd
}

// View renders the tabs and the active tab's body.
func (m *Model) View() string {
	tabs := m.renderTabs()
	var body string
	switch {
	case m.activeTab == tabErrors && len(m.report.Result.Errors) == 0:
		body = i18n.T(m.ctx, "ResultsNoErrors")
	case m.activeTab == tabErrors:
		body = tableMutedStyle.Render(m.errorTable.View())
	case m.width == 0 || m.height == 0:
		body = m.contentFor(m.activeTab, defaultWidth)
	default:
		body = m.viewports[m.activeTab].View()
	}
	return tabs + "\n" + body
}

func (m *Model) moveTab(delta int) {
	count := len(m.tabs)
	if count == 0 {
		return
	}
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.activeTab = next
	if m.activeTab == tabErrors {
		m.errorTable.Focus()
	} else {
		m.errorTable.Blur()
	}
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(m.tabs))
	for i, tab := range m.tabs {
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(tab))
		} else {
			parts = append(parts, inactiveNavStyle.Render(tab))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) bodyHeight() int {
	tabsHeight := max(lipgloss.Height(activeNavStyle.Render("X")), 1)
	return max(m.height-tabsHeight-1, 1)
}

func (m *Model) renderTabContents() {
	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	for _, tab := range []int{tabOverview, tabCurve, tabSession} {
		m.viewports[tab].SetContent(m.contentFor(tab, width))
	}
}

func (m *Model) contentFor(tab, width int) string {
	switch tab {
	case tabOverview:
		return m.renderOverview(width)
	case tabCurve:
		return m.renderCurve(width)
	case tabSession:
		return m.renderSession(width)
	}
	return ""
}

func (m *Model) renderOverview(width int) string {
	rep := m.report
	p := rep.Result.Performance
	attempt := i18n.Td(m.ctx, "ResultsAttempt", map[string]any{
		"Ordinal": humanize.Ordinal(len(m.session)),
		"Number":  len(m.session),
	})
	header := headerStyle.Render(fmt.Sprintf("%s · %s · %s", i18n.T(m.ctx, "ResultsTitle"), attempt, rep.Result.Passage.ID))
	levels := levelStyle.Render(fmt.Sprintf("%s · %s",
		i18n.T(m.ctx, speedKey(achievement.PerformanceLevel(p.WPM))),
		i18n.T(m.ctx, accuracyKey(achievement.AccuracyLevel(p.Accuracy))),
	))
	cards := []string{
		metricCard(i18n.T(m.ctx, "StatWPM"), fmt.Sprintf("%d", p.WPM)),
		metricCard(i18n.T(m.ctx, "ResultsNetWPM"), fmt.Sprintf("%d", rep.NetWPM)),
		metricCard(i18n.T(m.ctx, "StatAccuracy"), fmt.Sprintf("%d%%", p.Accuracy)),
		metricCard(i18n.T(m.ctx, "StatTime"), rep.TimeLabel),
		metricCard(i18n.T(m.ctx, "ResultsConsistency"), fmt.Sprintf("%d%%", rep.Consistency)),
		metricCard(i18n.T(m.ctx, "ResultsErrorRate"), fmt.Sprintf("%d", rep.ErrorRate)),
		metricCard(i18n.T(m.ctx, "ResultsCharacters"), fmt.Sprintf("%d/%d", p.CorrectCharacters, p.TotalCharacters)),
		metricCard(i18n.T(m.ctx, "ResultsWords"), fmt.Sprintf("%d", p.TotalWords)),
	}
	var grid string
	if width < 80 {
		grid = strings.Join(cards, "\n")
	} else {
		row1 := lipgloss.JoinHorizontal(lipgloss.Top, cards[:4]...)
		row2 := lipgloss.JoinHorizontal(lipgloss.Top, cards[4:]...)
		grid = lipgloss.JoinVertical(lipgloss.Left, row1, row2)
	}
	lines := []string{header, levels, grid}
	if len(rep.WeakChars) > 0 {
		weak := make([]string, len(rep.WeakChars))
		for i, ch := range rep.WeakChars {
			weak[i] = fmt.Sprintf("%s×%d", stats.CharLabel(ch), rep.WeakCounts[i])
		}
		lines = append(lines, headerStyle.Render(i18n.T(m.ctx, "ResultsWeakKeys")+": "+strings.Join(weak, " ")))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) renderCurve(width int) string {
	if len(m.report.Result.History) < 2 {
		return i18n.T(m.ctx, "ResultsNoSamples")
	}
	var buf bytes.Buffer
	if err := stats.RenderHistoryCurves(&buf, m.report.Result.History, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func (m *Model) renderSession(width int) string {
	var buf bytes.Buffer
	if err := stats.RenderSummary(&buf, m.session); err != nil {
		return fmt.Sprintf("Failed to render summary: %v", err)
	}
	if err := stats.RenderAttemptCurves(&buf, m.session, sessionWindow, width, plotHeight, true); err != nil {
		return fmt.Sprintf("Failed to render curves: %v", err)
	}
	return strings.TrimRight(buf.String(), "\n")
}

func metricCard(label, value string) string {
	content := fmt.Sprintf("%s\n%s", cardTitleStyle.Render(label), cardValueStyle.Render(value))
	return cardStyle.Render(content)
}

func buildErrorTable(errors []model.ErrorRecord, width, height int) table.Model {
	columns, rows := buildErrorTableData(errors)
	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(max(1, height-1)),
	)
	t.SetWidth(width)
	t.SetStyles(errorTableStyles())
	return t
}

func buildErrorTableData(errors []model.ErrorRecord) ([]table.Column, []table.Row) {
	columns := []table.Column{
		{Title: "Pos", Width: 5},
		{Title: "Expected", Width: 9},
		{Title: "Typed", Width: 8},
		{Title: "Type", Width: 13},
	}
	rows := make([]table.Row, 0, len(errors))
	for _, e := range errors {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", e.Position),
			stats.CharLabel(e.Expected),
			stats.CharLabel(e.Typed),
			stats.ErrorTypeLabel(e),
		})
	}
	return columns, rows
}

func errorTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		Foreground(lipgloss.Color("#C0C0C0")).
		Bold(true).
		Padding(0, 1).
		PaddingLeft(0)
	styles.Cell = styles.Cell.
		Padding(0, 1).
		PaddingLeft(0)
	styles.Selected = styles.Cell.
		Foreground(lipgloss.Color("#F0F0F0")).
		Bold(true)
	return styles
}

func speedKey(l achievement.Level) string {
	switch l {
	case achievement.Excellent:
		return "SpeedExcellent"
	case achievement.Good:
		return "SpeedGood"
	case achievement.Average:
		return "SpeedAverage"
	default:
		return "SpeedBeginner"
	}
}

func accuracyKey(l achievement.Level) string {
	switch l {
	case achievement.Excellent:
		return "AccuracyExcellent"
	case achievement.Good:
		return "AccuracyGood"
	case achievement.Average:
		return "AccuracyAverage"
	default:
		return "AccuracyNeedsImprovement"
	}
}
