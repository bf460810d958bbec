package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/typesprint/internal/achievement"
	"github.com/verte-zerg/typesprint/internal/i18n"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
	"github.com/verte-zerg/typesprint/internal/timer"
)

var (
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	overtypedStyle   = incorrectStyle.Faint(true)
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	selectedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	noticeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	badgeStyle       = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true)

	urgencyStyles = map[timer.Urgency]lipgloss.Style{
		timer.Normal:   lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")),
		timer.Caution:  lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")),
		timer.Warning:  lipgloss.NewStyle().Foreground(lipgloss.Color("#FF8C42")),
		timer.Critical: lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true),
	}
)

var confettiGlyphs = map[achievement.Intensity][]rune{
	achievement.Light:  []rune("·."),
	achievement.Medium: []rune("*·+"),
	achievement.Heavy:  []rune("✦*+·"),
}

const fallbackWidth = 80

// View implements tea.Model.
func (m *Model) View() string {
	switch m.screen {
	case screenTyping:
		return m.viewTyping()
	case screenResults:
		return m.viewResults()
	default:
		return m.viewSelect()
	}
}

func (m *Model) viewSelect() string {
	levels := m.catalog.Difficulties()
	lines := []string{titleStyle.Render(i18n.T(m.ctx, "AppTitle")), "", i18n.T(m.ctx, "SelectTitle"), ""}
	for i, d := range levels {
		label := fmt.Sprintf("%-14s %s", i18n.T(m.ctx, difficultyKey(d)), i18n.Tp(m.ctx, "PassagesAvailable", m.catalog.Count(d)))
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render("> "+label))
		} else {
			lines = append(lines, pendingStyle.Render("  "+label))
		}
	}
	lines = append(lines, "", footerStyle.Render(i18n.T(m.ctx, "SelectHint")))
	content := strings.Join(lines, "\n")
	if m.width == 0 || m.height == 0 {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m *Model) viewTyping() string {
	target := []rune(m.current.Text)
	if len(target) == 0 {
		return ""
	}
	typed := []rune(m.engine.UserInput())
	var overflow []rune
	if len(typed) > len(target) {
		overflow = typed[len(target):]
	}
	cursorIndex := -1
	if pos := m.engine.CurrentPosition(); pos < len(target) {
		cursorIndex = pos
	}
	styled := buildStyledRunes(target, m.engine.CharacterStates(), overflow, cursorIndex)
	if m.width == 0 || m.height == 0 {
		return m.renderStats() + "\n\n" + renderStyledRunes(styled)
	}
	contentWidth := max(int(float64(m.width)*0.70), 1)
	wrapped := wrapStyledRunes(styled, contentWidth)
	content := lipgloss.NewStyle().Width(contentWidth).Render(m.renderStats() + "\n\n" + wrapped)
	footer := m.renderFooter()
	if m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
	}
	body := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, content)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return body + "\n" + footerLine
}

// renderStats is the live metrics line above the passage.
func (m *Model) renderStats() string {
	e := m.engine
	remaining := e.TimeRemaining()
	urgency := timer.Classify(remaining, e.Duration())
	if e.State() != model.Active {
		urgency = timer.Normal
	}
	segments := []string{
		fmt.Sprintf("%s %d", i18n.T(m.ctx, "StatWPM"), e.WPM()),
		fmt.Sprintf("%s %d%%", i18n.T(m.ctx, "StatAccuracy"), e.Accuracy()),
		urgencyStyles[urgency].Render(fmt.Sprintf("%s %s", i18n.T(m.ctx, "StatTime"), stats.FormatTime(remaining))),
		fmt.Sprintf("%s %d%%", i18n.T(m.ctx, "StatProgress"), int(e.Progress())),
		fmt.Sprintf("%s %d", i18n.T(m.ctx, "StatErrors"), len(e.Errors())),
	}
	line := strings.Join(segments, "  ")
	if urgency != timer.Normal {
		line += "  " + urgencyStyles[urgency].Render(i18n.T(m.ctx, urgencyKey(urgency)))
	}
	return line
}

func (m *Model) renderFooter() string {
	hint := "TypingHintReady"
	if m.engine.State() == model.Active {
		hint = "TypingHintActive"
	}
	footer := footerStyle.Render(i18n.T(m.ctx, hint))
	if m.notice != "" {
		footer = noticeStyle.Render(i18n.T(m.ctx, m.notice)) + "  " + footer
	}
	return footer
}

func (m *Model) viewResults() string {
	if m.results == nil {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = fallbackWidth
	}
	parts := []string{}
	if badge := m.renderBadge(); badge != "" {
		parts = append(parts, badge)
	}
	if confetti := m.renderConfetti(width); confetti != "" {
		parts = append(parts, confetti)
	}
	parts = append(parts, m.results.View())
	hint := i18n.T(m.ctx, "ResultsHint")
	best := i18n.Td(m.ctx, "ResultsBest", map[string]any{"WPM": m.best})
	parts = append(parts, footerStyle.Render(best+"  "+hint))
	return strings.Join(parts, "\n")
}

func (m *Model) renderBadge() string {
	id, ok := m.queue.Current()
	if !ok {
		return ""
	}
	key := achievementKey(id)
	text := fmt.Sprintf("%s %s · %s", id.Icon(), i18n.T(m.ctx, key+"Title"), i18n.T(m.ctx, key+"Desc"))
	if n := m.queue.Pending(); n > 0 {
		text += "  " + footerStyle.Render(i18n.Tp(m.ctx, "AchievementsMore", n))
	}
	color := lipgloss.Color(id.Color())
	return badgeStyle.BorderForeground(color).Foreground(color).Render(text)
}

// renderConfetti draws the running burst as one line of scattered glyphs.
func (m *Model) renderConfetti(width int) string {
	intensity, palette, count, ok := m.queue.Confetti()
	if !ok || len(palette) == 0 || width <= 0 {
		return ""
	}
	glyphs := confettiGlyphs[intensity]
	if len(glyphs) == 0 {
		glyphs = confettiGlyphs[achievement.Light]
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	n := min(count, width)
	for i := 0; i < n; i++ {
		pos := (i * 37) % width
		g := string(glyphs[i%len(glyphs)])
		cells[pos] = lipgloss.NewStyle().Foreground(lipgloss.Color(palette[i%len(palette)])).Render(g)
	}
	return strings.Join(cells, "")
}

func (m *Model) resultsHeight() int {
	return max(m.height-6, 1)
}

func difficultyKey(d model.Difficulty) string {
	switch d {
	case model.Intermediate:
		return "DifficultyIntermediate"
	case model.Advanced:
		return "DifficultyAdvanced"
	default:
		return "DifficultyBeginner"
	}
}

func urgencyKey(u timer.Urgency) string {
	switch u {
	case timer.Critical:
		return "UrgencyCritical"
	case timer.Warning:
		return "UrgencyWarning"
	case timer.Caution:
		return "UrgencyCaution"
	default:
		return "UrgencyNormal"
	}
}

// achievementKey maps an achievement to the prefix of its message IDs.
func achievementKey(id achievement.ID) string {
	s := string(id)
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
