package stats

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/textproc"
)

const sparkChars = " .:-=+*#%@"

// MovingAverage computes a rolling mean over the provided window size.
func MovingAverage(values []float64, window int) []float64 {
	if window <= 1 || len(values) == 0 {
		out := make([]float64, len(values))
		copy(out, values)
		return out
	}
	out := make([]float64, len(values))
	var sum float64
	for i := 0; i < len(values); i++ {
		sum += values[i]
		if i >= window {
			sum -= values[i-window]
		}
		den := float64(i + 1)
		if i >= window {
			den = float64(window)
		}
		out[i] = sum / den
	}
	return out
}

// Sparkline renders a single-line ASCII sparkline for the values.
func Sparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	minVal, maxVal := seriesMinMaxSingle(values)
	if math.Abs(maxVal-minVal) < 1e-9 {
		return strings.Repeat(string(sparkChars[len(sparkChars)/2]), len(values))
	}
	var b strings.Builder
	for _, v := range values {
		pos := (v - minVal) / (maxVal - minVal)
		idx := int(math.Round(pos * float64(len(sparkChars)-1)))
		idx = max(0, min(idx, len(sparkChars)-1))
		b.WriteByte(sparkChars[idx])
	}
	return b.String()
}

// HistorySeries splits a metrics history into WPM and accuracy series.
func HistorySeries(history []model.MetricsSnapshot) (wpm, accuracy []float64) {
	wpm = make([]float64, len(history))
	accuracy = make([]float64, len(history))
	for i, h := range history {
		wpm[i] = float64(h.WPM)
		accuracy[i] = float64(h.Accuracy)
	}
	return wpm, accuracy
}

// ResultConsistency scores the WPM history of a result.
func ResultConsistency(r model.TestResult) int {
	wpm, _ := HistorySeries(r.History)
	return Consistency(wpm)
}

// ResultNetWPM applies the error penalty to a result's WPM.
func ResultNetWPM(r model.TestResult) int {
	minutes := float64(r.Performance.TimeElapsed) / 60
	return NetWPM(float64(r.Performance.WPM), len(r.Errors), minutes)
}

// ResultErrorRate returns errors per minute for a result.
func ResultErrorRate(r model.TestResult) int {
	minutes := float64(r.Performance.TimeElapsed) / 60
	return ErrorRate(len(r.Errors), minutes)
}

// RenderSummary prints a summary of the attempts made in one session.
func RenderSummary(w io.Writer, results []model.TestResult) error {
	if len(results) == 0 {
		_, err := fmt.Fprintln(w, "No tests completed.")
		return err
	}
	var totalWPM, totalAcc float64
	best := 0
	wpms := make([]float64, 0, len(results))
	for _, r := range results {
		totalWPM += float64(r.Performance.WPM)
		totalAcc += float64(r.Performance.Accuracy)
		best = max(best, r.Performance.WPM)
		wpms = append(wpms, float64(r.Performance.WPM))
	}
	count := float64(len(results))
	lines := []string{
		"Summary",
		fmt.Sprintf("Tests: %d", len(results)),
		fmt.Sprintf("Avg WPM: %.1f", totalWPM/count),
		fmt.Sprintf("Best WPM: %d", best),
		fmt.Sprintf("Avg Accuracy: %.1f%%", totalAcc/count),
	}
	if len(wpms) > 1 {
		lines = append(lines, fmt.Sprintf("Trend: %s", Sparkline(wpms)))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, "")
	return err
}

// RenderHistoryCurves plots WPM and accuracy over the course of one attempt.
func RenderHistoryCurves(w io.Writer, history []model.MetricsSnapshot, totalWidth, height int, useColor bool) error {
	if len(history) == 0 {
		_, err := fmt.Fprintln(w, "Not enough samples to plot.")
		return err
	}
	wpm, acc := HistorySeries(history)
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "WPM and Accuracy", []Series{
		{Name: "WPM", Values: wpm},
		{Name: "Accuracy", Values: acc},
	}, width, height, useColor)
}

// RenderAttemptCurves plots per-attempt WPM across a session with a moving average.
func RenderAttemptCurves(w io.Writer, results []model.TestResult, window, totalWidth, height int, useColor bool) error {
	if len(results) < 2 {
		return nil
	}
	wpms := make([]float64, len(results))
	accs := make([]float64, len(results))
	for i, r := range results {
		wpms[i] = float64(r.Performance.WPM)
		accs[i] = float64(r.Performance.Accuracy)
	}
	width := 0
	if totalWidth > 0 {
		width = PlotWidthFor(totalWidth)
	}
	return PlotSeriesWithColor(w, "Session Attempts", []Series{
		{Name: "WPM", Values: MovingAverage(wpms, window)},
		{Name: "Accuracy", Values: MovingAverage(accs, window)},
	}, width, height, useColor)
}

// RenderErrorTable prints the error log with one row per position.
func RenderErrorTable(w io.Writer, errors []model.ErrorRecord) error {
	if len(errors) == 0 {
		_, err := fmt.Fprintln(w, "No errors recorded.")
		return err
	}
	headers := []string{"Pos", "Expected", "Typed", "Type"}
	rows := make([][]string, 0, len(errors))
	for _, e := range errors {
		rows = append(rows, []string{
			fmt.Sprintf("%d", e.Position),
			CharLabel(e.Expected),
			CharLabel(e.Typed),
			ErrorTypeLabel(e),
		})
	}
	return WriteTable(w, headers, rows, map[int]bool{0: true})
}

// WriteTable prints an aligned plain-text table. Columns in rightAlign are
// right-aligned.
func WriteTable(w io.Writer, headers []string, rows [][]string, rightAlign map[int]bool) error {
	for _, line := range formatTable(headers, rows, rightAlign) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// ErrorTypeLabel names the kind of mistype an error record describes.
func ErrorTypeLabel(e model.ErrorRecord) string {
	return string(textproc.ClassifyError(e.Typed, e.Expected))
}

// CharLabel renders a rune for tables, naming blanks.
func CharLabel(r rune) string {
	switch r {
	case 0:
		return "<none>"
	case ' ':
		return "<space>"
	}
	return string(r)
}
