package stats

import (
	"fmt"
	"io"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/textproc"
)

// Report contains precomputed figures for one completed attempt.
type Report struct {
	Result      model.TestResult
	NetWPM      int
	Consistency int
	ErrorRate   int
	WeakChars   []rune
	WeakCounts  []int
	TimeLabel   string
	SampleCount int
	Overtyped   int
	// Final compares the input as it stood at the end with the passage.
	Final       textproc.Analysis
}

// BuildReport derives display figures from a result.
func BuildReport(r model.TestResult, topChars int) Report {
	chars, counts := TopMistypedChars(r.Errors, topChars)
	overtyped := 0
	for _, e := range r.Errors {
		if e.Expected == 0 {
			overtyped++
		}
	}
	return Report{
		Result:      r,
		NetWPM:      ResultNetWPM(r),
		Consistency: ResultConsistency(r),
		ErrorRate:   ResultErrorRate(r),
		WeakChars:   chars,
		WeakCounts:  counts,
		TimeLabel:   FormatTime(r.Performance.TimeElapsed),
		SampleCount: len(r.History),
		Overtyped:   overtyped,
		Final:       textproc.AnalyzeErrors(r.Input, r.Passage.Text),
	}
}

// Render writes the report as plain text.
func (rep Report) Render(w io.Writer) error {
	p := rep.Result.Performance
	lines := []string{
		fmt.Sprintf("Passage: %s (%s)", rep.Result.Passage.ID, rep.Result.Difficulty),
		fmt.Sprintf("WPM: %d (net %d)", p.WPM, rep.NetWPM),
		fmt.Sprintf("Accuracy: %d%%", p.Accuracy),
		fmt.Sprintf("Time: %s", rep.TimeLabel),
		fmt.Sprintf("Characters: %d typed, %d correct, %d incorrect", p.TotalCharacters, p.CorrectCharacters, p.IncorrectCharacters),
		fmt.Sprintf("Words: %d", p.TotalWords),
		fmt.Sprintf("Errors: %d (%d/min)", len(rep.Result.Errors), rep.ErrorRate),
		fmt.Sprintf("Consistency: %d%%", rep.Consistency),
		fmt.Sprintf("Left uncorrected: %d substituted, %d overtyped, %d untyped",
			rep.Final.Count(textproc.Substitution),
			rep.Final.Count(textproc.Insertion),
			rep.Final.Count(textproc.Omission)),
	}
	if len(rep.WeakChars) > 0 {
		line := "Weak keys:"
		for i, ch := range rep.WeakChars {
			line += fmt.Sprintf(" %s×%d", CharLabel(ch), rep.WeakCounts[i])
		}
		lines = append(lines, line)
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
