// Package achievement derives celebrations from finished results. It never
// touches engine state.
package achievement

import (
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/stats"
)

// ID names an achievement. Titles and descriptions are localized by ID.
type ID string

// Achievements.
const (
	SpeedDemon      ID = "speedDemon"
	LightningFast   ID = "lightningFast"
	TypingMaster    ID = "typingMaster"
	Accurate        ID = "accurate"
	Sharpshooter    ID = "sharpshooter"
	Perfectionist   ID = "perfectionist"
	FlawlessVictory ID = "flawlessVictory"
	Unstoppable     ID = "unstoppable"
	FirstTest       ID = "firstTest"
	Consistent      ID = "consistent"
	Improvement     ID = "improvement"
)

var icons = map[ID]string{
	SpeedDemon:      "🚀",
	LightningFast:   "⚡",
	TypingMaster:    "👑",
	Accurate:        "✨",
	Sharpshooter:    "🏹",
	Perfectionist:   "🎯",
	FlawlessVictory: "🏆",
	Unstoppable:     "🔥",
	FirstTest:       "🌟",
	Consistent:      "📈",
	Improvement:     "📊",
}

var colors = map[ID]string{
	SpeedDemon:      "#ff6b6b",
	LightningFast:   "#feca57",
	TypingMaster:    "#48dbfb",
	Accurate:        "#00d2d3",
	Sharpshooter:    "#5f27cd",
	Perfectionist:   "#1dd1a1",
	FlawlessVictory: "#ffd700",
	Unstoppable:     "#ff3838",
	FirstTest:       "#3742fa",
	Consistent:      "#2ed573",
	Improvement:     "#ff6348",
}

// Icon returns the badge glyph for id.
func (id ID) Icon() string { return icons[id] }

// Color returns the badge color for id as a hex string.
func (id ID) Color() string { return colors[id] }

const (
	consistentScore   = 85
	consistentSamples = 10
)

// Detect returns the achievements earned by a finished attempt, in display
// order. previousBest is the best WPM earlier in the session, 0 if none.
func Detect(wpm, accuracy, previousBest int) []ID {
	var out []ID
	switch {
	case wpm >= 120:
		out = append(out, TypingMaster)
	case wpm >= 100:
		out = append(out, LightningFast)
	case wpm >= 80:
		out = append(out, SpeedDemon)
	}
	switch {
	case accuracy == 100:
		out = append(out, Perfectionist)
	case accuracy >= 98:
		out = append(out, Sharpshooter)
	case accuracy >= 95:
		out = append(out, Accurate)
	}
	switch {
	case wpm >= 100 && accuracy >= 98:
		out = append(out, Unstoppable)
	case wpm >= 80 && accuracy == 100:
		out = append(out, FlawlessVictory)
	}
	if wpm > 0 {
		out = append(out, FirstTest)
	}
	if previousBest > 0 && wpm > previousBest {
		out = append(out, Improvement)
	}
	return out
}

// ForResult is Detect plus the consistency badge, which needs the metrics
// history of the attempt.
func ForResult(r model.TestResult, previousBest int) []ID {
	out := Detect(r.Performance.WPM, r.Performance.Accuracy, previousBest)
	if len(r.History) >= consistentSamples && stats.ResultConsistency(r) >= consistentScore {
		out = append(out, Consistent)
	}
	return out
}
