// Package stats contains typing metric calculations and reporting.
package stats

import (
	"fmt"
	"math"
)

// CharsPerWord is the standard word length used for WPM.
const CharsPerWord = 5

// WPM returns words per minute for correctChars typed over seconds.
func WPM(correctChars int, seconds float64) int {
	if !(seconds > 0) {
		return 0
	}
	words := float64(correctChars) / CharsPerWord
	minutes := seconds / 60
	return roundHalfUp(words / minutes)
}

// Accuracy returns the percentage of typed characters that were correct.
func Accuracy(correct, total int) int {
	if total == 0 {
		return 100
	}
	return roundHalfUp(float64(correct) / float64(total) * 100)
}

// Progress returns how far position is through a text of totalLength, capped at 100.
func Progress(position, totalLength int) float64 {
	if totalLength == 0 {
		return 0
	}
	return math.Min(float64(position)/float64(totalLength)*100, 100)
}

// NetWPM penalizes grossWPM by errors per minute, never below zero.
func NetWPM(grossWPM float64, errors int, minutes float64) int {
	if !(minutes > 0) {
		return 0
	}
	net := roundHalfUp(grossWPM - float64(errors)/minutes)
	if net < 0 {
		return 0
	}
	return net
}

// Consistency scores how steady a WPM history is, from 0 to 100.
func Consistency(history []float64) int {
	if len(history) < 2 {
		return 100
	}
	var sum float64
	for _, v := range history {
		sum += v
	}
	mean := sum / float64(len(history))
	if mean == 0 {
		return 100
	}
	var variance float64
	for _, v := range history {
		variance += (v - mean) * (v - mean)
	}
	variance /= float64(len(history))
	score := 100 - (math.Sqrt(variance)/mean)*100
	if score < 0 {
		score = 0
	}
	if score > 100 {
		score = 100
	}
	return roundHalfUp(score)
}

// ErrorRate returns errors per minute.
func ErrorRate(errors int, minutes float64) int {
	if !(minutes > 0) {
		return 0
	}
	return roundHalfUp(float64(errors) / minutes)
}

// FormatTime renders seconds as MM:SS.
func FormatTime(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// roundHalfUp rounds .5 toward positive infinity and maps NaN/Inf to 0.
func roundHalfUp(v float64) int {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return int(math.Floor(v + 0.5))
}
