// Package model defines shared data structures.
package model

import "time"

// Difficulty names a passage difficulty level.
type Difficulty string

// Difficulty levels.
const (
	Beginner     Difficulty = "beginner"
	Intermediate Difficulty = "intermediate"
	Advanced     Difficulty = "advanced"
)

// Difficulties lists all levels in ascending order.
var Difficulties = []Difficulty{Beginner, Intermediate, Advanced}

// Valid reports whether d is a known difficulty.
func (d Difficulty) Valid() bool {
	switch d {
	case Beginner, Intermediate, Advanced:
		return true
	}
	return false
}

// Passage is the immutable text a user reproduces, plus pass-through metadata.
type Passage struct {
	ID                 string
	Difficulty         Difficulty
	Text               string
	WordCount          int
	AverageWordLength  float64
	CommonWords        []string
	PunctuationDensity int
	Source             string
	Category           string
	EstimatedWPM       int
}

// CharState classifies one passage character.
type CharState uint8

// Character states.
const (
	Untyped CharState = iota
	Correct
	Incorrect
)

func (s CharState) String() string {
	switch s {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	default:
		return "untyped"
	}
}

// ErrorRecord logs the first mistype at a position.
// Expected is 0 when the position lies past the end of the passage.
type ErrorRecord struct {
	Position  int
	Expected  rune
	Typed     rune
	Timestamp time.Time
	Corrected bool
}

// TestState is the engine lifecycle phase.
type TestState uint8

// Test states.
const (
	Ready TestState = iota
	Active
	Completed
)

func (s TestState) String() string {
	switch s {
	case Active:
		return "active"
	case Completed:
		return "completed"
	default:
		return "ready"
	}
}

// MetricsSnapshot is one history sample taken while a test is active.
type MetricsSnapshot struct {
	Timestamp time.Time
	WPM       int
	Accuracy  int
	Position  int
}

// Performance holds the final numbers of an attempt.
type Performance struct {
	WPM                 int
	Accuracy            int
	TimeElapsed         int
	TotalCharacters     int
	CorrectCharacters   int
	IncorrectCharacters int
	TotalWords          int
}

// TestResult is a snapshot of one attempt. Input is the text as it stood
// when the snapshot was taken.
type TestResult struct {
	ID          string
	Timestamp   time.Time
	Difficulty  Difficulty
	Passage     Passage
	Input       string
	Performance Performance
	Errors      []ErrorRecord
	History     []MetricsSnapshot
}

// Settings defines test session settings.
type Settings struct {
	Difficulty Difficulty
	PassageID  string
	Duration   int
	Lang       string
}
