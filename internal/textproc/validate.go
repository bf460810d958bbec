// Package textproc compares typed text against a passage and derives text metrics.
package textproc

import "unicode"

// Validation describes one typed character checked against the expected one.
type Validation struct {
	Typed          rune
	Expected       rune
	IsCorrect      bool
	IsSpace        bool
	IsPunctuation  bool
	IsAlphanumeric bool
}

// ErrorType classifies a mismatch between input and passage.
type ErrorType string

// Error types.
const (
	Omission     ErrorType = "omission"
	Insertion    ErrorType = "insertion"
	Substitution ErrorType = "substitution"
)

// ErrorDetail is one mismatching position. A zero rune means absent.
type ErrorDetail struct {
	Position int
	Typed    rune
	Expected rune
	Type     ErrorType
}

// Analysis summarizes all mismatches between input and passage.
type Analysis struct {
	Errors      []ErrorDetail
	TotalErrors int
	// ErrorRate is TotalErrors as a percentage of the expected length.
	ErrorRate float64
}

// ValidateCharacter compares typed to expected with strict equality.
// The class flags describe the expected character.
func ValidateCharacter(typed, expected rune) Validation {
	return Validation{
		Typed:          typed,
		Expected:       expected,
		IsCorrect:      typed == expected,
		IsSpace:        expected == ' ',
		IsPunctuation:  isPunctuation(expected),
		IsAlphanumeric: isASCIIAlnum(expected),
	}
}

// AnalyzeErrors walks both texts up to the longer length and records every
// position where they differ.
func AnalyzeErrors(input, expected string) Analysis {
	in := []rune(input)
	want := []rune(expected)
	n := max(len(in), len(want))

	var errs []ErrorDetail
	for i := 0; i < n; i++ {
		var typed, exp rune
		if i < len(in) {
			typed = in[i]
		}
		if i < len(want) {
			exp = want[i]
		}
		if typed == exp {
			continue
		}
		errs = append(errs, ErrorDetail{
			Position: i,
			Typed:    typed,
			Expected: exp,
			Type:     ClassifyError(typed, exp),
		})
	}

	a := Analysis{Errors: errs, TotalErrors: len(errs)}
	if len(want) > 0 {
		a.ErrorRate = float64(len(errs)) / float64(len(want)) * 100
	}
	return a
}

// Count returns how many errors are of type t.
func (a Analysis) Count(t ErrorType) int {
	n := 0
	for _, e := range a.Errors {
		if e.Type == t {
			n++
		}
	}
	return n
}

// ClassifyError names the kind of mismatch between typed and expected,
// where a zero rune means the character is absent.
func ClassifyError(typed, expected rune) ErrorType {
	switch {
	case typed == 0:
		return Omission
	case expected == 0:
		return Insertion
	default:
		return Substitution
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isPunctuation(r rune) bool {
	if r == 0 {
		return false
	}
	return !isWordRune(r) && !unicode.IsSpace(r)
}

func isASCIIAlnum(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9')
}
