package textproc

import (
	"math"
	"sort"
	"strings"

	"github.com/verte-zerg/typesprint/internal/model"
)

// SplitWords splits text on runs of whitespace.
func SplitWords(text string) []string {
	return strings.Fields(text)
}

// CountWords returns the number of whitespace-separated words.
func CountWords(text string) int {
	return len(SplitWords(text))
}

// AverageWordLength returns the mean word length, ignoring punctuation,
// rounded to one decimal.
func AverageWordLength(text string) float64 {
	words := SplitWords(text)
	if len(words) == 0 {
		return 0
	}
	total := 0
	for _, w := range words {
		total += len([]rune(stripNonWord(w)))
	}
	return math.Round(float64(total)/float64(len(words))*10) / 10
}

// PunctuationDensity returns the rounded percentage of punctuation characters.
func PunctuationDensity(text string) int {
	runes := []rune(text)
	if len(runes) == 0 {
		return 0
	}
	count := 0
	for _, r := range runes {
		if isPunctuation(r) {
			count++
		}
	}
	return int(math.Floor(float64(count)/float64(len(runes))*100 + 0.5))
}

// CommonWords returns up to limit lowercase words ordered by frequency.
// Ties keep first-seen order.
func CommonWords(text string, limit int) []string {
	counts := map[string]int{}
	var order []string
	for _, w := range SplitWords(strings.ToLower(text)) {
		clean := stripNonWord(w)
		if clean == "" {
			continue
		}
		if counts[clean] == 0 {
			order = append(order, clean)
		}
		counts[clean]++
	}
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if limit >= 0 && len(order) > limit {
		order = order[:limit]
	}
	return order
}

// DifficultyFactors are the inputs to a difficulty score.
type DifficultyFactors struct {
	AvgWordLength      float64
	PunctuationDensity int
	// VocabularyDiversity is the percentage of unique words.
	VocabularyDiversity int
	WordCount           int
}

// Difficulty is a scored estimate of how hard a text is to type.
type Difficulty struct {
	Score   int
	Level   model.Difficulty
	Factors DifficultyFactors
}

// TextDifficulty scores text from 0 to 100 on word length, punctuation and
// vocabulary diversity.
func TextDifficulty(text string) Difficulty {
	words := SplitWords(text)
	avg := AverageWordLength(text)
	punct := PunctuationDensity(text)

	unique := map[string]struct{}{}
	for _, w := range SplitWords(strings.ToLower(text)) {
		unique[w] = struct{}{}
	}
	diversity := 0.0
	if len(words) > 0 {
		diversity = float64(len(unique)) / float64(len(words))
	}

	score := math.Min(avg*8, 40) + math.Min(float64(punct)*0.5, 20) + math.Min(diversity*40, 40)
	return Difficulty{
		Score: int(math.Floor(score + 0.5)),
		Level: levelFor(score),
		Factors: DifficultyFactors{
			AvgWordLength:       avg,
			PunctuationDensity:  punct,
			VocabularyDiversity: int(math.Floor(diversity*100 + 0.5)),
			WordCount:           len(words),
		},
	}
}

func levelFor(score float64) model.Difficulty {
	switch {
	case score < 30:
		return model.Beginner
	case score < 60:
		return model.Intermediate
	default:
		return model.Advanced
	}
}

// NormalizeText collapses whitespace runs to single spaces and trims the ends.
func NormalizeText(text string) string {
	return strings.Join(strings.Fields(text), " ")
}

// Position splits text around a cursor.
type Position struct {
	Before     string
	Current    rune
	After      string
	IsEnd      bool
	LineBreaks int
}

// CharacterPosition describes the text around position, counted in runes.
func CharacterPosition(text string, position int) Position {
	runes := []rune(text)
	position = max(0, position)
	p := Position{IsEnd: position >= len(runes)}
	if p.IsEnd {
		p.Before = text
	} else {
		p.Before = string(runes[:position])
		p.Current = runes[position]
		p.After = string(runes[position+1:])
	}
	p.LineBreaks = strings.Count(p.Before, "\n")
	return p
}

func stripNonWord(word string) string {
	return strings.Map(func(r rune) rune {
		if isWordRune(r) {
			return r
		}
		return -1
	}, word)
}

