package textproc

import (
	"testing"

	"github.com/verte-zerg/typesprint/internal/model"
)

func TestWordMetrics(t *testing.T) {
	if got := CountWords("  the  quick\tbrown\nfox "); got != 4 {
		t.Fatalf("expected 4 words, got %d", got)
	}
	if got := AverageWordLength("Hi, there!"); got != 3.5 {
		t.Fatalf("expected 3.5, got %v", got)
	}
	if got := AverageWordLength(""); got != 0 {
		t.Fatalf("expected 0 for empty text, got %v", got)
	}
}

func TestPunctuationDensity(t *testing.T) {
	if got := PunctuationDensity("Hi, you!"); got != 25 {
		t.Fatalf("expected 25, got %d", got)
	}
	if got := PunctuationDensity("a—b"); got != 33 {
		t.Fatalf("expected 33, got %d", got)
	}
	if got := PunctuationDensity(""); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestCommonWords(t *testing.T) {
	got := CommonWords("The cat. the dog, THE cat", 2)
	if len(got) != 2 || got[0] != "the" || got[1] != "cat" {
		t.Fatalf("unexpected common words: %v", got)
	}
}

func TestTextDifficultyLevels(t *testing.T) {
	cases := []struct {
		text  string
		score int
		level model.Difficulty
	}{
		{"a a a a", 18, model.Beginner},
		{"the cat sat on the mat", 56, model.Intermediate},
		{"Quantum, entanglement; demonstrates!", 84, model.Advanced},
	}
	for _, c := range cases {
		d := TextDifficulty(c.text)
		if d.Score != c.score || d.Level != c.level {
			t.Fatalf("TextDifficulty(%q) = %d/%s, want %d/%s", c.text, d.Score, d.Level, c.score, c.level)
		}
	}
	d := TextDifficulty("a a a a")
	if d.Factors.VocabularyDiversity != 25 || d.Factors.WordCount != 4 {
		t.Fatalf("unexpected factors: %+v", d.Factors)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := NormalizeText("  one \n\t two  three "); got != "one two three" {
		t.Fatalf("unexpected normalized text: %q", got)
	}
}

func TestCharacterPosition(t *testing.T) {
	p := CharacterPosition("ab\ncd", 3)
	if p.Before != "ab\n" || p.Current != 'c' || p.After != "d" || p.LineBreaks != 1 || p.IsEnd {
		t.Fatalf("unexpected position: %+v", p)
	}
	p = CharacterPosition("ab", 9)
	if !p.IsEnd || p.Before != "ab" || p.Current != 0 {
		t.Fatalf("unexpected end position: %+v", p)
	}
}
