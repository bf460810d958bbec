// Package generator builds practice text from a word pool.
package generator

import (
	"math/rand"
	"strings"
	"time"
	"unicode"
)

// Options shape generated text.
type Options struct {
	Words    int
	CapsPct  float64
	PunctPct float64
	PunctSet []rune
	// SentenceLen closes a sentence every SentenceLen words, 0 for one sentence.
	SentenceLen int
}

// DefaultOptions suit a beginner passage.
var DefaultOptions = Options{
	Words:       30,
	PunctPct:    0.08,
	PunctSet:    []rune{','},
	SentenceLen: 10,
}

// Generator produces randomized typing text.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewWithSeed(time.Now().UnixNano())
}

// NewWithSeed returns a deterministic Generator.
func NewWithSeed(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Generate selects words uniformly and joins them into sentences.
func (g *Generator) Generate(words []string, opts Options) string {
	if len(words) == 0 || opts.Words <= 0 {
		return ""
	}
	picked := make([]string, 0, opts.Words)
	for i := 0; i < opts.Words; i++ {
		picked = append(picked, words[g.rnd.Intn(len(words))])
	}
	return g.compose(picked, opts)
}

// GenerateWeighted selects words with a bias toward weak characters. Each
// weak rune in a word adds factor to its base weight of one.
func (g *Generator) GenerateWeighted(words []string, opts Options, weakSet map[rune]struct{}, factor float64) string {
	if len(words) == 0 || opts.Words <= 0 {
		return ""
	}
	weights := make([]float64, len(words))
	total := 0.0
	for i, word := range words {
		weakCount := 0
		for _, r := range word {
			if _, ok := weakSet[unicode.ToLower(r)]; ok {
				weakCount++
			}
		}
		w := 1.0 + float64(weakCount)*factor
		weights[i] = w
		total += w
	}

	picked := make([]string, 0, opts.Words)
	for i := 0; i < opts.Words; i++ {
		r := g.rnd.Float64() * total
		acc := 0.0
		idx := len(words) - 1
		for j, w := range weights {
			acc += w
			if r <= acc {
				idx = j
				break
			}
		}
		picked = append(picked, words[idx])
	}
	return g.compose(picked, opts)
}

// compose capitalizes sentence starts, sprinkles punctuation and ends every
// sentence with a period.
func (g *Generator) compose(words []string, opts Options) string {
	var b strings.Builder
	for i, word := range words {
		first := opts.SentenceLen <= 0 && i == 0 || opts.SentenceLen > 0 && i%opts.SentenceLen == 0
		last := i == len(words)-1 || opts.SentenceLen > 0 && (i+1)%opts.SentenceLen == 0
		if first {
			word = capitalize(word)
		} else {
			word = applyCaps(g.rnd, word, opts.CapsPct)
		}
		if last {
			word += "."
		} else {
			word = applyPunct(g.rnd, word, opts.PunctPct, opts.PunctSet)
		}
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(word)
	}
	return b.String()
}

func capitalize(word string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}

func applyCaps(rnd *rand.Rand, word string, capsPct float64) string {
	if capsPct <= 0 {
		return word
	}
	if rnd.Float64() > capsPct {
		return word
	}
	return capitalize(word)
}

func applyPunct(rnd *rand.Rand, word string, punctPct float64, punctSet []rune) string {
	if punctPct <= 0 || len(punctSet) == 0 {
		return word
	}
	if rnd.Float64() > punctPct {
		return word
	}
	punct := punctSet[rnd.Intn(len(punctSet))]
	return word + string(punct)
}
