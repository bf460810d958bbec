package passage

import (
	"log/slog"

	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/textproc"
	"github.com/verte-zerg/typesprint/internal/wordlist"
)

// IDs of generated passages.
const (
	FallbackID = "generated"
	DrillID    = "drill"
)

const (
	drillFactor = 3.0
	commonLimit = 10
)

// Builder generates passages from a catalog's vocabulary.
type Builder struct {
	words []string
	gen   *generator.Generator
}

// NewBuilder collects the catalog's vocabulary filtered for lang.
func NewBuilder(c *Catalog, lang string, gen *generator.Generator) (*Builder, error) {
	words, err := wordlist.FromTexts(c.Texts(), wordlist.FilterForLang(lang))
	if err != nil {
		return nil, err
	}
	if gen == nil {
		gen = generator.New()
	}
	return &Builder{words: words, gen: gen}, nil
}

// Words returns the size of the vocabulary.
func (b *Builder) Words() int {
	return len(b.words)
}

// Fallback builds a plain beginner passage for when a lookup fails.
func (b *Builder) Fallback() model.Passage {
	text := b.gen.Generate(b.words, generator.DefaultOptions)
	p := describe(FallbackID, text, "Generated practice text", "generated")
	p.Difficulty = model.Beginner
	return p
}

// Drill builds a passage biased toward words containing weak characters.
// With no weak characters it is an ordinary generated passage.
func (b *Builder) Drill(weak map[rune]struct{}) model.Passage {
	text := b.gen.GenerateWeighted(b.words, generator.DefaultOptions, weak, drillFactor)
	slog.Debug("drill generated", "weak", len(weak), "words", generator.DefaultOptions.Words)
	return describe(DrillID, text, "Generated focus drill", "drill")
}

// Resolve returns the passage with id, or falls back to a generated one
// when id is unknown.
func (b *Builder) Resolve(c *Catalog, id string) model.Passage {
	if p, ok := c.ByID(id); ok {
		return p
	}
	slog.Warn("passage not found, using generated text", "passage", id)
	return b.Fallback()
}

// describe fills metadata for generated text.
func describe(id, text, source, category string) model.Passage {
	d := textproc.TextDifficulty(text)
	return model.Passage{
		ID:                 id,
		Difficulty:         d.Level,
		Text:               text,
		WordCount:          d.Factors.WordCount,
		AverageWordLength:  d.Factors.AvgWordLength,
		CommonWords:        textproc.CommonWords(text, commonLimit),
		PunctuationDensity: d.Factors.PunctuationDensity,
		Source:             source,
		Category:           category,
	}
}
