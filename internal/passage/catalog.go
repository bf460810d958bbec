// Package passage holds the built-in passage catalog and builds generated
// passages from its vocabulary.
package passage

import (
	"bytes"
	_ "embed"
	"fmt"
	"math/rand"

	"github.com/BurntSushi/toml"

	"github.com/verte-zerg/typesprint/internal/model"
	"github.com/verte-zerg/typesprint/internal/textproc"
)

//go:embed passages.toml
var builtin []byte

type record struct {
	ID                 string   `toml:"id"`
	Difficulty         string   `toml:"difficulty"`
	Text               string   `toml:"text"`
	WordCount          int      `toml:"word_count"`
	AverageWordLength  float64  `toml:"average_word_length"`
	CommonWords        []string `toml:"common_words"`
	PunctuationDensity int      `toml:"punctuation_density"`
	Source             string   `toml:"source"`
	Category           string   `toml:"category"`
	EstimatedWPM       int      `toml:"estimated_wpm"`
}

type document struct {
	Passages []record `toml:"passage"`
}

// Catalog is an immutable, ordered set of passages.
type Catalog struct {
	passages []model.Passage
	byID     map[string]int
}

// Builtin decodes the embedded catalog.
func Builtin() (*Catalog, error) {
	c, err := Parse(builtin)
	if err != nil {
		return nil, fmt.Errorf("builtin passages: %w", err)
	}
	return c, nil
}

// Parse decodes a TOML catalog and validates every entry. Passage text has
// its whitespace collapsed, so multi-line TOML strings read as one line.
func Parse(data []byte) (*Catalog, error) {
	var doc document
	meta, err := toml.NewDecoder(bytes.NewReader(data)).Decode(&doc)
	if err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("unknown catalog keys: %v", undecoded)
	}
	if len(doc.Passages) == 0 {
		return nil, fmt.Errorf("catalog has no passages")
	}
	c := &Catalog{byID: make(map[string]int, len(doc.Passages))}
	for i, r := range doc.Passages {
		p, err := r.passage()
		if err != nil {
			return nil, fmt.Errorf("passage %d: %w", i+1, err)
		}
		if _, dup := c.byID[p.ID]; dup {
			return nil, fmt.Errorf("passage %d: duplicate id %q", i+1, p.ID)
		}
		c.byID[p.ID] = len(c.passages)
		c.passages = append(c.passages, p)
	}
	return c, nil
}

func (r record) passage() (model.Passage, error) {
	if r.ID == "" {
		return model.Passage{}, fmt.Errorf("id is required")
	}
	d := model.Difficulty(r.Difficulty)
	if !d.Valid() {
		return model.Passage{}, fmt.Errorf("%s: unknown difficulty %q", r.ID, r.Difficulty)
	}
	text := textproc.NormalizeText(r.Text)
	if text == "" {
		return model.Passage{}, fmt.Errorf("%s: text is required", r.ID)
	}
	return model.Passage{
		ID:                 r.ID,
		Difficulty:         d,
		Text:               text,
		WordCount:          r.WordCount,
		AverageWordLength:  r.AverageWordLength,
		CommonWords:        append([]string(nil), r.CommonWords...),
		PunctuationDensity: r.PunctuationDensity,
		Source:             r.Source,
		Category:           r.Category,
		EstimatedWPM:       r.EstimatedWPM,
	}, nil
}

// All returns every passage in catalog order.
func (c *Catalog) All() []model.Passage {
	return append([]model.Passage(nil), c.passages...)
}

// ByDifficulty returns the passages of level d in catalog order.
func (c *Catalog) ByDifficulty(d model.Difficulty) []model.Passage {
	var out []model.Passage
	for _, p := range c.passages {
		if p.Difficulty == d {
			out = append(out, p)
		}
	}
	return out
}

// ByID looks up a passage.
func (c *Catalog) ByID(id string) (model.Passage, bool) {
	i, ok := c.byID[id]
	if !ok {
		return model.Passage{}, false
	}
	return c.passages[i], true
}

// Random picks a passage of level d.
func (c *Catalog) Random(d model.Difficulty, rnd *rand.Rand) (model.Passage, bool) {
	list := c.ByDifficulty(d)
	if len(list) == 0 {
		return model.Passage{}, false
	}
	return list[rnd.Intn(len(list))], true
}

// Count returns how many passages have level d.
func (c *Catalog) Count(d model.Difficulty) int {
	return len(c.ByDifficulty(d))
}

// Total returns the number of passages.
func (c *Catalog) Total() int {
	return len(c.passages)
}

// Difficulties returns the levels present, easiest first.
func (c *Catalog) Difficulties() []model.Difficulty {
	var out []model.Difficulty
	for _, d := range model.Difficulties {
		if c.Count(d) > 0 {
			out = append(out, d)
		}
	}
	return out
}

// Texts returns every passage text.
func (c *Catalog) Texts() []string {
	out := make([]string, len(c.passages))
	for i, p := range c.passages {
		out[i] = p.Text
	}
	return out
}
