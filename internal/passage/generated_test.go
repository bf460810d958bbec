package passage

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typesprint/internal/generator"
	"github.com/verte-zerg/typesprint/internal/model"
)

func newTestBuilder(t *testing.T) (*Catalog, *Builder) {
	t.Helper()
	c := mustBuiltin(t)
	b, err := NewBuilder(c, "en", generator.NewWithSeed(11))
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	return c, b
}

func TestFallbackIsBeginner(t *testing.T) {
	_, b := newTestBuilder(t)
	if b.Words() < 100 {
		t.Fatalf("expected a sizable vocabulary, got %d", b.Words())
	}
	p := b.Fallback()
	if p.ID != FallbackID || p.Difficulty != model.Beginner {
		t.Fatalf("unexpected fallback passage: %+v", p)
	}
	if p.WordCount != generator.DefaultOptions.Words {
		t.Fatalf("expected %d words, got %d", generator.DefaultOptions.Words, p.WordCount)
	}
	if !strings.HasSuffix(p.Text, ".") {
		t.Fatalf("expected generated text to end a sentence: %q", p.Text)
	}
}

func TestResolveFallsBack(t *testing.T) {
	c, b := newTestBuilder(t)
	if p := b.Resolve(c, "beginner-3"); p.ID != "beginner-3" {
		t.Fatalf("expected catalog passage, got %s", p.ID)
	}
	if p := b.Resolve(c, "nope"); p.ID != FallbackID {
		t.Fatalf("expected fallback for unknown id, got %s", p.ID)
	}
}

func TestDrillFavorsWeakChars(t *testing.T) {
	c, err := Parse([]byte("[[passage]]\nid = \"x\"\ndifficulty = \"beginner\"\ntext = \"zebra quiz apple mango lemon\"\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	b, err := NewBuilder(c, "en", generator.NewWithSeed(5))
	if err != nil {
		t.Fatalf("NewBuilder failed: %v", err)
	}
	p := b.Drill(map[rune]struct{}{'z': {}, 'q': {}})
	if p.ID != DrillID || p.Category != "drill" {
		t.Fatalf("unexpected drill passage: %+v", p)
	}
	hits := 0
	for _, w := range strings.Fields(strings.ToLower(p.Text)) {
		if strings.ContainsAny(w, "zq") {
			hits++
		}
	}
	// zebra and quiz carry 11 of 14 weight units.
	if hits < generator.DefaultOptions.Words/2 {
		t.Fatalf("expected weak words to dominate, got %d: %q", hits, p.Text)
	}
}
