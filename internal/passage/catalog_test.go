package passage

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/verte-zerg/typesprint/internal/model"
)

func mustBuiltin(t *testing.T) *Catalog {
	t.Helper()
	c, err := Builtin()
	if err != nil {
		t.Fatalf("Builtin failed: %v", err)
	}
	return c
}

func TestBuiltinIntegrity(t *testing.T) {
	c := mustBuiltin(t)
	if c.Total() != 17 {
		t.Fatalf("expected 17 passages, got %d", c.Total())
	}
	counts := map[model.Difficulty]int{model.Beginner: 5, model.Intermediate: 6, model.Advanced: 6}
	for d, want := range counts {
		if got := c.Count(d); got != want {
			t.Fatalf("expected %d %s passages, got %d", want, d, got)
		}
	}
	for _, p := range c.All() {
		if strings.TrimSpace(p.Text) == "" || p.Source == "" {
			t.Fatalf("passage %s is missing text or source", p.ID)
		}
		if !strings.HasPrefix(p.ID, string(p.Difficulty)+"-") {
			t.Fatalf("passage %s does not match difficulty %s", p.ID, p.Difficulty)
		}
	}
	if ds := c.Difficulties(); len(ds) != 3 || ds[0] != model.Beginner || ds[2] != model.Advanced {
		t.Fatalf("unexpected difficulties: %v", ds)
	}
}

func TestByIDAndRandom(t *testing.T) {
	c := mustBuiltin(t)
	p, ok := c.ByID("intermediate-2")
	if !ok || p.Difficulty != model.Intermediate {
		t.Fatalf("expected intermediate-2, got %+v ok=%v", p, ok)
	}
	if _, ok := c.ByID("missing"); ok {
		t.Fatalf("expected missing id to fail")
	}
	rnd := rand.New(rand.NewSource(3))
	for i := 0; i < 20; i++ {
		p, ok := c.Random(model.Advanced, rnd)
		if !ok || p.Difficulty != model.Advanced {
			t.Fatalf("expected an advanced passage, got %+v", p)
		}
	}
	if _, ok := c.Random(model.Difficulty("expert"), rnd); ok {
		t.Fatalf("expected unknown level to yield nothing")
	}
}

func TestAllReturnsCopy(t *testing.T) {
	c := mustBuiltin(t)
	all := c.All()
	all[0].Text = "changed"
	if c.All()[0].Text == "changed" {
		t.Fatalf("expected All to return a copy")
	}
}

func TestParseRejectsBadCatalogs(t *testing.T) {
	cases := map[string]string{
		"empty":      ``,
		"duplicate":  "[[passage]]\nid = \"a\"\ndifficulty = \"beginner\"\ntext = \"x\"\n[[passage]]\nid = \"a\"\ndifficulty = \"beginner\"\ntext = \"y\"\n",
		"difficulty": "[[passage]]\nid = \"a\"\ndifficulty = \"expert\"\ntext = \"x\"\n",
		"text":       "[[passage]]\nid = \"a\"\ndifficulty = \"beginner\"\n",
		"unknown":    "[[passage]]\nid = \"a\"\ndifficulty = \"beginner\"\ntext = \"x\"\nauthor = \"me\"\n",
		"syntax":     "[[passage]\n",
	}
	for name, data := range cases {
		if _, err := Parse([]byte(data)); err == nil {
			t.Fatalf("%s: expected parse error", name)
		}
	}
}

func TestParseCollapsesWhitespace(t *testing.T) {
	c, err := Parse([]byte("[[passage]]\nid = \"a\"\ndifficulty = \"beginner\"\ntext = \"\"\"\n  one  two\nthree \"\"\"\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	p, _ := c.ByID("a")
	if p.Text != "one two three" {
		t.Fatalf("expected collapsed text, got %q", p.Text)
	}
	if _, err := Parse([]byte("[[passage]]\nid = \"b\"\ndifficulty = \"beginner\"\ntext = \"   \"\n")); err == nil {
		t.Fatalf("expected blank text to be rejected")
	}
}
