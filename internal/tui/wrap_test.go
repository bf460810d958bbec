package tui

import (
	"strings"
	"testing"

	"github.com/verte-zerg/typesprint/internal/model"
)

func TestBuildStyledRunesCursor(t *testing.T) {
	target := []rune("ab")
	states := []model.CharState{model.Correct, model.Untyped}

	runes := buildStyledRunes(target, states, nil, 1)
	if len(runes) != 2 {
		t.Fatalf("expected 2 runes, got %d", len(runes))
	}
	if runes[0].class != classCorrect || runes[0].cursor {
		t.Fatalf("expected plain correct first rune, got %+v", runes[0])
	}
	if !runes[1].cursor || runes[1].class != classCurrentWord {
		t.Fatalf("expected cursor on current word rune, got %+v", runes[1])
	}
}

func TestBuildStyledRunesNoCursorWhenComplete(t *testing.T) {
	runes := buildStyledRunes([]rune("a"), []model.CharState{model.Correct}, nil, -1)
	if len(runes) != 1 || runes[0].cursor || runes[0].class != classCorrect {
		t.Fatalf("unexpected runes %+v", runes)
	}
	if runes[0].s != correctStyle.Render("a") {
		t.Fatalf("expected correct style for completed rune")
	}
}

func TestBuildStyledRunesKeepsTargetOnMistype(t *testing.T) {
	runes := buildStyledRunes([]rune("ab"), []model.CharState{model.Correct, model.Incorrect}, nil, -1)
	if runes[1].class != classIncorrect || runes[1].r != 'b' {
		t.Fatalf("expected the expected rune shown as incorrect, got %+v", runes[1])
	}
}

func TestBuildStyledRunesWordHighlighting(t *testing.T) {
	target := []rune("one two")
	states := make([]model.CharState, len(target))
	states[0] = model.Correct

	runes := buildStyledRunes(target, states, nil, 1)
	if runes[0].class != classCorrect {
		t.Fatalf("expected correct class for typed rune")
	}
	if runes[1].class != classCurrentWord || runes[2].class != classCurrentWord {
		t.Fatalf("expected current word class for the rest of the word")
	}
	if runes[3].class != classPending || !runes[3].isSpace {
		t.Fatalf("expected pending space")
	}
	if runes[4].class != classPending || runes[6].class != classPending {
		t.Fatalf("expected pending class for next word")
	}
}

func TestBuildStyledRunesWrongSpaceDot(t *testing.T) {
	states := []model.CharState{model.Correct, model.Incorrect, model.Untyped}
	runes := buildStyledRunes([]rune("a b"), states, nil, 2)
	if runes[1].r != wrongSpace || runes[1].class != classIncorrect || !runes[1].isSpace {
		t.Fatalf("expected dot for wrong space, got %+v", runes[1])
	}
}

func TestBuildStyledRunesOvertyping(t *testing.T) {
	states := []model.CharState{model.Correct, model.Correct}
	runes := buildStyledRunes([]rune("ab"), states, []rune("c "), -1)
	if len(runes) != 4 {
		t.Fatalf("expected overflow runes appended, got %d", len(runes))
	}
	if runes[2].class != classOvertyped || runes[3].r != wrongSpace {
		t.Fatalf("unexpected overflow runes %+v %+v", runes[2], runes[3])
	}
}

func TestWrapStyledRunesBreaksAtSpaces(t *testing.T) {
	target := []rune("aaa bbb ccc")
	runes := buildStyledRunes(target, make([]model.CharState, len(target)), nil, -1)
	lines := strings.Split(wrapStyledRunes(runes, 8), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %q", lines)
	}
	if lines[0] != "aaa bbb " || lines[1] != "ccc" {
		t.Fatalf("unexpected wrap %q", lines)
	}
}

func TestWrapStyledRunesSplitsLongWord(t *testing.T) {
	target := []rune("abcdefgh")
	runes := buildStyledRunes(target, make([]model.CharState, len(target)), nil, -1)
	lines := strings.Split(wrapStyledRunes(runes, 3), "\n")
	if len(lines) != 3 || lines[0] != "abc" || lines[2] != "gh" {
		t.Fatalf("unexpected wrap %q", lines)
	}
}

func TestWrapStyledRunesWideRunes(t *testing.T) {
	target := []rune("日本 語")
	runes := buildStyledRunes(target, make([]model.CharState, len(target)), nil, -1)
	if runes[0].width != 2 {
		t.Fatalf("expected double-width rune, got %d", runes[0].width)
	}
	lines := strings.Split(wrapStyledRunes(runes, 5), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected wide runes to wrap, got %q", lines)
	}
}
