package textproc

import (
	"math"
	"testing"
)

func TestValidateCharacterStrict(t *testing.T) {
	v := ValidateCharacter('a', 'A')
	if v.IsCorrect {
		t.Fatalf("expected case-sensitive mismatch")
	}
	if !v.IsAlphanumeric || v.IsPunctuation || v.IsSpace {
		t.Fatalf("unexpected classes for 'A': %+v", v)
	}
	if v := ValidateCharacter('é', 'é'); !v.IsCorrect {
		t.Fatalf("expected accented letters to match")
	}
	if v := ValidateCharacter('-', '—'); v.IsCorrect || !v.IsPunctuation {
		t.Fatalf("expected em-dash to be punctuation and differ from hyphen: %+v", v)
	}
	if v := ValidateCharacter('x', ' '); !v.IsSpace || v.IsPunctuation {
		t.Fatalf("expected space class: %+v", v)
	}
}

func TestAnalyzeErrorsTypes(t *testing.T) {
	a := AnalyzeErrors("helo!", "hello")
	if a.TotalErrors != 2 {
		t.Fatalf("expected 2 errors, got %d", a.TotalErrors)
	}
	if a.Errors[0].Position != 3 || a.Errors[0].Type != Substitution {
		t.Fatalf("unexpected first error: %+v", a.Errors[0])
	}
	if math.Abs(a.ErrorRate-40) > 1e-9 {
		t.Fatalf("expected error rate 40, got %v", a.ErrorRate)
	}

	a = AnalyzeErrors("abcx", "abc")
	if len(a.Errors) != 1 || a.Errors[0].Type != Insertion || a.Errors[0].Expected != 0 {
		t.Fatalf("expected one insertion, got %+v", a.Errors)
	}

	a = AnalyzeErrors("ab", "abc")
	if len(a.Errors) != 1 || a.Errors[0].Type != Omission || a.Errors[0].Typed != 0 {
		t.Fatalf("expected one omission, got %+v", a.Errors)
	}

	a = AnalyzeErrors("x", "")
	if a.ErrorRate != 0 {
		t.Fatalf("expected zero rate for empty passage, got %v", a.ErrorRate)
	}
}

func TestAnalyzeErrorsCountsRunes(t *testing.T) {
	a := AnalyzeErrors("café", "cafe")
	if a.TotalErrors != 1 || a.Errors[0].Position != 3 {
		t.Fatalf("expected a single error at rune 3, got %+v", a.Errors)
	}
}

func TestClassifyErrorAndCount(t *testing.T) {
	if ClassifyError('x', 'a') != Substitution || ClassifyError('x', 0) != Insertion || ClassifyError(0, 'a') != Omission {
		t.Fatalf("unexpected error classification")
	}
	a := AnalyzeErrors("cxt doggy", "cat dog!")
	if a.Count(Substitution) != 2 || a.Count(Insertion) != 1 || a.Count(Omission) != 0 {
		t.Fatalf("unexpected counts in %+v", a.Errors)
	}
}
