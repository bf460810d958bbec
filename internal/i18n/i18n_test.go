package i18n

import (
	"context"
	"testing"

	"github.com/BurntSushi/toml"
)

func initLang(t *testing.T, lang string) context.Context {
	t.Helper()
	if err := Init(lang); err != nil {
		t.Fatalf("Init(%q): %v", lang, err)
	}
	return WithLocalizer(context.Background(), NewLocalizer(lang))
}

func TestTranslateEnglish(t *testing.T) {
	ctx := initLang(t, "en")
	if got := T(ctx, "ResultsTitle"); got != "Results" {
		t.Errorf("T(ResultsTitle) = %q, want 'Results'", got)
	}
	if got := T(ctx, "UrgencyCritical"); got != "Final seconds!" {
		t.Errorf("T(UrgencyCritical) = %q, want 'Final seconds!'", got)
	}
}

func TestTranslateSpanish(t *testing.T) {
	ctx := initLang(t, "es")
	if got := T(ctx, "ResultsTitle"); got != "Resultados" {
		t.Errorf("T(ResultsTitle) = %q, want 'Resultados'", got)
	}
	if got := Td(ctx, "ResultsAttempt", map[string]any{"Number": 3, "Ordinal": "3rd"}); got != "Intento 3" {
		t.Errorf("Td(ResultsAttempt) = %q, want 'Intento 3'", got)
	}
}

func TestPluralTranslation(t *testing.T) {
	ctx := initLang(t, "en")
	if got := Tp(ctx, "PassagesAvailable", 1); got != "1 passage" {
		t.Errorf("Tp(PassagesAvailable, 1) = %q", got)
	}
	if got := Tp(ctx, "PassagesAvailable", 6); got != "6 passages" {
		t.Errorf("Tp(PassagesAvailable, 6) = %q", got)
	}
}

func TestMissingTranslationReturnsID(t *testing.T) {
	ctx := initLang(t, "en")
	if got := T(ctx, "NoSuchMessage"); got != "NoSuchMessage" {
		t.Errorf("expected message id back, got %q", got)
	}
}

func TestContextWithoutLocalizerUsesEnglish(t *testing.T) {
	initLang(t, "es")
	if got := T(context.Background(), "StatTime"); got != "Time" {
		t.Errorf("expected english fallback, got %q", got)
	}
}

func TestInitRejectsBadTag(t *testing.T) {
	if err := Init("not a language!"); err == nil {
		t.Fatalf("expected error for malformed tag")
	}
}

func TestMatch(t *testing.T) {
	cases := map[string]string{
		"es":          "es",
		"es-MX":       "es",
		"en_US.UTF-8": "en",
		"fr":          "en",
		"":            "en",
	}
	for in, want := range cases {
		if got := Match(in); got != want {
			t.Errorf("Match(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestLocalesHaveSameKeys(t *testing.T) {
	load := func(name string) map[string]any {
		data, err := localeFS.ReadFile("locales/" + name)
		if err != nil {
			t.Fatalf("read %s: %v", name, err)
		}
		out := map[string]any{}
		if err := toml.Unmarshal(data, &out); err != nil {
			t.Fatalf("decode %s: %v", name, err)
		}
		return out
	}
	en := load("en.toml")
	es := load("es.toml")
	for k := range en {
		if _, ok := es[k]; !ok {
			t.Errorf("es.toml is missing %s", k)
		}
	}
	for k := range es {
		if _, ok := en[k]; !ok {
			t.Errorf("en.toml has no %s", k)
		}
	}
}
