package wordlist

import "testing"

func TestFilterEnglishASCII(t *testing.T) {
	filter := FilterForLang("EN")
	if !filter("hello") {
		t.Fatalf("expected hello to pass english filter")
	}
	for _, word := range []string{"résumé", "naïve", "don’t", "co-op", ""} {
		if filter(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
}

func TestFilterSpanish(t *testing.T) {
	filter := FilterForLang("es")
	for _, word := range []string{"niño", "canción", "pingüino", "casa"} {
		if !filter(word) {
			t.Fatalf("expected %q to pass spanish filter", word)
		}
	}
	if filter("naïve") {
		t.Fatalf("expected naïve to be rejected")
	}
}

func TestFilterUnknownLangKeepsAll(t *testing.T) {
	if !FilterForLang("de")("straße") {
		t.Fatalf("expected unknown language to keep every word")
	}
}
