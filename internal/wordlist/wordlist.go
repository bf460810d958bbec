// Package wordlist builds and filters word pools for generated passages.
package wordlist

import (
	"fmt"
	"strings"
	"unicode"
)

// FromTexts collects the distinct lowercase words of texts in first-seen
// order. Words break on spaces and dashes; other punctuation is stripped.
func FromTexts(texts []string, keep FilterFunc) ([]string, error) {
	if keep == nil {
		keep = func(string) bool { return true }
	}
	seen := map[string]struct{}{}
	var words []string
	for _, text := range texts {
		for _, field := range strings.FieldsFunc(text, isBreak) {
			word := clean(field)
			if word == "" || !keep(word) {
				continue
			}
			if _, ok := seen[word]; ok {
				continue
			}
			seen[word] = struct{}{}
			words = append(words, word)
		}
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

func isBreak(r rune) bool {
	return unicode.IsSpace(r) || unicode.Is(unicode.Pd, r)
}

func clean(field string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) {
			return unicode.ToLower(r)
		}
		return -1
	}, field)
}
