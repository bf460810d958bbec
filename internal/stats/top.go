package stats

import "github.com/verte-zerg/typesprint/internal/model"

// TopMistypedChars returns the top N mistyped characters with their counts,
// most frequent first.
func TopMistypedChars(errors []model.ErrorRecord, n int) ([]rune, []int) {
	if n <= 0 {
		return nil, nil
	}
	items := countMistyped(errors)
	n = min(n, len(items))
	chars := make([]rune, 0, n)
	counts := make([]int, 0, n)
	for _, item := range items[:n] {
		chars = append(chars, item.ch)
		counts = append(counts, item.count)
	}
	return chars, counts
}
