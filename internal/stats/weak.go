package stats

import (
	"sort"

	"github.com/verte-zerg/typesprint/internal/model"
)

type charCount struct {
	ch    rune
	count int
}

// countMistyped tallies error records by expected character, skipping
// positions past the passage end.
func countMistyped(errors []model.ErrorRecord) []charCount {
	counts := map[rune]int{}
	for _, e := range errors {
		if e.Expected == 0 {
			continue
		}
		counts[e.Expected]++
	}
	items := make([]charCount, 0, len(counts))
	for ch, n := range counts {
		items = append(items, charCount{ch: ch, count: n})
	}
	sort.Slice(items, func(i, j int) bool {
		if items[i].count == items[j].count {
			return items[i].ch < items[j].ch
		}
		return items[i].count > items[j].count
	})
	return items
}

// SelectWeakChars selects the most frequently mistyped non-space characters.
func SelectWeakChars(errors []model.ErrorRecord, top int) map[rune]struct{} {
	weakSet := map[rune]struct{}{}
	items := countMistyped(errors)
	for _, item := range items {
		if top > 0 && len(weakSet) >= top {
			break
		}
		if item.ch == ' ' {
			continue
		}
		weakSet[item.ch] = struct{}{}
	}
	return weakSet
}
