package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/typesprint/internal/model"
)

type runeClass uint8

const (
	classPending runeClass = iota
	classCurrentWord
	classCorrect
	classIncorrect
	classOvertyped
)

const wrongSpace = '•'

type styledRune struct {
	s       string
	r       rune
	class   runeClass
	cursor  bool
	width   int
	isSpace bool
}

// buildStyledRunes styles the passage from the engine's character states.
// overflow holds input typed past the end of the passage.
func buildStyledRunes(target []rune, states []model.CharState, overflow []rune, cursorIndex int) []styledRune {
	words := findWords(target)
	currentWord := wordForCursor(words, cursorIndex)

	out := make([]styledRune, 0, len(target)+len(overflow))
	for i, ch := range target {
		displayed := ch
		class := classPending
		state := model.Untyped
		if i < len(states) {
			state = states[i]
		}
		switch state {
		case model.Correct:
			class = classCorrect
		case model.Incorrect:
			class = classIncorrect
			if ch == ' ' {
				displayed = wrongSpace
			}
		default:
			if ch != ' ' && currentWord != nil && i >= currentWord.start && i < currentWord.end {
				class = classCurrentWord
			}
		}
		out = append(out, newStyledRune(displayed, class, i == cursorIndex, ch == ' '))
	}
	for _, ch := range overflow {
		if ch == ' ' {
			ch = wrongSpace
		}
		out = append(out, newStyledRune(ch, classOvertyped, false, false))
	}
	return out
}

func newStyledRune(r rune, class runeClass, cursor, isSpace bool) styledRune {
	style := styleFor(class)
	if cursor {
		style = style.Underline(true)
	}
	return styledRune{
		s:       style.Render(string(r)),
		r:       r,
		class:   class,
		cursor:  cursor,
		width:   runewidth.RuneWidth(r),
		isSpace: isSpace,
	}
}

func styleFor(class runeClass) lipgloss.Style {
	switch class {
	case classCorrect:
		return correctStyle
	case classIncorrect:
		return incorrectStyle
	case classOvertyped:
		return overtypedStyle
	case classCurrentWord:
		return currentWordStyle
	default:
		return pendingStyle
	}
}

type wordRange struct {
	start int
	end   int
}

func findWords(target []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range target {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(target)})
	}
	return words
}

func wordForCursor(words []wordRange, cursorIndex int) *wordRange {
	if len(words) == 0 || cursorIndex < 0 {
		return nil
	}
	for i, w := range words {
		if cursorIndex < w.end {
			return &words[i]
		}
	}
	return nil
}

func renderStyledRunes(runes []styledRune) string {
	var b strings.Builder
	for _, item := range runes {
		b.WriteString(item.s)
	}
	return b.String()
}

// wrapStyledRunes breaks lines at the last space that fits width, or
// mid-word when a word is wider than the line.
func wrapStyledRunes(runes []styledRune, width int) string {
	if width <= 0 {
		return renderStyledRunes(runes)
	}
	var out strings.Builder
	line := make([]styledRune, 0, len(runes))
	lineWidth := 0
	lastSpaceIdx := -1

	for i := 0; i < len(runes); {
		item := runes[i]
		if lineWidth+item.width > width && len(line) > 0 {
			if lastSpaceIdx >= 0 {
				out.WriteString(renderStyledRunes(line[:lastSpaceIdx+1]))
				out.WriteRune('\n')
				line = append([]styledRune{}, line[lastSpaceIdx+1:]...)
				lineWidth = lineWidthOf(line)
				lastSpaceIdx = lastSpaceIndex(line)
			} else {
				out.WriteString(renderStyledRunes(line))
				out.WriteRune('\n')
				line = line[:0]
				lineWidth = 0
				lastSpaceIdx = -1
			}
			continue
		}
		line = append(line, item)
		lineWidth += item.width
		if item.isSpace {
			lastSpaceIdx = len(line) - 1
		}
		i++
	}
	out.WriteString(renderStyledRunes(line))
	return out.String()
}

func lineWidthOf(line []styledRune) int {
	total := 0
	for _, item := range line {
		total += item.width
	}
	return total
}

func lastSpaceIndex(line []styledRune) int {
	for i := len(line) - 1; i >= 0; i-- {
		if line[i].isSpace {
			return i
		}
	}
	return -1
}
