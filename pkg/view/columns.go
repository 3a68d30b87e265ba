package view

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DefaultTabWidth is used when a non-positive tab width is configured.
const DefaultTabWidth = 8

// Placeholder is drawn in place of runes that occupy no cell of their own,
// such as control characters and combining marks.
const Placeholder = '?'

// Cell returns the rune drawn for r and the number of screen cells it
// takes. Runes with no width of their own become a one-cell Placeholder.
func Cell(r rune) (rune, int) {
	if w := runewidth.RuneWidth(r); w > 0 {
		return r, w
	}
	return Placeholder, 1
}

func tabStop(col, tabWidth int) int {
	if tabWidth <= 0 {
		tabWidth = DefaultTabWidth
	}
	return tabWidth - col%tabWidth
}

// DisplayColumn converts a rune index within line into a screen column,
// expanding tabs to the next tab stop and counting each rune as the
// cells Cell gives it.
// Indices past the end of the line are treated as the line end.
func DisplayColumn(line []rune, col, tabWidth int) int {
	if col > len(line) {
		col = len(line)
	}
	x := 0
	for _, r := range line[:col] {
		if r == '\t' {
			x += tabStop(x, tabWidth)
			continue
		}
		_, w := Cell(r)
		x += w
	}
	return x
}

// ExpandTabs returns line as drawn: tabs replaced by spaces and runes
// without a cell of their own replaced by Placeholder.
func ExpandTabs(line []rune, tabWidth int) string {
	var sb strings.Builder
	x := 0
	for _, r := range line {
		if r == '\t' {
			n := tabStop(x, tabWidth)
			sb.WriteString(strings.Repeat(" ", n))
			x += n
			continue
		}
		c, w := Cell(r)
		sb.WriteRune(c)
		x += w
	}
	return sb.String()
}

// SpacesToTabStop returns the spaces a Tab key inserts at col when tabs are
// expanded on insert.
func SpacesToTabStop(line []rune, col, tabWidth int) string {
	return strings.Repeat(" ", tabStop(DisplayColumn(line, col, tabWidth), tabWidth))
}

// FitStatus pads or truncates s to exactly width screen columns.
func FitStatus(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) > width {
		s = runewidth.Truncate(s, width, "")
	}
	return runewidth.FillRight(s, width)
}
