package buffer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func drawLines(t *rapid.T) []string {
	return rapid.SliceOfN(rapid.StringMatching(`[a-zA-Z0-9 äß\t]{0,12}`), 1, 8).Draw(t, "lines")
}

func TestProperty_InsertDeleteInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := FromLines(drawLines(t))
		row := rapid.IntRange(0, b.LinesCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, b.LineLen(row)).Draw(t, "col")
		ch := rapid.RuneFrom([]rune("xyz€ ")).Draw(t, "ch")
		before := b.Line(row)

		b.InsertChar(row, col, ch)
		assert.Equal(t, len([]rune(before))+1, b.LineLen(row))
		b.DeleteChar(row, col)
		assert.Equal(t, before, b.Line(row))
	})
}

func TestProperty_NewlineMergeInverse(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawLines(t)
		b := FromLines(in)
		row := rapid.IntRange(0, b.LinesCount()-1).Draw(t, "row")
		col := rapid.IntRange(0, b.LineLen(row)).Draw(t, "col")

		b.InsertNewline(row, col)
		assert.Equal(t, len(in)+1, b.LinesCount())
		b.MergeLines(row)
		assert.Equal(t, FromLines(in).String(), b.String())
	})
}

func TestProperty_SerializeRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := FromLines(drawLines(t))
		reloaded := New()
		for row, line := range splitOnNewline(b.String()) {
			reloaded.InsertLine(row, line)
		}
		assert.Equal(t, b.LinesCount(), reloaded.LinesCount())
		assert.Equal(t, b.String(), reloaded.String())
		assert.Equal(t, b.CalculateHash(), reloaded.CalculateHash())
	})
}

func TestSerializeRoundTrip_Empty(t *testing.T) {
	b := New()
	reloaded := New()
	for row, line := range splitOnNewline(b.String()) {
		reloaded.InsertLine(row, line)
	}
	assert.Equal(t, 1, reloaded.LinesCount())
	assert.Equal(t, b.CalculateHash(), reloaded.CalculateHash())
}

func TestProperty_HashChangesOnMutation(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := FromLines(drawLines(t))
		h := b.CalculateHash()
		assert.Equal(t, h, b.CalculateHash())

		row := rapid.IntRange(0, b.LinesCount()-1).Draw(t, "row")
		switch rapid.IntRange(0, 2).Draw(t, "op") {
		case 0:
			b.InsertChar(row, 0, 'q')
		case 1:
			b.InsertNewline(row, 0)
		case 2:
			b.InsertNewline(b.LinesCount(), 0)
		}
		assert.NotEqual(t, h, b.CalculateHash())
	})
}

func TestProperty_RemoveEmptyLinesIdempotent(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := drawLines(t)
		pad := rapid.IntRange(0, 4).Draw(t, "pad")
		for i := 0; i < pad; i++ {
			in = append(in, "")
		}
		b := FromLines(in)
		b.RemoveEmptyLines(0, true)
		once := b.String()
		count := b.LinesCount()
		b.RemoveEmptyLines(0, true)
		assert.Equal(t, once, b.String())
		assert.Equal(t, count, b.LinesCount())
		assert.GreaterOrEqual(t, b.LinesCount(), 1)
	})
}

func TestProperty_VisibleRowsBounded(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		b := FromLines(drawLines(t))
		start := rapid.IntRange(0, 1000).Draw(t, "start")
		end := rapid.IntRange(start, 2000).Draw(t, "end")
		rows := b.VisibleRows(Viewport{StartRow: start, EndRow: end})
		assert.LessOrEqual(t, len(rows), b.LinesCount())
		assert.LessOrEqual(t, len(rows), end-start)
	})
}

// splitOnNewline mirrors the editor's load path without the trailing
// terminator rule, so a trailing empty line survives the round trip.
func splitOnNewline(s string) []string {
	var out []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			out = append(out, s[start:i])
			start = i + 1
		}
	}
	return append(out, s[start:])
}
