package buffer

import (
	"strings"
	"unicode/utf8"

	"github.com/cespare/xxhash/v2"
)

// TextBuffer stores text as a slice of lines, each line a slice of runes.
// It always holds at least one line. Row and column arguments that fall
// outside the current content turn mutations into no-ops and reads into
// zero values; callers rely on that instead of checking bounds first.
type TextBuffer struct {
	lines [][]rune
}

// Viewport is the half-open row range [StartRow, EndRow) eligible for
// rendering.
type Viewport struct {
	StartRow int
	EndRow   int
}

// New returns a buffer holding a single empty line.
func New() *TextBuffer {
	return &TextBuffer{lines: [][]rune{{}}}
}

// FromLines builds a buffer by setting each line in order with InsertLine.
// An empty slice yields the single empty line of New.
func FromLines(lines []string) *TextBuffer {
	b := New()
	for row, line := range lines {
		b.InsertLine(row, line)
	}
	return b
}

// SplitLines splits text on "\n" or "\r\n" terminators. A terminator after
// the last line does not produce an extra empty line, so "a\nb\n" and
// "a\nb" both give two lines and "" gives none. A "\r" not followed by
// "\n" is content and is kept.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	terminated := strings.HasSuffix(text, "\n")
	text = strings.TrimSuffix(text, "\n")
	parts := strings.Split(text, "\n")
	for i, p := range parts {
		if i < len(parts)-1 || terminated {
			parts[i] = strings.TrimSuffix(p, "\r")
		}
	}
	return parts
}

func (b *TextBuffer) validRow(row int) bool {
	return row >= 0 && row < len(b.lines)
}

// InsertChar inserts ch at (row, col). A newline splits the line instead.
func (b *TextBuffer) InsertChar(row, col int, ch rune) {
	if ch == '\n' {
		b.InsertNewline(row, col)
		return
	}
	if !b.validRow(row) {
		return
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return
	}
	line = append(line, 0)
	copy(line[col+1:], line[col:])
	line[col] = ch
	b.lines[row] = line
}

// DeleteChar removes the rune at (row, col). It never joins lines.
func (b *TextBuffer) DeleteChar(row, col int) {
	if !b.validRow(row) {
		return
	}
	line := b.lines[row]
	if col < 0 || col >= len(line) {
		return
	}
	b.lines[row] = append(line[:col], line[col+1:]...)
}

// InsertNewline splits line row at col, moving the tail to a new line
// directly below. When row equals LinesCount a new empty line is appended.
func (b *TextBuffer) InsertNewline(row, col int) {
	if row == len(b.lines) {
		b.lines = append(b.lines, []rune{})
		return
	}
	if !b.validRow(row) {
		return
	}
	line := b.lines[row]
	if col < 0 || col > len(line) {
		return
	}
	tail := make([]rune, len(line)-col)
	copy(tail, line[col:])
	b.lines[row] = line[:col:col]

	b.lines = append(b.lines, nil)
	copy(b.lines[row+2:], b.lines[row+1:])
	b.lines[row+1] = tail
}

// MergeLines appends line row+1 to line row and removes row+1.
func (b *TextBuffer) MergeLines(row int) {
	if row < 0 || row+1 >= len(b.lines) {
		return
	}
	b.lines[row] = append(b.lines[row], b.lines[row+1]...)
	b.lines = append(b.lines[:row+1], b.lines[row+2:]...)
}

// InsertLine sets line row to text, growing the buffer with empty lines
// until row exists. It is meant for bulk loading.
func (b *TextBuffer) InsertLine(row int, text string) {
	if row < 0 {
		return
	}
	for len(b.lines) <= row {
		b.lines = append(b.lines, []rune{})
	}
	b.lines[row] = []rune(text)
}

// LineLen returns the rune count of line row, or 0 when row does not exist.
func (b *TextBuffer) LineLen(row int) int {
	if !b.validRow(row) {
		return 0
	}
	return len(b.lines[row])
}

// Line returns line row as a string, or "" when row does not exist.
func (b *TextBuffer) Line(row int) string {
	if !b.validRow(row) {
		return ""
	}
	return string(b.lines[row])
}

// NoMoreLines reports whether row is at or past the end of the buffer.
func (b *TextBuffer) NoMoreLines(row int) bool {
	return row >= len(b.lines)
}

// LinesCount returns the number of lines; never less than one.
func (b *TextBuffer) LinesCount() int {
	return len(b.lines)
}

// VisibleRows returns the lines inside v, clamped to the buffer. The result
// shares storage with the buffer and must not be modified.
func (b *TextBuffer) VisibleRows(v Viewport) [][]rune {
	n := len(b.lines)
	start := clamp(v.StartRow, 0, n)
	end := clamp(v.EndRow, start, n)
	return b.lines[start:end]
}

// CalculateHash hashes every line in order. Equal content gives equal
// hashes; it is only an equality hint for the modified indicator.
func (b *TextBuffer) CalculateHash() uint64 {
	d := xxhash.New()
	scratch := make([]byte, 0, 256)
	for _, line := range b.lines {
		scratch = scratch[:0]
		for _, r := range line {
			scratch = utf8.AppendRune(scratch, r)
		}
		scratch = append(scratch, '\n')
		_, _ = d.Write(scratch)
	}
	return d.Sum64()
}

// RemoveEmptyLines drops empty lines from the end of the buffer. With
// clearEnd it keeps at least one line; otherwise it never removes line row
// or anything above it, and does nothing when row does not exist.
func (b *TextBuffer) RemoveEmptyLines(row int, clearEnd bool) {
	floor := 1
	if !clearEnd {
		if !b.validRow(row) {
			return
		}
		floor = row + 1
	}
	for len(b.lines) > floor && len(b.lines[len(b.lines)-1]) == 0 {
		b.lines = b.lines[:len(b.lines)-1]
	}
}

// String joins the lines with "\n". No newline follows the last line.
func (b *TextBuffer) String() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for _, r := range line {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
