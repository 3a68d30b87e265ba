package app

import "example.com/ste/pkg/view"

// col returns the desired column clamped to the current line, the offset
// every insert and delete works at.
func (r *Runner) col() int {
	if n := r.Buf.LineLen(r.Row); r.Col > n {
		return n
	}
	if r.Col < 0 {
		return 0
	}
	return r.Col
}

// insertRune inserts ch at the cursor and moves past it.
func (r *Runner) insertRune(ch rune) {
	c := r.col()
	r.Buf.InsertChar(r.Row, c, ch)
	if ch == '\n' {
		r.Row++
		r.Col = 0
		return
	}
	r.Col = c + 1
}

// insertTab inserts a tab rune, or spaces up to the next tab stop when
// tabs are expanded.
func (r *Runner) insertTab() {
	if !r.Editor.ExpandTabs {
		r.insertRune('\t')
		return
	}
	line := []rune(r.Buf.Line(r.Row))
	for _, ch := range view.SpacesToTabStop(line, r.col(), r.Editor.TabWidth) {
		r.insertRune(ch)
	}
}

// newline splits the line at the cursor and moves to the start of the new line.
func (r *Runner) newline() {
	r.Buf.InsertNewline(r.Row, r.col())
	r.Row++
	r.Col = 0
}

// backspace deletes the rune before the cursor, joining with the previous
// line at column zero.
func (r *Runner) backspace() {
	if c := r.col(); c > 0 {
		r.Col = c - 1
		r.Buf.DeleteChar(r.Row, r.Col)
		return
	}
	if r.Row > 0 {
		prevLen := r.Buf.LineLen(r.Row - 1)
		r.Buf.MergeLines(r.Row - 1)
		r.Row--
		r.Col = prevLen
	}
}

// moveUp keeps the desired column and drops trailing blank lines left
// below the cursor.
func (r *Runner) moveUp() {
	if r.Row == 0 {
		return
	}
	r.Row--
	r.Buf.RemoveEmptyLines(r.Row, false)
}

// moveDown grows the buffer by one blank line when moving past the end.
func (r *Runner) moveDown() {
	r.Row++
	if r.Buf.NoMoreLines(r.Row) {
		r.Buf.InsertNewline(r.Row, 0)
	}
}

func (r *Runner) moveLeft() {
	if c := r.col(); c > 0 {
		r.Col = c - 1
		return
	}
	r.Col = 0
}

func (r *Runner) moveRight() {
	c := r.col()
	if c < r.Buf.LineLen(r.Row) {
		c++
	}
	r.Col = c
}
