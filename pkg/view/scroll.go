// Package view maps buffer rows and columns onto a bounded terminal window.
// Everything here is stateless; the caller keeps the viewport offset.
package view

import "example.com/ste/pkg/buffer"

// MinCapacity is the smallest usable window: one text row plus the status bar.
const MinCapacity = 2

// Capacity resolves the window height from a terminal row query. A failed
// or nonsensical query falls back to fallback, and the result is never
// below MinCapacity.
func Capacity(rows int, err error, fallback int) int {
	if err != nil || rows <= 0 {
		rows = fallback
	}
	if rows < MinCapacity {
		rows = MinCapacity
	}
	return rows
}

// Scroll returns the viewport offset that keeps cursorRow on screen. The
// last window row belongs to the status bar.
func Scroll(cursorRow, offset, capacity int) int {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	switch {
	case cursorRow >= offset+capacity-1:
		offset = cursorRow - (capacity - 2)
	case cursorRow < offset:
		offset = cursorRow
	}
	if offset < 0 {
		offset = 0
	}
	return offset
}

// Window returns the buffer rows shown for offset, [offset, offset+capacity-1).
func Window(offset, capacity int) buffer.Viewport {
	if capacity < MinCapacity {
		capacity = MinCapacity
	}
	return buffer.Viewport{StartRow: offset, EndRow: offset + capacity - 1}
}
