package app

import (
	"fmt"

	"example.com/ste/internal/terminal"
	"example.com/ste/pkg/config"
	"example.com/ste/pkg/view"
	"github.com/mattn/go-runewidth"
)

// fillerMarker pads rows past the end of the buffer.
const fillerMarker = "~"

// renderState captures everything one frame needs.
type renderState struct {
	rows     [][]rune
	capacity int
	cursorX  int
	cursorY  int
	status   string
	message  string
	tabWidth int
	theme    config.Theme
}

func (r *Runner) minRows() int {
	if r.Editor.MinRows > 0 {
		return r.Editor.MinRows
	}
	return config.DefaultEditor().MinRows
}

func (r *Runner) tabWidth() int {
	if r.Editor.TabWidth > 0 {
		return r.Editor.TabWidth
	}
	return view.DefaultTabWidth
}

// statusLine renders "<path> - <row>/<total>" plus a modified marker.
func (r *Runner) statusLine() string {
	name := r.File.Path
	if name == "" {
		name = "[No Name]"
	}
	s := fmt.Sprintf("%s - %d/%d", name, r.Row+1, r.Buf.LinesCount())
	if r.IsModified() {
		s += " (modified)"
	}
	return s
}

// renderSnapshot scrolls the viewport to the cursor and captures the frame.
func (r *Runner) renderSnapshot(rows int, rowsErr error) renderState {
	if rowsErr != nil {
		r.Logger.Event("terminal.rows_fallback", map[string]any{"error": rowsErr.Error(), "rows": r.minRows()})
	}
	capacity := view.Capacity(rows, rowsErr, r.minRows())
	r.Offset = view.Scroll(r.Row, r.Offset, capacity)
	line := []rune(r.Buf.Line(r.Row))
	return renderState{
		rows:     r.Buf.VisibleRows(view.Window(r.Offset, capacity)),
		capacity: capacity,
		cursorX:  view.DisplayColumn(line, r.col(), r.tabWidth()),
		cursorY:  r.Row - r.Offset,
		status:   r.statusLine(),
		message:  r.Message,
		tabWidth: r.tabWidth(),
		theme:    r.Theme,
	}
}

// renderToScreen draws the snapshot: text rows, "~" filler, the status bar
// on the last row and the cursor.
func renderToScreen(t terminal.Terminal, st renderState) {
	t.Clear()
	width := t.Cols()
	textRows := st.capacity - 1
	for y := 0; y < textRows; y++ {
		if y < len(st.rows) {
			t.Print(0, y, view.ExpandTabs(st.rows[y], st.tabWidth), st.theme.TextStyle())
			continue
		}
		t.Print(0, y, fillerMarker, st.theme.FillerStyle())
	}

	t.Print(0, textRows, view.FitStatus(st.status, width), st.theme.StatusStyle())
	if st.message != "" {
		if x := runewidth.StringWidth(st.status) + 2; x < width {
			t.Print(x, textRows, st.message, st.theme.MessageStyle())
		}
	}

	x := st.cursorX
	if x >= width && width > 0 {
		x = width - 1
	}
	t.MoveCursor(x, st.cursorY)
	t.Show()
}

// draw renders the current state to the terminal.
func (r *Runner) draw() {
	if r.Term == nil {
		return
	}
	r.ensureBuffer()
	rows, err := r.Term.Rows()
	renderToScreen(r.Term, r.renderSnapshot(rows, err))
}
