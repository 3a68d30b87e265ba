// Package terminal adapts a tcell screen to the small surface the editor
// needs: raw mode for the session, one event at a time, the window size and
// a few drawing primitives.
package terminal

import (
	"errors"

	"example.com/ste/pkg/view"
	"github.com/gdamore/tcell/v2"
)

// ErrNoSize is returned when the terminal cannot report a usable size.
var ErrNoSize = errors.New("terminal size unavailable")

// Terminal is what the editor controller drives.
type Terminal interface {
	// Start switches the terminal into raw input mode.
	Start() error
	// Stop restores the terminal. It is safe to call more than once.
	Stop()
	// PollEvent blocks for the next event. It returns nil once stopped.
	PollEvent() tcell.Event
	// Rows reports the window height.
	Rows() (int, error)
	// Cols reports the window width.
	Cols() int
	Clear()
	MoveCursor(col, row int)
	// Print draws text starting at (col, row) and returns the column after it.
	Print(col, row int, text string, style tcell.Style) int
	Show()
	Sync()
}

// Screen implements Terminal on top of a tcell.Screen.
type Screen struct {
	s      tcell.Screen
	active bool
}

// New creates a Screen for the process terminal.
func New() (*Screen, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}
	return &Screen{s: s}, nil
}

// Wrap returns a Screen driving s, which must not be initialized yet.
func Wrap(s tcell.Screen) *Screen {
	return &Screen{s: s}
}

// Start initializes the screen, which puts the tty in raw mode.
func (t *Screen) Start() error {
	if t.active {
		return nil
	}
	if err := t.s.Init(); err != nil {
		return err
	}
	t.s.SetStyle(tcell.StyleDefault)
	t.s.Clear()
	t.active = true
	return nil
}

// Stop finalizes the screen and restores the tty.
func (t *Screen) Stop() {
	if !t.active {
		return
	}
	t.active = false
	t.s.Fini()
}

// Active reports whether the screen is between Start and Stop.
func (t *Screen) Active() bool {
	return t.active
}

func (t *Screen) PollEvent() tcell.Event {
	if !t.active {
		return nil
	}
	return t.s.PollEvent()
}

// PostEvent queues ev as if it came from the terminal.
func (t *Screen) PostEvent(ev tcell.Event) error {
	return t.s.PostEvent(ev)
}

func (t *Screen) Rows() (int, error) {
	_, h := t.s.Size()
	if h <= 0 {
		return 0, ErrNoSize
	}
	return h, nil
}

func (t *Screen) Cols() int {
	w, _ := t.s.Size()
	return w
}

func (t *Screen) Clear() {
	t.s.Clear()
}

func (t *Screen) MoveCursor(col, row int) {
	t.s.ShowCursor(col, row)
}

func (t *Screen) Print(col, row int, text string, style tcell.Style) int {
	width := t.Cols()
	for _, r := range text {
		if col >= width {
			break
		}
		c, w := view.Cell(r)
		if col+w > width {
			break
		}
		t.s.SetContent(col, row, c, nil, style)
		col += w
	}
	return col
}

func (t *Screen) Show() {
	t.s.Show()
}

func (t *Screen) Sync() {
	t.s.Sync()
}
