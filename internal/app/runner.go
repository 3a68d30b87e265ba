package app

import (
	"errors"
	"fmt"

	"example.com/ste/internal/terminal"
	"example.com/ste/pkg/buffer"
	"example.com/ste/pkg/config"
	"example.com/ste/pkg/logs"
	"github.com/gdamore/tcell/v2"
)

// ErrTerminalClosed is returned by Run when the event source ends before
// the user quits.
var ErrTerminalClosed = errors.New("terminal closed")

// State is the controller state.
type State int

const (
	StateRunning State = iota
	StateTerminated
)

// InputFile describes the file being edited. Hash is the buffer hash at
// load or at the last successful save.
type InputFile struct {
	Path   string
	Exists bool
	Hash   uint64
}

// Runner owns the terminal lifecycle, the buffer, the cursor and the event
// loop.
type Runner struct {
	Term terminal.Terminal
	File InputFile
	Buf  *buffer.TextBuffer
	// Row is always a valid line index. Col is the desired column and may
	// exceed the line length; see col.
	Row     int
	Col     int
	Offset  int
	State   State
	Message string
	Keymap  map[string]config.Keybinding
	Editor  config.Editor
	Theme   config.Theme
	Logger  *logs.Logger
}

// New creates a Runner with an empty buffer and default settings.
func New() *Runner {
	return NewWithConfig(config.Default())
}

// NewWithConfig creates a Runner with an empty buffer using cfg.
func NewWithConfig(cfg *config.Config) *Runner {
	b := buffer.New()
	return &Runner{
		Buf:    b,
		File:   InputFile{Hash: b.CalculateHash()},
		Keymap: cfg.Keymap,
		Editor: cfg.Editor,
		Theme:  cfg.Theme,
	}
}

func (r *Runner) ensureBuffer() {
	if r.Buf == nil {
		r.Buf = buffer.New()
	}
}

func (r *Runner) keymap() map[string]config.Keybinding {
	if r.Keymap == nil {
		r.Keymap = config.DefaultKeymap()
	}
	return r.Keymap
}

// Cursor returns the cursor position with the column clamped to the line.
func (r *Runner) Cursor() (row, col int) {
	r.ensureBuffer()
	return r.Row, r.col()
}

// IsModified reports whether the buffer differs from the loaded or last
// saved content.
func (r *Runner) IsModified() bool {
	r.ensureBuffer()
	return r.Buf.CalculateHash() != r.File.Hash
}

// Run starts the event loop. It switches the terminal to raw mode for the
// duration of the call, restoring it on every return path, and returns when
// the user requests quit.
func (r *Runner) Run() error {
	r.ensureBuffer()
	if r.Term == nil {
		t, err := terminal.New()
		if err != nil {
			return fmt.Errorf("create screen: %w", err)
		}
		r.Term = t
	}
	if err := r.Term.Start(); err != nil {
		return fmt.Errorf("start terminal: %w", err)
	}
	defer r.Term.Stop()

	r.Logger.Event("run.start", map[string]any{"file": r.File.Path})
	defer r.Logger.Event("run.end", map[string]any{"file": r.File.Path})

	r.State = StateRunning
	for {
		r.draw()
		switch ev := r.Term.PollEvent().(type) {
		case nil:
			return ErrTerminalClosed
		case *tcell.EventKey:
			r.Logger.Event("key", keyFields(ev))
			if r.handleKeyEvent(ev) {
				return nil
			}
		case *tcell.EventResize:
			r.Term.Sync()
		}
	}
}

// keyFields describes ev for the event log. Only rune events carry the
// typed rune.
func keyFields(ev *tcell.EventKey) map[string]any {
	fields := map[string]any{"modifiers": int(ev.Modifiers())}
	if ev.Key() == tcell.KeyRune {
		fields["key"] = "Rune"
		fields["rune"] = string(ev.Rune())
		return fields
	}
	if name, ok := tcell.KeyNames[ev.Key()]; ok {
		fields["key"] = name
	} else {
		fields["key"] = int(ev.Key())
	}
	return fields
}
