package app

import (
	"example.com/ste/pkg/config"
	"github.com/gdamore/tcell/v2"
)

// handleKeyEvent processes a key event. It returns true if the event signals
// the runner should quit.
func (r *Runner) handleKeyEvent(ev *tcell.EventKey) bool {
	r.ensureBuffer()
	r.Message = ""
	km := r.keymap()
	if km[config.CmdQuit].Matches(ev) {
		r.State = StateTerminated
		r.Logger.Event("action", map[string]any{"name": "quit", "modified": r.IsModified()})
		return true
	}
	if km[config.CmdSave].Matches(ev) {
		r.saveFromKey()
		return false
	}
	switch ev.Key() {
	case tcell.KeyEnter:
		r.newline()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		r.backspace()
	case tcell.KeyDelete:
		r.Buf.DeleteChar(r.Row, r.col())
	case tcell.KeyUp:
		r.moveUp()
	case tcell.KeyDown:
		r.moveDown()
	case tcell.KeyLeft:
		r.moveLeft()
	case tcell.KeyRight:
		r.moveRight()
	case tcell.KeyHome:
		r.Col = 0
	case tcell.KeyEnd:
		r.Col = r.Buf.LineLen(r.Row)
	case tcell.KeyTab:
		r.insertTab()
	case tcell.KeyRune:
		// Ctrl and Alt chords that are not bound above do nothing.
		if ev.Modifiers()&^tcell.ModShift == 0 {
			r.insertRune(ev.Rune())
		}
	}
	return false
}
