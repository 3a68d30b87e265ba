package app

import (
	"testing"

	"example.com/ste/internal/terminal"
	"example.com/ste/pkg/buffer"
	"github.com/gdamore/tcell/v2"
)

// fakeTerm draws to a simulation screen and replays a fixed list of events.
type fakeTerm struct {
	*terminal.Screen
	sim     tcell.SimulationScreen
	events  []tcell.Event
	rowsErr error
	starts  int
	stops   int
}

func newFakeTerm(t *testing.T, width, height int, events ...tcell.Event) *fakeTerm {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	scr := terminal.Wrap(sim)
	if err := scr.Start(); err != nil {
		t.Fatalf("initializing simulation screen failed: %v", err)
	}
	t.Cleanup(scr.Stop)
	sim.SetSize(width, height)
	return &fakeTerm{Screen: scr, sim: sim, events: events}
}

func (f *fakeTerm) Start() error { f.starts++; return nil }

func (f *fakeTerm) Stop() { f.stops++ }

func (f *fakeTerm) PollEvent() tcell.Event {
	if len(f.events) == 0 {
		return nil
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev
}

func (f *fakeTerm) Rows() (int, error) {
	if f.rowsErr != nil {
		return 0, f.rowsErr
	}
	return f.Screen.Rows()
}

// rowText returns the runes on screen row y, trailing blanks included.
func (f *fakeTerm) rowText(y int) string {
	w, _ := f.sim.Size()
	out := make([]rune, 0, w)
	for x := 0; x < w; x++ {
		r, _, _, _ := f.sim.GetContent(x, y)
		out = append(out, r)
	}
	return string(out)
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func ch(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func ctrl(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModCtrl)
}

func typeText(r *Runner, s string) {
	for _, c := range s {
		r.handleKeyEvent(ch(c))
	}
}

func bufLines(b *buffer.TextBuffer) []string {
	out := make([]string, b.LinesCount())
	for i := range out {
		out[i] = b.Line(i)
	}
	return out
}
