// SPDX-License-Identifier: GPL-2.0-or-later

package tui

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"godoom/draw"
	kc "godoom/keycode"
	"godoom/palette"
)

func newTerminal(t *testing.T) (*Terminal, tcell.SimulationScreen) {
	t.Helper()
	pal := &palette.Palette{}
	for i := range pal {
		pal[i] = palette.Color{R: uint8(i), G: 0, B: uint8(255 - i)}
	}
	s := tcell.NewSimulationScreen("UTF-8")
	term, err := NewWithScreen(s, pal)
	if err != nil {
		t.Fatal(err)
	}
	s.SetSize(80, 25)
	t.Cleanup(term.Close)
	return term, s
}

// waitKeys polls until n events arrived, the pump runs in its own
// goroutine.
func waitKeys(t *testing.T, term *Terminal, n int) []kc.Event {
	t.Helper()
	var got []kc.Event
	for i := 0; i < 200 && len(got) < n; i++ {
		got = append(got, term.Poll()...)
		time.Sleep(time.Millisecond)
	}
	return got
}

func TestPresent(t *testing.T) {
	term, s := newTerminal(t)
	f := draw.NewSurface(320, 200)
	f.FillRect(0, 0, 320, 100, 1)
	f.FillRect(0, 100, 320, 100, 2)
	if err := term.Present(f); err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		x, y   int
		fg, bg int
	}{
		{0, 0, 1, 1},
		{79, 12, 1, 2},
		{40, 24, 2, 2},
	}
	for _, tc := range tests {
		r, _, style, _ := s.GetContent(tc.x, tc.y)
		fg, bg, _ := style.Decompose()
		if r != '▀' {
			t.Errorf("cell %v,%v = %q", tc.x, tc.y, r)
		}
		if want := term.colors[tc.fg]; fg != want {
			t.Errorf("cell %v,%v foreground = %v, want %v", tc.x, tc.y, fg, want)
		}
		if want := term.colors[tc.bg]; bg != want {
			t.Errorf("cell %v,%v background = %v, want %v", tc.x, tc.y, bg, want)
		}
	}
}

func TestPollKeys(t *testing.T) {
	term, s := newTerminal(t)
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	s.InjectKey(tcell.KeyRune, 'W', tcell.ModShift)
	got := waitKeys(t, term, 2)
	if len(got) != 2 || got[0] != (kc.Event{Key: kc.UPARROW, Down: true}) || got[1] != (kc.Event{Key: 'w', Down: true}) {
		t.Fatalf("Poll() = %v, want up and w pressed", got)
	}
	// a repeat keeps the key held
	s.InjectKey(tcell.KeyUp, 0, tcell.ModNone)
	time.Sleep(10 * time.Millisecond)
	if got := term.Poll(); len(got) != 0 {
		t.Errorf("repeat produced %v", got)
	}
	var released []kc.Event
	for i := 0; i <= holdTics+1; i++ {
		released = append(released, term.Poll()...)
	}
	if len(released) != 2 || released[0].Down || released[1].Down {
		t.Errorf("releases = %v, want two", released)
	}
}

func TestQuit(t *testing.T) {
	term, s := newTerminal(t)
	s.InjectKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)
	for i := 0; i < 200 && !term.Quit(); i++ {
		term.Poll()
		time.Sleep(time.Millisecond)
	}
	if !term.Quit() {
		t.Errorf("ctrl-c did not quit")
	}
}
