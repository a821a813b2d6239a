// SPDX-License-Identifier: GPL-2.0-or-later

// Package tui presents frames in a terminal. Every cell shows two pixel
// rows with the upper half block, foreground on top and background below.
package tui

import (
	"unicode"

	"github.com/gdamore/tcell/v2"
	"github.com/pkg/errors"

	"godoom/draw"
	kc "godoom/keycode"
	"godoom/palette"
)

// holdTics is how long a key counts as held after its last press.
// Terminals report no releases, only the auto repeat of a held key.
const holdTics = 18

type Terminal struct {
	screen tcell.Screen
	colors [256]tcell.Color

	events chan tcell.Event
	held   map[kc.KeyCode]int
	tic    int
	quit   bool
}

// New opens the controlling terminal.
func New(pal *palette.Palette) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, errors.Wrap(err, "terminal")
	}
	return NewWithScreen(s, pal)
}

// NewWithScreen takes over s, it must not be initialized yet.
func NewWithScreen(s tcell.Screen, pal *palette.Palette) (*Terminal, error) {
	if err := s.Init(); err != nil {
		return nil, errors.Wrap(err, "terminal init")
	}
	s.HideCursor()
	s.Clear()
	t := &Terminal{
		screen: s,
		events: make(chan tcell.Event, 64),
		held:   make(map[kc.KeyCode]int),
	}
	for i, c := range pal {
		t.colors[i] = tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
	}
	go t.pump()
	return t, nil
}

func (t *Terminal) pump() {
	for {
		ev := t.screen.PollEvent()
		if ev == nil {
			close(t.events)
			return
		}
		t.events <- ev
	}
}

func (t *Terminal) Close() {
	t.screen.Fini()
}

// Quit reports whether the terminal asked to stop, by ctrl-c or by
// closing.
func (t *Terminal) Quit() bool {
	return t.quit
}

// Present scales s to the terminal size and shows it.
func (t *Terminal) Present(s *draw.Surface) error {
	cols, rows := t.screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil
	}
	// keep the aspect, a cell is about twice as high as wide
	w, h := cols, 2*rows
	if w*s.Height > h*s.Width {
		w = h * s.Width / s.Height
	} else {
		h = w * s.Height / s.Width
	}
	ox, oy := (cols-w)/2, (rows-h/2)/2
	t.screen.Clear()
	for cy := 0; cy < h/2; cy++ {
		ty := 2 * cy * s.Height / h
		by := (2*cy + 1) * s.Height / h
		for cx := 0; cx < w; cx++ {
			sx := cx * s.Width / w
			style := tcell.StyleDefault.
				Foreground(t.colors[s.At(sx, ty)]).
				Background(t.colors[s.At(sx, by)])
			t.screen.SetContent(ox+cx, oy+cy, '▀', nil, style)
		}
	}
	t.screen.Show()
	return nil
}

// Poll drains pending terminal events. It is called once per tic and
// returns the presses and the synthesized releases since the last call.
func (t *Terminal) Poll() []kc.Event {
	t.tic++
	var out []kc.Event
drain:
	for {
		select {
		case ev, ok := <-t.events:
			if !ok {
				t.quit = true
				break drain
			}
			out = t.handle(ev, out)
		default:
			break drain
		}
	}
	for k, last := range t.held {
		if t.tic-last > holdTics {
			delete(t.held, k)
			out = append(out, kc.Event{Key: k})
		}
	}
	return out
}

func (t *Terminal) handle(ev tcell.Event, out []kc.Event) []kc.Event {
	switch e := ev.(type) {
	case *tcell.EventResize:
		t.screen.Sync()
	case *tcell.EventKey:
		if e.Key() == tcell.KeyCtrlC {
			t.quit = true
			return out
		}
		k := translate(e)
		if k == kc.None {
			return out
		}
		if _, ok := t.held[k]; !ok {
			out = append(out, kc.Event{Key: k, Down: true})
		}
		t.held[k] = t.tic
	}
	return out
}

func translate(e *tcell.EventKey) kc.KeyCode {
	switch e.Key() {
	case tcell.KeyTab:
		return kc.TAB
	case tcell.KeyEnter:
		return kc.ENTER
	case tcell.KeyEscape:
		return kc.ESCAPE
	case tcell.KeyBackspace2:
		return kc.BACKSPACE
	case tcell.KeyUp:
		return kc.UPARROW
	case tcell.KeyDown:
		return kc.DOWNARROW
	case tcell.KeyLeft:
		return kc.LEFTARROW
	case tcell.KeyRight:
		return kc.RIGHTARROW
	case tcell.KeyF5:
		return kc.F5
	case tcell.KeyF11:
		return kc.F11
	case tcell.KeyF12:
		return kc.F12
	case tcell.KeyPgUp:
		return kc.PGUP
	case tcell.KeyPgDn:
		return kc.PGDN
	case tcell.KeyHome:
		return kc.HOME
	case tcell.KeyEnd:
		return kc.END
	case tcell.KeyRune:
		r := e.Rune()
		if r == ' ' {
			return kc.SPACE
		}
		if r < 128 && unicode.IsPrint(r) {
			return kc.KeyCode(unicode.ToLower(r))
		}
	}
	return kc.None
}
