// SPDX-License-Identifier: GPL-2.0-or-later

// Package window presents frames in an SDL window. Every SDL call runs on
// the main thread, mainthread.Run has to own it.
package window

import (
	"log"

	"github.com/gopxl/mainthread/v2"
	"github.com/pkg/errors"
	"github.com/veandco/go-sdl2/sdl"

	"godoom/draw"
	kc "godoom/keycode"
	"godoom/palette"
)

type Window struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	texture  *sdl.Texture
	pal      *palette.Palette

	width   int
	height  int
	indexed []byte
	rgba    []byte

	skipUpdates bool
	quit        bool
}

// New opens a window showing width x height frames, each pixel scale
// times its size.
func New(title string, width, height, scale int, fullscreen bool, pal *palette.Palette) (*Window, error) {
	w := &Window{
		pal:     pal,
		width:   width,
		height:  height,
		indexed: make([]byte, width*height),
		rgba:    make([]byte, 4*width*height),
	}
	var err error
	mainthread.Call(func() {
		err = w.create(title, scale, fullscreen)
	})
	if err != nil {
		w.Close()
		return nil, err
	}
	log.Printf("window %dx%d scale %d", width, height, scale)
	return w, nil
}

func (w *Window) create(title string, scale int, fullscreen bool) error {
	if err := sdl.Init(sdl.INIT_VIDEO | sdl.INIT_EVENTS); err != nil {
		return errors.Wrap(err, "sdl init")
	}
	flags := uint32(sdl.WINDOW_HIDDEN | sdl.WINDOW_RESIZABLE)
	if fullscreen {
		flags |= sdl.WINDOW_FULLSCREEN_DESKTOP
	}
	var err error
	w.window, err = sdl.CreateWindow(title, sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(w.width*scale), int32(w.height*scale), flags)
	if err != nil {
		return errors.Wrap(err, "create window")
	}
	w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_ACCELERATED)
	if err != nil {
		w.renderer, err = sdl.CreateRenderer(w.window, -1, sdl.RENDERER_SOFTWARE)
		if err != nil {
			return errors.Wrap(err, "create renderer")
		}
	}
	// letterbox on resize, the frame keeps its aspect
	if err := w.renderer.SetLogicalSize(int32(w.width), int32(w.height)); err != nil {
		return errors.Wrap(err, "logical size")
	}
	w.texture, err = w.renderer.CreateTexture(sdl.PIXELFORMAT_ABGR8888,
		sdl.TEXTUREACCESS_STREAMING, int32(w.width), int32(w.height))
	if err != nil {
		return errors.Wrap(err, "create texture")
	}
	w.window.Show()
	return nil
}

func (w *Window) Close() {
	mainthread.Call(func() {
		if w.texture != nil {
			w.texture.Destroy()
			w.texture = nil
		}
		if w.renderer != nil {
			w.renderer.Destroy()
			w.renderer = nil
		}
		if w.window != nil {
			w.window.Destroy()
			w.window = nil
		}
		sdl.Quit()
	})
}

func (w *Window) Fullscreen() bool {
	var f bool
	mainthread.Call(func() {
		f = w.window.GetFlags()&(sdl.WINDOW_FULLSCREEN|sdl.WINDOW_FULLSCREEN_DESKTOP) != 0
	})
	return f
}

// Quit reports whether the window was closed.
func (w *Window) Quit() bool {
	return w.quit
}

// SetSkipUpdates stops presenting, used while minimized.
func (w *Window) SetSkipUpdates(skip bool) {
	w.skipUpdates = skip
}

// Present resolves s through the palette and shows it. s must have the
// size the window was created with.
func (w *Window) Present(s *draw.Surface) error {
	if w.skipUpdates {
		return nil
	}
	if s.Width != w.width || s.Height != w.height {
		return errors.Errorf("frame %dx%d in a %dx%d window", s.Width, s.Height, w.width, w.height)
	}
	s.RowMajor(w.indexed)
	w.pal.ToRGBA(w.rgba, w.indexed)
	var err error
	mainthread.Call(func() {
		err = w.present()
	})
	return err
}

func (w *Window) present() error {
	pixels, pitch, err := w.texture.Lock(nil)
	if err != nil {
		return errors.Wrap(err, "lock texture")
	}
	row := 4 * w.width
	for y := 0; y < w.height; y++ {
		copy(pixels[y*pitch:y*pitch+row], w.rgba[y*row:(y+1)*row])
	}
	w.texture.Unlock()
	if err := w.renderer.Clear(); err != nil {
		return errors.Wrap(err, "clear")
	}
	if err := w.renderer.Copy(w.texture, nil, nil); err != nil {
		return errors.Wrap(err, "copy texture")
	}
	w.renderer.Present()
	return nil
}

// Poll drains the SDL event queue and returns the key events in order.
func (w *Window) Poll() []kc.Event {
	var out []kc.Event
	mainthread.Call(func() {
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.WindowEvent:
				w.handleWindowEvent(e)
			case *sdl.KeyboardEvent:
				if e.Repeat != 0 {
					continue
				}
				k := scancodeToKey(e.Keysym.Scancode)
				if k == kc.None {
					continue
				}
				out = append(out, kc.Event{Key: k, Down: e.State == sdl.PRESSED})
			case *sdl.MouseWheelEvent:
				if e.Y > 0 {
					out = append(out, kc.Event{Key: kc.MWHEELUP, Down: true}, kc.Event{Key: kc.MWHEELUP})
				} else if e.Y < 0 {
					out = append(out, kc.Event{Key: kc.MWHEELDOWN, Down: true}, kc.Event{Key: kc.MWHEELDOWN})
				}
			case *sdl.QuitEvent:
				w.quit = true
			}
		}
	})
	return out
}

func (w *Window) handleWindowEvent(e *sdl.WindowEvent) {
	switch e.Event {
	case sdl.WINDOWEVENT_MINIMIZED:
		w.skipUpdates = true
	case sdl.WINDOWEVENT_RESTORED, sdl.WINDOWEVENT_SHOWN:
		w.skipUpdates = false
	}
}
