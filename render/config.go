// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/cvars"
)

// Config is everything the renderer tables depend on. A changed Config
// needs a Renderer.Resize, the tables are never patched in place.
type Config struct {
	// ScreenWidth and ScreenHeight are the size of the target surface.
	ScreenWidth  int
	ScreenHeight int

	// ScreenBlocks is the view window size, 11 is the full screen, 10 the
	// full width above the status bar and below that a centered window.
	ScreenBlocks int

	// LowDetail renders every column twice as wide.
	LowDetail bool

	Fuzz        bool
	DrawSprites bool
	DrawMasked  bool
}

func DefaultConfig() Config {
	return Config{
		ScreenWidth:  320,
		ScreenHeight: 200,
		ScreenBlocks: 11,
		Fuzz:         true,
		DrawSprites:  true,
		DrawMasked:   true,
	}
}

// ConfigFromCvars reads the renderer variables for the given screen size.
func ConfigFromCvars(width, height int) Config {
	return Config{
		ScreenWidth:  width,
		ScreenHeight: height,
		ScreenBlocks: int(cvars.ScreenBlocks.Value()),
		LowDetail:    cvars.Detail.Bool(),
		Fuzz:         cvars.Fuzz.Bool(),
		DrawSprites:  cvars.DrawSprites.Bool(),
		DrawMasked:   cvars.DrawMasked.Bool(),
	}
}
