// SPDX-License-Identifier: GPL-2.0-or-later

package draw

import (
	"strconv"

	"godoom/texture"
)

// DrawChar draws one glyph with its top left at (x,y) and returns the
// advance in pixels.
func (s *Surface) DrawChar(f *texture.Font, r rune, x, y, scale int) int {
	g := f.Glyph(r)
	if g == nil {
		return f.SpaceWidth * scale
	}
	s.DrawPatch(g, x+g.LeftOffset*scale, y+g.TopOffset*scale, scale)
	return g.Width * scale
}

// DrawText draws str, '\n' starts a new line below.
func (s *Surface) DrawText(f *texture.Font, str string, x, y, scale int) {
	cx := x
	lh := lineHeight(f) * scale
	for _, r := range str {
		if r == '\n' {
			cx = x
			y += lh
			continue
		}
		cx += s.DrawChar(f, r, cx, y, scale)
	}
}

// MeasureText returns the width of the longest line of str.
func MeasureText(f *texture.Font, str string, scale int) int {
	w, best := 0, 0
	for _, r := range str {
		if r == '\n' {
			w = 0
			continue
		}
		if g := f.Glyph(r); g != nil {
			w += g.Width * scale
		} else {
			w += f.SpaceWidth * scale
		}
		best = max(best, w)
	}
	return best
}

// DrawNumber draws n right aligned so its last digit ends at x.
func (s *Surface) DrawNumber(f *texture.Font, n, x, y, scale int) {
	str := strconv.Itoa(n)
	s.DrawText(f, str, x-MeasureText(f, str, scale), y, scale)
}

func lineHeight(f *texture.Font) int {
	if g := f.Glyph('A'); g != nil {
		return g.Height + 1
	}
	return 8
}
