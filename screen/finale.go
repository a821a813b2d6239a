// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"godoom/draw"
	"godoom/texture"
)

const (
	// textSpeed is the number of tics per character.
	textSpeed = 3
	// textWait is how long the whole text stays before the finale ends.
	textWait = 250
	// textDelay tics pass before the first character.
	textDelay = 10

	finaleX    = 10
	finaleY    = 10
	finaleLine = 11
)

// FinaleState types a text over a tiled flat, one character every few
// tics.
type FinaleState struct {
	text string
	back *texture.Flat
	tics int

	reported bool
}

func NewFinale(text string, back *texture.Flat) *FinaleState {
	return &FinaleState{text: text, back: back}
}

func (f *FinaleState) Tic() {
	f.tics++
}

// Visible returns how many characters of the text are shown.
func (f *FinaleState) Visible() int {
	n := (f.tics - textDelay) / textSpeed
	return max(0, min(n, len(f.text)))
}

// Skip shows the whole text at once, or ends the wait once it is shown.
func (f *FinaleState) Skip() {
	full := textDelay + len(f.text)*textSpeed
	if f.tics < full {
		f.tics = full
		return
	}
	f.tics = max(f.tics, full+textWait+1)
}

// Done reports whether the text was shown long enough.
func (f *FinaleState) Done() bool {
	return f.tics > len(f.text)*textSpeed+textWait
}

func (f *FinaleState) Draw(dst *draw.Surface, font *texture.Font) {
	if f.back != nil {
		tileFlat(dst, f.back, 0, 0, dst.Width, dst.Height)
	} else {
		dst.Clear(colorBlack)
	}
	s := screenScale(dst.Width, dst.Height)
	x, y := finaleX*s, finaleY*s
	for _, r := range f.text[:f.Visible()] {
		if r == '\n' {
			x = finaleX * s
			y += finaleLine * s
			continue
		}
		x += dst.DrawChar(font, r, x, y, s)
	}
}
