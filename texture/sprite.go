// SPDX-License-Identifier: GPL-2.0-or-later

package texture

// SpriteFrame holds the patches of one animation frame. Non rotating frames
// only use index 0.
type SpriteFrame struct {
	Rotate  bool
	Patches [8]*Patch
	Flip    [8]bool
}

type SpriteDef struct {
	Name   string
	Frames []SpriteFrame
}

// SingleFrame returns a frame showing p from every direction.
func SingleFrame(p *Patch) SpriteFrame {
	return SpriteFrame{Patches: [8]*Patch{p}}
}

// Font is a 128 glyph bitmap font indexed by ASCII code.
type Font struct {
	Glyphs [128]*Patch
	// SpaceWidth is the advance of characters without a glyph.
	SpaceWidth int
}

// Glyph returns the patch for r folding lower case to upper case.
func (f *Font) Glyph(r rune) *Patch {
	if r >= 'a' && r <= 'z' {
		r -= 'a' - 'A'
	}
	if r < 0 || r >= 128 {
		return nil
	}
	return f.Glyphs[r]
}
