// SPDX-License-Identifier: GPL-2.0-or-later

// Package draw implements the 8 bit indexed framebuffer every screen draws
// into. Pixels are stored column major, Data[x*Height+y], since the 3D view
// is rasterized one column at a time.
package draw

import (
	"godoom/texture"
)

type Surface struct {
	Width  int
	Height int
	Data   []byte
}

func NewSurface(w, h int) *Surface {
	return &Surface{
		Width:  w,
		Height: h,
		Data:   make([]byte, w*h),
	}
}

func (s *Surface) Index(x, y int) int {
	return x*s.Height + y
}

func (s *Surface) At(x, y int) byte {
	return s.Data[x*s.Height+y]
}

func (s *Surface) Set(x, y int, c byte) {
	s.Data[x*s.Height+y] = c
}

func (s *Surface) Clear(c byte) {
	for i := range s.Data {
		s.Data[i] = c
	}
}

// CopyFrom copies src which must have the same size.
func (s *Surface) CopyFrom(src *Surface) {
	copy(s.Data, src.Data)
}

// FillRect fills the rectangle clipped against the surface.
func (s *Surface) FillRect(x, y, w, h int, c byte) {
	x1, y1 := max(x, 0), max(y, 0)
	x2, y2 := min(x+w, s.Width), min(y+h, s.Height)
	for i := x1; i < x2; i++ {
		col := s.Data[i*s.Height : (i+1)*s.Height]
		for j := y1; j < y2; j++ {
			col[j] = c
		}
	}
}

// RowMajor writes the pixels in row major order into dst, as most display
// surfaces expect.
func (s *Surface) RowMajor(dst []byte) {
	for x := 0; x < s.Width; x++ {
		col := s.Data[x*s.Height : (x+1)*s.Height]
		for y, c := range col {
			dst[y*s.Width+x] = c
		}
	}
}

// DrawPatch draws p at (x,y) honouring the patch offsets. Each patch pixel
// becomes a scale x scale block.
func (s *Surface) DrawPatch(p *texture.Patch, x, y, scale int) {
	s.drawPatch(p, x, y, scale, false)
}

// DrawPatchFlip draws p mirrored horizontally.
func (s *Surface) DrawPatchFlip(p *texture.Patch, x, y, scale int) {
	s.drawPatch(p, x, y, scale, true)
}

func (s *Surface) drawPatch(p *texture.Patch, x, y, scale int, flip bool) {
	if scale < 1 {
		scale = 1
	}
	x -= p.LeftOffset * scale
	y -= p.TopOffset * scale
	for c := 0; c < p.Width; c++ {
		src := c
		if flip {
			src = p.Width - 1 - c
		}
		for _, post := range p.Columns[src] {
			for sx := 0; sx < scale; sx++ {
				dx := x + c*scale + sx
				if dx < 0 || dx >= s.Width {
					continue
				}
				col := s.Data[dx*s.Height : (dx+1)*s.Height]
				py := y + post.TopDelta*scale
				for _, px := range post.Pixels {
					for sy := 0; sy < scale; sy++ {
						if dy := py + sy; dy >= 0 && dy < s.Height {
							col[dy] = px
						}
					}
					py += scale
				}
			}
		}
	}
}
