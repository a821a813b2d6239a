// SPDX-License-Identifier: GPL-2.0-or-later

// Package palette holds the 8 bit palette and the light colormaps derived
// from it. Resolution from palette index to RGBA only happens when a frame
// is presented.
package palette

import (
	"github.com/chewxy/math32"
	"github.com/pkg/errors"
)

const (
	// LightLevels is the number of diminishing light colormaps.
	LightLevels = 32
	// Inverse is the index of the invulnerability colormap.
	Inverse = LightLevels
	// Count includes the light levels, the inverse map and an all black map.
	Count = LightLevels + 2
)

type Color struct {
	R, G, B uint8
}

type Palette [256]Color

// New builds a palette from 768 bytes of rgb data.
func New(rgb []byte) (*Palette, error) {
	if len(rgb) != 3*256 {
		return nil, errors.Errorf("Palette has wrong size: %v", len(rgb))
	}
	p := &Palette{}
	for i := range p {
		p[i] = Color{rgb[3*i], rgb[3*i+1], rgb[3*i+2]}
	}
	return p, nil
}

// Nearest returns the palette index closest to the given color.
func (p *Palette) Nearest(r, g, b float32) uint8 {
	best := 0
	bestDist := float32(math32.MaxFloat32)
	for i, c := range p {
		dr := float32(c.R) - r
		dg := float32(c.G) - g
		db := float32(c.B) - b
		d := dr*dr + dg*dg + db*db
		if d < bestDist {
			bestDist = d
			best = i
			if d == 0 {
				break
			}
		}
	}
	return uint8(best)
}

// ToRGBA resolves indexed pixels into dst, 4 bytes per pixel.
func (p *Palette) ToRGBA(dst []byte, src []byte) {
	for i, s := range src {
		c := p[s]
		o := 4 * i
		dst[o] = c.R
		dst[o+1] = c.G
		dst[o+2] = c.B
		dst[o+3] = 255
	}
}

// ColorMap is a set of 256 entry remap tables, one per light level.
type ColorMap [][256]uint8

// NewColorMap wraps raw colormap data, 256 bytes per table.
func NewColorMap(data []byte) (ColorMap, error) {
	if len(data) == 0 || len(data)%256 != 0 {
		return nil, errors.Errorf("Colormap has wrong size: %v", len(data))
	}
	m := make(ColorMap, len(data)/256)
	for i := range m {
		copy(m[i][:], data[256*i:])
	}
	return m, nil
}

// Build synthesizes the Count colormaps for p. Level 0 is full bright,
// level LightLevels-1 is close to black.
func Build(p *Palette) ColorMap {
	m := make(ColorMap, Count)
	for l := 0; l < LightLevels; l++ {
		f := 1 - float32(l)/LightLevels
		for i, c := range p {
			m[l][i] = p.Nearest(float32(c.R)*f, float32(c.G)*f, float32(c.B)*f)
		}
	}
	for i, c := range p {
		gray := 255 - (0.299*float32(c.R) + 0.587*float32(c.G) + 0.114*float32(c.B))
		gray = math32.Max(0, math32.Min(255, gray))
		m[Inverse][i] = p.Nearest(gray, gray, gray)
	}
	b := p.Nearest(0, 0, 0)
	for i := range m[Count-1] {
		m[Count-1][i] = b
	}
	return m
}
