// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/fixed"
	"godoom/texture"
)

// drawColumn maps the texture column src onto the rows y1..y2 of view
// column x. The texture repeats vertically.
func (r *Renderer) drawColumn(src []byte, cmap *[256]byte, x, y1, y2 int, iscale, textureAlt fixed.Fixed) {
	if y2 < y1 {
		return
	}
	dst := r.view.Data
	pos := x*r.ctx.ViewHeight + y1
	frac := fixed.Fixed(int64(textureAlt) + int64(y1-r.ctx.CenterY)*int64(iscale))
	h := len(src)
	if h&(h-1) == 0 {
		mask := h - 1
		for y := y1; y <= y2; y++ {
			dst[pos] = cmap[src[int(frac>>fixed.FracBits)&mask]]
			frac += iscale
			pos++
		}
		return
	}
	for y := y1; y <= y2; y++ {
		i := int(frac>>fixed.FracBits) % h
		if i < 0 {
			i += h
		}
		dst[pos] = cmap[src[i]]
		frac += iscale
		pos++
	}
}

// maskedDraw is the setup shared by all columns of a sprite or a masked
// wall range.
type maskedDraw struct {
	// cmap is nil for the fuzz effect.
	cmap        *[256]byte
	translation *[256]byte
	scale       fixed.Fixed
	iscale      fixed.Fixed
	textureAlt  fixed.Fixed
	topScreen   fixed.Fixed
}

// drawMaskedColumn draws the posts of col into view column x, between the
// exclusive clip rows upper and lower.
func (r *Renderer) drawMaskedColumn(d *maskedDraw, col texture.Column, x, upper, lower int) {
	for _, post := range col {
		top := int64(d.topScreen) + int64(d.scale)*int64(post.TopDelta)
		bottom := top + int64(d.scale)*int64(len(post.Pixels))
		y1 := int((top + fixed.FracUnit - 1) >> fixed.FracBits)
		y2 := int((bottom - 1) >> fixed.FracBits)
		if y2 >= lower {
			y2 = lower - 1
		}
		if y1 <= upper {
			y1 = upper + 1
		}
		if y1 > y2 {
			continue
		}
		if d.cmap == nil {
			r.drawFuzzColumn(x, y1, y2)
			continue
		}
		r.drawPost(d, post.Pixels, x, y1, y2, d.textureAlt-fixed.FromInt(post.TopDelta))
		r.Stats.MaskedPosts++
	}
}

// drawPost draws one opaque run. Unlike wall columns posts do not repeat,
// rows past the end reuse the last pixel.
func (r *Renderer) drawPost(d *maskedDraw, src []byte, x, y1, y2 int, textureAlt fixed.Fixed) {
	dst := r.view.Data
	pos := x*r.ctx.ViewHeight + y1
	frac := fixed.Fixed(int64(textureAlt) + int64(y1-r.ctx.CenterY)*int64(d.iscale))
	last := len(src) - 1
	for y := y1; y <= y2; y++ {
		i := int(frac >> fixed.FracBits)
		if i < 0 {
			i = 0
		} else if i > last {
			i = last
		}
		p := src[i]
		if d.translation != nil {
			p = d.translation[p]
		}
		dst[pos] = d.cmap[p]
		frac += d.iscale
		pos++
	}
}

// fuzzOffsets dithers the shadow effect, +1 reads the pixel below and -1
// the pixel above.
var fuzzOffsets = [...]int{
	1, -1, 1, -1, 1, 1, -1, 1, 1, -1, 1, 1, 1, -1,
	1, 1, 1, -1, -1, -1, -1, 1, -1, -1, 1, 1, 1, 1, -1,
	1, -1, 1, 1, -1, -1, 1, 1, -1, -1, -1, -1, 1, 1,
	1, 1, -1, 1, 1, -1, 1,
}

// drawFuzzColumn darkens what is already on screen using a neighbouring
// pixel, which hints at the outline of an invisible thing.
func (r *Renderer) drawFuzzColumn(x, y1, y2 int) {
	// the first and last row have only one neighbour
	if y1 == 0 {
		y1 = 1
	}
	if y2 == r.ctx.ViewHeight-1 {
		y2 = r.ctx.ViewHeight - 2
	}
	if y2 < y1 {
		return
	}
	cmap := r.lighting.ColorMap(fuzzColorMap)
	dst := r.view.Data
	pos := x*r.ctx.ViewHeight + y1
	for y := y1; y <= y2; y++ {
		dst[pos] = cmap[dst[pos+fuzzOffsets[r.fuzzPos]]]
		r.fuzzPos++
		if r.fuzzPos == len(fuzzOffsets) {
			r.fuzzPos = 0
		}
		pos++
	}
}
