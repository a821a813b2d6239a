// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"cmp"
	"slices"

	"godoom/bsp"
	"godoom/fixed"
	"godoom/texture"
	"godoom/world"
)

// minZ is the closest distance a thing is drawn at.
const minZ = 4 * fixed.FracUnit

// VisSprite is a thing projected onto the screen.
type VisSprite struct {
	X1 int
	X2 int

	// GX and GY are the world position, GZ the bottom and GZT the top.
	GX  fixed.Fixed
	GY  fixed.Fixed
	GZ  fixed.Fixed
	GZT fixed.Fixed

	// StartFrac is the patch column at X1, XIScale the step per column.
	StartFrac  fixed.Fixed
	Scale      fixed.Fixed
	XIScale    fixed.Fixed
	TextureAlt fixed.Fixed

	Patch *texture.Patch
	// ColorMap is nil for the fuzz effect.
	ColorMap    *[256]byte
	Translation *[256]byte
}

// initTranslations builds the three color translations that swap the
// green ramp for gray, brown and red.
func initTranslations(t *[3][256]byte) {
	for i := 0; i < 256; i++ {
		if i >= 0x70 && i <= 0x7f {
			t[0][i] = byte(0x60 + i&0xf)
			t[1][i] = byte(0x40 + i&0xf)
			t[2][i] = byte(0x20 + i&0xf)
			continue
		}
		t[0][i] = byte(i)
		t[1][i] = byte(i)
		t[2][i] = byte(i)
	}
}

func (r *Renderer) clearSprites() {
	r.visSpriteUsed = 0
}

// addSprites projects the things of sector s, once per frame.
func (r *Renderer) addSprites(s *bsp.Sector) {
	if s.ValidCount == r.validCount {
		return
	}
	s.ValidCount = r.validCount
	if !r.cfg.DrawSprites {
		return
	}
	lights := r.lights.scaleLights(r.sectorLight(s))
	for _, mo := range r.world.ThingsIn(s) {
		r.projectSprite(mo, lights)
	}
}

// projectSprite adds a vis sprite for mo if it is in front of the view and
// within the horizontal field of view.
func (r *Renderer) projectSprite(mo *world.Mobj, lights *scaleRow) {
	ctx := r.ctx
	viewSin := fixed.Sin(r.viewAngle)
	viewCos := fixed.Cos(r.viewAngle)

	trX := mo.X - r.viewX
	trY := mo.Y - r.viewY
	tz := fixed.Mul(trX, viewCos) + fixed.Mul(trY, viewSin)
	if tz < minZ {
		return
	}
	xscale := fixed.Div(ctx.Projection, tz)
	tx := fixed.Mul(trX, viewSin) - fixed.Mul(trY, viewCos)
	if fixed.Abs(tx) > tz<<2 {
		return
	}

	sprites := r.graphics.Sprites
	if mo.Sprite < 0 || mo.Sprite >= len(sprites) {
		return
	}
	frameNum := mo.Frame & world.FrameMask
	if frameNum >= len(sprites[mo.Sprite].Frames) {
		return
	}
	frame := &sprites[mo.Sprite].Frames[frameNum]
	rot := 0
	if frame.Rotate {
		ang := fixed.PointToAngle2(r.viewX, r.viewY, mo.X, mo.Y)
		rot = int((ang - mo.Angle + fixed.Ang45/2*9) >> 29)
	}
	patch := frame.Patches[rot]
	if patch == nil {
		return
	}
	flip := frame.Flip[rot]

	tx -= fixed.FromInt(patch.LeftOffset)
	x1 := (ctx.CenterXFrac + fixed.Mul(tx, xscale)).Int()
	if x1 > ctx.ViewWidth {
		return
	}
	tx += fixed.FromInt(patch.Width)
	x2 := (ctx.CenterXFrac + fixed.Mul(tx, xscale)).Int() - 1
	if x2 < 0 {
		return
	}

	if r.visSpriteUsed == len(r.visSprites) {
		r.Stats.DroppedSprites++
		return
	}
	vis := &r.visSprites[r.visSpriteUsed]
	r.visSpriteUsed++

	gzt := mo.Z + fixed.FromInt(patch.TopOffset)
	*vis = VisSprite{
		X1:         max(x1, 0),
		X2:         min(x2, ctx.ViewWidth-1),
		GX:         mo.X,
		GY:         mo.Y,
		GZ:         mo.Z,
		GZT:        gzt,
		Scale:      xscale << ctx.DetailShift,
		TextureAlt: gzt - r.viewZ,
		Patch:      patch,
	}
	iscale := fixed.Div(fixed.One, xscale)
	if flip {
		vis.StartFrac = fixed.FromInt(patch.Width) - 1
		vis.XIScale = -iscale
	} else {
		vis.XIScale = iscale
	}
	if vis.X1 > x1 {
		vis.StartFrac += vis.XIScale * fixed.Fixed(vis.X1-x1)
	}
	if mo.Translation > 0 && mo.Translation <= len(r.translations) {
		vis.Translation = &r.translations[mo.Translation-1]
	}

	switch {
	case mo.Flags&world.MobjShadow != 0:
		vis.ColorMap = r.shadowColorMap()
	case r.lights.fixed != nil:
		vis.ColorMap = r.lights.fixed
	case mo.Frame&world.FrameFullBright != 0:
		vis.ColorMap = r.lighting.ColorMap(0)
	default:
		i := int(xscale >> (lightScaleShift - ctx.DetailShift))
		if i >= maxLightScale {
			i = maxLightScale - 1
		}
		vis.ColorMap = lights[i]
	}
}

// shadowColorMap returns nil to request the fuzz effect, or a dark
// colormap when fuzz is turned off.
func (r *Renderer) shadowColorMap() *[256]byte {
	if r.cfg.Fuzz {
		return nil
	}
	return r.lighting.ColorMap(fuzzColorMap)
}

// renderSprites is the second stage: the sprites back to front, each
// clipped by the wall ranges in front of it.
func (r *Renderer) renderSprites(walls wallPass) {
	r.sortedSprites = r.sortedSprites[:0]
	for i := 0; i < r.visSpriteUsed; i++ {
		r.sortedSprites = append(r.sortedSprites, &r.visSprites[i])
	}
	// farthest first
	slices.SortStableFunc(r.sortedSprites, func(a, b *VisSprite) int {
		return cmp.Compare(a.Scale, b.Scale)
	})
	r.Stats.Sprites = len(r.sortedSprites)
	for _, s := range r.sortedSprites {
		r.drawSprite(s, walls)
	}
}

// drawSprite clips the sprite against the silhouettes of nearer walls.
// Masked middle textures of walls behind the sprite are drawn first.
func (r *Renderer) drawSprite(s *VisSprite, walls wallPass) {
	const unclipped = -2
	upper := r.spriteUpper
	lower := r.spriteLower
	for x := s.X1; x <= s.X2; x++ {
		upper[x] = unclipped
		lower[x] = unclipped
	}

	for i := len(walls.ranges) - 1; i >= 0; i-- {
		w := &walls.ranges[i]
		if w.X1 > s.X2 || w.X2 < s.X1 || (w.Silhouette == SilNone && w.MaskedColumns < 0) {
			continue
		}
		r1 := max(w.X1, s.X1)
		r2 := min(w.X2, s.X2)

		lowScale, scale := w.Scale1, w.Scale2
		if lowScale > scale {
			lowScale, scale = scale, lowScale
		}
		if scale < s.Scale || (lowScale < s.Scale && w.Seg.PointOnSide(s.GX, s.GY) == 0) {
			// the wall is behind the sprite
			if w.MaskedColumns >= 0 && r.cfg.DrawMasked {
				r.drawMaskedRange(w, walls.clipData, r1, r2)
			}
			continue
		}

		sil := w.Silhouette
		if s.GZ >= w.LowerSilHeight {
			sil &^= SilLower
		}
		if s.GZT <= w.UpperSilHeight {
			sil &^= SilUpper
		}
		if sil&SilLower != 0 {
			for x := r1; x <= r2; x++ {
				if lower[x] == unclipped {
					lower[x] = walls.clipData[w.LowerClip+x]
				}
			}
		}
		if sil&SilUpper != 0 {
			for x := r1; x <= r2; x++ {
				if upper[x] == unclipped {
					upper[x] = walls.clipData[w.UpperClip+x]
				}
			}
		}
	}

	for x := s.X1; x <= s.X2; x++ {
		if lower[x] == unclipped {
			lower[x] = int16(r.ctx.ViewHeight)
		}
		if upper[x] == unclipped {
			upper[x] = -1
		}
	}
	r.drawVisSprite(s, upper, lower)
}

func (r *Renderer) drawVisSprite(s *VisSprite, upper, lower []int16) {
	d := maskedDraw{
		cmap:        s.ColorMap,
		translation: s.Translation,
		scale:       s.Scale,
		iscale:      fixed.Abs(s.XIScale) >> r.ctx.DetailShift,
		textureAlt:  s.TextureAlt,
		topScreen:   r.ctx.CenterYFrac - fixed.Mul(s.TextureAlt, s.Scale),
	}
	frac := s.StartFrac
	last := len(s.Patch.Columns) - 1
	for x := s.X1; x <= s.X2; x++ {
		c := frac.Int()
		if c < 0 {
			c = 0
		} else if c > last {
			c = last
		}
		r.drawMaskedColumn(&d, s.Patch.Columns[c], x, int(upper[x]), int(lower[x]))
		frac += s.XIScale
	}
}

// VisSprites returns the sprites projected in the last frame.
func (r *Renderer) VisSprites() []VisSprite {
	return r.visSprites[:r.visSpriteUsed]
}
