// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/bsp"
	"godoom/fixed"
	qmath "godoom/math"
	"godoom/texture"
)

const (
	heightBits = 12
	heightUnit = 1 << heightBits

	minWallScale fixed.Fixed = 256
	maxWallScale fixed.Fixed = 64 * fixed.FracUnit
)

// Silhouette tells which parts of a wall range hide sprites behind it.
type Silhouette int

const (
	SilNone  Silhouette = 0
	SilLower Silhouette = 1
	SilUpper Silhouette = 2
	SilBoth  Silhouette = SilLower | SilUpper
)

// VisWallRange is a drawn wall fragment, kept for the sprite and masked
// texture passes.
type VisWallRange struct {
	Seg *bsp.Seg
	X1  int
	X2  int

	Scale1    fixed.Fixed
	Scale2    fixed.Fixed
	ScaleStep fixed.Fixed

	Silhouette Silhouette
	// Sprites standing below LowerSilHeight or reaching above
	// UpperSilHeight are clipped by the wall.
	LowerSilHeight fixed.Fixed
	UpperSilHeight fixed.Fixed

	// UpperClip, LowerClip and MaskedColumns are offsets into the clip
	// data such that clipData[offset+x] is the value for column x, or -1.
	UpperClip     int
	LowerClip     int
	MaskedColumns int
}

// wallSetup is what the clipper knows about the seg it hands on.
type wallSetup struct {
	seg      *bsp.Seg
	rwAngle1 fixed.Angle
}

// wallGeometry is the perspective setup of one visible wall fragment.
type wallGeometry struct {
	normalAngle fixed.Angle
	distance    fixed.Fixed
	// offset is the texture column at the foot of the normal.
	offset    fixed.Fixed
	scale1    fixed.Fixed
	scale2    fixed.Fixed
	scaleStep fixed.Fixed
}

func (r *Renderer) wallGeometry(w *wallSetup, x1, x2 int) wallGeometry {
	seg := w.seg
	g := wallGeometry{normalAngle: seg.Angle + fixed.Ang90}

	offsetAngle := fixed.AbsAngle(g.normalAngle - w.rwAngle1)
	if offsetAngle > fixed.Ang90 {
		offsetAngle = fixed.Ang90
	}
	hyp := fixed.PointToDist(r.viewX, r.viewY, seg.V1.X, seg.V1.Y)
	g.distance = fixed.Mul(hyp, fixed.Sin(fixed.Ang90-offsetAngle))

	g.scale1 = r.scaleFromGlobalAngle(r.viewAngle+r.ctx.XToAngle[x1], g.normalAngle, g.distance)
	g.scale2 = g.scale1
	if x2 > x1 {
		g.scale2 = r.scaleFromGlobalAngle(r.viewAngle+r.ctx.XToAngle[x2], g.normalAngle, g.distance)
		g.scaleStep = (g.scale2 - g.scale1) / fixed.Fixed(x2-x1)
	}

	offsetAngle = g.normalAngle - w.rwAngle1
	if offsetAngle > fixed.Ang180 {
		offsetAngle = -offsetAngle
	}
	if offsetAngle > fixed.Ang90 {
		offsetAngle = fixed.Ang90
	}
	g.offset = fixed.Mul(hyp, fixed.Sin(offsetAngle))
	if g.normalAngle-w.rwAngle1 < fixed.Ang180 {
		g.offset = -g.offset
	}
	g.offset += seg.Side.TextureOffset + seg.Offset
	return g
}

// scaleFromGlobalAngle returns the vertical scale of a wall at distance
// from the view along the absolute angle visAngle, clamped to
// [minWallScale, maxWallScale].
func (r *Renderer) scaleFromGlobalAngle(visAngle, normal fixed.Angle, distance fixed.Fixed) fixed.Fixed {
	sinA := fixed.Sin(fixed.Ang90 + visAngle - r.viewAngle)
	sinB := fixed.Sin(fixed.Ang90 + visAngle - normal)
	num := fixed.Mul(r.ctx.Projection, sinB) << r.ctx.DetailShift
	den := fixed.Mul(distance, sinA)
	if den > num>>fixed.FracBits {
		scale := fixed.Div(num, den)
		return qmath.Clamp(minWallScale, scale, maxWallScale)
	}
	return maxWallScale
}

// textureColumn returns the texture column seen in screen column x.
func (r *Renderer) textureColumn(g *wallGeometry, x int) int {
	a := r.viewAngle - g.normalAngle + r.ctx.XToAngle[x]
	return (g.offset - fixed.Mul(fixed.Tan(a), g.distance)).Int()
}

// wallLights picks the scale lights of a seg; walls along the axes are
// shaded one level apart to give corners some contrast.
func (r *Renderer) wallLights(seg *bsp.Seg) *scaleRow {
	level := r.sectorLight(seg.FrontSector)
	switch {
	case seg.V1.Y == seg.V2.Y:
		level--
	case seg.V1.X == seg.V2.X:
		level++
	}
	return r.lights.scaleLights(level)
}

func scaleLight(row *scaleRow, scale fixed.Fixed) *[256]byte {
	i := int(scale >> lightScaleShift)
	if i >= maxLightScale {
		i = maxLightScale - 1
	}
	return row[i]
}

func invScale(scale fixed.Fixed) fixed.Fixed {
	return fixed.Fixed(0xffffffff / uint32(scale))
}

func (r *Renderer) newWallRange() *VisWallRange {
	if r.wallRangeUsed == len(r.wallRanges) {
		r.Stats.DroppedWallRanges++
		return nil
	}
	vr := &r.wallRanges[r.wallRangeUsed]
	r.wallRangeUsed++
	return vr
}

// ceilingVisible reports whether a ceiling worldTop above the eye can be
// seen. A plane at eye level is edge on, sky is always drawn.
func ceilingVisible(worldTop fixed.Fixed, sky bool) bool {
	return worldTop > 0 || sky
}

// floorVisible reports whether a floor worldBottom above the eye can be
// seen.
func floorVisible(worldBottom fixed.Fixed) bool {
	return worldBottom < 0
}

// drawSolidWallRange draws the columns x1..x2 of a one sided wall with the
// ceiling above and the floor below it.
func (r *Renderer) drawSolidWallRange(w *wallSetup, x1, x2 int) {
	if x1 > x2 {
		return
	}
	vr := r.newWallRange()
	if vr == nil {
		return
	}
	seg := w.seg
	side := seg.Side
	front := seg.FrontSector
	seg.Line.Flags |= bsp.LineMapped

	g := r.wallGeometry(w, x1, x2)
	*vr = VisWallRange{
		Seg:            seg,
		X1:             x1,
		X2:             x2,
		Scale1:         g.scale1,
		Scale2:         g.scale2,
		ScaleStep:      g.scaleStep,
		Silhouette:     SilBoth,
		LowerSilHeight: fixed.MaxValue,
		UpperSilHeight: fixed.MinValue,
		UpperClip:      r.heightClip(),
		LowerClip:      r.negOneClip(),
		MaskedColumns:  -1,
	}

	worldTop := front.CeilingHeight - r.viewZ
	worldBottom := front.FloorHeight - r.viewZ
	sky := r.graphics.SkyFlat

	var (
		wallTex *texture.Texture
		midAlt  fixed.Fixed
	)
	if side.MiddleTexture != 0 {
		wallTex = r.graphics.Texture(side.MiddleTexture)
		if seg.Line.Flags&bsp.LineDontPegBottom != 0 {
			midAlt = front.FloorHeight + fixed.FromInt(wallTex.Height) - r.viewZ
		} else {
			midAlt = worldTop
		}
		midAlt += side.RowOffset
	}
	drawCeiling := ceilingVisible(worldTop, front.CeilingFlat == sky)
	drawFloor := floorVisible(worldBottom)

	lights := r.wallLights(seg)
	planeLights := r.lights.zLights(r.sectorLight(front))

	worldTop >>= 4
	worldBottom >>= 4
	centerY := r.ctx.CenterYFrac >> 4
	topFrac := centerY - fixed.Mul(worldTop, g.scale1)
	topStep := -fixed.Mul(g.scaleStep, worldTop)
	bottomFrac := centerY - fixed.Mul(worldBottom, g.scale1)
	bottomStep := -fixed.Mul(g.scaleStep, worldBottom)
	scale := g.scale1

	for x := x1; x <= x2; x++ {
		y1 := int((topFrac + heightUnit - 1) >> heightBits)
		y2 := int(bottomFrac >> heightBits)
		upper := int(r.upperClip[x])
		lower := int(r.lowerClip[x])

		if drawCeiling {
			r.drawCeilingColumn(front, planeLights, x, upper+1, min(y1-1, lower-1))
		}
		if drawFloor {
			r.drawFloorColumn(front, planeLights, x, max(y2+1, upper+1), lower-1)
		}
		if wallTex != nil {
			col := r.textureColumn(&g, x)
			r.drawColumn(wallTex.Pixels(col), scaleLight(lights, scale), x,
				max(y1, upper+1), min(y2, lower-1), invScale(scale), midAlt)
		}

		topFrac += topStep
		bottomFrac += bottomStep
		scale += g.scaleStep
	}
}

// drawPassWallRange draws the columns x1..x2 of a two sided line: the
// upper and lower walls where the neighbouring sector steps, the front
// sector's ceiling and floor, and records the silhouette and the masked
// middle texture columns for the later passes.
func (r *Renderer) drawPassWallRange(w *wallSetup, x1, x2 int) {
	if x1 > x2 {
		return
	}
	n := x2 - x1 + 1
	if r.clipDataUsed+3*n > len(r.clipData) {
		r.Stats.DroppedWallRanges++
		return
	}
	seg := w.seg
	side := seg.Side
	line := seg.Line
	front := seg.FrontSector
	back := seg.BackSector
	line.Flags |= bsp.LineMapped

	worldFrontZ1 := front.CeilingHeight - r.viewZ
	worldFrontZ2 := front.FloorHeight - r.viewZ
	worldBackZ1 := back.CeilingHeight - r.viewZ
	worldBackZ2 := back.FloorHeight - r.viewZ

	// outdoor areas may change ceiling height without a visible wall
	sky := r.graphics.SkyFlat
	if front.CeilingFlat == sky && back.CeilingFlat == sky {
		worldFrontZ1 = worldBackZ1
	}

	var drawUpper, drawCeiling bool
	if worldFrontZ1 != worldBackZ1 || front.CeilingFlat != back.CeilingFlat || front.LightLevel != back.LightLevel {
		drawUpper = side.TopTexture != 0 && worldBackZ1 < worldFrontZ1
		drawCeiling = ceilingVisible(worldFrontZ1, front.CeilingFlat == sky)
	}
	var drawLower, drawFloor bool
	if worldFrontZ2 != worldBackZ2 || front.FloorFlat != back.FloorFlat || front.LightLevel != back.LightLevel {
		drawLower = side.BottomTexture != 0 && worldBackZ2 > worldFrontZ2
		drawFloor = floorVisible(worldFrontZ2)
	}
	closed := back.CeilingHeight <= front.FloorHeight || back.FloorHeight >= front.CeilingHeight
	if closed {
		drawCeiling = ceilingVisible(worldFrontZ1, front.CeilingFlat == sky)
		drawFloor = floorVisible(worldFrontZ2)
	}
	drawMasked := side.MiddleTexture != 0
	if !drawUpper && !drawCeiling && !drawLower && !drawFloor && !drawMasked {
		return
	}

	vr := r.newWallRange()
	if vr == nil {
		return
	}
	g := r.wallGeometry(w, x1, x2)
	*vr = VisWallRange{
		Seg:           seg,
		X1:            x1,
		X2:            x2,
		Scale1:        g.scale1,
		Scale2:        g.scale2,
		ScaleStep:     g.scaleStep,
		UpperClip:     -1,
		LowerClip:     -1,
		MaskedColumns: -1,
	}
	switch {
	case front.FloorHeight > back.FloorHeight:
		vr.Silhouette = SilLower
		vr.LowerSilHeight = front.FloorHeight
	case back.FloorHeight > r.viewZ:
		vr.Silhouette = SilLower
		vr.LowerSilHeight = fixed.MaxValue
	}
	switch {
	case front.CeilingHeight < back.CeilingHeight:
		vr.Silhouette |= SilUpper
		vr.UpperSilHeight = front.CeilingHeight
	case back.CeilingHeight < r.viewZ:
		vr.Silhouette |= SilUpper
		vr.UpperSilHeight = fixed.MinValue
	}
	if closed {
		// nothing behind a closed door is visible
		vr.Silhouette = SilBoth
		vr.LowerSilHeight = fixed.MaxValue
		vr.UpperSilHeight = fixed.MinValue
		vr.UpperClip = r.heightClip()
		vr.LowerClip = r.negOneClip()
	}

	var (
		upperTex, lowerTex *texture.Texture
		upperAlt, lowerAlt fixed.Fixed
	)
	if drawUpper {
		upperTex = r.graphics.Texture(side.TopTexture)
		if line.Flags&bsp.LineDontPegTop != 0 {
			upperAlt = worldFrontZ1
		} else {
			upperAlt = back.CeilingHeight + fixed.FromInt(upperTex.Height) - r.viewZ
		}
		upperAlt += side.RowOffset
	}
	if drawLower {
		lowerTex = r.graphics.Texture(side.BottomTexture)
		if line.Flags&bsp.LineDontPegBottom != 0 {
			lowerAlt = worldFrontZ1
		} else {
			lowerAlt = worldBackZ2
		}
		lowerAlt += side.RowOffset
	}
	var maskedTex *texture.Texture
	if drawMasked {
		maskedTex = r.graphics.Texture(side.MiddleTexture)
		vr.MaskedColumns = r.clipDataUsed - x1
		r.clipDataUsed += n
	}
	textured := drawUpper || drawLower || drawMasked

	lights := r.wallLights(seg)
	planeLights := r.lights.zLights(r.sectorLight(front))

	frontZ1 := worldFrontZ1 >> 4
	frontZ2 := worldFrontZ2 >> 4
	backZ1 := worldBackZ1 >> 4
	backZ2 := worldBackZ2 >> 4
	centerY := r.ctx.CenterYFrac >> 4

	wallY1Frac := centerY - fixed.Mul(frontZ1, g.scale1)
	wallY1Step := -fixed.Mul(g.scaleStep, frontZ1)
	wallY2Frac := centerY - fixed.Mul(frontZ2, g.scale1)
	wallY2Step := -fixed.Mul(g.scaleStep, frontZ2)
	upperFrac := centerY - fixed.Mul(backZ1, g.scale1)
	upperStep := -fixed.Mul(g.scaleStep, backZ1)
	lowerFrac := centerY - fixed.Mul(backZ2, g.scale1)
	lowerStep := -fixed.Mul(g.scaleStep, backZ2)
	scale := g.scale1

	for x := x1; x <= x2; x++ {
		drawWallY1 := int((wallY1Frac + heightUnit - 1) >> heightBits)
		drawWallY2 := int(wallY2Frac >> heightBits)

		var (
			col      int
			colormap *[256]byte
			iscale   fixed.Fixed
		)
		if textured {
			col = r.textureColumn(&g, x)
			colormap = scaleLight(lights, scale)
			iscale = invScale(scale)
		}

		if drawCeiling {
			cy1 := int(r.upperClip[x]) + 1
			cy2 := min(drawWallY1-1, int(r.lowerClip[x])-1)
			r.drawCeilingColumn(front, planeLights, x, cy1, cy2)
		}
		if drawUpper {
			yl := max(drawWallY1, int(r.upperClip[x])+1)
			mid := min(int(upperFrac>>heightBits), int(r.lowerClip[x])-1)
			if mid >= yl {
				r.drawColumn(upperTex.Pixels(col), colormap, x, yl, mid, iscale, upperAlt)
				r.upperClip[x] = int16(mid)
			} else {
				r.upperClip[x] = int16(yl - 1)
			}
			upperFrac += upperStep
		} else if drawCeiling {
			if int(r.upperClip[x]) < drawWallY1-1 {
				r.upperClip[x] = int16(drawWallY1 - 1)
			}
		}

		if drawFloor {
			fy1 := max(drawWallY2+1, int(r.upperClip[x])+1)
			fy2 := int(r.lowerClip[x]) - 1
			r.drawFloorColumn(front, planeLights, x, fy1, fy2)
		}
		if drawLower {
			mid := max(int((lowerFrac+heightUnit-1)>>heightBits), int(r.upperClip[x])+1)
			yh := min(drawWallY2, int(r.lowerClip[x])-1)
			if mid <= yh {
				r.drawColumn(lowerTex.Pixels(col), colormap, x, mid, yh, iscale, lowerAlt)
				r.lowerClip[x] = int16(mid)
			} else {
				r.lowerClip[x] = int16(yh + 1)
			}
			lowerFrac += lowerStep
		} else if drawFloor {
			if int(r.lowerClip[x]) > drawWallY2+1 {
				r.lowerClip[x] = int16(drawWallY2 + 1)
			}
		}

		if drawMasked {
			r.clipData[vr.MaskedColumns+x] = int16(maskedTex.Wrap(col))
		}

		wallY1Frac += wallY1Step
		wallY2Frac += wallY2Step
		scale += g.scaleStep
	}

	if (vr.Silhouette&SilUpper != 0 || drawMasked) && vr.UpperClip < 0 {
		copy(r.clipData[r.clipDataUsed:], r.upperClip[x1:x2+1])
		vr.UpperClip = r.clipDataUsed - x1
		r.clipDataUsed += n
	}
	if (vr.Silhouette&SilLower != 0 || drawMasked) && vr.LowerClip < 0 {
		copy(r.clipData[r.clipDataUsed:], r.lowerClip[x1:x2+1])
		vr.LowerClip = r.clipDataUsed - x1
		r.clipDataUsed += n
	}
	if drawMasked && vr.Silhouette&SilUpper == 0 {
		vr.Silhouette |= SilUpper
		vr.UpperSilHeight = fixed.MinValue
	}
	if drawMasked && vr.Silhouette&SilLower == 0 {
		vr.Silhouette |= SilLower
		vr.LowerSilHeight = fixed.MaxValue
	}
}
