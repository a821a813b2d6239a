// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/bsp"
	"godoom/fixed"
	"godoom/texture"
)

const angleToSkyShift = 22

// planeCache keeps the per row texture coordinates of the last drawn plane
// column. A row's coordinates are linear in the screen column, so the
// next column of the same sector only adds the step.
type planeCache struct {
	sector *bsp.Sector
	x      int
	y1, y2 int

	xFrac  []fixed.Fixed
	yFrac  []fixed.Fixed
	xStep  []fixed.Fixed
	yStep  []fixed.Fixed
	lights []*[256]byte

	// hits counts the columns that reused the previous column's rows.
	hits int
	// disabled forces the full computation, for testing.
	disabled bool
}

func (c *planeCache) init(height int) {
	c.sector = nil
	c.xFrac = make([]fixed.Fixed, height)
	c.yFrac = make([]fixed.Fixed, height)
	c.xStep = make([]fixed.Fixed, height)
	c.yStep = make([]fixed.Fixed, height)
	c.lights = make([]*[256]byte, height)
}

func (r *Renderer) clearPlanes() {
	r.floorCache.sector = nil
	r.floorCache.hits = 0
	r.ceilCache.sector = nil
	r.ceilCache.hits = 0
}

// drawFloorColumn draws rows y1..y2 of column x with the floor of s.
func (r *Renderer) drawFloorColumn(s *bsp.Sector, lights *zRow, x, y1, y2 int) {
	if s.FloorFlat == r.graphics.SkyFlat {
		r.drawSkyColumn(x, y1, y2)
		return
	}
	if y2 < y1 {
		return
	}
	height := fixed.Abs(s.FloorHeight - r.viewZ)
	r.drawPlaneColumn(&r.floorCache, s, r.graphics.Flat(s.FloorFlat), height, lights, x, y1, y2)
}

// drawCeilingColumn draws rows y1..y2 of column x with the ceiling of s.
func (r *Renderer) drawCeilingColumn(s *bsp.Sector, lights *zRow, x, y1, y2 int) {
	if s.CeilingFlat == r.graphics.SkyFlat {
		r.drawSkyColumn(x, y1, y2)
		return
	}
	if y2 < y1 {
		return
	}
	height := fixed.Abs(s.CeilingHeight - r.viewZ)
	r.drawPlaneColumn(&r.ceilCache, s, r.graphics.Flat(s.CeilingFlat), height, lights, x, y1, y2)
}

func (r *Renderer) drawPlaneColumn(c *planeCache, s *bsp.Sector, flat *texture.Flat, height fixed.Fixed, lights *zRow, x, y1, y2 int) {
	// rows drawn in the previous column only need a step
	p1, p2 := 0, -1
	if !c.disabled && c.sector == s && c.x == x-1 {
		p1 = max(y1, c.y1)
		p2 = min(y2, c.y2)
		if p1 <= p2 {
			c.hits++
		}
	}
	dst := r.view.Data
	pos := x*r.ctx.ViewHeight + y1
	for y := y1; y <= y2; y++ {
		if y >= p1 && y <= p2 {
			c.xFrac[y] += c.xStep[y]
			c.yFrac[y] += c.yStep[y]
		} else {
			r.planeRow(c, height, lights, x, y)
		}
		spot := int((c.yFrac[y]>>(fixed.FracBits-6))&(texture.FlatMask*texture.FlatSize)) +
			int((c.xFrac[y]>>fixed.FracBits)&texture.FlatMask)
		dst[pos] = c.lights[y][flat.Data[spot]]
		pos++
	}
	c.sector = s
	c.x = x
	c.y1 = y1
	c.y2 = y2
}

// planeRow computes the texture coordinates of row y in column x from
// scratch.
func (r *Renderer) planeRow(c *planeCache, height fixed.Fixed, lights *zRow, x, y int) {
	ctx := r.ctx
	distance := fixed.Mul(height, ctx.PlaneYSlope[y])
	xStep := fixed.Mul(distance, r.baseXScale)
	yStep := fixed.Mul(distance, r.baseYScale)

	// coordinates at the left edge of the window, then step right
	length := fixed.Mul(distance, ctx.PlaneDistScale[0])
	angle := r.viewAngle + ctx.XToAngle[0]
	x0 := r.viewX + fixed.Mul(fixed.Cos(angle), length)
	y0 := -r.viewY - fixed.Mul(fixed.Sin(angle), length)

	c.xStep[y] = xStep
	c.yStep[y] = yStep
	c.xFrac[y] = x0 + xStep*fixed.Fixed(x)
	c.yFrac[y] = y0 + yStep*fixed.Fixed(x)

	i := int(distance >> lightZShift)
	if i >= maxLightZ {
		i = maxLightZ - 1
	}
	c.lights[y] = lights[i]
}

// drawSkyColumn draws the sky, which only depends on the view angle. The
// sky is always full bright.
func (r *Renderer) drawSkyColumn(x, y1, y2 int) {
	if y2 < y1 {
		return
	}
	tex := r.graphics.Texture(r.graphics.SkyTexture)
	if tex == nil {
		return
	}
	angle := (r.viewAngle + r.ctx.XToAngle[x]) >> angleToSkyShift
	r.drawColumn(tex.Pixels(int(angle)), r.lighting.ColorMap(skyColorMapIndex), x, y1, y2,
		r.ctx.SkyInvScale, r.ctx.SkyTextureAlt)
}
