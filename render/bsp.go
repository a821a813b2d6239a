// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/bsp"
	"godoom/fixed"
)

// checkCoord selects the box corners spanning the box as seen from each of
// the nine regions around it.
var checkCoord = [12][4]int{
	{bsp.BoxRight, bsp.BoxTop, bsp.BoxLeft, bsp.BoxBottom},
	{bsp.BoxRight, bsp.BoxTop, bsp.BoxLeft, bsp.BoxTop},
	{bsp.BoxRight, bsp.BoxBottom, bsp.BoxLeft, bsp.BoxTop},
	{},
	{bsp.BoxLeft, bsp.BoxTop, bsp.BoxLeft, bsp.BoxBottom},
	{},
	{bsp.BoxRight, bsp.BoxBottom, bsp.BoxRight, bsp.BoxTop},
	{},
	{bsp.BoxLeft, bsp.BoxTop, bsp.BoxRight, bsp.BoxBottom},
	{bsp.BoxLeft, bsp.BoxBottom, bsp.BoxRight, bsp.BoxBottom},
	{bsp.BoxLeft, bsp.BoxBottom, bsp.BoxRight, bsp.BoxTop},
}

// renderBspNode draws the near side of every node before the far side, so
// walls arrive front to back.
func (r *Renderer) renderBspNode(m bsp.Member) {
	switch n := m.(type) {
	case *bsp.Subsector:
		r.drawSubsector(n)
	case *bsp.Node:
		r.Stats.Nodes++
		side := n.PointOnSide(r.viewX, r.viewY)
		r.renderBspNode(n.Children[side])
		if r.isPotentiallyVisible(&n.BBox[side^1]) {
			r.renderBspNode(n.Children[side^1])
		}
	}
}

// isPotentiallyVisible reports whether some of the box is inside the view
// angle and not behind solid walls.
func (r *Renderer) isPotentiallyVisible(box *bsp.Box) bool {
	var bx, by int
	switch {
	case r.viewX <= box[bsp.BoxLeft]:
		bx = 0
	case r.viewX < box[bsp.BoxRight]:
		bx = 1
	default:
		bx = 2
	}
	switch {
	case r.viewY >= box[bsp.BoxTop]:
		by = 0
	case r.viewY > box[bsp.BoxBottom]:
		by = 1
	default:
		by = 2
	}
	pos := by<<2 + bx
	if pos == 5 {
		// inside the box
		return true
	}
	c := checkCoord[pos]
	x1, y1 := box[c[0]], box[c[1]]
	x2, y2 := box[c[2]], box[c[3]]

	angle1 := fixed.PointToAngle2(r.viewX, r.viewY, x1, y1) - r.viewAngle
	angle2 := fixed.PointToAngle2(r.viewX, r.viewY, x2, y2) - r.viewAngle
	span := angle1 - angle2
	if span >= fixed.Ang180 {
		// sitting on a line
		return true
	}
	clip := r.ctx.ClipAngle
	if t := angle1 + clip; t > 2*clip {
		if t-2*clip >= span {
			return false
		}
		angle1 = clip
	}
	if t := clip - angle2; t > 2*clip {
		if t-2*clip >= span {
			return false
		}
		angle2 = -clip
	}
	sx1 := r.ctx.ViewAngleToX(angle1)
	sx2 := r.ctx.ViewAngleToX(angle2)
	if sx1 == sx2 {
		return false
	}
	sx2--
	// fully behind a solid range
	return !r.clips.covers(sx1, sx2)
}

func (r *Renderer) drawSubsector(ss *bsp.Subsector) {
	r.Stats.Subsectors++
	r.addSprites(ss.Sector)
	for _, seg := range ss.Segs {
		r.drawSeg(seg)
	}
}

// drawSeg clips a seg to the view angle and hands the visible column range
// on as a solid or a pass wall.
func (r *Renderer) drawSeg(seg *bsp.Seg) {
	r.Stats.Segs++
	angle1 := fixed.PointToAngle2(r.viewX, r.viewY, seg.V1.X, seg.V1.Y)
	angle2 := fixed.PointToAngle2(r.viewX, r.viewY, seg.V2.X, seg.V2.Y)
	span := angle1 - angle2
	if span >= fixed.Ang180 {
		// back side
		return
	}
	rwAngle1 := angle1
	angle1 -= r.viewAngle
	angle2 -= r.viewAngle

	clip := r.ctx.ClipAngle
	if t := angle1 + clip; t > 2*clip {
		if t-2*clip >= span {
			return
		}
		angle1 = clip
	}
	if t := clip - angle2; t > 2*clip {
		if t-2*clip >= span {
			return
		}
		angle2 = -clip
	}
	x1 := r.ctx.ViewAngleToX(angle1)
	x2 := r.ctx.ViewAngleToX(angle2)
	if x1 == x2 {
		return
	}

	w := wallSetup{seg: seg, rwAngle1: rwAngle1}
	front := seg.FrontSector
	back := seg.BackSector
	switch {
	case back == nil:
		r.clipSolidWall(&w, x1, x2-1)
	case back.CeilingHeight <= front.FloorHeight || back.FloorHeight >= front.CeilingHeight:
		// closed door
		r.clipSolidWall(&w, x1, x2-1)
	case back.CeilingHeight != front.CeilingHeight || back.FloorHeight != front.FloorHeight:
		r.clipPassWall(&w, x1, x2-1)
	case back.CeilingFlat == front.CeilingFlat && back.FloorFlat == front.FloorFlat &&
		back.LightLevel == front.LightLevel && seg.Side.MiddleTexture == 0:
		// nothing to see on this line
	default:
		r.clipPassWall(&w, x1, x2-1)
	}
}
