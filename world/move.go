// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"godoom/bsp"
	"godoom/fixed"
)

const (
	// MaxStepHeight is the highest floor step a thing walks up.
	MaxStepHeight = 24 * fixed.FracUnit
	// PlayerHeight is the smallest opening a player fits through.
	PlayerHeight = 56 * fixed.FracUnit
)

// cross is the z of (bx-ax, by-ay) x (px-ax, py-ay) at 8 fractional bits.
func cross(ax, ay, bx, by, px, py fixed.Fixed) int64 {
	return int64((bx-ax)>>8)*int64((py-ay)>>8) - int64((by-ay)>>8)*int64((px-ax)>>8)
}

// crosses reports whether the move from (x1,y1) to (x2,y2) ends on the
// other side of l than it started, within the extent of l. A point on the
// line counts as its front side.
func crosses(l *bsp.LineDef, x1, y1, x2, y2 fixed.Fixed) bool {
	a, b := l.V1, l.V2
	s1 := cross(a.X, a.Y, b.X, b.Y, x1, y1) > 0
	s2 := cross(a.X, a.Y, b.X, b.Y, x2, y2) > 0
	if s1 == s2 {
		return false
	}
	t1 := cross(x1, y1, x2, y2, a.X, a.Y)
	t2 := cross(x1, y1, x2, y2, b.X, b.Y)
	return (t1 <= 0) != (t2 <= 0) || t1 == 0 || t2 == 0
}

// TryMove moves mo to (x,y) unless the way crosses a one sided or blocking
// line, a step higher than MaxStepHeight or an opening lower than
// PlayerHeight. The thing is moved onto the floor of its new sector.
func (w *World) TryMove(mo *Mobj, x, y fixed.Fixed) bool {
	z := mo.Z
	for _, l := range w.Map.Lines {
		if !crosses(l, mo.X, mo.Y, x, y) {
			continue
		}
		if l.BackSector == nil || l.Flags&bsp.LineBlocking != 0 {
			return false
		}
		// the line's front is its right side, the side with a negative cross
		to := l.BackSector
		if cross(l.V1.X, l.V1.Y, l.V2.X, l.V2.Y, x, y) <= 0 {
			to = l.FrontSector
		}
		if to.FloorHeight-z > MaxStepHeight {
			return false
		}
		if to.CeilingHeight-max(to.FloorHeight, z) < PlayerHeight {
			return false
		}
	}
	w.Move(mo, x, y)
	mo.Z = mo.Sector.FloorHeight
	return true
}
