// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"github.com/pkg/errors"

	"godoom/fixed"
)

func pointOnSide(x, y, lx, ly, ldx, ldy fixed.Fixed) int {
	if ldx == 0 {
		if x <= lx {
			return b2i(ldy > 0)
		}
		return b2i(ldy < 0)
	}
	if ldy == 0 {
		if y <= ly {
			return b2i(ldx < 0)
		}
		return b2i(ldx > 0)
	}
	dx := x - lx
	dy := y - ly
	// sign bits decide quickly
	if (ldy^ldx^dx^dy)&fixed.MinValue != 0 {
		if (ldy^dx)&fixed.MinValue != 0 {
			return 1
		}
		return 0
	}
	left := fixed.Mul(ldy>>fixed.FracBits, dx)
	right := fixed.Mul(dy, ldx>>fixed.FracBits)
	if right < left {
		return 0
	}
	return 1
}

func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}

// PointOnSide returns 0 if (x,y) is on the front side of the partition and
// 1 otherwise.
func (n *Node) PointOnSide(x, y fixed.Fixed) int {
	return pointOnSide(x, y, n.X, n.Y, n.Dx, n.Dy)
}

// PointOnSide returns 0 for the front side of the seg and 1 for the back.
func (s *Seg) PointOnSide(x, y fixed.Fixed) int {
	return pointOnSide(x, y, s.V1.X, s.V1.Y, s.V2.X-s.V1.X, s.V2.Y-s.V1.Y)
}

// PointInSubsector walks the tree down to the leaf containing (x,y).
func (m *Map) PointInSubsector(x, y fixed.Fixed) *Subsector {
	node := m.Root
	for {
		switch n := node.(type) {
		case *Subsector:
			return n
		case *Node:
			node = n.Children[n.PointOnSide(x, y)]
		default:
			return nil
		}
	}
}

// Validate checks the references the renderer relies on without checking.
func (m *Map) Validate() error {
	if m.Root == nil {
		return errors.New("map has no bsp root")
	}
	for i, s := range m.Segs {
		if s.V1 == nil || s.V2 == nil {
			return errors.Errorf("seg %d has no vertex", i)
		}
		if s.Line == nil || s.Side == nil || s.FrontSector == nil {
			return errors.Errorf("seg %d is not attached to a line side", i)
		}
	}
	for i, l := range m.Lines {
		if l.FrontSide == nil || l.FrontSector == nil {
			return errors.Errorf("line %d has no front side", i)
		}
		if (l.BackSide != nil) != (l.Flags&LineTwoSided != 0) {
			return errors.Errorf("line %d two sided flag does not match its sides", i)
		}
	}
	for i, ss := range m.Subsectors {
		if len(ss.Segs) == 0 {
			return errors.Errorf("subsector %d has no segs", i)
		}
		if ss.Sector == nil {
			return errors.Errorf("subsector %d has no sector", i)
		}
	}
	for i, n := range m.Nodes {
		if n.Children[0] == nil || n.Children[1] == nil {
			return errors.Errorf("node %d misses a child", i)
		}
		if n.Dx == 0 && n.Dy == 0 {
			return errors.Errorf("node %d has a degenerate partition", i)
		}
	}
	return nil
}

// ResetMapped clears the automap's seen flag on every line.
func (m *Map) ResetMapped() {
	for _, l := range m.Lines {
		l.Flags &^= LineMapped
	}
}
