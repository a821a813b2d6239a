// SPDX-License-Identifier: GPL-2.0-or-later

// Package bsp holds the level geometry and its binary space partition. A
// Map is built once per level and is read only while rendering, except for
// the per frame ValidCount stamps and the Mapped line flag.
package bsp

import "godoom/fixed"

type Vertex struct {
	X, Y fixed.Fixed
}

type Sector struct {
	Number        int
	FloorHeight   fixed.Fixed
	CeilingHeight fixed.Fixed
	FloorFlat     int
	CeilingFlat   int
	LightLevel    int
	Special       int
	Tag           int

	// ValidCount is compared against the world's current count to add the
	// sector's things only once per frame.
	ValidCount int
}

type SideDef struct {
	TextureOffset fixed.Fixed
	RowOffset     fixed.Fixed
	TopTexture    int
	BottomTexture int
	MiddleTexture int
	Sector        *Sector
}

type LineFlags int

const (
	LineBlocking LineFlags = 1 << iota
	LineBlockMonsters
	LineTwoSided
	LineDontPegTop
	LineDontPegBottom
	// LineSecret is drawn as a one sided line on the automap.
	LineSecret
	LineSoundBlock
	// LineDontDraw is never drawn on the automap.
	LineDontDraw
	// LineMapped is set once the line was seen by the player.
	LineMapped
)

type LineDef struct {
	V1, V2      *Vertex
	Dx, Dy      fixed.Fixed
	Flags       LineFlags
	Special     int
	Tag         int
	FrontSide   *SideDef
	BackSide    *SideDef
	FrontSector *Sector
	BackSector  *Sector
}

// Seg is the part of a line side inside one subsector.
type Seg struct {
	V1, V2 *Vertex
	// Offset is the distance along the line side to the start of the seg.
	Offset      fixed.Fixed
	Angle       fixed.Angle
	Side        *SideDef
	Line        *LineDef
	FrontSector *Sector
	BackSector  *Sector
}

// Member is either a *Node or a *Subsector.
type Member interface {
	bspMember()
}

// Subsector is a convex leaf of the tree.
type Subsector struct {
	Sector *Sector
	Segs   []*Seg
}

func (*Subsector) bspMember() {}

const (
	BoxTop = iota
	BoxBottom
	BoxLeft
	BoxRight
)

// Box is indexed by BoxTop, BoxBottom, BoxLeft and BoxRight.
type Box [4]fixed.Fixed

func EmptyBox() Box {
	return Box{fixed.MinValue, fixed.MaxValue, fixed.MaxValue, fixed.MinValue}
}

func (b *Box) Add(x, y fixed.Fixed) {
	if x < b[BoxLeft] {
		b[BoxLeft] = x
	}
	if x > b[BoxRight] {
		b[BoxRight] = x
	}
	if y < b[BoxBottom] {
		b[BoxBottom] = y
	}
	if y > b[BoxTop] {
		b[BoxTop] = y
	}
}

// Node splits space by the line through (X,Y) with direction (Dx,Dy).
// Children[0] is the front (right) side.
type Node struct {
	X, Y     fixed.Fixed
	Dx, Dy   fixed.Fixed
	BBox     [2]Box
	Children [2]Member
}

func (*Node) bspMember() {}

type Map struct {
	Vertices   []*Vertex
	Sectors    []*Sector
	Sides      []*SideDef
	Lines      []*LineDef
	Segs       []*Seg
	Subsectors []*Subsector
	Nodes      []*Node
	Root       Member
}
