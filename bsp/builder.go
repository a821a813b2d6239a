// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"math"

	"github.com/pkg/errors"

	"godoom/fixed"
)

// SectorSpec describes a sector in map units.
type SectorSpec struct {
	Floor       int
	Ceiling     int
	FloorFlat   int
	CeilingFlat int
	Light       int
	Special     int
	Tag         int
}

// SideSpec describes one side of a line.
type SideSpec struct {
	Sector  int
	Top     int
	Bottom  int
	Middle  int
	XOffset int
	YOffset int
}

// Builder assembles vertices, lines and sectors into a Map and partitions
// the line sides into a BSP tree. The front of a line is its right side
// when walking from V1 to V2.
type Builder struct {
	m   *Map
	err error
}

func NewBuilder() *Builder {
	return &Builder{m: &Map{}}
}

func (b *Builder) AddSector(s SectorSpec) int {
	n := len(b.m.Sectors)
	b.m.Sectors = append(b.m.Sectors, &Sector{
		Number:        n,
		FloorHeight:   fixed.FromInt(s.Floor),
		CeilingHeight: fixed.FromInt(s.Ceiling),
		FloorFlat:     s.FloorFlat,
		CeilingFlat:   s.CeilingFlat,
		LightLevel:    s.Light,
		Special:       s.Special,
		Tag:           s.Tag,
	})
	return n
}

// Sector gives access to an added sector, e.g. to tweak heights.
func (b *Builder) Sector(n int) *Sector {
	return b.m.Sectors[n]
}

func (b *Builder) AddVertex(x, y int) int {
	b.m.Vertices = append(b.m.Vertices, &Vertex{X: fixed.FromInt(x), Y: fixed.FromInt(y)})
	return len(b.m.Vertices) - 1
}

func (b *Builder) side(s SideSpec) *SideDef {
	if s.Sector < 0 || s.Sector >= len(b.m.Sectors) {
		b.err = errors.Errorf("side references unknown sector %d", s.Sector)
		return nil
	}
	sd := &SideDef{
		TextureOffset: fixed.FromInt(s.XOffset),
		RowOffset:     fixed.FromInt(s.YOffset),
		TopTexture:    s.Top,
		BottomTexture: s.Bottom,
		MiddleTexture: s.Middle,
		Sector:        b.m.Sectors[s.Sector],
	}
	b.m.Sides = append(b.m.Sides, sd)
	return sd
}

// AddLine adds a line from vertex v1 to v2. back is nil for one sided lines.
func (b *Builder) AddLine(v1, v2 int, flags LineFlags, front SideSpec, back *SideSpec) int {
	if v1 < 0 || v1 >= len(b.m.Vertices) || v2 < 0 || v2 >= len(b.m.Vertices) || v1 == v2 {
		b.err = errors.Errorf("line %d-%d has bad vertices", v1, v2)
		return -1
	}
	l := &LineDef{
		V1:    b.m.Vertices[v1],
		V2:    b.m.Vertices[v2],
		Flags: flags,
	}
	l.Dx = l.V2.X - l.V1.X
	l.Dy = l.V2.Y - l.V1.Y
	l.FrontSide = b.side(front)
	if l.FrontSide != nil {
		l.FrontSector = l.FrontSide.Sector
	}
	if back != nil {
		l.BackSide = b.side(*back)
		if l.BackSide != nil {
			l.BackSector = l.BackSide.Sector
		}
		l.Flags |= LineTwoSided
	} else {
		l.Flags &^= LineTwoSided
	}
	b.m.Lines = append(b.m.Lines, l)
	return len(b.m.Lines) - 1
}

// AddPolygon adds a closed loop of one sided lines around sector using the
// given vertices in clockwise order.
func (b *Builder) AddPolygon(front SideSpec, verts ...int) {
	for i := range verts {
		b.AddLine(verts[i], verts[(i+1)%len(verts)], 0, front, nil)
	}
}

// bseg is a line side fragment while partitioning, in float map units.
type bseg struct {
	x1, y1, x2, y2 float64
	v1, v2         *Vertex
	line           *LineDef
	back           bool
	offset         float64
}

const epsilon = 1.0 / 64

func toFloat(f fixed.Fixed) float64 { return f.Float() }

func (s *bseg) side(px, py float64) float64 {
	dx := s.x2 - s.x1
	dy := s.y2 - s.y1
	return ((px-s.x1)*dy - (py-s.y1)*dx) / math.Hypot(dx, dy)
}

func (s *bseg) sector() *Sector {
	if s.back {
		return s.line.BackSector
	}
	return s.line.FrontSector
}

// Build partitions the line sides and returns the finished map.
func (b *Builder) Build() (*Map, error) {
	if b.err != nil {
		return nil, b.err
	}
	if len(b.m.Lines) == 0 {
		return nil, errors.New("map has no lines")
	}
	var segs []*bseg
	for _, l := range b.m.Lines {
		segs = append(segs, &bseg{
			x1: toFloat(l.V1.X), y1: toFloat(l.V1.Y),
			x2: toFloat(l.V2.X), y2: toFloat(l.V2.Y),
			v1: l.V1, v2: l.V2, line: l,
		})
		if l.BackSide != nil {
			segs = append(segs, &bseg{
				x1: toFloat(l.V2.X), y1: toFloat(l.V2.Y),
				x2: toFloat(l.V1.X), y2: toFloat(l.V1.Y),
				v1: l.V2, v2: l.V1, line: l, back: true,
			})
		}
	}
	root, _, err := b.subdivide(segs)
	if err != nil {
		return nil, err
	}
	b.m.Root = root
	if err := b.m.Validate(); err != nil {
		return nil, errors.Wrap(err, "built map is invalid")
	}
	return b.m, nil
}

func convex(segs []*bseg) bool {
	sector := segs[0].sector()
	for _, s := range segs {
		if s.sector() != sector {
			return false
		}
		for _, o := range segs {
			if s.side(o.x1, o.y1) < -epsilon || s.side(o.x2, o.y2) < -epsilon {
				return false
			}
		}
	}
	return true
}

func (b *Builder) subdivide(segs []*bseg) (Member, Box, error) {
	if convex(segs) {
		return b.leaf(segs), segsBox(segs), nil
	}
	p := choosePartition(segs)
	if p == nil {
		return nil, Box{}, errors.New("no partition line found, map is not closed")
	}
	front, back := b.split(segs, p)
	// the partition runs along the whole line, which keeps it integral
	l := p.line
	n := &Node{X: l.V1.X, Y: l.V1.Y, Dx: l.Dx, Dy: l.Dy}
	if p.back {
		n.X, n.Y, n.Dx, n.Dy = l.V2.X, l.V2.Y, -l.Dx, -l.Dy
	}
	var err error
	if n.Children[0], n.BBox[0], err = b.subdivide(front); err != nil {
		return nil, Box{}, err
	}
	if n.Children[1], n.BBox[1], err = b.subdivide(back); err != nil {
		return nil, Box{}, err
	}
	b.m.Nodes = append(b.m.Nodes, n)
	box := n.BBox[0]
	box.Add(n.BBox[1][BoxLeft], n.BBox[1][BoxTop])
	box.Add(n.BBox[1][BoxRight], n.BBox[1][BoxBottom])
	return n, box, nil
}

func segsBox(segs []*bseg) Box {
	box := EmptyBox()
	for _, s := range segs {
		box.Add(s.v1.X, s.v1.Y)
		box.Add(s.v2.X, s.v2.Y)
	}
	return box
}

func (b *Builder) leaf(segs []*bseg) *Subsector {
	first := len(b.m.Segs)
	for _, s := range segs {
		sg := &Seg{
			V1:     s.v1,
			V2:     s.v2,
			Offset: fixed.FromFloat(s.offset),
			Angle:  fixed.PointToAngle2(s.v1.X, s.v1.Y, s.v2.X, s.v2.Y),
			Line:   s.line,
		}
		if s.back {
			sg.Side = s.line.BackSide
			sg.FrontSector = s.line.BackSector
			sg.BackSector = s.line.FrontSector
		} else {
			sg.Side = s.line.FrontSide
			sg.FrontSector = s.line.FrontSector
			sg.BackSector = s.line.BackSector
		}
		b.m.Segs = append(b.m.Segs, sg)
	}
	ss := &Subsector{
		Sector: segs[0].sector(),
		Segs:   b.m.Segs[first:len(b.m.Segs):len(b.m.Segs)],
	}
	b.m.Subsectors = append(b.m.Subsectors, ss)
	return ss
}

type sideCount struct {
	front, back, splits int
}

func classify(segs []*bseg, p *bseg) sideCount {
	var c sideCount
	for _, s := range segs {
		if s == p {
			c.front++
			continue
		}
		da, db := p.side(s.x1, s.y1), p.side(s.x2, s.y2)
		switch {
		case da > -epsilon && db > -epsilon:
			if math.Abs(da) < epsilon && math.Abs(db) < epsilon && !sameDirection(s, p) {
				c.back++
			} else {
				c.front++
			}
		case da < epsilon && db < epsilon:
			c.back++
		default:
			c.splits++
			c.front++
			c.back++
		}
	}
	return c
}

func sameDirection(s, p *bseg) bool {
	return (s.x2-s.x1)*(p.x2-p.x1)+(s.y2-s.y1)*(p.y2-p.y1) > 0
}

func choosePartition(segs []*bseg) *bseg {
	var best *bseg
	bestCost := math.MaxInt
	for _, p := range segs {
		c := classify(segs, p)
		if c.back == 0 {
			continue
		}
		cost := c.splits*8 + absInt(c.front-c.back)
		if cost < bestCost {
			bestCost = cost
			best = p
		}
	}
	return best
}

func absInt(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func (b *Builder) split(segs []*bseg, p *bseg) (front, back []*bseg) {
	for _, s := range segs {
		if s == p {
			front = append(front, s)
			continue
		}
		da, db := p.side(s.x1, s.y1), p.side(s.x2, s.y2)
		switch {
		case da > -epsilon && db > -epsilon:
			if math.Abs(da) < epsilon && math.Abs(db) < epsilon && !sameDirection(s, p) {
				back = append(back, s)
			} else {
				front = append(front, s)
			}
		case da < epsilon && db < epsilon:
			back = append(back, s)
		default:
			t := da / (da - db)
			x := s.x1 + t*(s.x2-s.x1)
			y := s.y1 + t*(s.y2-s.y1)
			v := &Vertex{X: fixed.FromFloat(x), Y: fixed.FromFloat(y)}
			b.m.Vertices = append(b.m.Vertices, v)
			first := &bseg{
				x1: s.x1, y1: s.y1, x2: x, y2: y,
				v1: s.v1, v2: v, line: s.line, back: s.back, offset: s.offset,
			}
			second := &bseg{
				x1: x, y1: y, x2: s.x2, y2: s.y2,
				v1: v, v2: s.v2, line: s.line, back: s.back,
				offset: s.offset + math.Hypot(x-s.x1, y-s.y1),
			}
			if da > 0 {
				front = append(front, first)
				back = append(back, second)
			} else {
				back = append(back, first)
				front = append(front, second)
			}
		}
	}
	return front, back
}
