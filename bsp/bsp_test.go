// SPDX-License-Identifier: GPL-2.0-or-later

package bsp

import (
	"testing"

	"godoom/fixed"
)

func squareRoom(t *testing.T) *Map {
	b := NewBuilder()
	s := b.AddSector(SectorSpec{Floor: 0, Ceiling: 128, Light: 160})
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(0, 256)
	v2 := b.AddVertex(256, 256)
	v3 := b.AddVertex(256, 0)
	b.AddPolygon(SideSpec{Sector: s, Middle: 1}, v0, v1, v2, v3)
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return m
}

// twoRooms returns two 256x256 rooms side by side sharing the line x=256.
func twoRooms(t *testing.T) *Map {
	b := NewBuilder()
	a := b.AddSector(SectorSpec{Floor: 0, Ceiling: 128, Light: 160})
	c := b.AddSector(SectorSpec{Floor: 24, Ceiling: 128, Light: 160})
	v := []int{
		b.AddVertex(0, 0), b.AddVertex(0, 256), b.AddVertex(256, 256),
		b.AddVertex(512, 256), b.AddVertex(512, 0), b.AddVertex(256, 0),
	}
	wa := SideSpec{Sector: a, Middle: 1}
	wc := SideSpec{Sector: c, Middle: 1}
	b.AddLine(v[0], v[1], 0, wa, nil)
	b.AddLine(v[1], v[2], 0, wa, nil)
	b.AddLine(v[2], v[3], 0, wc, nil)
	b.AddLine(v[3], v[4], 0, wc, nil)
	b.AddLine(v[4], v[5], 0, wc, nil)
	b.AddLine(v[5], v[0], 0, wa, nil)
	b.AddLine(v[2], v[5], 0, SideSpec{Sector: a, Bottom: 1}, &SideSpec{Sector: c})
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	return m
}

func TestPointOnSide(t *testing.T) {
	n := &Node{X: 0, Y: 0, Dx: fixed.FromInt(0), Dy: fixed.FromInt(10)}
	if got := n.PointOnSide(fixed.FromInt(5), fixed.FromInt(5)); got != 0 {
		t.Errorf("right of up-line = %v, want 0", got)
	}
	if got := n.PointOnSide(fixed.FromInt(-5), fixed.FromInt(5)); got != 1 {
		t.Errorf("left of up-line = %v, want 1", got)
	}
	d := &Node{X: 0, Y: 0, Dx: fixed.FromInt(10), Dy: fixed.FromInt(10)}
	if got := d.PointOnSide(fixed.FromInt(5), fixed.FromInt(1)); got != 0 {
		t.Errorf("below diagonal = %v, want 0", got)
	}
	if got := d.PointOnSide(fixed.FromInt(1), fixed.FromInt(5)); got != 1 {
		t.Errorf("above diagonal = %v, want 1", got)
	}
}

func TestSquareRoomIsOneSubsector(t *testing.T) {
	m := squareRoom(t)
	if len(m.Subsectors) != 1 || len(m.Nodes) != 0 {
		t.Fatalf("got %d subsectors %d nodes, want 1/0", len(m.Subsectors), len(m.Nodes))
	}
	if len(m.Subsectors[0].Segs) != 4 {
		t.Errorf("segs = %d, want 4", len(m.Subsectors[0].Segs))
	}
	ss := m.PointInSubsector(fixed.FromInt(128), fixed.FromInt(128))
	if ss != m.Subsectors[0] {
		t.Errorf("PointInSubsector did not find the room")
	}
}

func TestTwoRooms(t *testing.T) {
	m := twoRooms(t)
	if len(m.Nodes) == 0 {
		t.Fatalf("two rooms built without a node")
	}
	for _, tc := range []struct {
		x, y   int
		sector int
	}{
		{100, 100, 0},
		{20, 240, 0},
		{300, 100, 1},
		{500, 10, 1},
	} {
		ss := m.PointInSubsector(fixed.FromInt(tc.x), fixed.FromInt(tc.y))
		if ss.Sector.Number != tc.sector {
			t.Errorf("PointInSubsector(%d,%d) sector = %d, want %d", tc.x, tc.y, ss.Sector.Number, tc.sector)
		}
	}
	for _, ss := range m.Subsectors {
		for _, s := range ss.Segs {
			if s.FrontSector != ss.Sector {
				t.Errorf("seg front sector %d in subsector of sector %d", s.FrontSector.Number, ss.Sector.Number)
			}
		}
	}
}

func TestLShapeSplits(t *testing.T) {
	b := NewBuilder()
	s := b.AddSector(SectorSpec{Ceiling: 128})
	b.AddPolygon(SideSpec{Sector: s, Middle: 1},
		b.AddVertex(0, 0), b.AddVertex(0, 256), b.AddVertex(128, 256),
		b.AddVertex(128, 128), b.AddVertex(256, 128), b.AddVertex(256, 0))
	m, err := b.Build()
	if err != nil {
		t.Fatalf("Build() = %v", err)
	}
	if len(m.Subsectors) < 2 {
		t.Errorf("L shape has %d subsectors, want at least 2", len(m.Subsectors))
	}
	for _, p := range [][2]int{{10, 10}, {64, 200}, {200, 64}} {
		if ss := m.PointInSubsector(fixed.FromInt(p[0]), fixed.FromInt(p[1])); ss == nil || ss.Sector != m.Sectors[0] {
			t.Errorf("PointInSubsector(%v) = %v", p, ss)
		}
	}
}

func TestBuildErrors(t *testing.T) {
	b := NewBuilder()
	if _, err := b.Build(); err == nil {
		t.Errorf("empty Build() did not fail")
	}
	b = NewBuilder()
	v0 := b.AddVertex(0, 0)
	v1 := b.AddVertex(0, 10)
	b.AddLine(v0, v1, 0, SideSpec{Sector: 3}, nil)
	if _, err := b.Build(); err == nil {
		t.Errorf("Build() with unknown sector did not fail")
	}
}

func TestTwoSidedFlag(t *testing.T) {
	m := twoRooms(t)
	l := m.Lines[6]
	if l.Flags&LineTwoSided == 0 || l.BackSector == nil {
		t.Errorf("shared line is not two sided")
	}
	if m.Lines[0].Flags&LineTwoSided != 0 {
		t.Errorf("outer wall is two sided")
	}
}
