// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"testing"

	"godoom/bsp"
	"godoom/fixed"
	"godoom/texture"
)

func twoRooms(t *testing.T) *World {
	b := bsp.NewBuilder()
	a := b.AddSector(bsp.SectorSpec{Ceiling: 128})
	c := b.AddSector(bsp.SectorSpec{Floor: 16, Ceiling: 128})
	v := []int{
		b.AddVertex(0, 0), b.AddVertex(0, 256), b.AddVertex(256, 256),
		b.AddVertex(512, 256), b.AddVertex(512, 0), b.AddVertex(256, 0),
	}
	b.AddLine(v[0], v[1], 0, bsp.SideSpec{Sector: a}, nil)
	b.AddLine(v[1], v[2], 0, bsp.SideSpec{Sector: a}, nil)
	b.AddLine(v[2], v[3], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[3], v[4], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[4], v[5], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[5], v[0], 0, bsp.SideSpec{Sector: a}, nil)
	b.AddLine(v[2], v[5], 0, bsp.SideSpec{Sector: a}, &bsp.SideSpec{Sector: c})
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	w, err := New(m, texture.NewSet())
	if err != nil {
		t.Fatal(err)
	}
	return w
}

func TestSpawnLinks(t *testing.T) {
	w := twoRooms(t)
	mo := w.Spawn(fixed.FromInt(300), fixed.FromInt(100), 0, 0, 0, 0)
	if mo.Sector != w.Map.Sectors[1] {
		t.Fatalf("spawned in sector %d, want 1", mo.Sector.Number)
	}
	if mo.Z != fixed.FromInt(16) {
		t.Errorf("Z = %v, want 16", mo.Z)
	}
	if got := len(w.ThingsIn(w.Map.Sectors[1])); got != 1 {
		t.Errorf("ThingsIn(1) = %d, want 1", got)
	}
}

func TestMoveRelinks(t *testing.T) {
	w := twoRooms(t)
	mo := w.Spawn(fixed.FromInt(300), fixed.FromInt(100), 0, 0, 0, 0)
	w.Move(mo, fixed.FromInt(100), fixed.FromInt(100))
	if len(w.ThingsIn(w.Map.Sectors[1])) != 0 || len(w.ThingsIn(w.Map.Sectors[0])) != 1 {
		t.Errorf("Move did not relink the thing")
	}
	w.Remove(mo)
	if len(w.ThingsIn(w.Map.Sectors[0])) != 0 {
		t.Errorf("Remove left the thing linked")
	}
}

func TestPlayerView(t *testing.T) {
	w := twoRooms(t)
	p := w.AddPlayer(fixed.FromInt(300), fixed.FromInt(100), 0, 0)
	if p.ViewZ != fixed.FromInt(16)+ViewHeight {
		t.Errorf("ViewZ = %v", p.ViewZ)
	}
	if w.NextFrame() != 1 || w.NextFrame() != 2 {
		t.Errorf("NextFrame is not increasing by one")
	}
}

func TestTryMove(t *testing.T) {
	w := twoRooms(t)
	p := w.AddPlayer(fixed.FromInt(100), fixed.FromInt(100), 0, 0)
	mo := p.Mobj
	for _, tc := range []struct {
		x, y   int
		ok     bool
		sector int
	}{
		{200, 100, true, 0},
		// through the step onto the higher floor
		{300, 100, true, 1},
		// into the outer wall
		{300, 300, false, 1},
		{500, 10, true, 1},
		{600, 10, false, 1},
		// back down the step
		{100, 200, true, 0},
		{-10, 200, false, 0},
	} {
		if got := w.TryMove(mo, fixed.FromInt(tc.x), fixed.FromInt(tc.y)); got != tc.ok {
			t.Errorf("TryMove(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.ok)
		}
		if mo.Sector.Number != tc.sector {
			t.Errorf("after TryMove(%v,%v) sector = %v, want %v", tc.x, tc.y, mo.Sector.Number, tc.sector)
		}
	}
	if mo.Z != 0 {
		t.Errorf("Z = %v, want the lower floor", mo.Z)
	}
}

func TestTryMoveHighStep(t *testing.T) {
	b := bsp.NewBuilder()
	a := b.AddSector(bsp.SectorSpec{Ceiling: 128})
	c := b.AddSector(bsp.SectorSpec{Floor: 32, Ceiling: 128})
	d := b.AddSector(bsp.SectorSpec{Floor: 0, Ceiling: 40})
	v := []int{
		b.AddVertex(0, 0), b.AddVertex(0, 256), b.AddVertex(256, 256), b.AddVertex(256, 0),
		b.AddVertex(512, 0), b.AddVertex(512, 256), b.AddVertex(0, 512), b.AddVertex(256, 512),
	}
	b.AddLine(v[0], v[1], 0, bsp.SideSpec{Sector: a}, nil)
	b.AddLine(v[1], v[2], bsp.LineTwoSided, bsp.SideSpec{Sector: a}, &bsp.SideSpec{Sector: d})
	b.AddLine(v[2], v[3], bsp.LineTwoSided, bsp.SideSpec{Sector: a}, &bsp.SideSpec{Sector: c})
	b.AddLine(v[3], v[0], 0, bsp.SideSpec{Sector: a}, nil)
	b.AddLine(v[4], v[3], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[5], v[4], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[2], v[5], 0, bsp.SideSpec{Sector: c}, nil)
	b.AddLine(v[1], v[6], 0, bsp.SideSpec{Sector: d}, nil)
	b.AddLine(v[6], v[7], 0, bsp.SideSpec{Sector: d}, nil)
	b.AddLine(v[7], v[2], 0, bsp.SideSpec{Sector: d}, nil)
	m, err := b.Build()
	if err != nil {
		t.Fatal(err)
	}
	w, err := New(m, texture.NewSet())
	if err != nil {
		t.Fatal(err)
	}
	mo := w.Spawn(fixed.FromInt(128), fixed.FromInt(128), 0, 0, 0, 0)
	if w.TryMove(mo, fixed.FromInt(300), fixed.FromInt(128)) {
		t.Errorf("walked up a 32 unit step")
	}
	if w.TryMove(mo, fixed.FromInt(128), fixed.FromInt(300)) {
		t.Errorf("walked under a 40 unit ceiling")
	}
	if mo.X != fixed.FromInt(128) || mo.Y != fixed.FromInt(128) {
		t.Errorf("blocked moves changed the position to %v,%v", mo.X, mo.Y)
	}
}
