// SPDX-License-Identifier: GPL-2.0-or-later

// Package world is the snapshot of a running level the renderer consumes:
// the map, the things linked into its sectors and the players.
package world

import (
	"github.com/pkg/errors"

	"godoom/bsp"
	"godoom/fixed"
	"godoom/texture"
)

type MobjFlags int

const (
	// MobjShadow things are drawn with the fuzz effect.
	MobjShadow MobjFlags = 1 << iota
	// MobjNoSector things are not linked into a sector and never drawn.
	MobjNoSector
)

const (
	FrameFullBright = 0x8000
	FrameMask       = 0x7fff
)

// Mobj is a map object: a monster, a pickup, a decoration or a player.
type Mobj struct {
	X, Y, Z fixed.Fixed
	Angle   fixed.Angle
	Sprite  int
	// Frame indexes the sprite's frames, FrameFullBright may be or'ed in.
	Frame int
	Flags MobjFlags
	// Translation selects a color translation table, 0 is none.
	Translation int
	Sector      *bsp.Sector
}

type World struct {
	Map      *bsp.Map
	Graphics *texture.Set
	// ValidCount increases by one every rendered frame.
	ValidCount int

	things  [][]*Mobj
	Players []*Player
}

func New(m *bsp.Map, g *texture.Set) (*World, error) {
	if m == nil || g == nil {
		return nil, errors.New("world needs a map and graphics")
	}
	return &World{
		Map:      m,
		Graphics: g,
		things:   make([][]*Mobj, len(m.Sectors)),
	}, nil
}

// Spawn creates a thing standing on the floor of the sector at (x,y).
func (w *World) Spawn(x, y fixed.Fixed, angle fixed.Angle, sprite, frame int, flags MobjFlags) *Mobj {
	mo := &Mobj{
		X:      x,
		Y:      y,
		Angle:  angle,
		Sprite: sprite,
		Frame:  frame,
		Flags:  flags,
	}
	w.link(mo)
	mo.Z = mo.Sector.FloorHeight
	return mo
}

func (w *World) link(mo *Mobj) {
	ss := w.Map.PointInSubsector(mo.X, mo.Y)
	mo.Sector = ss.Sector
	if mo.Flags&MobjNoSector == 0 {
		n := mo.Sector.Number
		w.things[n] = append(w.things[n], mo)
	}
}

func (w *World) unlink(mo *Mobj) {
	if mo.Sector == nil || mo.Flags&MobjNoSector != 0 {
		return
	}
	n := mo.Sector.Number
	l := w.things[n]
	for i, o := range l {
		if o == mo {
			w.things[n] = append(l[:i], l[i+1:]...)
			break
		}
	}
}

// Move places mo at (x,y) relinking it if it changed sectors.
func (w *World) Move(mo *Mobj, x, y fixed.Fixed) {
	w.unlink(mo)
	mo.X = x
	mo.Y = y
	w.link(mo)
}

func (w *World) Remove(mo *Mobj) {
	w.unlink(mo)
	mo.Sector = nil
}

// ThingsIn returns the things linked into sector s.
func (w *World) ThingsIn(s *bsp.Sector) []*Mobj {
	return w.things[s.Number]
}

// NextFrame advances the valid count for a new rendering pass.
func (w *World) NextFrame() int {
	w.ValidCount++
	return w.ValidCount
}
