// SPDX-License-Identifier: GPL-2.0-or-later

package world

import (
	"godoom/fixed"
)

const (
	ViewHeight = 41 * fixed.FracUnit
	// NoFixedColorMap means distance lighting applies.
	NoFixedColorMap = -1
)

// PlayerSprite is an overlay weapon sprite in screen space.
type PlayerSprite struct {
	Active bool
	Sprite int
	Frame  int
	Sx, Sy fixed.Fixed
}

const (
	PSpriteWeapon = iota
	PSpriteFlash
	NumPSprites
)

type Player struct {
	Mobj  *Mobj
	ViewZ fixed.Fixed
	// ExtraLight brightens everything, set by weapon flashes.
	ExtraLight int
	// FixedColorMap overrides distance lighting, e.g. for light amp.
	FixedColorMap int
	Invisible     bool
	PSprites      [NumPSprites]PlayerSprite

	Health    int
	Armor     int
	Ammo      int
	MaxAmmo   int
	Kills     int
	Items     int
	Secrets   int
	LevelTime int
}

// AddPlayer spawns a player thing and sets its eye height.
func (w *World) AddPlayer(x, y fixed.Fixed, angle fixed.Angle, sprite int) *Player {
	mo := w.Spawn(x, y, angle, sprite, 0, 0)
	p := &Player{
		Mobj:          mo,
		ViewZ:         mo.Z + ViewHeight,
		FixedColorMap: NoFixedColorMap,
		Health:        100,
	}
	w.Players = append(w.Players, p)
	return p
}

// UpdateView keeps the eye at view height above the current floor.
func (p *Player) UpdateView() {
	p.Mobj.Z = p.Mobj.Sector.FloorHeight
	p.ViewZ = p.Mobj.Z + ViewHeight
	if ceil := p.Mobj.Sector.CeilingHeight - 4*fixed.FracUnit; p.ViewZ > ceil {
		p.ViewZ = ceil
	}
}
