// SPDX-License-Identifier: GPL-2.0-or-later

package maps

import (
	"github.com/pkg/errors"

	"godoom/bsp"
	"godoom/fixed"
	"godoom/texture"
	"godoom/world"
)

// Thing is a thing placed in a demo level.
type Thing struct {
	X, Y        int
	Angle       float64
	Sprite      string
	Flags       world.MobjFlags
	Translation int
	FullBright  bool
}

// Level is a demo level ready to be populated.
type Level struct {
	Info   Map
	Map    *bsp.Map
	StartX int
	StartY int
	// StartAngle is in degrees, 0 is east.
	StartAngle float64
	// Par is the par time in seconds.
	Par    int
	Things []Thing
}

// levelBuilder resolves graphics names while building.
type levelBuilder struct {
	*bsp.Builder
	g     *texture.Set
	err   error
	verts map[[2]int]int
}

func newLevelBuilder(g *texture.Set) *levelBuilder {
	return &levelBuilder{Builder: bsp.NewBuilder(), g: g, verts: make(map[[2]int]int)}
}

func (b *levelBuilder) tex(name string) int {
	n, err := b.g.TextureNum(name)
	if err != nil && b.err == nil {
		b.err = err
	}
	return n
}

func (b *levelBuilder) flat(name string) int {
	n, err := b.g.FlatNum(name)
	if err != nil && b.err == nil {
		b.err = err
	}
	return n
}

// v returns the vertex at x,y, adding it the first time.
func (b *levelBuilder) v(x, y int) int {
	k := [2]int{x, y}
	if n, ok := b.verts[k]; ok {
		return n
	}
	n := b.AddVertex(x, y)
	b.verts[k] = n
	return n
}

// wall adds a one sided line through the points, front side on the right.
func (b *levelBuilder) wall(front bsp.SideSpec, pts ...[2]int) {
	for i := 0; i+1 < len(pts); i++ {
		b.AddLine(b.v(pts[i][0], pts[i][1]), b.v(pts[i+1][0], pts[i+1][1]), 0, front, nil)
	}
}

func (b *levelBuilder) portal(x1, y1, x2, y2 int, flags bsp.LineFlags, front, back bsp.SideSpec) {
	b.AddLine(b.v(x1, y1), b.v(x2, y2), flags, front, &back)
}

func (b *levelBuilder) build() (*bsp.Map, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.Build()
}

// LoadDemo builds demo level id with the graphics of g, see DemoGraphics.
func LoadDemo(id string, g *texture.Set) (*Level, error) {
	info, err := Lookup(id)
	if err != nil {
		return nil, err
	}
	var l *Level
	switch info.ID {
	case Demo1.ID:
		l, err = courtyard(g)
	case Demo2.ID:
		l, err = stairHall(g)
	default:
		return nil, errors.Errorf("%s is not a demo level", info.ID)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", info.ID)
	}
	l.Info = info
	return l, nil
}

// courtyard is an open sky yard with a pillar, a raised dais and a grate
// looking into a side room.
func courtyard(g *texture.Set) (*Level, error) {
	b := newLevelBuilder(g)
	yard := b.AddSector(bsp.SectorSpec{Floor: 0, Ceiling: 192, FloorFlat: b.flat("FLOOR4_8"), CeilingFlat: b.flat("F_SKY1"), Light: 224})
	dais := b.AddSector(bsp.SectorSpec{Floor: 32, Ceiling: 192, FloorFlat: b.flat("FLAT5_4"), CeilingFlat: b.flat("F_SKY1"), Light: 224})
	side := b.AddSector(bsp.SectorSpec{Floor: 0, Ceiling: 128, FloorFlat: b.flat("NUKAGE1"), CeilingFlat: b.flat("CEIL3_5"), Light: 144})

	brick := b.tex("BRICK")
	yardWall := bsp.SideSpec{Sector: yard, Middle: brick}
	b.wall(yardWall, [2]int{1024, 384}, [2]int{1024, 0}, [2]int{0, 0}, [2]int{0, 1024}, [2]int{1024, 1024}, [2]int{1024, 640})
	b.portal(1024, 640, 1024, 384, 0,
		bsp.SideSpec{Sector: yard, Top: brick, Middle: b.tex("GRATE")},
		bsp.SideSpec{Sector: side, Middle: b.tex("GRATE")})
	sideWall := bsp.SideSpec{Sector: side, Middle: brick}
	b.wall(sideWall, [2]int{1024, 640}, [2]int{1280, 640}, [2]int{1280, 384}, [2]int{1024, 384})

	// the dais and the pillar are walked counterclockwise, their front
	// sides face the yard
	step := bsp.SideSpec{Sector: yard, Bottom: b.tex("STEP")}
	top := bsp.SideSpec{Sector: dais}
	corners := [][2]int{{160, 160}, {352, 160}, {352, 352}, {160, 352}, {160, 160}}
	for i := 0; i+1 < len(corners); i++ {
		b.portal(corners[i][0], corners[i][1], corners[i+1][0], corners[i+1][1], 0, step, top)
	}
	b.wall(yardWall, [2]int{600, 600}, [2]int{700, 600}, [2]int{700, 700}, [2]int{600, 700}, [2]int{600, 600})

	m, err := b.build()
	if err != nil {
		return nil, err
	}
	return &Level{
		Map:        m,
		StartX:     512,
		StartY:     96,
		StartAngle: 80,
		Par:        30,
		Things: []Thing{
			{X: 256, Y: 256, Angle: 270, Sprite: "TROO"},
			{X: 800, Y: 500, Angle: 180, Sprite: "TROO", Translation: 1},
			{X: 650, Y: 850, Angle: 90, Sprite: "TROO", Flags: world.MobjShadow},
			{X: 900, Y: 150, Sprite: "BAR1", FullBright: true},
			{X: 1150, Y: 512, Sprite: "BAR1"},
		},
	}, nil
}

// stairHall is a hall of rising steps with darkening light ending at a
// closed door.
func stairHall(g *texture.Set) (*Level, error) {
	b := newLevelBuilder(g)
	floor, ceil := b.flat("FLOOR4_8"), b.flat("CEIL3_5")
	brick, stepTex := b.tex("BRICK"), b.tex("STEP")

	const steps = 5
	var sectors [steps]int
	for i := range sectors {
		sectors[i] = b.AddSector(bsp.SectorSpec{
			Floor: 16 * i, Ceiling: 160, FloorFlat: floor, CeilingFlat: ceil, Light: 240 - 32*i,
		})
	}
	door := b.AddSector(bsp.SectorSpec{Floor: 64, Ceiling: 64, FloorFlat: floor, CeilingFlat: ceil, Light: 112})
	room := b.AddSector(bsp.SectorSpec{Floor: 64, Ceiling: 192, FloorFlat: b.flat("NUKAGE1"), CeilingFlat: ceil, Light: 96})

	b.wall(bsp.SideSpec{Sector: sectors[0], Middle: brick}, [2]int{0, 0}, [2]int{0, 256})
	for i, s := range sectors {
		x1, x2 := 128*i, 128*(i+1)
		wall := bsp.SideSpec{Sector: s, Middle: brick}
		b.wall(wall, [2]int{x1, 256}, [2]int{x2, 256})
		b.wall(wall, [2]int{x2, 0}, [2]int{x1, 0})
		if i+1 < steps {
			b.portal(x2, 256, x2, 0, 0,
				bsp.SideSpec{Sector: s, Bottom: stepTex},
				bsp.SideSpec{Sector: sectors[i+1]})
		}
	}
	doorTex, track := b.tex("DOOR"), b.tex("DOORTRAK")
	b.portal(640, 256, 640, 0, 0,
		bsp.SideSpec{Sector: sectors[steps-1], Top: doorTex},
		bsp.SideSpec{Sector: door})
	b.wall(bsp.SideSpec{Sector: door, Middle: track}, [2]int{640, 256}, [2]int{672, 256})
	b.wall(bsp.SideSpec{Sector: door, Middle: track}, [2]int{672, 0}, [2]int{640, 0})
	b.portal(672, 0, 672, 256, bsp.LineSecret,
		bsp.SideSpec{Sector: room, Top: doorTex},
		bsp.SideSpec{Sector: door})
	b.wall(bsp.SideSpec{Sector: room, Middle: brick}, [2]int{672, 256}, [2]int{1024, 256}, [2]int{1024, 0}, [2]int{672, 0})

	m, err := b.build()
	if err != nil {
		return nil, err
	}
	return &Level{
		Map:    m,
		StartX: 48,
		StartY: 128,
		Par:    45,
		Things: []Thing{
			{X: 400, Y: 64, Angle: 180, Sprite: "TROO", Translation: 2},
			{X: 560, Y: 200, Sprite: "BAR1"},
			{X: 800, Y: 128, Sprite: "TROO", Translation: 3},
		},
	}, nil
}

// Monsters counts the things worth a kill.
func (l *Level) Monsters() int {
	n := 0
	for _, t := range l.Things {
		if t.Sprite == "TROO" {
			n++
		}
	}
	return n
}

// Populate spawns the things of l into w and adds the player at the start
// spot, showing the given weapon sprite.
func (l *Level) Populate(w *world.World, playerSprite, weapon string) (*world.Player, error) {
	g := w.Graphics
	for _, t := range l.Things {
		n, err := g.SpriteNum(t.Sprite)
		if err != nil {
			return nil, errors.Wrap(err, "thing sprite")
		}
		frame := 0
		if t.FullBright {
			frame |= world.FrameFullBright
		}
		mo := w.Spawn(fixed.FromInt(t.X), fixed.FromInt(t.Y), fixed.AngleFromDegrees(t.Angle), n, frame, t.Flags)
		mo.Translation = t.Translation
	}
	ps, err := g.SpriteNum(playerSprite)
	if err != nil {
		return nil, errors.Wrap(err, "player sprite")
	}
	p := w.AddPlayer(fixed.FromInt(l.StartX), fixed.FromInt(l.StartY), fixed.AngleFromDegrees(l.StartAngle), ps)
	if weapon != "" {
		ws, err := g.SpriteNum(weapon)
		if err != nil {
			return nil, errors.Wrap(err, "weapon sprite")
		}
		p.PSprites[world.PSpriteWeapon] = world.PlayerSprite{
			Active: true,
			Sprite: ws,
			Sx:     fixed.FromInt(160),
			Sy:     fixed.FromInt(160),
		}
	}
	return p, nil
}
