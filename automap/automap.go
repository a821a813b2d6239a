// SPDX-License-Identifier: GPL-2.0-or-later

// Package automap draws the overhead map of the level: the lines the
// player has seen, an arrow for the player and optionally a grid, marks
// and the things.
package automap

import (
	"github.com/chewxy/math32"

	"godoom/bsp"
	"godoom/cvars"
	"godoom/draw"
	"godoom/fixed"
	"godoom/world"
)

// Palette indices of the map colors.
const (
	colorBackground    = 0
	colorWall          = 176
	colorTeleporter    = 184
	colorFloorChange   = 64
	colorCeilingChange = 231
	colorTwoSided      = 96
	colorAllMap        = 99
	colorGrid          = 104
	colorThing         = 112
	colorPlayer        = 209
	colorMark          = 200
)

const (
	gridSize         = 128
	maxMarks         = 10
	playerRadius     = 16
	teleportSpecial  = 39
	zoomStep float32 = 1.2
	// initialZoomOut is how much wider than the whole map the first view is.
	initialZoomOut float32 = 0.7
)

// Options are the user settings of the map, see OptionsFromCvars.
type Options struct {
	Follow bool
	Grid   bool
	// AllMap draws unseen lines in gray, as the computer map power-up does.
	AllMap bool
	// Things draws every thing as a triangle.
	Things bool
	// RevealAll draws every line with its real color, secret or not.
	RevealAll bool
	// StartScale is the first zoom in pixels per map unit, 0 fits the map.
	StartScale float32
}

func OptionsFromCvars() Options {
	return Options{
		Follow: cvars.AutomapFollow.Bool(),
		Grid:   cvars.AutomapGrid.Bool(),
		AllMap: cvars.AutomapAllMap.Bool(),
		Things: cvars.AutomapThings.Bool(),

		StartScale: cvars.AutomapScale.Value(),
	}
}

type point struct {
	x, y float32
}

type line struct {
	a, b point
}

// playerArrow points along +x, in player radius units.
var playerArrow = func() []line {
	const r = 8 * playerRadius / 7.0
	return []line{
		{point{-r + r/8, 0}, point{r, 0}},
		{point{r, 0}, point{r - r/2, r / 4}},
		{point{r, 0}, point{r - r/2, -r / 4}},
		{point{-r + r/8, 0}, point{-r - r/8, r / 4}},
		{point{-r + r/8, 0}, point{-r - r/8, -r / 4}},
		{point{-r + 3*r/8, 0}, point{-r + r/8, r / 4}},
		{point{-r + 3*r/8, 0}, point{-r + r/8, -r / 4}},
	}
}()

var thingTriangle = func() []line {
	const r = playerRadius
	return []line{
		{point{-.5 * r, -.7 * r}, point{r, 0}},
		{point{r, 0}, point{-.5 * r, .7 * r}},
		{point{-.5 * r, .7 * r}, point{-.5 * r, -.7 * r}},
	}
}()

// Map is the automap of one level on a width x height surface.
type Map struct {
	Options

	world  *world.World
	width  int
	height int

	// the view center in map units and the zoom in pixels per unit
	cx, cy   float32
	scale    float32
	minScale float32
	maxScale float32

	bounds [4]float32
	marks  []point
}

func New(w *world.World, width, height int, o Options) *Map {
	m := &Map{
		Options: o,
		world:   w,
		width:   width,
		height:  height,
	}
	m.findBounds()
	m.scale = m.minScale / initialZoomOut
	if o.StartScale > 0 {
		m.scale = o.StartScale
	}
	m.scale = clampScale(m.scale, m.minScale, m.maxScale)
	m.cx = (m.bounds[bsp.BoxLeft] + m.bounds[bsp.BoxRight]) / 2
	m.cy = (m.bounds[bsp.BoxTop] + m.bounds[bsp.BoxBottom]) / 2
	return m
}

func clampScale(s, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(s, hi))
}

// findBounds sets the map bounds and the scale range: fully zoomed out
// the whole map fits, fully zoomed in the view is two player widths high.
func (m *Map) findBounds() {
	b := [4]float32{}
	b[bsp.BoxLeft], b[bsp.BoxBottom] = math32.MaxFloat32, math32.MaxFloat32
	b[bsp.BoxRight], b[bsp.BoxTop] = -math32.MaxFloat32, -math32.MaxFloat32
	for _, v := range m.world.Map.Vertices {
		x, y := float32(v.X.Float()), float32(v.Y.Float())
		b[bsp.BoxLeft] = math32.Min(b[bsp.BoxLeft], x)
		b[bsp.BoxRight] = math32.Max(b[bsp.BoxRight], x)
		b[bsp.BoxBottom] = math32.Min(b[bsp.BoxBottom], y)
		b[bsp.BoxTop] = math32.Max(b[bsp.BoxTop], y)
	}
	m.bounds = b
	w := math32.Max(b[bsp.BoxRight]-b[bsp.BoxLeft], 1)
	h := math32.Max(b[bsp.BoxTop]-b[bsp.BoxBottom], 1)
	m.minScale = math32.Min(float32(m.width)/w, float32(m.height)/h)
	m.maxScale = float32(m.height) / (2 * playerRadius)
}

// Scale returns the zoom in pixels per map unit.
func (m *Map) Scale() float32 {
	return m.scale
}

// Center returns the map position in the middle of the screen.
func (m *Map) Center() (x, y float32) {
	return m.cx, m.cy
}

// Zoom multiplies the scale by f, within the zoom range.
func (m *Map) Zoom(f float32) {
	m.scale = clampScale(m.scale*f, m.minScale, m.maxScale)
}

func (m *Map) ZoomIn()  { m.Zoom(zoomStep) }
func (m *Map) ZoomOut() { m.Zoom(1 / zoomStep) }

// FitAll zooms out until the whole map is in view.
func (m *Map) FitAll() {
	m.scale = m.minScale
	m.cx = (m.bounds[bsp.BoxLeft] + m.bounds[bsp.BoxRight]) / 2
	m.cy = (m.bounds[bsp.BoxTop] + m.bounds[bsp.BoxBottom]) / 2
}

// Pan moves the view by dx, dy screen pixels. Panning ends follow mode
// and never leaves the map bounds.
func (m *Map) Pan(dx, dy int) {
	m.Follow = false
	m.cx += float32(dx) / m.scale
	m.cy -= float32(dy) / m.scale
	m.cx = math32.Max(m.bounds[bsp.BoxLeft], math32.Min(m.cx, m.bounds[bsp.BoxRight]))
	m.cy = math32.Max(m.bounds[bsp.BoxBottom], math32.Min(m.cy, m.bounds[bsp.BoxTop]))
}

// AddMark marks the current view center. The oldest mark is replaced once
// all marks are in use. It returns the mark number.
func (m *Map) AddMark() int {
	p := point{m.cx, m.cy}
	if len(m.marks) < maxMarks {
		m.marks = append(m.marks, p)
		return len(m.marks) - 1
	}
	copy(m.marks, m.marks[1:])
	m.marks[maxMarks-1] = p
	return maxMarks - 1
}

func (m *Map) ClearMarks() {
	m.marks = m.marks[:0]
}

func (m *Map) Marks() int {
	return len(m.marks)
}

// toScreen maps world coordinates to pixels, y up in the world is up on
// the screen.
func (m *Map) toScreen(p point) (int, int) {
	x := float32(m.width)/2 + (p.x-m.cx)*m.scale
	y := float32(m.height)/2 - (p.y-m.cy)*m.scale
	return int(math32.Floor(x)), int(math32.Floor(y))
}

func (m *Map) drawLine(dst *draw.Surface, l line, c byte) {
	x1, y1 := m.toScreen(l.a)
	x2, y2 := m.toScreen(l.b)
	dst.DrawLine(x1, y1, x2, y2, c)
}

func vertexPoint(v *bsp.Vertex) point {
	return point{float32(v.X.Float()), float32(v.Y.Float())}
}

// Render draws the map for player p, which may be nil, into dst.
func (m *Map) Render(dst *draw.Surface, p *world.Player) {
	if m.Follow && p != nil {
		m.cx = float32(p.Mobj.X.Float())
		m.cy = float32(p.Mobj.Y.Float())
	}
	dst.Clear(colorBackground)
	if m.Grid {
		m.drawGrid(dst)
	}
	m.drawWalls(dst)
	if m.Things {
		m.drawThings(dst)
	}
	if p != nil {
		m.drawShape(dst, playerArrow, p.Mobj, colorPlayer)
	}
	m.drawMarks(dst)
}

func (m *Map) drawGrid(dst *draw.Surface) {
	hw := float32(m.width) / 2 / m.scale
	hh := float32(m.height) / 2 / m.scale
	left, right := m.cx-hw, m.cx+hw
	bottom, top := m.cy-hh, m.cy+hh
	for x := math32.Ceil(left/gridSize) * gridSize; x <= right; x += gridSize {
		m.drawLine(dst, line{point{x, bottom}, point{x, top}}, colorGrid)
	}
	for y := math32.Ceil(bottom/gridSize) * gridSize; y <= top; y += gridSize {
		m.drawLine(dst, line{point{left, y}, point{right, y}}, colorGrid)
	}
}

// lineColor returns the color of l and whether it is drawn at all.
func (m *Map) lineColor(l *bsp.LineDef) (byte, bool) {
	if l.Flags&bsp.LineMapped == 0 && !m.RevealAll {
		if m.AllMap && l.Flags&bsp.LineDontDraw == 0 {
			return colorAllMap, true
		}
		return 0, false
	}
	if l.Flags&bsp.LineDontDraw != 0 && !m.RevealAll {
		return 0, false
	}
	switch {
	case l.BackSector == nil:
		return colorWall, true
	case l.Special == teleportSpecial:
		return colorTeleporter, true
	case l.Flags&bsp.LineSecret != 0 && !m.RevealAll:
		return colorWall, true
	case l.BackSector.FloorHeight != l.FrontSector.FloorHeight:
		return colorFloorChange, true
	case l.BackSector.CeilingHeight != l.FrontSector.CeilingHeight:
		return colorCeilingChange, true
	case m.RevealAll:
		return colorTwoSided, true
	}
	return 0, false
}

func (m *Map) drawWalls(dst *draw.Surface) {
	for _, l := range m.world.Map.Lines {
		if c, ok := m.lineColor(l); ok {
			m.drawLine(dst, line{vertexPoint(l.V1), vertexPoint(l.V2)}, c)
		}
	}
}

func (m *Map) drawThings(dst *draw.Surface) {
	for _, s := range m.world.Map.Sectors {
		for _, mo := range m.world.ThingsIn(s) {
			m.drawShape(dst, thingTriangle, mo, colorThing)
		}
	}
}

// drawShape draws lines rotated to the facing of mo and moved to its
// position.
func (m *Map) drawShape(dst *draw.Surface, shape []line, mo *world.Mobj, c byte) {
	sin, cos := math32.Sincos(float32(mo.Angle.Degrees()) * math32.Pi / 180)
	at := point{float32(mo.X.Float()), float32(mo.Y.Float())}
	rotate := func(p point) point {
		return point{at.x + p.x*cos - p.y*sin, at.y + p.x*sin + p.y*cos}
	}
	for _, l := range shape {
		m.drawLine(dst, line{rotate(l.a), rotate(l.b)}, c)
	}
}

func (m *Map) drawMarks(dst *draw.Surface) {
	for _, p := range m.marks {
		x, y := m.toScreen(p)
		dst.DrawLine(x-2, y-2, x+2, y+2, colorMark)
		dst.DrawLine(x-2, y+2, x+2, y-2, colorMark)
	}
}

// ToMap converts a screen pixel back to map coordinates.
func (m *Map) ToMap(x, y int) (fixed.Fixed, fixed.Fixed) {
	mx := m.cx + (float32(x)-float32(m.width)/2)/m.scale
	my := m.cy - (float32(y)-float32(m.height)/2)/m.scale
	return fixed.FromFloat(float64(mx)), fixed.FromFloat(float64(my))
}
