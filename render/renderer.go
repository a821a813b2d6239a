// SPDX-License-Identifier: GPL-2.0-or-later

// Package render is the software 3D renderer. A frame walks the BSP front
// to back drawing walls with their floors and ceilings column by column,
// then draws the sprites and masked middle textures back to front against
// the wall silhouettes recorded on the way.
package render

import (
	"log"

	"github.com/pkg/errors"

	"godoom/bsp"
	"godoom/draw"
	"godoom/fixed"
	"godoom/palette"
	"godoom/texture"
	"godoom/world"
)

const (
	maxClipRanges    = 256
	maxVisWallRanges = 512
	maxVisSprites    = 256
	clipDataPerWidth = 128
	// noMaskedColumn marks a masked texture column as already drawn.
	noMaskedColumn = 0x7fff
)

// Stats counts the work of the last frame.
type Stats struct {
	Nodes             int
	Subsectors        int
	Segs              int
	WallRanges        int
	DroppedWallRanges int
	Sprites           int
	DroppedSprites    int
	MaskedPosts       int
	ClipDataUsed      int
}

// Renderer draws the view of a player into a surface. It is not safe for
// concurrent use; all scratch buffers are reused from frame to frame.
type Renderer struct {
	cfg      Config
	ctx      *Context
	lighting *Lighting
	colorMap palette.ColorMap
	world    *world.World
	graphics *texture.Set

	translations [3][256]byte

	// view is the 3D window, ViewWidth columns of ViewHeight pixels.
	view *draw.Surface

	viewX, viewY, viewZ fixed.Fixed
	viewAngle           fixed.Angle
	extraLight          int
	lights              lightTables
	validCount          int

	// wall pass state
	clips         clipList
	frags         []clipRange
	upperClip     []int16
	lowerClip     []int16
	clipData      []int16
	clipDataUsed  int
	wallRanges    []VisWallRange
	wallRangeUsed int

	// plane state
	baseXScale fixed.Fixed
	baseYScale fixed.Fixed
	floorCache planeCache
	ceilCache  planeCache

	// sprite state
	visSprites    []VisSprite
	visSpriteUsed int
	sortedSprites []*VisSprite
	spriteUpper   []int16
	spriteLower   []int16
	fuzzPos       int

	Stats Stats
}

// New creates a renderer for the world w. cm is the light colormap table.
func New(w *world.World, cm palette.ColorMap, cfg Config) (*Renderer, error) {
	if w == nil {
		return nil, errors.New("renderer needs a world")
	}
	r := &Renderer{
		colorMap:   cm,
		world:      w,
		graphics:   w.Graphics,
		clips:      newClipList(maxClipRanges),
		frags:      make([]clipRange, 0, maxClipRanges+1),
		wallRanges: make([]VisWallRange, maxVisWallRanges),
		visSprites: make([]VisSprite, maxVisSprites),
	}
	r.sortedSprites = make([]*VisSprite, 0, maxVisSprites)
	initTranslations(&r.translations)
	if err := r.Resize(cfg); err != nil {
		return nil, err
	}
	return r, nil
}

// Resize rebuilds the context and every buffer sized after the window.
func (r *Renderer) Resize(cfg Config) error {
	ctx, err := NewContext(cfg)
	if err != nil {
		return errors.Wrap(err, "render context")
	}
	l, err := NewLighting(r.colorMap, ctx.ViewWidth<<ctx.DetailShift)
	if err != nil {
		return errors.Wrap(err, "light tables")
	}
	r.cfg = cfg
	r.ctx = ctx
	r.lighting = l
	r.view = draw.NewSurface(ctx.ViewWidth, ctx.ViewHeight)
	w := ctx.ViewWidth
	r.upperClip = make([]int16, w)
	r.lowerClip = make([]int16, w)
	r.spriteUpper = make([]int16, w)
	r.spriteLower = make([]int16, w)
	// the first two widths are the shared "nothing" and "everything" clips
	r.clipData = make([]int16, 2*w+clipDataPerWidth*w)
	for x := 0; x < w; x++ {
		r.clipData[x] = -1
		r.clipData[w+x] = int16(ctx.ViewHeight)
	}
	r.floorCache.init(ctx.ViewHeight)
	r.ceilCache.init(ctx.ViewHeight)
	log.Printf("render: view %dx%d at %d,%d, detail shift %d",
		ctx.WindowWidth, ctx.WindowHeight, ctx.WindowX, ctx.WindowY, ctx.DetailShift)
	return nil
}

func (r *Renderer) Context() *Context {
	return r.ctx
}

func (r *Renderer) Config() Config {
	return r.cfg
}

// negOneClip and heightClip are offsets into clipData of the shared clip
// arrays: -1 in every column and ViewHeight in every column.
func (r *Renderer) negOneClip() int {
	return 0
}

func (r *Renderer) heightClip() int {
	return r.ctx.ViewWidth
}

// wallPass is what the wall pass hands on to the sprite and masked passes:
// the visible wall ranges in front to back order and the clip data their
// offsets point into.
type wallPass struct {
	ranges   []VisWallRange
	clipData []int16
}

// Render draws the view of player p into the view window of dst. dst has
// to be the screen size the renderer was configured with.
func (r *Renderer) Render(p *world.Player, dst *draw.Surface) {
	r.setupFrame(p)
	walls := r.renderWalls()
	if r.cfg.DrawSprites {
		r.renderSprites(walls)
	}
	if r.cfg.DrawMasked {
		r.renderMaskedTextures(walls)
	}
	r.drawPlayerSprites(p)
	r.present(dst)
}

func (r *Renderer) setupFrame(p *world.Player) {
	mo := p.Mobj
	r.viewX = mo.X
	r.viewY = mo.Y
	r.viewZ = p.ViewZ
	r.viewAngle = mo.Angle
	r.extraLight = p.ExtraLight
	r.lights = r.lighting.frame(p.FixedColorMap)
	r.validCount = r.world.NextFrame()
	r.Stats = Stats{}

	fine := (r.viewAngle - fixed.Ang90).Fine()
	r.baseXScale = fixed.Div(fixed.CosFine(fine), r.ctx.CenterXFrac)
	r.baseYScale = -fixed.Div(fixed.SinFine(fine), r.ctx.CenterXFrac)
}

// renderWalls is the first stage: the BSP walk drawing walls, floors and
// ceilings and collecting the sprites of the visited sectors.
func (r *Renderer) renderWalls() wallPass {
	r.clearClipRanges()
	r.clearWalls()
	r.clearPlanes()
	r.clearSprites()
	r.renderBspNode(r.world.Map.Root)
	r.Stats.WallRanges = r.wallRangeUsed
	r.Stats.ClipDataUsed = r.clipDataUsed
	return wallPass{
		ranges:   r.wallRanges[:r.wallRangeUsed],
		clipData: r.clipData,
	}
}

func (r *Renderer) clearWalls() {
	r.wallRangeUsed = 0
	r.clipDataUsed = 2 * r.ctx.ViewWidth
	for x := range r.upperClip {
		r.upperClip[x] = -1
		r.lowerClip[x] = int16(r.ctx.ViewHeight)
	}
}

// present copies the view into its window of dst, doubling columns in low
// detail.
func (r *Renderer) present(dst *draw.Surface) {
	c := r.ctx
	h := c.ViewHeight
	for x := 0; x < c.ViewWidth; x++ {
		src := r.view.Data[x*h : (x+1)*h]
		for d := 0; d < 1<<c.DetailShift; d++ {
			dx := c.WindowX + x<<c.DetailShift + d
			if dx >= dst.Width {
				break
			}
			o := dst.Index(dx, c.WindowY)
			copy(dst.Data[o:o+h], src)
		}
	}
}

// View returns the 3D window of the last frame, in rendered columns.
func (r *Renderer) View() *draw.Surface {
	return r.view
}

// sectorLight is the light level of s in table rows, including extra
// light.
func (r *Renderer) sectorLight(s *bsp.Sector) int {
	return s.LightLevel>>lightSegShift + r.extraLight
}
