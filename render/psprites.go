// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/fixed"
	"godoom/world"
)

// drawPlayerSprites draws the weapon overlays of p on top of the view.
func (r *Renderer) drawPlayerSprites(p *world.Player) {
	lights := r.lights.scaleLights(r.sectorLight(p.Mobj.Sector))
	for i := range p.PSprites {
		if ps := &p.PSprites[i]; ps.Active {
			r.drawPlayerSprite(p, ps, lights)
		}
	}
}

func (r *Renderer) drawPlayerSprite(p *world.Player, ps *world.PlayerSprite, lights *scaleRow) {
	ctx := r.ctx
	sprites := r.graphics.Sprites
	if ps.Sprite < 0 || ps.Sprite >= len(sprites) {
		return
	}
	frameNum := ps.Frame & world.FrameMask
	if frameNum >= len(sprites[ps.Sprite].Frames) {
		return
	}
	frame := &sprites[ps.Sprite].Frames[frameNum]
	patch := frame.Patches[0]
	if patch == nil {
		return
	}
	flip := frame.Flip[0]

	tx := ps.Sx - fixed.FromInt(160) - fixed.FromInt(patch.LeftOffset)
	x1 := (ctx.CenterXFrac + fixed.Mul(tx, ctx.PSpriteScale)).Int()
	if x1 > ctx.ViewWidth {
		return
	}
	tx += fixed.FromInt(patch.Width)
	x2 := (ctx.CenterXFrac + fixed.Mul(tx, ctx.PSpriteScale)).Int() - 1
	if x2 < 0 {
		return
	}

	vis := VisSprite{
		X1:         max(x1, 0),
		X2:         min(x2, ctx.ViewWidth-1),
		Scale:      ctx.PSpriteScale << ctx.DetailShift,
		TextureAlt: fixed.FromInt(baseYCenter) + fixed.One/2 - (ps.Sy - fixed.FromInt(patch.TopOffset)),
		Patch:      patch,
	}
	if flip {
		vis.XIScale = -ctx.PSpriteIScale
		vis.StartFrac = fixed.FromInt(patch.Width) - 1
	} else {
		vis.XIScale = ctx.PSpriteIScale
	}
	if vis.X1 > x1 {
		vis.StartFrac += vis.XIScale * fixed.Fixed(vis.X1-x1)
	}

	switch {
	case p.Invisible:
		vis.ColorMap = r.shadowColorMap()
	case r.lights.fixed != nil:
		vis.ColorMap = r.lights.fixed
	case ps.Frame&world.FrameFullBright != 0:
		vis.ColorMap = r.lighting.ColorMap(0)
	default:
		vis.ColorMap = lights[maxLightScale-1]
	}

	// only the window edges clip weapon sprites
	upper := r.clipData[r.negOneClip() : r.negOneClip()+ctx.ViewWidth]
	lower := r.clipData[r.heightClip() : r.heightClip()+ctx.ViewWidth]
	r.drawVisSprite(&vis, upper, lower)
}
