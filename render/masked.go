// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"godoom/bsp"
	"godoom/fixed"
)

// renderMaskedTextures is the third stage: the masked middle textures not
// yet drawn behind a sprite, back to front.
func (r *Renderer) renderMaskedTextures(walls wallPass) {
	for i := len(walls.ranges) - 1; i >= 0; i-- {
		w := &walls.ranges[i]
		if w.MaskedColumns >= 0 {
			r.drawMaskedRange(w, walls.clipData, w.X1, w.X2)
		}
	}
}

// drawMaskedRange draws the columns x1..x2 of the masked middle texture of
// w. Drawn columns are marked so a later call skips them.
func (r *Renderer) drawMaskedRange(w *VisWallRange, clipData []int16, x1, x2 int) {
	seg := w.Seg
	front := seg.FrontSector
	back := seg.BackSector
	tex := r.graphics.Texture(seg.Side.MiddleTexture)
	lights := r.wallLights(seg)

	var alt fixed.Fixed
	if seg.Line.Flags&bsp.LineDontPegBottom != 0 {
		alt = max(front.FloorHeight, back.FloorHeight) + fixed.FromInt(tex.Height) - r.viewZ
	} else {
		alt = min(front.CeilingHeight, back.CeilingHeight) - r.viewZ
	}
	alt += seg.Side.RowOffset

	d := maskedDraw{textureAlt: alt}
	scale := w.Scale1 + w.ScaleStep*fixed.Fixed(x1-w.X1)
	for x := x1; x <= x2; x++ {
		i := w.MaskedColumns + x
		if col := clipData[i]; col != noMaskedColumn {
			d.cmap = scaleLight(lights, scale)
			d.scale = scale
			d.iscale = invScale(scale)
			d.topScreen = r.ctx.CenterYFrac - fixed.Mul(alt, scale)
			r.drawMaskedColumn(&d, tex.Column(int(col)), x,
				int(clipData[w.UpperClip+x]), int(clipData[w.LowerClip+x]))
			clipData[i] = noMaskedColumn
		}
		scale += w.ScaleStep
	}
}
