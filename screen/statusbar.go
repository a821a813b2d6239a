// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"godoom/draw"
	"godoom/render"
	"godoom/texture"
	"godoom/world"
)

// Palette indices of the screen overlays.
const (
	colorBlack     = 0
	colorBarFace   = 100
	colorBarEdge   = 96
	colorBarWell   = 106
	colorHealthy   = 112
	colorHurt      = 231
	colorDying     = 176
	colorBorderTop = 104
)

// status bar layout at 320x200, x positions are right edges of numbers
const (
	sbarAmmoX   = 44
	sbarHealthX = 90
	sbarArmorX  = 221
	sbarFaceX   = 143
	sbarFaceW   = 34
	sbarTotalX  = 314
	sbarNumberY = 6
	sbarLabelY  = 24
	sbarDigits  = 3
)

// StatusBarHeight returns the height of the status bar on a screen of
// the given height.
func StatusBarHeight(height int) int {
	return render.StatusBarHeight * height / 200
}

func screenScale(width, height int) int {
	return max(1, min(width/320, height/200))
}

// drawStatusBar draws the bar for p along the bottom of dst.
func drawStatusBar(dst *draw.Surface, f *texture.Font, p *world.Player) {
	h := StatusBarHeight(dst.Height)
	top := dst.Height - h
	s := screenScale(dst.Width, dst.Height)
	sx := func(x int) int { return x * dst.Width / 320 }

	dst.FillRect(0, top, dst.Width, h, colorBarFace)
	dst.FillRect(0, top, dst.Width, s, colorBarEdge)
	for _, x := range []int{sbarAmmoX + 4, sbarHealthX + 16, sbarArmorX - 100, sbarArmorX + 16} {
		dst.FillRect(sx(x), top+s, s, h-s, colorBarEdge)
	}

	big := sbarDigits * s
	y := top + sbarNumberY*s
	label := top + sbarLabelY*s
	dst.DrawNumber(f, p.Ammo, sx(sbarAmmoX), y, big)
	drawCentered(dst, f, "AMMO", sx(sbarAmmoX/2+2), label, s)

	dst.DrawNumber(f, p.Health, sx(sbarHealthX), y, big)
	dst.DrawChar(f, '%', sx(sbarHealthX), y, big)
	drawCentered(dst, f, "HEALTH", sx(sbarHealthX-14), label, s)

	dst.DrawNumber(f, p.Armor, sx(sbarArmorX), y, big)
	dst.DrawChar(f, '%', sx(sbarArmorX), y, big)
	drawCentered(dst, f, "ARMOR", sx(sbarArmorX-14), label, s)

	// the face is a well lit by how healthy the player is
	fx, fw := sx(sbarFaceX), sx(sbarFaceW)
	dst.FillRect(fx, top+s, fw, h-s, colorBarWell)
	dst.FillRect(fx+2*s, top+3*s, fw-4*s, h-5*s, healthColor(p.Health))

	dst.DrawNumber(f, p.Ammo, sx(sbarTotalX-24), top+8*s, s)
	dst.DrawText(f, "/", sx(sbarTotalX-22), top+8*s, s)
	dst.DrawNumber(f, p.MaxAmmo, sx(sbarTotalX), top+8*s, s)
}

func healthColor(health int) byte {
	switch {
	case health > 66:
		return colorHealthy
	case health > 33:
		return colorHurt
	}
	return colorDying
}

func drawCentered(dst *draw.Surface, f *texture.Font, str string, x, y, scale int) {
	dst.DrawText(f, str, x-draw.MeasureText(f, str, scale)/2, y, scale)
}

// tileFlat fills the rectangle with copies of fl aligned to the screen
// origin.
func tileFlat(dst *draw.Surface, fl *texture.Flat, x, y, w, h int) {
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, dst.Width), min(y+h, dst.Height)
	for dx := x0; dx < x1; dx++ {
		col := dst.Data[dx*dst.Height : (dx+1)*dst.Height]
		for dy := y0; dy < y1; dy++ {
			col[dy] = fl.Data[(dy&texture.FlatMask)*texture.FlatSize+dx&texture.FlatMask]
		}
	}
}

// drawBorder fills everything around the view window with the back flat
// and frames the window.
func drawBorder(dst *draw.Surface, ctx *render.Context, back *texture.Flat, viewBottom int) {
	x, y, w, h := ctx.WindowX, ctx.WindowY, ctx.WindowWidth, ctx.WindowHeight
	fill := func(rx, ry, rw, rh int) {
		if back != nil {
			tileFlat(dst, back, rx, ry, rw, rh)
		} else {
			dst.FillRect(rx, ry, rw, rh, colorBlack)
		}
	}
	fill(0, 0, dst.Width, y)
	fill(0, y+h, dst.Width, viewBottom-y-h)
	fill(0, y, x, h)
	fill(x+w, y, dst.Width-x-w, h)
	if x > 0 || y > 0 {
		dst.FillRect(x, y-1, w, 1, colorBorderTop)
		dst.FillRect(x-1, y-1, 1, h+1, colorBorderTop)
		dst.FillRect(x, y+h, w, 1, colorBlack)
		dst.FillRect(x+w, y-1, 1, h+2, colorBlack)
	}
}
