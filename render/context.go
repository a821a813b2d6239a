// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/pkg/errors"

	"godoom/fixed"
	qmath "godoom/math"
)

const (
	// fieldOfView is the fine angle spanned by the view window, 90 degrees.
	fieldOfView = 2048
	// StatusBarHeight at 320x200.
	StatusBarHeight = 32
	baseYCenter     = 100
)

// Context holds the lookup tables that only depend on the view window
// geometry. It is rebuilt as a whole when the geometry changes.
type Context struct {
	ScreenWidth  int
	ScreenHeight int

	// The 3D view window inside the screen.
	WindowX      int
	WindowY      int
	WindowWidth  int
	WindowHeight int

	// ViewWidth is the number of rendered columns, half the window width
	// in low detail.
	ViewWidth   int
	ViewHeight  int
	DetailShift int

	CenterX     int
	CenterY     int
	CenterXFrac fixed.Fixed
	CenterYFrac fixed.Fixed
	Projection  fixed.Fixed

	XToAngle  []fixed.Angle
	AngleToX  [fixed.FineAngles / 2]int
	ClipAngle fixed.Angle

	PlaneYSlope    []fixed.Fixed
	PlaneDistScale []fixed.Fixed

	SkyInvScale   fixed.Fixed
	SkyTextureAlt fixed.Fixed
	PSpriteScale  fixed.Fixed
	PSpriteIScale fixed.Fixed
}

// NewContext computes the view window and its tables for cfg.
func NewContext(cfg Config) (*Context, error) {
	if cfg.ScreenWidth < 64 || cfg.ScreenHeight < 40 {
		return nil, errors.Errorf("screen %dx%d is too small", cfg.ScreenWidth, cfg.ScreenHeight)
	}
	blocks := qmath.Clamp(3, cfg.ScreenBlocks, 11)
	c := &Context{
		ScreenWidth:  cfg.ScreenWidth,
		ScreenHeight: cfg.ScreenHeight,
	}
	if blocks == 11 {
		c.WindowWidth = cfg.ScreenWidth
		c.WindowHeight = cfg.ScreenHeight
	} else {
		sbar := StatusBarHeight * cfg.ScreenHeight / 200
		c.WindowWidth = (blocks * cfg.ScreenWidth / 10) &^ 7
		if blocks == 10 {
			c.WindowHeight = cfg.ScreenHeight - sbar
		} else {
			c.WindowHeight = (blocks * (cfg.ScreenHeight - sbar) / 10) &^ 1
		}
		c.WindowX = (cfg.ScreenWidth - c.WindowWidth) / 2
		c.WindowY = (cfg.ScreenHeight - sbar - c.WindowHeight) / 2
	}
	if cfg.LowDetail {
		c.DetailShift = 1
	}
	c.ViewWidth = c.WindowWidth >> c.DetailShift
	c.ViewHeight = c.WindowHeight
	c.CenterX = c.ViewWidth / 2
	c.CenterY = c.ViewHeight / 2
	c.CenterXFrac = fixed.FromInt(c.CenterX)
	c.CenterYFrac = fixed.FromInt(c.CenterY)
	c.Projection = c.CenterXFrac

	c.initTextureMapping()
	c.initPlaneTables()

	c.PSpriteScale = fixed.Fixed(fixed.FracUnit * int64(c.ViewWidth) / 320)
	c.PSpriteIScale = fixed.Fixed(fixed.FracUnit * 320 / int64(c.ViewWidth))
	// the sky is 200 pixels high, its middle at the horizon
	c.SkyTextureAlt = fixed.FromInt(baseYCenter)
	c.SkyInvScale = fixed.Fixed(fixed.FracUnit * 320 / int64(c.WindowWidth))
	return c, nil
}

func (c *Context) initTextureMapping() {
	focalLength := fixed.Div(c.CenterXFrac, fixed.TanFine(fixed.FineAngles/4+fieldOfView/2))
	for i := range c.AngleToX {
		var t int
		tan := fixed.TanFine(i)
		switch {
		case tan > 2*fixed.FracUnit:
			t = -1
		case tan < -2*fixed.FracUnit:
			t = c.ViewWidth + 1
		default:
			f := fixed.Mul(tan, focalLength)
			t = int((c.CenterXFrac - f + fixed.FracUnit - 1) >> fixed.FracBits)
			t = qmath.Clamp(-1, t, c.ViewWidth+1)
		}
		c.AngleToX[i] = t
	}
	// xToAngle is the smallest angle that maps to x
	c.XToAngle = make([]fixed.Angle, c.ViewWidth+1)
	for x := 0; x <= c.ViewWidth; x++ {
		i := 0
		for c.AngleToX[i] > x {
			i++
		}
		c.XToAngle[x] = fixed.Angle(i<<fixed.AngleToFineShift) - fixed.Ang90
	}
	for i := range c.AngleToX {
		switch c.AngleToX[i] {
		case -1:
			c.AngleToX[i] = 0
		case c.ViewWidth + 1:
			c.AngleToX[i] = c.ViewWidth
		}
	}
	c.ClipAngle = c.XToAngle[0]
}

func (c *Context) initPlaneTables() {
	c.PlaneYSlope = make([]fixed.Fixed, c.ViewHeight)
	num := fixed.FromInt((c.ViewWidth << c.DetailShift) / 2)
	for i := range c.PlaneYSlope {
		dy := fixed.FromInt(i-c.ViewHeight/2) + fixed.One/2
		c.PlaneYSlope[i] = fixed.Div(num, fixed.Abs(dy))
	}
	c.PlaneDistScale = make([]fixed.Fixed, c.ViewWidth)
	for i := range c.PlaneDistScale {
		cos := fixed.Abs(fixed.Cos(c.XToAngle[i]))
		c.PlaneDistScale[i] = fixed.Div(fixed.One, cos)
	}
}

// ViewAngleToX maps a view relative angle in [-ClipAngle, ClipAngle] to a
// screen column.
func (c *Context) ViewAngleToX(a fixed.Angle) int {
	return c.AngleToX[(a+fixed.Ang90)>>fixed.AngleToFineShift]
}
