// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"testing"

	"godoom/fixed"
	"godoom/palette"
)

func TestViewWindow320x200(t *testing.T) {
	for _, tc := range []struct {
		blocks     int
		low        bool
		x, y, w, h int
		viewWidth  int
	}{
		{11, false, 0, 0, 320, 200, 320},
		{10, false, 0, 0, 320, 168, 320},
		{8, false, 32, 17, 256, 134, 256},
		{3, false, 112, 59, 96, 50, 96},
		{1, false, 112, 59, 96, 50, 96},
		{11, true, 0, 0, 320, 200, 160},
	} {
		cfg := DefaultConfig()
		cfg.ScreenBlocks = tc.blocks
		cfg.LowDetail = tc.low
		c, err := NewContext(cfg)
		if err != nil {
			t.Fatalf("NewContext(%d) = %v", tc.blocks, err)
		}
		if c.WindowX != tc.x || c.WindowY != tc.y || c.WindowWidth != tc.w || c.WindowHeight != tc.h {
			t.Errorf("blocks %d window = %d,%d %dx%d, want %d,%d %dx%d", tc.blocks,
				c.WindowX, c.WindowY, c.WindowWidth, c.WindowHeight, tc.x, tc.y, tc.w, tc.h)
		}
		if c.ViewWidth != tc.viewWidth {
			t.Errorf("blocks %d ViewWidth = %d, want %d", tc.blocks, c.ViewWidth, tc.viewWidth)
		}
	}
}

func TestContextTooSmall(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ScreenWidth = 32
	if _, err := NewContext(cfg); err == nil {
		t.Errorf("NewContext(32x200) did not fail")
	}
}

func TestTextureMapping(t *testing.T) {
	c, err := NewContext(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	if got := c.ViewAngleToX(0); got != c.CenterX {
		t.Errorf("ViewAngleToX(0) = %d, want %d", got, c.CenterX)
	}
	if c.ClipAngle != c.XToAngle[0] {
		t.Errorf("ClipAngle = %v, want %v", c.ClipAngle, c.XToAngle[0])
	}
	if d := c.ClipAngle.Degrees(); d < 44 || d > 46 {
		t.Errorf("ClipAngle = %v degrees, want about 45", d)
	}
	// angles decrease left to right and map back to their column
	for x := 1; x <= c.ViewWidth; x++ {
		if int32(c.XToAngle[x]) > int32(c.XToAngle[x-1]) {
			t.Fatalf("XToAngle[%d] = %v > XToAngle[%d] = %v", x, c.XToAngle[x], x-1, c.XToAngle[x-1])
		}
	}
	for x := 0; x < c.ViewWidth; x++ {
		if got := c.ViewAngleToX(c.XToAngle[x]); got < x-1 || got > x+1 {
			t.Errorf("ViewAngleToX(XToAngle[%d]) = %d", x, got)
		}
	}
	for _, a := range []fixed.Angle{c.ClipAngle, -c.ClipAngle} {
		if got := c.ViewAngleToX(a); got < 0 || got > c.ViewWidth {
			t.Errorf("ViewAngleToX(%v) = %d, out of the window", a, got)
		}
	}
}

func TestPlaneTables(t *testing.T) {
	c, err := NewContext(DefaultConfig())
	if err != nil {
		t.Fatal(err)
	}
	// rows the same distance from the horizon see the plane equally far
	for y := 0; y < c.ViewHeight/2; y++ {
		if a, b := c.PlaneYSlope[y], c.PlaneYSlope[c.ViewHeight-1-y]; a != b {
			t.Errorf("PlaneYSlope[%d] = %v, PlaneYSlope[%d] = %v", y, a, c.ViewHeight-1-y, b)
		}
	}
	if got := c.PlaneDistScale[c.CenterX]; got < fixed.One || got > fixed.One+fixed.One/100 {
		t.Errorf("PlaneDistScale[center] = %v, want about 1", got)
	}
	if got := c.PlaneDistScale[0]; got < fixed.FromFloat(1.40) || got > fixed.FromFloat(1.43) {
		t.Errorf("PlaneDistScale[0] = %v, want about sqrt(2)", got)
	}
}

func TestLightingTables(t *testing.T) {
	cm := testColorMap()
	if _, err := NewLighting(cm[:10], 320); err == nil {
		t.Errorf("NewLighting with 10 tables did not fail")
	}
	l, err := NewLighting(cm, 320)
	if err != nil {
		t.Fatal(err)
	}
	index := func(p *[256]byte) int {
		for i := range cm {
			if p == &cm[i] {
				return i
			}
		}
		return -1
	}
	for _, tc := range []struct {
		name string
		got  *[256]byte
		want int
	}{
		{"scale[15][0]", l.scale[15][0], 0},
		{"scale[0][0]", l.scale[0][0], palette.LightLevels - 1},
		{"scale[0][47]", l.scale[0][47], palette.LightLevels - 1},
		{"scale[8][20]", l.scale[8][20], 18},
		{"scale[12][2]", l.scale[12][2], 11},
		{"scale[12][3]", l.scale[12][3], 11},
		{"scale[12][5]", l.scale[12][5], 10},
		{"z[0][0]", l.z[0][0], 0},
		{"z[0][127]", l.z[0][127], palette.LightLevels - 1},
		{"z[15][127]", l.z[15][127], 0},
	} {
		if got := index(tc.got); got != tc.want {
			t.Errorf("%s = colormap %d, want %d", tc.name, got, tc.want)
		}
	}

	lt := l.frame(palette.Inverse)
	if lt.fixed != &cm[palette.Inverse] {
		t.Errorf("fixed frame colormap = %d, want %d", index(lt.fixed), palette.Inverse)
	}
	if got := index(lt.zLights(3)[5]); got != palette.Inverse {
		t.Errorf("fixed zLights = %d, want %d", got, palette.Inverse)
	}
	lt = l.frame(-1)
	if lt.fixed != nil {
		t.Errorf("frame(-1) has a fixed colormap")
	}
	if lt.scaleLights(99) != lt.scaleLights(lightLevels-1) {
		t.Errorf("scaleLights does not clamp")
	}
}
