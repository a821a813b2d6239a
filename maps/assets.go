// SPDX-License-Identifier: GPL-2.0-or-later

package maps

import (
	"log"

	"github.com/chewxy/math32"
	"github.com/pkg/errors"

	"godoom/palette"
	"godoom/rand"
	"godoom/texture"
)

// The demo palette has 16 ramps of 16 shades, bright to dark, laid out
// like the game palette so the usual indices keep their meaning.
const (
	RampBrown  = 64
	RampGray   = 96
	RampGreen  = 112
	RampRed    = 176
	RampBlue   = 192
	RampWhite  = 208
	RampYellow = 224

	// Transparent is never used as a color by the demo graphics.
	Transparent = 255
)

// rampColors are the brightest color of each ramp. Ramp 0 holds misc
// colors with index 0 black.
var rampColors = [16][3]float32{
	{255, 255, 255}, {255, 200, 160}, {220, 180, 120}, {200, 120, 80},
	{170, 120, 70}, {240, 200, 170}, {200, 200, 200}, {80, 255, 80},
	{190, 150, 110}, {160, 180, 140}, {255, 140, 140}, {255, 60, 50},
	{100, 120, 255}, {255, 255, 255}, {255, 255, 90}, {200, 80, 200},
}

// DemoPalette returns the palette of the demo graphics.
func DemoPalette() *palette.Palette {
	rgb := make([]byte, 768)
	for i := 0; i < 256; i++ {
		c := rampColors[i/16]
		f := 1 - float32(i%16)/18
		for k := 0; k < 3; k++ {
			rgb[3*i+k] = byte(math32.Round(c[k] * f))
		}
	}
	rgb[0], rgb[1], rgb[2] = 0, 0, 0
	// the transparent index is a color no light level darkens into
	rgb[3*Transparent], rgb[3*Transparent+1], rgb[3*Transparent+2] = 255, 0, 255
	p, err := palette.New(rgb)
	if err != nil {
		panic(err)
	}
	return p
}

func shade(ramp, i int) byte {
	return byte(ramp + max(0, min(i, 15)))
}

func newPixels(w, h int, f func(x, y int) byte) []byte {
	px := make([]byte, w*h)
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			px[x*h+y] = f(x, y)
		}
	}
	return px
}

func bricks(w, h int, rng *rand.Generator) []byte {
	noise := make([]int, w*h)
	for i := range noise {
		noise[i] = rng.Intn(3)
	}
	return newPixels(w, h, func(x, y int) byte {
		course := y / 16
		if y%16 == 15 || (x+course*16)%32 == 31 {
			return shade(RampGray, 9)
		}
		return shade(RampBrown, 3+noise[x*h+y]+course%2)
	})
}

func newFlat(name string, f func(x, y int) byte) *texture.Flat {
	fl := &texture.Flat{Name: name}
	for y := 0; y < texture.FlatSize; y++ {
		for x := 0; x < texture.FlatSize; x++ {
			fl.Data[y*texture.FlatSize+x] = f(x, y)
		}
	}
	return fl
}

// figure returns a w x h sprite patch: an upright ellipse whose shading
// depends on rot, so each of the eight rotations looks different.
func figure(name string, w, h, ramp, rot int) *texture.Patch {
	px := newPixels(w, h, func(x, y int) byte {
		dx := (float32(x) + 0.5 - float32(w)/2) / (float32(w) / 2)
		dy := (float32(y) + 0.5 - float32(h)/2) / (float32(h) / 2)
		if dx*dx+dy*dy > 1 {
			return Transparent
		}
		// the belt uses the green ramp which the translations recolor
		if y > h/2 && y < h/2+4 {
			return shade(RampGreen, 4)
		}
		side := int((dx + 1) * 4)
		return shade(ramp, 2+(side+rot)%8)
	})
	return texture.NewPatch(name, w, h, w/2, h, px, Transparent)
}

// DemoGraphics synthesizes the textures, flats and sprites of the demo
// levels. The same call always produces the same graphics.
func DemoGraphics() (*texture.Set, error) {
	rng := rand.New(1)
	g := texture.NewSet()

	g.AddTexture(texture.NewTexture("BRICK", 64, 128, bricks(64, 128, rng)))
	g.AddTexture(texture.NewTexture("STEP", 64, 16, newPixels(64, 16, func(x, y int) byte {
		return shade(RampGray, 2+y/4+x%8/7)
	})))
	g.AddTexture(texture.NewTexture("DOOR", 64, 72, newPixels(64, 72, func(x, y int) byte {
		if x%32 < 2 || y%24 < 2 {
			return shade(RampGray, 10)
		}
		return shade(RampBlue, 6+y%24/6)
	})))
	g.AddTexture(texture.NewTexture("DOORTRAK", 8, 128, newPixels(8, 128, func(x, y int) byte {
		return shade(RampGray, 6+x%3)
	})))
	g.AddTexture(texture.NewMaskedTexture("GRATE", 64, 64, newPixels(64, 64, func(x, y int) byte {
		if x%8 < 2 || y%16 < 2 {
			return shade(RampGray, 4)
		}
		return Transparent
	}), Transparent))
	g.AddTexture(texture.NewTexture("SKY1", 256, 128, newPixels(256, 128, func(x, y int) byte {
		cloud := math32.Sin(float32(x)*math32.Pi/32) * math32.Sin(float32(y)*math32.Pi/24)
		if cloud > 0.6 {
			return shade(RampWhite, 3)
		}
		return shade(RampBlue, y/10)
	})))

	g.AddFlat(newFlat("FLOOR4_8", func(x, y int) byte {
		if (x/16+y/16)%2 == 0 {
			return shade(RampGray, 5)
		}
		return shade(RampGray, 7)
	}))
	g.AddFlat(newFlat("CEIL3_5", func(x, y int) byte {
		if x%32 == 0 || y%32 == 0 {
			return shade(RampGray, 11)
		}
		return shade(RampGray, 3)
	}))
	g.AddFlat(newFlat("NUKAGE1", func(x, y int) byte {
		return shade(RampGreen, 3+int(2+2*math32.Sin(float32(x+y)/5)))
	}))
	g.AddFlat(newFlat("FLAT5_4", func(x, y int) byte {
		return shade(RampBrown, 4+(x^y)%3)
	}))
	g.AddFlat(newFlat("F_SKY1", func(x, y int) byte { return shade(RampBlue, 4) }))
	if err := g.SetSky("F_SKY1", "SKY1"); err != nil {
		return nil, errors.Wrap(err, "demo graphics")
	}

	imp := &texture.SpriteDef{Name: "TROO", Frames: []texture.SpriteFrame{{Rotate: true}}}
	for rot := 0; rot < 8; rot++ {
		imp.Frames[0].Patches[rot] = figure("TROOA", 40, 56, RampBrown, rot)
	}
	g.AddSprite(imp)
	g.AddSprite(&texture.SpriteDef{Name: "BAR1", Frames: []texture.SpriteFrame{
		texture.SingleFrame(figure("BAR1A0", 24, 32, RampGreen, 0)),
	}})
	g.AddSprite(&texture.SpriteDef{Name: "PLAY", Frames: []texture.SpriteFrame{
		texture.SingleFrame(figure("PLAYA0", 32, 56, RampGreen, 3)),
	}})
	gun := newPixels(48, 40, func(x, y int) byte {
		if x < 16 || x >= 32 {
			if y < 16 {
				return Transparent
			}
			return shade(RampBrown, 5+y%4)
		}
		return shade(RampGray, 4+x%4)
	})
	g.AddSprite(&texture.SpriteDef{Name: "PISG", Frames: []texture.SpriteFrame{
		texture.SingleFrame(texture.NewPatch("PISGA0", 48, 40, 24, 0, gun, Transparent)),
	}})
	log.Printf("maps: %d demo textures, %d flats, %d sprites", len(g.Textures)-1, len(g.Flats), len(g.Sprites))
	return g, nil
}

// glyphs are 3x5 bitmaps, row by row.
var glyphs = map[rune]string{
	'0': "111101101101111", '1': "010110010010111", '2': "111001111100111",
	'3': "111001111001111", '4': "101101111001001", '5': "111100111001111",
	'6': "111100111101111", '7': "111001010010010", '8': "111101111101111",
	'9': "111101111001111",
	'A': "010101111101101", 'B': "110101110101110", 'C': "011100100100011",
	'D': "110101101101110", 'E': "111100110100111", 'F': "111100110100100",
	'G': "011100101101011", 'H': "101101111101101", 'I': "111010010010111",
	'J': "001001001101010", 'K': "101101110101101", 'L': "100100100100111",
	'M': "101111111101101", 'N': "110101101101101", 'O': "010101101101010",
	'P': "110101110100100", 'Q': "010101101110011", 'R': "110101110101101",
	'S': "011100010001110", 'T': "111010010010010", 'U': "101101101101111",
	'V': "101101101101010", 'W': "101101111111101", 'X': "101101010101101",
	'Y': "101101010010010", 'Z': "111001010100111",
	'.': "000000000000010", ',': "000000000010100", ':': "000010000010000",
	'!': "010010010000010", '?': "111001010000010", '\'': "010010000000000",
	'-': "000000111000000", '/': "001001010100100", '%': "101001010100101",
	'(': "001010010010001", ')': "100010010010100", '+': "000010111010000",
	'=': "000111000111000", '>': "100010001010100", '<': "001010100010001",
}

// DemoFont returns a small upper case font drawn in color c. Glyphs are
// 3x5 with one column of spacing.
func DemoFont(c byte) *texture.Font {
	f := &texture.Font{SpaceWidth: 4}
	for r, bits := range glyphs {
		px := newPixels(4, 5, func(x, y int) byte {
			if x < 3 && bits[y*3+x] == '1' {
				return c
			}
			return Transparent
		})
		f.Glyphs[r] = texture.NewPatch(string(r), 4, 5, 0, 0, px, Transparent)
	}
	return f
}
