// SPDX-License-Identifier: GPL-2.0-or-later

package image

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"godoom/draw"
	"godoom/palette"
)

func testPalette() *palette.Palette {
	p := &palette.Palette{}
	for i := range p {
		p[i] = palette.Color{R: uint8(i), G: uint8(255 - i), B: uint8(i / 2)}
	}
	return p
}

func testSurface() *draw.Surface {
	s := draw.NewSurface(4, 3)
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			s.Set(x, y, byte(10*y+x))
		}
	}
	return s
}

func TestEncode(t *testing.T) {
	p := testPalette()
	var buf bytes.Buffer
	if err := Encode(&buf, testSurface(), p); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Fatalf("bounds = %v, want 4x3", b)
	}
	for _, tc := range []struct {
		x, y int
		idx  int
	}{
		{0, 0, 0}, {3, 0, 3}, {1, 1, 11}, {3, 2, 23},
	} {
		r, g, b, _ := img.At(tc.x, tc.y).RGBA()
		c := p[tc.idx]
		if uint8(r>>8) != c.R || uint8(g>>8) != c.G || uint8(b>>8) != c.B {
			t.Errorf("At(%v,%v) = %v %v %v, want %v", tc.x, tc.y, r>>8, g>>8, b>>8, c)
		}
	}
}

func TestRead(t *testing.T) {
	p := testPalette()
	var buf bytes.Buffer
	if err := Encode(&buf, testSurface(), p); err != nil {
		t.Fatal(err)
	}
	s, err := Read(&buf, p)
	if err != nil {
		t.Fatal(err)
	}
	want := testSurface()
	for y := 0; y < 3; y++ {
		for x := 0; x < 4; x++ {
			if s.At(x, y) != want.At(x, y) {
				t.Errorf("At(%v,%v) = %v, want %v", x, y, s.At(x, y), want.At(x, y))
			}
		}
	}

	// true color images snap to the nearest entry
	img := image.NewNRGBA(image.Rect(0, 0, 1, 1))
	img.Set(0, 0, color.NRGBA{R: 42, G: 213, B: 22, A: 255})
	buf.Reset()
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	s, err = Read(&buf, p)
	if err != nil {
		t.Fatal(err)
	}
	if got := s.At(0, 0); got != 42 {
		t.Errorf("nearest = %v, want 42", got)
	}

	if _, err := Read(strings.NewReader("not an image"), p); err == nil {
		t.Errorf("Read of garbage did not fail")
	}
}

func TestScreenshot(t *testing.T) {
	dir := t.TempDir()
	a, err := Screenshot(dir, testSurface(), testPalette())
	if err != nil {
		t.Fatal(err)
	}
	b, err := Screenshot(dir, testSurface(), testPalette())
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Errorf("two screenshots share the name %v", a)
	}
	for _, n := range []string{a, b} {
		base := filepath.Base(n)
		if !strings.HasPrefix(base, "godoom-") || !strings.HasSuffix(base, ".png") {
			t.Errorf("screenshot name %v", base)
		}
		if _, err := os.Stat(n); err != nil {
			t.Error(err)
		}
	}
	if err := Write(filepath.Join(dir, "missing", "x.png"), testSurface(), testPalette()); err == nil {
		t.Errorf("Write into a missing directory did not fail")
	}
}
