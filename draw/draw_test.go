// SPDX-License-Identifier: GPL-2.0-or-later

package draw

import (
	"testing"

	"godoom/texture"
)

func count(s *Surface, c byte) int {
	n := 0
	for _, p := range s.Data {
		if p == c {
			n++
		}
	}
	return n
}

func TestFillRectClips(t *testing.T) {
	s := NewSurface(10, 8)
	s.FillRect(-5, -5, 8, 8, 3)
	if got := count(s, 3); got != 9 {
		t.Errorf("FillRect clipped area = %d, want 9", got)
	}
	if s.At(2, 2) != 3 || s.At(3, 3) != 0 {
		t.Errorf("FillRect filled the wrong pixels")
	}
}

func TestDrawLineOutOfBounds(t *testing.T) {
	const w, h = 32, 20
	// guard bytes around the surface catch stray writes
	buf := make([]byte, w*h+2*h)
	s := &Surface{Width: w, Height: h, Data: buf[h : h+w*h]}
	s.DrawLine(-10, -10, w+10, h+10, 7)
	for i := 0; i < h; i++ {
		if buf[i] != 0 || buf[len(buf)-1-i] != 0 {
			t.Fatalf("DrawLine wrote outside of the surface")
		}
	}
	n := count(s, 7)
	if n < 20 {
		t.Fatalf("DrawLine drew %d pixels, want at least 20", n)
	}
	// the line is y = -10 + (x+10)*40/52
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if s.At(x, y) != 7 {
				continue
			}
			want := -10 + float64(x+10)*40/52
			if d := float64(y) - want; d < -1 || d > 1 {
				t.Errorf("pixel (%d,%d) is not on the line", x, y)
			}
		}
	}
}

func TestClipLine(t *testing.T) {
	s := NewSurface(32, 20)
	for _, tc := range []struct {
		x1, y1, x2, y2 int64
		want           [4]int
		ok             bool
	}{
		{-10, -10, 42, 30, [4]int{3, 0, 28, 19}, true},
		{5, 5, 10, 12, [4]int{5, 5, 10, 12}, true},
		{-4, 2, 10, 2, [4]int{0, 2, 10, 2}, true},
		{-10, -5, 30, -1, [4]int{}, false},
	} {
		x1, y1, x2, y2, ok := s.clipLine(tc.x1, tc.y1, tc.x2, tc.y2)
		if got := [4]int{x1, y1, x2, y2}; ok != tc.ok || (ok && got != tc.want) {
			t.Errorf("clipLine(%d, %d, %d, %d) = %v %v, want %v %v", tc.x1, tc.y1, tc.x2, tc.y2, got, ok, tc.want, tc.ok)
		}
	}
}

func TestDivRound(t *testing.T) {
	for _, tc := range []struct{ n, d, want int64 }{
		{5, 3, 2}, {-5, 3, -2}, {7, 2, 4}, {-7, 2, -4}, {7, -2, -4}, {4, 3, 1},
	} {
		if got := divRound(tc.n, tc.d); got != tc.want {
			t.Errorf("divRound(%d, %d) = %d, want %d", tc.n, tc.d, got, tc.want)
		}
	}
}

func TestDrawLineFullyOutside(t *testing.T) {
	s := NewSurface(16, 16)
	s.DrawLine(-10, -5, 30, -1, 1)
	s.DrawLine(20, 0, 40, 15, 1)
	if count(s, 1) != 0 {
		t.Errorf("invisible lines left pixels")
	}
}

func TestDrawLineSteep(t *testing.T) {
	s := NewSurface(16, 16)
	s.DrawLine(3, 0, 3, 15, 2)
	if got := count(s, 2); got != 16 {
		t.Errorf("vertical line has %d pixels, want 16", got)
	}
	s.Clear(0)
	s.DrawLine(15, 2, 0, 2, 2)
	if got := count(s, 2); got != 16 {
		t.Errorf("horizontal line has %d pixels, want 16", got)
	}
}

func testPatch() *texture.Patch {
	// 2x2, left column opaque, right column only bottom pixel
	return texture.NewPatch("t", 2, 2, 0, 0, []byte{1, 1, 0, 2}, 0)
}

func TestDrawPatch(t *testing.T) {
	s := NewSurface(8, 8)
	s.DrawPatch(testPatch(), 1, 1, 1)
	if s.At(1, 1) != 1 || s.At(1, 2) != 1 || s.At(2, 1) != 0 || s.At(2, 2) != 2 {
		t.Errorf("DrawPatch pixels wrong")
	}
	s.Clear(0)
	s.DrawPatchFlip(testPatch(), 1, 1, 1)
	if s.At(2, 1) != 1 || s.At(1, 1) != 0 || s.At(1, 2) != 2 {
		t.Errorf("DrawPatchFlip pixels wrong")
	}
	s.Clear(0)
	s.DrawPatch(testPatch(), 0, 0, 2)
	if got := count(s, 1); got != 8 {
		t.Errorf("scaled left column has %d pixels, want 8", got)
	}
	// clipped at the border without panicking
	s.DrawPatch(testPatch(), 7, 7, 3)
	s.DrawPatch(testPatch(), -3, -3, 1)
}

func testFont() *texture.Font {
	f := &texture.Font{SpaceWidth: 4}
	for r := 'A'; r <= 'Z'; r++ {
		px := make([]byte, 5*7)
		for i := range px {
			px[i] = byte(r)
		}
		f.Glyphs[r] = texture.NewPatch(string(r), 5, 7, 0, 0, px, -1)
	}
	for r := '0'; r <= '9'; r++ {
		px := make([]byte, 3*7)
		for i := range px {
			px[i] = 9
		}
		f.Glyphs[r] = texture.NewPatch(string(r), 3, 7, 0, 0, px, -1)
	}
	return f
}

func TestMeasureText(t *testing.T) {
	f := testFont()
	for _, tc := range []struct {
		s    string
		want int
	}{
		{"AB", 10},
		{"ab", 10},
		{"A B", 14},
		{"AB\nABC", 15},
		{"", 0},
	} {
		if got := MeasureText(f, tc.s, 1); got != tc.want {
			t.Errorf("MeasureText(%q) = %v, want %v", tc.s, got, tc.want)
		}
	}
	if got := MeasureText(f, "A", 2); got != 10 {
		t.Errorf("MeasureText scaled = %v, want 10", got)
	}
}

func TestDrawText(t *testing.T) {
	f := testFont()
	s := NewSurface(40, 20)
	s.DrawText(f, "ab", 0, 0, 1)
	if s.At(0, 0) != 'A' || s.At(5, 0) != 'B' || s.At(10, 0) != 0 {
		t.Errorf("DrawText pixels wrong")
	}
	s.DrawText(f, "a\nb", 20, 0, 1)
	if s.At(20, 8) != 'B' {
		t.Errorf("DrawText newline did not move down")
	}
}

func TestDrawNumber(t *testing.T) {
	f := testFont()
	s := NewSurface(20, 10)
	s.DrawNumber(f, 42, 10, 0, 1)
	if s.At(4, 0) != 9 || s.At(9, 0) != 9 || s.At(10, 0) != 0 || s.At(3, 0) != 0 {
		t.Errorf("DrawNumber is not right aligned")
	}
}

func TestRowMajor(t *testing.T) {
	s := NewSurface(3, 2)
	s.Set(2, 1, 5)
	dst := make([]byte, 6)
	s.RowMajor(dst)
	if dst[5] != 5 {
		t.Errorf("RowMajor = %v", dst)
	}
}
