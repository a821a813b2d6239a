// SPDX-License-Identifier: GPL-2.0-or-later

package fixed

import (
	"math"
	"testing"
)

func TestMul(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Fixed
	}{
		{FromInt(2), FromInt(3), FromInt(6)},
		{FromInt(-2), FromInt(3), FromInt(-6)},
		{One / 2, One / 2, One / 4},
		{FromInt(100), FromInt(100), FromInt(10000)},
	} {
		if got := Mul(tc.a, tc.b); got != tc.want {
			t.Errorf("Mul(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestDiv(t *testing.T) {
	for _, tc := range []struct {
		a, b, want Fixed
	}{
		{FromInt(6), FromInt(3), FromInt(2)},
		{FromInt(1), FromInt(4), One / 4},
		{FromInt(-6), FromInt(3), FromInt(-2)},
		{FromInt(1), 0, MaxValue},
		{FromInt(-1), 0, MinValue},
		{FromInt(30000), 1, MaxValue},
	} {
		if got := Div(tc.a, tc.b); got != tc.want {
			t.Errorf("Div(%v,%v) = %v, want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

func TestIntConversion(t *testing.T) {
	f := FromFloat(-1.5)
	if f.Int() != -2 {
		t.Errorf("(%v).Int() = %v, want -2", f, f.Int())
	}
	if f.IntCeil() != -1 {
		t.Errorf("(%v).IntCeil() = %v, want -1", f, f.IntCeil())
	}
	f = FromFloat(2.25)
	if f.Int() != 2 || f.IntCeil() != 3 {
		t.Errorf("(%v) = %v/%v, want 2/3", f, f.Int(), f.IntCeil())
	}
}

func TestAngleWraps(t *testing.T) {
	a := Ang270
	a += Ang180
	if a != Ang90 {
		t.Errorf("Ang270+Ang180 = %x, want %x", a, Ang90)
	}
	if AbsAngle(Ang270) != Ang90 {
		t.Errorf("AbsAngle(Ang270) = %x, want %x", AbsAngle(Ang270), Ang90)
	}
}

func near(a Fixed, f float64, eps float64) bool {
	return math.Abs(a.Float()-f) < eps
}

func TestTrig(t *testing.T) {
	for _, deg := range []float64{0, 30, 45, 90, 135, 180, 225, 300, 359} {
		a := AngleFromDegrees(deg)
		r := deg * math.Pi / 180
		if !near(Sin(a), math.Sin(r), 0.002) {
			t.Errorf("Sin(%v) = %v, want %v", deg, Sin(a), math.Sin(r))
		}
		if !near(Cos(a), math.Cos(r), 0.002) {
			t.Errorf("Cos(%v) = %v, want %v", deg, Cos(a), math.Cos(r))
		}
	}
	for _, deg := range []float64{-60, -30, 0, 30, 60, 120} {
		a := AngleFromDegrees(deg)
		want := math.Tan(deg * math.Pi / 180)
		if !near(Tan(a), want, 0.01) {
			t.Errorf("Tan(%v) = %v, want %v", deg, Tan(a), want)
		}
	}
}

func TestPointToAngle(t *testing.T) {
	for _, tc := range []struct {
		x, y float64
		want float64
	}{
		{1, 0, 0},
		{1, 1, 45},
		{0, 1, 90},
		{-1, 1, 135},
		{-1, 0, 180},
		{-1, -1, 225},
		{0, -1, 270},
		{1, -1, 315},
		{2, 1, 26.565},
	} {
		got := PointToAngle(FromFloat(tc.x), FromFloat(tc.y)).Degrees()
		d := math.Abs(got - tc.want)
		if d > 180 {
			d = 360 - d
		}
		if d > 0.1 {
			t.Errorf("PointToAngle(%v,%v) = %v, want %v", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestPointToDist(t *testing.T) {
	got := PointToDist(0, 0, FromInt(300), FromInt(400))
	if !near(got, 500, 1) {
		t.Errorf("PointToDist(300,400) = %v, want 500", got)
	}
	if got := PointToDist(FromInt(5), FromInt(5), FromInt(5), FromInt(5)); got != 0 {
		t.Errorf("PointToDist(same point) = %v, want 0", got)
	}
}
