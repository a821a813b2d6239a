// SPDX-License-Identifier: GPL-2.0-or-later

package wipe

import (
	"slices"
	"testing"

	"godoom/draw"
)

func run(t *testing.T, e *Effect, from *draw.Surface) [][]int {
	t.Helper()
	e.Start(from)
	var steps [][]int
	for i := 0; i < 1000; i++ {
		status := e.Update()
		steps = append(steps, slices.Clone(e.Offsets()))
		all := true
		for _, y := range e.Offsets() {
			all = all && y == e.height
		}
		if (status == Completed) != all {
			t.Fatalf("tic %d: status %v with offsets %v", i, status, e.Offsets())
		}
		if status == Completed {
			return steps
		}
	}
	t.Fatalf("melt did not complete")
	return nil
}

func TestMeltDeterministic(t *testing.T) {
	from := draw.NewSurface(320, 200)
	a, err := New(320, 200, 2, 42)
	if err != nil {
		t.Fatal(err)
	}
	b, _ := New(320, 200, 2, 42)
	sa := run(t, a, from)
	sb := run(t, b, from)
	if len(sa) != len(sb) {
		t.Fatalf("melts took %d and %d tics", len(sa), len(sb))
	}
	for i := range sa {
		if !slices.Equal(sa[i], sb[i]) {
			t.Fatalf("tic %d offsets differ", i)
		}
	}
	// restarting replays the same melt
	sc := run(t, a, from)
	if !slices.Equal(sa[0], sc[0]) {
		t.Errorf("restart offsets %v, want %v", sc[0][:8], sa[0][:8])
	}
}

func TestStagger(t *testing.T) {
	e, _ := New(320, 200, 2, 7)
	e.Start(draw.NewSurface(320, 200))
	ys := e.Offsets()
	if len(ys) != 160 {
		t.Fatalf("bands = %d, want 160", len(ys))
	}
	for i, y := range ys {
		if y > 0 || y <= -maxStagger {
			t.Errorf("band %d starts at %d", i, y)
		}
		if i > 0 {
			if d := y - ys[i-1]; d < -1 || d > 1 {
				t.Errorf("bands %d and %d differ by %d", i-1, i, d)
			}
		}
	}
}

func TestMeltSpeed(t *testing.T) {
	e, _ := New(4, 100, 4, 1)
	e.Start(draw.NewSurface(4, 100))
	e.y[0] = 0
	var got []int
	for i := 0; i < 8; i++ {
		e.Update()
		got = append(got, e.y[0])
	}
	// 1, then doubling while under 16, then 8 per tic
	want := []int{1, 3, 7, 15, 31, 39, 47, 55}
	if !slices.Equal(got, want) {
		t.Errorf("offsets = %v, want %v", got, want)
	}
}

func TestCompletesOnLastStep(t *testing.T) {
	e, _ := New(16, 20, 1, 3)
	e.Start(draw.NewSurface(16, 20))
	for i := range e.y {
		e.y[i] = 12
	}
	if got := e.Update(); got != Completed {
		t.Errorf("Update() moving every band to the bottom = %v, want %v", got, Completed)
	}
	for _, y := range e.Offsets() {
		if y != 20 {
			t.Fatalf("offsets = %v, want all 20", e.Offsets())
		}
	}
}

func TestRenderShiftsOldScreen(t *testing.T) {
	from := draw.NewSurface(4, 10)
	from.Clear(1)
	e, _ := New(4, 10, 2, 3)
	e.Start(from)
	e.y[0], e.y[1] = 3, 10
	dst := draw.NewSurface(4, 10)
	dst.Clear(2)
	e.Render(dst)
	for _, tc := range []struct{ x, y, want int }{
		{0, 2, 2}, {0, 3, 1}, {1, 9, 1}, {2, 0, 2}, {3, 9, 2},
	} {
		if got := int(dst.At(tc.x, tc.y)); got != tc.want {
			t.Errorf("At(%d, %d) = %d, want %d", tc.x, tc.y, got, tc.want)
		}
	}
}

func TestNewRejectsBadSizes(t *testing.T) {
	for _, tc := range []struct{ w, h, band int }{{0, 10, 1}, {10, 10, 0}, {10, 10, 11}} {
		if _, err := New(tc.w, tc.h, tc.band, 0); err == nil {
			t.Errorf("New(%d, %d, %d) did not fail", tc.w, tc.h, tc.band)
		}
	}
}
