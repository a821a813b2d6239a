// SPDX-License-Identifier: GPL-2.0-or-later

package maps

import (
	"testing"

	"godoom/draw"
	"godoom/palette"
	"godoom/render"
	"godoom/world"
)

func TestLookup(t *testing.T) {
	for _, tc := range []struct {
		id   string
		want string
	}{
		{"e1m1", "Hangar"},
		{"MAP07", "Dead Simple"},
		{"demo2", "The Stair Hall"},
	} {
		m, err := Lookup(tc.id)
		if err != nil || m.Name != tc.want {
			t.Errorf("Lookup(%q) = %v, %v, want %q", tc.id, m, err, tc.want)
		}
	}
	if _, err := Lookup("e9m9"); err == nil {
		t.Errorf("Lookup(e9m9) did not fail")
	}
}

func TestNext(t *testing.T) {
	if m, ok := Next(E1M3); !ok || m != E1M4 {
		t.Errorf("Next(E1M3) = %v, %v", m, ok)
	}
	if _, ok := Next(Map32); ok {
		t.Errorf("Next(MAP32) has a successor")
	}
}

func TestDemoFont(t *testing.T) {
	f := DemoFont(RampRed)
	s := draw.NewSurface(64, 8)
	s.DrawText(f, "HP 100%", 0, 0, 1)
	n := 0
	for _, p := range s.Data {
		if p == RampRed {
			n++
		}
	}
	if n == 0 {
		t.Errorf("DrawText drew nothing")
	}
	if w := draw.MeasureText(f, "ABC", 1); w != 12 {
		t.Errorf("MeasureText(ABC) = %d, want 12", w)
	}
}

func TestDemoLevelsRender(t *testing.T) {
	g, err := DemoGraphics()
	if err != nil {
		t.Fatal(err)
	}
	cm := palette.Build(DemoPalette())
	for _, m := range Demo.Maps {
		l, err := LoadDemo(m.ID, g)
		if err != nil {
			t.Fatalf("LoadDemo(%s) = %v", m.ID, err)
		}
		if err := l.Map.Validate(); err != nil {
			t.Errorf("%s: Validate() = %v", m.ID, err)
		}
		w, err := world.New(l.Map, g)
		if err != nil {
			t.Fatal(err)
		}
		p, err := l.Populate(w, "PLAY", "PISG")
		if err != nil {
			t.Fatalf("%s: Populate() = %v", m.ID, err)
		}
		r, err := render.New(w, cm, render.DefaultConfig())
		if err != nil {
			t.Fatal(err)
		}
		dst := draw.NewSurface(320, 200)
		dst.Clear(Transparent)
		r.Render(p, dst)
		left := 0
		for _, px := range dst.Data {
			if px == Transparent {
				left++
			}
		}
		if left != 0 {
			t.Errorf("%s: %d pixels left unfilled", m.ID, left)
		}
		if r.Stats.WallRanges == 0 {
			t.Errorf("%s: no walls drawn", m.ID)
		}
	}
	if _, err := LoadDemo("E1M1", g); err == nil {
		t.Errorf("LoadDemo(E1M1) did not fail")
	}
}

func TestFinaleText(t *testing.T) {
	e, ok := EpisodeOf(Demo2)
	if !ok || e.Name != Demo.Name {
		t.Fatalf("EpisodeOf(%v) = %v, %v", Demo2, e.Name, ok)
	}
	if _, ok := EpisodeOf(Map{"E9M9", "Nowhere"}); ok {
		t.Errorf("EpisodeOf(E9M9) found an episode")
	}
	f := DemoFont(RampRed)
	for _, e := range []Episode{E1, Demo, E3} {
		for _, r := range FinaleText(e) {
			if r == '\n' || r == ' ' {
				continue
			}
			if f.Glyph(r) == nil {
				t.Errorf("finale of %v uses %q which the demo font lacks", e.Name, r)
			}
		}
	}
}
