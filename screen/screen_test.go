// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"testing"

	"godoom/cvars"
	"godoom/draw"
	"godoom/keycode"
	"godoom/maps"
	"godoom/palette"
	"godoom/texture"
	"godoom/world"
)

func TestStateGame(t *testing.T) {
	level := State{Kind: Level}
	inter := State{Kind: Intermission}
	tests := []struct {
		s    State
		want Kind
	}{
		{level, Level},
		{State{Kind: Automap}, Level},
		{inter, Intermission},
		{State{Kind: Finale}, Finale},
		{State{Kind: Menu, Under: &inter}, Intermission},
		{State{Kind: Menu}, Level},
	}
	for _, tc := range tests {
		if got := tc.s.game(); got != tc.want {
			t.Errorf("game(%v) = %v, want %v", tc.s.Kind, got, tc.want)
		}
	}
}

func TestIntermissionCounts(t *testing.T) {
	in := NewIntermission(Stats{Kills: 3, MaxKills: 4, Items: 1, MaxItems: 2, Time: 90, Par: 30})
	if k, i, s, tm := in.Counters(); k != -1 || i != -1 || s != -1 || tm != -1 {
		t.Fatalf("Counters() before counting = %v %v %v %v", k, i, s, tm)
	}
	tics := 0
	for k, _, _, _ := in.Counters(); k != 75; k, _, _, _ = in.Counters() {
		in.Tic()
		tics++
		if tics > 100 {
			t.Fatalf("kills never reached 75")
		}
	}
	if tics != 38 {
		t.Errorf("kills counted in %v tics, want 38", tics)
	}
	for i := 0; i < ticRate; i++ {
		if _, items, _, _ := in.Counters(); items != -1 {
			t.Fatalf("items counted during the pause")
		}
		in.Tic()
	}
	in.Tic()
	if _, items, _, _ := in.Counters(); items != 2 {
		t.Errorf("items after the pause = %v, want 2", items)
	}
	in.Accept()
	if k, i, s, tm := in.Counters(); k != 75 || i != 50 || s != 0 || tm != 90 {
		t.Errorf("Counters() after Accept = %v %v %v %v, want 75 50 0 90", k, i, s, tm)
	}
	if in.Done() {
		t.Errorf("the first Accept finished the intermission")
	}
	in.Accept()
	if !in.Done() {
		t.Errorf("the second Accept did not finish the intermission")
	}
}

func TestFinaleText(t *testing.T) {
	f := NewFinale("AB\nC", nil)
	for _, tc := range []struct {
		tics, visible int
	}{
		{0, 0}, {10, 0}, {13, 1}, {19, 3}, {100, 4},
	} {
		for f.tics < tc.tics {
			f.Tic()
		}
		if got := f.Visible(); got != tc.visible {
			t.Errorf("Visible() after %v tics = %v, want %v", tc.tics, got, tc.visible)
		}
	}
	for f.tics < 4*textSpeed+textWait {
		f.Tic()
	}
	if f.Done() {
		t.Errorf("Done() before the wait was over")
	}
	f.Tic()
	if !f.Done() {
		t.Errorf("Done() = false after %v tics", f.tics)
	}

	g := NewFinale("ABCDEF", nil)
	g.Skip()
	if g.Visible() != 6 || g.Done() {
		t.Errorf("first Skip: Visible() = %v, Done() = %v", g.Visible(), g.Done())
	}
	g.Skip()
	if !g.Done() {
		t.Errorf("second Skip did not end the finale")
	}
}

type fixture struct {
	m      *Manager
	world  *world.World
	player *world.Player
	picked []maps.Map
}

func newFixture(t *testing.T) *fixture {
	g, err := maps.DemoGraphics()
	if err != nil {
		t.Fatal(err)
	}
	l, err := maps.LoadDemo(maps.Demo1.ID, g)
	if err != nil {
		t.Fatal(err)
	}
	w, err := world.New(l.Map, g)
	if err != nil {
		t.Fatal(err)
	}
	p, err := l.Populate(w, "PLAY", "PISG")
	if err != nil {
		t.Fatal(err)
	}
	fx := &fixture{world: w, player: p}
	fx.m, err = New(Config{
		Width:    320,
		Height:   200,
		ColorMap: palette.Build(maps.DemoPalette()),
		Font:     maps.DemoFont(maps.RampRed),
		BackFlat: "FLOOR4_8",
		Levels:   []maps.Map{maps.Demo1, maps.Demo2},
		Hooks: Hooks{
			NewLevel: func(m maps.Map) { fx.picked = append(fx.picked, m) },
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := fx.m.SetLevel(l.Info, w, p); err != nil {
		t.Fatal(err)
	}
	return fx
}

func TestNewRejectsSmallScreens(t *testing.T) {
	if _, err := New(Config{Width: 160, Height: 100, Font: &texture.Font{}}); err == nil {
		t.Errorf("New(160x100) did not fail")
	}
	if _, err := New(Config{Width: 320, Height: 200}); err == nil {
		t.Errorf("New without a font did not fail")
	}
}

func TestMeltBetweenGameStates(t *testing.T) {
	fx := newFixture(t)
	m := fx.m
	m.Draw()
	if m.Wiping() {
		t.Fatalf("the first frame melted")
	}
	m.ShowIntermission(Stats{Map: maps.Demo1, Kills: 1, MaxKills: 2})
	m.Draw()
	if !m.Wiping() {
		t.Fatalf("changing to the intermission did not melt")
	}
	if !m.Key(keycode.ENTER) {
		t.Errorf("a key during the melt was not swallowed")
	}
	tics := 0
	for m.Wiping() {
		m.Tic()
		m.Draw()
		tics++
		if tics > 100 {
			t.Fatalf("melt did not finish in 100 tics")
		}
	}
	if k, _, _, _ := m.State().Intermission.Counters(); k != -1 {
		t.Errorf("intermission counted during the melt")
	}
}

func TestOverlaysDoNotMelt(t *testing.T) {
	fx := newFixture(t)
	m := fx.m
	m.Draw()
	for _, c := range []string{"automap", "menu"} {
		if !m.Command(c) {
			t.Fatalf("Command(%s) = false", c)
		}
		m.Draw()
		if m.Wiping() {
			t.Errorf("%s melted", c)
		}
	}
	if m.State().Kind != Menu || m.State().Under.Kind != Automap {
		t.Fatalf("state = %v under %v, want the menu over the automap", m.State().Kind, m.State().Under)
	}
	m.Key(keycode.ESCAPE)
	if m.State().Kind != Automap {
		t.Errorf("ESCAPE returned to %v, want automap", m.State().Kind)
	}
	m.Command("automap")
	if m.State().Kind != Level {
		t.Errorf("second automap command left %v", m.State().Kind)
	}
}

func TestMenuPicksLevel(t *testing.T) {
	fx := newFixture(t)
	m := fx.m
	m.OpenMenu()
	m.Key(keycode.ENTER)
	m.Key(keycode.DOWNARROW)
	m.Key(keycode.ENTER)
	if len(fx.picked) != 1 || fx.picked[0] != maps.Demo2 {
		t.Errorf("picked %v, want [%v]", fx.picked, maps.Demo2)
	}
	if m.State().Kind != Level || m.Menu().Active() {
		t.Errorf("menu still open after picking a level")
	}
}

func TestMenuAdjustsCvars(t *testing.T) {
	defer cvars.ScreenBlocks.Reset()
	fx := newFixture(t)
	m := fx.m
	m.OpenMenu()
	// options, video, screen size
	m.Key(keycode.DOWNARROW)
	m.Key(keycode.ENTER)
	m.Key(keycode.ENTER)
	m.Key(keycode.LEFTARROW)
	if got := cvars.ScreenBlocks.Value(); got != 10 {
		t.Errorf("screenblocks = %v, want 10", got)
	}
	m.Key(keycode.RIGHTARROW)
	m.Key(keycode.RIGHTARROW)
	if got := cvars.ScreenBlocks.Value(); got != 11 {
		t.Errorf("screenblocks = %v, want 11", got)
	}
	m.Key(keycode.BACKSPACE)
	m.Key(keycode.BACKSPACE)
	m.Key(keycode.BACKSPACE)
	if m.State().Kind != Level {
		t.Errorf("backing out of the menu left %v", m.State().Kind)
	}
}

func count(s *draw.Surface, x0, y0, x1, y1 int, c byte) int {
	n := 0
	for x := x0; x < x1; x++ {
		for y := y0; y < y1; y++ {
			if s.At(x, y) == c {
				n++
			}
		}
	}
	return n
}

func TestStatusBarFollowsScreenBlocks(t *testing.T) {
	defer cvars.ScreenBlocks.Reset()
	fx := newFixture(t)
	m := fx.m
	m.Draw()
	if ctx := m.Renderer().Context(); ctx.WindowHeight != 200 {
		t.Errorf("full screen view height = %v, want 200", ctx.WindowHeight)
	}
	m.Command("sizedown")
	s := m.Draw()
	if n := count(s, 0, 168, 320, 169, colorBarEdge); n != 320 {
		t.Errorf("status bar top edge has %v pixels, want 320", n)
	}
	if c := s.At(1, 199); c != colorBarFace {
		t.Errorf("status bar at 1,199 = %v, want %v", c, colorBarFace)
	}
	if ctx := m.Renderer().Context(); ctx.WindowHeight != 168 {
		t.Errorf("view height = %v, want 168", ctx.WindowHeight)
	}
	m.Command("sizedown")
	m.Command("sizedown")
	s = m.Draw()
	// the border is tiled from the back flat, never left black
	if n := count(s, 0, 0, 320, 8, colorBlack); n != 0 {
		t.Errorf("%v black pixels above a small view", n)
	}
}

func TestIntermissionCompletes(t *testing.T) {
	fx := newFixture(t)
	m := fx.m
	var done []Stats
	m.cfg.Completed = func(s Stats) { done = append(done, s) }
	m.ShowIntermission(Stats{Map: maps.Demo1, Next: maps.Demo2, HasNext: true})
	for m.Draw(); m.Wiping(); m.Draw() {
		m.Tic()
	}
	m.Key(keycode.SPACE)
	m.Key(keycode.SPACE)
	for i := 0; i < 3; i++ {
		m.Tic()
	}
	if len(done) != 1 || done[0].Next != maps.Demo2 {
		t.Errorf("Completed calls = %v, want one with the next map", done)
	}
}
