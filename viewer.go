// SPDX-License-Identifier: GPL-2.0-or-later

package main

import (
	"context"
	"strings"
	"time"

	"github.com/pkg/errors"

	"godoom/alias"
	"godoom/cbuf"
	"godoom/conlog"
	"godoom/cvar"
	"godoom/draw"
	"godoom/gametime"
	"godoom/image"
	"godoom/input"
	kc "godoom/keycode"
	"godoom/keys"
	"godoom/maps"
	"godoom/metrics"
	"godoom/palette"
	"godoom/screen"
	"godoom/texture"
	"godoom/world"
)

const (
	playerSprite = "PLAY"
	weaponSprite = "PISG"
	backFlat     = "FLOOR4_8"
)

// frontend shows frames and reports keys, a window, a terminal or
// nothing at all.
type frontend interface {
	Present(s *draw.Surface) error
	Poll() []kc.Event
	Quit() bool
	Close()
}

// pngFrames runs a fixed number of frames without showing them.
type pngFrames struct {
	frames int
	shown  int
}

func (p *pngFrames) Present(*draw.Surface) error {
	p.shown++
	return nil
}

func (p *pngFrames) Poll() []kc.Event { return nil }
func (p *pngFrames) Quit() bool       { return p.shown >= p.frames }
func (p *pngFrames) Close()           {}

type viewer struct {
	graphics *texture.Set
	pal      *palette.Palette
	levels   []maps.Map

	mgr      *screen.Manager
	bindings *keys.Bindings
	buttons  input.Buttons
	commands cbuf.Buffer
	aliases  *alias.Aliases
	recorder *metrics.Recorder

	level  *maps.Level
	world  *world.World
	player *world.Player

	pending *maps.Map
	quit    bool
}

func newViewer(levels []maps.Map, width, height int) (*viewer, error) {
	g, err := maps.DemoGraphics()
	if err != nil {
		return nil, err
	}
	v := &viewer{
		graphics: g,
		pal:      maps.DemoPalette(),
		levels:   levels,
		bindings: keys.Defaults(),
		aliases:  alias.New(),
	}
	v.mgr, err = screen.New(screen.Config{
		Width:    width,
		Height:   height,
		ColorMap: palette.Build(v.pal),
		Font:     maps.DemoFont(maps.RampRed),
		BackFlat: backFlat,
		Levels:   levels,
		Hooks: screen.Hooks{
			NewLevel:   v.changeLevel,
			Completed:  v.completed,
			FinaleDone: v.finaleDone,
			Quit:       func() { v.quit = true },
		},
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (v *viewer) changeLevel(m maps.Map) {
	v.pending = &m
}

func (v *viewer) completed(s screen.Stats) {
	if s.HasNext {
		v.changeLevel(s.Next)
		return
	}
	e, _ := maps.EpisodeOf(s.Map)
	v.mgr.ShowFinale(maps.FinaleText(e))
}

func (v *viewer) finaleDone() {
	if len(v.levels) > 0 {
		v.changeLevel(v.levels[0])
	}
}

func (v *viewer) loadLevel(m maps.Map) error {
	l, err := maps.LoadDemo(m.ID, v.graphics)
	if err != nil {
		return err
	}
	w, err := world.New(l.Map, v.graphics)
	if err != nil {
		return errors.Wrapf(err, "world for %s", m.ID)
	}
	p, err := l.Populate(w, playerSprite, weaponSprite)
	if err != nil {
		return errors.Wrapf(err, "populate %s", m.ID)
	}
	if err := v.mgr.SetLevel(l.Info, w, p); err != nil {
		return err
	}
	v.level, v.world, v.player = l, w, p
	v.buttons.Release()
	return nil
}

// run draws a frame every tic until the frontend or the menu quits or ctx
// is done.
func (v *viewer) run(ctx context.Context, fe frontend, timeDemo bool) error {
	gt := gametime.New(timeDemo)
	for !v.quit && !fe.Quit() {
		if err := gt.Wait(ctx); err != nil {
			break
		}
		for _, e := range fe.Poll() {
			v.key(e)
		}
		if err := v.tic(); err != nil {
			return err
		}
		start := time.Now()
		s := v.mgr.Draw()
		v.observe(time.Since(start))
		if err := fe.Present(s); err != nil {
			return err
		}
		gt.FrameIncrease()
	}
	if timeDemo {
		conlog.Printf("%d frames in %d tics, %.1f fps\n", gt.FrameCount(), gt.Tics(), gt.FPS())
	}
	return nil
}

func (v *viewer) tic() error {
	v.commands.Execute(v.command)
	if s := v.mgr.State(); s.Kind == screen.Level && !v.mgr.Wiping() {
		v.buttons.Tic(v.world, v.player)
		v.player.LevelTime++
	}
	v.mgr.Tic()
	if m := v.pending; m != nil {
		v.pending = nil
		return v.loadLevel(*m)
	}
	return nil
}

func (v *viewer) observe(d time.Duration) {
	if v.recorder == nil || v.mgr.Renderer() == nil {
		return
	}
	v.recorder.Observe(v.level.Info.ID, v.mgr.State().Kind.String(), v.mgr.Renderer().Stats, d)
}

// key gives a press to the screens first, what they leave and every
// release goes through the bindings. Buttons change at once and only
// start in the game view, other commands run with the next tic.
func (v *viewer) key(e kc.Event) {
	if e.Down && v.mgr.Key(e.Key) {
		return
	}
	c, ok := v.bindings.Command(e.Key, e.Down)
	if !ok {
		return
	}
	if strings.HasPrefix(c, "+") && v.mgr.Destination() != keys.Game {
		return
	}
	if v.buttons.Command(c, e.Key) {
		return
	}
	v.commands.AddText(c + "\n")
}

func (v *viewer) command(c string) {
	if text, ok := v.aliases.Expand(c); ok {
		v.commands.InsertText(text)
		return
	}
	switch {
	case v.aliases.Command(c):
	case v.bind(c):
	case v.mgr.Command(c):
	case c == "screenshot":
		if err := v.screenshot(""); err != nil {
			conlog.Printf("%v\n", err)
		}
	case c == "exitlevel":
		v.exitLevel()
	case c == "quit":
		v.quit = true
	case cvar.Execute(c):
	default:
		conlog.Printf("unknown command %q\n", c)
	}
}

// bind runs "bind key command" lines.
func (v *viewer) bind(c string) bool {
	args := strings.Fields(c)
	if len(args) == 0 || args[0] != "bind" {
		return false
	}
	if len(args) == 1 {
		for _, b := range v.bindings.List() {
			conlog.Printf("%s\n", b)
		}
		return true
	}
	command := strings.Trim(strings.Join(args[2:], " "), `"`)
	if err := v.bindings.Bind(args[1], command); err != nil {
		conlog.Printf("%v\n", err)
	}
	return true
}

func (v *viewer) exitLevel() {
	switch v.mgr.State().Kind {
	case screen.Level, screen.Automap:
	default:
		return
	}
	next, ok := maps.Next(v.level.Info)
	v.buttons.Release()
	v.mgr.ShowIntermission(screen.Stats{
		Map:      v.level.Info,
		Next:     next,
		HasNext:  ok,
		Kills:    v.player.Kills,
		MaxKills: v.level.Monsters(),
		Items:    v.player.Items,
		Secrets:  v.player.Secrets,
		Time:     v.player.LevelTime / gametime.TicRate,
		Par:      v.level.Par,
	})
}

// screenshot writes the screen to name, or to a new file in the working
// directory.
func (v *viewer) screenshot(name string) error {
	if name == "" {
		n, err := image.Screenshot(".", v.mgr.Screen(), v.pal)
		if err != nil {
			return err
		}
		name = n
	} else if err := image.Write(name, v.mgr.Screen(), v.pal); err != nil {
		return err
	}
	conlog.Printf("wrote %s\n", name)
	return nil
}
