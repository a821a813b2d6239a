// SPDX-License-Identifier: GPL-2.0-or-later

package screen

import (
	"fmt"
	"strconv"

	"github.com/pkg/errors"

	"godoom/automap"
	"godoom/conlog"
	"godoom/cvar"
	"godoom/cvars"
	"godoom/draw"
	"godoom/keycode"
	"godoom/keys"
	"godoom/maps"
	"godoom/menu"
	"godoom/palette"
	"godoom/render"
	"godoom/texture"
	"godoom/wipe"
	"godoom/world"
)

// mapPan is how far one key press moves the automap.
const mapPan = 32

// Hooks are what the screens ask the viewer to do.
type Hooks struct {
	// NewLevel is called when a level is picked in the menu.
	NewLevel func(m maps.Map)
	// Completed is called once when the intermission was accepted.
	Completed func(s Stats)
	// FinaleDone is called once when the finale ends.
	FinaleDone func()
	Quit       func()
}

type Config struct {
	Width    int
	Height   int
	ColorMap palette.ColorMap
	Font     *texture.Font
	// BackFlat is tiled around small view windows and behind the
	// intermission, no flat of that name fills with black.
	BackFlat string
	// Levels are offered in the menu.
	Levels []maps.Map
	Hooks
}

// Manager owns the screen surface and draws the current state into it.
type Manager struct {
	cfg    Config
	screen *draw.Surface
	font   *texture.Font

	state State

	info     maps.Map
	world    *world.World
	player   *world.Player
	renderer *render.Renderer
	automap  *automap.Map
	mapView  *draw.Surface
	back     *texture.Flat

	menu *menu.Menu

	wipe      *wipe.Effect
	wipeBand  int
	lastGame  Kind
	drawn     bool
	resizeErr error
}

func New(cfg Config) (*Manager, error) {
	if cfg.Width < 320 || cfg.Height < 200 {
		return nil, errors.Errorf("screen %dx%d is smaller than 320x200", cfg.Width, cfg.Height)
	}
	if cfg.Font == nil {
		return nil, errors.New("screen needs a font")
	}
	m := &Manager{
		cfg:    cfg,
		screen: draw.NewSurface(cfg.Width, cfg.Height),
		font:   cfg.Font,
		menu:   menu.New(),
	}
	m.buildMenu()
	return m, nil
}

func (m *Manager) Screen() *draw.Surface {
	return m.screen
}

func (m *Manager) State() State {
	return m.state
}

func (m *Manager) Renderer() *render.Renderer {
	return m.renderer
}

func (m *Manager) Automap() *automap.Map {
	return m.automap
}

func (m *Manager) Menu() *menu.Menu {
	return m.menu
}

// Destination tells who gets the keys the screens do not use.
func (m *Manager) Destination() keys.Destination {
	switch m.state.Kind {
	case Menu:
		return keys.Menu
	case Automap:
		return keys.Automap
	}
	return keys.Game
}

// SetLevel starts showing the level info played in w by p. The screen
// melts even if a level was shown before.
func (m *Manager) SetLevel(info maps.Map, w *world.World, p *world.Player) error {
	cfg := render.ConfigFromCvars(m.cfg.Width, m.cfg.Height)
	if m.renderer == nil || m.world != w {
		r, err := render.New(w, m.cfg.ColorMap, cfg)
		if err != nil {
			return errors.Wrapf(err, "renderer for %s", info.ID)
		}
		m.renderer = r
	}
	m.info = info
	m.world = w
	m.player = p
	m.back = nil
	if n, err := w.Graphics.FlatNum(m.cfg.BackFlat); err == nil {
		m.back = w.Graphics.Flat(n)
	}
	mh := m.cfg.Height - StatusBarHeight(m.cfg.Height)
	m.automap = automap.New(w, m.cfg.Width, mh, automap.OptionsFromCvars())
	m.mapView = draw.NewSurface(m.cfg.Width, mh)
	m.lastGame = -1
	m.setState(State{Kind: Level})
	conlog.Printf("screen: level %s %q\n", info.ID, info.Name)
	return nil
}

func (m *Manager) setState(s State) {
	m.state = s
}

// ShowIntermission replaces the level by the stats screen.
func (m *Manager) ShowIntermission(s Stats) {
	m.menu.Close()
	m.setState(State{Kind: Intermission, Intermission: NewIntermission(s)})
}

// ShowFinale types text over the back flat.
func (m *Manager) ShowFinale(text string) {
	m.menu.Close()
	m.setState(State{Kind: Finale, Finale: NewFinale(text, m.back)})
}

func (m *Manager) ToggleAutomap() {
	switch m.state.Kind {
	case Level:
		if m.automap != nil {
			m.setState(State{Kind: Automap})
		}
	case Automap:
		m.setState(State{Kind: Level})
	}
}

// OpenMenu shows the main menu over the current state.
func (m *Manager) OpenMenu() {
	if m.state.Kind == Menu {
		return
	}
	under := m.state
	m.menu.Open(menu.Main)
	m.setState(State{Kind: Menu, Under: &under})
}

func (m *Manager) closeMenu() {
	m.menu.Close()
	if m.state.Kind == Menu && m.state.Under != nil {
		m.setState(*m.state.Under)
	}
}

func (m *Manager) buildMenu() {
	levels := make([]menu.Item, 0, len(m.cfg.Levels))
	for _, l := range m.cfg.Levels {
		levels = append(levels, menu.Item{
			Label: l.ID + " " + l.Name,
			Select: func() {
				m.closeMenu()
				if m.cfg.NewLevel != nil {
					m.cfg.NewLevel(l)
				}
			},
		})
	}
	m.menu.AddPage(menu.Main, "GODOOM", []menu.Item{
		{Label: "LEVELS", Page: menu.Levels},
		{Label: "OPTIONS", Page: menu.Options},
		{Label: "QUIT", Select: func() {
			if m.cfg.Quit != nil {
				m.cfg.Quit()
			}
		}},
	})
	m.menu.AddPage(menu.Levels, "LEVELS", levels)
	m.menu.AddPage(menu.Options, "OPTIONS", []menu.Item{
		{Label: "VIDEO", Page: menu.Video},
		{Label: "AUTOMAP", Page: menu.Automap},
		cvarToggle("MELT", cvars.WipeEnabled),
	})
	m.menu.AddPage(menu.Video, "VIDEO", []menu.Item{
		cvarRange("SCREEN SIZE", cvars.ScreenBlocks, 3, 11),
		cvarToggle("LOW DETAIL", cvars.Detail),
		cvarToggle("FUZZ", cvars.Fuzz),
		cvarRange("EXTRA LIGHT", cvars.ExtraLight, 0, 2),
		cvarToggle("STATS", cvars.ShowStats),
	})
	m.menu.AddPage(menu.Automap, "AUTOMAP", []menu.Item{
		cvarToggle("FOLLOW", cvars.AutomapFollow),
		cvarToggle("GRID", cvars.AutomapGrid),
		cvarToggle("ALL LINES", cvars.AutomapAllMap),
		cvarToggle("THINGS", cvars.AutomapThings),
	})
}

func cvarToggle(label string, cv *cvar.Cvar) menu.Item {
	return menu.Item{
		Label: label,
		Value: func() string {
			if cv.Bool() {
				return "ON"
			}
			return "OFF"
		},
		Adjust: func(int) { cv.Toggle() },
	}
}

func cvarRange(label string, cv *cvar.Cvar, lo, hi int) menu.Item {
	return menu.Item{
		Label: label,
		Value: func() string { return strconv.Itoa(int(cv.Value())) },
		Adjust: func(d int) {
			cv.SetValue(float32(max(lo, min(hi, int(cv.Value())+d))))
		},
	}
}

// Key handles a key going down on the menu, the automap and the stats
// screens. It returns false for keys left to the bindings.
func (m *Manager) Key(k keycode.KeyCode) bool {
	if m.Wiping() {
		return true
	}
	switch m.state.Kind {
	case Menu:
		return m.menuKey(k)
	case Automap:
		return m.automapKey(k)
	case Intermission, Finale:
		if k != keycode.ENTER && k != keycode.SPACE {
			return false
		}
		if m.state.Kind == Intermission {
			m.state.Intermission.Accept()
		} else {
			m.state.Finale.Skip()
		}
		return true
	}
	return false
}

// Command runs the screen commands, it reports whether c was one.
func (m *Manager) Command(c string) bool {
	switch c {
	case "automap":
		m.ToggleAutomap()
	case "menu":
		m.OpenMenu()
	case "sizeup":
		cvars.ScreenBlocks.SetValue(float32(min(11, int(cvars.ScreenBlocks.Value())+1)))
	case "sizedown":
		cvars.ScreenBlocks.SetValue(float32(max(3, int(cvars.ScreenBlocks.Value())-1)))
	default:
		return false
	}
	return true
}

func (m *Manager) menuKey(k keycode.KeyCode) bool {
	switch k {
	case keycode.UPARROW:
		m.menu.Up()
	case keycode.DOWNARROW:
		m.menu.Down()
	case keycode.LEFTARROW:
		m.menu.Left()
	case keycode.RIGHTARROW:
		m.menu.Right()
	case keycode.ENTER, keycode.KP_ENTER:
		m.menu.Select()
	case keycode.ESCAPE:
		m.closeMenu()
	case keycode.BACKSPACE:
		m.menu.Back()
	}
	if !m.menu.Active() {
		m.closeMenu()
	}
	return true
}

func (m *Manager) automapKey(k keycode.KeyCode) bool {
	am := m.automap
	switch k {
	case '=', keycode.KP_PLUS:
		am.ZoomIn()
	case '-', keycode.KP_MINUS:
		am.ZoomOut()
	case '0':
		am.FitAll()
	case 'f':
		am.Follow = !am.Follow
		conlog.Printf("follow mode %v\n", onOff(am.Follow))
	case 'g':
		am.Grid = !am.Grid
		conlog.Printf("grid %v\n", onOff(am.Grid))
	case 'm':
		conlog.Printf("marked spot %d\n", am.AddMark())
	case 'c':
		am.ClearMarks()
		conlog.Printf("all marks cleared\n")
	case keycode.UPARROW, keycode.DOWNARROW, keycode.LEFTARROW, keycode.RIGHTARROW:
		if am.Follow {
			return false
		}
		switch k {
		case keycode.UPARROW:
			am.Pan(0, mapPan)
		case keycode.DOWNARROW:
			am.Pan(0, -mapPan)
		case keycode.LEFTARROW:
			am.Pan(-mapPan, 0)
		case keycode.RIGHTARROW:
			am.Pan(mapPan, 0)
		}
	default:
		return false
	}
	return true
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

// Tic advances the melt, the menu cursor and the stats and text screens by
// one tic.
func (m *Manager) Tic() {
	if m.Wiping() {
		m.wipe.Update()
		return
	}
	m.menu.Tic()
	s := m.state
	if s.Kind == Menu && s.Under != nil {
		s = *s.Under
	}
	switch s.Kind {
	case Intermission:
		in := s.Intermission
		in.Tic()
		if in.Done() && !in.reported && m.state.Kind == Intermission {
			in.reported = true
			if m.cfg.Completed != nil {
				m.cfg.Completed(in.Stats())
			}
		}
	case Finale:
		f := s.Finale
		f.Tic()
		if f.Done() && !f.reported && m.state.Kind == Finale {
			f.reported = true
			if m.cfg.FinaleDone != nil {
				m.cfg.FinaleDone()
			}
		}
	}
}

// Draw draws the current state into the screen and returns it. A changed
// game state starts a melt from the previous frame.
func (m *Manager) Draw() *draw.Surface {
	if g := m.state.game(); g != m.lastGame {
		if m.drawn && cvars.WipeEnabled.Bool() {
			m.startWipe()
		}
		m.lastGame = g
	}
	m.drawState(m.state)
	if m.Wiping() {
		m.wipe.Render(m.screen)
	}
	m.drawn = true
	return m.screen
}

func (m *Manager) startWipe() {
	band := max(1, int(cvars.WipeBandWidth.Value()))
	if m.wipe == nil || band != m.wipeBand {
		e, err := wipe.New(m.cfg.Width, m.cfg.Height, band, 0)
		if err != nil {
			conlog.Printf("wipe: %v\n", err)
			return
		}
		m.wipe = e
		m.wipeBand = band
	}
	m.wipe.Start(m.screen)
}

// Wiping reports whether a melt is running.
func (m *Manager) Wiping() bool {
	return m.wipe != nil && m.wipe.Active()
}

func (m *Manager) drawState(s State) {
	switch s.Kind {
	case Level:
		m.drawLevel()
	case Automap:
		m.drawAutomap()
	case Intermission:
		s.Intermission.Draw(m.screen, m.font, m.back)
	case Finale:
		s.Finale.Draw(m.screen, m.font)
	case Menu:
		if s.Under != nil {
			m.drawState(*s.Under)
		} else {
			m.screen.Clear(colorBlack)
		}
		m.menu.Draw(m.screen, m.font, screenScale(m.cfg.Width, m.cfg.Height))
	}
}

func (m *Manager) syncConfig() {
	cfg := render.ConfigFromCvars(m.cfg.Width, m.cfg.Height)
	if cfg == m.renderer.Config() {
		return
	}
	err := m.renderer.Resize(cfg)
	if err != nil && (m.resizeErr == nil || err.Error() != m.resizeErr.Error()) {
		conlog.Printf("render: %v\n", err)
	}
	m.resizeErr = err
}

func (m *Manager) drawLevel() {
	if m.renderer == nil {
		m.screen.Clear(colorBlack)
		return
	}
	m.syncConfig()
	p := m.player
	p.ExtraLight = int(cvars.ExtraLight.Value())
	p.FixedColorMap = int(cvars.FixedColorMap.Value())

	ctx := m.renderer.Context()
	sbar := ctx.WindowHeight < m.cfg.Height
	bottom := m.cfg.Height
	if sbar {
		bottom -= StatusBarHeight(m.cfg.Height)
	}
	if ctx.WindowWidth < m.cfg.Width || ctx.WindowHeight < bottom {
		drawBorder(m.screen, ctx, m.back, bottom)
	}
	m.renderer.Render(p, m.screen)
	if sbar {
		drawStatusBar(m.screen, m.font, p)
	}
	if cvars.ShowStats.Bool() {
		m.drawStats()
	}
}

func (m *Manager) drawStats() {
	st := m.renderer.Stats
	s := screenScale(m.cfg.Width, m.cfg.Height)
	text := fmt.Sprintf("SEGS %d WALLS %d/%d\nSPRITES %d/%d POSTS %d",
		st.Segs, st.WallRanges, st.DroppedWallRanges, st.Sprites, st.DroppedSprites, st.MaskedPosts)
	m.screen.DrawText(m.font, text, 2*s, 2*s, s)
}

func (m *Manager) drawAutomap() {
	m.automap.Render(m.mapView, m.player)
	s := screenScale(m.cfg.Width, m.cfg.Height)
	title := m.info.ID + ": " + m.info.Name
	m.mapView.DrawText(m.font, title, 2*s, m.mapView.Height-8*s, s)
	h := m.mapView.Height
	for x := 0; x < m.cfg.Width; x++ {
		copy(m.screen.Data[x*m.cfg.Height:x*m.cfg.Height+h], m.mapView.Data[x*h:(x+1)*h])
	}
	drawStatusBar(m.screen, m.font, m.player)
}
