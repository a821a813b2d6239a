// SPDX-License-Identifier: GPL-2.0-or-later

package cvars

import (
	"godoom/cvar"
)

var (
	AutomapAllMap *cvar.Cvar
	AutomapFollow *cvar.Cvar
	AutomapGrid   *cvar.Cvar
	AutomapScale  *cvar.Cvar
	AutomapThings *cvar.Cvar
	Detail        *cvar.Cvar
	DrawMasked    *cvar.Cvar
	DrawSprites   *cvar.Cvar
	ExtraLight    *cvar.Cvar
	FixedColorMap *cvar.Cvar
	Fuzz          *cvar.Cvar
	ScreenBlocks  *cvar.Cvar
	ShowStats     *cvar.Cvar
	WipeBandWidth *cvar.Cvar
	WipeEnabled   *cvar.Cvar
)

func init() {
	AutomapAllMap = cvar.MustRegister("am_allmap", "0", cvar.NONE)
	AutomapFollow = cvar.MustRegister("am_follow", "1", cvar.ARCHIVE)
	AutomapGrid = cvar.MustRegister("am_grid", "0", cvar.ARCHIVE)
	AutomapScale = cvar.MustRegister("am_scale", "0.2", cvar.ARCHIVE)
	AutomapThings = cvar.MustRegister("am_things", "0", cvar.NONE)
	Detail = cvar.MustRegister("r_detail", "0", cvar.ARCHIVE)
	DrawMasked = cvar.MustRegister("r_drawmasked", "1", cvar.NONE)
	DrawSprites = cvar.MustRegister("r_drawsprites", "1", cvar.NONE)
	ExtraLight = cvar.MustRegister("r_extralight", "0", cvar.NONE)
	FixedColorMap = cvar.MustRegister("r_fixedcolormap", "-1", cvar.NONE)
	Fuzz = cvar.MustRegister("r_fuzz", "1", cvar.ARCHIVE)
	ScreenBlocks = cvar.MustRegister("screenblocks", "11", cvar.ARCHIVE)
	ShowStats = cvar.MustRegister("r_speeds", "0", cvar.NONE)
	WipeBandWidth = cvar.MustRegister("wipe_bandwidth", "2", cvar.ARCHIVE)
	WipeEnabled = cvar.MustRegister("wipe", "1", cvar.ARCHIVE)
}
