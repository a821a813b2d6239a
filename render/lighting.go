// SPDX-License-Identifier: GPL-2.0-or-later

package render

import (
	"github.com/pkg/errors"

	"godoom/palette"
)

const (
	lightLevels      = 16
	lightSegShift    = 4
	maxLightScale    = 48
	lightScaleShift  = 12
	maxLightZ        = 128
	lightZShift      = 20
	distMap          = 2
	fuzzColorMap     = 6
	skyColorMapIndex = 0
)

// Rows of colormaps for one sector light level, indexed by scale or by
// distance bucket.
type (
	scaleRow [maxLightScale]*[256]byte
	zRow     [maxLightZ]*[256]byte
)

// Lighting holds the light tables for one view window width.
type Lighting struct {
	colorMap palette.ColorMap

	scale [lightLevels]scaleRow
	z     [lightLevels]zRow

	// fixedScale and fixedZ point every bucket at the same colormap, one
	// row per colormap, for fixed colormap frames.
	fixedScale []scaleRow
	fixedZ     []zRow
}

// NewLighting builds the light tables. viewWidth is the width of the 3D
// window in full detail columns, the scale falloff is relative to a 320
// pixel wide screen.
func NewLighting(cm palette.ColorMap, viewWidth int) (*Lighting, error) {
	if len(cm) < palette.LightLevels {
		return nil, errors.Errorf("colormap has %d tables, want at least %d", len(cm), palette.LightLevels)
	}
	l := &Lighting{colorMap: cm}
	for i := 0; i < lightLevels; i++ {
		start := (lightLevels - 1 - i) * 2 * palette.LightLevels / lightLevels
		for j := 0; j < maxLightScale; j++ {
			level := start - j*320/viewWidth/distMap
			l.scale[i][j] = &cm[clampLevel(level)]
		}
		for j := 0; j < maxLightZ; j++ {
			// the scale a wall at the bucket distance would have
			scale := 160 / (j + 1)
			level := start - scale/distMap
			l.z[i][j] = &cm[clampLevel(level)]
		}
	}
	l.fixedScale = make([]scaleRow, len(cm))
	l.fixedZ = make([]zRow, len(cm))
	for m := range cm {
		for j := range l.fixedScale[m] {
			l.fixedScale[m][j] = &cm[m]
		}
		for j := range l.fixedZ[m] {
			l.fixedZ[m][j] = &cm[m]
		}
	}
	return l, nil
}

func clampLevel(level int) int {
	return min(max(level, 0), palette.LightLevels-1)
}

// ColorMap returns colormap number i, clamped to the table.
func (l *Lighting) ColorMap(i int) *[256]byte {
	if i < 0 {
		i = 0
	}
	if i >= len(l.colorMap) {
		i = len(l.colorMap) - 1
	}
	return &l.colorMap[i]
}

// lightTables is the light table set used by one frame.
type lightTables struct {
	scale []scaleRow
	z     []zRow
	// fixed is not nil while a fixed colormap overrides distance light.
	fixed *[256]byte
}

// frame selects the tables for a frame. fixedMap is a colormap number or
// negative for distance lighting.
func (l *Lighting) frame(fixedMap int) lightTables {
	if fixedMap < 0 || fixedMap >= len(l.colorMap) {
		return lightTables{scale: l.scale[:], z: l.z[:]}
	}
	return lightTables{
		scale: l.fixedScale[fixedMap : fixedMap+1],
		z:     l.fixedZ[fixedMap : fixedMap+1],
		fixed: &l.colorMap[fixedMap],
	}
}

// scaleLights returns the scale row for a light level which already
// includes extra light.
func (t *lightTables) scaleLights(level int) *scaleRow {
	if t.fixed != nil {
		return &t.scale[0]
	}
	if level < 0 {
		level = 0
	}
	if level >= lightLevels {
		level = lightLevels - 1
	}
	return &t.scale[level]
}

func (t *lightTables) zLights(level int) *zRow {
	if t.fixed != nil {
		return &t.z[0]
	}
	if level < 0 {
		level = 0
	}
	if level >= lightLevels {
		level = lightLevels - 1
	}
	return &t.z[level]
}
