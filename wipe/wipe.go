// SPDX-License-Identifier: GPL-2.0-or-later

// Package wipe implements the melt transition between two screens. The old
// screen is cut into bands that slide down at staggered speeds and uncover
// the new screen below.
package wipe

import (
	"github.com/pkg/errors"

	"godoom/draw"
	"godoom/rand"
)

type Status int

const (
	InProgress Status = iota
	Completed
)

const (
	// maxStagger is how many tics the slowest band waits before moving.
	maxStagger = 16
	// fastSpeed is the drop per tic once a band has moved 16 pixels.
	fastSpeed = 8
)

// Effect is the state of one melt. It is driven by Update once per tic and
// has no notion of wall clock time.
type Effect struct {
	band   int
	width  int
	height int
	rng    *rand.Generator
	seed   uint32

	// y is the offset of each band, negative while it still waits.
	y      []int
	start  *draw.Surface
	active bool
}

// New returns an effect for width x height surfaces with bands of band
// columns, seeded with seed.
func New(width, height, band int, seed uint32) (*Effect, error) {
	if width <= 0 || height <= 0 {
		return nil, errors.Errorf("wipe size %dx%d", width, height)
	}
	if band < 1 || band > width {
		return nil, errors.Errorf("wipe band width %d out of range 1..%d", band, width)
	}
	return &Effect{
		band:   band,
		width:  width,
		height: height,
		rng:    rand.New(seed),
		seed:   seed,
		y:      make([]int, (width+band-1)/band),
		start:  draw.NewSurface(width, height),
	}, nil
}

// Start saves from as the screen that melts away and staggers the bands.
// Every start with the same seed produces the same melt.
func (e *Effect) Start(from *draw.Surface) {
	e.start.CopyFrom(from)
	e.rng.Seed(e.seed)
	e.y[0] = -e.rng.Intn(maxStagger)
	for i := 1; i < len(e.y); i++ {
		y := e.y[i-1] + e.rng.Intn(3) - 1
		switch {
		case y > 0:
			y = 0
		case y == -maxStagger:
			y = -maxStagger + 1
		}
		e.y[i] = y
	}
	e.active = true
}

// Update advances the melt by one tic.
// It reports Completed once every band has reached the bottom.
func (e *Effect) Update() Status {
	done := true
	for i, y := range e.y {
		switch {
		case y < 0:
			e.y[i]++
		case y < e.height:
			dy := fastSpeed
			if y < maxStagger {
				dy = y + 1
			}
			e.y[i] = min(y+dy, e.height)
		}
		done = done && e.y[i] == e.height
	}
	if done {
		e.active = false
		return Completed
	}
	return InProgress
}

// Render draws the melting old screen over dst, which holds the new one.
func (e *Effect) Render(dst *draw.Surface) {
	h := e.height
	for i, y := range e.y {
		y = max(y, 0)
		if y >= h {
			continue
		}
		for x := i * e.band; x < min((i+1)*e.band, e.width); x++ {
			o := x * h
			copy(dst.Data[o+y:o+h], e.start.Data[o:o+h-y])
		}
	}
}

// Active reports whether a melt was started and has not completed.
func (e *Effect) Active() bool {
	return e.active
}

// Offsets returns the current band offsets.
func (e *Effect) Offsets() []int {
	return e.y
}
