// SPDX-License-Identifier: GPL-2.0-or-later

// Package gametime paces the game at a fixed number of tics per second.
package gametime

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// TicRate is the number of tics per second.
const TicRate = 35

type GameTime struct {
	limiter    *rate.Limiter
	start      time.Time
	tics       int
	frameCount int
}

// New returns a clock at TicRate. In a time demo tics never wait so the
// frame rate shows how fast the renderer is.
func New(timeDemo bool) *GameTime {
	limit := rate.Every(time.Second / TicRate)
	if timeDemo {
		limit = rate.Inf
	}
	return &GameTime{
		limiter: rate.NewLimiter(limit, 1),
		start:   time.Now(),
	}
}

// Wait blocks until the next tic is due and counts it.
func (h *GameTime) Wait(ctx context.Context) error {
	if err := h.limiter.Wait(ctx); err != nil {
		return err
	}
	h.tics++
	return nil
}

// Tics is the number of tics run so far.
func (h *GameTime) Tics() int { return h.tics }

// Seconds is the game time in whole seconds.
func (h *GameTime) Seconds() int { return h.tics / TicRate }

func (h *GameTime) FrameCount() int { return h.frameCount }
func (h *GameTime) FrameIncrease()  { h.frameCount++ }

// FPS is the average number of frames per second since the start.
func (h *GameTime) FPS() float64 {
	d := time.Since(h.start).Seconds()
	if d <= 0 {
		return 0
	}
	return float64(h.frameCount) / d
}
