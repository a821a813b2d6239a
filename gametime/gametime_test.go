// SPDX-License-Identifier: GPL-2.0-or-later

package gametime

import (
	"context"
	"testing"
	"time"
)

func TestTimeDemoDoesNotWait(t *testing.T) {
	h := New(true)
	start := time.Now()
	for i := 0; i < 2*TicRate; i++ {
		if err := h.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
		h.FrameIncrease()
	}
	if d := time.Since(start); d > time.Second {
		t.Errorf("70 time demo tics took %v", d)
	}
	if h.Tics() != 70 || h.Seconds() != 2 || h.FrameCount() != 70 {
		t.Errorf("Tics() = %v, Seconds() = %v, FrameCount() = %v", h.Tics(), h.Seconds(), h.FrameCount())
	}
}

func TestTicRate(t *testing.T) {
	h := New(false)
	start := time.Now()
	for i := 0; i < 4; i++ {
		if err := h.Wait(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	// the first tic is free, the other three wait a 35th of a second each
	if d := time.Since(start); d < 3*time.Second/TicRate-5*time.Millisecond {
		t.Errorf("4 tics took %v", d)
	}
}

func TestWaitCancelled(t *testing.T) {
	h := New(false)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := h.Wait(ctx); err == nil {
		t.Errorf("Wait with a cancelled context did not fail")
	}
	if h.Tics() != 0 {
		t.Errorf("Tics() = %v after a cancelled wait", h.Tics())
	}
}
