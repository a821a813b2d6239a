// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"testing"

	"github.com/veandco/go-sdl2/sdl"

	kc "godoom/keycode"
)

func TestScancodeToKey(t *testing.T) {
	tests := []struct {
		sc   sdl.Scancode
		want kc.KeyCode
	}{
		{sdl.SCANCODE_A, 'a'},
		{sdl.SCANCODE_W, 'w'},
		{sdl.SCANCODE_Z, 'z'},
		{sdl.SCANCODE_1, '1'},
		{sdl.SCANCODE_9, '9'},
		{sdl.SCANCODE_0, '0'},
		{sdl.SCANCODE_F1, kc.F1},
		{sdl.SCANCODE_F12, kc.F12},
		{sdl.SCANCODE_RETURN2, kc.ENTER},
		{sdl.SCANCODE_EQUALS, '='},
		{sdl.SCANCODE_RSHIFT, kc.SHIFT},
		{sdl.SCANCODE_KP_PLUS, kc.KP_PLUS},
		{sdl.SCANCODE_CAPSLOCK, kc.None},
	}
	for _, tc := range tests {
		if got := scancodeToKey(tc.sc); got != tc.want {
			t.Errorf("scancodeToKey(%v) = %v, want %v", tc.sc, got, tc.want)
		}
	}
}
