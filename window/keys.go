// SPDX-License-Identifier: GPL-2.0-or-later

package window

import (
	"github.com/veandco/go-sdl2/sdl"

	kc "godoom/keycode"
)

// scancodeToKey uses the physical key and not what it is mapped to.
func scancodeToKey(sc sdl.Scancode) kc.KeyCode {
	switch {
	case sc >= sdl.SCANCODE_A && sc <= sdl.SCANCODE_Z:
		return kc.KeyCode('a' + int(sc-sdl.SCANCODE_A))
	case sc >= sdl.SCANCODE_1 && sc <= sdl.SCANCODE_9:
		return kc.KeyCode('1' + int(sc-sdl.SCANCODE_1))
	case sc >= sdl.SCANCODE_F1 && sc <= sdl.SCANCODE_F12:
		return kc.F1 + kc.KeyCode(sc-sdl.SCANCODE_F1)
	}
	switch sc {
	case sdl.SCANCODE_0:
		return '0'
	case sdl.SCANCODE_TAB:
		return kc.TAB
	case sdl.SCANCODE_RETURN, sdl.SCANCODE_RETURN2:
		return kc.ENTER
	case sdl.SCANCODE_ESCAPE:
		return kc.ESCAPE
	case sdl.SCANCODE_SPACE:
		return kc.SPACE
	case sdl.SCANCODE_BACKSPACE:
		return kc.BACKSPACE

	case sdl.SCANCODE_MINUS:
		return '-'
	case sdl.SCANCODE_EQUALS:
		return '='
	case sdl.SCANCODE_LEFTBRACKET:
		return '['
	case sdl.SCANCODE_RIGHTBRACKET:
		return ']'
	case sdl.SCANCODE_SEMICOLON:
		return ';'
	case sdl.SCANCODE_APOSTROPHE:
		return '\''
	case sdl.SCANCODE_GRAVE:
		return '`'
	case sdl.SCANCODE_COMMA:
		return ','
	case sdl.SCANCODE_PERIOD:
		return '.'
	case sdl.SCANCODE_SLASH:
		return '/'
	case sdl.SCANCODE_BACKSLASH, sdl.SCANCODE_NONUSBACKSLASH:
		return '\\'

	case sdl.SCANCODE_UP:
		return kc.UPARROW
	case sdl.SCANCODE_DOWN:
		return kc.DOWNARROW
	case sdl.SCANCODE_LEFT:
		return kc.LEFTARROW
	case sdl.SCANCODE_RIGHT:
		return kc.RIGHTARROW

	case sdl.SCANCODE_LALT, sdl.SCANCODE_RALT:
		return kc.ALT
	case sdl.SCANCODE_LCTRL, sdl.SCANCODE_RCTRL:
		return kc.CTRL
	case sdl.SCANCODE_LSHIFT, sdl.SCANCODE_RSHIFT:
		return kc.SHIFT

	case sdl.SCANCODE_INSERT:
		return kc.INS
	case sdl.SCANCODE_DELETE:
		return kc.DEL
	case sdl.SCANCODE_PAGEDOWN:
		return kc.PGDN
	case sdl.SCANCODE_PAGEUP:
		return kc.PGUP
	case sdl.SCANCODE_HOME:
		return kc.HOME
	case sdl.SCANCODE_END:
		return kc.END

	case sdl.SCANCODE_KP_MINUS:
		return kc.KP_MINUS
	case sdl.SCANCODE_KP_PLUS:
		return kc.KP_PLUS
	case sdl.SCANCODE_KP_ENTER:
		return kc.KP_ENTER
	case sdl.SCANCODE_PAUSE:
		return kc.PAUSE
	}
	return kc.None
}
