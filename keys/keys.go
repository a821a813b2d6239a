// SPDX-License-Identifier: GPL-2.0-or-later

// Package keys maps keys to the commands they run. A binding starting with
// '+' is a button: it runs with '+' when the key goes down and with '-'
// when it comes up.
package keys

import (
	"sort"
	"strings"

	"github.com/pkg/errors"

	"godoom/keycode"
)

// Destination is who receives a key press.
type Destination byte

const (
	Game = Destination(iota)
	Automap
	Menu
)

type Bindings struct {
	binds map[keycode.KeyCode]string
}

func New() *Bindings {
	return &Bindings{binds: make(map[keycode.KeyCode]string)}
}

// Defaults are the viewer bindings.
func Defaults() *Bindings {
	b := New()
	for k, c := range map[keycode.KeyCode]string{
		keycode.UPARROW:    "+forward",
		'w':                "+forward",
		keycode.DOWNARROW:  "+back",
		's':                "+back",
		keycode.LEFTARROW:  "+left",
		keycode.RIGHTARROW: "+right",
		'a':                "+moveleft",
		'd':                "+moveright",
		keycode.SHIFT:      "+speed",
		keycode.ALT:        "+strafe",
		keycode.TAB:        "automap",
		keycode.ESCAPE:     "menu",
		keycode.F5:         "toggle r_detail",
		keycode.F9:         "exitlevel",
		keycode.F10:        "quit",
		keycode.F11:        "toggle r_speeds",
		keycode.F12:        "screenshot",
		'-':                "sizedown",
		'=':                "sizeup",
	} {
		b.binds[k] = c
	}
	return b
}

// Bind sets the command of the key named key.
func (b *Bindings) Bind(key, command string) error {
	k := keycode.StringToKey(key)
	if k == keycode.None {
		return errors.Errorf("unknown key %q", key)
	}
	if command == "" {
		delete(b.binds, k)
		return nil
	}
	b.binds[k] = command
	return nil
}

// Command returns the command to run for k going down or up. Only buttons
// have a command for the key coming up.
func (b *Bindings) Command(k keycode.KeyCode, down bool) (string, bool) {
	c, ok := b.binds[k]
	if !ok {
		return "", false
	}
	if strings.HasPrefix(c, "+") {
		if down {
			return c, true
		}
		return "-" + c[1:], true
	}
	return c, down
}

// List returns "key command" lines sorted by key name.
func (b *Bindings) List() []string {
	out := make([]string, 0, len(b.binds))
	for k, c := range b.binds {
		out = append(out, keycode.KeyToString(k)+" \""+c+"\"")
	}
	sort.Strings(out)
	return out
}
