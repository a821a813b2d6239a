// SPDX-License-Identifier: GPL-2.0-or-later

// Package input tracks the movement buttons and turns them into player
// movement once per tic.
package input

import (
	"strings"

	"godoom/fixed"
	"godoom/keycode"
	"godoom/world"
)

type button struct {
	// key nums holding it down, can handle 2 keys with the same action
	holdingDown [2]keycode.KeyCode
	down        bool
	impulseDown bool
	impulseUp   bool
}

type Buttons struct {
	Forward   button
	Back      button
	Left      button
	Right     button
	MoveLeft  button
	MoveRight button
	Speed     button
	Strafe    button
}

func (b button) Down() bool {
	return b.down
}

// WentDown reports whether the button is down or was pressed since the
// last call.
func (b *button) WentDown() bool {
	r := b.down || b.impulseDown
	b.impulseDown = false
	return r
}

func (b *button) upKey(k keycode.KeyCode) {
	if b.holdingDown[0] == k {
		b.holdingDown[0] = 0
	} else if b.holdingDown[1] == k {
		b.holdingDown[1] = 0
	} else {
		return
	}
	if b.holdingDown[0] != 0 || b.holdingDown[1] != 0 {
		// some other key is still holding it down
		return
	}
	if !b.down {
		return
	}
	b.down = false
	b.impulseUp = true
}

func (b *button) downKey(k keycode.KeyCode) {
	if b.holdingDown[0] == k || b.holdingDown[1] == k {
		return
	}
	if b.holdingDown[0] == 0 {
		b.holdingDown[0] = k
	} else if b.holdingDown[1] == 0 {
		b.holdingDown[1] = k
	} else {
		// three keys down for a button
		return
	}
	if b.down {
		return
	}
	b.down = true
	b.impulseDown = true
}

func (bs *Buttons) byName(n string) *button {
	switch n {
	case "forward":
		return &bs.Forward
	case "back":
		return &bs.Back
	case "left":
		return &bs.Left
	case "right":
		return &bs.Right
	case "moveleft":
		return &bs.MoveLeft
	case "moveright":
		return &bs.MoveRight
	case "speed":
		return &bs.Speed
	case "strafe":
		return &bs.Strafe
	}
	return nil
}

// Command runs a "+name" or "-name" button command issued by key k and
// reports whether it named a button.
func (bs *Buttons) Command(c string, k keycode.KeyCode) bool {
	if len(c) < 2 || (c[0] != '+' && c[0] != '-') {
		return false
	}
	b := bs.byName(strings.ToLower(c[1:]))
	if b == nil {
		return false
	}
	if c[0] == '+' {
		b.downKey(k)
	} else {
		b.upKey(k)
	}
	return true
}

// Release lifts every button, as when the window loses focus.
func (bs *Buttons) Release() {
	*bs = Buttons{}
}

const (
	walkSpeed fixed.Fixed = 8 * fixed.FracUnit
	runSpeed  fixed.Fixed = 16 * fixed.FracUnit
	// turn speeds per tic
	slowTurn fixed.Angle = 640 << 16
	fastTurn fixed.Angle = 1280 << 16
)

// Tic moves and turns p for one tic of held buttons.
func (bs *Buttons) Tic(w *world.World, p *world.Player) {
	speed, turn := walkSpeed, slowTurn
	if bs.Speed.Down() {
		speed, turn = runSpeed, fastTurn
	}
	var forward, side fixed.Fixed
	if bs.Forward.WentDown() {
		forward += speed
	}
	if bs.Back.WentDown() {
		forward -= speed
	}
	if bs.MoveRight.WentDown() {
		side += speed
	}
	if bs.MoveLeft.WentDown() {
		side -= speed
	}
	mo := p.Mobj
	if bs.Strafe.Down() {
		if bs.Right.WentDown() {
			side += speed
		}
		if bs.Left.WentDown() {
			side -= speed
		}
	} else {
		if bs.Right.WentDown() {
			mo.Angle -= turn
		}
		if bs.Left.WentDown() {
			mo.Angle += turn
		}
	}
	if forward != 0 || side != 0 {
		// right is 90 degrees clockwise of the facing
		fa := mo.Angle.Fine()
		ra := (mo.Angle - fixed.Ang90).Fine()
		dx := fixed.Mul(forward, fixed.CosFine(fa)) + fixed.Mul(side, fixed.CosFine(ra))
		dy := fixed.Mul(forward, fixed.SinFine(fa)) + fixed.Mul(side, fixed.SinFine(ra))
		w.TryMove(mo, mo.X+dx, mo.Y+dy)
	}
	p.UpdateView()
}
