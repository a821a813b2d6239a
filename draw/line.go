// SPDX-License-Identifier: GPL-2.0-or-later

package draw

const outInside = 0

const (
	outLeft = 1 << iota
	outRight
	outBottom
	outTop
)

func (s *Surface) outCode(x, y int64) int {
	code := outInside
	if x < 0 {
		code |= outLeft
	} else if x > int64(s.Width-1) {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > int64(s.Height-1) {
		code |= outBottom
	}
	return code
}

// divRound divides n by d rounding to the nearest integer, halves away
// from zero.
func divRound(n, d int64) int64 {
	if (n < 0) != (d < 0) {
		return (n - d/2) / d
	}
	return (n + d/2) / d
}

// clipLine clips the line against the surface bounds. It returns false if
// nothing of the line is visible.
func (s *Surface) clipLine(x1, y1, x2, y2 int64) (int, int, int, int, bool) {
	xmax := int64(s.Width - 1)
	ymax := int64(s.Height - 1)
	c1 := s.outCode(x1, y1)
	c2 := s.outCode(x2, y2)
	// every pass puts one end on an edge, rounding can only take a few more
	for i := 0; c1|c2 != 0; i++ {
		if c1&c2 != 0 || i == 8 {
			return 0, 0, 0, 0, false
		}
		c := c1
		if c == 0 {
			c = c2
		}
		var x, y int64
		switch {
		case c&outTop != 0:
			x = x1 + divRound((x2-x1)*(0-y1), y2-y1)
			y = 0
		case c&outBottom != 0:
			x = x1 + divRound((x2-x1)*(ymax-y1), y2-y1)
			y = ymax
		case c&outRight != 0:
			y = y1 + divRound((y2-y1)*(xmax-x1), x2-x1)
			x = xmax
		default:
			y = y1 + divRound((y2-y1)*(0-x1), x2-x1)
			x = 0
		}
		if c == c1 {
			x1, y1 = x, y
			c1 = s.outCode(x1, y1)
		} else {
			x2, y2 = x, y
			c2 = s.outCode(x2, y2)
		}
	}
	return int(x1), int(y1), int(x2), int(y2), true
}

// DrawLine draws a clipped line with Bresenham's algorithm.
func (s *Surface) DrawLine(x1, y1, x2, y2 int, c byte) {
	ix1, iy1, ix2, iy2, ok := s.clipLine(int64(x1), int64(y1), int64(x2), int64(y2))
	if !ok {
		return
	}
	dx := ix2 - ix1
	ax := 2 * abs(dx)
	sx := sign(dx)
	dy := iy2 - iy1
	ay := 2 * abs(dy)
	sy := sign(dy)
	x, y := ix1, iy1
	if ax > ay {
		d := ay - ax/2
		for {
			s.Data[x*s.Height+y] = c
			if x == ix2 {
				return
			}
			if d >= 0 {
				y += sy
				d -= ax
			}
			x += sx
			d += ay
		}
	}
	d := ax - ay/2
	for {
		s.Data[x*s.Height+y] = c
		if y == iy2 {
			return
		}
		if d >= 0 {
			x += sx
			d -= ay
		}
		y += sy
		d += ax
	}
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

func sign(a int) int {
	switch {
	case a < 0:
		return -1
	case a > 0:
		return 1
	}
	return 0
}
