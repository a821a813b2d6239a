// SPDX-License-Identifier: GPL-2.0-or-later

package fixed

// Angle is a binary angle: the full uint32 range is one turn, so adding
// angles wraps around without any modulo.
type Angle uint32

const (
	Ang0   Angle = 0
	Ang45  Angle = 0x20000000
	Ang90  Angle = 0x40000000
	Ang180 Angle = 0x80000000
	Ang270 Angle = 0xc0000000
	AngMax Angle = 0xffffffff
)

func AngleFromDegrees(d float64) Angle {
	return Angle(int64(d/360*(1<<32)) & 0xffffffff)
}

func (a Angle) Degrees() float64 {
	return float64(a) / (1 << 32) * 360
}

// Fine returns the index into the fine tables.
func (a Angle) Fine() int {
	return int(a >> AngleToFineShift)
}

// AbsAngle maps a into [0, Ang180] treating values above Ang180 as negative.
func AbsAngle(a Angle) Angle {
	if a > Ang180 {
		return -a
	}
	return a
}

func Sin(a Angle) Fixed {
	return fineSine[a>>AngleToFineShift]
}

func Cos(a Angle) Fixed {
	return fineSine[(a>>AngleToFineShift)+FineAngles/4]
}

// Tan returns the tangent of a. The table only covers half a turn, which is
// the period of the tangent, so a is taken modulo Ang180.
func Tan(a Angle) Fixed {
	return fineTangent[((a+Ang90)&0x7fffffff)>>AngleToFineShift]
}

// SinFine and CosFine address the tables with a fine index directly.
func SinFine(i int) Fixed {
	return fineSine[i&FineMask]
}

func CosFine(i int) Fixed {
	return fineSine[(i&FineMask)+FineAngles/4]
}

// SlopeDiv returns num/den scaled to an index into the arctangent table.
func SlopeDiv(num, den uint32) int {
	if den < 512 {
		return SlopeRange
	}
	ans := (num << 3) / (den >> 8)
	if ans <= SlopeRange {
		return int(ans)
	}
	return SlopeRange
}

// PointToAngle returns the angle of the vector (x, y) measured from the
// positive x axis.
func PointToAngle(x, y Fixed) Angle {
	if x == 0 && y == 0 {
		return 0
	}
	if x >= 0 {
		if y >= 0 {
			if x > y {
				return tanToAngle[SlopeDiv(uint32(y), uint32(x))]
			}
			return Ang90 - 1 - tanToAngle[SlopeDiv(uint32(x), uint32(y))]
		}
		y = -y
		if x > y {
			return -tanToAngle[SlopeDiv(uint32(y), uint32(x))]
		}
		return Ang270 + tanToAngle[SlopeDiv(uint32(x), uint32(y))]
	}
	x = -x
	if y >= 0 {
		if x > y {
			return Ang180 - 1 - tanToAngle[SlopeDiv(uint32(y), uint32(x))]
		}
		return Ang90 + tanToAngle[SlopeDiv(uint32(x), uint32(y))]
	}
	y = -y
	if x > y {
		return Ang180 + tanToAngle[SlopeDiv(uint32(y), uint32(x))]
	}
	return Ang270 - 1 - tanToAngle[SlopeDiv(uint32(x), uint32(y))]
}

// PointToAngle2 returns the angle of the vector from (x1, y1) to (x2, y2).
func PointToAngle2(x1, y1, x2, y2 Fixed) Angle {
	return PointToAngle(x2-x1, y2-y1)
}

// PointToDist returns the euclidean distance from (vx, vy) to (x, y).
func PointToDist(vx, vy, x, y Fixed) Fixed {
	dx := Abs(x - vx)
	dy := Abs(y - vy)
	if dy > dx {
		dx, dy = dy, dx
	}
	if dx == 0 {
		return 0
	}
	i := Div(dy, dx) >> distBits
	if i > SlopeRange {
		i = SlopeRange
	}
	angle := (tanToAngle[i] + Ang90) >> AngleToFineShift
	return Div(dx, fineSine[angle])
}

// ApproxDistance is the classic octagonal distance approximation.
func ApproxDistance(dx, dy Fixed) Fixed {
	dx = Abs(dx)
	dy = Abs(dy)
	if dx < dy {
		return dx + dy - (dx >> 1)
	}
	return dx + dy - (dy >> 1)
}
