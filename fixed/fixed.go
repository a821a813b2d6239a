// SPDX-License-Identifier: GPL-2.0-or-later

// Package fixed implements the 16.16 fixed point numbers and binary angles
// the renderer works with.
package fixed

import (
	"math"
	"strconv"
)

// Fixed is a signed 16.16 fixed point number.
type Fixed int32

const (
	FracBits = 16
	FracUnit = 1 << FracBits

	Zero     Fixed = 0
	One      Fixed = FracUnit
	Epsilon  Fixed = 1
	MaxValue Fixed = math.MaxInt32
	MinValue Fixed = math.MinInt32
)

func FromInt(i int) Fixed {
	return Fixed(i << FracBits)
}

func FromFloat(f float64) Fixed {
	return Fixed(f * FracUnit)
}

// Int converts to int rounding towards negative infinity.
func (f Fixed) Int() int {
	return int(f >> FracBits)
}

// IntCeil converts to int rounding towards positive infinity.
func (f Fixed) IntCeil() int {
	return int((int64(f) + FracUnit - 1) >> FracBits)
}

func (f Fixed) Float() float64 {
	return float64(f) / FracUnit
}

func (f Fixed) String() string {
	return strconv.FormatFloat(f.Float(), 'f', -1, 64)
}

func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Mul returns a*b, evaluated with a 64 bit intermediate.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FracBits)
}

// Div returns a/b. Results which do not fit into 16.16 saturate to
// MaxValue or MinValue depending on the sign.
func Div(a, b Fixed) Fixed {
	if (Abs(a) >> 14) >= Abs(b) {
		if (a ^ b) < 0 {
			return MinValue
		}
		return MaxValue
	}
	return Fixed((int64(a) << FracBits) / int64(b))
}

// MulInt multiplies by a plain integer without any shift.
func MulInt(a Fixed, i int) Fixed {
	return a * Fixed(i)
}

func Min(a, b Fixed) Fixed {
	if a < b {
		return a
	}
	return b
}

func Max(a, b Fixed) Fixed {
	if a > b {
		return a
	}
	return b
}
