// SPDX-License-Identifier: GPL-2.0-or-later

package fixed

import "math"

const (
	FineAngles       = 8192
	FineMask         = FineAngles - 1
	AngleToFineShift = 19

	SlopeBits  = 11
	SlopeRange = 1 << SlopeBits
	distBits   = FracBits - SlopeBits
)

var (
	// fineSine spans five quarter turns so the cosine can share it.
	fineSine    [5 * FineAngles / 4]Fixed
	fineTangent [FineAngles / 2]Fixed
	tanToAngle  [SlopeRange + 1]Angle
)

func init() {
	for i := range fineSine {
		a := (float64(i) + 0.5) * 2 * math.Pi / FineAngles
		fineSine[i] = Fixed(math.Floor(FracUnit*math.Sin(a) + 0.5))
	}
	for i := range fineTangent {
		a := (float64(i-FineAngles/4) + 0.5) * 2 * math.Pi / FineAngles
		t := FracUnit * math.Tan(a)
		switch {
		case t > math.MaxInt32:
			t = math.MaxInt32
		case t < math.MinInt32:
			t = math.MinInt32
		}
		fineTangent[i] = Fixed(t)
	}
	for i := range tanToAngle {
		a := math.Atan(float64(i)/SlopeRange) / (2 * math.Pi)
		tanToAngle[i] = Angle(uint32(a * (1 << 32)))
	}
}

// TanFine returns the tangent table entry i, which holds the tangent of
// the fine angle i-FineAngles/4.
func TanFine(i int) Fixed {
	return fineTangent[i]
}
