package fixedpoint

import (
	"fmt"
	"math"
)

const fracBits = 10
const one = 1 << fracBits

// Q21x10 is a signed 32-bit fixed-point number with 21 integral bits and
// 10 fractional bits, giving a resolution of about 0.001. It is the format
// used for temperature (°C) and altitude (m) readings.
type Q21x10 int32

// UQ22x10 is an unsigned 32-bit fixed-point number with 22 integral bits
// and 10 fractional bits. It is the format used for barometric pressure
// readings (hPa).
type UQ22x10 uint32

func Q21x10FromFloat(v float64) Q21x10 {
	return Q21x10(math.Round(v * one))
}

func UQ22x10FromFloat(v float64) UQ22x10 {
	if v < 0 {
		return 0
	}
	return UQ22x10(math.Round(v * one))
}

// Float returns the value as a float64.
func (q Q21x10) Float() float64 {
	return float64(q) / one
}

func (q UQ22x10) Float() float64 {
	return float64(q) / one
}

// Round returns the nearest integral value.
func (q Q21x10) Round() int32 {
	return int32(math.Round(q.Float()))
}

func (q UQ22x10) Round() uint32 {
	return uint32(math.Round(q.Float()))
}

func (q Q21x10) String() string {
	return fmt.Sprintf("%.3f", q.Float())
}

func (q UQ22x10) String() string {
	return fmt.Sprintf("%.3f", q.Float())
}
