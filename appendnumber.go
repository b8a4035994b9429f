package jsondom

import (
	"math"
	"strconv"
)

// dblEpsilon is the difference between 1 and the least float64 greater
// than 1, the tolerance for treating a value as integral.
const dblEpsilon = 2.220446049250313e-16

// appendNumber renders f the way the printer emits numbers and appends it
// to dst:
//
//	exactly zero            -> "0"
//	NaN and infinities      -> "null"
//	integral, int32 range   -> decimal integer
//	integral, |f| < 1e60    -> fixed notation without decimals
//	outside [1e-6, 1e9]     -> scientific notation, 6 decimals
//	anything else           -> fixed notation, 6 decimals
func appendNumber(dst []byte, f float64) []byte {
	if f == 0 {
		return append(dst, '0')
	}
	// This checks for NaN and the infinities.
	if f*0 != 0 {
		return append(dst, "null"...)
	}

	integral := math.Abs(math.Floor(f)-f) <= dblEpsilon
	if integral && f <= math.MaxInt32 && f >= math.MinInt32 {
		return strconv.AppendInt(dst, int64(f), 10)
	}

	abs := math.Abs(f)
	switch {
	case integral && abs < 1e60:
		return strconv.AppendFloat(dst, f, 'f', 0, 64)
	case abs < 1e-6 || abs > 1e9:
		return strconv.AppendFloat(dst, f, 'e', 6, 64)
	}
	return strconv.AppendFloat(dst, f, 'f', 6, 64)
}
