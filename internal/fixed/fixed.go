// Package fixed implements the 16.16 fixed-point arithmetic and binary angle
// measurement used by the simulation. Every gameplay computation goes through
// this package so that tics replay bit-for-bit.
package fixed

// Fixed is a signed 16.16 fixed-point number.
type Fixed int32

const (
	FracBits       = 16
	FracUnit Fixed = 1 << FracBits
)

// Int converts a whole number of map units to Fixed.
func Int(v int32) Fixed {
	return Fixed(v << FracBits)
}

// ToInt truncates toward negative infinity (arithmetic shift).
func (f Fixed) ToInt() int32 {
	return int32(f) >> FracBits
}

// Mul returns a*b.
func Mul(a, b Fixed) Fixed {
	return Fixed((int64(a) * int64(b)) >> FracBits)
}

// Div returns a/b, saturating when the quotient does not fit.
func Div(a, b Fixed) Fixed {
	if (Abs(a) >> 14) >= Abs(b) {
		if (a ^ b) < 0 {
			return minFixed
		}
		return maxFixed
	}
	return Fixed((int64(a) << FracBits) / int64(b))
}

const (
	maxFixed Fixed = 0x7fffffff
	minFixed Fixed = -0x80000000
)

// Abs returns |f|.
func Abs(f Fixed) Fixed {
	if f < 0 {
		return -f
	}
	return f
}

// Clamp bounds f to [lo, hi].
func Clamp(lo, f, hi Fixed) Fixed {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}

// ApproxDistance is the octagonal distance approximation used for AI and
// drift decisions.
func ApproxDistance(dx, dy Fixed) Fixed {
	dx = Abs(dx)
	dy = Abs(dy)
	if dx < dy {
		return dx + dy - (dx >> 1)
	}
	return dx + dy - (dy >> 1)
}
