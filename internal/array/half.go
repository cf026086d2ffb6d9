package array

import "math"

// Float16 elements are stored as IEEE 754 half-precision bit patterns in
// uint16. The conversions below are exact for every representable half
// value; float32->half rounds by mantissa truncation and saturates the
// exponent to infinity.

// halfToFloat32 converts an IEEE 754 half-precision bit pattern to float32.
func halfToFloat32(h uint16) float32 {
	sign := uint32(h>>15) & 0x1
	exp := uint32(h>>10) & 0x1F
	mant := uint32(h) & 0x3FF

	var bits uint32
	switch exp {
	case 0:
		if mant == 0 {
			// Signed zero.
			bits = sign << 31
		} else {
			// Subnormal half, normal float32: shift the mantissa up until
			// the implicit leading bit appears.
			e := 1
			for mant&0x400 == 0 {
				mant <<= 1
				e--
			}
			mant &= 0x3FF
			bits = sign<<31 | uint32(e+127-15)<<23 | mant<<13
		}
	case 0x1F:
		// Inf or NaN.
		bits = sign<<31 | 0x7F800000 | mant<<13
	default:
		bits = sign<<31 | (exp+127-15)<<23 | mant<<13
	}
	return math.Float32frombits(bits)
}

// float32ToHalf converts a float32 to an IEEE 754 half-precision bit
// pattern. Values below the half subnormal range flush to zero; values
// above the half range become infinity.
func float32ToHalf(f float32) uint16 {
	bits := math.Float32bits(f)
	sign := uint16(bits>>31) & 0x1
	exp := (bits >> 23) & 0xFF
	mant := bits & 0x7FFFFF

	if exp == 0xFF {
		// Inf or NaN. Keep a nonzero mantissa bit for NaN.
		h := sign<<15 | 0x7C00
		if mant != 0 {
			h |= uint16(mant>>13) | 0x1
		}
		return h
	}
	if exp == 0 {
		// Zero or float32 subnormal, below half resolution.
		return sign << 15
	}

	newExp := int(exp) - 127 + 15
	if newExp <= 0 {
		return sign << 15
	}
	if newExp >= 31 {
		return sign<<15 | 0x7C00
	}
	return sign<<15 | uint16(newExp)<<10 | uint16(mant>>13)
}
