package util

import (
	"golang.org/x/exp/constraints"
)

// Bit/word helpers shared by the whitening core and tests.
// Trying out generic approach... if too slow will make type specific versions

// Mask returns a value with the low width bits set.
func Mask[T constraints.Unsigned](width uint) T {
	if width >= uint(64) {
		return ^T(0)
	}
	return T(1)<<width - 1
}

// BitAt returns bit i of v as 0 or 1.
func BitAt[T constraints.Unsigned](v T, i uint) uint8 {
	return uint8(v>>i) & 1
}

// BitsOf expands the low width bits of v, LSB first.
func BitsOf[T constraints.Unsigned](v T, width uint) []uint8 {
	bits := make([]uint8, width)
	for i := uint(0); i < width; i++ {
		bits[i] = BitAt(v, i)
	}
	return bits
}

// WordOf packs bits (LSB first) back into a word.
func WordOf[T constraints.Unsigned](bits []uint8) T {
	var v T
	for i, b := range bits {
		v |= T(b&1) << uint(i)
	}
	return v
}

// Parity returns the XOR of all bits of v.
func Parity[T constraints.Unsigned](v T) uint8 {
	var p uint8
	for v != 0 {
		p ^= uint8(v) & 1
		v >>= 1
	}
	return p
}
