package word

import (
	"fmt"
)

const (
	MAX_WIDTH = 64 // Widest Vector representable.
)

// Vector is a fixed-width bit vector. Bit 0 is the least significant.
type Vector struct {
	Width int    // Width in bits.
	Bits  uint64 // Value. Bits at and above Width are always zero.
}

// maskOf returns a mask of the low width bits.
func maskOf(width int) uint64 {
	if width >= MAX_WIDTH {
		return ^uint64(0)
	}
	return (uint64(1) << width) - 1
}

func checkWidth(width int) {
	if width < 0 || width > MAX_WIDTH {
		panic(fmt.Sprintf("word: vector width %d out of range", width))
	}
}

// New returns a width-bit vector holding the low width bits of value.
func New(width int, value uint64) Vector {
	checkWidth(width)
	return Vector{Width: width, Bits: value & maskOf(width)}
}

// FromInt returns the width-bit two's complement truncation of value.
func FromInt(width int, value int64) Vector {
	return New(width, uint64(value))
}

// Zero returns an all-zero vector.
func Zero(width int) Vector {
	return New(width, 0)
}

// Valid returns true if no bit at or above Width is set.
func (v Vector) Valid() bool {
	return v.Width >= 0 && v.Width <= MAX_WIDTH && v.Bits&^maskOf(v.Width) == 0
}

// Uint returns the vector zero-extended to 64 bits.
func (v Vector) Uint() uint64 {
	return v.Bits
}

// Int returns the vector sign-extended to 64 bits.
func (v Vector) Int() int64 {
	if v.Width == 0 {
		return 0
	}
	shift := MAX_WIDTH - v.Width
	return int64(v.Bits<<shift) >> shift
}

// Bit returns bit n.
func (v Vector) Bit(n int) bool {
	return (v.Bits>>n)&1 == 1
}

// Slice returns the bits of v in r, as a vector of r.Len() bits.
func (v Vector) Slice(r Range) Vector {
	if r.Lo < 0 || r.Hi > v.Width || r.Lo > r.Hi {
		panic(fmt.Sprintf("word: slice %v of %d-bit vector", r, v.Width))
	}
	return New(r.Len(), v.Bits>>r.Lo)
}

// Concat returns v with hi placed above its most significant bit.
func (v Vector) Concat(hi Vector) Vector {
	return New(v.Width+hi.Width, v.Bits|(hi.Bits<<v.Width))
}

// ZeroExtend widens v to width bits, filling with zeros.
func (v Vector) ZeroExtend(width int) Vector {
	return New(width, v.Bits)
}

// SignExtend widens v to width bits, filling with copies of the sign bit.
func (v Vector) SignExtend(width int) Vector {
	return FromInt(width, v.Int())
}

// Hex returns the vector as a zero-padded hexadecimal string.
func (v Vector) Hex() string {
	digits := (v.Width + 3) / 4
	return fmt.Sprintf("0x%0*x", digits, v.Bits)
}

// String returns the vector as a zero-padded binary string.
func (v Vector) String() string {
	if v.Width == 0 {
		return "0b"
	}
	return fmt.Sprintf("0b%0*b", v.Width, v.Bits)
}
