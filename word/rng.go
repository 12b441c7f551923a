package word

import (
	"fmt"
)

// Range is the half-open interval of bit positions [Lo, Hi).
type Range struct {
	Lo int
	Hi int
}

// Len returns the number of bits in the range.
func (r Range) Len() int {
	return r.Hi - r.Lo
}

// Overlaps returns true if the two ranges share any bit position.
func (r Range) Overlaps(other Range) bool {
	return r.Lo < other.Hi && other.Lo < r.Hi
}

// Within returns true if the range is non-empty and lies inside a width-bit word.
func (r Range) Within(width int) bool {
	return 0 <= r.Lo && r.Lo < r.Hi && r.Hi <= width
}

// Mask returns the bits of the range set in a 64-bit mask.
func (r Range) Mask() uint64 {
	return maskOf(r.Len()) << r.Lo
}

func (r Range) String() string {
	return fmt.Sprintf("[%d,%d)", r.Lo, r.Hi)
}
