package word

import (
	"fmt"
	"slices"
)

type chunk struct {
	value Vector
	fill  bool // Synthesized zero chunk.
}

// Builder is the interval allocator that assembles one word from chunks.
//
// A Builder is used for exactly one word and then discarded.
type Builder struct {
	width  int
	ranges []Range // Assigned ranges, sorted by Lo, never overlapping.
	chunks map[Range]chunk
	filled bool
}

// NewBuilder creates an empty builder for a width-bit word.
func NewBuilder(width int) *Builder {
	checkWidth(width)
	return &Builder{
		width:  width,
		chunks: make(map[Range]chunk, 8),
	}
}

// Width returns the width of the word under construction.
func (b *Builder) Width() int {
	return b.width
}

// Add assigns value to the bits of r.
func (b *Builder) Add(r Range, value Vector) (err error) {
	return b.add(r, value, false)
}

func (b *Builder) add(r Range, value Vector, fill bool) (err error) {
	if !r.Within(b.width) {
		err = ErrBounds{Range: r, Width: b.width}
		return
	}

	if value.Width != r.Len() {
		err = ErrWidth{Range: r, Width: value.Width}
		return
	}

	if !value.Valid() {
		err = ErrValue{Range: r, Value: value}
		return
	}

	pos, _ := slices.BinarySearchFunc(b.ranges, r, func(have, want Range) int {
		return have.Lo - want.Lo
	})

	if pos > 0 && b.ranges[pos-1].Overlaps(r) {
		err = ErrChunkOverlap{Range: r, With: b.ranges[pos-1]}
		return
	}
	if pos < len(b.ranges) && b.ranges[pos].Overlaps(r) {
		err = ErrChunkOverlap{Range: r, With: b.ranges[pos]}
		return
	}

	b.ranges = slices.Insert(b.ranges, pos, r)
	b.chunks[r] = chunk{value: value, fill: fill}

	return
}

// fill zero-fills every bit not yet assigned.
func (b *Builder) fill() {
	if b.filled {
		return
	}

	var gaps []Range
	last := 0
	for _, r := range b.ranges {
		if r.Lo != last {
			gaps = append(gaps, Range{Lo: last, Hi: r.Lo})
		}
		last = r.Hi
	}
	if last != b.width {
		gaps = append(gaps, Range{Lo: last, Hi: b.width})
	}

	for _, gap := range gaps {
		err := b.add(gap, Zero(gap.Len()), true)
		if err != nil {
			panic(fmt.Errorf("word: zero fill %v: %w", gap, err))
		}
	}

	// The ranges must now tile the word exactly.
	last = 0
	for _, r := range b.ranges {
		if r.Lo != last {
			panic(fmt.Errorf("word: %v does not follow bit %d: %w", r, last, ErrUnreachable))
		}
		last = r.Hi
	}
	if last != b.width {
		panic(fmt.Errorf("word: fill ends at bit %d of %d: %w", last, b.width, ErrUnreachable))
	}

	b.filled = true
}

// Materialize zero-fills the unassigned bits and returns the complete word.
func (b *Builder) Materialize() (word Vector) {
	b.fill()

	word = Zero(0)
	for _, r := range b.ranges {
		word = word.Concat(b.chunks[r].value)
	}

	if word.Width != b.width {
		panic(fmt.Errorf("word: materialized %d of %d bits: %w", word.Width, b.width, ErrUnreachable))
	}

	return
}

// Pattern returns the explicitly assigned bits and the mask of their positions.
// Zero-filled gaps are not part of the pattern.
func (b *Builder) Pattern() (bits, mask uint64) {
	for _, r := range b.ranges {
		c := b.chunks[r]
		if c.fill {
			continue
		}
		bits |= (c.value.Bits & maskOf(r.Len())) << r.Lo
		mask |= r.Mask()
	}

	return
}

// Assigned returns the explicitly assigned ranges in ascending order.
func (b *Builder) Assigned() (ranges []Range) {
	for _, r := range b.ranges {
		if !b.chunks[r].fill {
			ranges = append(ranges, r)
		}
	}

	return
}
