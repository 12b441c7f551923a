package word

import (
	"fmt"
)

// Placement moves one logical sub-range of an immediate to a physical range
// of the word.
type Placement struct {
	Logical  Range
	Physical Range
}

// Layout describes how an immediate is scrambled into a word.
//
// The stored immediate is Width() bits wide. Its logical value has Align
// additional always-zero low bits which are never stored: they are dropped
// by Encode and reinserted by Decode.
type Layout struct {
	Placements []Placement // Ordered from the least significant logical bit.
	Align      int         // Implicit zero low bits.
	Signed     bool        // Decode sign-extends when set.
}

// Width returns the number of stored immediate bits.
func (l Layout) Width() (width int) {
	for _, p := range l.Placements {
		width += p.Logical.Len()
	}
	return
}

// Physical returns the word ranges claimed by the immediate.
func (l Layout) Physical() (ranges []Range) {
	for _, p := range l.Placements {
		ranges = append(ranges, p.Physical)
	}
	return
}

// Validate checks that the logical ranges tile the stored immediate exactly
// and that the physical ranges fit a width-bit word without overlapping.
func (l Layout) Validate(width int) (err error) {
	logical := NewBuilder(l.Width())
	physical := NewBuilder(width)
	for _, p := range l.Placements {
		if p.Logical.Len() != p.Physical.Len() {
			err = fmt.Errorf("%w: %w", ErrSchema, ErrWidth{Range: p.Physical, Width: p.Logical.Len()})
			return
		}
		err = logical.Add(p.Logical, Zero(p.Logical.Len()))
		if err != nil {
			err = fmt.Errorf("%w: logical %w", ErrSchema, err)
			return
		}
		err = physical.Add(p.Physical, Zero(p.Physical.Len()))
		if err != nil {
			err = fmt.Errorf("%w: physical %w", ErrSchema, err)
			return
		}
	}

	if l.Width()+l.Align > MAX_WIDTH {
		err = fmt.Errorf("%w: %d-bit logical immediate", ErrSchema, l.Width()+l.Align)
		return
	}

	return
}

// Scramble places the stored immediate at its physical ranges.
func (l Layout) Scramble(b *Builder, imm Vector) (err error) {
	if imm.Width != l.Width() {
		err = ErrWidth{Range: Range{Lo: 0, Hi: l.Width()}, Width: imm.Width}
		return
	}
	if !imm.Valid() {
		err = ErrValue{Range: Range{Lo: 0, Hi: l.Width()}, Value: imm}
		return
	}

	for _, p := range l.Placements {
		err = b.Add(p.Physical, imm.Slice(p.Logical))
		if err != nil {
			return
		}
	}

	return
}

// Unscramble reassembles the stored immediate from a word.
func (l Layout) Unscramble(word Vector) (imm Vector) {
	b := NewBuilder(l.Width())
	for _, p := range l.Placements {
		err := b.Add(p.Logical, word.Slice(p.Physical))
		if err != nil {
			panic(fmt.Errorf("word: unscramble %v: %w", p, err))
		}
	}

	return b.Materialize()
}

// Encode converts a logical immediate value into its stored form.
func (l Layout) Encode(value int64) (imm Vector, err error) {
	width := l.Width() + l.Align

	if uint64(value)&maskOf(l.Align) != 0 {
		err = ErrImmediate{Value: value, Err: ErrAlignment}
		return
	}

	var lo, hi int64
	switch {
	case width >= MAX_WIDTH:
		lo, hi = -1<<(MAX_WIDTH-1), 1<<(MAX_WIDTH-1)-1
	case l.Signed:
		lo, hi = -1<<(width-1), 1<<(width-1)-1
	default:
		lo, hi = 0, 1<<width-1
	}
	if value < lo || value > hi {
		err = ErrImmediate{Value: value, Err: ErrRange}
		return
	}

	imm = FromInt(width, value).Slice(Range{Lo: l.Align, Hi: width})
	return
}

// Decode interprets a stored immediate as its logical value.
func (l Layout) Decode(imm Vector) int64 {
	logical := Zero(l.Align).Concat(imm)
	if l.Signed {
		return logical.Int()
	}
	return int64(logical.Uint())
}
