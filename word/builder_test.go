package word

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder(32)
	assert.NoError(b.Add(Range{0, 7}, New(7, 0b0110011)))
	assert.NoError(b.Add(Range{25, 32}, New(7, 0b0100000)))
	assert.NoError(b.Add(Range{7, 12}, New(5, 1)))
	assert.NoError(b.Add(Range{15, 20}, New(5, 2)))
	assert.NoError(b.Add(Range{20, 25}, New(5, 3)))

	assert.Equal([]Range{{0, 7}, {7, 12}, {15, 20}, {20, 25}, {25, 32}}, b.Assigned())

	word := b.Materialize()
	assert.Equal(32, word.Width)
	assert.Equal(uint64(0x403100B3), word.Bits)

	// The zero-filled funct3 gap is not part of the pattern.
	bits, mask := b.Pattern()
	assert.Equal(uint64(0x403100B3), bits)
	assert.Equal(uint64(0xffff8fff), mask)
}

func TestBuilder_Overlap(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name  string
		have  Range
		add   Range
		clash bool
	}){
		{"same", Range{7, 12}, Range{7, 12}, true},
		{"inside", Range{7, 12}, Range{8, 9}, true},
		{"straddle_lo", Range{7, 12}, Range{5, 8}, true},
		{"straddle_hi", Range{7, 12}, Range{11, 15}, true},
		{"cover", Range{7, 12}, Range{0, 32}, true},
		{"below", Range{7, 12}, Range{0, 7}, false},
		{"above", Range{7, 12}, Range{12, 15}, false},
	}

	for _, entry := range table {
		b := NewBuilder(32)
		require.NoError(t, b.Add(entry.have, Zero(entry.have.Len())), entry.name)

		err := b.Add(entry.add, Zero(entry.add.Len()))
		if entry.clash {
			assert.ErrorIs(err, ErrOverlap, entry.name)
			var overlap ErrChunkOverlap
			assert.True(errors.As(err, &overlap), entry.name)
			assert.Equal(entry.have, overlap.With, entry.name)
		} else {
			assert.NoError(err, entry.name)
		}
	}
}

func TestBuilder_Width(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder(32)
	err := b.Add(Range{7, 12}, New(4, 1))
	assert.ErrorIs(err, ErrWidthMismatch)
	assert.Empty(b.Assigned())

	err = b.Add(Range{7, 12}, New(6, 1))
	assert.ErrorIs(err, ErrWidthMismatch)

	err = b.Add(Range{30, 34}, New(4, 1))
	assert.ErrorIs(err, ErrSchema)
}

func TestBuilder_Value(t *testing.T) {
	assert := assert.New(t)

	b := NewBuilder(32)
	err := b.Add(Range{7, 12}, Vector{Width: 5, Bits: 0x3f})
	assert.ErrorIs(err, ErrWidthMismatch)

	var ev ErrValue
	if assert.ErrorAs(err, &ev) {
		assert.Equal(Range{7, 12}, ev.Range)
	}
	assert.Empty(b.Assigned())
	assert.Equal(Zero(32), b.Materialize())

	b = NewBuilder(32)
	err = branchLayout.Scramble(b, Vector{Width: 12, Bits: 0x1004})
	assert.ErrorIs(err, ErrWidthMismatch)
	assert.Empty(b.Assigned())
}

func TestBuilder_Fill(t *testing.T) {
	assert := assert.New(t)

	// Nothing assigned: the whole word is zero.
	b := NewBuilder(32)
	assert.Equal(Zero(32), b.Materialize())

	// Gaps at the start, the middle and the end.
	b = NewBuilder(16)
	assert.NoError(b.Add(Range{4, 8}, New(4, 0xf)))
	assert.NoError(b.Add(Range{10, 12}, New(2, 0x3)))
	word := b.Materialize()
	assert.Equal(New(16, 0x0cf0), word)

	// Materialize is repeatable.
	assert.Equal(word, b.Materialize())
}

func TestBuilder_Order(t *testing.T) {
	assert := assert.New(t)

	chunks := []struct {
		r Range
		v Vector
	}{
		{Range{0, 4}, New(4, 0x1)},
		{Range{4, 8}, New(4, 0x2)},
		{Range{8, 12}, New(4, 0x3)},
		{Range{12, 16}, New(4, 0x4)},
	}

	forward := NewBuilder(16)
	reverse := NewBuilder(16)
	for n := range chunks {
		assert.NoError(forward.Add(chunks[n].r, chunks[n].v))
		back := chunks[len(chunks)-1-n]
		assert.NoError(reverse.Add(back.r, back.v))
	}

	assert.Equal(New(16, 0x4321), forward.Materialize())
	assert.Equal(forward.Materialize(), reverse.Materialize())
}
