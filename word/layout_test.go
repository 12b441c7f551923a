package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// branchLayout is the RISC-V B-type immediate.
var branchLayout = Layout{
	Placements: []Placement{
		{Range{0, 4}, Range{8, 12}},
		{Range{4, 10}, Range{25, 31}},
		{Range{10, 11}, Range{7, 8}},
		{Range{11, 12}, Range{31, 32}},
	},
	Align:  1,
	Signed: true,
}

func TestLayout(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(12, branchLayout.Width())
	assert.NoError(branchLayout.Validate(32))

	imm, err := branchLayout.Encode(8)
	assert.NoError(err)
	assert.Equal(New(12, 4), imm)

	b := NewBuilder(32)
	assert.NoError(branchLayout.Scramble(b, imm))
	word := b.Materialize()
	assert.Equal(uint64(1<<10), word.Bits)

	assert.Equal(imm, branchLayout.Unscramble(word))
	assert.Equal(int64(8), branchLayout.Decode(branchLayout.Unscramble(word)))
}

func TestLayout_Encode(t *testing.T) {
	assert := assert.New(t)

	_, err := branchLayout.Encode(7)
	assert.ErrorIs(err, ErrAlignment)

	_, err = branchLayout.Encode(4096)
	assert.ErrorIs(err, ErrRange)

	imm, err := branchLayout.Encode(-4096)
	assert.NoError(err)
	assert.Equal(New(12, 0x800), imm)

	unsigned := Layout{Placements: []Placement{{Range{0, 5}, Range{20, 25}}}}
	_, err = unsigned.Encode(-1)
	assert.ErrorIs(err, ErrRange)
	_, err = unsigned.Encode(32)
	assert.ErrorIs(err, ErrRange)
	imm, err = unsigned.Encode(31)
	assert.NoError(err)
	assert.Equal(int64(31), unsigned.Decode(imm))
}

func TestLayout_Bijection(t *testing.T) {
	assert := assert.New(t)

	for raw := range uint64(1 << 12) {
		imm := New(12, raw)
		b := NewBuilder(32)
		assert.NoError(branchLayout.Scramble(b, imm))
		word := b.Materialize()
		if !assert.Equal(imm, branchLayout.Unscramble(word)) {
			return
		}

		value := branchLayout.Decode(imm)
		assert.Equal(int64(0), value&1)
		again, err := branchLayout.Encode(value)
		assert.NoError(err)
		assert.Equal(imm, again)
	}
}

func TestLayout_Validate(t *testing.T) {
	assert := assert.New(t)

	gap := Layout{Placements: []Placement{
		{Range{0, 4}, Range{8, 12}},
		{Range{5, 10}, Range{25, 30}},
	}}
	assert.ErrorIs(gap.Validate(32), ErrSchema)

	clash := Layout{Placements: []Placement{
		{Range{0, 4}, Range{8, 12}},
		{Range{4, 8}, Range{10, 14}},
	}}
	assert.ErrorIs(clash.Validate(32), ErrSchema)

	sized := Layout{Placements: []Placement{
		{Range{0, 4}, Range{8, 13}},
	}}
	assert.ErrorIs(sized.Validate(32), ErrSchema)

	outside := Layout{Placements: []Placement{
		{Range{0, 4}, Range{30, 34}},
	}}
	assert.ErrorIs(outside.Validate(32), ErrSchema)
}

func FuzzLayout(f *testing.F) {
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(0xffffffff), uint64(0xfff))

	f.Fuzz(func(t *testing.T, background uint64, raw uint64) {
		assert := assert.New(t)

		imm := New(12, raw)
		b := NewBuilder(32)
		assert.NoError(branchLayout.Scramble(b, imm))
		word := b.Materialize()

		// Unscramble only looks at the immediate's bits.
		mask := uint64(0)
		for _, r := range branchLayout.Physical() {
			mask |= r.Mask()
		}
		noisy := New(32, (background&^mask)|word.Bits)
		assert.Equal(imm, branchLayout.Unscramble(noisy))
	})
}
