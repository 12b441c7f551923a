package word

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector(t *testing.T) {
	assert := assert.New(t)

	v := FromInt(12, -1)
	assert.Equal(12, v.Width)
	assert.Equal(uint64(0xfff), v.Uint())
	assert.Equal(int64(-1), v.Int())
	assert.Equal("0b111111111111", v.String())
	assert.Equal("0xfff", v.Hex())

	v = New(5, 0x3f)
	assert.Equal(uint64(0x1f), v.Bits)
	assert.True(v.Bit(4))
	assert.False(v.Bit(5))
	assert.True(v.Valid())
	assert.False(Vector{Width: 5, Bits: 0x3f}.Valid())
	assert.True(Vector{Width: 64, Bits: ^uint64(0)}.Valid())

	assert.Equal(New(4, 0xa), New(16, 0xabcd).Slice(Range{12, 16}))
	assert.Equal(New(8, 0xab), New(4, 0xb).Concat(New(4, 0xa)))
	assert.Equal(New(8, 0xf8), New(4, 0x8).SignExtend(8))
	assert.Equal(New(8, 0x08), New(4, 0x8).ZeroExtend(8))

	assert.Equal(int64(0), Zero(0).Int())
	assert.Equal("0b", Zero(0).String())
	assert.Equal(int64(-2), FromInt(64, -2).Int())
}

func TestVector_Panic(t *testing.T) {
	assert := assert.New(t)

	assert.Panics(func() { New(65, 0) })
	assert.Panics(func() { New(8, 0).Slice(Range{4, 9}) })
}
