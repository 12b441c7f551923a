package word

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testFields = FieldTable{
	"opcode": {0, 7},
	"rd":     {7, 12},
	"funct3": {12, 15},
	"rs1":    {15, 20},
	"rs2":    {20, 25},
	"funct7": {25, 32},
}

func TestSchema(t *testing.T) {
	assert := assert.New(t)

	s := &Schema{
		Width:  32,
		Fields: testFields,
		Formats: []Format{
			{Name: "R", Fields: []Field{"opcode", "rd", "funct3", "rs1", "rs2", "funct7"}},
			{Name: "B", Fields: []Field{"opcode", "funct3", "rs1", "rs2"}, Imm: branchLayout},
			{Name: "U", Fields: []Field{"opcode", "rd"}},
		},
	}
	assert.NoError(s.Validate())

	gaps, err := s.Gaps(s.Formats[0])
	assert.NoError(err)
	assert.Empty(gaps)

	gaps, err = s.Gaps(s.Formats[1])
	assert.NoError(err)
	assert.Empty(gaps)

	gaps, err = s.Gaps(s.Formats[2])
	assert.NoError(err)
	assert.Equal([]Range{{12, 32}}, gaps)
}

func TestSchema_Overlap(t *testing.T) {
	assert := assert.New(t)

	fields := testFields.Clone()
	fields["funct3"] = Range{7, 10}

	s := &Schema{
		Width:   32,
		Fields:  fields,
		Formats: []Format{{Name: "R", Fields: []Field{"opcode", "rd", "funct3"}}},
	}
	err := s.Validate()
	assert.ErrorIs(err, ErrSchema)

	var overlap ErrFieldOverlap
	assert.True(errors.As(err, &overlap))
	assert.Equal(Field("rd"), overlap.Field)
	assert.Equal(Field("funct3"), overlap.Other)

	// The original table is untouched.
	assert.Equal(Range{12, 15}, testFields["funct3"])
}

func TestSchema_Invalid(t *testing.T) {
	assert := assert.New(t)

	s := &Schema{
		Width:   32,
		Fields:  testFields,
		Formats: []Format{{Name: "X", Fields: []Field{"opcode", "rs3"}}},
	}
	assert.ErrorIs(s.Validate(), ErrSchema)

	fields := testFields.Clone()
	fields["funct7"] = Range{25, 33}
	s = &Schema{Width: 32, Fields: fields}
	assert.ErrorIs(s.Validate(), ErrSchema)

	s = &Schema{
		Width:   32,
		Fields:  testFields,
		Formats: []Format{{Name: "I", Fields: []Field{"opcode", "rd", "funct3", "rs1", "rs2"}, Imm: branchLayout}},
	}
	assert.ErrorIs(s.Validate(), ErrSchema)
}

func TestResolve(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(3, Resolve(testUnion{testUnion{3}}))
	assert.Equal("leaf", Resolve("leaf"))

	assert.PanicsWithValue(ErrNoVariant{Union: "word.testUnion"}, func() {
		Resolve(testUnion{testUnion{nil}})
	})
}

type testUnion struct {
	member any
}

func (u testUnion) Active() any {
	return u.member
}

func TestDecoder(t *testing.T) {
	assert := assert.New(t)

	dec, err := NewDecoder([]Pattern{
		{Bits: 0x13, Mask: 0x707f, Value: "addi"},
		{Bits: 0x1013, Mask: 0xfe00707f, Value: "slli"},
		{Bits: 0x37, Mask: 0x7f, Value: "lui"},
	})
	assert.NoError(err)
	assert.Equal(3, dec.Len())

	value, ok := dec.Lookup(0xfff10093)
	assert.True(ok)
	assert.Equal("addi", value)

	value, ok = dec.Lookup(0x00311093)
	assert.True(ok)
	assert.Equal("slli", value)

	_, ok = dec.Lookup(0x40311093)
	assert.False(ok)

	_, err = NewDecoder([]Pattern{
		{Bits: 0x13, Mask: 0x707f, Value: "addi"},
		{Bits: 0x13, Mask: 0x707f, Value: "subi"},
	})
	assert.ErrorIs(err, ErrSchema)

	_, err = NewDecoder([]Pattern{
		{Bits: 0x33, Mask: 0x707f, Value: "a"},
		{Bits: 0x33, Mask: 0xfe00007f, Value: "b"},
	})
	assert.ErrorIs(err, ErrSchema)
}
