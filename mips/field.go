package mips

import (
	"github.com/ezrec/wordasm/word"
)

const (
	WIDTH      = 32 // Instruction word width.
	IDX_BITS   = 5  // Register index width.
	SA_BITS    = 5  // Shift amount and bit position width.
	CONST_BITS = 16 // Immediate width.
)

const (
	FIELD_OP    = word.Field("op")
	FIELD_RS    = word.Field("rs")
	FIELD_RT    = word.Field("rt")
	FIELD_RD    = word.Field("rd")
	FIELD_SA    = word.Field("sa")
	FIELD_FUNCT = word.Field("funct")
	FIELD_IMM   = word.Field("imm") // Pseudo-field: routed through the immediate layout.
)

// FIELD_POS is the standard placement of every named field.
var FIELD_POS = word.FieldTable{
	FIELD_OP:    {Lo: 26, Hi: 32},
	FIELD_RS:    {Lo: 21, Hi: 26},
	FIELD_RT:    {Lo: 16, Hi: 21},
	FIELD_RD:    {Lo: 11, Hi: 16},
	FIELD_SA:    {Lo: 6, Hi: 11},
	FIELD_FUNCT: {Lo: 0, Hi: 6},
}

var constPlacement = []word.Placement{
	{Logical: word.Range{Lo: 0, Hi: CONST_BITS}, Physical: word.Range{Lo: 0, Hi: CONST_BITS}},
}

var (
	// IMM_SIGNED is the sign-extended 16-bit immediate.
	IMM_SIGNED = word.Layout{Placements: constPlacement, Signed: true}

	// IMM_UNSIGNED is the zero-extended 16-bit immediate of the logical
	// operations.
	IMM_UNSIGNED = word.Layout{Placements: constPlacement}

	// IMM_UPPER is the upper half-word loaded by LUI.
	IMM_UPPER = word.Layout{Placements: constPlacement, Align: CONST_BITS, Signed: true}
)

type shape struct {
	codes []word.Field // Code fields the format always emits.
	data  []word.Field // Register and constant fields any operation may carry.
	imm   word.Layout
}

// CLASS_SHAPE is the code fields, data fields and immediate of each format.
var CLASS_SHAPE = map[Class]shape{
	CLASS_R1:  {codes: []word.Field{FIELD_OP, FIELD_FUNCT}, data: []word.Field{FIELD_RD, FIELD_RS}},
	CLASS_R2:  {codes: []word.Field{FIELD_OP, FIELD_FUNCT, FIELD_SA}, data: []word.Field{FIELD_RD, FIELD_RS, FIELD_RT}},
	CLASS_R3:  {codes: []word.Field{FIELD_OP, FIELD_FUNCT, FIELD_SA}, data: []word.Field{FIELD_RD, FIELD_RS, FIELD_RT}},
	CLASS_RS:  {codes: []word.Field{FIELD_OP, FIELD_FUNCT, FIELD_RS}, data: []word.Field{FIELD_RD, FIELD_RT, FIELD_SA}},
	CLASS_RLM: {codes: []word.Field{FIELD_OP, FIELD_FUNCT}, data: []word.Field{FIELD_RT, FIELD_RS, FIELD_RD, FIELD_SA}},
	CLASS_I2:  {codes: []word.Field{FIELD_OP}, data: []word.Field{FIELD_RT, FIELD_RS}, imm: IMM_SIGNED},
	CLASS_LUI: {codes: []word.Field{FIELD_OP}, data: []word.Field{FIELD_RT}, imm: IMM_UPPER},
}

// Schema returns the word schema of every format over a field table.
func Schema(fields word.FieldTable) (schema *word.Schema) {
	schema = &word.Schema{
		Width:  WIDTH,
		Fields: fields,
	}

	for _, class := range classes {
		sh := CLASS_SHAPE[class]
		var format word.Format
		format.Name = class.String()
		format.Fields = append(format.Fields, sh.codes...)
		format.Fields = append(format.Fields, sh.data...)
		format.Imm = sh.imm
		schema.Formats = append(schema.Formats, format)
	}

	return
}
