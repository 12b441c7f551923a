package riscv

import (
	"github.com/ezrec/wordasm/word"
)

const (
	WIDTH    = 32 // Instruction word width.
	REG_BITS = 5  // Register index width.
)

const (
	FIELD_OPCODE = word.Field("opcode")
	FIELD_RD     = word.Field("rd")
	FIELD_FUNCT3 = word.Field("funct3")
	FIELD_RS1    = word.Field("rs1")
	FIELD_RS2    = word.Field("rs2")
	FIELD_FUNCT7 = word.Field("funct7")
	FIELD_RS3    = word.Field("rs3")
	FIELD_FMT    = word.Field("fmt")
	FIELD_IMM    = word.Field("imm") // Pseudo-field: routed through the immediate layout.
)

// FIELD_POS is the standard placement of every named field.
var FIELD_POS = word.FieldTable{
	FIELD_OPCODE: {Lo: 0, Hi: 7},
	FIELD_RD:     {Lo: 7, Hi: 12},
	FIELD_FUNCT3: {Lo: 12, Hi: 15},
	FIELD_RS1:    {Lo: 15, Hi: 20},
	FIELD_RS2:    {Lo: 20, Hi: 25},
	FIELD_FUNCT7: {Lo: 25, Hi: 32},
	FIELD_RS3:    {Lo: 27, Hi: 32},
	FIELD_FMT:    {Lo: 25, Hi: 27},
}

// IMM_LAYOUT maps each data layout carrying an immediate to its placement.
var IMM_LAYOUT = map[DataKind]word.Layout{
	DATA_I: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 12}, Physical: word.Range{Lo: 20, Hi: 32}},
		},
		Signed: true,
	},
	DATA_IS: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 5}, Physical: word.Range{Lo: 20, Hi: 25}},
		},
	},
	DATA_S: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 5}, Physical: word.Range{Lo: 7, Hi: 12}},
			{Logical: word.Range{Lo: 5, Hi: 12}, Physical: word.Range{Lo: 25, Hi: 32}},
		},
		Signed: true,
	},
	DATA_B: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 4}, Physical: word.Range{Lo: 8, Hi: 12}},
			{Logical: word.Range{Lo: 4, Hi: 10}, Physical: word.Range{Lo: 25, Hi: 31}},
			{Logical: word.Range{Lo: 10, Hi: 11}, Physical: word.Range{Lo: 7, Hi: 8}},
			{Logical: word.Range{Lo: 11, Hi: 12}, Physical: word.Range{Lo: 31, Hi: 32}},
		},
		Align:  1,
		Signed: true,
	},
	DATA_U: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 20}, Physical: word.Range{Lo: 12, Hi: 32}},
		},
		Align:  12,
		Signed: true,
	},
	DATA_J: {
		Placements: []word.Placement{
			{Logical: word.Range{Lo: 0, Hi: 10}, Physical: word.Range{Lo: 21, Hi: 31}},
			{Logical: word.Range{Lo: 10, Hi: 11}, Physical: word.Range{Lo: 20, Hi: 21}},
			{Logical: word.Range{Lo: 11, Hi: 19}, Physical: word.Range{Lo: 12, Hi: 20}},
			{Logical: word.Range{Lo: 19, Hi: 20}, Physical: word.Range{Lo: 31, Hi: 32}},
		},
		Align:  1,
		Signed: true,
	},
}

// DATA_FIELDS lists the register fields of each data layout.
var DATA_FIELDS = map[DataKind][]word.Field{
	DATA_R:  {FIELD_RD, FIELD_RS1, FIELD_RS2},
	DATA_I:  {FIELD_RD, FIELD_RS1},
	DATA_IS: {FIELD_RD, FIELD_RS1},
	DATA_S:  {FIELD_RS1, FIELD_RS2},
	DATA_U:  {FIELD_RD},
	DATA_B:  {FIELD_RS1, FIELD_RS2},
	DATA_J:  {FIELD_RD},
	DATA_R4: {FIELD_RD, FIELD_RS1, FIELD_RS2, FIELD_RS3},
	DATA_R2: {FIELD_RD, FIELD_RS1},
}

type shape struct {
	codes []word.Field // Code fields the kind always emits.
	data  DataKind
}

var (
	codesOp     = []word.Field{FIELD_OPCODE, FIELD_FUNCT3, FIELD_FUNCT7}
	codesFunct3 = []word.Field{FIELD_OPCODE, FIELD_FUNCT3}
	codesOpcode = []word.Field{FIELD_OPCODE}
	codesFused  = []word.Field{FIELD_OPCODE, FIELD_FUNCT3, FIELD_FMT}
)

// KIND_SHAPE is the code fields and data layout of each kind.
var KIND_SHAPE = map[Kind]shape{
	KIND_OP:           {codesOp, DATA_R},
	KIND_OP_IMM_ARITH: {codesFunct3, DATA_I},
	KIND_OP_IMM_SHIFT: {codesOp, DATA_IS},
	KIND_LUI:          {codesOpcode, DATA_U},
	KIND_AUIPC:        {codesOpcode, DATA_U},
	KIND_JAL:          {codesOpcode, DATA_J},
	KIND_JALR:         {codesFunct3, DATA_I},
	KIND_BRANCH:       {codesFunct3, DATA_B},
	KIND_LOAD:         {codesFunct3, DATA_I},
	KIND_STORE:        {codesFunct3, DATA_S},
	KIND_FP_COMPUTE:   {codesOp, DATA_R},
	KIND_FP_MINMAX:    {codesOp, DATA_R},
	KIND_FP_COMPARE:   {codesOp, DATA_R},
	KIND_FP_SQRT:      {codesOp, DATA_R2},
	KIND_FP_CLASS:     {codesOp, DATA_R2},
	KIND_FP_FUSED:     {codesFused, DATA_R4},
}

// Schema returns the word schema of every kind over a field table.
func Schema(fields word.FieldTable) (schema *word.Schema) {
	schema = &word.Schema{
		Width:  WIDTH,
		Fields: fields,
	}

	for _, kind := range kinds {
		sh := KIND_SHAPE[kind]
		var format word.Format
		format.Name = kind.String()
		format.Fields = append(format.Fields, sh.codes...)
		format.Fields = append(format.Fields, DATA_FIELDS[sh.data]...)
		format.Imm = IMM_LAYOUT[sh.data]
		schema.Formats = append(schema.Formats, format)
	}

	return
}
