package mips

import (
	"github.com/ezrec/wordasm/word"
)

// codeTable maps a class or tag to a field code.
type codeTable map[any]uint64

const (
	SPECIAL  = 0x00
	SPECIAL2 = 0x1C
	SPECIAL3 = 0x1F
	BSHFL    = 0x20
)

// OP is the major opcode, keyed by class where the whole format shares
// one, and by tag otherwise.
var OP = codeTable{
	CLASS_R1:  SPECIAL,
	CLASS_RS:  SPECIAL,
	CLASS_RLM: SPECIAL3,
	CLASS_LUI: 0x0F,

	R2_CLO:   SPECIAL2,
	R2_CLZ:   SPECIAL2,
	R2_SEB:   SPECIAL3,
	R2_SEH:   SPECIAL3,
	R2_WSBH:  SPECIAL3,
	R2_DIV:   SPECIAL,
	R2_DIVU:  SPECIAL,
	R2_MADD:  SPECIAL2,
	R2_MADDU: SPECIAL2,
	R2_MSUB:  SPECIAL2,
	R2_MSUBU: SPECIAL2,
	R2_MULT:  SPECIAL,
	R2_MULTU: SPECIAL,

	R3_ADDU:  SPECIAL,
	R3_SUBU:  SPECIAL,
	R3_ROTRV: SPECIAL,
	R3_SLLV:  SPECIAL,
	R3_SRAV:  SPECIAL,
	R3_SRLV:  SPECIAL,
	R3_AND:   SPECIAL,
	R3_NOR:   SPECIAL,
	R3_OR:    SPECIAL,
	R3_XOR:   SPECIAL,
	R3_MOVN:  SPECIAL,
	R3_MOVZ:  SPECIAL,
	R3_SLT:   SPECIAL,
	R3_SLTU:  SPECIAL,
	R3_MUL:   SPECIAL2,

	I2_ADDIU: 0x09,
	I2_SLTI:  0x0A,
	I2_SLTIU: 0x0B,
	I2_ANDI:  0x0C,
	I2_ORI:   0x0D,
	I2_XORI:  0x0E,
}

// FUNCT is the function code of the register formats.
var FUNCT = codeTable{
	MFHI: 0x10,
	MTHI: 0x11,
	MFLO: 0x12,
	MTLO: 0x13,

	R2_CLO:   0x21,
	R2_CLZ:   0x20,
	R2_SEB:   BSHFL,
	R2_SEH:   BSHFL,
	R2_WSBH:  BSHFL,
	R2_DIV:   0x1A,
	R2_DIVU:  0x1B,
	R2_MADD:  0x00,
	R2_MADDU: 0x01,
	R2_MSUB:  0x04,
	R2_MSUBU: 0x05,
	R2_MULT:  0x18,
	R2_MULTU: 0x19,

	R3_ADDU:  0x21,
	R3_SUBU:  0x23,
	R3_ROTRV: 0x06,
	R3_SLLV:  0x04,
	R3_SRAV:  0x07,
	R3_SRLV:  0x06,
	R3_AND:   0x24,
	R3_NOR:   0x27,
	R3_OR:    0x25,
	R3_XOR:   0x26,
	R3_MOVN:  0x0B,
	R3_MOVZ:  0x0A,
	R3_SLT:   0x2A,
	R3_SLTU:  0x2B,
	R3_MUL:   0x02,

	RS_SLL:  0x00,
	RS_SRL:  0x02,
	RS_ROTR: 0x02,
	RS_SRA:  0x03,

	RLM_EXT: 0x00,
	RLM_INS: 0x04,
}

// SA is the sub-function carried in the shift amount field.
var SA = codeTable{
	R2_CLO:   0,
	R2_CLZ:   0,
	R2_SEB:   0x10,
	R2_SEH:   0x18,
	R2_WSBH:  0x02,
	R2_DIV:   0,
	R2_DIVU:  0,
	R2_MADD:  0,
	R2_MADDU: 0,
	R2_MSUB:  0,
	R2_MSUBU: 0,
	R2_MULT:  0,
	R2_MULTU: 0,

	R3_ADDU:  0,
	R3_SUBU:  0,
	R3_ROTRV: 1,
	R3_SLLV:  0,
	R3_SRAV:  0,
	R3_SRLV:  0,
	R3_AND:   0,
	R3_NOR:   0,
	R3_OR:    0,
	R3_XOR:   0,
	R3_MOVN:  0,
	R3_MOVZ:  0,
	R3_SLT:   0,
	R3_SLTU:  0,
	R3_MUL:   0,
}

// RS is the sub-function carried in the rs field of constant shifts.
var RS = codeTable{
	RS_SLL:  0,
	RS_SRL:  0,
	RS_ROTR: 1,
	RS_SRA:  0,
}

// CODE_TABLE maps each code field to its table.
var CODE_TABLE = map[word.Field]codeTable{
	FIELD_OP:    OP,
	FIELD_FUNCT: FUNCT,
	FIELD_SA:    SA,
	FIELD_RS:    RS,
}
