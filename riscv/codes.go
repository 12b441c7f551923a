package riscv

import (
	"github.com/ezrec/wordasm/word"
)

// codeTable maps a class, kind, tag or rounding mode to a field code.
// A missing key means the field is not emitted for that value.
type codeTable map[any]uint64

// OPCODE selects the major opcode. Classes with a single opcode are keyed
// by Class; the fused multiply-add opcodes are keyed by their tag.
var OPCODE = codeTable{
	CLASS_OP:     0b0110011,
	CLASS_OP_IMM: 0b0010011,
	CLASS_LUI:    0b0110111,
	CLASS_AUIPC:  0b0010111,
	CLASS_JAL:    0b1101111,
	CLASS_JALR:   0b1100111,
	CLASS_BRANCH: 0b1100011,
	CLASS_LOAD:   0b0000011,
	CLASS_STORE:  0b0100011,
	CLASS_OP_FP:  0b1010011,

	FP_FMA:  0b1000011,
	FP_FMS:  0b1000111,
	FP_FNMS: 0b1001011,
	FP_FNMA: 0b1001111,
}

// FUNCT3 is keyed by tag, by rounding mode, or by kind for operations
// that have no tag of their own.
var FUNCT3 = codeTable{
	ARITH_ADD:  0b000,
	ARITH_SUB:  0b000,
	ARITH_SLT:  0b010,
	ARITH_SLTU: 0b011,
	ARITH_XOR:  0b100,
	ARITH_OR:   0b110,
	ARITH_AND:  0b111,

	SHIFT_SLL: 0b001,
	SHIFT_SRL: 0b101,
	SHIFT_SRA: 0b101,

	KIND_JALR: 0b000,

	BRANCH_BEQ:  0b000,
	BRANCH_BNE:  0b001,
	BRANCH_BLT:  0b100,
	BRANCH_BGE:  0b101,
	BRANCH_BLTU: 0b110,
	BRANCH_BGEU: 0b111,

	LOAD_LB:  0b000,
	LOAD_LH:  0b001,
	LOAD_LW:  0b010,
	LOAD_LD:  0b011,
	LOAD_LBU: 0b100,
	LOAD_LHU: 0b101,
	LOAD_LWU: 0b110,

	STORE_SB: 0b000,
	STORE_SH: 0b001,
	STORE_SW: 0b010,
	STORE_SD: 0b011,

	RM_RNE: 0b000,
	RM_RTZ: 0b001,
	RM_RDN: 0b010,
	RM_RUP: 0b011,
	RM_RMM: 0b100,
	RM_DYN: 0b111,

	FP_MIN: 0b000,
	FP_MAX: 0b001,

	FP_LE: 0b000,
	FP_LT: 0b001,
	FP_EQ: 0b010,

	KIND_FP_CLASS: 0b001,
}

// FUNCT7 is only emitted by kinds whose shape carries funct7.
var FUNCT7 = codeTable{
	ARITH_ADD:  0b0000000,
	ARITH_SUB:  0b0100000,
	ARITH_SLT:  0b0000000,
	ARITH_SLTU: 0b0000000,
	ARITH_XOR:  0b0000000,
	ARITH_OR:   0b0000000,
	ARITH_AND:  0b0000000,

	SHIFT_SLL: 0b0000000,
	SHIFT_SRL: 0b0000000,
	SHIFT_SRA: 0b0100000,

	FP_ADD: 0b0000000,
	FP_SUB: 0b0000100,
	FP_MUL: 0b0001000,
	FP_DIV: 0b0001100,

	FP_MIN: 0b0010100,
	FP_MAX: 0b0010100,

	FP_EQ: 0b1010000,
	FP_LT: 0b1010000,
	FP_LE: 0b1010000,

	KIND_FP_SQRT:  0b0101100,
	KIND_FP_CLASS: 0b1110000,
}

// FMT selects the operand precision of fused operations.
var FMT = codeTable{
	FP_FMA:  0b00,
	FP_FMS:  0b00,
	FP_FNMS: 0b00,
	FP_FNMA: 0b00,
}

// CODE_TABLE maps each code field to its table.
var CODE_TABLE = map[word.Field]codeTable{
	FIELD_OPCODE: OPCODE,
	FIELD_FUNCT3: FUNCT3,
	FIELD_FUNCT7: FUNCT7,
	FIELD_FMT:    FMT,
}

// EXCLUDED lists tags that are members of a kind's tag type but are not
// legal in that kind.
var EXCLUDED = map[Kind][]Tag{
	KIND_OP_IMM_ARITH: {ARITH_SUB},
}
