// Package riscv encodes and decodes RV32I base integer instructions, the
// RV64I load and store widths, and the single precision F extension.
//
// An instruction is an Inst: a union over the instruction classes, each of
// which carries its tags and one data layout (R, I, Is, S, U, B, J, R4 or
// R2). Register operands are 5-bit word.Vectors; immediates are stored in
// the bit order of their layout, and are most easily built with the Make
// functions, which take logical values.
//
// Codes come from the OPCODE, FUNCT3, FUNCT7 and FMT tables, which are keyed
// by class, tag, rounding mode or (for the few operations without a tag)
// kind.
package riscv
