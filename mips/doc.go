// Package mips encodes and decodes a MIPS32r2 integer subset: hi/lo moves,
// two and three register operations, constant shifts, bit field
// extract/insert, register-immediate operations and LUI.
//
// Each format carries its registers, constants and tag directly; an Inst
// is the union of the formats.
package mips
