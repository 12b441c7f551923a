// Package program assembles and disassembles whole programs.
//
// A Program is built by a Starlark script, where every mnemonic of the
// selected ISA is a builtin:
//
//	for n in range(4):
//	    addi(rd=n, rs1=0, imm=n * 4)
//	fadd_s(1, 2, 3, rm="rne")
//
// Assemble then encodes the instructions in parallel, and Write
// serialises the words as hex, binary or raw little/big endian.
package program
