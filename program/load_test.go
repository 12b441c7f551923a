package program

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/wordasm/riscv"
	"github.com/ezrec/wordasm/word"
)

func TestBuiltinName(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		mnemonic string
		name     string
	}){
		{"add", "add"},
		{"fadd.s", "fadd_s"},
		{"and", "and_"},
		{"or", "or_"},
		{"xor", "xor"},
	}

	for _, entry := range table {
		assert.Equal(entry.name, BuiltinName(entry.mnemonic))
	}
}

func TestLoad_RISCV(t *testing.T) {
	assert := assert.New(t)

	src := `add(1, 2, 3)
addi(rd=1, rs1=2, imm=-1)
for n in range(2):
    beq(1, 2, 8)
fadd_s(1, 2, 3, rm="rne")
fadd_s(1, 2, 3)
addi(1, 0, pc())
`

	prog := &Program{ISA: RISCV}
	err := prog.Load("test.star", src)
	require.NoError(t, err)

	var lines []int
	for _, op := range prog.Opcodes {
		lines = append(lines, op.LineNo)
	}
	assert.Equal([]int{1, 2, 4, 4, 5, 6, 7}, lines)

	require.NoError(t, prog.Assemble(context.Background()))

	var ws []word.Vector
	for _, w := range prog.Words() {
		ws = append(ws, w)
	}
	assert.Equal(words(0x003100B3, 0xFFF10093, 0x00208463, 0x00208463, 0x003100D3, 0x003170D3, 0x01800093), ws)
}

func TestLoad_MIPS(t *testing.T) {
	assert := assert.New(t)

	src := `and_(1, 2, 3)
addiu(1, 2, -1)
lui(1, 0x1234 << 16)
ext(1, 2, mb=4, lb=3)
mult(rs=1, rt=2)
`

	prog := &Program{ISA: MIPS}
	require.NoError(t, prog.Load("test.star", src))
	require.NoError(t, prog.Assemble(context.Background()))

	var ws []word.Vector
	for _, w := range prog.Words() {
		ws = append(ws, w)
	}
	assert.Equal(words(0x00430824, 0x2441FFFF, 0x3C011234, 0x7C4120C0, 0x00220018), ws)
}

func TestLoad_Errors(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{ISA: RISCV}
	err := prog.Load("test.star", "add(1, 2, 32)\n")
	assert.ErrorIs(err, riscv.ErrRegister)

	prog = &Program{ISA: RISCV}
	err = prog.Load("test.star", "addi(1, 2, 4096)\n")
	assert.ErrorIs(err, word.ErrRange)

	prog = &Program{ISA: RISCV}
	err = prog.Load("test.star", "fadd_s(1, 2, 3, rm=\"nearest\")\n")
	assert.ErrorIs(err, riscv.ErrRoundingMode("nearest"))

	prog = &Program{ISA: RISCV}
	err = prog.Load("test.star", "add(1, 2)\n")
	assert.Error(err)
	assert.Empty(prog.Opcodes)

	prog = &Program{ISA: RISCV}
	err = prog.Load("test.star", "subi(1, 2, 3)\n")
	assert.Error(err)

	prog = &Program{ISA: MIPS}
	err = prog.Load("test.star", "fadd_s(1, 2, 3)\n")
	assert.Error(err)
}
