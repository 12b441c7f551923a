package program

import (
	"bytes"
	"context"
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ezrec/wordasm/mips"
	"github.com/ezrec/wordasm/riscv"
	"github.com/ezrec/wordasm/word"
)

func must(inst riscv.Inst, err error) riscv.Inst {
	if err != nil {
		panic(err)
	}
	return inst
}

func words(vs ...uint64) (ws []word.Vector) {
	for _, v := range vs {
		ws = append(ws, word.New(32, v))
	}
	return
}

func TestLookup(t *testing.T) {
	assert := assert.New(t)

	isa, err := Lookup("riscv")
	assert.NoError(err)
	assert.Equal(RISCV, isa)

	isa, err = Lookup("mips")
	assert.NoError(err)
	assert.Equal(MIPS, isa)

	_, err = Lookup("z80")
	assert.Equal(ErrISAUnknown("z80"), err)

	assert.Equal([]string{"mips", "riscv"}, slices.Collect(Names()))
}

func TestISA_Check(t *testing.T) {
	assert := assert.New(t)

	for name := range Names() {
		isa, err := Lookup(name)
		assert.NoError(err)
		assert.NoError(isa.Check(), name)
	}
}

func TestISA_Mnemonics(t *testing.T) {
	assert := assert.New(t)

	_, ok := RISCV.Mnemonics["subi"]
	assert.False(ok)

	for _, name := range []string{"add", "addi", "sltiu", "srai", "sd", "lwu", "fmadd.s", "fsqrt.s", "fclass.s", "jalr"} {
		_, ok := RISCV.Mnemonics[name]
		assert.True(ok, name)
	}

	for _, name := range []string{"mfhi", "mtlo", "ext", "ins", "addiu", "rotr", "rotrv", "lui"} {
		_, ok := MIPS.Mnemonics[name]
		assert.True(ok, name)
	}

	assert.Equal([]string{"rs", "rt"}, MIPS.Mnemonics["mult"].Params)
	assert.Equal([]string{"rd", "rt"}, MIPS.Mnemonics["seb"].Params)
	assert.Equal([]string{"rs"}, MIPS.Mnemonics["mtlo"].Params)
}

func TestProgram_Assemble(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{ISA: RISCV}
	prog.Append(1, must(riscv.MakeOp(riscv.ARITH_ADD, 1, 2, 3)))
	prog.Append(2, must(riscv.MakeOpImm(riscv.ARITH_ADD, 1, 2, -1)))
	prog.Append(3, must(riscv.MakeBranch(riscv.BRANCH_BEQ, 1, 2, 8)))
	assert.Equal(12, prog.Pc())

	err := prog.Assemble(context.Background())
	assert.NoError(err)

	var ips []int
	var ws []word.Vector
	for ip, w := range prog.Words() {
		ips = append(ips, ip)
		ws = append(ws, w)
	}
	assert.Equal([]int{0, 4, 8}, ips)
	assert.Equal(words(0x003100B3, 0xFFF10093, 0x00208463), ws)
}

func TestProgram_Assemble_Error(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{ISA: RISCV}
	prog.Append(1, must(riscv.MakeOp(riscv.ARITH_ADD, 1, 2, 3)))
	prog.Append(7, 3.14)

	err := prog.Assemble(context.Background())
	assert.ErrorIs(err, word.ErrTypeMismatch)

	var eo ErrOpcode
	if assert.ErrorAs(err, &eo) {
		assert.Equal(7, eo.LineNo)
		assert.Equal(4, eo.Ip)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	prog = &Program{ISA: RISCV}
	prog.Append(1, must(riscv.MakeOp(riscv.ARITH_ADD, 1, 2, 3)))
	assert.ErrorIs(prog.Assemble(ctx), context.Canceled)
}

func TestProgram_Write(t *testing.T) {
	assert := assert.New(t)

	prog := &Program{ISA: RISCV}
	prog.Append(1, must(riscv.MakeOp(riscv.ARITH_ADD, 1, 2, 3)))
	prog.Append(2, must(riscv.MakeOp(riscv.ARITH_SUB, 1, 2, 3)))
	require.NoError(t, prog.Assemble(context.Background()))

	table := [](struct {
		format Format
		output []byte
	}){
		{FORMAT_HEX, []byte("003100b3\n403100b3\n")},
		{FORMAT_BIN, []byte("00000000001100010000000010110011\n01000000001100010000000010110011\n")},
		{FORMAT_LE, []byte{0xB3, 0x00, 0x31, 0x00, 0xB3, 0x00, 0x31, 0x40}},
		{FORMAT_BE, []byte{0x00, 0x31, 0x00, 0xB3, 0x40, 0x31, 0x00, 0xB3}},
	}

	for _, entry := range table {
		var buf bytes.Buffer
		err := prog.Write(&buf, entry.format)
		assert.NoError(err, entry.format.String())
		assert.Equal(entry.output, buf.Bytes(), entry.format.String())

		ws, err := ReadWords(bytes.NewReader(entry.output), entry.format, 32)
		assert.NoError(err, entry.format.String())
		assert.Equal(words(0x003100B3, 0x403100B3), ws, entry.format.String())
	}

	assert.Equal(ErrFormatUnknown("Format(9)"), prog.Write(&bytes.Buffer{}, Format(9)))
}

func TestParseFormat(t *testing.T) {
	assert := assert.New(t)

	for _, format := range formats {
		parsed, err := ParseFormat(format.String())
		assert.NoError(err)
		assert.Equal(format, parsed)
	}

	_, err := ParseFormat("ihex")
	assert.Equal(ErrFormatUnknown("ihex"), err)
}

func TestReadWords(t *testing.T) {
	assert := assert.New(t)

	text := "# header\n0x003100b3\n\n  403100b3 # sub\n"
	ws, err := ReadWords(strings.NewReader(text), FORMAT_HEX, 32)
	assert.NoError(err)
	assert.Equal(words(0x003100B3, 0x403100B3), ws)

	_, err = ReadWords(strings.NewReader("003100b3\nzz\n"), FORMAT_HEX, 32)
	assert.Equal(ErrParseWord{LineNo: 2, Text: "zz"}, err)

	_, err = ReadWords(strings.NewReader("1ffffffff\n"), FORMAT_HEX, 32)
	assert.ErrorAs(err, &ErrParseWord{})

	_, err = ReadWords(bytes.NewReader([]byte{1, 2, 3, 4, 5}), FORMAT_LE, 32)
	assert.ErrorIs(err, ErrTruncated)

	ws, err = ReadWords(bytes.NewReader(nil), FORMAT_BE, 32)
	assert.NoError(err)
	assert.Empty(ws)
}

func TestDisassemble(t *testing.T) {
	assert := assert.New(t)

	insts, err := Disassemble(context.Background(), RISCV, words(0x003100B3, 0x00208463, 0x203100C3))
	assert.NoError(err)

	var text []string
	for _, inst := range insts {
		text = append(text, inst.String())
	}
	assert.Equal([]string{"add x1, x2, x3", "beq x1, x2, 8", "fmadd.s f1, f2, f3, f4, rne"}, text)

	insts, err = Disassemble(context.Background(), MIPS, words(0x00430821, 0xFC000000))
	assert.ErrorIs(err, mips.ErrUnknown)
	assert.Nil(insts)

	var eo ErrOpcode
	if assert.ErrorAs(err, &eo) {
		assert.Equal(4, eo.Ip)
	}
}
