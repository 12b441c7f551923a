package mips

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/wordasm/word"
)

func must(inst Inst, err error) Inst {
	if err != nil {
		panic(err)
	}
	return inst
}

func TestAssemble(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		inst Inst
		word uint64
		text string
	}){
		{"addu", must(Addu(1, 2, 3)), 0x00430821, "addu $1, $2, $3"},
		{"addiu", must(Addiu(1, 2, -1)), 0x2441FFFF, "addiu $1, $2, -1"},
		{"ori", must(MakeImmediate(R3_OR, 1, 2, 0xFFFF)), 0x3441FFFF, "ori $1, $2, 65535"},
		{"lui", must(MakeLUI(1, 0x12340000)), 0x3C011234, "lui $1, 0x1234"},
		{"mfhi", must(MakeR1(MFHI, 1)), 0x00000810, "mfhi $1"},
		{"mtlo", must(MakeR1(MTLO, 1)), 0x00200013, "mtlo $1"},
		{"mthi", must(MakeR1(MTHI, 3)), 0x00600011, "mthi $3"},
		{"sll", must(MakeRs(RS_SLL, 1, 2, 3)), 0x000208C0, "sll $1, $2, 3"},
		{"rotr", must(MakeRs(RS_ROTR, 1, 2, 3)), 0x002208C2, "rotr $1, $2, 3"},
		{"seb", must(MakeR2(R2_SEB, 1, 2)), 0x7C020C20, "seb $1, $2"},
		{"wsbh", must(MakeR2(R2_WSBH, 1, 2)), 0x7C0208A0, "wsbh $1, $2"},
		{"clz", must(MakeR2(R2_CLZ, 1, 2)), 0x70410820, "clz $1, $2"},
		{"mult", must(MakeR2(R2_MULT, 1, 2)), 0x00220018, "mult $1, $2"},
		{"madd", must(MakeR2(R2_MADD, 4, 5)), 0x70850000, "madd $4, $5"},
		{"ext", must(MakeRlm(RLM_EXT, 1, 2, 4, 3)), 0x7C4120C0, "ext $1, $2, 3, 4"},
		{"mul", must(MakeR3(R3_MUL, 1, 2, 3)), 0x70430802, "mul $1, $2, $3"},
		{"rotrv", must(MakeR3(R3_ROTRV, 1, 2, 3)), 0x00430846, "rotrv $1, $2, $3"},
	}

	for _, entry := range table {
		w, err := Assemble(entry.inst)
		if !assert.NoError(err, entry.name) {
			continue
		}
		assert.Equal(word.New(WIDTH, entry.word), w, "%s: %v", entry.name, w.Hex())
		assert.Equal(entry.text, entry.inst.String(), entry.name)

		inst, err := Disassemble(w)
		assert.NoError(err, entry.name)
		assert.Equal(entry.inst, inst, entry.name)
	}
}

func TestAssemble_Immediate(t *testing.T) {
	assert := assert.New(t)

	inst := must(Addiu(1, 2, -1))
	assert.Equal(int64(-1), inst.Format.(I2).Value())

	inst = must(MakeI2(I2_ANDI, 1, 2, 0xFFFF))
	assert.Equal(int64(0xFFFF), inst.Format.(I2).Value())

	inst = must(MakeLUI(1, -0x10000))
	assert.Equal(int64(-0x10000), inst.Format.(LUI).Value())
	assert.Equal(inst, must(MakeLUI(1, 0xFFFF0000)))

	_, err := MakeI2(I2_ORI, 1, 2, -1)
	assert.ErrorIs(err, word.ErrRange)

	_, err = Addiu(1, 2, 0x8000)
	assert.ErrorIs(err, word.ErrRange)

	_, err = MakeLUI(1, 0x1234)
	assert.ErrorIs(err, word.ErrAlignment)

	_, err = MakeRs(RS_SLL, 1, 2, 32)
	assert.ErrorIs(err, word.ErrRange)

	_, err = MakeR3(R3_ADDU, 1, 2, 32)
	assert.ErrorIs(err, ErrRegister)
}

func TestAssemble_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Assemble(R1{Rd: word.Zero(IDX_BITS), Op: R1Inst{Dir: TF(3), Reg: LOHI_HI}})
	assert.ErrorIs(err, word.ErrTagInvalid)

	_, err = MakeImmediate(R3_NOR, 1, 2, 3)
	assert.ErrorIs(err, word.ErrTagInvalid)

	_, err = Assemble(R3{Rd: word.New(4, 1), Rs: word.Zero(5), Rt: word.Zero(5)})
	assert.ErrorIs(err, word.ErrWidthMismatch)

	_, err = Assemble(3.14)
	assert.ErrorIs(err, word.ErrTypeMismatch)

	assert.PanicsWithValue(word.ErrNoVariant{Union: "mips.Inst"}, func() {
		_, _ = Assemble(Inst{})
	})
}

func TestAssemble_Partial(t *testing.T) {
	assert := assert.New(t)

	w, err := Assemble(CLASS_LUI)
	assert.NoError(err)
	assert.Equal(word.New(WIDTH, 0x3C000000), w)

	w, err = Assemble(R2_SEH)
	assert.NoError(err)
	assert.Equal(word.New(WIDTH, 0x7C000620), w)

	w, err = Assemble(RS_ROTR)
	assert.NoError(err)
	assert.Equal(word.New(WIDTH, 0x00200002), w)
}

func TestNewAssembler(t *testing.T) {
	assert := assert.New(t)

	assert.NoError(Default.Schema().Validate())

	fields := FIELD_POS.Clone()
	fields[FIELD_SA] = word.Range{Lo: 5, Hi: 10}
	_, err := NewAssembler(fields)
	assert.ErrorIs(err, word.ErrSchema)

	fields = FIELD_POS.Clone()
	fields[FIELD_OP] = word.Range{Lo: 26, Hi: 33}
	_, err = NewAssembler(fields)
	assert.ErrorIs(err, word.ErrSchema)
}

func TestCodeTables(t *testing.T) {
	assert := assert.New(t)

	for tag := range Tags() {
		_, mask, err := Default.Pattern(tag)
		assert.NoError(err, tag.String())
		assert.NotZero(mask, tag.String())
	}

	for field, table := range CODE_TABLE {
		for key, code := range table {
			assert.Zero(code>>FIELD_POS[field].Len(), "%v %v", field, key)
		}
	}

	seen := map[Class]bool{}
	for _, format := range Prototypes() {
		seen[format.Class()] = true

		for _, opnd := range format.operands() {
			if opnd.field != FIELD_IMM {
				assert.Contains(CLASS_SHAPE[format.Class()].data, opnd.field, "%v", format)
			}
		}
	}
	for class := range Classes() {
		assert.True(seen[class], class.String())
	}
}

func TestRoundTrip(t *testing.T) {
	assert := assert.New(t)

	rng := rand.New(rand.NewPCG(3, 4))
	for _, proto := range Prototypes() {
		imm := CLASS_SHAPE[proto.Class()].imm
		for range 16 {
			noise := word.New(WIDTH, rng.Uint64())
			format := proto.withOperands(func(field word.Field) word.Vector {
				if field == FIELD_IMM {
					return imm.Unscramble(noise)
				}
				return noise.Slice(FIELD_POS[field])
			})

			w, err := Assemble(format)
			if !assert.NoError(err, "%v", format) {
				return
			}

			inst, err := Disassemble(w)
			if !assert.NoError(err, "%v", format) {
				return
			}
			assert.Equal(Inst{Format: format}, inst)
		}
	}
}

func TestDisassemble_Errors(t *testing.T) {
	assert := assert.New(t)

	_, err := Disassemble(word.New(WIDTH, 0xFC000000))
	assert.ErrorIs(err, word.ErrDecode)
	assert.ErrorIs(err, ErrUnknown)

	// mfhi with a non-zero rs
	_, err = Disassemble(word.New(WIDTH, 0x00200810))
	assert.ErrorIs(err, ErrReserved)
	assert.False(IsValid(word.New(WIDTH, 0x00200810)))

	assert.True(IsValid(word.New(WIDTH, 0x00430821)))
	assert.False(IsValid(word.New(8, 0x21)))
}

func TestPlacement(t *testing.T) {
	assert := assert.New(t)

	assert.Equal([]word.Field{FIELD_RD}, RegisterFields(MFLO))
	assert.Equal([]word.Field{FIELD_RS}, RegisterFields(MTLO))
	assert.Equal([]word.Field{FIELD_RD, FIELD_RS}, RegisterFields(R2_CLO))
	assert.Equal([]word.Field{FIELD_RD, FIELD_RT}, RegisterFields(R2_SEH))
	assert.Equal([]word.Field{FIELD_RS, FIELD_RT}, RegisterFields(R2_DIVU))
	assert.Empty(RegisterFields(R3_ADDU))

	for _, op := range r1Insts {
		assert.Contains(R1_PLACEMENT, op, op.String())
	}
	for _, op := range r2Insts {
		assert.Contains(R2_PLACEMENT, op, op.String())
	}

	table := [](struct {
		name string
		word uint64
	}){
		{"clz rt differs from rd", 0x70420820},
		{"clo rt differs from rd", 0x70400821},
		{"mult with rd", 0x00220818},
		{"seb with rs", 0x7C220C20},
		{"mtlo with rd", 0x00200813},
	}

	for _, entry := range table {
		_, err := Disassemble(word.New(WIDTH, entry.word))
		assert.ErrorIs(err, ErrReserved, entry.name)
	}

	inst, err := Disassemble(word.New(WIDTH, 0x70410820))
	assert.NoError(err)
	assert.Equal(must(MakeR2(R2_CLZ, 1, 2)), inst)
}

func TestExtractMatch(t *testing.T) {
	assert := assert.New(t)

	w := word.New(WIDTH, 0x00430821)

	v, err := Extract(w, FIELD_RT)
	assert.NoError(err)
	assert.Equal(word.New(IDX_BITS, 3), v)

	_, err = Extract(w, FIELD_IMM)
	assert.ErrorIs(err, word.ErrSchema)

	imm, err := Extract(word.New(WIDTH, 0x2441FFFF), FIELD_IMM)
	assert.NoError(err)
	assert.Equal(word.New(CONST_BITS, 0xFFFF), imm)
	assert.Equal(int64(-1), IMM_SIGNED.Decode(imm))

	imm, err = Extract(word.New(WIDTH, 0x3C011234), FIELD_IMM)
	assert.NoError(err)
	assert.Equal(int64(0x12340000), IMM_UPPER.Decode(imm))

	_, err = Extract(word.New(WIDTH, 0xFC000000), FIELD_IMM)
	assert.ErrorIs(err, ErrUnknown)

	assert.True(Match(w, R3_ADDU))
	assert.False(Match(w, R3_SUBU))
	assert.True(Match(w, R3{Op: R3_ADDU}))
	assert.False(Match(w, CLASS_LUI))
	assert.False(Match(w, CLASS_R3))
	assert.True(Match(word.New(WIDTH, 0x3C011234), CLASS_LUI))
}

func FuzzDisassemble(f *testing.F) {
	f.Add(uint32(0x00430821))
	f.Add(uint32(0x7C4120C0))
	f.Add(uint32(0))

	f.Fuzz(func(t *testing.T, raw uint32) {
		assert := assert.New(t)

		w := word.New(WIDTH, uint64(raw))
		inst, err := Disassemble(w)
		if err != nil {
			assert.ErrorIs(err, word.ErrDecode)
			return
		}

		again, err := Assemble(inst)
		assert.NoError(err)
		assert.Equal(w, again)
	})
}
