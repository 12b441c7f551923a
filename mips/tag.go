package mips

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/wordasm/internal"
)

// Tag selects one operation within a format.
type Tag interface {
	fmt.Stringer
	tag()
}

// Class is an instruction format.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_R1  = Class(0) // r1
	CLASS_R2  = Class(1) // r2
	CLASS_R3  = Class(2) // r3
	CLASS_RS  = Class(3) // rs
	CLASS_RLM = Class(4) // rlm
	CLASS_I2  = Class(5) // i2
	CLASS_LUI = Class(6) // lui
)

// TF is the direction of a hi/lo move.
type TF int

//go:generate go tool stringer -linecomment -type=TF
const (
	TF_T = TF(0) // t
	TF_F = TF(1) // f
)

// LOHI selects the hi or lo product register.
type LOHI int

//go:generate go tool stringer -linecomment -type=LOHI
const (
	LOHI_LO = LOHI(0) // lo
	LOHI_HI = LOHI(1) // hi
)

// R1Inst is a hi/lo move: a direction and a product register.
type R1Inst struct {
	Dir TF
	Reg LOHI
}

var (
	MFHI = R1Inst{Dir: TF_F, Reg: LOHI_HI}
	MTHI = R1Inst{Dir: TF_T, Reg: LOHI_HI}
	MFLO = R1Inst{Dir: TF_F, Reg: LOHI_LO}
	MTLO = R1Inst{Dir: TF_T, Reg: LOHI_LO}
)

func (op R1Inst) String() string {
	return "m" + op.Dir.String() + op.Reg.String()
}

// R2Inst selects a two register operation.
type R2Inst int

//go:generate go tool stringer -linecomment -type=R2Inst
const (
	R2_CLO   = R2Inst(0)  // clo
	R2_CLZ   = R2Inst(1)  // clz
	R2_SEB   = R2Inst(2)  // seb
	R2_SEH   = R2Inst(3)  // seh
	R2_WSBH  = R2Inst(4)  // wsbh
	R2_DIV   = R2Inst(5)  // div
	R2_DIVU  = R2Inst(6)  // divu
	R2_MADD  = R2Inst(7)  // madd
	R2_MADDU = R2Inst(8)  // maddu
	R2_MSUB  = R2Inst(9)  // msub
	R2_MSUBU = R2Inst(10) // msubu
	R2_MULT  = R2Inst(11) // mult
	R2_MULTU = R2Inst(12) // multu
)

// R3Inst selects a three register operation.
type R3Inst int

//go:generate go tool stringer -linecomment -type=R3Inst
const (
	R3_ADDU  = R3Inst(0)  // addu
	R3_SUBU  = R3Inst(1)  // subu
	R3_ROTRV = R3Inst(2)  // rotrv
	R3_SLLV  = R3Inst(3)  // sllv
	R3_SRAV  = R3Inst(4)  // srav
	R3_SRLV  = R3Inst(5)  // srlv
	R3_AND   = R3Inst(6)  // and
	R3_NOR   = R3Inst(7)  // nor
	R3_OR    = R3Inst(8)  // or
	R3_XOR   = R3Inst(9)  // xor
	R3_MOVN  = R3Inst(10) // movn
	R3_MOVZ  = R3Inst(11) // movz
	R3_SLT   = R3Inst(12) // slt
	R3_SLTU  = R3Inst(13) // sltu
	R3_MUL   = R3Inst(14) // mul
)

// RsInst selects a shift by a constant amount.
type RsInst int

//go:generate go tool stringer -linecomment -type=RsInst
const (
	RS_ROTR = RsInst(0) // rotr
	RS_SLL  = RsInst(1) // sll
	RS_SRA  = RsInst(2) // sra
	RS_SRL  = RsInst(3) // srl
)

// RlmInst selects a bit field operation.
type RlmInst int

//go:generate go tool stringer -linecomment -type=RlmInst
const (
	RLM_EXT = RlmInst(0) // ext
	RLM_INS = RlmInst(1) // ins
)

// I2Inst selects a register-immediate operation.
type I2Inst int

//go:generate go tool stringer -linecomment -type=I2Inst
const (
	I2_ADDIU = I2Inst(0) // addiu
	I2_ANDI  = I2Inst(1) // andi
	I2_ORI   = I2Inst(2) // ori
	I2_XORI  = I2Inst(3) // xori
	I2_SLTI  = I2Inst(4) // slti
	I2_SLTIU = I2Inst(5) // sltiu
)

func (R1Inst) tag()  {}
func (R2Inst) tag()  {}
func (R3Inst) tag()  {}
func (RsInst) tag()  {}
func (RlmInst) tag() {}
func (I2Inst) tag()  {}

var (
	classes  = []Class{CLASS_R1, CLASS_R2, CLASS_R3, CLASS_RS, CLASS_RLM, CLASS_I2, CLASS_LUI}
	r1Insts  = []R1Inst{MFHI, MTHI, MFLO, MTLO}
	r2Insts  = []R2Inst{R2_CLO, R2_CLZ, R2_SEB, R2_SEH, R2_WSBH, R2_DIV, R2_DIVU, R2_MADD, R2_MADDU, R2_MSUB, R2_MSUBU, R2_MULT, R2_MULTU}
	r3Insts  = []R3Inst{R3_ADDU, R3_SUBU, R3_ROTRV, R3_SLLV, R3_SRAV, R3_SRLV, R3_AND, R3_NOR, R3_OR, R3_XOR, R3_MOVN, R3_MOVZ, R3_SLT, R3_SLTU, R3_MUL}
	rsInsts  = []RsInst{RS_ROTR, RS_SLL, RS_SRA, RS_SRL}
	rlmInsts = []RlmInst{RLM_EXT, RLM_INS}
	i2Insts  = []I2Inst{I2_ADDIU, I2_ANDI, I2_ORI, I2_XORI, I2_SLTI, I2_SLTIU}
)

// Tags yields every member of every tag type.
func Tags() iter.Seq[Tag] {
	return internal.Concat(
		internal.Members[Tag](r1Insts),
		internal.Members[Tag](r2Insts),
		internal.Members[Tag](r3Insts),
		internal.Members[Tag](rsInsts),
		internal.Members[Tag](rlmInsts),
		internal.Members[Tag](i2Insts),
	)
}

// Classes yields every format.
func Classes() iter.Seq[Class] {
	return slices.Values(classes)
}
