package riscv

import (
	"fmt"
	"math"

	"github.com/ezrec/wordasm/word"
)

// Reg returns the index of register n.
func Reg(n uint) (v word.Vector, err error) {
	if n >= 1<<REG_BITS {
		err = fmt.Errorf("%w: %d", ErrRegister, n)
		return
	}

	v = word.New(REG_BITS, uint64(n))
	return
}

func regs(ns ...uint) (vs []word.Vector, err error) {
	vs = make([]word.Vector, len(ns))
	for n, index := range ns {
		vs[n], err = Reg(index)
		if err != nil {
			return
		}
	}
	return
}

// ParseRM returns the rounding mode named name, as rendered by RM.String.
func ParseRM(name string) (rm RM, err error) {
	for rm = range RoundingModes() {
		if rm.String() == name {
			return
		}
	}

	err = ErrRoundingMode(name)
	return
}

func encode(kind DataKind, value int64) (imm word.Vector, err error) {
	return IMM_LAYOUT[kind].Encode(value)
}

// MakeOp makes a register-register operation.
func MakeOp(tag AluOp, rd, rs1, rs2 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1, rs2)
	if err != nil {
		return
	}

	inst = OP{Tag: AluInst{Op: tag}, Data: R{Rd: r[0], Rs1: r[1], Rs2: r[2]}}.Inst()
	return
}

// MakeOpImm makes a register-immediate arithmetic operation.
func MakeOpImm(tag ArithInst, rd, rs1 uint, imm int64) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}
	v, err := encode(DATA_I, imm)
	if err != nil {
		return
	}

	inst = OpImmArith{Tag: tag, Data: I{Rd: r[0], Rs1: r[1], Imm: v}}.Inst()
	return
}

// MakeShiftImm makes a shift by a constant amount.
func MakeShiftImm(tag ShiftInst, rd, rs1 uint, shamt int64) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}
	v, err := encode(DATA_IS, shamt)
	if err != nil {
		return
	}

	inst = OpImmShift{Tag: tag, Data: Is{Rd: r[0], Rs1: r[1], Shamt: v}}.Inst()
	return
}

// MakeLUI makes a load upper immediate. The low 12 bits of value must be
// zero. value is the 32-bit result, signed or unsigned: 0xFFFFF000 and
// -4096 make the same instruction.
func MakeLUI(rd uint, value int64) (inst Inst, err error) {
	data, err := makeU(rd, value)
	if err != nil {
		return
	}

	inst = LUI{Data: data}.Inst()
	return
}

// MakeAUIPC makes an add upper immediate to pc. value is as for MakeLUI.
func MakeAUIPC(rd uint, value int64) (inst Inst, err error) {
	data, err := makeU(rd, value)
	if err != nil {
		return
	}

	inst = AUIPC{Data: data}.Inst()
	return
}

func makeU(rd uint, value int64) (data U, err error) {
	r, err := Reg(rd)
	if err != nil {
		return
	}
	if value > math.MaxInt32 && value <= math.MaxUint32 {
		value = int64(int32(uint32(value)))
	}
	v, err := encode(DATA_U, value)
	if err != nil {
		return
	}

	data = U{Rd: r, Imm: v}
	return
}

// MakeJAL makes a jump and link to a byte offset.
func MakeJAL(rd uint, offset int64) (inst Inst, err error) {
	r, err := Reg(rd)
	if err != nil {
		return
	}
	v, err := encode(DATA_J, offset)
	if err != nil {
		return
	}

	inst = JAL{Data: J{Rd: r, Imm: v}}.Inst()
	return
}

// MakeJALR makes an indirect jump and link to rs1 plus offset.
func MakeJALR(rd, rs1 uint, offset int64) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}
	v, err := encode(DATA_I, offset)
	if err != nil {
		return
	}

	inst = JALR{Data: I{Rd: r[0], Rs1: r[1], Imm: v}}.Inst()
	return
}

// MakeBranch makes a conditional branch to a byte offset.
func MakeBranch(tag BranchInst, rs1, rs2 uint, offset int64) (inst Inst, err error) {
	r, err := regs(rs1, rs2)
	if err != nil {
		return
	}
	v, err := encode(DATA_B, offset)
	if err != nil {
		return
	}

	inst = Branch{Tag: tag, Data: B{Rs1: r[0], Rs2: r[1], Imm: v}}.Inst()
	return
}

// MakeLoad makes a load from rs1 plus offset.
func MakeLoad(tag LoadInst, rd, rs1 uint, offset int64) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}
	v, err := encode(DATA_I, offset)
	if err != nil {
		return
	}

	inst = Load{Tag: tag, Data: I{Rd: r[0], Rs1: r[1], Imm: v}}.Inst()
	return
}

// MakeStore makes a store of rs2 to rs1 plus offset.
func MakeStore(tag StoreInst, rs1, rs2 uint, offset int64) (inst Inst, err error) {
	r, err := regs(rs1, rs2)
	if err != nil {
		return
	}
	v, err := encode(DATA_S, offset)
	if err != nil {
		return
	}

	inst = Store{Tag: tag, Data: S{Rs1: r[0], Rs2: r[1], Imm: v}}.Inst()
	return
}

// MakeFCompute makes a rounded floating-point arithmetic operation.
func MakeFCompute(tag FPComputeInst, rm RM, rd, rs1, rs2 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1, rs2)
	if err != nil {
		return
	}

	inst = FCompute{Tag: tag, RM: rm, Data: R{Rd: r[0], Rs1: r[1], Rs2: r[2]}}.Inst()
	return
}

// MakeFMinMax makes a floating-point minimum or maximum.
func MakeFMinMax(tag FPMinMaxInst, rd, rs1, rs2 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1, rs2)
	if err != nil {
		return
	}

	inst = FMinMax{Tag: tag, Data: R{Rd: r[0], Rs1: r[1], Rs2: r[2]}}.Inst()
	return
}

// MakeFCompare makes a floating-point comparison into integer register rd.
func MakeFCompare(tag FPCompareInst, rd, rs1, rs2 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1, rs2)
	if err != nil {
		return
	}

	inst = FCompare{Tag: tag, Data: R{Rd: r[0], Rs1: r[1], Rs2: r[2]}}.Inst()
	return
}

// MakeFSqrt makes a rounded floating-point square root.
func MakeFSqrt(rm RM, rd, rs1 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}

	inst = FSqrt{RM: rm, Data: R2{Rd: r[0], Rs1: r[1]}}.Inst()
	return
}

// MakeFClass makes a floating-point classification into integer register rd.
func MakeFClass(rd, rs1 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1)
	if err != nil {
		return
	}

	inst = FClass{Data: R2{Rd: r[0], Rs1: r[1]}}.Inst()
	return
}

// MakeFused makes a rounded fused multiply-add.
func MakeFused(tag FPFusedInst, rm RM, rd, rs1, rs2, rs3 uint) (inst Inst, err error) {
	r, err := regs(rd, rs1, rs2, rs3)
	if err != nil {
		return
	}

	inst = OpFused{Tag: tag, RM: rm, Data: R4{Rd: r[0], Rs1: r[1], Rs2: r[2], Rs3: r[3]}}.Inst()
	return
}
