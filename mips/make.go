package mips

import (
	"fmt"
	"math"

	"github.com/ezrec/wordasm/word"
)

// IMMEDIATE_FORM maps the three register operations that have a
// register-immediate twin to that twin.
var IMMEDIATE_FORM = map[R3Inst]I2Inst{
	R3_ADDU: I2_ADDIU,
	R3_AND:  I2_ANDI,
	R3_OR:   I2_ORI,
	R3_XOR:  I2_XORI,
	R3_SLT:  I2_SLTI,
	R3_SLTU: I2_SLTIU,
}

// Idx returns the index of register n.
func Idx(n uint) (v word.Vector, err error) {
	if n >= 1<<IDX_BITS {
		err = fmt.Errorf("%w: %d", ErrRegister, n)
		return
	}

	v = word.New(IDX_BITS, uint64(n))
	return
}

// Shift returns a 5-bit shift amount or bit position.
func Shift(n uint) (v word.Vector, err error) {
	if n >= 1<<SA_BITS {
		err = fmt.Errorf("%w: %d", word.ErrRange, n)
		return
	}

	v = word.New(SA_BITS, uint64(n))
	return
}

func idxs(ns ...uint) (vs []word.Vector, err error) {
	vs = make([]word.Vector, len(ns))
	for n, index := range ns {
		vs[n], err = Idx(index)
		if err != nil {
			return
		}
	}
	return
}

// MakeR1 makes a hi/lo move of register n.
func MakeR1(op R1Inst, n uint) (inst Inst, err error) {
	r, err := Idx(n)
	if err != nil {
		return
	}

	inst = R1{Rd: r, Op: op}.Inst()
	return
}

// MakeR2 makes a two register operation from its registers in assembly
// order. R2_PLACEMENT gives the field of each.
func MakeR2(op R2Inst, a, b uint) (inst Inst, err error) {
	r, err := idxs(a, b)
	if err != nil {
		return
	}

	inst = R2{Rd: r[0], Rs: r[1], Op: op}.Inst()
	return
}

// MakeR3 makes a three register operation.
func MakeR3(op R3Inst, rd, rs, rt uint) (inst Inst, err error) {
	r, err := idxs(rd, rs, rt)
	if err != nil {
		return
	}

	inst = R3{Rd: r[0], Rs: r[1], Rt: r[2], Op: op}.Inst()
	return
}

// MakeRs makes a shift by a constant amount.
func MakeRs(op RsInst, rd, rs, sa uint) (inst Inst, err error) {
	r, err := idxs(rd, rs)
	if err != nil {
		return
	}
	s, err := Shift(sa)
	if err != nil {
		return
	}

	inst = Rs{Rd: r[0], Rs: r[1], Sa: s, Op: op}.Inst()
	return
}

// MakeRlm makes a bit field extract or insert.
func MakeRlm(op RlmInst, rd, rs, mb, lb uint) (inst Inst, err error) {
	r, err := idxs(rd, rs)
	if err != nil {
		return
	}
	m, err := Shift(mb)
	if err != nil {
		return
	}
	l, err := Shift(lb)
	if err != nil {
		return
	}

	inst = Rlm{Rd: r[0], Rs: r[1], Mb: m, Lb: l, Op: op}.Inst()
	return
}

// MakeI2 makes a register-immediate operation. The logical operations
// take an unsigned immediate, the others a signed one.
func MakeI2(op I2Inst, rd, rs uint, im int64) (inst Inst, err error) {
	r, err := idxs(rd, rs)
	if err != nil {
		return
	}
	v, err := immLayout(op).Encode(im)
	if err != nil {
		return
	}

	inst = I2{Rd: r[0], Rs: r[1], Im: v, Op: op}.Inst()
	return
}

// MakeLUI makes a load upper immediate. The low 16 bits of value must be
// zero. value is the 32-bit result, signed or unsigned: 0xFFFF0000 and
// -0x10000 make the same instruction.
func MakeLUI(rd uint, value int64) (inst Inst, err error) {
	r, err := Idx(rd)
	if err != nil {
		return
	}
	if value > math.MaxInt32 && value <= math.MaxUint32 {
		value = int64(int32(uint32(value)))
	}
	v, err := IMM_UPPER.Encode(value)
	if err != nil {
		return
	}

	inst = LUI{Rd: r, Im: v}.Inst()
	return
}

// MakeImmediate makes the register-immediate twin of a three register
// operation.
func MakeImmediate(op R3Inst, rd, rs uint, im int64) (inst Inst, err error) {
	i2, ok := IMMEDIATE_FORM[op]
	if !ok {
		err = word.ErrTag{Format: CLASS_I2.String(), Tag: op}
		return
	}

	return MakeI2(i2, rd, rs, im)
}

// Addu makes rd = rs + rt.
func Addu(rd, rs, rt uint) (Inst, error) {
	return MakeR3(R3_ADDU, rd, rs, rt)
}

// Addiu makes rd = rs + im.
func Addiu(rd, rs uint, im int64) (Inst, error) {
	return MakeImmediate(R3_ADDU, rd, rs, im)
}
