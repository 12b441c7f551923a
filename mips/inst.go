package mips

import (
	"github.com/ezrec/wordasm/word"
)

type operand struct {
	field word.Field
	value word.Vector
}

// Format is a member of the Inst union.
type Format interface {
	Class() Class
	tagOf() (tag any, ok bool)
	operands() []operand
	withOperands(get func(word.Field) word.Vector) Format
}

// Inst is the top level instruction union.
type Inst struct {
	Format Format
}

// Active implements word.Union.
func (inst Inst) Active() any {
	if inst.Format == nil {
		return nil
	}
	return inst.Format
}

// R1 moves between Rd and a product register. Rd is the destination of
// mf* and the source of mt*.
type R1 struct {
	Rd word.Vector
	Op R1Inst
}

// R2 is a two register operation. Rd and Rs are the operands in assembly
// order; R2_PLACEMENT decides their fields.
type R2 struct {
	Rd, Rs word.Vector
	Op     R2Inst
}

// R3 is a three register operation.
type R3 struct {
	Rd, Rs, Rt word.Vector
	Op         R3Inst
}

// Rs shifts Rs by the constant Sa into Rd.
type Rs struct {
	Rd, Rs word.Vector
	Sa     word.Vector
	Op     RsInst
}

// Rlm extracts or inserts the bit field of Rs at Lb, of Mb+1 (ext) or
// Mb-Lb+1 (ins) bits, into Rd.
type Rlm struct {
	Rd, Rs word.Vector
	Mb, Lb word.Vector
	Op     RlmInst
}

// I2 is a register-immediate operation.
type I2 struct {
	Rd, Rs word.Vector
	Im     word.Vector
	Op     I2Inst
}

// LUI loads Im into the upper half of Rd.
type LUI struct {
	Rd word.Vector
	Im word.Vector
}

func (R1) Class() Class  { return CLASS_R1 }
func (R2) Class() Class  { return CLASS_R2 }
func (R3) Class() Class  { return CLASS_R3 }
func (Rs) Class() Class  { return CLASS_RS }
func (Rlm) Class() Class { return CLASS_RLM }
func (I2) Class() Class  { return CLASS_I2 }
func (LUI) Class() Class { return CLASS_LUI }

func (i R1) tagOf() (any, bool)  { return i.Op, true }
func (i R2) tagOf() (any, bool)  { return i.Op, true }
func (i R3) tagOf() (any, bool)  { return i.Op, true }
func (i Rs) tagOf() (any, bool)  { return i.Op, true }
func (i Rlm) tagOf() (any, bool) { return i.Op, true }
func (i I2) tagOf() (any, bool)  { return i.Op, true }
func (LUI) tagOf() (any, bool)   { return nil, false }

// placement lists, per register operand, the fields carrying it. An
// operand written to two fields must read back equal from both.
type placement [][]word.Field

func (p placement) operands(values ...word.Vector) (opnds []operand) {
	for n, fields := range p {
		for _, field := range fields {
			opnds = append(opnds, operand{field, values[n]})
		}
	}
	return
}

func (p placement) read(get func(word.Field) word.Vector) (values []word.Vector) {
	values = make([]word.Vector, len(p))
	for n, fields := range p {
		values[n] = get(fields[0])
	}
	return
}

var (
	placeRd      = placement{{FIELD_RD}}
	placeRs      = placement{{FIELD_RS}}
	placeCount   = placement{{FIELD_RD, FIELD_RT}, {FIELD_RS}}
	placeBshfl   = placement{{FIELD_RD}, {FIELD_RT}}
	placeProduct = placement{{FIELD_RS}, {FIELD_RT}}
)

// R1_PLACEMENT places the register of each hi/lo move: mf* write rd and
// mt* read rs.
var R1_PLACEMENT = map[R1Inst]placement{
	MFHI: placeRd,
	MFLO: placeRd,
	MTHI: placeRs,
	MTLO: placeRs,
}

// R2_PLACEMENT places the two registers of each two register operation.
// clo and clz repeat the destination in rt. The product operations have
// no destination: they read rs and rt, and rd stays zero.
var R2_PLACEMENT = map[R2Inst]placement{
	R2_CLO:   placeCount,
	R2_CLZ:   placeCount,
	R2_SEB:   placeBshfl,
	R2_SEH:   placeBshfl,
	R2_WSBH:  placeBshfl,
	R2_DIV:   placeProduct,
	R2_DIVU:  placeProduct,
	R2_MADD:  placeProduct,
	R2_MADDU: placeProduct,
	R2_MSUB:  placeProduct,
	R2_MSUBU: placeProduct,
	R2_MULT:  placeProduct,
	R2_MULTU: placeProduct,
}

// RegisterFields returns the field each register operand of a hi/lo move
// or two register operation is read from, in operand order.
func RegisterFields(tag Tag) (fields []word.Field) {
	var p placement
	switch tag := tag.(type) {
	case R1Inst:
		p = R1_PLACEMENT[tag]
	case R2Inst:
		p = R2_PLACEMENT[tag]
	}
	for _, fs := range p {
		fields = append(fields, fs[0])
	}
	return
}

// The destination of R3 and Rs is rd, that of Rlm, I2 and LUI is rt. The
// shifted register of Rs is in rt, as rs carries the rotate flag.

func (i R1) operands() []operand {
	return R1_PLACEMENT[i.Op].operands(i.Rd)
}

func (i R2) operands() []operand {
	return R2_PLACEMENT[i.Op].operands(i.Rd, i.Rs)
}

func (i R3) operands() []operand {
	return []operand{{FIELD_RD, i.Rd}, {FIELD_RS, i.Rs}, {FIELD_RT, i.Rt}}
}

func (i Rs) operands() []operand {
	return []operand{{FIELD_RD, i.Rd}, {FIELD_RT, i.Rs}, {FIELD_SA, i.Sa}}
}

func (i Rlm) operands() []operand {
	return []operand{{FIELD_RT, i.Rd}, {FIELD_RS, i.Rs}, {FIELD_RD, i.Mb}, {FIELD_SA, i.Lb}}
}

func (i I2) operands() []operand {
	return []operand{{FIELD_RT, i.Rd}, {FIELD_RS, i.Rs}, {FIELD_IMM, i.Im}}
}

func (i LUI) operands() []operand {
	return []operand{{FIELD_RT, i.Rd}, {FIELD_IMM, i.Im}}
}

func (i R1) withOperands(get func(word.Field) word.Vector) Format {
	v := R1_PLACEMENT[i.Op].read(get)
	i.Rd = v[0]
	return i
}

func (i R2) withOperands(get func(word.Field) word.Vector) Format {
	v := R2_PLACEMENT[i.Op].read(get)
	i.Rd, i.Rs = v[0], v[1]
	return i
}

func (i R3) withOperands(get func(word.Field) word.Vector) Format {
	i.Rd, i.Rs, i.Rt = get(FIELD_RD), get(FIELD_RS), get(FIELD_RT)
	return i
}

func (i Rs) withOperands(get func(word.Field) word.Vector) Format {
	i.Rd, i.Rs, i.Sa = get(FIELD_RD), get(FIELD_RT), get(FIELD_SA)
	return i
}

func (i Rlm) withOperands(get func(word.Field) word.Vector) Format {
	i.Rd, i.Rs, i.Mb, i.Lb = get(FIELD_RT), get(FIELD_RS), get(FIELD_RD), get(FIELD_SA)
	return i
}

func (i I2) withOperands(get func(word.Field) word.Vector) Format {
	i.Rd, i.Rs, i.Im = get(FIELD_RT), get(FIELD_RS), get(FIELD_IMM)
	return i
}

func (i LUI) withOperands(get func(word.Field) word.Vector) Format {
	i.Rd, i.Im = get(FIELD_RT), get(FIELD_IMM)
	return i
}

// immLayout returns the immediate interpretation of an I2 operation.
func immLayout(op I2Inst) word.Layout {
	switch op {
	case I2_ANDI, I2_ORI, I2_XORI:
		return IMM_UNSIGNED
	}
	return IMM_SIGNED
}

// Value returns the logical immediate.
func (i I2) Value() int64 {
	return immLayout(i.Op).Decode(i.Im)
}

// Value returns the loaded upper half-word, with its low 16 bits zero.
func (i LUI) Value() int64 {
	return IMM_UPPER.Decode(i.Im)
}

// Inst returns the instruction holding the format.
func (i R1) Inst() Inst  { return Inst{Format: i} }
func (i R2) Inst() Inst  { return Inst{Format: i} }
func (i R3) Inst() Inst  { return Inst{Format: i} }
func (i Rs) Inst() Inst  { return Inst{Format: i} }
func (i Rlm) Inst() Inst { return Inst{Format: i} }
func (i I2) Inst() Inst  { return Inst{Format: i} }
func (i LUI) Inst() Inst { return Inst{Format: i} }
