package riscv

import (
	"github.com/ezrec/wordasm/word"
)

// operand is one data chunk: a register field, or FIELD_IMM for the
// stored immediate.
type operand struct {
	field word.Field
	value word.Vector
}

// Data is the operand layout of an instruction, without its codes.
type Data interface {
	DataKind() DataKind
	operands() []operand
}

// R is the three register layout.
type R struct {
	Rd, Rs1, Rs2 word.Vector
}

// I is the register plus 12-bit signed immediate layout.
type I struct {
	Rd, Rs1 word.Vector
	Imm     word.Vector
}

// Is is the register plus 5-bit shift amount layout.
type Is struct {
	Rd, Rs1 word.Vector
	Shamt   word.Vector
}

// S is the store layout. Rs1 is the base, Rs2 the source.
type S struct {
	Rs1, Rs2 word.Vector
	Imm      word.Vector
}

// U is the upper immediate layout.
type U struct {
	Rd  word.Vector
	Imm word.Vector
}

// B is the branch layout. Imm is the stored offset, in units of two bytes.
type B struct {
	Rs1, Rs2 word.Vector
	Imm      word.Vector
}

// J is the jump layout. Imm is the stored offset, in units of two bytes.
type J struct {
	Rd  word.Vector
	Imm word.Vector
}

// R4 is the fused multiply-add layout.
type R4 struct {
	Rd, Rs1, Rs2, Rs3 word.Vector
}

// R2 is the single source register layout.
type R2 struct {
	Rd, Rs1 word.Vector
}

func (R) DataKind() DataKind  { return DATA_R }
func (I) DataKind() DataKind  { return DATA_I }
func (Is) DataKind() DataKind { return DATA_IS }
func (S) DataKind() DataKind  { return DATA_S }
func (U) DataKind() DataKind  { return DATA_U }
func (B) DataKind() DataKind  { return DATA_B }
func (J) DataKind() DataKind  { return DATA_J }
func (R4) DataKind() DataKind { return DATA_R4 }
func (R2) DataKind() DataKind { return DATA_R2 }

func (d R) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_RS1, d.Rs1}, {FIELD_RS2, d.Rs2}}
}

func (d I) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_RS1, d.Rs1}, {FIELD_IMM, d.Imm}}
}

func (d Is) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_RS1, d.Rs1}, {FIELD_IMM, d.Shamt}}
}

func (d S) operands() []operand {
	return []operand{{FIELD_RS1, d.Rs1}, {FIELD_RS2, d.Rs2}, {FIELD_IMM, d.Imm}}
}

func (d U) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_IMM, d.Imm}}
}

func (d B) operands() []operand {
	return []operand{{FIELD_RS1, d.Rs1}, {FIELD_RS2, d.Rs2}, {FIELD_IMM, d.Imm}}
}

func (d J) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_IMM, d.Imm}}
}

func (d R4) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_RS1, d.Rs1}, {FIELD_RS2, d.Rs2}, {FIELD_RS3, d.Rs3}}
}

func (d R2) operands() []operand {
	return []operand{{FIELD_RD, d.Rd}, {FIELD_RS1, d.Rs1}}
}

// Value returns the logical immediate.
func (d I) Value() int64 { return IMM_LAYOUT[DATA_I].Decode(d.Imm) }

// Value returns the shift amount.
func (d Is) Value() int64 { return IMM_LAYOUT[DATA_IS].Decode(d.Shamt) }

// Value returns the logical store offset.
func (d S) Value() int64 { return IMM_LAYOUT[DATA_S].Decode(d.Imm) }

// Value returns the logical upper immediate, with its low 12 bits zero.
func (d U) Value() int64 { return IMM_LAYOUT[DATA_U].Decode(d.Imm) }

// Offset returns the branch offset in bytes.
func (d B) Offset() int64 { return IMM_LAYOUT[DATA_B].Decode(d.Imm) }

// Offset returns the jump offset in bytes.
func (d J) Offset() int64 { return IMM_LAYOUT[DATA_J].Decode(d.Imm) }

// Op is a concrete operation: a kind, its tag (if any) and its data.
type Op interface {
	Kind() Kind
	Class() Class
	Inst() Inst
	Operands() Data
	withData(Data) Op
	tagOf() (tag any, ok bool)
}

// rounded is implemented by operations carrying a rounding mode in funct3.
type rounded interface {
	roundingMode() RM
}

// Format is a member of the Inst union.
type Format interface {
	Class() Class
	format()
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

// AluOp is a member of the AluInst union.
type AluOp interface {
	Tag
	alu()
}

func (ArithInst) alu() {}
func (ShiftInst) alu() {}

// AluInst selects a register-register arithmetic or shift operation.
type AluInst struct {
	Op AluOp
}

// Active implements word.Union.
func (alu AluInst) Active() any {
	if alu.Op == nil {
		return nil
	}
	return alu.Op
}

// OP is a register-register integer operation.
type OP struct {
	Tag  AluInst
	Data R
}

// OpImmOp is a member of the OpImm union.
type OpImmOp interface {
	Op
	opImm()
}

// OpImm is a register-immediate integer operation.
type OpImm struct {
	Op OpImmOp
}

// Active implements word.Union.
func (o OpImm) Active() any {
	if o.Op == nil {
		return nil
	}
	return o.Op
}

// OpImmArith is a register-immediate arithmetic operation. ARITH_SUB is not
// a legal tag.
type OpImmArith struct {
	Tag  ArithInst
	Data I
}

// OpImmShift is a shift by a constant amount.
type OpImmShift struct {
	Tag  ShiftInst
	Data Is
}

// LUI loads an upper immediate.
type LUI struct {
	Data U
}

// AUIPC adds an upper immediate to the program counter.
type AUIPC struct {
	Data U
}

// JAL is a jump and link.
type JAL struct {
	Data J
}

// JALR is an indirect jump and link.
type JALR struct {
	Data I
}

// Branch is a conditional branch.
type Branch struct {
	Tag  BranchInst
	Data B
}

// Load reads memory into a register.
type Load struct {
	Tag  LoadInst
	Data I
}

// Store writes a register to memory.
type Store struct {
	Tag  StoreInst
	Data S
}

// OpFPOp is a member of the OpFP union.
type OpFPOp interface {
	Op
	opFP()
}

// OpFP is a single precision floating-point operation.
type OpFP struct {
	Op OpFPOp
}

// Active implements word.Union.
func (o OpFP) Active() any {
	if o.Op == nil {
		return nil
	}
	return o.Op
}

// FCompute is a rounded floating-point arithmetic operation.
type FCompute struct {
	Tag  FPComputeInst
	RM   RM
	Data R
}

// FMinMax is a floating-point minimum or maximum.
type FMinMax struct {
	Tag  FPMinMaxInst
	Data R
}

// FCompare writes the result of a floating-point comparison to an integer
// register.
type FCompare struct {
	Tag  FPCompareInst
	Data R
}

// FSqrt is a rounded floating-point square root.
type FSqrt struct {
	RM   RM
	Data R2
}

// FClass writes the classification of a floating-point value to an integer
// register.
type FClass struct {
	Data R2
}

// OpFused is a rounded fused multiply-add.
type OpFused struct {
	Tag  FPFusedInst
	RM   RM
	Data R4
}

func (OP) Kind() Kind         { return KIND_OP }
func (OpImmArith) Kind() Kind { return KIND_OP_IMM_ARITH }
func (OpImmShift) Kind() Kind { return KIND_OP_IMM_SHIFT }
func (LUI) Kind() Kind        { return KIND_LUI }
func (AUIPC) Kind() Kind      { return KIND_AUIPC }
func (JAL) Kind() Kind        { return KIND_JAL }
func (JALR) Kind() Kind       { return KIND_JALR }
func (Branch) Kind() Kind     { return KIND_BRANCH }
func (Load) Kind() Kind       { return KIND_LOAD }
func (Store) Kind() Kind      { return KIND_STORE }
func (FCompute) Kind() Kind   { return KIND_FP_COMPUTE }
func (FMinMax) Kind() Kind    { return KIND_FP_MINMAX }
func (FCompare) Kind() Kind   { return KIND_FP_COMPARE }
func (FSqrt) Kind() Kind      { return KIND_FP_SQRT }
func (FClass) Kind() Kind     { return KIND_FP_CLASS }
func (OpFused) Kind() Kind    { return KIND_FP_FUSED }

func (OP) Class() Class         { return CLASS_OP }
func (OpImm) Class() Class      { return CLASS_OP_IMM }
func (OpImmArith) Class() Class { return CLASS_OP_IMM }
func (OpImmShift) Class() Class { return CLASS_OP_IMM }
func (LUI) Class() Class        { return CLASS_LUI }
func (AUIPC) Class() Class      { return CLASS_AUIPC }
func (JAL) Class() Class        { return CLASS_JAL }
func (JALR) Class() Class       { return CLASS_JALR }
func (Branch) Class() Class     { return CLASS_BRANCH }
func (Load) Class() Class       { return CLASS_LOAD }
func (Store) Class() Class      { return CLASS_STORE }
func (OpFP) Class() Class       { return CLASS_OP_FP }
func (FCompute) Class() Class   { return CLASS_OP_FP }
func (FMinMax) Class() Class    { return CLASS_OP_FP }
func (FCompare) Class() Class   { return CLASS_OP_FP }
func (FSqrt) Class() Class      { return CLASS_OP_FP }
func (FClass) Class() Class     { return CLASS_OP_FP }
func (OpFused) Class() Class    { return CLASS_OP_FUSED }

func (OP) format()      {}
func (OpImm) format()   {}
func (LUI) format()     {}
func (AUIPC) format()   {}
func (JAL) format()     {}
func (JALR) format()    {}
func (Branch) format()  {}
func (Load) format()    {}
func (Store) format()   {}
func (OpFP) format()    {}
func (OpFused) format() {}

func (OpImmArith) opImm() {}
func (OpImmShift) opImm() {}

func (FCompute) opFP() {}
func (FMinMax) opFP()  {}
func (FCompare) opFP() {}
func (FSqrt) opFP()    {}
func (FClass) opFP()   {}

func (o OP) Inst() Inst         { return Inst{Format: o} }
func (o OpImmArith) Inst() Inst { return Inst{Format: OpImm{Op: o}} }
func (o OpImmShift) Inst() Inst { return Inst{Format: OpImm{Op: o}} }
func (o LUI) Inst() Inst        { return Inst{Format: o} }
func (o AUIPC) Inst() Inst      { return Inst{Format: o} }
func (o JAL) Inst() Inst        { return Inst{Format: o} }
func (o JALR) Inst() Inst       { return Inst{Format: o} }
func (o Branch) Inst() Inst     { return Inst{Format: o} }
func (o Load) Inst() Inst       { return Inst{Format: o} }
func (o Store) Inst() Inst      { return Inst{Format: o} }
func (o FCompute) Inst() Inst   { return Inst{Format: OpFP{Op: o}} }
func (o FMinMax) Inst() Inst    { return Inst{Format: OpFP{Op: o}} }
func (o FCompare) Inst() Inst   { return Inst{Format: OpFP{Op: o}} }
func (o FSqrt) Inst() Inst      { return Inst{Format: OpFP{Op: o}} }
func (o FClass) Inst() Inst     { return Inst{Format: OpFP{Op: o}} }
func (o OpFused) Inst() Inst    { return Inst{Format: o} }

func (o OP) Operands() Data         { return o.Data }
func (o OpImmArith) Operands() Data { return o.Data }
func (o OpImmShift) Operands() Data { return o.Data }
func (o LUI) Operands() Data        { return o.Data }
func (o AUIPC) Operands() Data      { return o.Data }
func (o JAL) Operands() Data        { return o.Data }
func (o JALR) Operands() Data       { return o.Data }
func (o Branch) Operands() Data     { return o.Data }
func (o Load) Operands() Data       { return o.Data }
func (o Store) Operands() Data      { return o.Data }
func (o FCompute) Operands() Data   { return o.Data }
func (o FMinMax) Operands() Data    { return o.Data }
func (o FCompare) Operands() Data   { return o.Data }
func (o FSqrt) Operands() Data      { return o.Data }
func (o FClass) Operands() Data     { return o.Data }
func (o OpFused) Operands() Data    { return o.Data }

func (o OP) withData(d Data) Op {
	o.Data = d.(R)
	return o
}

func (o OpImmArith) withData(d Data) Op {
	o.Data = d.(I)
	return o
}

func (o OpImmShift) withData(d Data) Op {
	o.Data = d.(Is)
	return o
}

func (o LUI) withData(d Data) Op {
	o.Data = d.(U)
	return o
}

func (o AUIPC) withData(d Data) Op {
	o.Data = d.(U)
	return o
}

func (o JAL) withData(d Data) Op {
	o.Data = d.(J)
	return o
}

func (o JALR) withData(d Data) Op {
	o.Data = d.(I)
	return o
}

func (o Branch) withData(d Data) Op {
	o.Data = d.(B)
	return o
}

func (o Load) withData(d Data) Op {
	o.Data = d.(I)
	return o
}

func (o Store) withData(d Data) Op {
	o.Data = d.(S)
	return o
}

func (o FCompute) withData(d Data) Op {
	o.Data = d.(R)
	return o
}

func (o FMinMax) withData(d Data) Op {
	o.Data = d.(R)
	return o
}

func (o FCompare) withData(d Data) Op {
	o.Data = d.(R)
	return o
}

func (o FSqrt) withData(d Data) Op {
	o.Data = d.(R2)
	return o
}

func (o FClass) withData(d Data) Op {
	o.Data = d.(R2)
	return o
}

func (o OpFused) withData(d Data) Op {
	o.Data = d.(R4)
	return o
}

func (o OP) tagOf() (any, bool)         { return o.Tag, true }
func (o OpImmArith) tagOf() (any, bool) { return o.Tag, true }
func (o OpImmShift) tagOf() (any, bool) { return o.Tag, true }
func (LUI) tagOf() (any, bool)          { return nil, false }
func (AUIPC) tagOf() (any, bool)        { return nil, false }
func (JAL) tagOf() (any, bool)          { return nil, false }
func (JALR) tagOf() (any, bool)         { return nil, false }
func (o Branch) tagOf() (any, bool)     { return o.Tag, true }
func (o Load) tagOf() (any, bool)       { return o.Tag, true }
func (o Store) tagOf() (any, bool)      { return o.Tag, true }
func (o FCompute) tagOf() (any, bool)   { return o.Tag, true }
func (o FMinMax) tagOf() (any, bool)    { return o.Tag, true }
func (o FCompare) tagOf() (any, bool)   { return o.Tag, true }
func (FSqrt) tagOf() (any, bool)        { return nil, false }
func (FClass) tagOf() (any, bool)       { return nil, false }
func (o OpFused) tagOf() (any, bool)    { return o.Tag, true }

func (o FCompute) roundingMode() RM { return o.RM }
func (o FSqrt) roundingMode() RM    { return o.RM }
func (o OpFused) roundingMode() RM  { return o.RM }
