package riscv

import (
	"fmt"
	"iter"
	"slices"

	"github.com/ezrec/wordasm/internal"
)

// Tag is a plain enumeration selecting one operation within a format.
type Tag interface {
	fmt.Stringer
	tag()
}

// Class is the outer instruction format, identified by the opcode field.
type Class int

//go:generate go tool stringer -linecomment -type=Class
const (
	CLASS_OP       = Class(0)  // op
	CLASS_OP_IMM   = Class(1)  // op-imm
	CLASS_LUI      = Class(2)  // lui
	CLASS_AUIPC    = Class(3)  // auipc
	CLASS_JAL      = Class(4)  // jal
	CLASS_JALR     = Class(5)  // jalr
	CLASS_BRANCH   = Class(6)  // branch
	CLASS_LOAD     = Class(7)  // load
	CLASS_STORE    = Class(8)  // store
	CLASS_OP_FP    = Class(9)  // op-fp
	CLASS_OP_FUSED = Class(10) // op-fused
)

// Kind is the concrete shape of an operation: its code fields and data layout.
type Kind int

//go:generate go tool stringer -linecomment -type=Kind
const (
	KIND_OP           = Kind(0)  // op
	KIND_OP_IMM_ARITH = Kind(1)  // op-imm-arith
	KIND_OP_IMM_SHIFT = Kind(2)  // op-imm-shift
	KIND_LUI          = Kind(3)  // lui
	KIND_AUIPC        = Kind(4)  // auipc
	KIND_JAL          = Kind(5)  // jal
	KIND_JALR         = Kind(6)  // jalr
	KIND_BRANCH       = Kind(7)  // branch
	KIND_LOAD         = Kind(8)  // load
	KIND_STORE        = Kind(9)  // store
	KIND_FP_COMPUTE   = Kind(10) // fp-compute
	KIND_FP_MINMAX    = Kind(11) // fp-minmax
	KIND_FP_COMPARE   = Kind(12) // fp-compare
	KIND_FP_SQRT      = Kind(13) // fp-sqrt
	KIND_FP_CLASS     = Kind(14) // fp-class
	KIND_FP_FUSED     = Kind(15) // fp-fused
)

// DataKind identifies a data layout.
type DataKind int

//go:generate go tool stringer -linecomment -type=DataKind
const (
	DATA_R  = DataKind(0) // R
	DATA_I  = DataKind(1) // I
	DATA_IS = DataKind(2) // Is
	DATA_S  = DataKind(3) // S
	DATA_U  = DataKind(4) // U
	DATA_B  = DataKind(5) // B
	DATA_J  = DataKind(6) // J
	DATA_R4 = DataKind(7) // R4
	DATA_R2 = DataKind(8) // R2
)

// ArithInst selects an arithmetic or logical operation.
type ArithInst int

//go:generate go tool stringer -linecomment -type=ArithInst
const (
	ARITH_ADD  = ArithInst(0) // add
	ARITH_SUB  = ArithInst(1) // sub
	ARITH_SLT  = ArithInst(2) // slt
	ARITH_SLTU = ArithInst(3) // sltu
	ARITH_AND  = ArithInst(4) // and
	ARITH_OR   = ArithInst(5) // or
	ARITH_XOR  = ArithInst(6) // xor
)

// ShiftInst selects a shift operation.
type ShiftInst int

//go:generate go tool stringer -linecomment -type=ShiftInst
const (
	SHIFT_SLL = ShiftInst(0) // sll
	SHIFT_SRL = ShiftInst(1) // srl
	SHIFT_SRA = ShiftInst(2) // sra
)

// StoreInst selects a store width.
type StoreInst int

//go:generate go tool stringer -linecomment -type=StoreInst
const (
	STORE_SB = StoreInst(0) // sb
	STORE_SH = StoreInst(1) // sh
	STORE_SW = StoreInst(2) // sw
	STORE_SD = StoreInst(3) // sd
)

// LoadInst selects a load width and extension.
type LoadInst int

//go:generate go tool stringer -linecomment -type=LoadInst
const (
	LOAD_LB  = LoadInst(0) // lb
	LOAD_LBU = LoadInst(1) // lbu
	LOAD_LH  = LoadInst(2) // lh
	LOAD_LHU = LoadInst(3) // lhu
	LOAD_LW  = LoadInst(4) // lw
	LOAD_LWU = LoadInst(5) // lwu
	LOAD_LD  = LoadInst(6) // ld
)

// BranchInst selects a branch comparison.
type BranchInst int

//go:generate go tool stringer -linecomment -type=BranchInst
const (
	BRANCH_BEQ  = BranchInst(0) // beq
	BRANCH_BNE  = BranchInst(1) // bne
	BRANCH_BLT  = BranchInst(2) // blt
	BRANCH_BLTU = BranchInst(3) // bltu
	BRANCH_BGE  = BranchInst(4) // bge
	BRANCH_BGEU = BranchInst(5) // bgeu
)

// RM is a floating-point rounding mode.
type RM int

//go:generate go tool stringer -linecomment -type=RM
const (
	RM_RNE = RM(0) // rne
	RM_RTZ = RM(1) // rtz
	RM_RDN = RM(2) // rdn
	RM_RUP = RM(3) // rup
	RM_RMM = RM(4) // rmm
	RM_DYN = RM(5) // dyn
)

// FPComputeInst selects a floating-point arithmetic operation.
type FPComputeInst int

//go:generate go tool stringer -linecomment -type=FPComputeInst
const (
	FP_ADD = FPComputeInst(0) // fadd.s
	FP_SUB = FPComputeInst(1) // fsub.s
	FP_MUL = FPComputeInst(2) // fmul.s
	FP_DIV = FPComputeInst(3) // fdiv.s
)

// FPMinMaxInst selects a floating-point minimum or maximum.
type FPMinMaxInst int

//go:generate go tool stringer -linecomment -type=FPMinMaxInst
const (
	FP_MIN = FPMinMaxInst(0) // fmin.s
	FP_MAX = FPMinMaxInst(1) // fmax.s
)

// FPCompareInst selects a floating-point comparison.
type FPCompareInst int

//go:generate go tool stringer -linecomment -type=FPCompareInst
const (
	FP_EQ = FPCompareInst(0) // feq.s
	FP_LT = FPCompareInst(1) // flt.s
	FP_LE = FPCompareInst(2) // fle.s
)

// FPFusedInst selects a fused multiply-add variant.
type FPFusedInst int

//go:generate go tool stringer -linecomment -type=FPFusedInst
const (
	FP_FMA  = FPFusedInst(0) // fmadd.s
	FP_FNMA = FPFusedInst(1) // fnmadd.s
	FP_FMS  = FPFusedInst(2) // fmsub.s
	FP_FNMS = FPFusedInst(3) // fnmsub.s
)

func (ArithInst) tag()     {}
func (ShiftInst) tag()     {}
func (StoreInst) tag()     {}
func (LoadInst) tag()      {}
func (BranchInst) tag()    {}
func (FPComputeInst) tag() {}
func (FPMinMaxInst) tag()  {}
func (FPCompareInst) tag() {}
func (FPFusedInst) tag()   {}

// Members lists every member of each enumeration.
var (
	arithInsts     = []ArithInst{ARITH_ADD, ARITH_SUB, ARITH_SLT, ARITH_SLTU, ARITH_AND, ARITH_OR, ARITH_XOR}
	shiftInsts     = []ShiftInst{SHIFT_SLL, SHIFT_SRL, SHIFT_SRA}
	storeInsts     = []StoreInst{STORE_SB, STORE_SH, STORE_SW, STORE_SD}
	loadInsts      = []LoadInst{LOAD_LB, LOAD_LBU, LOAD_LH, LOAD_LHU, LOAD_LW, LOAD_LWU, LOAD_LD}
	branchInsts    = []BranchInst{BRANCH_BEQ, BRANCH_BNE, BRANCH_BLT, BRANCH_BLTU, BRANCH_BGE, BRANCH_BGEU}
	roundingModes  = []RM{RM_RNE, RM_RTZ, RM_RDN, RM_RUP, RM_RMM, RM_DYN}
	fpComputeInsts = []FPComputeInst{FP_ADD, FP_SUB, FP_MUL, FP_DIV}
	fpMinMaxInsts  = []FPMinMaxInst{FP_MIN, FP_MAX}
	fpCompareInsts = []FPCompareInst{FP_EQ, FP_LT, FP_LE}
	fpFusedInsts   = []FPFusedInst{FP_FMA, FP_FNMA, FP_FMS, FP_FNMS}
	classes        = []Class{CLASS_OP, CLASS_OP_IMM, CLASS_LUI, CLASS_AUIPC, CLASS_JAL, CLASS_JALR, CLASS_BRANCH, CLASS_LOAD, CLASS_STORE, CLASS_OP_FP, CLASS_OP_FUSED}
	kinds          = []Kind{KIND_OP, KIND_OP_IMM_ARITH, KIND_OP_IMM_SHIFT, KIND_LUI, KIND_AUIPC, KIND_JAL, KIND_JALR, KIND_BRANCH, KIND_LOAD, KIND_STORE, KIND_FP_COMPUTE, KIND_FP_MINMAX, KIND_FP_COMPARE, KIND_FP_SQRT, KIND_FP_CLASS, KIND_FP_FUSED}
)

// Tags yields every member of every tag enumeration.
func Tags() iter.Seq[Tag] {
	return internal.Concat(
		internal.Members[Tag](arithInsts),
		internal.Members[Tag](shiftInsts),
		internal.Members[Tag](storeInsts),
		internal.Members[Tag](loadInsts),
		internal.Members[Tag](branchInsts),
		internal.Members[Tag](fpComputeInsts),
		internal.Members[Tag](fpMinMaxInsts),
		internal.Members[Tag](fpCompareInsts),
		internal.Members[Tag](fpFusedInsts),
	)
}

// Classes yields every instruction class.
func Classes() iter.Seq[Class] {
	return slices.Values(classes)
}

// Kinds yields every operation kind.
func Kinds() iter.Seq[Kind] {
	return slices.Values(kinds)
}

// RoundingModes yields every rounding mode.
func RoundingModes() iter.Seq[RM] {
	return slices.Values(roundingModes)
}
