package program

import (
	"fmt"
	"iter"
	"maps"
	"slices"

	"github.com/ezrec/wordasm/internal"
	"github.com/ezrec/wordasm/mips"
	"github.com/ezrec/wordasm/riscv"
	"github.com/ezrec/wordasm/word"
)

// Mnemonic builds one instruction from integer operands.
type Mnemonic struct {
	Params  []string // Operand names, in positional order.
	Rounded bool     // If set, also accepts an 'rm' rounding mode keyword.
	Make    func(args []int, rm string) (inst any, err error)
}

// ISA binds an instruction set to the batch layer.
type ISA struct {
	Name        string
	Width       int
	Assemble    func(value any) (word.Vector, error)
	Disassemble func(w word.Vector) (fmt.Stringer, error)
	Schema      func() *word.Schema
	Pattern     func(value any) (bits, mask uint64, err error)
	Tags        func() iter.Seq[fmt.Stringer]
	Mnemonics   map[string]Mnemonic
}

var isas = map[string]*ISA{
	"riscv": RISCV,
	"mips":  MIPS,
}

// Lookup finds an ISA by name.
func Lookup(name string) (isa *ISA, err error) {
	isa, ok := isas[name]
	if !ok {
		err = ErrISAUnknown(name)
	}
	return
}

// Names yields the registered ISA names in order.
func Names() iter.Seq[string] {
	return slices.Values(slices.Sorted(maps.Keys(isas)))
}

// Check verifies that the schema tiles the word and that every tag has a
// code.
func (isa *ISA) Check() (err error) {
	err = isa.Schema().Validate()
	if err != nil {
		return
	}

	for tag := range isa.Tags() {
		var mask uint64
		_, mask, err = isa.Pattern(tag)
		if err != nil {
			return
		}
		if mask == 0 {
			err = fmt.Errorf("%v: %w", tag, ErrTagUncoded)
			return
		}
	}

	return
}

func stringer[T fmt.Stringer](v T) fmt.Stringer {
	return v
}

func params(names ...string) []string {
	return names
}

func fieldNames(fields []word.Field) (names []string) {
	for _, field := range fields {
		names = append(names, string(field))
	}
	return
}

func rounding(rm string) (riscv.RM, error) {
	if len(rm) == 0 {
		return riscv.RM_DYN, nil
	}
	return riscv.ParseRM(rm)
}

// RISCV is the RISC-V RV32I and F instruction set.
var RISCV = &ISA{
	Name:     "riscv",
	Width:    riscv.WIDTH,
	Assemble: riscv.Assemble,
	Disassemble: func(w word.Vector) (fmt.Stringer, error) {
		return riscv.Disassemble(w)
	},
	Schema:    riscv.Default.Schema,
	Pattern:   riscv.Default.Pattern,
	Tags:      func() iter.Seq[fmt.Stringer] { return internal.Map(riscv.Tags(), stringer[riscv.Tag]) },
	Mnemonics: riscvMnemonics(),
}

func riscvMnemonics() (ms map[string]Mnemonic) {
	u := func(n int) uint { return uint(n) }

	ms = map[string]Mnemonic{
		"lui": {
			Params: params("rd", "imm"),
			Make: func(a []int, _ string) (any, error) {
				return riscv.MakeLUI(u(a[0]), int64(a[1]))
			},
		},
		"auipc": {
			Params: params("rd", "imm"),
			Make: func(a []int, _ string) (any, error) {
				return riscv.MakeAUIPC(u(a[0]), int64(a[1]))
			},
		},
		"jal": {
			Params: params("rd", "offset"),
			Make: func(a []int, _ string) (any, error) {
				return riscv.MakeJAL(u(a[0]), int64(a[1]))
			},
		},
		"jalr": {
			Params: params("rd", "rs1", "offset"),
			Make: func(a []int, _ string) (any, error) {
				return riscv.MakeJALR(u(a[0]), u(a[1]), int64(a[2]))
			},
		},
		"fsqrt.s": {
			Params:  params("rd", "rs1"),
			Rounded: true,
			Make: func(a []int, rm string) (inst any, err error) {
				mode, err := rounding(rm)
				if err != nil {
					return
				}
				return riscv.MakeFSqrt(mode, u(a[0]), u(a[1]))
			},
		},
		"fclass.s": {
			Params: params("rd", "rs1"),
			Make: func(a []int, _ string) (any, error) {
				return riscv.MakeFClass(u(a[0]), u(a[1]))
			},
		},
	}

	for tag := range riscv.Tags() {
		switch tag := tag.(type) {
		case riscv.ArithInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs1", "rs2"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeOp(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
			if slices.Contains(riscv.EXCLUDED[riscv.KIND_OP_IMM_ARITH], riscv.Tag(tag)) {
				continue
			}
			ms[riscv.ImmMnemonic(tag)] = Mnemonic{
				Params: params("rd", "rs1", "imm"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeOpImm(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		case riscv.ShiftInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs1", "rs2"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeOp(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
			ms[tag.String()+"i"] = Mnemonic{
				Params: params("rd", "rs1", "shamt"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeShiftImm(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		case riscv.BranchInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rs1", "rs2", "offset"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeBranch(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		case riscv.LoadInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs1", "offset"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeLoad(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		case riscv.StoreInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rs1", "rs2", "offset"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeStore(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		case riscv.FPComputeInst:
			ms[tag.String()] = Mnemonic{
				Params:  params("rd", "rs1", "rs2"),
				Rounded: true,
				Make: func(a []int, rm string) (inst any, err error) {
					mode, err := rounding(rm)
					if err != nil {
						return
					}
					return riscv.MakeFCompute(tag, mode, u(a[0]), u(a[1]), u(a[2]))
				},
			}
		case riscv.FPMinMaxInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs1", "rs2"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeFMinMax(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
		case riscv.FPCompareInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs1", "rs2"),
				Make: func(a []int, _ string) (any, error) {
					return riscv.MakeFCompare(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
		case riscv.FPFusedInst:
			ms[tag.String()] = Mnemonic{
				Params:  params("rd", "rs1", "rs2", "rs3"),
				Rounded: true,
				Make: func(a []int, rm string) (inst any, err error) {
					mode, err := rounding(rm)
					if err != nil {
						return
					}
					return riscv.MakeFused(tag, mode, u(a[0]), u(a[1]), u(a[2]), u(a[3]))
				},
			}
		}
	}

	return
}

// MIPS is the MIPS32r2 integer subset.
var MIPS = &ISA{
	Name:     "mips",
	Width:    mips.WIDTH,
	Assemble: mips.Assemble,
	Disassemble: func(w word.Vector) (fmt.Stringer, error) {
		return mips.Disassemble(w)
	},
	Schema:    mips.Default.Schema,
	Pattern:   mips.Default.Pattern,
	Tags:      func() iter.Seq[fmt.Stringer] { return internal.Map(mips.Tags(), stringer[mips.Tag]) },
	Mnemonics: mipsMnemonics(),
}

func mipsMnemonics() (ms map[string]Mnemonic) {
	u := func(n int) uint { return uint(n) }

	ms = map[string]Mnemonic{
		"lui": {
			Params: params("rd", "imm"),
			Make: func(a []int, _ string) (any, error) {
				return mips.MakeLUI(u(a[0]), int64(a[1]))
			},
		},
	}

	for tag := range mips.Tags() {
		switch tag := tag.(type) {
		case mips.R1Inst:
			ms[tag.String()] = Mnemonic{
				Params: fieldNames(mips.RegisterFields(tag)),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeR1(tag, u(a[0]))
				},
			}
		case mips.R2Inst:
			ms[tag.String()] = Mnemonic{
				Params: fieldNames(mips.RegisterFields(tag)),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeR2(tag, u(a[0]), u(a[1]))
				},
			}
		case mips.R3Inst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs", "rt"),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeR3(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
		case mips.RsInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs", "sa"),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeRs(tag, u(a[0]), u(a[1]), u(a[2]))
				},
			}
		case mips.RlmInst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs", "mb", "lb"),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeRlm(tag, u(a[0]), u(a[1]), u(a[2]), u(a[3]))
				},
			}
		case mips.I2Inst:
			ms[tag.String()] = Mnemonic{
				Params: params("rd", "rs", "imm"),
				Make: func(a []int, _ string) (any, error) {
					return mips.MakeI2(tag, u(a[0]), u(a[1]), int64(a[2]))
				},
			}
		}
	}

	return
}
