package riscv

import (
	"fmt"

	"github.com/ezrec/wordasm/word"
)

func xreg(v word.Vector) string {
	return fmt.Sprintf("x%d", v.Uint())
}

func freg(v word.Vector) string {
	return fmt.Sprintf("f%d", v.Uint())
}

func (inst Inst) String() string {
	if inst.Format == nil {
		return "<nil>"
	}
	return fmt.Sprint(inst.Format)
}

func (o OpImm) String() string {
	if o.Op == nil {
		return "<nil>"
	}
	return fmt.Sprint(o.Op)
}

func (o OpFP) String() string {
	if o.Op == nil {
		return "<nil>"
	}
	return fmt.Sprint(o.Op)
}

func (alu AluInst) String() string {
	if alu.Op == nil {
		return "<nil>"
	}
	return alu.Op.String()
}

func (o OP) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %v", o.Tag, xreg(d.Rd), xreg(d.Rs1), xreg(d.Rs2))
}

// ImmMnemonic returns the mnemonic of the register-immediate form of tag.
func ImmMnemonic(tag ArithInst) string {
	if tag == ARITH_SLTU {
		return "sltiu"
	}
	return tag.String() + "i"
}

func (o OpImmArith) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %d", ImmMnemonic(o.Tag), xreg(d.Rd), xreg(d.Rs1), d.Value())
}

func (o OpImmShift) String() string {
	d := o.Data
	return fmt.Sprintf("%vi %v, %v, %d", o.Tag, xreg(d.Rd), xreg(d.Rs1), d.Value())
}

func (o LUI) String() string {
	return fmt.Sprintf("lui %v, %#x", xreg(o.Data.Rd), o.Data.Imm.Uint())
}

func (o AUIPC) String() string {
	return fmt.Sprintf("auipc %v, %#x", xreg(o.Data.Rd), o.Data.Imm.Uint())
}

func (o JAL) String() string {
	return fmt.Sprintf("jal %v, %d", xreg(o.Data.Rd), o.Data.Offset())
}

func (o JALR) String() string {
	d := o.Data
	return fmt.Sprintf("jalr %v, %d(%v)", xreg(d.Rd), d.Value(), xreg(d.Rs1))
}

func (o Branch) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %d", o.Tag, xreg(d.Rs1), xreg(d.Rs2), d.Offset())
}

func (o Load) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %d(%v)", o.Tag, xreg(d.Rd), d.Value(), xreg(d.Rs1))
}

func (o Store) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %d(%v)", o.Tag, xreg(d.Rs2), d.Value(), xreg(d.Rs1))
}

func (o FCompute) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %v, %v", o.Tag, freg(d.Rd), freg(d.Rs1), freg(d.Rs2), o.RM)
}

func (o FMinMax) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %v", o.Tag, freg(d.Rd), freg(d.Rs1), freg(d.Rs2))
}

func (o FCompare) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %v", o.Tag, xreg(d.Rd), freg(d.Rs1), freg(d.Rs2))
}

func (o FSqrt) String() string {
	d := o.Data
	return fmt.Sprintf("fsqrt.s %v, %v, %v", freg(d.Rd), freg(d.Rs1), o.RM)
}

func (o FClass) String() string {
	d := o.Data
	return fmt.Sprintf("fclass.s %v, %v", xreg(d.Rd), freg(d.Rs1))
}

func (o OpFused) String() string {
	d := o.Data
	return fmt.Sprintf("%v %v, %v, %v, %v, %v", o.Tag, freg(d.Rd), freg(d.Rs1), freg(d.Rs2), freg(d.Rs3), o.RM)
}
