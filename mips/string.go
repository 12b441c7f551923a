package mips

import (
	"fmt"

	"github.com/ezrec/wordasm/word"
)

func reg(v word.Vector) string {
	return fmt.Sprintf("$%d", v.Uint())
}

func (inst Inst) String() string {
	if inst.Format == nil {
		return "<nil>"
	}
	return fmt.Sprint(inst.Format)
}

func (i R1) String() string {
	return fmt.Sprintf("%v %v", i.Op, reg(i.Rd))
}

func (i R2) String() string {
	return fmt.Sprintf("%v %v, %v", i.Op, reg(i.Rd), reg(i.Rs))
}

func (i R3) String() string {
	return fmt.Sprintf("%v %v, %v, %v", i.Op, reg(i.Rd), reg(i.Rs), reg(i.Rt))
}

func (i Rs) String() string {
	return fmt.Sprintf("%v %v, %v, %d", i.Op, reg(i.Rd), reg(i.Rs), i.Sa.Uint())
}

func (i Rlm) String() string {
	return fmt.Sprintf("%v %v, %v, %d, %d", i.Op, reg(i.Rd), reg(i.Rs), i.Lb.Uint(), i.Mb.Uint())
}

func (i I2) String() string {
	return fmt.Sprintf("%v %v, %v, %d", i.Op, reg(i.Rd), reg(i.Rs), i.Value())
}

func (i LUI) String() string {
	return fmt.Sprintf("lui %v, %#x", reg(i.Rd), i.Im.Uint())
}
