package mips

import (
	"errors"

	"github.com/ezrec/wordasm/translate"
)

var f = translate.From

var (
	ErrUnknown  = errors.New(f("no operation matches"))
	ErrReserved = errors.New(f("reserved bits set"))
	ErrRegister = errors.New(f("register index out of range"))
)
