package program

import (
	"errors"

	"github.com/ezrec/wordasm/translate"
)

var f = translate.From

var (
	ErrTruncated  = errors.New(f("truncated word"))
	ErrTagUncoded = errors.New(f("tag has no code"))
	ErrNoProgram  = errors.New(f("builtin called outside of a program"))
)

type ErrISAUnknown string

func (err ErrISAUnknown) Error() string {
	return f("isa '%v' unknown", string(err))
}

type ErrFormatUnknown string

func (err ErrFormatUnknown) Error() string {
	return f("format '%v' unknown", string(err))
}

type ErrParseWord struct {
	LineNo int
	Text   string
}

func (err ErrParseWord) Error() string {
	return f("line %d '%v' is not a word", err.LineNo, err.Text)
}

// ErrOpcode locates a failed instruction.
type ErrOpcode struct {
	LineNo int
	Ip     int
	Err    error
}

func (err ErrOpcode) Error() string {
	if err.LineNo == 0 {
		return f("%#04x: %v", err.Ip, err.Err)
	}
	return f("line %d %#04x: %v", err.LineNo, err.Ip, err.Err)
}

func (err ErrOpcode) Unwrap() error {
	return err.Err
}
