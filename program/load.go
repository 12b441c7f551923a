package program

import (
	"fmt"
	"log"
	"strings"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

const localProgram = "wordasm.program"

// Starlark reserved words that collide with mnemonics.
var reserved = map[string]bool{
	"and": true,
	"or":  true,
	"not": true,
	"in":  true,
	"is":  true,
}

// BuiltinName returns the Starlark name of a mnemonic: '.' becomes '_',
// and reserved words gain a trailing '_'.
func BuiltinName(mnemonic string) (name string) {
	name = strings.ReplaceAll(mnemonic, ".", "_")
	if reserved[name] {
		name += "_"
	}
	return
}

// Builtins returns the predeclared Starlark names for the ISA: one
// builtin per mnemonic, 'pc' and 'WIDTH'.
func (isa *ISA) Builtins() (dict starlark.StringDict) {
	dict = starlark.StringDict{
		"pc":    starlark.NewBuiltin("pc", builtinPc),
		"WIDTH": starlark.MakeInt(isa.Width),
	}

	for mnemonic, m := range isa.Mnemonics {
		name := BuiltinName(mnemonic)
		dict[name] = starlark.NewBuiltin(name, m.builtin)
	}

	return
}

func threadProgram(thread *starlark.Thread) (prog *Program, err error) {
	prog, ok := thread.Local(localProgram).(*Program)
	if !ok {
		err = ErrNoProgram
	}
	return
}

func builtinPc(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	err = starlark.UnpackArgs(fn.Name(), args, kwargs)
	if err != nil {
		return
	}

	prog, err := threadProgram(thread)
	if err != nil {
		return
	}

	v = starlark.MakeInt(prog.Pc())
	return
}

// builtin appends the instruction made from its arguments to the thread's
// program, tagged with the calling line.
func (m Mnemonic) builtin(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (v starlark.Value, err error) {
	prog, err := threadProgram(thread)
	if err != nil {
		return
	}

	vals := make([]int, len(m.Params))
	var rm string

	pairs := make([]any, 0, 2*len(m.Params)+2)
	for n, param := range m.Params {
		pairs = append(pairs, param, &vals[n])
	}
	if m.Rounded {
		pairs = append(pairs, "rm?", &rm)
	}

	err = starlark.UnpackArgs(fn.Name(), args, kwargs, pairs...)
	if err != nil {
		return
	}

	inst, err := m.Make(vals, rm)
	if err != nil {
		err = fmt.Errorf("%v: %w", fn.Name(), err)
		return
	}

	prog.Append(int(thread.CallFrame(1).Pos.Line), inst)

	v = starlark.None
	return
}

// Load runs a Starlark script that builds the program's instructions. src
// is as for starlark.ExecFile: nil reads filename.
func (prog *Program) Load(filename string, src any) (err error) {
	thread := &starlark.Thread{
		Name: filename,
		Print: func(_ *starlark.Thread, msg string) {
			log.Print(msg)
		},
	}
	thread.SetLocal(localProgram, prog)

	if prog.Verbose {
		log.Printf("%v: loading %v program", filename, prog.ISA.Name)
	}

	opts := syntax.FileOptions{}
	_, err = starlark.ExecFileOptions(&opts, thread, filename, src, prog.ISA.Builtins())
	return
}
