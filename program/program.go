package program

import (
	"context"
	"fmt"
	"iter"
	"log"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ezrec/wordasm/word"
)

// WORD_BYTES is the byte size of one instruction word.
const WORD_BYTES = 4

// Opcode is one instruction of a program.
type Opcode struct {
	LineNo int         // Script line that built the instruction, or 0.
	Ip     int         // Byte address of the instruction.
	Inst   any         // Instruction value, in the ISA's own types.
	Word   word.Vector // Encoded word, set by Assemble.
}

// Program is a sequence of instructions for one ISA.
type Program struct {
	Verbose bool // If set, logs each appended and assembled instruction.
	ISA     *ISA
	Opcodes []Opcode
}

// Pc returns the byte address of the next instruction.
func (prog *Program) Pc() int {
	return len(prog.Opcodes) * WORD_BYTES
}

// Append adds an instruction built at script line lineno.
func (prog *Program) Append(lineno int, inst any) {
	op := Opcode{
		LineNo: lineno,
		Ip:     prog.Pc(),
		Inst:   inst,
	}
	if prog.Verbose {
		log.Printf("%d: %#04x %v", lineno, op.Ip, inst)
	}
	prog.Opcodes = append(prog.Opcodes, op)
}

// Assemble encodes every instruction. Instructions are independent, so
// they are encoded in parallel; the first failure cancels the rest.
func (prog *Program) Assemble(ctx context.Context) (err error) {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n := range prog.Opcodes {
		op := &prog.Opcodes[n]
		g.Go(func() (err error) {
			err = ctx.Err()
			if err != nil {
				return
			}

			w, err := prog.ISA.Assemble(op.Inst)
			if err != nil {
				err = ErrOpcode{LineNo: op.LineNo, Ip: op.Ip, Err: err}
				return
			}
			op.Word = w
			return
		})
	}

	err = g.Wait()
	if err != nil {
		return
	}

	if prog.Verbose {
		for _, op := range prog.Opcodes {
			log.Printf("%#04x: %v %v", op.Ip, op.Word.Hex(), op.Inst)
		}
	}

	return
}

// Words yields the byte address and encoded word of each instruction.
func (prog *Program) Words() iter.Seq2[int, word.Vector] {
	return func(yield func(ip int, w word.Vector) bool) {
		for _, op := range prog.Opcodes {
			if !yield(op.Ip, op.Word) {
				return
			}
		}
	}
}

// Disassemble decodes words in parallel, in the order given.
func Disassemble(ctx context.Context, isa *ISA, words []word.Vector) (insts []fmt.Stringer, err error) {
	insts = make([]fmt.Stringer, len(words))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for n, w := range words {
		g.Go(func() (err error) {
			err = ctx.Err()
			if err != nil {
				return
			}

			inst, err := isa.Disassemble(w)
			if err != nil {
				err = ErrOpcode{Ip: n * WORD_BYTES, Err: err}
				return
			}
			insts[n] = inst
			return
		})
	}

	err = g.Wait()
	if err != nil {
		insts = nil
	}

	return
}
