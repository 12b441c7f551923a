package mips

import (
	"fmt"

	"github.com/ezrec/wordasm/word"
)

// Assembler encodes and decodes instructions over one field table.
type Assembler struct {
	fields  word.FieldTable
	schema  *word.Schema
	decoder *word.Decoder
}

// Default is the assembler over FIELD_POS.
var Default = MustNewAssembler(FIELD_POS)

// NewAssembler validates the schema implied by fields, and builds the
// decoder for every operation.
func NewAssembler(fields word.FieldTable) (asm *Assembler, err error) {
	schema := Schema(fields)
	err = schema.Validate()
	if err != nil {
		return
	}

	asm = &Assembler{
		fields: fields.Clone(),
		schema: schema,
	}

	var patterns []word.Pattern
	for _, format := range Prototypes() {
		b := word.NewBuilder(WIDTH)
		err = asm.assembleCodes(b, format)
		if err != nil {
			asm = nil
			return
		}
		bits, mask := b.Pattern()
		patterns = append(patterns, word.Pattern{Bits: bits, Mask: mask, Value: format})
	}

	asm.decoder, err = word.NewDecoder(patterns)
	if err != nil {
		asm = nil
		return
	}

	return
}

// MustNewAssembler is NewAssembler, panicking on a defective table.
func MustNewAssembler(fields word.FieldTable) *Assembler {
	asm, err := NewAssembler(fields)
	if err != nil {
		panic(fmt.Errorf("mips: %w", err))
	}
	return asm
}

// Schema returns the validated schema.
func (asm *Assembler) Schema() *word.Schema {
	return asm.schema
}

// Prototypes returns one zero-data format value per operation.
func Prototypes() (formats []Format) {
	for _, op := range r1Insts {
		formats = append(formats, R1{Op: op})
	}
	for _, op := range r2Insts {
		formats = append(formats, R2{Op: op})
	}
	for _, op := range r3Insts {
		formats = append(formats, R3{Op: op})
	}
	for _, op := range rsInsts {
		formats = append(formats, Rs{Op: op})
	}
	for _, op := range rlmInsts {
		formats = append(formats, Rlm{Op: op})
	}
	for _, op := range i2Insts {
		formats = append(formats, I2{Op: op})
	}
	formats = append(formats, LUI{})

	return
}

// Assemble encodes an instruction, a format, a lone tag or a class into
// a word. Partial values yield a word with only their own fields set.
func (asm *Assembler) Assemble(value any) (w word.Vector, err error) {
	b := word.NewBuilder(WIDTH)
	err = asm.assemble(b, value, true)
	if err != nil {
		return
	}

	w = b.Materialize()
	return
}

// Pattern returns the code bits of a value and the mask of their positions.
func (asm *Assembler) Pattern(value any) (bits, mask uint64, err error) {
	b := word.NewBuilder(WIDTH)
	err = asm.assemble(b, value, false)
	if err != nil {
		return
	}

	bits, mask = b.Pattern()
	return
}

func (asm *Assembler) assemble(b *word.Builder, value any, data bool) (err error) {
	switch v := value.(type) {
	case Inst:
		format, ok := word.Resolve(v).(Format)
		if !ok {
			panic(fmt.Errorf("mips: %T resolved to %T: %w", v, word.Resolve(v), word.ErrUnreachable))
		}
		return asm.assembleFormat(b, format, data)
	case Format:
		return asm.assembleFormat(b, v, data)
	case Tag:
		return asm.assembleTag(b, v)
	case Class:
		code, ok := OP[v]
		if !ok {
			return
		}
		return asm.addField(b, FIELD_OP, code)
	}

	err = word.ErrType{Value: value}
	return
}

func (asm *Assembler) assembleFormat(b *word.Builder, format Format, data bool) (err error) {
	err = asm.assembleCodes(b, format)
	if err != nil {
		return
	}

	if !data {
		return
	}

	for _, opnd := range format.operands() {
		if opnd.field == FIELD_IMM {
			err = CLASS_SHAPE[format.Class()].imm.Scramble(b, opnd.value)
		} else {
			err = b.Add(asm.fields[opnd.field], opnd.value)
		}
		if err != nil {
			err = fmt.Errorf("%v %v: %w", format.Class(), opnd.field, err)
			return
		}
	}

	return
}

// assembleCodes emits every code field of a format. A missing code means
// the tag is not a member of the format.
func (asm *Assembler) assembleCodes(b *word.Builder, format Format) (err error) {
	class := format.Class()
	sh, ok := CLASS_SHAPE[class]
	if !ok {
		panic(fmt.Errorf("mips: class %v has no shape: %w", class, word.ErrUnreachable))
	}

	var key any = class
	if tag, ok := format.tagOf(); ok {
		key = tag
	}

	for _, field := range sh.codes {
		code, found := CODE_TABLE[field][key]
		if !found && field == FIELD_OP {
			code, found = OP[class]
		}
		if !found {
			err = word.ErrTag{Format: class.String(), Tag: key}
			return
		}

		err = asm.addField(b, field, code)
		if err != nil {
			return
		}
	}

	return
}

func (asm *Assembler) assembleTag(b *word.Builder, tag Tag) (err error) {
	for _, field := range []word.Field{FIELD_OP, FIELD_FUNCT, FIELD_SA, FIELD_RS} {
		code, ok := CODE_TABLE[field][tag]
		if !ok {
			continue
		}
		err = asm.addField(b, field, code)
		if err != nil {
			return
		}
	}

	return
}

func (asm *Assembler) addField(b *word.Builder, field word.Field, code uint64) (err error) {
	r := asm.fields[field]
	return b.Add(r, word.New(r.Len(), code))
}

// Disassemble decodes a word into the instruction that assembles to it.
func (asm *Assembler) Disassemble(w word.Vector) (inst Inst, err error) {
	if w.Width != WIDTH {
		err = word.ErrWord{Word: w, Err: word.ErrWidth{Range: word.Range{Lo: 0, Hi: WIDTH}, Width: w.Width}}
		return
	}

	proto, ok := asm.decoder.Lookup(w.Bits)
	if !ok {
		err = word.ErrWord{Word: w, Err: ErrUnknown}
		return
	}

	format := proto.(Format)
	imm := CLASS_SHAPE[format.Class()].imm
	format = format.withOperands(func(field word.Field) word.Vector {
		if field == FIELD_IMM {
			return imm.Unscramble(w)
		}
		return w.Slice(asm.fields[field])
	})
	inst = Inst{Format: format}

	check, err := asm.Assemble(inst)
	if err != nil {
		err = word.ErrWord{Word: w, Err: err}
		return
	}
	if check != w {
		err = word.ErrWord{Word: w, Err: ErrReserved}
		return
	}

	return
}

// Extract returns the bits of a named field of a word. FIELD_IMM is the
// stored immediate, unscrambled by the layout of the word's operation.
func (asm *Assembler) Extract(w word.Vector, field word.Field) (v word.Vector, err error) {
	if field == FIELD_IMM {
		return asm.extractImm(w)
	}

	r, ok := asm.fields[field]
	if !ok {
		err = word.ErrFieldMissing(field)
		return
	}
	if !r.Within(w.Width) {
		err = word.ErrBounds{Range: r, Width: w.Width}
		return
	}

	v = w.Slice(r)
	return
}

func (asm *Assembler) extractImm(w word.Vector) (v word.Vector, err error) {
	if w.Width != WIDTH {
		err = word.ErrWord{Word: w, Err: word.ErrWidth{Range: word.Range{Lo: 0, Hi: WIDTH}, Width: w.Width}}
		return
	}

	proto, ok := asm.decoder.Lookup(w.Bits)
	if !ok {
		err = word.ErrWord{Word: w, Err: ErrUnknown}
		return
	}

	layout := CLASS_SHAPE[proto.(Format).Class()].imm
	if layout.Width() == 0 {
		err = word.ErrFieldMissing(FIELD_IMM)
		return
	}

	v = layout.Unscramble(w)
	return
}

// Match returns true if the word carries every code of the value.
func (asm *Assembler) Match(w word.Vector, value any) bool {
	if w.Width != WIDTH {
		return false
	}

	bits, mask, err := asm.Pattern(value)
	if err != nil || mask == 0 {
		return false
	}

	return w.Bits&mask == bits
}

// IsValid returns true if the word is the encoding of some instruction.
func (asm *Assembler) IsValid(w word.Vector) bool {
	_, err := asm.Disassemble(w)
	return err == nil
}

// Assemble encodes a value with the Default assembler.
func Assemble(value any) (word.Vector, error) {
	return Default.Assemble(value)
}

// Disassemble decodes a word with the Default assembler.
func Disassemble(w word.Vector) (Inst, error) {
	return Default.Disassemble(w)
}

// Extract returns a field of a word, placed by FIELD_POS.
func Extract(w word.Vector, field word.Field) (word.Vector, error) {
	return Default.Extract(w, field)
}

// Match tests a word against the codes of a value.
func Match(w word.Vector, value any) bool {
	return Default.Match(w, value)
}

// IsValid returns true if the word decodes.
func IsValid(w word.Vector) bool {
	return Default.IsValid(w)
}
