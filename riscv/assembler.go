package riscv

import (
	"fmt"
	"slices"

	"github.com/ezrec/wordasm/word"
)

// Assembler encodes and decodes instructions over one field table.
//
// An Assembler is immutable once built, and may be shared between goroutines.
type Assembler struct {
	fields  word.FieldTable
	schema  *word.Schema
	decoder *word.Decoder
}

// Default is the assembler over FIELD_POS.
var Default = MustNewAssembler(FIELD_POS)

// NewAssembler validates the schema implied by fields, and builds the
// decoder for every legal operation.
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
	for _, op := range Prototypes() {
		b := word.NewBuilder(WIDTH)
		err = asm.assembleCodes(b, op)
		if err != nil {
			asm = nil
			return
		}
		bits, mask := b.Pattern()
		patterns = append(patterns, word.Pattern{Bits: bits, Mask: mask, Value: op})
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
		panic(fmt.Errorf("riscv: %w", err))
	}
	return asm
}

// Schema returns the validated schema.
func (asm *Assembler) Schema() *word.Schema {
	return asm.schema
}

// Prototypes returns one zero-data operation for every legal combination of
// kind, tag and rounding mode.
func Prototypes() (ops []Op) {
	for _, tag := range arithInsts {
		ops = append(ops, OP{Tag: AluInst{Op: tag}})
	}
	for _, tag := range shiftInsts {
		ops = append(ops, OP{Tag: AluInst{Op: tag}})
	}
	for _, tag := range arithInsts {
		if !slices.Contains(EXCLUDED[KIND_OP_IMM_ARITH], Tag(tag)) {
			ops = append(ops, OpImmArith{Tag: tag})
		}
	}
	for _, tag := range shiftInsts {
		ops = append(ops, OpImmShift{Tag: tag})
	}
	ops = append(ops, LUI{}, AUIPC{}, JAL{}, JALR{})
	for _, tag := range branchInsts {
		ops = append(ops, Branch{Tag: tag})
	}
	for _, tag := range loadInsts {
		ops = append(ops, Load{Tag: tag})
	}
	for _, tag := range storeInsts {
		ops = append(ops, Store{Tag: tag})
	}
	for _, rm := range roundingModes {
		for _, tag := range fpComputeInsts {
			ops = append(ops, FCompute{Tag: tag, RM: rm})
		}
		ops = append(ops, FSqrt{RM: rm})
		for _, tag := range fpFusedInsts {
			ops = append(ops, OpFused{Tag: tag, RM: rm})
		}
	}
	for _, tag := range fpMinMaxInsts {
		ops = append(ops, FMinMax{Tag: tag})
	}
	for _, tag := range fpCompareInsts {
		ops = append(ops, FCompare{Tag: tag})
	}
	ops = append(ops, FClass{})

	return
}

// Assemble encodes an instruction value into a word.
//
// The value may be a complete Inst, any union or operation inside it, or
// a lone tag, rounding mode, class or data layout. Partial values yield a
// word with only their own fields set.
func (asm *Assembler) Assemble(value any) (w word.Vector, err error) {
	b := word.NewBuilder(WIDTH)
	err = asm.assemble(b, value, true)
	if err != nil {
		return
	}

	w = b.Materialize()
	return
}

// Pattern returns the code bits of a value, and the mask of their
// positions. Data is ignored.
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
	case Inst, OpImm, OpFP:
		op, ok := word.Resolve(v).(Op)
		if !ok {
			panic(fmt.Errorf("riscv: %T resolved to %T: %w", v, word.Resolve(v), word.ErrUnreachable))
		}
		return asm.assembleOp(b, op, data)
	case Op:
		return asm.assembleOp(b, v, data)
	case AluInst:
		return asm.assembleTag(b, word.Resolve(v))
	case Tag:
		return asm.assembleTag(b, v)
	case RM:
		return asm.assembleCode(b, FIELD_FUNCT3, v)
	case Class:
		return asm.assembleCode(b, FIELD_OPCODE, v)
	case Data:
		if !data {
			return
		}
		return asm.assembleData(b, v)
	}

	err = word.ErrType{Value: value}
	return
}

// assembleOp emits the codes, then the data, of an operation.
func (asm *Assembler) assembleOp(b *word.Builder, op Op, data bool) (err error) {
	err = asm.assembleCodes(b, op)
	if err != nil {
		return
	}

	if data {
		err = asm.assembleData(b, op.Operands())
	}

	return
}

// key returns the code table key of an operation: its resolved tag, or
// its kind when it has none.
func key(op Op) (key any) {
	tag, ok := op.tagOf()
	if !ok {
		return op.Kind()
	}
	return word.Resolve(tag)
}

// assembleCodes emits every code field of an operation's kind. Each one
// is required: a missing code means the tag is not legal in the kind.
func (asm *Assembler) assembleCodes(b *word.Builder, op Op) (err error) {
	kind := op.Kind()
	sh, ok := KIND_SHAPE[kind]
	if !ok {
		panic(fmt.Errorf("riscv: kind %v has no shape: %w", kind, word.ErrUnreachable))
	}

	k := key(op)
	if tag, ok := k.(Tag); ok && slices.Contains(EXCLUDED[kind], tag) {
		err = word.ErrTag{Format: kind.String(), Tag: k}
		return
	}

	for _, field := range sh.codes {
		var code uint64
		var found bool
		switch field {
		case FIELD_OPCODE:
			code, found = OPCODE[op.Class()]
			if !found {
				code, found = OPCODE[k]
			}
		case FIELD_FUNCT3:
			if r, ok := op.(rounded); ok {
				code, found = FUNCT3[r.roundingMode()]
			} else {
				code, found = FUNCT3[k]
			}
		default:
			code, found = CODE_TABLE[field][k]
		}
		if !found {
			err = word.ErrTag{Format: kind.String(), Tag: k}
			return
		}

		err = asm.addField(b, field, code)
		if err != nil {
			return
		}
	}

	return
}

// assembleTag emits whichever codes a lone tag has.
func (asm *Assembler) assembleTag(b *word.Builder, tag any) (err error) {
	for _, field := range []word.Field{FIELD_OPCODE, FIELD_FUNCT3, FIELD_FUNCT7, FIELD_FMT} {
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

// assembleCode emits a single code, if the value has one.
func (asm *Assembler) assembleCode(b *word.Builder, field word.Field, value any) (err error) {
	code, ok := CODE_TABLE[field][value]
	if !ok {
		return
	}

	return asm.addField(b, field, code)
}

func (asm *Assembler) addField(b *word.Builder, field word.Field, code uint64) (err error) {
	r := asm.fields[field]
	return b.Add(r, word.New(r.Len(), code))
}

// assembleData emits the registers and immediate of a data layout.
func (asm *Assembler) assembleData(b *word.Builder, data Data) (err error) {
	for _, opnd := range data.operands() {
		if opnd.field == FIELD_IMM {
			err = IMM_LAYOUT[data.DataKind()].Scramble(b, opnd.value)
		} else {
			err = b.Add(asm.fields[opnd.field], opnd.value)
		}
		if err != nil {
			err = fmt.Errorf("%v %v: %w", data.DataKind(), opnd.field, err)
			return
		}
	}

	return
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

	op := proto.(Op)
	op = op.withData(asm.decodeData(KIND_SHAPE[op.Kind()].data, w))
	inst = op.Inst()

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

// decodeData extracts a data layout from a word.
func (asm *Assembler) decodeData(kind DataKind, w word.Vector) Data {
	reg := func(field word.Field) word.Vector {
		return w.Slice(asm.fields[field])
	}
	imm := IMM_LAYOUT[kind].Unscramble(w)

	switch kind {
	case DATA_R:
		return R{Rd: reg(FIELD_RD), Rs1: reg(FIELD_RS1), Rs2: reg(FIELD_RS2)}
	case DATA_I:
		return I{Rd: reg(FIELD_RD), Rs1: reg(FIELD_RS1), Imm: imm}
	case DATA_IS:
		return Is{Rd: reg(FIELD_RD), Rs1: reg(FIELD_RS1), Shamt: imm}
	case DATA_S:
		return S{Rs1: reg(FIELD_RS1), Rs2: reg(FIELD_RS2), Imm: imm}
	case DATA_U:
		return U{Rd: reg(FIELD_RD), Imm: imm}
	case DATA_B:
		return B{Rs1: reg(FIELD_RS1), Rs2: reg(FIELD_RS2), Imm: imm}
	case DATA_J:
		return J{Rd: reg(FIELD_RD), Imm: imm}
	case DATA_R4:
		return R4{Rd: reg(FIELD_RD), Rs1: reg(FIELD_RS1), Rs2: reg(FIELD_RS2), Rs3: reg(FIELD_RS3)}
	case DATA_R2:
		return R2{Rd: reg(FIELD_RD), Rs1: reg(FIELD_RS1)}
	}

	panic(fmt.Errorf("riscv: data kind %v: %w", kind, word.ErrUnreachable))
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

	layout, ok := IMM_LAYOUT[KIND_SHAPE[proto.(Op).Kind()].data]
	if !ok {
		err = word.ErrFieldMissing(FIELD_IMM)
		return
	}

	v = layout.Unscramble(w)
	return
}

// Match returns true if the word carries every code of the value.
// Data fields are not compared. A value with no codes never matches.
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
