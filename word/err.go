package word

import (
	"errors"

	"github.com/ezrec/wordasm/translate"
)

var f = translate.From

var (
	// Table construction errors
	ErrSchema = errors.New(f("schema"))

	// Caller errors
	ErrTypeMismatch  = errors.New(f("type mismatch"))
	ErrWidthMismatch = errors.New(f("width mismatch"))
	ErrOverlap       = errors.New(f("overlapping chunk"))
	ErrRange         = errors.New(f("value out of range"))
	ErrAlignment     = errors.New(f("value misaligned"))
	ErrTagInvalid    = errors.New(f("tag invalid for format"))
	ErrDecode        = errors.New(f("decode"))

	// Invariant violations, only ever raised by panic()
	ErrUnreachable = errors.New(f("unreachable state"))
)

// ErrChunkOverlap is returned when a chunk claims bits already assigned.
type ErrChunkOverlap struct {
	Range Range
	With  Range
}

func (err ErrChunkOverlap) Error() string {
	return f("chunk %v overlaps %v", err.Range, err.With)
}

func (err ErrChunkOverlap) Unwrap() error {
	return ErrOverlap
}

// ErrWidth is returned when a value is not exactly as wide as its range.
type ErrWidth struct {
	Range Range
	Width int
}

func (err ErrWidth) Error() string {
	return f("%d-bit value for %d-bit range %v", err.Width, err.Range.Len(), err.Range)
}

func (err ErrWidth) Unwrap() error {
	return ErrWidthMismatch
}

// ErrValue is returned when a value has bits set at or above its width.
type ErrValue struct {
	Range Range
	Value Vector
}

func (err ErrValue) Error() string {
	return f("value %#x overflows %d-bit range %v", err.Value.Bits, err.Value.Width, err.Range)
}

func (err ErrValue) Unwrap() error {
	return ErrWidthMismatch
}

// ErrBounds indicates a range that does not lie inside the word.
type ErrBounds struct {
	Range Range
	Width int
}

func (err ErrBounds) Error() string {
	return f("range %v outside %d-bit word", err.Range, err.Width)
}

func (err ErrBounds) Unwrap() error {
	return ErrSchema
}

// ErrSchemaField reports a defective field in a format declaration.
type ErrSchemaField struct {
	Format string
	Field  Field
	Err    error
}

func (err ErrSchemaField) Error() string {
	return f("format %v field %v: %v", err.Format, string(err.Field), err.Err)
}

func (err ErrSchemaField) Unwrap() []error {
	return []error{ErrSchema, err.Err}
}

// ErrFieldOverlap reports two fields of one format claiming the same bit.
type ErrFieldOverlap struct {
	Format string
	Field  Field
	Other  Field
}

func (err ErrFieldOverlap) Error() string {
	return f("format %v: field %v overlaps %v", err.Format, string(err.Field), string(err.Other))
}

func (err ErrFieldOverlap) Unwrap() error {
	return ErrSchema
}

// ErrFieldMissing reports a format naming a field absent from the table.
type ErrFieldMissing Field

func (err ErrFieldMissing) Error() string {
	return f("field %v missing", string(err))
}

func (err ErrFieldMissing) Unwrap() error {
	return ErrSchema
}

// ErrPatternConflict reports two operations whose encodings cannot be told apart.
type ErrPatternConflict struct {
	Value any
	Other any
}

func (err ErrPatternConflict) Error() string {
	return f("encoding of %v is ambiguous with %v", err.Value, err.Other)
}

func (err ErrPatternConflict) Unwrap() error {
	return ErrSchema
}

// ErrType is returned when a value is not part of the instruction set.
type ErrType struct {
	Value any
}

func (err ErrType) Error() string {
	return f("%T is not an instruction value", err.Value)
}

func (err ErrType) Unwrap() error {
	return ErrTypeMismatch
}

// ErrTag is returned when a tag is not legal in the enclosing format.
type ErrTag struct {
	Format string
	Tag    any
}

func (err ErrTag) Error() string {
	return f("%v is not valid in %v", err.Tag, err.Format)
}

func (err ErrTag) Unwrap() error {
	return ErrTagInvalid
}

// ErrNoVariant is the panic value for a tagged union with no active member.
type ErrNoVariant struct {
	Union string
}

func (err ErrNoVariant) Error() string {
	return f("%v has no active variant", err.Union)
}

func (err ErrNoVariant) Unwrap() error {
	return ErrUnreachable
}

// ErrImmediate is returned when an immediate value cannot be encoded.
type ErrImmediate struct {
	Value int64
	Err   error
}

func (err ErrImmediate) Error() string {
	return f("immediate %d: %v", err.Value, err.Err)
}

func (err ErrImmediate) Unwrap() error {
	return err.Err
}

// ErrWord is returned when a word does not decode to an instruction.
type ErrWord struct {
	Word Vector
	Err  error
}

func (err ErrWord) Error() string {
	return f("word %v: %v", err.Word.Hex(), err.Err)
}

func (err ErrWord) Unwrap() []error {
	return []error{ErrDecode, err.Err}
}
