// Package word implements the instruction-set independent encoding algebra
// used by the wordasm assemblers.
//
// A machine instruction is a fixed-width Vector. Each named Field of an
// instruction set occupies a half-open Range of bit positions, recorded in a
// FieldTable. Immediates that are split across the word are described by a
// Layout, which maps logical sub-ranges of the immediate onto physical ranges
// of the word and back.
//
// Words are built by a Builder, the interval allocator: chunks are added one
// range at a time, overlapping or mis-sized chunks are rejected, and any bits
// left unset are zero-filled when the word is materialized.
//
// All tables are immutable once validated by a Schema, so encoders built on
// them may be shared freely between goroutines.
package word
