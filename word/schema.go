package word

import (
	"maps"
	"slices"
)

// Field names a fixed-position sub-range of a word.
type Field string

// FieldTable maps each field to its bit range.
type FieldTable map[Field]Range

// Clone returns a copy of the table, for deriving modified tables.
func (ft FieldTable) Clone() FieldTable {
	return maps.Clone(ft)
}

// Format lists the fields and immediate layout that make up one instruction
// shape.
type Format struct {
	Name   string
	Fields []Field
	Imm    Layout
}

// Schema is the complete static description of an instruction set's word.
type Schema struct {
	Width   int
	Fields  FieldTable
	Formats []Format
}

// Ranges returns the ranges claimed by a format, in declaration order,
// with the immediate placements last.
func (s *Schema) Ranges(format Format) (ranges []Range, names []Field, err error) {
	for _, field := range format.Fields {
		r, ok := s.Fields[field]
		if !ok {
			err = ErrSchemaField{Format: format.Name, Field: field, Err: ErrFieldMissing(field)}
			return
		}
		ranges = append(ranges, r)
		names = append(names, field)
	}

	for _, r := range format.Imm.Physical() {
		ranges = append(ranges, r)
		names = append(names, "imm")
	}

	return
}

// Gaps returns the ranges of a format that are always zero-filled.
func (s *Schema) Gaps(format Format) (gaps []Range, err error) {
	ranges, _, err := s.Ranges(format)
	if err != nil {
		return
	}

	ranges = slices.Clone(ranges)
	slices.SortFunc(ranges, func(a, b Range) int { return a.Lo - b.Lo })

	last := 0
	for _, r := range ranges {
		if r.Lo > last {
			gaps = append(gaps, Range{Lo: last, Hi: r.Lo})
		}
		last = max(last, r.Hi)
	}
	if last < s.Width {
		gaps = append(gaps, Range{Lo: last, Hi: s.Width})
	}

	return
}

// Validate checks every format: each field must exist in the table and lie
// inside the word, no two fields may claim the same bit, and immediate
// layouts must be well formed.
func (s *Schema) Validate() (err error) {
	for name, r := range s.Fields {
		if !r.Within(s.Width) {
			err = ErrSchemaField{Format: "*", Field: name, Err: ErrBounds{Range: r, Width: s.Width}}
			return
		}
	}

	for _, format := range s.Formats {
		err = format.Imm.Validate(s.Width)
		if err != nil {
			err = ErrSchemaField{Format: format.Name, Field: "imm", Err: err}
			return
		}

		var ranges []Range
		var names []Field
		ranges, names, err = s.Ranges(format)
		if err != nil {
			return
		}

		for i := range ranges {
			for j := i + 1; j < len(ranges); j++ {
				if ranges[i].Overlaps(ranges[j]) {
					err = ErrFieldOverlap{Format: format.Name, Field: names[i], Other: names[j]}
					return
				}
			}
		}
	}

	return
}
