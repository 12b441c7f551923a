package word

import (
	"math/bits"
	"slices"
)

// Pattern is the identifying code bits of one operation.
type Pattern struct {
	Bits  uint64 // Code bits, only meaningful under Mask.
	Mask  uint64 // Positions of the code bits.
	Value any    // Prototype returned on a match.
}

// Matches returns true if the word carries the pattern's code bits.
func (p Pattern) Matches(word uint64) bool {
	return word&p.Mask == p.Bits
}

// conflicts returns true if some word could match both patterns without one
// being strictly more specific than the other.
func (p Pattern) conflicts(o Pattern) bool {
	common := p.Mask & o.Mask
	if p.Bits&common != o.Bits&common {
		return false
	}
	if p.Mask == o.Mask {
		return true
	}
	union := p.Mask | o.Mask
	return union != p.Mask && union != o.Mask
}

// Decoder selects the most specific Pattern matching a word.
type Decoder struct {
	patterns []Pattern // Most specific first.
}

// NewDecoder builds a decoder, rejecting ambiguous pattern sets.
func NewDecoder(patterns []Pattern) (dec *Decoder, err error) {
	for i := range patterns {
		for j := i + 1; j < len(patterns); j++ {
			if patterns[i].conflicts(patterns[j]) {
				err = ErrPatternConflict{Value: patterns[i].Value, Other: patterns[j].Value}
				return
			}
		}
	}

	sorted := slices.Clone(patterns)
	slices.SortStableFunc(sorted, func(a, b Pattern) int {
		return bits.OnesCount64(b.Mask) - bits.OnesCount64(a.Mask)
	})

	dec = &Decoder{patterns: sorted}
	return
}

// Lookup returns the prototype of the most specific matching pattern.
func (dec *Decoder) Lookup(word uint64) (value any, ok bool) {
	for _, p := range dec.patterns {
		if p.Matches(word) {
			return p.Value, true
		}
	}

	return
}

// Len returns the number of patterns.
func (dec *Decoder) Len() int {
	return len(dec.patterns)
}
