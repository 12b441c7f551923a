// Package internal holds iterator helpers shared by the ISA packages.
package internal

import (
	"iter"
)

// Concat yields the values of each sequence in turn.
func Concat[T any](seqs ...iter.Seq[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, seq := range seqs {
			for val := range seq {
				if !yield(val) {
					return
				}
			}
		}
	}
}

// Members yields each element of members as interface type I. E must
// implement I.
func Members[I any, E any](members []E) iter.Seq[I] {
	return func(yield func(I) bool) {
		for _, member := range members {
			if !yield(any(member).(I)) {
				return
			}
		}
	}
}

// Map yields fn of each value of seq.
func Map[T any, U any](seq iter.Seq[T], fn func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for val := range seq {
			if !yield(fn(val)) {
				return
			}
		}
	}
}
