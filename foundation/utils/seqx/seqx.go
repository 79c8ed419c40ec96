// File: seqx.go
// Title: Sequence Shaping
// Description: Lazy paging, batching, pass-through actions, flattening and
//              indexing over iter.Seq, plus the primitives they build on.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-13
// Modified: 2026-10-13
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation

package seqx

import (
	"iter"
	"math"

	"github.com/msto63/quickx/foundation/core/errors"
)

// ===============================
// Shaping
// ===============================

// IsNullOrEmpty reports whether seq is nil or yields nothing. At most one
// element is pulled.
func IsNullOrEmpty[T any](seq iter.Seq[T]) bool {
	if seq == nil {
		return true
	}
	for range seq {
		return false
	}
	return true
}

// Page returns the pageSize elements of 1-based page pageNumber. Page 0
// is accepted and yields the same elements as page 1.
func Page[T any](seq iter.Seq[T], pageNumber, pageSize int) (iter.Seq[T], error) {
	if seq == nil {
		return nil, errors.SeqxNilArgument("Page", "seq")
	}
	if pageNumber < 0 {
		return nil, errors.SeqxOutOfRange("Page", "pageNumber", pageNumber, ">= 0")
	}
	if pageSize <= 0 {
		return nil, errors.SeqxOutOfRange("Page", "pageSize", pageSize, "> 0")
	}

	skip := 0
	if pageNumber > 1 {
		if pageNumber-1 > math.MaxInt/pageSize {
			return empty[T], nil
		}
		skip = (pageNumber - 1) * pageSize
	}
	return Take(Skip(seq, skip), pageSize), nil
}

// Batch groups seq into consecutive slices of size elements; the last one
// may be shorter. Every batch is a fresh slice.
func Batch[T any](seq iter.Seq[T], size int) (iter.Seq[[]T], error) {
	if seq == nil {
		return nil, errors.SeqxNilArgument("Batch", "seq")
	}
	if size <= 0 {
		return nil, errors.SeqxOutOfRange("Batch", "size", size, "> 0")
	}

	return func(yield func([]T) bool) {
		var batch []T
		for v := range seq {
			if batch == nil {
				batch = make([]T, 0, size)
			}
			batch = append(batch, v)
			if len(batch) == size {
				if !yield(batch) {
					return
				}
				batch = nil
			}
		}
		if len(batch) > 0 {
			yield(batch)
		}
	}, nil
}

// ForEach passes seq through unchanged, calling action once for each
// element as it is pulled
func ForEach[T any](seq iter.Seq[T], action func(T)) (iter.Seq[T], error) {
	if seq == nil {
		return nil, errors.SeqxNilArgument("ForEach", "seq")
	}
	if action == nil {
		return nil, errors.SeqxNilArgument("ForEach", "action")
	}

	return func(yield func(T) bool) {
		for v := range seq {
			action(v)
			if !yield(v) {
				return
			}
		}
	}, nil
}

// Flatten concatenates the inner sequences in order. A nil inner sequence
// contributes nothing.
func Flatten[T any](seqs iter.Seq[iter.Seq[T]]) (iter.Seq[T], error) {
	if seqs == nil {
		return nil, errors.SeqxNilArgument("Flatten", "seqs")
	}

	return func(yield func(T) bool) {
		for inner := range seqs {
			if inner == nil {
				continue
			}
			for v := range inner {
				if !yield(v) {
					return
				}
			}
		}
	}, nil
}

// WithIndex pairs every element with its zero-based position
func WithIndex[T any](seq iter.Seq[T]) (iter.Seq2[int, T], error) {
	if seq == nil {
		return nil, errors.SeqxNilArgument("WithIndex", "seq")
	}

	return func(yield func(int, T) bool) {
		i := 0
		for v := range seq {
			if !yield(i, v) {
				return
			}
			i++
		}
	}, nil
}

// ===============================
// Primitives
// ===============================

func empty[T any](func(T) bool) {}

// FromSlice yields the elements of s in order
func FromSlice[T any](s []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range s {
			if !yield(v) {
				return
			}
		}
	}
}

// Skip drops the first n elements
func Skip[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if seq == nil {
		return empty[T]
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if i < n {
				i++
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// Take yields at most n elements and stops pulling after the last one
func Take[T any](seq iter.Seq[T], n int) iter.Seq[T] {
	if seq == nil || n <= 0 {
		return empty[T]
	}
	return func(yield func(T) bool) {
		i := 0
		for v := range seq {
			if !yield(v) {
				return
			}
			i++
			if i == n {
				return
			}
		}
	}
}

// Filter yields the elements for which keep returns true
func Filter[T any](seq iter.Seq[T], keep func(T) bool) iter.Seq[T] {
	if seq == nil {
		return empty[T]
	}
	return func(yield func(T) bool) {
		for v := range seq {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Map yields fn applied to every element
func Map[T, R any](seq iter.Seq[T], fn func(T) R) iter.Seq[R] {
	if seq == nil {
		return empty[R]
	}
	return func(yield func(R) bool) {
		for v := range seq {
			if !yield(fn(v)) {
				return
			}
		}
	}
}
