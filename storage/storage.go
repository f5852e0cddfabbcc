package storage

import (
	"iter"

	"github.com/hupe1980/numvec/element"
)

// Storage is the contract every backing representation implements.
//
// All index and range parameters are unchecked: callers (the container
// facade, or internal loops that already validated their window) are
// responsible for staying within [0, Length). Destinations of copies and
// maps must have the same Length as the source unless a sub-range variant
// is used.
type Storage[T element.Number] interface {
	// Length returns the number of addressable elements.
	Length() int

	// At returns the element at index i. Unchecked.
	At(i int) T

	// SetAt replaces the element at index i. Unchecked.
	SetAt(i int, v T)

	// Clear resets every element to zero.
	Clear()

	// ClearRange resets count elements starting at start to zero.
	ClearRange(start, count int)

	// CopyTo copies every element, in index order, into a same-length
	// destination of possibly different kind. With AssumeZeros the copy may
	// skip writing zero-valued source elements.
	CopyTo(dst Storage[T], existing ExistingData)

	// CopySubRangeTo copies count elements starting at srcStart into dst
	// starting at dstStart. Safe when dst is the receiver and the windows
	// overlap.
	CopySubRangeTo(dst Storage[T], srcStart, dstStart, count int, existing ExistingData)

	// Elements enumerates every element in ascending index order, zeros
	// included. The sequence is finite and restartable.
	Elements() iter.Seq[T]

	// ElementsIndexed is Elements with each element paired with its index.
	ElementsIndexed() iter.Seq2[int, T]

	// NonZeroElements enumerates elements in ascending index order; a
	// backend is permitted, not required, to omit exact zeros.
	NonZeroElements() iter.Seq[T]

	// NonZeroElementsIndexed is NonZeroElements with indices.
	NonZeroElementsIndexed() iter.Seq2[int, T]

	// MapTo writes f(element) for every element into a same-length dst.
	// With AllowSkipZeros the backend may assume f(0) == 0 and elide
	// structurally-absent entries. Safe when dst is the receiver.
	MapTo(dst Storage[T], f func(T) T, zeros ZeroHandling, existing ExistingData)

	// MapIndexedTo is MapTo for index-aware functions. With AllowSkipZeros
	// the backend may assume f(i, 0) == 0 for every index i.
	MapIndexedTo(dst Storage[T], f func(int, T) T, zeros ZeroHandling, existing ExistingData)
}

// Kind identifies a backing representation category.
type Kind uint8

const (
	// KindDense is contiguous per-element storage.
	KindDense Kind = iota
	// KindSparse stores non-zero entries only.
	KindSparse
	// KindConstant stores a single shared value.
	KindConstant
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindDense:
		return "dense"
	case KindSparse:
		return "sparse"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// KindOf returns the representation category of s.
func KindOf[T element.Number](s Storage[T]) Kind {
	switch s.(type) {
	case *Sparse[T]:
		return KindSparse
	case *Constant[T]:
		return KindConstant
	default:
		return KindDense
	}
}
