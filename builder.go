package numvec

import (
	"github.com/hupe1980/numvec/element"
	"github.com/hupe1980/numvec/storage"
)

// SameAs builds a fresh zero vector of the given length with the same
// element type and backend category as ref. The result is writable, so a
// constant reference builds a sparse result: sparse is the equally
// efficient writable category for structurally-zero data. It panics if
// length is negative.
func SameAs[T element.Number](ref *Vector[T], length int) *Vector[T] {
	mustValidLength(length)
	return sameCategory[T](storage.KindOf(ref.store), length)
}

// SameShapeAs builds a fresh zero vector with the same element type,
// backend category, and length as ref.
func SameShapeAs[T element.Number](ref *Vector[T]) *Vector[T] {
	return SameAs(ref, ref.count)
}

func sameCategory[T element.Number](kind storage.Kind, length int) *Vector[T] {
	switch kind {
	case storage.KindSparse, storage.KindConstant:
		return &Vector[T]{count: length, store: storage.NewSparse[T](length)}
	default:
		return &Vector[T]{count: length, store: storage.NewDense[T](length)}
	}
}
