package numvec

import (
	"github.com/hupe1980/numvec/element"
	"github.com/hupe1980/numvec/storage"
)

// MapInplace applies f to every element, writing results back into this
// vector. The backing storage already reflects its own zero structure, so
// the destination is trusted as-is.
func (v *Vector[T]) MapInplace(f func(T) T, zeros ZeroHandling) {
	v.store.MapTo(v.store, f, zeros, storage.AssumeZeros)
}

// MapIndexedInplace applies f(index, element) to every element in place.
func (v *Vector[T]) MapIndexedInplace(f func(int, T) T, zeros ZeroHandling) {
	v.store.MapIndexedTo(v.store, f, zeros, storage.AssumeZeros)
}

// Map returns a new vector holding f applied to every element. The result
// uses a backend of the same category and is freshly built, so zero-valued
// writes are omitted.
func (v *Vector[T]) Map(f func(T) T, zeros ZeroHandling) *Vector[T] {
	result := SameShapeAs(v)
	v.store.MapTo(result.store, f, zeros, storage.AssumeZeros)
	return result
}

// MapIndexed returns a new vector holding f(index, element) for every
// element.
func (v *Vector[T]) MapIndexed(f func(int, T) T, zeros ZeroHandling) *Vector[T] {
	result := SameShapeAs(v)
	v.store.MapIndexedTo(result.store, f, zeros, storage.AssumeZeros)
	return result
}

// MapTo applies f to every element, writing results into result, which
// must have the same length and may hold arbitrary prior data. With
// IncludeZeros every position is written anyway, so the destination is
// accepted as-is; with AllowSkipZeros it is cleared first to avoid stale
// non-zero leftovers where the skip path writes nothing.
func (v *Vector[T]) MapTo(result *Vector[T], f func(T) T, zeros ZeroHandling) error {
	if result == nil {
		return ErrNilVector
	}
	if result.count != v.count {
		return &ErrLengthMismatch{Expected: v.count, Actual: result.count}
	}
	existing := storage.AssumeZeros
	if zeros == AllowSkipZeros {
		existing = storage.Clear
	}
	v.store.MapTo(result.store, f, zeros, existing)
	return nil
}

// MapIndexedTo is MapTo for index-aware functions.
func (v *Vector[T]) MapIndexedTo(result *Vector[T], f func(int, T) T, zeros ZeroHandling) error {
	if result == nil {
		return ErrNilVector
	}
	if result.count != v.count {
		return &ErrLengthMismatch{Expected: v.count, Actual: result.count}
	}
	existing := storage.AssumeZeros
	if zeros == AllowSkipZeros {
		existing = storage.Clear
	}
	v.store.MapIndexedTo(result.store, f, zeros, existing)
	return nil
}

// MapConvert returns a new vector of element type U holding f applied to
// every element of v. The result keeps v's backend category.
func MapConvert[T, U element.Number](v *Vector[T], f func(T) U, zeros ZeroHandling) *Vector[U] {
	result := sameCategory[U](storage.KindOf(v.store), v.count)
	storage.MapConvertTo(v.store, result.store, f, zeros, storage.AssumeZeros)
	return result
}

// MapIndexedConvert is MapConvert for index-aware functions.
func MapIndexedConvert[T, U element.Number](v *Vector[T], f func(int, T) U, zeros ZeroHandling) *Vector[U] {
	result := sameCategory[U](storage.KindOf(v.store), v.count)
	storage.MapIndexedConvertTo(v.store, result.store, f, zeros, storage.AssumeZeros)
	return result
}
