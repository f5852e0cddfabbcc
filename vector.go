package numvec

import (
	"iter"

	"github.com/hupe1980/numvec/element"
	"github.com/hupe1980/numvec/matrix"
	"github.com/hupe1980/numvec/storage"
)

// ZeroHandling selects whether zero-preserving transforms may skip
// structurally-zero entries. See the storage package for the contract.
type ZeroHandling = storage.ZeroHandling

const (
	// IncludeZeros forces transforms to visit every element.
	IncludeZeros = storage.IncludeZeros
	// AllowSkipZeros lets backends elide structurally-zero entries; the
	// caller asserts the transform maps zero to zero.
	AllowSkipZeros = storage.AllowSkipZeros
)

// Vector is a generic one-dimensional numeric container. It exclusively
// owns its backing storage: cloning and every container-producing operation
// deep-copies, so two live vectors never alias.
//
// The zero Vector value is not usable; create vectors with New, NewSparse,
// NewConstant, NewFromSlice, or FromStorage.
type Vector[T element.Number] struct {
	count int
	store storage.Storage[T]
}

// New creates a dense zero vector of the given length. It panics if length
// is negative.
func New[T element.Number](length int) *Vector[T] {
	mustValidLength(length)
	return &Vector[T]{count: length, store: storage.NewDense[T](length)}
}

// NewSparse creates a sparse zero vector of the given length. It panics if
// length is negative.
func NewSparse[T element.Number](length int) *Vector[T] {
	mustValidLength(length)
	return &Vector[T]{count: length, store: storage.NewSparse[T](length)}
}

// NewConstant creates a vector whose every element reads as value, with no
// per-element storage. Constant-backed vectors are read-only with respect
// to per-element mutation; copy into a dense or sparse vector to mutate.
// It panics if length is negative.
func NewConstant[T element.Number](length int, value T) *Vector[T] {
	mustValidLength(length)
	return &Vector[T]{count: length, store: storage.NewConstant(length, value)}
}

// NewFromSlice creates a dense vector holding a copy of values.
func NewFromSlice[T element.Number](values []T) *Vector[T] {
	return &Vector[T]{count: len(values), store: storage.NewDenseFromSlice(values)}
}

// FromStorage wraps s in a vector, taking ownership: the caller must not
// retain or mutate s afterwards, or the no-aliasing invariant breaks.
func FromStorage[T element.Number](s storage.Storage[T]) *Vector[T] {
	return &Vector[T]{count: s.Length(), store: s}
}

func mustValidLength(length int) {
	if length < 0 {
		panic(&ErrInvalidCount{Count: length})
	}
}

// Count returns the number of elements.
func (v *Vector[T]) Count() int { return v.count }

// Storage returns the backing storage. It is the sole channel by which
// storage-level collaborators (matrix conversion, persistence) access raw
// data; mutating it directly bypasses the facade's validation.
func (v *Vector[T]) Storage() storage.Storage[T] { return v.store }

// Get returns the element at index i, or ErrIndexOutOfRange.
func (v *Vector[T]) Get(i int) (T, error) {
	if i < 0 || i >= v.count {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Length: v.count}
	}
	return v.store.At(i), nil
}

// Set replaces the element at index i, or returns ErrIndexOutOfRange.
func (v *Vector[T]) Set(i int, value T) error {
	if i < 0 || i >= v.count {
		return &ErrIndexOutOfRange{Index: i, Length: v.count}
	}
	v.store.SetAt(i, value)
	return nil
}

// At returns the element at index i without bounds validation. For hot
// paths where the caller already validated the range; out-of-range indices
// produce undefined reads.
func (v *Vector[T]) At(i int) T { return v.store.At(i) }

// SetAt replaces the element at index i without bounds validation.
func (v *Vector[T]) SetAt(i int, value T) { v.store.SetAt(i, value) }

// Clear resets every element to zero.
func (v *Vector[T]) Clear() { v.store.Clear() }

// ClearSubVector resets count elements starting at index to zero.
func (v *Vector[T]) ClearSubVector(index, count int) error {
	if count < 1 {
		return &ErrInvalidCount{Count: count}
	}
	if index < 0 || index+count > v.count {
		return &ErrIndexOutOfRange{Index: index + count - 1, Length: v.count}
	}
	v.store.ClearRange(index, count)
	return nil
}

// CoerceZero sets to zero, in place, every element whose magnitude is below
// threshold. Zero elements trivially stay zero, so sparse backends skip
// them.
func (v *Vector[T]) CoerceZero(threshold float64) {
	var zero T
	v.MapInplace(func(x T) T {
		if element.Magnitude(x) < threshold {
			return zero
		}
		return x
	}, AllowSkipZeros)
}

// CoerceZeroFunc sets to zero, in place, every element satisfying pred.
// The skip path assumes a zero input stays zero either way: if pred(0) is
// true the write is a no-op, if false the element is untouched.
func (v *Vector[T]) CoerceZeroFunc(pred func(T) bool) {
	var zero T
	v.MapInplace(func(x T) T {
		if pred(x) {
			return zero
		}
		return x
	}, AllowSkipZeros)
}

// Clone returns an independent deep copy with a backend of the same
// category. A constant-backed vector clones to another constant; no
// per-element state exists to materialize.
func (v *Vector[T]) Clone() *Vector[T] {
	if c, ok := v.store.(*storage.Constant[T]); ok {
		return FromStorage(storage.NewConstant(v.count, c.Value()))
	}
	result := SameShapeAs(v)
	v.store.CopyTo(result.store, storage.AssumeZeros)
	return result
}

// SetValues replaces the whole content with values, which must have
// exactly Count elements.
func (v *Vector[T]) SetValues(values []T) error {
	if values == nil {
		return ErrNilValues
	}
	if len(values) != v.count {
		return &ErrLengthMismatch{Expected: v.count, Actual: len(values)}
	}
	src := storage.NewDenseFromSlice(values)
	src.CopyTo(v.store, storage.Clear)
	return nil
}

// CopyTo overwrites target, which must have the same length, with this
// vector's content. The target may hold arbitrary prior data.
func (v *Vector[T]) CopyTo(target *Vector[T]) error {
	if target == nil {
		return ErrNilVector
	}
	if target.count != v.count {
		return &ErrLengthMismatch{Expected: v.count, Actual: target.count}
	}
	v.store.CopyTo(target.store, storage.Clear)
	return nil
}

// SubVector returns a new vector holding a copy of count elements starting
// at index.
func (v *Vector[T]) SubVector(index, count int) (*Vector[T], error) {
	if index < 0 || count < 1 || index+count > v.count {
		return nil, &ErrIndexOutOfRange{Index: index, Length: v.count}
	}
	result := SameAs(v, count)
	v.store.CopySubRangeTo(result.store, index, 0, count, storage.AssumeZeros)
	return result, nil
}

// SetSubVector writes count elements from source, starting at source index
// 0, into this vector starting at index.
func (v *Vector[T]) SetSubVector(index, count int, source *Vector[T]) error {
	if source == nil {
		return ErrNilVector
	}
	if count < 1 {
		return &ErrInvalidCount{Count: count}
	}
	if index < 0 || index+count > v.count {
		return &ErrIndexOutOfRange{Index: index + count - 1, Length: v.count}
	}
	if count > source.count {
		return &ErrIndexOutOfRange{Index: count - 1, Length: source.count}
	}
	source.store.CopySubRangeTo(v.store, 0, index, count, storage.Clear)
	return nil
}

// CopySubRangeTo copies count elements starting at sourceIndex into
// destination starting at destinationIndex. The destination region may
// hold arbitrary prior data.
func (v *Vector[T]) CopySubRangeTo(destination *Vector[T], sourceIndex, destinationIndex, count int) error {
	if destination == nil {
		return ErrNilVector
	}
	if count < 1 {
		return &ErrInvalidCount{Count: count}
	}
	if sourceIndex < 0 || sourceIndex+count > v.count {
		return &ErrIndexOutOfRange{Index: sourceIndex + count - 1, Length: v.count}
	}
	if destinationIndex < 0 || destinationIndex+count > destination.count {
		return &ErrIndexOutOfRange{Index: destinationIndex + count - 1, Length: destination.count}
	}
	v.store.CopySubRangeTo(destination.store, sourceIndex, destinationIndex, count, storage.Clear)
	return nil
}

// ToArray materializes every element, zeros included, into a freshly
// allocated slice of length Count.
func (v *Vector[T]) ToArray() []T {
	arr := make([]T, v.count)
	for i, x := range v.store.NonZeroElementsIndexed() {
		arr[i] = x
	}
	return arr
}

// ToColumnMatrix returns a Count x 1 matrix holding a copy of this
// vector's data as its sole column.
func (v *Vector[T]) ToColumnMatrix() *matrix.Dense[T] {
	return matrix.ColumnFrom(v.store)
}

// ToRowMatrix returns a 1 x Count matrix holding a copy of this vector's
// data as its sole row.
func (v *Vector[T]) ToRowMatrix() *matrix.Dense[T] {
	return matrix.RowFrom(v.store)
}

// Enumerate returns a restartable sequence of the elements in ascending
// index order. With AllowSkipZeros, structurally-zero entries may be
// omitted; with IncludeZeros every element is yielded.
func (v *Vector[T]) Enumerate(zeros ZeroHandling) iter.Seq[T] {
	if zeros == AllowSkipZeros {
		return v.store.NonZeroElements()
	}
	return v.store.Elements()
}

// EnumerateIndexed is Enumerate with each element paired with its index.
func (v *Vector[T]) EnumerateIndexed(zeros ZeroHandling) iter.Seq2[int, T] {
	if zeros == AllowSkipZeros {
		return v.store.NonZeroElementsIndexed()
	}
	return v.store.ElementsIndexed()
}
