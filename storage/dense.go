package storage

import (
	"iter"
	"slices"

	"github.com/hupe1980/numvec/element"
)

// Dense stores every element in a contiguous slice. Reads and writes are
// O(1); clears and copies are bulk slice operations.
type Dense[T element.Number] struct {
	data []T
}

// NewDense creates zero-initialized dense storage of the given length.
func NewDense[T element.Number](length int) *Dense[T] {
	return &Dense[T]{data: make([]T, length)}
}

// NewDenseFromSlice creates dense storage holding a copy of values.
func NewDenseFromSlice[T element.Number](values []T) *Dense[T] {
	return &Dense[T]{data: slices.Clone(values)}
}

// Length returns the number of elements.
func (d *Dense[T]) Length() int { return len(d.data) }

// At returns the element at index i. Unchecked.
func (d *Dense[T]) At(i int) T { return d.data[i] }

// SetAt replaces the element at index i. Unchecked.
func (d *Dense[T]) SetAt(i int, v T) { d.data[i] = v }

// Clear resets every element to zero.
func (d *Dense[T]) Clear() { clear(d.data) }

// ClearRange resets count elements starting at start to zero.
func (d *Dense[T]) ClearRange(start, count int) { clear(d.data[start : start+count]) }

// CopyTo copies every element into dst.
func (d *Dense[T]) CopyTo(dst Storage[T], existing ExistingData) {
	if dd, ok := dst.(*Dense[T]); ok {
		if dd == d {
			return
		}
		copy(dd.data, d.data)
		return
	}
	if existing == Clear {
		dst.Clear()
	}
	for i, v := range d.data {
		if !element.IsZero(v) {
			dst.SetAt(i, v)
		}
	}
}

// CopySubRangeTo copies count elements starting at srcStart into dst
// starting at dstStart. Overlapping self-copies take the copy builtin's
// memmove semantics on the dense fast path.
func (d *Dense[T]) CopySubRangeTo(dst Storage[T], srcStart, dstStart, count int, existing ExistingData) {
	if dd, ok := dst.(*Dense[T]); ok {
		copy(dd.data[dstStart:dstStart+count], d.data[srcStart:srcStart+count])
		return
	}
	if existing == Clear {
		dst.ClearRange(dstStart, count)
	}
	for k := range count {
		if v := d.data[srcStart+k]; !element.IsZero(v) {
			dst.SetAt(dstStart+k, v)
		}
	}
}

// Elements enumerates every element in index order.
func (d *Dense[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.data {
			if !yield(v) {
				return
			}
		}
	}
}

// ElementsIndexed enumerates every (index, element) pair in index order.
func (d *Dense[T]) ElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range d.data {
			if !yield(i, v) {
				return
			}
		}
	}
}

// NonZeroElements enumerates elements in index order, testing and skipping
// exact zeros.
func (d *Dense[T]) NonZeroElements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, v := range d.data {
			if element.IsZero(v) {
				continue
			}
			if !yield(v) {
				return
			}
		}
	}
}

// NonZeroElementsIndexed enumerates non-zero (index, element) pairs in
// index order.
func (d *Dense[T]) NonZeroElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range d.data {
			if element.IsZero(v) {
				continue
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// MapTo writes f(element) for every element into dst.
func (d *Dense[T]) MapTo(dst Storage[T], f func(T) T, zeros ZeroHandling, existing ExistingData) {
	if dd, ok := dst.(*Dense[T]); ok {
		// Elementwise, so a self-targeting map never reads an index it has
		// already written.
		for i, v := range d.data {
			dd.data[i] = f(v)
		}
		return
	}
	if zeros == AllowSkipZeros {
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range d.data {
			if !element.IsZero(v) {
				dst.SetAt(i, f(v))
			}
		}
		return
	}
	for i, v := range d.data {
		dst.SetAt(i, f(v))
	}
}

// MapIndexedTo writes f(index, element) for every element into dst.
func (d *Dense[T]) MapIndexedTo(dst Storage[T], f func(int, T) T, zeros ZeroHandling, existing ExistingData) {
	if dd, ok := dst.(*Dense[T]); ok {
		for i, v := range d.data {
			dd.data[i] = f(i, v)
		}
		return
	}
	if zeros == AllowSkipZeros {
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range d.data {
			if !element.IsZero(v) {
				dst.SetAt(i, f(i, v))
			}
		}
		return
	}
	for i, v := range d.data {
		dst.SetAt(i, f(i, v))
	}
}
