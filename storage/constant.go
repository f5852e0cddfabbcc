package storage

import (
	"fmt"
	"iter"

	"github.com/hupe1980/numvec/element"
)

// Constant stores a single shared value and no per-element storage: every
// index reads as the same element. It is a read-optimized source
// representation; per-element mutation is structurally impossible, so SetAt
// and partial ClearRange panic. Builders hand out sparse storage when asked
// for a writable container of the same category.
type Constant[T element.Number] struct {
	length int
	value  T
}

// NewConstant creates constant storage where every element reads as value.
func NewConstant[T element.Number](length int, value T) *Constant[T] {
	return &Constant[T]{length: length, value: value}
}

// Length returns the number of addressable elements.
func (c *Constant[T]) Length() int { return c.length }

// Value returns the shared element value.
func (c *Constant[T]) Value() T { return c.value }

// At returns the shared value for any index. Unchecked.
func (c *Constant[T]) At(int) T { return c.value }

// SetAt panics unless v equals the shared value (a no-op write): constant
// storage cannot hold per-element state.
func (c *Constant[T]) SetAt(i int, v T) {
	if v == c.value {
		return
	}
	panic(fmt.Sprintf("numvec: cannot write element %d of constant storage; copy into dense or sparse storage first", i))
}

// Clear resets the shared value to zero. This is the cost-free structural
// reset: no per-element work exists to do.
func (c *Constant[T]) Clear() {
	var zero T
	c.value = zero
}

// ClearRange clears the whole storage when the range covers it, and is a
// no-op when the shared value is already zero. A partial clear of a
// non-zero constant is unrepresentable and panics.
func (c *Constant[T]) ClearRange(start, count int) {
	if element.IsZero(c.value) {
		return
	}
	if start == 0 && count == c.length {
		c.Clear()
		return
	}
	panic(fmt.Sprintf("numvec: cannot clear [%d, %d) of non-zero constant storage", start, start+count))
}

// CopyTo copies the shared value into every element of dst.
func (c *Constant[T]) CopyTo(dst Storage[T], existing ExistingData) {
	if cc, ok := dst.(*Constant[T]); ok {
		cc.value = c.value
		return
	}
	if existing == Clear {
		dst.Clear()
	}
	if element.IsZero(c.value) {
		return
	}
	for i := range c.length {
		dst.SetAt(i, c.value)
	}
}

// CopySubRangeTo copies the shared value into count elements of dst
// starting at dstStart.
func (c *Constant[T]) CopySubRangeTo(dst Storage[T], srcStart, dstStart, count int, existing ExistingData) {
	_ = srcStart // every source window reads the same
	if existing == Clear {
		dst.ClearRange(dstStart, count)
	}
	if element.IsZero(c.value) {
		return
	}
	for k := range count {
		dst.SetAt(dstStart+k, c.value)
	}
}

// Elements yields the shared value Length times.
func (c *Constant[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for range c.length {
			if !yield(c.value) {
				return
			}
		}
	}
}

// ElementsIndexed yields every (index, shared value) pair in index order.
func (c *Constant[T]) ElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range c.length {
			if !yield(i, c.value) {
				return
			}
		}
	}
}

// NonZeroElements yields nothing for a zero constant and every element
// otherwise.
func (c *Constant[T]) NonZeroElements() iter.Seq[T] {
	return func(yield func(T) bool) {
		if element.IsZero(c.value) {
			return
		}
		for range c.length {
			if !yield(c.value) {
				return
			}
		}
	}
}

// NonZeroElementsIndexed yields nothing for a zero constant and every
// (index, value) pair otherwise.
func (c *Constant[T]) NonZeroElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		if element.IsZero(c.value) {
			return
		}
		for i := range c.length {
			if !yield(i, c.value) {
				return
			}
		}
	}
}

// MapTo writes f(value) into every element of dst. With AllowSkipZeros a
// zero constant contributes nothing beyond the existing-data clear.
func (c *Constant[T]) MapTo(dst Storage[T], f func(T) T, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros && element.IsZero(c.value) {
		if existing == Clear {
			dst.Clear()
		}
		return
	}
	fv := f(c.value)
	if cc, ok := dst.(*Constant[T]); ok {
		cc.value = fv
		return
	}
	if zeros == AllowSkipZeros {
		// Zero-valued writes may be elided: the destination either was just
		// cleared or is trusted to read as zero.
		if existing == Clear {
			dst.Clear()
		}
		if element.IsZero(fv) {
			return
		}
		for i := range c.length {
			dst.SetAt(i, fv)
		}
		return
	}
	// IncludeZeros writes every position; the destination may be dirty.
	for i := range c.length {
		dst.SetAt(i, fv)
	}
}

// MapIndexedTo writes f(index, value) into every element of dst. There is
// no constant fast path: an index-aware result is not constant in general.
func (c *Constant[T]) MapIndexedTo(dst Storage[T], f func(int, T) T, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros && element.IsZero(c.value) {
		if existing == Clear {
			dst.Clear()
		}
		return
	}
	if zeros == AllowSkipZeros {
		if existing == Clear {
			dst.Clear()
		}
		for i := range c.length {
			if fv := f(i, c.value); !element.IsZero(fv) {
				dst.SetAt(i, fv)
			}
		}
		return
	}
	// IncludeZeros writes every position; the destination may be dirty.
	for i := range c.length {
		dst.SetAt(i, f(i, c.value))
	}
}
