package storage

import (
	"iter"
	"maps"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/numvec/element"
)

// Sparse stores only the non-zero entries: a roaring bitmap tracks which
// indices are populated (and yields them in ascending order), a map holds
// their values. Absent entries read as exactly zero.
//
// Invariant: the map never holds an exact zero; writing zero removes the
// entry. The index space is limited to uint32.
type Sparse[T element.Number] struct {
	length  int
	indices *roaring.Bitmap
	values  map[uint32]T
}

// NewSparse creates empty (all-zero) sparse storage of the given length.
func NewSparse[T element.Number](length int) *Sparse[T] {
	return &Sparse[T]{
		length:  length,
		indices: roaring.New(),
		values:  make(map[uint32]T),
	}
}

// Length returns the number of addressable elements.
func (s *Sparse[T]) Length() int { return s.length }

// NonZeroCount returns the number of populated entries.
func (s *Sparse[T]) NonZeroCount() int { return int(s.indices.GetCardinality()) }

// At returns the element at index i. Unchecked.
func (s *Sparse[T]) At(i int) T {
	return s.values[uint32(i)]
}

// SetAt replaces the element at index i. Writing zero removes the entry.
// Unchecked.
func (s *Sparse[T]) SetAt(i int, v T) {
	u := uint32(i)
	if element.IsZero(v) {
		delete(s.values, u)
		s.indices.Remove(u)
		return
	}
	s.values[u] = v
	s.indices.Add(u)
}

// Clear removes every entry.
func (s *Sparse[T]) Clear() {
	s.indices.Clear()
	clear(s.values)
}

// ClearRange removes the entries in [start, start+count).
func (s *Sparse[T]) ClearRange(start, count int) {
	end := uint32(start + count)
	it := s.indices.Iterator()
	it.AdvanceIfNeeded(uint32(start))
	for it.HasNext() {
		u := it.Next()
		if u >= end {
			break
		}
		delete(s.values, u)
	}
	s.indices.RemoveRange(uint64(start), uint64(end))
}

// CopyTo copies every element into dst. Sparse destinations receive a deep
// copy of the index set and value map.
func (s *Sparse[T]) CopyTo(dst Storage[T], existing ExistingData) {
	if ss, ok := dst.(*Sparse[T]); ok {
		if ss == s {
			return
		}
		ss.indices = s.indices.Clone()
		ss.values = maps.Clone(s.values)
		return
	}
	if existing == Clear {
		dst.Clear()
	}
	for i, v := range s.NonZeroElementsIndexed() {
		dst.SetAt(i, v)
	}
}

// CopySubRangeTo copies count elements starting at srcStart into dst
// starting at dstStart. The source window is snapshotted first, so the
// receiver may be its own destination with overlapping windows.
func (s *Sparse[T]) CopySubRangeTo(dst Storage[T], srcStart, dstStart, count int, existing ExistingData) {
	type entry struct {
		index uint32
		value T
	}
	end := uint32(srcStart + count)
	var window []entry
	it := s.indices.Iterator()
	it.AdvanceIfNeeded(uint32(srcStart))
	for it.HasNext() {
		u := it.Next()
		if u >= end {
			break
		}
		window = append(window, entry{index: u, value: s.values[u]})
	}

	if existing == Clear {
		dst.ClearRange(dstStart, count)
	}
	offset := dstStart - srcStart
	for _, e := range window {
		dst.SetAt(int(e.index)+offset, e.value)
	}
}

// Elements enumerates every element in index order, zeros included.
func (s *Sparse[T]) Elements() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range s.length {
			if !yield(s.values[uint32(i)]) {
				return
			}
		}
	}
}

// ElementsIndexed enumerates every (index, element) pair in index order,
// zeros included.
func (s *Sparse[T]) ElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := range s.length {
			if !yield(i, s.values[uint32(i)]) {
				return
			}
		}
	}
}

// NonZeroElements enumerates the populated entries in ascending index
// order, skipping zeros by construction.
func (s *Sparse[T]) NonZeroElements() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := s.indices.Iterator()
		for it.HasNext() {
			if !yield(s.values[it.Next()]) {
				return
			}
		}
	}
}

// NonZeroElementsIndexed enumerates the populated (index, element) pairs in
// ascending index order.
func (s *Sparse[T]) NonZeroElementsIndexed() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		it := s.indices.Iterator()
		for it.HasNext() {
			u := it.Next()
			if !yield(int(u), s.values[u]) {
				return
			}
		}
	}
}

// MapTo writes f(element) for every element into dst. With AllowSkipZeros
// only the populated entries are visited; a self-targeting map builds the
// new index set aside and swaps it in, so f never observes its own writes.
func (s *Sparse[T]) MapTo(dst Storage[T], f func(T) T, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros {
		if ss, ok := dst.(*Sparse[T]); ok && ss == s {
			s.remapInplace(func(_ uint32, v T) T { return f(v) })
			return
		}
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range s.NonZeroElementsIndexed() {
			dst.SetAt(i, f(v))
		}
		return
	}
	for i := range s.length {
		dst.SetAt(i, f(s.values[uint32(i)]))
	}
}

// MapIndexedTo writes f(index, element) for every element into dst.
func (s *Sparse[T]) MapIndexedTo(dst Storage[T], f func(int, T) T, zeros ZeroHandling, existing ExistingData) {
	if zeros == AllowSkipZeros {
		if ss, ok := dst.(*Sparse[T]); ok && ss == s {
			s.remapInplace(func(u uint32, v T) T { return f(int(u), v) })
			return
		}
		if existing == Clear {
			dst.Clear()
		}
		for i, v := range s.NonZeroElementsIndexed() {
			dst.SetAt(i, f(i, v))
		}
		return
	}
	for i := range s.length {
		dst.SetAt(i, f(i, s.values[uint32(i)]))
	}
}

// remapInplace rebuilds the populated entries through f, dropping entries
// that map to zero.
func (s *Sparse[T]) remapInplace(f func(uint32, T) T) {
	indices := roaring.New()
	values := make(map[uint32]T, len(s.values))
	it := s.indices.Iterator()
	for it.HasNext() {
		u := it.Next()
		if fv := f(u, s.values[u]); !element.IsZero(fv) {
			values[u] = fv
			indices.Add(u)
		}
	}
	s.indices = indices
	s.values = values
}
