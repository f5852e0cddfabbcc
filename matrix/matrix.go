// Package matrix provides the minimal two-dimensional collaborator
// consumed by the vector-to-matrix conversions. Data is stored dense,
// column-major, behind the same storage primitives the vectors use.
package matrix

import (
	"github.com/hupe1980/numvec/element"
	"github.com/hupe1980/numvec/storage"
)

// Dense is a column-major dense matrix.
type Dense[T element.Number] struct {
	rows  int
	cols  int
	store *storage.Dense[T]
}

// NewDense creates a zero-initialized rows x cols matrix.
func NewDense[T element.Number](rows, cols int) *Dense[T] {
	return &Dense[T]{
		rows:  rows,
		cols:  cols,
		store: storage.NewDense[T](rows * cols),
	}
}

// ColumnFrom builds a Length x 1 matrix holding a copy of src as its sole
// column.
func ColumnFrom[T element.Number](src storage.Storage[T]) *Dense[T] {
	m := NewDense[T](src.Length(), 1)
	src.CopyTo(m.store, storage.AssumeZeros)
	return m
}

// RowFrom builds a 1 x Length matrix holding a copy of src as its sole
// row. In column-major order a single row and a single column share the
// same linear layout.
func RowFrom[T element.Number](src storage.Storage[T]) *Dense[T] {
	m := NewDense[T](1, src.Length())
	src.CopyTo(m.store, storage.AssumeZeros)
	return m
}

// Rows returns the number of rows.
func (m *Dense[T]) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *Dense[T]) Cols() int { return m.cols }

// At returns the element at (row, col). Unchecked.
func (m *Dense[T]) At(row, col int) T {
	return m.store.At(col*m.rows + row)
}

// SetAt replaces the element at (row, col). Unchecked.
func (m *Dense[T]) SetAt(row, col int, v T) {
	m.store.SetAt(col*m.rows+row, v)
}

// Column copies column col into a freshly allocated slice.
func (m *Dense[T]) Column(col int) []T {
	out := make([]T, m.rows)
	for r := range m.rows {
		out[r] = m.store.At(col*m.rows + r)
	}
	return out
}

// Row copies row row into a freshly allocated slice.
func (m *Dense[T]) Row(row int) []T {
	out := make([]T, m.cols)
	for c := range m.cols {
		out[c] = m.store.At(c*m.rows + row)
	}
	return out
}
