package matrix

import (
	"testing"

	"github.com/hupe1980/numvec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDense(t *testing.T) {
	m := NewDense[float64](2, 3)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	m.SetAt(0, 1, 5)
	m.SetAt(1, 2, 7)
	assert.Equal(t, 5.0, m.At(0, 1))
	assert.Equal(t, 7.0, m.At(1, 2))
	assert.Equal(t, 0.0, m.At(1, 0))

	assert.Equal(t, []float64{0, 5, 0}, m.Row(0))
	assert.Equal(t, []float64{0, 7}, m.Column(2))
}

func TestColumnFrom(t *testing.T) {
	src := storage.NewDenseFromSlice([]float64{1, 0, 3})
	m := ColumnFrom[float64](src)
	require.Equal(t, 3, m.Rows())
	require.Equal(t, 1, m.Cols())
	assert.Equal(t, []float64{1, 0, 3}, m.Column(0))

	// Owned copy, not a view.
	src.SetAt(0, 99)
	assert.Equal(t, 1.0, m.At(0, 0))
}

func TestRowFrom(t *testing.T) {
	src := storage.NewSparse[float64](4)
	src.SetAt(1, 2.5)
	m := RowFrom[float64](src)
	require.Equal(t, 1, m.Rows())
	require.Equal(t, 4, m.Cols())
	assert.Equal(t, []float64{0, 2.5, 0, 0}, m.Row(0))
}
