package numvec

import (
	"testing"

	"github.com/hupe1980/numvec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSameAs(t *testing.T) {
	t.Run("DenseBuildsDense", func(t *testing.T) {
		ref := New[float64](3)
		v := SameAs(ref, 5)
		assert.Equal(t, 5, v.Count())
		assert.Equal(t, storage.KindDense, storage.KindOf(v.Storage()))
	})

	t.Run("SparseBuildsSparse", func(t *testing.T) {
		ref := NewSparse[float64](3)
		v := SameAs(ref, 5)
		assert.Equal(t, storage.KindSparse, storage.KindOf(v.Storage()))
	})

	t.Run("ConstantBuildsWritableSparse", func(t *testing.T) {
		ref := NewConstant(3, 1.5)
		v := SameAs(ref, 3)
		assert.Equal(t, storage.KindSparse, storage.KindOf(v.Storage()))
		require.NoError(t, v.Set(1, 2.0))
	})

	t.Run("FreshlyBuiltReadsAsZero", func(t *testing.T) {
		ref := NewFromSlice([]float64{1, 2, 3})
		v := SameAs(ref, 3)
		assert.Equal(t, []float64{0, 0, 0}, v.ToArray())
	})

	t.Run("NegativeLengthPanics", func(t *testing.T) {
		ref := New[float64](3)
		require.Panics(t, func() { SameAs(ref, -1) })
	})
}

func TestSameShapeAs(t *testing.T) {
	ref := NewSparse[float64](7)
	v := SameShapeAs(ref)
	assert.Equal(t, 7, v.Count())
	assert.Equal(t, storage.KindSparse, storage.KindOf(v.Storage()))
}
