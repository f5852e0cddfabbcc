package numvec

import (
	"testing"

	"github.com/hupe1980/numvec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectorMap(t *testing.T) {
	eachKind(t, []float64{1, 0, 3, 0, 5}, func(t *testing.T, v *Vector[float64]) {
		t.Run("ZeroPreservingWithSkip", func(t *testing.T) {
			r := v.Map(func(x float64) float64 { return x * 2 }, AllowSkipZeros)
			assert.Equal(t, []float64{2, 0, 6, 0, 10}, r.ToArray())
			assert.Equal(t, storage.KindOf(v.Storage()), storage.KindOf(r.Storage()))
		})

		t.Run("NonZeroPreservingNeedsInclude", func(t *testing.T) {
			r := v.Map(func(x float64) float64 { return x + 1 }, IncludeZeros)
			assert.Equal(t, []float64{2, 1, 4, 1, 6}, r.ToArray())
		})

		t.Run("IdentityIsObservationallyNeutral", func(t *testing.T) {
			for _, zeros := range []ZeroHandling{IncludeZeros, AllowSkipZeros} {
				r := v.Map(func(x float64) float64 { return x }, zeros)
				assert.Equal(t, v.ToArray(), r.ToArray())
			}
		})

		t.Run("SourceUntouched", func(t *testing.T) {
			v.Map(func(x float64) float64 { return -x }, AllowSkipZeros)
			assert.Equal(t, []float64{1, 0, 3, 0, 5}, v.ToArray())
		})
	})
}

func TestVectorMapInplace(t *testing.T) {
	eachKind(t, []float64{1, 0, 3, 0, 5}, func(t *testing.T, v *Vector[float64]) {
		v.MapInplace(func(x float64) float64 { return x * 2 }, AllowSkipZeros)
		assert.Equal(t, []float64{2, 0, 6, 0, 10}, v.ToArray())
	})
}

func TestVectorMapIndexed(t *testing.T) {
	eachKind(t, []float64{1, 0, 3}, func(t *testing.T, v *Vector[float64]) {
		r := v.MapIndexed(func(i int, x float64) float64 { return float64(i) * x }, AllowSkipZeros)
		assert.Equal(t, []float64{0, 0, 6}, r.ToArray())
	})

	eachKind(t, []float64{1, 0, 3}, func(t *testing.T, v *Vector[float64]) {
		v.MapIndexedInplace(func(i int, x float64) float64 { return x + float64(i) }, IncludeZeros)
		assert.Equal(t, []float64{1, 1, 5}, v.ToArray())
	})
}

func TestVectorMapTo(t *testing.T) {
	t.Run("SkipClearsStaleResult", func(t *testing.T) {
		v := NewSparse[float64](3)
		require.NoError(t, v.Set(1, 5))
		result := NewFromSlice([]float64{9, 9, 9})
		require.NoError(t, v.MapTo(result, func(x float64) float64 { return x }, AllowSkipZeros))
		assert.Equal(t, []float64{0, 5, 0}, result.ToArray())
	})

	t.Run("IncludeOverwritesEveryPosition", func(t *testing.T) {
		v := NewFromSlice([]float64{1, 0, 3})
		result := NewFromSlice([]float64{9, 9, 9})
		require.NoError(t, v.MapTo(result, func(x float64) float64 { return x + 1 }, IncludeZeros))
		assert.Equal(t, []float64{2, 1, 4}, result.ToArray())
	})

	t.Run("IncludeFromConstantOverwritesEveryPosition", func(t *testing.T) {
		v := NewConstant(3, 1.0)
		result := NewFromSlice([]float64{9, 9, 9})
		require.NoError(t, v.MapTo(result, func(x float64) float64 { return x - 1 }, IncludeZeros))
		assert.Equal(t, []float64{0, 0, 0}, result.ToArray())

		result = NewFromSlice([]float64{9, 9, 9})
		require.NoError(t, v.MapIndexedTo(result, func(i int, x float64) float64 { return float64(i) * x }, IncludeZeros))
		assert.Equal(t, []float64{0, 1, 2}, result.ToArray())
	})

	t.Run("Errors", func(t *testing.T) {
		v := New[float64](3)
		require.ErrorIs(t, v.MapTo(nil, func(x float64) float64 { return x }, IncludeZeros), ErrNilVector)

		var lm *ErrLengthMismatch
		require.ErrorAs(t, v.MapTo(New[float64](4), func(x float64) float64 { return x }, IncludeZeros), &lm)
		require.ErrorAs(t, v.MapIndexedTo(New[float64](4), func(_ int, x float64) float64 { return x }, IncludeZeros), &lm)
	})
}

// A skip-path map of a function that does not preserve zero silently leaves
// structural zeros untouched. That is the documented contract: callers must
// pass IncludeZeros for such functions.
func TestVectorMapSkipAssumesZeroPreserving(t *testing.T) {
	v := NewSparse[float64](3)
	require.NoError(t, v.Set(1, 1))

	r := v.Map(func(x float64) float64 { return x + 1 }, AllowSkipZeros)
	assert.Equal(t, []float64{0, 2, 0}, r.ToArray())

	r = v.Map(func(x float64) float64 { return x + 1 }, IncludeZeros)
	assert.Equal(t, []float64{1, 2, 1}, r.ToArray())
}

func TestMapConvert(t *testing.T) {
	t.Run("RealToComplex", func(t *testing.T) {
		v := NewFromSlice([]float64{1, 0, 3})
		r := MapConvert(v, func(x float64) complex128 { return complex(x, 0) }, AllowSkipZeros)
		assert.Equal(t, []complex128{1, 0, 3}, r.ToArray())
		assert.Equal(t, storage.KindDense, storage.KindOf(r.Storage()))
	})

	t.Run("KeepsBackendCategory", func(t *testing.T) {
		v := NewSparse[float64](4)
		require.NoError(t, v.Set(2, 2.5))
		r := MapConvert(v, func(x float64) float32 { return float32(x) }, AllowSkipZeros)
		assert.Equal(t, storage.KindSparse, storage.KindOf(r.Storage()))
		assert.Equal(t, []float32{0, 0, 2.5, 0}, r.ToArray())
	})

	t.Run("Indexed", func(t *testing.T) {
		v := NewFromSlice([]float32{2, 4})
		r := MapIndexedConvert(v, func(i int, x float32) float64 { return float64(i) + float64(x) }, IncludeZeros)
		assert.Equal(t, []float64{2, 5}, r.ToArray())
	})
}
