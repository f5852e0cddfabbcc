package persist

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/hupe1980/numvec"
	"github.com/hupe1980/numvec/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndLoad(t *testing.T) {
	compressions := []Compression{CompressionNone, CompressionZstd, CompressionLZ4}

	for _, c := range compressions {
		t.Run(c.String(), func(t *testing.T) {
			t.Run("Dense", func(t *testing.T) {
				v := numvec.NewFromSlice([]float64{1, 0, 3.5, -2})

				var buf bytes.Buffer
				require.NoError(t, Save(&buf, v, WithCompression(c)))

				loaded, err := Load[float64](&buf)
				require.NoError(t, err)
				assert.Equal(t, v.ToArray(), loaded.ToArray())
				assert.Equal(t, storage.KindDense, storage.KindOf(loaded.Storage()))
			})

			t.Run("Sparse", func(t *testing.T) {
				v := numvec.NewSparse[complex128](100)
				require.NoError(t, v.Set(3, complex(1, -1)))
				require.NoError(t, v.Set(97, complex(0, 2)))

				var buf bytes.Buffer
				require.NoError(t, Save(&buf, v, WithCompression(c)))

				loaded, err := Load[complex128](&buf)
				require.NoError(t, err)
				assert.Equal(t, v.ToArray(), loaded.ToArray())
				assert.Equal(t, storage.KindSparse, storage.KindOf(loaded.Storage()))
			})

			t.Run("Constant", func(t *testing.T) {
				v := numvec.NewConstant[float32](7, 1.25)

				var buf bytes.Buffer
				require.NoError(t, Save(&buf, v, WithCompression(c)))

				loaded, err := Load[float32](&buf)
				require.NoError(t, err)
				assert.Equal(t, v.ToArray(), loaded.ToArray())
				assert.Equal(t, storage.KindConstant, storage.KindOf(loaded.Storage()))
			})
		})
	}
}

func TestSaveNilVector(t *testing.T) {
	var buf bytes.Buffer
	require.ErrorIs(t, Save[float64](&buf, nil), numvec.ErrNilVector)
}

func TestLoadBadMagic(t *testing.T) {
	_, err := Load[float64](bytes.NewReader(bytes.Repeat([]byte{0xAB}, 64)))
	require.ErrorIs(t, err, ErrBadMagic)
}

func TestLoadElementTypeMismatch(t *testing.T) {
	v := numvec.NewFromSlice([]float64{1, 2})
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, v))

	_, err := Load[float32](&buf)
	var etm *ErrElementTypeMismatch
	require.ErrorAs(t, err, &etm)
}

func TestLoadChecksumMismatch(t *testing.T) {
	v := numvec.NewFromSlice([]float64{1, 2, 3})
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, v))

	// Uncompressed payload sits at the end; flip one byte of it.
	data := buf.Bytes()
	data[len(data)-1] ^= 0xFF

	_, err := Load[float64](bytes.NewReader(data))
	require.ErrorIs(t, err, ErrChecksumMismatch)
}

func TestLoadTruncated(t *testing.T) {
	v := numvec.NewFromSlice([]float64{1, 2, 3})
	var buf bytes.Buffer
	require.NoError(t, Save(&buf, v))

	_, err := Load[float64](bytes.NewReader(buf.Bytes()[:buf.Len()-4]))
	require.Error(t, err)
}

func TestSaveWithLogger(t *testing.T) {
	loggers := map[string]*numvec.Logger{
		"Noop": numvec.NoopLogger(),
		"Text": numvec.NewTextLogger(slog.LevelError),
		"JSON": numvec.NewJSONLogger(slog.LevelError),
	}

	for name, logger := range loggers {
		t.Run(name, func(t *testing.T) {
			v := numvec.NewSparse[float64](10)
			require.NoError(t, v.Set(1, 5))

			var buf bytes.Buffer
			require.NoError(t, Save(&buf, v, WithLogger(logger)))

			loaded, err := Load[float64](&buf, WithLogger(logger))
			require.NoError(t, err)
			assert.Equal(t, v.ToArray(), loaded.ToArray())
		})
	}
}
