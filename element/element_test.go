package element

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestZero(t *testing.T) {
	assert.Equal(t, float32(0), Zero[float32]())
	assert.Equal(t, float64(0), Zero[float64]())
	assert.Equal(t, complex64(0), Zero[complex64]())
	assert.Equal(t, complex128(0), Zero[complex128]())
}

func TestIsZero(t *testing.T) {
	assert.True(t, IsZero(float64(0)))
	assert.False(t, IsZero(float64(1e-300)))
	assert.True(t, IsZero(complex128(0)))
	assert.False(t, IsZero(complex(0.0, 1.0)))
}

func TestMagnitude(t *testing.T) {
	assert.Equal(t, 2.5, Magnitude(float32(-2.5)))
	assert.Equal(t, 2.5, Magnitude(-2.5))
	assert.Equal(t, 5.0, Magnitude(complex(3.0, -4.0)))
	assert.Equal(t, 5.0, Magnitude(complex64(complex(-3.0, 4.0))))
	assert.Equal(t, 0.0, Magnitude(Zero[complex128]()))
}
