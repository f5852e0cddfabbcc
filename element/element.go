// Package element defines the numeric element contract shared by every
// container in numvec.
//
// The Number constraint deliberately lists the four supported element types
// exactly, without approximation terms: Magnitude and String dispatch on the
// dynamic type, so a defined type with one of these underlying types would
// silently fall through.
package element

import (
	"math"
	"math/cmplx"
)

// Number is the element type constraint for all numvec containers:
// real or complex, single or double precision. All four types are value
// types, comparable with ==, and formattable with fmt verbs.
type Number interface {
	float32 | float64 | complex64 | complex128
}

// Zero returns the additive identity of T. Sparse backends read
// structurally-absent entries as exactly this value.
func Zero[T Number]() T {
	var zero T
	return zero
}

// IsZero reports whether v equals the additive identity of T exactly.
// No epsilon is applied; use Magnitude for threshold comparisons.
func IsZero[T Number](v T) bool {
	var zero T
	return v == zero
}

// Magnitude returns the absolute value of v as a float64: math.Abs for the
// real types, the complex modulus for the complex types.
func Magnitude[T Number](v T) float64 {
	switch x := any(v).(type) {
	case float32:
		return math.Abs(float64(x))
	case float64:
		return math.Abs(x)
	case complex64:
		return cmplx.Abs(complex128(x))
	case complex128:
		return cmplx.Abs(x)
	default:
		// Unreachable: Number admits exactly the four cases above.
		return 0
	}
}
