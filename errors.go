package numvec

import (
	"errors"
	"fmt"
)

var (
	// ErrNilVector is returned when a required vector argument is nil.
	ErrNilVector = errors.New("vector must not be nil")

	// ErrNilValues is returned when a required values slice is nil.
	ErrNilValues = errors.New("values must not be nil")
)

// ErrIndexOutOfRange indicates an index or sub-range outside [0, Count).
type ErrIndexOutOfRange struct {
	Index  int
	Length int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Length)
}

// ErrInvalidCount indicates a count parameter that is not positive.
type ErrInvalidCount struct {
	Count int
}

func (e *ErrInvalidCount) Error() string {
	return fmt.Sprintf("count must be positive: %d", e.Count)
}

// ErrLengthMismatch indicates two containers or slices whose lengths must
// agree but do not.
type ErrLengthMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: expected %d, got %d", e.Expected, e.Actual)
}
