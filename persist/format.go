package persist

import (
	"errors"
	"fmt"

	"github.com/hupe1980/numvec/element"
)

// Magic identifies a numvec snapshot.
var Magic = [4]byte{'N', 'V', 'E', 'C'}

// Version is the current snapshot format version.
const Version uint8 = 1

// Element type codes stored in the header.
const (
	elemFloat32 uint8 = iota + 1
	elemFloat64
	elemComplex64
	elemComplex128
)

// FileHeader is the fixed-size snapshot header, encoded little-endian.
type FileHeader struct {
	Magic       [4]byte
	Version     uint8
	Element     uint8
	Kind        uint8
	Compression uint8
	Length      uint64
}

var (
	// ErrBadMagic indicates the reader is not positioned at a numvec
	// snapshot.
	ErrBadMagic = errors.New("bad magic: not a numvec snapshot")

	// ErrChecksumMismatch indicates payload corruption.
	ErrChecksumMismatch = errors.New("payload checksum mismatch")
)

// ErrUnsupportedVersion indicates a snapshot written by a newer format.
type ErrUnsupportedVersion struct {
	Version uint8
}

func (e *ErrUnsupportedVersion) Error() string {
	return fmt.Sprintf("unsupported snapshot version: %d", e.Version)
}

// ErrElementTypeMismatch indicates the snapshot holds a different element
// type than the one requested.
type ErrElementTypeMismatch struct {
	Expected uint8
	Actual   uint8
}

func (e *ErrElementTypeMismatch) Error() string {
	return fmt.Sprintf("element type mismatch: snapshot holds code %d, requested code %d", e.Actual, e.Expected)
}

// ErrUnknownKind indicates an unrecognized backend kind code.
type ErrUnknownKind struct {
	Kind uint8
}

func (e *ErrUnknownKind) Error() string {
	return fmt.Sprintf("unknown storage kind code: %d", e.Kind)
}

func elementCode[T element.Number]() uint8 {
	var zero T
	switch any(zero).(type) {
	case float32:
		return elemFloat32
	case float64:
		return elemFloat64
	case complex64:
		return elemComplex64
	default:
		return elemComplex128
	}
}
