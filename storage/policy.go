package storage

// ZeroHandling controls whether a transform may skip structurally-zero
// entries. Passing AllowSkipZeros for a function that does not map zero to
// zero silently produces wrong results; it is a caller contract, not a
// checked condition, because verifying it would require evaluating the
// function on every element.
type ZeroHandling int

const (
	// IncludeZeros forces the transform to visit every element, zeros
	// included. Required whenever f(0) != 0.
	IncludeZeros ZeroHandling = iota

	// AllowSkipZeros permits a backend to elide structurally-absent
	// entries, relying on the destination's zero content. The caller
	// asserts f(0) == 0 (and the indexed analogue for every index).
	AllowSkipZeros
)

// String returns the policy name.
func (z ZeroHandling) String() string {
	switch z {
	case IncludeZeros:
		return "include-zeros"
	case AllowSkipZeros:
		return "allow-skip-zeros"
	default:
		return "unknown"
	}
}

// ExistingData controls whether a copy or map may trust the destination's
// prior content to read as zero.
type ExistingData int

const (
	// AssumeZeros trusts the destination to be pre-zeroed (freshly built),
	// allowing zero-valued writes to be omitted entirely.
	AssumeZeros ExistingData = iota

	// Clear treats the destination as possibly dirty; the target region is
	// cleared before partial writes are applied.
	Clear
)

// String returns the policy name.
func (e ExistingData) String() string {
	switch e {
	case AssumeZeros:
		return "assume-zeros"
	case Clear:
		return "clear"
	default:
		return "unknown"
	}
}
