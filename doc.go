// Package numvec provides a generic one-dimensional numeric container with
// interchangeable backing representations.
//
// A Vector exposes uniform semantics (indexing, copying, elementwise
// transformation, sub-range extraction) regardless of whether its elements
// are stored densely, sparsely, or as a single shared constant, and
// regardless of the element type (float32, float64, complex64, complex128).
//
// Every operation produces results identical to a naive dense
// implementation; the backends differ only in cost. Two per-call policies
// control the optimization and safety trade-offs: storage.ZeroHandling lets
// sparse backends skip structurally-zero entries when the caller asserts
// the transform maps zero to zero, and storage.ExistingData tells copies
// and maps whether a destination is known pre-zeroed.
//
// Vectors are not safe for concurrent mutation; callers sharing a vector
// across goroutines must synchronize externally.
package numvec
