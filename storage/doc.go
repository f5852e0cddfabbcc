// Package storage provides the interchangeable physical representations
// behind numvec containers.
//
// A Storage holds Length elements of a numeric type and answers reads,
// writes, bulk clears, bulk copies, enumeration, and elementwise maps
// identically in observable value across all variants; the variants differ
// only in cost:
//
//   - Dense keeps a contiguous slice.
//   - Sparse keeps only the non-zero entries, tracked by a roaring bitmap.
//   - Constant keeps a single shared value and no per-element storage.
//
// Two stateless policies are threaded through every transform:
//
//   - ZeroHandling tells a backend whether it may skip structurally-zero
//     entries (the caller asserts the transform maps zero to zero).
//   - ExistingData tells a copy or map whether the destination is known
//     pre-zeroed or must be cleared before partial writes.
//
// Bounds are the caller's responsibility at this layer; the checked entry
// points live on the container facade.
package storage
