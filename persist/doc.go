// Package persist provides binary snapshot serialization for numvec
// vectors.
//
// A snapshot is self-describing: a fixed header records the format
// version, element type, backend kind, and compression, so Load rebuilds
// the same backend the vector was saved with. Dense payloads are the raw
// element run; sparse payloads store only the populated entries; constant
// payloads store the single shared value. The payload is protected by a
// CRC32 checksum computed before compression.
package persist
