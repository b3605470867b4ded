// Package hash computes content hashes of strata values.
//
// The content hash is defined as BLAKE3-256 of the canonical SCB encoding,
// so it can be computed from either an in-memory value or a stored SCB blob
// without re-parsing, and its stability is exactly the encoding's stability.
//
// ID provides a complementary 64-bit xxHash64 fingerprint for
// non-cryptographic host-side uses such as cache keys and dedup indexes.
package hash

import (
	"encoding/hex"

	"github.com/cespare/xxhash/v2"
	"lukechampine.com/blake3"

	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/value"
)

// Size is the content hash length in bytes.
const Size = 32

// Sum returns the BLAKE3-256 digest of an SCB byte sequence.
func Sum(scb []byte) [Size]byte {
	return blake3.Sum256(scb)
}

// SumHex is Sum rendered as 64 lowercase hex characters.
func SumHex(scb []byte) string {
	digest := Sum(scb)
	return hex.EncodeToString(digest[:])
}

// Value canonically encodes v and returns the BLAKE3-256 digest of the
// encoding. Structurally equal values hash equal.
func Value(v value.Value) ([Size]byte, error) {
	scb, err := encoding.Encode(v)
	if err != nil {
		return [Size]byte{}, err
	}

	return Sum(scb), nil
}

// ValueHex is Value rendered as 64 lowercase hex characters.
func ValueHex(v value.Value) (string, error) {
	digest, err := Value(v)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(digest[:]), nil
}

// ID returns the xxHash64 fingerprint of an SCB byte sequence. It is fast
// and deterministic but not collision-resistant; use Sum for integrity.
func ID(scb []byte) uint64 {
	return xxhash.Sum64(scb)
}

// ValueID canonically encodes v and returns its xxHash64 fingerprint.
func ValueID(v value.Value) (uint64, error) {
	scb, err := encoding.Encode(v)
	if err != nil {
		return 0, err
	}

	return ID(scb), nil
}
