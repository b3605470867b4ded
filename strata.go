// Package strata implements Strata, a deterministic data-interchange
// format: a small typed value model with a canonical binary encoding (SCB)
// and a content-addressed BLAKE3 hash. Two implementations on different
// platforms produce bit-identical SCB and bit-identical hashes from the
// same logical value, making the format suitable for wire transmission,
// on-disk storage and cryptographic integrity (signing, deduplication,
// cache keys).
//
// # Pipeline
//
// Textual source (.st) parses into a Value; values encode canonically into
// SCB bytes; SCB decodes back into values; hashing is BLAKE3 of the
// canonical encoding:
//
//	v, _ := strata.Parse(`config { retries: 3, name: "strata" }`)
//	scb, _ := strata.Encode(v)
//	digest, _ := strata.Hash(v)
//	back, _ := strata.Decode(scb)
//
// The decoder is strict by default: map keys must appear in ascending order
// with no duplicates. Varints are not checked for shortest form, so an SCB
// that pads a varint with redundant continuation bytes decodes but does not
// re-encode to the same bytes. Pass encoding.WithLenientKeyOrder() to
// tolerate unsorted maps from legacy producers.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the value,
// syntax, encoding, hash and wire packages, covering the common cases. For
// fine-grained control (incremental framing, decoder options, append-style
// encoding), use those packages directly.
package strata

import (
	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/hash"
	"github.com/emagjby/strata/syntax"
	"github.com/emagjby/strata/value"
	"github.com/emagjby/strata/wire"
)

// Parse parses textual strata source into a Value.
func Parse(src string) (value.Value, error) {
	return syntax.Parse(src)
}

// Encode returns the canonical SCB encoding of v.
func Encode(v value.Value) ([]byte, error) {
	return encoding.Encode(v)
}

// Decode strictly decodes a single SCB value.
func Decode(data []byte, opts ...encoding.DecoderOption) (value.Value, error) {
	return encoding.Decode(data, opts...)
}

// Hash returns the 32-byte BLAKE3 content hash of v's canonical encoding.
func Hash(v value.Value) ([hash.Size]byte, error) {
	return hash.Value(v)
}

// HashHex returns the content hash of v as 64 lowercase hex characters.
func HashHex(v value.Value) (string, error) {
	return hash.ValueHex(v)
}

// Format renders v in the canonical pretty form.
func Format(v value.Value) string {
	return syntax.Format(v)
}

// EncodeFramed encodes v and wraps it in the STRATA1 envelope.
func EncodeFramed(v value.Value) ([]byte, error) {
	return wire.EncodeFramed(v)
}

// DecodeFramed verifies the STRATA1 envelope and decodes the payload.
func DecodeFramed(data []byte, opts ...encoding.DecoderOption) (value.Value, error) {
	return wire.DecodeFramed(data, opts...)
}

// Compile parses textual source and returns its canonical SCB encoding.
// It is the composition the CLI's compile subcommand exposes.
func Compile(src string) ([]byte, error) {
	v, err := syntax.Parse(src)
	if err != nil {
		return nil, err
	}

	return encoding.Encode(v)
}
