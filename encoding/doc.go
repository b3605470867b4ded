// Package encoding implements SCB, the canonical binary encoding of the
// strata value algebra, together with the ULEB128/SLEB128 varint codec it is
// built on.
//
// The encoder is deterministic: structurally equal values always produce
// identical byte sequences, with map entries emitted in ascending
// lexicographic order of their UTF-8 key bytes. The decoder is a strict,
// single-pass inverse that rejects unknown tags, truncated input, varint
// overflow, invalid UTF-8, trailing bytes and map keys out of ascending
// order; it does not check that varints use their shortest form. A lenient
// mode (WithLenientKeyOrder) relaxes only the map key ordering check for
// interoperability with legacy producers.
//
// Tag bytes:
//
//	0x00 Null
//	0x01 Bool false
//	0x02 Bool true
//	0x10 Int    (SLEB128)
//	0x20 String (ULEB128 byte length + UTF-8 bytes)
//	0x21 Bytes  (ULEB128 length + raw bytes)
//	0x30 List   (ULEB128 count + encoded elements)
//	0x40 Map    (ULEB128 count + key/value pairs; keys encode as Strings)
package encoding
