// Package wire implements the transport envelopes around SCB payloads.
//
// Two envelope forms exist:
//
//   - Framed SCB: the 7-byte "STRATA1" magic, a version byte (0x01), then a
//     single canonical encoding. Used for self-identifying blobs at rest and
//     single-value wire exchanges.
//
//   - Streaming frames: a sequence of independent SCB payloads, each
//     preceded by a big-endian uint32 length. Frames of length zero or over
//     16 MiB are invalid; the cap is enforced on both sides of the
//     transport.
//
// Neither envelope alters the payload bytes; content hashes are always
// computed over the bare SCB.
package wire
