package encoding

import "github.com/emagjby/strata/errs"

// AppendUvarint appends the ULEB128 encoding of v to dst and returns the
// extended slice. Zero encodes as a single 0x00 byte; every non-final byte
// has the continuation bit (0x80) set.
func AppendUvarint(dst []byte, v uint64) []byte {
	for {
		b := byte(v & 0x7F)
		v >>= 7
		if v != 0 {
			b |= 0x80
		}
		dst = append(dst, b)
		if v == 0 {
			return dst
		}
	}
}

// AppendVarint appends the SLEB128 encoding of v to dst and returns the
// extended slice. The final byte is the first whose 7-bit group carries the
// sign of v with no more significant bits required: 0 encodes as 0x00, -1 as
// 0x7F, 127 as 0xFF 0x00, -128 as 0x80 0x7F.
func AppendVarint(dst []byte, v int64) []byte {
	for {
		b := byte(v & 0x7F)
		sign := b & 0x40
		v >>= 7

		done := (v == 0 && sign == 0) || (v == -1 && sign != 0)
		if !done {
			b |= 0x80
		}
		dst = append(dst, b)
		if done {
			return dst
		}
	}
}

// Uvarint decodes a ULEB128 value from the start of data. It returns the
// value and the number of bytes consumed.
//
// Errors carry offsets relative to the start of data: DecodeUnexpectedEOF
// when input runs out with a continuation bit pending, DecodeInvalidVarint
// when the accumulated shift reaches 64 bits while a continuation byte is
// still being read.
func Uvarint(data []byte) (uint64, int, error) {
	var result uint64
	shift := uint(0)
	pos := 0

	for {
		if pos >= len(data) {
			return 0, pos, errs.NewDecodeError(errs.DecodeUnexpectedEOF, pos)
		}
		b := data[pos]
		pos++

		if shift >= 64 {
			return 0, pos, errs.NewDecodeError(errs.DecodeInvalidVarint, pos)
		}

		result |= uint64(b&0x7F) << shift

		if b&0x80 == 0 {
			return result, pos, nil
		}

		shift += 7
	}
}

// Varint decodes an SLEB128 value from the start of data. It returns the
// value and the number of bytes consumed, with the same error conventions
// as Uvarint.
func Varint(data []byte) (int64, int, error) {
	var result int64
	shift := uint(0)
	pos := 0
	var b byte

	for {
		if pos >= len(data) {
			return 0, pos, errs.NewDecodeError(errs.DecodeUnexpectedEOF, pos)
		}
		b = data[pos]
		pos++

		result |= int64(b&0x7F) << shift
		shift += 7

		if b&0x80 == 0 {
			break
		}

		if shift >= 64 {
			return 0, pos, errs.NewDecodeError(errs.DecodeInvalidVarint, pos)
		}
	}

	// Sign-extend when the final group's sign bit is set.
	if shift < 64 && b&0x40 != 0 {
		result |= ^int64(0) << shift
	}

	return result, pos, nil
}
