package encoding

import (
	"sort"
	"unicode/utf8"

	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/internal/pool"
	"github.com/emagjby/strata/value"
)

// Tag bytes of the canonical encoding. Exported for consumers that inspect
// raw SCB (the decoder, the wire layer, tests).
const (
	TagNull      = 0x00
	TagBoolFalse = 0x01
	TagBoolTrue  = 0x02
	TagInt       = 0x10
	TagString    = 0x20
	TagBytes     = 0x21
	TagList      = 0x30
	TagMap       = 0x40
)

// Encode returns the canonical SCB encoding of v as a freshly owned byte
// slice. Encoding never mutates v.
//
// For values built with the package constructors the only reachable failure
// is EncodeInvalidUTF8: Go strings are byte sequences, so String payloads and
// map keys are validated here. EncodeDuplicateKey cannot occur (map-backed
// keys). EncodeInvalidInteger is never returned for an Int (native int64);
// it is returned only for the invalid zero Value.
func Encode(v value.Value) ([]byte, error) {
	scratch := pool.Get()

	out, err := AppendValue(scratch, v)
	if err != nil {
		pool.Put(scratch)
		return nil, err
	}

	owned := pool.Own(out)
	pool.Put(out)

	return owned, nil
}

// AppendValue appends the canonical encoding of v to dst and returns the
// extended slice. On error it returns nil; bytes may already have been
// written into dst's backing array beyond len(dst).
func AppendValue(dst []byte, v value.Value) ([]byte, error) {
	switch v.Kind() {
	case value.KindNull:
		return append(dst, TagNull), nil

	case value.KindBool:
		if v.Bool() {
			return append(dst, TagBoolTrue), nil
		}

		return append(dst, TagBoolFalse), nil

	case value.KindInt:
		dst = append(dst, TagInt)

		return AppendVarint(dst, v.Int()), nil

	case value.KindString:
		return appendString(dst, v.Text())

	case value.KindBytes:
		raw := v.Bytes()
		dst = append(dst, TagBytes)
		dst = AppendUvarint(dst, uint64(len(raw)))

		return append(dst, raw...), nil

	case value.KindList:
		items := v.List()
		dst = append(dst, TagList)
		dst = AppendUvarint(dst, uint64(len(items)))
		for _, item := range items {
			var err error
			dst, err = AppendValue(dst, item)
			if err != nil {
				return nil, err
			}
		}

		return dst, nil

	case value.KindMap:
		return appendMap(dst, v)

	default:
		// The zero Value or a corrupted kind is a caller bug, not input
		// data; surface it as an encode error rather than panicking.
		return nil, errs.NewEncodeError(errs.EncodeInvalidInteger)
	}
}

// appendString emits tag 0x20, ULEB128 byte length, then the UTF-8 bytes.
// Map keys use the identical routine, so a key's encoding is byte-for-byte
// that of an equivalent String value.
func appendString(dst []byte, s string) ([]byte, error) {
	if !utf8.ValidString(s) {
		return nil, errs.NewEncodeError(errs.EncodeInvalidUTF8)
	}

	dst = append(dst, TagString)
	dst = AppendUvarint(dst, uint64(len(s)))

	return append(dst, s...), nil
}

func appendMap(dst []byte, v value.Value) ([]byte, error) {
	entries := v.Map()

	keys := make([]string, 0, len(entries))
	for k := range entries {
		keys = append(keys, k)
	}
	// Ascending lexicographic byte order of the UTF-8 key bytes; Go string
	// comparison is exactly that order.
	sort.Strings(keys)

	dst = append(dst, TagMap)
	dst = AppendUvarint(dst, uint64(len(keys)))

	for _, k := range keys {
		var err error
		dst, err = appendString(dst, k)
		if err != nil {
			return nil, err
		}
		dst, err = AppendValue(dst, entries[k])
		if err != nil {
			return nil, err
		}
	}

	return dst, nil
}
