package encoding

import (
	"errors"
	"unicode/utf8"

	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/internal/options"
	"github.com/emagjby/strata/value"
)

// DecoderOption is a functional option for configuring the Decoder.
type DecoderOption = options.Option[*Decoder]

// WithLenientKeyOrder disables the canonical map key ordering check,
// accepting SCB from legacy producers whose maps are unsorted. Duplicate
// keys then resolve last-write-wins, mirroring the textual parser.
//
// Strict ordering remains the default. Strict mode checks map key order
// only; varints are not checked for shortest form, so encode(decode(b)) == b
// holds for accepted inputs whose varints are minimal.
func WithLenientKeyOrder() DecoderOption {
	return options.NoError(func(d *Decoder) {
		d.lenientKeyOrder = true
	})
}

// Decoder is a single-pass SCB decoder over an in-memory byte slice. It
// tracks a current offset for error reporting and never reads past the
// declared lengths.
//
// Note: The Decoder is not reusable. After calling Decode, create a new
// decoder for further input.
type Decoder struct {
	data            []byte
	pos             int
	lenientKeyOrder bool
}

// NewDecoder creates a Decoder for the given SCB bytes.
func NewDecoder(data []byte, opts ...DecoderOption) (*Decoder, error) {
	d := &Decoder{data: data}

	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// Decode decodes one value spanning the entire input. Unconsumed bytes
// after the top-level value are DecodeTrailingBytes, reported at the offset
// of the first unread byte.
func (d *Decoder) Decode() (value.Value, error) {
	v, err := d.decodeValue()
	if err != nil {
		return value.Value{}, err
	}

	if d.pos != len(d.data) {
		return value.Value{}, errs.NewDecodeError(errs.DecodeTrailingBytes, d.pos)
	}

	return v, nil
}

// Decode decodes a single canonical value from data. It is shorthand for
// NewDecoder(data, opts...).Decode().
func Decode(data []byte, opts ...DecoderOption) (value.Value, error) {
	d, err := NewDecoder(data, opts...)
	if err != nil {
		return value.Value{}, err
	}

	return d.Decode()
}

func (d *Decoder) remaining() int {
	return len(d.data) - d.pos
}

func (d *Decoder) readByte() (byte, error) {
	if d.pos >= len(d.data) {
		return 0, errs.NewDecodeError(errs.DecodeUnexpectedEOF, d.pos)
	}
	b := d.data[d.pos]
	d.pos++

	return b, nil
}

func (d *Decoder) readSlice(n int) ([]byte, error) {
	if n > d.remaining() {
		return nil, errs.NewDecodeError(errs.DecodeUnexpectedEOF, d.pos)
	}
	s := d.data[d.pos : d.pos+n]
	d.pos += n

	return s, nil
}

func (d *Decoder) readUvarint() (uint64, error) {
	v, n, err := Uvarint(d.data[d.pos:])
	if err != nil {
		return 0, d.rebase(err)
	}
	d.pos += n

	return v, nil
}

func (d *Decoder) readVarint() (int64, error) {
	v, n, err := Varint(d.data[d.pos:])
	if err != nil {
		return 0, d.rebase(err)
	}
	d.pos += n

	return v, nil
}

// rebase shifts a varint error's offset from sub-slice coordinates to
// absolute input coordinates.
func (d *Decoder) rebase(err error) error {
	var de *errs.DecodeError
	if errors.As(err, &de) {
		de.Offset += d.pos
		return de
	}

	return err
}

// readLength reads a ULEB128 length and applies the allocation guard: a
// container or byte sequence declaring more elements than there are bytes
// left cannot be satisfied, so it is rejected before any allocation.
func (d *Decoder) readLength() (int, error) {
	n, err := d.readUvarint()
	if err != nil {
		return 0, err
	}
	if n > uint64(d.remaining()) {
		return 0, errs.NewDecodeError(errs.DecodeUnexpectedEOF, d.pos)
	}

	return int(n), nil
}

func (d *Decoder) decodeValue() (value.Value, error) {
	tag, err := d.readByte()
	if err != nil {
		return value.Value{}, err
	}

	switch tag {
	case TagNull:
		return value.Null(), nil

	case TagBoolFalse:
		return value.Bool(false), nil

	case TagBoolTrue:
		return value.Bool(true), nil

	case TagInt:
		n, err := d.readVarint()
		if err != nil {
			return value.Value{}, err
		}

		return value.Int(n), nil

	case TagString:
		s, err := d.readStringPayload()
		if err != nil {
			return value.Value{}, err
		}

		return value.String(s), nil

	case TagBytes:
		n, err := d.readLength()
		if err != nil {
			return value.Value{}, err
		}
		raw, err := d.readSlice(n)
		if err != nil {
			return value.Value{}, err
		}

		return value.Bytes(raw), nil

	case TagList:
		return d.decodeList()

	case TagMap:
		return d.decodeMap()

	default:
		return value.Value{}, errs.NewInvalidTag(tag, d.pos)
	}
}

// readStringPayload reads the length-prefixed UTF-8 bytes following a
// String tag. Invalid UTF-8 is reported at the first offending byte.
func (d *Decoder) readStringPayload() (string, error) {
	n, err := d.readLength()
	if err != nil {
		return "", err
	}

	start := d.pos
	raw, err := d.readSlice(n)
	if err != nil {
		return "", err
	}

	if idx := firstInvalidUTF8(raw); idx >= 0 {
		return "", errs.NewDecodeError(errs.DecodeInvalidUTF8, start+idx)
	}

	return string(raw), nil
}

func (d *Decoder) decodeList() (value.Value, error) {
	count, err := d.readLength()
	if err != nil {
		return value.Value{}, err
	}

	items := make([]value.Value, 0, count)
	for i := 0; i < count; i++ {
		item, err := d.decodeValue()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)
	}

	return value.List(items...), nil
}

func (d *Decoder) decodeMap() (value.Value, error) {
	count, err := d.readLength()
	if err != nil {
		return value.Value{}, err
	}

	entries := make(map[string]value.Value, count)
	var prevKey string

	for i := 0; i < count; i++ {
		keyStart := d.pos

		// The key must be a full String value: same tag, same layout.
		tag, err := d.readByte()
		if err != nil {
			return value.Value{}, err
		}
		if tag != TagString {
			return value.Value{}, errs.NewInvalidTag(tag, d.pos)
		}

		key, err := d.readStringPayload()
		if err != nil {
			return value.Value{}, err
		}

		if !d.lenientKeyOrder && i > 0 && key <= prevKey {
			return value.Value{}, errs.NewDecodeError(errs.DecodeNonCanonicalOrder, keyStart)
		}
		prevKey = key

		entry, err := d.decodeValue()
		if err != nil {
			return value.Value{}, err
		}
		entries[key] = entry
	}

	return value.Map(entries), nil
}

// firstInvalidUTF8 returns the index of the first byte where b stops being
// valid UTF-8, or -1 if b is valid throughout.
func firstInvalidUTF8(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}

	return -1
}
