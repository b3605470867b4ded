package wire

import (
	"bytes"
	"fmt"

	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/value"
)

// EncodeFramed canonically encodes v and wraps it in the STRATA1 envelope.
func EncodeFramed(v value.Value) ([]byte, error) {
	scb, err := encoding.Encode(v)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, HeaderSize+len(scb))
	out = append(out, Magic[:]...)
	out = append(out, Version)
	out = append(out, scb...)

	return out, nil
}

// AppendFramed appends the STRATA1 envelope around an already-encoded SCB
// payload to dst.
func AppendFramed(dst []byte, scb []byte) []byte {
	dst = append(dst, Magic[:]...)
	dst = append(dst, Version)

	return append(dst, scb...)
}

// IsFramed reports whether data begins with the STRATA1 magic.
func IsFramed(data []byte) bool {
	return len(data) >= MagicLen && bytes.Equal(data[:MagicLen], Magic[:])
}

// StripFrame verifies the magic and version and returns the SCB payload.
// The returned slice aliases data.
func StripFrame(data []byte) ([]byte, error) {
	if len(data) < HeaderSize || !bytes.Equal(data[:MagicLen], Magic[:]) {
		return nil, fmt.Errorf("%w: want %q", errs.ErrBadMagic, Magic[:])
	}

	if ver := data[MagicLen]; ver != Version {
		return nil, fmt.Errorf("%w: 0x%02X", errs.ErrUnsupportedVersion, ver)
	}

	return data[HeaderSize:], nil
}

// DecodeFramed verifies the envelope and decodes the SCB payload.
func DecodeFramed(data []byte, opts ...encoding.DecoderOption) (value.Value, error) {
	scb, err := StripFrame(data)
	if err != nil {
		return value.Value{}, err
	}

	return encoding.Decode(scb, opts...)
}
