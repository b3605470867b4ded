package wire

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/value"
)

func TestFrameWriter_Layout(t *testing.T) {
	var buf bytes.Buffer
	fw := NewFrameWriter(&buf)

	require.NoError(t, fw.WriteFrame([]byte{0x10, 0x01}))

	// Big-endian uint32 length, then the payload.
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x02, 0x10, 0x01}, buf.Bytes())
}

func TestFrameWriter_RejectsEmptyPayload(t *testing.T) {
	fw := NewFrameWriter(io.Discard)

	require.ErrorIs(t, fw.WriteFrame(nil), errs.ErrZeroLengthFrame)
}

func TestFrameWriter_RejectsOversizedPayload(t *testing.T) {
	fw := NewFrameWriter(io.Discard)

	err := fw.WriteFrame(make([]byte, MaxFramePayload+1))
	require.ErrorIs(t, err, errs.ErrFrameTooLarge)
}

func TestFrameWriter_AcceptsMaxPayload(t *testing.T) {
	fw := NewFrameWriter(io.Discard)

	require.NoError(t, fw.WriteFrame(make([]byte, MaxFramePayload)))
}

func TestStream_RoundTrip(t *testing.T) {
	values := []value.Value{
		value.Int(42),
		value.String("hello"),
		value.MapOf(value.E("answer", value.Int(42))),
	}

	var transport bytes.Buffer
	fw := NewFrameWriter(&transport)
	for _, v := range values {
		require.NoError(t, fw.WriteValue(v))
	}

	fr := NewFrameReader(&transport)
	for _, want := range values {
		got, err := fr.NextValue()
		require.NoError(t, err)
		require.True(t, want.Equal(got))
	}

	_, err := fr.Next()
	require.ErrorIs(t, err, io.EOF)
}

func TestFrameReader_NextReturnsPayload(t *testing.T) {
	var transport bytes.Buffer
	fw := NewFrameWriter(&transport)
	require.NoError(t, fw.WriteValue(value.Int(1)))

	fr := NewFrameReader(&transport)
	payload, err := fr.Next()
	require.NoError(t, err)

	scb, err := encoding.Encode(value.Int(1))
	require.NoError(t, err)
	require.Equal(t, scb, payload)
}

func TestFrameReader_ZeroLengthFrame(t *testing.T) {
	fr := NewFrameReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x00}))

	_, err := fr.Next()
	require.ErrorIs(t, err, errs.ErrZeroLengthFrame)
}

func TestFrameReader_OversizedFrame(t *testing.T) {
	// Declares 16MiB+1.
	fr := NewFrameReader(bytes.NewReader([]byte{0x01, 0x00, 0x00, 0x01}))

	_, err := fr.Next()
	require.ErrorIs(t, err, errs.ErrFrameTooLarge)
}

func TestFrameReader_TruncatedHeader(t *testing.T) {
	fr := NewFrameReader(bytes.NewReader([]byte{0x00, 0x00}))

	_, err := fr.Next()
	require.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestFrameReader_TruncatedPayload(t *testing.T) {
	fr := NewFrameReader(bytes.NewReader([]byte{0x00, 0x00, 0x00, 0x05, 0x10}))

	_, err := fr.Next()
	require.ErrorIs(t, err, errs.ErrShortFrame)
}

func TestFrameReader_LenientOptionAppliesToValues(t *testing.T) {
	// A frame whose map keys are unsorted: rejected strictly, accepted
	// leniently.
	unsorted := []byte{
		0x40, 0x02,
		0x20, 0x01, 0x62, 0x10, 0x02,
		0x20, 0x01, 0x61, 0x10, 0x01,
	}

	var transport bytes.Buffer
	fw := NewFrameWriter(&transport)
	require.NoError(t, fw.WriteFrame(unsorted))
	raw := transport.Bytes()

	strict := NewFrameReader(bytes.NewReader(raw))
	_, err := strict.NextValue()
	var de *errs.DecodeError
	require.ErrorAs(t, err, &de)
	require.Equal(t, errs.DecodeNonCanonicalOrder, de.Kind)

	lenient := NewFrameReader(bytes.NewReader(raw), encoding.WithLenientKeyOrder())
	got, err := lenient.NextValue()
	require.NoError(t, err)
	require.True(t, value.MapOf(
		value.E("a", value.Int(1)),
		value.E("b", value.Int(2)),
	).Equal(got))
}
