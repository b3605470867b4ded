package wire

import (
	"fmt"
	"io"

	"github.com/emagjby/strata/encoding"
	"github.com/emagjby/strata/endian"
	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/internal/pool"
	"github.com/emagjby/strata/value"
)

// FrameWriter writes length-prefixed SCB frames to an io.Writer. Each frame
// is a big-endian uint32 payload length followed by the payload; zero-length
// and oversized payloads are rejected before anything is written.
//
// Note: The FrameWriter is not safe for concurrent use.
type FrameWriter struct {
	w      io.Writer
	engine endian.EndianEngine
}

// NewFrameWriter creates a FrameWriter over w.
func NewFrameWriter(w io.Writer) *FrameWriter {
	return &FrameWriter{
		w:      w,
		engine: endian.GetBigEndianEngine(),
	}
}

// WriteFrame writes one frame carrying payload.
func (fw *FrameWriter) WriteFrame(payload []byte) error {
	if len(payload) == 0 {
		return errs.ErrZeroLengthFrame
	}
	if len(payload) > MaxFramePayload {
		return fmt.Errorf("%w: %d bytes", errs.ErrFrameTooLarge, len(payload))
	}

	frame := fw.engine.AppendUint32(pool.Get(), uint32(len(payload)))
	frame = append(frame, payload...)

	_, err := fw.w.Write(frame)
	pool.Put(frame)

	return err
}

// WriteValue canonically encodes v and writes it as one frame.
func (fw *FrameWriter) WriteValue(v value.Value) error {
	scb, err := encoding.Encode(v)
	if err != nil {
		return err
	}

	return fw.WriteFrame(scb)
}

// FrameReader reads length-prefixed SCB frames from an io.Reader.
//
// Note: The FrameReader is not safe for concurrent use.
type FrameReader struct {
	r       io.Reader
	engine  endian.EndianEngine
	decOpts []encoding.DecoderOption
	header  [FrameHeaderSize]byte
}

// NewFrameReader creates a FrameReader over r. The decoder options apply to
// NextValue.
func NewFrameReader(r io.Reader, opts ...encoding.DecoderOption) *FrameReader {
	return &FrameReader{
		r:       r,
		engine:  endian.GetBigEndianEngine(),
		decOpts: opts,
	}
}

// Next reads one frame and returns its payload as a freshly owned slice.
// A clean end of stream returns io.EOF; a stream truncated inside a header
// returns io.ErrUnexpectedEOF, and one truncated inside a payload returns
// ErrShortFrame.
func (fr *FrameReader) Next() ([]byte, error) {
	if _, err := io.ReadFull(fr.r, fr.header[:]); err != nil {
		// io.EOF on a frame boundary, io.ErrUnexpectedEOF mid-header.
		return nil, err
	}

	length := fr.engine.Uint32(fr.header[:])
	if length == 0 {
		return nil, errs.ErrZeroLengthFrame
	}
	if length > MaxFramePayload {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrFrameTooLarge, length)
	}

	payload := make([]byte, length)
	if _, err := io.ReadFull(fr.r, payload); err != nil {
		return nil, fmt.Errorf("%w: %v", errs.ErrShortFrame, err)
	}

	return payload, nil
}

// NextValue reads one frame and decodes its payload.
func (fr *FrameReader) NextValue() (value.Value, error) {
	payload, err := fr.Next()
	if err != nil {
		return value.Value{}, err
	}

	return encoding.Decode(payload, fr.decOpts...)
}
