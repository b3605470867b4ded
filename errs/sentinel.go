package errs

import "errors"

// Sentinel errors for the wire framing layer. The wire package wraps these
// with per-call context using fmt.Errorf and %w.
var (
	// ErrBadMagic indicates a framed payload that does not start with the
	// STRATA1 magic.
	ErrBadMagic = errors.New("bad frame magic")

	// ErrUnsupportedVersion indicates a framed payload with an unknown
	// format version byte.
	ErrUnsupportedVersion = errors.New("unsupported format version")

	// ErrZeroLengthFrame indicates a streaming frame with a zero-length
	// payload.
	ErrZeroLengthFrame = errors.New("zero-length frame")

	// ErrFrameTooLarge indicates a streaming frame whose payload exceeds the
	// 16 MiB cap.
	ErrFrameTooLarge = errors.New("frame exceeds maximum payload size")

	// ErrShortFrame indicates a streaming frame truncated before its
	// declared payload length.
	ErrShortFrame = errors.New("truncated frame payload")
)
