// Package errs defines the closed error taxonomy shared by all strata
// components.
//
// Each stage of the pipeline reports its own typed error:
//
//   - ParseError: lexer/parser failures, carrying a source Span
//   - DecodeError: SCB decode failures, carrying a byte offset
//   - EncodeError: canonical encode failures, kind-only
//
// Transport-level failures (bad magic, oversized frames) are plain sentinel
// errors wrapped with context by the wire package. Callers discriminate with
// errors.As / errors.Is; no error in this package wraps another.
package errs

import "fmt"

// Span is a position in textual source: a byte offset plus a 1-indexed
// line and column. A '\n' increments the line and resets the column; every
// other byte increments the column.
type Span struct {
	Offset int
	Line   int
	Column int
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d (offset %d)", s.Line, s.Column, s.Offset)
}

// ParseErrorKind identifies the category of a lexer or parser failure.
type ParseErrorKind uint8

const (
	// ParseUnexpectedToken reports a token that cannot continue the grammar.
	ParseUnexpectedToken ParseErrorKind = 0x1
	// ParseMalformedLiteral reports a malformed string or bytes literal.
	ParseMalformedLiteral ParseErrorKind = 0x2
	// ParseIntegerOutOfRange reports an integer literal outside int64 range.
	ParseIntegerOutOfRange ParseErrorKind = 0x3
)

func (k ParseErrorKind) String() string {
	switch k {
	case ParseUnexpectedToken:
		return "unexpected token"
	case ParseMalformedLiteral:
		return "malformed literal"
	case ParseIntegerOutOfRange:
		return "integer out of range"
	default:
		return "unknown parse error"
	}
}

// ParseError is a lexer or parser failure at a known source position.
// Expected and Found are only set for ParseUnexpectedToken.
type ParseError struct {
	Kind     ParseErrorKind
	Span     Span
	Expected string
	Found    string
}

func (e *ParseError) Error() string {
	if e.Kind == ParseUnexpectedToken && e.Expected != "" {
		return fmt.Sprintf("%s at %s: expected %s, found %s", e.Kind, e.Span, e.Expected, e.Found)
	}

	return fmt.Sprintf("%s at %s", e.Kind, e.Span)
}

// NewParseError creates a ParseError of the given kind at span.
func NewParseError(kind ParseErrorKind, span Span) *ParseError {
	return &ParseError{Kind: kind, Span: span}
}

// NewUnexpectedToken creates a ParseUnexpectedToken error with the
// expected/found descriptions used in diagnostics.
func NewUnexpectedToken(span Span, expected, found string) *ParseError {
	return &ParseError{
		Kind:     ParseUnexpectedToken,
		Span:     span,
		Expected: expected,
		Found:    found,
	}
}

// DecodeErrorKind identifies the category of an SCB decode failure.
type DecodeErrorKind uint8

const (
	// DecodeInvalidTag reports an unknown or misplaced tag byte.
	DecodeInvalidTag DecodeErrorKind = 0x1
	// DecodeUnexpectedEOF reports input exhausted mid-value.
	DecodeUnexpectedEOF DecodeErrorKind = 0x2
	// DecodeInvalidVarint reports a varint whose shift reaches 64 bits while
	// a continuation byte is still pending.
	DecodeInvalidVarint DecodeErrorKind = 0x3
	// DecodeInvalidUTF8 reports a String payload that is not valid UTF-8.
	DecodeInvalidUTF8 DecodeErrorKind = 0x4
	// DecodeTrailingBytes reports unconsumed input after the top-level value.
	DecodeTrailingBytes DecodeErrorKind = 0x5
	// DecodeNonCanonicalOrder reports a map whose keys are not in strictly
	// ascending byte order. Only produced by strict-mode decoding.
	DecodeNonCanonicalOrder DecodeErrorKind = 0x6
)

func (k DecodeErrorKind) String() string {
	switch k {
	case DecodeInvalidTag:
		return "invalid tag"
	case DecodeUnexpectedEOF:
		return "unexpected EOF"
	case DecodeInvalidVarint:
		return "invalid varint"
	case DecodeInvalidUTF8:
		return "invalid UTF-8"
	case DecodeTrailingBytes:
		return "trailing bytes"
	case DecodeNonCanonicalOrder:
		return "non-canonical key order"
	default:
		return "unknown decode error"
	}
}

// DecodeError is an SCB decode failure. Offset is the byte position at which
// the problem was detected: at most the input length, pointing at or
// immediately after the first unacceptable byte. Tag is only set for
// DecodeInvalidTag.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int
	Tag    byte
}

func (e *DecodeError) Error() string {
	if e.Kind == DecodeInvalidTag {
		return fmt.Sprintf("%s 0x%02X at offset %d", e.Kind, e.Tag, e.Offset)
	}

	return fmt.Sprintf("%s at offset %d", e.Kind, e.Offset)
}

// NewDecodeError creates a DecodeError of the given kind at offset.
func NewDecodeError(kind DecodeErrorKind, offset int) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset}
}

// NewInvalidTag creates a DecodeInvalidTag error for the given tag byte.
func NewInvalidTag(tag byte, offset int) *DecodeError {
	return &DecodeError{Kind: DecodeInvalidTag, Offset: offset, Tag: tag}
}

// EncodeErrorKind identifies the category of a canonical encode failure.
type EncodeErrorKind uint8

const (
	// EncodeDuplicateKey reports duplicate map keys in the host
	// representation. Unreachable with the native map-backed Value.
	EncodeDuplicateKey EncodeErrorKind = 0x1
	// EncodeInvalidUTF8 reports a String payload or map key that is not
	// valid UTF-8.
	EncodeInvalidUTF8 EncodeErrorKind = 0x2
	// EncodeInvalidInteger reports an out-of-range integer in the host
	// representation. Never produced for an Int of the native int64-backed
	// Value; the encoder returns it for the invalid zero Value.
	EncodeInvalidInteger EncodeErrorKind = 0x3
)

func (k EncodeErrorKind) String() string {
	switch k {
	case EncodeDuplicateKey:
		return "duplicate map key"
	case EncodeInvalidUTF8:
		return "invalid UTF-8"
	case EncodeInvalidInteger:
		return "invalid integer"
	default:
		return "unknown encode error"
	}
}

// EncodeError is a canonical encode failure. Encode errors are kind-only:
// the encoder walks host values, not positioned input.
type EncodeError struct {
	Kind EncodeErrorKind
}

func (e *EncodeError) Error() string {
	return fmt.Sprintf("encode: %s", e.Kind)
}

// NewEncodeError creates an EncodeError of the given kind.
func NewEncodeError(kind EncodeErrorKind) *EncodeError {
	return &EncodeError{Kind: kind}
}
