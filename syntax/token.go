package syntax

import (
	"fmt"

	"github.com/emagjby/strata/errs"
)

// TokenKind identifies a lexical token.
type TokenKind uint8

const (
	TokenEOF      TokenKind = 0x0 // TokenEOF marks the end of input.
	TokenNull     TokenKind = 0x1 // TokenNull is the keyword null.
	TokenTrue     TokenKind = 0x2 // TokenTrue is the keyword true.
	TokenFalse    TokenKind = 0x3 // TokenFalse is the keyword false.
	TokenInt      TokenKind = 0x4 // TokenInt is an integer literal.
	TokenString   TokenKind = 0x5 // TokenString is a string literal.
	TokenBytes    TokenKind = 0x6 // TokenBytes is a 0x… bytes literal.
	TokenIdent    TokenKind = 0x7 // TokenIdent is an identifier.
	TokenLBrace   TokenKind = 0x8 // TokenLBrace is '{'.
	TokenRBrace   TokenKind = 0x9 // TokenRBrace is '}'.
	TokenLBracket TokenKind = 0xA // TokenLBracket is '['.
	TokenRBracket TokenKind = 0xB // TokenRBracket is ']'.
	TokenColon    TokenKind = 0xC // TokenColon is ':'.
	TokenComma    TokenKind = 0xD // TokenComma is ','.
)

func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "end of input"
	case TokenNull:
		return "'null'"
	case TokenTrue:
		return "'true'"
	case TokenFalse:
		return "'false'"
	case TokenInt:
		return "integer"
	case TokenString:
		return "string"
	case TokenBytes:
		return "bytes"
	case TokenIdent:
		return "identifier"
	case TokenLBrace:
		return "'{'"
	case TokenRBrace:
		return "'}'"
	case TokenLBracket:
		return "'['"
	case TokenRBracket:
		return "']'"
	case TokenColon:
		return "':'"
	case TokenComma:
		return "','"
	default:
		return "unknown token"
	}
}

// Token is one lexical token with its source span. Int, Text and Bytes are
// payload fields, populated according to Kind (Text holds both string
// literal contents and identifier names).
type Token struct {
	Kind  TokenKind
	Span  errs.Span
	Int   int64
	Text  string
	Bytes []byte
}

// describe renders the token for "found ..." diagnostics.
func (t Token) describe() string {
	switch t.Kind {
	case TokenIdent:
		return fmt.Sprintf("identifier %q", t.Text)
	case TokenInt:
		return fmt.Sprintf("integer %d", t.Int)
	default:
		return t.Kind.String()
	}
}
