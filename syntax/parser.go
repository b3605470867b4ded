package syntax

import (
	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/value"
)

// Parser consumes the lexer's token stream with single-token lookahead and
// produces a Value directly.
type Parser struct {
	lex *Lexer
	tok Token
}

// NewParser creates a Parser over src with the first token already read.
func NewParser(src string) (*Parser, error) {
	p := &Parser{lex: NewLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}

	return p, nil
}

// Parse parses a complete source text into a single value. Anything but EOF
// after the top-level value is an error.
func Parse(src string) (value.Value, error) {
	p, err := NewParser(src)
	if err != nil {
		return value.Value{}, err
	}

	v, err := p.ParseValue()
	if err != nil {
		return value.Value{}, err
	}

	if p.tok.Kind != TokenEOF {
		return value.Value{}, errs.NewUnexpectedToken(p.tok.Span, "end of input", p.tok.describe())
	}

	return v, nil
}

func (p *Parser) advance() error {
	tok, err := p.lex.Next()
	if err != nil {
		return err
	}
	p.tok = tok

	return nil
}

func (p *Parser) unexpected(expected string) error {
	return errs.NewUnexpectedToken(p.tok.Span, expected, p.tok.describe())
}

// ParseValue parses one value at the current position. The shorthand
// `name { ... }` is accepted wherever a value is expected and desugars to a
// single-entry map.
func (p *Parser) ParseValue() (value.Value, error) {
	switch p.tok.Kind {
	case TokenNull:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Null(), nil

	case TokenTrue:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Bool(true), nil

	case TokenFalse:
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Bool(false), nil

	case TokenInt:
		n := p.tok.Int
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Int(n), nil

	case TokenString:
		s := p.tok.Text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.String(s), nil

	case TokenBytes:
		raw := p.tok.Bytes
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Bytes(raw), nil

	case TokenIdent:
		name := p.tok.Text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}
		if p.tok.Kind != TokenLBrace {
			return value.Value{}, p.unexpected("'{' to begin shorthand map")
		}
		inner, err := p.parseMap()
		if err != nil {
			return value.Value{}, err
		}

		return value.MapOf(value.E(name, inner)), nil

	case TokenLBracket:
		return p.parseList()

	case TokenLBrace:
		return p.parseMap()

	default:
		return value.Value{}, p.unexpected("value")
	}
}

// parseList parses '[' (value (',' value)* ','?)? ']'. Lists require
// explicit commas; only a single trailing comma is tolerated.
func (p *Parser) parseList() (value.Value, error) {
	if err := p.advance(); err != nil { // consume '['
		return value.Value{}, err
	}

	var items []value.Value

	if p.tok.Kind == TokenRBracket {
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.List(items...), nil
	}

	for {
		item, err := p.ParseValue()
		if err != nil {
			return value.Value{}, err
		}
		items = append(items, item)

		switch p.tok.Kind {
		case TokenComma:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			if p.tok.Kind == TokenRBracket {
				if err := p.advance(); err != nil {
					return value.Value{}, err
				}

				return value.List(items...), nil
			}

		case TokenRBracket:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}

			return value.List(items...), nil

		default:
			return value.Value{}, p.unexpected("',' or ']'")
		}
	}
}

// parseMap parses a map body. Entries are `key: value` or the shorthand
// `key { ... }`; separators are commas or implicit when the next token is
// an identifier starting another entry. Duplicate keys resolve
// last-write-wins without reordering anything.
func (p *Parser) parseMap() (value.Value, error) {
	if err := p.advance(); err != nil { // consume '{'
		return value.Value{}, err
	}

	entries := make(map[string]value.Value)

	if p.tok.Kind == TokenRBrace {
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		return value.Map(entries), nil
	}

	for {
		if p.tok.Kind != TokenIdent {
			return value.Value{}, p.unexpected("map key")
		}
		key := p.tok.Text
		if err := p.advance(); err != nil {
			return value.Value{}, err
		}

		var entry value.Value
		var err error
		if p.tok.Kind == TokenLBrace {
			// shorthand entry: key { ... }
			entry, err = p.parseMap()
		} else {
			if p.tok.Kind != TokenColon {
				return value.Value{}, p.unexpected("':' or '{'")
			}
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			entry, err = p.ParseValue()
		}
		if err != nil {
			return value.Value{}, err
		}

		entries[key] = entry

		switch p.tok.Kind {
		case TokenComma:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}
			if p.tok.Kind == TokenRBrace {
				if err := p.advance(); err != nil {
					return value.Value{}, err
				}

				return value.Map(entries), nil
			}

		case TokenRBrace:
			if err := p.advance(); err != nil {
				return value.Value{}, err
			}

			return value.Map(entries), nil

		case TokenIdent:
			// implicit separator: next entry follows directly

		default:
			return value.Value{}, p.unexpected("',', '}' or another entry")
		}
	}
}
