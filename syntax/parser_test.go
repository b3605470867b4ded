package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emagjby/strata/errs"
	"github.com/emagjby/strata/value"
)

func TestParse_Scalars(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"null", value.Null()},
		{"true", value.Bool(true)},
		{"false", value.Bool(false)},
		{"42", value.Int(42)},
		{"-7", value.Int(-7)},
		{`"hi"`, value.String("hi")},
		{"0xDEAD", value.Bytes([]byte{0xDE, 0xAD})},
	}

	for _, tt := range tests {
		got, err := Parse(tt.src)
		require.NoError(t, err, "source %s", tt.src)
		require.True(t, tt.want.Equal(got), "source %s", tt.src)
	}
}

func TestParse_Lists(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"[]", value.List()},
		{"[1]", value.List(value.Int(1))},
		{"[1, 2, 3]", value.List(value.Int(1), value.Int(2), value.Int(3))},
		{"[1, 2,]", value.List(value.Int(1), value.Int(2))},
		{"[[1], []]", value.List(value.List(value.Int(1)), value.List())},
		{`[null, true, "s", 0xFF]`, value.List(value.Null(), value.Bool(true), value.String("s"), value.Bytes([]byte{0xFF}))},
	}

	for _, tt := range tests {
		got, err := Parse(tt.src)
		require.NoError(t, err, "source %s", tt.src)
		require.True(t, tt.want.Equal(got), "source %s", tt.src)
	}
}

func TestParse_Maps(t *testing.T) {
	tests := []struct {
		src  string
		want value.Value
	}{
		{"{}", value.Map(nil)},
		{"{ a: 1 }", value.MapOf(value.E("a", value.Int(1)))},
		{"{ a: 1, b: 2 }", value.MapOf(value.E("a", value.Int(1)), value.E("b", value.Int(2)))},
		{"{ a: 1, b: 2, }", value.MapOf(value.E("a", value.Int(1)), value.E("b", value.Int(2)))},
		// Implicit separators: a newline (or nothing) between entries when
		// the next token is an identifier.
		{"{ a: 1 b: 2 }", value.MapOf(value.E("a", value.Int(1)), value.E("b", value.Int(2)))},
		{"{\n  a: 1\n  b: 2\n}", value.MapOf(value.E("a", value.Int(1)), value.E("b", value.Int(2)))},
	}

	for _, tt := range tests {
		got, err := Parse(tt.src)
		require.NoError(t, err, "source %s", tt.src)
		require.True(t, tt.want.Equal(got), "source %s", tt.src)
	}
}

func TestParse_DuplicateKeysLastWriteWins(t *testing.T) {
	got, err := Parse("{ a: 1, a: 2 }")
	require.NoError(t, err)
	require.True(t, value.MapOf(value.E("a", value.Int(2))).Equal(got))
}

func TestParse_Shorthand(t *testing.T) {
	// Top-level shorthand desugars to a single-entry map.
	got, err := Parse("config { retries: 3 }")
	require.NoError(t, err)

	want := value.MapOf(value.E("config", value.MapOf(value.E("retries", value.Int(3)))))
	require.True(t, want.Equal(got))
}

func TestParse_ShorthandEntry(t *testing.T) {
	// Shorthand at map-entry position, mixed with plain entries and
	// implicit separators.
	src := `
		server {
			host: "localhost"
			limits { max: 10 }
			port: 8080
		}
	`

	got, err := Parse(src)
	require.NoError(t, err)

	want := value.MapOf(value.E("server", value.MapOf(
		value.E("host", value.String("localhost")),
		value.E("limits", value.MapOf(value.E("max", value.Int(10)))),
		value.E("port", value.Int(8080)),
	)))
	require.True(t, want.Equal(got))
}

func TestParse_ShorthandAsListElement(t *testing.T) {
	got, err := Parse("[ point { x: 1 }, point { x: 2 } ]")
	require.NoError(t, err)

	want := value.List(
		value.MapOf(value.E("point", value.MapOf(value.E("x", value.Int(1))))),
		value.MapOf(value.E("point", value.MapOf(value.E("x", value.Int(2))))),
	)
	require.True(t, want.Equal(got))
}

func TestParse_SemanticConfig(t *testing.T) {
	src := `
		config {
			enabled: true
			retries: 3
			name: "strata"
			empty: null
		}
	`

	got, err := Parse(src)
	require.NoError(t, err)

	want := value.MapOf(value.E("config", value.MapOf(
		value.E("enabled", value.Bool(true)),
		value.E("retries", value.Int(3)),
		value.E("name", value.String("strata")),
		value.E("empty", value.Null()),
	)))
	require.True(t, want.Equal(got))
}

func TestParse_SemanticProfile(t *testing.T) {
	src := `
		profile {
			id: 9007199254740993
			avatar_hash: 0x9f86d081884c7d659a2feaa0c55ad015
			tags: ["logistics", "state", "integrity"]
		}
	`

	got, err := Parse(src)
	require.NoError(t, err)

	want := value.MapOf(value.E("profile", value.MapOf(
		value.E("id", value.Int(9007199254740993)),
		value.E("avatar_hash", value.Bytes([]byte{
			0x9F, 0x86, 0xD0, 0x81, 0x88, 0x4C, 0x7D, 0x65,
			0x9A, 0x2F, 0xEA, 0xA0, 0xC5, 0x5A, 0xD0, 0x15,
		})),
		value.E("tags", value.List(
			value.String("logistics"),
			value.String("state"),
			value.String("integrity"),
		)),
	)))
	require.True(t, want.Equal(got))
}

func TestParse_CommentsInsideStructures(t *testing.T) {
	src := `{
		// first
		a: 1
		# second
		b: 2
	}`

	got, err := Parse(src)
	require.NoError(t, err)
	require.True(t, value.MapOf(value.E("a", value.Int(1)), value.E("b", value.Int(2))).Equal(got))
}

func TestParse_RequiresEOF(t *testing.T) {
	_, err := Parse("1 2")

	pe := requireParseError(t, err, errs.ParseUnexpectedToken)
	require.Equal(t, "end of input", pe.Expected)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		src  string
	}{
		{"empty input", ""},
		{"bare ident", "config"},
		{"ident without brace", "config : 1"},
		{"non-ident map key", "{ 1: 2 }"},
		{"missing colon", "{ a 1 }"},
		{"unclosed map", "{ a: 1"},
		{"unclosed list", "[1, 2"},
		{"list missing comma", "[1 2]"},
		{"double comma list", "[1,,2]"},
		{"map value missing", "{ a: }"},
		{"colon at top level", ":"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.src)
			requireParseError(t, err, errs.ParseUnexpectedToken)
		})
	}
}

func TestParse_ErrorSpans(t *testing.T) {
	_, err := Parse("{ a: 1,\n  !: 2 }")

	var pe *errs.ParseError
	require.ErrorAs(t, err, &pe)
	require.Equal(t, 2, pe.Span.Line)
	require.Equal(t, 3, pe.Span.Column)
}

func TestParse_IntegerOutOfRangeSurfaces(t *testing.T) {
	_, err := Parse("{ big: 9223372036854775808 }")
	requireParseError(t, err, errs.ParseIntegerOutOfRange)
}
