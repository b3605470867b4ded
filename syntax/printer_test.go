package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/emagjby/strata/value"
)

func TestFormat_Scalars(t *testing.T) {
	require.Equal(t, "null", Format(value.Null()))
	require.Equal(t, "true", Format(value.Bool(true)))
	require.Equal(t, "false", Format(value.Bool(false)))
	require.Equal(t, "-42", Format(value.Int(-42)))
	require.Equal(t, `"hi"`, Format(value.String("hi")))
	require.Equal(t, "0xdead", Format(value.Bytes([]byte{0xDE, 0xAD})))
}

func TestFormat_EmptyContainers(t *testing.T) {
	require.Equal(t, "[]", Format(value.List()))
	require.Equal(t, "{}", Format(value.Map(nil)))
}

func TestFormat_List(t *testing.T) {
	got := Format(value.List(value.Int(1), value.String("x")))

	want := "[\n  1,\n  \"x\",\n]"
	require.Equal(t, want, got)
}

func TestFormat_MapCanonicalOrderAndBareKeys(t *testing.T) {
	v := value.MapOf(
		value.E("z", value.Int(1)),
		value.E("a", value.Int(2)),
	)

	want := "{\n  a: 2\n  z: 1\n}"
	require.Equal(t, want, Format(v))
}

func TestFormat_QuotesNonIdentKeys(t *testing.T) {
	v := value.MapOf(
		value.E("valid_key", value.Int(1)),
		value.E("has space", value.Int(2)),
		value.E("null", value.Int(3)),
	)

	want := "{\n  \"has space\": 2\n  \"null\": 3\n  valid_key: 1\n}"
	require.Equal(t, want, Format(v))
}

func TestFormat_Nested(t *testing.T) {
	v := value.MapOf(value.E("config", value.MapOf(
		value.E("tags", value.List(value.String("a"))),
		value.E("on", value.Bool(true)),
	)))

	want := "{\n" +
		"  config: {\n" +
		"    on: true\n" +
		"    tags: [\n" +
		"      \"a\",\n" +
		"    ]\n" +
		"  }\n" +
		"}"
	require.Equal(t, want, Format(v))
}

func TestFormat_ReparsesToSameValue(t *testing.T) {
	// For values expressible in the grammar, formatting then parsing is the
	// identity.
	values := []value.Value{
		value.Null(),
		value.Int(-5),
		value.String("line\nbreak"),
		value.Bytes([]byte{0xAB}),
		value.List(value.Int(1), value.List(value.Bool(false))),
		value.MapOf(
			value.E("a", value.Int(1)),
			value.E("nested", value.MapOf(value.E("k", value.String("v")))),
		),
	}

	for _, v := range values {
		back, err := Parse(Format(v))
		require.NoError(t, err, "formatted: %s", Format(v))
		require.True(t, v.Equal(back))
	}
}

func TestFormat_Deterministic(t *testing.T) {
	v := value.MapOf(
		value.E("b", value.Int(2)),
		value.E("a", value.Int(1)),
	)

	first := Format(v)
	for i := 0; i < 5; i++ {
		require.Equal(t, first, Format(v))
	}
}
