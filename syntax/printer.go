package syntax

import (
	"strings"

	"github.com/emagjby/strata/value"
)

const indentUnit = "  "

// Format renders v as the canonical pretty form: two-space indentation, map
// entries one per line in ascending key order, list elements one per line
// with trailing commas. Identifier-safe map keys print bare; any other key
// prints quoted, which the textual grammar cannot re-parse — the pretty
// form is a deterministic human-readable view, not an encoding.
func Format(v value.Value) string {
	var sb strings.Builder
	writeValue(&sb, v, 0)

	return sb.String()
}

func writeValue(sb *strings.Builder, v value.Value, depth int) {
	switch v.Kind() {
	case value.KindList:
		writeList(sb, v, depth)
	case value.KindMap:
		writeMap(sb, v, depth)
	default:
		// Scalars share the compact rendering.
		sb.WriteString(v.String())
	}
}

func writeList(sb *strings.Builder, v value.Value, depth int) {
	items := v.List()
	if len(items) == 0 {
		sb.WriteString("[]")
		return
	}

	sb.WriteString("[\n")
	for _, item := range items {
		writeIndent(sb, depth+1)
		writeValue(sb, item, depth+1)
		sb.WriteString(",\n")
	}
	writeIndent(sb, depth)
	sb.WriteByte(']')
}

func writeMap(sb *strings.Builder, v value.Value, depth int) {
	keys := v.Keys()
	if len(keys) == 0 {
		sb.WriteString("{}")
		return
	}

	entries := v.Map()

	sb.WriteString("{\n")
	for _, k := range keys {
		writeIndent(sb, depth+1)
		if value.IsIdent(k) {
			sb.WriteString(k)
		} else {
			sb.WriteString(value.Quote(k))
		}
		sb.WriteString(": ")
		writeValue(sb, entries[k], depth+1)
		sb.WriteByte('\n')
	}
	writeIndent(sb, depth)
	sb.WriteByte('}')
}

func writeIndent(sb *strings.Builder, depth int) {
	for i := 0; i < depth; i++ {
		sb.WriteString(indentUnit)
	}
}
