package value

// Null returns the null value.
func Null() Value {
	return Value{kind: KindNull}
}

// Bool returns a boolean value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Int returns a 64-bit signed integer value.
func Int(i int64) Value {
	return Value{kind: KindInt, i: i}
}

// String returns a text value. The canonical encoder validates UTF-8 at
// encode time; construction never fails.
func String(s string) Value {
	return Value{kind: KindString, s: s}
}

// Bytes returns an opaque byte-sequence value. The input is copied so the
// value owns its payload.
func Bytes(b []byte) Value {
	raw := make([]byte, len(b))
	copy(raw, b)

	return Value{kind: KindBytes, raw: raw}
}

// List returns an ordered list value over the given items.
func List(items ...Value) Value {
	list := make([]Value, len(items))
	copy(list, items)

	return Value{kind: KindList, list: list}
}

// Map returns a map value over a copy of entries.
func Map(entries map[string]Value) Value {
	m := make(map[string]Value, len(entries))
	for k, entry := range entries {
		m[k] = entry
	}

	return Value{kind: KindMap, m: m}
}

// Entry is a key/value pair for MapOf.
type Entry struct {
	Key string
	Val Value
}

// E constructs a map entry for MapOf.
func E(key string, val Value) Entry {
	return Entry{Key: key, Val: val}
}

// MapOf returns a map value built from the given entries in order, with
// duplicate keys resolved last-write-wins.
func MapOf(entries ...Entry) Value {
	m := make(map[string]Value, len(entries))
	for _, e := range entries {
		m[e.Key] = e.Val
	}

	return Value{kind: KindMap, m: m}
}
