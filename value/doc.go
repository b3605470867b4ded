// Package value defines the strata value algebra: a closed, seven-variant
// sum type over null, booleans, 64-bit signed integers, UTF-8 strings, byte
// sequences, lists and string-keyed maps.
//
// Values are finite trees built through the constructor functions (Null,
// Bool, Int, String, Bytes, List, Map, MapOf) and are treated as immutable
// once constructed: the canonical encoder takes a read-only view, and
// accessor methods that expose internal slices or maps document that the
// caller must not modify them.
//
// A map is logically unordered. Canonical key ordering is imposed by the
// encoder at serialisation time, not by this package; hosts may iterate a
// map in any order for inspection without affecting encoding or hashing.
package value
