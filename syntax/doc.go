// Package syntax implements the textual frontend for strata source (.st):
// a byte-level lexer with source spans, a single-token-lookahead recursive
// descent parser producing values directly (the value algebra is the AST),
// and a deterministic pretty printer.
//
// The textual syntax is permissive where the binary form is strict: map
// entries may omit commas when the next entry starts with an identifier, a
// single trailing comma is legal before a closing bracket or brace,
// duplicate keys resolve last-write-wins, and the shorthand `name { ... }`
// desugars to `{ name: { ... } }`. The parser never reorders keys;
// canonical ordering is imposed by the encoder.
package syntax
