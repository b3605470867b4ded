// Package endian provides byte order utilities for the wire framing layer.
//
// It combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single EndianEngine interface so frame codecs can
// both read length words and append them without an intermediate buffer.
//
// SCB itself is endian-neutral (varints and length-prefixed bytes); only the
// streaming frame headers carry a fixed-width big-endian length word.
package endian

import "encoding/binary"

// EndianEngine combines ByteOrder and AppendByteOrder from encoding/binary.
// It is satisfied by binary.LittleEndian and binary.BigEndian. The returned
// engines are immutable, stateless and safe for concurrent use.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetLittleEndianEngine returns the little-endian engine.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}

// GetBigEndianEngine returns the big-endian engine. Streaming frame length
// words are big-endian on the wire.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}
