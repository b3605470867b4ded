// Package pool recycles the scratch slices behind the encode paths.
//
// Every hot producer in this repo follows the same shape: borrow an empty
// slice, extend it with append-style calls (the varint and value encoders
// are all append-based), then either hand the caller a right-sized owned
// copy or flush the slice to an io.Writer. The API is exactly those three
// moves: Get, Own, Put. There is no buffer type; the slice itself travels
// through the append chain and comes back possibly regrown.
package pool

import "sync"

const (
	// DefaultCapacity is the starting capacity of pooled scratch slices,
	// sized for typical single-value SCB payloads.
	DefaultCapacity = 4 * 1024

	// MaxRetainedCapacity bounds pool memory: scratch slices regrown past
	// it are dropped on Put instead of being retained.
	MaxRetainedCapacity = 1024 * 1024
)

// The pool stores *[]byte rather than []byte so Put does not allocate a
// fresh interface box per call.
var scratch = sync.Pool{
	New: func() any {
		b := make([]byte, 0, DefaultCapacity)
		return &b
	},
}

// Get borrows an empty scratch slice with pooled capacity. Append to it
// freely; pass the final slice (regrown or not) back through Put.
func Get() []byte {
	return (*scratch.Get().(*[]byte))[:0]
}

// Put returns b's backing array to the pool. Oversized arrays are dropped
// to keep pool memory bounded. b must not be used after Put.
func Put(b []byte) {
	if cap(b) == 0 || cap(b) > MaxRetainedCapacity {
		return
	}

	b = b[:0]
	scratch.Put(&b)
}

// Own returns a right-sized copy of b that the caller owns outright,
// detached from any pooled backing array.
func Own(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)

	return out
}
