package internal

import (
	"sync"
)

// IsSpace reports whether the character is a JSON whitespace character
func IsSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

// Byte slice pool backing serialized output buffers
var byteSlicePool = sync.Pool{
	New: func() any {
		b := make([]byte, 0, 1024)
		return &b
	},
}

// GetByteSlice gets an empty byte slice from the pool
func GetByteSlice() *[]byte {
	b := byteSlicePool.Get().(*[]byte)
	*b = (*b)[:0]
	return b
}

// PutByteSlice returns a byte slice to the pool. Oversized slices are
// dropped so one large document does not pin memory.
func PutByteSlice(b *[]byte) {
	if b == nil {
		return
	}
	const maxByteSliceCap = 32 * 1024
	const minByteSliceCap = 256
	c := cap(*b)
	if c >= minByteSliceCap && c <= maxByteSliceCap {
		*b = (*b)[:0]
		byteSlicePool.Put(b)
	}
}
