package jsonvalue

import (
	"io"

	"github.com/cybergodev/jsonvalue/internal"
)

// Buffer holds serialized JSON text. Buffers come from a pool: the caller
// owns a Buffer returned by ToBuffer and must hand it back with Release.
// The bytes must not be used after Release.
type Buffer struct {
	buf *[]byte
}

// Bytes returns the serialized text. The slice is only valid until Release.
func (b *Buffer) Bytes() []byte {
	if b == nil || b.buf == nil {
		return nil
	}
	return *b.buf
}

// String returns a copy of the serialized text
func (b *Buffer) String() string {
	return string(b.Bytes())
}

// Len returns the number of serialized bytes
func (b *Buffer) Len() int {
	return len(b.Bytes())
}

// WriteTo writes the serialized text to w
func (b *Buffer) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(b.Bytes())
	return int64(n), err
}

// Release returns the buffer to the pool. Releasing twice is a no-op.
func (b *Buffer) Release() {
	if b == nil || b.buf == nil {
		return
	}
	internal.PutByteSlice(b.buf)
	b.buf = nil
}

// ToBuffer serializes v to compact JSON. The root may be of any kind.
// An empty value fails with ErrEmptyValue and returns no buffer.
func (v *Value) ToBuffer() (*Buffer, error) {
	if v.IsEmpty() {
		err := emptyError("to_buffer", "")
		v.logFailure("to_buffer", "", &err)
		return nil, err
	}
	buf := internal.GetByteSlice()
	out, err := v.getCodec().appendNode(*buf, v.node)
	if err != nil {
		internal.PutByteSlice(buf)
		return nil, err
	}
	*buf = out
	return &Buffer{buf: buf}, nil
}

// WriteTo serializes v to w as compact JSON
func (v *Value) WriteTo(w io.Writer) (int64, error) {
	b, err := v.ToBuffer()
	if err != nil {
		return 0, err
	}
	defer b.Release()
	return b.WriteTo(w)
}
