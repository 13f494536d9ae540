package qvarint

import (
	"io"
)

// Cursor is a read view over a contiguous byte buffer. Remaining reports
// how many unread bytes are left, so a decoder can check for truncation
// before consuming anything past the first byte.
type Cursor interface {
	Remaining() int
	ReadByte() (byte, error)
	Read(p []byte) (n int, err error)
}

// Sink is a bounded write target. Available reports the remaining
// capacity, so an encoder can refuse to start a write that cannot
// complete.
type Sink interface {
	Available() int
	Write(p []byte) (n int, err error)
}

// Buffer is a slice-backed Cursor and Sink over caller-owned bytes.
// The readable region is data[rpos:wpos], the writable region data[wpos:].
// Not safe for concurrent use; the caller owns the buffer.
type Buffer struct {
	data []byte
	rpos int
	wpos int
}

// NewBuffer wraps b for reading; the whole slice is the readable region.
func NewBuffer(b []byte) *Buffer {
	return &Buffer{data: b, wpos: len(b)}
}

// NewSinkBuffer wraps b for writing into its fixed capacity.
func NewSinkBuffer(b []byte) *Buffer {
	return &Buffer{data: b}
}

func (b *Buffer) Remaining() int {
	return b.wpos - b.rpos
}

func (b *Buffer) ReadByte() (byte, error) {
	if b.rpos >= b.wpos {
		return 0, io.EOF
	}
	c := b.data[b.rpos]
	b.rpos++
	return c, nil
}

func (b *Buffer) Read(p []byte) (int, error) {
	if b.rpos >= b.wpos && len(p) > 0 {
		return 0, io.EOF
	}
	n := copy(p, b.data[b.rpos:b.wpos])
	b.rpos += n
	return n, nil
}

func (b *Buffer) Available() int {
	return len(b.data) - b.wpos
}

func (b *Buffer) Write(p []byte) (int, error) {
	n := copy(b.data[b.wpos:], p)
	b.wpos += n
	if n < len(p) {
		return n, io.ErrShortWrite
	}
	return n, nil
}

// Bytes returns the written prefix of the underlying slice.
func (b *Buffer) Bytes() []byte {
	return b.data[:b.wpos]
}

// Reset discards all read and written bytes, keeping the capacity.
func (b *Buffer) Reset() {
	b.rpos = 0
	b.wpos = 0
}
