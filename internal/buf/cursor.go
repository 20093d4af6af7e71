package buf

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

var (
	// ErrTruncated indicates the buffer lacked the bytes required for a field.
	ErrTruncated = errors.New("buf: truncated buffer")
	// ErrInvalidString indicates a string field was not valid UTF-8.
	ErrInvalidString = errors.New("buf: string is not valid UTF-8")
)

// Cursor reads fixed-width integers and null-terminated strings
// sequentially from a byte buffer. Every read is bounds-checked and
// advances the cursor; a read past the end fails with ErrTruncated and
// leaves the offset where it was.
type Cursor struct {
	data []byte
	off  int
}

// NewCursor returns a cursor positioned at the start of data.
func NewCursor(data []byte) *Cursor {
	return &Cursor{data: data}
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Remaining returns the number of unread bytes.
func (c *Cursor) Remaining() int {
	return len(c.data) - c.off
}

// Bytes consumes and returns the next n bytes. The returned slice
// aliases the underlying buffer.
func (c *Cursor) Bytes(n int) ([]byte, error) {
	if n < 0 || c.Remaining() < n {
		return nil, fmt.Errorf("%d bytes at offset %d: %w", n, c.off, ErrTruncated)
	}
	b := c.data[c.off : c.off+n]
	c.off += n
	return b, nil
}

// Skip consumes n bytes without returning them.
func (c *Cursor) Skip(n int) error {
	_, err := c.Bytes(n)
	return err
}

// U8 consumes one byte.
func (c *Cursor) U8() (uint8, error) {
	b, err := c.Bytes(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

// U16BE consumes a big-endian uint16.
func (c *Cursor) U16BE() (uint16, error) {
	b, err := c.Bytes(2)
	if err != nil {
		return 0, err
	}
	return U16BE(b), nil
}

// U32LE consumes a little-endian uint32.
func (c *Cursor) U32LE() (uint32, error) {
	b, err := c.Bytes(4)
	if err != nil {
		return 0, err
	}
	return U32LE(b), nil
}

// U64LE consumes a little-endian uint64.
func (c *Cursor) U64LE() (uint64, error) {
	b, err := c.Bytes(8)
	if err != nil {
		return 0, err
	}
	return U64LE(b), nil
}

// CString consumes a null-terminated UTF-8 string, including its
// terminator. The terminator is not part of the returned string.
func (c *Cursor) CString() (string, error) {
	start := c.off
	for i := c.off; i < len(c.data); i++ {
		if c.data[i] != 0 {
			continue
		}
		s := c.data[start:i]
		if !utf8.Valid(s) {
			return "", fmt.Errorf("string at offset %d: %w", start, ErrInvalidString)
		}
		c.off = i + 1
		return string(s), nil
	}
	return "", fmt.Errorf("unterminated string at offset %d: %w", start, ErrTruncated)
}
