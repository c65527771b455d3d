// Package resource provides read-only views over data compiled into the
// program image.
package resource

import (
	"io"

	"github.com/zeebo/xxh3"
)

// ByteView holds an immutable view of bytes. The zero value is the empty view.
type ByteView struct {
	s string
}

// Of returns a view over s without copying it.
func Of(s string) ByteView {
	return ByteView{s: s}
}

// Len returns the view's length in bytes.
func (v ByteView) Len() int {
	return len(v.s)
}

// At returns the byte at index i. It panics if i is out of range.
func (v ByteView) At(i int) byte {
	return v.s[i]
}

// Equal reports whether the view holds exactly the bytes in b.
func (v ByteView) Equal(b []byte) bool {
	return v.s == string(b)
}

// EqualString reports whether the view holds exactly the bytes of s.
func (v ByteView) EqualString(s string) bool {
	return v.s == s
}

// String returns the data as a string. It does not copy.
func (v ByteView) String() string {
	return v.s
}

// Bytes returns a copy of the data as a byte slice.
func (v ByteView) Bytes() []byte {
	return []byte(v.s)
}

// WriteTo writes the data to w.
func (v ByteView) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, v.s)
	return int64(n), err
}

// Digest returns the xxh3 hash of the data.
func (v ByteView) Digest() uint64 {
	return xxh3.HashString(v.s)
}
