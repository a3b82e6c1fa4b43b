package mem

import (
	"bytes"

	"github.com/kernelfdt/fdtenv-go/pkg/env"
)

// Copy copies the first n bytes of src to dst. The ranges must not overlap;
// callers with potentially overlapping ranges use Move. n must not exceed the
// bounds of either slice.
func Copy(dst, src []byte, n int) {
	copy(dst[:n], src[:n])
}

// Move copies the first n bytes of src to dst and is correct even when the
// two ranges overlap. n must not exceed the bounds of either slice.
func Move(dst, src []byte, n int) {
	// The builtin copy has memmove semantics, so Copy and Move share an
	// implementation; only their contracts differ.
	copy(dst[:n], src[:n])
}

// Fill writes c into the first n bytes of dst. n must not exceed the bounds
// of dst.
func Fill(dst []byte, c byte, n int) {
	for i := range dst[:n] {
		dst[i] = c
	}
}

// Compare lexicographically compares the first n bytes of a and b, returning
// a negative, zero, or positive result. n = 0 always compares equal. n must
// not exceed the bounds of either slice.
func Compare(a, b []byte, n int) int {
	return bytes.Compare(a[:n], b[:n])
}

// Scan returns the offset of the first occurrence of c within the first n
// bytes of buf, or env.NotFound. n must not exceed the bounds of buf.
func Scan(buf []byte, c byte, n int) int {
	if i := bytes.IndexByte(buf[:n], c); i >= 0 {
		return i
	}
	return env.NotFound
}
