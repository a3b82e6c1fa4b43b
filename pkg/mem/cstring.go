package mem

import (
	"bytes"

	"github.com/kernelfdt/fdtenv-go/pkg/env"
)

// Length returns the number of bytes in s before its NUL terminator. The scan
// never reads past the terminator; if s holds no NUL the whole slice is the
// string and len(s) is returned.
func Length(s []byte) int {
	if i := bytes.IndexByte(s, 0); i >= 0 {
		return i
	}
	return len(s)
}

// LengthN scans at most maxlen bytes of s for a NUL terminator and returns
// the string length, or exactly maxlen if no terminator occurs within the
// bound. maxlen is clamped to len(s).
func LengthN(s []byte, maxlen int) int {
	if maxlen > len(s) {
		maxlen = len(s)
	}
	if i := bytes.IndexByte(s[:maxlen], 0); i >= 0 {
		return i
	}
	return maxlen
}

// CompareN compares two NUL-terminated strings, examining at most n bytes and
// stopping early at a terminator in either string. Returns a negative, zero,
// or positive result.
func CompareN(a, b []byte, n int) int {
	for i := 0; i < n; i++ {
		ca, cb := byteAt(a, i), byteAt(b, i)
		if ca != cb {
			if ca < cb {
				return -1
			}
			return 1
		}
		if ca == 0 {
			return 0
		}
	}
	return 0
}

// IndexByte returns the offset of the first occurrence of c in the
// NUL-terminated string s, or env.NotFound. Searching for NUL locates the
// terminator itself.
func IndexByte(s []byte, c byte) int {
	end := Length(s)
	if c == 0 {
		if end < len(s) {
			return end
		}
		return env.NotFound
	}
	if i := bytes.IndexByte(s[:end], c); i >= 0 {
		return i
	}
	return env.NotFound
}

// LastIndexByte returns the offset of the last occurrence of c in the
// NUL-terminated string s, or env.NotFound. Searching for NUL locates the
// terminator itself.
func LastIndexByte(s []byte, c byte) int {
	end := Length(s)
	if c == 0 {
		if end < len(s) {
			return end
		}
		return env.NotFound
	}
	if i := bytes.LastIndexByte(s[:end], c); i >= 0 {
		return i
	}
	return env.NotFound
}

// byteAt reads s[i], treating the end of the slice as a terminator so string
// operations stay total on unterminated input.
func byteAt(s []byte, i int) byte {
	if i < len(s) {
		return s[i]
	}
	return 0
}
