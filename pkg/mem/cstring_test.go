package mem

import (
	"testing"

	"github.com/kernelfdt/fdtenv-go/pkg/env"
)

// cstr builds a NUL-terminated string the way it appears in a DTB strings
// block: the bytes followed by a terminator, with trailing slack.
func cstr(s string) []byte {
	b := make([]byte, len(s)+3)
	copy(b, s)
	b[len(s)+1] = 0xFF // slack past the terminator must never be read
	b[len(s)+2] = 0xFF
	return b
}

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		s    []byte
		want int
	}{
		{"simple", cstr("compatible"), 10},
		{"empty string", cstr(""), 0},
		{"unterminated slice", []byte("abc"), 3},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Length(tt.s); got != tt.want {
				t.Errorf("Length = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestLengthN(t *testing.T) {
	tests := []struct {
		name   string
		s      []byte
		maxlen int
		want   int
	}{
		{"terminator within bound", cstr("abc"), 10, 3},
		{"no terminator within bound", []byte("abcdef"), 4, 4},
		{"bound is exact length", []byte("abcd"), 4, 4},
		{"terminator at bound edge", cstr("abcd"), 4, 4},
		{"bound past slice", []byte("ab"), 10, 2},
		{"zero bound", cstr("abc"), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LengthN(tt.s, tt.maxlen); got != tt.want {
				t.Errorf("LengthN(%q, %d) = %d, want %d", tt.s, tt.maxlen, got, tt.want)
			}
		})
	}
}

func TestCompareN(t *testing.T) {
	tests := []struct {
		name string
		a, b []byte
		n    int
		want int
	}{
		{"equal full", cstr("reg"), cstr("reg"), 16, 0},
		{"terminator stops compare", cstr("reg"), cstr("regs"), 16, -1},
		{"prefix equal within n", cstr("interrupt-parent"), cstr("interrupts"), 9, 0},
		{"differs before n", cstr("abc"), cstr("abd"), 3, -1},
		{"greater", cstr("abd"), cstr("abc"), 3, 1},
		{"n zero", cstr("x"), cstr("y"), 0, 0},
		{"both empty", cstr(""), cstr(""), 4, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CompareN(tt.a, tt.b, tt.n); got != tt.want {
				t.Errorf("CompareN(%q, %q, %d) = %d, want %d", tt.a, tt.b, tt.n, got, tt.want)
			}
		})
	}
}

func TestIndexByte(t *testing.T) {
	tests := []struct {
		name string
		s    []byte
		c    byte
		want int
	}{
		{"first of several", cstr("banana"), 'a', 1},
		{"absent", cstr("banana"), 'z', env.NotFound},
		{"past terminator invisible", append(cstr("ab"), 'c', 0), 'c', env.NotFound},
		{"find terminator", cstr("abc"), 0, 3},
		{"path separator", cstr("/soc/uart@10000000"), '@', 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IndexByte(tt.s, tt.c); got != tt.want {
				t.Errorf("IndexByte(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.want)
			}
		})
	}
}

func TestLastIndexByte(t *testing.T) {
	tests := []struct {
		name string
		s    []byte
		c    byte
		want int
	}{
		{"last of several", cstr("banana"), 'a', 5},
		{"absent", cstr("banana"), 'z', env.NotFound},
		{"single occurrence", cstr("banana"), 'b', 0},
		{"find terminator", cstr("abc"), 0, 3},
		{"last path component", cstr("/soc/uart@10000000"), '/', 4},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastIndexByte(tt.s, tt.c); got != tt.want {
				t.Errorf("LastIndexByte(%q, %q) = %d, want %d", tt.s, tt.c, got, tt.want)
			}
		})
	}
}
