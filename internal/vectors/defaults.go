package vectors

import "math"

// DefaultWordVectors returns the canonical byte-order corpus. Values are
// chosen so that any byte-order mistake, partial swap, or width confusion
// flips at least one vector.
func DefaultWordVectors() []WordVector {
	return []WordVector{
		{Name: "zero16", Width: 16, Wire: "0000", Value: 0x0000},
		{Name: "one16", Width: 16, Wire: "0001", Value: 0x0001},
		{Name: "ascending16", Width: 16, Wire: "1234", Value: 0x1234},
		{Name: "high-byte16", Width: 16, Wire: "ff00", Value: 0xff00},
		{Name: "max16", Width: 16, Wire: "ffff", Value: 0xffff},

		{Name: "zero32", Width: 32, Wire: "00000000", Value: 0x00000000},
		{Name: "one32", Width: 32, Wire: "00000001", Value: 0x00000001},
		{Name: "ascending32", Width: 32, Wire: "12345678", Value: 0x12345678},
		{Name: "dtb-magic", Width: 32, Wire: "d00dfeed", Value: 0xd00dfeed},
		{Name: "max32", Width: 32, Wire: "ffffffff", Value: 0xffffffff},

		{Name: "zero64", Width: 64, Wire: "0000000000000000", Value: 0},
		{Name: "one64", Width: 64, Wire: "0000000000000001", Value: 1},
		{Name: "ascending64", Width: 64, Wire: "0123456789abcdef", Value: 0x0123456789abcdef},
		{Name: "max64", Width: 64, Wire: "ffffffffffffffff", Value: math.MaxUint64},
	}
}

// DefaultParseVectors returns the canonical numeric-parse corpus.
func DefaultParseVectors() []ParseVector {
	return []ParseVector{
		{Name: "hex-auto", Input: "0x1A", Base: 0, Value: 26, Consumed: 4},
		{Name: "hex-auto-upper", Input: "0X1a", Base: 0, Value: 26, Consumed: 4},
		{Name: "octal-auto", Input: "0755", Base: 0, Value: 0o755, Consumed: 4},
		{Name: "decimal-auto", Input: "4096", Base: 0, Value: 4096, Consumed: 4},
		{Name: "zero-auto", Input: "0", Base: 0, Value: 0, Consumed: 1},
		{Name: "bare-hex-prefix", Input: "0x", Base: 0, Value: 0, Consumed: 1},
		{Name: "empty", Input: "", Base: 10, Value: 0, Consumed: 0},
		{Name: "no-digits", Input: "g42", Base: 10, Value: 0, Consumed: 0},
		{Name: "stop-at-nondigit", Input: "123abc", Base: 10, Value: 123, Consumed: 3},
		{Name: "explicit-hex-prefixed", Input: "0xff", Base: 16, Value: 255, Consumed: 4},
		{Name: "explicit-hex-bare", Input: "ff", Base: 16, Value: 255, Consumed: 2},
		{Name: "binary", Input: "1011", Base: 2, Value: 11, Consumed: 4},
		{Name: "base36", Input: "zz", Base: 36, Value: 1295, Consumed: 2},
		{Name: "max64", Input: "18446744073709551615", Base: 10, Value: math.MaxUint64, Consumed: 20},
		{Name: "saturate-decimal", Input: "18446744073709551616", Base: 10, Value: math.MaxUint64, Consumed: 20},
		{Name: "saturate-hex", Input: "0x10000000000000000", Base: 0, Value: math.MaxUint64, Consumed: 19},
	}
}
