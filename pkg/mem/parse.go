package mem

import "github.com/kernelfdt/fdtenv-go/pkg/env"

// invalidDigit is larger than the digit value of any base in [2,36].
const invalidDigit = 0xFF

// ParseUint parses an unsigned integer from the front of s and returns the
// value together with the number of bytes consumed.
//
// base 0 auto-detects the radix: a "0x"/"0X" prefix followed by a hex digit
// selects 16, a leading '0' selects 8, anything else selects 10. An explicit
// base must lie in [2,36]; base 16 also accepts the optional "0x" prefix.
//
// No leading whitespace is skipped; parsing stops at the first byte that is
// not a digit of the chosen radix. An empty digit sequence yields (0, 0). On
// overflow the result saturates to env.MaxUint64 while the remaining digits
// are still consumed.
//
// A base outside {0} and [2,36] is a caller bug; the result (0, 0) for that
// case is unspecified behavior, not part of the contract.
func ParseUint(s []byte, base int) (uint64, int) {
	if base != 0 && (base < 2 || base > 36) {
		return 0, 0
	}

	i := 0
	hexPrefix := len(s) >= 3 &&
		s[0] == '0' && (s[1] == 'x' || s[1] == 'X') && digitVal(s[2]) < 16
	switch base {
	case 0:
		switch {
		case hexPrefix:
			i, base = 2, 16
		case len(s) >= 1 && s[0] == '0':
			base = 8
		default:
			base = 10
		}
	case 16:
		if hexPrefix {
			i = 2
		}
	}

	var (
		v         uint64
		saturated bool
	)
	start := i
	for ; i < len(s); i++ {
		d := digitVal(s[i])
		if d >= uint64(base) {
			break
		}
		if v > (env.MaxUint64-d)/uint64(base) {
			saturated = true
			continue
		}
		v = v*uint64(base) + d
	}
	if i == start {
		return 0, 0
	}
	if saturated {
		return env.MaxUint64, i
	}
	return v, i
}

// digitVal returns the numeric value of c as a digit, accepting 0-9, a-z, and
// A-Z, or invalidDigit for anything else.
func digitVal(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'z':
		return uint64(c-'a') + 10
	case c >= 'A' && c <= 'Z':
		return uint64(c-'A') + 10
	}
	return invalidDigit
}
