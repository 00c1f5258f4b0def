package q128

import "fmt"

func isSpace(c byte) bool {
	switch c {
	case ' ', '\t', '\r', '\n', '\v':
		return true
	}
	return false
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isHexDigit(c byte) bool {
	return isDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func digitValue(c byte) uint64 {
	switch {
	case c >= '0' && c <= '9':
		return uint64(c - '0')
	case c >= 'a' && c <= 'f':
		return uint64(c-'a') + 10
	default:
		return uint64(c-'A') + 10
	}
}

// ParseQ128 parses s as a Q128, per component C7: optional leading
// whitespace, optional sign, optional "0x"/"0X" hex prefix (otherwise
// decimal), integer-part digits accumulated by repeated
// hi = hi·base + digit (wrapping on overflow), and — if the current
// DecimalPoint character follows — fractional digits consumed from the
// last back to the first via lo = (lo + digit·2⁶⁴) / base.
//
// consumed is the number of bytes of s that were part of the parsed
// number. err is non-nil only when consumed == 0: a fully unparseable
// input. A partial parse (trailing garbage) returns a nil error with
// consumed < len(s), matching r128FromString's endptr contract.
func ParseQ128(s string) (out Q128, consumed int, err error) {
	i := 0
	for i < len(s) && isSpace(s[i]) {
		i++
	}

	neg := false
	if i < len(s) && (s[i] == '-' || s[i] == '+') {
		neg = s[i] == '-'
		i++
	}

	base := uint64(10)
	if i+1 < len(s) && s[i] == '0' && (s[i+1] == 'x' || s[i+1] == 'X') {
		base = 16
		i += 2
	}

	var hi uint64
	wholeStart := i
	for i < len(s) {
		c := s[i]
		if base == 16 {
			if !isHexDigit(c) {
				break
			}
		} else if !isDigit(c) {
			break
		}
		hi = hi*base + digitValue(c)
		i++
	}
	if i == wholeStart && (i >= len(s) || s[i] != DecimalPoint) {
		// no integer digits and no fractional part either: nothing consumed
		return Q128{}, 0, fmt.Errorf("q128: %q is not a number", s)
	}

	var lo uint64
	if i < len(s) && s[i] == DecimalPoint {
		fracStart := i + 1
		j := fracStart
		for j < len(s) {
			c := s[j]
			if base == 16 {
				if !isHexDigit(c) {
					break
				}
			} else if !isDigit(c) {
				break
			}
			j++
		}
		for k := j - 1; k >= fracStart; k-- {
			lo, _ = udiv128by64(lo, digitValue(s[k]), base)
		}
		i = j
	}

	out = Q128{hi: hi, lo: lo}
	if neg {
		out = out.Neg()
	}
	return out, i, nil
}

// FromString parses s and returns the value, ignoring any unconsumed
// trailing characters. It returns an error only when no characters at
// all could be consumed as a number.
func FromString(s string) (Q128, error) {
	out, _, err := ParseQ128(s)
	return out, err
}
