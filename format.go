package q128

import "fmt"

// Format describes how to render a Q128 as a string. It mirrors the
// printf-style options of component C8: an optional sign flag, width,
// zero-padding, left-alignment, precision, and a flag to force a trailing
// decimal point even on an exact integer.
type Format struct {
	// Sign is 0 (print '-' only for negative values), '+' (always print a
	// sign), or ' ' (print a space in place of '+').
	Sign byte

	// Width is the minimum field width; 0 means no padding.
	Width int

	// Precision is the number of fractional digits to print, or -1 for
	// "as many as needed, up to 20". A value with no fractional bits prints
	// no decimal point and no fractional digits unless ForceDecimal is set.
	Precision int

	ZeroPad      bool
	LeftAlign    bool
	ForceDecimal bool
}

// DefaultFormat is the zero-value-equivalent format: no sign flag, no
// width, full (up to 20 digit) precision.
var DefaultFormat = Format{Precision: -1}

// String renders q with DefaultFormat. Grounded on r128ToString.
func (q Q128) String() string {
	return string(q.AppendFormat(nil, DefaultFormat))
}

// AppendFormat appends the rendering of q under opt to dst and returns
// the extended slice. Grounded on r128__format.
func (q Q128) AppendFormat(dst []byte, opt Format) []byte {
	tmp := q
	sign := false
	if tmp.IsNeg() {
		tmp = tmp.Neg()
		sign = true
	}

	width := opt.Width
	if width < 0 {
		width = 0
	}

	precision := opt.Precision
	fullPrecision := true
	if precision < 0 {
		fullPrecision = false
		precision = 20
	}

	var buf [128]byte
	var trail int
	if precision > len(buf)-21 {
		trail = precision - (len(buf) - 21)
		precision -= trail
	}

	whole := tmp.hi
	lo := tmp.lo
	cursor := 0
	decimal := 0

	if lo != 0 || opt.ForceDecimal {
		for lo != 0 || (fullPrecision && precision > 0) {
			if cursor == precision {
				if int64(lo) < 0 {
					carried := false
					for c := cursor - 1; c >= 0; c-- {
						if buf[c] != '9' {
							buf[c]++
							carried = true
							break
						}
						buf[c] = '0'
					}
					if !carried {
						whole++
					}
				}
				break
			}

			hi2, lo2 := mul64to128(lo, 10)
			buf[cursor] = byte(hi2) + '0'
			cursor++
			lo = lo2
		}

		if opt.ForceDecimal || precision > 0 {
			decimal = cursor
			buf[cursor] = DecimalPoint
			cursor++
		}
	}

	for {
		d := byte(whole % 10)
		whole /= 10
		buf[cursor] = d + '0'
		cursor++
		if whole == 0 {
			break
		}
	}

	padCount := width - cursor - 1

	writeSign := func() {
		switch {
		case sign:
			dst = append(dst, '-')
		case opt.Sign == '+':
			dst = append(dst, '+')
		case opt.Sign == ' ':
			dst = append(dst, ' ')
		default:
			padCount++
		}
	}

	if !opt.LeftAlign {
		padChar := byte(' ')
		if opt.ZeroPad {
			padChar = '0'
			writeSign()
		} else if !sign && opt.Sign != '+' && opt.Sign != ' ' {
			padCount++
		}
		for ; padCount > 0; padCount-- {
			dst = append(dst, padChar)
		}
	}

	if opt.LeftAlign || !opt.ZeroPad {
		writeSign()
	}

	for i := cursor - 1; i >= decimal; i-- {
		dst = append(dst, buf[i])
	}
	for i := 0; i < decimal; i++ {
		dst = append(dst, buf[i])
	}

	if opt.LeftAlign {
		padChar := byte(' ')
		if opt.ZeroPad {
			padChar = '0'
		}
		for ; padCount > 0; padCount-- {
			dst = append(dst, padChar)
		}
	}

	for ; trail > 0; trail-- {
		dst = append(dst, '0')
	}

	return dst
}

// Formatf renders q using a printf-style format string in the shape
// "[flags][width][.precision]", flags being any of ' ', '+', '0', '-',
// '#'. Grounded on r128ToStringf.
func Formatf(format string, q Q128) string {
	return string(q.AppendFormat(nil, ParseFormat(format)))
}

// ParseFormat parses the flags/width/precision portion of a printf-style
// verb (a leading '%' is optional and skipped if present) into a Format.
func ParseFormat(format string) Format {
	opt := DefaultFormat
	i := 0
	if i < len(format) && format[i] == '%' {
		i++
	}

	for i < len(format) {
		switch format[i] {
		case ' ':
			if opt.Sign != '+' {
				opt.Sign = ' '
			}
		case '+':
			opt.Sign = '+'
		case '0':
			opt.ZeroPad = true
		case '-':
			opt.LeftAlign = true
		case '#':
			opt.ForceDecimal = true
		default:
			goto width
		}
		i++
	}

width:
	opt.Width = 0
	for i < len(format) && isDigit(format[i]) {
		opt.Width = opt.Width*10 + int(format[i]-'0')
		i++
	}

	if i < len(format) && format[i] == '.' {
		opt.Precision = 0
		i++
		for i < len(format) && isDigit(format[i]) {
			opt.Precision = opt.Precision*10 + int(format[i]-'0')
			i++
		}
	}

	return opt
}

// Format implements fmt.Formatter so Q128 values work with the standard
// verbs %v, %s and %f, honoring width, precision and the space/plus/minus/
// zero/hash flags.
func (q Q128) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'f':
	default:
		fmt.Fprintf(s, "%%!%c(q128.Q128=%s)", verb, q.String())
		return
	}

	opt := Format{Precision: -1}
	if w, ok := s.Width(); ok {
		opt.Width = w
	}
	if p, ok := s.Precision(); ok {
		opt.Precision = p
	}
	if s.Flag('+') {
		opt.Sign = '+'
	} else if s.Flag(' ') {
		opt.Sign = ' '
	}
	opt.ZeroPad = s.Flag('0')
	opt.LeftAlign = s.Flag('-')
	opt.ForceDecimal = s.Flag('#')

	s.Write(q.AppendFormat(nil, opt))
}

func (q Q128) MarshalText() ([]byte, error) { return q.AppendFormat(nil, DefaultFormat), nil }

func (q *Q128) UnmarshalText(bts []byte) error {
	v, _, err := ParseQ128(string(bts))
	if err != nil {
		return err
	}
	*q = v
	return nil
}

func (q Q128) MarshalJSON() ([]byte, error) {
	out := make([]byte, 0, 24)
	out = append(out, '"')
	out = q.AppendFormat(out, DefaultFormat)
	out = append(out, '"')
	return out, nil
}

func (q *Q128) UnmarshalJSON(bts []byte) error {
	if len(bts) >= 2 && bts[0] == '"' && bts[len(bts)-1] == '"' {
		bts = bts[1 : len(bts)-1]
	}
	return q.UnmarshalText(bts)
}
