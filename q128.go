package q128

// Q128 is a signed 128-bit fixed-point number in Q64.64 format: the top 64
// bits (hi) are the two's-complement signed integer part, the bottom 64
// bits (lo) are the unsigned fractional part in units of 2⁻⁶⁴.
//
// Q128 is a value type; all operations return new values.
type Q128 struct {
	hi, lo uint64
}

// FromRaw builds a Q128 directly from its two's-complement words.
func FromRaw(hi, lo uint64) Q128 { return Q128{hi: hi, lo: lo} }

// FromInt builds a Q128 representing the integer v. Values with
// |v| > 2⁶³−1 truncate to the low 64 bits of v's two's-complement
// representation, an accepted "accept-whatever-fits" behavior.
func FromInt(v int64) Q128 { return Q128{hi: uint64(v)} }

// Raw returns q's two's-complement words.
func (q Q128) Raw() (hi, lo uint64) { return q.hi, q.lo }

func (q Q128) u128() U128 { return U128{hi: q.hi, lo: q.lo} }

func (q Q128) IsZero() bool { return q == zeroQ128 }

// IsNeg reports whether q is negative: the sign bit of hi is set.
func (q Q128) IsNeg() bool { return int64(q.hi) < 0 }

// Sign returns -1, 0 or 1 according to the sign of q.
func (q Q128) Sign() int {
	if q.IsZero() {
		return 0
	}
	if q.IsNeg() {
		return -1
	}
	return 1
}

// Cmp returns -1, 0 or 1 as q is less than, equal to, or greater than by.
func (q Q128) Cmp(by Q128) int {
	if q.hi == by.hi {
		switch {
		case q.lo > by.lo:
			return 1
		case q.lo < by.lo:
			return -1
		default:
			return 0
		}
	}
	if int64(q.hi) > int64(by.hi) {
		return 1
	}
	return -1
}

func (q Q128) Equal(by Q128) bool { return q.hi == by.hi && q.lo == by.lo }

// Neg returns the two's complement negation of q.
func (q Q128) Neg() Q128 {
	n := q.u128().Neg()
	return Q128{hi: n.hi, lo: n.lo}
}

// Abs returns the absolute value of q. Abs(MinQ128) returns MinQ128,
// since MinQ128's magnitude is not representable (matches Go's integer
// Abs convention for the most negative value).
func (q Q128) Abs() Q128 {
	if q.IsNeg() {
		return q.Neg()
	}
	return q
}

func (q Q128) Add(by Q128) Q128 {
	r := q.u128().Add(by.u128())
	return Q128{hi: r.hi, lo: r.lo}
}

func (q Q128) Sub(by Q128) Q128 {
	r := q.u128().Sub(by.u128())
	return Q128{hi: r.hi, lo: r.lo}
}

func (q Q128) Min(by Q128) Q128 {
	if q.Cmp(by) < 0 {
		return q
	}
	return by
}

func (q Q128) Max(by Q128) Q128 {
	if q.Cmp(by) > 0 {
		return q
	}
	return by
}

// Floor returns q rounded toward negative infinity to the nearest integer.
func (q Q128) Floor() Q128 {
	// The two's-complement hi word already is the floor: lo adds a
	// non-negative fraction to it.
	return Q128{hi: q.hi}
}

// Ceil returns q rounded toward positive infinity to the nearest integer.
func (q Q128) Ceil() Q128 {
	hi := q.hi
	if q.lo != 0 {
		hi++
	}
	return Q128{hi: hi}
}

func (q Q128) Not() Q128 { return Q128{hi: ^q.hi, lo: ^q.lo} }
func (q Q128) And(by Q128) Q128 { return Q128{hi: q.hi & by.hi, lo: q.lo & by.lo} }
func (q Q128) Or(by Q128) Q128  { return Q128{hi: q.hi | by.hi, lo: q.lo | by.lo} }
func (q Q128) Xor(by Q128) Q128 { return Q128{hi: q.hi ^ by.hi, lo: q.lo ^ by.lo} }

// Lsh returns q shifted left by amount bits, mod 128.
func (q Q128) Lsh(amount uint) Q128 {
	r := q.u128().Lsh(amount)
	return Q128{hi: r.hi, lo: r.lo}
}

// Rsh returns q shifted right (logically, zero-filled) by amount bits, mod 128.
func (q Q128) Rsh(amount uint) Q128 {
	r := q.u128().Rsh(amount)
	return Q128{hi: r.hi, lo: r.lo}
}

// Sar returns q shifted right arithmetically (sign-extended) by amount
// bits, mod 128.
func (q Q128) Sar(amount uint) Q128 {
	amount &= 127
	switch {
	case amount == 0:
		return q
	case amount < 64:
		lo := (q.lo >> amount) | (q.hi << (64 - amount))
		hi := uint64(int64(q.hi) >> amount)
		return Q128{hi: hi, lo: lo}
	case amount == 64:
		return Q128{hi: uint64(int64(q.hi) >> 63), lo: q.hi}
	default:
		lo := uint64(int64(q.hi) >> (amount - 64))
		hi := uint64(int64(q.hi) >> 63)
		return Q128{hi: hi, lo: lo}
	}
}
