package q128

import "math/bits"

// normalize128 shifts d left until its top bit is set and shifts n by the
// same amount, producing the three-word dividend (n1, n2, n3) — n1 is the
// (shifted) low word, n2 the (shifted) high word, n3 the extension word
// carrying the bits shifted out of the top — that Algorithm D needs to
// divide a 128-bit dividend by a 128-bit divisor in two quotient digits.
// When d's high word is zero the dividend sits one word higher instead:
// n3 and n2 hold the shifted high and low words and n1 is zero.
//
// overflow is set when the true quotient cannot fit in 128 bits.
func normalize128(n, d U128) (n1, n2, n3, d0, d1 uint64, shift uint, overflow bool) {
	d1, d0 = d.hi, d.lo
	n1, n2 = n.lo, n.hi

	if d1 != 0 {
		shift = uint(clz64(d1))
		if shift != 0 {
			d1 = (d1 << shift) | (d0 >> (64 - shift))
			d0 = d0 << shift
			n3 = n2 >> (64 - shift)
			n2 = (n2 << shift) | (n1 >> (64 - shift))
			n1 = n1 << shift
		}
		return n1, n2, n3, d0, d1, shift, false
	}

	shift = uint(clz64(d0))
	if n2 >= d0 {
		return 0, 0, 0, 0, 0, 0, true
	}
	if shift != 0 {
		d1 = d0 << shift
		d0 = 0
		n3 = (n2 << shift) | (n1 >> (64 - shift))
		n2 = n1 << shift
		n1 = 0
	} else {
		d1 = d0
		d0 = 0
		n3 = n2
		n2 = n1
		n1 = 0
	}
	return n1, n2, n3, d0, d1, shift, false
}

// refineDigit adjusts a trial quotient digit down (Knuth TAOCP §4.3.1,
// at most twice) until qhat·d0 no longer exceeds the dividend prefix
// rem·2⁶⁴ + lowWord.
func refineDigit(qhat, rem, d0, d1, lowWord uint64) (uint64, uint64) {
	for {
		hi, lo := mul64to128(qhat, d0)
		if hi < rem || (hi == rem && lo <= lowWord) {
			return qhat, rem
		}
		qhat--
		next, carry := bits.Add64(rem, d1, 0)
		if carry != 0 {
			return qhat, rem
		}
		rem = next
	}
}

// udivmod128 computes the Q64.64-scaled unsigned quotient q = ⌊n·2⁶⁴/d⌋
// and its remainder r = n·2⁶⁴ − q·d using normalization and the two-digit
// Knuth refinement of spec component C5. overflow is set when q does not
// fit in 128 bits, in which case q and r are not meaningful.
func udivmod128(n, d U128) (q, r U128, overflow bool) {
	n1, n2, n3, d0, d1, shift, overflow := normalize128(n, d)
	if overflow {
		return U128{}, U128{}, true
	}
	if d.hi == 0 {
		// the dividend was normalized one word higher
		shift += 64
	}

	windowA := U128{hi: n2, lo: n1}
	q1, rem1 := udiv128by64(n2, n3, d1)
	q1, _ = refineDigit(q1, rem1, d0, d1, n1)
	windowB := windowA.Sub(U128{lo: q1}.Mul(U128{hi: d1, lo: d0}))

	// windowB < d, so windowB.hi <= d1; when equal, Knuth's trial digit is
	// 2⁶⁴−1 with remainder windowB.lo + d1.
	q0 := uint64(maxUint64)
	if windowB.hi < d1 {
		var rem2 uint64
		q0, rem2 = udiv128by64(windowB.lo, windowB.hi, d1)
		q0, _ = refineDigit(q0, rem2, d0, d1, 0)
	} else if rem2, carry := bits.Add64(windowB.lo, d1, 0); carry == 0 {
		q0, _ = refineDigit(q0, rem2, d0, d1, 0)
	}
	windowC := U128{hi: windowB.lo}.Sub(U128{lo: q0}.Mul(U128{hi: d1, lo: d0}))

	return U128{hi: q1, lo: q0}, windowC.Rsh(shift), false
}

// utruncQuo128 computes only the high (first) Knuth quotient digit of
// n/d — the plain integer trunc(n/d) — without the second digit. It is
// grounded on r128__umod in the original source. The integer quotient
// fits in 64 bits exactly when normalize128 reports no overflow; overflow
// is set otherwise, as in udivmod128.
func utruncQuo128(n, d U128) (q1 uint64, overflow bool) {
	n1, n2, n3, d0, d1, _, overflow := normalize128(n, d)
	if overflow {
		return 0, true
	}
	q1, rem1 := udiv128by64(n2, n3, d1)
	q1, _ = refineDigit(q1, rem1, d0, d1, n1)
	return q1, false
}

// Quo returns the truncated (toward zero) quotient q.Quo(by), saturating
// to MinQ128/MaxQ128 on division by zero or on quotient overflow, per the
// signed-wrapper policy of spec component C6.
func (q Q128) Quo(by Q128) Q128 {
	negSign := q.IsNeg() != by.IsNeg()
	qu, bu := q.u128(), by.u128()
	if q.IsNeg() {
		qu = qu.Neg()
	}
	if by.IsNeg() {
		bu = bu.Neg()
	}
	if bu.IsZero() {
		if negSign {
			return MinQ128
		}
		return MaxQ128
	}

	ru, _, overflow := udivmod128(qu, bu)
	if overflow || int64(ru.hi) < 0 {
		if negSign {
			return MinQ128
		}
		return MaxQ128
	}

	out := Q128{hi: ru.hi, lo: ru.lo}
	if negSign {
		out = out.Neg()
	}
	return out
}

// Mod returns a − trunc(a/b)·b: truncated modulo, sign following the
// dividend, per spec component C6. Shares the divide-by-zero saturation
// policy of Quo.
func (q Q128) Mod(by Q128) Q128 {
	negSign := q.IsNeg() != by.IsNeg()
	qu, bu := q.u128(), by.u128()
	if q.IsNeg() {
		qu = qu.Neg()
	}
	if by.IsNeg() {
		bu = bu.Neg()
	}
	if bu.IsZero() {
		if negSign {
			return MinQ128
		}
		return MaxQ128
	}

	// |a| − trunc(|a|/|b|)·|b| is the integer remainder of the raw
	// magnitudes; it takes the dividend's sign.
	_, r := qu.QuoRem(bu)
	out := Q128{hi: r.hi, lo: r.lo}
	if q.IsNeg() {
		out = out.Neg()
	}
	return out
}
