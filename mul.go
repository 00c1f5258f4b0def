package q128

// mulCore computes the Q64.64-scaled product of two unsigned magnitudes:
// it widens a·b to 256 bits and keeps the middle 128 bits (bits 64..191),
// rounding half-up on the discarded bit 63 of the low 128 bits. This is
// component C4, grounded on the portable branch of r128__umul in the
// original source.
//
// Bits above 191 of the true 256-bit product are discarded: multiply
// overflow wraps rather than saturates, matching the original and
// documented as an open design choice (spec component C6/§9).
func mulCore(a, b U128) U128 {
	p0hi, p0lo := mul64to128(a.lo, b.lo)
	round := p0lo >> 63
	acc := U128{lo: p0hi}.Add(U128{lo: round})

	p1hi, p1lo := mul64to128(a.hi, b.lo)
	acc = acc.Add(U128{hi: p1hi, lo: p1lo})

	p2hi, p2lo := mul64to128(a.lo, b.hi)
	acc = acc.Add(U128{hi: p2hi, lo: p2lo})

	_, p3lo := mul64to128(a.hi, b.hi)
	acc = acc.Add(U128{hi: p3lo})

	return acc
}

// Mul returns the Q64.64 product of q and by, per the signed-wrapper
// policy of component C6: extract and combine signs, multiply magnitudes
// with mulCore, reapply the sign.
func (q Q128) Mul(by Q128) Q128 {
	negSign := q.IsNeg() != by.IsNeg()
	qu, bu := q.u128(), by.u128()
	if q.IsNeg() {
		qu = qu.Neg()
	}
	if by.IsNeg() {
		bu = bu.Neg()
	}

	p := mulCore(qu, bu)
	out := Q128{hi: p.hi, lo: p.lo}
	if negSign {
		out = out.Neg()
	}
	return out
}
