package q128

import (
	"math"
	"math/big"
)

// ToInt returns the integer part of q, truncated toward negative infinity
// in the sense that it is simply the raw two's-complement hi word: q's
// fractional bits are discarded. Grounded on r128ToInt.
func (q Q128) ToInt() int64 { return int64(q.hi) }

// FromFloat64 converts v to the nearest representable Q128, saturating to
// MinQ128/MaxQ128 when v is outside [−2⁶³, 2⁶³). Grounded on r128FromFloat.
func FromFloat64(v float64) Q128 {
	switch {
	case v < minInt64Float:
		return MinQ128
	case v >= -minInt64Float: // 2⁶³
		return MaxQ128
	}

	sign := false
	if v < 0 {
		v = -v
		sign = true
	}

	whole := int64(v)
	frac := v - float64(whole)
	out := Q128{hi: uint64(whole), lo: uint64(math.Round(frac * wrapUint64Float))}
	if sign {
		out = out.Neg()
	}
	return out
}

// ToFloat64 converts q to the nearest float64, with the usual float64
// precision loss once the magnitude exceeds 2⁵³. Grounded on r128ToFloat.
func (q Q128) ToFloat64() float64 {
	tmp := q
	sign := false
	if tmp.IsNeg() {
		tmp = tmp.Neg()
		sign = true
	}
	d := float64(tmp.hi) + float64(tmp.lo)*(1.0/wrapUint64Float)
	if sign {
		d = -d
	}
	return d
}

// FromBigInt converts a big.Int to a Q128 with a zero fractional part,
// saturating to MinQ128/MaxQ128 on overflow.
func FromBigInt(v *big.Int) Q128 {
	if v.Cmp(minBigQ128) < 0 {
		return MinQ128
	}
	if v.Cmp(maxBigQ128) > 0 {
		return MaxQ128
	}
	return Q128{hi: uint64(v.Int64())}
}

// AsBigInt returns the integer part of q as a big.Int, discarding the
// fractional bits. See AsRat for an exact, scale-preserving conversion.
func (q Q128) AsBigInt() *big.Int {
	return big.NewInt(int64(q.hi))
}

// AsRat returns the exact value of q as a big.Rat: (hi·2⁶⁴ + lo) / 2⁶⁴,
// reinterpreted as signed. Unlike ToFloat64, this conversion is exact.
func (q Q128) AsRat() *big.Rat {
	mag := q.u128()
	neg := q.IsNeg()
	if neg {
		mag = mag.Neg()
	}
	n := mag.AsBigInt()
	if neg {
		n.Neg(n)
	}
	return new(big.Rat).SetFrac(n, bigTwo64)
}

// FromBigRat converts a big.Rat to a Q128 by truncating v·2⁶⁴ toward zero,
// saturating to MinQ128/MaxQ128 on overflow. exact reports whether the
// conversion lost no precision.
func FromBigRat(v *big.Rat) (out Q128, exact bool) {
	scaled := new(big.Rat).Mul(v, new(big.Rat).SetInt(bigTwo64))
	n := new(big.Int).Quo(scaled.Num(), scaled.Denom())
	exact = scaled.IsInt()

	if n.Cmp(wrapUnderBigQ128) <= 0 {
		return MinQ128, false
	}
	if n.Cmp(wrapOverBigQ128) >= 0 {
		return MaxQ128, false
	}

	var u big.Int
	if n.Sign() < 0 {
		u.Add(n, wrapBigU128)
	} else {
		u.Set(n)
	}
	raw, _ := U128FromBigInt(&u)
	return Q128{hi: raw.hi, lo: raw.lo}, exact
}
