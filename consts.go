package q128

import (
	"math/big"
)

const (
	maxUint64 = 1<<64 - 1
	maxInt64  = 1<<63 - 1
	minInt64  = -1 << 63

	minInt64Float = float64(minInt64) // -(1<<63), exact in float64

	// wrapUint64Float is 2⁶⁴, the Q64.64 scale factor as a float64.
	wrapUint64Float = float64(maxUint64) + 1
)

var (
	// MaxQ128 is the most positive representable value: 2⁶³ − 2⁻⁶⁴.
	MaxQ128 = Q128{hi: 0x7FFFFFFFFFFFFFFF, lo: 0xFFFFFFFFFFFFFFFF}

	// MinQ128 is the most negative representable value: −2⁶³.
	MinQ128 = Q128{hi: 0x8000000000000000, lo: 0}

	// SmallestQ128 is the smallest positive representable value: 2⁻⁶⁴.
	SmallestQ128 = Q128{hi: 0, lo: 1}

	// ZeroQ128 is the additive identity.
	ZeroQ128 = Q128{}

	// OneQ128 is the multiplicative identity.
	OneQ128 = Q128{hi: 1, lo: 0}

	// MaxU128 is the largest representable unsigned 128-bit value.
	MaxU128 = U128{hi: maxUint64, lo: maxUint64}

	zeroQ128 Q128
	zeroU128 U128
	oneU128  = U128{hi: 0, lo: 1}

	// DecimalPoint is the character consulted by FromString, ParseQ128, and the
	// formatter when scanning or emitting the decimal separator. It is
	// process-wide mutable state: callers that mutate it concurrently with
	// formatting or parsing own their own synchronization.
	DecimalPoint byte = '.'

	// minBigQ128/maxBigQ128 bound the integer part FromBigInt/AsBigInt can
	// round-trip: Q128's hi word is a plain int64, so these are just the
	// int64 bounds, not the full 128-bit raw range.
	minBigQ128 = big.NewInt(minInt64)
	maxBigQ128 = big.NewInt(maxInt64)

	// wrapBigU128 is 1 << 128, used to convert a negative raw two's
	// complement 128-bit integer into its unsigned bit-pattern value.
	wrapBigU128, _ = new(big.Int).SetString("340282366920938463463374607431768211456", 10)

	// bigTwo64 is 1 << 64, the Q64.64 scale factor.
	bigTwo64, _ = new(big.Int).SetString("18446744073709551616", 10)

	// wrapOverBigQ128/wrapUnderBigQ128 bound the raw 128-bit two's
	// complement integer (the Q64.64 value scaled by 2⁶⁴) that
	// FromBigRat's intermediate numerator must fit within.
	wrapOverBigQ128, _  = new(big.Int).SetString("0x80000000000000000000000000000000", 0)
	wrapUnderBigQ128, _ = new(big.Int).SetString("-0x80000000000000000000000000000001", 0)
)
