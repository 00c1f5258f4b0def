package q128

import (
	"fmt"
	"math/big"
	"regexp"
	"strings"
)

// floatDiffLimit is float64's machine epsilon, the tolerance used when
// comparing a float64 conversion against an exact big.Rat/big.Int result.
var floatDiffLimit, _ = new(big.Float).SetString("2.220446049250313080847263336181640625e-16")

var trimFloatPattern = regexp.MustCompile(`(\.0+$|(\.\d+[1-9])0+$)`)

func cleanFloatStr(str string) string {
	return trimFloatPattern.ReplaceAllString(str, "$2")
}

func bigs(s string) *big.Int {
	v, _ := new(big.Int).SetString(strings.Replace(s, " ", "", -1), 0)
	return v
}

func u128s(s string) U128 {
	b := bigs(s)
	out, acc := U128FromBigInt(b)
	if !acc {
		panic(fmt.Errorf("q128: inaccurate u128 %s", s))
	}
	return out
}

func u64(v uint64) U128 { return U128From64(v) }

// q128s parses a decimal Q128 literal like "-3.25" via ParseQ128 and panics
// on a parse error, for use in test table literals.
func q128s(s string) Q128 {
	out, _, err := ParseQ128(s)
	if err != nil {
		panic(err)
	}
	return out
}

var (
	big0           = big.NewInt(0)
	big1           = big.NewInt(1)
	maxBigUint64   = new(big.Int).SetUint64(maxUint64)
	maxBigU128Test = new(big.Int).Sub(wrapBigU128, big1)
)

// masks holds a precomputed set of bit masks for generating an even spread
// of magnitudes when fuzzing, as the teacher's rando helper does.
var masks [129]*big.Int

func init() {
	for i := 0; i <= 128; i++ {
		bi := new(big.Int)
		for b := 0; b < i; b++ {
			bi.SetBit(bi, b, 1)
		}
		masks[i] = bi
	}
}
