/*
Package q128 provides Q128, a signed 128-bit fixed-point number in Q64.64
format: 64 bits of two's-complement integer part, 64 bits of fractional
part, each unit of the fractional part worth 2⁻⁶⁴.

Q128 is a value type; all operations return new values.

Simple example:

	a := q128.FromInt(3)
	b := q128.OneQ128.Quo(q128.FromInt(2))
	fmt.Println(a.Mul(b))
	// Output: 1.5

Q128 can be created from a variety of sources:

	FromRaw(hi, lo uint64) Q128
	FromInt(v int64) Q128
	FromFloat64(v float64) Q128
	FromString(s string) (out Q128, err error)
	FromBigInt(v *big.Int) Q128
	FromBigRat(v *big.Rat) (out Q128, exact bool)

Q128 supports the following formatting and marshalling interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

The package also exposes U128, the unsigned 128-bit helper type that Q128's
multiply and divide cores are built from, in case callers need raw unsigned
128-bit arithmetic without the Q64.64 interpretation.
*/
package q128
