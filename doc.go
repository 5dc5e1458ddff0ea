/*
Package natural provides arbitrary-precision natural numbers (Natural) and
signed integers (Integer), built around a family of GMP-style division
kernels.

Natural and Integer are value types; all operations return new values.

Simple example:

	n := MustNaturalFromString("340282366920938463463374607431768211457")
	q, r := n.QuoRem(NaturalFrom64(18446744073709551557))
	fmt.Println(q, r)

Division picks a kernel from the operand sizes: single-limb division by a
precomputed reciprocal, 3-by-2 division for two-limb divisors, schoolbook
division, divide-and-conquer division, and Newton/Barrett division driven by
an approximate reciprocal for very large operands. The kernels work on
little-endian limb vectors and live in internal/division.

Natural and Integer can be created from a variety of sources:

	NaturalFromLimb(v Limb) Natural
	NaturalFrom64(v uint64) Natural
	NaturalFrom32(v uint32) Natural
	NaturalFromLimbs(x []Limb) Natural
	NaturalFromString(s string) (out Natural, err error)
	NaturalFromBigInt(v *big.Int) (out Natural, accurate bool)
	IntegerFrom64(v int64) Integer
	IntegerFromNatural(n Natural) Integer
	IntegerFromString(s string) (out Integer, err error)
	IntegerFromBigInt(v *big.Int) Integer

Natural and Integer support the following formatting and marshalling
interfaces:

	- fmt.Formatter
	- fmt.Stringer
	- json.Marshaler
	- json.Unmarshaler
	- encoding.TextMarshaler
	- encoding.TextUnmarshaler

*/
package natural
