package division

import "math/bits"

// Crossover points between the division algorithms, in limbs. They were
// measured for 64-bit limbs on one machine and should be re-benchmarked
// when the kernels or the target change; each can be tuned on its own.
const (
	// DCDivQRThreshold is the divisor length from which divide-and-conquer
	// replaces schoolbook division.
	DCDivQRThreshold = 51

	// DCDivApproxQThreshold is the same crossover for the approximate
	// quotient kernels.
	DCDivApproxQThreshold = 171

	// InvertNewtonThreshold is the reciprocal length from which Newton
	// iteration replaces a direct division.
	InvertNewtonThreshold = 170

	// InvertMulModThreshold is the length from which a Newton step uses a
	// product wrapped modulo B^m - 1 instead of a full product.
	InvertMulModThreshold = 38

	// MuDivQRThreshold and MuPIDivQRThreshold bound the region where
	// Barrett division beats divide-and-conquer; see Choose.
	MuDivQRThreshold   = 1442
	MuPIDivQRThreshold = 74

	// MuDivQRSkewThreshold: Barrett division divides only the top of a
	// divisor that is longer than the quotient by more than this.
	MuDivQRSkewThreshold = 100

	// MulToMulModBnm1For2NxNThreshold is the block length from which the
	// Barrett loop multiplies modulo B^m - 1.
	MulToMulModBnm1For2NxNThreshold = InvertMulModThreshold >> 1
)

// newtonSizes bounds the number of precisions a Newton inversion steps
// through, which is at most the number of times a length can be halved
// before it drops under InvertNewtonThreshold.
var newtonSizes = npows()

func npows() int {
	w := bits.UintSize
	if w > 48 {
		w = 48
	}
	return w - ceilLog2(InvertNewtonThreshold)
}

func ceilLog2(n int) int {
	return bits.Len(uint(n - 1))
}
