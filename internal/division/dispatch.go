package division

import (
	"fmt"
	"strings"

	"github.com/shabbyrobe/go-natural/internal/limbs"
)

// Algorithm names a division kernel.
type Algorithm int

const (
	// Auto lets TDivQR pick a kernel from the operand sizes.
	Auto Algorithm = iota
	SingleLimb
	TwoLimb
	Schoolbook
	DivideAndConquer
	NewtonBarrett
)

var algorithmNames = [...]string{
	Auto:             "auto",
	SingleLimb:       "single-limb",
	TwoLimb:          "two-limb",
	Schoolbook:       "schoolbook",
	DivideAndConquer: "divide-and-conquer",
	NewtonBarrett:    "newton-barrett",
}

func (a Algorithm) String() string {
	if a >= 0 && int(a) < len(algorithmNames) {
		return algorithmNames[a]
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// ParseAlgorithm accepts the names returned by Algorithm.String, plus the
// short forms "sb", "dc" and "mu".
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(s) {
	case "sb":
		return Schoolbook, nil
	case "dc":
		return DivideAndConquer, nil
	case "mu", "barrett":
		return NewtonBarrett, nil
	}
	for i, n := range algorithmNames {
		if strings.EqualFold(s, n) {
			return Algorithm(i), nil
		}
	}
	return Auto, fmt.Errorf("division: unknown algorithm %q", s)
}

// Choose returns the kernel TDivQR uses for an nn-limb numerator and a
// dn-limb divisor, where nn already includes the extra limb the numerator
// gains when its top limb is not below the divisor's.
func Choose(nn, dn int) Algorithm {
	switch {
	case dn <= 0:
		panic("division: division by zero")
	case dn == 1:
		return SingleLimb
	case dn == 2:
		return TwoLimb
	case dn < DCDivQRThreshold:
		return Schoolbook
	}

	// Barrett division pays off only when both operands are large. The
	// product is computed in floating point so it cannot overflow an int.
	fn, fd := float64(nn), float64(dn)
	if dn < MuPIDivQRThreshold || nn < 2*MuDivQRThreshold ||
		2*float64(MuDivQRThreshold-MuPIDivQRThreshold)*fd+float64(MuPIDivQRThreshold)*fn > fd*fn {
		return DivideAndConquer
	}
	return NewtonBarrett
}

// TDivQR sets q = floor(n/d) and r = n mod d. d need not be normalized but
// its top limb must be non-zero. len(n) >= len(d), len(q) == len(n)-len(d)+1
// and len(r) == len(d) are required; n and d are left unchanged and the
// outputs must not overlap the inputs or each other.
func TDivQR(q, r, n, d []Limb) {
	tdivQR(Auto, q, r, n, d)
}

// TDivQRWith is TDivQR with the kernel forced to alg, for divisors of three
// or more limbs. Division by one or two limbs always uses those kernels.
// DivideAndConquer needs a divisor of at least six limbs.
func TDivQRWith(alg Algorithm, q, r, n, d []Limb) {
	tdivQR(alg, q, r, n, d)
}

func tdivQR(alg Algorithm, q, r, n, d []Limb) {
	nn, dn := len(n), len(d)
	if dn == 0 {
		panic("division: division by zero")
	}
	if nn < dn {
		panic("division: numerator shorter than divisor")
	}
	if len(q) != nn-dn+1 || len(r) != dn {
		panic("division: quotient must have len(n)-len(d)+1 limbs and remainder len(d)")
	}
	if d[dn-1] == 0 {
		panic("division: divisor has a zero top limb")
	}
	limbs.MustBeDisjoint(q, n, "quotient and numerator")
	limbs.MustBeDisjoint(r, n, "remainder and numerator")
	limbs.MustBeDisjoint(q, d, "quotient and divisor")
	limbs.MustBeDisjoint(r, d, "remainder and divisor")
	limbs.MustBeDisjoint(q, r, "quotient and remainder")

	switch dn {
	case 1:
		r[0] = DivLimb(q, n, d[0])
		return
	case 2:
		tdivBy2(q, r, n, d)
		return
	}

	switch alg {
	case Auto:
		adjust := 0
		if n[nn-1] >= d[dn-1] {
			adjust = 1
		}
		if nn+adjust >= 2*dn {
			tdivBalanced(Choose(nn+adjust, dn), adjust, q, r, n, d)
		} else {
			tdivShortQuotient(q, r, n, d, adjust)
		}
	case Schoolbook, NewtonBarrett:
		tdivBalanced(alg, 1, q, r, n, d)
	case DivideAndConquer:
		if dn < 6 {
			panic("division: divide-and-conquer needs a divisor of at least six limbs")
		}
		tdivBalanced(alg, 1, q, r, n, d)
	default:
		panic(fmt.Sprintf("division: %s cannot divide by a %d-limb divisor", alg, dn))
	}
}

func tdivBy2(q, r, n, d []Limb) {
	nn := len(n)
	if d[1]&highBit != 0 {
		n2 := make([]Limb, nn)
		copy(n2, n)
		q[nn-2] = DivRem2(q[:nn-2], n2, d)
		r[0], r[1] = n2[0], n2[1]
		return
	}

	s := limbs.LeadingZeros(d[1])
	a := limbs.NewArena(nn + 3)
	d2 := a.Alloc(2)
	d2[1] = d[1]<<s | d[0]>>(limbs.Width-s)
	d2[0] = d[0] << s
	n2 := a.Alloc(nn + 1)
	n2[nn] = limbs.ShlVU(n2[:nn], n, s)
	if n2[nn] != 0 {
		DivRem2(q, n2, d2)
	} else {
		q[nn-2] = DivRem2(q[:nn-2], n2[:nn], d2)
	}
	r[0] = n2[0]>>s | n2[1]<<(limbs.Width-s)
	r[1] = n2[1] >> s
}

// tdivBalanced normalizes both operands into fresh storage, extending the
// numerator by one limb when adjust is set, and runs alg on the result.
func tdivBalanced(alg Algorithm, adjust int, q, r, n, d []Limb) {
	nn, dn := len(n), len(d)
	nl := nn + adjust
	s := limbs.LeadingZeros(d[dn-1])

	size := nn + 1
	if s != 0 {
		size += dn
	}
	if alg == NewtonBarrett {
		size += MuDivQRScratchLen(nl, dn)
	}
	a := limbs.NewArena(size)

	n2 := a.Alloc(nn + 1)
	d2 := d
	if s != 0 {
		d2 = a.Alloc(dn)
		limbs.ShlVU(d2, d, s)
		n2[nn] = limbs.ShlVU(n2[:nn], n, s)
	} else {
		copy(n2, n)
	}
	n2 = n2[:nl]

	limbs.Clear(q[nl-dn:])
	qq := q[:nl-dn]
	rem := n2[:dn]

	switch alg {
	case Schoolbook:
		DivSchoolbook(qq, n2, d2, TwoLimbInverse(d2[dn-1], d2[dn-2]))
	case DivideAndConquer:
		DivDC(qq, n2, d2, TwoLimbInverse(d2[dn-1], d2[dn-2]))
	case NewtonBarrett:
		MuDivQR(qq, r, n2, d2, a.Alloc(MuDivQRScratchLen(nl, dn)))
		rem = r
	default:
		panic("division: unexpected kernel " + alg.String())
	}

	if s != 0 {
		limbs.ShrVU(r, rem, s)
	} else {
		copy(r, rem)
	}
}

// tdivShortQuotient handles a quotient shorter than the divisor. The
// quotient is estimated by dividing the top 2qn limbs of n by the top qn
// limbs of d, then the low divisor limbs are subtracted and the estimate
// is corrected by at most one.
func tdivShortQuotient(q, r, n, d []Limb, adjust int) {
	nn, dn := len(n), len(d)
	qn := nn - dn
	q[qn] = 0
	qn += adjust
	if qn == 0 {
		copy(r, n)
		return
	}
	in := dn - qn
	s := limbs.LeadingZeros(d[dn-1])
	alg := Choose(2*qn, qn)

	size := 2*qn + 1 + dn + dn + 1
	if s != 0 {
		size += qn
	}
	if alg == NewtonBarrett {
		size += qn + MuDivQRScratchLen(2*qn, qn)
	}
	a := limbs.NewArena(size)

	var d2, n2 []Limb
	if s != 0 {
		d2 = a.Alloc(qn)
		limbs.ShlVU(d2, d[in:], s)
		d2[0] |= d[in-1] >> (limbs.Width - s)

		n2 = a.Alloc(2*qn + 1)
		cy := limbs.ShlVU(n2[:2*qn], n[nn-2*qn:], s)
		if adjust != 0 {
			n2[2*qn] = cy
			n2 = n2[1:]
		} else {
			n2[0] |= n[nn-2*qn-1] >> (limbs.Width - s)
		}
	} else {
		d2 = d[in:]
		n2 = a.Alloc(2*qn + 1)
		copy(n2, n[nn-2*qn:])
		if adjust != 0 {
			n2 = n2[1:]
		}
	}
	n2 = n2[:2*qn]

	qq := q[:qn]
	switch alg {
	case SingleLimb:
		qq[0], n2[0] = limbs.JoinHalves(n2[1], n2[0]).QuoRemLimb(d2[0])
	case TwoLimb:
		DivRem2(qq, n2, d2)
	case Schoolbook:
		DivSchoolbook(qq, n2, d2, TwoLimbInverse(d2[qn-1], d2[qn-2]))
	case DivideAndConquer:
		DivDC(qq, n2, d2, TwoLimbInverse(d2[qn-1], d2[qn-2]))
	case NewtonBarrett:
		r2 := a.Alloc(qn)
		MuDivQR(qq, r2, n2, d2, a.Alloc(MuDivQRScratchLen(2*qn, qn)))
		copy(n2, r2)
	}

	// The estimate can be too large by one; catch the common case early
	// with the next divisor limb.
	rn := qn
	var dl Limb
	if in >= 2 {
		dl = d[in-2]
	}
	x := d[in-1]<<s | dl>>(limbs.Width-s)
	if h := limbs.MulLimbs(x, qq[qn-1]).Hi(); n2[qn-1] < h {
		limbs.Decr(qq)
		if cy := limbs.AddVV(n2[:qn], n2[:qn], d2); cy != 0 {
			n2[qn] = cy
			rn++
		}
	}

	var tooLarge Limb
	if s != 0 {
		// Shift the partial remainder back and take out the bits of
		// d[in-1] that went into d2.
		cy1 := limbs.ShlVU(n2[:rn], n2[:rn], limbs.Width-s)
		n2[0] |= n[in-1] & (limbs.Max >> s)
		cy2 := limbs.SubMulVVW(n2[:qn], qq, d[in-1]&(limbs.Max>>s))
		if qn != rn {
			n2[qn] -= cy2
		} else {
			n2[qn] = cy1 - cy2
			tooLarge = b2l(cy1 < cy2)
			rn++
		}
		in--
	}

	// rt has room for the limb a carry may push above the remainder.
	tp := a.Alloc(dn)
	rt := a.Alloc(dn + 1)
	if in == 0 {
		copy(rt, n2[:rn])
	} else {
		limbs.MulToOut(tp[:qn+in], qq, d[:in])
		tooLarge |= limbs.SubInPlace(n2[:rn], tp[in:in+qn])
		copy(rt[in:], n2[:rn])
		cy := limbs.SubVV(rt[:in], n[:in], tp[:in])
		tooLarge |= limbs.SubVW(rt[in:in+rn], rt[in:in+rn], cy)
	}

	if tooLarge != 0 {
		limbs.Decr(qq)
		limbs.AddVV(rt[:dn], rt[:dn], d)
	}
	copy(r, rt[:dn])
}
