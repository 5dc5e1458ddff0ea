package division

import (
	"math/bits"

	"github.com/shabbyrobe/go-natural/internal/limbs"
)

type Limb = limbs.Limb

const highBit = limbs.HighBit

func b2l(b bool) Limb {
	if b {
		return 1
	}
	return 0
}

// LimbInverse returns floor((B^2-1)/d) - B for a normalized limb d.
func LimbInverse(d Limb) Limb {
	if d&highBit == 0 {
		panic("division: limb inverse of an unnormalized limb")
	}
	q, _ := bits.Div(uint(^d), uint(limbs.Max), uint(d))
	return Limb(q)
}

// DivMod2By1 divides (n1, n0) by the normalized limb d using its
// LimbInverse. n1 < d is required.
func DivMod2By1(n1, n0, d, inv Limb) (q, r Limb) {
	// Möller & Granlund, "Improved division by invariant integers",
	// algorithm 4.
	qq := limbs.MulLimbs(n1, inv).Add(limbs.JoinHalves(n1+1, n0))
	q, ql := qq.SplitInHalf()
	r = n0 - q*d
	if r > ql {
		q--
		r += d
	}
	if r >= d {
		q++
		r -= d
	}
	return q, r
}

// DivLimb sets q = n / d and returns n mod d. len(q) must equal len(n) and d
// must be non-zero; d need not be normalized. q may be n.
func DivLimb(q, n []Limb, d Limb) (r Limb) {
	if d == 0 {
		panic("division: single-limb division by zero")
	}
	if len(q) != len(n) {
		panic("division: DivLimb quotient length must equal numerator length")
	}
	if len(n) == 0 {
		return 0
	}

	s := limbs.LeadingZeros(d)
	d <<= s
	inv := LimbInverse(d)

	// Shift the numerator on the fly; a shift by Width yields zero.
	r = n[len(n)-1] >> (limbs.Width - s)
	for i := len(n) - 1; i >= 0; i-- {
		lo := n[i] << s
		if i > 0 {
			lo |= n[i-1] >> (limbs.Width - s)
		}
		q[i], r = DivMod2By1(r, lo, d, inv)
	}
	return r >> s
}

// TwoLimbInverse returns floor((B^3-1)/(d1*B+d0)) - B, the reciprocal used by
// DivMod3By2. d1 must have its high bit set.
func TwoLimbInverse(d1, d0 Limb) Limb {
	if d1&highBit == 0 {
		panic("division: two-limb inverse of an unnormalized divisor")
	}
	v := LimbInverse(d1)
	p := d1 * v
	p += d0
	if p < d0 {
		v--
		if p >= d1 {
			v--
			p -= d1
		}
		p -= d1
	}
	t1, t0 := limbs.MulLimbs(d0, v).SplitInHalf()
	p += t1
	if p < t1 {
		v--
		if p > d1 || (p == d1 && t0 >= d0) {
			v--
		}
	}
	return v
}

// DivMod3By2 divides (n2, n1, n0) by the normalized (d1, d0) and returns the
// one-limb quotient and the two-limb remainder. (n2, n1) < (d1, d0) is
// required and inv must be TwoLimbInverse(d1, d0).
func DivMod3By2(n2, n1, n0, d1, d0, inv Limb) (q Limb, r limbs.DoubleLimb) {
	qq := limbs.MulLimbs(n2, inv).Add(limbs.JoinHalves(n2, n1))
	q, q0 := qq.SplitInHalf()
	d := limbs.JoinHalves(d1, d0)

	// r = (n1 - q*d1, n0) - d - q*d0, computed modulo B^2
	r = limbs.JoinHalves(n1-d1*q, n0).Sub(d).Sub(limbs.MulLimbs(d0, q))
	q++
	if r.Hi() >= q0 {
		q--
		r = r.Add(d)
	}
	if r.GreaterOrEqualTo(d) {
		q++
		r = r.Sub(d)
	}
	return q, r
}

// DivRem2 divides n by the normalized two-limb d. The low len(n)-2 quotient
// limbs go to q, the remainder is left in n[:2] and the extra top quotient
// limb (0 or 1) is returned.
func DivRem2(q, n, d []Limb) Limb {
	if len(d) != 2 || len(n) < 2 {
		panic("division: DivRem2 needs a two-limb divisor and at least two numerator limbs")
	}
	if len(q) != len(n)-2 {
		panic("division: DivRem2 quotient must have len(n)-2 limbs")
	}
	if d[1]&highBit == 0 {
		panic("division: DivRem2 divisor is not normalized")
	}
	limbs.MustBeDisjoint(q, n, "DivRem2 quotient and numerator")

	d1, d0 := d[1], d[0]
	nn := len(n)
	r := limbs.JoinHalves(n[nn-1], n[nn-2])
	dd := limbs.JoinHalves(d1, d0)
	var qh Limb
	if r.GreaterOrEqualTo(dd) {
		r = r.Sub(dd)
		qh = 1
	}
	inv := TwoLimbInverse(d1, d0)
	for i := nn - 3; i >= 0; i-- {
		r1, r0 := r.SplitInHalf()
		q[i], r = DivMod3By2(r1, r0, n[i], d1, d0, inv)
	}
	n[1], n[0] = r.SplitInHalf()
	return qh
}
