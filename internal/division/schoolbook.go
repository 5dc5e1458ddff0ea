package division

import "github.com/shabbyrobe/go-natural/internal/limbs"

func checkNormalized(d []Limb, op string) {
	if len(d) == 0 || d[len(d)-1]&highBit == 0 {
		panic("division: " + op + ": divisor is not normalized")
	}
}

// DivSchoolbook divides n by the normalized divisor d, one quotient limb per
// step. It requires len(d) > 2, len(n) >= len(d) and len(q) == len(n)-len(d);
// inv is TwoLimbInverse of the divisor's top two limbs. The remainder is left
// in n[:len(d)] and the top quotient limb (0 or 1) is returned.
func DivSchoolbook(q, n, d []Limb, inv Limb) Limb {
	nn, dn := len(n), len(d)
	if dn <= 2 || nn < dn {
		panic("division: DivSchoolbook needs len(d) > 2 and len(n) >= len(d)")
	}
	if len(q) != nn-dn {
		panic("division: DivSchoolbook quotient must have len(n)-len(d) limbs")
	}
	checkNormalized(d, "DivSchoolbook")
	limbs.MustBeDisjoint(q, n, "DivSchoolbook quotient and numerator")
	limbs.MustBeDisjoint(d, n, "DivSchoolbook divisor and numerator")

	var qh Limb
	top := n[nn-dn:]
	if limbs.Cmp(top, d) >= 0 {
		limbs.SubVV(top, top, d)
		qh = 1
	}

	d1, d0 := d[dn-1], d[dn-2]
	dl := d[:dn-2]
	p := nn - 2
	n1 := n[p+1]
	for i := nn - dn - 1; i >= 0; i-- {
		p--
		lo := p - (dn - 2)
		var qq Limb
		if n1 == d1 && n[p+1] == d0 {
			qq = limbs.Max
			limbs.SubMulVVW(n[lo:p+2], d, qq)
			n1 = n[p+1]
		} else {
			var r limbs.DoubleLimb
			qq, r = DivMod3By2(n1, n[p+1], n[p], d1, d0, inv)
			var n0 Limb
			n1, n0 = r.SplitInHalf()
			cy := limbs.SubMulVVW(n[lo:p], dl, qq)
			cy1 := b2l(n0 < cy)
			n0 -= cy
			cy = b2l(n1 < cy1)
			n1 -= cy1
			n[p] = n0
			if cy != 0 {
				n1 += d1 + limbs.AddVV(n[lo:p+1], n[lo:p+1], d[:dn-1])
				qq--
			}
		}
		q[i] = qq
	}
	n[p+1] = n1
	return qh
}

// DivApproxSchoolbook computes a quotient of n by the normalized d that is
// either exact or one too large. It requires len(d) > 2, len(n) > len(d) and
// len(q) == len(n)-len(d), and returns the top quotient limb. n is used as
// scratch; it does not hold a remainder afterwards.
func DivApproxSchoolbook(q, n, d []Limb, inv Limb) Limb {
	nn, dn := len(n), len(d)
	if dn <= 2 || nn <= dn {
		panic("division: DivApproxSchoolbook needs len(d) > 2 and len(n) > len(d)")
	}
	qn := nn - dn
	if len(q) != qn {
		panic("division: DivApproxSchoolbook quotient must have len(n)-len(d) limbs")
	}
	checkNormalized(d, "DivApproxSchoolbook")
	limbs.MustBeDisjoint(q, n, "DivApproxSchoolbook quotient and numerator")
	limbs.MustBeDisjoint(d, n, "DivApproxSchoolbook divisor and numerator")

	// Only the top qn+1 divisor limbs can influence an approximate quotient.
	if qn+1 < dn {
		d = d[dn-(qn+1):]
		dn = qn + 1
	}

	var qh Limb
	top := n[nn-dn:]
	if limbs.Cmp(top, d) >= 0 {
		limbs.SubVV(top, top, d)
		qh = 1
	}

	qi := qn
	m := dn - 2
	d1, d0 := d[m+1], d[m]
	p := nn - 2
	n1 := n[p+1]

	// Full-width steps while there are more quotient limbs than divisor limbs.
	for i := qn - dn; i >= 0; i-- {
		p--
		lo := p - m
		var qq Limb
		if n1 == d1 && n[p+1] == d0 {
			qq = limbs.Max
			limbs.SubMulVVW(n[lo:p+2], d, qq)
			n1 = n[p+1]
		} else {
			var r limbs.DoubleLimb
			qq, r = DivMod3By2(n1, n[p+1], n[p], d1, d0, inv)
			var n0 Limb
			n1, n0 = r.SplitInHalf()
			cy := limbs.SubMulVVW(n[lo:p], d[:m], qq)
			cy1 := b2l(n0 < cy)
			n0 -= cy
			cy = b2l(n1 < cy1)
			n1 -= cy1
			n[p] = n0
			if cy != 0 {
				n1 += d1 + limbs.AddVV(n[lo:p+1], n[lo:p+1], d[:m+1])
				qq--
			}
		}
		qi--
		q[qi] = qq
	}

	// The remaining steps drop one low divisor limb each. Once an estimate
	// has overshot, flag is cleared and every later limb is saturated.
	flag := limbs.Max
	off := 0
	for i := m; i > 0; i-- {
		p--
		lo := p - m
		dv := d[off : off+m+2]
		var qq Limb
		if n1 >= d1&flag {
			qq = limbs.Max
			cy := limbs.SubMulVVW(n[lo:p+2], dv, qq)
			if n1 != cy {
				if n1 < cy&flag {
					qq--
					limbs.AddVV(n[lo:p+2], n[lo:p+2], dv)
				} else {
					flag = 0
				}
			}
			n1 = n[p+1]
		} else {
			var r limbs.DoubleLimb
			qq, r = DivMod3By2(n1, n[p+1], n[p], d1, d0, inv)
			var n0 Limb
			n1, n0 = r.SplitInHalf()
			cy := limbs.SubMulVVW(n[lo:p], dv[:m], qq)
			cy1 := b2l(n0 < cy)
			n0 -= cy
			cy = b2l(n1 < cy1)
			n1 -= cy1
			n[p] = n0
			if cy != 0 {
				n1 += d1 + limbs.AddVV(n[lo:p+1], n[lo:p+1], dv[:m+1])
				qq--
			}
		}
		qi--
		q[qi] = qq
		m--
		off++
	}

	p--
	dv := d[off : off+2]
	var qq Limb
	if n1 >= d1&flag {
		qq = limbs.Max
		cy := limbs.SubMulVVW(n[p:p+2], dv, qq)
		if n1 != cy && n1 < cy&flag {
			qq--
			s := limbs.JoinHalves(n[p+1], n[p]).Add(limbs.JoinHalves(dv[1], dv[0]))
			n[p+1], n[p] = s.SplitInHalf()
		}
	} else {
		var r limbs.DoubleLimb
		qq, r = DivMod3By2(n1, n[p+1], n[p], d1, d0, inv)
		n[p+1], n[p] = r.SplitInHalf()
	}
	q[qi-1] = qq
	return qh
}
