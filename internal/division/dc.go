package division

import "github.com/shabbyrobe/go-natural/internal/limbs"

// DivDCn divides the 2n-limb n by the normalized n-limb d by splitting the
// quotient into two halves, each found by a recursive 2k/k division followed
// by a correction with the ignored divisor limbs. len(q) == len(d) and
// len(tp) >= len(d) are required, and len(d) >= 6. The remainder is left in
// n[:len(d)] and the top quotient limb is returned.
func DivDCn(q, n, d []Limb, inv Limb, tp []Limb) Limb {
	dn := len(d)
	if dn < 6 {
		panic("division: DivDCn needs at least six divisor limbs")
	}
	if len(n) != 2*dn || len(q) != dn || len(tp) < dn {
		panic("division: DivDCn operand lengths must be 2n/n with n limbs of quotient and scratch")
	}
	checkNormalized(d, "DivDCn")
	limbs.MustBeDisjoint(q, n, "DivDCn quotient and numerator")
	limbs.MustBeDisjoint(tp, n, "DivDCn scratch and numerator")
	limbs.MustBeDisjoint(tp, q, "DivDCn scratch and quotient")
	return divDCn(q, n, d, inv, tp)
}

func divDCn(q, n, d []Limb, inv Limb, tp []Limb) Limb {
	dn := len(d)
	lo := dn >> 1
	hi := dn - lo

	var qh Limb
	if hi < DCDivQRThreshold {
		qh = DivSchoolbook(q[lo:], n[2*lo:], d[lo:], inv)
	} else {
		qh = divDCn(q[lo:], n[2*lo:], d[lo:], inv, tp)
	}

	limbs.MulToOut(tp[:dn], q[lo:], d[:lo])
	cy := limbs.SubVV(n[lo:lo+dn], n[lo:lo+dn], tp[:dn])
	if qh != 0 {
		cy += limbs.SubVV(n[dn:dn+lo], n[dn:dn+lo], d[:lo])
	}
	for cy != 0 {
		qh -= limbs.Decr(q[lo:])
		cy -= limbs.AddVV(n[lo:lo+dn], n[lo:lo+dn], d)
	}

	var ql Limb
	if lo < DCDivQRThreshold {
		ql = DivSchoolbook(q[:lo], n[hi:hi+2*lo], d[hi:], inv)
	} else {
		ql = divDCn(q[:lo], n[hi:hi+2*lo], d[hi:], inv, tp)
	}

	limbs.MulToOut(tp[:dn], d[:hi], q[:lo])
	cy = limbs.SubVV(n[:dn], n[:dn], tp[:dn])
	if ql != 0 {
		cy += limbs.SubVV(n[lo:lo+hi], n[lo:lo+hi], d[:hi])
	}
	for cy != 0 {
		limbs.Decr(q[:lo])
		cy -= limbs.AddVV(n[:dn], n[:dn], d)
	}
	return qh
}

// divLeadingBlock divides the 2k-limb window of n centred on mid, i.e.
// n[mid-k:mid+k], by the top k limbs of d, then corrects the quotient block
// q (len k) and the dn-limb partial remainder n[mid-dn:mid] against the
// remaining divisor limbs. It returns the block's top quotient limb.
func divLeadingBlock(q, n []Limb, mid int, d []Limb, inv Limb, tp []Limb) Limb {
	k, dn := len(q), len(d)
	var qh Limb

	switch {
	case k == 1:
		w := n[mid-dn+1 : mid+1]
		if limbs.Cmp(w, d) >= 0 {
			limbs.SubVV(w, w, d)
			qh = 1
		}
		n2, n1, n0 := n[mid], n[mid-1], n[mid-2]
		d1, d0 := d[dn-1], d[dn-2]
		var qq Limb
		if n2 == d1 && n1 == d0 {
			qq = limbs.Max
			limbs.SubMulVVW(n[mid-dn:mid], d, qq)
		} else {
			var r limbs.DoubleLimb
			qq, r = DivMod3By2(n2, n1, n0, d1, d0, inv)
			n1, n0 = r.SplitInHalf()
			cy := limbs.SubMulVVW(n[mid-dn:mid-2], d[:dn-2], qq)
			cy1 := b2l(n0 < cy)
			n0 -= cy
			cy = b2l(n1 < cy1)
			n1 -= cy1
			n[mid-2] = n0
			if cy != 0 {
				n1 += d1 + limbs.AddVV(n[mid-dn:mid-1], n[mid-dn:mid-1], d[:dn-1])
				qh -= b2l(qq == 0)
				qq--
			}
			n[mid-1] = n1
		}
		q[0] = qq
		return qh

	case k == 2:
		qh = DivRem2(q, n[mid-2:mid+2], d[dn-2:])
	case k < DCDivQRThreshold:
		qh = DivSchoolbook(q, n[mid-k:mid+k], d[dn-k:], inv)
	default:
		qh = divDCn(q, n[mid-k:mid+k], d[dn-k:], inv, tp)
	}

	if k != dn {
		limbs.MulToOut(tp[:dn], q, d[:dn-k])
		w := n[mid-dn : mid]
		cy := limbs.SubVV(w, w, tp[:dn])
		if qh != 0 {
			cy += limbs.SubVV(w[k:], w[k:], d[:dn-k])
		}
		for cy != 0 {
			qh -= limbs.Decr(q)
			cy -= limbs.AddVV(w, w, d)
		}
	}
	return qh
}

// DivDC divides n by the normalized d with divide-and-conquer. It requires
// len(d) >= 6, len(n) > len(d) and len(q) == len(n)-len(d). The quotient is
// developed in blocks of len(d) limbs after a first block of
// (len(n)-len(d)) mod len(d) limbs. The remainder is left in n[:len(d)] and
// the top quotient limb is returned.
func DivDC(q, n, d []Limb, inv Limb) Limb {
	nn, dn := len(n), len(d)
	if dn < 6 {
		panic("division: DivDC needs at least six divisor limbs")
	}
	if nn <= dn || len(q) != nn-dn {
		panic("division: DivDC quotient must have len(n)-len(d) > 0 limbs")
	}
	checkNormalized(d, "DivDC")
	limbs.MustBeDisjoint(q, n, "DivDC quotient and numerator")
	limbs.MustBeDisjoint(d, n, "DivDC divisor and numerator")

	tp := make([]Limb, dn)
	qn := nn - dn
	if qn <= dn {
		return divLeadingBlock(q, n, dn, d, inv, tp)
	}

	k := qn
	for k > dn {
		k -= dn
	}
	qo, mid := qn-k, nn-k
	qh := divLeadingBlock(q[qo:qo+k], n, mid, d, inv, tp)

	for qo > 0 {
		qo -= dn
		mid -= dn
		divDCn(q[qo:qo+dn], n[mid-dn:mid+dn], d, inv, tp)
	}
	return qh
}

// DivApproxDCn is DivDCn except that the low half of the quotient is only
// approximate: the quotient is never too small and at most one too large.
// n is used as scratch and holds no remainder afterwards.
func DivApproxDCn(q, n, d []Limb, inv Limb, tp []Limb) Limb {
	dn := len(d)
	if dn < 6 {
		panic("division: DivApproxDCn needs at least six divisor limbs")
	}
	if len(n) != 2*dn || len(q) != dn || len(tp) < dn {
		panic("division: DivApproxDCn operand lengths must be 2n/n with n limbs of quotient and scratch")
	}
	checkNormalized(d, "DivApproxDCn")
	limbs.MustBeDisjoint(q, n, "DivApproxDCn quotient and numerator")
	limbs.MustBeDisjoint(tp, n, "DivApproxDCn scratch and numerator")
	return divApproxDCn(q, n, d, inv, tp)
}

func divApproxDCn(q, n, d []Limb, inv Limb, tp []Limb) Limb {
	dn := len(d)
	lo := dn >> 1
	hi := dn - lo

	var qh Limb
	if hi < DCDivQRThreshold {
		qh = DivSchoolbook(q[lo:], n[2*lo:], d[lo:], inv)
	} else {
		qh = divDCn(q[lo:], n[2*lo:], d[lo:], inv, tp)
	}

	limbs.MulToOut(tp[:dn], q[lo:], d[:lo])
	cy := limbs.SubVV(n[lo:lo+dn], n[lo:lo+dn], tp[:dn])
	if qh != 0 {
		cy += limbs.SubVV(n[dn:dn+lo], n[dn:dn+lo], d[:lo])
	}
	for cy != 0 {
		qh -= limbs.Decr(q[lo:])
		cy -= limbs.AddVV(n[lo:lo+dn], n[lo:lo+dn], d)
	}

	var ql Limb
	if lo < DCDivApproxQThreshold {
		ql = DivApproxSchoolbook(q[:lo], n[hi:hi+2*lo], d[hi:], inv)
	} else {
		ql = divApproxDCn(q[:lo], n[hi:hi+2*lo], d[hi:], inv, tp)
	}
	if ql != 0 {
		limbs.Fill(q[:lo], limbs.Max)
	}
	return qh
}

// DivApproxDC computes a quotient of n by the normalized d that is never
// too small and at most one too large. It requires len(d) >= 6,
// len(n) > len(d) and len(q) == len(n)-len(d), and returns the top quotient
// limb. n is used as scratch.
func DivApproxDC(q, n, d []Limb, inv Limb) Limb {
	nn, dn := len(n), len(d)
	if dn < 6 {
		panic("division: DivApproxDC needs at least six divisor limbs")
	}
	if nn <= dn || len(q) != nn-dn {
		panic("division: DivApproxDC quotient must have len(n)-len(d) > 0 limbs")
	}
	checkNormalized(d, "DivApproxDC")
	limbs.MustBeDisjoint(q, n, "DivApproxDC quotient and numerator")
	limbs.MustBeDisjoint(d, n, "DivApproxDC divisor and numerator")

	qn := nn - dn
	if qn < dn {
		// Divide the top qn+1 limbs of each operand and drop the guard limb.
		m := qn + 1
		w := paddedWindow(n, nn-2*m, nn)
		q2 := make([]Limb, m)
		var qh Limb
		if m == 2 {
			qh = DivRem2(q2, w, d[dn-2:])
		} else if qn < DCDivApproxQThreshold {
			qh = DivApproxSchoolbook(q2, w, d[dn-m:], inv)
		} else {
			qh = divApproxDCn(q2, w, d[dn-m:], inv, make([]Limb, m))
		}
		copy(q, q2[1:])
		return qh
	}

	tp := make([]Limb, dn)

	// Develop one limb more than needed, so the last block carries a guard.
	k := qn + 1
	for k > dn {
		k -= dn
	}
	qo, mid := qn-k, nn-k
	qh := divLeadingBlock(q[qo:qo+k], n, mid, d, inv, tp)

	rest := qn - k + 1
	for rest > dn {
		qo -= dn
		mid -= dn
		divDCn(q[qo:qo+dn], n[mid-dn:mid+dn], d, inv, tp)
		rest -= dn
	}

	// The last block has rest == dn-1 limbs plus the guard limb.
	rest--
	qo -= rest
	mid -= dn
	qw := make([]Limb, dn)
	divApproxDCn(qw, paddedWindow(n, mid-dn, mid+dn), d, inv, tp)
	copy(q[qo:qo+rest], qw[1:])
	return qh
}

// paddedWindow returns n[from:to], with zero limbs standing in for any
// positions below the start of n. Those low limbs are never significant to
// an approximate quotient.
func paddedWindow(n []Limb, from, to int) []Limb {
	if from >= 0 {
		return n[from:to]
	}
	w := make([]Limb, to-from)
	copy(w[-from:], n[:to])
	return w
}
