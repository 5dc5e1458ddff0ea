package division

import "github.com/shabbyrobe/go-natural/internal/limbs"

// muDivChooseInverseSize picks the reciprocal length for Barrett division so
// that the quotient splits into blocks of nearly equal size.
func muDivChooseInverseSize(qn, dn int) int {
	switch {
	case qn > dn:
		b := (qn-1)/dn + 1 // number of blocks
		return (qn-1)/b + 1
	case 3*qn > dn:
		return (qn-1)/2 + 1
	default:
		return qn
	}
}

// MuDivQRScratchLen is the scratch MuDivQR needs for an nn-limb numerator and
// a dn-limb divisor.
func MuDivQRScratchLen(nn, dn int) int {
	in := muDivChooseInverseSize(nn-dn, dn)
	tn := limbs.MulModBnm1NextSize(dn + 1)
	preinv := tn + limbs.MulModBnm1ScratchLen(tn, dn, in)
	invert := InvertApproxScratchLen(in+1) + in + 2
	if preinv > invert {
		return in + preinv
	}
	return in + invert
}

// MuDivQR divides n by the normalized d with Barrett's method: the quotient
// is produced in blocks by multiplying the top of the running remainder by an
// approximate reciprocal of d, followed by a bounded correction. It requires
// len(d) >= 2, len(n) >= len(d), len(q) == len(n)-len(d), len(r) == len(d)
// and len(scratch) >= MuDivQRScratchLen(len(n), len(d)). n is not modified.
// The top quotient limb is returned.
func MuDivQR(q, r, n, d, scratch []Limb) Limb {
	nn, dn := len(n), len(d)
	if dn < 2 || nn < dn {
		panic("division: MuDivQR needs len(d) >= 2 and len(n) >= len(d)")
	}
	if len(q) != nn-dn || len(r) != dn {
		panic("division: MuDivQR quotient or remainder has the wrong length")
	}
	if len(scratch) < MuDivQRScratchLen(nn, dn) {
		panic("division: MuDivQR scratch too short")
	}
	checkNormalized(d, "MuDivQR")
	limbs.MustBeDisjoint(q, n, "MuDivQR quotient and numerator")
	limbs.MustBeDisjoint(r, n, "MuDivQR remainder and numerator")
	limbs.MustBeDisjoint(q, r, "MuDivQR quotient and remainder")
	limbs.MustBeDisjoint(scratch, n, "MuDivQR scratch and numerator")
	limbs.MustBeDisjoint(scratch, q, "MuDivQR scratch and quotient")
	limbs.MustBeDisjoint(scratch, r, "MuDivQR scratch and remainder")

	qn := nn - dn
	if qn == 0 {
		if limbs.Cmp(n, d) >= 0 {
			limbs.SubVV(r, n, d)
			return 1
		}
		copy(r, n)
		return 0
	}

	if qn+MuDivQRSkewThreshold >= dn {
		return muDivQR2(q, r, n, d, scratch)
	}

	// The divisor is much longer than the quotient: divide the top 2qn+1
	// limbs by the top qn+1 divisor limbs, then account for the rest.
	m := 2*qn + 1
	lo := nn - m
	dlo := d[:dn-(qn+1)]
	qh := muDivQR2(q, r[lo:], n[lo:], d[dn-(qn+1):], scratch)

	tp := scratch[:dn]
	limbs.MulToOut(tp[:dn-1], dlo, q)
	tp[dn-1] = 0
	if qh != 0 {
		tp[dn-1] = limbs.AddVV(tp[qn:dn-1], tp[qn:dn-1], dlo)
	}

	cy := limbs.SubVV(r[:lo], n[:lo], tp[:lo])
	cy = limbs.SubVVBorrow(r[lo:], r[lo:], tp[lo:dn], cy)
	if cy != 0 {
		qh -= limbs.Decr(q)
		limbs.AddVV(r, r, d)
	}
	return qh
}

func muDivQR2(q, r, n, d, scratch []Limb) Limb {
	nn, dn := len(n), len(d)
	qn := nn - dn
	in := muDivChooseInverseSize(qn, dn)

	// Reciprocal of the top in+1 divisor limbs, rounded up so it never
	// overestimates a quotient block.
	ip, rest := limbs.SplitAt(scratch, in+1)
	tp, rest := limbs.SplitAt(rest, in+1)
	if dn == in {
		copy(tp[1:], d)
		tp[0] = 1
		InvertApprox(ip, tp, rest[:InvertApproxScratchLen(in+1)])
		copy(ip[:in], ip[1:])
	} else if limbs.AddVW(tp, d[dn-(in+1):], 1) != 0 {
		limbs.Clear(ip[:in])
	} else {
		InvertApprox(ip, tp, rest[:InvertApproxScratchLen(in+1)])
		copy(ip[:in], ip[1:])
	}

	return preinvMuDivQR(q, r, n, d, ip[:in], scratch[in:])
}

func preinvMuDivQR(q, r, n, d, ip, scratch []Limb) Limb {
	nn, dn, in := len(n), len(d), len(ip)
	qn := nn - dn

	var qh Limb
	if top := n[qn:]; limbs.Cmp(top, d) >= 0 {
		limbs.SubVV(r, top, d)
		qh = 1
	} else {
		copy(r, top)
	}

	tp := scratch
	no := qn
	for qn > 0 {
		if qn < in {
			ip = ip[in-qn:]
			in = qn
		}
		no -= in
		qb := q[no : no+in]
		qrest := q[no:]

		// Next quotient block from the top of the remainder; the reciprocal's
		// leading one is implicit.
		limbs.MulToOut(tp[:2*in], r[dn-in:], ip)
		limbs.AddVV(qb, tp[in:2*in], r[dn-in:])
		qn -= in

		// Product of the block and d; only the low dn+1 limbs matter since
		// the high ones cancel against the remainder.
		if in < MulToMulModBnm1For2NxNThreshold {
			limbs.MulToOut(tp[:dn+in], d, qb)
		} else {
			tn := limbs.MulModBnm1NextSize(dn + 1)
			limbs.MulModBnm1(tp[:tn], tn, d, qb, scratch[tn:])
			if wn := dn + in - tn; wn > 0 {
				cy := limbs.SubVV(tp[:wn], tp[:wn], r[dn-wn:])
				cy = limbs.SubVW(tp[wn:tn], tp[wn:tn], cy)
				cx := b2l(limbs.Cmp(r[dn-in:tn-in], tp[dn:tn]) < 0)
				limbs.AddVW(tp[:tn], tp[:tn], cx-cy)
			}
		}

		rh := r[dn-in] - tp[dn]
		var cy Limb
		if dn != in {
			cy = limbs.SubVV(tp[:in], n[no:no+in], tp[:in])
			cy = limbs.SubVVBorrow(tp[in:dn], r[:dn-in], tp[in:dn], cy)
			copy(r, tp[:dn])
		} else {
			cy = limbs.SubVV(r, n[no:no+in], tp[:in])
		}
		rh -= cy

		for rh != 0 {
			limbs.Incr(qrest)
			rh -= limbs.SubVV(r, r, d)
		}
		if limbs.Cmp(r, d) >= 0 {
			limbs.Incr(qrest)
			limbs.SubVV(r, r, d)
		}
	}
	return qh
}
