package division

import "github.com/shabbyrobe/go-natural/internal/limbs"

// An approximate reciprocal of a normalized n-limb d is an n-limb ip with an
// error flag e in {0, 1} such that
//
//	d * (B^n + ip) < B^2n <= d * (B^n + ip + 1 + e)
//
// e == 0 means ip is exact; e == 1 means ip may be one less than exact.

// InvertApproxScratchLen is the scratch the reciprocal routines need for an
// n-limb divisor.
func InvertApproxScratchLen(n int) int { return 2 * n }

func checkInvertArgs(ip, d, scratch []Limb, op string) {
	n := len(d)
	if n == 0 || len(ip) != n {
		panic("division: " + op + ": reciprocal must have as many limbs as the divisor")
	}
	if len(scratch) < InvertApproxScratchLen(n) {
		panic("division: " + op + ": scratch too short")
	}
	checkNormalized(d, op)
	limbs.MustBeDisjoint(ip, d, op+" reciprocal and divisor")
	limbs.MustBeDisjoint(ip, scratch, op+" reciprocal and scratch")
	limbs.MustBeDisjoint(d, scratch, op+" divisor and scratch")
}

// InvertApproxBC computes the reciprocal by dividing B^2n - 1 - d*B^n by d
// directly.
func InvertApproxBC(ip, d, scratch []Limb) (e Limb) {
	checkInvertArgs(ip, d, scratch, "InvertApproxBC")
	return invertApproxBC(ip, d, scratch)
}

func invertApproxBC(ip, d, scratch []Limb) Limb {
	n := len(d)
	if n == 1 {
		ip[0] = LimbInverse(d[0])
		return 0
	}

	x := scratch[:2*n]
	limbs.Fill(x[:n], limbs.Max)
	limbs.Not(x[n:], d)
	if n == 2 {
		DivRem2(ip, x, d)
		return 0
	}

	inv := TwoLimbInverse(d[n-1], d[n-2])
	if n < DCDivApproxQThreshold {
		DivApproxSchoolbook(ip, x, d, inv)
	} else {
		DivApproxDC(ip, x, d, inv)
	}
	// The approximate quotient may be one too large; step below it.
	limbs.Decr(ip)
	return 1
}

// InvertApproxNI computes the reciprocal with Newton iteration, doubling the
// precision of a short direct reciprocal at each step. len(d) > 4 is
// required.
func InvertApproxNI(ip, d, scratch []Limb) (e Limb) {
	if len(d) <= 4 {
		panic("division: InvertApproxNI needs more than four divisor limbs")
	}
	checkInvertArgs(ip, d, scratch, "InvertApproxNI")
	return invertApproxNI(ip, d, scratch)
}

func invertApproxNI(ip, d, scratch []Limb) Limb {
	top := len(d)

	// Precisions from highest to lowest; rn ends at the base case size.
	sizes := make([]int, 0, newtonSizes)
	rn := top
	for {
		sizes = append(sizes, rn)
		rn = rn>>1 + 1
		if rn < InvertNewtonThreshold {
			break
		}
	}

	// ip and d are read from the top: d[top-n:] is the n-limb truncation of
	// the divisor, ip[top-rn:] the rn limbs of reciprocal found so far.
	xp := scratch[:2*top]
	invertApproxBC(ip[top-rn:], d[top-rn:], xp)

	var tp []Limb
	if top >= InvertMulModThreshold {
		mn := limbs.MulModBnm1NextSize(top + 1)
		tp = make([]Limb, limbs.MulModBnm1ScratchLen(mn, top, top>>1+1))
	}

	var cy Limb
	for i := len(sizes) - 1; ; i-- {
		n := sizes[i]
		dn := d[top-n:]
		ir := ip[top-rn:]

		// xp = (B^rn + ir) * dn, truncated to n+1 limbs or wrapped modulo
		// B^mn - 1.
		mn := 0
		if n >= InvertMulModThreshold {
			mn = limbs.MulModBnm1NextSize(n + 1)
			if mn > n+rn {
				mn = 0
			}
		}
		if mn == 0 {
			limbs.MulToOut(xp[:n+rn], dn, ir)
			limbs.AddVV(xp[rn:n+1], xp[rn:n+1], dn[:n-rn+1])
			cy = 1
		} else {
			limbs.MulModBnm1(xp, mn, dn, ir, tp)
			c := limbs.AddVV(xp[rn:mn], xp[rn:mn], dn[:mn-rn])
			c = limbs.AddVVCarry(xp[:n-(mn-rn)], xp[:n-(mn-rn)], dn[mn-rn:], c)
			// Subtract B^(rn+n), folding the carry just produced into it.
			xp[mn] = 1
			limbs.SubVW(xp[rn+n-mn:mn+1], xp[rn+n-mn:mn+1], 1-c)
			limbs.SubVW(xp[:mn], xp[:mn], 1-xp[mn])
			cy = 0
		}

		if xp[n] < 2 {
			// Positive residue class.
			cy = xp[n]
			if cy != 0 {
				cy++
				if limbs.SubVV(xp[:n], xp[:n], dn) == 0 {
					limbs.SubVV(xp[:n], xp[:n], dn)
					cy++
				}
			} else {
				cy = 1
			}
			if limbs.Cmp(xp[:n], dn) > 0 {
				limbs.SubVV(xp[:n], xp[:n], dn)
				cy++
			}
			b := b2l(limbs.Cmp(xp[:n-rn], dn[:n-rn]) > 0)
			limbs.SubVVBorrow(xp[2*n-rn:2*n], dn[n-rn:], xp[n-rn:n], b)
			limbs.SubVW(ir, ir, cy)
		} else {
			// Negative residue class.
			limbs.SubVW(xp[:n+1], xp[:n+1], cy)
			if xp[n] != limbs.Max {
				limbs.AddVW(ir, ir, 1)
				limbs.AddVV(xp[:n], xp[:n], dn)
			}
			limbs.Not(xp[2*n-rn:2*n], xp[n-rn:n])
		}

		// Correction: the high n-rn limbs of residue * ir extend the
		// reciprocal downwards.
		limbs.MulToOut(xp[:2*rn], xp[2*n-rn:2*n], ir)
		c := limbs.AddVV(xp[rn:3*rn-n], xp[rn:3*rn-n], xp[2*n-rn:n+rn])
		c = limbs.AddVVCarry(ip[top-n:top-rn], xp[3*rn-n:2*rn], xp[n+rn:2*n], c)
		limbs.AddVW(ir, ir, c)

		if i == 0 {
			// A carry may still come from the truncated low part.
			cy = b2l(xp[3*rn-n-1] > limbs.Max-7)
			break
		}
		rn = n
	}
	return cy
}

// InvertApprox computes an approximate reciprocal of the normalized d into
// ip, choosing direct division or Newton iteration by length, and returns
// the error flag.
func InvertApprox(ip, d, scratch []Limb) (e Limb) {
	checkInvertArgs(ip, d, scratch, "InvertApprox")
	if len(d) < InvertNewtonThreshold {
		return invertApproxBC(ip, d, scratch)
	}
	return invertApproxNI(ip, d, scratch)
}
