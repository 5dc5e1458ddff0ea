package limbs

// KaratsubaThreshold is the operand length at which MulToOut stops using the
// quadratic basecase.
const KaratsubaThreshold = 40

// MulToOut sets z = x*y. len(z) must be len(x)+len(y), both operands must be
// non-empty, and z must not overlap either operand.
func MulToOut(z, x, y []Limb) {
	if len(x) == 0 || len(y) == 0 {
		panic("limbs: MulToOut: empty operand")
	}
	mustLen(len(z) == len(x)+len(y), "MulToOut")
	MustBeDisjoint(z, x, "MulToOut product and multiplicand")
	MustBeDisjoint(z, y, "MulToOut product and multiplier")

	if len(x) < len(y) {
		x, y = y, x
	}
	if len(y) < KaratsubaThreshold {
		basicMul(z, x, y)
		return
	}

	// Multiply x in len(y) sized chunks so every Karatsuba call is balanced.
	Clear(z)
	n := len(y)
	t := make([]Limb, 2*n)
	for i := 0; i < len(x); i += n {
		xi := x[i:]
		if len(xi) > n {
			xi = xi[:n]
		}
		tt := t[:len(xi)+n]
		if len(xi) == n {
			karatsuba(tt, xi, y)
		} else if len(xi) < KaratsubaThreshold {
			basicMul(tt, y, xi)
		} else {
			MulToOut(tt, y, xi)
		}
		AddInPlace(z[i:], tt)
	}
}

func basicMul(z, x, y []Limb) {
	Clear(z[len(x):])
	z[len(x)] = MulAddVWW(z[:len(x)], x, y[0], 0)
	for i := 1; i < len(y); i++ {
		if d := y[i]; d != 0 {
			z[len(x)+i] = AddMulVVW(z[i:i+len(x)], x, d)
		}
	}
}

// karatsuba sets z = x*y for len(x) == len(y) == n, len(z) == 2n.
func karatsuba(z, x, y []Limb) {
	n := len(x)
	if n < KaratsubaThreshold {
		basicMul(z, x, y)
		return
	}
	h := n >> 1
	x0, x1 := x[:h], x[h:]
	y0, y1 := y[:h], y[h:]
	m := n - h

	z0, z2 := SplitAt(z, 2*h)
	karatsuba(z0, x0, y0)
	karatsuba(z2, x1, y1)

	buf := make([]Limb, 2*(m+1)+2*(m+1))
	sx, rest := SplitAt(buf, m+1)
	sy, z1 := SplitAt(rest, m+1)
	z1 = z1[:2*(m+1)]

	copy(sx, x1)
	sx[m] = AddInPlace(sx[:m], x0)
	copy(sy, y1)
	sy[m] = AddInPlace(sy[:m], y0)
	karatsuba(z1, sx, sy)

	// z1 = (x0+x1)(y0+y1) - x0*y0 - x1*y1 >= 0
	SubInPlace(z1, z0)
	SubInPlace(z1, z2)
	z1 = z1[:Norm(z1)]
	AddInPlace(z[h:], z1)
}
