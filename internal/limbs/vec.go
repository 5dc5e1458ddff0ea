package limbs

import "math/bits"

// Vectors are little-endian: x[0] is the least significant limb. Unless a
// routine says otherwise, z may be the same slice as an input but must not
// partially overlap it.

func mustLen(ok bool, op string) {
	if !ok {
		panic("limbs: " + op + ": operand length mismatch")
	}
}

// AddVV sets z = x + y for equal-length vectors and returns the carry out.
func AddVV(z, x, y []Limb) (c Limb) {
	return AddVVCarry(z, x, y, 0)
}

// AddVVCarry is AddVV with a carry in (0 or 1).
func AddVVCarry(z, x, y []Limb, c Limb) Limb {
	mustLen(len(x) == len(z) && len(y) == len(z), "AddVV")
	cc := uint(c)
	for i := range z {
		var s uint
		s, cc = bits.Add(uint(x[i]), uint(y[i]), cc)
		z[i] = Limb(s)
	}
	return Limb(cc)
}

// SubVV sets z = x - y for equal-length vectors and returns the borrow out.
func SubVV(z, x, y []Limb) (b Limb) {
	return SubVVBorrow(z, x, y, 0)
}

// SubVVBorrow is SubVV with a borrow in (0 or 1).
func SubVVBorrow(z, x, y []Limb, b Limb) Limb {
	mustLen(len(x) == len(z) && len(y) == len(z), "SubVV")
	bb := uint(b)
	for i := range z {
		var d uint
		d, bb = bits.Sub(uint(x[i]), uint(y[i]), bb)
		z[i] = Limb(d)
	}
	return Limb(bb)
}

// AddVW sets z = x + y and returns the carry out of the top limb.
func AddVW(z, x []Limb, y Limb) (c Limb) {
	mustLen(len(x) == len(z), "AddVW")
	c = y
	i := 0
	for ; i < len(z) && c != 0; i++ {
		s, cc := bits.Add(uint(x[i]), uint(c), 0)
		z[i] = Limb(s)
		c = Limb(cc)
	}
	copy(z[i:], x[i:])
	return c
}

// SubVW sets z = x - y and returns the borrow out of the top limb.
func SubVW(z, x []Limb, y Limb) (b Limb) {
	mustLen(len(x) == len(z), "SubVW")
	b = y
	i := 0
	for ; i < len(z) && b != 0; i++ {
		d, bb := bits.Sub(uint(x[i]), uint(b), 0)
		z[i] = Limb(d)
		b = Limb(bb)
	}
	copy(z[i:], x[i:])
	return b
}

// AddInPlace sets x += y where len(x) >= len(y), propagating the carry
// through the rest of x. It returns the carry out of x.
func AddInPlace(x, y []Limb) (c Limb) {
	mustLen(len(x) >= len(y), "AddInPlace")
	n := len(y)
	c = AddVV(x[:n], x[:n], y)
	if c != 0 && n < len(x) {
		c = AddVW(x[n:], x[n:], c)
	}
	return c
}

// SubInPlace sets x -= y where len(x) >= len(y) and returns the borrow out.
func SubInPlace(x, y []Limb) (b Limb) {
	mustLen(len(x) >= len(y), "SubInPlace")
	n := len(y)
	b = SubVV(x[:n], x[:n], y)
	if b != 0 && n < len(x) {
		b = SubVW(x[n:], x[n:], b)
	}
	return b
}

// Incr adds one to x and reports the carry out.
func Incr(x []Limb) Limb {
	if len(x) == 0 {
		return 1
	}
	return AddVW(x, x, 1)
}

// Decr subtracts one from x and reports the borrow out.
func Decr(x []Limb) Limb {
	if len(x) == 0 {
		return 1
	}
	return SubVW(x, x, 1)
}

// ShlVU sets z = x << s for 0 <= s < Width and returns the bits shifted out
// of the top limb, in the low bits of the result. z may equal x.
func ShlVU(z, x []Limb, s uint) (c Limb) {
	mustLen(len(x) == len(z), "ShlVU")
	if s >= Width {
		panic("limbs: ShlVU: shift out of range")
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := Width - s
	w1 := x[len(z)-1]
	c = w1 >> ŝ
	for i := len(z) - 1; i > 0; i-- {
		w := w1
		w1 = x[i-1]
		z[i] = w<<s | w1>>ŝ
	}
	z[0] = w1 << s
	return c
}

// ShrVU sets z = x >> s for 0 <= s < Width and returns the bits shifted out
// of the bottom limb, in the high bits of the result. z may equal x.
func ShrVU(z, x []Limb, s uint) (c Limb) {
	mustLen(len(x) == len(z), "ShrVU")
	if s >= Width {
		panic("limbs: ShrVU: shift out of range")
	}
	if s == 0 {
		copy(z, x)
		return 0
	}
	if len(z) == 0 {
		return 0
	}
	ŝ := Width - s
	w1 := x[0]
	c = w1 << ŝ
	for i := 0; i < len(z)-1; i++ {
		w := w1
		w1 = x[i+1]
		z[i] = w>>s | w1<<ŝ
	}
	z[len(z)-1] = w1 >> s
	return c
}

// MulAddVWW sets z = x*y + r and returns the high limb.
func MulAddVWW(z, x []Limb, y, r Limb) (c Limb) {
	mustLen(len(x) == len(z), "MulAddVWW")
	c = r
	for i := range z {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo, cc := bits.Add(lo, uint(c), 0)
		z[i] = Limb(lo)
		c = Limb(hi + cc)
	}
	return c
}

// AddMulVVW sets z += x*y and returns the high limb of the result.
func AddMulVVW(z, x []Limb, y Limb) (c Limb) {
	mustLen(len(x) == len(z), "AddMulVVW")
	for i := range z {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo, cc := bits.Add(lo, uint(z[i]), 0)
		hi += cc
		lo, cc = bits.Add(lo, uint(c), 0)
		z[i] = Limb(lo)
		c = Limb(hi + cc)
	}
	return c
}

// SubMulVVW sets z -= x*y and returns the limb that would have to be
// subtracted from the position above z.
func SubMulVVW(z, x []Limb, y Limb) (b Limb) {
	mustLen(len(x) == len(z), "SubMulVVW")
	for i := range z {
		hi, lo := bits.Mul(uint(x[i]), uint(y))
		lo, cc := bits.Add(lo, uint(b), 0)
		hi += cc
		d, bb := bits.Sub(uint(z[i]), lo, 0)
		z[i] = Limb(d)
		b = Limb(hi + bb)
	}
	return b
}

// Cmp compares two vectors of the same length as numbers.
func Cmp(x, y []Limb) int {
	mustLen(len(x) == len(y), "Cmp")
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] > y[i] {
				return 1
			}
			return -1
		}
	}
	return 0
}

// Not sets z to the one's complement of x.
func Not(z, x []Limb) {
	mustLen(len(x) == len(z), "Not")
	for i := range z {
		z[i] = ^x[i]
	}
}

func Clear(z []Limb) {
	for i := range z {
		z[i] = 0
	}
}

func Fill(z []Limb, v Limb) {
	for i := range z {
		z[i] = v
	}
}

// Norm returns the length of x without its high zero limbs.
func Norm(x []Limb) int {
	i := len(x)
	for i > 0 && x[i-1] == 0 {
		i--
	}
	return i
}

// IsZero reports whether every limb of x is zero.
func IsZero(x []Limb) bool {
	return Norm(x) == 0
}
