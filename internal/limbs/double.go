package limbs

import (
	"fmt"
	"math/big"
	"math/bits"
)

// Limb is one base-2^Width digit of a natural number. Width is fixed by the
// platform at compile time.
type Limb uint

const (
	Width        = bits.UintSize
	Max     Limb = ^Limb(0)
	HighBit Limb = 1 << (Width - 1)
)

// DoubleLimb is a two-limb unsigned value hi*B + lo. It is the widening type
// for limb arithmetic; arithmetic on it wraps modulo B^2 unless the method
// reports overflow.
type DoubleLimb struct {
	hi, lo Limb
}

func JoinHalves(hi, lo Limb) DoubleLimb { return DoubleLimb{hi: hi, lo: lo} }
func DoubleFrom(v Limb) DoubleLimb      { return DoubleLimb{lo: v} }

// SplitInHalf is the counterpart of JoinHalves.
func (u DoubleLimb) SplitInHalf() (hi, lo Limb) { return u.hi, u.lo }

func (u DoubleLimb) Hi() Limb     { return u.hi }
func (u DoubleLimb) Lo() Limb     { return u.lo }
func (u DoubleLimb) IsZero() bool { return u.hi|u.lo == 0 }

// MulLimbs returns the full two-limb product x*y.
func MulLimbs(x, y Limb) DoubleLimb {
	hi, lo := bits.Mul(uint(x), uint(y))
	return DoubleLimb{hi: Limb(hi), lo: Limb(lo)}
}

func (u DoubleLimb) Inc() (v DoubleLimb) {
	v.lo = u.lo + 1
	v.hi = u.hi
	if u.lo > v.lo {
		v.hi++
	}
	return v
}

func (u DoubleLimb) Dec() (v DoubleLimb) {
	v.lo = u.lo - 1
	v.hi = u.hi
	if u.lo < v.lo {
		v.hi--
	}
	return v
}

func (u DoubleLimb) Add(n DoubleLimb) (v DoubleLimb) {
	v, _ = u.AddOverflow(n)
	return v
}

// AddOverflow returns u+n mod B^2 and whether the sum wrapped.
func (u DoubleLimb) AddOverflow(n DoubleLimb) (v DoubleLimb, overflow bool) {
	lo, c := bits.Add(uint(u.lo), uint(n.lo), 0)
	hi, c := bits.Add(uint(u.hi), uint(n.hi), c)
	return DoubleLimb{hi: Limb(hi), lo: Limb(lo)}, c != 0
}

func (u DoubleLimb) Sub(n DoubleLimb) (v DoubleLimb) {
	v, _ = u.SubBorrow(n)
	return v
}

// SubBorrow returns u-n mod B^2 and whether the difference wrapped.
func (u DoubleLimb) SubBorrow(n DoubleLimb) (v DoubleLimb, borrow bool) {
	lo, b := bits.Sub(uint(u.lo), uint(n.lo), 0)
	hi, b := bits.Sub(uint(u.hi), uint(n.hi), b)
	return DoubleLimb{hi: Limb(hi), lo: Limb(lo)}, b != 0
}

func (u DoubleLimb) Cmp(n DoubleLimb) int {
	if u.hi > n.hi {
		return 1
	} else if u.hi < n.hi {
		return -1
	} else if u.lo > n.lo {
		return 1
	} else if u.lo < n.lo {
		return -1
	}
	return 0
}

func (u DoubleLimb) GreaterOrEqualTo(n DoubleLimb) bool {
	return u.hi > n.hi || (u.hi == n.hi && u.lo >= n.lo)
}

func (u DoubleLimb) LessThan(n DoubleLimb) bool {
	return u.hi < n.hi || (u.hi == n.hi && u.lo < n.lo)
}

func (u DoubleLimb) Lsh(n uint) (v DoubleLimb) {
	if n == 0 {
		return u
	} else if n > Width {
		v.hi = u.lo << (n - Width)
	} else if n < Width {
		v.hi = (u.hi << n) | (u.lo >> (Width - n))
		v.lo = u.lo << n
	} else {
		v.hi = u.lo
	}
	return v
}

func (u DoubleLimb) Rsh(n uint) (v DoubleLimb) {
	if n == 0 {
		return u
	} else if n > Width {
		v.lo = u.hi >> (n - Width)
	} else if n < Width {
		v.lo = (u.lo >> n) | (u.hi << (Width - n))
		v.hi = u.hi >> n
	} else {
		v.lo = u.hi
	}
	return v
}

// QuoRemLimb divides u by a single limb. The quotient must fit in one limb,
// so u.Hi() < by is required; division by zero or an oversized quotient
// panics.
func (u DoubleLimb) QuoRemLimb(by Limb) (q, r Limb) {
	if by == 0 {
		panic("limbs: division by zero")
	}
	if u.hi >= by {
		panic("limbs: quotient overflows a limb")
	}
	qq, rr := bits.Div(uint(u.hi), uint(u.lo), uint(by))
	return Limb(qq), Limb(rr)
}

func (u DoubleLimb) LeadingZeros() uint {
	if u.hi == 0 {
		return uint(bits.LeadingZeros(uint(u.lo))) + Width
	}
	return uint(bits.LeadingZeros(uint(u.hi)))
}

func (u DoubleLimb) AsBigInt() *big.Int {
	var v big.Int
	return v.SetBits([]big.Word{big.Word(u.lo), big.Word(u.hi)})
}

func (u DoubleLimb) String() string {
	return u.AsBigInt().String()
}

func (u DoubleLimb) Format(s fmt.State, c rune) {
	u.AsBigInt().Format(s, c)
}

// LeadingZeros counts the leading zero bits of x; 0 has Width of them.
func LeadingZeros(x Limb) uint { return uint(bits.LeadingZeros(uint(x))) }
