package division

import (
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/go-natural/internal/assert"
	"github.com/shabbyrobe/go-natural/internal/limbs"
)

func bigB(k int) *big.Int { return new(big.Int).Lsh(big.NewInt(1), uint(k*limbs.Width)) }

func TestLimbInverse(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(1))
	ds := []Limb{highBit, highBit + 1, limbs.Max, limbs.Max - 1}
	for i := 0; i < 500; i++ {
		ds = append(ds, Limb(rng.Uint64())|highBit)
	}
	for _, d := range ds {
		// floor((B^2-1)/d) - B
		exp := new(big.Int).Sub(bigB(2), big.NewInt(1))
		exp.Quo(exp, new(big.Int).SetUint64(uint64(d)))
		exp.Sub(exp, bigB(1))
		tt.MustLimbsEqual(assert.Limbs(exp, 1), []Limb{LimbInverse(d)}, "d=%#x", d)
	}
	tt.MustPanic("unnormalized", func() { LimbInverse(1) })
}

func TestDivMod2By1(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(2))
	for i := 0; i < 2000; i++ {
		d := Limb(rng.Uint64()) | highBit
		n1 := Limb(rng.Uint64()) % d
		n0 := Limb(rng.Uint64())
		if i%10 == 0 {
			n1, n0 = d-1, limbs.Max
		}
		q, r := DivMod2By1(n1, n0, d, LimbInverse(d))
		eq, er := limbs.JoinHalves(n1, n0).QuoRemLimb(d)
		tt.MustAssert(q == eq && r == er, "(%#x,%#x)/%#x: got %#x r %#x", n1, n0, d, q, r)
	}
}

func TestTwoLimbInverse(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(3))
	cases := [][2]Limb{{highBit, 0}, {limbs.Max, limbs.Max}, {highBit, limbs.Max}, {limbs.Max, 0}}
	for i := 0; i < 500; i++ {
		cases = append(cases, [2]Limb{Limb(rng.Uint64()) | highBit, Limb(rng.Uint64())})
	}
	for _, c := range cases {
		// floor((B^3-1)/(d1*B+d0)) - B
		d := assert.Big([]Limb{c[1], c[0]})
		exp := new(big.Int).Sub(bigB(3), big.NewInt(1))
		exp.Quo(exp, d)
		exp.Sub(exp, bigB(1))
		tt.MustLimbsEqual(assert.Limbs(exp, 1), []Limb{TwoLimbInverse(c[0], c[1])}, "d=%#x", d)
	}
}

func TestDivMod3By2(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(4))
	for i := 0; i < 2000; i++ {
		d1, d0 := Limb(rng.Uint64())|highBit, Limb(rng.Uint64())
		d := limbs.JoinHalves(d1, d0)

		// (n2, n1) < (d1, d0)
		top := limbs.JoinHalves(Limb(rng.Uint64()), Limb(rng.Uint64()))
		for !top.LessThan(d) {
			top = top.Rsh(1)
		}
		if i%7 == 0 {
			top = d.Dec()
		}
		n2, n1 := top.SplitInHalf()
		n0 := Limb(rng.Uint64())

		q, r := DivMod3By2(n2, n1, n0, d1, d0, TwoLimbInverse(d1, d0))
		eq, er := bigQuoRem([]Limb{n0, n1, n2}, []Limb{d0, d1})
		rh, rl := r.SplitInHalf()
		tt.MustLimbsEqual(assert.Limbs(eq, 1), []Limb{q})
		tt.MustLimbsEqual(assert.Limbs(er, 2), []Limb{rl, rh})
	}
}

func TestDivLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 300; i++ {
		n := randLimbs(rng, rng.Intn(20))
		d := Limb(rng.Uint64()) >> uint(rng.Intn(limbs.Width))
		if d == 0 {
			d = 1
		}
		q := make([]Limb, len(n))
		r := DivLimb(q, n, d)
		tt.MustDivIdentity(q, []Limb{r}, n, []Limb{d})
	}
}

func TestDivLimbInPlace(t *testing.T) {
	tt := assert.WrapTB(t)
	n := []Limb{100, 3}
	orig := clone(n)
	r := DivLimb(n, n, 7)
	tt.MustDivIdentity(n, []Limb{r}, orig, []Limb{7})
	tt.MustPanic("division by zero", func() { DivLimb(n, n, 0) })
}

func TestDivRem2(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 300; i++ {
		nn := 2 + rng.Intn(30)
		n := randLimbs(rng, nn)
		d := randNormalized(rng, 2)
		if i%9 == 0 {
			d = allOnes(2)
		}
		work := clone(n)
		q := make([]Limb, nn-2)
		qh := DivRem2(q, work, d)
		tt.MustDivIdentity(withTop(q, qh), work[:2], n, d)
	}
	tt.MustPanic("not normalized", func() { DivRem2(make([]Limb, 1), make([]Limb, 3), []Limb{1, 1}) })
}
