package natural

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/go-natural/internal/division"
)

var (
	BenchBigIntResult  *big.Int
	BenchBoolResult    bool
	BenchIntResult     int
	BenchStringResult  string
	BenchNaturalResult Natural
	BenchIntegerResult Integer
	BenchHashResult    [32]byte
)

// benchSizes are numerator/divisor limb counts that select each kernel.
var benchSizes = []struct{ nn, dn int }{
	{8, 1},
	{8, 2},
	{40, 20},
	{200, 100},
	{1000, 500},
	{4000, 1500},
}

func benchOperands(nn, dn int) (n, d Natural) {
	rng := rand.New(rand.NewSource(int64(nn*1000 + dn)))
	n = NaturalFromLimbs(limbsOf(rng, nn))
	d = NaturalFromLimbs(limbsOf(rng, dn))
	return n, d
}

func limbsOf(rng *rand.Rand, n int) []Limb {
	x := make([]Limb, n)
	for i := range x {
		x[i] = Limb(rng.Uint64())
	}
	x[n-1] |= 1
	return x
}

func BenchmarkNaturalQuoRem(b *testing.B) {
	for _, sz := range benchSizes {
		n, d := benchOperands(sz.nn, sz.dn)
		b.Run(fmt.Sprintf("%d/%d/%s", sz.nn, sz.dn, division.Choose(sz.nn, sz.dn)), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult, _ = n.QuoRem(d)
			}
		})
	}
}

func BenchmarkBigIntQuoRem(b *testing.B) {
	for _, sz := range benchSizes {
		n, d := benchOperands(sz.nn, sz.dn)
		bn, bd := n.AsBigInt(), d.AsBigInt()
		b.Run(fmt.Sprintf("%d/%d", sz.nn, sz.dn), func(b *testing.B) {
			var q, r big.Int
			for i := 0; i < b.N; i++ {
				q.QuoRem(bn, bd, &r)
			}
			BenchBigIntResult = &q
		})
	}
}

func BenchmarkNaturalAlgorithms(b *testing.B) {
	for _, sz := range benchSizes[2:] {
		n, d := benchOperands(sz.nn, sz.dn)
		x, y := n.Limbs(), d.Limbs()
		for _, alg := range []division.Algorithm{division.Schoolbook, division.DivideAndConquer, division.NewtonBarrett} {
			b.Run(fmt.Sprintf("%d/%d/%s", sz.nn, sz.dn, alg), func(b *testing.B) {
				q, r := make([]Limb, len(x)-len(y)+1), make([]Limb, len(y))
				for i := 0; i < b.N; i++ {
					division.TDivQRWith(alg, q, r, x, y)
				}
			})
		}
	}
}

func BenchmarkNaturalMul(b *testing.B) {
	for _, sz := range benchSizes {
		n, d := benchOperands(sz.nn, sz.dn)
		b.Run(fmt.Sprintf("%dx%d", sz.nn, sz.dn), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				BenchNaturalResult = n.Mul(d)
			}
		})
	}
}

func BenchmarkNaturalAdd(b *testing.B) {
	n, d := benchOperands(200, 100)
	for i := 0; i < b.N; i++ {
		BenchNaturalResult = n.Add(d)
	}
}

func BenchmarkNaturalLimbAdd(b *testing.B) {
	n, d := n64(12093749018), n64(18927348917)
	for i := 0; i < b.N; i++ {
		BenchNaturalResult = n.Add(d)
	}
}

func BenchmarkNaturalCmp(b *testing.B) {
	n, _ := benchOperands(200, 100)
	m := n.Inc()
	for i := 0; i < b.N; i++ {
		BenchIntResult = n.Cmp(m)
	}
}

func BenchmarkNaturalString(b *testing.B) {
	n, _ := benchOperands(40, 1)
	for i := 0; i < b.N; i++ {
		BenchStringResult = n.String()
	}
}

func BenchmarkNaturalHash(b *testing.B) {
	n, _ := benchOperands(200, 1)
	for i := 0; i < b.N; i++ {
		BenchHashResult = n.Hash()
	}
}

func BenchmarkIntegerDivMod(b *testing.B) {
	n, d := benchOperands(200, 100)
	x, y := IntegerFromNatural(n).Neg(), IntegerFromNatural(d)
	for i := 0; i < b.N; i++ {
		BenchIntegerResult, _, _ = x.DivMod(y)
	}
}

func BenchmarkIntegerLessThan(b *testing.B) {
	x, y := i64(-5), i64(7)
	for i := 0; i < b.N; i++ {
		BenchBoolResult = x.LessThan(y)
	}
}
