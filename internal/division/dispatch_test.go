package division

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/shabbyrobe/go-natural/internal/assert"
	"github.com/shabbyrobe/go-natural/internal/limbs"
)

func tdiv(alg Algorithm, n, d []Limb) (q, r []Limb) {
	q, r = make([]Limb, len(n)-len(d)+1), make([]Limb, len(d))
	TDivQRWith(alg, q, r, n, d)
	return q, r
}

func TestTDivQR(t *testing.T) {
	rng := rand.New(rand.NewSource(40))
	type sizes struct{ nn, dn int }
	var cases []sizes
	for dn := 1; dn <= 12; dn++ {
		for nn := dn; nn <= dn+14; nn++ {
			cases = append(cases, sizes{nn, dn})
		}
	}
	for i := 0; i < 200; i++ {
		dn := 1 + rng.Intn(180)
		cases = append(cases, sizes{dn + rng.Intn(2*dn+2), dn})
	}
	for _, c := range cases {
		t.Run(fmt.Sprintf("%d/%d", c.nn, c.dn), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for i := 0; i < 3; i++ {
				n, d := randLimbs(rng, c.nn), randDivisor(rng, c.dn)
				dorig, norig := clone(d), clone(n)
				q, r := tdiv(Auto, n, d)
				tt.MustDivIdentity(q, r, n, d)
				tt.MustEqual(norig, n)
				tt.MustEqual(dorig, d)
			}
		})
	}
}

func TestTDivQRShortQuotient(t *testing.T) {
	// nn < 2dn takes the path that divides only the top of each operand.
	rng := rand.New(rand.NewSource(41))
	for _, c := range []struct{ nn, dn int }{
		{3, 3}, {4, 3}, {5, 3}, {5, 4}, {6, 4}, {7, 4},
		{20, 12}, {23, 12}, {80, 60}, {119, 60}, {150, 100}, {199, 100},
		{260, 200},
	} {
		t.Run(fmt.Sprintf("%d/%d", c.nn, c.dn), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for i := 0; i < 20; i++ {
				var n, d []Limb
				switch i % 4 {
				case 0:
					n, d = allOnes(c.nn), randDivisor(rng, c.dn)
				case 1:
					n, d = randLimbs(rng, c.nn), allOnes(c.dn)
				default:
					n, d = randLimbs(rng, c.nn), randDivisor(rng, c.dn)
				}
				q, r := tdiv(Auto, n, d)
				tt.MustDivIdentity(q, r, n, d)
			}
		})
	}
}

func TestTDivQRIdentities(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(42))
	for _, dn := range []int{1, 2, 3, 7, 60, 200} {
		d := randDivisor(rng, dn)

		q, r := tdiv(Auto, d, d)
		tt.MustLimbsEqual([]Limb{1}, q, "d/d")
		tt.MustAssert(limbs.IsZero(r), "d mod d")

		zero := make([]Limb, dn+3)
		q, r = tdiv(Auto, zero, d)
		tt.MustAssert(limbs.IsZero(q) && limbs.IsZero(r), "0/d")
	}
}

func TestTDivQRSingleLimb(t *testing.T) {
	tt := assert.WrapTB(t)
	n := []Limb{100, 3}
	q, r := tdiv(Auto, n, []Limb{7})

	// (3*B + 100) / 7 with double-width arithmetic.
	eq, er := limbs.JoinHalves(3, 100).QuoRemLimb(7)
	tt.MustEqual(er, r[0])
	tt.MustEqual(eq, q[0])
	tt.MustEqual(Limb(0), q[1])
}

func TestTDivQRTwoLimbUnnormalized(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(43))
	d := []Limb{5, 4}
	for _, nn := range []int{2, 3, 4, 9} {
		n := randLimbs(rng, nn)
		q, r := tdiv(Auto, n, d)
		eq, er := bigQuoRem(n, d)
		tt.MustLimbsEqual(assert.Limbs(eq, nn-1), q)
		tt.MustLimbsEqual(assert.Limbs(er, 2), r)
	}
}

func agree(tt assert.T, algs []Algorithm, n, d []Limb) {
	tt.Helper()
	q0, r0 := tdiv(algs[0], n, d)
	tt.MustDivIdentity(q0, r0, n, d, "%s", algs[0])
	for _, alg := range algs[1:] {
		q, r := tdiv(alg, n, d)
		tt.MustEqual(q0, q, "%s quotient differs from %s", alg, algs[0])
		tt.MustEqual(r0, r, "%s remainder differs from %s", alg, algs[0])
	}
}

func TestAlgorithmsAgree(t *testing.T) {
	rng := rand.New(rand.NewSource(44))
	all := []Algorithm{Schoolbook, DivideAndConquer, NewtonBarrett, Auto}
	for _, c := range []struct{ nn, dn int }{
		{6, 6}, {7, 6}, {20, 6}, {100, 30}, {150, 80}, {400, 150}, {320, 200},
	} {
		t.Run(fmt.Sprintf("%d/%d", c.nn, c.dn), func(t *testing.T) {
			tt := assert.WrapTB(t)
			for i := 0; i < 3; i++ {
				agree(tt, all, randLimbs(rng, c.nn), randDivisor(rng, c.dn))
			}
			agree(tt, all, allOnes(c.nn), allOnes(c.dn))
		})
	}
}

func TestAlgorithmsAgreeAtSchoolbookThreshold(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(45))
	n := randLimbs(rng, 3*DCDivQRThreshold)
	for _, dn := range []int{DCDivQRThreshold - 1, DCDivQRThreshold, DCDivQRThreshold + 1} {
		tt.MustEqual(dn >= DCDivQRThreshold, Choose(len(n), dn) == DivideAndConquer)
		agree(tt, []Algorithm{Schoolbook, DivideAndConquer}, n, randDivisor(rng, dn))
	}
}

func TestAlgorithmsAgreeAtBarrettThreshold(t *testing.T) {
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(46))
	nn := 2 * MuDivQRThreshold
	for _, dn := range []int{MuPIDivQRThreshold - 1, MuPIDivQRThreshold, 1000} {
		n, d := randLimbs(rng, nn), randDivisor(rng, dn)
		agree(tt, []Algorithm{DivideAndConquer, NewtonBarrett}, n, d)
	}
}

func TestBarrettPathLargeOperands(t *testing.T) {
	if testing.Short() {
		t.Skip()
	}
	tt := assert.WrapTB(t)
	rng := rand.New(rand.NewSource(47))
	for _, c := range []struct{ nn, dn int }{{3000, 1000}, {4100, 1900}, {6000, 900}} {
		tt.MustEqual(NewtonBarrett, Choose(c.nn, c.dn), "%d/%d", c.nn, c.dn)
		n, d := randLimbs(rng, c.nn), randDivisor(rng, c.dn)
		q, r := tdiv(Auto, n, d)
		tt.MustDivIdentity(q, r, n, d, "%d/%d", c.nn, c.dn)
	}
}

func TestAllOnesDivisor(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, dn := range []int{3, 6, 50, 51, 120} {
		d := allOnes(dn)
		for _, nn := range []int{dn, dn + 1, 2 * dn, 3*dn + 1} {
			n := allOnes(nn)
			for _, alg := range []Algorithm{Auto, Schoolbook, DivideAndConquer, NewtonBarrett} {
				if alg == DivideAndConquer && dn < 6 {
					continue
				}
				q, r := tdiv(alg, n, d)
				tt.MustDivIdentity(q, r, n, d, "%s %d/%d", alg, nn, dn)
			}
		}
	}
}

func TestChoose(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, c := range []struct {
		nn, dn int
		alg    Algorithm
	}{
		{1, 1, SingleLimb},
		{9, 2, TwoLimb},
		{100, 3, Schoolbook},
		{100, DCDivQRThreshold - 1, Schoolbook},
		{102, DCDivQRThreshold, DivideAndConquer},
		{100000, MuPIDivQRThreshold - 1, DivideAndConquer},
		{2*MuDivQRThreshold - 1, 1000, DivideAndConquer},
		{3000, 1000, NewtonBarrett},
		{10000, 100, DivideAndConquer},
		{11000, 100, NewtonBarrett},
		{100000, 5000, NewtonBarrett},
	} {
		tt.MustEqual(c.alg, Choose(c.nn, c.dn), "%d/%d", c.nn, c.dn)
	}
	tt.MustPanic("division by zero", func() { Choose(1, 0) })
}

func TestParseAlgorithm(t *testing.T) {
	tt := assert.WrapTB(t)
	for _, alg := range []Algorithm{Auto, SingleLimb, TwoLimb, Schoolbook, DivideAndConquer, NewtonBarrett} {
		got, err := ParseAlgorithm(alg.String())
		tt.MustOK(err)
		tt.MustEqual(alg, got)
	}
	got, err := ParseAlgorithm("DC")
	tt.MustOK(err)
	tt.MustEqual(DivideAndConquer, got)
	_, err = ParseAlgorithm("toom")
	tt.MustAssert(err != nil)
	tt.MustEqual("Algorithm(99)", Algorithm(99).String())
}

func TestTDivQRPreconditions(t *testing.T) {
	tt := assert.WrapTB(t)
	tt.MustPanic("division by zero", func() { TDivQR(make([]Limb, 2), nil, []Limb{1}, nil) })
	tt.MustPanic("zero top limb", func() { TDivQR(make([]Limb, 1), make([]Limb, 2), []Limb{1, 1}, []Limb{1, 0}) })
	tt.MustPanic("shorter", func() { TDivQR(nil, make([]Limb, 2), []Limb{1}, []Limb{1, 1}) })
	tt.MustPanic("quotient must have", func() { TDivQR(make([]Limb, 1), make([]Limb, 1), []Limb{1, 1}, []Limb{1}) })
	tt.MustPanic("six limbs", func() {
		TDivQRWith(DivideAndConquer, make([]Limb, 4), make([]Limb, 5), allOnes(8), allOnes(5))
	})
	tt.MustPanic("cannot divide", func() {
		TDivQRWith(TwoLimb, make([]Limb, 4), make([]Limb, 5), allOnes(8), allOnes(5))
	})

	buf := make([]Limb, 6)
	tt.MustPanic("overlapping", func() { TDivQR(buf[:2], buf[2:3], buf[1:3], []Limb{3}) })
}
