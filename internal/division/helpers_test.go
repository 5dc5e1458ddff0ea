package division

import (
	"math/big"
	"math/rand"

	"github.com/shabbyrobe/go-natural/internal/assert"
	"github.com/shabbyrobe/go-natural/internal/limbs"
)

// stripe fills x with alternating runs of one and zero bits. Long runs of
// ones drive the quotient estimates into their saturated branches far more
// often than uniform limbs do.
func stripe(rng *rand.Rand, x []Limb) {
	limbs.Clear(x)
	bit := rng.Intn(2)
	total := len(x) * limbs.Width
	for pos := 0; pos < total; bit ^= 1 {
		run := 1 + rng.Intn(2*limbs.Width)
		for j := 0; j < run && pos < total; j++ {
			if bit != 0 {
				x[pos/limbs.Width] |= 1 << uint(pos%limbs.Width)
			}
			pos++
		}
	}
}

func randLimbs(rng *rand.Rand, n int) []Limb {
	x := make([]Limb, n)
	if rng.Intn(4) == 0 {
		stripe(rng, x)
		return x
	}
	for i := range x {
		x[i] = Limb(rng.Uint64())
	}
	return x
}

func randNormalized(rng *rand.Rand, n int) []Limb {
	d := randLimbs(rng, n)
	d[n-1] |= highBit
	return d
}

// randDivisor returns n limbs with a non-zero, usually unnormalized, top limb.
func randDivisor(rng *rand.Rand, n int) []Limb {
	d := randLimbs(rng, n)
	d[n-1] >>= uint(rng.Intn(limbs.Width))
	if d[n-1] == 0 {
		d[n-1] = 1
	}
	return d
}

func clone(x []Limb) []Limb { return append([]Limb(nil), x...) }

func withTop(q []Limb, qh Limb) []Limb { return append(clone(q), qh) }

func bigQuoRem(n, d []Limb) (q, r *big.Int) {
	return new(big.Int).QuoRem(assert.Big(n), assert.Big(d), new(big.Int))
}

func allOnes(n int) []Limb {
	x := make([]Limb, n)
	limbs.Fill(x, limbs.Max)
	return x
}
