package natural

type RandSource interface {
	Uint64() uint64
}

// RandNatural returns a uniformly random Natural below 2^bits.
func RandNatural(src RandSource, bits uint) Natural {
	x := make([]Limb, limbsForBits(bits))
	for i := range x {
		x[i] = Limb(src.Uint64())
	}
	return fromOwned(maskTop(x, bits))
}

// RandStripedNatural returns a Natural below 2^bits made of long runs of
// ones and zeros. Values like these hit carry and borrow paths that uniform
// random values almost never reach.
func RandStripedNatural(src RandSource, bits uint) Natural {
	x := make([]Limb, limbsForBits(bits))
	total := uint(len(x)) * LimbBits
	one := src.Uint64()&1 == 1
	for pos := uint(0); pos < total; {
		run := uint(src.Uint64()%uint64(2*LimbBits)) + 1
		for end := pos + run; pos < end && pos < total; pos++ {
			if one {
				x[pos/LimbBits] |= 1 << (pos % LimbBits)
			}
		}
		one = !one
	}
	return fromOwned(maskTop(x, bits))
}

func limbsForBits(bits uint) uint { return (bits + LimbBits - 1) / LimbBits }

func maskTop(x []Limb, bits uint) []Limb {
	if rem := bits % LimbBits; rem != 0 && len(x) > 0 {
		x[len(x)-1] &= 1<<rem - 1
	}
	return x
}

// DifferenceNatural subtracts the smaller of a and b from the larger.
func DifferenceNatural(a, b Natural) Natural {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}

func LargerNatural(a, b Natural) Natural {
	if b.Cmp(a) > 0 {
		return b
	}
	return a
}

func SmallerNatural(a, b Natural) Natural {
	if b.Cmp(a) < 0 {
		return b
	}
	return a
}

// DifferenceInteger subtracts the smaller of a and b from the larger.
func DifferenceInteger(a, b Integer) Integer {
	if a.Cmp(b) >= 0 {
		return a.Sub(b)
	}
	return b.Sub(a)
}
