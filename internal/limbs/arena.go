package limbs

import "unsafe"

// CheckAliasing enables the overlap assertions made by MustBeDisjoint. The
// kernels rely on it to catch views carved from the same buffer that were
// expected to be disjoint.
const CheckAliasing = true

// Arena hands out disjoint views of a single owned buffer. Views are capacity
// capped, so appending to one can never write into its neighbour.
type Arena struct {
	buf []Limb
	off int
}

func NewArena(n int) *Arena {
	return &Arena{buf: make([]Limb, n)}
}

// Alloc returns the next n zeroed limbs of the arena. It panics when the
// arena is exhausted, which means the caller's size calculation was wrong.
func (a *Arena) Alloc(n int) []Limb {
	if n < 0 || a.off+n > len(a.buf) {
		panic("limbs: arena exhausted")
	}
	v := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	Clear(v)
	return v
}

// SplitAt splits x into a capacity-capped prefix of n limbs and the rest.
func SplitAt(x []Limb, n int) (lo, hi []Limb) {
	return x[:n:n], x[n:]
}

// Overlaps reports whether x and y share any limb of memory.
func Overlaps(x, y []Limb) bool {
	if len(x) == 0 || len(y) == 0 {
		return false
	}
	const sz = unsafe.Sizeof(Limb(0))
	xs := uintptr(unsafe.Pointer(&x[0]))
	ys := uintptr(unsafe.Pointer(&y[0]))
	xe := xs + uintptr(len(x))*sz
	ye := ys + uintptr(len(y))*sz
	return xs < ye && ys < xe
}

// MustBeDisjoint panics if x and y overlap and CheckAliasing is set.
func MustBeDisjoint(x, y []Limb, what string) {
	if CheckAliasing && Overlaps(x, y) {
		panic("limbs: overlapping views: " + what)
	}
}
