package natural

import (
	"encoding/binary"
	"fmt"
	"math/big"
	"math/bits"
	"strconv"

	"github.com/shabbyrobe/go-natural/internal/limbs"
	"github.com/zeebo/blake3"
)

// Limb is one base-2^LimbBits digit of a Natural.
type Limb = limbs.Limb

// LimbBits is the width of a Limb, which follows the platform's uint.
const LimbBits = limbs.Width

// Natural is a non-negative integer of any size. Values that fit in one limb
// are held inline; larger ones own a little-endian limb slice whose top limb
// is non-zero. Naturals are values: no operation modifies its operands, so a
// Natural may be copied and shared freely.
type Natural struct {
	small Limb
	large []Limb
}

func NaturalFromLimb(v Limb) Natural { return Natural{small: v} }
func NaturalFrom32(v uint32) Natural { return Natural{small: Limb(v)} }

func NaturalFrom64(v uint64) Natural {
	if v <= uint64(limbs.Max) {
		return Natural{small: Limb(v)}
	}
	return fromOwned([]Limb{Limb(v), Limb(v >> 32)})
}

// NaturalFromLimbs creates a Natural from little-endian limbs. High zero
// limbs are allowed; x is copied.
func NaturalFromLimbs(x []Limb) Natural {
	return fromOwned(append([]Limb(nil), x[:limbs.Norm(x)]...))
}

// NaturalFromString parses a decimal string.
func NaturalFromString(s string) (out Natural, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("natural: string %q invalid", s)
	}
	if b.Sign() < 0 {
		return out, fmt.Errorf("natural: string %q is negative", s)
	}
	out, _ = NaturalFromBigInt(b)
	return out, nil
}

// MustNaturalFromString is NaturalFromString for constants; it panics on
// error.
func MustNaturalFromString(s string) Natural {
	n, err := NaturalFromString(s)
	if err != nil {
		panic(err)
	}
	return n
}

// NaturalFromBigInt creates a Natural from a big.Int. Negative values yield
// zero with accurate set to false.
func NaturalFromBigInt(v *big.Int) (out Natural, accurate bool) {
	if v.Sign() < 0 {
		return out, false
	}
	words := v.Bits()
	x := make([]Limb, len(words))
	for i, w := range words {
		x[i] = Limb(w)
	}
	return fromOwned(x), true
}

// fromOwned wraps x without copying, trimming high zero limbs.
func fromOwned(x []Limb) Natural {
	n := limbs.Norm(x)
	switch n {
	case 0:
		return Natural{}
	case 1:
		return Natural{small: x[0]}
	}
	return Natural{large: x[:n:n]}
}

// view returns the limbs of n, which must not be modified. Zero has none.
func (n Natural) view() []Limb {
	if n.large != nil {
		return n.large
	}
	if n.small == 0 {
		return nil
	}
	return []Limb{n.small}
}

func (n Natural) IsZero() bool { return n.large == nil && n.small == 0 }

// IsLimb reports whether n fits in a single limb.
func (n Natural) IsLimb() bool { return n.large == nil }

// Limbs returns a copy of n's little-endian limbs, without high zeros.
func (n Natural) Limbs() []Limb { return append([]Limb(nil), n.view()...) }

// LimbLen is the number of significant limbs in n.
func (n Natural) LimbLen() int {
	if n.large != nil {
		return len(n.large)
	}
	if n.small == 0 {
		return 0
	}
	return 1
}

// AsLimb truncates n to its low limb.
func (n Natural) AsLimb() Limb {
	if n.large != nil {
		return n.large[0]
	}
	return n.small
}

// AsUint64 truncates n to 64 bits. See IsUint64 to check before converting.
func (n Natural) AsUint64() uint64 {
	x := n.view()
	switch {
	case len(x) == 0:
		return 0
	case LimbBits == 64 || len(x) == 1:
		return uint64(x[0])
	}
	return uint64(x[1])<<32 | uint64(x[0])
}

// IsUint64 reports whether n can be represented as a uint64.
func (n Natural) IsUint64() bool { return n.BitLen() <= 64 }

func (n Natural) IntoBigInt(b *big.Int) {
	x := n.view()
	words := b.Bits()
	if cap(words) < len(x) {
		words = make([]big.Word, len(x))
	}
	words = words[:len(x)]
	for i, v := range x {
		words[i] = big.Word(v)
	}
	b.SetBits(words)
}

func (n Natural) AsBigInt() *big.Int {
	var v big.Int
	n.IntoBigInt(&v)
	return &v
}

func (n Natural) String() string {
	if n.large == nil {
		return strconv.FormatUint(uint64(n.small), 10)
	}
	return n.AsBigInt().String()
}

func (n Natural) Format(s fmt.State, c rune) {
	n.AsBigInt().Format(s, c)
}

// BitLen returns the length of n in bits. The bit length of 0 is 0.
func (n Natural) BitLen() int {
	x := n.view()
	if len(x) == 0 {
		return 0
	}
	top := len(x) - 1
	return top*LimbBits + bits.Len(uint(x[top]))
}

// TrailingZeros returns the number of consecutive low zero bits of n; for
// zero it returns 0.
func (n Natural) TrailingZeros() uint {
	for i, v := range n.view() {
		if v != 0 {
			return uint(i*LimbBits + bits.TrailingZeros(uint(v)))
		}
	}
	return 0
}

// Bit returns the value of the i'th bit of n.
func (n Natural) Bit(i uint) uint {
	x := n.view()
	w := int(i / LimbBits)
	if w >= len(x) {
		return 0
	}
	return uint(x[w]>>(i%LimbBits)) & 1
}

func (n Natural) Cmp(v Natural) int {
	if n.large == nil && v.large == nil {
		if n.small > v.small {
			return 1
		} else if n.small < v.small {
			return -1
		}
		return 0
	}
	x, y := n.view(), v.view()
	if len(x) != len(y) {
		if len(x) > len(y) {
			return 1
		}
		return -1
	}
	return limbs.Cmp(x, y)
}

func (n Natural) Equal(v Natural) bool            { return n.Cmp(v) == 0 }
func (n Natural) GreaterThan(v Natural) bool      { return n.Cmp(v) > 0 }
func (n Natural) GreaterOrEqualTo(v Natural) bool { return n.Cmp(v) >= 0 }
func (n Natural) LessThan(v Natural) bool         { return n.Cmp(v) < 0 }
func (n Natural) LessOrEqualTo(v Natural) bool    { return n.Cmp(v) <= 0 }

func (n Natural) Inc() Natural { return n.Add(Natural{small: 1}) }

// Dec returns n-1. It panics if n is zero.
func (n Natural) Dec() Natural { return n.Sub(Natural{small: 1}) }

func (n Natural) Add(v Natural) Natural {
	if n.large == nil && v.large == nil {
		s, c := bits.Add(uint(n.small), uint(v.small), 0)
		if c == 0 {
			return Natural{small: Limb(s)}
		}
		return Natural{large: []Limb{Limb(s), 1}}
	}
	x, y := n.view(), v.view()
	if len(x) < len(y) {
		x, y = y, x
	}
	z := make([]Limb, len(x)+1)
	copy(z, x)
	z[len(x)] = limbs.AddInPlace(z[:len(x)], y)
	return fromOwned(z)
}

// Sub returns n-v. It panics if v > n; see CheckedSub.
func (n Natural) Sub(v Natural) Natural {
	d, ok := n.CheckedSub(v)
	if !ok {
		panic("natural: subtraction underflow")
	}
	return d
}

// CheckedSub returns n-v, or false if v > n.
func (n Natural) CheckedSub(v Natural) (Natural, bool) {
	if n.large == nil && v.large == nil {
		if v.small > n.small {
			return Natural{}, false
		}
		return Natural{small: n.small - v.small}, true
	}
	if n.Cmp(v) < 0 {
		return Natural{}, false
	}
	x, y := n.view(), v.view()
	z := append([]Limb(nil), x...)
	limbs.SubInPlace(z, y)
	return fromOwned(z), true
}

func (n Natural) Mul(v Natural) Natural {
	if n.IsZero() || v.IsZero() {
		return Natural{}
	}
	if n.large == nil && v.large == nil {
		hi, lo := bits.Mul(uint(n.small), uint(v.small))
		return fromOwned([]Limb{Limb(lo), Limb(hi)})
	}
	x, y := n.view(), v.view()
	z := make([]Limb, len(x)+len(y))
	limbs.MulToOut(z, x, y)
	return fromOwned(z)
}

func (n Natural) Lsh(s uint) Natural {
	if n.IsZero() || s == 0 {
		return n
	}
	x := n.view()
	w, b := int(s/LimbBits), s%LimbBits
	z := make([]Limb, len(x)+w+1)
	z[len(x)+w] = limbs.ShlVU(z[w:len(x)+w], x, b)
	return fromOwned(z)
}

func (n Natural) Rsh(s uint) Natural {
	if s == 0 {
		return n
	}
	if n.large == nil {
		if s >= LimbBits {
			return Natural{}
		}
		return Natural{small: n.small >> s}
	}
	x := n.view()
	w, b := int(s/LimbBits), s%LimbBits
	if w >= len(x) {
		return Natural{}
	}
	z := make([]Limb, len(x)-w)
	limbs.ShrVU(z, x[w:], b)
	return fromOwned(z)
}

// Hash returns a BLAKE3 digest of n's value. Equal Naturals hash equally,
// whatever the limb width of the platform that computed them.
func (n Natural) Hash() [32]byte {
	h := blake3.New()
	var buf [8]byte
	x := n.view()
	// Hash 64-bit little-endian words, so 32-bit limbs are paired up.
	for i := 0; i < len(x); {
		var w uint64
		if LimbBits == 64 {
			w = uint64(x[i])
			i++
		} else {
			w = uint64(x[i])
			if i+1 < len(x) {
				w |= uint64(x[i+1]) << 32
			}
			i += 2
		}
		binary.LittleEndian.PutUint64(buf[:], w)
		_, _ = h.Write(buf[:])
	}
	var out [32]byte
	h.Sum(out[:0])
	return out
}

func (n Natural) MarshalText() ([]byte, error) {
	return []byte(n.String()), nil
}

func (n *Natural) UnmarshalText(bts []byte) (err error) {
	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}

func (n Natural) MarshalJSON() ([]byte, error) {
	return []byte(`"` + n.String() + `"`), nil
}

func (n *Natural) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("natural: invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := NaturalFromString(string(bts))
	if err != nil {
		return err
	}
	*n = v
	return nil
}
