package natural

import (
	"fmt"
	"math/big"
)

// Integer is a signed integer of any size, held as a sign and a Natural
// magnitude. Zero is never negative.
type Integer struct {
	neg bool
	mag Natural
}

// IntegerFromString creates an Integer from a decimal string.
func IntegerFromString(s string) (out Integer, err error) {
	b, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return out, fmt.Errorf("natural: integer string %q invalid", s)
	}
	return IntegerFromBigInt(b), nil
}

func IntegerFrom64(v int64) Integer {
	if v < 0 {
		// -v overflows for MinInt64, but its two's complement reading as a
		// uint64 is still the right magnitude.
		return Integer{neg: true, mag: NaturalFrom64(uint64(-v))}
	}
	return Integer{mag: NaturalFrom64(uint64(v))}
}

func IntegerFromInt(v int) Integer { return IntegerFrom64(int64(v)) }

// IntegerFromNatural returns n with a positive sign.
func IntegerFromNatural(n Natural) Integer { return Integer{mag: n} }

func IntegerFromBigInt(v *big.Int) Integer {
	mag, _ := NaturalFromBigInt(new(big.Int).Abs(v))
	return signed(v.Sign() < 0, mag)
}

// signed builds an Integer, clearing the sign of zero.
func signed(neg bool, mag Natural) Integer {
	return Integer{neg: neg && !mag.IsZero(), mag: mag}
}

func (i Integer) IsZero() bool { return i.mag.IsZero() }

func (i Integer) Sign() int {
	if i.mag.IsZero() {
		return 0
	} else if i.neg {
		return -1
	}
	return 1
}

// Magnitude returns |i| as a Natural.
func (i Integer) Magnitude() Natural { return i.mag }

// AsNatural returns i as a Natural; ok is false if i is negative.
func (i Integer) AsNatural() (n Natural, ok bool) {
	if i.neg {
		return Natural{}, false
	}
	return i.mag, true
}

func (i Integer) IntoBigInt(b *big.Int) {
	i.mag.IntoBigInt(b)
	if i.neg {
		b.Neg(b)
	}
}

func (i Integer) AsBigInt() *big.Int {
	var v big.Int
	i.IntoBigInt(&v)
	return &v
}

func (i Integer) String() string {
	if i.neg {
		return "-" + i.mag.String()
	}
	return i.mag.String()
}

func (i Integer) Format(s fmt.State, c rune) {
	i.AsBigInt().Format(s, c)
}

func (i Integer) Neg() Integer { return signed(!i.neg, i.mag) }
func (i Integer) Abs() Integer { return Integer{mag: i.mag} }

func (i Integer) Add(n Integer) Integer {
	if i.neg == n.neg {
		return signed(i.neg, i.mag.Add(n.mag))
	}
	// Opposite signs: the result takes the sign of the larger magnitude.
	if i.mag.Cmp(n.mag) >= 0 {
		return signed(i.neg, i.mag.Sub(n.mag))
	}
	return signed(n.neg, n.mag.Sub(i.mag))
}

func (i Integer) Sub(n Integer) Integer { return i.Add(n.Neg()) }

func (i Integer) Inc() Integer { return i.Add(Integer{mag: Natural{small: 1}}) }
func (i Integer) Dec() Integer { return i.Sub(Integer{mag: Natural{small: 1}}) }

func (i Integer) Mul(n Integer) Integer {
	return signed(i.neg != n.neg, i.mag.Mul(n.mag))
}

// Cmp compares i to n and returns:
//
//	-1 if i <  n
//	 0 if i == n
//	+1 if i >  n
func (i Integer) Cmp(n Integer) int {
	switch {
	case i.neg && !n.neg:
		return -1
	case !i.neg && n.neg:
		return 1
	case i.neg:
		return n.mag.Cmp(i.mag)
	}
	return i.mag.Cmp(n.mag)
}

func (i Integer) Equal(n Integer) bool            { return i.neg == n.neg && i.mag.Equal(n.mag) }
func (i Integer) GreaterThan(n Integer) bool      { return i.Cmp(n) > 0 }
func (i Integer) GreaterOrEqualTo(n Integer) bool { return i.Cmp(n) >= 0 }
func (i Integer) LessThan(n Integer) bool         { return i.Cmp(n) < 0 }
func (i Integer) LessOrEqualTo(n Integer) bool    { return i.Cmp(n) <= 0 }

// QuoRem returns the quotient q and remainder r for by != 0. If by == 0 it
// panics with ErrDivisionByZero.
//
// QuoRem implements T-division and modulus (like Go):
//
//	q = x/y      with the result truncated to zero
//	r = x - y*q
//
// See DivMod for division rounding towards negative infinity.
func (i Integer) QuoRem(by Integer) (q, r Integer) {
	qm, rm := i.mag.QuoRem(by.mag)
	return signed(i.neg != by.neg, qm), signed(i.neg, rm)
}

// Quo returns i/by truncated towards zero. See QuoRem.
func (i Integer) Quo(by Integer) (q Integer) {
	q, _ = i.QuoRem(by)
	return q
}

// Rem returns the truncated remainder, which has the sign of i. See QuoRem.
func (i Integer) Rem(by Integer) (r Integer) {
	_, r = i.QuoRem(by)
	return r
}

// DivMod implements floored division, so r has the sign of by:
//
//	q = floor(x/y)
//	r = x - y*q
//
// It returns ErrDivisionByZero if by == 0.
func (i Integer) DivMod(by Integer) (q, r Integer, err error) {
	qm, rm, err := i.mag.DivMod(by.mag)
	if err != nil {
		return q, r, err
	}
	if i.neg == by.neg {
		return Integer{mag: qm}, signed(i.neg, rm), nil
	}
	// Signs differ: truncation rounded the negative quotient up.
	if rm.IsZero() {
		return signed(true, qm), Integer{}, nil
	}
	return signed(true, qm.Inc()), signed(by.neg, by.mag.Sub(rm)), nil
}

// Hash returns a BLAKE3 digest of i. It differs from the hash of the same
// magnitude with the opposite sign.
func (i Integer) Hash() [32]byte {
	h := i.mag.Hash()
	if i.neg {
		h[0] ^= 0xff
	}
	return h
}

func (i Integer) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

func (i *Integer) UnmarshalText(bts []byte) (err error) {
	v, err := IntegerFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}

func (i Integer) MarshalJSON() ([]byte, error) {
	return []byte(`"` + i.String() + `"`), nil
}

func (i *Integer) UnmarshalJSON(bts []byte) (err error) {
	if len(bts) > 0 && bts[0] == '"' {
		ln := len(bts)
		if ln < 2 || bts[ln-1] != '"' {
			return fmt.Errorf("natural: integer invalid JSON %q", string(bts))
		}
		bts = bts[1 : ln-1]
	}

	v, err := IntegerFromString(string(bts))
	if err != nil {
		return err
	}
	*i = v
	return nil
}
