package natural

import (
	"errors"

	"github.com/shabbyrobe/go-natural/internal/division"
)

// ErrDivisionByZero is returned by DivMod and CeilingDivNegMod when the
// divisor is zero. The panicking forms (QuoRem, Quo, Rem) panic with this
// value, so a recovered panic can be matched with errors.Is.
var ErrDivisionByZero = errors.New("natural: division by zero")

// DivMod returns the quotient and remainder of n/by:
//
//	q = floor(n/by)
//	r = n - by*q
//
// For naturals truncated, floored and Euclidean division agree.
func (n Natural) DivMod(by Natural) (q, r Natural, err error) {
	if by.IsZero() {
		return q, r, ErrDivisionByZero
	}
	q, r = n.quoRem(by)
	return q, r, nil
}

// QuoRem is DivMod for callers that have already excluded a zero divisor.
// If by == 0 it panics with ErrDivisionByZero.
func (n Natural) QuoRem(by Natural) (q, r Natural) {
	if by.IsZero() {
		panic(ErrDivisionByZero)
	}
	return n.quoRem(by)
}

// Quo returns n/by, rounded down. If by == 0 it panics with
// ErrDivisionByZero.
func (n Natural) Quo(by Natural) (q Natural) {
	q, _ = n.QuoRem(by)
	return q
}

// Rem returns n mod by. If by == 0 it panics with ErrDivisionByZero.
func (n Natural) Rem(by Natural) (r Natural) {
	_, r = n.QuoRem(by)
	return r
}

// CeilingDivNegMod returns the quotient rounded up and the amount by which
// the quotient's multiple overshoots n:
//
//	q = ceil(n/by)
//	r = by*q - n
func (n Natural) CeilingDivNegMod(by Natural) (q, r Natural, err error) {
	q, r, err = n.DivMod(by)
	if err != nil || r.IsZero() {
		return q, r, err
	}
	return q.Inc(), by.Sub(r), nil
}

func (n Natural) quoRem(by Natural) (q, r Natural) {
	if n.large == nil && by.large == nil {
		return Natural{small: n.small / by.small}, Natural{small: n.small % by.small}
	}
	if n.Cmp(by) < 0 {
		return Natural{}, n
	}

	x, d := n.view(), by.view()
	if len(d) == 1 {
		qq := make([]Limb, len(x))
		rr := division.DivLimb(qq, x, d[0])
		return fromOwned(qq), Natural{small: rr}
	}

	qq := make([]Limb, len(x)-len(d)+1)
	rr := make([]Limb, len(d))
	division.TDivQR(qq, rr, x, d)
	return fromOwned(qq), fromOwned(rr)
}
