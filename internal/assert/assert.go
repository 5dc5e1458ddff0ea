package assert

import (
	"fmt"
	"math/big"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/shabbyrobe/go-natural/internal/limbs"
	golib "github.com/shabbyrobe/golib/assert"
)

func WrapTB(tb testing.TB) T { tb.Helper(); return T{T: golib.WrapTB(tb)} }

// T extends golib's assertions with checks for limb vectors. As there,
// assertions prefixed with 'Must' terminate the test case immediately.
type T struct{ golib.T }

// Big converts a little-endian limb vector to a big.Int.
func Big(x []limbs.Limb) *big.Int {
	v := new(big.Int)
	for i := len(x) - 1; i >= 0; i-- {
		v.Lsh(v, limbs.Width)
		v.Or(v, new(big.Int).SetUint64(uint64(x[i])))
	}
	return v
}

// Limbs converts a non-negative big.Int to exactly n limbs, panicking if it
// does not fit.
func Limbs(v *big.Int, n int) []limbs.Limb {
	if v.Sign() < 0 || v.BitLen() > n*limbs.Width {
		panic(fmt.Errorf("assert: %s does not fit in %d limbs", v, n))
	}
	out := make([]limbs.Limb, n)
	mask := new(big.Int).SetUint64(uint64(limbs.Max))
	x := new(big.Int).Set(v)
	for i := range out {
		out[i] = limbs.Limb(new(big.Int).And(x, mask).Uint64())
		x.Rsh(x, limbs.Width)
	}
	return out
}

// MustEqual immediately fails the test if cmp.Equal reports a difference
// between exp and act; the failure shows the diff.
func (tb T) MustEqual(exp, act interface{}, v ...interface{}) {
	tb.Helper()
	_ = tb.equals(true, exp, act, v...)
}

func (tb T) Equals(exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	return tb.equals(false, exp, act, v...)
}

func (tb T) equals(fatal bool, exp, act interface{}, v ...interface{}) bool {
	tb.Helper()
	if diff := cmp.Diff(exp, act); diff != "" {
		_, file, line, _ := runtime.Caller(2)
		tb.fail(fatal, fmt.Sprintf("\nequal failed at %s:%d%s\n(-exp +got)\n%s",
			filepath.Base(file), line, extra(v), diff))
		return false
	}
	return true
}

// MustLimbsEqual compares two vectors as numbers, so differing high zero
// limbs are tolerated.
func (tb T) MustLimbsEqual(exp, act []limbs.Limb, v ...interface{}) {
	tb.Helper()
	e, a := Big(exp), Big(act)
	if e.Cmp(a) != 0 {
		_, file, line, _ := runtime.Caller(1)
		tb.fail(true, fmt.Sprintf("\nlimbs differ at %s:%d%s\nexp: %#x\ngot: %#x",
			filepath.Base(file), line, extra(v), e, a))
	}
}

// MustDivIdentity checks that n == q*d + r and r < d.
func (tb T) MustDivIdentity(q, r, n, d []limbs.Limb, v ...interface{}) {
	tb.Helper()
	bq, br, bn, bd := Big(q), Big(r), Big(n), Big(d)
	_, file, line, _ := runtime.Caller(1)
	if br.Cmp(bd) >= 0 {
		tb.fail(true, fmt.Sprintf("\nremainder not below divisor at %s:%d%s\nr: %#x\nd: %#x",
			filepath.Base(file), line, extra(v), br, bd))
	}
	back := new(big.Int).Mul(bq, bd)
	back.Add(back, br)
	if back.Cmp(bn) != 0 {
		tb.fail(true, fmt.Sprintf("\nq*d + r != n at %s:%d%s\nn: %#x\nd: %#x\nq: %#x\nr: %#x",
			filepath.Base(file), line, extra(v), bn, bd, bq, br))
	}
}

// MustPanic fails unless fn panics with a message containing contains.
func (tb T) MustPanic(contains string, fn func()) {
	tb.Helper()
	_, file, line, _ := runtime.Caller(1)
	msg := func() (msg string) {
		defer func() {
			if r := recover(); r != nil {
				msg = fmt.Sprint(r)
			}
		}()
		fn()
		return ""
	}()
	if msg == "" {
		tb.fail(true, fmt.Sprintf("\nexpected panic at %s:%d", filepath.Base(file), line))
	} else if !strings.Contains(msg, contains) {
		tb.fail(true, fmt.Sprintf("\npanic at %s:%d did not mention %q: %s", filepath.Base(file), line, contains, msg))
	}
}

func extra(v []interface{}) string {
	if len(v) == 0 {
		return ""
	}
	if s, ok := v[0].(string); ok {
		return " - " + fmt.Sprintf(s, v[1:]...)
	}
	return " - " + fmt.Sprint(v...)
}

func (tb T) fail(fatal bool, msg string) {
	tb.Helper()
	if fatal {
		tb.Fatal(msg)
	} else {
		tb.Error(msg)
	}
}
