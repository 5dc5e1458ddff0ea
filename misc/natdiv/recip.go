package main

import (
	"fmt"
	"math/bits"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	natural "github.com/shabbyrobe/go-natural"
	"github.com/shabbyrobe/go-natural/internal/division"
)

func invertCommand(g *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "invert <divisor>",
		Short: "Print the approximate reciprocal of a divisor after normalizing it",
		Long: `Shifts the divisor left until its top bit is set, then prints the
n-limb reciprocal ip and error flag e, which satisfy

	d * (B^n + ip) < B^2n <= d * (B^n + ip + 1 + e)

for B = 2^LimbBits.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			if d.IsZero() {
				return natural.ErrDivisionByZero
			}

			shift := uint(d.LimbLen()*natural.LimbBits - d.BitLen())
			dn := d.Lsh(shift)
			x := dn.Limbs()
			log.Infof("normalized %d-limb divisor with a shift of %d", len(x), shift)

			ip := make([]natural.Limb, len(x))
			scratch := make([]natural.Limb, division.InvertApproxScratchLen(len(x)))
			var e natural.Limb
			if err := recovered(func() { e = division.InvertApprox(ip, x, scratch) }); err != nil {
				return err
			}
			g.dumpLimbs("reciprocal", ip)

			out := cmd.OutOrStdout()
			switch len(x) {
			case 1:
				fmt.Fprintf(out, "limb inverse  = %#x\n", division.LimbInverse(x[0]))
			case 2:
				fmt.Fprintf(out, "3/2 inverse   = %#x\n", division.TwoLimbInverse(x[1], x[0]))
			}
			fmt.Fprintf(out, "shift = %d\nip    = %#x\ne     = %d\n", shift, natural.NaturalFromLimbs(ip), e)

			if err := checkReciprocal(dn, natural.NaturalFromLimbs(ip), e, len(x)); err != nil {
				return err
			}
			return nil
		},
	}
}

// checkReciprocal verifies the reciprocal bounds with Natural arithmetic.
func checkReciprocal(d, ip natural.Natural, e natural.Limb, n int) error {
	bn := natural.One.Lsh(uint(n * natural.LimbBits))
	b2n := bn.Mul(bn)
	lo := d.Mul(bn.Add(ip))
	hi := d.Mul(bn.Add(ip).Inc().Add(natural.NaturalFromLimb(e)))
	if !lo.LessThan(b2n) || !b2n.LessOrEqualTo(hi) {
		return fmt.Errorf("natdiv: reciprocal %#x out of bounds for %#x", ip, d)
	}
	log.Debugf("reciprocal bounds hold")
	return nil
}

func recipCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "recip <divisor> [numerator]",
		Short: "Find the multiply-and-shift constants that divide a uint64 by divisor",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			if d.IsZero() || !d.IsUint64() {
				return fmt.Errorf("natdiv: divisor must be in 1..2^64-1, found %s", d)
			}
			denom := d.AsUint64()
			if denom&(denom-1) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%d is a power of two: shift right by %d\n", denom, bits.TrailingZeros64(denom))
				return nil
			}

			recip, shift, add, err := divFindMulU64(denom)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recip:%#x shift:%d 65bit:%v\n", recip, shift, add)

			if len(args) == 2 {
				n, err := parseNatural(args[1])
				if err != nil {
					return err
				}
				if !n.IsUint64() {
					return fmt.Errorf("natdiv: numerator %s does not fit in 64 bits", n)
				}
				numer := n.AsUint64()
				result := divMulU64(numer, recip, shift, add)
				fmt.Fprintf(cmd.OutOrStdout(), "%d / %d == %d\n", numer, denom, result)
				if want := n.Quo(d); want.AsUint64() != result {
					return fmt.Errorf("natdiv: multiply-and-shift gave %d, division gave %s", result, want)
				}
			}
			return nil
		},
	}
}

// divFindMulU64 finds m, s such that n/denom == mulhi(n, m) >> s for every
// uint64 n. When add is set the multiplier needs 65 bits; its top bit is
// implied and the quotient is recovered as ((n - q) >> 1 + q) >> s.
// denom must not be a power of two.
func divFindMulU64(denom uint64) (recip uint64, shift uint, add bool, err error) {
	var floorLog2d = uint(63 - bits.LeadingZeros64(denom))
	var proposedM, rem = natural.One.
		Lsh(floorLog2d + 64).
		QuoRem(natural.NaturalFrom64(denom))

	if !proposedM.IsUint64() {
		return 0, 0, false, fmt.Errorf("natdiv: multiplier %s overflows 64 bits", proposedM)
	}
	var proposedM64, rem64 = proposedM.AsUint64(), rem.AsUint64()

	var e = denom - rem64
	if e < 1<<floorLog2d {
		shift = floorLog2d
	} else {
		// 0.65 bit version:
		proposedM64 += proposedM64
		twiceRem := rem64 + rem64
		if twiceRem >= denom || twiceRem < rem64 {
			proposedM64++
		}
		shift = floorLog2d
		add = true
	}

	recip = 1 + proposedM64
	return recip, shift, add, nil
}

func divMulU64(numer, recip uint64, shift uint, add bool) uint64 {
	q, _ := bits.Mul64(numer, recip)
	if add {
		t := ((numer - q) >> 1) + q
		return t >> shift
	}
	return q >> shift
}
