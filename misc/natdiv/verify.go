package main

import (
	"context"
	"fmt"
	"math/big"
	"math/rand"
	"runtime"
	"sync/atomic"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/zeebo/mwc"
	"golang.org/x/sync/errgroup"

	natural "github.com/shabbyrobe/go-natural"
	"github.com/shabbyrobe/go-natural/internal/division"
)

type verifyOptions struct {
	iterations int
	minLimbs   int
	maxLimbs   int
	workers    int
	seed       int64
	striped    bool
}

func (o *verifyOptions) flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("verify", pflag.ContinueOnError)
	fs.IntVarP(&o.iterations, "iterations", "n", 1000, "divisions to check, spread across the workers")
	fs.IntVar(&o.minLimbs, "min-limbs", 1, "smallest divisor length in limbs")
	fs.IntVar(&o.maxLimbs, "max-limbs", 200, "largest numerator length in limbs")
	fs.IntVarP(&o.workers, "workers", "w", runtime.NumCPU(), "number of concurrent workers")
	fs.Int64Var(&o.seed, "seed", 0, "seed for reproducible runs (0 seeds each worker randomly)")
	fs.BoolVar(&o.striped, "striped", false, "draw operands with long runs of equal bits")
	return fs
}

func (o *verifyOptions) validate() error {
	switch {
	case o.iterations < 0:
		return fmt.Errorf("natdiv: --iterations must not be negative")
	case o.minLimbs < 1 || o.maxLimbs < o.minLimbs:
		return fmt.Errorf("natdiv: need 1 <= --min-limbs <= --max-limbs, found %d, %d", o.minLimbs, o.maxLimbs)
	case o.workers < 1:
		return fmt.Errorf("natdiv: --workers must be at least 1")
	}
	return nil
}

func verifyCommand() *cobra.Command {
	var opts verifyOptions
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check every kernel against math/big on random operands",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := opts.validate(); err != nil {
				return err
			}
			checked, err := verify(cmd.Context(), &opts)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d divisions agree with math/big\n", checked)
			return nil
		},
	}
	cmd.Flags().AddFlagSet(opts.flags())
	return cmd
}

// randFunc adapts a generator's Uint64 method value to natural.RandSource.
type randFunc func() uint64

func (f randFunc) Uint64() uint64 { return f() }

func workerSource(seed int64, worker int) natural.RandSource {
	if seed == 0 {
		rng := mwc.Rand()
		return randFunc(rng.Uint64)
	}
	return rand.New(rand.NewSource(seed + int64(worker)))
}

// intn returns a value in [0, n). The modulo bias is negligible for the
// small n used to pick operand sizes.
func intn(rng natural.RandSource, n int) int {
	return int(rng.Uint64() % uint64(n))
}

func verify(ctx context.Context, opts *verifyOptions) (checked int64, err error) {
	log.Infof("verifying %d divisions of up to %d limbs on %d workers", opts.iterations, opts.maxLimbs, opts.workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < opts.workers; w++ {
		w := w
		n := opts.iterations / opts.workers
		if w < opts.iterations%opts.workers {
			n++
		}
		g.Go(func() error {
			rng := workerSource(opts.seed, w)
			for i := 0; i < n; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				if err := verifyOne(rng, opts); err != nil {
					return fmt.Errorf("worker %d, iteration %d: %w", w, i, err)
				}
				atomic.AddInt64(&checked, 1)
			}
			log.Debugf("worker %d checked %d divisions", w, n)
			return nil
		})
	}
	err = g.Wait()
	return atomic.LoadInt64(&checked), err
}

// randOperand returns a random Natural of exactly nlimbs limbs.
func randOperand(rng natural.RandSource, nlimbs int, striped bool) natural.Natural {
	bits := uint(nlimbs*natural.LimbBits) - 1
	var v natural.Natural
	if striped {
		v = natural.RandStripedNatural(rng, bits)
	} else {
		v = natural.RandNatural(rng, bits)
	}
	return v.Add(natural.One.Lsh(bits))
}

// verifyOne divides one random pair with every kernel that accepts the
// divisor length and compares each result with math/big.
func verifyOne(rng natural.RandSource, opts *verifyOptions) error {
	nn := opts.minLimbs + intn(rng, opts.maxLimbs-opts.minLimbs+1)
	dn := opts.minLimbs + intn(rng, nn-opts.minLimbs+1)
	n := randOperand(rng, nn, opts.striped)
	d := randOperand(rng, dn, opts.striped)

	x, y := n.Limbs(), d.Limbs()
	bq, br := new(big.Int).QuoRem(n.AsBigInt(), d.AsBigInt(), new(big.Int))

	algs := []division.Algorithm{division.Auto}
	if len(y) >= 3 {
		algs = append(algs, division.Schoolbook, division.NewtonBarrett)
	}
	if len(y) >= 6 {
		algs = append(algs, division.DivideAndConquer)
	}
	for _, alg := range algs {
		q, r := make([]natural.Limb, len(x)-len(y)+1), make([]natural.Limb, len(y))
		if err := recovered(func() { division.TDivQRWith(alg, q, r, x, y) }); err != nil {
			return fmt.Errorf("%s on %d/%d limbs: %w", alg, len(x), len(y), err)
		}
		qn, rn := natural.NaturalFromLimbs(q), natural.NaturalFromLimbs(r)
		if qn.AsBigInt().Cmp(bq) != 0 || rn.AsBigInt().Cmp(br) != 0 {
			log.Warningf("%s disagrees on %#x / %#x", alg, n, d)
			return fmt.Errorf("%s on %d/%d limbs: got q=%#x r=%#x, want q=%#x r=%#x", alg, len(x), len(y), qn, rn, bq, br)
		}
	}
	return nil
}
