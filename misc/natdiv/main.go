// Command natdiv runs the division kernels from the command line. It divides
// numbers with a chosen algorithm, prints reciprocals and the kernel the
// dispatcher would pick, and cross-checks every kernel against math/big.
package main

import (
	"context"
	"fmt"
	"math/big"
	"os"

	"github.com/davecgh/go-spew/spew"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	natural "github.com/shabbyrobe/go-natural"
)

type globalOptions struct {
	logLevel string
	dump     bool
}

func main() {
	if err := rootCommand().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func rootCommand() *cobra.Command {
	var opts globalOptions
	cmd := &cobra.Command{
		Use:           "natdiv",
		Short:         "Arbitrary-precision division kernels",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log.SetLevel(lvl)
			return nil
		},
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warning", "log level (debug, info, warning, error)")
	cmd.PersistentFlags().BoolVar(&opts.dump, "dump", false, "dump limb vectors to stderr")

	cmd.AddCommand(
		divideCommand(&opts),
		chooseCommand(),
		invertCommand(&opts),
		recipCommand(),
		verifyCommand(),
	)
	return cmd
}

func (o *globalOptions) dumpLimbs(label string, v ...interface{}) {
	if !o.dump {
		return
	}
	fmt.Fprintf(os.Stderr, "%s:\n", label)
	spew.Fdump(os.Stderr, v...)
}

// parseNatural accepts decimal, or hex/octal/binary with a 0x, 0o or 0b
// prefix.
func parseNatural(s string) (natural.Natural, error) {
	b, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return natural.Natural{}, fmt.Errorf("natdiv: number %q invalid", s)
	}
	n, acc := natural.NaturalFromBigInt(b)
	if !acc {
		return natural.Natural{}, fmt.Errorf("natdiv: number %q is negative", s)
	}
	return n, nil
}

// recovered turns a kernel precondition panic into an error.
func recovered(fn func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%v", r)
		}
	}()
	fn()
	return nil
}
