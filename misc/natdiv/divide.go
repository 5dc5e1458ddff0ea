package main

import (
	"fmt"
	"strconv"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	natural "github.com/shabbyrobe/go-natural"
	"github.com/shabbyrobe/go-natural/internal/division"
)

func divideCommand(g *globalOptions) *cobra.Command {
	var algName string
	cmd := &cobra.Command{
		Use:   "divide <numerator> <divisor>",
		Short: "Print the quotient and remainder of numerator/divisor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := division.ParseAlgorithm(algName)
			if err != nil {
				return err
			}
			n, err := parseNatural(args[0])
			if err != nil {
				return err
			}
			d, err := parseNatural(args[1])
			if err != nil {
				return err
			}
			q, r, err := divide(g, alg, n, d)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "q = %s\nr = %s\n", q, r)
			return nil
		},
	}
	cmd.Flags().StringVarP(&algName, "algorithm", "a", division.Auto.String(),
		"kernel to force (auto, schoolbook, divide-and-conquer, newton-barrett)")
	return cmd
}

func divide(g *globalOptions, alg division.Algorithm, n, d natural.Natural) (q, r natural.Natural, err error) {
	if d.IsZero() {
		return q, r, natural.ErrDivisionByZero
	}
	if n.LessThan(d) {
		log.Infof("numerator is below the divisor; no kernel runs")
		return natural.Zero, n, nil
	}

	x, y := n.Limbs(), d.Limbs()
	if alg == division.Auto {
		nn, dn := len(x), len(y)
		if x[nn-1] >= y[dn-1] {
			nn++
		}
		if dn > 2 && nn < 2*dn {
			log.Infof("dividing %d limbs by %d limbs; quotient is short, dividing only the top limbs", len(x), dn)
		} else {
			log.Infof("dividing %d limbs by %d limbs; dispatcher picks %s", len(x), dn, division.Choose(nn, dn))
		}
	} else {
		log.Infof("dividing %d limbs by %d limbs with %s", len(x), len(y), alg)
	}
	g.dumpLimbs("numerator", x)
	g.dumpLimbs("divisor", y)

	ql, rl := make([]natural.Limb, len(x)-len(y)+1), make([]natural.Limb, len(y))
	if err := recovered(func() { division.TDivQRWith(alg, ql, rl, x, y) }); err != nil {
		return q, r, err
	}
	g.dumpLimbs("quotient", ql)
	g.dumpLimbs("remainder", rl)
	return natural.NaturalFromLimbs(ql), natural.NaturalFromLimbs(rl), nil
}

func chooseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "choose <numerator-limbs> <divisor-limbs>",
		Short: "Print the kernel the dispatcher uses for the given operand sizes",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			nn, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			dn, err := strconv.Atoi(args[1])
			if err != nil {
				return err
			}
			if dn <= 0 || nn < dn {
				return fmt.Errorf("natdiv: need 0 < divisor-limbs <= numerator-limbs, found %d, %d", nn, dn)
			}
			fmt.Fprintln(cmd.OutOrStdout(), division.Choose(nn, dn))
			return nil
		},
	}
}
