package cli

import (
	"fmt"
	"math/big"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/catalog"
	"github.com/katalvlaran/hailstone/primes"
	"github.com/katalvlaran/hailstone/sequence"
)

// maxCatalogRange bounds the number of starts of one invocation.
const maxCatalogRange = 1_000_000

func newCatalogCmd(a *app) *cobra.Command {
	var (
		signature string
		maxSteps  int
		p         int64
		x, y, z   int64
		group     bool
	)
	cmd := &cobra.Command{
		Use:   "catalog <from> <to>",
		Short: "Catalog the cycles reached from every start in [from, to]",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			from, err := parseBig(args[0])
			if err != nil {
				return err
			}
			to, err := parseBig(args[1])
			if err != nil {
				return err
			}
			span := new(big.Int).Sub(to, from)
			if span.Sign() < 0 || span.Cmp(big.NewInt(maxCatalogRange)) >= 0 {
				return fmt.Errorf("cli: range [%s, %s] must be ascending and hold fewer than %d values", from, to, maxCatalogRange)
			}

			c := a.cfg.Catalog
			f := cmd.Flags()
			if f.Changed("signature") {
				c.Signature = signature
			}
			if f.Changed("max") {
				c.MaxSteps = maxSteps
			}
			kind, err := catalog.ParseSignature(c.Signature)
			if err != nil {
				return err
			}

			s := a.cfg.Sequence
			if f.Changed("x") {
				s.X = x
			}
			if f.Changed("y") {
				s.Y = y
			}
			if f.Changed("z") {
				s.Z = z
			}
			run := catalog.SequenceRunner(s.Rule(), sequence.WithMaxBits(s.MaxBits))
			if f.Changed("p") {
				svc, err := primes.NewService(a.cfg.Primes.Options()...)
				if err != nil {
					return err
				}
				run = catalog.PrimeRunner(p, svc, sequence.WithMaxBits(s.MaxBits))
			}

			var starts []*big.Int
			for n := new(big.Int).Set(from); n.Cmp(to) <= 0; n.Add(n, big.NewInt(1)) {
				starts = append(starts, new(big.Int).Set(n))
			}
			entries := catalog.Catalog(cmd.Context(), catalog.Options{
				Starts:    starts,
				Signature: kind,
				MaxSteps:  c.MaxSteps,
				Logger:    a.log,
			}, run)
			a.log.Info("catalog finished", "starts", len(starts), "entries", len(entries))

			if group {
				return a.emit(catalog.GroupBySignature(entries))
			}

			return a.emit(entries)
		},
	}
	fl := cmd.Flags()
	fl.StringVar(&signature, "signature", string(catalog.Binary), "signature kind: binary, length or rotation")
	fl.IntVar(&maxSteps, "max", catalog.DefaultMaxSteps, "step budget per start")
	fl.Int64Var(&p, "p", 5, "use the prime variant with this p")
	fl.Int64Var(&x, "x", 2, "divisor X (non-zero)")
	fl.Int64Var(&y, "y", 3, "multiplier Y")
	fl.Int64Var(&z, "z", 1, "addend Z")
	fl.BoolVar(&group, "group", false, "group entries by signature")

	return cmd
}
