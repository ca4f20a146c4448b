package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/primes"
)

func newPrimesCmd(a *app) *cobra.Command {
	var check []int64
	cmd := &cobra.Command{
		Use:   "primes <limit>",
		Short: "List the primes below limit",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			limit, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				return err
			}
			svc, err := primes.NewService(a.cfg.Primes.Options()...)
			if err != nil {
				return err
			}
			ps, err := svc.PrimesBelow(limit)
			if err != nil {
				return err
			}
			a.log.Info("primes listed", "limit", limit, "count", len(ps), "sieve_max", svc.SieveMax())

			out := struct {
				Limit  int64           `json:"limit"`
				Count  int             `json:"count"`
				Primes []int64         `json:"primes"`
				Check  map[string]bool `json:"isPrime,omitempty"`
			}{Limit: limit, Count: len(ps), Primes: ps}
			if len(check) > 0 {
				out.Check = make(map[string]bool, len(check))
				for _, n := range check {
					out.Check[strconv.FormatInt(n, 10)] = svc.IsPrime(n)
				}
			}

			return a.emit(out)
		},
	}
	cmd.Flags().Int64SliceVar(&check, "check", nil, "also report primality of these values")

	return cmd
}

func newStripCmd(a *app) *cobra.Command {
	var p int64
	cmd := &cobra.Command{
		Use:   "strip <n>",
		Short: "Divide every prime factor below p out of n",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			n, err := parseBig(args[0])
			if err != nil {
				return err
			}
			svc, err := primes.NewService(a.cfg.Primes.Options()...)
			if err != nil {
				return err
			}

			return a.emit(struct {
				N      string `json:"n"`
				P      int64  `json:"p"`
				Result string `json:"result"`
			}{N: n.String(), P: p, Result: svc.RemovePrimesBelow(n, p).String()})
		},
	}
	cmd.Flags().Int64Var(&p, "p", 5, "strip primes strictly below p")

	return cmd
}
