package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/hailstone/primes"
	"github.com/katalvlaran/hailstone/sequence"
)

// statsJSON is the wire form of sequence.Stats.
type statsJSON struct {
	Length                  int     `json:"length"`
	Min                     string  `json:"min"`
	Max                     string  `json:"max"`
	Sum                     string  `json:"sum"`
	Mean                    float64 `json:"mean"`
	StdDev                  float64 `json:"stddev"`
	TotalSteps              int     `json:"totalSteps"`
	OddSteps                int     `json:"oddSteps"`
	StoppingTime            int     `json:"stoppingTime"`
	CoefficientStoppingTime int     `json:"coefficientStoppingTime"`
	RegrowthAfterStop       bool    `json:"regrowthAfterStop"`
	CoefficientMismatch     bool    `json:"coefficientMismatch"`
	Paradoxical             bool    `json:"paradoxical"`
}

// resultJSON is the wire form of one run.
type resultJSON struct {
	Start    string         `json:"start"`
	Rule     *sequence.Rule `json:"rule,omitempty"`
	P        int64          `json:"p,omitempty"`
	Type     string         `json:"type"`
	Steps    int            `json:"steps"`
	Message  string         `json:"message"`
	Sequence []string       `json:"sequence"`
	Stats    *statsJSON     `json:"stats,omitempty"`
}

func newStatsJSON(st sequence.Stats) *statsJSON {
	out := &statsJSON{
		Length:                  st.Length,
		Mean:                    st.Mean,
		StdDev:                  st.StdDev,
		TotalSteps:              st.TotalSteps,
		OddSteps:                st.OddSteps,
		StoppingTime:            st.StoppingTime,
		CoefficientStoppingTime: st.CoefficientStoppingTime,
		RegrowthAfterStop:       st.RegrowthAfterStop,
		CoefficientMismatch:     st.CoefficientMismatch,
		Paradoxical:             st.Paradoxical,
	}
	if st.Length > 0 {
		out.Min, out.Max, out.Sum = st.Min.String(), st.Max.String(), st.Sum.String()
	}

	return out
}

func newSequenceCmd(a *app) *cobra.Command {
	var (
		x, y, z  int64
		maxIter  int
		maxBits  int
		compat   bool
		withStat bool
	)
	cmd := &cobra.Command{
		Use:   "sequence <start>",
		Short: "Generate and classify one sequence",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseBig(args[0])
			if err != nil {
				return err
			}
			s := a.cfg.Sequence
			f := cmd.Flags()
			if f.Changed("x") {
				s.X = x
			}
			if f.Changed("y") {
				s.Y = y
			}
			if f.Changed("z") {
				s.Z = z
			}
			if f.Changed("max") {
				s.MaxIterations = maxIter
			}
			if f.Changed("max-bits") {
				s.MaxBits = maxBits
			}
			if f.Changed("compat") {
				s.Compat = compat
			}

			rule := s.Rule()
			gen := sequence.Generate
			if s.Compat {
				gen = sequence.GenerateCompat
				if rule.Valid() {
					rule = sequence.CompatRule(rule)
				}
			}
			res := gen(start, rule, s.MaxIterations, sequence.WithMaxBits(s.MaxBits))
			a.log.Info("sequence generated", "start", start, "type", res.Type, "steps", res.Steps)

			out := resultJSON{
				Start:    start.String(),
				Rule:     &rule,
				Type:     string(res.Type),
				Steps:    res.Steps,
				Message:  res.Message,
				Sequence: res.Strings(),
			}
			if withStat {
				out.Stats = newStatsJSON(sequence.Analyze(res, rule))
			}

			return a.emit(out)
		},
	}
	f := cmd.Flags()
	f.Int64Var(&x, "x", 2, "divisor X (non-zero)")
	f.Int64Var(&y, "y", 3, "multiplier Y")
	f.Int64Var(&z, "z", 1, "addend Z")
	f.IntVar(&maxIter, "max", 1000, "maximum number of steps")
	f.IntVar(&maxBits, "max-bits", sequence.DefaultMaxBits, "overflow threshold in bits")
	f.BoolVar(&compat, "compat", false, "treat Y=0 as 3, Z=0 as 1 and use |Y|")
	f.BoolVar(&withStat, "stats", false, "include trajectory statistics")

	return cmd
}

func newPrimeCmd(a *app) *cobra.Command {
	var (
		p       int64
		maxIter int
	)
	cmd := &cobra.Command{
		Use:   "prime <start>",
		Short: "Run the prime variant: odd n → p·n+1 without prime factors below p",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			start, err := parseBig(args[0])
			if err != nil {
				return err
			}
			svc, err := primes.NewService(a.cfg.Primes.Options()...)
			if err != nil {
				return err
			}
			res, err := sequence.GeneratePrime(start, p, maxIter, svc, sequence.WithMaxBits(a.cfg.Sequence.MaxBits))
			if err != nil {
				return err
			}
			a.log.Info("prime sequence generated", "start", start, "p", p, "type", res.Type, "steps", res.Steps)

			return a.emit(resultJSON{
				Start:    start.String(),
				P:        p,
				Type:     string(res.Type),
				Steps:    res.Steps,
				Message:  res.Message,
				Sequence: res.Strings(),
			})
		},
	}
	cmd.Flags().Int64Var(&p, "p", 5, "odd parameter p >= 3")
	cmd.Flags().IntVar(&maxIter, "max", 10000, "maximum number of steps")

	return cmd
}
