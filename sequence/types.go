package sequence

import (
	"errors"
	"math/big"
)

// Classification is the terminal state of one generation run.
type Classification string

const (
	// ConvergesToOne: the trajectory reached 1.
	ConvergesToOne Classification = "converges_to_1"

	// Cycle: a value repeated before reaching 1.
	Cycle Classification = "cycle"

	// DivergesOverflow: a value exceeded the working range.
	DivergesOverflow Classification = "diverges_overflow"

	// MaxIterationsReached: the step budget was exhausted.
	MaxIterationsReached Classification = "max_iterations_reached"

	// Invalid: the parameters were rejected before stepping.
	Invalid Classification = "error"
)

// DefaultMaxBits is the default working range of a run, in bits of |n|.
const DefaultMaxBits = 4096

// NoStoppingTime marks a trajectory that never dropped below its start.
const NoStoppingTime = -1

var (
	// ErrInvalidP is returned for a p-variant parameter that is even or below 3.
	ErrInvalidP = errors.New("sequence: p must be odd >= 3")

	// ErrNilService is returned when the p-variant has no prime service.
	ErrNilService = errors.New("sequence: prime service is nil")
)

// Rule holds the generalized step parameters.
type Rule struct {
	X int64 `json:"x"` // divisor; must be non-zero
	Y int64 `json:"y"` // multiplier of the non-divisible branch
	Z int64 `json:"z"` // addend of the non-divisible branch
}

// Classic is the 3n+1 rule.
var Classic = Rule{X: 2, Y: 3, Z: 1}

// Valid reports whether the rule can be stepped.
func (r Rule) Valid() bool { return r.X != 0 }

// Result is the output of one run. Sequence is never mutated after return.
type Result struct {
	// Sequence starts at the start value. For a Cycle, the last element equals an
	// earlier one.
	Sequence []*big.Int

	// Type is the terminal classification.
	Type Classification

	// Steps is the number of transitions taken, len(Sequence)-1 for valid runs.
	Steps int

	// Message is a human-readable summary.
	Message string
}

// Last returns the final value of the run, or nil for an empty sequence.
func (r Result) Last() *big.Int {
	if len(r.Sequence) == 0 {
		return nil
	}

	return r.Sequence[len(r.Sequence)-1]
}

// Strings renders the sequence in base 10.
func (r Result) Strings() []string {
	out := make([]string, len(r.Sequence))
	for i, v := range r.Sequence {
		out[i] = v.String()
	}

	return out
}

// StepFunc computes the successor of n without modifying n.
type StepFunc func(n *big.Int) *big.Int

// Option configures a run.
type Option func(*Options)

// Options holds the run tunables.
type Options struct {
	// MaxBits is the largest |n| bit length accepted before DivergesOverflow.
	MaxBits int
}

// DefaultOptions returns MaxBits = DefaultMaxBits.
func DefaultOptions() Options {
	return Options{MaxBits: DefaultMaxBits}
}

// WithMaxBits sets the working range. Non-positive values keep the default.
func WithMaxBits(bits int) Option {
	return func(o *Options) {
		if bits > 0 {
			o.MaxBits = bits
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o
}
