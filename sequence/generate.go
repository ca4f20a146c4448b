package sequence

import (
	"fmt"
	"math/big"
)

var bigOne = big.NewInt(1)

// Generate runs rule from start for at most maxIterations steps, using the
// parameters literally: n mod |X| == 0 → n/X, otherwise Y·n + Z.
//
// X = 0 yields Type Invalid with an empty sequence. Overflow and budget
// exhaustion are reported through Type, never as an error.
func Generate(start *big.Int, rule Rule, maxIterations int, opts ...Option) Result {
	if !rule.Valid() {
		return invalid("X (divisor) cannot be zero")
	}

	return Run(start, LiteralStep(rule), maxIterations, opts...)
}

// GenerateCompat is Generate with lenient defaults for partially filled
// rules: the multiplier is |Y|, or 3 when Y is 0, and the addend is Z, or 1
// when Z is 0.
func GenerateCompat(start *big.Int, rule Rule, maxIterations int, opts ...Option) Result {
	if !rule.Valid() {
		return invalid("X (divisor) cannot be zero")
	}

	return Run(start, LiteralStep(CompatRule(rule)), maxIterations, opts...)
}

// GenerateAlphaBeta runs the divisor-2 family: even n → n/2, odd n → α·n + β.
func GenerateAlphaBeta(start *big.Int, alpha, beta int64, maxIterations int, opts ...Option) Result {
	return Run(start, LiteralStep(Rule{X: 2, Y: alpha, Z: beta}), maxIterations, opts...)
}

// CompatRule resolves the defaulting of GenerateCompat into a literal rule.
func CompatRule(r Rule) Rule {
	y := r.Y
	if y < 0 {
		y = -y
	}
	if y == 0 {
		y = 3
	}
	z := r.Z
	if z == 0 {
		z = 1
	}

	return Rule{X: r.X, Y: y, Z: z}
}

// LiteralStep returns the StepFunc of rule. rule.X must be non-zero.
func LiteralStep(rule Rule) StepFunc {
	x := big.NewInt(rule.X)
	absX := new(big.Int).Abs(x)
	y := big.NewInt(rule.Y)
	z := big.NewInt(rule.Z)

	return func(n *big.Int) *big.Int {
		next := new(big.Int)
		if Divisible(n, absX) {
			return next.Quo(n, x)
		}

		return next.Add(next.Mul(y, n), z)
	}
}

// Divisible reports whether d divides n. d must be non-zero.
func Divisible(n, d *big.Int) bool {
	return new(big.Int).Rem(n, d).Sign() == 0
}

// Run iterates step from start. It is the shared engine behind every
// Generate variant and is exported for callers with custom rules.
//
// Order of checks per step: overflow, then repetition, then arrival at 1.
// A repeated value is appended once more before the run ends as a Cycle.
func Run(start *big.Int, step StepFunc, maxIterations int, opts ...Option) Result {
	if start == nil {
		return invalid("start value is nil")
	}
	o := buildOptions(opts)

	// 1) Seed the sequence and the seen-set
	cur := new(big.Int).Set(start)
	seq := []*big.Int{cur}
	seen := map[string]struct{}{cur.String(): {}}

	if cur.Cmp(bigOne) == 0 {
		return finish(seq, ConvergesToOne, "start is 1")
	}
	if cur.BitLen() > o.MaxBits {
		return finish(seq, DivergesOverflow, fmt.Sprintf("start exceeds %d bits", o.MaxBits))
	}

	// 2) Step until a terminal condition or the budget runs out
	for i := 0; i < maxIterations; i++ {
		next := step(cur)

		if next.BitLen() > o.MaxBits {
			return finish(seq, DivergesOverflow,
				fmt.Sprintf("value exceeded %d bits after %d steps", o.MaxBits, i+1))
		}

		key := next.String()
		if _, dup := seen[key]; dup {
			seq = append(seq, next)
			return finish(seq, Cycle, fmt.Sprintf("sequence entered a cycle at %s", key))
		}

		seen[key] = struct{}{}
		seq = append(seq, next)
		cur = next

		if cur.Cmp(bigOne) == 0 {
			return finish(seq, ConvergesToOne, fmt.Sprintf("converged to 1 in %d steps", i+1))
		}
	}

	// 3) Budget exhausted
	return finish(seq, MaxIterationsReached,
		fmt.Sprintf("reached max iterations (%d) at %s", maxIterations, cur))
}

func finish(seq []*big.Int, typ Classification, msg string) Result {
	return Result{Sequence: seq, Type: typ, Steps: len(seq) - 1, Message: msg}
}

func invalid(msg string) Result {
	return Result{Sequence: []*big.Int{}, Type: Invalid, Message: msg}
}
