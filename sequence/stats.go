package sequence

import (
	"math"
	"math/big"

	"gonum.org/v1/gonum/stat"
)

// Stats summarizes a finished run.
type Stats struct {
	Length int      // number of elements
	Min    *big.Int // smallest element
	Max    *big.Int // largest element
	Sum    *big.Int // exact sum

	// Mean and StdDev are float64 views; StdDev is the population (not
	// Bessel-corrected) deviation. Both saturate to ±Inf/NaN once elements
	// leave the float64 range.
	Mean   float64
	StdDev float64

	TotalSteps int // transitions taken, len-1
	OddSteps   int // transitions that used the Y·n + Z branch

	// StoppingTime is the first step index whose value is strictly below the
	// start, or NoStoppingTime. A run starting at 1 is already on the trivial
	// cycle and reports 0.
	StoppingTime int

	// CoefficientStoppingTime is the first step s with |Y|^odd(s) / |X|^s < 1,
	// or NoStoppingTime. A run starting at 1 reports 1.
	CoefficientStoppingTime int

	// RegrowthAfterStop: a value exceeded the start after StoppingTime.
	RegrowthAfterStop bool

	// CoefficientMismatch: |Y|^OddSteps / |X|^TotalSteps < 1 while the final
	// value is still ≥ start.
	CoefficientMismatch bool

	// Paradoxical is RegrowthAfterStop || CoefficientMismatch.
	Paradoxical bool
}

// Analyze computes Stats for res produced under rule. An empty or Invalid
// result yields zero-valued stats with NoStoppingTime.
func Analyze(res Result, rule Rule) Stats {
	st := Stats{
		StoppingTime:            NoStoppingTime,
		CoefficientStoppingTime: NoStoppingTime,
	}
	seq := res.Sequence
	if len(seq) == 0 {
		return st
	}

	// 1) Exact aggregates and float views
	start := seq[0]
	st.Length = len(seq)
	st.Min = new(big.Int).Set(start)
	st.Max = new(big.Int).Set(start)
	st.Sum = new(big.Int)
	xs := make([]float64, len(seq))
	for i, v := range seq {
		st.Sum.Add(st.Sum, v)
		if v.Cmp(st.Min) < 0 {
			st.Min.Set(v)
		}
		if v.Cmp(st.Max) > 0 {
			st.Max.Set(v)
		}
		xs[i], _ = new(big.Float).SetInt(v).Float64()
	}
	st.Mean = stat.Mean(xs, nil)
	st.StdDev = math.Sqrt(stat.PopVariance(xs, nil))

	// 2) Stopping time and regrowth after it
	for i := 1; i < len(seq); i++ {
		c := seq[i].Cmp(start)
		if st.StoppingTime == NoStoppingTime {
			if c < 0 {
				st.StoppingTime = i
			}
			continue
		}
		if c > 0 {
			st.RegrowthAfterStop = true
		}
	}

	// 3) Branch counting and the contraction coefficient
	st.TotalSteps = len(seq) - 1
	if rule.Valid() {
		absX := new(big.Int).Abs(big.NewInt(rule.X))
		for i := 0; i < st.TotalSteps; i++ {
			if !Divisible(seq[i], absX) {
				st.OddSteps++
			}
			if st.CoefficientStoppingTime == NoStoppingTime &&
				coefficientBelowOne(st.OddSteps, i+1, abs64(rule.X), abs64(rule.Y)) {
				st.CoefficientStoppingTime = i + 1
			}
		}

		final := seq[len(seq)-1]
		st.CoefficientMismatch = contracts(st.OddSteps, st.TotalSteps, rule) && final.Cmp(start) >= 0
	}

	// 4) Trivial cycle
	if start.Cmp(bigOne) == 0 {
		st.StoppingTime = 0
		st.CoefficientStoppingTime = 1
	}

	st.Paradoxical = st.RegrowthAfterStop || st.CoefficientMismatch

	return st
}

// contracts compares |Y|^odd against |X|^total exactly.
func contracts(odd, total int, rule Rule) bool {
	num := new(big.Int).Exp(big.NewInt(abs64(rule.Y)), big.NewInt(int64(odd)), nil)
	den := new(big.Int).Exp(big.NewInt(abs64(rule.X)), big.NewInt(int64(total)), nil)

	return num.Cmp(den) < 0
}

// coefficientBelowOne is the running-coefficient test in log space; it only
// feeds the diagnostic CoefficientStoppingTime.
func coefficientBelowOne(odd, steps int, absX, absY int64) bool {
	if steps == 0 {
		return false
	}
	if absY == 0 {
		return odd > 0 || absX > 1
	}
	lhs := float64(odd) * math.Log(float64(absY))
	rhs := float64(steps) * math.Log(float64(absX))

	return lhs < rhs-1e-9*math.Max(1, math.Abs(rhs))
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}

	return v
}
