package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/hailstone/primes"
	"github.com/katalvlaran/hailstone/sequence"
)

// Catalog runs every start in opts.Starts through run, one at a time and in
// order, and returns one Entry per cycle and one per failed run. Runs ending
// in any other classification are omitted.
//
// ctx is handed to run unchanged; Catalog itself never stops early, so a
// caller wanting to stop must supply fewer starts or make run honour ctx.
func Catalog(ctx context.Context, opts Options, run RunFunc) []Entry {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	maxSteps := opts.MaxSteps
	if maxSteps <= 0 {
		maxSteps = DefaultMaxSteps
	}
	kind := opts.Signature
	if kind == "" {
		kind = Binary
	}

	out := []Entry{}
	for _, start := range opts.Starts {
		label := "<nil>"
		if start != nil {
			label = start.String()
		}

		res, err := safeRun(ctx, run, start, maxSteps)
		if err != nil {
			log.Warn("run failed", "start", label, "error", err)
			out = append(out, Entry{Start: label, Error: err.Error()})
			continue
		}
		if res.Type != sequence.Cycle {
			log.Debug("no cycle", "start", label, "type", res.Type, "steps", res.Steps)
			continue
		}

		sig := Signature(kind, res.Sequence)
		log.Debug("cycle", "start", label, "signature", sig, "length", len(res.Sequence))
		out = append(out, Entry{
			Start:       label,
			Signature:   sig,
			CycleSample: sample(res.Sequence),
		})
	}

	return out
}

// safeRun calls run and turns a panic into an error.
func safeRun(ctx context.Context, run RunFunc, start *big.Int, maxSteps int) (res sequence.Result, err error) {
	if run == nil {
		return res, errors.New("catalog: run function is nil")
	}
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("catalog: run panicked: %v", r)
		}
	}()

	return run(ctx, start, maxSteps)
}

// sample renders the last sampleSize elements in base 10.
func sample(seq []*big.Int) []string {
	from := len(seq) - sampleSize
	if from < 0 {
		from = 0
	}
	out := make([]string, 0, len(seq)-from)
	for _, v := range seq[from:] {
		out = append(out, v.String())
	}

	return out
}

// GroupBySignature buckets cycle entries by signature, in order of first
// appearance. Error entries are skipped.
func GroupBySignature(entries []Entry) []Group {
	idx := map[string]int{}
	groups := []Group{}
	for _, e := range entries {
		if e.Error != "" {
			continue
		}
		i, ok := idx[e.Signature]
		if !ok {
			i = len(groups)
			idx[e.Signature] = i
			groups = append(groups, Group{Signature: e.Signature})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}

	return groups
}

// SequenceRunner adapts sequence.Generate to a RunFunc. An invalid rule is
// reported as an error so that it lands in the catalog as an error entry.
func SequenceRunner(rule sequence.Rule, opts ...sequence.Option) RunFunc {
	return func(_ context.Context, start *big.Int, maxSteps int) (sequence.Result, error) {
		res := sequence.Generate(start, rule, maxSteps, opts...)
		if res.Type == sequence.Invalid {
			return res, fmt.Errorf("catalog: %s", res.Message)
		}

		return res, nil
	}
}

// PrimeRunner adapts sequence.GeneratePrime to a RunFunc.
func PrimeRunner(p int64, svc *primes.Service, opts ...sequence.Option) RunFunc {
	return func(_ context.Context, start *big.Int, maxSteps int) (sequence.Result, error) {
		return sequence.GeneratePrime(start, p, maxSteps, svc, opts...)
	}
}
