package catalog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hailstone/catalog"
	"github.com/katalvlaran/hailstone/primes"
	"github.com/katalvlaran/hailstone/sequence"
)

func starts(vals ...int64) []*big.Int {
	out := make([]*big.Int, len(vals))
	for i, v := range vals {
		out[i] = big.NewInt(v)
	}
	return out
}

// fixed returns a RunFunc that always reports seq with the given type.
func fixed(typ sequence.Classification, vals ...int64) catalog.RunFunc {
	return func(context.Context, *big.Int, int) (sequence.Result, error) {
		return sequence.Result{Sequence: starts(vals...), Type: typ}, nil
	}
}

// TestCatalog_LengthSignature labels by length and samples the tail.
func TestCatalog_LengthSignature(t *testing.T) {
	run := func(_ context.Context, s *big.Int, _ int) (sequence.Result, error) {
		seq := []*big.Int{
			new(big.Int).Set(s),
			new(big.Int).Add(s, big.NewInt(1)),
			new(big.Int).Add(s, big.NewInt(2)),
			new(big.Int).Set(s),
		}
		return sequence.Result{Sequence: seq, Type: sequence.Cycle}, nil
	}
	got := catalog.Catalog(context.Background(), catalog.Options{
		Starts:    starts(1, 2),
		Signature: catalog.Length,
	}, run)

	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].Start)
	assert.Equal(t, "len:4", got[0].Signature)
	assert.Equal(t, []string{"1", "2", "3", "1"}, got[0].CycleSample)
	assert.Equal(t, "2", got[1].Start)
	assert.Empty(t, got[0].Error)
}

// TestCatalog_BinarySignature is the default kind.
func TestCatalog_BinarySignature(t *testing.T) {
	got := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(3)},
		fixed(sequence.Cycle, 2, 3, 4, 5))
	require.Len(t, got, 1)
	assert.Equal(t, "0101", got[0].Signature)
}

// TestCatalog_BinaryTail keeps the last 32 parity characters.
func TestCatalog_BinaryTail(t *testing.T) {
	vals := make([]int64, 40)
	for i := range vals {
		vals[i] = int64(i)
	}
	got := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(0)},
		fixed(sequence.Cycle, vals...))
	require.Len(t, got, 1)
	assert.Len(t, got[0].Signature, 32)
	assert.Equal(t, "01010101010101010101010101010101", got[0].Signature)
	assert.Equal(t, []string{"30", "31", "32", "33", "34", "35", "36", "37", "38", "39"}, got[0].CycleSample)
}

// TestCatalog_SkipsNonCycles omits every other classification.
func TestCatalog_SkipsNonCycles(t *testing.T) {
	for _, typ := range []sequence.Classification{
		sequence.ConvergesToOne, sequence.MaxIterationsReached, sequence.DivergesOverflow,
	} {
		got := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(1)}, fixed(typ))
		assert.Empty(t, got, "type %s", typ)
	}
}

// TestCatalog_Errors records errors and panics and keeps going.
func TestCatalog_Errors(t *testing.T) {
	run := func(_ context.Context, s *big.Int, _ int) (sequence.Result, error) {
		switch s.Int64() {
		case 1:
			return sequence.Result{}, errors.New("Test error")
		case 2:
			panic("boom")
		default:
			return sequence.Result{Sequence: starts(s.Int64(), s.Int64()), Type: sequence.Cycle}, nil
		}
	}
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	got := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(1, 2, 3), Logger: log}, run)
	require.Len(t, got, 3)
	assert.Contains(t, got[0].Error, "Test error")
	assert.Contains(t, got[1].Error, "boom")
	assert.Equal(t, "3", got[2].Start)
	assert.Equal(t, "11", got[2].Signature)
	assert.Contains(t, buf.String(), "run failed")

	got = catalog.Catalog(context.Background(), catalog.Options{Starts: starts(1)}, nil)
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "nil")
}

// TestCatalog_Defaults hands the default budget and the caller's context to run.
func TestCatalog_Defaults(t *testing.T) {
	type key struct{}
	ctx := context.WithValue(context.Background(), key{}, "v")
	var steps int
	var sawCtx bool
	run := func(c context.Context, _ *big.Int, maxSteps int) (sequence.Result, error) {
		steps = maxSteps
		sawCtx = c.Value(key{}) == "v"
		return sequence.Result{}, nil
	}
	_ = catalog.Catalog(ctx, catalog.Options{Starts: starts(5)}, run)
	assert.Equal(t, catalog.DefaultMaxSteps, steps)
	assert.True(t, sawCtx)

	_ = catalog.Catalog(ctx, catalog.Options{Starts: starts(5), MaxSteps: 7}, run)
	assert.Equal(t, 7, steps)
}

// TestCatalog_RotationGroupsEntryPoints: one 5n+1 cycle reached from two starts.
func TestCatalog_RotationGroupsEntryPoints(t *testing.T) {
	run := catalog.SequenceRunner(sequence.Rule{X: 2, Y: 5, Z: 1})

	bin := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(13, 26)}, run)
	require.Len(t, bin, 2)
	assert.NotEqual(t, bin[0].Signature, bin[1].Signature)

	rot := catalog.Catalog(context.Background(), catalog.Options{
		Starts:    starts(13, 26),
		Signature: catalog.Rotation,
	}, run)
	require.Len(t, rot, 2)
	assert.Equal(t, "rot:0000010101", rot[0].Signature)
	assert.Equal(t, rot[0].Signature, rot[1].Signature)

	groups := catalog.GroupBySignature(rot)
	require.Len(t, groups, 1)
	assert.Len(t, groups[0].Entries, 2)
}

// TestCatalog_ClassicNegativeCycles: -5 and -7 share the rotation signature.
func TestCatalog_ClassicNegativeCycles(t *testing.T) {
	got := catalog.Catalog(context.Background(), catalog.Options{
		Starts:    starts(-5, -7, -1, 6),
		Signature: catalog.Rotation,
	}, catalog.SequenceRunner(sequence.Classic))

	require.Len(t, got, 3)
	assert.Equal(t, "rot:00101", got[0].Signature)
	assert.Equal(t, "rot:00101", got[1].Signature)
	assert.Equal(t, "rot:01", got[2].Signature)
	assert.Len(t, catalog.GroupBySignature(got), 2)
}

// TestSequenceRunner_InvalidRule becomes an error entry.
func TestSequenceRunner_InvalidRule(t *testing.T) {
	got := catalog.Catalog(context.Background(), catalog.Options{Starts: starts(7)},
		catalog.SequenceRunner(sequence.Rule{}))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "divisor")
}

// TestPrimeRunner catalogs the p = 11 cycle through 17.
func TestPrimeRunner(t *testing.T) {
	run := catalog.PrimeRunner(11, primes.MustNewService())
	got := catalog.Catalog(context.Background(), catalog.Options{
		Starts:    starts(17),
		Signature: catalog.Rotation,
	}, run)
	require.Len(t, got, 1)
	assert.Equal(t, "rot:111", got[0].Signature)
	assert.Equal(t, []string{"17", "47", "37", "17"}, got[0].CycleSample)

	got = catalog.Catalog(context.Background(), catalog.Options{Starts: starts(17)},
		catalog.PrimeRunner(4, primes.MustNewService()))
	require.Len(t, got, 1)
	assert.Contains(t, got[0].Error, "p must be odd")
}

// TestGroupBySignature keeps first-appearance order and skips errors.
func TestGroupBySignature(t *testing.T) {
	groups := catalog.GroupBySignature([]catalog.Entry{
		{Start: "1", Signature: "b"},
		{Start: "2", Signature: "a"},
		{Start: "3", Error: "x"},
		{Start: "4", Signature: "b"},
	})
	require.Len(t, groups, 2)
	assert.Equal(t, "b", groups[0].Signature)
	assert.Equal(t, []string{"1", "4"}, []string{groups[0].Entries[0].Start, groups[0].Entries[1].Start})
	assert.Equal(t, "a", groups[1].Signature)
}

// TestParseSignature accepts the three kinds and the empty default.
func TestParseSignature(t *testing.T) {
	for in, want := range map[string]catalog.SignatureKind{
		"":         catalog.Binary,
		"binary":   catalog.Binary,
		"length":   catalog.Length,
		"rotation": catalog.Rotation,
	} {
		got, err := catalog.ParseSignature(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
	_, err := catalog.ParseSignature("crc")
	assert.ErrorIs(t, err, catalog.ErrUnknownSignature)
}
