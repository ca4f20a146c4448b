package enctree

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// Sentinel errors for tree mutation and construction.
var (
	// ErrNilNode is returned when a nil value is used as a node.
	ErrNilNode = errors.New("enctree: node is nil")

	// ErrChildExists is returned when the child is already in the tree.
	ErrChildExists = errors.New("enctree: child already exists")

	// ErrParentNotFound is returned when the parent is not in the tree.
	ErrParentNotFound = errors.New("enctree: parent not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("enctree: invalid option supplied")
)

// Defaults for BuildFromReverse.
const (
	// DefaultDepthLimit is the number of BFS levels expanded below the root.
	DefaultDepthLimit = 12

	// DefaultValueLimit is the largest predecessor admitted into the tree.
	DefaultValueLimit = 50000
)

// PredecessorFunc lists candidate children of m. Candidates ≤ 0, above the
// value limit, or already in the tree are skipped by the builder.
type PredecessorFunc func(m *big.Int) []*big.Int

// Option configures BuildFromReverse. An invalid Option is recorded and
// surfaced as ErrOptionViolation when the build starts.
type Option func(*BuildOptions)

// BuildOptions holds the limits and hooks of one build.
type BuildOptions struct {
	// Ctx allows cancellation between expansions.
	Ctx context.Context

	// DepthLimit: nodes at depth < DepthLimit are expanded. 0 keeps only the root.
	DepthLimit int

	// ValueLimit: candidates greater than it are skipped. nil means unbounded.
	ValueLimit *big.Int

	// OnInsert is called after each successful insertion.
	OnInsert func(parent, child *big.Int, depth int)

	err error
}

// DefaultOptions returns the documented defaults: depth 12, values ≤ 50000,
// background context and a no-op hook.
func DefaultOptions() BuildOptions {
	return BuildOptions{
		Ctx:        context.Background(),
		DepthLimit: DefaultDepthLimit,
		ValueLimit: big.NewInt(DefaultValueLimit),
		OnInsert:   func(_, _ *big.Int, _ int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *BuildOptions) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithDepthLimit sets the number of levels expanded below the root.
//
//	d ≥ 0: expand nodes whose depth is below d
//	d < 0: invalid option → ErrOptionViolation
func WithDepthLimit(d int) Option {
	return func(o *BuildOptions) {
		if d < 0 {
			o.err = fmt.Errorf("%w: depth limit cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.DepthLimit = d
	}
}

// WithValueLimit bounds admitted values; nil removes the bound.
func WithValueLimit(v *big.Int) Option {
	return func(o *BuildOptions) {
		if v == nil {
			o.ValueLimit = nil
			return
		}
		o.ValueLimit = new(big.Int).Set(v)
	}
}

// WithOnInsert registers a hook run after each insertion.
func WithOnInsert(fn func(parent, child *big.Int, depth int)) Option {
	return func(o *BuildOptions) {
		if fn != nil {
			o.OnInsert = fn
		}
	}
}
