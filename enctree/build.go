package enctree

import (
	"context"
	"errors"
	"fmt"
	"math/big"
)

// ErrNilPredecessors is returned when BuildFromReverse gets no predecessor function.
var ErrNilPredecessors = errors.New("enctree: predecessor function is nil")

// queueItem pairs a node value with its BFS depth.
type queueItem struct {
	value *big.Int
	depth int
}

// builder encapsulates mutable BFS state.
type builder struct {
	tree  *Tree
	preds PredecessorFunc
	opts  BuildOptions
	ctx   context.Context
	queue []queueItem
}

// BuildFromReverse grows a tree from root breadth-first. Every dequeued node m
// at depth d < DepthLimit is expanded with preds(m); each candidate p is
// skipped when p ≤ 0, p > ValueLimit, or p is already present, and otherwise
// inserted as a child of m and enqueued at depth d+1.
//
// Returns ErrNilNode, ErrNilPredecessors, ErrOptionViolation, or the context
// error on cancellation together with the partially built tree.
func BuildFromReverse(root *big.Int, preds PredecessorFunc, opts ...Option) (*Tree, error) {
	if preds == nil {
		return nil, ErrNilPredecessors
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	t, err := New(root)
	if err != nil {
		return nil, err
	}
	b := &builder{
		tree:  t,
		preds: preds,
		opts:  o,
		ctx:   o.Ctx,
		queue: []queueItem{{value: t.Root(), depth: 0}},
	}

	return t, b.loop()
}

// loop processes the queue until empty or cancelled.
func (b *builder) loop() error {
	for len(b.queue) > 0 {
		select {
		case <-b.ctx.Done():
			return b.ctx.Err()
		default:
		}

		item := b.queue[0]
		b.queue = b.queue[1:]
		if item.depth >= b.opts.DepthLimit {
			continue
		}
		if err := b.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand filters the predecessors of item and inserts the admitted ones.
func (b *builder) expand(item queueItem) error {
	for _, p := range b.preds(item.value) {
		if p == nil || p.Sign() <= 0 {
			continue
		}
		if b.opts.ValueLimit != nil && p.Cmp(b.opts.ValueLimit) > 0 {
			continue
		}
		if b.tree.Contains(p) {
			continue
		}
		if err := b.tree.InsertChild(item.value, p); err != nil {
			return fmt.Errorf("enctree: inserting %s under %s: %w", p, item.value, err)
		}
		b.opts.OnInsert(item.value, p, item.depth+1)
		b.queue = append(b.queue, queueItem{value: new(big.Int).Set(p), depth: item.depth + 1})
	}

	return nil
}
