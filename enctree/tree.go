package enctree

import (
	"fmt"
	"math/big"
)

// node is the per-value bookkeeping of a Tree.
type node struct {
	value    *big.Int
	parent   string // empty for the root
	children []string
	pos1     int
	pos2     int
	end2     int // exclusive end of the subtree block in Q2
	depth    int
}

// Tree is a rooted tree with the Q1/Q2 dual projection.
type Tree struct {
	root  string
	nodes map[string]*node
	q1    []string
	q2    []string
}

// New returns a single-node tree rooted at root, at position 0 of both orders.
func New(root *big.Int) (*Tree, error) {
	if root == nil {
		return nil, ErrNilNode
	}
	key := root.String()
	t := &Tree{
		root:  key,
		nodes: map[string]*node{key: {value: new(big.Int).Set(root), end2: 1}},
		q1:    []string{key},
		q2:    []string{key},
	}

	return t, nil
}

// InsertChild attaches child below parent.
//
// Steps:
//  1. Q1: insert right after parent; every later node shifts by one.
//  2. Q2: insert at SubtreeEnd(parent); every later node shifts by one together
//     with its block end.
//  3. Grow the block end of parent and each of its ancestors by one.
//
// Complexity: O(n).
func (t *Tree) InsertChild(parent, child *big.Int) error {
	if parent == nil || child == nil {
		return ErrNilNode
	}
	pk, ck := parent.String(), child.String()
	if _, ok := t.nodes[ck]; ok {
		return fmt.Errorf("%w: %s", ErrChildExists, ck)
	}
	p, ok := t.nodes[pk]
	if !ok {
		return fmt.Errorf("%w: %s", ErrParentNotFound, pk)
	}

	// 1) Q1
	at1 := p.pos1 + 1
	t.q1 = insertAt(t.q1, at1, ck)
	for i := at1 + 1; i < len(t.q1); i++ {
		t.nodes[t.q1[i]].pos1 = i
	}

	// 2) Q2
	at2 := p.end2
	t.q2 = insertAt(t.q2, at2, ck)
	for i := at2 + 1; i < len(t.q2); i++ {
		n := t.nodes[t.q2[i]]
		n.pos2 = i
		n.end2++
	}

	// 3) Enclosing blocks
	for cur := p; ; cur = t.nodes[cur.parent] {
		cur.end2++
		if cur.parent == "" {
			break
		}
	}

	t.nodes[ck] = &node{
		value:  new(big.Int).Set(child),
		parent: pk,
		pos1:   at1,
		pos2:   at2,
		end2:   at2 + 1,
		depth:  p.depth + 1,
	}
	p.children = append(p.children, ck)

	return nil
}

// Reaches reports whether u is v or an ancestor of v. Unknown nodes never reach.
//
// Complexity: O(1).
func (t *Tree) Reaches(u, v *big.Int) bool {
	if u == nil || v == nil {
		return false
	}
	nu, ok := t.nodes[u.String()]
	if !ok {
		return false
	}
	nv, ok := t.nodes[v.String()]
	if !ok {
		return false
	}
	if nu == nv {
		return true
	}

	return nu.pos1 < nv.pos1 && nu.pos2 < nv.pos2
}

// SubtreeMembersQ2 returns u's subtree in Q2 order, u first. An unknown u
// yields nil.
func (t *Tree) SubtreeMembersQ2(u *big.Int) []*big.Int {
	n := t.lookup(u)
	if n == nil {
		return nil
	}

	return t.values(t.q2[n.pos2:n.end2])
}

// Root returns a copy of the root value.
func (t *Tree) Root() *big.Int { return new(big.Int).Set(t.nodes[t.root].value) }

// Len returns the number of nodes.
func (t *Tree) Len() int { return len(t.q1) }

// Contains reports whether v is in the tree.
func (t *Tree) Contains(v *big.Int) bool { return t.lookup(v) != nil }

// Parent returns the parent of v; ok is false for the root and unknown values.
func (t *Tree) Parent(v *big.Int) (parent *big.Int, ok bool) {
	n := t.lookup(v)
	if n == nil || n.parent == "" {
		return nil, false
	}

	return new(big.Int).Set(t.nodes[n.parent].value), true
}

// Children returns the children of v in insertion order.
func (t *Tree) Children(v *big.Int) []*big.Int {
	n := t.lookup(v)
	if n == nil {
		return nil
	}

	return t.values(n.children)
}

// Q1 returns the first order as fresh values.
func (t *Tree) Q1() []*big.Int { return t.values(t.q1) }

// Q2 returns the second order as fresh values.
func (t *Tree) Q2() []*big.Int { return t.values(t.q2) }

// Position1 returns the index of v in Q1.
func (t *Tree) Position1(v *big.Int) (int, bool) {
	if n := t.lookup(v); n != nil {
		return n.pos1, true
	}

	return 0, false
}

// Position2 returns the index of v in Q2.
func (t *Tree) Position2(v *big.Int) (int, bool) {
	if n := t.lookup(v); n != nil {
		return n.pos2, true
	}

	return 0, false
}

// SubtreeEnd returns the exclusive end of v's block in Q2.
func (t *Tree) SubtreeEnd(v *big.Int) (int, bool) {
	if n := t.lookup(v); n != nil {
		return n.end2, true
	}

	return 0, false
}

// Depth returns the number of edges between the root and v.
func (t *Tree) Depth(v *big.Int) (int, bool) {
	if n := t.lookup(v); n != nil {
		return n.depth, true
	}

	return 0, false
}

func (t *Tree) lookup(v *big.Int) *node {
	if v == nil {
		return nil
	}

	return t.nodes[v.String()]
}

func (t *Tree) values(keys []string) []*big.Int {
	out := make([]*big.Int, len(keys))
	for i, k := range keys {
		out[i] = new(big.Int).Set(t.nodes[k].value)
	}

	return out
}

// insertAt inserts s at index i of xs.
func insertAt(xs []string, i int, s string) []string {
	xs = append(xs, "")
	copy(xs[i+1:], xs[i:])
	xs[i] = s

	return xs
}
