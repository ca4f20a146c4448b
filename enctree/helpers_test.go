package enctree_test

import (
	"math/big"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hailstone/enctree"
)

// closure collects u and its descendants by walking Children.
func closure(tr *enctree.Tree, u *big.Int) []string {
	out := []string{}
	stack := []*big.Int{u}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		out = append(out, top.String())
		stack = append(stack, tr.Children(top)...)
	}
	sort.Strings(out)
	return out
}

// ancestorOrSelf walks the parent chain of v looking for u.
func ancestorOrSelf(tr *enctree.Tree, u, v *big.Int) bool {
	cur := v
	for {
		if cur.Cmp(u) == 0 {
			return true
		}
		p, ok := tr.Parent(cur)
		if !ok {
			return false
		}
		cur = p
	}
}

// assertInvariants verifies both permutations, subtree blocks and Reaches.
func assertInvariants(t *testing.T, tr *enctree.Tree) {
	t.Helper()
	q1, q2 := tr.Q1(), tr.Q2()
	require.Len(t, q1, tr.Len())
	require.Len(t, q2, tr.Len())
	assert.ElementsMatch(t, strs(q1), strs(q2))

	for i, v := range q1 {
		pos, ok := tr.Position1(v)
		require.True(t, ok)
		require.Equal(t, i, pos, "Q1 position of %s", v)
	}
	for i, v := range q2 {
		pos, ok := tr.Position2(v)
		require.True(t, ok)
		require.Equal(t, i, pos, "Q2 position of %s", v)
	}

	for _, u := range q2 {
		got := strs(tr.SubtreeMembersQ2(u))
		sort.Strings(got)
		require.Equal(t, closure(tr, u), got, "subtree of %s", u)

		// parent precedes every descendant in Q1
		if p, ok := tr.Parent(u); ok {
			pp, _ := tr.Position1(p)
			up, _ := tr.Position1(u)
			require.Less(t, pp, up)
		}
	}

	for _, u := range q1 {
		for _, v := range q1 {
			require.Equal(t, ancestorOrSelf(tr, u, v), tr.Reaches(u, v), "reaches(%s, %s)", u, v)
		}
	}
}
