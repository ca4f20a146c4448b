// Package enctree maintains a rooted tree of *big.Int values together with two
// linear orders, Q1 and Q2, from which ancestry can be read off in O(1).
//
// What:
//
//   - Q1 places every new child immediately after its parent, so siblings
//     appear in reverse insertion order.
//   - Q2 places every new child at the end of its parent's subtree block, so
//     siblings appear in insertion order and every subtree is the contiguous
//     range [Position2(u), SubtreeEnd(u)).
//   - Reaches(u, v) is true iff u is v or an ancestor of v, which holds exactly
//     when u precedes v in both orders.
//
// Positions are kept in side maps updated on every shift, so all lookups are
// O(1); an insertion costs O(n) for the two slice shifts.
//
// BuildFromReverse grows a tree breadth-first from a root using an injected
// predecessor function, in the shape of a bounded BFS walker with hooks.
//
// A Tree is not safe for concurrent mutation.
package enctree
