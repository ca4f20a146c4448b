// Package predecessor inverts the hailstone step: given a value m it lists the
// values whose next step (or next odd step plus its halvings) is m.
//
// What:
//
//   - Reverse(m): direct predecessors under the classic rule, [2m] followed by
//     (m-1)/3 when that is a positive odd integer.
//   - ReverseRule(m, r): the same inversion for any generalized rule.
//   - ShortcutOdd(m, kMax): odd p with 3p+1 = 2^k·m for k in [0, kMax], found
//     algebraically instead of by simulation.
//   - AcceleratedForward(p) and V2(n): the forward map that ShortcutOdd inverts.
//
// All inputs and outputs are *big.Int; inputs are never mutated.
package predecessor
