package predecessor

import (
	"math/big"

	"github.com/katalvlaran/hailstone/sequence"
)

// Reverse returns the direct classic predecessors of m: 2m first, then
// (m-1)/3 when it is a positive odd integer (m ≡ 4 mod 6).
// A nil m yields nil.
func Reverse(m *big.Int) []*big.Int {
	if m == nil {
		return nil
	}
	out := []*big.Int{new(big.Int).Lsh(m, 1)}

	// (m-1)/3 must be exact, positive and odd
	q, r := new(big.Int).QuoRem(new(big.Int).Sub(m, bigOne), bigThree, new(big.Int))
	if r.Sign() == 0 && q.Sign() > 0 && q.Bit(0) == 1 {
		out = append(out, q)
	}

	return out
}

// ReverseRule inverts a generalized rule: m·X always, plus (m-Z)/Y when the
// division is exact and the quotient is not itself divisible by |X| (otherwise
// the forward step would have taken the division branch).
// An invalid rule (X == 0) or a nil m yields nil.
func ReverseRule(m *big.Int, rule sequence.Rule) []*big.Int {
	if m == nil || !rule.Valid() {
		return nil
	}
	x := big.NewInt(rule.X)
	out := []*big.Int{new(big.Int).Mul(m, x)}
	if rule.Y == 0 {
		return out
	}

	num := new(big.Int).Sub(m, big.NewInt(rule.Z))
	q, r := new(big.Int).QuoRem(num, big.NewInt(rule.Y), new(big.Int))
	if r.Sign() == 0 && !sequence.Divisible(q, new(big.Int).Abs(x)) {
		out = append(out, q)
	}

	return out
}

// ReverseWithShortcuts returns Reverse(m) followed by every ShortcutOdd(m, kMax)
// value that is not already listed, in ascending k.
func ReverseWithShortcuts(m *big.Int, kMax int) []*big.Int {
	out := Reverse(m)
	if out == nil {
		return nil
	}
	seen := make(map[string]struct{}, len(out))
	for _, v := range out {
		seen[v.String()] = struct{}{}
	}
	for _, s := range ShortcutOdd(m, kMax) {
		key := s.P.String()
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s.P)
	}

	return out
}
