package predecessor

import (
	"fmt"
	"math/big"
)

// ShortcutOdd lists the odd positive p with 3p + 1 = 2^k · m for every k in
// [0, kMax], ascending in k. kMax < 0 or a non-positive m yields an empty slice.
//
// Complexity: O(kMax) big-int operations on numbers of O(log m + kMax) bits.
func ShortcutOdd(m *big.Int, kMax int) []Shortcut {
	out := []Shortcut{}
	if m == nil || m.Sign() <= 0 || kMax < 0 {
		return out
	}

	// num walks through 2^k · m
	num := new(big.Int).Set(m)
	rem := new(big.Int)
	for k := 0; k <= kMax; k++ {
		if k > 0 {
			num.Lsh(num, 1)
		}
		p := new(big.Int).Sub(num, bigOne)
		p.QuoRem(p, bigThree, rem)
		if rem.Sign() != 0 || p.Sign() <= 0 || p.Bit(0) == 0 {
			continue
		}
		out = append(out, Shortcut{P: p, K: k})
	}

	return out
}

// AcceleratedForward applies one odd step and strips every factor of two:
// p ↦ (3p+1) / 2^k with k = v2(3p+1). It returns the odd result and k.
func AcceleratedForward(p *big.Int) (*big.Int, int, error) {
	if p == nil {
		return nil, 0, ErrNilValue
	}
	if p.Bit(0) == 0 {
		return nil, 0, fmt.Errorf("%w; got %s", ErrEvenInput, p)
	}
	n := new(big.Int).Mul(p, bigThree)
	n.Add(n, bigOne)
	k := n.TrailingZeroBits()

	return n.Rsh(n, k), int(k), nil
}

// V2 returns the exponent of the largest power of two dividing n.
func V2(n *big.Int) (int, error) {
	if n == nil {
		return 0, ErrNilValue
	}
	if n.Sign() == 0 {
		return 0, ErrZeroValuation
	}

	return int(new(big.Int).Abs(n).TrailingZeroBits()), nil
}
