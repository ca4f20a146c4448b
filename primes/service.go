package primes

import (
	"fmt"
	"math"
	"math/big"

	"github.com/katalvlaran/hailstone/fifo"
)

// Service owns a growable primality sieve and the caches built on top of it.
type Service struct {
	sieve     []bool // sieve[i] == true iff i is prime, for i ≤ sieveMax
	sieveMax  int
	hardLimit int

	below   *fifo.Cache[int64, []int64]
	factors *fifo.Cache[factorKey, *big.Int]
}

// NewService builds a Service seeded with the primes up to 229.
// Returns ErrOptionViolation if any Option is invalid.
func NewService(opts ...Option) (*Service, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	below, err := fifo.New[int64, []int64](o.PrimesCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}
	factors, err := fifo.New[factorKey, *big.Int](o.FactorCacheSize)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrOptionViolation, err)
	}

	s := &Service{
		hardLimit: o.HardLimit,
		below:     below,
		factors:   factors,
	}
	s.seed()

	return s, nil
}

// MustNewService is NewService for option sets known to be valid.
// It panics on error.
func MustNewService(opts ...Option) *Service {
	s, err := NewService(opts...)
	if err != nil {
		panic(err)
	}

	return s
}

// seed builds the initial sieve covering [0, largest seed prime].
func (s *Service) seed() {
	s.sieveMax = seedPrimes[len(seedPrimes)-1]
	s.sieve = make([]bool, s.sieveMax+1)
	for _, p := range seedPrimes {
		s.sieve[p] = true
	}
}

// SieveMax returns the largest index the sieve currently covers.
func (s *Service) SieveMax() int { return s.sieveMax }

// HardLimit returns the configured sieve ceiling.
func (s *Service) HardLimit() int { return s.hardLimit }

// Extend grows the sieve to cover [0, upto], clamped to the hard limit.
// Smaller values are a no-op: the sieve never shrinks.
func (s *Service) Extend(upto int) {
	if upto > s.hardLimit {
		upto = s.hardLimit
	}
	if upto <= s.sieveMax {
		return
	}

	// 1) Copy old flags; every new slot starts as "prime"
	oldMax := s.sieveMax
	next := make([]bool, upto+1)
	copy(next, s.sieve)
	for i := oldMax + 1; i <= upto; i++ {
		next[i] = true
	}

	// 2) Cross off multiples in the new range only. Primes above oldMax are
	//    already settled by the time the loop reaches them.
	root := isqrt(int64(upto))
	for p := 2; int64(p) <= root; p++ {
		if !next[p] {
			continue
		}
		start := p * p
		if first := ((oldMax + 1 + p - 1) / p) * p; first > start {
			start = first
		}
		for m := start; m <= upto; m += p {
			next[m] = false
		}
	}

	s.sieve = next
	s.sieveMax = upto
}

// PrimesBelow returns every prime strictly less than limit, ascending.
// The result is a fresh copy; mutating it never affects later calls.
func (s *Service) PrimesBelow(limit int64) ([]int64, error) {
	if limit < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidLimit, limit)
	}
	if limit <= 2 {
		return []int64{}, nil
	}

	// 1) Cache hit
	if cached, ok := s.below.Get(limit); ok {
		return clonePrimes(cached), nil
	}

	// 2) Cover as much of [0, limit) as the hard limit allows
	s.Extend(int(min(limit, int64(s.hardLimit))))

	// 3) Collect: sieve range first, trial division above it
	out := make([]int64, 0, estimateCount(limit))
	for i := int64(2); i < limit; i++ {
		if i <= int64(s.sieveMax) {
			if s.sieve[i] {
				out = append(out, i)
			}
			continue
		}
		if s.trialDivide(i) {
			out = append(out, i)
		}
	}

	s.below.Set(limit, out)

	return clonePrimes(out), nil
}

// IsPrime reports whether n is prime. Negative values, 0 and 1 are not.
func (s *Service) IsPrime(n int64) bool {
	if n < 2 {
		return false
	}
	if n <= int64(s.sieveMax) {
		return s.sieve[n]
	}

	return s.trialDivide(n)
}

// trialDivide decides primality for n > sieveMax.
func (s *Service) trialDivide(n int64) bool {
	root := isqrt(n)
	if root+1 <= int64(s.hardLimit) {
		s.Extend(int(root + 1))
	} else {
		s.Extend(s.hardLimit)
	}

	bound := min(root, int64(s.sieveMax))
	for p := int64(2); p <= bound; p++ {
		if s.sieve[p] && n%p == 0 {
			return n == p
		}
	}
	if root <= int64(s.sieveMax) {
		return true
	}

	// √n is beyond the ceiling: Baillie–PSW is exact for n < 2^64.
	return big.NewInt(n).ProbablyPrime(0)
}

// RemovePrimesBelow divides every prime q < p out of n to exhaustion, in
// ascending order of q, stopping early once the value reaches 1.
// p < 2 returns a copy of n unchanged. Zero is returned as zero.
func (s *Service) RemovePrimesBelow(n *big.Int, p int64) *big.Int {
	if n == nil {
		return new(big.Int)
	}
	if p < 2 || n.Sign() == 0 {
		return new(big.Int).Set(n)
	}

	key := factorKey{n: n.String(), p: p}
	if cached, ok := s.factors.Get(key); ok {
		return new(big.Int).Set(cached)
	}

	plist, _ := s.PrimesBelow(p) // p ≥ 2, cannot fail
	cur := new(big.Int).Set(n)
	quo, rem := new(big.Int), new(big.Int)
	qb := new(big.Int)
	for _, q := range plist {
		qb.SetInt64(q)
		for {
			quo.QuoRem(cur, qb, rem)
			if rem.Sign() != 0 {
				break
			}
			cur.Set(quo)
		}
		if cur.IsInt64() && cur.Int64() == 1 {
			break
		}
	}

	s.factors.Set(key, new(big.Int).Set(cur))

	return cur
}

// ClearCaches drops every cached PrimesBelow and RemovePrimesBelow answer.
// The sieve is left untouched.
func (s *Service) ClearCaches() {
	s.below.Clear()
	s.factors.Clear()
}

// CacheSizes reports the current number of cached entries per cache.
func (s *Service) CacheSizes() (primesBelow, factors int) {
	return s.below.Len(), s.factors.Len()
}

func clonePrimes(in []int64) []int64 {
	out := make([]int64, len(in))
	copy(out, in)

	return out
}

// isqrt returns ⌊√n⌋ for n ≥ 0.
func isqrt(n int64) int64 {
	r := int64(math.Sqrt(float64(n)))
	// float rounding may be off by one either way; compare by division to stay
	// clear of int64 overflow near MaxInt64
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}

	return r
}

// estimateCount is a rough π(L) upper bound used for slice capacity.
func estimateCount(limit int64) int {
	if limit < 17 {
		return 8
	}
	est := 1.26 * float64(limit) / math.Log(float64(limit))
	if est > 1<<20 {
		est = 1 << 20
	}

	return int(est)
}
