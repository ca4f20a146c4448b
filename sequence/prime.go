package sequence

import (
	"fmt"
	"math/big"

	"github.com/katalvlaran/hailstone/primes"
)

// IsValidP reports whether p is usable by the p-variant: odd and at least 3.
// Primality of p itself is not required.
func IsValidP(p int64) bool {
	return p >= 3 && p%2 == 1
}

// PrimeStep returns the p-variant StepFunc: even n → n/2, odd n → p·n + 1 with
// every prime factor below p removed by svc.
func PrimeStep(p int64, svc *primes.Service) (StepFunc, error) {
	if !IsValidP(p) {
		return nil, fmt.Errorf("%w; got %d", ErrInvalidP, p)
	}
	if svc == nil {
		return nil, ErrNilService
	}
	pb := big.NewInt(p)

	return func(n *big.Int) *big.Int {
		if n.Bit(0) == 0 {
			return new(big.Int).Rsh(n, 1)
		}
		x := new(big.Int).Mul(pb, n)
		x.Add(x, bigOne)

		return svc.RemovePrimesBelow(x, p)
	}, nil
}

// StepP applies one p-variant step to n.
func StepP(n *big.Int, p int64, svc *primes.Service) (*big.Int, error) {
	step, err := PrimeStep(p, svc)
	if err != nil {
		return nil, err
	}

	return step(n), nil
}

// GeneratePrime runs the p-variant from start. Invalid p fails fast with
// ErrInvalidP; every other outcome is reported through the Result type.
func GeneratePrime(start *big.Int, p int64, maxIterations int, svc *primes.Service, opts ...Option) (Result, error) {
	step, err := PrimeStep(p, svc)
	if err != nil {
		return Result{}, err
	}

	return Run(start, step, maxIterations, opts...), nil
}
