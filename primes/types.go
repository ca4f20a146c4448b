package primes

import (
	"errors"
	"fmt"
)

// Defaults for a Service built without options.
const (
	// DefaultHardLimit caps sieve growth; larger candidates fall back to trial division.
	DefaultHardLimit = 1_000_000

	// DefaultPrimesCacheSize bounds the PrimesBelow cache.
	DefaultPrimesCacheSize = 128

	// DefaultFactorCacheSize bounds the RemovePrimesBelow cache.
	DefaultFactorCacheSize = 512
)

// seedPrimes initialises every new sieve.
var seedPrimes = [...]int{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29,
	31, 37, 41, 43, 47, 53, 59, 61, 67, 71,
	73, 79, 83, 89, 97, 101, 103, 107, 109, 113,
	127, 131, 137, 139, 149, 151, 157, 163, 167, 173,
	179, 181, 191, 193, 197, 199, 211, 223, 227, 229,
}

var (
	// ErrInvalidLimit is returned when a limit argument is negative.
	ErrInvalidLimit = errors.New("primes: limit must be a non-negative integer")

	// ErrOptionViolation is returned by NewService when an Option is invalid.
	ErrOptionViolation = errors.New("primes: invalid option supplied")
)

// Option configures a Service.
type Option func(*Options)

// Options holds the tunables of a Service.
type Options struct {
	// HardLimit is the largest index the sieve may ever cover.
	HardLimit int

	// PrimesCacheSize is the FIFO capacity of the PrimesBelow cache.
	PrimesCacheSize int

	// FactorCacheSize is the FIFO capacity of the RemovePrimesBelow cache.
	FactorCacheSize int

	err error
}

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		HardLimit:       DefaultHardLimit,
		PrimesCacheSize: DefaultPrimesCacheSize,
		FactorCacheSize: DefaultFactorCacheSize,
	}
}

// WithHardLimit sets the sieve ceiling. It must be at least the largest seed prime.
func WithHardLimit(n int) Option {
	return func(o *Options) {
		if n < seedPrimes[len(seedPrimes)-1] {
			o.err = fmt.Errorf("%w: hard limit %d below seed range", ErrOptionViolation, n)
			return
		}
		o.HardLimit = n
	}
}

// WithPrimesCacheSize sets the PrimesBelow cache capacity.
func WithPrimesCacheSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: primes cache size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.PrimesCacheSize = n
	}
}

// WithFactorCacheSize sets the RemovePrimesBelow cache capacity.
func WithFactorCacheSize(n int) Option {
	return func(o *Options) {
		if n <= 0 {
			o.err = fmt.Errorf("%w: factor cache size must be positive (%d)", ErrOptionViolation, n)
			return
		}
		o.FactorCacheSize = n
	}
}

// factorKey identifies one RemovePrimesBelow query.
type factorKey struct {
	n string
	p int64
}
