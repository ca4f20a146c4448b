// Package primes implements a lazily extended sieve of Eratosthenes together
// with size-capped caches for the two queries the sequence engine needs:
// "all primes below L" and "n with every prime factor below p divided out".
//
// What:
//
//   - Service owns one sieve buffer. It starts seeded with the primes up to 229
//     and grows on demand, never shrinks, and never exceeds its hard limit
//     (one million by default).
//   - PrimesBelow(limit): ascending primes < limit, served from a FIFO cache
//     and returned as a fresh copy on every call.
//   - IsPrime(n): sieve lookup when n is in range, otherwise trial division
//     by sieve primes up to √n; when √n lies beyond the hard limit the final
//     verdict comes from math/big's Baillie–PSW test, which is exact below 2^64.
//   - RemovePrimesBelow(n, p): strips every prime factor q < p from n, cached
//     per (n, p).
//   - ClearCaches(): drops cached answers; the sieve itself is retained.
//
// Invariant: for every i ≤ SieveMax(), the sieve reports i prime iff it is.
//
// Complexity:
//
//   - Extend(u):            O(u log log u) time, O(u) memory
//   - PrimesBelow(L):       O(L) on a miss, O(π(L)) copy on a hit
//   - IsPrime(n):           O(1) in range, O(π(√n)) otherwise
//   - RemovePrimesBelow:    O(π(p) + Σ multiplicities) big-int divisions
//
// A Service is not safe for concurrent use; create one per goroutine or guard
// it externally.
package primes
