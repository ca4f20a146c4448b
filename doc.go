// Package hailstone is a toolkit for generalized Collatz ("hailstone")
// sequences: if n is divisible by X divide it, otherwise replace it with Y·n + Z.
//
// What is in the box?
//
//	• Forward runs over math/big with cycle, overflow and budget detection
//	• The prime variant: odd n → p·n + 1 with every prime factor below p removed
//	• Trajectory statistics: stopping time, parity counts, paradox detection
//	• Inverse steps: direct and shortcut odd predecessors
//	• Reverse trees with O(1) ancestry through two linear orders
//	• Cycle catalogs with length, parity and rotation-invariant signatures
//
// Packages:
//
//	sequence/    Generate, GenerateCompat, GenerateAlphaBeta, GeneratePrime, Analyze
//	primes/      lazily extended sieve with FIFO-capped caches
//	predecessor/ Reverse, ReverseRule, ShortcutOdd, AcceleratedForward, V2
//	enctree/     incremental Q1/Q2 tree and BuildFromReverse
//	catalog/     batch cycle scanning and grouping
//	fifo/        generic insertion-ordered bounded cache
//	cmd/hailstone command line front end (JSON on stdout)
//
// Quick example, the classic rule from 6:
//
//	6 → 3 → 10 → 5 → 16 → 8 → 4 → 2 → 1
//
//	res := sequence.Generate(big.NewInt(6), sequence.Classic, 1000)
//	fmt.Println(res.Type) // converges_to_1
//
//	go install github.com/katalvlaran/hailstone/cmd/hailstone@latest
package hailstone
