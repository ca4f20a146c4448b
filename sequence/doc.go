// Package sequence generates generalized Collatz trajectories and classifies
// how they end.
//
// What:
//
//   - Rule{X, Y, Z}: if n is divisible by X the next value is n/X, otherwise it
//     is Y·n + Z. Classic is the 3n+1 rule {2, 3, 1}.
//   - Generate: steps the rule literally.
//   - GenerateCompat: same loop, but a zero Y is read as 3 and a zero Z as 1,
//     and the multiplier is |Y|. Kept for callers that pass unset form fields.
//   - GenerateAlphaBeta: divisor fixed at 2, odd step α·n + β.
//   - GeneratePrime: the p-variant. Odd n becomes p·n + 1 with every prime
//     factor below p divided out (see package primes).
//   - Analyze: min/max/sum, mean, population standard deviation, stopping
//     time and the "paradoxical" marker for a finished Result.
//
// Every run ends with exactly one Classification:
//
//	converges_to_1          the value reached 1 (or started there)
//	cycle                   a value repeated; it is appended once more
//	diverges_overflow       |n| grew past the working bit length
//	max_iterations_reached  the step budget ran out
//	error                   invalid parameters (X = 0)
//
// Values are *big.Int throughout; the working range is bounded by MaxBits
// (4096 by default) rather than by a machine word.
//
// Complexity: O(S·B) per run for S steps over B-bit values, plus O(S) memory
// for the sequence and the seen-set used for cycle detection.
package sequence
