package catalog

import (
	"math/big"
	"strconv"
)

// Signature labels a cycle sequence according to kind.
func Signature(kind SignatureKind, seq []*big.Int) string {
	switch kind {
	case Length:
		return "len:" + strconv.Itoa(len(seq))
	case Rotation:
		return "rot:" + string(MinimalRotation(parityWord(cyclePart(seq))))
	default:
		w := parityWord(seq)
		if len(w) > binaryTail {
			w = w[len(w)-binaryTail:]
		}

		return string(w)
	}
}

// parityWord maps each element to '0' (even) or '1' (odd).
func parityWord(seq []*big.Int) []byte {
	w := make([]byte, len(seq))
	for i, v := range seq {
		w[i] = '0' + byte(v.Bit(0))
	}

	return w
}

// cyclePart returns the repeating block of a cycle-terminated sequence: the
// elements from the first occurrence of the last value up to, not including,
// the last position. Without such a repeat the whole sequence is returned.
func cyclePart(seq []*big.Int) []*big.Int {
	if len(seq) < 2 {
		return seq
	}
	last := seq[len(seq)-1]
	for i := 0; i < len(seq)-1; i++ {
		if seq[i].Cmp(last) == 0 {
			return seq[i : len(seq)-1]
		}
	}

	return seq
}

// MinimalRotation returns the lexicographically least rotation of w using
// Booth's algorithm. The input is not modified.
//
// Complexity: O(n) time, O(n) memory.
func MinimalRotation(w []byte) []byte {
	n := len(w)
	if n == 0 {
		return []byte{}
	}
	doubled := make([]byte, 2*n)
	copy(doubled, w)
	copy(doubled[n:], w)

	// f holds failure links, k the start of the best rotation so far
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	out := make([]byte, n)
	copy(out, doubled[k:k+n])

	return out
}
