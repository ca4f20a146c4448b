package predecessor

import (
	"errors"
	"math/big"
)

var (
	// ErrZeroValuation is returned by V2 for n == 0, whose valuation is unbounded.
	ErrZeroValuation = errors.New("predecessor: 2-adic valuation of zero is undefined")

	// ErrEvenInput is returned by AcceleratedForward for an even argument.
	ErrEvenInput = errors.New("predecessor: accelerated step needs an odd value")

	// ErrNilValue is returned when a nil *big.Int is supplied.
	ErrNilValue = errors.New("predecessor: value is nil")
)

// Shortcut is one odd predecessor p of m together with the number of halvings
// k such that 3p + 1 = 2^k · m.
type Shortcut struct {
	P *big.Int
	K int
}

var (
	bigOne   = big.NewInt(1)
	bigThree = big.NewInt(3)
)
