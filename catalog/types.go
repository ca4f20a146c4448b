package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/big"

	"github.com/katalvlaran/hailstone/sequence"
)

// SignatureKind selects how a cycle is labelled.
type SignatureKind string

const (
	// Length labels a cycle by the length of its sequence.
	Length SignatureKind = "length"

	// Binary labels a cycle by the tail of its parity word.
	Binary SignatureKind = "binary"

	// Rotation labels a cycle by the minimal rotation of its parity word.
	Rotation SignatureKind = "rotation"
)

// Defaults for Options.
const (
	// DefaultMaxSteps is the step budget handed to RunFunc.
	DefaultMaxSteps = 5000

	// binaryTail is the number of trailing parity characters kept by Binary.
	binaryTail = 32

	// sampleSize is the number of trailing elements kept in CycleSample.
	sampleSize = 10
)

// ErrUnknownSignature is returned by ParseSignature for an unsupported name.
var ErrUnknownSignature = errors.New("catalog: unknown signature kind")

// ParseSignature maps a name to a SignatureKind; "" selects Binary.
func ParseSignature(s string) (SignatureKind, error) {
	switch SignatureKind(s) {
	case "", Binary:
		return Binary, nil
	case Length:
		return Length, nil
	case Rotation:
		return Rotation, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownSignature, s)
	}
}

// RunFunc produces the run for one start value with the given step budget.
type RunFunc func(ctx context.Context, start *big.Int, maxSteps int) (sequence.Result, error)

// Options configures one Catalog call.
type Options struct {
	// Starts are processed in order.
	Starts []*big.Int

	// Signature defaults to Binary; unknown kinds are treated as Binary.
	Signature SignatureKind

	// MaxSteps ≤ 0 selects DefaultMaxSteps.
	MaxSteps int

	// Logger receives per-start diagnostics; nil discards them.
	Logger *slog.Logger
}

// Entry is one catalog record: either a labelled cycle or an error.
type Entry struct {
	Start       string   `json:"start"`
	Signature   string   `json:"signature,omitempty"`
	CycleSample []string `json:"cycleSample,omitempty"`
	Error       string   `json:"error,omitempty"`
}

// Group collects the entries sharing one signature.
type Group struct {
	Signature string  `json:"signature"`
	Entries   []Entry `json:"entries"`
}
