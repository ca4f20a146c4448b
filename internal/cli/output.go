package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
)

// ErrBadInteger is returned for an argument that is not a base-10 integer.
var ErrBadInteger = errors.New("cli: not an integer")

// parseBig reads a base-10 integer of any size.
func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBadInteger, s)
	}

	return n, nil
}

// decimal renders values in base 10.
func decimal(vals []*big.Int) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = v.String()
	}

	return out
}

// emit writes v as indented JSON.
func (a *app) emit(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}
