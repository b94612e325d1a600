package selector

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"

	"github.com/robalobadob/faustdle/internal/roster"
)

const (
	seedAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	seedLength   = 26
)

// ErrSeedNotFound is returned when no generated seed selects the requested
// character within the attempt budget.
var ErrSeedNotFound = errors.New("no seed found")

// RandomSeed returns a fresh base36 seed from crypto/rand.
func RandomSeed() string {
	b := make([]byte, seedLength)
	max := big.NewInt(int64(len(seedAlphabet)))
	for i := range b {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			panic(fmt.Sprintf("selector: crypto/rand: %v", err))
		}
		b[i] = seedAlphabet[n.Int64()]
	}
	return string(b)
}

// FindSeed searches random seeds until SelectTarget(r, mode, seed) picks the
// character called name. The search stops after attempts tries or when ctx
// is done.
func FindSeed(ctx context.Context, r *roster.Roster, name string, mode Mode, attempts int) (string, error) {
	e, ok := r.Lookup(name)
	if !ok {
		return "", fmt.Errorf("%w: %q is not in the roster", ErrSeedNotFound, name)
	}
	if !mode.Allows(e.Difficulty()) {
		return "", fmt.Errorf("%w: %s cannot be selected in %s mode", ErrSeedNotFound, name, mode)
	}

	for i := 0; i < attempts; i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		seed := RandomSeed()
		got, err := SelectTarget(r, mode, seed)
		if err != nil {
			return "", err
		}
		if got.Name == name {
			return seed, nil
		}
	}
	return "", fmt.Errorf("%w: %s after %d attempts", ErrSeedNotFound, name, attempts)
}
