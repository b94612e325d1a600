package selector

import (
	"fmt"

	"github.com/robalobadob/faustdle/internal/roster"
)

// DecoyCount is the number of pre-filled rows in a scramble game.
const DecoyCount = 5

// VariantSet is a scramble game's hidden target and its decoys.
type VariantSet struct {
	Target roster.Entity
	Decoys []roster.Entity
}

// BuildVariantSet shuffles the characters eligible for mode with a stream
// seeded from seed, then takes shuffled[0] as the target and shuffled[1:6]
// as decoys, in shuffle order.
func BuildVariantSet(r *roster.Roster, mode Mode, seed string) (VariantSet, error) {
	return buildFrom(r, mode, NewStream(seed))
}

func buildFrom(r *roster.Roster, mode Mode, src Source) (VariantSet, error) {
	pool := ListEligible(r, mode)
	if len(pool) < DecoyCount+1 {
		return VariantSet{}, fmt.Errorf("%w: %s mode has %d characters, need at least %d",
			ErrInsufficientCandidates, mode, len(pool), DecoyCount+1)
	}

	// Fisher–Yates, last index down to 1.
	for i := len(pool) - 1; i > 0; i-- {
		j := index(src, i+1)
		pool[i], pool[j] = pool[j], pool[i]
	}

	return VariantSet{
		Target: pool[0],
		Decoys: append([]roster.Entity(nil), pool[1:DecoyCount+1]...),
	}, nil
}
