// internal/selector/selector.go
//
// Deterministic target selection.
//
// Determinism:
//
//	SelectTarget is a pure function of (roster, mode, seed). Each call seeds
//	its own Stream, so concurrent sessions never share generator state.
//
// Draw order:
//
//	Indices are drawn over the FULL roster (not the eligible subset) and
//	rejected until one is eligible for the mode. Drawing over the full roster
//	keeps existing seed → character mappings stable when characters are
//	appended to the dataset.

package selector

import (
	"errors"
	"fmt"

	"github.com/robalobadob/faustdle/internal/roster"
)

// MaxAttempts bounds the number of draws SelectTarget makes.
const MaxAttempts = 1000

// ErrInsufficientCandidates means a mode has too few eligible characters for
// the requested operation. Callers must pick another mode; the selector never
// falls back to different rules.
var ErrInsufficientCandidates = errors.New("insufficient candidates")

// SelectTarget picks the hidden character for mode from seed.
func SelectTarget(r *roster.Roster, mode Mode, seed string) (roster.Entity, error) {
	return selectFrom(r, mode, NewStream(seed))
}

// selectFrom runs the rejection loop against an explicit source.
func selectFrom(r *roster.Roster, mode Mode, src Source) (roster.Entity, error) {
	n := r.Len()
	if n == 0 {
		return roster.Entity{}, fmt.Errorf("%w: roster is empty", ErrInsufficientCandidates)
	}
	for attempt := 0; attempt < MaxAttempts; attempt++ {
		e := r.At(index(src, n))
		if mode.Allows(e.Difficulty()) {
			return e, nil
		}
	}
	return roster.Entity{}, fmt.Errorf("%w: no %s character found in %d draws", ErrInsufficientCandidates, mode, MaxAttempts)
}

// ListEligible returns every character valid for mode, in roster order.
func ListEligible(r *roster.Roster, mode Mode) []roster.Entity {
	var out []roster.Entity
	for i := 0; i < r.Len(); i++ {
		if e := r.At(i); mode.Allows(e.Difficulty()) {
			out = append(out, e)
		}
	}
	return out
}
