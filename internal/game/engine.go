// internal/game/engine.go
//
// Game engine for a single session.
// Responsibilities:
//   - Create games by selecting a target (or a scramble variant set) from a seed.
//   - Resolve typed names and score guesses with the Comparator.
//   - Track state transitions: playing → won/lost.
//
// Notes:
//   - Selection is delegated to the selector package; the engine never
//     touches a generator itself.
//   - Game IDs are uuids and only correlate server-side state.

package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
)

var (
	ErrFinished    = errors.New("game finished")
	ErrUnknownName = errors.New("character not found")
	ErrNoSkip      = errors.New("daily games cannot be skipped")
)

// New starts a game whose target is selected for mode from seed.
// limit caps the number of guesses; 0 means unlimited.
func New(r *roster.Roster, mode selector.Mode, seed string, limit int) (*Game, error) {
	target, err := selector.SelectTarget(r, mode, seed)
	if err != nil {
		return nil, err
	}
	return &Game{
		ID:      uuid.NewString(),
		Mode:    mode,
		Seed:    seed,
		Target:  target,
		History: []Guess{},
		Limit:   limit,
		r:       r,
		cmp:     NewComparator(r),
	}, nil
}

// NewScramble starts a scramble game: five decoys are compared against the
// target up front and the player gets a single guess.
func NewScramble(r *roster.Roster, mode selector.Mode, seed string) (*Game, error) {
	vs, err := selector.BuildVariantSet(r, mode, seed)
	if err != nil {
		return nil, err
	}
	g := &Game{
		ID:       uuid.NewString(),
		Mode:     mode,
		Seed:     seed,
		Target:   vs.Target,
		History:  []Guess{},
		Limit:    1,
		Scramble: true,
		r:        r,
		cmp:      NewComparator(r),
	}
	g.Decoys = make([]Guess, 0, len(vs.Decoys))
	for _, d := range vs.Decoys {
		g.Decoys = append(g.Decoys, Guess{Name: d.Name, Results: g.cmp.Compare(d.Traits, vs.Target.Traits)})
	}
	return g, nil
}

// ApplyGuess resolves input to a character, scores it against the target
// and appends it to the history.
// Returns: the scored guess, the new state string, or an error.
//
// State transitions:
//   - Guessing the target → Finished = true, Won = true.
//   - Else if the number of guesses reaches a positive Limit → Finished = true (loss).
func (g *Game) ApplyGuess(input string) (Guess, string, error) {
	if g.Finished {
		return Guess{}, g.State(), ErrFinished
	}
	name, ok := g.r.Resolve(input)
	if !ok {
		return Guess{}, g.State(), ErrUnknownName
	}
	e, _ := g.r.Lookup(name)

	guess := Guess{Name: name, Results: g.cmp.Compare(e.Traits, g.Target.Traits)}
	g.History = append(g.History, guess)

	if name == g.Target.Name {
		g.Finished, g.Won = true, true
	} else if g.Limit > 0 && len(g.History) >= g.Limit {
		g.Finished = true
	}
	return guess, g.State(), nil
}

// GiveUp ends the game as a loss. Daily games cannot be given up.
func (g *Game) GiveUp() error {
	if g.Finished {
		return ErrFinished
	}
	if g.Mode == selector.ModeDaily {
		return ErrNoSkip
	}
	g.Finished = true
	return nil
}

// State reports a coarse string representation of the current game state.
func (g *Game) State() string {
	if g.Finished {
		if g.Won {
			return StateWon
		}
		return StateLost
	}
	return StatePlaying
}
