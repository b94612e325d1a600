// internal/game/types.go
//
// Core type definitions for the game engine.
// Defines:
//   - Outcome: per-trait comparison result kind (match/unknown/directional/mismatch).
//   - Dir: numeric direction hint attached to directional results.
//   - Result: one per compared trait, nine per guess.
//   - Guess / Game: guess history and state for a single session.

package game

import (
	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
)

// Outcome tags a Result.
// Possible values:
//   - "match":       guess equals target for this trait.
//   - "unknown":     nothing is revealed (unknown bounty, height mismatch).
//   - "directional": numeric mismatch; Direction says which way to go.
//   - "mismatch":    categorical or text mismatch, no direction.
type Outcome string

const (
	OutcomeMatch       Outcome = "match"
	OutcomeUnknown     Outcome = "unknown"
	OutcomeDirectional Outcome = "directional"
	OutcomeMismatch    Outcome = "mismatch"
)

// Dir is the direction from the guessed value towards the target value.
type Dir string

const (
	DirUp    Dir = "up"    // target is higher than the guess
	DirDown  Dir = "down"  // target is lower than the guess
	DirEqual Dir = "equal" // numerically equal although the raw text differed
)

// Result is the comparison of one trait column. Results are value objects;
// they are never modified after Compare returns them.
type Result struct {
	Column    roster.Column `json:"column"`
	Kind      Outcome       `json:"kind"`
	Text      string        `json:"text"`
	Direction Dir           `json:"direction,omitempty"`
}

// Guess is one entry of a game's history.
type Guess struct {
	Name    string   `json:"name"`
	Results []Result `json:"results"`
}

// Game holds the state of a single session.
type Game struct {
	ID       string        // Unique game identifier (uuid).
	Mode     selector.Mode // Mode the target was selected under.
	Seed     string        // Seed the target was selected with.
	Target   roster.Entity // Hidden character.
	Decoys   []Guess       // Pre-filled rows in scramble mode.
	History  []Guess       // Guesses made so far, oldest first.
	Limit    int           // Maximum guesses; 0 means unlimited.
	Scramble bool          // True for a scramble (one guess) game.
	Finished bool          // True once the game is over (won or lost).
	Won      bool          // True if the game was finished with a win.
	StreakID string        // Owning streak, if any.

	r   *roster.Roster
	cmp *Comparator
}

// State strings reported to clients.
const (
	StatePlaying = "playing"
	StateWon     = "won"
	StateLost    = "lost"
)
