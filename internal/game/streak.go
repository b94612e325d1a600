package game

import (
	"errors"

	"github.com/google/uuid"

	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
)

var (
	ErrStreakOver   = errors.New("streak is over")
	ErrRoundPending = errors.New("current round is not finished")
	ErrForeignGame  = errors.New("game does not belong to this streak")
)

// Per-round guess limits in streak mode.
const (
	streakLimitNormal = 6
	streakLimitOther  = 8
	maxRoundPoints    = 10
)

// Streak chains games until the first loss.
type Streak struct {
	ID         string        `json:"streakId"`
	Difficulty selector.Mode `json:"difficulty"`
	Scramble   bool          `json:"scramble"`
	Count      int           `json:"count"`
	Points     int           `json:"points"`
	Over       bool          `json:"over"`
	Current    string        `json:"currentGameId,omitempty"`
}

// NewStreak starts an empty streak.
func NewStreak(difficulty selector.Mode, scramble bool) *Streak {
	return &Streak{ID: uuid.NewString(), Difficulty: difficulty, Scramble: scramble}
}

// Limit returns the guess limit for one round.
func (s *Streak) Limit() int {
	switch {
	case s.Scramble:
		return 1
	case s.Difficulty == selector.ModeNormal:
		return streakLimitNormal
	default:
		return streakLimitOther
	}
}

// NextRound starts the next game of the streak with a fresh random seed.
func (s *Streak) NextRound(r *roster.Roster) (*Game, error) {
	return s.nextRound(r, selector.RandomSeed())
}

func (s *Streak) nextRound(r *roster.Roster, seed string) (*Game, error) {
	if s.Over {
		return nil, ErrStreakOver
	}
	if s.Current != "" {
		return nil, ErrRoundPending
	}

	var (
		g   *Game
		err error
	)
	if s.Scramble {
		g, err = NewScramble(r, s.Difficulty, seed)
	} else {
		g, err = New(r, s.Difficulty, seed, s.Limit())
	}
	if err != nil {
		return nil, err
	}
	g.StreakID = s.ID
	s.Current = g.ID
	return g, nil
}

// Record folds a finished round into the streak. A win adds
// max(1, 10 - guesses) points (one point in scramble mode); a loss ends the
// streak. Unfinished games are ignored.
func (s *Streak) Record(g *Game) error {
	if g.StreakID != s.ID || g.ID != s.Current {
		return ErrForeignGame
	}
	if !g.Finished {
		return nil
	}
	s.Current = ""
	if !g.Won {
		s.Over = true
		return nil
	}
	s.Count++
	if s.Scramble {
		s.Points++
	} else {
		s.Points += max(1, maxRoundPoints-len(g.History))
	}
	return nil
}
