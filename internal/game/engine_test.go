package game

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
)

// fixedGame builds a game whose target is chosen by name instead of a seed.
func fixedGame(t *testing.T, r *roster.Roster, target string, mode selector.Mode, limit int) *Game {
	t.Helper()
	e, ok := r.Lookup(target)
	require.True(t, ok)
	return &Game{
		ID:      "test-game",
		Mode:    mode,
		Target:  e,
		History: []Guess{},
		Limit:   limit,
		r:       r,
		cmp:     NewComparator(r),
	}
}

// wrongNames lists every character except target.
func wrongNames(r *roster.Roster, target string) []string {
	var out []string
	for _, e := range r.Entities() {
		if e.Name != target {
			out = append(out, e.Name)
		}
	}
	return out
}

func TestApplyGuessWin(t *testing.T) {
	r := testRoster(t)
	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 0)

	guess, state, err := g.ApplyGuess("nami")
	require.NoError(t, err)
	assert.Equal(t, "Nami", guess.Name)
	assert.Len(t, guess.Results, 9)
	assert.Equal(t, StatePlaying, state)

	// Alias resolves to the canonical name.
	guess, state, err = g.ApplyGuess("Straw Hat")
	require.NoError(t, err)
	assert.Equal(t, "Luffy", guess.Name)
	assert.Equal(t, StateWon, state)
	assert.True(t, g.Finished)
	assert.True(t, g.Won)
	assert.Len(t, g.History, 2)

	_, _, err = g.ApplyGuess("Nami")
	assert.True(t, errors.Is(err, ErrFinished))
}

func TestApplyGuessUnknownName(t *testing.T) {
	r := testRoster(t)
	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 0)

	_, state, err := g.ApplyGuess("Zoro")
	assert.True(t, errors.Is(err, ErrUnknownName))
	assert.Equal(t, StatePlaying, state)
	assert.Empty(t, g.History, "unresolved guesses do not count")
}

func TestApplyGuessLimit(t *testing.T) {
	r := testRoster(t)
	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 3)

	wrong := wrongNames(r, "Luffy")
	for i := 0; i < 2; i++ {
		_, state, err := g.ApplyGuess(wrong[i])
		require.NoError(t, err)
		assert.Equal(t, StatePlaying, state)
	}
	_, state, err := g.ApplyGuess(wrong[2])
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.True(t, g.Finished)
	assert.False(t, g.Won)
}

func TestApplyGuessWinOnLastGuess(t *testing.T) {
	r := testRoster(t)
	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 2)

	_, _, err := g.ApplyGuess("Nami")
	require.NoError(t, err)
	_, state, err := g.ApplyGuess("Luffy")
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
}

func TestGiveUp(t *testing.T) {
	r := testRoster(t)

	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 0)
	require.NoError(t, g.GiveUp())
	assert.Equal(t, StateLost, g.State())
	assert.True(t, errors.Is(g.GiveUp(), ErrFinished))

	d := fixedGame(t, r, "Luffy", selector.ModeDaily, 0)
	assert.True(t, errors.Is(d.GiveUp(), ErrNoSkip))
	assert.Equal(t, StatePlaying, d.State())
}

func TestNewDeterministic(t *testing.T) {
	r := testRoster(t)

	a, err := New(r, selector.ModeNormal, "fixed-seed", 6)
	require.NoError(t, err)
	b, err := New(r, selector.ModeNormal, "fixed-seed", 6)
	require.NoError(t, err)

	assert.Equal(t, a.Target, b.Target)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, roster.Easy, a.Target.Difficulty())
	assert.Equal(t, 6, a.Limit)
	assert.Equal(t, "fixed-seed", a.Seed)
}

func TestNewScramble(t *testing.T) {
	r := testRoster(t)

	g, err := NewScramble(r, selector.ModeFiller, "scramble-seed")
	require.NoError(t, err)
	assert.True(t, g.Scramble)
	assert.Equal(t, 1, g.Limit)
	require.Len(t, g.Decoys, selector.DecoyCount)
	for _, d := range g.Decoys {
		assert.NotEqual(t, g.Target.Name, d.Name)
		assert.Len(t, d.Results, 9)
	}
	assert.Equal(t, "", g.Summary())

	// Only five characters are tagged E.
	_, err = NewScramble(r, selector.ModeNormal, "scramble-seed")
	assert.True(t, errors.Is(err, selector.ErrInsufficientCandidates))
}

func TestScrambleSingleGuess(t *testing.T) {
	r := testRoster(t)

	g, err := NewScramble(r, selector.ModeFiller, "one-shot")
	require.NoError(t, err)
	_, state, err := g.ApplyGuess(g.Decoys[0].Name)
	require.NoError(t, err)
	assert.Equal(t, StateLost, state)
	assert.Equal(t, GlyphOther, g.Summary())

	g, err = NewScramble(r, selector.ModeFiller, "one-shot")
	require.NoError(t, err)
	_, state, err = g.ApplyGuess(g.Target.Name)
	require.NoError(t, err)
	assert.Equal(t, StateWon, state)
	assert.Equal(t, GlyphMatch, g.Summary())
}

func TestSummary(t *testing.T) {
	r := testRoster(t)
	g := fixedGame(t, r, "Luffy", selector.ModeNormal, 0)

	_, _, err := g.ApplyGuess("Nami")
	require.NoError(t, err)
	_, _, err = g.ApplyGuess("Luffy")
	require.NoError(t, err)

	lines := strings.Split(g.Summary(), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, strings.Repeat(GlyphMatch, 9), lines[0], "newest guess first")
	assert.Equal(t,
		GlyphOther+GlyphMatch+GlyphOther+GlyphOther+GlyphUp+GlyphOther+GlyphMatch+GlyphDown+GlyphMatch,
		lines[1])
}

func TestGlyph(t *testing.T) {
	assert.Equal(t, GlyphMatch, Glyph(Result{Kind: OutcomeMatch}))
	assert.Equal(t, GlyphUp, Glyph(Result{Kind: OutcomeDirectional, Direction: DirUp}))
	assert.Equal(t, GlyphDown, Glyph(Result{Kind: OutcomeDirectional, Direction: DirDown}))
	assert.Equal(t, GlyphOther, Glyph(Result{Kind: OutcomeDirectional, Direction: DirEqual}))
	assert.Equal(t, GlyphOther, Glyph(Result{Kind: OutcomeUnknown}))
	assert.Equal(t, GlyphOther, Glyph(Result{Kind: OutcomeMismatch}))
	assert.Equal(t, "", SummarizeHistory(nil))
}

func TestStreakLimits(t *testing.T) {
	assert.Equal(t, 6, NewStreak(selector.ModeNormal, false).Limit())
	assert.Equal(t, 8, NewStreak(selector.ModeHard, false).Limit())
	assert.Equal(t, 8, NewStreak(selector.ModeFiller, false).Limit())
	assert.Equal(t, 1, NewStreak(selector.ModeNormal, true).Limit())
}

func TestStreakRounds(t *testing.T) {
	r := testRoster(t)
	s := NewStreak(selector.ModeNormal, false)

	g, err := s.nextRound(r, "round-1")
	require.NoError(t, err)
	assert.Equal(t, s.ID, g.StreakID)
	assert.Equal(t, g.ID, s.Current)
	assert.Equal(t, 6, g.Limit)

	_, err = s.nextRound(r, "round-x")
	assert.True(t, errors.Is(err, ErrRoundPending))

	// Unfinished rounds are ignored.
	require.NoError(t, s.Record(g))
	assert.Equal(t, g.ID, s.Current)

	_, _, err = g.ApplyGuess(g.Target.Name)
	require.NoError(t, err)
	require.NoError(t, s.Record(g))
	assert.Equal(t, 1, s.Count)
	assert.Equal(t, 9, s.Points)
	assert.Empty(t, s.Current)

	g, err = s.nextRound(r, "round-2")
	require.NoError(t, err)
	for _, name := range wrongNames(r, g.Target.Name)[:6] {
		_, _, err = g.ApplyGuess(name)
		require.NoError(t, err)
	}
	require.Equal(t, StateLost, g.State())
	require.NoError(t, s.Record(g))
	assert.True(t, s.Over)
	assert.Equal(t, 1, s.Count)

	_, err = s.nextRound(r, "round-3")
	assert.True(t, errors.Is(err, ErrStreakOver))
}

func TestStreakRejectsForeignGame(t *testing.T) {
	r := testRoster(t)
	s := NewStreak(selector.ModeNormal, false)
	_, err := s.nextRound(r, "round-1")
	require.NoError(t, err)

	other := fixedGame(t, r, "Luffy", selector.ModeNormal, 0)
	assert.True(t, errors.Is(s.Record(other), ErrForeignGame))
}

func TestStreakScramblePoints(t *testing.T) {
	r := testRoster(t)
	s := NewStreak(selector.ModeFiller, true)

	g, err := s.nextRound(r, "scramble-round")
	require.NoError(t, err)
	assert.True(t, g.Scramble)
	_, _, err = g.ApplyGuess(g.Target.Name)
	require.NoError(t, err)
	require.NoError(t, s.Record(g))
	assert.Equal(t, 1, s.Points)
	assert.Equal(t, 1, s.Count)
}
