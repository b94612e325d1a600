package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/roster"
	"github.com/robalobadob/faustdle/internal/selector"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("ROSTER_FILE", "")
	t.Setenv("LOG_LEVEL", "error")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestPickIsDeterministic(t *testing.T) {
	rs, err := roster.Embedded()
	require.NoError(t, err)
	want, err := selector.SelectTarget(rs, selector.ModeHard, "cli-seed")
	require.NoError(t, err)

	out, err := run(t, "pick", "--mode", "hard", "--seed", "cli-seed")
	require.NoError(t, err)
	assert.Equal(t, want.Name+"\thard\tcli-seed\n", out)
}

func TestCompare(t *testing.T) {
	out, err := run(t, "compare", "Luffy", "luffy")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 9)
	for _, l := range lines {
		assert.True(t, strings.HasPrefix(l, game.GlyphMatch), l)
	}

	_, err = run(t, "compare", "Luffy", "Nobody")
	assert.True(t, errors.Is(err, game.ErrUnknownName))

	_, err = run(t, "compare", "Luffy")
	assert.Error(t, err)
}

func TestScrambleCommand(t *testing.T) {
	out, err := run(t, "scramble", "--seed", "cli-scramble", "--reveal")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 1+selector.DecoyCount+1)
	assert.Equal(t, "seed cli-scramble (normal)", lines[0])
	assert.True(t, strings.HasPrefix(lines[len(lines)-1], "answer: "))
}

func TestSeedCommand(t *testing.T) {
	out, err := run(t, "seed", "mugiwara", "--mode", "filler")
	require.NoError(t, err)
	seed := strings.TrimSpace(out)

	rs, err := roster.Embedded()
	require.NoError(t, err)
	got, err := selector.SelectTarget(rs, selector.ModeFiller, seed)
	require.NoError(t, err)
	assert.Equal(t, "Luffy", got.Name)

	_, err = run(t, "seed", "Apis", "--mode", "normal", "--attempts", "5")
	assert.True(t, errors.Is(err, selector.ErrSeedNotFound))
}

func TestDailyCommand(t *testing.T) {
	t.Setenv("DAILY_EPOCH", "2025-03-01")
	out, err := run(t, "daily")
	require.NoError(t, err)
	assert.Contains(t, out, "\tdaily-")
	assert.True(t, strings.HasPrefix(out, "#"))
}

func TestBadConfig(t *testing.T) {
	t.Setenv("SEED_SEARCH_ATTEMPTS", "-3")
	_, err := run(t, "pick")
	assert.Error(t, err)
}
