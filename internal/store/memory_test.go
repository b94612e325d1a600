package store

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/faustdle/internal/game"
	"github.com/robalobadob/faustdle/internal/selector"
)

func TestGameRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	g := &game.Game{ID: "g1", Mode: selector.ModeNormal}
	require.NoError(t, st.Save(ctx, g))

	got, err := st.Get(ctx, "g1")
	require.NoError(t, err)
	assert.Same(t, g, got)

	_, err = st.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestStreakRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	s := game.NewStreak(selector.ModeHard, false)
	require.NoError(t, st.SaveStreak(ctx, s))

	got, err := st.GetStreak(ctx, s.ID)
	require.NoError(t, err)
	assert.Same(t, s, got)

	_, err = st.GetStreak(ctx, "g1")
	assert.True(t, errors.Is(err, ErrNotFound))

	games, streaks := st.Len()
	assert.Equal(t, 0, games)
	assert.Equal(t, 1, streaks)
}

func TestSaveHonoursCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	st := NewMemoryStore()
	assert.ErrorIs(t, st.Save(ctx, &game.Game{ID: "g"}), context.Canceled)
	assert.ErrorIs(t, st.SaveStreak(ctx, &game.Streak{ID: "s"}), context.Canceled)
}

func TestConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	st := NewMemoryStore()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			id := fmt.Sprintf("g%d", i)
			_ = st.Save(ctx, &game.Game{ID: id})
			_, _ = st.Get(ctx, id)
		}(i)
	}
	wg.Wait()

	games, _ := st.Len()
	assert.Equal(t, 50, games)
}
