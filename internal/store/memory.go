// internal/store/memory.go
//
// In-memory session store for games and streaks.
//
// Characteristics:
//   - Stores *game.Game and *game.Streak values keyed by ID in maps.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts.
//   - Missing IDs return ErrNotFound.

package store

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/robalobadob/faustdle/internal/game"
)

// ErrNotFound is returned by Get and GetStreak for unknown IDs.
var ErrNotFound = errors.New("not found")

// Store defines the session persistence interface.
type Store interface {
	// Save persists or updates a game state.
	Save(ctx context.Context, g *game.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// SaveStreak persists or updates a streak.
	SaveStreak(ctx context.Context, s *game.Streak) error

	// GetStreak retrieves a streak by ID.
	GetStreak(ctx context.Context, id string) (*game.Streak, error)

	// Len reports the number of stored games and streaks.
	Len() (games, streaks int)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu      sync.RWMutex            // guards both maps
	games   map[string]*game.Game   // keyed by Game.ID
	streaks map[string]*game.Streak // keyed by Streak.ID
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{
		games:   make(map[string]*game.Game),
		streaks: make(map[string]*game.Streak),
	}
}

// Save adds or updates the game in the map.
func (m *memory) Save(ctx context.Context, g *game.Game) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = g
	return nil
}

// Get looks up a game by ID.
func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if g, ok := m.games[id]; ok {
		return g, nil
	}
	return nil, fmt.Errorf("game %q: %w", id, ErrNotFound)
}

func (m *memory) SaveStreak(ctx context.Context, s *game.Streak) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.streaks[s.ID] = s
	return nil
}

func (m *memory) GetStreak(ctx context.Context, id string) (*game.Streak, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if s, ok := m.streaks[id]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("streak %q: %w", id, ErrNotFound)
}

func (m *memory) Len() (int, int) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games), len(m.streaks)
}
