// internal/httpserver/locks.go
//
// Per-ID locks serializing read-modify-write cycles on stored games and
// streaks. Entries are reference counted and dropped once unused, so the
// table only holds IDs with requests in flight.

package httpserver

import "sync"

type keyedLock struct {
	mu   sync.Mutex
	refs int // guarded by keyedLocks.mu
}

type keyedLocks struct {
	mu sync.Mutex
	m  map[string]*keyedLock
}

func newKeyedLocks() *keyedLocks {
	return &keyedLocks{m: make(map[string]*keyedLock)}
}

// lock blocks until key is free and returns the matching unlock.
func (k *keyedLocks) lock(key string) (unlock func()) {
	k.mu.Lock()
	l, ok := k.m[key]
	if !ok {
		l = &keyedLock{}
		k.m[key] = l
	}
	l.refs++
	k.mu.Unlock()

	l.mu.Lock()
	return func() {
		l.mu.Unlock()
		k.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(k.m, key)
		}
		k.mu.Unlock()
	}
}

// size reports how many keys are currently held or awaited.
func (k *keyedLocks) size() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.m)
}

func gameKey(id string) string   { return "game:" + id }
func streakKey(id string) string { return "streak:" + id }
