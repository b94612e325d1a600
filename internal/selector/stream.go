package selector

import (
	"crypto/sha256"
	"encoding/binary"
	"math"
	"math/rand"
)

// Source is the uniform [0,1) generator the selection algorithms consume.
// *Stream is the production implementation; tests may script their own.
type Source interface {
	Float64() float64
}

// Stream is a deterministic pseudo-random stream derived from a seed string.
// The same seed always yields the same sequence. A Stream is owned by a
// single call and must not be shared between goroutines.
type Stream struct {
	rng *rand.Rand
}

// NewStream seeds a fresh stream from seed.
// The seed string is hashed with SHA-256 and the first 8 bytes become the
// math/rand source seed.
func NewStream(seed string) *Stream {
	sum := sha256.Sum256([]byte(seed))
	n := int64(binary.BigEndian.Uint64(sum[:8]))
	return &Stream{rng: rand.New(rand.NewSource(n))}
}

// Float64 returns the next value in [0,1).
func (s *Stream) Float64() float64 { return s.rng.Float64() }

// index draws floor(src() * n).
func index(src Source, n int) int {
	i := int(math.Floor(src.Float64() * float64(n)))
	if i >= n { // guards against a misbehaving Source returning 1.0
		i = n - 1
	}
	return i
}
