// Package random provides the injectable randomness used for shuffles,
// draws and pact dealing.
package random

import (
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

//go:generate mockgen -package=mocks -destination=mocks/mock_source.go github.com/KirkDiggler/oraculo/internal/random Source

// Source is the random source every engine component draws from
type Source interface {
	// IntN returns a uniform integer in [0, n). n must be positive.
	IntN(n int) int

	// Shuffle permutes n elements using swap
	Shuffle(n int, swap func(i, j int))
}

// Config for the random source
type Config struct {
	// Optional seed for reproducible sessions and tests
	Seed int64
}

// Generator is a seeded PCG source
type Generator struct {
	random *rand.Rand
}

// New creates a new random source. A zero seed draws one from crypto/rand.
func New(cfg *Config) *Generator {
	var seed int64
	if cfg != nil && cfg.Seed != 0 {
		seed = cfg.Seed
	} else {
		seed = newSeed()
	}

	return &Generator{
		random: rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// IntN returns a uniform integer in [0, n)
func (g *Generator) IntN(n int) int {
	return g.random.IntN(n)
}

// Shuffle permutes n elements uniformly
func (g *Generator) Shuffle(n int, swap func(i, j int)) {
	g.random.Shuffle(n, swap)
}

func newSeed() int64 {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return int64(rand.Uint64())
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

// Pick returns a uniformly chosen element of items. It panics on an empty slice.
func Pick[T any](src Source, items []T) T {
	return items[src.IntN(len(items))]
}

// Shuffled returns a shuffled copy of items
func Shuffled[T any](src Source, items []T) []T {
	out := make([]T, len(items))
	copy(out, items)
	src.Shuffle(len(out), func(i, j int) {
		out[i], out[j] = out[j], out[i]
	})
	return out
}
