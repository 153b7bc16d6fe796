// Package ids provides the id-generation strategy for orders and
// appointments. The generator is injected so tests can assert on
// deterministic ids.
package ids

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

// Generator produces ids of the form "<prefix>-<token>".
type Generator interface {
	NewID(prefix string) string
}

const (
	base36      = "0123456789abcdefghijklmnopqrstuvwxyz"
	tokenLength = 7
)

// RandGenerator produces ids with a random base36 suffix, e.g. "ord-k3f9a2x".
type RandGenerator struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

func NewRandGenerator() *RandGenerator {
	return &RandGenerator{rnd: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

func (g *RandGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	token := make([]byte, tokenLength)
	for i := range token {
		token[i] = base36[g.rnd.Intn(len(base36))]
	}
	return prefix + "-" + string(token)
}

// SeqGenerator produces monotonically numbered ids, e.g. "ord-000001".
// Used in tests and anywhere deterministic ids are needed.
type SeqGenerator struct {
	mu sync.Mutex
	n  uint64
}

func (g *SeqGenerator) NewID(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.n++
	return fmt.Sprintf("%s-%06d", prefix, g.n)
}
