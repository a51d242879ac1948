package faults

import (
	"math/rand"
	"sync"

	"pactle_quotations/internal/usecase/interfaces"
)

// DefaultWriteFailureRate matches the backend flakiness the dashboard is
// exercised against: roughly one write in ten fails.
const DefaultWriteFailureRate = 0.1

// RandomInjector fails writes at a fixed probability. It exists so the demo
// deployment exercises rollback paths; tests should use a scripted strategy
// instead of relying on chance.
type RandomInjector struct {
	rate float64

	mu  sync.Mutex
	rng *rand.Rand
}

var _ interfaces.IFaultInjector = (*RandomInjector)(nil)

func NewRandomInjector(rate float64, seed int64) *RandomInjector {
	if rate < 0 {
		rate = 0
	}
	if rate > 1 {
		rate = 1
	}
	return &RandomInjector{rate: rate, rng: rand.New(rand.NewSource(seed))}
}

func (i *RandomInjector) ShouldFail() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.rng.Float64() < i.rate
}

// None never fails. Default for wiring that wants real backend semantics
// only.
type None struct{}

var _ interfaces.IFaultInjector = None{}

func (None) ShouldFail() bool { return false }
