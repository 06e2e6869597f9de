package sim

import (
	"hash/fnv"
	"math/rand"
)

// Subsystem name constants for the RNG streams used by schedule
// generation.
const (
	SubsystemArrivals = "arrivals"
	SubsystemCargo    = "cargo"
)

// PartitionedRNG provides isolated, deterministic RNG streams per
// subsystem. Two runs with the same master seed draw identical streams
// regardless of the order subsystems are first touched.
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine.
type PartitionedRNG struct {
	masterSeed int64
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a partitioned RNG with the given master seed.
func NewPartitionedRNG(masterSeed int64) *PartitionedRNG {
	return &PartitionedRNG{
		masterSeed: masterSeed,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the RNG for the given subsystem name, creating it
// lazily. Repeated calls with the same name return the same instance.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, exists := p.subsystems[name]; exists {
		return rng
	}
	rng := rand.New(rand.NewSource(p.deriveSeed(name)))
	p.subsystems[name] = rng
	return rng
}

// deriveSeed derives a subsystem seed from the master seed and subsystem
// name: masterSeed XOR fnv1a64(name). Hash-based derivation keeps the
// streams order-independent.
func (p *PartitionedRNG) deriveSeed(name string) int64 {
	h := fnv.New64a()
	h.Write([]byte(name))
	return p.masterSeed ^ int64(h.Sum64())
}
