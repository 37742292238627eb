package sim

import (
	"hash/fnv"
	"math/rand"
)

// ReplayKey uniquely identifies a reproducible fragmentation run. Two runs
// with the same ReplayKey and identical configuration MUST produce
// bit-for-bit identical timelines.
type ReplayKey int64

// NewReplayKey creates a ReplayKey from a seed value.
func NewReplayKey(seed int64) ReplayKey {
	return ReplayKey(seed)
}

const (
	// SubsystemFragmentation draws the allocation/deallocation events of a
	// fragmentation timeline.
	SubsystemFragmentation = "fragmentation"

	// SubsystemScenario draws any randomized inputs a scenario preset asks
	// for, such as generated reference strings.
	SubsystemScenario = "scenario"
)

// PartitionedRNG hands out deterministic, isolated RNG instances per
// subsystem, derived as seed XOR fnv1a64(subsystemName). Drawing from one
// subsystem never perturbs another, so adding randomness to the scenario
// layer cannot shift an existing fragmentation replay.
//
// Not safe for concurrent use; each simulation call owns its own instance.
type PartitionedRNG struct {
	key        ReplayKey
	subsystems map[string]*rand.Rand
}

// NewPartitionedRNG creates a PartitionedRNG from a ReplayKey.
func NewPartitionedRNG(key ReplayKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:        key,
		subsystems: make(map[string]*rand.Rand),
	}
}

// ForSubsystem returns the deterministically-seeded RNG for the named
// subsystem. The same name always returns the same cached *rand.Rand.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(int64(p.key) ^ fnv1a64(name)))
	p.subsystems[name] = rng
	return rng
}

// Key returns the ReplayKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() ReplayKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
