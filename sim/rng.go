package sim

import (
	"hash/fnv"
	"math/rand"

	exprand "golang.org/x/exp/rand"
)

// === SimulationKey ===

// SimulationKey uniquely identifies a reproducible simulation run.
// Two simulations with the same SimulationKey and identical configuration
// MUST produce bit-for-bit identical results — this is how schedsim
// resolves the Design Notes' "Global RNG" concern: the original simulator's
// noise generators depend on a process-wide random source, which a
// concurrent or replayed rewrite cannot rely on.
type SimulationKey int64

// NewSimulationKey creates a SimulationKey from a seed value.
func NewSimulationKey(seed int64) SimulationKey {
	return SimulationKey(seed)
}

// === Subsystem Constants ===

const (
	// SubsystemWorkload is the RNG subsystem for workload generation
	// (arrival process and true job sizes). Uses the master seed
	// directly so a bare --seed flag reproduces a whole run's arrivals.
	SubsystemWorkload = "workload"

	// SubsystemEstimator is the RNG subsystem for size-estimation noise
	// (sim/workload's log-normal and normal estimators).
	SubsystemEstimator = "estimator"
)

// === PartitionedRNG ===

// PartitionedRNG provides deterministic, isolated RNG instances per
// subsystem, so that adding estimation noise never perturbs the arrival
// sequence (or vice versa) even though both derive from one seed.
//
// Derivation formula:
//   - For SubsystemWorkload: uses masterSeed directly (so a single --seed
//     flag fully reproduces a run's arrivals independent of which policy
//     or estimator is under test)
//   - For all other subsystems: masterSeed XOR fnv1a64(subsystemName)
//
// Thread-safety: NOT thread-safe. Must be called from a single goroutine —
// the simulator never needs more than one (spec §5: single-threaded).
type PartitionedRNG struct {
	key          SimulationKey
	subsystems   map[string]*rand.Rand
	expSubsystem map[string]exprand.Source
}

// NewPartitionedRNG creates a PartitionedRNG from a SimulationKey.
func NewPartitionedRNG(key SimulationKey) *PartitionedRNG {
	return &PartitionedRNG{
		key:          key,
		subsystems:   make(map[string]*rand.Rand),
		expSubsystem: make(map[string]exprand.Source),
	}
}

// derivedSeed computes the subsystem's seed per the formula documented
// above, shared between ForSubsystem and ForSubsystemSource so both RNG
// flavors for the same subsystem name are seeded identically.
func (p *PartitionedRNG) derivedSeed(name string) int64 {
	if name == SubsystemWorkload {
		return int64(p.key)
	}
	return int64(p.key) ^ fnv1a64(name)
}

// ForSubsystem returns a deterministically-seeded RNG for the named subsystem.
// The same subsystem name always returns the same *rand.Rand instance (cached).
// Never returns nil.
func (p *PartitionedRNG) ForSubsystem(name string) *rand.Rand {
	if rng, ok := p.subsystems[name]; ok {
		return rng
	}
	rng := rand.New(rand.NewSource(p.derivedSeed(name)))
	p.subsystems[name] = rng
	return rng
}

// ForSubsystemSource returns a deterministically-seeded golang.org/x/exp/rand
// Source for the named subsystem, seeded identically to ForSubsystem's
// *math/rand.Rand for the same name. gonum.org/v1/gonum/stat/distuv's
// distributions take their Src from this package rather than math/rand,
// since math/rand.Rand.Seed's int64 signature does not satisfy
// exprand.Source's Seed(uint64) method. The same subsystem name always
// returns the same Source instance (cached). Never returns nil.
func (p *PartitionedRNG) ForSubsystemSource(name string) exprand.Source {
	if src, ok := p.expSubsystem[name]; ok {
		return src
	}
	src := exprand.NewSource(uint64(p.derivedSeed(name)))
	p.expSubsystem[name] = src
	return src
}

// Key returns the SimulationKey used to create this PartitionedRNG.
func (p *PartitionedRNG) Key() SimulationKey {
	return p.key
}

// fnv1a64 computes a 64-bit FNV-1a hash of the input string.
func fnv1a64(s string) int64 {
	h := fnv.New64a()
	h.Write([]byte(s))
	return int64(h.Sum64())
}
