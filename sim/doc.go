// Package sim provides the core discrete-event simulation engine for schedsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - job.go: the JobID/WorkloadJob/Completion/Allocation types and the Estimator function type
//   - event.go: the Event types that drive the simulation (Arrival, Complete) and the event heap
//   - simulator.go: the event loop that interleaves arrivals, completions, and policy decisions
//
// # Architecture
//
// The sim package defines the Policy interface and the driver; concrete
// scheduling policies live in sim/policy and register themselves into this
// package via an init() function that sets NewPolicyFunc, the same
// registration-via-init() pattern this codebase has always used to bridge
// pluggable concerns across a package boundary (see sim/policy/register.go).
// Production code imports sim/policy for its side-effecting init(); this
// package's own tests use a blank import for the same reason.
//
// # Key Interfaces
//
//   - Policy: Enqueue/Dequeue/Schedule/NextInternalEvent — the four
//     operations every scheduling policy implements.
//   - Observer: optional OnArrival/OnComplete hooks for streaming
//     consumption of a running Simulator without changing Run's signature.
//
// # Determinism
//
// Given the same workload, policy, and PartitionedRNG-derived estimator
// noise, Simulator.Run produces bit-for-bit identical output. No goroutines,
// no wall-clock reads, no global RNG.
package sim
