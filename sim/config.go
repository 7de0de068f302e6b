package sim

// epsPolicy is the policy-level floating tolerance (spec §6), equal to
// sim/policy's own eps constant (which FSP/SRPT+PS use when deciding a job
// is "effectively" finished); in this package it is the tolerance Simulator
// uses when checking capacity bounds (§8 properties 2-3).
const epsPolicy = 1e-6

// epsDriver is the driver-level assertion tolerance (spec §6): how far
// below zero remaining work may drift from floating-point error before the
// driver treats it as an over-allocation bug (spec §7).
const epsDriver = 1e-3

// RunConfig groups the parameters needed to build and execute one
// simulation run end to end: which policy, which estimator, and the
// workload to replay.
type RunConfig struct {
	PolicyName string        // one of ValidPolicyNames
	Workload   []WorkloadJob // nondecreasing arrival order not required; driver sorts
	Estimator  Estimator     // nil defaults to IdentityEstimator
}

// WorkloadConfig groups synthetic workload generation parameters consumed
// by sim/workload's default generator. A zero NumJobs makes that generator
// return an empty workload.
type WorkloadConfig struct {
	NumJobs     int     // number of jobs to generate
	ArrivalRate float64 // mean arrivals per unit time (Poisson process)
	SizeShape   float64 // Weibull shape parameter for true job size
	SizeScale   float64 // Weibull scale parameter for true job size
	Seed        int64   // PartitionedRNG master seed
}

// EstimatorConfig groups size-estimation noise parameters consumed by
// sim/workload's estimator constructors.
type EstimatorConfig struct {
	Kind  string  // "identity" (default), "lognormal", or "normal"
	Sigma float64 // noise scale for lognormal/normal
}
