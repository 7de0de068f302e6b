// Package workload generates synthetic job arrivals and wires size
// estimators, the two pieces of state a simulation run needs beyond a
// choice of policy.
package workload

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/jobsched/schedsim/sim"
)

// Generate produces cfg.NumJobs synthetic jobs: Poisson arrivals (that is,
// exponentially distributed interarrival times at rate cfg.ArrivalRate)
// and Weibull-distributed true job sizes shaped by cfg.SizeShape and
// cfg.SizeScale. Deterministic given cfg.Seed — the same seed always
// produces the same workload, independent of whichever policy or
// estimator later consumes it.
func Generate(cfg sim.WorkloadConfig) []sim.WorkloadJob {
	src := sim.NewPartitionedRNG(sim.NewSimulationKey(cfg.Seed)).ForSubsystemSource(sim.SubsystemWorkload)

	interarrival := distuv.Exponential{Rate: cfg.ArrivalRate, Src: src}
	size := distuv.Weibull{K: cfg.SizeShape, Lambda: cfg.SizeScale, Src: src}

	jobs := make([]sim.WorkloadJob, cfg.NumJobs)
	t := 0.0
	for i := 0; i < cfg.NumJobs; i++ {
		t += interarrival.Rand()
		jobs[i] = sim.WorkloadJob{
			ID:          sim.JobID(fmt.Sprintf("job-%d", i)),
			ArrivalTime: t,
			TrueSize:    size.Rand(),
		}
	}
	return jobs
}
