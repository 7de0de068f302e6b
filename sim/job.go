package sim

// JobID uniquely identifies a job within a single simulation run.
type JobID string

// WorkloadJob is a single arrival from a workload source: the triple
// (jobid, arrival_time, true_size). Workload sources are external to this
// package (see sim/workload for a concrete default).
type WorkloadJob struct {
	ID          JobID
	ArrivalTime float64
	TrueSize    float64
}

// Estimator maps a job's true size to the size announced to the scheduler.
// Any randomness is closed over a caller-supplied RNG: the noisy estimators
// in sim/workload draw fresh noise on every call, so repeated calls with the
// same true size return different estimates, reproducibly for a given seed.
type Estimator func(trueSize float64) float64

// IdentityEstimator announces the true size unmodified.
func IdentityEstimator(trueSize float64) float64 { return trueSize }

// Allocation maps a present job to its fractional share of the unit
// resource. Values lie in (0,1]; for every policy in this package, the sum
// is <= 1 always and == 1 whenever at least one job is present.
type Allocation map[JobID]float64

// Completion is the driver's output for one finished job: the simulated
// time at which it completed and its identifier.
type Completion struct {
	Time float64
	ID   JobID
}

// Sojourn returns the completion's sojourn time given the job's arrival
// time (completion_time - arrival_time).
func (c Completion) Sojourn(arrival float64) float64 { return c.Time - arrival }
