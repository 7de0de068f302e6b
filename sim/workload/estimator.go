package workload

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/jobsched/schedsim/sim"
)

// NewEstimator builds a sim.Estimator from cfg, drawing any noise from
// rng (use PartitionedRNG.ForSubsystem(sim.SubsystemEstimator) so noise
// never perturbs the arrival sequence). An empty or "identity" kind
// announces the true size unmodified.
func NewEstimator(cfg sim.EstimatorConfig, rng *rand.Rand) (sim.Estimator, error) {
	switch cfg.Kind {
	case "", "identity":
		return sim.IdentityEstimator, nil
	case "lognormal":
		return lognormalEstimator(cfg.Sigma, rng), nil
	case "normal":
		return normalEstimator(cfg.Sigma, rng), nil
	default:
		return nil, fmt.Errorf("workload: unknown estimator kind %q", cfg.Kind)
	}
}

// lognormalEstimator multiplies the true size by exp(N(0, sigma)), so the
// announced size is always positive and unbiased in log-space.
func lognormalEstimator(sigma float64, rng *rand.Rand) sim.Estimator {
	return func(trueSize float64) float64 {
		return trueSize * math.Exp(rng.NormFloat64()*sigma)
	}
}

// normalEstimator multiplies the true size by (1 + N(0, sigma)), which can
// go negative for large sigma — callers choosing this estimator accept
// that an announced size may be non-positive.
func normalEstimator(sigma float64, rng *rand.Rand) sim.Estimator {
	return func(trueSize float64) float64 {
		return trueSize * (1 + sigma*rng.NormFloat64())
	}
}
