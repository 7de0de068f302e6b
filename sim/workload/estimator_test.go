package workload

import (
	"math/rand"
	"testing"

	"github.com/jobsched/schedsim/sim"
)

func TestNewEstimator_Identity_ReturnsTrueSizeUnmodified(t *testing.T) {
	est, err := NewEstimator(sim.EstimatorConfig{Kind: "identity"}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got := est(5.0); got != 5.0 {
		t.Errorf("identity estimator: got %g, want 5.0", got)
	}
}

func TestNewEstimator_EmptyKind_DefaultsToIdentity(t *testing.T) {
	est, err := NewEstimator(sim.EstimatorConfig{}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatal(err)
	}
	if got := est(3.0); got != 3.0 {
		t.Errorf("default estimator: got %g, want 3.0", got)
	}
}

func TestNewEstimator_Lognormal_AlwaysPositive(t *testing.T) {
	est, err := NewEstimator(sim.EstimatorConfig{Kind: "lognormal", Sigma: 0.5}, rand.New(rand.NewSource(2)))
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 100; i++ {
		if got := est(2.0); got <= 0 {
			t.Fatalf("lognormal estimate must stay positive, got %g", got)
		}
	}
}

func TestNewEstimator_Lognormal_ZeroSigma_IsIdentity(t *testing.T) {
	// sigma=0 means exp(N(0,0))=exp(0)=1 always, so the estimate collapses
	// to the true size exactly.
	est, err := NewEstimator(sim.EstimatorConfig{Kind: "lognormal", Sigma: 0}, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatal(err)
	}
	if got := est(7.0); got != 7.0 {
		t.Errorf("zero-sigma lognormal: got %g, want 7.0", got)
	}
}

func TestNewEstimator_UnknownKind_Errors(t *testing.T) {
	_, err := NewEstimator(sim.EstimatorConfig{Kind: "bogus"}, rand.New(rand.NewSource(1)))
	if err == nil {
		t.Fatal("expected an error for an unknown estimator kind")
	}
}
