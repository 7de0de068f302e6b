package sim

import (
	"bytes"
	"fmt"
	"math"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// RunBundle holds unified run configuration, loadable from a YAML file:
// which policy to simulate, how to generate the workload, and how to
// estimate announced sizes.
type RunBundle struct {
	Policy    string          `yaml:"policy"`
	Workload  WorkloadYAML    `yaml:"workload"`
	Estimator EstimatorConfig `yaml:"estimator"`
}

// WorkloadYAML mirrors WorkloadConfig for YAML decoding.
type WorkloadYAML struct {
	NumJobs     int     `yaml:"num_jobs"`
	ArrivalRate float64 `yaml:"arrival_rate"`
	SizeShape   float64 `yaml:"size_shape"`
	SizeScale   float64 `yaml:"size_scale"`
	Seed        int64   `yaml:"seed"`
}

// LoadRunBundle reads and parses a YAML run configuration file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadRunBundle(path string) (*RunBundle, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading run config: %w", err)
	}
	var bundle RunBundle
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&bundle); err != nil {
		return nil, fmt.Errorf("parsing run config: %w", err)
	}
	return &bundle, nil
}

// Valid estimator kind registry. Unexported to prevent external mutation.
var validEstimatorKinds = map[string]bool{"": true, "identity": true, "lognormal": true, "normal": true}

// IsValidEstimatorKind returns true if name is a recognized estimator kind.
func IsValidEstimatorKind(name string) bool { return validEstimatorKinds[name] }

// Validate checks that the policy name, estimator kind, and numeric
// parameters in the bundle are all valid.
func (b *RunBundle) Validate() error {
	if !IsValidPolicyName(b.Policy) {
		return fmt.Errorf("unknown policy %q; valid options: %s", b.Policy, strings.Join(ValidPolicyNames, ", "))
	}
	if !validEstimatorKinds[b.Estimator.Kind] {
		return fmt.Errorf("unknown estimator kind %q; valid options: identity, lognormal, normal", b.Estimator.Kind)
	}
	if err := validateFloat("workload.arrival_rate", b.Workload.ArrivalRate); err != nil {
		return err
	}
	if err := validateFloat("workload.size_shape", b.Workload.SizeShape); err != nil {
		return err
	}
	if err := validateFloat("workload.size_scale", b.Workload.SizeScale); err != nil {
		return err
	}
	if err := validateFloat("estimator.sigma", b.Estimator.Sigma); err != nil {
		return err
	}
	if b.Workload.NumJobs < 0 {
		return fmt.Errorf("workload.num_jobs must be non-negative, got %d", b.Workload.NumJobs)
	}
	return nil
}

// validateFloat checks that a float parameter is non-negative and finite.
func validateFloat(name string, val float64) error {
	if math.IsNaN(val) || math.IsInf(val, 0) {
		return fmt.Errorf("%s must be a finite number, got %f", name, val)
	}
	if val < 0 {
		return fmt.Errorf("%s must be non-negative, got %f", name, val)
	}
	return nil
}
