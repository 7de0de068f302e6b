// cmd/root.go
package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jobsched/schedsim/sim"
	_ "github.com/jobsched/schedsim/sim/policy"
	"github.com/jobsched/schedsim/sim/workload"
)

var (
	configPath  string
	policyName  string
	numJobs     int
	arrivalRate float64
	sizeShape   float64
	sizeScale   float64
	estimator   string
	sigma       float64
	seed        int64
	logLevel    string
)

var rootCmd = &cobra.Command{
	Use:   "schedsim",
	Short: "Discrete-event simulator for single-server job-scheduling policies",
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run a simulation",
	RunE: func(cmd *cobra.Command, args []string) error {
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			return err
		}
		logrus.SetLevel(level)

		bundle, err := loadBundle()
		if err != nil {
			return err
		}
		if err := bundle.Validate(); err != nil {
			return err
		}

		logrus.Infof("policy=%s num_jobs=%d arrival_rate=%.4f estimator=%s seed=%d",
			bundle.Policy, bundle.Workload.NumJobs, bundle.Workload.ArrivalRate, bundle.Estimator.Kind, bundle.Workload.Seed)

		pol, err := sim.NewPolicy(bundle.Policy)
		if err != nil {
			return err
		}

		workloadCfg := sim.WorkloadConfig{
			NumJobs:     bundle.Workload.NumJobs,
			ArrivalRate: bundle.Workload.ArrivalRate,
			SizeShape:   bundle.Workload.SizeShape,
			SizeScale:   bundle.Workload.SizeScale,
			Seed:        bundle.Workload.Seed,
		}
		jobs := workload.Generate(workloadCfg)

		rng := sim.NewPartitionedRNG(sim.NewSimulationKey(bundle.Workload.Seed)).ForSubsystem(sim.SubsystemEstimator)
		est, err := workload.NewEstimator(bundle.Estimator, rng)
		if err != nil {
			return err
		}

		simulator := sim.NewSimulator(pol, est, jobs)
		completions := simulator.Run()
		metrics := sim.ComputeMetrics(completions, jobs)
		metrics.Print()
		logrus.Info("simulation complete")
		return nil
	},
}

// loadBundle builds a RunBundle either from --config (if given, every other
// flag is ignored) or entirely from individual flags.
func loadBundle() (*sim.RunBundle, error) {
	if configPath != "" {
		return sim.LoadRunBundle(configPath)
	}
	return &sim.RunBundle{
		Policy: policyName,
		Workload: sim.WorkloadYAML{
			NumJobs:     numJobs,
			ArrivalRate: arrivalRate,
			SizeShape:   sizeShape,
			SizeScale:   sizeScale,
			Seed:        seed,
		},
		Estimator: sim.EstimatorConfig{Kind: estimator, Sigma: sigma},
	}, nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "path to a YAML run bundle (overrides other flags)")
	runCmd.Flags().StringVar(&policyName, "policy", "ps", "scheduling policy: "+joinPolicyNames())
	runCmd.Flags().IntVar(&numJobs, "num-jobs", 1000, "number of jobs to generate")
	runCmd.Flags().Float64Var(&arrivalRate, "rate", 0.8, "mean arrivals per unit time (Poisson process)")
	runCmd.Flags().Float64Var(&sizeShape, "size-shape", 1.0, "Weibull shape parameter for true job size")
	runCmd.Flags().Float64Var(&sizeScale, "size-scale", 1.0, "Weibull scale parameter for true job size")
	runCmd.Flags().StringVar(&estimator, "estimator", "identity", "size estimator: identity, lognormal, normal")
	runCmd.Flags().Float64Var(&sigma, "sigma", 0.0, "noise scale for the lognormal/normal estimator")
	runCmd.Flags().Int64Var(&seed, "seed", 1, "master seed for workload generation and estimator noise")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
}

func joinPolicyNames() string {
	out := ""
	for i, n := range sim.ValidPolicyNames {
		if i > 0 {
			out += ", "
		}
		out += n
	}
	return out
}
