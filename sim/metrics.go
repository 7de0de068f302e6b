// Tracks per-job sojourn time statistics for final reporting.

package sim

import (
	"fmt"
	"sort"
)

// Metrics aggregates per-job sojourn times computed from a completed run's
// completions and arrival times. Useful for comparing scheduling policies
// against each other on the same workload.
type Metrics struct {
	Completed int       // number of jobs completed
	Sojourns  []float64 // sojourn time (completion - arrival) per completed job, in completion order
}

// ComputeMetrics derives Metrics from a Simulator's completions and the
// workload's arrival times.
func ComputeMetrics(completions []Completion, workload []WorkloadJob) *Metrics {
	arrival := make(map[JobID]float64, len(workload))
	for _, job := range workload {
		arrival[job.ID] = job.ArrivalTime
	}
	m := &Metrics{Completed: len(completions), Sojourns: make([]float64, 0, len(completions))}
	for _, c := range completions {
		m.Sojourns = append(m.Sojourns, c.Sojourn(arrival[c.ID]))
	}
	return m
}

// Mean returns the mean sojourn time, or 0 if no jobs completed.
func (m *Metrics) Mean() float64 {
	if len(m.Sojourns) == 0 {
		return 0
	}
	var sum float64
	for _, s := range m.Sojourns {
		sum += s
	}
	return sum / float64(len(m.Sojourns))
}

// Percentile returns the p-th percentile (0-100) sojourn time: the element
// at index floor(p/100 * (n-1)) of a sorted copy of Sojourns, with no
// interpolation between neighboring values.
func (m *Metrics) Percentile(p float64) float64 {
	if len(m.Sojourns) == 0 {
		return 0
	}
	sorted := append([]float64(nil), m.Sojourns...)
	sort.Float64s(sorted)
	idx := int(p / 100 * float64(len(sorted)-1))
	return sorted[idx]
}

// Print displays aggregated metrics at the end of the simulation.
func (m *Metrics) Print() {
	fmt.Println("=== Simulation Metrics ===")
	fmt.Printf("Completed Jobs   : %d\n", m.Completed)
	if m.Completed > 0 {
		fmt.Printf("Mean Sojourn     : %.4f\n", m.Mean())
		fmt.Printf("P50 Sojourn      : %.4f\n", m.Percentile(50))
		fmt.Printf("P99 Sojourn      : %.4f\n", m.Percentile(99))
	}
}
