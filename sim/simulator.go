// sim/simulator.go
package sim

import (
	"container/heap"

	"github.com/sirupsen/logrus"
)

// Observer receives streaming notifications as a Simulator runs, giving the
// "lazy sequence of completions" behavior described for the driver without
// requiring Run's return type to be a channel or iterator.
type Observer interface {
	OnArrival(t float64, id JobID)
	OnComplete(c Completion)
}

// Simulator is the event-driven driver described in spec §4.1: it maintains
// the event queue, advances simulated time to the next event, drains work
// from the running allocation proportional to its share, injects
// arrivals/completions into the policy, and emits completions in
// nondecreasing time order.
type Simulator struct {
	Clock float64

	eventQueue EventQueue
	remaining  map[JobID]float64
	arrival    map[JobID]float64
	allocation Allocation
	lastT      float64

	policy    Policy
	estimator Estimator
	observer  Observer

	completions []Completion
	log         *logrus.Entry
}

// NewSimulator constructs a driver over policy, estimating announced sizes
// with estimator (use IdentityEstimator for no noise). The event queue is
// seeded from workload, which may be passed in any order — the queue
// reorders by (time, kind, id) regardless of input order.
func NewSimulator(policy Policy, estimator Estimator, workload []WorkloadJob) *Simulator {
	if estimator == nil {
		estimator = IdentityEstimator
	}
	s := &Simulator{
		eventQueue: make(EventQueue, 0, len(workload)),
		remaining:  make(map[JobID]float64),
		arrival:    make(map[JobID]float64),
		allocation: Allocation{},
		policy:     policy,
		estimator:  estimator,
		log:        logrus.WithField("component", "sim"),
	}
	heap.Init(&s.eventQueue)
	for _, job := range workload {
		heap.Push(&s.eventQueue, &ArrivalEvent{time: job.ArrivalTime, Job: job})
	}
	return s
}

// SetObserver attaches an Observer for streaming OnArrival/OnComplete
// notifications during Run. Pass nil to detach.
func (s *Simulator) SetObserver(o Observer) { s.observer = o }

func (s *Simulator) logf(format string, args ...any) {
	s.log.Debugf(format, args...)
}

// Run drains the event queue to completion and returns every completion in
// nondecreasing completion-time order. On return, the remaining-work map is
// empty (spec §4.1's termination invariant) — violating this is a
// driver/policy bug and panics rather than returning a half-finished result.
func (s *Simulator) Run() []Completion {
	for s.eventQueue.Len() > 0 {
		event := heap.Pop(&s.eventQueue).(Event)
		t := event.Timestamp()
		delta := t - s.lastT

		s.debitRemaining(delta)
		event.Execute(s)
		s.Clock = t

		s.allocation = s.policy.Schedule(t)
		s.assertCapacity(s.allocation)

		if len(s.remaining) > 0 {
			s.scheduleNextCompletion(t)
		}

		s.lastT = t
	}
	if len(s.remaining) != 0 {
		panic("sim: event queue drained with jobs still remaining — policy bug")
	}
	return s.completions
}

// debitRemaining consumes remaining work according to the allocation in
// force since the last event, per spec §4.1 step 2: this is the only place
// remaining work is ever decremented.
func (s *Simulator) debitRemaining(delta float64) {
	if delta == 0 {
		return
	}
	for id, share := range s.allocation {
		if _, present := s.remaining[id]; !present {
			continue
		}
		s.remaining[id] -= delta * share
		if s.remaining[id] < -epsDriver {
			panic("sim: remaining work went negative beyond tolerance — over-allocation")
		}
	}
}

// scheduleNextCompletion predicts the earliest job completion under the
// current allocation and, if it would occur before any already-queued
// event, pushes a CompleteEvent for it (spec §4.1 step 5). At most one
// "live" predicted completion is ever outstanding: it is consumed on the
// next iteration before this method could push another for the same job.
func (s *Simulator) scheduleNextCompletion(t float64) {
	if len(s.allocation) == 0 {
		panic("sim: jobs remain but schedule assigned zero capacity — policy bug")
	}
	var (
		best    JobID
		bestDt  float64
		haveAny bool
	)
	for id, share := range s.allocation {
		rem, present := s.remaining[id]
		if !present || share <= 0 {
			continue
		}
		dt := rem / share
		if !haveAny || dt < bestDt || (dt == bestDt && id < best) {
			best, bestDt, haveAny = id, dt, true
		}
	}
	if !haveAny {
		return
	}
	nextComplete := t + bestDt
	if next := s.eventQueue.Peek(); next == nil || next.Timestamp() > nextComplete {
		heap.Push(&s.eventQueue, &CompleteEvent{time: nextComplete, jobid: best})
	}
}

func (s *Simulator) assertCapacity(a Allocation) {
	var total float64
	for _, share := range a {
		total += share
	}
	if total > 1+epsPolicy {
		panic("sim: allocation exceeds unit capacity — policy bug")
	}
	if len(s.remaining) > 0 && total < 1-epsPolicy {
		panic("sim: allocation under-utilizes capacity while jobs remain — policy bug")
	}
}
