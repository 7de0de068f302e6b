// sim/event.go
package sim

// EventKind distinguishes the two event types the driver understands.
// Ordering matters: at equal timestamps, ArrivalKind sorts before
// CompleteKind, mirroring the original simulator's (t, event_type, data)
// tuple ordering where ARRIVAL=0 < COMPLETE=1.
type EventKind int

const (
	ArrivalKind EventKind = iota
	CompleteKind
)

// Event is a tagged, timestamped record the driver pops in heap order.
type Event interface {
	Timestamp() float64
	Kind() EventKind
	// ID is the event's tie-breaking payload: the job it concerns.
	// Ties at equal (Timestamp, Kind) are broken by ID.
	ID() JobID
	Execute(sim *Simulator)
}

// ArrivalEvent injects a job's arrival into the simulator.
type ArrivalEvent struct {
	time float64
	Job  WorkloadJob
}

func (e *ArrivalEvent) Timestamp() float64 { return e.time }
func (e *ArrivalEvent) Kind() EventKind    { return ArrivalKind }
func (e *ArrivalEvent) ID() JobID          { return e.Job.ID }

func (e *ArrivalEvent) Execute(s *Simulator) {
	s.logf("arrival %s at t=%g size=%g", e.Job.ID, e.time, e.Job.TrueSize)
	s.remaining[e.Job.ID] = e.Job.TrueSize
	s.arrival[e.Job.ID] = e.time
	if s.observer != nil {
		s.observer.OnArrival(e.time, e.Job.ID)
	}
	s.policy.Enqueue(e.time, e.Job.ID, s.estimator(e.Job.TrueSize))
}

// CompleteEvent signals that a job's remaining work has reached zero.
type CompleteEvent struct {
	time  float64
	jobid JobID
}

func (e *CompleteEvent) Timestamp() float64 { return e.time }
func (e *CompleteEvent) Kind() EventKind    { return CompleteKind }
func (e *CompleteEvent) ID() JobID          { return e.jobid }

func (e *CompleteEvent) Execute(s *Simulator) {
	s.logf("complete %s at t=%g", e.jobid, e.time)
	completion := Completion{Time: e.time, ID: e.jobid}
	s.completions = append(s.completions, completion)
	if s.observer != nil {
		s.observer.OnComplete(completion)
	}
	delete(s.remaining, e.jobid)
	delete(s.arrival, e.jobid)
	s.policy.Dequeue(e.time, e.jobid)
}

// EventQueue implements heap.Interface over Event, ordered by
// (Timestamp, Kind, ID) for deterministic tie-breaking.
type EventQueue []Event

func (eq EventQueue) Len() int { return len(eq) }

func (eq EventQueue) Less(i, j int) bool {
	a, b := eq[i], eq[j]
	if a.Timestamp() != b.Timestamp() {
		return a.Timestamp() < b.Timestamp()
	}
	if a.Kind() != b.Kind() {
		return a.Kind() < b.Kind()
	}
	return a.ID() < b.ID()
}

func (eq EventQueue) Swap(i, j int) { eq[i], eq[j] = eq[j], eq[i] }

func (eq *EventQueue) Push(x any) {
	*eq = append(*eq, x.(Event))
}

func (eq *EventQueue) Pop() any {
	old := *eq
	n := len(old)
	item := old[n-1]
	*eq = old[0 : n-1]
	return item
}

// Peek returns the minimum-time event without removing it, or nil if empty.
func (eq EventQueue) Peek() Event {
	if len(eq) == 0 {
		return nil
	}
	return eq[0]
}
