package policy

import (
	"fmt"
	"math"
	"sort"
)

// lasSchedule records the bucket LAS most recently scheduled, so the next
// update can credit exactly those jobs with the elapsed service they received.
type lasSchedule struct {
	bucket  int
	service float64
	jobids  map[JobID]struct{}
}

// LAS (Least Attained Service) always runs the present job(s) with the
// least attained service so far, sharing equally among ties. Attained
// service is tracked in integer buckets of width eps rather than raw
// float64 so that jobs accumulating service within eps of each other
// coalesce into the same bucket instead of drifting apart under
// floating-point error.
type LAS struct {
	queue     map[int]map[JobID]struct{} // bucket -> present jobs at that attained service
	attained  map[JobID]int              // jobid -> its current bucket
	scheduled *lasSchedule
	lastT     float64
}

// NewLAS constructs an empty LAS scheduler.
func NewLAS() *LAS {
	return &LAS{
		queue:    make(map[int]map[JobID]struct{}),
		attained: make(map[JobID]int),
	}
}

func intCeil(x float64) int { return int(math.Ceil(x)) }

func (l *LAS) bucketFor(id JobID, bucket int) map[JobID]struct{} {
	q, ok := l.queue[bucket]
	if !ok {
		q = make(map[JobID]struct{})
		l.queue[bucket] = q
	}
	return q
}

func (l *LAS) Enqueue(_ float64, id JobID, _ float64) {
	l.bucketFor(id, 0)[id] = struct{}{}
	l.attained[id] = 0
}

func (l *LAS) Dequeue(_ float64, id JobID) {
	att, ok := l.attained[id]
	if !ok {
		panic(fmt.Sprintf("policy: LAS dequeuing missing job %q", id))
	}
	delete(l.attained, id)
	if q, ok := l.queue[att]; ok {
		delete(q, id)
		if len(q) == 0 {
			delete(l.queue, att)
		}
	}
}

// update ages the most recently scheduled bucket: every job it contained
// advances by the service it actually received (bucketed to whole eps
// steps), then is reinserted — coalescing into an existing neighboring
// bucket within one eps step when one exists, to damp rounding drift.
func (l *LAS) update(t float64) {
	deltaSteps := intCeil((t - l.lastT) / eps)
	if l.scheduled != nil {
		att := l.scheduled.bucket
		service := l.scheduled.service
		jobids := l.scheduled.jobids

		if q, ok := l.queue[att]; ok {
			for id := range jobids {
				delete(q, id)
			}
			if len(q) == 0 {
				delete(l.queue, att)
			}
		}

		live := make(map[JobID]struct{}, len(jobids))
		for id := range jobids {
			if _, present := l.attained[id]; present {
				live[id] = struct{}{}
			}
		}
		if len(live) > 0 {
			newAtt := att + intCeil(service*float64(deltaSteps))
			candidate := newAtt
			for _, v := range [3]int{newAtt, newAtt - 1, newAtt + 1} {
				if _, ok := l.queue[v]; ok {
					candidate = v
					break
				}
			}
			q := l.bucketFor("", candidate)
			for id := range live {
				q[id] = struct{}{}
				l.attained[id] = candidate
			}
		}
	}
	l.lastT = t
}

func (l *LAS) minBucket() (int, bool) {
	first := true
	var min int
	for b := range l.queue {
		if first || b < min {
			min, first = b, false
		}
	}
	return min, !first
}

func (l *LAS) Schedule(t float64) Allocation {
	l.update(t)

	min, ok := l.minBucket()
	if !ok {
		l.scheduled = nil
		return Allocation{}
	}
	jobids := l.queue[min]
	service := 1.0 / float64(len(jobids))

	copied := make(map[JobID]struct{}, len(jobids))
	alloc := make(Allocation, len(jobids))
	for id := range jobids {
		copied[id] = struct{}{}
		alloc[id] = service
	}
	l.scheduled = &lasSchedule{bucket: min, service: service, jobids: copied}
	return alloc
}

func (l *LAS) NextInternalEvent() (float64, bool) {
	if len(l.queue) < 2 {
		return 0, false
	}
	keys := make([]int, 0, len(l.queue))
	for b := range l.queue {
		keys = append(keys, b)
	}
	sort.Ints(keys)
	diff := keys[1] - keys[0]
	running := len(l.queue[keys[0]])
	return float64(diff) * float64(running) * eps, true
}
