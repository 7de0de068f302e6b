package policy

import (
	"container/heap"
	"fmt"
)

// SRPTPlusPS is SRPT with a safety valve for size misestimation: when the
// head's estimated remaining work falls below eps, it moves to an
// unordered late set and keeps running, but capacity is shared equally
// among {SRPT head} ∪ late rather than given wholly to one job. This
// bounds how far a misestimated job can starve everyone else.
type SRPTPlusPS struct {
	jobs  srptHeap
	late  map[JobID]struct{}
	lastT float64
}

// NewSRPTPlusPS constructs an empty SRPT+PS scheduler.
func NewSRPTPlusPS() *SRPTPlusPS {
	return &SRPTPlusPS{late: make(map[JobID]struct{})}
}

// update debits the head by delta/(1+|late|) — the key difference from
// plain SRPT — then promotes any head whose estimated remaining has
// dropped below eps into late, repeating until the new head clears eps.
func (s *SRPTPlusPS) update(t float64) {
	delta := t - s.lastT
	delta /= 1 + float64(len(s.late))
	if len(s.jobs) > 0 {
		s.jobs[0].remaining -= delta
	}
	for len(s.jobs) > 0 && s.jobs[0].remaining < eps {
		entry := heap.Pop(&s.jobs).(*srptEntry)
		s.late[entry.id] = struct{}{}
	}
	s.lastT = t
}

func (s *SRPTPlusPS) Enqueue(t float64, id JobID, estSize float64) {
	s.update(t)
	heap.Push(&s.jobs, &srptEntry{remaining: estSize, id: id})
}

func (s *SRPTPlusPS) Dequeue(t float64, id JobID) {
	s.update(t)
	if _, ok := s.late[id]; ok {
		delete(s.late, id)
		return
	}
	if len(s.jobs) > 0 && s.jobs[0].id == id {
		heap.Pop(&s.jobs)
		return
	}
	idx := s.jobs.indexOf(id)
	if idx == -1 {
		panic(fmt.Sprintf("policy: SRPT+PS dequeuing missing job %q", id))
	}
	heap.Remove(&s.jobs, idx)
}

func (s *SRPTPlusPS) Schedule(t float64) Allocation {
	s.update(t)
	scheduled := make(map[JobID]struct{}, len(s.late)+1)
	for id := range s.late {
		scheduled[id] = struct{}{}
	}
	if len(s.jobs) > 0 {
		scheduled[s.jobs[0].id] = struct{}{}
	}
	if len(scheduled) == 0 {
		return Allocation{}
	}
	share := 1.0 / float64(len(scheduled))
	alloc := make(Allocation, len(scheduled))
	for id := range scheduled {
		alloc[id] = share
	}
	return alloc
}

// NextInternalEvent returns the virtual time until the current head would
// become late, consistent with how update scales elapsed time by
// 1+|late|.
func (s *SRPTPlusPS) NextInternalEvent() (float64, bool) {
	if len(s.jobs) == 0 {
		return 0, false
	}
	return s.jobs[0].remaining * (1 + float64(len(s.late))), true
}
