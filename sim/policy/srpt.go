package policy

import (
	"container/heap"
	"fmt"
)

// srptEntry is one job's estimated remaining work in an SRPT heap.
type srptEntry struct {
	remaining float64
	id        JobID
}

// srptHeap is a min-heap over srptEntry ordered by remaining, tie-broken by
// id for determinism. Implements heap.Interface.
type srptHeap []*srptEntry

func (h srptHeap) Len() int { return len(h) }
func (h srptHeap) Less(i, j int) bool {
	if h[i].remaining != h[j].remaining {
		return h[i].remaining < h[j].remaining
	}
	return h[i].id < h[j].id
}
func (h srptHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }
func (h *srptHeap) Push(x any)   { *h = append(*h, x.(*srptEntry)) }
func (h *srptHeap) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// indexOf returns the slice index of id, or -1 if absent. O(n) — matches
// the original SRPT.dequeue's linear scan for a non-head removal (see
// DESIGN.md's Open Question log: the indexed-priority-queue alternative
// was declined since removals overwhelmingly target the head).
func (h srptHeap) indexOf(id JobID) int {
	for i, e := range h {
		if e.id == id {
			return i
		}
	}
	return -1
}

// SRPT always runs the job with the smallest estimated remaining work,
// which it tracks exactly by debiting only the head entry as time passes.
type SRPT struct {
	jobs  srptHeap
	lastT float64
}

// NewSRPT constructs an empty SRPT scheduler.
func NewSRPT() *SRPT {
	return &SRPT{}
}

// update debits the head job's remaining estimate by the elapsed time.
// Non-head entries are left stale but correctly ordered, since only the
// head is ever debited or scheduled.
func (s *SRPT) update(t float64) {
	delta := t - s.lastT
	if delta != 0 && len(s.jobs) > 0 {
		s.jobs[0].remaining -= delta
	}
	s.lastT = t
}

func (s *SRPT) Enqueue(t float64, id JobID, estSize float64) {
	s.update(t)
	heap.Push(&s.jobs, &srptEntry{remaining: estSize, id: id})
}

func (s *SRPT) Dequeue(t float64, id JobID) {
	s.update(t)
	if len(s.jobs) > 0 && s.jobs[0].id == id {
		heap.Pop(&s.jobs)
		return
	}
	idx := s.jobs.indexOf(id)
	if idx == -1 {
		panic(fmt.Sprintf("policy: SRPT dequeuing missing job %q", id))
	}
	heap.Remove(&s.jobs, idx)
}

func (s *SRPT) Schedule(t float64) Allocation {
	s.update(t)
	if len(s.jobs) == 0 {
		return Allocation{}
	}
	return Allocation{s.jobs[0].id: 1}
}

func (s *SRPT) NextInternalEvent() (float64, bool) { return 0, false }
