package policy

import (
	"fmt"
	"sort"
)

// fspEntry is one job's remaining work in FSP's virtual processor-sharing
// scheduler, kept sorted ascending by (vRemaining, id).
type fspEntry struct {
	vRemaining float64
	id         JobID
}

func fspLess(a, b fspEntry) bool {
	if a.vRemaining != b.vRemaining {
		return a.vRemaining < b.vRemaining
	}
	return a.id < b.id
}

// FSP (Fair-Sojourn Protocol) runs a virtual processor-sharing scheduler
// whose finish order is the target finish order for the real preemptive
// scheduler. When size misestimation causes the virtual scheduler to
// finish a job the real system still has present, that job is moved into
// an insertion-ordered late set and given the entire real resource until
// the real system catches up — oldest late job first.
type FSP struct {
	queue   []fspEntry      // virtual queue, sorted ascending by vRemaining
	late    []JobID         // insertion-ordered: oldest-late-first
	lateSet map[JobID]struct{}
	running map[JobID]struct{}
	lastT   float64
}

// NewFSP constructs an empty FSP scheduler.
func NewFSP() *FSP {
	return &FSP{
		lateSet: make(map[JobID]struct{}),
		running: make(map[JobID]struct{}),
	}
}

// update ages the virtual queue by delta, the time since the last update:
// every present entry is debited an equal fair share, and any entry whose
// virtual remaining work has dropped to within eps of zero is considered
// finished by the virtual scheduler and removed from the queue. If that
// job is still real-present, it becomes late.
func (f *FSP) update(t float64) {
	delta := t - f.lastT
	if len(f.queue) > 0 {
		fairShare := delta / float64(len(f.queue))
		fairPlusEps := fairShare + eps

		idx := 0
		for idx < len(f.queue) && f.queue[idx].vRemaining <= fairPlusEps {
			id := f.queue[idx].id
			idx++
			if _, present := f.running[id]; present {
				if _, already := f.lateSet[id]; !already {
					f.late = append(f.late, id)
					f.lateSet[id] = struct{}{}
				}
			}
		}
		if idx > 0 {
			f.queue = f.queue[idx:]
		}
		if fairShare > 0 {
			for i := range f.queue {
				f.queue[i].vRemaining -= fairShare
			}
		}
	}
	f.lastT = t
}

func (f *FSP) insert(e fspEntry) {
	i := sort.Search(len(f.queue), func(i int) bool { return fspLess(e, f.queue[i]) || e == f.queue[i] })
	f.queue = append(f.queue, fspEntry{})
	copy(f.queue[i+1:], f.queue[i:])
	f.queue[i] = e
}

func (f *FSP) Enqueue(t float64, id JobID, estSize float64) {
	f.update(t) // age existing virtual queue entries before admitting the new one
	f.insert(fspEntry{vRemaining: estSize, id: id})
	f.running[id] = struct{}{}
}

// Dequeue removes id from the real-present set. The virtual scheduler is
// NOT updated here — the job remains in the virtual queue until the
// virtual scheduler itself finishes it in a later update.
func (f *FSP) Dequeue(_ float64, id JobID) {
	if _, ok := f.running[id]; !ok {
		panic(fmt.Sprintf("policy: FSP dequeuing missing job %q", id))
	}
	delete(f.running, id)
	if _, ok := f.lateSet[id]; ok {
		delete(f.lateSet, id)
		for i, lid := range f.late {
			if lid == id {
				f.late = append(f.late[:i], f.late[i+1:]...)
				break
			}
		}
	}
}

func (f *FSP) Schedule(t float64) Allocation {
	f.update(t)
	if len(f.late) > 0 {
		return Allocation{f.late[0]: 1}
	}
	if len(f.running) == 0 {
		return Allocation{}
	}
	for _, e := range f.queue {
		if _, present := f.running[e.id]; present {
			return Allocation{e.id: 1}
		}
	}
	return Allocation{}
}

func (f *FSP) NextInternalEvent() (float64, bool) {
	if len(f.queue) == 0 {
		return 0, false
	}
	return f.queue[0].vRemaining * float64(len(f.queue)), true
}
