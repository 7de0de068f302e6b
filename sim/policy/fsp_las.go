package policy

import (
	"fmt"
	"math"
)

// FSPLAS composes FSP's virtual scheduler with LAS's least-attained-service
// discipline for the late set: the virtual queue and late membership are
// maintained exactly as in FSP, but once one or more jobs are late, capacity
// is split equally among whichever late jobs have received the least real
// service since falling behind, instead of giving the whole resource to the
// single oldest late job (FSP) or splitting it across every late job (FSP+PS).
type FSPLAS struct {
	queue   []fspEntry
	late    map[JobID]struct{}
	running map[JobID]struct{}
	lastT   float64

	attained      map[JobID]float64 // real service received while late; meaningless for never-late jobs
	lastScheduled map[JobID]float64 // late jobid -> share assigned last Schedule, credited on the next update
}

// NewFSPLAS constructs an empty FSP+LAS scheduler.
func NewFSPLAS() *FSPLAS {
	return &FSPLAS{
		late:          make(map[JobID]struct{}),
		running:       make(map[JobID]struct{}),
		attained:      make(map[JobID]float64),
		lastScheduled: make(map[JobID]float64),
	}
}

func (f *FSPLAS) update(t float64) {
	delta := t - f.lastT

	for id, share := range f.lastScheduled {
		if _, present := f.attained[id]; present {
			f.attained[id] += delta * share
		}
	}
	f.lastScheduled = nil

	if len(f.queue) > 0 {
		fairShare := delta / float64(len(f.queue))
		fairPlusEps := fairShare + eps

		idx := 0
		for idx < len(f.queue) && f.queue[idx].vRemaining <= fairPlusEps {
			id := f.queue[idx].id
			idx++
			if _, present := f.running[id]; present {
				if _, already := f.late[id]; !already {
					f.late[id] = struct{}{}
					f.attained[id] = 0
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

func (f *FSPLAS) insert(e fspEntry) {
	i := 0
	for i < len(f.queue) && fspLess(f.queue[i], e) {
		i++
	}
	f.queue = append(f.queue, fspEntry{})
	copy(f.queue[i+1:], f.queue[i:])
	f.queue[i] = e
}

func (f *FSPLAS) Enqueue(t float64, id JobID, estSize float64) {
	f.update(t)
	f.insert(fspEntry{vRemaining: estSize, id: id})
	f.running[id] = struct{}{}
}

func (f *FSPLAS) Dequeue(_ float64, id JobID) {
	if _, ok := f.running[id]; !ok {
		panic(fmt.Sprintf("policy: FSP+LAS dequeuing missing job %q", id))
	}
	delete(f.running, id)
	delete(f.late, id)
	delete(f.attained, id)
	delete(f.lastScheduled, id)
}

// Schedule gives the virtual queue's head the full share when no job is
// late, exactly as plain FSP. Otherwise it finds the late jobs with the
// smallest attained-service bucket (attained service floored to whole eps
// steps, the bucket width of sim/policy/las.go; neighboring buckets are not
// coalesced here) and splits capacity equally among that group.
func (f *FSPLAS) Schedule(t float64) Allocation {
	f.update(t)

	if len(f.late) > 0 {
		minBucket := 0
		first := true
		for id := range f.late {
			b := int(math.Floor(f.attained[id] / eps))
			if first || b < minBucket {
				minBucket, first = b, false
			}
		}
		winners := make([]JobID, 0, len(f.late))
		for id := range f.late {
			if int(math.Floor(f.attained[id]/eps)) == minBucket {
				winners = append(winners, id)
			}
		}
		share := 1.0 / float64(len(winners))
		alloc := make(Allocation, len(winners))
		scheduled := make(map[JobID]float64, len(winners))
		for _, id := range winners {
			alloc[id] = share
			scheduled[id] = share
		}
		f.lastScheduled = scheduled
		return alloc
	}

	f.lastScheduled = nil
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

func (f *FSPLAS) NextInternalEvent() (float64, bool) {
	if len(f.queue) == 0 {
		return 0, false
	}
	return f.queue[0].vRemaining * float64(len(f.queue)), true
}
