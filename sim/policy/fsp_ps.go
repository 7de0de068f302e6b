package policy

import "fmt"

// FSPPlusPS is FSP with an unordered late set: when late is nonempty,
// capacity is shared equally among every late job (the virtual queue's
// head does not also run), instead of giving the whole resource to the
// single oldest late job. The virtual queue's head only runs when late is
// empty. This bounds how badly a misestimated job can monopolize the real
// resource once it falls behind its virtual-scheduler finish time.
type FSPPlusPS struct {
	queue   []fspEntry
	late    map[JobID]struct{}
	running map[JobID]struct{}
	lastT   float64
}

// NewFSPPlusPS constructs an empty FSP+PS scheduler.
func NewFSPPlusPS() *FSPPlusPS {
	return &FSPPlusPS{
		late:    make(map[JobID]struct{}),
		running: make(map[JobID]struct{}),
	}
}

func (f *FSPPlusPS) update(t float64) {
	delta := t - f.lastT
	if len(f.queue) > 0 {
		fairShare := delta / float64(len(f.queue))
		fairPlusEps := fairShare + eps

		idx := 0
		for idx < len(f.queue) && f.queue[idx].vRemaining <= fairPlusEps {
			id := f.queue[idx].id
			idx++
			if _, present := f.running[id]; present {
				f.late[id] = struct{}{}
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

func (f *FSPPlusPS) insert(e fspEntry) {
	i := 0
	for i < len(f.queue) && fspLess(f.queue[i], e) {
		i++
	}
	f.queue = append(f.queue, fspEntry{})
	copy(f.queue[i+1:], f.queue[i:])
	f.queue[i] = e
}

func (f *FSPPlusPS) Enqueue(t float64, id JobID, estSize float64) {
	f.update(t)
	f.insert(fspEntry{vRemaining: estSize, id: id})
	f.running[id] = struct{}{}
}

func (f *FSPPlusPS) Dequeue(_ float64, id JobID) {
	if _, ok := f.running[id]; !ok {
		panic(fmt.Sprintf("policy: FSP+PS dequeuing missing job %q", id))
	}
	delete(f.running, id)
	delete(f.late, id)
}

func (f *FSPPlusPS) Schedule(t float64) Allocation {
	f.update(t)
	if len(f.late) > 0 {
		share := 1.0 / float64(len(f.late))
		alloc := make(Allocation, len(f.late))
		for id := range f.late {
			alloc[id] = share
		}
		return alloc
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

func (f *FSPPlusPS) NextInternalEvent() (float64, bool) {
	if len(f.queue) == 0 {
		return 0, false
	}
	return f.queue[0].vRemaining * float64(len(f.queue)), true
}
