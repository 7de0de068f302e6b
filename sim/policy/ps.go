package policy

import "fmt"

// PS is classic processor sharing: every present job gets an equal share
// of the unit resource, 1/n for n present jobs.
type PS struct {
	running map[JobID]struct{}
}

// NewPS constructs an empty PS scheduler.
func NewPS() *PS {
	return &PS{running: make(map[JobID]struct{})}
}

func (p *PS) Enqueue(_ float64, id JobID, _ float64) {
	p.running[id] = struct{}{}
}

func (p *PS) Dequeue(_ float64, id JobID) {
	if _, ok := p.running[id]; !ok {
		panic(fmt.Sprintf("policy: PS dequeuing missing job %q", id))
	}
	delete(p.running, id)
}

func (p *PS) Schedule(_ float64) Allocation {
	n := len(p.running)
	if n == 0 {
		return Allocation{}
	}
	share := 1.0 / float64(n)
	alloc := make(Allocation, n)
	for id := range p.running {
		alloc[id] = share
	}
	return alloc
}

func (p *PS) NextInternalEvent() (float64, bool) { return 0, false }
