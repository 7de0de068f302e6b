package policy

import "fmt"

// FIFO schedules strictly in arrival order: the first-arrived present job
// gets the entire unit resource, every other present job gets zero.
type FIFO struct {
	jobs []JobID
}

// NewFIFO constructs an empty FIFO scheduler.
func NewFIFO() *FIFO {
	return &FIFO{}
}

func (f *FIFO) Enqueue(_ float64, id JobID, _ float64) {
	f.jobs = append(f.jobs, id)
}

func (f *FIFO) Dequeue(_ float64, id JobID) {
	for i, j := range f.jobs {
		if j == id {
			f.jobs = append(f.jobs[:i], f.jobs[i+1:]...)
			return
		}
	}
	panic(fmt.Sprintf("policy: FIFO dequeuing missing job %q", id))
}

func (f *FIFO) Schedule(_ float64) Allocation {
	if len(f.jobs) == 0 {
		return Allocation{}
	}
	return Allocation{f.jobs[0]: 1}
}

func (f *FIFO) NextInternalEvent() (float64, bool) { return 0, false }
