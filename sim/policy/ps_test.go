package policy

import "testing"

func TestPS_Schedule_EqualSharesAmongPresent(t *testing.T) {
	// GIVEN three enqueued jobs
	p := NewPS()
	p.Enqueue(0, "A", 1)
	p.Enqueue(0, "B", 1)
	p.Enqueue(0, "C", 1)

	// WHEN scheduled
	alloc := p.Schedule(0)

	// THEN each gets an equal 1/3 share
	for _, id := range []JobID{"A", "B", "C"} {
		if got := alloc[id]; got != 1.0/3.0 {
			t.Errorf("share for %s: got %g, want %g", id, got, 1.0/3.0)
		}
	}
}

func TestPS_Schedule_Empty_ReturnsEmptyAllocation(t *testing.T) {
	p := NewPS()
	alloc := p.Schedule(0)
	if len(alloc) != 0 {
		t.Errorf("expected empty allocation, got %v", alloc)
	}
}

func TestPS_Dequeue_Missing_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dequeuing a missing job")
		}
	}()
	p := NewPS()
	p.Dequeue(0, "ghost")
}

func TestPS_Dequeue_RemovesFromSchedule(t *testing.T) {
	p := NewPS()
	p.Enqueue(0, "A", 1)
	p.Enqueue(0, "B", 1)
	p.Dequeue(0, "A")

	alloc := p.Schedule(0)
	if len(alloc) != 1 || alloc["B"] != 1 {
		t.Errorf("expected B alone at share 1, got %v", alloc)
	}
}
