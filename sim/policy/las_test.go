package policy

import "testing"

func TestLAS_Schedule_NewJobsShareEqually(t *testing.T) {
	// GIVEN three freshly enqueued jobs, all with zero attained service
	l := NewLAS()
	l.Enqueue(0, "A", 0)
	l.Enqueue(0, "B", 0)
	l.Enqueue(0, "C", 0)

	// WHEN scheduled
	alloc := l.Schedule(0)

	// THEN they share the resource equally, tied in the same bucket
	if len(alloc) != 3 {
		t.Fatalf("expected 3 scheduled jobs, got %v", alloc)
	}
	for id, share := range alloc {
		if share != 1.0/3.0 {
			t.Errorf("share for %s: got %g, want %g", id, share, 1.0/3.0)
		}
	}
}

func TestLAS_LeastAttainedServiceRunsNext(t *testing.T) {
	// GIVEN A running alone for a while, accumulating attained service,
	// then B arrives fresh
	l := NewLAS()
	l.Enqueue(0, "A", 0)
	l.Schedule(0)  // A alone
	l.Schedule(10) // A accrues 10 units of service, far past one eps bucket

	l.Enqueue(10, "B", 0)

	// WHEN scheduled
	alloc := l.Schedule(10)

	// THEN B, with strictly less attained service, runs alone
	if len(alloc) != 1 || alloc["B"] != 1 {
		t.Errorf("expected B alone at share 1, got %v", alloc)
	}
}

func TestLAS_Dequeue_RemovesFromBucket(t *testing.T) {
	l := NewLAS()
	l.Enqueue(0, "A", 0)
	l.Enqueue(0, "B", 0)

	l.Dequeue(0, "A")

	alloc := l.Schedule(0)
	if len(alloc) != 1 || alloc["B"] != 1 {
		t.Errorf("expected B alone at share 1, got %v", alloc)
	}
}

func TestLAS_Dequeue_Missing_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dequeuing a missing job")
		}
	}()
	l := NewLAS()
	l.Dequeue(0, "ghost")
}

func TestLAS_Schedule_Empty_ReturnsEmptyAllocation(t *testing.T) {
	l := NewLAS()
	alloc := l.Schedule(0)
	if len(alloc) != 0 {
		t.Errorf("expected empty allocation, got %v", alloc)
	}
}
