package policy

import "testing"

func TestFSPLAS_Schedule_VirtualHeadRunsWhenNotLate(t *testing.T) {
	// GIVEN two jobs with distinct announced sizes, neither yet late
	f := NewFSPLAS()
	f.Enqueue(0, "small", 1)
	f.Enqueue(0, "big", 10)

	// WHEN scheduled immediately
	alloc := f.Schedule(0)

	// THEN the virtual queue's head runs, exactly as in plain FSP
	if len(alloc) != 1 || alloc["small"] != 1 {
		t.Errorf("expected small alone at share 1, got %v", alloc)
	}
}

func TestFSPLAS_LateTiesShareCapacityEqually(t *testing.T) {
	// GIVEN two jobs that become late together, with equal (zero) attained
	// service since falling behind
	f := NewFSPLAS()
	f.Enqueue(0, "A", 1)
	f.Enqueue(0, "B", 1)

	// WHEN both become late in the same update
	alloc := f.Schedule(2)

	// THEN both share the resource equally rather than one running alone
	if len(alloc) != 2 || alloc["A"] != 0.5 || alloc["B"] != 0.5 {
		t.Errorf("expected A and B to split capacity evenly while tied, got %v", alloc)
	}

	// WHEN more time passes with the tie still in force
	alloc = f.Schedule(6)

	// THEN attained service grew equally for both, so they remain tied and
	// keep splitting capacity
	if len(alloc) != 2 || alloc["A"] != 0.5 || alloc["B"] != 0.5 {
		t.Errorf("expected the tie to persist under equal service, got %v", alloc)
	}
}

func TestFSPLAS_LateGroupNarrowsToLeastAttained(t *testing.T) {
	// GIVEN three jobs: two become late immediately, a third joins late
	// afterward with zero attained service while the first two have
	// already accrued some
	f := NewFSPLAS()
	f.Enqueue(0, "A", 1)
	f.Enqueue(0, "B", 1)
	f.Schedule(2) // A and B become late, split 0.5/0.5

	f.Schedule(6) // A and B each accrue 2.0 attained service (4 * 0.5)

	f.Enqueue(6, "C", 1e-9)
	// C's announced size is already within eps, so the very next update
	// (however small the elapsed delta) finds it virtually finished
	alloc := f.Schedule(6.0000001)

	if _, ok := alloc["C"]; !ok {
		t.Fatalf("expected late-joiner C (attained=0) to win over A/B, got %v", alloc)
	}
	if _, ok := alloc["A"]; ok {
		t.Errorf("expected A (higher attained) excluded from the winning group, got %v", alloc)
	}
}

func TestFSPLAS_Dequeue_ClearsState(t *testing.T) {
	f := NewFSPLAS()
	f.Enqueue(0, "A", 1)
	f.Schedule(2) // A becomes late and runs

	f.Dequeue(2, "A")

	if _, ok := f.running["A"]; ok {
		t.Error("expected A removed from running")
	}
	if _, ok := f.late["A"]; ok {
		t.Error("expected A removed from late")
	}
	if _, ok := f.attained["A"]; ok {
		t.Error("expected A removed from attained")
	}
}

func TestFSPLAS_Dequeue_Missing_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dequeuing a missing job")
		}
	}()
	f := NewFSPLAS()
	f.Dequeue(0, "ghost")
}
