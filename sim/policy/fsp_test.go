package policy

import "testing"

func TestFSP_Schedule_VirtualHeadRunsWhenNotLate(t *testing.T) {
	// GIVEN two jobs with distinct announced sizes, neither yet late
	f := NewFSP()
	f.Enqueue(0, "small", 1)
	f.Enqueue(0, "big", 10)

	// WHEN scheduled immediately
	alloc := f.Schedule(0)

	// THEN the virtual queue's head (smallest announced size) runs
	if len(alloc) != 1 || alloc["small"] != 1 {
		t.Errorf("expected small alone at share 1, got %v", alloc)
	}
}

func TestFSP_MisestimatedJob_BecomesLateAndKeepsRunning(t *testing.T) {
	// GIVEN a job announced at size 1 that is never dequeued (simulating a
	// real job whose true size is larger than announced)
	f := NewFSP()
	f.Enqueue(0, "A", 1)

	// WHEN enough virtual time elapses for the virtual scheduler to finish
	// it while it's still real-present
	alloc := f.Schedule(2)

	// THEN it moves into late and keeps receiving the entire resource
	if len(alloc) != 1 || alloc["A"] != 1 {
		t.Errorf("expected A alone at share 1, got %v", alloc)
	}
	if _, late := f.lateSet["A"]; !late {
		t.Error("expected A to have moved into the late set")
	}
}

func TestFSP_Late_OldestServedFirst(t *testing.T) {
	// GIVEN two equally-sized jobs that both become late at the same
	// update, A inserted into the virtual queue before B
	f := NewFSP()
	f.Enqueue(0, "A", 1)
	f.Enqueue(0, "B", 1)

	// WHEN enough time elapses for both to become late in one update
	alloc := f.Schedule(2)

	// THEN the oldest-late job (A, promoted first within this update) runs
	if len(alloc) != 1 || alloc["A"] != 1 {
		t.Errorf("expected A alone at share 1, got %v", alloc)
	}
	if len(f.late) != 2 {
		t.Fatalf("expected both A and B late, got %v", f.late)
	}

	// WHEN A departs
	f.Dequeue(2, "A")

	// THEN B, the next-oldest late job, takes over
	alloc = f.Schedule(2)
	if len(alloc) != 1 || alloc["B"] != 1 {
		t.Errorf("expected B alone at share 1, got %v", alloc)
	}
}

func TestFSP_Dequeue_DoesNotAdvanceVirtualClock(t *testing.T) {
	// GIVEN a job that departs the real system before the virtual
	// scheduler would have finished it
	f := NewFSP()
	f.Enqueue(0, "A", 10)
	f.Dequeue(1, "A")

	// THEN it leaves no trace in the late/running bookkeeping
	if _, ok := f.running["A"]; ok {
		t.Error("expected A removed from running")
	}
	if _, ok := f.lateSet["A"]; ok {
		t.Error("A should never have become late")
	}

	// AND the virtual scheduler was not aged: its clock is still 0 and A is
	// still in the virtual queue with its full announced size
	if f.lastT != 0 {
		t.Errorf("virtual clock: got %g, want 0", f.lastT)
	}
	if len(f.queue) != 1 || f.queue[0].id != "A" || f.queue[0].vRemaining != 10 {
		t.Errorf("expected A alone in the virtual queue at 10, got %v", f.queue)
	}
}

func TestFSP_Dequeue_Missing_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected a panic dequeuing a missing job")
		}
	}()
	f := NewFSP()
	f.Dequeue(0, "ghost")
}
