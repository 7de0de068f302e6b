package sim

import (
	"container/heap"
	"testing"
)

func TestEventQueue_Order_TimeThenKindThenID(t *testing.T) {
	// GIVEN events at various times, with a tie at t=5 between an arrival
	// and a completion, and a tie at t=5 kind=ARRIVAL between two jobids
	eq := &EventQueue{}
	heap.Init(eq)
	heap.Push(eq, &CompleteEvent{time: 5, jobid: "Z"})
	heap.Push(eq, &ArrivalEvent{time: 5, Job: WorkloadJob{ID: "B"}})
	heap.Push(eq, &ArrivalEvent{time: 5, Job: WorkloadJob{ID: "A"}})
	heap.Push(eq, &ArrivalEvent{time: 1, Job: WorkloadJob{ID: "Y"}})

	// WHEN popped in heap order
	var order []string
	for eq.Len() > 0 {
		e := heap.Pop(eq).(Event)
		order = append(order, string(e.ID()))
	}

	// THEN earliest time first; at equal time, ARRIVAL before COMPLETE;
	// at equal time and kind, lower jobid first
	want := []string{"Y", "A", "B", "Z"}
	if len(order) != len(want) {
		t.Fatalf("got %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("position %d: got %s, want %s", i, order[i], want[i])
		}
	}
}

func TestEventQueue_Peek_EmptyReturnsNil(t *testing.T) {
	// GIVEN an empty queue
	eq := &EventQueue{}

	// WHEN Peek is called
	got := eq.Peek()

	// THEN it returns nil without panicking
	if got != nil {
		t.Errorf("Peek on empty queue: got %v, want nil", got)
	}
}
