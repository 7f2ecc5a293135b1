package sched

import "testing"

func TestPendingQueue_AppendPreservesArrivalOrder(t *testing.T) {
	// GIVEN requests appended as [A, B, C]
	pq := &PendingQueue{}
	reqA := &Request{ID: "A", Sector: 10}
	reqB := &Request{ID: "B", Sector: 20}
	reqC := &Request{ID: "C", Sector: 30}
	pq.Append(reqA)
	pq.Append(reqB)
	pq.Append(reqC)

	// WHEN Items() is read
	items := pq.Items()

	// THEN the arrival order is intact
	if len(items) != 3 {
		t.Fatalf("Items: got %d elements, want 3", len(items))
	}
	want := []string{"A", "B", "C"}
	for i, r := range items {
		if r.ID != want[i] {
			t.Errorf("Items[%d]: got %s, want %s", i, r.ID, want[i])
		}
	}
}

func TestPendingQueue_RemoveMiddle_KeepsOrder(t *testing.T) {
	// GIVEN a queue [A, B, C]
	pq := &PendingQueue{}
	reqA := &Request{ID: "A"}
	reqB := &Request{ID: "B"}
	reqC := &Request{ID: "C"}
	pq.Append(reqA)
	pq.Append(reqB)
	pq.Append(reqC)

	// WHEN the middle element is removed
	if !pq.Remove(reqB) {
		t.Fatal("Remove(B): got false, want true")
	}

	// THEN the remaining order is [A, C]
	if pq.Len() != 2 {
		t.Fatalf("Len after remove: got %d, want 2", pq.Len())
	}
	if pq.Items()[0] != reqA || pq.Items()[1] != reqC {
		t.Errorf("order after remove: got [%s, %s], want [A, C]", pq.Items()[0].ID, pq.Items()[1].ID)
	}
}

func TestPendingQueue_RemoveAbsent_ReturnsFalse(t *testing.T) {
	pq := &PendingQueue{}
	pq.Append(&Request{ID: "A"})

	if pq.Remove(&Request{ID: "A"}) {
		t.Error("Remove of a different pointer with same ID must be false; identity is the pointer")
	}
	if pq.Len() != 1 {
		t.Errorf("Len: got %d, want 1", pq.Len())
	}
}

func TestPendingQueue_Front(t *testing.T) {
	// GIVEN an empty queue
	pq := &PendingQueue{}

	// THEN Front is nil
	if pq.Front() != nil {
		t.Errorf("Front on empty queue: got %v, want nil", pq.Front())
	}

	// WHEN a request arrives
	reqA := &Request{ID: "A"}
	pq.Append(reqA)

	// THEN Front returns it without removal
	if pq.Front() != reqA {
		t.Errorf("Front: got %v, want A", pq.Front())
	}
	if pq.Len() != 1 {
		t.Errorf("Front modified queue length: got %d, want 1", pq.Len())
	}
}
