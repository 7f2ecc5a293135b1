package sched

import (
	"sync"
	"sync/atomic"
	"testing"
)

// fakeHost collects Submit calls and counts kicks, standing in for the
// block layer in scheduler tests.
type fakeHost struct {
	mu     sync.Mutex
	served []*Request
	kicks  atomic.Int64
}

func (h *fakeHost) submit(r *Request) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.served = append(h.served, r)
}

func (h *fakeHost) kick() {
	h.kicks.Add(1)
}

func (h *fakeHost) servedSectors() []int64 {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]int64, len(h.served))
	for i, r := range h.served {
		out[i] = r.Sector
	}
	return out
}

// newTestScheduler builds a scheduler on a manual clock with a fake host.
func newTestScheduler(t *testing.T, opts Options) (*Scheduler, *fakeHost, *ManualClock) {
	t.Helper()
	host := &fakeHost{}
	clock := NewManualClock()
	s, err := New(opts, Hooks{
		Submit: host.submit,
		Kick:   host.kick,
		Clock:  clock,
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return s, host, clock
}

func req(id string, sector int64) *Request {
	return &Request{ID: id, Sector: sector}
}
