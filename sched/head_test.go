package sched

import "testing"

func TestHeadModel_StartsUnknownAndParked(t *testing.T) {
	h := NewHeadModel()
	if h.RealPos != PosUnknown || h.VirtualPos != PosUnknown {
		t.Errorf("positions: got (%d, %d), want both %d", h.RealPos, h.VirtualPos, PosUnknown)
	}
	if h.Dir != DirParked {
		t.Errorf("direction: got %c, want %c", h.Dir, DirParked)
	}
	if h.RealSeekTotal != 0 || h.SimSeekTotal != 0 {
		t.Errorf("totals: got (%d, %d), want (0, 0)", h.RealSeekTotal, h.SimSeekTotal)
	}
}

func TestHeadModel_FirstArrivalIsFree(t *testing.T) {
	// GIVEN a fresh head model
	h := NewHeadModel()

	// WHEN the first arrival is observed
	h.ObserveArrival(500)

	// THEN the virtual head moved without charging any seek
	if h.SimSeekTotal != 0 {
		t.Errorf("SimSeekTotal: got %d, want 0", h.SimSeekTotal)
	}
	if h.VirtualPos != 500 {
		t.Errorf("VirtualPos: got %d, want 500", h.VirtualPos)
	}
}

func TestHeadModel_ArrivalAccountingInArrivalOrder(t *testing.T) {
	h := NewHeadModel()
	h.ObserveArrival(100)
	h.ObserveArrival(50)
	h.ObserveArrival(80)
	h.ObserveArrival(10)

	if h.SimSeekTotal != 150 {
		t.Errorf("SimSeekTotal: got %d, want 150 (50+30+70)", h.SimSeekTotal)
	}
}

func TestHeadModel_BootstrapDispatchIsFreeAndStaysParked(t *testing.T) {
	// GIVEN a head model that has never dispatched
	h := NewHeadModel()

	// WHEN the bootstrap dispatch happens
	movement := h.ObserveDispatch(100)

	// THEN no seek is charged and the direction is still parked
	if movement != 0 || h.RealSeekTotal != 0 {
		t.Errorf("bootstrap: movement=%d total=%d, want 0/0", movement, h.RealSeekTotal)
	}
	if h.RealPos != 100 {
		t.Errorf("RealPos: got %d, want 100", h.RealPos)
	}
	if h.Dir != DirParked {
		t.Errorf("Dir after bootstrap: got %c, want %c", h.Dir, DirParked)
	}
}

func TestHeadModel_DispatchDirectionAndAccounting(t *testing.T) {
	h := NewHeadModel()
	h.ObserveDispatch(100) // bootstrap

	if m := h.ObserveDispatch(80); m != 20 {
		t.Errorf("movement to 80: got %d, want 20", m)
	}
	if h.Dir != DirLeft {
		t.Errorf("Dir: got %c, want %c", h.Dir, DirLeft)
	}

	if m := h.ObserveDispatch(150); m != 70 {
		t.Errorf("movement to 150: got %d, want 70", m)
	}
	if h.Dir != DirRight {
		t.Errorf("Dir: got %c, want %c", h.Dir, DirRight)
	}

	if h.RealSeekTotal != 90 {
		t.Errorf("RealSeekTotal: got %d, want 90", h.RealSeekTotal)
	}
}

func TestHeadModel_ZeroDistanceDispatchKeepsDirection(t *testing.T) {
	h := NewHeadModel()
	h.ObserveDispatch(100)
	h.ObserveDispatch(120)

	// Same-sector dispatch: no movement, direction untouched.
	if m := h.ObserveDispatch(120); m != 0 {
		t.Errorf("movement: got %d, want 0", m)
	}
	if h.Dir != DirRight {
		t.Errorf("Dir: got %c, want %c", h.Dir, DirRight)
	}
	if h.RealSeekTotal != 20 {
		t.Errorf("RealSeekTotal: got %d, want 20", h.RealSeekTotal)
	}
}
