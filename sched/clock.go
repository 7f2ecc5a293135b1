package sched

import (
	"sort"
	"sync"
	"time"
)

// Timer is a one-shot deadline handle. Stop reports whether the timer was
// still pending; after a false return the callback has fired, is firing,
// or the timer had already been stopped.
type Timer interface {
	Stop() bool
}

// Clock is the time source injected into the scheduler: monotonic
// milliseconds plus one-shot deferred callbacks. Millisecond resolution is
// sufficient for the batch deadline.
type Clock interface {
	NowMs() int64
	AfterMs(ms int64, f func()) Timer
}

// SystemClock is the real Clock, backed by the runtime's monotonic clock.
type SystemClock struct {
	base time.Time
}

// NewSystemClock returns a SystemClock whose NowMs counts from now.
func NewSystemClock() *SystemClock {
	return &SystemClock{base: time.Now()}
}

func (c *SystemClock) NowMs() int64 {
	return time.Since(c.base).Milliseconds()
}

func (c *SystemClock) AfterMs(ms int64, f func()) Timer {
	return time.AfterFunc(time.Duration(ms)*time.Millisecond, f)
}

// ManualClock is a Clock driven explicitly by tests. Advance moves time
// forward and runs every callback that has come due, in deadline order, on
// the calling goroutine.
type ManualClock struct {
	mu      sync.Mutex
	nowMs   int64
	pending []*manualTimer
}

type manualTimer struct {
	clock   *ManualClock
	dueMs   int64
	f       func()
	stopped bool
}

func (t *manualTimer) Stop() bool {
	t.clock.mu.Lock()
	defer t.clock.mu.Unlock()
	if t.stopped {
		return false
	}
	t.stopped = true
	for i, p := range t.clock.pending {
		if p == t {
			t.clock.pending = append(t.clock.pending[:i], t.clock.pending[i+1:]...)
			return true
		}
	}
	return false
}

// NewManualClock returns a ManualClock starting at time zero.
func NewManualClock() *ManualClock {
	return &ManualClock{}
}

func (c *ManualClock) NowMs() int64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.nowMs
}

func (c *ManualClock) AfterMs(ms int64, f func()) Timer {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := &manualTimer{clock: c, dueMs: c.nowMs + ms, f: f}
	c.pending = append(c.pending, t)
	return t
}

// Advance moves the clock forward by ms and fires due callbacks outside
// the clock's own lock, so callbacks may use the clock freely.
func (c *ManualClock) Advance(ms int64) {
	c.mu.Lock()
	c.nowMs += ms
	now := c.nowMs
	var due []*manualTimer
	var rest []*manualTimer
	for _, t := range c.pending {
		if t.dueMs <= now {
			due = append(due, t)
		} else {
			rest = append(rest, t)
		}
	}
	c.pending = rest
	for _, t := range due {
		t.stopped = true
	}
	sort.SliceStable(due, func(i, j int) bool { return due[i].dueMs < due[j].dueMs })
	c.mu.Unlock()

	for _, t := range due {
		t.f()
	}
}
