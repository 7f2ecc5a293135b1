// A simulated host: feeds a request stream into the scheduler from a
// producer, answers kicks on a consumer goroutine, and collects the order
// in which requests reached the device.

package sched

import (
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/sstf-sim/sstf-sim/sched/trace"
)

// ServedRequest is one entry of the driver's service log.
type ServedRequest struct {
	Request  *Request
	Movement uint64 // head movement charged for this request
}

// Driver wires a Scheduler to an in-process producer and consumer, playing
// the role the block layer plays for a real elevator. Submit appends to the
// service log; Kick wakes the consumer goroutine.
type Driver struct {
	sched *Scheduler
	clock Clock

	kicks chan struct{}
	quit  chan struct{}
	wg    sync.WaitGroup

	mu         sync.Mutex
	served     []ServedRequest
	lastPos    int64
	havePos    bool
	dispatched int
}

// NewDriver builds a Driver and its Scheduler. sink may be nil when debug
// tracing is off; clock defaults to the system clock.
func NewDriver(opts Options, sink trace.Sink, clock Clock) (*Driver, error) {
	if clock == nil {
		clock = NewSystemClock()
	}
	d := &Driver{
		clock: clock,
		kicks: make(chan struct{}, 1),
		quit:  make(chan struct{}),
	}
	s, err := New(opts, Hooks{
		Submit: d.submit,
		Kick:   d.kick,
		Clock:  clock,
		Sink:   sink,
	})
	if err != nil {
		return nil, err
	}
	d.sched = s
	return d, nil
}

// Scheduler returns the wrapped scheduler.
func (d *Driver) Scheduler() *Scheduler {
	return d.sched
}

// submit records the service order. Runs with the scheduler lock held, so
// it only appends.
func (d *Driver) submit(r *Request) {
	d.mu.Lock()
	defer d.mu.Unlock()
	var movement uint64
	if d.havePos {
		movement = seekDistance(r.Sector, d.lastPos)
	}
	d.lastPos = r.Sector
	d.havePos = true
	d.served = append(d.served, ServedRequest{Request: r, Movement: movement})
}

// kick coalesces wake-ups onto the consumer channel without blocking.
func (d *Driver) kick() {
	select {
	case d.kicks <- struct{}{}:
	default:
	}
}

// consume answers kicks until quit is closed, then returns. The final
// forced drain is done by Run before it closes quit.
func (d *Driver) consume() {
	defer d.wg.Done()
	for {
		select {
		case <-d.kicks:
			if n := d.sched.Dispatch(false); n > 0 {
				d.mu.Lock()
				d.dispatched += n
				d.mu.Unlock()
				logrus.Debugf("consumer drained %d requests", n)
			}
		case <-d.quit:
			return
		}
	}
}

// Run feeds the request stream through the scheduler, kicking the consumer
// after every arrival the way the block layer runs the queue after
// add_request. paceMs > 0 sleeps between arrivals so the batch deadline can
// fire under a real clock. Run returns the final report after a forced
// flush and shutdown.
func (d *Driver) Run(requests []*Request, paceMs int64) trace.ReportRecord {
	d.wg.Add(1)
	go d.consume()

	for _, r := range requests {
		d.sched.AddRequest(r)
		d.kick()
		if paceMs > 0 {
			time.Sleep(time.Duration(paceMs) * time.Millisecond)
		}
	}

	// Leftovers below the batch threshold are flushed the way a teardown
	// flushes an elevator: forced.
	if n := d.sched.Dispatch(true); n > 0 {
		d.mu.Lock()
		d.dispatched += n
		d.mu.Unlock()
	}

	close(d.quit)
	d.wg.Wait()
	d.sched.Shutdown()
	return d.sched.Report()
}

// Served returns the service log in dispatch order.
func (d *Driver) Served() []ServedRequest {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]ServedRequest, len(d.served))
	copy(out, d.served)
	return out
}

// Dispatched returns the total number of requests handed to the device.
func (d *Driver) Dispatched() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.dispatched
}
