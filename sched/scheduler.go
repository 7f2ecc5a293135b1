// The scheduler state machine: pending-queue management, the release gate,
// the nearest-sector drain loop, head tracking, and the batch deadline.

package sched

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/sstf-sim/sstf-sim/sched/trace"
)

// Hooks are the host-provided dependencies, injected at New.
//
// Submit hands a chosen request to the lower layer. It is invoked with the
// scheduler lock held and must not re-enter the scheduler.
//
// Kick asks the host to schedule a Dispatch call on the consumer's
// execution context. It is called from the deadline timer's goroutine and
// must not block.
type Hooks struct {
	Submit func(*Request)
	Kick   func()
	Clock  Clock
	Sink   trace.Sink // may be nil; required when Options.Debug is set
}

// Scheduler reorders pending block requests so that the request nearest to
// the current head position is served first. All entry points (AddRequest,
// Dispatch, MergedSiblings, Shutdown, Report) are serialized by an internal
// mutex; the deadline callback stays outside the lock and only kicks the
// consumer.
type Scheduler struct {
	mu sync.Mutex

	opts  Options
	hooks Hooks

	pending PendingQueue
	head    *HeadModel

	batchStartMs int64
	deadline     Timer // nil iff the pending queue is empty
}

// New validates the hooks, sanitizes the options and returns a scheduler
// with empty state.
func New(opts Options, hooks Hooks) (*Scheduler, error) {
	if hooks.Submit == nil {
		return nil, errors.New("sched: Hooks.Submit is required")
	}
	if hooks.Kick == nil {
		return nil, errors.New("sched: Hooks.Kick is required")
	}
	if hooks.Clock == nil {
		return nil, errors.New("sched: Hooks.Clock is required")
	}
	if opts.Debug && hooks.Sink == nil {
		return nil, errors.New("sched: Options.Debug set but Hooks.Sink is nil")
	}
	opts = opts.sanitize(hooks.Sink)
	logrus.Infof("sstf scheduler ready: queue_size=%d max_wait=%dms debug=%t",
		opts.QueueSize, opts.MaxWaitMs, opts.Debug)
	return &Scheduler{
		opts:  opts,
		hooks: hooks,
		head:  NewHeadModel(),
	}, nil
}

// AddRequest appends a request to the pending queue, arming the batch
// deadline when the queue was empty, and advances the FCFS baseline.
// It never blocks and never dispatches.
func (s *Scheduler) AddRequest(r *Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending.Len() == 0 {
		s.batchStartMs = s.hooks.Clock.NowMs()
		s.deadline = s.hooks.Clock.AfterMs(s.opts.MaxWaitMs, s.deadlineExpired)
	}
	s.pending.Append(r)
	s.head.ObserveArrival(r.Sector)

	if s.opts.Debug {
		s.hooks.Sink.RecordArrival(trace.ArrivalRecord{
			TsMs:         s.hooks.Clock.NowMs(),
			Block:        r.Sector,
			RW:           r.Op.Tag(),
			SimSeekTotal: s.head.SimSeekTotal,
		})
		logrus.Debugf("ARRIVED block=%d rw=%c sim_fcfs_total=%d", r.Sector, r.Op.Tag(), s.head.SimSeekTotal)
	}
}

// Dispatch drains the pending queue through Submit if the release gate is
// open, and returns the number of requests handed to the consumer. With the
// gate closed it returns 0 and leaves the queue and the deadline untouched.
func (s *Scheduler) Dispatch(force bool) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := s.pending.Len()
	if n == 0 {
		return 0
	}
	elapsed := s.hooks.Clock.NowMs() - s.batchStartMs
	if !GateOpen(force, n, s.opts.QueueSize, elapsed, s.opts.MaxWaitMs) {
		return 0
	}

	s.disarmDeadline()

	dispatched := 0
	for s.pending.Len() > 0 {
		best := SelectNearest(s.pending.Items(), s.head.RealPos)
		s.pending.Remove(best)
		s.head.ObserveDispatch(best.Sector)
		dispatched++
		s.hooks.Submit(best)

		if s.opts.Debug {
			s.hooks.Sink.RecordDispatch(trace.DispatchRecord{
				TsMs:          s.hooks.Clock.NowMs(),
				Block:         best.Sector,
				RW:            best.Op.Tag(),
				Dir:           byte(s.head.Dir),
				RealSeekTotal: s.head.RealSeekTotal,
			})
			logrus.Debugf("SERVED block=%d dir=%c total_sstf=%d", best.Sector, s.head.Dir, s.head.RealSeekTotal)
		}
	}
	return dispatched
}

// MergedSiblings removes absorbed from the pending queue after the host
// merged it into primary at a higher layer. Statistics are untouched; the
// absorbed request's movement is already accounted to the merged whole.
func (s *Scheduler) MergedSiblings(_, absorbed *Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.pending.Remove(absorbed) && s.pending.Len() == 0 {
		s.disarmDeadline()
	}
}

// Shutdown stops the deadline timer and releases the scheduler. The
// pending queue must be empty; a non-empty queue at shutdown means
// requests would be lost, which is a fatal contract breach.
func (s *Scheduler) Shutdown() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.disarmDeadline()
	if n := s.pending.Len(); n != 0 {
		panic(fmt.Sprintf("sched: shutdown with %d pending requests", n))
	}
}

// Report returns the FCFS-vs-SSTF comparison. It is a pure function of
// current state; repeated calls yield identical values. When Debug is set
// the report is also emitted to the sink.
func (s *Scheduler) Report() trace.ReportRecord {
	s.mu.Lock()
	defer s.mu.Unlock()

	rep := trace.ReportRecord{
		SimSeekTotal:  s.head.SimSeekTotal,
		RealSeekTotal: s.head.RealSeekTotal,
	}
	if rep.SimSeekTotal > 0 {
		saved := int64(rep.SimSeekTotal) - int64(rep.RealSeekTotal)
		rep.SavingsPercent = saved * 100 / int64(rep.SimSeekTotal)
		rep.SavingsValid = true
	}
	if s.opts.Debug {
		s.hooks.Sink.RecordReport(rep)
	}
	return rep
}

// deadlineExpired runs on the timer's execution context. It touches no
// scheduler state: the drain happens later, when the consumer answers the
// kick with a Dispatch call. If the queue emptied before the timer fired,
// that Dispatch returns 0 and the kick was a no-op.
func (s *Scheduler) deadlineExpired() {
	if s.opts.Debug {
		s.hooks.Sink.RecordTimeout(trace.TimeoutRecord{TsMs: s.hooks.Clock.NowMs()})
		logrus.Debugf("batch deadline expired, kicking consumer")
	}
	s.hooks.Kick()
}

// disarmDeadline cancels the pending deadline timer, if any.
// Caller holds the scheduler lock.
func (s *Scheduler) disarmDeadline() {
	if s.deadline != nil {
		s.deadline.Stop()
		s.deadline = nil
	}
}
