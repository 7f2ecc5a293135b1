// Package sched implements a shortest-seek-time-first (SSTF) block I/O
// scheduler: requests accumulate in a pending queue and, once the release
// gate opens, are drained nearest-sector-first relative to the simulated
// disk head.
//
// # Reading Guide
//
// Start with these three files to understand the core:
//   - request.go: the Request as the scheduler sees it (sector + rw tag)
//   - head.go: real vs. virtual head position and the two seek totals
//   - scheduler.go: AddRequest/Dispatch, the gate, and the batch deadline
//
// # Architecture
//
// The scheduler owns nothing but its queue and head model; everything with
// a side effect is injected through Hooks at construction:
//   - Submit: hand a chosen request to the lower layer
//   - Kick: ask the consumer for a later Dispatch call
//   - Clock: monotonic milliseconds and one-shot timers
//   - trace.Sink: structured telemetry (arrivals, dispatches, timeouts)
//
// The pure pieces are kept as free functions so they can be tested in
// isolation: SelectNearest (the SSTF scan) and GateOpen (the release
// predicate).
//
// Alongside the FCFS comparison baseline the head model maintains, the
// package carries a Driver that stands in for a host block layer, and the
// sub-packages:
//   - sched/trace/: telemetry record types, collector, summary
//   - sched/workload/: sector access stream generation
package sched
