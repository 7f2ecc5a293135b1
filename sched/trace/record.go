// Package trace provides structured telemetry records for the scheduler.
// This package has no dependencies on sched/ — it stores pure data types.
package trace

// ArrivalRecord captures a request entering the pending queue.
type ArrivalRecord struct {
	TsMs         int64
	Block        int64
	RW           byte // 'R' or 'W'
	SimSeekTotal uint64
}

// DispatchRecord captures a request being handed to the consumer.
type DispatchRecord struct {
	TsMs          int64
	Block         int64
	RW            byte // 'R' or 'W'
	Dir           byte // 'P', 'L' or 'R'
	RealSeekTotal uint64
}

// TimeoutRecord captures the batch deadline firing.
type TimeoutRecord struct {
	TsMs int64
}

// ReportRecord captures the final FCFS-vs-SSTF comparison.
// SavingsPercent is only meaningful when SavingsValid is true (the
// simulated total was non-zero).
type ReportRecord struct {
	SimSeekTotal   uint64
	RealSeekTotal  uint64
	SavingsPercent int64
	SavingsValid   bool
}

// ConfigWarningRecord captures an out-of-range option replaced by its
// default at init.
type ConfigWarningRecord struct {
	Param       string
	Given       int64
	Substituted int64
}
