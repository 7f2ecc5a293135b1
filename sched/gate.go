// The release gate: decides whether a dispatch call drains the queue.

package sched

// GateOpen reports whether a dispatch opportunity may drain the pending
// queue. The gate opens when the consumer forces a drain, when the queue
// has reached the configured batch threshold, or when the oldest batch has
// waited longer than the deadline.
func GateOpen(force bool, queueLen, queueSize int, elapsedMs, maxWaitMs int64) bool {
	return force || queueLen >= queueSize || elapsedMs > maxWaitMs
}
