package batch

import "sync/atomic"

// ExecutionStats counts submitted, completed, and failed tasks. No
// queue-depth or worker-count history: a batch pool never rescales (see
// pool.go).
type ExecutionStats struct {
	Submitted int64
	Completed int64
	Failed    int64
}

func newExecutionStats() *ExecutionStats { return &ExecutionStats{} }

func (es *ExecutionStats) recordSubmitted() { atomic.AddInt64(&es.Submitted, 1) }
func (es *ExecutionStats) recordCompleted() { atomic.AddInt64(&es.Completed, 1) }
func (es *ExecutionStats) recordFailed(err error) {
	_ = err
	atomic.AddInt64(&es.Failed, 1)
}

func (es *ExecutionStats) snapshot() ExecutionStats {
	return ExecutionStats{
		Submitted: atomic.LoadInt64(&es.Submitted),
		Completed: atomic.LoadInt64(&es.Completed),
		Failed:    atomic.LoadInt64(&es.Failed),
	}
}
