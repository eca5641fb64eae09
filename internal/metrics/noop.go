package metrics

import "time"

// NoopRecorder implements Recorder with no-op methods.
type NoopRecorder struct{}

// NewNoop returns a Recorder that discards all metrics.
func NewNoop() Recorder {
	return &NoopRecorder{}
}

// IncNoticeSent is a no-op.
func (n *NoopRecorder) IncNoticeSent() {}

// IncNoticeSuppressed is a no-op.
func (n *NoopRecorder) IncNoticeSuppressed() {}

// IncNoticeFailed is a no-op.
func (n *NoopRecorder) IncNoticeFailed() {}

// AddUnresolvedLines is a no-op.
func (n *NoopRecorder) AddUnresolvedLines(count int) {}

// ObserveNoticeDuration is a no-op.
func (n *NoopRecorder) ObserveNoticeDuration(duration time.Duration) {}
