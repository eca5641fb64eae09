// Package metrics provides lightweight hooks for instrumentation.
package metrics

import "time"

// Recorder captures metric events for the application.
// Implementations can expose these to Prometheus, StatsD, etc.
type Recorder interface {
	// IncNoticeSent counts successfully dispatched billing notices.
	IncNoticeSent()
	// IncNoticeSuppressed counts requests resolved without a send
	// because the user had no active order.
	IncNoticeSuppressed()
	// IncNoticeFailed counts transport failures.
	IncNoticeFailed()
	// AddUnresolvedLines counts order lines referencing unknown products.
	AddUnresolvedLines(n int)
	// ObserveNoticeDuration records end-to-end request duration.
	ObserveNoticeDuration(duration time.Duration)
}

// Snapshotter exposes a snapshot of current metrics.
type Snapshotter interface {
	Snapshot() Snapshot
}
