package metrics

import (
	"sync/atomic"
	"time"
)

// Snapshot captures current in-memory counters.
type Snapshot struct {
	NoticesSent           uint64
	NoticesSuppressed     uint64
	NoticesFailed         uint64
	UnresolvedLines       uint64
	NoticeDurationCount   uint64
	NoticeDurationTotalNs int64
}

// InMemoryRecorder stores metrics in memory.
type InMemoryRecorder struct {
	noticesSent           uint64
	noticesSuppressed     uint64
	noticesFailed         uint64
	unresolvedLines       uint64
	noticeDurationCount   uint64
	noticeDurationTotalNs int64
}

// NewInMemory returns a Recorder that stores counters in memory.
func NewInMemory() *InMemoryRecorder {
	return &InMemoryRecorder{}
}

// Snapshot returns a copy of the counters.
func (m *InMemoryRecorder) Snapshot() Snapshot {
	return Snapshot{
		NoticesSent:           atomic.LoadUint64(&m.noticesSent),
		NoticesSuppressed:     atomic.LoadUint64(&m.noticesSuppressed),
		NoticesFailed:         atomic.LoadUint64(&m.noticesFailed),
		UnresolvedLines:       atomic.LoadUint64(&m.unresolvedLines),
		NoticeDurationCount:   atomic.LoadUint64(&m.noticeDurationCount),
		NoticeDurationTotalNs: atomic.LoadInt64(&m.noticeDurationTotalNs),
	}
}

// IncNoticeSent increments the sent counter.
func (m *InMemoryRecorder) IncNoticeSent() {
	atomic.AddUint64(&m.noticesSent, 1)
}

// IncNoticeSuppressed increments the suppressed counter.
func (m *InMemoryRecorder) IncNoticeSuppressed() {
	atomic.AddUint64(&m.noticesSuppressed, 1)
}

// IncNoticeFailed increments the failed counter.
func (m *InMemoryRecorder) IncNoticeFailed() {
	atomic.AddUint64(&m.noticesFailed, 1)
}

// AddUnresolvedLines adds to the unresolved line counter.
func (m *InMemoryRecorder) AddUnresolvedLines(count int) {
	if count > 0 {
		atomic.AddUint64(&m.unresolvedLines, uint64(count))
	}
}

// ObserveNoticeDuration records request duration.
func (m *InMemoryRecorder) ObserveNoticeDuration(duration time.Duration) {
	atomic.AddUint64(&m.noticeDurationCount, 1)
	atomic.AddInt64(&m.noticeDurationTotalNs, duration.Nanoseconds())
}
