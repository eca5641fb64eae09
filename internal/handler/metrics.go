package handler

import (
	"fmt"
	"net/http"

	"github.com/adriagold/billnotice/internal/metrics"
)

// MetricsHandler exposes in-memory metrics.
type MetricsHandler struct {
	snapshotter metrics.Snapshotter
}

// NewMetricsHandler creates a new MetricsHandler.
func NewMetricsHandler(snapshotter metrics.Snapshotter) *MetricsHandler {
	return &MetricsHandler{snapshotter: snapshotter}
}

// Metrics returns metrics in Prometheus exposition format.
func (h *MetricsHandler) Metrics(w http.ResponseWriter, r *http.Request) {
	if h.snapshotter == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	snap := h.snapshotter.Snapshot()

	w.Header().Set("Content-Type", "text/plain; version=0.0.4")

	writeMetric(w, "billnotice_notices_sent_total %d\n", snap.NoticesSent)
	writeMetric(w, "billnotice_notices_suppressed_total %d\n", snap.NoticesSuppressed)
	writeMetric(w, "billnotice_notices_failed_total %d\n", snap.NoticesFailed)
	writeMetric(w, "billnotice_unresolved_lines_total %d\n", snap.UnresolvedLines)
	writeMetric(w, "billnotice_notice_duration_seconds_count %d\n", snap.NoticeDurationCount)
	writeMetric(w, "billnotice_notice_duration_seconds_sum %.6f\n", float64(snap.NoticeDurationTotalNs)/1e9)
}

func writeMetric(w http.ResponseWriter, format string, args ...any) {
	_, _ = fmt.Fprintf(w, format, args...)
}
