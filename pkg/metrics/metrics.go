// Package metrics exposes Prometheus collectors for the viewtree
// pipeline: diff production, patch application, and frame transport.
// Collectors register on the default registry via promauto.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// DiffsTotal counts completed diffs.
	DiffsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "viewtree",
		Name:      "diffs_total",
		Help:      "Number of tree diffs computed.",
	})

	// DiffPatches observes the patch count per diff.
	DiffPatches = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "viewtree",
		Name:      "diff_patches",
		Help:      "Patches emitted per diff.",
		Buckets:   []float64{0, 1, 2, 5, 10, 25, 50, 100, 250, 1000},
	})

	// ApplyTotal counts patch list applications.
	ApplyTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "viewtree",
		Name:      "apply_total",
		Help:      "Number of patch lists applied.",
	})

	// ApplyFailures counts applications aborted by a surface error.
	ApplyFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "viewtree",
		Name:      "apply_failures_total",
		Help:      "Patch list applications aborted by a surface error.",
	})

	// ApplyDuration observes successful application latency.
	ApplyDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "viewtree",
		Name:      "apply_duration_seconds",
		Help:      "Wall time of successful patch list applications.",
		Buckets:   prometheus.DefBuckets,
	})

	// FramesSent counts patch frames pushed to clients.
	FramesSent = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "viewtree",
		Name:      "frames_sent_total",
		Help:      "Patch frames sent over the wire.",
	})

	// FrameBytes counts encoded patch frame bytes pushed to clients.
	FrameBytes = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "viewtree",
		Name:      "frame_bytes_sent_total",
		Help:      "Encoded bytes of patch frames sent over the wire.",
	})
)

// ObserveDiff records one completed diff and its patch count.
func ObserveDiff(patchCount int) {
	DiffsTotal.Inc()
	DiffPatches.Observe(float64(patchCount))
}
