// SPDX-License-Identifier: MIT

package metrics

import (
	"slices"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/phylotree/seqdist"
	"github.com/katalvlaran/phylotree/tree"
	"github.com/katalvlaran/phylotree/upgma"
)

const namespace = "phylotree"

// Build results used as the "result" label value.
const (
	ResultOK    = "ok"
	ResultError = "error"
)

// Recorder collects clustering metrics on its own registry.
type Recorder struct {
	registry *prometheus.Registry

	builds        *prometheus.CounterVec
	buildDuration prometheus.Histogram
	merges        prometheus.Counter
	mergeDistance prometheus.Histogram
	leaves        prometheus.Gauge
}

// NewRecorder returns a Recorder with all collectors registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		builds: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "builds_total",
			Help:      "Tree builds by result.",
		}, []string{"result"}),
		buildDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "build_duration_seconds",
			Help:      "Wall time of one tree build.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10), // 0.1ms to ~26s
		}),
		merges: factory.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "merges_total",
			Help:      "Agglomeration steps performed.",
		}),
		mergeDistance: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "merge_distance",
			Help:      "Distance between the two clusters joined by a merge.",
			Buckets:   prometheus.LinearBuckets(0.1, 0.1, 10),
		}),
		leaves: factory.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "tree_leaves",
			Help:      "Leaves of the most recently built tree.",
		}),
	}
}

// Registry returns the registry holding the collectors.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// OnMerge records one merge. It matches the upgma.WithOnMerge hook signature.
func (r *Recorder) OnMerge(m upgma.Merge) {
	r.merges.Inc()
	r.mergeDistance.Observe(m.Distance)
}

// ObserveBuild records the outcome of one build.
func (r *Recorder) ObserveBuild(t *tree.Tree, elapsed time.Duration, err error) {
	r.buildDuration.Observe(elapsed.Seconds())
	if err != nil {
		r.builds.WithLabelValues(ResultError).Inc()

		return
	}
	r.builds.WithLabelValues(ResultOK).Inc()
	r.leaves.Set(float64(t.CountLeaves()))
}

// Build runs upgma.Build with the merge hook installed and records the result.
func (r *Recorder) Build(species []*seqdist.Species, opts ...upgma.Option) (*tree.Tree, error) {
	start := time.Now()
	t, err := upgma.Build(species, append(slices.Clip(opts), upgma.WithOnMerge(r.OnMerge))...)
	r.ObserveBuild(t, time.Since(start), err)

	return t, err
}

// WriteTextfile writes all collected metrics to path in the text exposition
// format, replacing the file atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}
