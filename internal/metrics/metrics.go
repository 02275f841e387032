// Package metrics records per-run statistics of the graph tools in a
// private Prometheus registry and can dump them in the text exposition
// format for the node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Recorder owns the registry and collectors of one tool invocation.
type Recorder struct {
	reg *prometheus.Registry

	GraphVertices     prometheus.Gauge
	GraphEdges        prometheus.Gauge
	ReachedVertices   prometheus.Gauge
	MaxLevel          prometheus.Gauge
	LoadDuration      prometheus.Histogram
	BuildDuration     prometheus.Histogram
	TraversalDuration prometheus.Histogram
	OutputBytes       prometheus.Counter
}

// New creates a Recorder whose series carry a constant tool label.
func New(tool string) *Recorder {
	labels := prometheus.Labels{"tool": tool}
	buckets := prometheus.ExponentialBuckets(0.0001, 4, 10)

	r := &Recorder{
		reg: prometheus.NewRegistry(),
		GraphVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "csrbfs_graph_vertices",
			Help:        "Vertex count n of the processed graph",
			ConstLabels: labels,
		}),
		GraphEdges: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "csrbfs_graph_edges",
			Help:        "Directed edge count m of the processed graph",
			ConstLabels: labels,
		}),
		ReachedVertices: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "csrbfs_bfs_reached_vertices",
			Help:        "Vertices reached from the BFS source, source included",
			ConstLabels: labels,
		}),
		MaxLevel: prometheus.NewGauge(prometheus.GaugeOpts{
			Name:        "csrbfs_bfs_max_level",
			Help:        "Largest BFS level assigned",
			ConstLabels: labels,
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "csrbfs_load_duration_seconds",
			Help:        "Time spent reading and parsing the input file",
			ConstLabels: labels,
			Buckets:     buckets,
		}),
		BuildDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "csrbfs_build_duration_seconds",
			Help:        "Time spent converting an edge list to CSR",
			ConstLabels: labels,
			Buckets:     buckets,
		}),
		TraversalDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:        "csrbfs_bfs_duration_seconds",
			Help:        "Wall-clock BFS traversal time",
			ConstLabels: labels,
			Buckets:     buckets,
		}),
		OutputBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name:        "csrbfs_output_bytes_total",
			Help:        "Bytes written to output files",
			ConstLabels: labels,
		}),
	}
	r.reg.MustRegister(
		r.GraphVertices, r.GraphEdges, r.ReachedVertices, r.MaxLevel,
		r.LoadDuration, r.BuildDuration, r.TraversalDuration, r.OutputBytes,
	)
	return r
}

// Registry exposes the underlying registry, e.g. for tests.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.reg
}

// ObserveGraph records the graph size.
func (r *Recorder) ObserveGraph(n, m int) {
	r.GraphVertices.Set(float64(n))
	r.GraphEdges.Set(float64(m))
}

// ObserveTraversal records the outcome of one BFS.
func (r *Recorder) ObserveTraversal(reached, maxLevel int, d time.Duration) {
	r.ReachedVertices.Set(float64(reached))
	r.MaxLevel.Set(float64(maxLevel))
	r.TraversalDuration.Observe(d.Seconds())
}

// Flush writes the registry to path in text exposition format.
// An empty path disables flushing.
func (r *Recorder) Flush(path string) error {
	if path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.reg)
}
