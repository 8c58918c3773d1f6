// Package metrics provides Prometheus metrics for the browser.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Recorder counts browser activity. It implements browser.Stats.
type Recorder struct {
	redraws           prometheus.Counter
	navigations       prometheus.Counter
	permissionDenials prometheus.Counter
	droppedEntries    prometheus.Counter
	loadDuration      prometheus.Histogram
	snapshotEntries   prometheus.Gauge
}

// NewRecorder registers the browser metrics with reg.
func NewRecorder(reg prometheus.Registerer) *Recorder {
	f := promauto.With(reg)
	return &Recorder{
		redraws: f.NewCounter(prometheus.CounterOpts{
			Name: "fx_redraws_total",
			Help: "Total number of full redraws",
		}),
		navigations: f.NewCounter(prometheus.CounterOpts{
			Name: "fx_navigations_total",
			Help: "Total number of successful directory changes",
		}),
		permissionDenials: f.NewCounter(prometheus.CounterOpts{
			Name: "fx_permission_denied_total",
			Help: "Total number of clicks on entries without permission",
		}),
		droppedEntries: f.NewCounter(prometheus.CounterOpts{
			Name: "fx_dropped_entries_total",
			Help: "Directory entries left out because a snapshot was full",
		}),
		loadDuration: f.NewHistogram(prometheus.HistogramOpts{
			Name:    "fx_directory_load_duration_seconds",
			Help:    "Time to open and read a directory",
			Buckets: prometheus.DefBuckets,
		}),
		snapshotEntries: f.NewGauge(prometheus.GaugeOpts{
			Name: "fx_snapshot_entries",
			Help: "Number of entries in the current snapshot",
		}),
	}
}

func (r *Recorder) Redraw() {
	r.redraws.Inc()
}

func (r *Recorder) Loaded(took time.Duration, entries, dropped int) {
	r.loadDuration.Observe(took.Seconds())
	r.snapshotEntries.Set(float64(entries))
	r.droppedEntries.Add(float64(dropped))
}

func (r *Recorder) Navigation() {
	r.navigations.Inc()
}

func (r *Recorder) PermissionDenied() {
	r.permissionDenials.Inc()
}

// Handler returns the HTTP handler for the Prometheus metrics endpoint.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
