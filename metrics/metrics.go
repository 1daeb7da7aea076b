// Package metrics exposes Prometheus instrumentation for reports and store queries.
package metrics

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/uptrace/bun"
)

const namespace = "f1analytics"

// Recorder owns the registry and the collectors registered on it.
type Recorder struct {
	registry *prometheus.Registry

	reportDuration *prometheus.HistogramVec
	reportErrors   *prometheus.CounterVec
	queryDuration  *prometheus.HistogramVec
	queryErrors    *prometheus.CounterVec
}

// New builds a Recorder on a fresh registry, including Go and process collectors.
func New() *Recorder {
	reg := prometheus.NewRegistry()
	r := &Recorder{
		registry: reg,
		reportDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "duration_seconds",
			Help:      "Time taken to build an analytics report.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"report"}),
		reportErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "report",
			Name:      "errors_total",
			Help:      "Analytics reports that failed.",
		}, []string{"report"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_duration_seconds",
			Help:      "Store query latency by SQL operation.",
			Buckets:   []float64{.0005, .001, .005, .01, .05, .1, .5, 1, 5},
		}, []string{"operation"}),
		queryErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "store",
			Name:      "query_errors_total",
			Help:      "Store queries that returned an error.",
		}, []string{"operation"}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.reportDuration,
		r.reportErrors,
		r.queryDuration,
		r.queryErrors,
	)
	return r
}

// ObserveReport records one report call.
func (r *Recorder) ObserveReport(report string, start time.Time, err error) {
	r.reportDuration.WithLabelValues(report).Observe(time.Since(start).Seconds())
	if err != nil {
		r.reportErrors.WithLabelValues(report).Inc()
	}
}

// Registry returns the registry metrics are registered on.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}

// QueryHook returns a bun hook timing every store query.
func (r *Recorder) QueryHook() bun.QueryHook {
	return &queryHook{r: r}
}

type queryHook struct {
	r *Recorder
}

var _ bun.QueryHook = (*queryHook)(nil)

func (h *queryHook) BeforeQuery(ctx context.Context, _ *bun.QueryEvent) context.Context {
	return ctx
}

func (h *queryHook) AfterQuery(_ context.Context, event *bun.QueryEvent) {
	op := event.Operation()
	h.r.queryDuration.WithLabelValues(op).Observe(time.Since(event.StartTime).Seconds())
	if event.Err != nil {
		h.r.queryErrors.WithLabelValues(op).Inc()
	}
}
