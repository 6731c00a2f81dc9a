package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the directory module.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	// Queries by operation (find_donors, filter_districts, ...)
	Queries *prometheus.CounterVec

	// Result sizes by operation
	ResultSize *prometheus.HistogramVec

	// Queries that matched nothing, by operation
	EmptyResults *prometheus.CounterVec

	// Catalog dates that failed to parse while building views
	InvalidDates prometheus.Counter

	// Spreadsheet exports served
	Exports prometheus.Counter
}

// New creates the module metrics on the default registry.
func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

// NewWithRegisterer creates the module metrics on reg. Tests pass a fresh
// prometheus.NewRegistry() so repeated construction does not collide.
func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Queries: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodnet_directory_queries_total",
			Help: "Total directory queries by operation",
		}, []string{"operation"}),

		ResultSize: f.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "bloodnet_directory_result_size",
			Help:    "Number of records returned by directory queries",
			Buckets: []float64{0, 1, 2, 5, 10, 25, 50, 100},
		}, []string{"operation"}),

		EmptyResults: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodnet_directory_empty_results_total",
			Help: "Directory queries that matched no records",
		}, []string{"operation"}),

		InvalidDates: f.NewCounter(prometheus.CounterOpts{
			Name: "bloodnet_directory_invalid_dates_total",
			Help: "Catalog dates that could not be parsed while building views",
		}),

		Exports: f.NewCounter(prometheus.CounterOpts{
			Name: "bloodnet_directory_exports_total",
			Help: "Donor list spreadsheet exports served",
		}),
	}
}

// ObserveQuery records one query and the size of its result.
func (m *Metrics) ObserveQuery(operation string, results int) {
	if m == nil {
		return
	}
	m.Queries.WithLabelValues(operation).Inc()
	m.ResultSize.WithLabelValues(operation).Observe(float64(results))
	if results == 0 {
		m.EmptyResults.WithLabelValues(operation).Inc()
	}
}

// IncrementInvalidDates records a catalog date that failed to parse.
func (m *Metrics) IncrementInvalidDates() {
	if m != nil {
		m.InvalidDates.Inc()
	}
}

// IncrementExports records a served spreadsheet export.
func (m *Metrics) IncrementExports() {
	if m != nil {
		m.Exports.Inc()
	}
}
