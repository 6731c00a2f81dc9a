package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	Rejections prometheus.Counter
	Errors     prometheus.Counter
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	factory := promauto.With(reg)
	return &Metrics{
		Rejections: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodnet_ratelimit_rejections_total",
			Help: "Requests refused because the client exceeded its rate limit",
		}),
		Errors: factory.NewCounter(prometheus.CounterOpts{
			Name: "bloodnet_ratelimit_errors_total",
			Help: "Rate limit checks that failed and let the request through",
		}),
	}
}

func (m *Metrics) IncrementRejections() {
	if m == nil {
		return
	}
	m.Rejections.Inc()
}

func (m *Metrics) IncrementErrors() {
	if m == nil {
		return
	}
	m.Errors.Inc()
}
