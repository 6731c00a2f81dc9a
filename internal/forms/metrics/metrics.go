package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the public forms.
// All methods are safe to call on a nil receiver.
type Metrics struct {
	// Field changes applied, by form
	Changes *prometheus.CounterVec

	// Submissions by form and outcome (accepted, rejected)
	Submissions *prometheus.CounterVec

	// Rejected fields by form and field name
	FieldErrors *prometheus.CounterVec
}

func New() *Metrics {
	return NewWithRegisterer(prometheus.DefaultRegisterer)
}

func NewWithRegisterer(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Changes: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodnet_form_changes_total",
			Help: "Draft field changes applied, by form",
		}, []string{"form"}),
		Submissions: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodnet_form_submissions_total",
			Help: "Form submissions by form and outcome",
		}, []string{"form", "outcome"}),
		FieldErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "bloodnet_form_field_errors_total",
			Help: "Fields that failed validation on submit",
		}, []string{"form", "field"}),
	}
}

func (m *Metrics) IncrementChanges(form string) {
	if m != nil {
		m.Changes.WithLabelValues(form).Inc()
	}
}

// ObserveSubmission records one submit and, when rejected, each failing field.
func (m *Metrics) ObserveSubmission(form string, accepted bool, failedFields []string) {
	if m == nil {
		return
	}
	outcome := "rejected"
	if accepted {
		outcome = "accepted"
	}
	m.Submissions.WithLabelValues(form, outcome).Inc()
	for _, field := range failedFields {
		m.FieldErrors.WithLabelValues(form, field).Inc()
	}
}
