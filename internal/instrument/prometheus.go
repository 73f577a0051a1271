package instrument

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Satisfaction guaranteed.
var _ Instrumentation = &PrometheusInstrumentation{}

// PrometheusInstrumentation exports negotiation outcome counters to
// Prometheus.
type PrometheusInstrumentation struct {
	selectedCount *prometheus.CounterVec
	noneCount     prometheus.Counter
	rejectedCount prometheus.Counter
}

// NewPrometheus returns an Instrumentation backed by Prometheus counters
// registered against reg. All metrics are prefixed with the given
// namespace.
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusInstrumentation {
	i := &PrometheusInstrumentation{
		selectedCount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "negotiation_selected_count",
			Help:      "How many negotiations selected a response coding, by coding.",
		}, []string{"coding"}),
		noneCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "negotiation_none_count",
			Help:      "How many negotiations found no mutually acceptable coding.",
		}),
		rejectedCount: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "negotiation_rejected_count",
			Help:      "How many negotiations were aborted on a malformed quality value.",
		}),
	}

	reg.MustRegister(i.selectedCount)
	reg.MustRegister(i.noneCount)
	reg.MustRegister(i.rejectedCount)

	return i
}

// NegotiationSelected increments the selected-coding counter.
func (i *PrometheusInstrumentation) NegotiationSelected(coding string) {
	i.selectedCount.WithLabelValues(coding).Inc()
}

// NegotiationNone increments the no-acceptable-coding counter.
func (i *PrometheusInstrumentation) NegotiationNone() {
	i.noneCount.Inc()
}

// NegotiationRejected increments the malformed-header counter.
func (i *PrometheusInstrumentation) NegotiationRejected() {
	i.rejectedCount.Inc()
}
