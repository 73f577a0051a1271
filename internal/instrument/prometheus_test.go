package instrument

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestPrometheusCounters(t *testing.T) {
	reg := prometheus.NewRegistry()
	i := NewPrometheus(reg, "test")

	i.NegotiationSelected("gzip")
	i.NegotiationSelected("gzip")
	i.NegotiationSelected("deflate")
	i.NegotiationNone()
	i.NegotiationRejected()
	i.NegotiationRejected()

	assert.Equal(t, 2.0, testutil.ToFloat64(i.selectedCount.WithLabelValues("gzip")))
	assert.Equal(t, 1.0, testutil.ToFloat64(i.selectedCount.WithLabelValues("deflate")))
	assert.Equal(t, 1.0, testutil.ToFloat64(i.noneCount))
	assert.Equal(t, 2.0, testutil.ToFloat64(i.rejectedCount))
}
