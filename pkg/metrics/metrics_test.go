package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestRecorders(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("detailing", reg)

	m.RecordBookingCreated("full")
	m.RecordBookingCreated("full")
	m.RecordMalformedRecord("missing_start_time")
	m.RecordDegradedRead()
	m.RecordNotificationFailure()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.BookingsCreated.WithLabelValues("detailing", "full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.MalformedRecords.WithLabelValues("detailing", "missing_start_time")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.DegradedReads.WithLabelValues("detailing")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.NotificationFailures.WithLabelValues("detailing")))
	assert.Equal(t, "detailing", m.ServiceName())
}

func TestNilMetricsAreNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.RecordBookingCreated("full")
		m.RecordMalformedRecord("x")
		m.RecordDegradedRead()
		m.RecordNotificationFailure()
	})
	assert.Empty(t, m.ServiceName())
}
