package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_ReservationCounters(t *testing.T) {
	m := NewWithRegisterer("test", prometheus.NewRegistry())

	m.RecordReservationCreated()
	m.RecordReservationRejected("SLOT_OVERLAP")
	m.RecordReservationRejected("SLOT_OVERLAP")
	m.RecordStatusTransition("confirmed")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues()))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.ReservationsRejected.WithLabelValues("SLOT_OVERLAP")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsStatus.WithLabelValues("confirmed")))
}

func TestMetrics_NilSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RecordReservationCreated()
		m.RecordReservationRejected("PAST_DATETIME")
		m.RecordStatusTransition("canceled")
	})
}
