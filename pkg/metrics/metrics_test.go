package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_Counters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry("party-booking", reg)

	m.BookingAdmitted(1)
	m.BookingAdmitted(2)
	m.BookingAdmitted(2)
	m.BookingRejected("slot_full")
	m.LeadCreated("quick_order")
	m.ObserveHTTPRequest("POST", "/api/create-full-order", 200, 15*time.Millisecond)
	m.ObserveDBQuery("select", errors.New("boom"), time.Millisecond)
	m.SetDBPoolStats(4, 1, 3, 0)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsAdmitted.WithLabelValues("1")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.bookingsAdmitted.WithLabelValues("2")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.bookingsRejected.WithLabelValues("slot_full")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("POST", "/api/create-full-order", "200")))
	assert.Equal(t, 4.0, testutil.ToFloat64(m.dbOpenConnections))

	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		assert.Contains(t, f.GetName(), "party_booking_")
	}
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "party_booking", sanitize(" Party-Booking "))
	assert.Equal(t, "svc_1", sanitize("svc.1"))
}
