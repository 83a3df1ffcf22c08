package observability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMetricsCountsRequestsPerPathMethodStatus(t *testing.T) {
	metrics := NewMetrics()

	metrics.RecordRequest("/leads", "POST", 201, 5*time.Millisecond)
	metrics.RecordRequest("/leads", "POST", 201, 7*time.Millisecond)
	metrics.RecordRequest("/leads", "GET", 200, time.Millisecond)

	assert.Equal(t, int64(2), metrics.RequestTotal("/leads", "POST", 201))
	assert.Equal(t, int64(1), metrics.RequestTotal("/leads", "GET", 200))
	assert.Equal(t, int64(0), metrics.RequestTotal("/leads", "PATCH", 200))
}

func TestMetricsNilReceiverSafe(t *testing.T) {
	var metrics *Metrics
	metrics.RecordRequest("/leads", "GET", 200, 0)
	metrics.RecordError("/leads", "GET", "INTERNAL_ERROR")
	assert.Equal(t, int64(0), metrics.RequestTotal("/leads", "GET", 200))
}
