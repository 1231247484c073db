package monitoring

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecordServiceCall(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	m.RecordServiceCall("vector", "vector.dot", "success", 2*time.Millisecond)
	m.RecordServiceCall("vector", "vector.dot", "success", time.Millisecond)
	m.RecordServiceError("vector", "vector.unit", "zero_vector")

	assert.Equal(t, 2.0, promtest.ToFloat64(m.ServiceCalls.WithLabelValues("vector", "vector.dot", "success")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ServiceErrors.WithLabelValues("vector", "vector.unit", "zero_vector")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.ServiceCalls)
	assert.Equal(t, int64(1), snap.ServiceErrors)
}

func TestTimer(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	NewTimer(m, "vector", "vector.add").Stop("failure")
	assert.Equal(t, 1.0, promtest.ToFloat64(m.ServiceCalls.WithLabelValues("vector", "vector.add", "failure")))

	// nil collector is tolerated
	assert.GreaterOrEqual(t, NewTimer(nil, "vector", "vector.add").Stop("success"), time.Duration(0))
}

func TestMiddleware(t *testing.T) {
	m := NewMetrics(prometheus.NewRegistry())

	router := gin.New()
	router.Use(Middleware(m))
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	for _, path := range []string{"/health", "/missing"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, nil)
		router.ServeHTTP(w, req)
	}

	assert.Equal(t, 1.0, promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "/health", "200")))
	assert.Equal(t, 1.0, promtest.ToFloat64(m.RequestsTotal.WithLabelValues("GET", "unmatched", "404")))

	snap := m.Snapshot()
	assert.Equal(t, int64(2), snap.TotalRequests)
	assert.Equal(t, int64(1), snap.TotalErrors)
	assert.GreaterOrEqual(t, snap.AvgDuration, 0.0)
}

func TestSeparateRegistries(t *testing.T) {
	// Two collectors on distinct registries must not conflict.
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() {
		NewMetrics(reg)
		NewMetrics(prometheus.NewRegistry())
	})

	m := NewMetrics(prometheus.NewRegistry())
	m.SetRegisteredServices(3)
	assert.Equal(t, 3.0, promtest.ToFloat64(m.RegisteredServices))
}
