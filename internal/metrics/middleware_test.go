package metrics_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"alcyxob/fitplanner/internal/metrics"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRequestMetrics(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewTestManager()

	router := gin.New()
	router.Use(metrics.RequestMetrics(m))
	router.GET("/ok", func(c *gin.Context) { c.Status(http.StatusOK) })
	router.GET("/missing", func(c *gin.Context) { c.Status(http.StatusNotFound) })

	for _, path := range []string{"/ok", "/ok", "/missing"} {
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, path, nil))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, 0.0, testutil.ToFloat64(m.GaugeRequests))
}

func TestNewManager_RegistersOnOwnRegistry(t *testing.T) {
	m, reg := metrics.NewTestManagerAndRegistry()
	m.CounterGenerations.WithLabelValues(metrics.OutcomeCompleted).Inc()

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make([]string, 0, len(families))
	for _, f := range families {
		names = append(names, f.GetName())
	}
	assert.Contains(t, names, "fitplanner_test_server_plan_generations")
}

func TestPanicRecovery(t *testing.T) {
	gin.SetMode(gin.TestMode)
	m := metrics.NewTestManager()

	router := gin.New()
	router.Use(metrics.RequestMetrics(m), metrics.PanicRecovery(m, zap.NewNop()))
	router.GET("/boom", func(c *gin.Context) { panic("boom") })

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"error":"internal server error"}`, rr.Body.String())
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterHandleRequestPanic))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CounterRequests.WithLabelValues("GET", "500")))
}
