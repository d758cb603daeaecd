package middleware_test

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcall/birdcall/internal/metrics"
	"github.com/birdcall/birdcall/internal/rest/middleware"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(router *gin.Engine, method, path string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for key, values := range header {
		for _, value := range values {
			req.Header.Add(key, value)
		}
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestRequestID_Generated(t *testing.T) {
	var seen string
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/status", func(c *gin.Context) {
		seen = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	rec := serve(router, http.MethodGet, "/status", nil)

	requestID := rec.Header().Get(middleware.RequestIDHeader)
	require.NotEmpty(t, requestID)
	_, err := uuid.Parse(requestID)
	assert.NoError(t, err)
	assert.Equal(t, requestID, seen)

	other := serve(router, http.MethodGet, "/status", nil)
	assert.NotEqual(t, requestID, other.Header().Get(middleware.RequestIDHeader))
}

func TestRequestID_Reused(t *testing.T) {
	router := gin.New()
	router.Use(middleware.RequestID())
	router.GET("/status", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	rec := serve(router, http.MethodGet, "/status", http.Header{middleware.RequestIDHeader: {"req-42"}})

	assert.Equal(t, "req-42", rec.Header().Get(middleware.RequestIDHeader))
}

func TestMetrics(t *testing.T) {
	clock := clockwork.NewFakeClock()
	collector := metrics.New()

	router := gin.New()
	router.Use(middleware.Metrics(clock, collector))
	router.GET("/status/:prefix", func(c *gin.Context) {
		clock.Advance(time.Millisecond * 250)
		c.Status(http.StatusOK)
	})

	serve(router, http.MethodGet, "/status/foo", nil)
	serve(router, http.MethodGet, "/status/bar", nil)
	serve(router, http.MethodGet, "/missing", nil)

	assert.InDelta(t, 2.0, testutil.ToFloat64(
		collector.HTTPRequests.WithLabelValues("/status/:prefix", "GET", "200"),
	), 0)
	assert.InDelta(t, 1.0, testutil.ToFloat64(
		collector.HTTPRequests.WithLabelValues("unmatched", "GET", "404"),
	), 0)
	// one label set per route, not per path
	assert.Equal(t, 2, testutil.CollectAndCount(collector.HTTPRequests))
	assert.Equal(t, 2, testutil.CollectAndCount(collector.HTTPDurations))

	families, err := collector.GetRegistry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != "http_request_duration_seconds" {
			continue
		}
		for _, m := range mf.GetMetric() {
			if m.GetLabel()[0].GetValue() == "/status/:prefix" {
				assert.Equal(t, uint64(2), m.GetHistogram().GetSampleCount())
				assert.InDelta(t, 0.5, m.GetHistogram().GetSampleSum(), 0.0001)
			}
		}
	}
}

func TestAccessLog(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).Level(zerolog.DebugLevel)
	clock := clockwork.NewFakeClock()

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.AccessLog(clock, &logger))
	router.GET("/status/:prefix", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	serve(router, http.MethodGet, "/status/foo", http.Header{middleware.RequestIDHeader: {"req-1"}})

	line := buf.String()
	assert.Contains(t, line, `"route":"/status/:prefix"`)
	assert.Contains(t, line, `"path":"/status/foo"`)
	assert.Contains(t, line, `"status":200`)
	assert.Contains(t, line, `"request_id":"req-1"`)
	assert.Contains(t, line, "Served http request")
}
