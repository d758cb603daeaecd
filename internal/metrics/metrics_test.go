package metrics_test

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/birdcall/birdcall/internal/core/entities/release"
	"github.com/birdcall/birdcall/internal/metrics"
)

func TestCollector_SetBuildInfo(t *testing.T) {
	collector := metrics.New()

	collector.SetBuildInfo(release.New("development", "1.0.0", "foobar", "2024-01-01T00:00:00Z"))
	collector.SetBuildInfo(release.New("production", "1.2.3", "abc123", "2024-01-01T00:00:00Z"))

	// only the latest build is reported
	assert.Equal(t, 1, testutil.CollectAndCount(collector.BuildInfo))
	gauge := collector.BuildInfo.WithLabelValues("1.2.3", "abc123", "production", "2024-01-01T00:00:00Z")
	assert.InDelta(t, 1.0, testutil.ToFloat64(gauge), 0)
}

func TestCollector_Registry(t *testing.T) {
	collector := metrics.New()
	collector.HTTPRequests.WithLabelValues("/status", "GET", "200").Inc()
	collector.HTTPDurations.WithLabelValues("/status").Observe(0.5)

	families, err := collector.GetRegistry().Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, mf := range families {
		names[mf.GetName()] = true
	}
	assert.True(t, names["go_goroutines"])
	assert.True(t, names["http_requests_total"])
	assert.True(t, names["http_request_duration_seconds"])
	// build info is not reported until it has been set
	assert.False(t, names["build_info"])
}
