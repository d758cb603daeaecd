package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/birdcall/birdcall/internal/core/entities/release"
)

type Collector struct {
	registry *prometheus.Registry

	BuildInfo *prometheus.GaugeVec

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec
}

func New() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())

	c := &Collector{
		registry: registry,

		BuildInfo: promauto.With(registry).NewGaugeVec(prometheus.GaugeOpts{
			Name: "build_info",
			Help: "A metric with a constant '1' value labeled by the build the service runs with",
		}, []string{"version", "commit", "mode", "build_time"}),
		HTTPRequests: promauto.With(registry).NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "The total number of served http requests",
		}, []string{"route", "method", "code"}),
		HTTPDurations: promauto.With(registry).NewHistogramVec(prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of served http requests",
		}, []string{"route"}),
	}
	return c
}

func (c *Collector) GetRegistry() *prometheus.Registry {
	return c.registry
}

func (c *Collector) SetBuildInfo(info release.Info) {
	c.BuildInfo.Reset()
	c.BuildInfo.WithLabelValues(info.Version, info.Commit, info.Mode, info.BuildTime).Set(1)
}
