package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Collector struct {
	reg *prometheus.Registry

	HTTPRequests *prometheus.CounterVec   // route, method, status
	HTTPDuration *prometheus.HistogramVec // route, method

	TrackingUpdates   prometheus.Counter
	UpstreamFailures  prometheus.Counter
	RateLimitRejected prometheus.Counter
	CacheErrors       *prometheus.CounterVec // op label: record|list|rate_limit

	EventsPublished   prometheus.Counter
	EventsPublishErrs prometheus.Counter

	GeoIndexFallbacks prometheus.Counter
}

func NewCollector() *Collector {
	reg := prometheus.NewRegistry()

	c := &Collector{
		reg: reg,
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onestop_http_requests_total",
			Help: "Total HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "onestop_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.ExponentialBuckets(0.001, 2, 15),
		}, []string{"route", "method"}),
		TrackingUpdates: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_tracking_updates_total",
			Help: "Total approach records written to the live position cache.",
		}),
		UpstreamFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_distance_upstream_failures_total",
			Help: "Total failed distance API lookups.",
		}),
		RateLimitRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_rate_limit_rejected_total",
			Help: "Total requests rejected by the rate limiter.",
		}),
		CacheErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "onestop_cache_errors_total",
			Help: "Total Redis errors by operation.",
		}, []string{"op"}),
		EventsPublished: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_nats_published_total",
			Help: "Total tracking events published.",
		}),
		EventsPublishErrs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_nats_publish_errors_total",
			Help: "Total tracking event publish errors.",
		}),
		GeoIndexFallbacks: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "onestop_geo_index_fallbacks_total",
			Help: "Nearest-stop queries served by the database after a Redis failure.",
		}),
	}

	reg.MustRegister(
		c.HTTPRequests, c.HTTPDuration,
		c.TrackingUpdates, c.UpstreamFailures, c.RateLimitRejected, c.CacheErrors,
		c.EventsPublished, c.EventsPublishErrs, c.GeoIndexFallbacks,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return c
}

func (c *Collector) Handler() http.Handler { return promhttp.HandlerFor(c.reg, promhttp.HandlerOpts{}) }
