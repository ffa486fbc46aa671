package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"exusiai.dev/statsboard/internal/constant"
)

const (
	ServiceName = constant.ServiceName
)

const (
	OutcomeOK             = "ok"
	OutcomeHTTPError      = "http_error"
	OutcomeTransportError = "transport_error"
	OutcomeParseError     = "parse_error"
)

var (
	LoaderFetchDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    prometheus.BuildFQName(ServiceName, "loader", "fetch_duration_seconds"),
		Help:    "Duration of upstream stats fetches in seconds",
		Buckets: prometheus.ExponentialBuckets(0.01, 2, 10),
	})
	LoaderFetchTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "loader", "fetch_total"),
		Help: "Upstream stats fetches by outcome",
	}, []string{"outcome"})
	LoaderDiscardedTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: prometheus.BuildFQName(ServiceName, "loader", "discarded_total"),
		Help: "Fetch results dropped because a newer fetch had been issued",
	})
	LoaderLastSuccess = promauto.NewGauge(prometheus.GaugeOpts{
		Name: prometheus.BuildFQName(ServiceName, "loader", "last_success_timestamp_seconds"),
		Help: "Unix time of the last applied successful fetch",
	})
)
