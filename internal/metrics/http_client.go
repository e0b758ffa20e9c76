package metrics

import (
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_rewards",
		Subsystem: "http_client",
		Name:      "operations_total",
		Help:      "Count of upstream API requests.",
	}, []string{"operation", "network", "status"})
	httpRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_rewards",
		Subsystem: "http_client",
		Name:      "operation_duration_seconds",
		Help:      "Duration of upstream API requests.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "network", "status"})
)

// HTTPClient tracks metrics for requests to Subscan and CoinGecko.
type HTTPClient struct {
	network model.Network
}

// NewHTTPClient constructs a metrics collector for upstream API requests.
func NewHTTPClient(network model.Network) *HTTPClient {
	if network == "" {
		network = "unknown"
	}
	return &HTTPClient{network: network}
}

// Observe records a single request outcome and duration.
func (m HTTPClient) Observe(operation string, err error, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}

	httpRequestsTotal.WithLabelValues(operation, string(m.network), status).Inc()
	httpRequestDuration.WithLabelValues(operation, string(m.network), status).Observe(time.Since(started).Seconds())
}
