package metrics

import (
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/staking/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	exporterRunsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_rewards",
		Subsystem: "exporter",
		Name:      "runs_total",
		Help:      "Count of export runs.",
	}, []string{"network", "status"})

	exporterRowsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "staking_rewards",
		Subsystem: "exporter",
		Name:      "rows_total",
		Help:      "Count of exported reward rows.",
	}, []string{"network"})

	exporterRunDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_rewards",
		Subsystem: "exporter",
		Name:      "run_duration_seconds",
		Help:      "Duration of an export run.",
		Buckets:   []float64{.5, 1, 2.5, 5, 10, 30, 60, 120, 300, 600},
	}, []string{"network", "status"})

	exporterStageDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "staking_rewards",
		Subsystem: "exporter",
		Name:      "stage_duration_seconds",
		Help:      "Duration of a single export stage.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"network", "stage", "status"})
)

// Exporter tracks metrics of the reward export service.
type Exporter struct {
	network model.Network
}

// NewExporter constructs a metrics collector for export runs.
func NewExporter(network model.Network) *Exporter {
	if network == "" {
		network = "unknown"
	}
	return &Exporter{network: network}
}

// ObserveStage records the outcome of one stage (fetching rewards, fetching prices, writing).
func (m Exporter) ObserveStage(stage string, err error, started time.Time) {
	exporterStageDuration.WithLabelValues(string(m.network), stage, status(err)).
		Observe(time.Since(started).Seconds())
}

// ObserveRun records the outcome of a whole run and the rows it wrote.
func (m Exporter) ObserveRun(err error, rows int, started time.Time) {
	s := status(err)
	exporterRunsTotal.WithLabelValues(string(m.network), s).Inc()
	exporterRunDuration.WithLabelValues(string(m.network), s).Observe(time.Since(started).Seconds())
	exporterRowsTotal.WithLabelValues(string(m.network)).Add(float64(rows))
}

func status(err error) string {
	if err != nil {
		return "error"
	}
	return "success"
}
