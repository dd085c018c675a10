package metrics

import (
	"time"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	clickhouseRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "clickhouse",
		Name:      "operations_total",
		Help:      "Count of ClickHouse operations.",
	}, []string{"operation", "coin", "network", "status"})
	clickhouseRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "clickhouse",
		Name:      "operation_duration_seconds",
		Help:      "Duration of ClickHouse operations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"operation", "coin", "network", "status"})
)

// ClickhouseRepository tracks metrics for repository calls.
type ClickhouseRepository struct{}

// NewClickhouseRepository constructs a metrics collector for ClickHouse calls.
func NewClickhouseRepository() *ClickhouseRepository {
	return &ClickhouseRepository{}
}

// Observe records a single repository call outcome and duration.
func (m ClickhouseRepository) Observe(operation string, coin model.Coin, network model.Network, err error, started time.Time) {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	status := "success"
	if err != nil {
		status = "error"
	}

	clickhouseRequestsTotal.WithLabelValues(operation, string(coin), string(network), status).Inc()
	clickhouseRequestDuration.WithLabelValues(operation, string(coin), string(network), status).Observe(time.Since(started).Seconds())
}
