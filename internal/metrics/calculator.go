package metrics

import (
	"time"

	"github.com/goodnatureofminers/reorgcalc7000-backend/internal/model"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calcAccumulateTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "accumulate_total",
		Help:      "Count of chain work accumulations.",
	}, []string{"coin", "network", "status"})

	calcAccumulateDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "accumulate_duration_seconds",
		Help:      "Duration of chain work accumulations.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	calcAccumulateBlocks = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "accumulate_blocks",
		Help:      "Number of blocks covered per accumulation.",
		Buckets:   prometheus.ExponentialBuckets(1, 4, 12), // 1..~4.2M
	}, []string{"coin", "network"})

	calcScanTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "scan_total",
		Help:      "Count of batch fork-height scans.",
	}, []string{"coin", "network", "status"})

	calcScanDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "scan_duration_seconds",
		Help:      "Duration of batch fork-height scans.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"coin", "network", "status"})

	calcScanCandidates = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "reorgcalc7000",
		Subsystem: "calculator",
		Name:      "scan_candidates",
		Help:      "Number of candidate heights produced per scan.",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 16), // 1..32768
	}, []string{"coin", "network"})
)

// Calculator tracks metrics for work accumulation and batch scans.
type Calculator struct {
	coin    model.Coin
	network model.Network
}

// NewCalculator constructs a metrics collector for the calculator core.
func NewCalculator(coin model.Coin, network model.Network) *Calculator {
	if coin == "" {
		coin = "unknown"
	}
	if network == "" {
		network = "unknown"
	}
	return &Calculator{coin: coin, network: network}
}

// ObserveAccumulate records one chain work accumulation.
func (m Calculator) ObserveAccumulate(err error, blocks uint64, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	calcAccumulateTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	calcAccumulateDuration.WithLabelValues(string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		calcAccumulateBlocks.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(blocks))
	}
}

// ObserveScan records one batch fork-height scan.
func (m Calculator) ObserveScan(err error, candidates int, started time.Time) {
	status := "success"
	if err != nil {
		status = "error"
	}
	calcScanTotal.WithLabelValues(string(m.coin), string(m.network), status).Inc()
	calcScanDuration.WithLabelValues(string(m.coin), string(m.network), status).Observe(time.Since(started).Seconds())
	if err == nil {
		calcScanCandidates.WithLabelValues(string(m.coin), string(m.network)).Observe(float64(candidates))
	}
}
