package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/vaasu2002/go-matching-engine/internal/assignment"
	"github.com/vaasu2002/go-matching-engine/internal/matching/engine"
)

var (
	msgsPerSecGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_msgs_per_second",
		Help: "Reported inbound message rate per symbol.",
	}, []string{"symbol"})

	tradesPerSecGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_trades_per_second",
		Help: "Reported trade rate per symbol.",
	}, []string{"symbol"})

	avgOrderSizeGauge = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_avg_order_size",
		Help: "Reported average order size per symbol.",
	}, []string{"symbol"})

	ordersAddedCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_orders_added_total",
		Help: "Orders submitted to a symbol's book.",
	}, []string{"symbol"})

	ordersFulfilledCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_orders_fulfilled_total",
		Help: "Orders fully filled on a symbol's book.",
	}, []string{"symbol"})

	tradesCounter = promauto.NewGaugeVec(prometheus.GaugeOpts{
		Name: "matching_engine_trades_total",
		Help: "Trades executed on a symbol's book.",
	}, []string{"symbol"})
)

// RecordSample mirrors a CSV-fed load sample as gauges.
func RecordSample(s assignment.MetricSample) {
	msgsPerSecGauge.WithLabelValues(s.Symbol).Set(s.MsgsPerSec)
	tradesPerSecGauge.WithLabelValues(s.Symbol).Set(s.TradesPerSec)
	avgOrderSizeGauge.WithLabelValues(s.Symbol).Set(s.AvgOrderSize)
}

// RecordBookStats mirrors one OrderBook's lifetime counters as gauges. It
// is safe to call repeatedly (e.g. from a periodic scrape-prep loop); each
// call simply overwrites the prior values for that symbol.
func RecordBookStats(symbol string, stats engine.Stats) {
	ordersAddedCounter.WithLabelValues(symbol).Set(float64(stats.TotalOrdersAdded))
	ordersFulfilledCounter.WithLabelValues(symbol).Set(float64(stats.TotalOrdersFulfilled))
	tradesCounter.WithLabelValues(symbol).Set(float64(stats.TotalTrades))
}
