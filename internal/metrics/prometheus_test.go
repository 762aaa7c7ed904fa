package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"

	"github.com/vaasu2002/go-matching-engine/internal/matching/engine"
)

func TestRecordBookStats_SetsGaugesPerSymbol(t *testing.T) {
	stats := engine.Stats{
		TotalOrdersAdded:     10,
		TotalOrdersFulfilled: 4,
		TotalTrades:          6,
	}

	RecordBookStats("TSLA", stats)

	assert.Equal(t, float64(10), testutil.ToFloat64(ordersAddedCounter.WithLabelValues("TSLA")))
	assert.Equal(t, float64(4), testutil.ToFloat64(ordersFulfilledCounter.WithLabelValues("TSLA")))
	assert.Equal(t, float64(6), testutil.ToFloat64(tradesCounter.WithLabelValues("TSLA")))
}

func TestRecordBookStats_OverwritesOnRepeatedCalls(t *testing.T) {
	RecordBookStats("AAPL", engine.Stats{TotalOrdersAdded: 1})
	RecordBookStats("AAPL", engine.Stats{TotalOrdersAdded: 5})

	assert.Equal(t, float64(5), testutil.ToFloat64(ordersAddedCounter.WithLabelValues("AAPL")))
}
