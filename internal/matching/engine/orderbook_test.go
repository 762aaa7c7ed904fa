package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

func TestOrderBook_CrossAndRest(t *testing.T) {
	ob := NewOrderBook("TSLA")

	sell, err := order.MakeLimit(2, order.Sell, 50, "TSLA", 17400, order.DefaultTIF)
	require.NoError(t, err)
	ob.ProcessOrder(sell)

	buy, err := order.MakeLimit(1, order.Buy, 100, "TSLA", 17500, order.DefaultTIF)
	require.NoError(t, err)
	ob.ProcessOrder(buy)

	assert.Equal(t, order.Fulfilled, sell.Status())
	assert.Equal(t, order.PartiallyFilled, buy.Status())
	assert.EqualValues(t, 1, ob.Stats().TotalOrdersFulfilled)
	assert.EqualValues(t, 1, ob.Stats().TotalTrades)
}

func TestOrderBook_CancelRestingOrder(t *testing.T) {
	ob := NewOrderBook("TSLA")
	o, err := order.MakeLimit(1, order.Buy, 10, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	ob.ProcessOrder(o)
	require.Equal(t, order.Pending, o.Status())

	require.NoError(t, ob.Cancel(1))
	assert.Error(t, ob.Cancel(1), "cancelling twice must fail")
}

func TestOrderBook_StopOrderRestsUntouched(t *testing.T) {
	ob := NewOrderBook("TSLA")

	sell, err := order.MakeLimit(1, order.Sell, 100, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	ob.ProcessOrder(sell)

	stop, err := order.MakeStop(2, order.Buy, 30, "TSLA", 150, order.DefaultTIF)
	require.NoError(t, err)
	ob.ProcessOrder(stop)

	assert.Equal(t, order.Pending, stop.Status(), "an untriggered stop order must rest, not fill")
	assert.EqualValues(t, 30, stop.OpenQty())
	assert.Equal(t, order.Pending, sell.Status(), "crossing liquidity must stay untouched by a stop order")
	assert.EqualValues(t, 0, ob.Stats().TotalOrdersFulfilled)
	assert.EqualValues(t, 0, ob.Stats().TotalTrades)
}

func TestOrderBook_CancelUnknownOrder(t *testing.T) {
	ob := NewOrderBook("TSLA")
	err := ob.Cancel(999)
	require.Error(t, err)
	var engErr *order.EngineError
	require.ErrorAs(t, err, &engErr)
	assert.Equal(t, order.CodeOrderNotFound, engErr.Code)
}
