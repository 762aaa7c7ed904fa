package pipeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// run submits incoming against a fresh opposite-side tracker seeded with
// resting, returning the tracker for post-assertions.
func run(t *testing.T, incoming *order.Order, restingSide order.Side, resting ...*order.Order) *book.OrderTracker {
	t.Helper()
	tracker := book.NewOrderTracker(restingSide)
	for _, o := range resting {
		tracker.AddOrder(o)
	}
	p := New()
	ctx := NewContext(incoming, tracker)
	p.Run(ctx)
	return tracker
}

func TestScenario1_FullCrossingLimit(t *testing.T) {
	sell, err := order.MakeLimit(2, order.Sell, 50, "TSLA", 17400, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(1, order.Buy, 100, "TSLA", 17500, order.DefaultTIF)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.Fulfilled, sell.Status())
	assert.EqualValues(t, 0, sell.OpenQty())
	assert.Equal(t, order.PartiallyFilled, buy.Status())
	assert.EqualValues(t, 50, buy.OpenQty())
}

func TestScenario2_PartialFillRestingRemainder(t *testing.T) {
	sell, err := order.MakeLimit(10, order.Sell, 100, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(11, order.Buy, 40, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.Fulfilled, buy.Status())
	assert.Equal(t, order.PartiallyFilled, sell.Status())
	assert.EqualValues(t, 60, sell.OpenQty())
}

func TestScenario3_MarketNoLiquidity(t *testing.T) {
	buy, err := order.MakeMarket(20, order.Buy, 50, "TSLA", order.DefaultTIF)
	require.NoError(t, err)

	run(t, buy, order.Sell)

	assert.Equal(t, order.Cancelled, buy.Status())
	assert.EqualValues(t, 50, buy.OpenQty())
}

func TestScenario4_MarketPartial(t *testing.T) {
	sell, err := order.MakeLimit(1, order.Sell, 30, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeMarket(2, order.Buy, 50, "TSLA", order.DefaultTIF)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.PartialFillCancelled, buy.Status())
	assert.EqualValues(t, 20, buy.OpenQty())
}

func TestScenario5_IocDepthOne(t *testing.T) {
	near, err := order.MakeLimit(1, order.Sell, 10, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	far, err := order.MakeLimit(2, order.Sell, 10, "TSLA", 101, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(3, order.Buy, 25, "TSLA", 101, order.ImmediateOrCancel)
	require.NoError(t, err)

	run(t, buy, order.Sell, near, far)

	assert.Equal(t, order.Cancelled, buy.Status())
	assert.EqualValues(t, 0, buy.OpenQty())
	assert.Equal(t, order.Fulfilled, near.Status())
	assert.Equal(t, order.Pending, far.Status(), "depth limit of 1 must leave the far level untouched")
}

func TestScenario6_FokAllOrNothing(t *testing.T) {
	sell, err := order.MakeLimit(1, order.Sell, 20, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(2, order.Buy, 50, "TSLA", 100, order.FillOrKill)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.Cancelled, buy.Status())
	assert.Equal(t, order.Pending, sell.Status(), "book must be untouched by a failed FOK attempt")
	assert.EqualValues(t, 20, sell.OpenQty())
}

func TestScenario7_PriceTimePriority(t *testing.T) {
	a, err := order.MakeLimit(1, order.Sell, 10, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	b, err := order.MakeLimit(2, order.Sell, 10, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(3, order.Buy, 15, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)

	run(t, buy, order.Sell, a, b)

	assert.Equal(t, order.Fulfilled, a.Status())
	assert.Equal(t, order.PartiallyFilled, b.Status())
	assert.EqualValues(t, 5, b.OpenQty())
	assert.Equal(t, order.Fulfilled, buy.Status())
}

func TestScenario8_ValidationRejection(t *testing.T) {
	_, err := order.MakeLimitWith(1, order.Buy, 10, "TSLA", 0, order.DefaultTIF, order.StandardChain())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "limit price")
}

func TestAonPartialLiquidityStaysPending(t *testing.T) {
	sell, err := order.MakeLimit(1, order.Sell, 20, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(2, order.Buy, 50, "TSLA", 100, order.AllOrNone)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.Pending, buy.Status())
	assert.EqualValues(t, 50, buy.OpenQty())
	assert.Equal(t, order.Pending, sell.Status())
}

func TestStopOrder_RestsUntouchedEvenWithCrossingLiquidity(t *testing.T) {
	sell, err := order.MakeLimit(1, order.Sell, 100, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	stop, err := order.MakeStop(2, order.Buy, 30, "TSLA", 150, order.DefaultTIF)
	require.NoError(t, err)

	tracker := run(t, stop, order.Sell, sell)

	assert.Equal(t, order.Pending, stop.Status())
	assert.EqualValues(t, 30, stop.OpenQty(), "a stop order must rest exactly as submitted, no fill")
	assert.Equal(t, order.Pending, sell.Status(), "the resting book must be untouched by an untriggered stop")
	assert.EqualValues(t, 100, sell.OpenQty())
	assert.True(t, tracker.Contains(1), "resting sell order must still be in the book")
}

func TestAonFillsWhenLiquiditySufficient(t *testing.T) {
	sell, err := order.MakeLimit(1, order.Sell, 60, "TSLA", 100, order.DefaultTIF)
	require.NoError(t, err)
	buy, err := order.MakeLimit(2, order.Buy, 50, "TSLA", 100, order.AllOrNone)
	require.NoError(t, err)

	run(t, buy, order.Sell, sell)

	assert.Equal(t, order.Fulfilled, buy.Status())
	assert.EqualValues(t, 0, buy.OpenQty())
	assert.Equal(t, order.PartiallyFilled, sell.Status())
	assert.EqualValues(t, 10, sell.OpenQty())
}
