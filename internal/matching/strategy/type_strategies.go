package strategy

import (
	"math"

	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// LimitStrategy prices the match at the order's own limit and never
// overrides the TIF-decided status — a resting LIMIT order is exactly what
// the TIF strategy says it is.
type LimitStrategy struct{}

func (LimitStrategy) PrepareCondition(o *order.Order) *book.Condition {
	return &book.Condition{Qty: o.OpenQty(), PriceLimit: o.Price()}
}

func (LimitStrategy) Finalize(*order.Order) {}

// MarketStrategy matches at any price (PriceMax for BUY, 0 for SELL) and
// never rests: whatever the TIF strategy left as PENDING or PARTIALLY_FILLED
// is converted to a cancelled terminal status, since there is no limit price
// left to wait at.
type MarketStrategy struct{}

func (MarketStrategy) PrepareCondition(o *order.Order) *book.Condition {
	limit := order.Price(0)
	if o.Side() == order.Buy {
		limit = order.PriceMax
	}
	return &book.Condition{Qty: o.OpenQty(), PriceLimit: limit}
}

func (MarketStrategy) Finalize(o *order.Order) {
	switch o.Status() {
	case order.Pending:
		o.UpdateStatus(order.Cancelled)
	case order.PartiallyFilled:
		o.UpdateStatus(order.PartialFillCancelled)
	}
}

// StopStrategy handles STOP and STOP_LIMIT orders. Triggering (activating
// the order once the market trades through its stop price) is out of scope
// here — an untriggered stop order should rest untouched, not match
// immediately against the current book. PrepareCondition asks for the
// order's full open quantity, so Validate never sees a non-positive qty and
// Finalize sees "nothing filled" rather than "fully filled" — but pins
// PriceLimit to a sentinel the opposite side's resting prices can never
// satisfy, so Execute's level-eligibility check fails on the very first
// level and the walk never consumes anything. A GTC stop order then
// finalizes as PENDING and rests exactly as submitted.
type StopStrategy struct{}

func (StopStrategy) PrepareCondition(o *order.Order) *book.Condition {
	limit := order.Price(math.MinInt64)
	if o.Side() == order.Sell {
		limit = order.PriceMax
	}
	return &book.Condition{Qty: o.OpenQty(), PriceLimit: limit}
}

func (StopStrategy) Finalize(*order.Order) {}
