package strategy

import (
	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// GtcStrategy covers both GOOD_TILL_CANCELED and the DAY default: no
// adjustment, and a base status derived purely from how much got filled.
// A zero-fill order stays PENDING rather than PARTIALLY_FILLED — it never
// partially happened, so the stricter reading of "partially filled" means
// "something, but not everything, filled".
type GtcStrategy struct{}

func (GtcStrategy) AdjustCondition(*book.Condition, *order.Order) {}

func (GtcStrategy) Finalize(o *order.Order, remaining order.Quantity) {
	o.UpdateOpenQty(remaining)
	switch {
	case remaining == 0:
		o.UpdateStatus(order.Fulfilled)
	case remaining == o.Qty():
		o.UpdateStatus(order.Pending)
	default:
		o.UpdateStatus(order.PartiallyFilled)
	}
}

// IocStrategy consumes at most one price level and never rests: whatever
// isn't filled immediately is cancelled outright.
type IocStrategy struct{}

func (IocStrategy) AdjustCondition(cond *book.Condition, _ *order.Order) {
	cond.DepthLimit = 1
}

func (IocStrategy) Finalize(o *order.Order, remaining order.Quantity) {
	o.UpdateOpenQty(0)
	if remaining == 0 {
		o.UpdateStatus(order.Fulfilled)
		return
	}
	o.UpdateStatus(order.Cancelled)
}

// AonStrategy requires the execute stage to have already enforced
// all-or-nothing atomicity (see ExecutionHandler): remaining is either 0 or
// the full original quantity, never in between. An unfilled AON order is
// left PENDING, not cancelled — it keeps resting, waiting for liquidity
// that can satisfy it whole.
type AonStrategy struct{}

func (AonStrategy) AdjustCondition(*book.Condition, *order.Order) {}

func (AonStrategy) Finalize(o *order.Order, remaining order.Quantity) {
	if remaining == 0 {
		o.UpdateOpenQty(0)
		o.UpdateStatus(order.Fulfilled)
		return
	}
	o.UpdateStatus(order.Pending)
}

// FokStrategy combines AON's atomicity with IOC's refusal to rest: an
// unfilled order is cancelled, not left resting.
type FokStrategy struct{}

func (FokStrategy) AdjustCondition(*book.Condition, *order.Order) {}

func (FokStrategy) Finalize(o *order.Order, remaining order.Quantity) {
	o.UpdateOpenQty(0)
	if remaining == 0 {
		o.UpdateStatus(order.Fulfilled)
		return
	}
	o.UpdateStatus(order.Cancelled)
}
