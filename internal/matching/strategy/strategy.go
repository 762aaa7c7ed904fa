// Package strategy implements the order-type and time-in-force strategy
// families (C6): stateless singletons that build and tighten a matching
// Condition and decide an order's post-match status.
package strategy

import (
	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// TypeStrategy produces the base matching Condition for an order type and
// owns that type's share of post-match status finalization.
type TypeStrategy interface {
	PrepareCondition(o *order.Order) *book.Condition
	Finalize(o *order.Order)
}

// TifStrategy optionally tightens a Condition and owns the TIF's share of
// post-match status finalization. Finalize always runs before the type
// strategy's — its status becomes the type strategy's starting point.
type TifStrategy interface {
	AdjustCondition(cond *book.Condition, o *order.Order)
	Finalize(o *order.Order, remaining order.Quantity)
}
