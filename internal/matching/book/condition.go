package book

import "github.com/vaasu2002/go-matching-engine/internal/matching/order"

// Condition is the mutable matching request a type/TIF strategy pair builds
// up before execution: how much to try to fill, how far through the book to
// walk, and how deep. It mirrors the original's Condition{qty,priceLimit,
// depthLimit} struct directly — there was nothing to improve on there.
type Condition struct {
	// Qty is the quantity still being sought. Strategies and the tracker
	// decrement it in place as fills accumulate.
	Qty order.Quantity

	// PriceLimit bounds which resting price levels are eligible. For a BUY
	// this is the highest acceptable ask; for a SELL, the lowest acceptable
	// bid. order.PriceMax/0 mean "no limit" depending on side, set by the
	// MARKET strategy.
	PriceLimit order.Price

	// DepthLimit caps how many distinct price levels may be walked. Zero
	// means unbounded; IOC uses 1.
	DepthLimit int
}

// PriceEligible reports whether a resting price level at price satisfies
// this condition for an incoming order on incomingSide.
func (c *Condition) PriceEligible(incomingSide order.Side, price order.Price) bool {
	if incomingSide == order.Buy {
		return price <= c.PriceLimit
	}
	return price >= c.PriceLimit
}

// Satisfied reports whether the condition has nothing left to fill.
func (c *Condition) Satisfied() bool { return c.Qty == 0 }
