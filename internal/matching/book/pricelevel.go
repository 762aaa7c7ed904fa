// Package book implements the price-level and order-tracker structures that
// back one side of a symbol's order book (C2, C3): a FIFO queue of resting
// orders per price, and a best-price-first collection of price levels.
package book

import (
	"container/list"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// MatchedTrade is the resting-order side of a single fill, emitted as a
// side-effect of matching. There is no transport for it yet — callers
// collect the slice and do with it what they like.
type MatchedTrade struct {
	RestingOrderID order.ID
	Qty            order.Quantity
	Price          order.Price
}

// PriceLevel is a FIFO queue of resting orders that share one price. It
// keeps its own aggregate open-quantity and order count so callers never
// have to walk the list to answer "how much liquidity is here".
//
// The original C++ keeps these orders in a std::vector and caches raw
// iterators into it elsewhere — vector iterators invalidate on unrelated
// erases, which is fragile. container/list gives every element a stable
// identity for as long as it's linked, so the OrderTracker's id→location
// index never has to worry about earlier removals shifting anything.
type PriceLevel struct {
	price    order.Price
	orders   *list.List // of *order.Order
	totalQty order.Quantity
	count    int
}

// NewPriceLevel creates an empty level at price.
func NewPriceLevel(price order.Price) *PriceLevel {
	return &PriceLevel{price: price, orders: list.New()}
}

func (pl *PriceLevel) Price() order.Price          { return pl.price }
func (pl *PriceLevel) TotalQuantity() order.Quantity { return pl.totalQty }
func (pl *PriceLevel) OrderCount() int             { return pl.count }
func (pl *PriceLevel) IsEmpty() bool               { return pl.orders.Len() == 0 }

// Add appends a resting order to the tail of the level's FIFO queue.
func (pl *PriceLevel) Add(o *order.Order) *list.Element {
	pl.totalQty += o.OpenQty()
	pl.count++
	return pl.orders.PushBack(o)
}

// Remove excises the order at elem, typically on cancel.
func (pl *PriceLevel) Remove(elem *list.Element) {
	o := elem.Value.(*order.Order)
	pl.totalQty -= o.OpenQty()
	pl.count--
	pl.orders.Remove(elem)
}

// UpdateOpenQty adjusts the order's open quantity and the level's aggregate
// by the delta, in O(1).
func (pl *PriceLevel) UpdateOpenQty(o *order.Order, newQty order.Quantity) {
	oldQty := o.OpenQty()
	o.UpdateOpenQty(newQty)
	pl.totalQty = pl.totalQty - oldQty + newQty
}

// FrontOrder returns the oldest resting order at this level, or nil.
func (pl *PriceLevel) FrontOrder() *order.Order {
	if pl.orders.Len() == 0 {
		return nil
	}
	return pl.orders.Front().Value.(*order.Order)
}

// Match consumes up to *reqQty units of liquidity from this level's resting
// orders, head first (price-time priority / FIFO). *reqQty is decremented by
// the amount filled. It stops when reqQty reaches zero or the level is
// drained. onFullyFilled is invoked for every resting order removed from the
// list so a caller indexing orders by ID (the OrderTracker) can drop its
// entry in the same pass.
func (pl *PriceLevel) Match(reqQty *order.Quantity, onFullyFilled func(order.ID)) []MatchedTrade {
	trades := make([]MatchedTrade, 0, pl.count)

	for elem := pl.orders.Front(); elem != nil && *reqQty > 0; {
		resting := elem.Value.(*order.Order)
		available := resting.OpenQty()
		fill := available
		if *reqQty < fill {
			fill = *reqQty
		}

		*reqQty -= fill
		pl.totalQty -= fill

		trades = append(trades, MatchedTrade{
			RestingOrderID: resting.ID(),
			Qty:            fill,
			Price:          pl.price,
		})

		next := elem.Next()
		if fill == available {
			resting.UpdateOpenQty(0)
			resting.UpdateStatus(order.Fulfilled)
			pl.orders.Remove(elem)
			pl.count--
			if onFullyFilled != nil {
				onFullyFilled(resting.ID())
			}
			elem = next
			continue
		}

		// Partial fill on the resting order means the incoming quantity
		// must now be zero; stop instead of advancing further.
		resting.UpdateOpenQty(available - fill)
		resting.UpdateStatus(order.PartiallyFilled)
		break
	}

	return trades
}
