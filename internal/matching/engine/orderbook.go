// Package engine implements the per-symbol OrderBook (C4) and the
// process-wide Registry that lazily creates and looks them up (C7).
package engine

import (
	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
	"github.com/vaasu2002/go-matching-engine/internal/matching/pipeline"
)

// OrderBook owns both sides of one symbol's resting liquidity plus the
// pipeline that processes incoming orders against it. It carries no lock:
// correctness depends on the scheduling layer calling ProcessOrder only
// from the one worker thread assigned to this symbol.
type OrderBook struct {
	symbol order.Symbol

	bids *book.OrderTracker
	asks *book.OrderTracker

	resting map[order.ID]order.Side // index of currently-resting order ids, for Cancel

	pipeline *pipeline.Pipeline
	stats    Stats
}

// NewOrderBook creates an empty book for symbol.
func NewOrderBook(symbol order.Symbol) *OrderBook {
	return &OrderBook{
		symbol:   symbol,
		bids:     book.NewOrderTracker(order.Buy),
		asks:     book.NewOrderTracker(order.Sell),
		resting:  make(map[order.ID]order.Side),
		pipeline: pipeline.New(),
	}
}

func (ob *OrderBook) Symbol() order.Symbol { return ob.symbol }
func (ob *OrderBook) Stats() Stats         { return ob.stats }

func (ob *OrderBook) trackerFor(side order.Side) *book.OrderTracker {
	if side == order.Buy {
		return ob.bids
	}
	return ob.asks
}

// ProcessOrder runs o through the book's pipeline and, if anything remains
// open afterward, rests it on its own side. Must be called only from this
// book's owning worker.
func (ob *OrderBook) ProcessOrder(o *order.Order) {
	ob.stats.TotalOrdersAdded++
	ob.stats.TotalVolume += uint64(o.OpenQty())

	opp := ob.trackerFor(o.OppositeSide())
	ctx := pipeline.NewContext(o, opp)
	ob.pipeline.Run(ctx)

	ob.stats.TotalTrades += uint64(len(ctx.Trades))
	for _, trade := range ctx.Trades {
		if !opp.Contains(trade.RestingOrderID) {
			ob.stats.TotalOrdersFulfilled++
			delete(ob.resting, trade.RestingOrderID)
		}
	}

	switch o.Status() {
	case order.Pending, order.PartiallyFilled:
		ob.trackerFor(o.Side()).AddOrder(o)
		ob.resting[o.ID()] = o.Side()
	case order.Fulfilled:
		ob.stats.TotalOrdersFulfilled++
	case order.Cancelled, order.PartialFillCancelled:
		ob.stats.TotalOrdersCancelled++
	}
}

// Cancel removes a resting order by ID. Returns order.OrderNotFound if it
// is not currently resting on this book (already filled, cancelled, or
// never existed here).
func (ob *OrderBook) Cancel(id order.ID) error {
	side, ok := ob.resting[id]
	if !ok {
		return order.OrderNotFound(id)
	}
	if !ob.trackerFor(side).RemoveOrder(id) {
		delete(ob.resting, id)
		return order.OrderNotFound(id)
	}
	delete(ob.resting, id)
	ob.stats.TotalOrdersCancelled++
	return nil
}
