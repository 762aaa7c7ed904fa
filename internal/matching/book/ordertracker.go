package book

import (
	"container/list"
	"sort"

	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// orderLocation is the index entry that lets RemoveOrder find a resting
// order in O(1) instead of scanning every level.
type orderLocation struct {
	level *PriceLevel
	elem  *list.Element
}

// OrderTracker owns every resting order on one side of one symbol's book: a
// best-price-first sequence of PriceLevels plus an id→location index for
// O(1) removal. There is no Go stdlib equivalent of std::map with a custom
// comparator, so levels are kept as a sorted slice searched with
// sort.Search — fine at the level counts a single symbol accumulates.
type OrderTracker struct {
	side      order.Side
	levels    []*PriceLevel // best price first
	byPrice   map[order.Price]*PriceLevel
	locations map[order.ID]orderLocation
}

// NewOrderTracker creates an empty tracker for resting orders on side.
func NewOrderTracker(side order.Side) *OrderTracker {
	return &OrderTracker{
		side:      side,
		byPrice:   make(map[order.Price]*PriceLevel),
		locations: make(map[order.ID]orderLocation),
	}
}

func (t *OrderTracker) Side() order.Side { return t.side }

// Contains reports whether id is currently resting in this tracker.
func (t *OrderTracker) Contains(id order.ID) bool {
	_, ok := t.locations[id]
	return ok
}

// BestLevel returns the most aggressive non-empty price level, or nil if the
// tracker holds no orders.
func (t *OrderTracker) BestLevel() *PriceLevel {
	if len(t.levels) == 0 {
		return nil
	}
	return t.levels[0]
}

// Depth returns the number of distinct price levels currently resting.
func (t *OrderTracker) Depth() int { return len(t.levels) }

// isBetter reports whether price a ranks ahead of price b for this
// tracker's side: higher-first for bids, lower-first for asks.
func (t *OrderTracker) isBetter(a, b order.Price) bool {
	if t.side == order.Buy {
		return a > b
	}
	return a < b
}

// levelFor returns the price level at price, creating and inserting it in
// sorted order if it doesn't exist yet.
func (t *OrderTracker) levelFor(price order.Price) *PriceLevel {
	if lvl, ok := t.byPrice[price]; ok {
		return lvl
	}
	lvl := NewPriceLevel(price)
	t.byPrice[price] = lvl

	idx := sort.Search(len(t.levels), func(i int) bool {
		return t.isBetter(price, t.levels[i].Price())
	})
	t.levels = append(t.levels, nil)
	copy(t.levels[idx+1:], t.levels[idx:])
	t.levels[idx] = lvl
	return lvl
}

// pruneIfEmpty removes an emptied level from both the sorted slice and the
// price index. The original keeps empty levels around and skips over them
// on the next walk; pruning eagerly keeps Depth() an honest answer and
// keeps every future walk from re-checking dead levels.
func (t *OrderTracker) pruneIfEmpty(lvl *PriceLevel) {
	if !lvl.IsEmpty() {
		return
	}
	delete(t.byPrice, lvl.Price())
	for i, l := range t.levels {
		if l == lvl {
			t.levels = append(t.levels[:i], t.levels[i+1:]...)
			break
		}
	}
}

// AddOrder rests o in the book. A duplicate ID is ignored silently, per the
// original tracker's contract — callers are expected to generate unique
// IDs and AddOrder is not the place to surface that failure.
func (t *OrderTracker) AddOrder(o *order.Order) {
	if _, exists := t.locations[o.ID()]; exists {
		return
	}
	lvl := t.levelFor(o.Price())
	elem := lvl.Add(o)
	t.locations[o.ID()] = orderLocation{level: lvl, elem: elem}
}

// RemoveOrder excises a resting order by ID, pruning its level if that was
// the last order there. Reports whether the order was found.
func (t *OrderTracker) RemoveOrder(id order.ID) bool {
	loc, ok := t.locations[id]
	if !ok {
		return false
	}
	loc.level.Remove(loc.elem)
	delete(t.locations, id)
	t.pruneIfEmpty(loc.level)
	return true
}

// AvailableQty sums the liquidity reachable by an incoming order of
// incomingSide under cond's price and depth limits, without consuming
// anything. AON/FOK use this to decide up front whether a MatchOrder call
// would fully satisfy cond.Qty, since the walk is monotonic: if enough
// eligible liquidity exists, a real match consumes levels in the same
// order and is guaranteed to reach it exactly.
func (t *OrderTracker) AvailableQty(incomingSide order.Side, cond *Condition) order.Quantity {
	var sum order.Quantity
	visited := 0
	for _, lvl := range t.levels {
		if !cond.PriceEligible(incomingSide, lvl.Price()) {
			break
		}
		if cond.DepthLimit > 0 && visited >= cond.DepthLimit {
			break
		}
		visited++
		sum += lvl.TotalQuantity()
		if sum >= cond.Qty {
			break
		}
	}
	return sum
}

// MatchOrder walks this tracker's levels best-first on behalf of an
// incoming order of incomingSide, consuming liquidity into cond until
// either the condition is satisfied, the depth limit is reached, or the
// next level's price is no longer eligible. Fully drained levels are
// pruned as part of the walk.
func (t *OrderTracker) MatchOrder(incomingSide order.Side, cond *Condition) []MatchedTrade {
	var trades []MatchedTrade
	visited := 0

	for cond.Qty > 0 && len(t.levels) > 0 {
		lvl := t.levels[0]
		if !cond.PriceEligible(incomingSide, lvl.Price()) {
			break
		}
		if cond.DepthLimit > 0 && visited >= cond.DepthLimit {
			break
		}
		visited++

		levelTrades := lvl.Match(&cond.Qty, func(filledID order.ID) {
			delete(t.locations, filledID)
		})
		trades = append(trades, levelTrades...)

		t.pruneIfEmpty(lvl)
		if !lvl.IsEmpty() {
			// Partial fill left resting liquidity at the best price; no
			// other level can be more eligible than this one, so there is
			// nothing left this incoming order can reach.
			break
		}
	}

	return trades
}
