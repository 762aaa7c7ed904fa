package engine

import "fmt"

// Stats counts lifetime activity for one OrderBook. The owning worker is
// the only writer, so no synchronization is needed here; readers (e.g. the
// metrics package) should only read stats for a symbol from that symbol's
// own worker or accept a momentarily stale snapshot.
type Stats struct {
	TotalOrdersAdded     uint64
	TotalOrdersCancelled uint64
	TotalOrdersFulfilled uint64
	TotalVolume          uint64
	TotalTrades          uint64
}

func (s Stats) String() string {
	return fmt.Sprintf(
		"orders_added=%d orders_cancelled=%d orders_fulfilled=%d volume=%d trades=%d",
		s.TotalOrdersAdded, s.TotalOrdersCancelled, s.TotalOrdersFulfilled, s.TotalVolume, s.TotalTrades,
	)
}
