// Package assignment tracks per-symbol load so a future rebalancer could
// move hot symbols onto less loaded workers. The rebalancing control loop
// itself is out of scope (see spec's non-goals on dynamic rebalancing); what
// lives here is the load model it would consume.
package assignment

import (
	"time"

	"github.com/patrickmn/go-cache"
)

// ewmaAlpha weights a new sample against the running average. Closer to 1
// reacts faster to bursts; closer to 0 smooths them out.
const ewmaAlpha = 0.3

// MetricSample is one observation fed in from the live metrics feed.
type MetricSample struct {
	Symbol        string
	MsgsPerSec    float64
	TradesPerSec  float64
	AvgOrderSize  float64
}

// SymbolState is the EWMA-smoothed load estimate for one symbol.
type SymbolState struct {
	MsgsPerSecEWMA   float64
	TradesPerSecEWMA float64
}

// Manager tracks SymbolState per symbol with TTL-based expiry: a symbol
// that stops reporting samples ages out of consideration on its own,
// rather than needing an explicit unregister call. go-cache's TTL sweep is
// exactly that behavior, so it backs this store directly instead of a
// hand-rolled map+timestamp.
type Manager struct {
	states *cache.Cache
}

// NewManager creates a manager whose entries expire after ttl if no new
// sample refreshes them, swept every cleanupInterval.
func NewManager(ttl, cleanupInterval time.Duration) *Manager {
	return &Manager{states: cache.New(ttl, cleanupInterval)}
}

// SubmitSample folds s into its symbol's running EWMA, creating the state
// if this is the first sample seen for that symbol.
func (m *Manager) SubmitSample(s MetricSample) {
	var state SymbolState
	if existing, ok := m.states.Get(s.Symbol); ok {
		state = existing.(SymbolState)
		state.MsgsPerSecEWMA = ewmaAlpha*s.MsgsPerSec + (1-ewmaAlpha)*state.MsgsPerSecEWMA
		state.TradesPerSecEWMA = ewmaAlpha*s.TradesPerSec + (1-ewmaAlpha)*state.TradesPerSecEWMA
	} else {
		state = SymbolState{MsgsPerSecEWMA: s.MsgsPerSec, TradesPerSecEWMA: s.TradesPerSec}
	}
	m.states.SetDefault(s.Symbol, state)
}

// State returns the current smoothed load for symbol, if it has reported a
// sample within the configured TTL.
func (m *Manager) State(symbol string) (SymbolState, bool) {
	v, ok := m.states.Get(symbol)
	if !ok {
		return SymbolState{}, false
	}
	return v.(SymbolState), true
}

// ItemCount returns how many symbols currently have live state.
func (m *Manager) ItemCount() int {
	return m.states.ItemCount()
}

// PerformRebalance is a placeholder for the control loop that would move
// hot symbols to less loaded workers. Left unimplemented: the source
// doesn't specify a rebalancing policy (which symbols move, to where, how
// often), and inventing one isn't something this package should do on its
// own initiative.
func (m *Manager) PerformRebalance() {}
