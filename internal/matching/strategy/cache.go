package strategy

import "github.com/vaasu2002/go-matching-engine/internal/matching/order"

// cache holds the process-wide stateless strategy singletons, mirroring the
// original's StrategyCache: every call for the same type/TIF gets back the
// identical instance.
var (
	limitStrategy  TypeStrategy = &LimitStrategy{}
	marketStrategy TypeStrategy = &MarketStrategy{}
	stopStrategy   TypeStrategy = &StopStrategy{}

	gtcStrategy TifStrategy = &GtcStrategy{}
	iocStrategy TifStrategy = &IocStrategy{}
	aonStrategy TifStrategy = &AonStrategy{}
	fokStrategy TifStrategy = &FokStrategy{}
)

// GetTypeStrategy resolves the singleton type-strategy for t, falling back
// to LIMIT's for any unrecognized value — the factories in the order
// package never produce one, so this only guards against a future type the
// cache hasn't been taught yet.
func GetTypeStrategy(t order.Type) TypeStrategy {
	switch t {
	case order.Market:
		return marketStrategy
	case order.Stop, order.StopLimit:
		return stopStrategy
	case order.Limit:
		return limitStrategy
	default:
		return limitStrategy
	}
}

// GetTifStrategy resolves the singleton TIF-strategy for the given flag
// set. FILL_OR_KILL (AON|IOC) is checked before the individual bits so it
// doesn't fall through to plain AON or IOC behavior.
func GetTifStrategy(tif order.TIF) TifStrategy {
	switch {
	case tif&order.FillOrKill == order.FillOrKill:
		return fokStrategy
	case tif&order.AllOrNone != 0:
		return aonStrategy
	case tif&order.ImmediateOrCancel != 0:
		return iocStrategy
	default:
		return gtcStrategy
	}
}

// IsAllOrNone reports whether tif carries the ALL_OR_NONE bit, set by
// either AON or FOK — used by the execution stage to decide whether a
// dry-run atomicity check is required before committing a match.
func IsAllOrNone(tif order.TIF) bool {
	return tif&order.AllOrNone != 0
}
