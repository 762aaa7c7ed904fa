package pipeline

import (
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
	"github.com/vaasu2002/go-matching-engine/internal/matching/strategy"
)

// PrepareConditionHandler asks the type-strategy to build the base
// Condition. Skipped once something upstream has already aborted.
type PrepareConditionHandler struct{}

func (PrepareConditionHandler) Process(ctx *ProcessingContext) {
	if ctx.Aborted() {
		return
	}
	ctx.Cond = strategy.GetTypeStrategy(ctx.Order.Type()).PrepareCondition(ctx.Order)
}

// TifAdjustHandler lets the TIF-strategy tighten the Condition (e.g. IOC's
// depth limit of 1).
type TifAdjustHandler struct{}

func (TifAdjustHandler) Process(ctx *ProcessingContext) {
	if ctx.Aborted() {
		return
	}
	strategy.GetTifStrategy(ctx.Order.TIF()).AdjustCondition(ctx.Cond, ctx.Order)
}

// ValidationHandler always runs, independent of any prior abort, and checks
// the two conditions the original source checks post-strategy: a
// non-positive working quantity, and a LIMIT order with no usable limit
// price.
type ValidationHandler struct{}

func (ValidationHandler) Process(ctx *ProcessingContext) {
	if ctx.Cond.Qty <= 0 {
		ctx.AddAbortReason("Invalid Quantity")
	}
	if ctx.Order.Type() == order.Limit && ctx.Order.Price() <= 0 {
		ctx.AddAbortReason("Invalid limit price")
	}
}

// ExecutionHandler runs the actual match against the opposite side's book.
// For ALL_OR_NONE orders (AON and FOK) it first checks whether the book
// currently holds enough eligible liquidity to satisfy the condition in
// full; if not, the match is skipped entirely rather than run and rolled
// back, so the opposite-side book is never touched by a doomed attempt.
type ExecutionHandler struct{}

func (ExecutionHandler) Process(ctx *ProcessingContext) {
	if ctx.Aborted() {
		return
	}

	incomingSide := ctx.Order.Side()
	if strategy.IsAllOrNone(ctx.Order.TIF()) {
		if ctx.OppTracker.AvailableQty(incomingSide, ctx.Cond) < ctx.Cond.Qty {
			return
		}
	}

	ctx.Trades = ctx.OppTracker.MatchOrder(incomingSide, ctx.Cond)
}

// FinalizeHandler always runs. The TIF-strategy finalizes first and sets a
// base status; the type-strategy runs second and may override it (MARKET
// converts a still-resting status into its cancelled counterpart).
type FinalizeHandler struct{}

func (FinalizeHandler) Process(ctx *ProcessingContext) {
	strategy.GetTifStrategy(ctx.Order.TIF()).Finalize(ctx.Order, ctx.Cond.Qty)
	strategy.GetTypeStrategy(ctx.Order.Type()).Finalize(ctx.Order)
}
