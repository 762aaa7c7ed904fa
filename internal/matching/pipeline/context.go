// Package pipeline implements the per-order processing chain (C5): a fixed
// sequence of stages sharing a mutable ProcessingContext, run unconditionally
// in order with no recursion.
package pipeline

import (
	"strings"

	"github.com/vaasu2002/go-matching-engine/internal/matching/book"
	"github.com/vaasu2002/go-matching-engine/internal/matching/order"
)

// ProcessingContext carries everything a stage needs: the order under
// processing, the opposite-side tracker it may match against, the matching
// Condition being built up, and an accumulating abort reason.
type ProcessingContext struct {
	Order      *order.Order
	OppTracker *book.OrderTracker
	Cond       *book.Condition
	Trades     []book.MatchedTrade

	abortReason *string
}

// NewContext builds a context for processing o against the opposite side's
// tracker opp.
func NewContext(o *order.Order, opp *book.OrderTracker) *ProcessingContext {
	return &ProcessingContext{Order: o, OppTracker: opp, Cond: &book.Condition{}}
}

// Aborted reports whether any stage has recorded an abort reason.
func (c *ProcessingContext) Aborted() bool { return c.abortReason != nil }

// AddAbortReason appends reason to the accumulated abort reason, joining
// with ", " when one is already present.
func (c *ProcessingContext) AddAbortReason(reason string) {
	if c.abortReason == nil {
		c.abortReason = &reason
		return
	}
	joined := strings.Join([]string{*c.abortReason, reason}, ", ")
	c.abortReason = &joined
}

// AbortReason returns the accumulated abort reason, or "" if none.
func (c *ProcessingContext) AbortReason() string {
	if c.abortReason == nil {
		return ""
	}
	return *c.abortReason
}
