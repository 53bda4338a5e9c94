// Package economy provides villager-to-villager trading: trade offers,
// per-agent ledgers with cooldowns and reputation, and the shared
// village exchange with supply/demand price feedback.
package economy

import (
	"github.com/emersonsg01/villagersim/internal/items"
)

// DefaultMaxUses is how many times a freshly generated offer can be
// taken before it exhausts.
const DefaultMaxUses = 12

// TradeOffer is an input/output stack pair with a bounded use count.
// The stacks are fixed at creation; only Uses changes.
type TradeOffer struct {
	Input   items.Stack `json:"input"`
	Output  items.Stack `json:"output"`
	Uses    int         `json:"uses"`
	MaxUses int         `json:"max_uses"`
}

// NewOffer creates an unused offer with the default use cap.
func NewOffer(input, output items.Stack) *TradeOffer {
	return &TradeOffer{Input: input, Output: output, MaxUses: DefaultMaxUses}
}

// Available reports whether the offer can still be taken.
func (o *TradeOffer) Available() bool {
	return o.Uses < o.MaxUses
}

// IncrementUses records one use, saturating at MaxUses.
func (o *TradeOffer) IncrementUses() {
	if o.Uses < o.MaxUses {
		o.Uses++
	}
}

// PriceMultiplier returns the price scale for this offer: heavy use
// discounts it by up to 30%, demand pushes it back up, floored at 0.7.
func (o *TradeOffer) PriceMultiplier(demandBonus float64) float64 {
	usage := 1.0 - float64(o.Uses)/float64(o.MaxUses)*0.3
	m := usage + demandBonus
	if m < 0.7 {
		return 0.7
	}
	return m
}
