package economy

import (
	"github.com/emersonsg01/villagersim/internal/items"
)

// ExecuteTrade settles an offer: the source inventory pays the input,
// the target inventory receives the output. The trade only happens when
// the source can pay AND the target has room for the full output; on
// failure neither inventory changes. A successful trade consumes one
// use of the offer and moves the market.
func ExecuteTrade(offer *TradeOffer, source, target *items.Inventory, ex *Exchange) bool {
	if offer == nil || !offer.Available() {
		return false
	}
	if source.CountItem(offer.Input.Item) < offer.Input.Count {
		return false
	}
	if !target.CanAdd(offer.Output) {
		return false
	}

	if !target.AddItem(offer.Output) {
		return false
	}
	source.RemoveCount(offer.Input.Item, offer.Input.Count)

	offer.IncrementUses()
	if ex != nil {
		ex.RecordTrade(offer.Output.Item, offer.Input.Item)
	}
	return true
}
