package economy

import (
	"sync"

	"github.com/emersonsg01/villagersim/internal/items"
)

// Demand modifier clamps: repeated buying can at most double a price,
// repeated selling at most halve it.
const (
	DemandFloor = 0.5
	DemandCeil  = 2.0

	demandBuyNudge  = 1.05
	demandSellNudge = 0.95
)

// Exchange is the shared village market state: a static base value per
// item and a supply/demand modifier moved by every completed trade in
// the whole population. One Exchange is owned by the simulation; the
// mutex covers concurrent reads from the observation API.
type Exchange struct {
	mu     sync.Mutex
	base   map[items.ItemType]float64
	demand map[items.ItemType]float64
	traded []items.ItemType // stable ordering of known items
	trades uint64
}

// NewExchange creates an exchange with the standard value table and all
// demand modifiers at the neutral 1.0.
func NewExchange() *Exchange {
	base := map[items.ItemType]float64{
		// Resources
		items.ItemCoal:        1.0,
		items.ItemCopperIngot: 2.0,
		items.ItemIronIngot:   3.0,
		items.ItemGoldIngot:   6.0,
		items.ItemRedstone:    2.5,
		items.ItemLapis:       2.5,
		items.ItemDiamond:     16.0,
		items.ItemEmerald:     8.0,

		// Food
		items.ItemBread:      1.0,
		items.ItemApple:      1.0,
		items.ItemCookedBeef: 2.0,

		// Crops
		items.ItemWheat:      0.5,
		items.ItemCarrot:     0.5,
		items.ItemPotato:     0.5,
		items.ItemWheatSeeds: 0.25,

		// Tools
		items.ItemWoodenPickaxe:  2.0,
		items.ItemStonePickaxe:   4.0,
		items.ItemIronPickaxe:    8.0,
		items.ItemGoldenPickaxe:  6.0,
		items.ItemDiamondPickaxe: 24.0,
	}

	ex := &Exchange{
		base:   base,
		demand: make(map[items.ItemType]float64, len(base)),
	}
	// Stable item ordering for deterministic random-offer generation.
	for t := items.ItemType(1); int(t) < items.NumItems; t++ {
		if _, ok := base[t]; ok {
			ex.traded = append(ex.traded, t)
			ex.demand[t] = 1.0
		}
	}
	return ex
}

// TradedItems returns the item types with known base values, in a
// stable order.
func (e *Exchange) TradedItems() []items.ItemType {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]items.ItemType, len(e.traded))
	copy(out, e.traded)
	return out
}

// BaseValue returns the static reference value of an item, 1.0 when the
// item is not in the table.
func (e *Exchange) BaseValue(t items.ItemType) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if v, ok := e.base[t]; ok {
		return v
	}
	return 1.0
}

// DemandModifier returns the current supply/demand modifier for an item.
func (e *Exchange) DemandModifier(t items.ItemType) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	if m, ok := e.demand[t]; ok {
		return m
	}
	return 1.0
}

// SetDemandModifier restores a modifier (used when loading saved state).
// The value is clamped to the legal range.
func (e *Exchange) SetDemandModifier(t items.ItemType, m float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.demand[t] = clampDemand(m)
}

// AdjustedValue is the base value scaled by current demand.
func (e *Exchange) AdjustedValue(t items.ItemType) float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	base, ok := e.base[t]
	if !ok {
		base = 1.0
	}
	mod, ok := e.demand[t]
	if !ok {
		mod = 1.0
	}
	return base * mod
}

// RecordTrade applies the market feedback of one completed trade: the
// bought item's demand rises 5%, the sold item's falls 5%, both clamped.
func (e *Exchange) RecordTrade(bought, sold items.ItemType) {
	e.mu.Lock()
	defer e.mu.Unlock()

	bm, ok := e.demand[bought]
	if !ok {
		bm = 1.0
	}
	e.demand[bought] = clampDemand(bm * demandBuyNudge)

	sm, ok := e.demand[sold]
	if !ok {
		sm = 1.0
	}
	e.demand[sold] = clampDemand(sm * demandSellNudge)

	e.trades++
}

// TradeCount returns how many trades the exchange has recorded.
func (e *Exchange) TradeCount() uint64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.trades
}

func clampDemand(m float64) float64 {
	if m > DemandCeil {
		return DemandCeil
	}
	if m < DemandFloor {
		return DemandFloor
	}
	return m
}

// MarketEntry is one row of the exchange snapshot served by the API.
type MarketEntry struct {
	Item          string  `json:"item"`
	BaseValue     float64 `json:"base_value"`
	Demand        float64 `json:"demand"`
	AdjustedValue float64 `json:"adjusted_value"`
}

// Snapshot returns the full market table for observation.
func (e *Exchange) Snapshot() []MarketEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]MarketEntry, 0, len(e.traded))
	for _, t := range e.traded {
		out = append(out, MarketEntry{
			Item:          t.Name(),
			BaseValue:     e.base[t],
			Demand:        e.demand[t],
			AdjustedValue: e.base[t] * e.demand[t],
		})
	}
	return out
}
