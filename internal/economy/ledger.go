package economy

import (
	"math"
	"math/rand"

	"github.com/google/uuid"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/items"
)

const (
	// DefaultCooldown is how many ticks an agent waits between trades.
	DefaultCooldown = 1200

	// MaxOffers caps an agent's offer list. Oldest offers are evicted
	// when new ones push past the cap.
	MaxOffers = 10

	reputationStep = 0.1
)

// Ledger is one agent's trading state: the offers it currently posts,
// its trade cooldown, and its reputation toward other agents. Ledgers
// are owned by the simulation and keyed by agent id there.
type Ledger struct {
	Offers     []*TradeOffer         `json:"offers"`
	Cooldown   int                   `json:"cooldown"`
	Reputation map[uuid.UUID]float64 `json:"reputation"`
}

func NewLedger() *Ledger {
	return &Ledger{
		Reputation: make(map[uuid.UUID]float64),
	}
}

// TickCooldown counts the trade cooldown down by one tick.
func (l *Ledger) TickCooldown() {
	if l.Cooldown > 0 {
		l.Cooldown--
	}
}

// OnCooldown reports whether the agent has to wait before trading again.
func (l *Ledger) OnCooldown() bool {
	return l.Cooldown > 0
}

// ResetCooldown starts a fresh cooldown after a completed trade.
func (l *Ledger) ResetCooldown() {
	l.Cooldown = DefaultCooldown
}

// ReputationWith returns this agent's opinion of another, 0 when they
// have never traded.
func (l *Ledger) ReputationWith(id uuid.UUID) float64 {
	return l.Reputation[id]
}

// BumpReputation moves reputation toward the positive end after a
// successful trade, clamped to [-1, 1].
func (l *Ledger) BumpReputation(id uuid.UUID) {
	l.Reputation[id] = clampReputation(l.Reputation[id] + reputationStep)
}

func clampReputation(r float64) float64 {
	if r > 1 {
		return 1
	}
	if r < -1 {
		return -1
	}
	return r
}

// AddOffer appends an offer, evicting the oldest if the list is full.
func (l *Ledger) AddOffer(o *TradeOffer) {
	if len(l.Offers) >= MaxOffers {
		l.Offers = l.Offers[1:]
	}
	l.Offers = append(l.Offers, o)
}

// AvailableOffers returns the offers that still have uses left.
func (l *Ledger) AvailableOffers() []*TradeOffer {
	var out []*TradeOffer
	for _, o := range l.Offers {
		if o.Available() {
			out = append(out, o)
		}
	}
	return out
}

// UpdateOffers appends a new batch of offers for the market cycle. The
// fixed part depends on the agent's role; social agents add extra
// offers priced off current market values. Old offers age out through
// the MaxOffers eviction in AddOffer rather than being wiped.
func (l *Ledger) UpdateOffers(role agents.Role, socialSkill int, ex *Exchange, rng *rand.Rand) {
	for _, o := range roleOffers(role) {
		l.AddOffer(o)
	}

	if socialSkill > 10 {
		n := 1 + socialSkill/20
		for i := 0; i < n; i++ {
			if o := randomOffer(socialSkill, ex, rng); o != nil {
				l.AddOffer(o)
			}
		}
	}
}

func roleOffers(role agents.Role) []*TradeOffer {
	switch role {
	case agents.RoleFarmer:
		return []*TradeOffer{
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemWheat, 20)),
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemCarrot, 15)),
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemPotato, 15)),
		}
	case agents.RoleMiner:
		return []*TradeOffer{
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemCoal, 15)),
			NewOffer(items.NewStack(items.ItemEmerald, 3), items.NewStack(items.ItemIronIngot, 5)),
			NewOffer(items.NewStack(items.ItemEmerald, 5), items.NewStack(items.ItemGoldIngot, 3)),
		}
	case agents.RoleToolsmith:
		return []*TradeOffer{
			NewOffer(items.NewStack(items.ItemEmerald, 3), items.NewStack(items.ItemIronPickaxe, 1)),
			NewOffer(items.NewStack(items.ItemEmerald, 2), items.NewStack(items.ItemIronAxe, 1)),
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemIronShovel, 1)),
		}
	case agents.RoleTrader:
		return []*TradeOffer{
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemBread, 6)),
			NewOffer(items.NewStack(items.ItemCoal, 10), items.NewStack(items.ItemEmerald, 1)),
			NewOffer(items.NewStack(items.ItemEmerald, 5), items.NewStack(items.ItemDiamond, 1)),
		}
	default:
		return []*TradeOffer{
			NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemBread, 4)),
		}
	}
}

// randomOffer pairs two random market items, balancing the output
// quantity against the input's market value and sweetening it by the
// agent's social skill.
func randomOffer(socialSkill int, ex *Exchange, rng *rand.Rand) *TradeOffer {
	tradeable := ex.TradedItems()
	if len(tradeable) < 2 {
		return nil
	}
	in := tradeable[rng.Intn(len(tradeable))]
	out := tradeable[rng.Intn(len(tradeable))]
	if in == out {
		return nil
	}

	inQty := 1 + rng.Intn(3)
	inVal := ex.AdjustedValue(in) * float64(inQty)
	outVal := ex.AdjustedValue(out)
	if outVal <= 0 {
		return nil
	}

	qty := int(math.Round(inVal / outVal))
	if qty < 1 {
		qty = 1
	}
	qty = int(math.Round(float64(qty) * (1 + float64(socialSkill)/100)))
	if max := out.MaxStack(); qty > max {
		qty = max
	}

	return NewOffer(items.NewStack(in, inQty), items.NewStack(out, qty))
}
