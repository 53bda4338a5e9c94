package economy

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/uuid"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/items"
)

func TestOfferPriceMultiplier(t *testing.T) {
	o := NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemWheat, 20))

	if got := o.PriceMultiplier(0); got != 1.0 {
		t.Fatalf("fresh multiplier = %v, want 1.0", got)
	}

	for i := 0; i < 6; i++ {
		o.IncrementUses()
	}
	// 1 - 6/12*0.3 = 0.85
	if got := o.PriceMultiplier(0); math.Abs(got-0.85) > 1e-9 {
		t.Fatalf("multiplier at 6 uses = %v, want 0.85", got)
	}

	// Heavy discounting floors at 0.7.
	if got := o.PriceMultiplier(-0.5); got != 0.7 {
		t.Fatalf("floored multiplier = %v, want 0.7", got)
	}
}

func TestOfferUsesExhaust(t *testing.T) {
	o := NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemBread, 4))

	for i := 0; i < DefaultMaxUses; i++ {
		if !o.Available() {
			t.Fatalf("offer exhausted after %d uses", i)
		}
		o.IncrementUses()
	}
	if o.Available() {
		t.Fatal("offer still available past max uses")
	}
}

func TestExchangeDemandMoves(t *testing.T) {
	ex := NewExchange()

	if got := ex.DemandModifier(items.ItemWheat); got != 1.0 {
		t.Fatalf("initial demand = %v, want 1.0", got)
	}

	ex.RecordTrade(items.ItemWheat, items.ItemEmerald)
	if got := ex.DemandModifier(items.ItemWheat); math.Abs(got-1.05) > 1e-9 {
		t.Fatalf("bought demand = %v, want 1.05", got)
	}
	if got := ex.DemandModifier(items.ItemEmerald); math.Abs(got-0.95) > 1e-9 {
		t.Fatalf("sold demand = %v, want 0.95", got)
	}
	if ex.TradeCount() != 1 {
		t.Fatalf("trade count = %d, want 1", ex.TradeCount())
	}
}

func TestExchangeDemandClamps(t *testing.T) {
	ex := NewExchange()

	for i := 0; i < 500; i++ {
		ex.RecordTrade(items.ItemWheat, items.ItemEmerald)
	}
	if got := ex.DemandModifier(items.ItemWheat); got != DemandCeil {
		t.Fatalf("demand = %v, want ceiling %v", got, DemandCeil)
	}
	if got := ex.DemandModifier(items.ItemEmerald); got != DemandFloor {
		t.Fatalf("demand = %v, want floor %v", got, DemandFloor)
	}
}

func TestAdjustedValue(t *testing.T) {
	ex := NewExchange()

	if got := ex.AdjustedValue(items.ItemDiamond); got != 16.0 {
		t.Fatalf("neutral adjusted value = %v, want 16", got)
	}
	ex.SetDemandModifier(items.ItemDiamond, 1.5)
	if got := ex.AdjustedValue(items.ItemDiamond); got != 24.0 {
		t.Fatalf("adjusted value = %v, want 24", got)
	}
}

func TestExecuteTradeMovesGoods(t *testing.T) {
	ex := NewExchange()
	inv := items.NewInventory()
	inv.AddItem(items.NewStack(items.ItemEmerald, 3))

	offer := NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemWheat, 20))
	if !ExecuteTrade(offer, inv, inv, ex) {
		t.Fatal("trade failed with sufficient funds")
	}

	if inv.CountItem(items.ItemEmerald) != 2 {
		t.Fatalf("emeralds = %d, want 2", inv.CountItem(items.ItemEmerald))
	}
	if inv.CountItem(items.ItemWheat) != 20 {
		t.Fatalf("wheat = %d, want 20", inv.CountItem(items.ItemWheat))
	}
	if offer.Uses != 1 {
		t.Fatalf("uses = %d, want 1", offer.Uses)
	}
	if got := ex.DemandModifier(items.ItemWheat); math.Abs(got-1.05) > 1e-9 {
		t.Fatalf("wheat demand = %v, want 1.05", got)
	}
}

func TestExecuteTradeFailsWithoutPayment(t *testing.T) {
	ex := NewExchange()
	inv := items.NewInventory()
	inv.AddItem(items.NewStack(items.ItemEmerald, 1))

	offer := NewOffer(items.NewStack(items.ItemEmerald, 3), items.NewStack(items.ItemIronIngot, 5))
	if ExecuteTrade(offer, inv, inv, ex) {
		t.Fatal("trade succeeded without payment")
	}

	if inv.CountItem(items.ItemEmerald) != 1 || inv.CountItem(items.ItemIronIngot) != 0 {
		t.Fatal("failed trade mutated inventory")
	}
	if offer.Uses != 0 || ex.TradeCount() != 0 {
		t.Fatal("failed trade moved offer or market state")
	}
}

func TestExecuteTradeFailsWhenFull(t *testing.T) {
	ex := NewExchange()
	inv := items.NewInventory()
	// Fill every slot with tools, then free no room for output.
	for i := 0; i < inv.Size(); i++ {
		inv.AddItem(items.NewStack(items.ItemIronPickaxe, 1))
	}

	offer := NewOffer(items.NewStack(items.ItemIronPickaxe, 1), items.NewStack(items.ItemWheat, 20))
	if ExecuteTrade(offer, inv, inv, ex) {
		t.Fatal("trade succeeded into a full inventory")
	}
	if inv.CountItem(items.ItemIronPickaxe) != inv.Size() {
		t.Fatal("failed trade removed payment")
	}
}

func TestExecuteTradeExhaustedOffer(t *testing.T) {
	ex := NewExchange()
	inv := items.NewInventory()
	inv.AddItem(items.NewStack(items.ItemEmerald, 64))

	offer := NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemBread, 4))
	for i := 0; i < DefaultMaxUses; i++ {
		offer.IncrementUses()
	}

	if ExecuteTrade(offer, inv, inv, ex) {
		t.Fatal("trade succeeded on an exhausted offer")
	}
}

func TestLedgerOfferCapEvictsOldest(t *testing.T) {
	l := NewLedger()

	var first *TradeOffer
	for i := 0; i < MaxOffers+3; i++ {
		o := NewOffer(items.NewStack(items.ItemEmerald, 1), items.NewStack(items.ItemBread, i+1))
		if i == 0 {
			first = o
		}
		l.AddOffer(o)
	}

	if len(l.Offers) != MaxOffers {
		t.Fatalf("offer count = %d, want cap %d", len(l.Offers), MaxOffers)
	}
	for _, o := range l.Offers {
		if o == first {
			t.Fatal("oldest offer survived past the cap")
		}
	}
}

func TestLedgerCooldown(t *testing.T) {
	l := NewLedger()

	if l.OnCooldown() {
		t.Fatal("fresh ledger on cooldown")
	}
	l.ResetCooldown()
	if !l.OnCooldown() || l.Cooldown != DefaultCooldown {
		t.Fatalf("cooldown = %d, want %d", l.Cooldown, DefaultCooldown)
	}
	for i := 0; i < DefaultCooldown; i++ {
		l.TickCooldown()
	}
	if l.OnCooldown() {
		t.Fatal("cooldown did not expire")
	}
	l.TickCooldown() // does not underflow
	if l.Cooldown != 0 {
		t.Fatalf("cooldown = %d after extra tick", l.Cooldown)
	}
}

func TestLedgerReputationClamps(t *testing.T) {
	l := NewLedger()
	other := uuid.New()

	for i := 0; i < 30; i++ {
		l.BumpReputation(other)
	}
	if got := l.ReputationWith(other); got != 1.0 {
		t.Fatalf("reputation = %v, want clamp at 1.0", got)
	}
	if got := l.ReputationWith(uuid.New()); got != 0 {
		t.Fatalf("unknown agent reputation = %v, want 0", got)
	}
}

func TestUpdateOffersByRole(t *testing.T) {
	ex := NewExchange()
	rng := rand.New(rand.NewSource(11))

	cases := []struct {
		role    agents.Role
		outputs []items.ItemType
	}{
		{agents.RoleFarmer, []items.ItemType{items.ItemWheat, items.ItemCarrot, items.ItemPotato}},
		{agents.RoleMiner, []items.ItemType{items.ItemCoal, items.ItemIronIngot, items.ItemGoldIngot}},
		{agents.RoleToolsmith, []items.ItemType{items.ItemIronPickaxe, items.ItemIronAxe, items.ItemIronShovel}},
		{agents.RoleTrader, []items.ItemType{items.ItemBread, items.ItemEmerald, items.ItemDiamond}},
		{agents.RoleGuard, []items.ItemType{items.ItemBread}},
	}

	for _, tc := range cases {
		l := NewLedger()
		l.UpdateOffers(tc.role, 1, ex, rng)
		if len(l.Offers) != len(tc.outputs) {
			t.Fatalf("%s offers = %d, want %d", tc.role.Name(), len(l.Offers), len(tc.outputs))
		}
		for i, want := range tc.outputs {
			if l.Offers[i].Output.Item != want {
				t.Errorf("%s offer %d output = %s, want %s",
					tc.role.Name(), i, l.Offers[i].Output.Item.Name(), want.Name())
			}
		}
	}
}

func TestUpdateOffersSocialExtras(t *testing.T) {
	ex := NewExchange()
	rng := rand.New(rand.NewSource(3))

	l := NewLedger()
	l.UpdateOffers(agents.RoleTrader, 40, ex, rng)

	// 3 fixed trader offers plus up to 1+40/20 = 3 random extras.
	if len(l.Offers) < 3 || len(l.Offers) > 6 {
		t.Fatalf("offer count = %d, want between 3 and 6", len(l.Offers))
	}
}

func TestRandomOfferSkillSkew(t *testing.T) {
	ex := NewExchange()

	inflated := 0
	for seed := int64(0); seed < 50; seed++ {
		base := randomOffer(0, ex, rand.New(rand.NewSource(seed)))
		skewed := randomOffer(50, ex, rand.New(rand.NewSource(seed)))
		if base == nil || skewed == nil {
			continue
		}

		// Same seed picks the same item pair, so the only difference
		// is the skill bonus: x1.5 at skill 50, clamped to stack size.
		want := int(math.Round(float64(base.Output.Count) * 1.5))
		if max := skewed.Output.Item.MaxStack(); want > max {
			want = max
		}
		if skewed.Output.Count != want {
			t.Fatalf("seed %d: skill 50 output = %d, want %d (base %d)",
				seed, skewed.Output.Count, want, base.Output.Count)
		}
		if skewed.Output.Count > base.Output.Count {
			inflated++
		}
	}
	if inflated == 0 {
		t.Fatal("no offer output was inflated by the trading skill")
	}
}

func TestUpdateOffersAccumulates(t *testing.T) {
	ex := NewExchange()
	rng := rand.New(rand.NewSource(5))

	l := NewLedger()
	l.UpdateOffers(agents.RoleFarmer, 1, ex, rng)
	first := l.Offers[0]
	l.UpdateOffers(agents.RoleFarmer, 1, ex, rng)

	// Two refreshes stack, each adding the 3 fixed farmer offers.
	if len(l.Offers) != 6 {
		t.Fatalf("offer count after two refreshes = %d, want 6", len(l.Offers))
	}
	if l.Offers[0] != first {
		t.Fatal("earlier offers dropped before the cap was reached")
	}

	l.UpdateOffers(agents.RoleFarmer, 1, ex, rng)
	l.UpdateOffers(agents.RoleFarmer, 1, ex, rng)
	if len(l.Offers) != MaxOffers {
		t.Fatalf("offer count = %d, want cap %d", len(l.Offers), MaxOffers)
	}
	for _, o := range l.Offers {
		if o == first {
			t.Fatal("oldest offer survived past the cap")
		}
	}
}
