package engine

import (
	"fmt"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/economy"
	"github.com/emersonsg01/villagersim/internal/world"
)

// refreshOffers adds a fresh batch to every agent's offer list for the
// cycle. Roles determine the fixed offers; social agents add extras.
func (s *Simulation) refreshOffers(all []*agents.Agent) {
	for _, a := range all {
		if !a.Alive {
			continue
		}
		ledger := s.ledgers[a.ID]
		ledger.UpdateOffers(a.Role, a.Skills.Level(agents.SkillSocial), s.Exchange, s.rng)
	}
}

// runTrades lets each agent off cooldown buy from one nearby seller.
// The buyer pays the offer's input out of its own inventory and takes
// the output; both sides warm up to each other on success.
func (s *Simulation) runTrades(all []*agents.Agent, tick uint64) {
	for _, buyer := range all {
		if !buyer.Alive {
			continue
		}
		buyerLedger := s.ledgers[buyer.ID]
		if buyerLedger.OnCooldown() {
			continue
		}

		seller, offer := s.findSeller(buyer, all)
		if seller == nil {
			continue
		}

		if !economy.ExecuteTrade(offer, buyer.Inventory, buyer.Inventory, s.Exchange) {
			continue
		}

		buyerLedger.ResetCooldown()
		buyerLedger.BumpReputation(seller.ID)
		s.ledgers[seller.ID].BumpReputation(buyer.ID)
		buyer.ModifyRelationship(seller.ID, 0.05)
		seller.ModifyRelationship(buyer.ID, 0.05)

		s.record(tick, "trade", fmt.Sprintf("%s bought %dx %s from %s",
			buyer.Name, offer.Output.Count, offer.Output.Item.Name(), seller.Name))
	}
}

// findSeller picks a nearby agent posting an offer the buyer can
// afford. Sellers the buyer trusts more win; within one seller's list
// the buyer takes the cheapest deal by price multiplier, so heavily
// used offers get discounted and in-demand goods cost more.
func (s *Simulation) findSeller(buyer *agents.Agent, all []*agents.Agent) (*agents.Agent, *economy.TradeOffer) {
	buyerLedger := s.ledgers[buyer.ID]
	radius := float64(s.Cfg.Social.Radius)

	var bestSeller *agents.Agent
	var bestOffer *economy.TradeOffer
	bestRep := -2.0

	for _, seller := range all {
		if !seller.Alive || seller.ID == buyer.ID {
			continue
		}
		if world.Dist(buyer.Nav.Pos, seller.Nav.Pos) > radius {
			continue
		}
		rep := buyerLedger.ReputationWith(seller.ID)
		if rep <= bestRep {
			continue
		}

		var pick *economy.TradeOffer
		bestPrice := 0.0
		for _, offer := range s.ledgers[seller.ID].AvailableOffers() {
			if buyer.Inventory.CountItem(offer.Input.Item) < offer.Input.Count {
				continue
			}
			if !buyer.Inventory.CanAdd(offer.Output) {
				continue
			}
			price := offer.PriceMultiplier(s.Exchange.DemandModifier(offer.Output.Item) - 1)
			if pick == nil || price < bestPrice {
				pick = offer
				bestPrice = price
			}
		}
		if pick != nil {
			bestSeller = seller
			bestOffer = pick
			bestRep = rep
		}
	}
	return bestSeller, bestOffer
}
