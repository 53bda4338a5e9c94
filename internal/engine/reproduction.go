package engine

import (
	"fmt"

	"github.com/emersonsg01/villagersim/internal/agents"
)

const bondThreshold = 0.5

// processReproduction lets bonded adult pairs have children, one child
// per pair per day, bounded by the population cap and a per-parent
// cooldown. Children inherit their parents' skills.
func (s *Simulation) processReproduction(tick uint64) {
	if s.Registry.Len() >= s.Cfg.Population.Max {
		return
	}

	all := s.Registry.All()
	cooldown := uint64(s.Cfg.Population.ReproductionCooldown)

	for i, a := range all {
		if !s.canReproduce(a, tick, cooldown) {
			continue
		}
		for _, b := range all[i+1:] {
			if !s.canReproduce(b, tick, cooldown) {
				continue
			}
			if a.Relationship(b.ID) < bondThreshold || b.Relationship(a.ID) < bondThreshold {
				continue
			}

			child := s.Spawner.SpawnChild(a, b,
				s.Cfg.Skills.InheritanceRate, s.Cfg.Skills.EvolutionBonus, tick)
			s.Registry.Add(child)
			a.LastReproTick = tick
			b.LastReproTick = tick
			s.Stats.Births++

			s.record(tick, "birth", fmt.Sprintf("%s was born to %s and %s (generation %d)",
				child.Name, a.Name, b.Name, child.Skills.Generation))

			if s.Registry.Len() >= s.Cfg.Population.Max {
				return
			}
			break
		}
	}
}

func (s *Simulation) canReproduce(a *agents.Agent, tick uint64, cooldown uint64) bool {
	if !a.Alive || a.Role == agents.RoleChild {
		return false
	}
	if a.Age(tick) < uint64(s.Cfg.Population.ChildhoodTicks) && a.Skills.Generation > 1 {
		return false
	}
	if a.LastReproTick != 0 && tick-a.LastReproTick < cooldown {
		return false
	}
	return true
}
