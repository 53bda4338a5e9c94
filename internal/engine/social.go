package engine

import (
	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/world"
)

const bondPerDay = 0.02

// processSocial strengthens bonds between agents who spent the day near
// each other. Mingling also trains the social skill a little.
func (s *Simulation) processSocial(tick uint64) {
	all := s.Registry.All()
	radius := float64(s.Cfg.Social.Radius)

	for i, a := range all {
		if !a.Alive {
			continue
		}
		met := 0
		for _, b := range all[i+1:] {
			if !b.Alive {
				continue
			}
			if world.Dist(a.Nav.Pos, b.Nav.Pos) > radius {
				continue
			}
			a.ModifyRelationship(b.ID, bondPerDay)
			b.ModifyRelationship(a.ID, bondPerDay)
			met++
		}
		if met > 0 {
			a.Skills.AddExperience(agents.SkillSocial, float64(met),
				s.Cfg.Skills.ProgressionRate, s.Cfg.Skills.MaxLevel)
		}
	}
}
