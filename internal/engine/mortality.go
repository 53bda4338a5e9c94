package engine

import (
	"fmt"
)

// processMortality runs the daily old-age check. Agents past their
// lifespan gain a death chance that grows with the overage and is
// certain at twice the lifespan. The dead are removed through the
// registry so their schedulers and ledgers go with them.
func (s *Simulation) processMortality(tick uint64) {
	lifespan := uint64(s.Cfg.Population.LifespanTicks)

	for _, a := range s.Registry.All() {
		if !a.Alive {
			s.Registry.Remove(a.ID)
			continue
		}
		age := a.Age(tick)
		if age <= lifespan {
			continue
		}

		chance := float64(age-lifespan) / float64(lifespan)
		if chance < 1 && s.rng.Float64() >= chance {
			continue
		}

		a.Alive = false
		s.Stats.Deaths++
		s.record(tick, "death", fmt.Sprintf("%s died of old age after %d days",
			a.Name, age/TicksPerSimDay))
		s.Registry.Remove(a.ID)
	}
}
