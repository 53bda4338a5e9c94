// Simulation ties together all village systems and runs them each tick.
package engine

import (
	"fmt"
	"log/slog"
	"math/rand"

	"github.com/google/uuid"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/config"
	"github.com/emersonsg01/villagersim/internal/economy"
	"github.com/emersonsg01/villagersim/internal/tasks"
	"github.com/emersonsg01/villagersim/internal/weather"
	"github.com/emersonsg01/villagersim/internal/world"
)

// Simulation holds the complete village state and wires systems together.
// Per-agent schedulers and trade ledgers live here, keyed by agent id,
// and are created and torn down through the registry's lifecycle hooks.
type Simulation struct {
	World    *world.World
	Registry *agents.Registry
	Exchange *economy.Exchange
	Catalog  *tasks.Catalog
	Spawner  *agents.Spawner
	Weather  *weather.System
	Cfg      *config.Config

	Events   []Event // Recent events (trimmed daily)
	LastTick uint64  // Most recent tick processed
	Stats    SimStats

	rng        *rand.Rand
	env        *tasks.Env
	schedulers map[uuid.UUID]*tasks.Scheduler
	ledgers    map[uuid.UUID]*economy.Ledger
}

// Event is a notable occurrence in the village.
type Event struct {
	Tick        uint64 `json:"tick"`
	Description string `json:"description"`
	Category    string `json:"category"` // "birth", "death", "trade", "social", "role"
}

// SimStats tracks aggregate village statistics.
type SimStats struct {
	Population  int            `json:"population"`
	Births      int            `json:"births"`
	Deaths      int            `json:"deaths"`
	Trades      uint64         `json:"trades"`
	AvgSkill    float64        `json:"avg_skill"`
	RolesByName map[string]int `json:"roles"`
}

// NewSimulation creates a Simulation around a generated world.
func NewSimulation(w *world.World, cfg *config.Config) *Simulation {
	sim := &Simulation{
		World:      w,
		Registry:   agents.NewRegistry(),
		Exchange:   economy.NewExchange(),
		Catalog:    tasks.DefaultCatalog(),
		Spawner:    agents.NewSpawner(cfg.Seed + 300),
		Weather:    weather.NewSystem(cfg.Seed + 700),
		Cfg:        cfg,
		rng:        rand.New(rand.NewSource(cfg.Seed + 500)),
		schedulers: make(map[uuid.UUID]*tasks.Scheduler),
		ledgers:    make(map[uuid.UUID]*economy.Ledger),
	}
	sim.env = &tasks.Env{World: w, Cfg: cfg}

	sim.Registry.OnAdd = func(a *agents.Agent) {
		sim.schedulers[a.ID] = tasks.NewScheduler(sim.Catalog)
		sim.ledgers[a.ID] = economy.NewLedger()
	}
	sim.Registry.OnRemove = func(a *agents.Agent) {
		delete(sim.schedulers, a.ID)
		delete(sim.ledgers, a.ID)
	}
	return sim
}

// CurrentTick returns the most recently processed tick number.
func (s *Simulation) CurrentTick() uint64 {
	return s.LastTick
}

// Ledger returns an agent's trade ledger, nil for unknown agents.
func (s *Simulation) Ledger(id uuid.UUID) *economy.Ledger {
	return s.ledgers[id]
}

// Scheduler returns an agent's task scheduler, nil for unknown agents.
func (s *Simulation) Scheduler(id uuid.UUID) *tasks.Scheduler {
	return s.schedulers[id]
}

// RestoreLedger installs a loaded ledger for an agent already in the
// registry. Used when resuming from a saved state.
func (s *Simulation) RestoreLedger(id uuid.UUID, l *economy.Ledger) {
	if _, ok := s.ledgers[id]; ok && l != nil {
		s.ledgers[id] = l
	}
}

// SpawnPopulation adds the initial founders near the world spawn.
func (s *Simulation) SpawnPopulation(n int) {
	for i := 0; i < n; i++ {
		a := s.Spawner.SpawnFounder(s.World.Spawn, s.LastTick)
		s.Registry.Add(a)
	}
	slog.Info("population spawned", "count", n, "spawn", s.World.Spawn)
}

// TickMinute runs every tick: cooldowns, movement, roles, and behavior.
func (s *Simulation) TickMinute(tick uint64) {
	s.LastTick = tick

	economyDue := s.Cfg.Economy.Enabled &&
		s.Cfg.Economy.UpdateFrequency > 0 &&
		tick%uint64(s.Cfg.Economy.UpdateFrequency) == 0

	all := s.Registry.All()
	for _, a := range all {
		if !a.Alive {
			continue
		}

		s.ledgers[a.ID].TickCooldown()
		a.Nav.Step()
		s.updateRole(a, tick)

		if sched := s.schedulers[a.ID]; sched != nil {
			sched.Update(a, s.env)
		}
	}

	if economyDue {
		s.refreshOffers(all)
		s.runTrades(all, tick)
	}
}

// TickHour runs every sim-hour: weather, crop growth, gear upgrades.
func (s *Simulation) TickHour(tick uint64) {
	cond := s.Weather.At(tick)
	s.World.GrowCrops(s.rng, weather.GrowthBonus(cond))

	for _, a := range s.Registry.All() {
		if !a.Alive {
			continue
		}
		a.Equipment.UpgradeFrom(a.Inventory)
	}
}

// TickDay runs every sim-day: bonding, reproduction, mortality, and
// the daily summary.
func (s *Simulation) TickDay(tick uint64) {
	if s.Cfg.Social.Enabled {
		s.processSocial(tick)
	}
	s.processReproduction(tick)
	s.processMortality(tick)
	s.updateStats()

	slog.Info("daily report",
		"tick", tick,
		"time", SimTime(tick),
		"population", s.Stats.Population,
		"births", s.Stats.Births,
		"deaths", s.Stats.Deaths,
		"trades", s.Stats.Trades,
		"avg_skill", fmt.Sprintf("%.2f", s.Stats.AvgSkill),
	)

	// Trim old events to prevent unbounded growth (keep last 1000).
	if len(s.Events) > 1000 {
		s.Events = s.Events[len(s.Events)-1000:]
	}
}

// updateRole keeps an agent's role in line with its skills. Agents stay
// children until they have lived through the childhood period.
func (s *Simulation) updateRole(a *agents.Agent, tick uint64) {
	if a.Age(tick) < uint64(s.Cfg.Population.ChildhoodTicks) && a.Skills.Generation > 1 {
		a.Role = agents.RoleChild
		return
	}
	role := agents.RoleForSkills(a.Skills)
	if role != a.Role {
		if a.Role != agents.RoleChild && a.Role != agents.RoleUnemployed {
			s.record(tick, "role", fmt.Sprintf("%s is now a %s", a.Name, role.Name()))
		}
		a.Role = role
	}
}

func (s *Simulation) record(tick uint64, category, desc string) {
	s.Events = append(s.Events, Event{Tick: tick, Description: desc, Category: category})
}

func (s *Simulation) updateStats() {
	alive := 0
	levelSum := 0
	roles := make(map[string]int)

	for _, a := range s.Registry.All() {
		if !a.Alive {
			continue
		}
		alive++
		roles[a.Role.Name()]++
		for _, k := range agents.AllSkills {
			levelSum += a.Skills.Level(k)
		}
	}

	s.Stats.Population = alive
	s.Stats.Trades = s.Exchange.TradeCount()
	s.Stats.RolesByName = roles
	if alive > 0 {
		s.Stats.AvgSkill = float64(levelSum) / float64(alive*len(agents.AllSkills))
	}
}
