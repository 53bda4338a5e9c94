package tasks

import (
	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

const (
	farmingPriority     = 65
	farmingMinSkill     = 2
	farmingBaseDuration = 40

	farmXPHarvest = 2.0
	farmXPPlant   = 1.0
	farmXPTill    = 0.5
)

type farmAction int

const (
	farmNone farmAction = iota
	farmHarvest
	farmPlant
	farmTill
)

// FarmingTask works the nearest farm plot. Each run performs one field
// action, preferring harvesting mature crops, then planting seeds on
// bare farmland, then tilling soil next to existing farmland.
type FarmingTask struct {
	action   farmAction
	target   world.Location
	progress int
}

func NewFarmingTask() *FarmingTask {
	return &FarmingTask{}
}

func (t *FarmingTask) Name() string                   { return "farming" }
func (t *FarmingTask) Priority() int                  { return farmingPriority }
func (t *FarmingTask) PrimarySkill() agents.SkillKind { return agents.SkillFarming }

func (t *FarmingTask) Reset() {
	t.action = farmNone
	t.progress = 0
}

func (t *FarmingTask) CanStart(a *agents.Agent, env *Env) bool {
	if !env.Cfg.Tasks.FarmingEnabled {
		return false
	}
	if a.Skills.Level(agents.SkillFarming) < farmingMinSkill {
		return false
	}
	action, _ := findFarmWork(a, env.World)
	return action != farmNone
}

func (t *FarmingTask) Tick(a *agents.Agent, env *Env) Status {
	if t.action == farmNone {
		action, target := findFarmWork(a, env.World)
		if action == farmNone {
			return StatusFailed
		}
		t.action = action
		t.target = target
		t.progress = 0
	}

	if !t.stillValid(a, env.World) {
		return StatusFailed
	}

	if world.Dist(a.Nav.Pos, world.Center(t.target)) >= actReach {
		a.Nav.MoveTo(t.target, walkSpeed)
		return StatusRunning
	}

	t.progress++
	skill := a.Skills.Level(agents.SkillFarming)
	if t.progress < requiredFarmingTicks(skill) {
		return StatusRunning
	}

	switch t.action {
	case farmHarvest:
		loot := env.World.Mutate(t.target, world.Air, true)
		if !loot.IsEmpty() {
			a.Inventory.AddItem(loot)
		}
		// Mature crops yield seed back for replanting.
		a.Inventory.AddItem(items.NewStack(items.ItemWheatSeeds, 1))
		a.Skills.AddExperience(agents.SkillFarming, farmXPHarvest,
			env.Cfg.Skills.ProgressionRate, env.Cfg.Skills.MaxLevel)
	case farmPlant:
		if !a.Inventory.RemoveCount(items.ItemWheatSeeds, 1) {
			return StatusFailed
		}
		env.World.SetBlock(t.target, world.BlockState{Kind: world.BlockCrop})
		a.Skills.AddExperience(agents.SkillFarming, farmXPPlant,
			env.Cfg.Skills.ProgressionRate, env.Cfg.Skills.MaxLevel)
	case farmTill:
		env.World.SetBlock(t.target, world.BlockState{Kind: world.BlockFarmland})
		a.Skills.AddExperience(agents.SkillFarming, farmXPTill,
			env.Cfg.Skills.ProgressionRate, env.Cfg.Skills.MaxLevel)
	}
	return StatusCompleted
}

// stillValid re-checks that the chosen field action still applies; the
// world may have changed while the agent walked over.
func (t *FarmingTask) stillValid(a *agents.Agent, w *world.World) bool {
	block := w.BlockAt(t.target)
	switch t.action {
	case farmHarvest:
		return block.IsMatureCrop()
	case farmPlant:
		return block.Kind == world.BlockAir &&
			w.BlockAt(t.target.Offset(0, -1, 0)).Kind == world.BlockFarmland &&
			a.Inventory.CountItem(items.ItemWheatSeeds) > 0
	case farmTill:
		return block.Kind == world.BlockDirt || block.Kind == world.BlockGrass
	default:
		return false
	}
}

func requiredFarmingTicks(skill int) int {
	required := farmingBaseDuration - skill/2
	if required < 10 {
		required = 10
	}
	return required
}

// findFarmWork scans around the agent for field work, in priority
// order: harvest, plant, till. Planting needs seeds in the inventory;
// tilling only extends soil already adjacent to farmland.
func findFarmWork(a *agents.Agent, w *world.World) (farmAction, world.Location) {
	from := a.Nav.Block()
	hasSeeds := a.Inventory.CountItem(items.ItemWheatSeeds) > 0

	var plantAt, tillAt world.Location
	havePlant, haveTill := false, false

	for dy := -scanVertical; dy <= scanVertical; dy++ {
		for dz := -scanRadius; dz <= scanRadius; dz++ {
			for dx := -scanRadius; dx <= scanRadius; dx++ {
				loc := from.Offset(dx, dy, dz)
				block := w.BlockAt(loc)

				if block.IsMatureCrop() {
					return farmHarvest, loc
				}
				if !havePlant && hasSeeds && block.Kind == world.BlockFarmland &&
					w.BlockAt(loc.Above()).Kind == world.BlockAir {
					plantAt = loc.Above()
					havePlant = true
				}
				if !haveTill && (block.Kind == world.BlockDirt || block.Kind == world.BlockGrass) &&
					nextToFarmland(w, loc) && w.BlockAt(loc.Above()).Kind == world.BlockAir {
					tillAt = loc
					haveTill = true
				}
			}
		}
	}

	if havePlant {
		return farmPlant, plantAt
	}
	if haveTill {
		return farmTill, tillAt
	}
	return farmNone, world.Location{}
}

func nextToFarmland(w *world.World, loc world.Location) bool {
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, 1}, {0, -1}} {
		if w.BlockAt(loc.Offset(d[0], 0, d[1])).Kind == world.BlockFarmland {
			return true
		}
	}
	return false
}
