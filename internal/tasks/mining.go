package tasks

import (
	"math"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/world"
)

const (
	miningPriority     = 70
	miningMinSkill     = 2
	miningBaseDuration = 60
)

// oreValue weights target selection and the experience granted for a
// successful dig. Richer ores are worth walking further for.
var oreValue = map[world.BlockKind]float64{
	world.BlockCoalOre:     1.0,
	world.BlockCopperOre:   1.5,
	world.BlockIronOre:     2.0,
	world.BlockRedstoneOre: 2.5,
	world.BlockLapisOre:    2.5,
	world.BlockGoldOre:     3.0,
	world.BlockDiamondOre:  5.0,
	world.BlockEmeraldOre:  5.0,
}

// MiningTask walks an agent to the best nearby ore block and digs it
// out. Progress accumulates only while the agent is within reach, so
// interrupted digs resume where they left off.
type MiningTask struct {
	target    world.Location
	hasTarget bool
	progress  int
}

func NewMiningTask() *MiningTask {
	return &MiningTask{}
}

func (t *MiningTask) Name() string                   { return "mining" }
func (t *MiningTask) Priority() int                  { return miningPriority }
func (t *MiningTask) PrimarySkill() agents.SkillKind { return agents.SkillMining }

func (t *MiningTask) Reset() {
	t.hasTarget = false
	t.progress = 0
}

func (t *MiningTask) CanStart(a *agents.Agent, env *Env) bool {
	if !env.Cfg.Tasks.MiningEnabled {
		return false
	}
	if a.Skills.Level(agents.SkillMining) < miningMinSkill {
		return false
	}
	_, ok := findBestOre(a.Nav.Block(), env.World)
	return ok
}

func (t *MiningTask) Tick(a *agents.Agent, env *Env) Status {
	if !t.hasTarget {
		target, ok := findBestOre(a.Nav.Block(), env.World)
		if !ok {
			return StatusFailed
		}
		t.target = target
		t.hasTarget = true
		t.progress = 0
	}

	// Another miner may have taken the block while we walked.
	if !env.World.BlockAt(t.target).IsOre() {
		return StatusFailed
	}

	if world.Dist(a.Nav.Pos, world.Center(t.target)) >= actReach {
		a.Nav.MoveTo(t.target, walkSpeed)
		return StatusRunning
	}

	t.progress++
	if t.progress < requiredMiningTicks(a.Skills.Level(agents.SkillMining)) {
		return StatusRunning
	}

	block := env.World.BlockAt(t.target)
	loot := env.World.Mutate(t.target, world.Air, true)
	if !loot.IsEmpty() {
		a.Inventory.AddItem(loot)
	}
	a.Skills.AddExperience(agents.SkillMining, oreValue[block.Kind],
		env.Cfg.Skills.ProgressionRate, env.Cfg.Skills.MaxLevel)
	return StatusCompleted
}

// requiredMiningTicks is how long a dig takes: skilled miners shave
// ticks off the base duration, never below the floor.
func requiredMiningTicks(skill int) int {
	required := miningBaseDuration - skill/2
	if required < 10 {
		required = 10
	}
	return required
}

// findBestOre scans the volume around the agent and picks the ore with
// the best distance-to-value tradeoff.
func findBestOre(from world.Location, w *world.World) (world.Location, bool) {
	var best world.Location
	bestScore := math.Inf(1)
	found := false

	for dy := -scanVertical; dy <= scanVertical; dy++ {
		for dz := -scanRadius; dz <= scanRadius; dz++ {
			for dx := -scanRadius; dx <= scanRadius; dx++ {
				loc := from.Offset(dx, dy, dz)
				block := w.BlockAt(loc)
				if !block.IsOre() {
					continue
				}
				distSq := float64(dx*dx + dy*dy + dz*dz)
				score := distSq / oreValue[block.Kind]
				if score < bestScore {
					bestScore = score
					best = loc
					found = true
				}
			}
		}
	}
	return best, found
}
