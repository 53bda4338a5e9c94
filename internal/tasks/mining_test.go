package tasks

import (
	"testing"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/config"
	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

func miningSetup(t *testing.T) (*agents.Agent, *Env) {
	t.Helper()
	a := agents.NewAgent("Borin", world.Location{X: 4, Y: 1, Z: 4}, 0)
	a.Skills.Levels[agents.SkillMining] = 10
	return a, &Env{World: world.New(16, 8, 16), Cfg: config.Default()}
}

func TestMiningDigsAdjacentOre(t *testing.T) {
	a, env := miningSetup(t)
	oreAt := world.Location{X: 5, Y: 1, Z: 4}
	env.World.SetBlock(oreAt, world.BlockState{Kind: world.BlockIronOre})

	task := NewMiningTask()
	if !task.CanStart(a, env) {
		t.Fatal("CanStart = false with ore in range")
	}

	// Skill 10 shaves 5 ticks off the base 60.
	required := requiredMiningTicks(10)
	if required != 55 {
		t.Fatalf("required ticks = %d, want 55", required)
	}

	task.Reset()
	for i := 0; i < required-1; i++ {
		if got := task.Tick(a, env); got != StatusRunning {
			t.Fatalf("tick %d status = %v, want running", i, got)
		}
	}
	if got := task.Tick(a, env); got != StatusCompleted {
		t.Fatalf("final status = %v, want completed", got)
	}

	if env.World.BlockAt(oreAt).Kind != world.BlockAir {
		t.Fatal("ore block not cleared")
	}
	if a.Inventory.CountItem(items.ItemIronIngot) != 1 {
		t.Fatal("loot missing from inventory")
	}
	if a.Skills.Experience[agents.SkillMining] != 2.0 {
		t.Fatalf("mining exp = %v, want 2.0", a.Skills.Experience[agents.SkillMining])
	}
}

func TestMiningWalksToDistantOre(t *testing.T) {
	a, env := miningSetup(t)
	env.World.SetBlock(world.Location{X: 12, Y: 1, Z: 4}, world.BlockState{Kind: world.BlockCoalOre})

	task := NewMiningTask()
	task.Reset()

	if got := task.Tick(a, env); got != StatusRunning {
		t.Fatalf("status = %v, want running while walking", got)
	}
	if !a.Nav.IsMoving() {
		t.Fatal("navigator not moving toward ore")
	}
}

func TestMiningPrefersValuableOre(t *testing.T) {
	a, env := miningSetup(t)
	// Coal at distance 2 scores 4/1.0 = 4; diamond at distance 3 scores
	// 9/5.0 = 1.8 and wins despite being further.
	env.World.SetBlock(world.Location{X: 6, Y: 1, Z: 4}, world.BlockState{Kind: world.BlockCoalOre})
	env.World.SetBlock(world.Location{X: 7, Y: 1, Z: 4}, world.BlockState{Kind: world.BlockDiamondOre})

	target, ok := findBestOre(a.Nav.Block(), env.World)
	if !ok {
		t.Fatal("no ore found")
	}
	if target != (world.Location{X: 7, Y: 1, Z: 4}) {
		t.Fatalf("target = %v, want the diamond ore", target)
	}
}

func TestMiningFailsWhenOreTaken(t *testing.T) {
	a, env := miningSetup(t)
	oreAt := world.Location{X: 5, Y: 1, Z: 4}
	env.World.SetBlock(oreAt, world.BlockState{Kind: world.BlockCoalOre})

	task := NewMiningTask()
	task.Reset()
	task.Tick(a, env)

	// Someone else mines the block out from under us.
	env.World.SetBlock(oreAt, world.Air)
	if got := task.Tick(a, env); got != StatusFailed {
		t.Fatalf("status = %v, want failed", got)
	}
}

func TestMiningGates(t *testing.T) {
	a, env := miningSetup(t)
	env.World.SetBlock(world.Location{X: 5, Y: 1, Z: 4}, world.BlockState{Kind: world.BlockCoalOre})
	task := NewMiningTask()

	a.Skills.Levels[agents.SkillMining] = 1
	if task.CanStart(a, env) {
		t.Fatal("CanStart = true below minimum skill")
	}

	a.Skills.Levels[agents.SkillMining] = 10
	env.Cfg.Tasks.MiningEnabled = false
	if task.CanStart(a, env) {
		t.Fatal("CanStart = true with mining disabled")
	}
}

func TestRequiredMiningTicksFloor(t *testing.T) {
	if got := requiredMiningTicks(0); got != 60 {
		t.Errorf("skill 0 = %d, want 60", got)
	}
	if got := requiredMiningTicks(20); got != 50 {
		t.Errorf("skill 20 = %d, want 50", got)
	}
	if got := requiredMiningTicks(200); got != 10 {
		t.Errorf("skill 200 = %d, want floor 10", got)
	}
}
