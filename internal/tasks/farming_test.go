package tasks

import (
	"testing"

	"github.com/emersonsg01/villagersim/internal/agents"
	"github.com/emersonsg01/villagersim/internal/config"
	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

func farmingSetup(t *testing.T) (*agents.Agent, *Env) {
	t.Helper()
	a := agents.NewAgent("Greta", world.Location{X: 4, Y: 1, Z: 4}, 0)
	a.Skills.Levels[agents.SkillFarming] = 10
	return a, &Env{World: world.New(16, 8, 16), Cfg: config.Default()}
}

func runToCompletion(t *testing.T, task Task, a *agents.Agent, env *Env, limit int) {
	t.Helper()
	task.Reset()
	for i := 0; i < limit; i++ {
		a.Nav.Step()
		switch task.Tick(a, env) {
		case StatusCompleted:
			return
		case StatusFailed:
			t.Fatal("task failed")
		}
	}
	t.Fatalf("task did not complete within %d ticks", limit)
}

func TestFarmingHarvestsMatureCrop(t *testing.T) {
	a, env := farmingSetup(t)
	soil := world.Location{X: 5, Y: 0, Z: 4}
	crop := soil.Above()
	env.World.SetBlock(soil, world.BlockState{Kind: world.BlockFarmland})
	env.World.SetBlock(crop, world.BlockState{Kind: world.BlockCrop, Growth: world.MaxCropGrowth})

	task := NewFarmingTask()
	if !task.CanStart(a, env) {
		t.Fatal("CanStart = false with mature crop in range")
	}
	runToCompletion(t, task, a, env, 200)

	if env.World.BlockAt(crop).Kind != world.BlockAir {
		t.Fatal("crop block not cleared")
	}
	if a.Inventory.CountItem(items.ItemWheat) != 1 {
		t.Fatal("wheat missing from inventory")
	}
	if a.Inventory.CountItem(items.ItemWheatSeeds) != 1 {
		t.Fatal("seed return missing from inventory")
	}
	if a.Skills.Experience[agents.SkillFarming] != farmXPHarvest {
		t.Fatalf("farming exp = %v, want %v", a.Skills.Experience[agents.SkillFarming], farmXPHarvest)
	}
}

func TestFarmingPlantsOnBareFarmland(t *testing.T) {
	a, env := farmingSetup(t)
	a.Inventory.AddItem(items.NewStack(items.ItemWheatSeeds, 3))
	soil := world.Location{X: 5, Y: 0, Z: 4}
	env.World.SetBlock(soil, world.BlockState{Kind: world.BlockFarmland})

	task := NewFarmingTask()
	runToCompletion(t, task, a, env, 200)

	planted := env.World.BlockAt(soil.Above())
	if planted.Kind != world.BlockCrop || planted.Growth != 0 {
		t.Fatalf("planted block = %+v, want fresh crop", planted)
	}
	if a.Inventory.CountItem(items.ItemWheatSeeds) != 2 {
		t.Fatalf("seeds = %d, want 2 after planting one", a.Inventory.CountItem(items.ItemWheatSeeds))
	}
}

func TestFarmingTillsSoilNextToFarmland(t *testing.T) {
	a, env := farmingSetup(t)
	farm := world.Location{X: 5, Y: 0, Z: 4}
	dirt := world.Location{X: 6, Y: 0, Z: 4}
	env.World.SetBlock(farm, world.BlockState{Kind: world.BlockFarmland})
	env.World.SetBlock(dirt, world.BlockState{Kind: world.BlockDirt})
	// No seeds, so planting is not an option and tilling is chosen.

	task := NewFarmingTask()
	runToCompletion(t, task, a, env, 200)

	if env.World.BlockAt(dirt).Kind != world.BlockFarmland {
		t.Fatal("dirt was not tilled into farmland")
	}
}

func TestFarmingPrefersHarvestOverPlanting(t *testing.T) {
	a, env := farmingSetup(t)
	a.Inventory.AddItem(items.NewStack(items.ItemWheatSeeds, 3))

	bare := world.Location{X: 5, Y: 0, Z: 4}
	env.World.SetBlock(bare, world.BlockState{Kind: world.BlockFarmland})
	ripe := world.Location{X: 6, Y: 0, Z: 4}
	env.World.SetBlock(ripe, world.BlockState{Kind: world.BlockFarmland})
	env.World.SetBlock(ripe.Above(), world.BlockState{Kind: world.BlockCrop, Growth: world.MaxCropGrowth})

	action, target := findFarmWork(a, env.World)
	if action != farmHarvest {
		t.Fatalf("action = %v, want harvest", action)
	}
	if target != ripe.Above() {
		t.Fatalf("target = %v, want the mature crop", target)
	}
}

func TestFarmingGates(t *testing.T) {
	a, env := farmingSetup(t)
	soil := world.Location{X: 5, Y: 0, Z: 4}
	env.World.SetBlock(soil, world.BlockState{Kind: world.BlockFarmland})
	env.World.SetBlock(soil.Above(), world.BlockState{Kind: world.BlockCrop, Growth: world.MaxCropGrowth})
	task := NewFarmingTask()

	a.Skills.Levels[agents.SkillFarming] = 1
	if task.CanStart(a, env) {
		t.Fatal("CanStart = true below minimum skill")
	}

	a.Skills.Levels[agents.SkillFarming] = 10
	env.Cfg.Tasks.FarmingEnabled = false
	if task.CanStart(a, env) {
		t.Fatal("CanStart = true with farming disabled")
	}
}
