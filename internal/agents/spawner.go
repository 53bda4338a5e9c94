// Agent spawning — creates founding villagers and children, with names,
// starter items, and slightly varied starting skills.
package agents

import (
	"fmt"
	"math/rand"

	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

var givenNames = []string{
	"Ada", "Bram", "Cora", "Dain", "Edda", "Finn", "Greta", "Hale",
	"Ilsa", "Joren", "Kara", "Liv", "Moss", "Nils", "Orla", "Pell",
	"Runa", "Sten", "Tova", "Ulf", "Vesna", "Wren", "Ysolde", "Zev",
}

var familyNames = []string{
	"Ashdown", "Briarwood", "Coppervein", "Deepdelver", "Elmsworth",
	"Fallowfield", "Greenmantle", "Hearthstone", "Ironfurrow", "Kilnworth",
	"Longacre", "Mossbrook", "Oakhollow", "Quarryman", "Stonebridge",
	"Thornhedge", "Underbough", "Wheatley",
}

// Spawner creates agents for the simulation.
type Spawner struct {
	rng *rand.Rand
}

// NewSpawner creates an agent spawner with the given seed.
func NewSpawner(seed int64) *Spawner {
	return &Spawner{rng: rand.New(rand.NewSource(seed))}
}

// SpawnFounder creates a first-generation villager near the given
// location with starter supplies and a slight aptitude in one skill, so
// the founding population differentiates into roles over time.
func (s *Spawner) SpawnFounder(near world.Location, tick uint64) *Agent {
	at := near.Offset(s.rng.Intn(7)-3, 0, s.rng.Intn(7)-3)
	a := NewAgent(s.generateName(), at, tick)

	// Aptitude: a head start in one random skill.
	aptitude := AllSkills[s.rng.Intn(len(AllSkills))]
	a.Skills.Levels[aptitude] = 2 + s.rng.Intn(3)

	// Starter supplies so farming and trading can bootstrap.
	a.Inventory.AddItem(items.NewStack(items.ItemBread, 3))
	a.Inventory.AddItem(items.NewStack(items.ItemWheatSeeds, 8))
	a.Inventory.AddItem(items.NewStack(items.ItemEmerald, 2+s.rng.Intn(4)))
	if s.rng.Float64() < 0.3 {
		a.Inventory.AddItem(items.NewStack(items.ItemWoodenPickaxe, 1))
	}

	return a
}

// SpawnChild creates a villager inheriting skills from two parents. The
// child starts at the first parent's position with a small food gift.
func (s *Spawner) SpawnChild(mother, father *Agent, inheritanceRate float64, evolutionBonus int, tick uint64) *Agent {
	child := NewAgent(s.generateName(), mother.Nav.Block(), tick)
	child.Skills = Inherit(mother.Skills, father.Skills, inheritanceRate, evolutionBonus, s.rng)
	child.Role = RoleChild
	child.Inventory.AddItem(items.NewStack(items.ItemBread, 2))
	return child
}

func (s *Spawner) generateName() string {
	given := givenNames[s.rng.Intn(len(givenNames))]
	family := familyNames[s.rng.Intn(len(familyNames))]
	return fmt.Sprintf("%s %s", given, family)
}
