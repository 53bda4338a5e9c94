package agents

import (
	"github.com/google/uuid"

	"github.com/emersonsg01/villagersim/internal/items"
	"github.com/emersonsg01/villagersim/internal/world"
)

// Agent is a single villager: identity, skills, role, inventory,
// equipment, navigation, and social bonds. Task and economy state is
// held by the simulation's registries, keyed by ID.
type Agent struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`

	BornTick uint64 `json:"born_tick"`
	Alive    bool   `json:"alive"`

	Skills    *SkillSet        `json:"skills"`
	Role      Role             `json:"role"`
	Inventory *items.Inventory `json:"inventory"`
	Equipment *items.Equipment `json:"equipment"`
	Nav       *world.Navigator `json:"nav"`

	// Social bonds to other villagers, each clamped to [-1, 1].
	Relationships map[uuid.UUID]float64 `json:"relationships,omitempty"`

	// Tick of the most recent reproduction, for the cooldown gate.
	LastReproTick uint64 `json:"last_repro_tick,omitempty"`
}

// NewAgent creates a living first-generation villager standing at the
// given location.
func NewAgent(name string, at world.Location, bornTick uint64) *Agent {
	return &Agent{
		ID:            uuid.New(),
		Name:          name,
		BornTick:      bornTick,
		Alive:         true,
		Skills:        NewSkillSet(),
		Role:          RoleUnemployed,
		Inventory:     items.NewInventory(),
		Equipment:     items.NewEquipment(),
		Nav:           world.NewNavigator(at),
		Relationships: make(map[uuid.UUID]float64),
	}
}

// Relationship returns the bond with another villager, 0 when unknown.
func (a *Agent) Relationship(other uuid.UUID) float64 {
	return a.Relationships[other]
}

// ModifyRelationship shifts the bond with another villager, clamped to
// [-1, 1] on every modification.
func (a *Agent) ModifyRelationship(other uuid.UUID, amount float64) {
	if a.Relationships == nil {
		a.Relationships = make(map[uuid.UUID]float64)
	}
	v := a.Relationships[other] + amount
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	a.Relationships[other] = v
}

// Age returns how many ticks the agent has lived as of the given tick.
func (a *Agent) Age(tick uint64) uint64 {
	if tick < a.BornTick {
		return 0
	}
	return tick - a.BornTick
}
