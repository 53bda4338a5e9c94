// Package agents provides the villager data model: skills with leveling
// and generational inheritance, role assignment, and the agent registry.
package agents

import (
	"math"
	"math/rand"
)

// SkillKind enumerates the competencies a villager can train.
type SkillKind uint8

const (
	SkillMining SkillKind = iota
	SkillCrafting
	SkillFarming
	SkillAnimalHusbandry
	SkillExploration
	SkillBuilding
	SkillSocial
)

// AllSkills lists every skill kind in a stable order.
var AllSkills = [7]SkillKind{
	SkillMining,
	SkillCrafting,
	SkillFarming,
	SkillAnimalHusbandry,
	SkillExploration,
	SkillBuilding,
	SkillSocial,
}

// Name returns a human-readable label for the skill.
func (k SkillKind) Name() string {
	switch k {
	case SkillMining:
		return "mining"
	case SkillCrafting:
		return "crafting"
	case SkillFarming:
		return "farming"
	case SkillAnimalHusbandry:
		return "animal_husbandry"
	case SkillExploration:
		return "exploration"
	case SkillBuilding:
		return "building"
	case SkillSocial:
		return "social"
	default:
		return "unknown"
	}
}

// SkillSet tracks per-skill levels and experience plus the villager's
// generation number. Levels never shrink; experience resets on level-up
// with the remainder carried forward.
type SkillSet struct {
	Levels     map[SkillKind]int     `json:"levels"`
	Experience map[SkillKind]float64 `json:"experience"`
	Generation int                   `json:"generation"`
}

// NewSkillSet creates a first-generation skill set with everything at
// level 1 and zero experience.
func NewSkillSet() *SkillSet {
	s := &SkillSet{
		Levels:     make(map[SkillKind]int, len(AllSkills)),
		Experience: make(map[SkillKind]float64, len(AllSkills)),
		Generation: 1,
	}
	for _, kind := range AllSkills {
		s.Levels[kind] = 1
		s.Experience[kind] = 0
	}
	return s
}

// Level returns the current level of a skill, defaulting to 1.
func (s *SkillSet) Level(kind SkillKind) int {
	if lvl, ok := s.Levels[kind]; ok {
		return lvl
	}
	return 1
}

// levelUpThreshold is the experience needed to leave the given level.
func levelUpThreshold(level int) float64 {
	return float64(level) * 10.0
}

// AddExperience adds raw experience scaled by the progression rate and
// applies level-ups. A single call can cross several levels; experience
// above each threshold carries into the next level's accumulator. Levels
// cap at maxLevel.
func (s *SkillSet) AddExperience(kind SkillKind, raw, progressionRate float64, maxLevel int) {
	exp := s.Experience[kind] + raw*progressionRate
	level := s.Level(kind)

	for level < maxLevel && exp >= levelUpThreshold(level) {
		exp -= levelUpThreshold(level)
		level++
	}

	s.Levels[kind] = level
	s.Experience[kind] = exp
}

// Inherit constructs a child skill set from two parents. Each skill is
// the parents' average scaled by the inheritance rate, plus the evolution
// bonus and a ±1 roll, floored at 1. The child's generation is one past
// the older parent. Inherited levels are deliberately not clamped to the
// max level; normal leveling enforces the cap from then on.
func Inherit(a, b *SkillSet, inheritanceRate float64, evolutionBonus int, rng *rand.Rand) *SkillSet {
	child := NewSkillSet()
	for _, kind := range AllSkills {
		avg := float64(a.Level(kind)+b.Level(kind)) / 2.0
		base := int(math.Round(avg*inheritanceRate)) + evolutionBonus
		final := base + rng.Intn(3) - 1
		if final < 1 {
			final = 1
		}
		child.Levels[kind] = final
	}
	maxGen := a.Generation
	if b.Generation > maxGen {
		maxGen = b.Generation
	}
	child.Generation = maxGen + 1
	return child
}
