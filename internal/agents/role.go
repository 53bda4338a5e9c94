package agents

// Role is a villager's position in village society, derived from its
// skill profile.
type Role uint8

const (
	RoleUnemployed Role = iota
	RoleChild
	RoleMiner
	RoleLumberjack
	RoleHunter
	RoleFarmer
	RoleShepherd
	RoleFisherman
	RoleToolsmith
	RoleBuilder
	RoleCraftsman
	RoleExplorer
	RoleTrader
	RoleGuard
	RoleLeader
)

// Name returns the identifier string for the role.
func (r Role) Name() string {
	switch r {
	case RoleUnemployed:
		return "unemployed"
	case RoleChild:
		return "child"
	case RoleMiner:
		return "miner"
	case RoleLumberjack:
		return "lumberjack"
	case RoleHunter:
		return "hunter"
	case RoleFarmer:
		return "farmer"
	case RoleShepherd:
		return "shepherd"
	case RoleFisherman:
		return "fisherman"
	case RoleToolsmith:
		return "toolsmith"
	case RoleBuilder:
		return "builder"
	case RoleCraftsman:
		return "craftsman"
	case RoleExplorer:
		return "explorer"
	case RoleTrader:
		return "trader"
	case RoleGuard:
		return "guard"
	case RoleLeader:
		return "leader"
	default:
		return "unknown"
	}
}

// specializationThreshold is the minimum top skill level needed for any
// role beyond Unemployed.
const specializationThreshold = 5

// leaderThreshold is the social level above which a social villager
// leads rather than trades.
const leaderThreshold = 50

// RoleForSkills derives the best role from a skill snapshot. The winning
// skill is the maximum level; ties resolve by the fixed ordering Mining,
// Crafting, Farming, AnimalHusbandry, Exploration, Building, Social.
func RoleForSkills(s *SkillSet) Role {
	mining := s.Level(SkillMining)
	crafting := s.Level(SkillCrafting)
	farming := s.Level(SkillFarming)
	husbandry := s.Level(SkillAnimalHusbandry)
	exploration := s.Level(SkillExploration)
	building := s.Level(SkillBuilding)
	social := s.Level(SkillSocial)

	max := mining
	for _, lvl := range [6]int{crafting, farming, husbandry, exploration, building, social} {
		if lvl > max {
			max = lvl
		}
	}

	if max < specializationThreshold {
		return RoleUnemployed
	}

	switch {
	case max == mining:
		return RoleMiner
	case max == crafting:
		if building > crafting/2 {
			return RoleBuilder
		}
		return RoleToolsmith
	case max == farming:
		return RoleFarmer
	case max == husbandry:
		return RoleShepherd
	case max == exploration:
		return RoleExplorer
	case max == building:
		return RoleBuilder
	case max == social:
		if social > leaderThreshold {
			return RoleLeader
		}
		return RoleTrader
	default:
		return RoleUnemployed
	}
}
