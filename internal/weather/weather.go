// Package weather provides a deterministic simulated weather cycle.
// Conditions drift with noise over sim-time and feed back into crop
// growth.
package weather

import (
	"github.com/ojrac/opensimplex-go"
)

// Condition is the current sky state.
type Condition uint8

const (
	Clear Condition = iota
	Overcast
	Rain
	Storm
)

func (c Condition) Name() string {
	switch c {
	case Clear:
		return "clear"
	case Overcast:
		return "overcast"
	case Rain:
		return "rain"
	case Storm:
		return "storm"
	default:
		return "unknown"
	}
}

// Noise thresholds dividing the [0,1] range into condition bands.
const (
	overcastAbove = 0.55
	rainAbove     = 0.72
	stormAbove    = 0.90
)

// System produces weather conditions as a slow noise walk over tick
// time. The same seed always yields the same weather history.
type System struct {
	noise opensimplex.Noise
}

func NewSystem(seed int64) *System {
	return &System{noise: opensimplex.NewNormalized(seed)}
}

// At returns the condition prevailing at the given tick. Weather shifts
// on the scale of sim-hours, not individual ticks.
func (s *System) At(tick uint64) Condition {
	v := s.noise.Eval2(float64(tick)/360.0, 0)
	switch {
	case v >= stormAbove:
		return Storm
	case v >= rainAbove:
		return Rain
	case v >= overcastAbove:
		return Overcast
	default:
		return Clear
	}
}

// GrowthBonus is the extra crop growth probability contributed by the
// current weather. Rain waters the fields; storms flatten them a bit.
func GrowthBonus(c Condition) float64 {
	switch c {
	case Rain:
		return 0.15
	case Storm:
		return -0.05
	case Overcast:
		return 0.05
	default:
		return 0
	}
}
