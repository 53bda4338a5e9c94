// Terrain generation using layered simplex noise.
// Generates a surface heightmap, buries ore veins by depth, and lays a
// farmland patch near spawn so farming villagers have somewhere to start.
package world

import (
	"math/rand"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// GenConfig holds world generation parameters.
type GenConfig struct {
	Width  int   // Blocks along the x axis
	Height int   // Blocks along the y axis
	Depth  int   // Blocks along the z axis
	Seed   int64 // Random seed (0 = random)
}

// DefaultGenConfig returns a reasonable starting configuration.
func DefaultGenConfig() GenConfig {
	return GenConfig{Width: 96, Height: 24, Depth: 96, Seed: 0}
}

// SmallTestConfig returns a tiny world for rapid iteration.
func SmallTestConfig() GenConfig {
	return GenConfig{Width: 32, Height: 16, Depth: 32, Seed: 42}
}

// Generate creates a complete world with terrain, ores, and a starter farm.
func Generate(cfg GenConfig) *World {
	seed := cfg.Seed
	if seed == 0 {
		seed = rand.Int63()
	}

	heightNoise := opensimplex.NewNormalized(seed)
	oreNoise := opensimplex.NewNormalized(seed + 1)
	rng := rand.New(rand.NewSource(seed + 2))

	w := New(cfg.Width, cfg.Height, cfg.Depth)
	surfaceBase := cfg.Height * 2 / 3

	for x := 0; x < cfg.Width; x++ {
		for z := 0; z < cfg.Depth; z++ {
			// Rolling terrain: multi-octave noise around the base height.
			h := octaveNoise(heightNoise, float64(x), float64(z), 4, 0.03, 0.5)
			surface := surfaceBase + int(h*6) - 3
			if surface < 4 {
				surface = 4
			}
			if surface >= cfg.Height-1 {
				surface = cfg.Height - 2
			}

			for y := 0; y <= surface; y++ {
				loc := Location{X: x, Y: y, Z: z}
				switch {
				case y == surface:
					w.SetBlock(loc, BlockState{Kind: BlockGrass})
				case y >= surface-2:
					w.SetBlock(loc, BlockState{Kind: BlockDirt})
				default:
					w.SetBlock(loc, BlockState{Kind: oreOrStone(oreNoise, rng, x, y, z, surface)})
				}
			}
		}
	}

	// Spawn at the surface in the middle of the map.
	cx, cz := cfg.Width/2, cfg.Depth/2
	w.Spawn = Location{X: cx, Y: surfaceY(w, cx, cz) + 1, Z: cz}

	placeFarm(w, rng, cx+4, cz+4)

	return w
}

// oreOrStone decides whether a stone cell carries an ore vein. Richer
// ores only appear deeper below the surface.
func oreOrStone(noise opensimplex.Noise, rng *rand.Rand, x, y, z, surface int) BlockKind {
	n := noise.Eval3(float64(x)*0.15, float64(y)*0.15, float64(z)*0.15)
	if n < 0.78 {
		return BlockStone
	}
	depth := surface - y
	roll := rng.Float64()
	switch {
	case depth > 10 && roll < 0.08:
		if rng.Intn(2) == 0 {
			return BlockDiamondOre
		}
		return BlockEmeraldOre
	case depth > 8 && roll < 0.20:
		if rng.Intn(2) == 0 {
			return BlockRedstoneOre
		}
		return BlockLapisOre
	case depth > 6 && roll < 0.35:
		return BlockGoldOre
	case depth > 4 && roll < 0.60:
		return BlockIronOre
	case depth > 3 && roll < 0.75:
		return BlockCopperOre
	default:
		return BlockCoalOre
	}
}

// placeFarm lays a small farmland patch with crops at mixed growth stages.
func placeFarm(w *World, rng *rand.Rand, cx, cz int) {
	for dx := 0; dx < 5; dx++ {
		for dz := 0; dz < 5; dz++ {
			x, z := cx+dx, cz+dz
			y := surfaceY(w, x, z)
			if y < 0 {
				continue
			}
			soil := Location{X: x, Y: y, Z: z}
			w.SetBlock(soil, BlockState{Kind: BlockFarmland})
			w.SetBlock(soil.Above(), BlockState{
				Kind:   BlockCrop,
				Growth: uint8(rng.Intn(MaxCropGrowth + 1)),
			})
		}
	}
}

// surfaceY returns the y of the topmost solid block in a column, or -1
// for an empty column.
func surfaceY(w *World, x, z int) int {
	for y := w.Height - 1; y >= 0; y-- {
		if w.BlockAt(Location{X: x, Y: y, Z: z}).Kind != BlockAir {
			return y
		}
	}
	return -1
}

// GrowCrops advances a fraction of immature crops by one stage. Called
// on the hourly cadence so harvested fields regrow. bonus shifts the
// per-crop growth chance, e.g. for weather effects.
func (w *World) GrowCrops(rng *rand.Rand, bonus float64) int {
	chance := 0.25 + bonus
	if chance < 0 {
		chance = 0
	}
	grown := 0
	for i := range w.blocks {
		b := &w.blocks[i]
		if b.Kind != BlockCrop || b.Growth >= MaxCropGrowth {
			continue
		}
		if rng.Float64() < chance {
			b.Growth++
			grown++
		}
	}
	return grown
}

// octaveNoise generates fractal noise by layering multiple frequencies.
func octaveNoise(noise opensimplex.Noise, x, y float64, octaves int, frequency, persistence float64) float64 {
	total := 0.0
	amplitude := 1.0
	maxVal := 0.0

	for i := 0; i < octaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= persistence
		frequency *= 2
	}

	return total / maxVal
}
