// Package world provides the block grid villagers live in, terrain
// generation, and per-agent navigation.
package world

import (
	"fmt"

	"github.com/emersonsg01/villagersim/internal/items"
)

// Location is a block position in the world grid.
type Location struct {
	X int `json:"x"`
	Y int `json:"y"`
	Z int `json:"z"`
}

// Offset returns the location shifted by the given deltas.
func (l Location) Offset(dx, dy, dz int) Location {
	return Location{X: l.X + dx, Y: l.Y + dy, Z: l.Z + dz}
}

// Above returns the location one block up.
func (l Location) Above() Location {
	return l.Offset(0, 1, 0)
}

// BlockKind enumerates block types.
type BlockKind uint8

const (
	BlockAir BlockKind = iota
	BlockGrass
	BlockDirt
	BlockStone
	BlockFarmland
	BlockCoalOre
	BlockCopperOre
	BlockIronOre
	BlockGoldOre
	BlockRedstoneOre
	BlockLapisOre
	BlockDiamondOre
	BlockEmeraldOre
	BlockCrop
)

// MaxCropGrowth is the growth stage at which a crop is mature.
const MaxCropGrowth = 7

// BlockState is a block kind plus its mutable state. Growth is only
// meaningful for crops.
type BlockState struct {
	Kind   BlockKind `json:"kind"`
	Growth uint8     `json:"growth,omitempty"`
}

// Air is the empty block state.
var Air = BlockState{Kind: BlockAir}

// IsOre reports whether the block is a mineable ore.
func (b BlockState) IsOre() bool {
	return b.Kind >= BlockCoalOre && b.Kind <= BlockEmeraldOre
}

// IsMatureCrop reports whether the block is a fully grown crop.
func (b BlockState) IsMatureCrop() bool {
	return b.Kind == BlockCrop && b.Growth >= MaxCropGrowth
}

// World is a bounded block grid.
type World struct {
	Width  int
	Height int
	Depth  int
	Spawn  Location

	blocks []BlockState
}

// New creates an empty (all air) world of the given dimensions.
func New(width, height, depth int) *World {
	return &World{
		Width:  width,
		Height: height,
		Depth:  depth,
		blocks: make([]BlockState, width*height*depth),
	}
}

// InBounds reports whether a location is inside the grid.
func (w *World) InBounds(loc Location) bool {
	return loc.X >= 0 && loc.X < w.Width &&
		loc.Y >= 0 && loc.Y < w.Height &&
		loc.Z >= 0 && loc.Z < w.Depth
}

func (w *World) index(loc Location) int {
	return (loc.Y*w.Depth+loc.Z)*w.Width + loc.X
}

// BlockAt returns the block state at a location. Out-of-bounds reads
// return air; reads are side-effect-free.
func (w *World) BlockAt(loc Location) BlockState {
	if !w.InBounds(loc) {
		return Air
	}
	return w.blocks[w.index(loc)]
}

// SetBlock writes a block state without producing loot.
func (w *World) SetBlock(loc Location, state BlockState) {
	if !w.InBounds(loc) {
		return
	}
	w.blocks[w.index(loc)] = state
}

// Mutate replaces the block at a location and, when dropLoot is set,
// returns the loot the previous block yields. The empty stack means no
// loot (or an out-of-bounds write, which is ignored).
func (w *World) Mutate(loc Location, state BlockState, dropLoot bool) items.Stack {
	if !w.InBounds(loc) {
		return items.Empty
	}
	prev := w.blocks[w.index(loc)]
	w.blocks[w.index(loc)] = state
	if !dropLoot {
		return items.Empty
	}
	return lootFor(prev)
}

// lootFor maps a broken block to its drop.
func lootFor(b BlockState) items.Stack {
	switch b.Kind {
	case BlockCoalOre:
		return items.NewStack(items.ItemCoal, 1)
	case BlockCopperOre:
		return items.NewStack(items.ItemCopperIngot, 1)
	case BlockIronOre:
		return items.NewStack(items.ItemIronIngot, 1)
	case BlockGoldOre:
		return items.NewStack(items.ItemGoldIngot, 1)
	case BlockRedstoneOre:
		return items.NewStack(items.ItemRedstone, 2)
	case BlockLapisOre:
		return items.NewStack(items.ItemLapis, 2)
	case BlockDiamondOre:
		return items.NewStack(items.ItemDiamond, 1)
	case BlockEmeraldOre:
		return items.NewStack(items.ItemEmerald, 1)
	case BlockCrop:
		if b.Growth >= MaxCropGrowth {
			return items.NewStack(items.ItemWheat, 1)
		}
		return items.NewStack(items.ItemWheatSeeds, 1)
	default:
		return items.Empty
	}
}

// BlockCount returns the total number of blocks in the grid.
func (w *World) BlockCount() int {
	return len(w.blocks)
}

// String returns a summary of the world.
func (w *World) String() string {
	return fmt.Sprintf("World(%dx%dx%d)", w.Width, w.Height, w.Depth)
}
