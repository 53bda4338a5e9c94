package world

import "math"

// Vec3 is a continuous position in world space.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Center returns the continuous center of a block location.
func Center(loc Location) Vec3 {
	return Vec3{
		X: float64(loc.X) + 0.5,
		Y: float64(loc.Y) + 0.5,
		Z: float64(loc.Z) + 0.5,
	}
}

// Dist returns the Euclidean distance between two points.
func Dist(a, b Vec3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}

// DistSq returns the squared Euclidean distance between two points.
func DistSq(a, b Vec3) float64 {
	dx, dy, dz := a.X-b.X, a.Y-b.Y, a.Z-b.Z
	return dx*dx + dy*dy + dz*dz
}

const arriveEpsilon = 0.25

// Navigator moves an agent through the world one step per tick. MoveTo
// is idempotent: issuing a move while one is already in flight is a no-op.
type Navigator struct {
	Pos    Vec3     `json:"pos"`
	Target Location `json:"target"`
	Moving bool     `json:"moving"`
	Speed  float64  `json:"speed"`
}

// NewNavigator creates a navigator standing at the given block.
func NewNavigator(at Location) *Navigator {
	return &Navigator{Pos: Center(at)}
}

// IsMoving reports whether a move command is in flight.
func (n *Navigator) IsMoving() bool {
	return n.Moving
}

// MoveTo starts moving toward a block location at the given speed in
// blocks per tick. No-op while a previous move is still in progress.
func (n *Navigator) MoveTo(loc Location, speed float64) {
	if n.Moving {
		return
	}
	n.Target = loc
	n.Speed = speed
	n.Moving = true
}

// Step advances the position toward the target by one tick's travel.
// Arrival clears the moving flag.
func (n *Navigator) Step() {
	if !n.Moving {
		return
	}
	dest := Center(n.Target)
	d := Dist(n.Pos, dest)
	if d <= n.Speed || d < arriveEpsilon {
		n.Pos = dest
		n.Moving = false
		return
	}
	f := n.Speed / d
	n.Pos.X += (dest.X - n.Pos.X) * f
	n.Pos.Y += (dest.Y - n.Pos.Y) * f
	n.Pos.Z += (dest.Z - n.Pos.Z) * f
}

// Block returns the block location the navigator currently stands in.
func (n *Navigator) Block() Location {
	return Location{
		X: int(math.Floor(n.Pos.X)),
		Y: int(math.Floor(n.Pos.Y)),
		Z: int(math.Floor(n.Pos.Z)),
	}
}
