package geometry

import (
	"fmt"
	"math"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
)

// AABBox is an axis-aligned box spanning [Low, High] with a fixed material
type AABBox struct {
	Low      core.Vec3
	High     core.Vec3
	Material core.Material
}

// NewAABBox creates a new axis-aligned box. It fails when Low exceeds High on
// any axis; this is the only construction that can be rejected, and it is
// rejected at scene-build time so rendering never has to deal with it.
func NewAABBox(low, high core.Vec3, material core.Material) (*AABBox, error) {
	if low.X > high.X || low.Y > high.Y || low.Z > high.Z {
		return nil, fmt.Errorf("aabbox: low corner %v exceeds high corner %v", low, high)
	}
	return &AABBox{Low: low, High: high, Material: material}, nil
}

// HitByRay intersects the ray with the box using the slab method: per axis,
// compute entry and exit parameters and intersect the running interval. A zero
// direction component produces +/-Inf through the division, which still
// resolves correctly through the min/max reduction.
func (b *AABBox) HitByRay(ray core.Ray, tMin, tMax float64) (float64, bool) {
	d := ray.Direction.Vec3()
	origin := ray.Origin

	tEntry := math.Inf(-1)
	tExit := math.Inf(1)

	lows := [3]float64{b.Low.X, b.Low.Y, b.Low.Z}
	highs := [3]float64{b.High.X, b.High.Y, b.High.Z}
	origins := [3]float64{origin.X, origin.Y, origin.Z}
	dirs := [3]float64{d.X, d.Y, d.Z}

	for i := 0; i < 3; i++ {
		tLow := (lows[i] - origins[i]) / dirs[i]
		tHigh := (highs[i] - origins[i]) / dirs[i]
		if tLow > tHigh {
			tLow, tHigh = tHigh, tLow
		}
		tEntry = math.Max(tEntry, tLow)
		tExit = math.Min(tExit, tHigh)
	}

	if tEntry > tExit || tEntry < tMin || tEntry > tMax {
		return 0, false
	}

	return tEntry, true
}

// MaterialAt returns the box's material
func (b *AABBox) MaterialAt(pos core.Vec3) core.Material {
	return b.Material
}

// NormalAt resolves which of the six faces pos lies on by epsilon proximity to
// each bounding plane, checked in a fixed axis order. The zero-vector fallback
// is never reached for points actually on the surface.
func (b *AABBox) NormalAt(pos core.Vec3) core.Direction {
	switch {
	case math.Abs(pos.X-b.Low.X) < core.SurfaceEpsilon:
		return core.NewDirection(-1, 0, 0)
	case math.Abs(pos.X-b.High.X) < core.SurfaceEpsilon:
		return core.NewDirection(1, 0, 0)
	case math.Abs(pos.Y-b.Low.Y) < core.SurfaceEpsilon:
		return core.NewDirection(0, -1, 0)
	case math.Abs(pos.Y-b.High.Y) < core.SurfaceEpsilon:
		return core.NewDirection(0, 1, 0)
	case math.Abs(pos.Z-b.Low.Z) < core.SurfaceEpsilon:
		return core.NewDirection(0, 0, -1)
	case math.Abs(pos.Z-b.High.Z) < core.SurfaceEpsilon:
		return core.NewDirection(0, 0, 1)
	}
	return core.Direction{}
}
