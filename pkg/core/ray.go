package core

// Visible is the capability implemented by every object a ray can hit.
type Visible interface {
	// HitByRay returns the nearest parametric distance in [tMin, tMax] at which
	// the ray meets the surface, or false if there is none.
	HitByRay(ray Ray, tMin, tMax float64) (float64, bool)

	// MaterialAt returns the material at a point on the surface. Implementations
	// may synthesize a fresh material per point, so the result is a value.
	MaterialAt(pos Vec3) Material

	// NormalAt returns the geometric outward unit normal at a point assumed to
	// lie on the surface.
	NormalAt(pos Vec3) Direction
}

// Ray is a half-line with an origin and a unit direction. Rays are values and
// are never mutated; derived rays are new values.
type Ray struct {
	Origin    Vec3
	Direction Direction
}

// NewRay creates a new ray
func NewRay(origin Vec3, direction Direction) Ray {
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at parameter t along the ray
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Direction.Vec3().Multiply(t))
}

// HitPoint records a resolved ray-surface intersection. It borrows the hit
// object and lives only for the duration of one shading evaluation.
type HitPoint struct {
	Object   Visible
	Position Vec3
	// IsOutside reports whether the ray travelled against the outward normal,
	// i.e. hit the surface from outside the solid.
	IsOutside bool
}

// NewHitPoint creates a new hit point
func NewHitPoint(object Visible, position Vec3, isOutside bool) HitPoint {
	return HitPoint{Object: object, Position: position, IsOutside: isOutside}
}

// SurfaceMaterial returns the material of the hit object at the hit position
func (h HitPoint) SurfaceMaterial() Material {
	return h.Object.MaterialAt(h.Position)
}

// Norm returns the true outward normal at the hit position: the geometric
// normal, reversed when the surface was hit from inside.
func (h HitPoint) Norm() Direction {
	norm := h.Object.NormalAt(h.Position)
	if h.IsOutside {
		return norm
	}
	return norm.Reverse()
}

// offsetOrigin displaces a point off the surface along whichever side of the
// normal the outgoing direction points to, so the derived ray cannot
// immediately re-intersect the surface it starts on.
func offsetOrigin(pos Vec3, n Direction, outgoing Direction) Vec3 {
	if outgoing.IsAcuteAngle(n) {
		return pos.Add(n.Vec3().Multiply(RayBias))
	}
	return pos.Subtract(n.Vec3().Multiply(RayBias))
}

// Reflected derives the mirror ray leaving the hit point
func (r Ray) Reflected(hit HitPoint) Ray {
	n := hit.Norm()
	dir := r.Direction.Reflect(n)
	return NewRay(offsetOrigin(hit.Position, n, dir), dir)
}

// Refracted derives the transmitted ray through the hit surface. Entering from
// outside moves from vacuum into the material; hitting from inside swaps the
// two indices, since light bends relative to the medium it is leaving.
func (r Ray) Refracted(hit HitPoint) Ray {
	n := hit.Norm()
	n1, n2 := 1.0, hit.SurfaceMaterial().RefractiveIndex
	if !hit.IsOutside {
		n1, n2 = n2, n1
	}

	dir := r.Direction.Refract(n, n1, n2)
	return NewRay(offsetOrigin(hit.Position, n, dir), dir)
}

// ShadowRay derives the occlusion-test ray from a hit point toward a light,
// with the origin biased along the ray itself.
func ShadowRay(hit HitPoint, lightPos Vec3) Ray {
	toLight := DirectionAToB(hit.Position, lightPos)
	origin := hit.Position.Add(toLight.Vec3().Multiply(RayBias))
	return NewRay(origin, toLight)
}
