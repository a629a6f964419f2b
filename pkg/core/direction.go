package core

import "math"

// Direction is a unit-length 3D vector. Every constructor and every derived
// operation renormalizes, so a Direction can be assumed to have length 1.
// Constructing one from a true zero vector yields the zero value; callers are
// responsible for not doing that.
type Direction struct {
	v Vec3
}

// NewDirection creates a unit direction from components
func NewDirection(x, y, z float64) Direction {
	return Direction{v: NewVec3(x, y, z).Normalize()}
}

// DirectionFromVec3 creates a unit direction from a vector
func DirectionFromVec3(v Vec3) Direction {
	return Direction{v: v.Normalize()}
}

// DirectionAToB creates the unit direction pointing from a to b
func DirectionAToB(a, b Vec3) Direction {
	return DirectionFromVec3(b.Subtract(a))
}

// Vec3 returns the direction as a plain vector
func (d Direction) Vec3() Vec3 {
	return d.v
}

// Dot returns the dot product of two directions
func (d Direction) Dot(other Direction) float64 {
	return d.v.Dot(other.v)
}

// Reverse returns the direction pointing the opposite way
func (d Direction) Reverse() Direction {
	return Direction{v: d.v.Negate()}
}

// IsAcuteAngle reports whether the angle between two directions is below 90 degrees
func (d Direction) IsAcuteAngle(other Direction) bool {
	return d.v.Dot(other.v) > 0
}

// Reflect returns the reflection of the incident direction d about the unit normal n:
// I - 2*(I·N)*N
func (d Direction) Reflect(n Direction) Direction {
	proj := n.v.Multiply(d.v.Dot(n.v))
	return DirectionFromVec3(d.v.Subtract(proj.Multiply(2)))
}

// Refract returns the refraction of the incident direction d through a surface with
// unit normal n, moving from a medium with index n1 into one with index n2, using
// the vector form of Snell's law:
//
//	L' = (n1/n2)*L + ((n1/n2)*cos(theta1) - cos(theta2))*N
//
// The cosine/sine intermediates are clamped to [-1, 1]. The clamps absorb
// floating-point overshoot near total internal reflection and grazing angles;
// without them the square roots go negative and NaN propagates into the image.
func (d Direction) Refract(n Direction, n1, n2 float64) Direction {
	ratio := n1 / n2

	cosTheta1 := clamp(-d.v.Dot(n.v), -1, 1)
	sinTheta1 := clamp(math.Sqrt(1-cosTheta1*cosTheta1), -1, 1)
	sinTheta2 := clamp(ratio*sinTheta1, -1, 1)
	cosTheta2 := clamp(math.Sqrt(1-sinTheta2*sinTheta2), -1, 1)

	refracted := d.v.Multiply(ratio).Add(n.v.Multiply(ratio*cosTheta1 - cosTheta2))
	return DirectionFromVec3(refracted)
}

func clamp(x, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, x))
}
