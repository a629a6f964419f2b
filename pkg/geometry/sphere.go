package geometry

import (
	"math"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
)

// Sphere is a visible sphere with a fixed material
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material core.Material
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, material core.Material) *Sphere {
	return &Sphere{Center: center, Radius: radius, Material: material}
}

// HitByRay solves |O + tD - C|^2 = r^2 as a quadratic in t and returns the
// nearest root inside [tMin, tMax]. The larger root is used when the smaller
// one is behind the origin, which happens when the ray starts inside the sphere.
func (s *Sphere) HitByRay(ray core.Ray, tMin, tMax float64) (float64, bool) {
	oc := ray.Origin.Subtract(s.Center)
	d := ray.Direction.Vec3()

	a := d.Dot(d)
	halfB := oc.Dot(d)
	c := oc.Dot(oc) - s.Radius*s.Radius

	discriminant := halfB*halfB - a*c
	if discriminant < 0 {
		return 0, false
	}

	sqrtD := math.Sqrt(discriminant)
	root := (-halfB - sqrtD) / a
	if root < tMin || root > tMax {
		root = (-halfB + sqrtD) / a
		if root < tMin || root > tMax {
			return 0, false
		}
	}

	return root, true
}

// MaterialAt returns the sphere's material
func (s *Sphere) MaterialAt(pos core.Vec3) core.Material {
	return s.Material
}

// NormalAt returns the outward normal, pointing from the center through pos
func (s *Sphere) NormalAt(pos core.Vec3) core.Direction {
	return core.DirectionAToB(s.Center, pos)
}

// GradientSphere is a sphere whose diffuse color is computed per hit point from
// the local outward normal, mapped from [-1,1] to [0,1] per channel.
type GradientSphere struct {
	sphere *Sphere
}

// NewGradientSphere creates a new gradient sphere
func NewGradientSphere(center core.Vec3, radius float64) *GradientSphere {
	return &GradientSphere{sphere: NewSphere(center, radius, core.DefaultMaterial())}
}

// HitByRay delegates to the underlying sphere
func (g *GradientSphere) HitByRay(ray core.Ray, tMin, tMax float64) (float64, bool) {
	return g.sphere.HitByRay(ray, tMin, tMax)
}

// MaterialAt synthesizes a material for the given surface point
func (g *GradientSphere) MaterialAt(pos core.Vec3) core.Material {
	n := g.NormalAt(pos).Vec3()
	material := g.sphere.Material
	material.DiffuseColor = core.NewColor((n.X+1)*0.5, (n.Y+1)*0.5, (n.Z+1)*0.5)
	return material
}

// NormalAt returns the outward normal of the underlying sphere
func (g *GradientSphere) NormalAt(pos core.Vec3) core.Direction {
	return g.sphere.NormalAt(pos)
}
