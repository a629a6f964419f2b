// Package integrator provides the light-transport strategies that turn rays
// into colors: a deterministic Whitted-style tracer and a stochastic
// hemisphere-sampling diffuse bouncer.
package integrator

import (
	"math"
	"math/rand"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/scene"
)

// whittedRecursionDepth bounds the reflection/refraction recursion. Exceeding
// it truncates the remaining energy to black; it is not an error.
const whittedRecursionDepth = 5

// Whitted is the deterministic Lambertian/Phong strategy: direct illumination
// with shadow rays plus recursive reflection and refraction rays.
type Whitted struct{}

// NewWhitted creates the Whitted-style strategy
func NewWhitted() *Whitted {
	return &Whitted{}
}

// CastRay resolves a ray to a color, recursing through reflection and
// refraction up to the depth bound
func (w *Whitted) CastRay(s *scene.Scene, ray core.Ray, depth int, random *rand.Rand) core.Color {
	if depth > whittedRecursionDepth {
		return core.Black
	}

	hit, ok := s.Intersect(ray)
	if !ok {
		return s.BackgroundColor(ray)
	}

	material := hit.SurfaceMaterial()

	// Indirect illumination: only spawn the recursive ray when its albedo
	// weight contributes, otherwise substitute the background.
	reflectiveColor := s.BackgroundColor(ray)
	if material.Albedo.Reflective > 0 {
		reflectiveColor = w.CastRay(s, ray.Reflected(hit), depth+1, random)
	}

	refractiveColor := s.BackgroundColor(ray)
	if material.Albedo.Refractive > 0 {
		refractiveColor = w.CastRay(s, ray.Refracted(hit), depth+1, random)
	}

	diffuseIntensity, specularIntensity := w.directIllumination(s, ray, hit, material)

	diffuseColor := material.DiffuseColor.ApplyIntensity(diffuseIntensity)
	specularColor := core.White.ApplyIntensity(specularIntensity)

	return core.ApplyAlbedo(diffuseColor, specularColor, reflectiveColor, refractiveColor, material.Albedo)
}

// directIllumination accumulates the Lambertian diffuse term and the Phong
// specular term over every unoccluded light. Shading uses the inside/outside
// corrected normal; the raw geometric normal gives visibly wrong results for
// back-face hits inside refractive objects.
func (w *Whitted) directIllumination(s *scene.Scene, ray core.Ray, hit core.HitPoint, material core.Material) (diffuse, specular float64) {
	n := hit.Norm()

	for _, light := range s.Lights() {
		toLight := core.DirectionAToB(hit.Position, light.Position)
		lightDist := light.Position.DistanceTo(hit.Position)

		// Surface faces away from the light
		if !toLight.IsAcuteAngle(n) {
			continue
		}

		// A surface strictly between the hit point and the light blocks it entirely
		shadowRay := core.ShadowRay(hit, light.Position)
		if shadowHit, blocked := s.Intersect(shadowRay); blocked {
			if shadowHit.Position.DistanceTo(shadowRay.Origin) < lightDist {
				continue
			}
		}

		// Phong: reflect the light direction about the normal and compare with
		// the viewing direction
		lightReflect := toLight.Reverse().Reflect(n).Reverse()
		specularBase := math.Max(0, ray.Direction.Dot(lightReflect))

		diffuse += light.Intensity * math.Max(0, toLight.Dot(n))
		specular += light.Intensity * math.Pow(specularBase, material.SpecularExponent)
	}

	return diffuse, specular
}
