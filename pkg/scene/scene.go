package scene

import (
	"math/rand"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
)

// DefaultViewRange is the maximum ray travel distance before a miss
const DefaultViewRange = 1000.0

// RayCaster is the light-transport strategy injected into a scene. Both
// strategies share the scene's nearest-hit query but diverge completely in how
// they resolve a color from it.
type RayCaster interface {
	CastRay(s *Scene, ray core.Ray, depth int, random *rand.Rand) core.Color
}

// Scene owns the objects, lights and background of a renderable world. It is
// assembled once through the builder methods and treated as immutable for the
// whole render, so the parallel pixel loop needs no locking.
type Scene struct {
	objects    []core.Visible
	lights     []core.Light
	background Background
	viewRange  float64
	caster     RayCaster
}

// NewScene creates an empty scene using the given ray-cast strategy
func NewScene(caster RayCaster) *Scene {
	return &Scene{
		viewRange: DefaultViewRange,
		caster:    caster,
	}
}

// AddObject appends a visible object. Insertion order decides ties between
// exactly-equal hit distances: the first object added wins.
func (s *Scene) AddObject(object core.Visible) *Scene {
	s.objects = append(s.objects, object)
	return s
}

// AddLight appends a point light. Light order does not matter, contributions sum.
func (s *Scene) AddLight(light core.Light) *Scene {
	s.lights = append(s.lights, light)
	return s
}

// SetBackground installs the background used for rays that miss everything
func (s *Scene) SetBackground(background Background) *Scene {
	s.background = background
	return s
}

// SetViewRange overrides the maximum ray travel distance
func (s *Scene) SetViewRange(viewRange float64) *Scene {
	s.viewRange = viewRange
	return s
}

// Lights returns the scene's lights
func (s *Scene) Lights() []core.Light {
	return s.lights
}

// Intersect scans every object for the nearest hit along the ray within
// [RayBias, viewRange]. It recomputes the inside/outside flag from the sign of
// the ray direction against the object's geometric normal at the hit point.
func (s *Scene) Intersect(ray core.Ray) (core.HitPoint, bool) {
	minHitDist := s.viewRange
	var nearest core.HitPoint
	found := false

	for _, obj := range s.objects {
		t, ok := obj.HitByRay(ray, core.RayBias, s.viewRange)
		if !ok || t >= minHitDist {
			continue
		}

		minHitDist = t
		hitPos := ray.At(t)
		isOutside := ray.Direction.Dot(obj.NormalAt(hitPos)) < 0
		nearest = core.NewHitPoint(obj, hitPos, isOutside)
		found = true
	}

	return nearest, found
}

// BackgroundColor resolves the background capability for a ray, black when the
// scene has no background
func (s *Scene) BackgroundColor(ray core.Ray) core.Color {
	if s.background == nil {
		return core.Black
	}
	return s.background.Color(ray)
}

// CastRay resolves a primary ray to a color through the injected strategy
func (s *Scene) CastRay(ray core.Ray, random *rand.Rand) core.Color {
	return s.caster.CastRay(s, ray, 0, random)
}
