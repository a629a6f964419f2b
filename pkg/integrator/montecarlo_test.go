package integrator

import (
	"math/rand"
	"testing"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/geometry"
	"github.com/tinycg/go-whitted-raytracer/pkg/scene"
)

func TestMonteCarlo_ZeroBoundReturnsBlackOnHit(t *testing.T) {
	mc := NewMonteCarloWithDepth(0)
	s := scene.NewScene(mc).
		SetBackground(scene.NewSolidBackground(core.White)).
		AddObject(geometry.NewSphere(core.NewVec3(0, 0, -5), 2, core.RedRubber()))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewDirection(0, 0, -1))
	color := s.CastRay(ray, rand.New(rand.NewSource(1)))

	if color != core.Black {
		t.Errorf("Expected black with recursion bound 0, got %v", color)
	}
}

func TestMonteCarlo_MissReturnsBackground(t *testing.T) {
	mc := NewMonteCarlo()
	background := core.NewColor(0.2, 0.4, 0.6)
	s := scene.NewScene(mc).SetBackground(scene.NewSolidBackground(background))

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewDirection(0, 0, -1))
	color := s.CastRay(ray, rand.New(rand.NewSource(1)))

	if color != background {
		t.Errorf("Expected background %v, got %v", background, color)
	}
}

func TestMonteCarlo_BounceGathersSky(t *testing.T) {
	// A single bounce off the floor toward the sky must gather half of some
	// background color, so the result is strictly between black and white
	mc := NewMonteCarlo()
	floor := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, core.DefaultMaterial())
	s := scene.NewScene(mc).
		SetBackground(scene.NewSkyBackground()).
		AddObject(floor)

	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewDirection(0, -1, 0))
	color := s.CastRay(ray, rand.New(rand.NewSource(7)))

	if color == core.Black {
		t.Error("Expected bounce to gather background light")
	}
	if color.R > 1 || color.G > 1 || color.B > 1 {
		t.Errorf("Expected attenuated color, got %v", color)
	}
}

func TestMonteCarlo_HemisphereSampleFacesNormal(t *testing.T) {
	mc := NewMonteCarlo()
	floor := geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, core.DefaultMaterial())
	hit := core.NewHitPoint(floor, core.NewVec3(0, 0, 0), true)

	random := rand.New(rand.NewSource(3))
	for i := 0; i < 100; i++ {
		bounce := mc.diffuseRayOnHemisphere(hit, random)
		if !bounce.Direction.IsAcuteAngle(hit.Norm()) {
			t.Fatalf("Expected bounce %v in the hemisphere of the normal", bounce.Direction.Vec3())
		}
	}
}
