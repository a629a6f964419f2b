package geometry

import (
	"math"
	"testing"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
)

const tolerance = 1e-6

func TestSphere_HitByRay_ThroughCenter(t *testing.T) {
	center := core.NewVec3(2, 2, 2)
	sphere := NewSphere(center, 1.0, core.DefaultMaterial())
	origin := core.NewVec3(0, 0, 0)
	ray := core.NewRay(origin, core.DirectionAToB(origin, center))

	// A ray through the center enters at distance-radius and exits at distance+radius
	distance := origin.DistanceTo(center)

	near, ok := sphere.HitByRay(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit, got miss")
	}
	if math.Abs(near-(distance-1)) > tolerance {
		t.Errorf("Expected near root %f, got %f", distance-1, near)
	}

	far, ok := sphere.HitByRay(ray, near+tolerance, math.Inf(1))
	if !ok {
		t.Fatal("Expected far hit, got miss")
	}
	if math.Abs(far-(distance+1)) > tolerance {
		t.Errorf("Expected far root %f, got %f", distance+1, far)
	}
}

func TestSphere_HitByRay_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 2, 2), 1.0, core.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewDirection(0, 0, 1))

	if _, ok := sphere.HitByRay(ray, 0, math.Inf(1)); ok {
		t.Error("Expected miss for ray with perpendicular offset greater than radius")
	}
}

func TestSphere_HitByRay_Tangent(t *testing.T) {
	sphere := NewSphere(core.NewVec3(2, 2, 2), 1.0, core.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(2, 1, 0), core.NewDirection(0, 0, 1))

	got, ok := sphere.HitByRay(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected tangent hit, got miss")
	}
	if math.Abs(got-2) > tolerance {
		t.Errorf("Expected t=2, got %f", got)
	}
}

func TestSphere_HitByRay_OriginInside(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2.0, core.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewDirection(0, 0, -1))

	// Only the far root is positive when the ray starts inside
	got, ok := sphere.HitByRay(ray, 0, math.Inf(1))
	if !ok {
		t.Fatal("Expected hit from inside, got miss")
	}
	if math.Abs(got-2) > tolerance {
		t.Errorf("Expected t=2, got %f", got)
	}
}

func TestSphere_HitByRay_ViewRange(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -50), 1.0, core.DefaultMaterial())
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewDirection(0, 0, -1))

	if _, ok := sphere.HitByRay(ray, 0, 10); ok {
		t.Error("Expected miss beyond the view range")
	}
}

func TestSphere_NormalAt(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, 0, 0), 2.0, core.DefaultMaterial())

	n := sphere.NormalAt(core.NewVec3(3, 0, 0)).Vec3()
	if math.Abs(n.X-1) > tolerance || math.Abs(n.Y) > tolerance || math.Abs(n.Z) > tolerance {
		t.Errorf("Expected outward normal (1,0,0), got %v", n)
	}
}

func TestGradientSphere_MaterialFollowsNormal(t *testing.T) {
	sphere := NewGradientSphere(core.NewVec3(0, 0, 0), 1.0)

	tests := []struct {
		name string
		pos  core.Vec3
		want core.Color
	}{
		{"+x pole", core.NewVec3(1, 0, 0), core.NewColor(1, 0.5, 0.5)},
		{"-y pole", core.NewVec3(0, -1, 0), core.NewColor(0.5, 0, 0.5)},
		{"+z pole", core.NewVec3(0, 0, 1), core.NewColor(0.5, 0.5, 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := sphere.MaterialAt(tt.pos).DiffuseColor
			if math.Abs(got.R-tt.want.R) > tolerance ||
				math.Abs(got.G-tt.want.G) > tolerance ||
				math.Abs(got.B-tt.want.B) > tolerance {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}
