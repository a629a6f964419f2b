package core

import (
	"math"
	"testing"
)

const tolerance = 1e-6

func directionsEqual(a, b Direction, tol float64) bool {
	av, bv := a.Vec3(), b.Vec3()
	return math.Abs(av.X-bv.X) <= tol &&
		math.Abs(av.Y-bv.Y) <= tol &&
		math.Abs(av.Z-bv.Z) <= tol
}

func TestDirection_AlwaysUnitLength(t *testing.T) {
	tests := []struct {
		name string
		dir  Direction
	}{
		{"constructor", NewDirection(3, 4, 5)},
		{"from vec3", DirectionFromVec3(NewVec3(-7, 0.2, 13))},
		{"a to b", DirectionAToB(NewVec3(1, 1, 1), NewVec3(4, -2, 8))},
		{"reverse", NewDirection(1, 2, 3).Reverse()},
		{"reflection", NewDirection(1, -1, 0).Reflect(NewDirection(0, 1, 0))},
		{"refraction", NewDirection(1, -1, 0).Refract(NewDirection(0, 1, 0), 1, 1.5)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if math.Abs(tt.dir.Vec3().Length()-1.0) > tolerance {
				t.Errorf("Expected unit length, got %f", tt.dir.Vec3().Length())
			}
		})
	}
}

func TestDirection_Reflect(t *testing.T) {
	// 45 degree incidence on a floor reflects upward at 45 degrees
	incident := NewDirection(1, -1, 0)
	normal := NewDirection(0, 1, 0)

	reflected := incident.Reflect(normal)
	expected := NewDirection(1, 1, 0)

	if !directionsEqual(reflected, expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected.Vec3(), reflected.Vec3())
	}
}

func TestDirection_Refract_MatchingIndices(t *testing.T) {
	// n1 == n2 means no bend: the direction passes through unchanged
	incident := NewDirection(1, -1, 0)
	normal := NewDirection(0, 1, 0)

	refracted := incident.Refract(normal, 1.0, 1.0)

	if !directionsEqual(refracted, incident, tolerance) {
		t.Errorf("Expected %v, got %v", incident.Vec3(), refracted.Vec3())
	}
}

func TestDirection_Refract_KnownAngle(t *testing.T) {
	// 45 degree incidence into a medium with index ratio n1/n2 = 0.9:
	// sin(theta2) = 0.9 * sin(45deg)
	incident := NewDirection(1, -1, 0)
	normal := NewDirection(0, 1, 0)

	refracted := incident.Refract(normal, 1.0, 1.0/0.9)

	sinTheta2 := 0.9 * math.Sqrt(2) / 2
	cosTheta2 := math.Sqrt(1 - sinTheta2*sinTheta2)
	expected := NewDirection(sinTheta2, -cosTheta2, 0)

	if !directionsEqual(refracted, expected, tolerance) {
		t.Errorf("Expected %v, got %v", expected.Vec3(), refracted.Vec3())
	}
}

func TestDirection_Refract_GrazingAngleStaysFinite(t *testing.T) {
	// Near total internal reflection the clamps must keep the result free of NaN
	incident := NewDirection(1, -0.001, 0)
	normal := NewDirection(0, 1, 0)

	refracted := incident.Refract(normal, 1.5, 1.0)
	v := refracted.Vec3()

	if math.IsNaN(v.X) || math.IsNaN(v.Y) || math.IsNaN(v.Z) {
		t.Errorf("Expected finite direction, got %v", v)
	}
}

func TestDirection_IsAcuteAngle(t *testing.T) {
	up := NewDirection(0, 1, 0)

	if !up.IsAcuteAngle(NewDirection(1, 1, 0)) {
		t.Error("Expected acute angle")
	}
	if up.IsAcuteAngle(NewDirection(1, -1, 0)) {
		t.Error("Expected obtuse angle")
	}
	if up.IsAcuteAngle(NewDirection(1, 0, 0)) {
		t.Error("Expected right angle to not be acute")
	}
}
