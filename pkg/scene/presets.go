package scene

import (
	"math/rand"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/geometry"
)

// DefaultBackgroundColor is the muted green used by the preset scenes
var DefaultBackgroundColor = core.NewColor(0.6, 0.8, 0.4)

// NewSingleSphereScene builds one large red-rubber sphere under three lights
func NewSingleSphereScene(caster RayCaster) (*Scene, error) {
	s := NewScene(caster).
		SetBackground(NewSolidBackground(DefaultBackgroundColor)).
		AddObject(geometry.NewSphere(core.NewVec3(-3, 0, -16), 8, core.RedRubber()))

	addDefaultLights(s)
	return s, nil
}

// NewClassicScene builds the full material-showcase scene: ivory, glass,
// rubber, mirror and gold spheres, a gradient sphere, a magenta box and a
// mirror floor, under three lights.
func NewClassicScene(caster RayCaster) (*Scene, error) {
	box, err := geometry.NewAABBox(core.NewVec3(4.5, -3.5, -18), core.NewVec3(10, -1.5, -8), core.MagentaRubber())
	if err != nil {
		return nil, err
	}
	floor, err := geometry.NewAABBox(core.NewVec3(-100, -20, -100), core.NewVec3(100, -3.5, 100), core.DarkMirror())
	if err != nil {
		return nil, err
	}

	s := NewScene(caster).
		SetBackground(NewSolidBackground(DefaultBackgroundColor)).
		AddObject(geometry.NewSphere(core.NewVec3(-3, 0, -16), 2, core.Ivory())).
		AddObject(geometry.NewSphere(core.NewVec3(-1, -1.5, -12), 2, core.Glass())).
		AddObject(geometry.NewSphere(core.NewVec3(1.5, -0.5, -18), 3, core.RedRubber())).
		AddObject(geometry.NewSphere(core.NewVec3(5, 8, -18), 4, core.Mirror())).
		AddObject(geometry.NewSphere(core.NewVec3(-3, 2.5, -8), 2, core.Gold())).
		AddObject(geometry.NewGradientSphere(core.NewVec3(7, 0.5, -10), 2)).
		AddObject(floor).
		AddObject(box)

	addDefaultLights(s)
	return s, nil
}

// NewMonteCarloScene builds a red sphere resting on a giant ground sphere
// under the sky gradient; it is meant for the Monte Carlo strategy with
// antialiasing enabled.
func NewMonteCarloScene(caster RayCaster) (*Scene, error) {
	floorMaterial := core.NewMaterial(core.NewColor(0.5, 0.5, 0.5), core.NewAlbedo(1, 0, 0, 0), 10, 1)

	s := NewScene(caster).
		SetBackground(NewSkyBackground()).
		AddObject(geometry.NewSphere(core.NewVec3(0, 2, -5), 2, core.RedRubber())).
		AddObject(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, floorMaterial))

	return s, nil
}

const (
	smallBallRadius = 0.2
	bigBallRadius   = 1.5
)

// NewRandomBallScene builds three large spheres in a row over a mirror floor,
// surrounded by a seeded grid of small rubber and glass balls.
func NewRandomBallScene(caster RayCaster) (*Scene, error) {
	random := rand.New(rand.NewSource(42))

	floor, err := geometry.NewAABBox(core.NewVec3(-100, -20, -100), core.NewVec3(100, 0, 100), core.DarkMirror())
	if err != nil {
		return nil, err
	}

	gold := core.NewMaterial(core.NewColor(0.6, 0.5, 0.3), core.NewAlbedo(0.8, 0.2, 0, 0), 80, 0.8)
	denseGlass := core.NewMaterial(core.NewColor(0.6, 0.7, 0.8), core.NewAlbedo(0, 0.2, 0, 0.8), 125, 5)

	bigBalls := []core.Vec3{{X: 3, Y: bigBallRadius, Z: -4}}
	step := bigBallRadius*2 + 0.05
	bigBalls = append(bigBalls, bigBalls[0].Add(core.NewVec3(-step, 0, 0)))
	bigBalls = append(bigBalls, bigBalls[1].Add(core.NewVec3(-step, 0, 0)))

	s := NewScene(caster).
		SetBackground(NewSolidBackground(DefaultBackgroundColor)).
		AddObject(floor).
		AddObject(geometry.NewSphere(bigBalls[0], bigBallRadius, denseGlass)).
		AddObject(geometry.NewSphere(bigBalls[1], bigBallRadius, core.Mirror())).
		AddObject(geometry.NewSphere(bigBalls[2], bigBallRadius, gold))

	addDefaultLights(s)

	for i := -8; i < 8; i++ {
		for j := -10; j < 1; j++ {
			if ball, ok := randomBallAround(random, i, j, bigBalls); ok {
				s.AddObject(ball)
			}
		}
	}

	return s, nil
}

// randomBallAround places one small ball inside the given grid cell, skipping
// positions that would overlap a big ball
func randomBallAround(random *rand.Rand, x, z int, bigBalls []core.Vec3) (*geometry.Sphere, bool) {
	randomIn := func(lo, hi float64) float64 {
		return lo + (hi-lo)*random.Float64()
	}

	rubber := core.NewMaterial(
		core.NewColor(random.Float64(), random.Float64(), random.Float64()),
		core.NewAlbedo(0.9, 0.1, 0, 0), 10, 1,
	)
	glass := core.NewMaterial(core.Black, core.NewAlbedo(0, 0.5, 0.1, 0.8), 125, 1.5)

	pos := core.NewVec3(
		randomIn(float64(x)+smallBallRadius, float64(x+1)-smallBallRadius),
		smallBallRadius,
		randomIn(float64(z)+smallBallRadius, float64(z+1)-smallBallRadius),
	)

	for _, bigBall := range bigBalls {
		if pos.DistanceTo(bigBall) < bigBallRadius+smallBallRadius {
			return nil, false
		}
	}

	material := rubber
	if random.Intn(10) >= 8 {
		material = glass
	}

	return geometry.NewSphere(pos, smallBallRadius, material), true
}

func addDefaultLights(s *Scene) {
	s.AddLight(core.NewLight(core.NewVec3(-20, 20, 20), 1.5)).
		AddLight(core.NewLight(core.NewVec3(30, 50, -25), 1.8)).
		AddLight(core.NewLight(core.NewVec3(30, 20, 30), 1.7))
}
