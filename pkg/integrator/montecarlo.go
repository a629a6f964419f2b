package integrator

import (
	"math/rand"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
	"github.com/tinycg/go-whitted-raytracer/pkg/scene"
)

// DefaultMonteCarloDepth is the default bounce bound for the stochastic strategy
const DefaultMonteCarloDepth = 10

// MonteCarlo is the stochastic diffuse-only strategy: one uniformly sampled
// hemisphere bounce per hit with a fixed 0.5 attenuation. No importance
// sampling, no direct-light sampling, no Russian roulette — it trades
// correctness and speed for simplicity.
type MonteCarlo struct {
	recursionDepth int
}

// NewMonteCarlo creates the stochastic strategy with the default bounce bound
func NewMonteCarlo() *MonteCarlo {
	return &MonteCarlo{recursionDepth: DefaultMonteCarloDepth}
}

// NewMonteCarloWithDepth creates the stochastic strategy with a custom bounce bound
func NewMonteCarloWithDepth(recursionDepth int) *MonteCarlo {
	return &MonteCarlo{recursionDepth: recursionDepth}
}

// CastRay bounces the ray diffusely until the depth bound and halves the
// gathered energy per bounce
func (mc *MonteCarlo) CastRay(s *scene.Scene, ray core.Ray, depth int, random *rand.Rand) core.Color {
	if depth > mc.recursionDepth {
		return core.Black
	}

	hit, ok := s.Intersect(ray)
	if !ok {
		return s.BackgroundColor(ray)
	}

	bounce := mc.diffuseRayOnHemisphere(hit, random)
	return mc.CastRay(s, bounce, depth+1, random).Scale(0.5)
}

// diffuseRayOnHemisphere samples a uniformly random direction inside the unit
// cube and flips it into the hemisphere of the surface normal
func (mc *MonteCarlo) diffuseRayOnHemisphere(hit core.HitPoint, random *rand.Rand) core.Ray {
	dir := core.NewDirection(
		2*random.Float64()-1,
		2*random.Float64()-1,
		2*random.Float64()-1,
	)

	n := hit.Norm()
	if !dir.IsAcuteAngle(n) {
		dir = dir.Reverse()
	}

	origin := hit.Position.Add(n.Vec3().Multiply(core.RayBias))
	return core.NewRay(origin, dir)
}
