package core

// Epsilon values shared across the tracer. Both are load-bearing: SurfaceEpsilon
// resolves face membership on box surfaces, RayBias pushes secondary ray origins
// off the surface that spawned them so they cannot immediately re-intersect it.
const (
	// SurfaceEpsilon is the tolerance for testing whether a point lies on a surface.
	SurfaceEpsilon = 1e-6

	// RayBias is the offset applied to secondary ray origins to avoid shadow acne.
	RayBias = 1e-3
)
