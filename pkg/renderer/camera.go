package renderer

import (
	"math"
	"math/rand"

	"github.com/tinycg/go-whitted-raytracer/pkg/core"
)

// DefaultSamplesPerPixel is the jittered sample count used when antialiasing is on
const DefaultSamplesPerPixel = 10

// Camera is a pinhole camera: it maps pixel coordinates onto a film plane at
// filmDistance in front of the eye and shoots one ray per film point.
type Camera struct {
	filmDistance    float64
	fov             float64 // vertical field of view in radians
	position        core.Vec3
	forward         core.Direction
	right           core.Direction
	up              core.Direction
	antialiasing    bool
	samplesPerPixel int
}

// CameraBuilder assembles a camera; the zero builder gives a camera at the
// origin looking down -Z with a 90 degree field of view.
type CameraBuilder struct {
	camera Camera
}

// NewCameraBuilder creates a builder with the default camera
func NewCameraBuilder() *CameraBuilder {
	return &CameraBuilder{
		camera: Camera{
			filmDistance:    1,
			fov:             math.Pi / 2,
			position:        core.NewVec3(0, 0, 0),
			forward:         core.NewDirection(0, 0, -1),
			right:           core.NewDirection(1, 0, 0),
			up:              core.NewDirection(0, 1, 0),
			samplesPerPixel: DefaultSamplesPerPixel,
		},
	}
}

// Position sets the eye position
func (b *CameraBuilder) Position(position core.Vec3) *CameraBuilder {
	b.camera.position = position
	return b
}

// ForwardTo sets the viewing direction
func (b *CameraBuilder) ForwardTo(forward core.Direction) *CameraBuilder {
	b.camera.forward = forward
	return b
}

// UpTo sets the camera's up direction
func (b *CameraBuilder) UpTo(up core.Direction) *CameraBuilder {
	b.camera.up = up
	return b
}

// RightTo sets the camera's right direction
func (b *CameraBuilder) RightTo(right core.Direction) *CameraBuilder {
	b.camera.right = right
	return b
}

// FilmDistance sets the distance from the eye to the film plane
func (b *CameraBuilder) FilmDistance(distance float64) *CameraBuilder {
	b.camera.filmDistance = distance
	return b
}

// FovDegrees sets the vertical field of view in degrees
func (b *CameraBuilder) FovDegrees(degrees float64) *CameraBuilder {
	b.camera.fov = degrees * math.Pi / 180
	return b
}

// FovRadians sets the vertical field of view in radians
func (b *CameraBuilder) FovRadians(radians float64) *CameraBuilder {
	b.camera.fov = radians
	return b
}

// Antialiasing toggles jittered multi-sampling per pixel
func (b *CameraBuilder) Antialiasing(enable bool) *CameraBuilder {
	b.camera.antialiasing = enable
	return b
}

// SamplesPerPixel sets the jittered sample count used when antialiasing is on
func (b *CameraBuilder) SamplesPerPixel(samples int) *CameraBuilder {
	b.camera.samplesPerPixel = samples
	return b
}

// Build returns the assembled camera
func (b *CameraBuilder) Build() *Camera {
	return &b.camera
}

// Antialiased reports whether the camera multi-samples each pixel
func (c *Camera) Antialiased() bool {
	return c.antialiasing
}

// SampleCount returns the number of rays cast per pixel
func (c *Camera) SampleCount() int {
	if !c.antialiasing {
		return 1
	}
	return c.samplesPerPixel
}

// filmPoint maps pixel coordinates (u, v) on a width x height canvas onto the
// film plane. Coordinates are first normalized so that y spans [-1, 1] and x
// spans [-w/h, w/h], keeping pixels square, then scaled by tan(fov/2) and the
// film distance.
func (c *Camera) filmPoint(u, v, width, height float64) (x, y float64) {
	xNDC := (2*u - width) / height
	yNDC := (height - 2*v) / height

	scale := math.Tan(c.fov/2) * c.filmDistance
	return xNDC * scale, yNDC * scale
}

// rayThroughFilm builds the ray from the eye through a point on the film
// plane, transformed into world space by the camera basis
func (c *Camera) rayThroughFilm(x, y float64) core.Ray {
	dir := c.right.Vec3().Multiply(x).
		Add(c.up.Vec3().Multiply(y)).
		Add(c.forward.Vec3().Multiply(c.filmDistance))
	return core.NewRay(c.position, core.DirectionFromVec3(dir))
}

// RayThroughPixel returns the primary ray through the center of pixel (px, py)
func (c *Camera) RayThroughPixel(px, py, width, height int) core.Ray {
	x, y := c.filmPoint(float64(px), float64(py), float64(width), float64(height))
	return c.rayThroughFilm(x, y)
}

// SampledRayThroughPixel returns a primary ray jittered uniformly within
// half a pixel of (px, py)
func (c *Camera) SampledRayThroughPixel(px, py, width, height int, random *rand.Rand) core.Ray {
	u := float64(px) + random.Float64() - 0.5
	v := float64(py) + random.Float64() - 0.5
	x, y := c.filmPoint(u, v, float64(width), float64(height))
	return c.rayThroughFilm(x, y)
}
