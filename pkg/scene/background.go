package scene

import "github.com/tinycg/go-whitted-raytracer/pkg/core"

// Background yields a color for rays that hit nothing in the scene
type Background interface {
	Color(ray core.Ray) core.Color
}

// SolidBackground fills every miss with one color
type SolidBackground struct {
	color core.Color
}

// NewSolidBackground creates a solid background
func NewSolidBackground(color core.Color) *SolidBackground {
	return &SolidBackground{color: color}
}

// Color returns the background color regardless of direction
func (b *SolidBackground) Color(ray core.Ray) core.Color {
	return b.color
}

// SkyBackground blends vertically from white at the horizon to blue overhead
type SkyBackground struct{}

// NewSkyBackground creates a sky gradient background
func NewSkyBackground() *SkyBackground {
	return &SkyBackground{}
}

// Color blends on the ray direction's vertical component
func (b *SkyBackground) Color(ray core.Ray) core.Color {
	t := 0.5 * (ray.Direction.Vec3().Y + 1)
	white := core.NewColor(1, 1, 1)
	blue := core.NewColor(0.5, 0.7, 1.0)
	return white.Scale(1 - t).Add(blue.Scale(t))
}
