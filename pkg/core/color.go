package core

// Color is an RGB triple. Channels are intended to be non-negative and may
// transiently exceed 1 while contributions are summed; QuantizeRGB8 brings the
// result back into displayable range.
type Color struct {
	R, G, B float64
}

// Predefined colors
var (
	Black   = NewColor(0, 0, 0)
	White   = NewColor(1, 1, 1)
	Red     = NewColor(1, 0, 0)
	Green   = NewColor(0, 1, 0)
	Blue    = NewColor(0, 0, 1)
	Yellow  = NewColor(1, 1, 0)
	Cyan    = NewColor(0, 1, 1)
	Magenta = NewColor(1, 0, 1)
)

// NewColor creates a new color
func NewColor(r, g, b float64) Color {
	return Color{R: r, G: g, B: b}
}

// Add returns the channel-wise sum of two colors
func (c Color) Add(other Color) Color {
	return Color{c.R + other.R, c.G + other.G, c.B + other.B}
}

// Scale returns the color with every channel multiplied by a scalar
func (c Color) Scale(s float64) Color {
	return Color{c.R * s, c.G * s, c.B * s}
}

// ApplyIntensity scales the color by a light intensity
func (c Color) ApplyIntensity(intensity float64) Color {
	return c.Scale(intensity)
}

// ApplyAlbedo composes the four illumination channels into one color using the
// albedo weights: a single 3x4 linear map applied to the weight vector, exact
// and branch-free.
func ApplyAlbedo(diffuse, specular, reflective, refractive Color, albedo Albedo) Color {
	return Color{
		R: diffuse.R*albedo.Diffuse + specular.R*albedo.Specular + reflective.R*albedo.Reflective + refractive.R*albedo.Refractive,
		G: diffuse.G*albedo.Diffuse + specular.G*albedo.Specular + reflective.G*albedo.Reflective + refractive.G*albedo.Refractive,
		B: diffuse.B*albedo.Diffuse + specular.B*albedo.Specular + reflective.B*albedo.Reflective + refractive.B*albedo.Refractive,
	}
}

// QuantizeRGB8 converts the color to 8-bit channels. If the maximum channel
// exceeds 1 all channels are rescaled so the maximum becomes exactly 1, which
// preserves hue instead of shifting it the way per-channel clipping would.
// Channels are then clamped to [0, 1] and scaled to [0, 255].
func (c Color) QuantizeRGB8() (r, g, b uint8) {
	maxChan := c.R
	if c.G > maxChan {
		maxChan = c.G
	}
	if c.B > maxChan {
		maxChan = c.B
	}
	if maxChan > 1 {
		c = c.Scale(1 / maxChan)
	}

	r = uint8(255 * clamp(c.R, 0, 1))
	g = uint8(255 * clamp(c.G, 0, 1))
	b = uint8(255 * clamp(c.B, 0, 1))
	return r, g, b
}
