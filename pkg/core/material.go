package core

// Albedo describes how a surface splits incoming energy across the four
// illumination channels. The weights are per-material constants and are not
// required to sum to 1.
type Albedo struct {
	Diffuse    float64
	Specular   float64
	Reflective float64
	Refractive float64
}

// NewAlbedo creates a new albedo weight vector
func NewAlbedo(diffuse, specular, reflective, refractive float64) Albedo {
	return Albedo{Diffuse: diffuse, Specular: specular, Reflective: reflective, Refractive: refractive}
}

// Material describes the surface response of a visible object.
// SpecularExponent is the Phong shininess and must be positive.
// RefractiveIndex of 1.0 is visually non-refractive but still feeds Snell's law
// when the refractive albedo weight is positive.
type Material struct {
	DiffuseColor     Color
	Albedo           Albedo
	SpecularExponent float64
	RefractiveIndex  float64
}

// NewMaterial creates a new material
func NewMaterial(diffuseColor Color, albedo Albedo, specularExponent, refractiveIndex float64) Material {
	return Material{
		DiffuseColor:     diffuseColor,
		Albedo:           albedo,
		SpecularExponent: specularExponent,
		RefractiveIndex:  refractiveIndex,
	}
}

// DefaultMaterial returns a plain white diffuse material
func DefaultMaterial() Material {
	return NewMaterial(White, NewAlbedo(1, 0, 0, 0), 50, 1)
}

// Material presets shared by the example scenes.
func Ivory() Material {
	return NewMaterial(NewColor(0.4, 0.4, 0.3), NewAlbedo(0.6, 0.3, 0.1, 0), 50, 1)
}

func RedRubber() Material {
	return NewMaterial(NewColor(0.3, 0.1, 0.1), NewAlbedo(0.9, 0.1, 0, 0), 10, 1)
}

// Glass is mostly refractive with no diffuse contribution at all.
func Glass() Material {
	return NewMaterial(NewColor(0.6, 0.7, 0.8), NewAlbedo(0, 0.5, 0.1, 0.8), 125, 1.5)
}

func Gold() Material {
	return NewMaterial(NewColor(0.6, 0.5, 0.3), NewAlbedo(0.5, 0.5, 0.1, 0), 80, 0.8)
}

func MagentaRubber() Material {
	return NewMaterial(Magenta, NewAlbedo(0.3, 0.3, 0.1, 0), 20, 0.8)
}

func Mirror() Material {
	return NewMaterial(Black, NewAlbedo(1, 1, 0.87, 0), 1425, 1)
}

func DarkMirror() Material {
	return NewMaterial(NewColor(40.0/255, 40.0/255, 40.0/255), NewAlbedo(1, 0.1, 0.1, 0), 30, 1)
}

// Light is a point light with no distance attenuation
type Light struct {
	Position  Vec3
	Intensity float64
}

// NewLight creates a new point light
func NewLight(position Vec3, intensity float64) Light {
	return Light{Position: position, Intensity: intensity}
}
