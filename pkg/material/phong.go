package material

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// ErrInvalidShininess is returned for negative or non-finite specular exponents
var ErrInvalidShininess = errors.New("shininess must be a finite value >= 0")

// Phong is a local illumination material: a base color scaled by the sum of
// Lambert and specular intensities over all lights.
type Phong struct {
	Color     core.Color // Base color
	Shininess float64    // Specular exponent
}

// NewPhong creates a new Phong material
func NewPhong(color core.Color, shininess float64) Phong {
	return Phong{Color: color, Shininess: shininess}
}

// Validate checks that the material parameters are usable
func (p Phong) Validate() error {
	if p.Shininess < 0 || math.IsNaN(p.Shininess) || math.IsInf(p.Shininess, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidShininess, p.Shininess)
	}
	return nil
}

// Intensity returns the accumulated Lambert and specular terms at point.
// normal must be a unit vector and rayDir the direction of the incoming ray.
func (p Phong) Intensity(point, normal, rayDir core.Vec3, sceneLights []lights.PointLight) (lambert, specular float64) {
	view := rayDir.Negate().Normalize()

	for _, light := range sceneLights {
		lightDir := light.DirectionFrom(point)
		cosine := lightDir.Dot(normal)
		lambert += cosine

		reflection := normal.Multiply(2 * cosine).Subtract(lightDir)
		// Clamp before exponentiation: a negative base with a fractional exponent is NaN.
		specular += math.Pow(max(0, reflection.Dot(view)), p.Shininess)
	}

	return lambert, specular
}

// Shade returns the base color scaled by the total light intensity at point
func (p Phong) Shade(point, normal, rayDir core.Vec3, sceneLights []lights.PointLight) core.Color {
	lambert, specular := p.Intensity(point, normal, rayDir, sceneLights)
	return p.Color.Scale(lambert + specular)
}
