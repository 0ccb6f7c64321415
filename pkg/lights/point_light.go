package lights

import "github.com/df07/go-phong-raytracer/pkg/core"

// PointLight is an unattenuated point light. Its color is carried for scene
// descriptions but does not affect shading intensity.
type PointLight struct {
	Position core.Vec3
	Color    core.Color
}

// NewPointLight creates a white point light at the given position
func NewPointLight(position core.Vec3) PointLight {
	return PointLight{Position: position, Color: core.NewColor(255, 255, 255)}
}

// NewColoredPointLight creates a point light with an explicit color
func NewColoredPointLight(position core.Vec3, color core.Color) PointLight {
	return PointLight{Position: position, Color: color}
}

// DirectionFrom returns the unit vector pointing from point toward the light
func (l PointLight) DirectionFrom(point core.Vec3) core.Vec3 {
	return l.Position.Subtract(point).Normalize()
}
