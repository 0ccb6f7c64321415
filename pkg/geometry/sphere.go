package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ErrInvalidSphere is returned for spheres with a non-positive radius
var ErrInvalidSphere = errors.New("sphere radius must be > 0")

// Sphere represents a sphere shape
type Sphere struct {
	Center   core.Vec3
	Radius   float64
	Material material.Phong
}

// NewSphere creates a new sphere
func NewSphere(center core.Vec3, radius float64, mat material.Phong) Sphere {
	return Sphere{
		Center:   center,
		Radius:   radius,
		Material: mat,
	}
}

// Validate checks the sphere's radius and material
func (s Sphere) Validate() error {
	if !(s.Radius > 0) || math.IsInf(s.Radius, 0) {
		return fmt.Errorf("%w: got %v", ErrInvalidSphere, s.Radius)
	}
	if !s.Center.IsFinite() {
		return fmt.Errorf("%w: center %v is not finite", ErrInvalidSphere, s.Center)
	}
	return s.Material.Validate()
}

// Hit intersects a ray leaving the world origin along the unit direction dir.
// Only the near root is reported, so a ray starting inside the sphere is not
// resolved.
func (s Sphere) Hit(dir core.Vec3) (float64, bool) {
	projected := dir.Dot(s.Center)
	// Squared distance from the sphere center to the ray line
	deviation := s.Center.LengthSquared() - projected*projected
	radiusSquared := s.Radius * s.Radius

	if radiusSquared <= deviation {
		return 0, false
	}
	return projected - math.Sqrt(radiusSquared-deviation), true
}

// NormalAt returns the outward unit normal at a point on the surface
func (s Sphere) NormalAt(point core.Vec3) core.Vec3 {
	return point.Subtract(s.Center).Normalize()
}
