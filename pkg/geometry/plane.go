package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// perpendicularTolerance bounds |normal . heightDirection| for a valid plane
const perpendicularTolerance = 1e-5

// ErrCollinearPlane is returned when a plane's height direction is not
// perpendicular to its normal
var ErrCollinearPlane = errors.New("plane normal and height direction are not perpendicular")

// Plane is a finite rectangle split into two facets sharing one material
type Plane struct {
	Facets   [2]Facet
	Material material.Phong
}

// NewPlane creates a width x height rectangle centered at center. The
// rectangle faces along normal and its height runs along heightDirection.
func NewPlane(center, normal, heightDirection core.Vec3, width, height float64, mat material.Phong) (Plane, error) {
	normal = normal.Normalize()
	heightDirection = heightDirection.Normalize()

	if dot := normal.Dot(heightDirection); !(math.Abs(dot) < perpendicularTolerance) {
		return Plane{}, fmt.Errorf("%w: normal %v, height direction %v (dot %g)",
			ErrCollinearPlane, normal, heightDirection, dot)
	}

	widthDirection := heightDirection.Cross(normal)
	heightDirection = widthDirection.Cross(normal)

	halfW := widthDirection.Multiply(0.5 * width)
	halfH := heightDirection.Multiply(0.5 * height)

	p1 := center.Subtract(halfW).Add(halfH)
	p2 := center.Add(halfW).Add(halfH)
	p3 := center.Subtract(halfW).Subtract(halfH)
	p4 := center.Add(halfW).Subtract(halfH)

	first, err := NewFacet(p1, p2, p3, mat)
	if err != nil {
		return Plane{}, fmt.Errorf("plane: %w", err)
	}
	second, err := NewFacet(p2, p4, p3, mat)
	if err != nil {
		return Plane{}, fmt.Errorf("plane: %w", err)
	}

	return Plane{
		Facets:   [2]Facet{first, second},
		Material: mat,
	}, nil
}

// Area returns the total area of both facets
func (p *Plane) Area() float64 {
	return p.Facets[0].Area() + p.Facets[1].Area()
}
