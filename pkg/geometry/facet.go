package geometry

import (
	"errors"
	"fmt"
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

const (
	// facetCosineBias keeps grazing rays from being rejected by rounding
	facetCosineBias = 1e-12
	// facetAreaTolerance is the allowed mismatch between a facet's area and
	// the sum of the sub-triangles formed with a candidate hit point
	facetAreaTolerance = 1e-3
)

// ErrDegenerateFacet is returned when a facet's vertices are collinear
var ErrDegenerateFacet = errors.New("facet vertices are collinear")

// Facet represents a single triangle with a precomputed centroid and normal
type Facet struct {
	P1, P2, P3 core.Vec3
	Center     core.Vec3 // Centroid
	Normal     core.Vec3 // normalize((P2-P1) x (P3-P1))
	Material   material.Phong
	area       float64
}

// NewFacet creates a new facet from three vertices
func NewFacet(p1, p2, p3 core.Vec3, mat material.Phong) (Facet, error) {
	cross := p2.Subtract(p1).Cross(p3.Subtract(p1))
	length := cross.Length()
	if length < 1e-12 || math.IsNaN(length) || math.IsInf(length, 0) {
		return Facet{}, fmt.Errorf("%w: %v, %v, %v", ErrDegenerateFacet, p1, p2, p3)
	}

	return Facet{
		P1:       p1,
		P2:       p2,
		P3:       p3,
		Center:   p1.Add(p2).Add(p3).Multiply(1.0 / 3.0),
		Normal:   cross.Multiply(1.0 / length),
		Material: mat,
		area:     0.5 * length,
	}, nil
}

// Area returns the facet's surface area
func (f *Facet) Area() float64 {
	return f.area
}

// Hit intersects a ray leaving the world origin along the unit direction dir.
// Only the front face (the side the normal points to) is hit.
func (f *Facet) Hit(dir core.Vec3) (float64, core.Vec3, bool) {
	cosAlpha := dir.Dot(f.Normal.Negate()) + facetCosineBias
	if cosAlpha < 0 {
		return 0, core.Vec3{}, false
	}

	// The plane offset is measured from the origin, which is the ray origin.
	t := math.Abs(f.Normal.Dot(f.Center)) / cosAlpha
	point := dir.Multiply(t)

	areaSum := core.TriangleArea(f.P1, f.P2, point) +
		core.TriangleArea(f.P1, point, f.P3) +
		core.TriangleArea(f.P2, point, f.P3)

	if math.Abs(f.area-areaSum) >= facetAreaTolerance {
		return 0, core.Vec3{}, false
	}
	return t, point, true
}
