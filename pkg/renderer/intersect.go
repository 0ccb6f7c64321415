package renderer

import (
	"math"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// HitKind tags which primitive a Hit refers to
type HitKind int

const (
	HitNone HitKind = iota
	HitSphere
	HitFacet
)

func (k HitKind) String() string {
	switch k {
	case HitSphere:
		return "sphere"
	case HitFacet:
		return "facet"
	default:
		return "none"
	}
}

// Hit is the nearest intersection along a ray. Exactly one of Sphere and
// Facet is set, matching Kind; both are nil for HitNone.
type Hit struct {
	Kind     HitKind
	Distance float64
	Point    core.Vec3
	Sphere   *geometry.Sphere
	Facet    *geometry.Facet
}

// Normal returns the outward unit surface normal at the hit point
func (h Hit) Normal() core.Vec3 {
	switch h.Kind {
	case HitSphere:
		return h.Sphere.NormalAt(h.Point)
	case HitFacet:
		return h.Facet.Normal
	default:
		return core.Vec3{}
	}
}

// Material returns the material of the hit primitive
func (h Hit) Material() material.Phong {
	switch h.Kind {
	case HitSphere:
		return h.Sphere.Material
	case HitFacet:
		return h.Facet.Material
	default:
		return material.Phong{}
	}
}

// Intersect scans every sphere and then every plane facet for the nearest
// hit along the unit direction dir from the world origin. Ties keep the
// primitive found first.
func Intersect(dir core.Vec3, spheres []geometry.Sphere, planes []geometry.Plane) Hit {
	closest := Hit{Kind: HitNone, Distance: math.MaxFloat64}

	for i := range spheres {
		sphere := &spheres[i]
		t, ok := sphere.Hit(dir)
		// Spheres behind the origin produce negative distances
		if !ok || t < 0 || t >= closest.Distance {
			continue
		}
		closest = Hit{
			Kind:     HitSphere,
			Distance: t,
			Point:    dir.Multiply(t),
			Sphere:   sphere,
		}
	}

	for i := range planes {
		for k := range planes[i].Facets {
			facet := &planes[i].Facets[k]
			t, point, ok := facet.Hit(dir)
			if !ok || t >= closest.Distance {
				continue
			}
			closest = Hit{
				Kind:     HitFacet,
				Distance: t,
				Point:    point,
				Facet:    facet,
			}
		}
	}

	return closest
}
