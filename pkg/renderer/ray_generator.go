package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
)

// RayGenerator maps pixel coordinates to unit ray directions. It holds no
// mutable state and is safe for concurrent use.
type RayGenerator struct {
	projection     geometry.Projection
	xBegin, yBegin float64
	dx, dy         float64
}

// NewRayGenerator builds the camera projection and pixel spacing
func NewRayGenerator(camera geometry.Camera, view geometry.ImageView) (RayGenerator, error) {
	if err := view.Validate(); err != nil {
		return RayGenerator{}, err
	}
	if err := camera.Screen.Validate(); err != nil {
		return RayGenerator{}, err
	}

	projection, err := geometry.NewProjection(camera)
	if err != nil {
		return RayGenerator{}, err
	}

	return RayGenerator{
		projection: projection,
		xBegin:     -0.5 * camera.Screen.Width,
		yBegin:     0.5 * camera.Screen.Height,
		dx:         camera.Screen.Width / float64(view.Width-1),
		dy:         camera.Screen.Height / float64(view.Height-1),
	}, nil
}

// ScreenPoint returns the image-plane coordinates of pixel (i, j).
// Pixel (0, 0) is the top-left corner; y grows downward in pixel space and
// upward on the screen.
func (g RayGenerator) ScreenPoint(i, j int) (x, y float64) {
	return g.xBegin + float64(i)*g.dx, g.yBegin - float64(j)*g.dy
}

// Ray returns the unit direction for pixel (i, j)
func (g RayGenerator) Ray(i, j int) core.Vec3 {
	x, y := g.ScreenPoint(i, j)
	return g.projection.CastRay(x, y)
}
