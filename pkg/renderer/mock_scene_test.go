package renderer

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// MockScene implements Scene for testing
type MockScene struct {
	camera     geometry.Camera
	lights     []lights.PointLight
	spheres    []geometry.Sphere
	planes     []geometry.Plane
	background core.Color
	view       geometry.ImageView
}

func (m *MockScene) GetCamera() geometry.Camera       { return m.camera }
func (m *MockScene) GetLights() []lights.PointLight   { return m.lights }
func (m *MockScene) GetSpheres() []geometry.Sphere    { return m.spheres }
func (m *MockScene) GetPlanes() []geometry.Plane      { return m.planes }
func (m *MockScene) GetBackgroundColor() core.Color   { return m.background }
func (m *MockScene) GetImageView() geometry.ImageView { return m.view }

var (
	testBackground = core.NewColor(192, 192, 192)
	redMaterial    = material.NewPhong(core.NewColor(200, 0, 0), 10)
	blueMaterial   = material.NewPhong(core.NewColor(0, 0, 200), 10)
	grayMaterial   = material.NewPhong(core.NewColor(100, 100, 100), 2)
)

// createMockScene creates a camera at the origin looking down -Z with no
// objects. The odd resolution puts pixel (32, 24) exactly on the view axis.
func createMockScene() *MockScene {
	return &MockScene{
		camera: geometry.NewCamera(
			core.NewVec3(0, 0, 0),
			core.NewVec3(0, 0, -1),
			core.NewVec3(0, 1, 0),
			geometry.Screen{Width: 1.0, Height: 0.7},
		),
		background: testBackground,
		view:       geometry.ImageView{Width: 65, Height: 49},
	}
}
