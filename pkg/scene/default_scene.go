package scene

import (
	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// Default render settings shared by the built-in scenes
var (
	DefaultBackground = core.NewColor(192, 192, 192)
	DefaultImageView  = geometry.ImageView{Width: 640, Height: 480}
	DefaultScreen     = geometry.Screen{Width: 1.0, Height: 0.7}
)

// NewDefaultCamera returns a camera at the origin looking down -Z with +Y up
func NewDefaultCamera() geometry.Camera {
	return geometry.NewCamera(
		core.NewVec3(0, 0, 0),
		core.NewVec3(0, 0, -1),
		core.NewVec3(0, 1, 0),
		DefaultScreen,
	)
}

// NewDefaultScene creates three spheres lit by two overhead lights
func NewDefaultScene() *Scene {
	s := NewScene(NewDefaultCamera(), DefaultBackground, DefaultImageView)

	s.AddLight(lights.NewPointLight(core.NewVec3(10, 10, 0)))
	s.AddLight(lights.NewPointLight(core.NewVec3(-10, 10, 0)))

	forestGreen := material.NewPhong(core.NewColor(34, 139, 34), 20)
	lightCoral := material.NewPhong(core.NewColor(240, 128, 128), 50)
	blueViolet := material.NewPhong(core.NewColor(138, 43, 226), 5)

	must(s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -7.5), 1.0, forestGreen)))
	must(s.AddSphere(geometry.NewSphere(core.NewVec3(2, 0, -10), 1.0, lightCoral)))
	must(s.AddSphere(geometry.NewSphere(core.NewVec3(-2, 0, -10), 1.0, blueViolet)))

	return s
}

// NewSingleSphereScene creates one sphere straight ahead of the camera with a
// light between them
func NewSingleSphereScene() *Scene {
	s := NewScene(NewDefaultCamera(), DefaultBackground, DefaultImageView)

	s.AddLight(lights.NewPointLight(core.NewVec3(0, 0, -5)))

	red := material.NewPhong(core.NewColor(200, 30, 30), 10)
	must(s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -10), 1.0, red)))

	return s
}

// NewPlanesScene creates the default spheres standing on a floor in front of
// a back wall
func NewPlanesScene() *Scene {
	s := NewDefaultScene()

	// Floor, facing up, its height running away from the camera
	must(s.AddPlane(
		core.NewVec3(0, -1, -9),
		core.NewVec3(0, 1, 0),
		core.NewVec3(0, 0, -1),
		10, 12,
		core.NewColor(110, 110, 120), 2,
	))

	// Back wall, facing the camera
	must(s.AddPlane(
		core.NewVec3(0, 2, -15),
		core.NewVec3(0, 0, 1),
		core.NewVec3(0, 1, 0),
		14, 8,
		core.NewColor(180, 160, 120), 1,
	))

	return s
}

// must panics on errors from built-in scene construction. Built-in scenes use
// literal coordinates, so an error here is a programming mistake.
func must(err error) {
	if err != nil {
		panic(err)
	}
}
