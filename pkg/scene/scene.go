package scene

import (
	"errors"
	"fmt"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

// ErrCameraNotAtOrigin is returned for cameras with a translated center.
// Rays always start at the world origin.
var ErrCameraNotAtOrigin = errors.New("camera center must be the world origin")

// Scene contains all the elements needed for rendering
type Scene struct {
	Camera     geometry.Camera
	Lights     []lights.PointLight // Lights in insertion order
	Spheres    []geometry.Sphere   // Spheres in insertion order
	Planes     []geometry.Plane    // Planes in insertion order
	Background core.Color
	ImageView  geometry.ImageView
}

// NewScene creates an empty scene
func NewScene(camera geometry.Camera, background core.Color, view geometry.ImageView) *Scene {
	return &Scene{
		Camera:     camera,
		Lights:     make([]lights.PointLight, 0),
		Spheres:    make([]geometry.Sphere, 0),
		Planes:     make([]geometry.Plane, 0),
		Background: background,
		ImageView:  view,
	}
}

// AddLight appends a point light
func (s *Scene) AddLight(light lights.PointLight) {
	s.Lights = append(s.Lights, light)
}

// AddSphere validates and appends a sphere
func (s *Scene) AddSphere(sphere geometry.Sphere) error {
	if err := sphere.Validate(); err != nil {
		return fmt.Errorf("add sphere %d: %w", len(s.Spheres), err)
	}
	s.Spheres = append(s.Spheres, sphere)
	return nil
}

// AddPlane builds a width x height rectangle and appends it. The height
// direction must be perpendicular to the normal.
func (s *Scene) AddPlane(center, normal, heightDirection core.Vec3, width, height float64, color core.Color, shininess float64) error {
	mat := material.NewPhong(color, shininess)
	if err := mat.Validate(); err != nil {
		return fmt.Errorf("add plane %d: %w", len(s.Planes), err)
	}

	plane, err := geometry.NewPlane(center, normal, heightDirection, width, height, mat)
	if err != nil {
		return fmt.Errorf("add plane %d: %w", len(s.Planes), err)
	}
	s.Planes = append(s.Planes, plane)
	return nil
}

// SetImageView changes the output resolution
func (s *Scene) SetImageView(view geometry.ImageView) error {
	if err := view.Validate(); err != nil {
		return err
	}
	s.ImageView = view
	return nil
}

// Validate checks everything the renderer relies on
func (s *Scene) Validate() error {
	if !s.Camera.Center.IsZero() {
		return fmt.Errorf("%w: got %v", ErrCameraNotAtOrigin, s.Camera.Center)
	}
	if err := s.Camera.Screen.Validate(); err != nil {
		return err
	}
	if err := s.ImageView.Validate(); err != nil {
		return err
	}
	if _, err := geometry.NewProjection(s.Camera); err != nil {
		return err
	}
	for i, sphere := range s.Spheres {
		if err := sphere.Validate(); err != nil {
			return fmt.Errorf("sphere %d: %w", i, err)
		}
	}
	return nil
}

// GetPrimitiveCount returns the number of intersectable primitives
// (spheres plus two facets per plane)
func (s *Scene) GetPrimitiveCount() int {
	return len(s.Spheres) + 2*len(s.Planes)
}

// The getters below satisfy renderer.Scene.

func (s *Scene) GetCamera() geometry.Camera       { return s.Camera }
func (s *Scene) GetLights() []lights.PointLight   { return s.Lights }
func (s *Scene) GetSpheres() []geometry.Sphere    { return s.Spheres }
func (s *Scene) GetPlanes() []geometry.Plane      { return s.Planes }
func (s *Scene) GetBackgroundColor() core.Color   { return s.Background }
func (s *Scene) GetImageView() geometry.ImageView { return s.ImageView }
