package scene

import (
	"errors"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
	"github.com/df07/go-phong-raytracer/pkg/material"
)

func newEmptyScene() *Scene {
	return NewScene(NewDefaultCamera(), DefaultBackground, DefaultImageView)
}

func TestScene_AddSphere(t *testing.T) {
	s := newEmptyScene()
	mat := material.NewPhong(core.NewColor(1, 2, 3), 4)

	if err := s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -5), 1, mat)); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if err := s.AddSphere(geometry.NewSphere(core.NewVec3(0, 0, -5), -1, mat)); !errors.Is(err, geometry.ErrInvalidSphere) {
		t.Errorf("Expected ErrInvalidSphere, got %v", err)
	}
	if len(s.Spheres) != 1 {
		t.Errorf("Expected rejected sphere to be skipped, have %d spheres", len(s.Spheres))
	}
}

func TestScene_AddPlane(t *testing.T) {
	s := newEmptyScene()

	err := s.AddPlane(core.NewVec3(0, -1, -5), core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), 4, 4, core.NewColor(9, 9, 9), 1)
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name            string
		normal          core.Vec3
		heightDirection core.Vec3
		shininess       float64
		wantErr         error
	}{
		{"parallel height direction", core.NewVec3(0, 1, 0), core.NewVec3(0, 5, 0), 1, geometry.ErrCollinearPlane},
		{"negative shininess", core.NewVec3(0, 1, 0), core.NewVec3(0, 0, -1), -1, material.ErrInvalidShininess},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := s.AddPlane(core.NewVec3(0, -1, -5), tt.normal, tt.heightDirection, 4, 4, core.NewColor(9, 9, 9), tt.shininess)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}

	if len(s.Planes) != 1 {
		t.Errorf("Expected only the valid plane to be added, have %d planes", len(s.Planes))
	}
	if s.GetPrimitiveCount() != 2 {
		t.Errorf("Expected 2 primitives (one plane), got %d", s.GetPrimitiveCount())
	}
}

func TestScene_AddLight_KeepsOrder(t *testing.T) {
	s := newEmptyScene()
	s.AddLight(lights.NewPointLight(core.NewVec3(1, 0, 0)))
	s.AddLight(lights.NewPointLight(core.NewVec3(2, 0, 0)))

	if len(s.GetLights()) != 2 || s.GetLights()[0].Position.X != 1 || s.GetLights()[1].Position.X != 2 {
		t.Errorf("Lights not kept in insertion order: %v", s.GetLights())
	}
}

func TestScene_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(s *Scene)
		wantErr error
	}{
		{"valid", func(s *Scene) {}, nil},
		{"translated camera", func(s *Scene) { s.Camera.Center = core.NewVec3(0, 1, 0) }, ErrCameraNotAtOrigin},
		{"collinear camera", func(s *Scene) { s.Camera.Up = core.NewVec3(0, 0, 1) }, geometry.ErrDegenerateCamera},
		{"tiny image", func(s *Scene) { s.ImageView = geometry.ImageView{Width: 1, Height: 1} }, geometry.ErrInvalidImageView},
		{"empty screen", func(s *Scene) { s.Camera.Screen = geometry.Screen{} }, geometry.ErrInvalidScreen},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewDefaultScene()
			tt.mutate(s)
			err := s.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Errorf("Unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestScene_SetImageView(t *testing.T) {
	s := newEmptyScene()
	if err := s.SetImageView(geometry.ImageView{Width: 64, Height: 48}); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if s.GetImageView().Width != 64 || s.GetImageView().Height != 48 {
		t.Errorf("Image view not updated: %v", s.GetImageView())
	}
	if err := s.SetImageView(geometry.ImageView{Width: 1, Height: 48}); !errors.Is(err, geometry.ErrInvalidImageView) {
		t.Errorf("Expected ErrInvalidImageView, got %v", err)
	}
	if s.GetImageView().Width != 64 {
		t.Errorf("Rejected image view must not be applied, got %v", s.GetImageView())
	}
}
