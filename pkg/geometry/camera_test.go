package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

func newTestCamera(normal, up core.Vec3) Camera {
	return NewCamera(core.NewVec3(0, 0, 0), normal, up, Screen{Width: 1.0, Height: 0.7})
}

func TestCamera_Basis(t *testing.T) {
	camera := newTestCamera(core.NewVec3(0, 0, -3), core.NewVec3(0, 2, 0))
	right, up, forward := camera.Basis()

	if right.Subtract(core.NewVec3(1, 0, 0)).Length() > 1e-12 {
		t.Errorf("Expected right (1,0,0), got %v", right)
	}
	if up.Subtract(core.NewVec3(0, 1, 0)).Length() > 1e-12 {
		t.Errorf("Expected up (0,1,0), got %v", up)
	}
	if forward.Subtract(core.NewVec3(0, 0, -1)).Length() > 1e-12 {
		t.Errorf("Expected forward (0,0,-1), got %v", forward)
	}
}

func TestProjection_CastRay(t *testing.T) {
	projection, err := NewProjection(newTestCamera(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, 0)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	tests := []struct {
		name     string
		x, y     float64
		expected core.Vec3
	}{
		{"center", 0, 0, core.NewVec3(0, 0, -1)},
		{"right", 0.5, 0, core.NewVec3(0.5, 0, -1).Normalize()},
		{"top left", -0.5, 0.35, core.NewVec3(-0.5, 0.35, -1).Normalize()},
		{"bottom", 0, -0.35, core.NewVec3(0, -0.35, -1).Normalize()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := projection.CastRay(tt.x, tt.y)
			if dir.Subtract(tt.expected).Length() > 1e-12 {
				t.Errorf("Expected %v, got %v", tt.expected, dir)
			}
			if math.Abs(dir.Length()-1) > 1e-12 {
				t.Errorf("Expected unit direction, got length %f", dir.Length())
			}
		})
	}
}

func TestProjection_OffsetIsRawNormal(t *testing.T) {
	projection, err := NewProjection(newTestCamera(core.NewVec3(0, 0, -2), core.NewVec3(0, 1, 0)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	offset := projection.Matrix().Col(3)
	if offset[0] != 0 || offset[1] != 0 || offset[2] != -2 {
		t.Errorf("Expected offset column (0,0,-2), got %v", offset)
	}

	// A longer normal moves the image plane further away, narrowing the view
	dir := projection.CastRay(0.5, 0)
	expected := core.NewVec3(0.5, 0, -2).Normalize()
	if dir.Subtract(expected).Length() > 1e-12 {
		t.Errorf("Expected %v, got %v", expected, dir)
	}
}

func TestNewProjection_Degenerate(t *testing.T) {
	tests := []struct {
		name   string
		normal core.Vec3
		up     core.Vec3
	}{
		{"collinear", core.NewVec3(0, 1, 0), core.NewVec3(0, 2, 0)},
		{"anti-collinear", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 1)},
		{"zero normal", core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0)},
		{"zero up", core.NewVec3(0, 0, -1), core.NewVec3(0, 0, 0)},
		{"NaN normal", core.NewVec3(math.NaN(), 0, -1), core.NewVec3(0, 1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewProjection(newTestCamera(tt.normal, tt.up))
			if !errors.Is(err, ErrDegenerateCamera) {
				t.Errorf("Expected ErrDegenerateCamera, got %v", err)
			}
		})
	}
}

func TestNewProjection_SkewedUp(t *testing.T) {
	// Up that is not perpendicular to the normal still spans a valid basis
	projection, err := NewProjection(newTestCamera(core.NewVec3(0, 0, -1), core.NewVec3(0, 1, -1)))
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
	if dir := projection.CastRay(0.2, 0.1); !dir.IsFinite() {
		t.Errorf("Expected finite direction, got %v", dir)
	}
}

func TestImageView_Validate(t *testing.T) {
	tests := []struct {
		name    string
		view    ImageView
		wantErr bool
	}{
		{"typical", ImageView{640, 480}, false},
		{"minimum", ImageView{2, 2}, false},
		{"single column", ImageView{1, 480}, true},
		{"single row", ImageView{640, 1}, true},
		{"empty", ImageView{0, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.view.Validate()
			if tt.wantErr && !errors.Is(err, ErrInvalidImageView) {
				t.Errorf("Expected ErrInvalidImageView, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Unexpected error: %v", err)
			}
		})
	}
}

func TestScreen_Validate(t *testing.T) {
	if err := (Screen{Width: 1, Height: 0.7}).Validate(); err != nil {
		t.Errorf("Unexpected error: %v", err)
	}
	if err := (Screen{Width: 0, Height: 0.7}).Validate(); !errors.Is(err, ErrInvalidScreen) {
		t.Errorf("Expected ErrInvalidScreen, got %v", err)
	}
}
