package main

import (
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

func TestCreateScene(t *testing.T) {
	tests := []struct {
		name           string
		sceneType      string
		width, height  int
		expectedWidth  int
		expectedHeight int
		expectError    bool
	}{
		// Built-in scenes at their default size
		{"default scene", "default", 0, 0, 640, 480, false},
		{"single-sphere scene", "single-sphere", 0, 0, 640, 480, false},
		{"planes scene", "planes", 0, 0, 640, 480, false},

		// Size overrides
		{"width override", "default", 320, 0, 320, 480, false},
		{"both overrides", "planes", 64, 48, 64, 48, false},

		// Invalid input
		{"unknown scene", "nonexistent", 0, 0, 0, 0, true},
		{"empty scene name", "", 0, 0, 0, 0, true},
		{"image too small", "default", 1, 0, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := createScene(tt.sceneType, tt.width, tt.height)

			if tt.expectError {
				if err == nil {
					t.Errorf("Expected error for scene type '%s', but got none", tt.sceneType)
				}
				if s != nil {
					t.Errorf("Expected nil scene for invalid input, got %T", s)
				}
				return
			}

			if err != nil {
				t.Fatalf("Unexpected error for scene type '%s': %v", tt.sceneType, err)
			}
			view := s.GetImageView()
			if view.Width != tt.expectedWidth || view.Height != tt.expectedHeight {
				t.Errorf("Expected %dx%d, got %dx%d", tt.expectedWidth, tt.expectedHeight, view.Width, view.Height)
			}
		})
	}
}

func TestCreateScene_UnknownIsErrUnknownScene(t *testing.T) {
	_, err := createScene("nonexistent", 0, 0)
	if !errors.Is(err, scene.ErrUnknownScene) {
		t.Errorf("Expected ErrUnknownScene, got %v", err)
	}

	_, err = createScene("default", 0, 1)
	if !errors.Is(err, geometry.ErrInvalidImageView) {
		t.Errorf("Expected ErrInvalidImageView, got %v", err)
	}
}

func TestOutputPath(t *testing.T) {
	now := time.Date(2024, 3, 5, 14, 7, 9, 0, time.UTC)

	got := outputPath("planes", "", now)
	expected := filepath.Join("output", "planes", "render_20240305_140709.png")
	if got != expected {
		t.Errorf("Expected %s, got %s", expected, got)
	}

	if got := outputPath("planes", "custom.jpg", now); got != "custom.jpg" {
		t.Errorf("Expected override to win, got %s", got)
	}
}

func TestSaveImage(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 3))
	for i := range img.Pix {
		img.Pix[i] = 255
	}
	img.SetRGBA(1, 1, color.RGBA{R: 10, G: 20, B: 30, A: 255})

	dir := t.TempDir()

	t.Run("png", func(t *testing.T) {
		path := filepath.Join(dir, "frame.png")
		if err := saveImage(path, img); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open output: %v", err)
		}
		defer file.Close()

		decoded, err := png.Decode(file)
		if err != nil {
			t.Fatalf("Failed to decode PNG: %v", err)
		}
		r, g, b, _ := decoded.At(1, 1).RGBA()
		if r>>8 != 10 || g>>8 != 20 || b>>8 != 30 {
			t.Errorf("Expected (10,20,30), got (%d,%d,%d)", r>>8, g>>8, b>>8)
		}
	})

	t.Run("jpeg", func(t *testing.T) {
		path := filepath.Join(dir, "frame.JPEG")
		if err := saveImage(path, img); err != nil {
			t.Fatalf("Unexpected error: %v", err)
		}
		file, err := os.Open(path)
		if err != nil {
			t.Fatalf("Failed to open output: %v", err)
		}
		defer file.Close()

		decoded, err := jpeg.Decode(file)
		if err != nil {
			t.Fatalf("Failed to decode JPEG: %v", err)
		}
		if decoded.Bounds() != img.Bounds() {
			t.Errorf("Expected bounds %v, got %v", img.Bounds(), decoded.Bounds())
		}
	})

	t.Run("unsupported", func(t *testing.T) {
		path := filepath.Join(dir, "frame.bmp")
		if err := saveImage(path, img); !errors.Is(err, ErrUnsupportedFormat) {
			t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
		}
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Error("Unsupported format should not create a file")
		}
	})
}

func TestPreviewScale(t *testing.T) {
	if got := previewScale(geometry.ImageView{Width: 320, Height: 240}); got != 2 {
		t.Errorf("Expected scale 2 for small images, got %d", got)
	}
	if got := previewScale(geometry.ImageView{Width: 640, Height: 480}); got != 1 {
		t.Errorf("Expected scale 1 for full size images, got %d", got)
	}
}
