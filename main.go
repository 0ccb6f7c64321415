package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/preview"
	"github.com/df07/go-phong-raytracer/pkg/renderer"
	"github.com/df07/go-phong-raytracer/pkg/scene"
)

// ErrUnsupportedFormat is returned for output files that are neither PNG nor JPEG
var ErrUnsupportedFormat = errors.New("unsupported output format")

func main() {
	// Parse command line flags
	sceneType := flag.String("scene", "default", "Scene to render (see -help for the list)")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = CPU count)")
	tileSize := flag.Int("tile", renderer.DefaultConfig().TileSize, "Tile edge length in pixels")
	output := flag.String("output", "", "Output file (.png, .jpg or .jpeg); default output/<scene>/render_<timestamp>.png")
	showPreview := flag.Bool("preview", false, "Show the render in a window as tiles complete")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	fmt.Println("Starting Phong Raytracer...")

	selectedScene, err := createScene(*sceneType, *width, *height)
	if err != nil {
		fmt.Printf("Error creating scene: %v\n", err)
		os.Exit(1)
	}

	filename := outputPath(*sceneType, *output, time.Now())
	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		fmt.Printf("Error creating output directory: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	config := renderer.Config{TileSize: *tileSize, NumWorkers: *workers}
	raytracer := renderer.NewRaytracer(selectedScene, config, renderer.NewDefaultLogger())

	if !*showPreview {
		if err := renderAndSave(ctx, raytracer, filename, nil); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	// The window owns the main goroutine; rendering runs beside it
	view := selectedScene.GetImageView()
	window := preview.NewWindow(view.Width, view.Height, previewScale(view))
	renderErr := make(chan error, 1)
	go func() {
		err := renderAndSave(ctx, raytracer, filename, func(tile renderer.TileCompletionResult) {
			window.CopyTile(raytracer.Canvas(), tile.Bounds)
		})
		if err == nil {
			window.Finish()
		}
		renderErr <- err
	}()

	if err := window.Run(); err != nil {
		fmt.Printf("Preview error: %v\n", err)
	}
	stop() // Closing the window cancels an unfinished render
	if err := <-renderErr; err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func showHelp() {
	fmt.Println("Phong Raytracer")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	fmt.Println("Available scenes:")
	for _, info := range scene.ListScenes() {
		fmt.Printf("  %-14s - %s\n", info.ID, info.Description)
	}
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.png unless -output is set")
}

// createScene builds a registered scene, optionally overriding its resolution
func createScene(sceneType string, width, height int) (*scene.Scene, error) {
	s, err := scene.Create(sceneType)
	if err != nil {
		return nil, err
	}

	view := s.GetImageView()
	if width > 0 {
		view.Width = width
	}
	if height > 0 {
		view.Height = height
	}
	if err := s.SetImageView(view); err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("scene %q: %w", sceneType, err)
	}
	return s, nil
}

// outputPath returns override if set, otherwise a timestamped file under output/<scene>
func outputPath(sceneType, override string, now time.Time) string {
	if override != "" {
		return override
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", sceneType, fmt.Sprintf("render_%s.png", timestamp))
}

// renderAndSave renders the full frame and writes it to filename
func renderAndSave(ctx context.Context, raytracer *renderer.Raytracer, filename string, tileCallback func(renderer.TileCompletionResult)) error {
	stats, err := raytracer.Render(ctx, tileCallback)
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	fmt.Printf("Pixels: %d total, %d hit (%d sphere, %d facet)\n",
		stats.TotalPixels, stats.HitPixels(), stats.SpherePixels, stats.FacetPixels)

	if err := saveImage(filename, raytracer.Canvas()); err != nil {
		return err
	}

	fmt.Printf("Render saved as %s\n", filename)
	return nil
}

// saveImage encodes img as PNG or JPEG depending on the file extension
func saveImage(filename string, img image.Image) error {
	var encode func(*os.File, image.Image) error
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".png":
		encode = func(f *os.File, img image.Image) error { return png.Encode(f, img) }
	case ".jpg", ".jpeg":
		encode = func(f *os.File, img image.Image) error {
			return jpeg.Encode(f, img, &jpeg.Options{Quality: 95})
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(filename))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	if err := encode(file, img); err != nil {
		return fmt.Errorf("encoding %s: %w", filename, err)
	}
	return file.Close()
}

// previewScale doubles small renders so the window stays readable
func previewScale(view geometry.ImageView) int {
	if view.Width <= 400 && view.Height <= 300 {
		return 2
	}
	return 1
}
