package renderer

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/df07/go-phong-raytracer/pkg/core"
	"github.com/df07/go-phong-raytracer/pkg/geometry"
	"github.com/df07/go-phong-raytracer/pkg/lights"
)

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() geometry.Camera
	GetLights() []lights.PointLight
	GetSpheres() []geometry.Sphere
	GetPlanes() []geometry.Plane
	GetBackgroundColor() core.Color
	GetImageView() geometry.ImageView
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Config contains configuration for the frame driver
type Config struct {
	TileSize   int // Edge length of a square tile in pixels
	NumWorkers int // Number of parallel workers (0 = use CPU count)
}

// DefaultConfig returns sensible default values
func DefaultConfig() Config {
	return Config{
		TileSize:   32,
		NumWorkers: 0, // Auto-detect CPU count
	}
}

// MergeConfig returns base with every positive field of override applied
func MergeConfig(base, override Config) Config {
	result := base
	if override.TileSize > 0 {
		result.TileSize = override.TileSize
	}
	if override.NumWorkers > 0 {
		result.NumWorkers = override.NumWorkers
	}
	return result
}

// TileCompletionResult contains information about a completed tile for callbacks
type TileCompletionResult struct {
	TileX  int // Tile coordinates (not pixel coordinates)
	TileY  int
	Bounds image.Rectangle

	// Progress information
	TileNumber int // Number of tiles finished so far, including this one
	TotalTiles int // Total number of tiles in the image
}

// Raytracer renders a scene into its canvas, one primary ray per pixel
type Raytracer struct {
	scene  Scene
	config Config
	canvas *Canvas
	logger core.Logger
}

// NewRaytracer creates a new raytracer. The canvas is sized from the scene's
// image view at construction time.
func NewRaytracer(scene Scene, config Config, logger core.Logger) *Raytracer {
	if logger == nil {
		logger = core.NopLogger{}
	}
	return &Raytracer{
		scene:  scene,
		config: MergeConfig(DefaultConfig(), config),
		canvas: NewCanvas(scene.GetImageView()),
		logger: logger,
	}
}

// Canvas returns the pixel buffer. It is complete once Render returns nil.
func (rt *Raytracer) Canvas() *Canvas {
	return rt.canvas
}

// Render traces every pixel of the canvas. The camera projection is rebuilt
// on each call; a degenerate camera fails before any pixel is written.
// tileCallback, if non-nil, is invoked once per finished tile from the
// calling goroutine.
func (rt *Raytracer) Render(ctx context.Context, tileCallback func(TileCompletionResult)) (RenderStats, error) {
	startTime := time.Now()
	view := rt.canvas.ImageView()

	generator, err := NewRayGenerator(rt.scene.GetCamera(), view)
	if err != nil {
		return RenderStats{}, fmt.Errorf("render setup: %w", err)
	}

	tiles := NewTileGrid(view.Width, view.Height, rt.config.TileSize)
	tileRenderer := NewTileRenderer(rt.scene, generator, rt.canvas)
	pool := NewWorkerPool(rt.config.NumWorkers, func(tile *Tile) RenderStats {
		return tileRenderer.RenderTileBounds(tile.Bounds)
	})

	primitives := len(rt.scene.GetSpheres()) + 2*len(rt.scene.GetPlanes())
	rt.logger.Printf("Rendering %dx%d: %d primitives, %d lights, %d tiles (using %d workers)...\n",
		view.Width, view.Height, primitives, len(rt.scene.GetLights()), len(tiles), pool.GetNumWorkers())

	var stats RenderStats
	completed := 0
	err = pool.Run(ctx, tiles, func(result TileResult) {
		stats.Add(result.Stats)
		completed++

		if tileCallback != nil {
			tileCallback(TileCompletionResult{
				TileX:      result.Tile.Bounds.Min.X / rt.config.TileSize,
				TileY:      result.Tile.Bounds.Min.Y / rt.config.TileSize,
				Bounds:     result.Tile.Bounds,
				TileNumber: completed,
				TotalTiles: len(tiles),
			})
		}
	})
	if err != nil {
		rt.logger.Printf("Rendering cancelled after %d of %d tiles\n", completed, len(tiles))
		return stats, err
	}

	stats.Elapsed = time.Since(startTime)
	rt.logger.Printf("Render completed in %v (%d sphere, %d facet, %d background pixels)\n",
		stats.Elapsed, stats.SpherePixels, stats.FacetPixels, stats.BackgroundPixels)

	return stats, nil
}
