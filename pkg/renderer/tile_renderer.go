package renderer

import (
	"image"

	"github.com/df07/go-phong-raytracer/pkg/core"
)

// Tile represents a rectangular region of the image to be rendered
type Tile struct {
	ID     int             // Unique tile identifier
	Bounds image.Rectangle // Pixel bounds (x0,y0,x1,y1)
}

// NewTileGrid creates a grid of tiles covering the entire image
func NewTileGrid(width, height, tileSize int) []*Tile {
	var tiles []*Tile
	tileID := 0

	// Calculate number of tiles in each dimension
	tilesX := (width + tileSize - 1) / tileSize // Ceiling division
	tilesY := (height + tileSize - 1) / tileSize

	for tileY := 0; tileY < tilesY; tileY++ {
		for tileX := 0; tileX < tilesX; tileX++ {
			x0 := tileX * tileSize
			y0 := tileY * tileSize
			x1 := min(x0+tileSize, width) // Don't exceed image bounds
			y1 := min(y0+tileSize, height)

			tiles = append(tiles, &Tile{ID: tileID, Bounds: image.Rect(x0, y0, x1, y1)})
			tileID++
		}
	}

	return tiles
}

// TileRenderer renders the pixels of individual tiles into a shared canvas
type TileRenderer struct {
	scene     Scene
	generator RayGenerator
	canvas    *Canvas
}

// NewTileRenderer creates a new tile renderer. Tiles passed to
// RenderTileBounds must not overlap when called concurrently.
func NewTileRenderer(scene Scene, generator RayGenerator, canvas *Canvas) *TileRenderer {
	return &TileRenderer{
		scene:     scene,
		generator: generator,
		canvas:    canvas,
	}
}

// RenderTileBounds renders every pixel within bounds
func (tr *TileRenderer) RenderTileBounds(bounds image.Rectangle) RenderStats {
	spheres := tr.scene.GetSpheres()
	planes := tr.scene.GetPlanes()

	stats := RenderStats{TilesRendered: 1}
	for j := bounds.Min.Y; j < bounds.Max.Y; j++ {
		for i := bounds.Min.X; i < bounds.Max.X; i++ {
			dir := tr.generator.Ray(i, j)
			hit := Intersect(dir, spheres, planes)
			tr.canvas.Set(i, j, tr.shade(hit, dir))
			stats.record(hit.Kind)
		}
	}

	return stats
}

// shade returns the pixel color for a resolved hit
func (tr *TileRenderer) shade(hit Hit, dir core.Vec3) core.Color {
	if hit.Kind == HitNone {
		return tr.scene.GetBackgroundColor()
	}
	return hit.Material().Shade(hit.Point, hit.Normal(), dir, tr.scene.GetLights())
}
